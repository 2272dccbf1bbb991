package streak

import (
	"context"
	"fmt"
	"time"

	"github.com/realjbmangum/clarkstark/internal/clock"
	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"
)

type streakStore interface {
	Get(ctx context.Context) (*Streak, error)
	Update(ctx context.Context, transition func(Streak) Streak) (*Streak, error)
}

// Service implements the streak continuity rules on top of the persisted
// singleton state. It holds no state between calls.
type Service struct {
	store streakStore
	now   func() time.Time
}

func NewService(store streakStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// Get loads the streak and lazily reconciles it: a last workout date older
// than yesterday means the streak is broken, so it gets zeroed and persisted
// right here. Nobody expires streaks in the background - a broken streak is
// only detected when somebody asks.
func (s *Service) Get(ctx context.Context) (_ *Info, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.streak.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	st, err := s.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get streak: %w", err)
	}

	today := clock.TodayAt(s.now())
	yesterday := clock.YesterdayAt(s.now())

	isBroken := st.LastWorkoutDate != nil &&
		*st.LastWorkoutDate != today &&
		*st.LastWorkoutDate != yesterday

	if isBroken {
		st, err = s.store.Update(ctx, func(current Streak) Streak {
			current.CurrentStreak = 0
			return current
		})
		if err != nil {
			return nil, fmt.Errorf("reset broken streak: %w", err)
		}
	}

	return &Info{
		CurrentStreak:   st.CurrentStreak,
		LongestStreak:   st.LongestStreak,
		LastWorkoutDate: st.LastWorkoutDate,
		IsBroken:        isBroken,
	}, nil
}

// RecordEvent applies a qualifying workout event for the given civil date
// (today when empty) to the streak state machine:
//   - no prior workout: streak starts at 1
//   - same date again: no change (idempotent)
//   - last workout was yesterday: streak grows by 1
//   - any later date after a gap: hard reset to 1, no partial credit
//   - a backfilled past date: streak untouched
//
// The stored last workout date always becomes the event date, including for
// backfills - matching longstanding behavior, quirks and all.
func (s *Service) RecordEvent(ctx context.Context, date string) (_ *Streak, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.streak.recordevent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if date == "" {
		date = clock.TodayAt(s.now())
	}
	yesterday := clock.YesterdayAt(s.now())

	updated, err := s.store.Update(ctx, func(current Streak) Streak {
		newStreak := 1
		if current.LastWorkoutDate != nil {
			last := *current.LastWorkoutDate
			switch {
			case last == date:
				newStreak = current.CurrentStreak
			case last == yesterday:
				newStreak = current.CurrentStreak + 1
			case date > last:
				// missed one or more days - tough love, back to 1
				newStreak = 1
			default:
				// logging a past date, the live streak stays as is
				newStreak = current.CurrentStreak
			}
		}

		current.CurrentStreak = newStreak
		if newStreak > current.LongestStreak {
			current.LongestStreak = newStreak
		}
		current.LastWorkoutDate = &date
		return current
	})
	if err != nil {
		return nil, fmt.Errorf("record streak event: %w", err)
	}

	return updated, nil
}
