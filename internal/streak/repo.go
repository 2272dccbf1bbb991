package streak

import (
	"context"
	"errors"
	"fmt"

	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Get returns the singleton streak row, lazily creating it with zero values
// on first access. A missing row is the zero state, never an error.
func (r *Repo) Get(ctx context.Context) (_ *Streak, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.streak.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s := &Streak{}
	err = r.db.QueryRow(ctx, `
		SELECT current_streak, longest_streak, last_workout_date, updated_at
		FROM streak WHERE id = 1
	`).Scan(&s.CurrentStreak, &s.LongestStreak, &s.LastWorkoutDate, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		if _, err := r.db.Exec(ctx, `
			INSERT INTO streak (id, current_streak, longest_streak)
			VALUES (1, 0, 0)
			ON CONFLICT (id) DO NOTHING
		`); err != nil {
			return nil, fmt.Errorf("init streak row: %w", err)
		}
		return &Streak{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Update applies the transition function to the current streak state and
// persists the result, all within one transaction. The row is locked for the
// duration of the transaction, so concurrent record-event calls serialize
// instead of clobbering each other's read-modify-write.
func (r *Repo) Update(ctx context.Context, transition func(Streak) Streak) (_ *Streak, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.streak.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `
		INSERT INTO streak (id, current_streak, longest_streak)
		VALUES (1, 0, 0)
		ON CONFLICT (id) DO NOTHING
	`); err != nil {
		return nil, fmt.Errorf("init streak row: %w", err)
	}

	current := Streak{}
	err = tx.QueryRow(ctx, `
		SELECT current_streak, longest_streak, last_workout_date, updated_at
		FROM streak WHERE id = 1
		FOR UPDATE
	`).Scan(&current.CurrentStreak, &current.LongestStreak, &current.LastWorkoutDate, &current.UpdatedAt)
	if err != nil {
		return nil, err
	}

	updated := transition(current)

	err = tx.QueryRow(ctx, `
		UPDATE streak
		SET current_streak = $1,
			longest_streak = $2,
			last_workout_date = $3,
			updated_at = now()
		WHERE id = 1
		RETURNING updated_at
	`, updated.CurrentStreak, updated.LongestStreak, updated.LastWorkoutDate).Scan(&updated.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
