package challenge

import (
	"context"
	"strconv"
	"time"

	"github.com/realjbmangum/clarkstark/internal/clock"
	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

const (
	defaultProteinTarget = 150
	defaultWaterTarget   = 3.0
)

type aggregateStore interface {
	CompletedWorkoutsSince(ctx context.Context, monday string) (int, error)
	WeekdayWorkoutsSince(ctx context.Context, monday string) (int, error)
	ProteinDaysSince(ctx context.Context, monday string, target int) (int, error)
	WaterDaysSince(ctx context.Context, monday string, target float64) (int, error)
}

type settingsStore interface {
	Get(ctx context.Context, key string) (string, error)
}

// Service picks the challenge of the week and computes progress against it.
// The pick is a pure function of the calendar, so it works even when the
// store does not.
type Service struct {
	store    aggregateStore
	settings settingsStore
	now      func() time.Time
}

func NewService(store aggregateStore, settings settingsStore) *Service {
	return &Service{
		store:    store,
		settings: settings,
		now:      time.Now,
	}
}

// ChallengeOfTheWeek is deterministic: every caller in the same calendar
// week gets the same challenge, and the rotation cycles fully before
// repeating.
func (s *Service) ChallengeOfTheWeek() Definition {
	return rotation[clock.WeekIndex(s.now())%len(rotation)]
}

// Progress returns this week's challenge with the current progress. Store
// failures do not fail the call: progress degrades to zero since the
// challenge identity itself never needs the store.
func (s *Service) Progress(ctx context.Context) *Progress {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.challenge.progress")
	defer span.End()

	def := s.ChallengeOfTheWeek()
	monday := clock.MondayOfWeekAt(s.now())

	progress, err := s.progressFor(ctx, def, monday)
	if err != nil {
		log.Errorf("challenge progress for %s: %s", def.ID, err)
		progress = 0
	}

	return &Progress{
		Definition: def,
		Progress:   progress,
		Completed:  progress >= def.Target,
		WeekStart:  monday,
	}
}

func (s *Service) progressFor(ctx context.Context, def Definition, monday string) (int, error) {
	switch def.Kind {
	case AggregateWorkoutCount:
		return s.store.CompletedWorkoutsSince(ctx, monday)
	case AggregateWeekdayWorkoutCount:
		return s.store.WeekdayWorkoutsSince(ctx, monday)
	case AggregateProteinDays:
		return s.store.ProteinDaysSince(ctx, monday, s.proteinTarget(ctx))
	case AggregateWaterDays:
		return s.store.WaterDaysSince(ctx, monday, s.waterTarget(ctx))
	default:
		return 0, nil
	}
}

func (s *Service) proteinTarget(ctx context.Context) int {
	val, err := s.settings.Get(ctx, "protein_target")
	if err != nil {
		return defaultProteinTarget
	}
	target, err := strconv.Atoi(val)
	if err != nil {
		log.Warnf("invalid protein_target setting %q, using default", val)
		return defaultProteinTarget
	}
	return target
}

func (s *Service) waterTarget(ctx context.Context) float64 {
	val, err := s.settings.Get(ctx, "water_target_liters")
	if err != nil {
		return defaultWaterTarget
	}
	target, err := strconv.ParseFloat(val, 64)
	if err != nil {
		log.Warnf("invalid water_target_liters setting %q, using default", val)
		return defaultWaterTarget
	}
	return target
}
