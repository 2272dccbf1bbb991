package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/realjbmangum/clarkstark/internal/bodymetrics"
	"github.com/realjbmangum/clarkstark/internal/clock"
	"github.com/realjbmangum/clarkstark/internal/goals"
	"github.com/realjbmangum/clarkstark/internal/nutrition"
	"github.com/realjbmangum/clarkstark/internal/supplements"
	"github.com/realjbmangum/clarkstark/internal/workouts"
)

const openGoalsLimit = 5

type workoutsStore interface {
	GetByDate(ctx context.Context, date string) ([]workouts.Workout, error)
	GetRange(ctx context.Context, start, end string) ([]workouts.Workout, error)
}

type nutritionStore interface {
	GetDay(ctx context.Context, date string) (*nutrition.DailySummary, []nutrition.Meal, error)
	GetSummaries(ctx context.Context, start, end string) ([]nutrition.DailySummary, error)
}

type waterStore interface {
	DayTotal(ctx context.Context, date string) (float64, error)
}

type metricsStore interface {
	GetRecent(ctx context.Context, limit int) ([]bodymetrics.Metric, error)
	GetEarliest(ctx context.Context) (*bodymetrics.Metric, error)
}

type goalsStore interface {
	List(ctx context.Context) ([]goals.Goal, error)
}

type settingsStore interface {
	All(ctx context.Context) (map[string]string, error)
}

type supplementsStore interface {
	List(ctx context.Context) ([]supplements.Supplement, error)
	TakenOn(ctx context.Context, date string) ([]int, error)
}

// Service assembles the dashboard snapshot out of the domain stores.
type Service struct {
	workouts    workoutsStore
	nutrition   nutritionStore
	water       waterStore
	metrics     metricsStore
	goals       goalsStore
	settings    settingsStore
	supplements supplementsStore

	now func() time.Time
}

func NewService(
	workouts workoutsStore,
	nutrition nutritionStore,
	water waterStore,
	metrics metricsStore,
	goals goalsStore,
	settings settingsStore,
	supplements supplementsStore,
) *Service {
	return &Service{
		workouts:    workouts,
		nutrition:   nutrition,
		water:       water,
		metrics:     metrics,
		goals:       goals,
		settings:    settings,
		supplements: supplements,
		now:         time.Now,
	}
}

// Get builds the full dashboard payload for the current moment. Week
// stats cover the trailing seven days, the workout calendar covers the
// current Monday-based week.
func (s *Service) Get(ctx context.Context) (*Data, error) {
	now := s.now()
	today := clock.TodayAt(now)
	weekAgo := now.In(clock.Eastern).AddDate(0, 0, -7).Format(clock.DateFormat)
	weekStart := clock.MondayOfWeekAt(now)

	data := &Data{
		Today:            TodaySnapshot{Date: today},
		Goals:            []goals.Goal{},
		WeekWorkoutDates: []string{},
	}

	todayWorkouts, err := s.workouts.GetByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("get today workout: %w", err)
	}
	if len(todayWorkouts) > 0 {
		data.Today.Workout = &todayWorkouts[0]
	}

	summary, _, err := s.nutrition.GetDay(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("get today nutrition: %w", err)
	}
	data.Today.Nutrition = summary

	data.Today.Water, err = s.water.DayTotal(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("get today water: %w", err)
	}

	weekWorkouts, err := s.workouts.GetRange(ctx, weekAgo, today)
	if err != nil {
		return nil, fmt.Errorf("get week workouts: %w", err)
	}
	data.Week.WorkoutsCompleted = len(weekWorkouts)

	summaries, err := s.nutrition.GetSummaries(ctx, weekAgo, today)
	if err != nil {
		return nil, fmt.Errorf("get week nutrition: %w", err)
	}
	data.Week.AvgProtein = averageProtein(summaries)

	recent, err := s.metrics.GetRecent(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("get latest metrics: %w", err)
	}
	if len(recent) > 0 {
		data.Metrics.Current = &recent[0]
	}
	data.Metrics.Starting, err = s.metrics.GetEarliest(ctx)
	if err != nil {
		return nil, fmt.Errorf("get starting metrics: %w", err)
	}

	allGoals, err := s.goals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get goals: %w", err)
	}
	for _, goal := range allGoals {
		if goal.Achieved {
			continue
		}
		data.Goals = append(data.Goals, goal)
		if len(data.Goals) == openGoalsLimit {
			break
		}
	}

	data.Settings, err = s.settings.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	calendarWorkouts, err := s.workouts.GetRange(ctx, weekStart, today)
	if err != nil {
		return nil, fmt.Errorf("get calendar workouts: %w", err)
	}
	for _, w := range calendarWorkouts {
		data.WeekWorkoutDates = append(data.WeekWorkoutDates, w.Date)
	}

	allSupplements, err := s.supplements.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get supplements: %w", err)
	}
	for _, sup := range allSupplements {
		if sup.Active {
			data.Supplements.Total++
		}
	}
	taken, err := s.supplements.TakenOn(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("get supplements checklist: %w", err)
	}
	data.Supplements.Taken = len(taken)

	return data, nil
}

func averageProtein(summaries []nutrition.DailySummary) int {
	if len(summaries) == 0 {
		return 0
	}
	var total float64
	for _, s := range summaries {
		total += s.Protein
	}
	return int(math.Round(total / float64(len(summaries))))
}
