package dashboard

import (
	"github.com/realjbmangum/clarkstark/internal/bodymetrics"
	"github.com/realjbmangum/clarkstark/internal/goals"
	"github.com/realjbmangum/clarkstark/internal/nutrition"
	"github.com/realjbmangum/clarkstark/internal/workouts"
)

// Data is the aggregate snapshot served to the dashboard page. It is
// assembled from the other domain tables in a single request so the
// client does not have to fan out a dozen calls on load.
type Data struct {
	Today            TodaySnapshot       `json:"today"`
	Week             WeekStats           `json:"week"`
	Metrics          MetricsPair         `json:"metrics"`
	Goals            []goals.Goal        `json:"goals"`
	Settings         map[string]string   `json:"settings"`
	WeekWorkoutDates []string            `json:"weekWorkoutDates"`
	Supplements      SupplementsProgress `json:"supplements"`
}

type TodaySnapshot struct {
	Date      string                  `json:"date"`
	Workout   *workouts.Workout       `json:"workout"`
	Nutrition *nutrition.DailySummary `json:"nutrition"`
	Water     float64                 `json:"water"`
}

type WeekStats struct {
	WorkoutsCompleted int `json:"workoutsCompleted"`
	AvgProtein        int `json:"avgProtein"`
}

// MetricsPair carries the newest and the oldest body metrics entry so
// the client can render progress since the start of tracking.
type MetricsPair struct {
	Current  *bodymetrics.Metric `json:"current"`
	Starting *bodymetrics.Metric `json:"starting"`
}

type SupplementsProgress struct {
	Taken int `json:"taken"`
	Total int `json:"total"`
}
