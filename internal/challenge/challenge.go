package challenge

// AggregateKind tells the progress calculation which weekly aggregate backs
// a challenge.
type AggregateKind string

const (
	AggregateWorkoutCount        AggregateKind = "workout_count"
	AggregateProteinDays         AggregateKind = "protein_days"
	AggregateWaterDays           AggregateKind = "water_days"
	AggregateWeekdayWorkoutCount AggregateKind = "weekday_workouts"
)

// Definition is a static challenge in the weekly rotation.
type Definition struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Target int           `json:"target"`
	Unit   string        `json:"unit"`
	Kind   AggregateKind `json:"-"`
}

// Progress is the weekly progress against the active challenge.
type Progress struct {
	Definition
	Progress  int    `json:"progress"`
	Completed bool   `json:"completed"`
	WeekStart string `json:"week_start"`
}

// rotation is the fixed ordered list of weekly challenges. Selection is by
// week number modulo its length, so the order matters.
var rotation = []Definition{
	{
		ID:     "workouts_4",
		Title:  "Complete 4 workouts this week",
		Target: 4,
		Unit:   "workouts",
		Kind:   AggregateWorkoutCount,
	},
	{
		ID:     "workouts_5",
		Title:  "Complete 5 workouts this week",
		Target: 5,
		Unit:   "workouts",
		Kind:   AggregateWorkoutCount,
	},
	{
		ID:     "protein_5",
		Title:  "Hit protein target 5 days",
		Target: 5,
		Unit:   "days",
		Kind:   AggregateProteinDays,
	},
	{
		ID:     "water_6",
		Title:  "Hit water goal 6 days",
		Target: 6,
		Unit:   "days",
		Kind:   AggregateWaterDays,
	},
	{
		ID:     "weekday_all",
		Title:  "Train every weekday (Mon-Fri)",
		Target: 5,
		Unit:   "workouts",
		Kind:   AggregateWeekdayWorkoutCount,
	},
}
