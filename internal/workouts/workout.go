package workouts

import "time"

// Workout is a single workout_log row, optionally with its exercise sets
// attached.
type Workout struct {
	ID              int           `json:"id"`
	Date            string        `json:"date"`
	TemplateID      *string       `json:"template_id"`
	WorkoutName     string        `json:"workout_name"`
	DurationMinutes *int          `json:"duration_minutes"`
	Notes           *string       `json:"notes"`
	EnergyLevel     *int          `json:"energy_level"`
	Completed       bool          `json:"completed"`
	CreatedAt       time.Time     `json:"created_at"`
	Exercises       []ExerciseSet `json:"exercises,omitempty"`
}

// ExerciseSet is one logged set within a workout.
type ExerciseSet struct {
	ID           int     `json:"id"`
	WorkoutLogID int     `json:"workout_log_id,omitempty"`
	ExerciseName string  `json:"exercise_name"`
	SetNumber    int     `json:"set_number"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
	Notes        *string `json:"notes"`
}
