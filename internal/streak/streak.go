package streak

import "time"

// Streak is the single persisted streak record (DB row with id = 1).
// LastWorkoutDate is a civil date string (YYYY-MM-DD), nil when no workout
// was ever recorded.
type Streak struct {
	CurrentStreak   int       `json:"current_streak"`
	LongestStreak   int       `json:"longest_streak"`
	LastWorkoutDate *string   `json:"last_workout_date"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Info is what a streak read reports: the current values, plus whether this
// read detected (and persisted) a break.
type Info struct {
	CurrentStreak   int     `json:"current_streak"`
	LongestStreak   int     `json:"longest_streak"`
	LastWorkoutDate *string `json:"last_workout_date"`
	IsBroken        bool    `json:"is_broken"`
}

type RecordEventResponse struct {
	Success         bool   `json:"success"`
	CurrentStreak   int    `json:"current_streak"`
	LongestStreak   int    `json:"longest_streak"`
	LastWorkoutDate string `json:"last_workout_date"`
}
