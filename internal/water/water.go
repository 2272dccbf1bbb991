package water

import "time"

// Entry is one logged drink, a water_log row.
type Entry struct {
	ID       int       `json:"id"`
	Amount   float64   `json:"amount"`
	LoggedAt time.Time `json:"time"`
}

// DayIntake is the water report for one date.
type DayIntake struct {
	Date     string  `json:"date"`
	Total    float64 `json:"total"`
	Target   float64 `json:"target"`
	Entries  []Entry `json:"entries"`
	Progress int     `json:"progress"`
}
