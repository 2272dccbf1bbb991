package goals

import "time"

// Goal is a goals row: a target value (weight, lift, habit) with optional
// deadline and running progress.
type Goal struct {
	ID           int       `json:"id"`
	Type         string    `json:"type"`
	TargetValue  float64   `json:"target_value"`
	TargetDate   *string   `json:"target_date"`
	CurrentValue *float64  `json:"current_value"`
	Unit         *string   `json:"unit"`
	Description  *string   `json:"description"`
	Achieved     bool      `json:"achieved"`
	CreatedAt    time.Time `json:"created_at"`
}
