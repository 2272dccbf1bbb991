package bodymetrics

import "math"

// Metric is a body_metrics row, one per date.
type Metric struct {
	ID      int      `json:"id"`
	Date    string   `json:"date"`
	Weight  *float64 `json:"weight"`
	Waist   *float64 `json:"waist"`
	Chest   *float64 `json:"chest"`
	Arms    *float64 `json:"arms"`
	Thighs  *float64 `json:"thighs"`
	Neck    *float64 `json:"neck"`
	BodyFat *float64 `json:"body_fat"`
	Notes   *string  `json:"notes"`
}

// NavyBodyFat estimates body fat percentage from waist, neck and height in
// inches (US Navy circumference method for men), rounded to one decimal.
func NavyBodyFat(waist, neck, heightInches float64) float64 {
	bodyFat := 86.010*math.Log10(waist-neck) - 70.041*math.Log10(heightInches) + 36.76
	return math.Round(bodyFat*10) / 10
}
