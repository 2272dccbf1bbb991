package nutrition

// Meal is a single meals row, one logged meal.
type Meal struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`
	MealType    string  `json:"meal_type"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

// DailySummary is a nutrition_log row, the per-day macro totals. Meal logs
// add into it, daily logs replace it.
type DailySummary struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Notes    *string `json:"notes"`
}
