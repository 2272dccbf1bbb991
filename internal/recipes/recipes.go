package recipes

// Recipe is a recipes row. Ingredients and instructions are stored as JSON
// arrays of strings.
type Recipe struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Category     *string  `json:"category"`
	PrepTime     *int     `json:"prep_time"`
	CookTime     *int     `json:"cook_time"`
	Servings     *int     `json:"servings"`
	Calories     *float64 `json:"calories"`
	Protein      *float64 `json:"protein"`
	Carbs        *float64 `json:"carbs"`
	Fat          *float64 `json:"fat"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Notes        *string  `json:"notes"`
	Favorite     bool     `json:"favorite"`
}

// ListFilter narrows a recipe listing. Zero value means everything.
type ListFilter struct {
	Category      string
	FavoritesOnly bool
}
