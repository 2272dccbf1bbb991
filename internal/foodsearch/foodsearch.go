package foodsearch

// Food is the simplified nutrition view served to the client, per 100g
// unless the entry says otherwise.
type Food struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       *string `json:"brand"`
	ServingSize string  `json:"servingSize"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	Sodium      float64 `json:"sodium"`
}
