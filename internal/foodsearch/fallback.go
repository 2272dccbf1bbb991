package foodsearch

import "strings"

type fallbackEntry struct {
	name     string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
	fiber    float64
}

// Local database of common carnivore/high-protein foods, served when the
// USDA API is down or rate limited.
var fallbackFoods = map[string]fallbackEntry{
	"ribeye":         {name: "Ribeye Steak", calories: 291, protein: 24, carbs: 0, fat: 21},
	"steak":          {name: "Beef Steak", calories: 271, protein: 26, carbs: 0, fat: 18},
	"ground beef":    {name: "Ground Beef (85% lean)", calories: 250, protein: 26, carbs: 0, fat: 17},
	"chicken breast": {name: "Chicken Breast", calories: 165, protein: 31, carbs: 0, fat: 4},
	"chicken thigh":  {name: "Chicken Thigh", calories: 209, protein: 26, carbs: 0, fat: 11},
	"salmon":         {name: "Atlantic Salmon", calories: 208, protein: 20, carbs: 0, fat: 13},
	"eggs":           {name: "Whole Eggs (2)", calories: 156, protein: 12, carbs: 1, fat: 11},
	"egg":            {name: "Whole Egg (1 large)", calories: 78, protein: 6, carbs: 0.6, fat: 5},
	"bacon":          {name: "Bacon (4 strips)", calories: 180, protein: 10, carbs: 1, fat: 14},
	"pork chop":      {name: "Pork Chop", calories: 231, protein: 25, carbs: 0, fat: 14},
	"burger":         {name: "Beef Burger Patty", calories: 300, protein: 25, carbs: 0, fat: 20},
	"greek yogurt":   {name: "Greek Yogurt", calories: 97, protein: 17, carbs: 6, fat: 1},
	"cottage cheese": {name: "Cottage Cheese", calories: 98, protein: 11, carbs: 3, fat: 4},
	"protein shake":  {name: "Whey Protein Shake", calories: 150, protein: 25, carbs: 3, fat: 2},
	"cashews":        {name: "Cashews (1 oz)", calories: 157, protein: 5, carbs: 9, fat: 12, fiber: 1},
	"peanuts":        {name: "Peanuts (1 oz)", calories: 161, protein: 7, carbs: 5, fat: 14, fiber: 2},
	"almonds":        {name: "Almonds (1 oz)", calories: 164, protein: 6, carbs: 6, fat: 14, fiber: 4},
}

// FallbackFoods matches the query against the local database. When
// nothing matches it returns the top carnivore staples so the client
// never renders an empty list.
func FallbackFoods(query string) []Food {
	q := strings.ToLower(query)

	var results []Food
	for key, entry := range fallbackFoods {
		if strings.Contains(q, key) || strings.Contains(key, q) {
			results = append(results, Food{
				ID:          key,
				Name:        entry.name,
				ServingSize: "100g",
				Calories:    entry.calories,
				Protein:     entry.protein,
				Carbs:       entry.carbs,
				Fat:         entry.fat,
				Fiber:       entry.fiber,
			})
		}
	}

	if len(results) == 0 {
		return []Food{
			{ID: "ribeye", Name: "Ribeye Steak", ServingSize: "100g", Calories: 291, Protein: 24, Fat: 21},
			{ID: "ground_beef", Name: "Ground Beef", ServingSize: "100g", Calories: 250, Protein: 26, Fat: 17},
			{ID: "chicken", Name: "Chicken Breast", ServingSize: "100g", Calories: 165, Protein: 31, Fat: 4},
		}
	}
	return results
}
