package plans

// Exercise is one prescribed movement inside a workout template.
type Exercise struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Sets  int    `json:"sets"`
	Reps  string `json:"reps"`
	Tempo string `json:"tempo,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type Warmup struct {
	Cardio   string   `json:"cardio"`
	Mobility []string `json:"mobility"`
}

type Finisher struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// WorkoutTemplate is a full prescribed session. Templates are static
// reference data, the workout log stores what actually happened.
type WorkoutTemplate struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	Focus               string     `json:"focus"`
	Duration            string     `json:"duration"`
	Warmup              Warmup     `json:"warmup"`
	Exercises           []Exercise `json:"exercises"`
	Core                []Exercise `json:"core"`
	Finisher            *Finisher  `json:"finisher,omitempty"`
	CircuitInstructions string     `json:"circuitInstructions,omitempty"`
}

type DailyTargets struct {
	Protein      int     `json:"protein"`
	CaloriesMin  int     `json:"caloriesMin"`
	CaloriesMax  int     `json:"caloriesMax"`
	WaterGallons float64 `json:"waterGallons"`
}

type PrepTask struct {
	ID            string `json:"id"`
	Task          string `json:"task"`
	Category      string `json:"category"`
	EstimatedTime string `json:"estimatedTime"`
}

type MealContainer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Contents string `json:"contents"`
	Protein  int    `json:"protein"`
	Calories int    `json:"calories"`
}

type ShoppingItem struct {
	Item     string `json:"item"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

// MealPlan bundles the weekly prep reference data.
type MealPlan struct {
	Targets      DailyTargets    `json:"targets"`
	PrepTasks    []PrepTask      `json:"prepTasks"`
	Containers   []MealContainer `json:"containers"`
	ShoppingList []ShoppingItem  `json:"shoppingList"`
}

type Playlist struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Creator    string `json:"creator"`
	Genre      string `json:"genre"`
	SpotifyURL string `json:"spotifyUrl"`
	Vibe       string `json:"vibe"`
}
