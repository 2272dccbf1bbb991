package verse

// Verse is one scripture entry from the curated rotation.
type Verse struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
	Theme     string `json:"theme"`
}

// Category groups verses by training theme and maps workout types onto
// them. An empty WorkoutTypes list marks the general fallback category.
type Category struct {
	Name         string
	WorkoutTypes []string
	Verses       []Verse
}

// DailyVerse is what the endpoint serves. Source is one of "cache",
// "curated" or "api-nlt".
type DailyVerse struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
	Category  string `json:"category"`
	Source    string `json:"source"`
}
