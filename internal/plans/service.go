package plans

import (
	"sort"
	"strings"
	"time"

	"github.com/realjbmangum/clarkstark/internal/clock"
)

// Service serves the static training reference data. Everything here is
// compiled in, there is no store behind it.
type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// Template returns one workout template by id.
func (s *Service) Template(id string) (WorkoutTemplate, bool) {
	template, ok := workoutTemplates[id]
	return template, ok
}

// Templates returns all workout templates ordered by id.
func (s *Service) Templates() []WorkoutTemplate {
	templates := make([]WorkoutTemplate, 0, len(workoutTemplates))
	for _, t := range workoutTemplates {
		templates = append(templates, t)
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].ID < templates[j].ID
	})
	return templates
}

// Schedule returns the weekday to template id mapping.
func (s *Service) Schedule() map[string]string {
	return weeklySchedule
}

// TodayTemplate returns the template scheduled for the current Eastern
// weekday, falling back to the rest day.
func (s *Service) TodayTemplate() WorkoutTemplate {
	day := strings.ToLower(s.now().In(clock.Eastern).Weekday().String())
	id, ok := weeklySchedule[day]
	if !ok {
		id = "rest_day"
	}
	return workoutTemplates[id]
}

// MealPlan returns the weekly meal prep reference data.
func (s *Service) MealPlan() MealPlan {
	return mealPlan
}

// Genres returns the playlist genres available for filtering.
func (s *Service) Genres() []string {
	return playlistGenres
}

// Playlists returns all playlists, or only those of one genre when it is
// non-empty. Unknown genres yield an empty slice.
func (s *Service) Playlists(genre string) []Playlist {
	if genre == "" {
		return playlists
	}
	filtered := []Playlist{}
	for _, p := range playlists {
		if p.Genre == genre {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// PlaylistOfTheDay picks one playlist for the current Eastern date,
// optionally restricted to a genre. The pick is stable within a day and
// walks the rotation day by day.
func (s *Service) PlaylistOfTheDay(genre string) Playlist {
	candidates := s.Playlists(genre)
	if len(candidates) == 0 {
		candidates = playlists
	}
	now := s.now().In(clock.Eastern)
	ordinal := now.Year()*366 + now.YearDay()
	return candidates[ordinal%len(candidates)]
}
