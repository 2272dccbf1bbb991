package plans

import (
	"encoding/json"
	"net/http"

	"github.com/realjbmangum/clarkstark/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleWorkouts serves the workout templates. With ?id= it returns one
// template, with ?today=true the one scheduled for today, otherwise all
// of them plus the weekly schedule.
func (handler *Handler) HandleWorkouts(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		template, ok := handler.service.Template(id)
		if !ok {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}
		writeJSON(w, map[string]any{"workout": template})
		return
	}

	if r.URL.Query().Get("today") == "true" {
		writeJSON(w, map[string]any{"workout": handler.service.TodayTemplate()})
		return
	}

	writeJSON(w, map[string]any{
		"workouts": handler.service.Templates(),
		"schedule": handler.service.Schedule(),
	})
}

func (handler *Handler) HandleMealPlan(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, handler.service.MealPlan())
}

// HandlePlaylists serves the playlist rotation. ?genre= filters, and
// ?pick=daily returns just the playlist of the day.
func (handler *Handler) HandlePlaylists(w http.ResponseWriter, r *http.Request) {
	genre := r.URL.Query().Get("genre")

	if r.URL.Query().Get("pick") == "daily" {
		writeJSON(w, map[string]any{"playlist": handler.service.PlaylistOfTheDay(genre)})
		return
	}

	writeJSON(w, map[string]any{
		"playlists": handler.service.Playlists(genre),
		"genres":    handler.service.Genres(),
	})
}

func writeJSON(w http.ResponseWriter, payload any) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal plans payload: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(payloadBytes))
}
