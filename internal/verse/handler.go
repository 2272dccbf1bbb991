package verse

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/realjbmangum/clarkstark/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=verse_test

const defaultWorkoutType = "upper_strength"

type verseService interface {
	VerseOfTheDay(ctx context.Context, workoutType string) *DailyVerse
}

type Handler struct {
	service verseService
}

func NewHandler(service verseService) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	workoutType := r.URL.Query().Get("workout_type")
	if workoutType == "" {
		workoutType = defaultWorkoutType
	}

	daily := handler.service.VerseOfTheDay(r.Context(), workoutType)

	dailyBytes, err := json.Marshal(daily)
	if err != nil {
		log.Errorf("marshal daily verse: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(dailyBytes))
}
