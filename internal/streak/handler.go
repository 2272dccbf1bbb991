package streak

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/realjbmangum/clarkstark/internal/clock"
	"github.com/realjbmangum/clarkstark/internal/telemetry/metrics"
	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"
	"github.com/realjbmangum/clarkstark/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=streak_test

type streakService interface {
	Get(ctx context.Context) (*Info, error)
	RecordEvent(ctx context.Context, date string) (*Streak, error)
}

type Handler struct {
	service streakService
	metrics *metrics.Manager
}

func NewHandler(service streakService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.streak.get")
	defer span.End()

	info, err := h.service.Get(ctx)
	if err != nil {
		log.Errorf("get streak: %s", err)
		http.Error(w, "failed to get streak", http.StatusInternalServerError)
		return
	}

	if info.IsBroken {
		h.metrics.CounterStreaksBroken.Inc()
	}

	infoJson, err := json.Marshal(info)
	if err != nil {
		log.Errorf("marshal streak info: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", infoJson)
}

type recordEventRequest struct {
	Date string `json:"date"`
}

func (h *Handler) HandleRecordEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.streak.recordevent")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	// an empty body is fine, the date then defaults to today
	var req recordEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Tracef("record streak event, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Date != "" {
		if _, err := clock.ParseDate(req.Date); err != nil {
			http.Error(w, "error, date invalid: expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	updated, err := h.service.RecordEvent(ctx, req.Date)
	if err != nil {
		log.Errorf("record streak event: %s", err)
		http.Error(w, "failed to update streak", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterStreakEvents.Inc()

	lastWorkoutDate := ""
	if updated.LastWorkoutDate != nil {
		lastWorkoutDate = *updated.LastWorkoutDate
	}
	respJson, err := json.Marshal(RecordEventResponse{
		Success:         true,
		CurrentStreak:   updated.CurrentStreak,
		LongestStreak:   updated.LongestStreak,
		LastWorkoutDate: lastWorkoutDate,
	})
	if err != nil {
		log.Errorf("marshal record event response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", respJson)
}
