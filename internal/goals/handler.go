package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/realjbmangum/clarkstark/internal/clock"
	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"
	"github.com/realjbmangum/clarkstark/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=goals_test

type goalsRepo interface {
	List(ctx context.Context) ([]Goal, error)
	Add(ctx context.Context, goal *Goal) (int, error)
	Update(ctx context.Context, goal *Goal) error
	UpdateProgress(ctx context.Context, id int, currentValue float64) error
	MarkAchieved(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

type Handler struct {
	repo goalsRepo
}

func NewHandler(repo goalsRepo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	goals, err := h.repo.List(ctx)
	if err != nil {
		log.Errorf("list goals: %s", err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	if goals == nil {
		goals = []Goal{}
	}
	respJson, err := json.Marshal(map[string][]Goal{"goals": goals})
	if err != nil {
		log.Errorf("marshal goals: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", respJson)
}

type goalActionRequest struct {
	Action       string   `json:"action"`
	ID           int      `json:"id"`
	Type         string   `json:"type"`
	TargetValue  float64  `json:"target_value"`
	TargetDate   *string  `json:"target_date"`
	CurrentValue *float64 `json:"current_value"`
	Unit         *string  `json:"unit"`
	Description  *string  `json:"description"`
}

// HandleAction dispatches the action-style goal writes: create, update,
// update_progress, achieve and delete.
func (h *Handler) HandleAction(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.action")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var req goalActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("goal action, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.TargetDate != nil && *req.TargetDate != "" {
		if _, err := clock.ParseDate(*req.TargetDate); err != nil {
			http.Error(w, "error, target_date invalid: expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	var err error
	switch req.Action {
	case "create":
		if req.Type == "" {
			http.Error(w, "error, type empty", http.StatusBadRequest)
			return
		}
		_, err = h.repo.Add(ctx, &Goal{
			Type:         req.Type,
			TargetValue:  req.TargetValue,
			TargetDate:   req.TargetDate,
			CurrentValue: req.CurrentValue,
			Unit:         req.Unit,
			Description:  req.Description,
		})
	case "update":
		err = h.repo.Update(ctx, &Goal{
			ID:           req.ID,
			Type:         req.Type,
			TargetValue:  req.TargetValue,
			TargetDate:   req.TargetDate,
			CurrentValue: req.CurrentValue,
			Unit:         req.Unit,
			Description:  req.Description,
		})
	case "update_progress":
		if req.CurrentValue == nil {
			http.Error(w, "error, current_value missing", http.StatusBadRequest)
			return
		}
		err = h.repo.UpdateProgress(ctx, req.ID, *req.CurrentValue)
	case "achieve":
		err = h.repo.MarkAchieved(ctx, req.ID)
	case "delete":
		err = h.repo.Delete(ctx, req.ID)
	default:
		http.Error(w, "error, unknown action", http.StatusBadRequest)
		return
	}

	if errors.Is(err, ErrGoalNotFound) {
		http.Error(w, "goal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("goal action %s: %s", req.Action, err)
		http.Error(w, "failed to process request", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"success":true}`)
}
