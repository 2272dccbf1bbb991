package supplements

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=supplements_test

type supplementsRepo interface {
	List(ctx context.Context) ([]Supplement, error)
	Add(ctx context.Context, s *Supplement) (int, error)
	Update(ctx context.Context, s *Supplement) error
	Delete(ctx context.Context, id int) error
	TakenOn(ctx context.Context, date string) ([]int, error)
	SetTaken(ctx context.Context, date string, supplementID int, taken bool) error
}

type Handler struct {
	repo supplementsRepo
}

func NewHandler(repo supplementsRepo) *Handler {
	return &Handler{repo: repo}
}

// HandleGet serves the supplement stack, plus which ones were taken on the
// given date when ?date= is present.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.supplements.get")
	defer span.End()

	supplements, err := h.repo.List(ctx)
	if err != nil {
		log.Errorf("list supplements: %s", err)
		http.Error(w, "failed to get supplements", http.StatusInternalServerError)
		return
	}
	if supplements == nil {
		supplements = []Supplement{}
	}

	taken := []int{}
	if date := r.URL.Query().Get("date"); date != "" {
		if _, err := clock.ParseDate(date); err != nil {
			http.Error(w, "error, date invalid: expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		taken, err = h.repo.TakenOn(ctx, date)
		if err != nil {
			log.Errorf("get taken supplements for %s: %s", date, err)
			http.Error(w, "failed to get supplements", http.StatusInternalServerError)
			return
		}
	}

	respJson, err := json.Marshal(map[string]any{
		"supplements": supplements,
		"taken":       taken,
	})
	if err != nil {
		log.Errorf("marshal supplements: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", respJson)
}

type supplementActionRequest struct {
	Action       string  `json:"action"`
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Dosage       *string `json:"dosage"`
	Timing       *string `json:"timing"`
	Notes        *string `json:"notes"`
	Active       bool    `json:"active"`
	Date         string  `json:"date"`
	SupplementID int     `json:"supplement_id"`
	Taken        bool    `json:"taken"`
}

// HandleAction dispatches supplement writes: create, update, delete, and
// the daily checklist log action.
func (h *Handler) HandleAction(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.supplements.action")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var req supplementActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("supplement action, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var err error
	switch req.Action {
	case "create":
		if req.Name == "" {
			http.Error(w, "error, name empty", http.StatusBadRequest)
			return
		}
		_, err = h.repo.Add(ctx, &Supplement{
			Name:   req.Name,
			Dosage: req.Dosage,
			Timing: req.Timing,
			Notes:  req.Notes,
			Active: req.Active,
		})
	case "update":
		err = h.repo.Update(ctx, &Supplement{
			ID:     req.ID,
			Name:   req.Name,
			Dosage: req.Dosage,
			Timing: req.Timing,
			Notes:  req.Notes,
			Active: req.Active,
		})
	case "delete":
		err = h.repo.Delete(ctx, req.ID)
	case "log":
		if req.Date == "" {
			req.Date = clock.Today()
		} else if _, parseErr := clock.ParseDate(req.Date); parseErr != nil {
			http.Error(w, "error, date invalid: expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		err = h.repo.SetTaken(ctx, req.Date, req.SupplementID, req.Taken)
	default:
		http.Error(w, "error, invalid action", http.StatusBadRequest)
		return
	}

	if errors.Is(err, ErrSupplementNotFound) {
		http.Error(w, "supplement not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("supplement action %s: %s", req.Action, err)
		http.Error(w, "failed to process request", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"success":true}`)
}
