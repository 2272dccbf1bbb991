package water

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/realjbmangum/clarkstark/internal/clock"
	"github.com/realjbmangum/clarkstark/internal/telemetry/metrics"
	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"
	"github.com/realjbmangum/clarkstark/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=water_test

const (
	defaultAmountLiters = 0.5
	defaultTargetLiters = 3.0
)

type waterRepo interface {
	Add(ctx context.Context, date string, amountLiters float64) (float64, error)
	DayTotal(ctx context.Context, date string) (float64, error)
	Entries(ctx context.Context, date string) ([]Entry, error)
}

type settingsStore interface {
	Get(ctx context.Context, key string) (string, error)
}

type Handler struct {
	repo     waterRepo
	settings settingsStore
	metrics  *metrics.Manager
}

func NewHandler(repo waterRepo, settings settingsStore, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:     repo,
		settings: settings,
		metrics:  metricsManager,
	}
}

// HandleGet serves the day's intake: total, target from settings, entries
// and the rounded percentage of target reached.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.get")
	defer span.End()

	date := r.URL.Query().Get("date")
	if date == "" {
		date = clock.Today()
	} else if _, err := clock.ParseDate(date); err != nil {
		http.Error(w, "error, date invalid: expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	total, err := h.repo.DayTotal(ctx, date)
	if err != nil {
		log.Errorf("get water total for %s: %s", date, err)
		http.Error(w, "failed to get water intake", http.StatusInternalServerError)
		return
	}

	entries, err := h.repo.Entries(ctx, date)
	if err != nil {
		log.Errorf("get water entries for %s: %s", date, err)
		http.Error(w, "failed to get water intake", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	target := h.target(ctx)

	respJson, err := json.Marshal(DayIntake{
		Date:     date,
		Total:    total,
		Target:   target,
		Entries:  entries,
		Progress: int(math.Round(total / target * 100)),
	})
	if err != nil {
		log.Errorf("marshal water intake: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", respJson)
}

type addWaterRequest struct {
	Date         string   `json:"date"`
	AmountLiters *float64 `json:"amount_liters"`
	Amount       *float64 `json:"amount"`
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.add")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var req addWaterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add water, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Date == "" {
		req.Date = clock.Today()
	} else if _, err := clock.ParseDate(req.Date); err != nil {
		http.Error(w, "error, date invalid: expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	// one glass when no amount given
	amount := defaultAmountLiters
	switch {
	case req.AmountLiters != nil:
		amount = *req.AmountLiters
	case req.Amount != nil:
		amount = *req.Amount
	}
	if amount <= 0 {
		http.Error(w, "error, amount must be positive", http.StatusBadRequest)
		return
	}

	total, err := h.repo.Add(ctx, req.Date, amount)
	if err != nil {
		log.Errorf("add water: %s", err)
		http.Error(w, "failed to log water", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterWaterLogged.Inc()

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"success":true,"total":%s}`,
		strconv.FormatFloat(total, 'f', -1, 64)))
}

func (h *Handler) target(ctx context.Context) float64 {
	val, err := h.settings.Get(ctx, "water_target_liters")
	if err != nil {
		return defaultTargetLiters
	}
	target, err := strconv.ParseFloat(val, 64)
	if err != nil || target <= 0 {
		log.Warnf("invalid water_target_liters setting %q, using default", val)
		return defaultTargetLiters
	}
	return target
}
