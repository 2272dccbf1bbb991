package bodymetrics

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/realjbmangum/clarkstark/internal/clock"
	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"
	"github.com/realjbmangum/clarkstark/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=bodymetrics_test

const (
	defaultRecentLimit   = 30
	defaultHeightInches  = 70.0
	heightInchesSettings = "height_inches"
)

type metricsRepo interface {
	Upsert(ctx context.Context, metric *Metric) error
	GetByDate(ctx context.Context, date string) (*Metric, error)
	GetRecent(ctx context.Context, limit int) ([]Metric, error)
}

type settingsStore interface {
	Get(ctx context.Context, key string) (string, error)
}

type Handler struct {
	repo     metricsRepo
	settings settingsStore
}

func NewHandler(repo metricsRepo, settings settingsStore) *Handler {
	return &Handler{
		repo:     repo,
		settings: settings,
	}
}

// HandleGet serves one date's metric (?date=) or the recent entries
// (?limit=, default 30).
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodymetrics.get")
	defer span.End()

	query := r.URL.Query()

	if date := query.Get("date"); date != "" {
		if _, err := clock.ParseDate(date); err != nil {
			http.Error(w, "error, date invalid: expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		metric, err := h.repo.GetByDate(ctx, date)
		if err != nil {
			log.Errorf("get body metric for %s: %s", date, err)
			http.Error(w, "failed to get metrics", http.StatusInternalServerError)
			return
		}
		respJson, err := json.Marshal(map[string]*Metric{"metric": metric})
		if err != nil {
			log.Errorf("marshal body metric: %s", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		pkg.WriteResponseBytes(w, "application/json", respJson)
		return
	}

	limit := defaultRecentLimit
	if limitParam := query.Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed <= 0 {
			http.Error(w, "error, limit invalid", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	metrics, err := h.repo.GetRecent(ctx, limit)
	if err != nil {
		log.Errorf("get recent body metrics: %s", err)
		http.Error(w, "failed to get metrics", http.StatusInternalServerError)
		return
	}
	if metrics == nil {
		metrics = []Metric{}
	}
	respJson, err := json.Marshal(map[string][]Metric{"metrics": metrics})
	if err != nil {
		log.Errorf("marshal body metrics: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", respJson)
}

type logMetricRequest struct {
	Date   string   `json:"date"`
	Weight *float64 `json:"weight"`
	Waist  *float64 `json:"waist"`
	Chest  *float64 `json:"chest"`
	Arms   *float64 `json:"arms"`
	Thighs *float64 `json:"thighs"`
	Neck   *float64 `json:"neck"`
	Notes  *string  `json:"notes"`
}

// HandleLog upserts the day's measurements. When waist and neck are both
// present the body fat estimate is computed and stored alongside them.
func (h *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodymetrics.log")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var req logMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("log body metric, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Date == "" {
		req.Date = clock.Today()
	} else if _, err := clock.ParseDate(req.Date); err != nil {
		http.Error(w, "error, date invalid: expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	var bodyFat *float64
	if req.Waist != nil && req.Neck != nil {
		if *req.Waist <= *req.Neck {
			http.Error(w, "error, waist must be greater than neck", http.StatusBadRequest)
			return
		}
		bf := NavyBodyFat(*req.Waist, *req.Neck, h.heightInches(ctx))
		bodyFat = &bf
	}

	err := h.repo.Upsert(ctx, &Metric{
		Date:    req.Date,
		Weight:  req.Weight,
		Waist:   req.Waist,
		Chest:   req.Chest,
		Arms:    req.Arms,
		Thighs:  req.Thighs,
		Neck:    req.Neck,
		BodyFat: bodyFat,
		Notes:   req.Notes,
	})
	if err != nil {
		log.Errorf("log body metric: %s", err)
		http.Error(w, "failed to save metrics", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(map[string]any{
		"success":  true,
		"body_fat": bodyFat,
	})
	if err != nil {
		log.Errorf("marshal log metric response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", respJson)
}

func (h *Handler) heightInches(ctx context.Context) float64 {
	val, err := h.settings.Get(ctx, heightInchesSettings)
	if err != nil {
		return defaultHeightInches
	}
	height, err := strconv.ParseFloat(val, 64)
	if err != nil || height <= 0 {
		log.Warnf("invalid height_inches setting %q, using default", val)
		return defaultHeightInches
	}
	return height
}
