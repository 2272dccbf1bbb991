package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/realjbmangum/clarkstark/internal/clock"
	"github.com/realjbmangum/clarkstark/internal/telemetry/metrics"
	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"
	"github.com/realjbmangum/clarkstark/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

const recentSummariesLimit = 7

type nutritionRepo interface {
	AddMeal(ctx context.Context, meal *Meal) error
	SetDailySummary(ctx context.Context, summary *DailySummary) error
	GetDay(ctx context.Context, date string) (*DailySummary, []Meal, error)
	GetSummaries(ctx context.Context, start, end string) ([]DailySummary, error)
	GetRecentSummaries(ctx context.Context, limit int) ([]DailySummary, error)
}

type Handler struct {
	repo    nutritionRepo
	metrics *metrics.Manager
}

func NewHandler(repo nutritionRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

// HandleGet serves the nutrition log: one day's summary plus meals (?date=),
// a range of daily summaries (?start=&end=), or the last 7 days when no
// filter is given.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.get")
	defer span.End()

	query := r.URL.Query()
	date := query.Get("date")
	start := query.Get("start")
	end := query.Get("end")

	if date != "" {
		if _, err := clock.ParseDate(date); err != nil {
			http.Error(w, "error, date invalid: expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		summary, meals, err := h.repo.GetDay(ctx, date)
		if err != nil {
			log.Errorf("get nutrition for %s: %s", date, err)
			http.Error(w, "failed to get nutrition", http.StatusInternalServerError)
			return
		}
		if meals == nil {
			meals = []Meal{}
		}
		respJson, err := json.Marshal(map[string]any{
			"nutrition": summary,
			"meals":     meals,
		})
		if err != nil {
			log.Errorf("marshal nutrition day: %s", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		pkg.WriteResponseBytes(w, "application/json", respJson)
		return
	}

	var (
		summaries []DailySummary
		err       error
	)
	if start != "" && end != "" {
		for _, d := range []string{start, end} {
			if _, parseErr := clock.ParseDate(d); parseErr != nil {
				http.Error(w, fmt.Sprintf("error, date %q invalid: expected YYYY-MM-DD", d), http.StatusBadRequest)
				return
			}
		}
		summaries, err = h.repo.GetSummaries(ctx, start, end)
	} else {
		summaries, err = h.repo.GetRecentSummaries(ctx, recentSummariesLimit)
	}
	if err != nil {
		log.Errorf("get nutrition summaries: %s", err)
		http.Error(w, "failed to get nutrition", http.StatusInternalServerError)
		return
	}

	if summaries == nil {
		summaries = []DailySummary{}
	}
	respJson, err := json.Marshal(map[string][]DailySummary{"nutrition": summaries})
	if err != nil {
		log.Errorf("marshal nutrition summaries: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", respJson)
}

type logNutritionRequest struct {
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	MealType    string  `json:"meal_type"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Notes       *string `json:"notes"`
}

// HandleLog handles both kinds of nutrition writes: type "meal" inserts a
// meal and adds its macros into the daily summary, type "daily" replaces
// the summary outright.
func (h *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.log")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var req logNutritionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("log nutrition, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Date == "" {
		req.Date = clock.Today()
	} else if _, err := clock.ParseDate(req.Date); err != nil {
		http.Error(w, "error, date invalid: expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	switch req.Type {
	case "meal":
		err := h.repo.AddMeal(ctx, &Meal{
			Date:        req.Date,
			MealType:    req.MealType,
			Description: req.Description,
			Calories:    req.Calories,
			Protein:     req.Protein,
			Carbs:       req.Carbs,
			Fat:         req.Fat,
		})
		if err != nil {
			log.Errorf("add meal: %s", err)
			http.Error(w, "failed to save nutrition", http.StatusInternalServerError)
			return
		}
	case "daily":
		err := h.repo.SetDailySummary(ctx, &DailySummary{
			Date:     req.Date,
			Calories: req.Calories,
			Protein:  req.Protein,
			Carbs:    req.Carbs,
			Fat:      req.Fat,
			Notes:    req.Notes,
		})
		if err != nil {
			log.Errorf("set daily summary: %s", err)
			http.Error(w, "failed to save nutrition", http.StatusInternalServerError)
			return
		}
	default:
		http.Error(w, "error, type invalid: expected meal or daily", http.StatusBadRequest)
		return
	}

	h.metrics.CounterMealsLogged.Inc()

	pkg.WriteJSONResponseOK(w, `{"success":true}`)
}
