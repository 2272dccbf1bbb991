package workouts

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

const recentWorkoutsLimit = 30

type workoutsRepo interface {
	Add(ctx context.Context, workout *Workout) (int, error)
	GetByDate(ctx context.Context, date string) ([]Workout, error)
	GetRange(ctx context.Context, start, end string) ([]Workout, error)
	GetRecent(ctx context.Context, limit int) ([]Workout, error)
}

type Handler struct {
	repo    workoutsRepo
	metrics *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

// HandleList serves the workout log: single day with sets (?date=), a date
// range (?start=&end=), or the recent 30 entries when no filter is given.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	query := r.URL.Query()
	date := query.Get("date")
	start := query.Get("start")
	end := query.Get("end")

	var (
		workouts []Workout
		err      error
	)
	switch {
	case date != "":
		if _, parseErr := clock.ParseDate(date); parseErr != nil {
			http.Error(w, "error, date invalid: expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		workouts, err = h.repo.GetByDate(ctx, date)
	case start != "" && end != "":
		for _, d := range []string{start, end} {
			if _, parseErr := clock.ParseDate(d); parseErr != nil {
				http.Error(w, fmt.Sprintf("error, date %q invalid: expected YYYY-MM-DD", d), http.StatusBadRequest)
				return
			}
		}
		workouts, err = h.repo.GetRange(ctx, start, end)
	default:
		workouts, err = h.repo.GetRecent(ctx, recentWorkoutsLimit)
	}
	if err != nil {
		log.Errorf("list workouts: %s", err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	if workouts == nil {
		workouts = []Workout{}
	}
	respJson, err := json.Marshal(map[string][]Workout{"workouts": workouts})
	if err != nil {
		log.Errorf("marshal workouts: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", respJson)
}

type addWorkoutRequest struct {
	Date            string        `json:"date"`
	TemplateID      *string       `json:"template_id"`
	WorkoutName     string        `json:"workout_name"`
	DurationMinutes *int          `json:"duration_minutes"`
	Notes           *string       `json:"notes"`
	EnergyLevel     *int          `json:"energy_level"`
	Exercises       []ExerciseSet `json:"exercises"`
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var req addWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add workout, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Date == "" {
		req.Date = clock.Today()
	} else if _, err := clock.ParseDate(req.Date); err != nil {
		http.Error(w, "error, date invalid: expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	if req.WorkoutName == "" {
		http.Error(w, "error, workout_name empty", http.StatusBadRequest)
		return
	}

	id, err := h.repo.Add(ctx, &Workout{
		Date:            req.Date,
		TemplateID:      req.TemplateID,
		WorkoutName:     req.WorkoutName,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
		EnergyLevel:     req.EnergyLevel,
		Completed:       true,
		Exercises:       req.Exercises,
	})
	if err != nil {
		log.Errorf("add workout: %s", err)
		http.Error(w, "failed to save workout", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterWorkoutsLogged.Inc()

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"success":true,"id":%d}`, id))
}
