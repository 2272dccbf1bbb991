package settings

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"
	"github.com/realjbmangum/clarkstark/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=settings_test

type settingsRepo interface {
	All(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}

type Handler struct {
	repo settingsRepo
}

func NewHandler(repo settingsRepo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.getall")
	defer span.End()

	all, err := h.repo.All(ctx)
	if err != nil {
		log.Errorf("get settings: %s", err)
		http.Error(w, "failed to get settings", http.StatusInternalServerError)
		return
	}

	allJson, err := json.Marshal(all)
	if err != nil {
		log.Errorf("marshal settings: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", allJson)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.update")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "PUT, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var updates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		log.Tracef("update settings, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(updates) == 0 {
		http.Error(w, "error, no settings given", http.StatusBadRequest)
		return
	}

	for key, value := range updates {
		if key == "" {
			http.Error(w, "error, setting key empty", http.StatusBadRequest)
			return
		}
		if err := h.repo.Set(ctx, key, value); err != nil {
			log.Errorf("set setting %s: %s", key, err)
			http.Error(w, "failed to update settings", http.StatusInternalServerError)
			return
		}
	}

	pkg.WriteJSONResponseOK(w, `{"success":true}`)
}
