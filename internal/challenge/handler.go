package challenge

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"
	"github.com/realjbmangum/clarkstark/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=challenge_test

type challengeService interface {
	Progress(ctx context.Context) *Progress
}

type Handler struct {
	service challengeService
}

func NewHandler(service challengeService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenge.get")
	defer span.End()

	progress := h.service.Progress(ctx)

	progressJson, err := json.Marshal(progress)
	if err != nil {
		log.Errorf("marshal challenge progress: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", progressJson)
}
