package dashboard

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/realjbmangum/clarkstark/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type dashboardService interface {
	Get(ctx context.Context) (*Data, error)
}

type Handler struct {
	service dashboardService
}

func NewHandler(service dashboardService) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	data, err := handler.service.Get(r.Context())
	if err != nil {
		log.Errorf("get dashboard: %s", err)
		http.Error(w, "failed to fetch dashboard data", http.StatusInternalServerError)
		return
	}

	dataBytes, err := json.Marshal(data)
	if err != nil {
		log.Errorf("marshal dashboard: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(dataBytes))
}
