package foodsearch

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/realjbmangum/clarkstark/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=foodsearch_test

type foodClient interface {
	Search(ctx context.Context, query string) ([]Food, error)
}

type Handler struct {
	client foodClient
}

func NewHandler(client foodClient) *Handler {
	return &Handler{client: client}
}

type searchResponse struct {
	Foods    []Food `json:"foods"`
	Fallback bool   `json:"fallback,omitempty"`
}

// HandleSearch proxies the food search. When the USDA API fails the
// local fallback list is served instead of an error.
func (handler *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, `query parameter "q" is required`, http.StatusBadRequest)
		return
	}

	resp := searchResponse{}
	foods, err := handler.client.Search(r.Context(), query)
	if err != nil {
		log.Errorf("food search %q: %s", query, err)
		resp.Foods = FallbackFoods(query)
		resp.Fallback = true
	} else {
		resp.Foods = foods
	}
	if resp.Foods == nil {
		resp.Foods = []Food{}
	}

	respBytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal food search response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respBytes))
}
