package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"
	"github.com/realjbmangum/clarkstark/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=recipes_test

type recipesRepo interface {
	Get(ctx context.Context, id int) (*Recipe, error)
	List(ctx context.Context, filter ListFilter) ([]Recipe, error)
	Add(ctx context.Context, recipe *Recipe) (int, error)
	Update(ctx context.Context, recipe *Recipe) error
	Delete(ctx context.Context, id int) error
}

type Handler struct {
	repo recipesRepo
}

func NewHandler(repo recipesRepo) *Handler {
	return &Handler{repo: repo}
}

// HandleGet serves one recipe (?id=) or a listing optionally filtered by
// ?category= and ?favorites=true.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recipes.get")
	defer span.End()

	query := r.URL.Query()

	if idParam := query.Get("id"); idParam != "" {
		id, err := strconv.Atoi(idParam)
		if err != nil {
			http.Error(w, "error, id invalid", http.StatusBadRequest)
			return
		}
		recipe, err := h.repo.Get(ctx, id)
		if errors.Is(err, ErrRecipeNotFound) {
			http.Error(w, "recipe not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Errorf("get recipe %d: %s", id, err)
			http.Error(w, "failed to get recipe", http.StatusInternalServerError)
			return
		}
		respJson, err := json.Marshal(map[string]*Recipe{"recipe": recipe})
		if err != nil {
			log.Errorf("marshal recipe: %s", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		pkg.WriteResponseBytes(w, "application/json", respJson)
		return
	}

	recipes, err := h.repo.List(ctx, ListFilter{
		Category:      query.Get("category"),
		FavoritesOnly: query.Get("favorites") == "true",
	})
	if err != nil {
		log.Errorf("list recipes: %s", err)
		http.Error(w, "failed to get recipes", http.StatusInternalServerError)
		return
	}
	if recipes == nil {
		recipes = []Recipe{}
	}
	respJson, err := json.Marshal(map[string][]Recipe{"recipes": recipes})
	if err != nil {
		log.Errorf("marshal recipes: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", respJson)
}

// HandleSave inserts a recipe, or updates it when an id is present in the
// body.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recipes.save")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, DELETE, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var recipe Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		log.Tracef("save recipe, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if recipe.Name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}

	if recipe.ID > 0 {
		err := h.repo.Update(ctx, &recipe)
		if errors.Is(err, ErrRecipeNotFound) {
			http.Error(w, "recipe not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Errorf("update recipe %d: %s", recipe.ID, err)
			http.Error(w, "failed to save recipe", http.StatusInternalServerError)
			return
		}
		pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"success":true,"id":%d}`, recipe.ID))
		return
	}

	id, err := h.repo.Add(ctx, &recipe)
	if err != nil {
		log.Errorf("add recipe: %s", err)
		http.Error(w, "failed to save recipe", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"success":true,"id":%d}`, id))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recipes.delete")
	defer span.End()

	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		http.Error(w, "error, id required", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idParam)
	if err != nil {
		http.Error(w, "error, id invalid", http.StatusBadRequest)
		return
	}

	err = h.repo.Delete(ctx, id)
	if errors.Is(err, ErrRecipeNotFound) {
		http.Error(w, "recipe not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("delete recipe %d: %s", id, err)
		http.Error(w, "failed to delete recipe", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"success":true}`)
}
