package foodsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour         = 60 * 60
	foodCacheExpire = oneHour * 6
	foodCacheSize   = 2 * 1024 * 1024

	searchPageSize = 10
)

// USDA FoodData Central nutrient ids.
const (
	nutrientEnergy   = 1008
	nutrientProtein  = 1003
	nutrientFat      = 1004
	nutrientCarbs    = 1005
	nutrientFiber    = 1079
	nutrientSugars   = 2000
	nutrientSodium   = 1093
)

type usdaNutrient struct {
	NutrientID   int     `json:"nutrientId"`
	NutrientName string  `json:"nutrientName"`
	Value        float64 `json:"value"`
}

type usdaFood struct {
	FdcID                int            `json:"fdcId"`
	Description          string         `json:"description"`
	LowercaseDescription string         `json:"lowercaseDescription"`
	BrandOwner           string         `json:"brandOwner"`
	FoodNutrients        []usdaNutrient `json:"foodNutrients"`
}

type usdaSearchResponse struct {
	Foods []usdaFood `json:"foods"`
}

// UsdaApi searches the USDA FoodData Central database, caching search
// results per query.
type UsdaApi struct {
	cache      *freecache.Cache
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewUsdaApi(baseURL, apiKey string, httpClient *http.Client) *UsdaApi {
	return &UsdaApi{
		cache:      freecache.NewCache(foodCacheSize),
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Search queries Foundation and SR Legacy foods and maps them to the
// simplified nutrition view.
func (api *UsdaApi) Search(ctx context.Context, query string) (_ []Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "usdaApi.search")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := []byte("search::" + strings.ToLower(query))
	if searchBytes, cacheErr := api.cache.Get(cacheKey); cacheErr == nil {
		var searchResp usdaSearchResponse
		if err := json.Unmarshal(searchBytes, &searchResp); err == nil {
			return mapFoods(searchResp.Foods), nil
		}
		log.Errorf("failed to unmarshal cached food search %q: %s", query, err)
	}

	searchURL := fmt.Sprintf(
		"%s/foods/search?api_key=%s&query=%s&pageSize=%d&dataType=Foundation,SR%%20Legacy",
		api.baseURL, api.apiKey, url.QueryEscape(query), searchPageSize,
	)

	req, err := http.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := api.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read usda response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usda api status %d", resp.StatusCode)
	}

	var searchResp usdaSearchResponse
	if err := json.Unmarshal(respBytes, &searchResp); err != nil {
		return nil, fmt.Errorf("unmarshal usda response: %w", err)
	}

	if err := api.cache.Set(cacheKey, respBytes, foodCacheExpire); err != nil {
		log.Errorf("failed to cache food search %q: %s", query, err)
	}

	return mapFoods(searchResp.Foods), nil
}

func mapFoods(usdaFoods []usdaFood) []Food {
	foods := make([]Food, 0, len(usdaFoods))
	for _, uf := range usdaFoods {
		name := uf.Description
		if name == "" {
			name = uf.LowercaseDescription
		}
		var brand *string
		if uf.BrandOwner != "" {
			brand = &uf.BrandOwner
		}

		fat := nutrientValue(uf.FoodNutrients, "total lipid", nutrientFat)
		if fat == 0 {
			fat = nutrientValue(uf.FoodNutrients, "fat", nutrientFat)
		}

		foods = append(foods, Food{
			ID:          strconv.Itoa(uf.FdcID),
			Name:        name,
			Brand:       brand,
			ServingSize: "100g",
			Calories:    nutrientValue(uf.FoodNutrients, "energy", nutrientEnergy),
			Protein:     nutrientValue(uf.FoodNutrients, "protein", nutrientProtein),
			Carbs:       nutrientValue(uf.FoodNutrients, "carbohydrate", nutrientCarbs),
			Fat:         fat,
			Fiber:       nutrientValue(uf.FoodNutrients, "fiber", nutrientFiber),
			Sugar:       nutrientValue(uf.FoodNutrients, "sugars", nutrientSugars),
			Sodium:      nutrientValue(uf.FoodNutrients, "sodium", nutrientSodium),
		})
	}
	return foods
}

func nutrientValue(nutrients []usdaNutrient, nameFragment string, id int) float64 {
	for _, n := range nutrients {
		if strings.Contains(strings.ToLower(n.NutrientName), nameFragment) || n.NutrientID == id {
			return math.Round(n.Value)
		}
	}
	return 0
}
