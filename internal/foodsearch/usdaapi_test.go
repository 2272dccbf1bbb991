package foodsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usdaSearchPayload = `{
	"foods": [
		{
			"fdcId": 171413,
			"description": "Beef, ribeye, raw",
			"foodNutrients": [
				{"nutrientId": 1008, "nutrientName": "Energy", "value": 291.4},
				{"nutrientId": 1003, "nutrientName": "Protein", "value": 23.7},
				{"nutrientId": 1004, "nutrientName": "Total lipid (fat)", "value": 21.2},
				{"nutrientId": 1005, "nutrientName": "Carbohydrate, by difference", "value": 0}
			]
		},
		{
			"fdcId": 748967,
			"lowercaseDescription": "greek yogurt",
			"brandOwner": "Some Dairy Co",
			"foodNutrients": [
				{"nutrientId": 1008, "nutrientName": "Energy", "value": 97},
				{"nutrientId": 1003, "nutrientName": "Protein", "value": 17},
				{"nutrientId": 2000, "nutrientName": "Sugars, total", "value": 6.2}
			]
		}
	]
}`

func TestUsdaApi_Search(t *testing.T) {
	var requests int
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		query := r.URL.Query()
		assert.Equal(t, "test-key", query.Get("api_key"))
		assert.Equal(t, "ribeye steak", query.Get("query"))
		assert.Equal(t, "10", query.Get("pageSize"))
		_, err := w.Write([]byte(usdaSearchPayload))
		require.NoError(t, err)
	}))
	defer testServer.Close()

	api := NewUsdaApi(testServer.URL, "test-key", testServer.Client())

	foods, err := api.Search(context.Background(), "ribeye steak")
	require.NoError(t, err)
	require.Len(t, foods, 2)

	ribeye := foods[0]
	assert.Equal(t, "171413", ribeye.ID)
	assert.Equal(t, "Beef, ribeye, raw", ribeye.Name)
	assert.Nil(t, ribeye.Brand)
	assert.Equal(t, "100g", ribeye.ServingSize)
	assert.Equal(t, float64(291), ribeye.Calories)
	assert.Equal(t, float64(24), ribeye.Protein)
	assert.Equal(t, float64(21), ribeye.Fat)
	assert.Zero(t, ribeye.Carbs)

	yogurt := foods[1]
	assert.Equal(t, "greek yogurt", yogurt.Name)
	require.NotNil(t, yogurt.Brand)
	assert.Equal(t, "Some Dairy Co", *yogurt.Brand)
	assert.Equal(t, float64(6), yogurt.Sugar)
	assert.Zero(t, yogurt.Fat)

	// second search hits the cache
	_, err = api.Search(context.Background(), "ribeye steak")
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestUsdaApi_Search_apiError(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "over rate limit", http.StatusTooManyRequests)
	}))
	defer testServer.Close()

	api := NewUsdaApi(testServer.URL, "DEMO_KEY", testServer.Client())

	foods, err := api.Search(context.Background(), "ribeye")
	assert.Nil(t, foods)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usda api status 429")
}

func TestFallbackFoods(t *testing.T) {
	foods := FallbackFoods("Ribeye")
	require.Len(t, foods, 1)
	assert.Equal(t, "Ribeye Steak", foods[0].Name)
	assert.Equal(t, float64(291), foods[0].Calories)

	// substring match in both directions
	foods = FallbackFoods("grilled chicken breast with herbs")
	require.Len(t, foods, 1)
	assert.Equal(t, "Chicken Breast", foods[0].Name)

	// no match returns the staples
	foods = FallbackFoods("dragon fruit smoothie")
	require.Len(t, foods, 3)
	assert.Equal(t, "Ribeye Steak", foods[0].Name)
}
