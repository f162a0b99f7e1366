package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNutritionService(t *testing.T) {
	originalKey := os.Getenv("NUTRITION_API_KEY")
	defer func() { os.Setenv("NUTRITION_API_KEY", originalKey) }()

	t.Run("should create service with API key", func(t *testing.T) {
		os.Setenv("NUTRITION_API_KEY", "test-api-key")

		svc, err := NewNutritionService(nil)

		require.NoError(t, err)
		assert.NotNil(t, svc)
		assert.NotNil(t, svc.client)
	})

	t.Run("should fail without API key", func(t *testing.T) {
		os.Unsetenv("NUTRITION_API_KEY")
		os.Unsetenv("NUTRITION_API_KEY_FILE")

		svc, err := NewNutritionService(nil)

		assert.Error(t, err)
		assert.Nil(t, svc)
		assert.Contains(t, err.Error(), "NUTRITION_API_KEY or NUTRITION_API_KEY_FILE must be set")
	})
}

func newTestNutritionService(t *testing.T, handler http.HandlerFunc) *NutritionService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	os.Setenv("NUTRITION_API_KEY", "test-api-key")
	os.Setenv("NUTRITION_API_URL", server.URL)
	t.Cleanup(func() {
		os.Unsetenv("NUTRITION_API_URL")
	})

	svc, err := NewNutritionService(nil)
	require.NoError(t, err)
	return svc
}

func TestNutritionService_SearchDishes(t *testing.T) {
	t.Run("returns foods on success", func(t *testing.T) {
		svc := newTestNutritionService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

			var req searchRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "balanced lunch dish", req.Query)

			json.NewEncoder(w).Encode(searchResponse{Foods: []Food{
				{Name: "Quinoa Bowl", Calories: 520, Protein: 28, Carbs: 60, Fat: 18},
			}})
		})

		foods, err := svc.SearchDishes(context.Background(), "balanced lunch dish", NutrientFilters{CaloriesMin: 470, CaloriesMax: 570})

		require.NoError(t, err)
		require.Len(t, foods, 1)
		assert.Equal(t, "Quinoa Bowl", foods[0].Name)
		assert.Equal(t, 520.0, foods[0].Calories)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		svc := newTestNutritionService(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(searchResponse{})
		})

		foods, err := svc.SearchDishes(context.Background(), "healthy dinner dish", NutrientFilters{})

		require.NoError(t, err)
		assert.Empty(t, foods)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		svc := newTestNutritionService(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		})

		_, err := svc.SearchDishes(context.Background(), "healthy breakfast dish", NutrientFilters{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		svc := newTestNutritionService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		})

		_, err := svc.SearchDishes(context.Background(), "healthy breakfast dish", NutrientFilters{})

		assert.Error(t, err)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		svc := newTestNutritionService(t, func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.SearchDishes(ctx, "healthy breakfast dish", NutrientFilters{})
		assert.Error(t, err)
	})
}
