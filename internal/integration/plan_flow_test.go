package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunafit/lunafit-backend/internal/api"
	"github.com/lunafit/lunafit-backend/internal/router"
	"github.com/lunafit/lunafit-backend/internal/service"
	"github.com/lunafit/lunafit-backend/internal/testhelpers"
	"github.com/lunafit/lunafit-backend/internal/types"
)

// fakeNutritionAPI answers every search with a single dish shaped to the
// midpoint of the requested nutrient windows.
func fakeNutritionAPI(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query   string                  `json:"query"`
			Filters service.NutrientFilters `json:"filters"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		mid := func(lo, hi float64) float64 { return (lo + hi) / 2 }
		resp := map[string]interface{}{
			"foods": []service.Food{{
				Name:     fmt.Sprintf("Dish for %q", req.Query),
				Calories: mid(req.Filters.CaloriesMin, req.Filters.CaloriesMax),
				Protein:  mid(req.Filters.ProteinMin, req.Filters.ProteinMax),
				Carbs:    mid(req.Filters.CarbsMin, req.Filters.CarbsMax),
				Fat:      mid(req.Filters.FatMin, req.Filters.FatMax),
				Iron:     3,
			}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestPlanGenerationFlow(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)

	nutritionAPI := fakeNutritionAPI(t)
	defer nutritionAPI.Close()
	t.Setenv("NUTRITION_API_KEY", "integration-test-key")
	t.Setenv("NUTRITION_API_URL", nutritionAPI.URL)

	gin.SetMode(gin.TestMode)

	nutrition, err := service.NewNutritionService(nil)
	require.NoError(t, err)
	suggester := service.NewSuggestionService(nutrition)
	plans := service.NewMealPlanService(db, suggester)
	tokens := service.NewTokenService("integration-test-secret")

	engine := router.SetupRouter(
		api.NewPlanHandler(plans, nil),
		api.NewHealthHandler(db, nil),
		tokens,
		nil,
	)

	userID := uuid.New()
	token, err := tokens.GenerateToken(&types.TokenClaims{UserID: userID, Username: "integration"})
	require.NoError(t, err)

	body := types.GeneratePlanRequest{
		Profile: types.Profile{
			Age:           28,
			WeightKg:      70,
			HeightFt:      5.9,
			Goal:          types.GoalMaintain,
			ActivityLevel: 50,
		},
		WorkoutPlan: []types.WorkoutDay{
			{Day: "Day 1", TotalCaloriesBurned: 350, Exercises: []types.Exercise{{Name: "Squats", Type: "strength", CaloriesBurned: 350}}},
			{Day: "Day 2", TotalCaloriesBurned: 0},
		},
		MealPlan: []types.MealPlanEntry{
			{Day: "Day 1", Date: "2026-03-02"},
			{Day: "Day 2", Date: "2026-03-03"},
		},
		CyclePhases: []types.CycleDay{
			{Date: "2026-03-02", CycleDay: 3, Phase: "menstruation"},
			{Date: "2026-03-03", CycleDay: 4, Phase: "menstruation"},
		},
		Intensity: "medium",
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	// generate and persist
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/plans/generate", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var genResp types.GeneratePlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &genResp))
	require.Len(t, genResp.Result.AdjustedMealPlan, 2)
	assert.Len(t, genResp.Result.SuggestedMeals["Day 1"], 3)
	assert.Len(t, genResp.Result.SuggestedMeals["Day 2"], 3)

	// every suggestion came from the fake API, not the fallback
	for _, meal := range genResp.Result.SuggestedMeals["Day 1"] {
		assert.Contains(t, meal.Name, "Dish for")
	}

	// read it back
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/plans/current", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var current types.CurrentPlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	require.Len(t, current.MealPlan, 2)
	assert.Equal(t, genResp.Result.AdjustedMealPlan[0].DailyCalories, current.MealPlan[0].DailyCalories)
	assert.Len(t, current.SuggestedMeals["Day 1"], 3)

	// nightly recalibration reproduces the same plan from stored inputs
	require.NoError(t, plans.RecalibrateUser(context.Background(), userID))

	recalibrated, err := plans.GetCurrentPlan(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, recalibrated.MealPlan, 2)
	assert.Equal(t, current.MealPlan[0].DailyCalories, recalibrated.MealPlan[0].DailyCalories)
	assert.Equal(t, current.MealPlan[0].CarbsGrams, recalibrated.MealPlan[0].CarbsGrams)

	users, err := plans.ListUsersWithCycleData(context.Background())
	require.NoError(t, err)
	assert.Contains(t, users, userID)
}

func TestPlanPreviewDoesNotPersist(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)

	nutritionAPI := fakeNutritionAPI(t)
	defer nutritionAPI.Close()
	t.Setenv("NUTRITION_API_KEY", "integration-test-key")
	t.Setenv("NUTRITION_API_URL", nutritionAPI.URL)

	gin.SetMode(gin.TestMode)

	nutrition, err := service.NewNutritionService(nil)
	require.NoError(t, err)
	plans := service.NewMealPlanService(db, service.NewSuggestionService(nutrition))
	tokens := service.NewTokenService("integration-test-secret")

	engine := router.SetupRouter(
		api.NewPlanHandler(plans, nil),
		api.NewHealthHandler(db, nil),
		tokens,
		nil,
	)

	userID := uuid.New()
	token, err := tokens.GenerateToken(&types.TokenClaims{UserID: userID, Username: "preview"})
	require.NoError(t, err)

	body := types.GeneratePlanRequest{
		Profile:     types.Profile{Age: 28, WeightKg: 70, HeightFt: 5.9, Goal: types.GoalMaintain, ActivityLevel: 50},
		WorkoutPlan: []types.WorkoutDay{{Day: "Day 1", TotalCaloriesBurned: 300}},
		MealPlan:    []types.MealPlanEntry{{Day: "Day 1", Date: "2026-03-02"}},
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/plans/preview", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	_, err = plans.GetCurrentPlan(context.Background(), userID)
	assert.ErrorIs(t, err, service.ErrNoPlan)
}
