package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunafit/lunafit-backend/internal/api"
	"github.com/lunafit/lunafit-backend/internal/service"
	"github.com/lunafit/lunafit-backend/internal/types"
)

type noopPlanService struct{}

func (noopPlanService) GeneratePlan(ctx context.Context, profile types.Profile, workoutPlan []types.WorkoutDay, initialPlan []types.MealPlanEntry, cyclePhases []types.CycleDay, intensity string) (*types.PlanResult, error) {
	return &types.PlanResult{}, nil
}

func (noopPlanService) SavePlan(ctx context.Context, userID uuid.UUID, profile types.Profile, workoutPlan []types.WorkoutDay, result *types.PlanResult, cyclePhases []types.CycleDay, intensity string) error {
	return nil
}

func (noopPlanService) GetCurrentPlan(ctx context.Context, userID uuid.UUID) (*types.CurrentPlanResponse, error) {
	return &types.CurrentPlanResponse{}, nil
}

func setupTestRouter(t *testing.T) (*gin.Engine, *service.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := service.NewTokenService("router-test-secret")
	planHandler := api.NewPlanHandler(noopPlanService{}, nil)
	healthHandler := api.NewHealthHandler(nil, nil)

	return SetupRouter(planHandler, healthHandler, tokens, nil), tokens
}

func TestHealthRouteIsPublic(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlanRoutesRequireAuth(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/plans/current", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPlanRoutesAcceptValidToken(t *testing.T) {
	router, tokens := setupTestRouter(t)

	token, err := tokens.GenerateToken(&types.TokenClaims{UserID: uuid.New(), Username: "testuser"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/plans/current", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
