package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/lunafit/lunafit-backend/internal/planner"
	"github.com/lunafit/lunafit-backend/internal/types"
)

// NutritionSearcher is the interface the suggestion pipeline needs from
// the nutrition-search client.
type NutritionSearcher interface {
	SearchDishes(ctx context.Context, query string, filters NutrientFilters) ([]Food, error)
}

// MealSuggester produces the three per-slot suggestions for a plan day.
type MealSuggester interface {
	SuggestMealsForDay(ctx context.Context, entry types.MealPlanEntry, goal types.Goal, phase types.CyclePhase, cond planner.HealthConditions) []types.SuggestedMeal
}

// IPlanService defines the interface for meal-plan operations.
type IPlanService interface {
	GeneratePlan(ctx context.Context, profile types.Profile, workoutPlan []types.WorkoutDay, initialPlan []types.MealPlanEntry, cyclePhases []types.CycleDay, intensity string) (*types.PlanResult, error)
	SavePlan(ctx context.Context, userID uuid.UUID, profile types.Profile, workoutPlan []types.WorkoutDay, result *types.PlanResult, cyclePhases []types.CycleDay, intensity string) error
	GetCurrentPlan(ctx context.Context, userID uuid.UUID) (*types.CurrentPlanResponse, error)
}
