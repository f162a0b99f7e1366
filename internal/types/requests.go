package types

import (
	"github.com/google/uuid"
)

// GeneratePlanRequest is the request body for plan generation and preview.
// WorkoutPlan and MealPlan are parallel-indexed, one entry per program day.
type GeneratePlanRequest struct {
	Profile     Profile         `json:"profile" binding:"required"`
	WorkoutPlan []WorkoutDay    `json:"workout_plan" binding:"required"`
	MealPlan    []MealPlanEntry `json:"meal_plan" binding:"required"`
	CyclePhases []CycleDay      `json:"cycle_phases"`
	Intensity   string          `json:"intensity"`
}

// GeneratePlanResponse wraps a plan run's result for the API.
type GeneratePlanResponse struct {
	PlanID uuid.UUID  `json:"plan_id,omitempty"`
	Result PlanResult `json:"result"`
}

// CurrentPlanResponse returns a user's stored plan.
type CurrentPlanResponse struct {
	MealPlan       []MealPlanEntry            `json:"meal_plan"`
	SuggestedMeals map[string][]SuggestedMeal `json:"suggested_meals"`
}
