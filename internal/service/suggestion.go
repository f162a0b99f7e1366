package service

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/lunafit/lunafit-backend/internal/planner"
	"github.com/lunafit/lunafit-backend/internal/types"
)

const (
	noteNoMatch    = "No matching dish found"
	noteFetchError = "Error fetching dish"
	noteHighGI     = "High GI, consider substitution"
)

// mealShares splits the day's calories across the three slots.
var mealShares = []struct {
	Slot  types.MealSlot
	Share float64
}{
	{types.MealBreakfast, 0.3},
	{types.MealLunch, 0.4},
	{types.MealDinner, 0.3},
}

// SuggestionService produces dish suggestions for each meal slot of a
// computed plan day.
type SuggestionService struct {
	nutrition NutritionSearcher
}

// NewSuggestionService creates a new SuggestionService instance.
func NewSuggestionService(nutrition NutritionSearcher) *SuggestionService {
	return &SuggestionService{nutrition: nutrition}
}

// dietDescriptor picks the free-text style for the search query.
func dietDescriptor(goal types.Goal) string {
	switch goal {
	case types.GoalWeightLoss:
		return "healthy"
	case types.GoalMuscleGain:
		return "high protein"
	default:
		return "balanced"
	}
}

// SuggestMealsForDay returns exactly three suggestions for the day, in
// breakfast/lunch/dinner order. A slot whose search fails or comes back
// empty gets a fallback meal built from the computed targets; one slot's
// failure never aborts the others.
func (s *SuggestionService) SuggestMealsForDay(ctx context.Context, entry types.MealPlanEntry, goal types.Goal, phase types.CyclePhase, cond planner.HealthConditions) []types.SuggestedMeal {
	meals := make([]types.SuggestedMeal, 0, len(mealShares))

	for _, ms := range mealShares {
		target := mealTarget(entry, ms.Share)
		query := fmt.Sprintf("%s %s dish", dietDescriptor(goal), ms.Slot)
		filters := buildFilters(target, phase, cond)

		meal := types.SuggestedMeal{
			Name:     fmt.Sprintf("Custom %s plate", ms.Slot),
			MealType: ms.Slot,
			Calories: target.Calories,
			Protein:  target.Protein,
			Carbs:    target.Carbs,
			Fat:      target.Fat,
		}

		foods, err := s.nutrition.SearchDishes(ctx, query, filters)
		switch {
		case err != nil:
			log.Printf("[SuggestionService] %s search for %q failed: %v", ms.Slot, entry.Day, err)
			meal.Note = noteFetchError
		case len(foods) == 0:
			meal.Note = noteNoMatch
		default:
			// first returned food wins, no further ranking
			match := foods[0]
			meal.Name = match.Name
			meal.Calories = match.Calories
			meal.Protein = match.Protein
			meal.Carbs = match.Carbs
			meal.Fat = match.Fat
		}

		if cond.HasDiabetes || phase == types.PhaseLuteal {
			if planner.GlycemicIndexOf(meal.Name) >= planner.HighGIThreshold {
				meal.Note = appendNote(meal.Note, noteHighGI)
			}
		}

		meals = append(meals, meal)
	}

	return meals
}

// mealTarget scales the day's targets down to one slot's share.
type target struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

func mealTarget(entry types.MealPlanEntry, share float64) target {
	targetCal := entry.DailyCalories * share
	ratio := 0.0
	if entry.DailyCalories > 0 {
		ratio = targetCal / entry.DailyCalories
	}
	return target{
		Calories: round1(targetCal),
		Protein:  round1(entry.ProteinGrams * ratio),
		Carbs:    round1(entry.CarbsGrams * ratio),
		Fat:      round1(entry.FatGrams * ratio),
	}
}

// buildFilters derives the nutrient windows for a slot, tightened per
// condition and cycle phase.
func buildFilters(t target, phase types.CyclePhase, cond planner.HealthConditions) NutrientFilters {
	f := NutrientFilters{
		CaloriesMin: math.Max(0, t.Calories-50),
		CaloriesMax: t.Calories + 50,
		ProteinMin:  math.Max(0, t.Protein-5),
		ProteinMax:  t.Protein + 5,
		CarbsMin:    math.Max(0, t.Carbs-10),
		CarbsMax:    t.Carbs + 10,
		FatMin:      math.Max(0, t.Fat-5),
		FatMax:      t.Fat + 5,
	}
	if cond.HasDiabetes && f.CarbsMax > 50 {
		f.CarbsMax = 50
	}
	if phase == types.PhaseMenstruation {
		f.IronMin = 2
	}
	if phase == types.PhaseLuteal && f.CarbsMax > 60 {
		f.CarbsMax = 60
	}
	return f
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "; " + note
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
