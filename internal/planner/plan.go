package planner

import (
	"regexp"
	"strconv"

	"github.com/lunafit/lunafit-backend/internal/types"
)

var dayLabelPattern = regexp.MustCompile(`^Day (\d+)$`)

// ParseDayNumber extracts the program-day number from a "Day <n>" label.
func ParseDayNumber(label string) (int, bool) {
	m := dayLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// BuildDayPlan computes one adjusted meal-plan entry from the skeleton
// entry, the matching workout day, the profile, and the resolved cycle
// phase. Pure and deterministic: identical inputs produce identical
// output.
func BuildDayPlan(profile types.Profile, day types.WorkoutDay, skeleton types.MealPlanEntry, phase types.CyclePhase, cond HealthConditions) types.MealPlanEntry {
	burned := day.TotalCaloriesBurned
	calories := DailyCalories(profile, burned, phase)

	workout := DominantWorkoutType(day)
	split := MacroPercentages(workout, phase, cond)
	grams := Grams(split, calories)

	return types.MealPlanEntry{
		Day:           skeleton.Day,
		Date:          skeleton.Date,
		DailyCalories: calories,
		CarbsGrams:    grams.Carbs,
		ProteinGrams:  grams.Protein,
		FatGrams:      grams.Fat,
		SleepHours:    SleepHours(profile.Age, burned),
		WaterLitres:   WaterLitres(profile.Age, profile.WeightKg, burned),
		HealthTags:    HealthTags(grams, calories, phase, cond),
	}
}

// PhaseForDate resolves the cycle phase for a calendar date from the
// user's phase sequence. Users without cycle data have an empty
// sequence, so every day resolves to the neutral follicular phase.
func PhaseForDate(phases []types.CycleDay, date string) types.CyclePhase {
	for _, p := range phases {
		if p.Date == date {
			return types.ParseCyclePhase(p.Phase)
		}
	}
	return types.PhaseFollicular
}
