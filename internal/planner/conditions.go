package planner

import (
	"github.com/lunafit/lunafit-backend/internal/types"
)

// HealthConditions are the flags the adjustment engine branches on.
// They are derived from the profile's condition list on every run and
// never stored independently of it.
type HealthConditions struct {
	HasDiabetes     bool
	HasHypertension bool
	IsMenopausal    bool
}

// ResolveConditions derives condition flags from the profile's disease
// list. Both condition codes and the legacy UI labels are accepted;
// anything unrecognized is ignored.
func ResolveConditions(diseases []string) HealthConditions {
	var cond HealthConditions
	for _, d := range diseases {
		code, ok := types.ParseCondition(d)
		if !ok {
			continue
		}
		switch code {
		case types.ConditionDiabetesType2:
			cond.HasDiabetes = true
		case types.ConditionHypertension:
			cond.HasHypertension = true
		case types.ConditionMenopause:
			cond.IsMenopausal = true
		}
	}
	return cond
}

// DominantWorkoutType returns the type of the exercise with the highest
// individual calorie burn for the day. Ties go to the earlier exercise;
// a day with no exercises is a rest day.
func DominantWorkoutType(day types.WorkoutDay) types.WorkoutType {
	if len(day.Exercises) == 0 {
		return types.WorkoutRest
	}
	best := day.Exercises[0]
	for _, ex := range day.Exercises[1:] {
		if ex.CaloriesBurned > best.CaloriesBurned {
			best = ex
		}
	}
	return types.ParseWorkoutType(best.Type)
}
