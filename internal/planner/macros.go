package planner

import (
	"github.com/lunafit/lunafit-backend/internal/types"
)

// MacroSplit holds a carbs/protein/fat breakdown in percentage points.
type MacroSplit struct {
	Carbs   float64
	Protein float64
	Fat     float64
}

// MacroGrams holds the gram form of a day's macro targets.
type MacroGrams struct {
	Carbs   float64
	Protein float64
	Fat     float64
}

// base split per dominant workout type
var macroBase = map[types.WorkoutType]MacroSplit{
	types.WorkoutStrength: {Carbs: 40, Protein: 40, Fat: 20},
	types.WorkoutHIIT:     {Carbs: 50, Protein: 30, Fat: 20},
	types.WorkoutCardio:   {Carbs: 55, Protein: 25, Fat: 20},
	types.WorkoutRest:     {Carbs: 45, Protein: 30, Fat: 25},
}

// diabetesSplit replaces the workout-based split entirely.
var diabetesSplit = MacroSplit{Carbs: 45, Protein: 25, Fat: 30}

// additive percentage-point shifts per cycle phase, applied before
// renormalization
var cycleMacroShift = map[types.CyclePhase]MacroSplit{
	types.PhaseMenstruation: {Carbs: 5, Protein: -5},
	types.PhaseFollicular:   {Carbs: -5, Protein: 5},
	types.PhaseOvulation:    {Protein: 5, Fat: -5},
	types.PhaseLuteal:       {Carbs: 5, Fat: 5},
}

// MacroPercentages computes the day's macro split. Order matters: the
// workout base, then the diabetes override, then the menopause clamps,
// then the cycle-phase shift, then renormalization to 100.
func MacroPercentages(workout types.WorkoutType, phase types.CyclePhase, cond HealthConditions) MacroSplit {
	split := macroBase[workout]

	if cond.HasDiabetes {
		split = diabetesSplit
	}
	if cond.IsMenopausal {
		if split.Protein < 40 {
			split.Protein = 40
		}
		if split.Carbs > 35 {
			split.Carbs = 35
		}
	}

	shift := cycleMacroShift[phase]
	split.Carbs += shift.Carbs
	split.Protein += shift.Protein
	split.Fat += shift.Fat

	return renormalize(split)
}

// renormalize scales the three percentages proportionally so they sum
// to 100, rounding each to one decimal.
func renormalize(s MacroSplit) MacroSplit {
	total := s.Carbs + s.Protein + s.Fat
	if total == 0 {
		return s
	}
	return MacroSplit{
		Carbs:   round1(s.Carbs / total * 100),
		Protein: round1(s.Protein / total * 100),
		Fat:     round1(s.Fat / total * 100),
	}
}

// Grams converts a percentage split to grams for the given daily
// calories (4 kcal/g for carbs and protein, 9 kcal/g for fat).
func Grams(split MacroSplit, calories float64) MacroGrams {
	return MacroGrams{
		Carbs:   round1(split.Carbs / 100 * calories / 4),
		Protein: round1(split.Protein / 100 * calories / 4),
		Fat:     round1(split.Fat / 100 * calories / 9),
	}
}
