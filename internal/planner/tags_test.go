package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lunafit/lunafit-backend/internal/types"
)

// gramsFor builds gram targets whose reconstructed percentages equal the
// given split at 2000 kcal.
func gramsFor(carbsPct, proteinPct, fatPct float64) (MacroGrams, float64) {
	const calories = 2000.0
	return MacroGrams{
		Carbs:   carbsPct / 100 * calories / 4,
		Protein: proteinPct / 100 * calories / 4,
		Fat:     fatPct / 100 * calories / 9,
	}, calories
}

func TestHealthTagsCyclePhases(t *testing.T) {
	none := HealthConditions{}
	grams, cal := gramsFor(45, 30, 25)

	tests := []struct {
		phase types.CyclePhase
		want  string
	}{
		{types.PhaseMenstruation, "Iron-Rich Focus, Anti-Inflammatory Meals"},
		{types.PhaseFollicular, "High-Energy Meals, Muscle Repair Support"},
		{types.PhaseOvulation, "Hormone-Balancing Nutrients, Fertility-Optimized Foods"},
		{types.PhaseLuteal, "Mood-Stabilizing Snacks, Craving-Control Strategies"},
	}
	for _, tt := range tests {
		t.Run(string(tt.phase), func(t *testing.T) {
			assert.Equal(t, tt.want, HealthTags(grams, cal, tt.phase, none))
		})
	}
}

func TestHealthTagsDiabetes(t *testing.T) {
	cond := HealthConditions{HasDiabetes: true}

	t.Run("moderate carbs", func(t *testing.T) {
		grams, cal := gramsFor(45, 30, 25)
		tags := HealthTags(grams, cal, types.PhaseFollicular, cond)
		assert.Contains(t, tags, "Low GI")
		assert.NotContains(t, tags, "Low Carb")
		assert.Contains(t, tags, "High Protein")
		assert.Contains(t, tags, "Low Sugar")
	})

	t.Run("low carbs", func(t *testing.T) {
		grams, cal := gramsFor(30, 45, 25)
		tags := HealthTags(grams, cal, types.PhaseFollicular, cond)
		assert.Contains(t, tags, "Low GI")
		assert.Contains(t, tags, "Low Carb")
	})
}

func TestHealthTagsHypertension(t *testing.T) {
	cond := HealthConditions{HasHypertension: true}

	grams, cal := gramsFor(50, 30, 20)
	tags := HealthTags(grams, cal, types.PhaseFollicular, cond)
	assert.Contains(t, tags, "Low Sodium")
	assert.Contains(t, tags, "Heart-Friendly Fats")

	grams, cal = gramsFor(45, 25, 30)
	tags = HealthTags(grams, cal, types.PhaseFollicular, cond)
	assert.Contains(t, tags, "Low Sodium")
	assert.NotContains(t, tags, "Heart-Friendly Fats")
}

func TestHealthTagsMenopauseSuppressesPhaseTags(t *testing.T) {
	cond := HealthConditions{IsMenopausal: true}
	grams, cal := gramsFor(32, 47, 21)

	for _, phase := range []types.CyclePhase{types.PhaseMenstruation, types.PhaseFollicular, types.PhaseOvulation, types.PhaseLuteal} {
		tags := HealthTags(grams, cal, phase, cond)
		for _, phaseTags := range cyclePhaseTags {
			for _, pt := range phaseTags {
				assert.NotContains(t, tags, pt, "phase=%s", phase)
			}
		}
		assert.Contains(t, tags, "Bone Health", "phase=%s", phase)
		assert.Contains(t, tags, "Hormone-Supporting Protein", "phase=%s", phase)
	}
}

func TestHealthTagsDiabeticLutealScenario(t *testing.T) {
	cond := HealthConditions{HasDiabetes: true}
	split := MacroPercentages(types.WorkoutStrength, types.PhaseLuteal, cond)
	const calories = 2000.0
	grams := Grams(split, calories)

	tags := HealthTags(grams, calories, types.PhaseLuteal, cond)
	assert.Contains(t, tags, "Low Sugar")
	assert.Contains(t, tags, "Mood-Stabilizing Snacks")
	assert.Contains(t, tags, "Craving-Control Strategies")
	// carbs renormalize to 45.5%, just over the Low GI cutoff
	assert.NotContains(t, tags, "Low GI")
}

func TestHealthTagsIdempotent(t *testing.T) {
	cond := HealthConditions{HasDiabetes: true, HasHypertension: true}
	grams, cal := gramsFor(40, 35, 25)

	first := HealthTags(grams, cal, types.PhaseOvulation, cond)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, HealthTags(grams, cal, types.PhaseOvulation, cond))
	}
}

func TestHealthTagsZeroCalories(t *testing.T) {
	tags := HealthTags(MacroGrams{}, 0, types.PhaseFollicular, HealthConditions{})
	assert.Empty(t, tags)
}
