package planner

import (
	"strings"

	"github.com/lunafit/lunafit-backend/internal/types"
)

var cyclePhaseTags = map[types.CyclePhase][]string{
	types.PhaseMenstruation: {"Iron-Rich Focus", "Anti-Inflammatory Meals"},
	types.PhaseFollicular:   {"High-Energy Meals", "Muscle Repair Support"},
	types.PhaseOvulation:    {"Hormone-Balancing Nutrients", "Fertility-Optimized Foods"},
	types.PhaseLuteal:       {"Mood-Stabilizing Snacks", "Craving-Control Strategies"},
}

// HealthTags derives the day's dietary tags from the final gram targets,
// the cycle phase, and the condition flags. Percentages are recomputed
// from the grams so the tags always describe what the plan actually
// serves. Returns a ", "-joined string, empty when no tag applies.
func HealthTags(grams MacroGrams, calories float64, phase types.CyclePhase, cond HealthConditions) string {
	if calories <= 0 {
		return ""
	}
	carbsPct := grams.Carbs * 4 / calories * 100
	proteinPct := grams.Protein * 4 / calories * 100
	fatPct := grams.Fat * 9 / calories * 100

	var tags []string

	// Cycle-phase tags make no sense for menopausal users.
	if !cond.IsMenopausal {
		tags = append(tags, cyclePhaseTags[phase]...)
	}

	if cond.HasDiabetes {
		if carbsPct <= 45 {
			tags = append(tags, "Low GI")
		}
		if carbsPct < 35 {
			tags = append(tags, "Low Carb")
		}
		if proteinPct >= 30 {
			tags = append(tags, "High Protein")
		}
		tags = append(tags, "Low Sugar")
	}

	if cond.HasHypertension {
		tags = append(tags, "Low Sodium")
		if fatPct < 25 {
			tags = append(tags, "Heart-Friendly Fats")
		}
	}

	if cond.IsMenopausal {
		if proteinPct >= 35 {
			tags = append(tags, "Hormone-Supporting Protein")
		}
		tags = append(tags, "Bone Health")
	}

	return strings.Join(tags, ", ")
}
