package planner

import (
	"math"

	"github.com/lunafit/lunafit-backend/internal/types"
)

// weightLossCalorieFloor is the minimum daily intake for a weight-loss
// goal, applied before the cycle-phase adjustment.
const weightLossCalorieFloor = 1200

var activityFactors = map[types.ActivityBucket]float64{
	types.ActivityLow:      1.2,
	types.ActivityModerate: 1.55,
	types.ActivityHigh:     1.9,
}

// calorie adjustment per cycle phase, as a fraction of the goal-adjusted
// daily calories
var cycleCalorieAdjust = map[types.CyclePhase]float64{
	types.PhaseMenstruation: -0.08,
	types.PhaseFollicular:   0,
	types.PhaseOvulation:    0.05,
	types.PhaseLuteal:       0.10,
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// HeightMeters converts the feet-decimal encoding (5.9 = 5'9") to meters.
func HeightMeters(heightFt float64) float64 {
	feet := math.Floor(heightFt)
	inches := math.Round((heightFt - feet) * 10)
	totalInches := feet*12 + inches
	return totalInches * 0.0254
}

// BMI computes body mass index from weight in kg and feet-decimal height.
func BMI(weightKg, heightFt float64) float64 {
	m := HeightMeters(heightFt)
	return weightKg / (m * m)
}

// baseCalories is the age-branched daily estimate before activity and
// goal adjustments.
func baseCalories(age int, bmi float64) float64 {
	switch {
	case age < 30:
		return 15.3*bmi*1.2 + 679
	case age < 50:
		return 11.6*bmi*1.2 + 879
	default:
		return 13.5*bmi*1.2 + 487
	}
}

// goalAdjusted applies the goal offset and the day's workout burn.
func goalAdjusted(base float64, goal types.Goal, burned float64) float64 {
	switch goal {
	case types.GoalWeightLoss:
		return math.Max(weightLossCalorieFloor, base-300+burned)
	case types.GoalMuscleGain:
		return base + 250 + burned
	default:
		return base + burned
	}
}

// DailyCalories computes the day's calorie target from the profile, the
// day's total workout burn, and the resolved cycle phase. The engine is a
// pure numeric transform; biometric ranges are validated upstream.
func DailyCalories(p types.Profile, burned float64, phase types.CyclePhase) float64 {
	base := baseCalories(p.Age, BMI(p.WeightKg, p.HeightFt))
	base *= activityFactors[types.BucketActivityLevel(p.ActivityLevel)]
	cal := goalAdjusted(base, p.Goal, burned)
	cal *= 1 + cycleCalorieAdjust[phase]
	return round1(cal)
}
