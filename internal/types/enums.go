package types

// Goal is the user's training goal.
type Goal string

const (
	GoalWeightLoss Goal = "weight_loss"
	GoalMuscleGain Goal = "muscle_gain"
	GoalMaintain   Goal = "maintain"
)

// ParseGoal maps a raw goal label to a Goal, defaulting to maintain.
func ParseGoal(s string) Goal {
	switch Goal(s) {
	case GoalWeightLoss, GoalMuscleGain:
		return Goal(s)
	default:
		return GoalMaintain
	}
}

// WorkoutType classifies a single exercise or the dominant load of a day.
type WorkoutType string

const (
	WorkoutStrength WorkoutType = "strength"
	WorkoutHIIT     WorkoutType = "hiit"
	WorkoutCardio   WorkoutType = "cardio"
	WorkoutRest     WorkoutType = "rest"
)

// ParseWorkoutType normalizes a raw workout label. Anything outside the
// known set collapses to rest; that default is deliberate, days with no
// recognizable load are treated as rest days.
func ParseWorkoutType(s string) WorkoutType {
	switch WorkoutType(s) {
	case WorkoutStrength, WorkoutHIIT, WorkoutCardio, WorkoutRest:
		return WorkoutType(s)
	default:
		return WorkoutRest
	}
}

// CyclePhase is one phase of the menstrual cycle.
type CyclePhase string

const (
	PhaseMenstruation CyclePhase = "menstruation"
	PhaseFollicular   CyclePhase = "follicular"
	PhaseOvulation    CyclePhase = "ovulation"
	PhaseLuteal       CyclePhase = "luteal"
)

// ParseCyclePhase normalizes a raw phase label. Users without cycle data
// get no phase entries at all, so the named default is follicular (the
// neutral phase: no calorie or macro adjustment).
func ParseCyclePhase(s string) CyclePhase {
	switch CyclePhase(s) {
	case PhaseMenstruation, PhaseFollicular, PhaseOvulation, PhaseLuteal:
		return CyclePhase(s)
	default:
		return PhaseFollicular
	}
}

// ActivityBucket is the categorical form of the 0-100 activity slider.
type ActivityBucket string

const (
	ActivityLow      ActivityBucket = "low"
	ActivityModerate ActivityBucket = "moderate"
	ActivityHigh     ActivityBucket = "high"
)

// BucketActivityLevel maps the slider value to a bucket.
func BucketActivityLevel(level float64) ActivityBucket {
	switch {
	case level < 35:
		return ActivityLow
	case level < 70:
		return ActivityModerate
	default:
		return ActivityHigh
	}
}

// Condition is a health condition code shared between the selection UI
// and the planning core, so detection does not depend on free-text labels.
type Condition string

const (
	ConditionDiabetesType2 Condition = "diabetes_type_2"
	ConditionHypertension  Condition = "hypertension"
	ConditionMenopause     Condition = "menopause"
)

// legacy UI labels still accepted on input
var conditionLabels = map[string]Condition{
	"Diabetes Type 2": ConditionDiabetesType2,
	"Hypertension":    ConditionHypertension,
	"Menopause":       ConditionMenopause,
	"diabetes_type_2": ConditionDiabetesType2,
	"hypertension":    ConditionHypertension,
	"menopause":       ConditionMenopause,
}

// ParseCondition maps a raw condition label to a Condition code.
func ParseCondition(s string) (Condition, bool) {
	c, ok := conditionLabels[s]
	return c, ok
}

// MealSlot is one of the three meal slots of a plan day.
type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealDinner    MealSlot = "dinner"
)

// MealSlots lists the slots in serving order.
func MealSlots() []MealSlot {
	return []MealSlot{MealBreakfast, MealLunch, MealDinner}
}
