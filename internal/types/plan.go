package types

// Profile carries the biometrics and preferences a plan run needs.
// It is assembled once from the onboarding payload and treated as
// immutable for the duration of a run.
type Profile struct {
	Age           int      `json:"age"`
	WeightKg      float64  `json:"weight_kg"`
	HeightFt      float64  `json:"height_ft"` // feet-decimal encoding, 5.9 = 5'9"
	Diseases      []string `json:"diseases"`
	Goal          Goal     `json:"goal"`
	ActivityLevel float64  `json:"activity_level"` // 0-100 slider value
}

// Exercise is one exercise of a workout day.
type Exercise struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	CaloriesBurned float64 `json:"calories_burned"`
}

// WorkoutDay is one program day of the generated workout plan.
type WorkoutDay struct {
	Day                 string     `json:"day"` // "Day <n>"
	Exercises           []Exercise `json:"exercises"`
	TotalCaloriesBurned float64    `json:"total_calories_burned"`
}

// CycleDay assigns a cycle phase to one calendar day.
type CycleDay struct {
	Date     string `json:"date"` // YYYY-MM-DD
	CycleDay int    `json:"cycle_day"`
	Phase    string `json:"phase"`
}

// MealPlanEntry is one computed day of the adjusted meal plan. The
// pipeline receives a skeleton entry (day label and date only) and
// overwrites the numeric fields.
type MealPlanEntry struct {
	Day           string  `json:"day"`
	Date          string  `json:"date"`
	DailyCalories float64 `json:"daily_calories"`
	CarbsGrams    float64 `json:"carbs_grams"`
	ProteinGrams  float64 `json:"protein_grams"`
	FatGrams      float64 `json:"fat_grams"`
	SleepHours    float64 `json:"sleep_hours"`
	WaterLitres   float64 `json:"water_litres"`
	HealthTags    string  `json:"health_tags,omitempty"` // comma-joined, empty when none
}

// SuggestedMeal is one dish suggestion for a meal slot. Values come from
// the nutrition API when a match is found, otherwise from the computed
// targets with an explanatory note.
type SuggestedMeal struct {
	Name     string   `json:"name"`
	MealType MealSlot `json:"meal_type"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Note     string   `json:"note,omitempty"`
}

// PlanResult is the output of one planning run. SuggestedMeals is keyed
// by day label and always holds three entries per key, in
// breakfast/lunch/dinner order.
type PlanResult struct {
	AdjustedMealPlan []MealPlanEntry            `json:"adjusted_meal_plan"`
	SuggestedMeals   map[string][]SuggestedMeal `json:"suggested_meals"`
	SkippedDays      int                        `json:"skipped_days"`
}
