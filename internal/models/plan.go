package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealPlanDay is one stored day of a user's adjusted meal plan.
type MealPlanDay struct {
	ID            uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	DayLabel      string         `gorm:"size:20;not null" json:"day"`
	PlanDate      string         `gorm:"size:10" json:"date"`
	DailyCalories float64        `gorm:"not null" json:"daily_calories"`
	CarbsGrams    float64        `gorm:"not null" json:"carbs_grams"`
	ProteinGrams  float64        `gorm:"not null" json:"protein_grams"`
	FatGrams      float64        `gorm:"not null" json:"fat_grams"`
	SleepHours    float64        `gorm:"not null" json:"sleep_hours"`
	WaterLitres   float64        `gorm:"not null" json:"water_litres"`
	HealthTags    string         `gorm:"type:text" json:"health_tags,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (MealPlanDay) TableName() string {
	return "meal_plan_days"
}

// SuggestedMeal is one stored dish suggestion for a plan day's slot.
type SuggestedMeal struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	DayLabel  string    `gorm:"size:20;not null" json:"day"`
	MealType  string    `gorm:"size:20;not null" json:"meal_type"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Calories  float64   `gorm:"not null" json:"calories"`
	Protein   float64   `gorm:"not null" json:"protein"`
	Carbs     float64   `gorm:"not null" json:"carbs"`
	Fat       float64   `gorm:"not null" json:"fat"`
	Note      string    `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SuggestedMeal) TableName() string {
	return "suggested_meals"
}

// WorkoutPlanDay is one stored day of the generated workout plan, kept
// so the meal plan can be recalibrated without regenerating workouts.
type WorkoutPlanDay struct {
	ID                  uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID              uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	DayLabel            string    `gorm:"size:20;not null" json:"day"`
	ExercisesJSON       string    `gorm:"type:text" json:"exercises_json"`
	TotalCaloriesBurned float64   `gorm:"not null" json:"total_calories_burned"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (WorkoutPlanDay) TableName() string {
	return "workout_plan_days"
}

// CycleDay assigns a cycle phase to a calendar day for a user. Empty for
// users who never supplied cycle data.
type CycleDay struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Date      string    `gorm:"size:10;not null" json:"date"`
	CycleDay  int       `gorm:"not null" json:"cycle_day"`
	Phase     string    `gorm:"size:20;not null" json:"phase"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CycleDay) TableName() string {
	return "cycle_days"
}
