package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfile holds the biometrics and preferences the planning engine
// reads. Validation of ranges (weight 25-200kg etc.) happens in the
// onboarding client before submission.
type UserProfile struct {
	ID            uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Age           int            `gorm:"not null" json:"age"`
	WeightKg      float64        `gorm:"not null" json:"weight_kg"`
	HeightFt      float64        `gorm:"not null" json:"height_ft"`
	Goal          string         `gorm:"size:20;not null;default:'maintain'" json:"goal"`
	ActivityLevel float64        `gorm:"not null;default:0" json:"activity_level"`
	Intensity     string         `gorm:"size:20" json:"intensity"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// HealthCondition is one health condition entry for a user, stored as a
// stable condition code rather than the UI's display label.
type HealthCondition struct {
	ID            uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID        uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	ConditionCode string    `gorm:"size:50;not null" json:"condition_code"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (HealthCondition) TableName() string {
	return "health_conditions"
}
