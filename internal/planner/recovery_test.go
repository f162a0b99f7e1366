package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSleepHours(t *testing.T) {
	tests := []struct {
		name   string
		age    int
		burned float64
		want   float64
	}{
		{"young no workout", 22, 0, 8.0},
		{"adult no workout", 40, 0, 7.5},
		{"senior no workout", 70, 0, 7.0},
		{"moderate burn adds a quarter hour", 40, 300, 7.75},
		{"heavy burn adds half an hour", 40, 500, 8.0},
		{"only the highest threshold applies", 22, 650, 8.5},
		{"below threshold adds nothing", 40, 299, 7.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SleepHours(tt.age, tt.burned))
		})
	}
}

func TestWaterLitres(t *testing.T) {
	tests := []struct {
		name     string
		age      int
		weightKg float64
		burned   float64
		want     float64
	}{
		{"young", 22, 60, 0, 2.4},
		{"adult", 40, 70, 0, 2.45},
		{"senior", 70, 80, 0, 2.4},
		{"moderate burn", 40, 70, 350, 2.95},
		{"heavy burn", 40, 70, 500, 3.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WaterLitres(tt.age, tt.weightKg, tt.burned))
		})
	}
}
