package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lunafit/lunafit-backend/internal/models"
	"github.com/lunafit/lunafit-backend/internal/planner"
	"github.com/lunafit/lunafit-backend/internal/types"
)

var (
	// ErrPlanLengthMismatch flags parallel-indexed plan inputs of
	// different lengths. The engine fails fast rather than producing a
	// partially aligned plan.
	ErrPlanLengthMismatch = errors.New("workout plan and meal plan must have the same number of days")

	// ErrNoPlan means the user has no stored plan yet.
	ErrNoPlan = errors.New("no meal plan found for user")
)

// MealPlanService runs the plan-adjustment pipeline and persists its
// results. Both the preview endpoint and the authoritative generation
// path go through the same GeneratePlan, so the two can never drift.
type MealPlanService struct {
	db        *gorm.DB
	suggester MealSuggester
}

// Ensure MealPlanService implements IPlanService
var _ IPlanService = (*MealPlanService)(nil)

// NewMealPlanService creates a new MealPlanService instance.
func NewMealPlanService(db *gorm.DB, suggester MealSuggester) *MealPlanService {
	return &MealPlanService{
		db:        db,
		suggester: suggester,
	}
}

// GeneratePlan computes the adjusted meal plan and meal suggestions for
// every program day. Days whose label does not parse as "Day <n>" are
// skipped and counted in the result. The intensity label is carried to
// persistence only; the adjustment math keys off the profile and the
// per-day workout data.
func (s *MealPlanService) GeneratePlan(ctx context.Context, profile types.Profile, workoutPlan []types.WorkoutDay, initialPlan []types.MealPlanEntry, cyclePhases []types.CycleDay, intensity string) (*types.PlanResult, error) {
	if len(workoutPlan) != len(initialPlan) {
		return nil, fmt.Errorf("%w: %d workout days, %d meal days", ErrPlanLengthMismatch, len(workoutPlan), len(initialPlan))
	}

	cond := planner.ResolveConditions(profile.Diseases)

	result := &types.PlanResult{
		AdjustedMealPlan: make([]types.MealPlanEntry, 0, len(workoutPlan)),
		SuggestedMeals:   make(map[string][]types.SuggestedMeal, len(workoutPlan)),
	}

	for i, day := range workoutPlan {
		if _, ok := planner.ParseDayNumber(day.Day); !ok {
			log.Printf("[MealPlanService] skipping day with unparseable label %q", day.Day)
			result.SkippedDays++
			continue
		}

		skeleton := initialPlan[i]
		phase := planner.PhaseForDate(cyclePhases, skeleton.Date)

		entry := planner.BuildDayPlan(profile, day, skeleton, phase, cond)
		result.AdjustedMealPlan = append(result.AdjustedMealPlan, entry)
		result.SuggestedMeals[day.Day] = s.suggester.SuggestMealsForDay(ctx, entry, profile.Goal, phase, cond)
	}

	return result, nil
}

// SavePlan stores the profile, workout plan, adjusted meal plan,
// suggestions, and cycle data for a user in one transaction, replacing
// any previous plan.
func (s *MealPlanService) SavePlan(ctx context.Context, userID uuid.UUID, profile types.Profile, workoutPlan []types.WorkoutDay, result *types.PlanResult, cyclePhases []types.CycleDay, intensity string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveProfile(tx, userID, profile, intensity); err != nil {
			return err
		}

		for _, table := range []interface{}{
			&models.WorkoutPlanDay{}, &models.MealPlanDay{}, &models.SuggestedMeal{}, &models.CycleDay{},
		} {
			if err := tx.Unscoped().Where("user_id = ?", userID).Delete(table).Error; err != nil {
				return fmt.Errorf("failed to clear previous plan: %w", err)
			}
		}

		for _, day := range workoutPlan {
			exercises, err := json.Marshal(day.Exercises)
			if err != nil {
				return fmt.Errorf("failed to marshal exercises for %s: %w", day.Day, err)
			}
			record := models.WorkoutPlanDay{
				ID:                  uuid.New(),
				UserID:              userID,
				DayLabel:            day.Day,
				ExercisesJSON:       string(exercises),
				TotalCaloriesBurned: day.TotalCaloriesBurned,
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to save workout day %s: %w", day.Day, err)
			}
		}

		for _, entry := range result.AdjustedMealPlan {
			record := models.MealPlanDay{
				ID:            uuid.New(),
				UserID:        userID,
				DayLabel:      entry.Day,
				PlanDate:      entry.Date,
				DailyCalories: entry.DailyCalories,
				CarbsGrams:    entry.CarbsGrams,
				ProteinGrams:  entry.ProteinGrams,
				FatGrams:      entry.FatGrams,
				SleepHours:    entry.SleepHours,
				WaterLitres:   entry.WaterLitres,
				HealthTags:    entry.HealthTags,
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to save meal plan day %s: %w", entry.Day, err)
			}

			for _, meal := range result.SuggestedMeals[entry.Day] {
				mealRecord := models.SuggestedMeal{
					ID:       uuid.New(),
					UserID:   userID,
					DayLabel: entry.Day,
					MealType: string(meal.MealType),
					Name:     meal.Name,
					Calories: meal.Calories,
					Protein:  meal.Protein,
					Carbs:    meal.Carbs,
					Fat:      meal.Fat,
					Note:     meal.Note,
				}
				if err := tx.Create(&mealRecord).Error; err != nil {
					return fmt.Errorf("failed to save suggested meal for %s: %w", entry.Day, err)
				}
			}
		}

		for _, cd := range cyclePhases {
			record := models.CycleDay{
				ID:       uuid.New(),
				UserID:   userID,
				Date:     cd.Date,
				CycleDay: cd.CycleDay,
				Phase:    cd.Phase,
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to save cycle day %s: %w", cd.Date, err)
			}
		}

		return nil
	})
}

func saveProfile(tx *gorm.DB, userID uuid.UUID, profile types.Profile, intensity string) error {
	var existing models.UserProfile
	err := tx.Where("user_id = ?", userID).First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	existing.UserID = userID
	existing.Age = profile.Age
	existing.WeightKg = profile.WeightKg
	existing.HeightFt = profile.HeightFt
	existing.Goal = string(profile.Goal)
	existing.ActivityLevel = profile.ActivityLevel
	existing.Intensity = intensity

	if existing.ID == uuid.Nil {
		existing.ID = uuid.New()
		if err := tx.Create(&existing).Error; err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
	} else if err := tx.Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.HealthCondition{}).Error; err != nil {
		return fmt.Errorf("failed to clear health conditions: %w", err)
	}
	for _, d := range profile.Diseases {
		code, ok := types.ParseCondition(d)
		if !ok {
			continue
		}
		record := models.HealthCondition{ID: uuid.New(), UserID: userID, ConditionCode: string(code)}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to save health condition: %w", err)
		}
	}
	return nil
}

// GetCurrentPlan returns the stored plan for a user, days ordered by
// program-day number and meals in breakfast/lunch/dinner order.
func (s *MealPlanService) GetCurrentPlan(ctx context.Context, userID uuid.UUID) (*types.CurrentPlanResponse, error) {
	var days []models.MealPlanDay
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&days).Error; err != nil {
		return nil, fmt.Errorf("failed to load meal plan: %w", err)
	}
	if len(days) == 0 {
		return nil, ErrNoPlan
	}

	sort.Slice(days, func(i, j int) bool {
		a, _ := planner.ParseDayNumber(days[i].DayLabel)
		b, _ := planner.ParseDayNumber(days[j].DayLabel)
		return a < b
	})

	var meals []models.SuggestedMeal
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("failed to load suggested meals: %w", err)
	}

	resp := &types.CurrentPlanResponse{
		MealPlan:       make([]types.MealPlanEntry, 0, len(days)),
		SuggestedMeals: make(map[string][]types.SuggestedMeal),
	}
	for _, d := range days {
		resp.MealPlan = append(resp.MealPlan, types.MealPlanEntry{
			Day:           d.DayLabel,
			Date:          d.PlanDate,
			DailyCalories: d.DailyCalories,
			CarbsGrams:    d.CarbsGrams,
			ProteinGrams:  d.ProteinGrams,
			FatGrams:      d.FatGrams,
			SleepHours:    d.SleepHours,
			WaterLitres:   d.WaterLitres,
			HealthTags:    d.HealthTags,
		})
	}

	slotOrder := map[string]int{"breakfast": 0, "lunch": 1, "dinner": 2}
	sort.SliceStable(meals, func(i, j int) bool {
		return slotOrder[meals[i].MealType] < slotOrder[meals[j].MealType]
	})
	for _, m := range meals {
		resp.SuggestedMeals[m.DayLabel] = append(resp.SuggestedMeals[m.DayLabel], types.SuggestedMeal{
			Name:     m.Name,
			MealType: types.MealSlot(m.MealType),
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fat:      m.Fat,
			Note:     m.Note,
		})
	}

	return resp, nil
}

// RecalibrateUser regenerates a user's plan from their stored inputs.
// The nightly job uses this to re-apply cycle-phase adjustments as the
// calendar advances through the stored cycle days.
func (s *MealPlanService) RecalibrateUser(ctx context.Context, userID uuid.UUID) error {
	var stored models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoPlan
		}
		return fmt.Errorf("failed to load profile: %w", err)
	}

	var conditions []models.HealthCondition
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&conditions).Error; err != nil {
		return fmt.Errorf("failed to load health conditions: %w", err)
	}

	profile := types.Profile{
		Age:           stored.Age,
		WeightKg:      stored.WeightKg,
		HeightFt:      stored.HeightFt,
		Goal:          types.ParseGoal(stored.Goal),
		ActivityLevel: stored.ActivityLevel,
	}
	for _, c := range conditions {
		profile.Diseases = append(profile.Diseases, c.ConditionCode)
	}

	var workoutDays []models.WorkoutPlanDay
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&workoutDays).Error; err != nil {
		return fmt.Errorf("failed to load workout plan: %w", err)
	}
	var mealDays []models.MealPlanDay
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&mealDays).Error; err != nil {
		return fmt.Errorf("failed to load meal plan: %w", err)
	}
	if len(workoutDays) == 0 || len(mealDays) == 0 {
		return ErrNoPlan
	}

	sort.Slice(workoutDays, func(i, j int) bool {
		a, _ := planner.ParseDayNumber(workoutDays[i].DayLabel)
		b, _ := planner.ParseDayNumber(workoutDays[j].DayLabel)
		return a < b
	})
	sort.Slice(mealDays, func(i, j int) bool {
		a, _ := planner.ParseDayNumber(mealDays[i].DayLabel)
		b, _ := planner.ParseDayNumber(mealDays[j].DayLabel)
		return a < b
	})

	workoutPlan := make([]types.WorkoutDay, 0, len(workoutDays))
	for _, wd := range workoutDays {
		var exercises []types.Exercise
		if wd.ExercisesJSON != "" {
			if err := json.Unmarshal([]byte(wd.ExercisesJSON), &exercises); err != nil {
				return fmt.Errorf("failed to decode exercises for %s: %w", wd.DayLabel, err)
			}
		}
		workoutPlan = append(workoutPlan, types.WorkoutDay{
			Day:                 wd.DayLabel,
			Exercises:           exercises,
			TotalCaloriesBurned: wd.TotalCaloriesBurned,
		})
	}

	// Stored meal days become the skeleton; the pipeline overwrites every
	// numeric field, only labels and dates carry over.
	skeleton := make([]types.MealPlanEntry, 0, len(mealDays))
	for _, md := range mealDays {
		skeleton = append(skeleton, types.MealPlanEntry{Day: md.DayLabel, Date: md.PlanDate})
	}

	var cycleDays []models.CycleDay
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&cycleDays).Error; err != nil {
		return fmt.Errorf("failed to load cycle days: %w", err)
	}
	cyclePhases := make([]types.CycleDay, 0, len(cycleDays))
	for _, cd := range cycleDays {
		cyclePhases = append(cyclePhases, types.CycleDay{Date: cd.Date, CycleDay: cd.CycleDay, Phase: cd.Phase})
	}

	result, err := s.GeneratePlan(ctx, profile, workoutPlan, skeleton, cyclePhases, stored.Intensity)
	if err != nil {
		return fmt.Errorf("failed to regenerate plan: %w", err)
	}

	return s.SavePlan(ctx, userID, profile, workoutPlan, result, cyclePhases, stored.Intensity)
}

// ListUsersWithCycleData returns the IDs of users who have cycle days on
// record, for the nightly recalibration job.
func (s *MealPlanService) ListUsersWithCycleData(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).Model(&models.CycleDay{}).Distinct("user_id").Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users with cycle data: %w", err)
	}
	return ids, nil
}
