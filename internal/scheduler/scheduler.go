package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron"
)

// Recalibrator is what the nightly job needs from the plan service.
type Recalibrator interface {
	ListUsersWithCycleData(ctx context.Context) ([]uuid.UUID, error)
	RecalibrateUser(ctx context.Context, userID uuid.UUID) error
}

// Scheduler runs the nightly recalibration job. Cycle-phase adjustments
// depend on the calendar date, so plans for users with cycle data drift
// stale overnight unless recomputed.
type Scheduler struct {
	cron  *cron.Cron
	plans Recalibrator
	spec  string
}

// New creates a scheduler with the given cron spec, defaulting to 02:00
// server time.
func New(plans Recalibrator, spec string) *Scheduler {
	if spec == "" {
		spec = "0 0 2 * * *"
	}
	return &Scheduler{
		cron:  cron.New(),
		plans: plans,
		spec:  spec,
	}
}

// Start registers the nightly job and starts the cron loop.
func (s *Scheduler) Start() error {
	if err := s.cron.AddFunc(s.spec, s.runRecalibration); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("[Scheduler] nightly recalibration scheduled (%s)", s.spec)
	return nil
}

// Stop stops the cron loop. A run already in progress finishes.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runRecalibration() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	users, err := s.plans.ListUsersWithCycleData(ctx)
	if err != nil {
		log.Printf("[Scheduler] failed to list users for recalibration: %v", err)
		return
	}

	var failed int
	for _, userID := range users {
		if err := s.plans.RecalibrateUser(ctx, userID); err != nil {
			log.Printf("[Scheduler] failed to recalibrate user %s: %v", userID, err)
			failed++
		}
	}
	log.Printf("[Scheduler] recalibration finished: %d users, %d failed", len(users), failed)
}
