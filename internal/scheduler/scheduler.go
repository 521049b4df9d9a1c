// Package scheduler triggers periodic reloads so the dashboard picks up new
// monthly releases without a manual refresh.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"InflationPulse/internal/orchestrator"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the refresh cron task.
type Scheduler struct {
	Cron *cron.Cron
	Orc  *orchestrator.Orchestrator
	Ctx  context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, orc *orchestrator.Orchestrator) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Orc:  orc,
		Ctx:  ctx,
	}
}

// Register registers the periodic refresh task.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, func() {
		log.Println("[INFO] scheduled refresh")
		s.Orc.Reload(s.Ctx)
	}); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}
