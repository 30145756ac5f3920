package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler re-runs a scenario on a cron cadence. Watch mode lets a
// researcher live-edit the scenario file and keep the exported outputs
// and the SQLite history fresh without restarting the tool.
type Scheduler struct {
	Cron *cron.Cron
	Ctx  context.Context
	run  func()
}

// NewScheduler creates a Scheduler around the run function. The run
// function must be self-contained: it reloads the scenario, runs a
// fresh engine and writes the outputs.
func NewScheduler(ctx context.Context, run func()) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Ctx:  ctx,
		run:  run,
	}
}

// Register adds the watch task under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.guardedRun); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

func (s *Scheduler) guardedRun() {
	select {
	case <-s.Ctx.Done():
		return
	default:
	}
	s.run()
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] watch scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] watch scheduler stopped")
}

// RunNow executes the watch task immediately (initial run on startup).
func (s *Scheduler) RunNow() {
	s.guardedRun()
}
