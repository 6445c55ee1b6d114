package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"taskdates/internal/task"
	"taskdates/pkg/log"
)

// Scheduler periodically runs the recurring-task generator so overdue
// series get their upcoming occurrence materialized even when nobody
// completes tasks through the API.
type Scheduler struct {
	l    log.Logger
	uc   task.UseCase
	cron *cron.Cron
	spec string
}

// New creates a Scheduler firing GenerateDue on the given cron spec
// (standard 5-field format, e.g. "15 0 * * *").
func New(l log.Logger, uc task.UseCase, spec string) (*Scheduler, error) {
	s := &Scheduler{
		l:    l,
		uc:   uc,
		cron: cron.New(),
		spec: spec,
	}

	_, err := s.cron.AddFunc(spec, s.generate)
	if err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}

	return s, nil
}

// Start launches the cron loop. It returns immediately.
func (s *Scheduler) Start(ctx context.Context) {
	s.l.Infof(ctx, "scheduler started with spec %q", s.spec)
	s.cron.Start()
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop(ctx context.Context) {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	s.l.Info(ctx, "scheduler stopped")
}

func (s *Scheduler) generate() {
	ctx := context.Background()

	out, err := s.uc.GenerateDue(ctx)
	if err != nil {
		s.l.Errorf(ctx, "scheduled generation failed: %v", err)
		return
	}
	s.l.Debugf(ctx, "scheduled generation spawned %d task(s)", out.Count)
}
