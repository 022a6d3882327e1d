package bootstrap

import (
	"fmt"

	"github.com/lqh2307/mapproxy/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Scheduler re-runs seeding on a cron schedule. It is meant for sidecar
// deployments that keep tile caches fresh while a separate container serves
// traffic; the bootstrap flow itself never schedules anything.
type Scheduler struct {
	cron *cron.Cron
}

// ScheduleSeed registers a recurring seeding pass and starts the scheduler.
// The returned Scheduler keeps running until stopped; a failing pass is
// logged and the schedule stays active.
func (b *Bootstrap) ScheduleSeed(spec string, concurrency int) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		logger.Printf("scheduled seeding pass starting")
		if err := b.RunSeedForeground(concurrency); err != nil {
			logger.Errorf("scheduled seeding pass failed: %v", err)
			return
		}
		logger.Printf("scheduled seeding pass finished")
	})
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	c.Start()
	return &Scheduler{cron: c}, nil
}

// Stop stops the scheduler. A pass already in flight is not interrupted.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
