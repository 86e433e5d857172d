// Package scheduler runs the periodic reference-data sync.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const runTimeout = 10 * time.Minute

// SyncRunner runs one sync pass
type SyncRunner interface {
	Run(ctx context.Context) (int, error)
}

// Scheduler triggers the sync job on a cron schedule. The job is
// best-effort: failures are logged and the next tick runs regardless.
type Scheduler struct {
	cron *cron.Cron
}

// Start schedules the sync job with the given cron expression (e.g. "@daily")
// and starts the scheduler in its own goroutine.
func Start(spec string, runner SyncRunner) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		if _, err := runner.Run(ctx); err != nil {
			log.Error().Err(err).Msg("Scheduled sync failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid sync schedule %q: %w", spec, err)
	}

	c.Start()
	log.Info().Str("schedule", spec).Msg("Sync scheduler started")

	return &Scheduler{cron: c}, nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
