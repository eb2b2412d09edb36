// Package scheduler runs periodic maintenance jobs such as warming the
// address cache.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type Scheduler struct {
	c       *cron.Cron
	log     zerolog.Logger
	timeout time.Duration
}

// New builds a seconds-precision scheduler. A job still running when
// its next tick arrives is skipped.
func New(log zerolog.Logger) *Scheduler {
	l := cronLogger{log}
	return &Scheduler{
		c: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(l),
			cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l)),
		),
		log:     log,
		timeout: 10 * time.Minute,
	}
}

// Add registers job under spec, e.g. "0 0 3 * * *" or "@every 1h".
// Each run gets its own context bounded by the scheduler timeout.
func (s *Scheduler) Add(spec, name string, job func(ctx context.Context) error) error {
	_, err := s.c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		start := time.Now()
		if err := job(ctx); err != nil {
			s.log.Error().Err(err).Str("job", name).Msg("scheduled job failed")
			return
		}
		s.log.Debug().Str("job", name).Dur("took", time.Since(start)).Msg("scheduled job done")
	})
	if err != nil {
		return fmt.Errorf("schedule %s %q: %w", name, spec, err)
	}
	return nil
}

func (s *Scheduler) Start() { s.c.Start() }

// Stop prevents new runs and waits for running ones or ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.c.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type cronLogger struct{ log zerolog.Logger }

func (l cronLogger) Info(msg string, kv ...any) {
	l.log.Debug().Fields(kv).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, kv ...any) {
	l.log.Error().Err(err).Fields(kv).Msg("cron: " + msg)
}
