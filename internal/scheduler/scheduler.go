package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/nanomoomug/spotify-notify-playlist-update/internal/domain"
)

// Checker runs one poll cycle over all connections and playlists.
type Checker interface {
	CheckForUpdates(ctx context.Context) (*domain.CycleStats, error)
}

// Delays is the backoff table keyed by cycle outcome. Interval applies
// after a clean cycle, ShortBackoff after a connectivity failure,
// LongBackoff after everything else.
type Delays struct {
	Interval     time.Duration
	ShortBackoff time.Duration
	LongBackoff  time.Duration
}

// ForError selects the delay before the next cycle. A nil error means the
// cycle completed and the normal poll interval applies.
func (d Delays) ForError(err error) time.Duration {
	if err == nil {
		return d.Interval
	}
	if domain.KindOf(err) == domain.KindNetwork {
		return d.ShortBackoff
	}
	return d.LongBackoff
}

// Scheduler drives the poll loop forever: run a cycle, sleep for the
// delay its outcome selects, repeat. A failed cycle is never fatal; the
// loop only stops when the context is cancelled.
type Scheduler struct {
	checker Checker
	delays  Delays
	logger  *slog.Logger
}

func NewScheduler(checker Checker, delays Delays, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		checker: checker,
		delays:  delays,
		logger:  logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"interval", s.delays.Interval,
		"short_backoff", s.delays.ShortBackoff,
		"long_backoff", s.delays.LongBackoff,
	)

	for {
		delay := s.runCycle(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) time.Duration {
	_, err := s.checker.CheckForUpdates(ctx)
	delay := s.delays.ForError(err)

	if err != nil {
		s.logger.Error("check for updates failed",
			"kind", domain.KindOf(err),
			"retry_in", delay,
			"error", err,
		)
	}

	return delay
}
