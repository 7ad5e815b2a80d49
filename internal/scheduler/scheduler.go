package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Refresher re-activates widgets whose date window has rolled over.
type Refresher interface {
	RefreshStale() int
}

type Scheduler struct {
	refresher    Refresher
	pollInterval time.Duration
	logger       *slog.Logger
}

func New(refresher Refresher, pollInterval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		refresher:    refresher,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	s.logger.Info("scheduler started", slog.Duration("poll_interval", s.pollInterval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Scheduler) tick() {
	if n := s.refresher.RefreshStale(); n > 0 {
		s.logger.Info("widgets refreshed after day rollover", slog.Int("widgets", n))
	}
}
