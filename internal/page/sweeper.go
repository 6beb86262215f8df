package page

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"

	"github.com/emergentai/leafvision/internal/config"
	"github.com/emergentai/leafvision/pkg/logger"
)

// Sweeper drops idle page sessions on a fixed interval.
type Sweeper struct {
	cron     *cron.Cron
	store    *Store
	interval time.Duration
	log      *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewSweeper schedules the idle-session sweep. Intervals below one second
// are rounded up by the cron "@every" directive.
func NewSweeper(store *Store, cfg *config.Config, log *slog.Logger) (*Sweeper, error) {
	if cfg.Session.SweepInterval <= 0 {
		return nil, fmt.Errorf("invalid session sweep interval %s", cfg.Session.SweepInterval)
	}

	s := &Sweeper{
		cron:     cron.New(),
		store:    store,
		interval: cfg.Session.SweepInterval,
		log:      log.With(logger.Scope("page.sweeper")),
	}

	schedule := "@every " + s.interval.String()
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("schedule session sweep %q: %w", schedule, err)
	}
	return s, nil
}

// run executes one sweep
func (s *Sweeper) run() {
	start := time.Now()
	removed := s.store.Sweep()
	if removed == 0 {
		s.log.Debug("no idle page sessions", slog.Duration("duration", time.Since(start)))
		return
	}
	s.log.Info("expired idle page sessions",
		slog.Int("removed", removed),
		slog.Int("active", s.store.Len()),
		slog.Duration("duration", time.Since(start)),
	)
}

// Start begins the schedule
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	s.cron.Start()
	s.running = true
	s.log.Info("session sweeper started", slog.Duration("interval", s.interval))
	return nil
}

// Stop waits for a running sweep to finish or ctx to end.
func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
		s.log.Info("session sweeper stopped")
	case <-ctx.Done():
		s.log.Warn("session sweeper stop timeout")
	}
	s.running = false
	return nil
}

// IsRunning reports whether the schedule is active.
func (s *Sweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// RunSweeper ties the sweeper to the application lifecycle.
func RunSweeper(lc fx.Lifecycle, s *Sweeper) {
	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.Stop,
	})
}
