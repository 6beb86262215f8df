package page

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/time/rate"

	"github.com/emergentai/leafvision/internal/config"
	"github.com/emergentai/leafvision/internal/metrics"
	"github.com/emergentai/leafvision/pkg/logger"
)

var Module = fx.Module("page",
	fx.Provide(NewStore),
	fx.Provide(NewOrchestrator),
	fx.Provide(NewSweeper),
	fx.Invoke(RunSweeper),
)

// Store keeps page sessions in memory. Nothing survives a restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl       time.Duration
	rateLimit rate.Limit
	burst     int
	now       func() time.Time
	log       *slog.Logger
}

func NewStore(cfg *config.Config, log *slog.Logger) *Store {
	perMinute := cfg.Generation.RatePerMinute
	return &Store{
		sessions:  make(map[string]*Session),
		ttl:       cfg.Session.TTL,
		rateLimit: rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     cfg.Generation.Burst,
		now:       time.Now,
		log:       log.With(logger.Scope("page.store")),
	}
}

// Create opens a session for a freshly rendered page.
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString(), s.now(), rate.NewLimiter(s.rateLimit, s.burst))

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	return sess
}

// Get returns a live session and marks it as seen.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := s.now()
	if now.Sub(sess.idleSince()) > s.ttl {
		s.remove(id)
		return nil, ErrSessionNotFound
	}
	sess.touch(now)
	return sess, nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	return removed
}

func (s *Store) remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	n := len(s.sessions)
	s.mu.Unlock()
	metrics.ActiveSessions.Set(float64(n))
}
