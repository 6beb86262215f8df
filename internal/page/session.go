package page

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/emergentai/leafvision/internal/leaf"
	"github.com/emergentai/leafvision/internal/preview"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrStaleSelection    = errors.New("selection superseded by a newer upload")
	ErrNoImage           = errors.New("no image loaded")
	ErrGenerationPending = errors.New("a generation is already in progress")
	ErrRateLimited       = errors.New("too many generation requests")
	ErrGenerationFailed  = errors.New("generation failed")
	ErrGenerationTimeout = errors.New("generation timed out")
)

// Selection identifies one file selection. Only the latest selection may
// install a preview.
type Selection uint64

// Session is the state behind one rendered page.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu           sync.Mutex
	lastSeen     time.Time
	selection    Selection
	cancelDecode context.CancelFunc
	preview      *preview.Image
	pending      leaf.Mode
	result       *leaf.ComparisonResult
	limiter      *rate.Limiter
}

// View is a copy of the session state for rendering.
type View struct {
	SessionID string
	Preview   *preview.Image
	Pending   leaf.Mode
	Result    *leaf.ComparisonResult
}

// HasImage reports whether a preview is loaded.
func (v View) HasImage() bool { return v.Preview != nil }

// CanGenerate reports whether the generate actions are enabled.
func (v View) CanGenerate() bool { return v.Preview != nil && v.Pending == "" }

func newSession(id string, now time.Time, limiter *rate.Limiter) *Session {
	return &Session{ID: id, CreatedAt: now, lastSeen: now, limiter: limiter}
}

// allowGeneration consumes one token from the session's generation limiter.
func (s *Session) allowGeneration() bool {
	return s.limiter == nil || s.limiter.Allow()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// BeginSelection starts a new file selection. Any decode still running for an
// older selection is cancelled.
func (s *Session) BeginSelection(ctx context.Context) (context.Context, Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelDecode != nil {
		s.cancelDecode()
	}
	s.selection++
	ctx, cancel := context.WithCancel(ctx)
	s.cancelDecode = cancel
	return ctx, s.selection
}

// EndSelection releases the decode context of sel if it is still current.
func (s *Session) EndSelection(sel Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sel == s.selection && s.cancelDecode != nil {
		s.cancelDecode()
		s.cancelDecode = nil
	}
}

// CommitPreview installs img unless a newer selection has started.
func (s *Session) CommitPreview(sel Selection, img *preview.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sel != s.selection {
		return ErrStaleSelection
	}
	s.preview = img
	return nil
}

// BeginGeneration marks mode as pending and returns the image to transform.
// At most one generation is pending per session.
func (s *Session) BeginGeneration(mode leaf.Mode) (preview.Image, error) {
	if !mode.Valid() {
		return preview.Image{}, leaf.ErrInvalidMode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.preview == nil {
		return preview.Image{}, ErrNoImage
	}
	if s.pending != "" {
		return preview.Image{}, ErrGenerationPending
	}
	s.pending = mode
	return *s.preview, nil
}

// FinishGeneration clears the pending indicator and, on success, replaces the
// current result.
func (s *Session) FinishGeneration(result *leaf.ComparisonResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = ""
	if result != nil {
		r := *result
		s.result = &r
	}
}

// View snapshots the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{SessionID: s.ID, Pending: s.pending}
	if s.preview != nil {
		p := *s.preview
		v.Preview = &p
	}
	if s.result != nil {
		r := *s.result
		v.Result = &r
	}
	return v
}
