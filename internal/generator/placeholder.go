package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/emergentai/leafvision/internal/leaf"
)

// Placeholder waits a fixed delay and returns a fixed image per mode.
// It ignores the uploaded image.
type Placeholder struct {
	delay time.Duration
	urls  map[leaf.Mode]string
}

func NewPlaceholder(delay time.Duration, urls map[leaf.Mode]string) *Placeholder {
	return &Placeholder{delay: delay, urls: urls}
}

func (p *Placeholder) Generate(ctx context.Context, req Request) (*Result, error) {
	url, ok := p.urls[req.Mode]
	if !ok || url == "" {
		return nil, fmt.Errorf("no placeholder image for mode %q", req.Mode)
	}

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return &Result{ImageURL: url, Backend: "placeholder"}, nil
}
