// Package leaf holds the domain types shared by the upload, generation and
// comparison views.
package leaf

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mode is the direction of a transformation.
type Mode string

const (
	ModeHealthy  Mode = "healthy"
	ModeDiseased Mode = "diseased"
)

var ErrInvalidMode = errors.New("invalid mode")

// Modes returns every mode in display order.
func Modes() []Mode {
	return []Mode{ModeHealthy, ModeDiseased}
}

// ParseMode accepts "healthy" or "diseased", ignoring case and surrounding space.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

func (m Mode) Valid() bool {
	return m == ModeHealthy || m == ModeDiseased
}

func (m Mode) String() string {
	return string(m)
}

// Title is the heading of the comparison section.
func (m Mode) Title() string {
	if m == ModeHealthy {
		return "Original vs. Healthy Leaf"
	}
	return "Original vs. Diseased Leaf"
}

// VersionLabel names the generated card.
func (m Mode) VersionLabel() string {
	if m == ModeHealthy {
		return "Healthy Version"
	}
	return "Diseased Version"
}

func (m Mode) ButtonLabel() string {
	if m == ModeHealthy {
		return "Generate Healthy Version"
	}
	return "Generate Diseased Version"
}

// Analysis is the caption shown under the comparison.
func (m Mode) Analysis() string {
	if m == ModeHealthy {
		return "The AI model has analyzed the leaf's structure and removed disease markers, adjusting chlorophyll levels and tissue health indicators to transform it into a healthy state."
	}
	return "The AI model has analyzed the leaf's structure and applied disease markers like reduced chlorophyll, necrotic tissues, and discoloration patterns typical of plant disease."
}

// Color is the theme color token used for mode-specific styling.
func (m Mode) Color() string {
	if m == ModeHealthy {
		return "success"
	}
	return "error"
}

// ComparisonResult pairs an original image with its generated counterpart.
// A result is never mutated; a new generation replaces it.
type ComparisonResult struct {
	ID             string
	OriginalImage  string
	GeneratedImage string
	Mode           Mode
	GeneratedAt    time.Time
}

// NewComparisonResult stamps a fresh identity on a generated pair.
func NewComparisonResult(original, generated string, mode Mode, at time.Time) ComparisonResult {
	return ComparisonResult{
		ID:             uuid.NewString(),
		OriginalImage:  original,
		GeneratedImage: generated,
		Mode:           mode,
		GeneratedAt:    at,
	}
}
