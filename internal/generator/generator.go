// Package generator produces the transformed leaf image for a mode.
package generator

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/emergentai/leafvision/internal/config"
	"github.com/emergentai/leafvision/internal/leaf"
	"github.com/emergentai/leafvision/internal/preview"
	"github.com/emergentai/leafvision/pkg/logger"
)

var Module = fx.Module("generator",
	fx.Provide(New),
)

// Request asks for one transformed version of an image.
type Request struct {
	Image preview.Image
	Mode  leaf.Mode
}

// Result references the generated image.
type Result struct {
	ImageURL string
	Backend  string
}

// Generator turns an uploaded leaf into its healthy or diseased version.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

// New builds the backend selected by configuration.
func New(cfg *config.Config, log *slog.Logger) (Generator, error) {
	log = log.With(logger.Scope("generator"))
	gc := cfg.Generation

	switch gc.Backend {
	case config.BackendPlaceholder:
		log.Info("using placeholder generator", slog.Duration("delay", gc.Delay))
		return NewPlaceholder(gc.Delay, map[leaf.Mode]string{
			leaf.ModeHealthy:  gc.HealthyPlaceholderURL,
			leaf.ModeDiseased: gc.DiseasedPlaceholderURL,
		}), nil
	case config.BackendGemini:
		log.Info("using gemini generator", slog.String("model", gc.GeminiImageModel))
		return NewGemini(context.Background(), GeminiConfig{
			APIKey: gc.GeminiAPIKey,
			Model:  gc.GeminiImageModel,
		}, log)
	default:
		return nil, fmt.Errorf("unknown generation backend %q", gc.Backend)
	}
}
