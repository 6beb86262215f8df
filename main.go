// Package main runs the LeafVision website: a single page that previews an
// uploaded leaf image and shows a generated healthy or diseased version of it.
package main

import (
	"embed"
	"io/fs"
	"log"
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/emergentai/leafvision/internal/config"
	"github.com/emergentai/leafvision/internal/generator"
	"github.com/emergentai/leafvision/internal/handlers"
	"github.com/emergentai/leafvision/internal/page"
	"github.com/emergentai/leafvision/internal/server"
	"github.com/emergentai/leafvision/internal/tracing"
	"github.com/emergentai/leafvision/pkg/logger"
)

//go:embed static
var staticFS embed.FS

func main() {
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal("Failed to access static files:", err)
	}

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		fx.Supply(server.Assets{FS: staticSub}),

		// Infrastructure
		logger.Module,
		config.Module,
		tracing.Module,
		server.Module,

		// Generation backend (placeholder or Gemini)
		generator.Module,

		// Page sessions and the HTTP surface
		page.Module,
		handlers.Module,
	).Run()
}
