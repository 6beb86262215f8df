// Package page owns the state behind a rendered page: the previewed image,
// the pending generation and the current comparison result.
package page

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/emergentai/leafvision/internal/config"
	"github.com/emergentai/leafvision/internal/generator"
	"github.com/emergentai/leafvision/internal/leaf"
	"github.com/emergentai/leafvision/internal/metrics"
	"github.com/emergentai/leafvision/internal/preview"
	"github.com/emergentai/leafvision/pkg/logger"
	"github.com/emergentai/leafvision/pkg/tracing"
)

// ComparisonSectionID is the element the page scrolls to after a generation.
const ComparisonSectionID = "comparison-section"

// Orchestrator coordinates uploads and generations for page sessions.
type Orchestrator struct {
	store       *Store
	gen         generator.Generator
	uploadOpts  preview.Options
	timeout     time.Duration
	scrollDelay time.Duration
	now         func() time.Time
	log         *slog.Logger
}

// Outcome is a completed generation and the scroll the page should perform.
type Outcome struct {
	View         View
	Result       leaf.ComparisonResult
	ScrollTarget string
	ScrollDelay  time.Duration
}

func NewOrchestrator(cfg *config.Config, store *Store, gen generator.Generator, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		store: store,
		gen:   gen,
		uploadOpts: preview.Options{
			MaxBytes:     cfg.Upload.MaxBytes,
			MaxDimension: cfg.Upload.PreviewMaxDimension,
		},
		timeout:     cfg.Generation.Timeout,
		scrollDelay: cfg.Session.ScrollDelay,
		now:         time.Now,
		log:         log.With(logger.Scope("page")),
	}
}

// NewPage opens a session for a page render. Reloading the page starts over.
func (o *Orchestrator) NewPage() View {
	return o.store.Create().View()
}

// View returns the current state of a session.
func (o *Orchestrator) View(sessionID string) (View, error) {
	sess, err := o.store.Get(sessionID)
	if err != nil {
		return View{}, err
	}
	return sess.View(), nil
}

// SelectImage decodes an uploaded file and makes it the session's preview.
// A file with a non-image type is rejected without touching the preview or
// any decode in flight. A decode overtaken by a newer selection is discarded.
func (o *Orchestrator) SelectImage(ctx context.Context, sessionID string, f preview.File) (View, error) {
	ctx, span := tracing.Start(ctx, "page.select_image",
		attribute.String("leafvision.session.id", sessionID),
		attribute.String("leafvision.file.name", f.Name),
		attribute.String("leafvision.file.type", f.DeclaredType),
	)
	defer span.End()

	view, err := o.selectImage(ctx, sessionID, f)
	if err != nil {
		tracing.Fail(span, err)
		return View{}, err
	}
	return view, nil
}

func (o *Orchestrator) selectImage(ctx context.Context, sessionID string, f preview.File) (View, error) {
	sess, err := o.store.Get(sessionID)
	if err != nil {
		return View{}, err
	}

	if !preview.IsImageType(f.DeclaredType) {
		metrics.Uploads.WithLabelValues(metrics.UploadRejectedType).Inc()
		return View{}, fmt.Errorf("%w: %q", preview.ErrNotImage, f.DeclaredType)
	}

	decodeCtx, sel := sess.BeginSelection(ctx)
	defer sess.EndSelection(sel)

	img, err := preview.Decode(decodeCtx, f, o.uploadOpts)
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() == nil {
			metrics.Uploads.WithLabelValues(metrics.UploadStale).Inc()
			return View{}, ErrStaleSelection
		}
		metrics.Uploads.WithLabelValues(uploadOutcome(err)).Inc()
		o.log.Debug("upload rejected",
			slog.String("session_id", sessionID),
			slog.String("file", f.Name),
			logger.Error(err),
		)
		return View{}, err
	}

	if err := sess.CommitPreview(sel, img); err != nil {
		metrics.Uploads.WithLabelValues(metrics.UploadStale).Inc()
		return View{}, err
	}

	metrics.Uploads.WithLabelValues(metrics.UploadAccepted).Inc()
	o.log.Info("image selected",
		slog.String("session_id", sessionID),
		slog.String("file", img.Name),
		slog.String("mime", img.MIMEType),
		slog.Int("width", img.Width),
		slog.Int("height", img.Height),
		slog.Bool("resized", img.Resized),
	)
	return sess.View(), nil
}

// Generate runs one generation for mode and replaces the session's result.
// On failure the pending indicator clears and the previous state stays.
func (o *Orchestrator) Generate(ctx context.Context, sessionID string, mode leaf.Mode) (*Outcome, error) {
	ctx, span := tracing.Start(ctx, "page.generate",
		attribute.String("leafvision.session.id", sessionID),
		attribute.String("leafvision.mode", mode.String()),
	)
	defer span.End()

	out, err := o.generate(ctx, sessionID, mode)
	if err != nil {
		tracing.Fail(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String("leafvision.result.id", out.Result.ID))
	return out, nil
}

func (o *Orchestrator) generate(ctx context.Context, sessionID string, mode leaf.Mode) (*Outcome, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", leaf.ErrInvalidMode, mode)
	}

	sess, err := o.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	img, err := sess.BeginGeneration(mode)
	if err != nil {
		metrics.Generations.WithLabelValues(mode.String(), generationRefusal(err)).Inc()
		return nil, err
	}
	if !sess.allowGeneration() {
		sess.FinishGeneration(nil)
		metrics.Generations.WithLabelValues(mode.String(), metrics.GenerationRateLimited).Inc()
		return nil, ErrRateLimited
	}

	log := o.log.With(slog.String("session_id", sessionID), slog.String("mode", mode.String()))
	log.Info("generating leaf image")

	genCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := o.now()
	res, err := o.gen.Generate(genCtx, generator.Request{Image: img, Mode: mode})
	metrics.GenerationDuration.WithLabelValues(mode.String()).Observe(time.Since(start).Seconds())

	if err != nil {
		sess.FinishGeneration(nil)
		switch {
		case ctx.Err() != nil:
			log.Info("generation abandoned by client", logger.Error(err))
			metrics.Generations.WithLabelValues(mode.String(), metrics.GenerationCancelled).Inc()
			return nil, ctx.Err()
		case errors.Is(err, context.DeadlineExceeded):
			log.Warn("generation timed out", slog.Duration("timeout", o.timeout))
			metrics.Generations.WithLabelValues(mode.String(), metrics.GenerationTimeout).Inc()
			return nil, fmt.Errorf("%w after %s", ErrGenerationTimeout, o.timeout)
		default:
			log.Error("generation failed", logger.Error(err))
			metrics.Generations.WithLabelValues(mode.String(), metrics.GenerationFailed).Inc()
			return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
		}
	}

	result := leaf.NewComparisonResult(img.DataURL, res.ImageURL, mode, o.now())
	sess.FinishGeneration(&result)

	metrics.Generations.WithLabelValues(mode.String(), metrics.GenerationSuccess).Inc()
	log.Info("generation complete",
		slog.String("result_id", result.ID),
		slog.String("backend", res.Backend),
	)

	return &Outcome{
		View:         sess.View(),
		Result:       result,
		ScrollTarget: ComparisonSectionID,
		ScrollDelay:  o.scrollDelay,
	}, nil
}

func uploadOutcome(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return metrics.UploadCancelled
	case errors.Is(err, preview.ErrNotImage):
		return metrics.UploadRejectedType
	case errors.Is(err, preview.ErrTooLarge):
		return metrics.UploadTooLarge
	default:
		return metrics.UploadDecodeFailed
	}
}

func generationRefusal(err error) string {
	switch {
	case errors.Is(err, ErrGenerationPending):
		return metrics.GenerationBusy
	case errors.Is(err, ErrNoImage):
		return metrics.GenerationNoImage
	default:
		return metrics.GenerationFailed
	}
}
