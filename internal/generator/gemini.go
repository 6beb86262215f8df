package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"

	"github.com/emergentai/leafvision/internal/leaf"
	"github.com/emergentai/leafvision/internal/preview"
	"github.com/emergentai/leafvision/pkg/tracing"
)

const DefaultGeminiModel = "gemini-2.5-flash-image"

var ErrNoImageReturned = errors.New("model returned no image")

var prompts = map[leaf.Mode]string{
	leaf.ModeHealthy: "Edit this photo of a plant leaf so it looks fully healthy: remove spots, lesions, " +
		"discoloration and wilting, restore even green chlorophyll and intact tissue. " +
		"Keep the leaf shape, vein pattern, framing and background unchanged.",
	leaf.ModeDiseased: "Edit this photo of a plant leaf so it looks diseased: add realistic leaf spot, " +
		"necrotic patches, yellowing and reddish discoloration typical of plant disease. " +
		"Keep the leaf shape, vein pattern, framing and background unchanged.",
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// contentGenerator is the slice of the genai client the generator uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini edits the uploaded image with a Gemini image model.
type Gemini struct {
	models contentGenerator
	model  string
	log    *slog.Logger
}

func NewGemini(ctx context.Context, cfg GeminiConfig, log *slog.Logger) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{models: client.Models, model: cfg.Model, log: log}, nil
}

func (g *Gemini) Generate(ctx context.Context, req Request) (*Result, error) {
	ctx, span := tracing.Start(ctx, "generator.gemini",
		attribute.String("leafvision.mode", req.Mode.String()),
		attribute.String("leafvision.model", g.model),
		attribute.Int("leafvision.image.bytes", len(req.Image.Data)),
	)
	defer span.End()

	res, err := g.generate(ctx, req)
	if err != nil {
		tracing.Fail(span, err)
		return nil, err
	}
	return res, nil
}

func (g *Gemini) generate(ctx context.Context, req Request) (*Result, error) {
	prompt, ok := prompts[req.Mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", leaf.ErrInvalidMode, req.Mode)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(req.Image.Data, req.Image.MIMEType),
		}, genai.RoleUser),
	}

	resp, err := g.models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("generate content: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			g.log.Debug("gemini returned image",
				slog.String("mode", req.Mode.String()),
				slog.String("mime", part.InlineData.MIMEType),
				slog.Int("bytes", len(part.InlineData.Data)),
			)
			return &Result{
				ImageURL: preview.DataURL(part.InlineData.MIMEType, part.InlineData.Data),
				Backend:  "gemini",
			}, nil
		}
	}

	return nil, ErrNoImageReturned
}
