package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/emergentai/leafvision/pkg/logger"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

const (
	BackendPlaceholder = "placeholder"
	BackendGemini      = "gemini"
)

// Config holds all application configuration
type Config struct {
	Port          int    `env:"WEBSITE_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:""`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"90s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Upload     UploadConfig
	Generation GenerationConfig
	Session    SessionConfig
	Otel       OtelConfig
}

// UploadConfig bounds what the uploader accepts.
type UploadConfig struct {
	MaxBytes            int64 `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"`
	PreviewMaxDimension int   `env:"PREVIEW_MAX_DIMENSION" envDefault:"1600"`
}

// GenerationConfig selects and tunes the generation backend.
type GenerationConfig struct {
	Backend       string        `env:"GENERATION_BACKEND" envDefault:"placeholder"`
	Delay         time.Duration `env:"GENERATION_DELAY" envDefault:"2s"`
	Timeout       time.Duration `env:"GENERATION_TIMEOUT" envDefault:"60s"`
	RatePerMinute int           `env:"GENERATION_RATE_PER_MINUTE" envDefault:"20"`
	Burst         int           `env:"GENERATION_BURST" envDefault:"5"`

	HealthyPlaceholderURL  string `env:"HEALTHY_PLACEHOLDER_URL" envDefault:"https://images.unsplash.com/photo-1518495973542-4542c06a5843?w=800&h=600&fit=crop"`
	DiseasedPlaceholderURL string `env:"DISEASED_PLACEHOLDER_URL" envDefault:"https://images.unsplash.com/photo-1465146344425-f00d5f5c8f07?w=800&h=600&fit=crop"`

	GeminiAPIKey     string `env:"GEMINI_API_KEY"`
	GeminiImageModel string `env:"GEMINI_IMAGE_MODEL" envDefault:"gemini-2.5-flash-image"`
}

// SessionConfig controls page session lifetime and the post-generation scroll.
type SessionConfig struct {
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"1h"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`
	ScrollDelay   time.Duration `env:"SCROLL_DELAY" envDefault:"100ms"`
}

// NewConfig loads .env files if present, then parses the environment.
func NewConfig(log *slog.Logger) (*Config, error) {
	log = log.With(logger.Scope("config"))

	workspaceRoot := filepath.Join("..", "..", ".env")
	if err := godotenv.Load(workspaceRoot); err != nil {
		log.Debug(".env file not found, using environment", slog.String("path", workspaceRoot))
	}
	_ = godotenv.Load()

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("addr", cfg.Addr()),
		slog.String("generation_backend", cfg.Generation.Backend),
	)
	return cfg, nil
}

// Parse reads Config from the environment and validates it.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerAddress + ":" + strconv.Itoa(c.Port)
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid WEBSITE_PORT %d", c.Port)
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	if c.Upload.PreviewMaxDimension <= 0 {
		return fmt.Errorf("PREVIEW_MAX_DIMENSION must be positive")
	}
	if c.Generation.Timeout <= 0 {
		return fmt.Errorf("GENERATION_TIMEOUT must be positive")
	}
	if c.Generation.RatePerMinute <= 0 || c.Generation.Burst <= 0 {
		return fmt.Errorf("GENERATION_RATE_PER_MINUTE and GENERATION_BURST must be positive")
	}
	if c.Otel.SamplingRate < 0 || c.Otel.SamplingRate > 1 {
		return fmt.Errorf("OTEL_SAMPLING_RATE must be between 0 and 1")
	}
	if c.Session.TTL <= 0 || c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_TTL and SESSION_SWEEP_INTERVAL must be positive")
	}

	switch c.Generation.Backend {
	case BackendPlaceholder:
	case BackendGemini:
		if c.Generation.GeminiAPIKey == "" {
			return fmt.Errorf("GENERATION_BACKEND=gemini requires GEMINI_API_KEY")
		}
	default:
		return fmt.Errorf("unknown GENERATION_BACKEND %q", c.Generation.Backend)
	}

	return nil
}
