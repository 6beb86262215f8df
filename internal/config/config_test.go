package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 4002, cfg.Port)
	assert.Equal(t, ":4002", cfg.Addr())
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, BackendPlaceholder, cfg.Generation.Backend)
	assert.Equal(t, 2*time.Second, cfg.Generation.Delay)
	assert.Equal(t, 100*time.Millisecond, cfg.Session.ScrollDelay)
	assert.Contains(t, cfg.Generation.HealthyPlaceholderURL, "photo-1518495973542")
	assert.Contains(t, cfg.Generation.DiseasedPlaceholderURL, "photo-1465146344425")
	assert.False(t, cfg.Otel.Enabled())
	assert.Equal(t, "leafvision", cfg.Otel.ServiceName)
	assert.Equal(t, 1.0, cfg.Otel.SamplingRate)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("WEBSITE_PORT", "8080")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1")
	t.Setenv("GENERATION_DELAY", "250ms")
	t.Setenv("SESSION_TTL", "10m")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, 250*time.Millisecond, cfg.Generation.Delay)
	assert.Equal(t, 10*time.Minute, cfg.Session.TTL)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Port: 4002,
			Upload: UploadConfig{
				MaxBytes:            1024,
				PreviewMaxDimension: 100,
			},
			Generation: GenerationConfig{
				Backend:       BackendPlaceholder,
				Timeout:       time.Second,
				RatePerMinute: 1,
				Burst:         1,
			},
			Session: SessionConfig{
				TTL:           time.Minute,
				SweepInterval: time.Minute,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Port = 0 }, "WEBSITE_PORT"},
		{"zero upload limit", func(c *Config) { c.Upload.MaxBytes = 0 }, "UPLOAD_MAX_BYTES"},
		{"zero timeout", func(c *Config) { c.Generation.Timeout = 0 }, "GENERATION_TIMEOUT"},
		{"sampling rate above one", func(c *Config) { c.Otel.SamplingRate = 1.5 }, "OTEL_SAMPLING_RATE"},
		{"unknown backend", func(c *Config) { c.Generation.Backend = "dalle" }, "unknown GENERATION_BACKEND"},
		{"gemini without key", func(c *Config) { c.Generation.Backend = BackendGemini }, "GEMINI_API_KEY"},
		{"gemini with key", func(c *Config) {
			c.Generation.Backend = BackendGemini
			c.Generation.GeminiAPIKey = "key"
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
