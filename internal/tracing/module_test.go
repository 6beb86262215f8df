package tracing

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx/fxtest"

	"github.com/emergentai/leafvision/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func restoreProvider(t *testing.T) {
	t.Helper()
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
}

func TestNewTracerProvider_DisabledInstallsNoop(t *testing.T) {
	restoreProvider(t)

	res, err := NewTracerProvider(&config.Config{Otel: config.OtelConfig{ServiceName: "leafvision", SamplingRate: 1}}, discardLogger())
	require.NoError(t, err)
	assert.Nil(t, res.SDKProvider)
	assert.IsType(t, noop.TracerProvider{}, otel.GetTracerProvider())
}

func TestNewTracerProvider_EnabledRegistersSDK(t *testing.T) {
	restoreProvider(t)

	cfg := &config.Config{Otel: config.OtelConfig{
		ExporterEndpoint: "http://127.0.0.1:4318",
		ServiceName:      "leafvision-test",
		SamplingRate:     0.5,
	}}
	res, err := NewTracerProvider(cfg, discardLogger())
	require.NoError(t, err)
	require.NotNil(t, res.SDKProvider)
	assert.Same(t, res.SDKProvider, otel.GetTracerProvider())

	lc := fxtest.NewLifecycle(t)
	RegisterTracingLifecycle(lc, sdkProviderParam{SDKProvider: res.SDKProvider}, discardLogger())
	require.NoError(t, lc.Start(context.Background()))
	require.NoError(t, lc.Stop(context.Background()))
}

func TestNewSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1, sdktrace.AlwaysSample().Description()},
		{1.5, sdktrace.AlwaysSample().Description()},
		{0.25, sdktrace.TraceIDRatioBased(0.25).Description()},
		{0, sdktrace.TraceIDRatioBased(0).Description()},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, newSampler(tt.rate).Description(), "rate %v", tt.rate)
	}
}

func TestRegisterTracingLifecycle_NoProvider(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	RegisterTracingLifecycle(lc, sdkProviderParam{}, discardLogger())

	require.NoError(t, lc.Start(context.Background()))
	require.NoError(t, lc.Stop(context.Background()))
}
