package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upload outcomes
const (
	UploadAccepted     = "accepted"
	UploadRejectedType = "rejected_type"
	UploadTooLarge     = "too_large"
	UploadDecodeFailed = "decode_failed"
	UploadStale        = "stale"
	UploadCancelled    = "cancelled"
)

// Generation outcomes
const (
	GenerationSuccess     = "success"
	GenerationFailed      = "failed"
	GenerationTimeout     = "timeout"
	GenerationBusy        = "busy"
	GenerationRateLimited = "rate_limited"
	GenerationNoImage     = "no_image"
	GenerationCancelled   = "cancelled"
)

var (
	Uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leafvision_uploads_total",
		Help: "Uploaded files by outcome",
	}, []string{"outcome"})

	Generations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leafvision_generations_total",
		Help: "Generation requests by mode and outcome",
	}, []string{"mode", "outcome"})

	GenerationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "leafvision_generation_duration_seconds",
		Help:    "Time spent in the generation backend",
		Buckets: []float64{0.1, 0.5, 1, 2, 3, 5, 10, 30, 60},
	}, []string{"mode"})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "leafvision_active_sessions",
		Help: "Page sessions currently held in memory",
	})
)
