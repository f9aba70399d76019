package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// mediaTypeLabels bounds the media_type label; anything else is "other".
var mediaTypeLabels = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"image/bmp":       {},
	"image/tiff":      {},
	"image/webp":      {},
}

// PipelineMetrics implements ports.PipelineObserver.
type PipelineMetrics struct {
	service string

	runTotal    *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	runInFlight prometheus.Gauge
}

func NewPipelineMetrics(service string, registerer prometheus.Registerer) *PipelineMetrics {
	if registerer == nil {
		registerer = prometheus.NewRegistry()
	}

	runTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Total pipeline runs by media type and outcome.",
		},
		[]string{"service", "media_type", "outcome"},
	)
	runDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "run_duration_seconds",
			Help:      "Pipeline run duration in seconds by media type and outcome.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"service", "media_type", "outcome"},
	)
	runInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "runs_in_flight",
			Help:      "Number of in-flight pipeline runs.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registerer.MustRegister(runTotal, runDuration, runInFlight)

	return &PipelineMetrics{
		service:     service,
		runTotal:    runTotal,
		runDuration: runDuration,
		runInFlight: runInFlight,
	}
}

func (m *PipelineMetrics) StartPipeline() {
	m.runInFlight.Inc()
}

func (m *PipelineMetrics) FinishPipeline(mediaType, outcome string, duration time.Duration) {
	m.runInFlight.Dec()

	mediaType = mediaTypeLabel(mediaType)
	m.runTotal.WithLabelValues(m.service, mediaType, outcome).Inc()
	m.runDuration.WithLabelValues(m.service, mediaType, outcome).Observe(duration.Seconds())
}

func mediaTypeLabel(mediaType string) string {
	base, _, _ := strings.Cut(mediaType, ";")
	base = strings.ToLower(strings.TrimSpace(base))
	if base == "" {
		return "unknown"
	}
	if _, ok := mediaTypeLabels[base]; ok {
		return base
	}
	return "other"
}
