package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Pipeline stage labels.
const (
	StageExtract = "extract"
	StageAnalyze = "analyze"
)

// PipelineMetrics observes the upload enrichment pipeline. A nil receiver
// is valid and records nothing, so use cases can run without metrics in
// tests.
type PipelineMetrics struct {
	uploadTotal     *prometheus.CounterVec
	uploadDuration  *prometheus.HistogramVec
	uploadsInFlight prometheus.Gauge
	stageDuration   *prometheus.HistogramVec
}

func NewPipelineMetrics(service string, registry *prometheus.Registry) *PipelineMetrics {
	uploadTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adm",
			Subsystem: "pipeline",
			Name:      "uploads_total",
			Help:      "Total processed uploads by status.",
		},
		[]string{"service", "status"},
	)
	uploadDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "adm",
			Subsystem: "pipeline",
			Name:      "upload_duration_seconds",
			Help:      "End-to-end upload enrichment duration in seconds by status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "status"},
	)
	uploadsInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "adm",
			Subsystem: "pipeline",
			Name:      "uploads_in_flight",
			Help:      "Number of uploads currently in the pipeline.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	stageDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "adm",
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Pipeline stage duration in seconds by stage and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "stage", "status"},
	)

	registry.MustRegister(uploadTotal, uploadDuration, uploadsInFlight, stageDuration)

	return &PipelineMetrics{
		uploadTotal:     uploadTotal,
		uploadDuration:  uploadDuration,
		uploadsInFlight: uploadsInFlight,
		stageDuration:   stageDuration,
	}
}

func (m *PipelineMetrics) StartUpload() {
	if m == nil {
		return
	}
	m.uploadsInFlight.Inc()
}

func (m *PipelineMetrics) FinishUpload(service string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.uploadsInFlight.Dec()

	status := statusLabel(err)
	m.uploadTotal.WithLabelValues(service, status).Inc()
	m.uploadDuration.WithLabelValues(service, status).Observe(duration.Seconds())
}

func (m *PipelineMetrics) ObserveStage(service, stage string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(service, stage, statusLabel(err)).Observe(duration.Seconds())
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
