// Package telemetry provides OpenTelemetry instrumentation for the radar
// service. It exports Prometheus metrics and provides tracing capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "radar"

// Analysis kind labels for AnalysesPerformed.
const (
	AnalysisKindComments = "comments"
	AnalysisKindAdvanced = "advanced"
	AnalysisKindTrends   = "trends"
)

// Metrics holds all radar Prometheus metrics
type Metrics struct {
	// Analysis metrics
	AnalysesPerformed *prometheus.CounterVec
	AnalysisDuration  *prometheus.HistogramVec
	CommentsAnalyzed  prometheus.Counter

	// Scoring metrics
	VideosScored    *prometheus.CounterVec
	ScoringDuration prometheus.Histogram
	BatchSize       prometheus.Histogram

	// Pipeline metrics
	QueueDepth    prometheus.Gauge
	ActiveWorkers prometheus.Gauge

	// Source client metrics
	SourceRequests *prometheus.CounterVec
	SourceLatency  *prometheus.HistogramVec

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initAnalysisMetrics(m)
	initScoringMetrics(m)
	initPipelineMetrics(m)
	initSourceMetrics(m)
	initCacheMetrics(m)
	return m
}

func initAnalysisMetrics(m *Metrics) {
	m.AnalysesPerformed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_analyses_performed_total",
		Help: "Total comment analyses performed, by kind (comments, advanced, trends)",
	}, []string{"kind"})

	m.AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "radar_analysis_duration_seconds",
		Help:    "Time to run one analysis over a comment set",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
	}, []string{"kind"})

	m.CommentsAnalyzed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "radar_comments_analyzed_total",
		Help: "Total individual comments run through the pattern classifier",
	})
}

func initScoringMetrics(m *Metrics) {
	m.VideosScored = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_videos_scored_total",
		Help: "Total videos scored, by opportunity tier",
	}, []string{"opportunity"})

	m.ScoringDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "radar_scoring_duration_seconds",
		Help:    "Time to score a single video",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05},
	})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "radar_batch_size",
		Help:    "Number of videos per scoring batch",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500},
	})
}

func initPipelineMetrics(m *Metrics) {
	m.QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "radar_queue_depth",
		Help: "Current pending videos in the enrichment queue",
	})

	m.ActiveWorkers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "radar_active_workers",
		Help: "Currently active pipeline worker goroutines",
	})
}

func initSourceMetrics(m *Metrics) {
	m.SourceRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_source_requests_total",
		Help: "Total requests to the comment/metrics source, by endpoint and status",
	}, []string{"endpoint", "status"})

	m.SourceLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "radar_source_latency_seconds",
		Help:    "Latency of source requests",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"endpoint"})
}

func initCacheMetrics(m *Metrics) {
	m.CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "radar_cache_hits_total",
		Help: "Analysis result cache hits",
	})

	m.CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "radar_cache_misses_total",
		Help: "Analysis result cache misses",
	})
}

// RecordAnalysis records one analysis run of the given kind.
func (p *Provider) RecordAnalysis(ctx context.Context, kind string, commentCount int, duration time.Duration) {
	p.Metrics.AnalysesPerformed.WithLabelValues(kind).Inc()
	p.Metrics.AnalysisDuration.WithLabelValues(kind).Observe(duration.Seconds())
	p.Metrics.CommentsAnalyzed.Add(float64(commentCount))
}

// RecordScore records one scored video under its opportunity tier.
func (p *Provider) RecordScore(ctx context.Context, opportunity string, duration time.Duration) {
	p.Metrics.VideosScored.WithLabelValues(opportunity).Inc()
	p.Metrics.ScoringDuration.Observe(duration.Seconds())
}

// RecordBatchSize records the size of a scoring batch
func (p *Provider) RecordBatchSize(size int) {
	p.Metrics.BatchSize.Observe(float64(size))
}

// RecordSourceRequest records one request to the external source.
func (p *Provider) RecordSourceRequest(ctx context.Context, endpoint, status string, duration time.Duration) {
	p.Metrics.SourceRequests.WithLabelValues(endpoint, status).Inc()
	p.Metrics.SourceLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordCacheHit increments the cache hit counter
func (p *Provider) RecordCacheHit() {
	p.Metrics.CacheHits.Inc()
}

// RecordCacheMiss increments the cache miss counter
func (p *Provider) RecordCacheMiss() {
	p.Metrics.CacheMisses.Inc()
}

// SetQueueDepth sets the current queue depth
func (p *Provider) SetQueueDepth(depth int) {
	p.Metrics.QueueDepth.Set(float64(depth))
}

// SetActiveWorkers sets the current active worker count
func (p *Provider) SetActiveWorkers(count int) {
	p.Metrics.ActiveWorkers.Set(float64(count))
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}
