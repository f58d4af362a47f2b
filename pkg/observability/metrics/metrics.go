// Package metrics implements the observability hooks on top of Prometheus.
//
// A single [Recorder] satisfies PipelineHooks, CacheHooks, and HTTPHooks, so
// the server registers one value for all three. It also provides chi-style
// middleware for inbound request metrics and the /metrics handler.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/WJZ-P/CommitCraft/pkg/observability"
)

const namespace = "commitcraft"

// Recorder collects pipeline, cache, and HTTP metrics.
type Recorder struct {
	gatherer prometheus.Gatherer

	stageDuration *prometheus.HistogramVec
	stageErrors   *prometheus.CounterVec
	sceneBlocks   prometheus.Histogram
	artifactBytes *prometheus.HistogramVec

	cacheOps   *prometheus.CounterVec
	cacheBytes *prometheus.CounterVec

	upstreamDuration *prometheus.HistogramVec
	upstreamErrors   *prometheus.CounterVec

	reqDuration *prometheus.HistogramVec
	reqInflight prometheus.Gauge
}

// New creates a Recorder and registers its collectors with reg.
// Pass prometheus.NewRegistry() in tests to avoid global state.
func New(reg *prometheus.Registry) *Recorder {
	r := &Recorder{
		gatherer: reg,
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of pipeline stages.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"stage", "detail"}),
		stageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_errors_total",
			Help:      "Pipeline stages that ended in an error.",
		}, []string{"stage", "detail"}),
		sceneBlocks: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scene_blocks",
			Help:      "Number of blocks emitted per built scene.",
			Buckets:   prometheus.ExponentialBuckets(64, 2, 8),
		}),
		artifactBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "artifact_bytes",
			Help:      "Size of rendered artifacts.",
			Buckets:   prometheus.ExponentialBuckets(4096, 2, 10),
		}, []string{"format"}),
		cacheOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Cache lookups and writes by key type and result.",
		}, []string{"key_type", "result"}),
		cacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the cache.",
		}, []string{"key_type"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of outgoing HTTP requests.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"host", "status"}),
		upstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_errors_total",
			Help:      "Outgoing HTTP requests that failed before a response.",
		}, []string{"host"}),
		reqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of served HTTP requests.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "route", "status"}),
		reqInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_inflight",
			Help:      "Requests currently being served.",
		}),
	}

	reg.MustRegister(
		r.stageDuration, r.stageErrors, r.sceneBlocks, r.artifactBytes,
		r.cacheOps, r.cacheBytes,
		r.upstreamDuration, r.upstreamErrors,
		r.reqDuration, r.reqInflight,
	)
	return r
}

// Install registers r as the global pipeline, cache, and HTTP hooks.
func (r *Recorder) Install() {
	observability.Register(r)
}

// =============================================================================
// PipelineHooks
// =============================================================================

func (r *Recorder) OnFetchStart(context.Context, string) {}

func (r *Recorder) OnFetchComplete(_ context.Context, _ string, _ int, d time.Duration, err error) {
	r.stage("fetch", "github", d, err)
}

func (r *Recorder) OnBuildStart(context.Context, string, int) {}

func (r *Recorder) OnBuildComplete(_ context.Context, mode string, _, blocks int, d time.Duration) {
	r.stage("build", mode, d, nil)
	r.sceneBlocks.Observe(float64(blocks))
}

func (r *Recorder) OnRenderStart(context.Context, string) {}

func (r *Recorder) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	r.stage("render", format, d, err)
	if err == nil {
		r.artifactBytes.WithLabelValues(format).Observe(float64(size))
	}
}

func (r *Recorder) stage(stage, detail string, d time.Duration, err error) {
	r.stageDuration.WithLabelValues(stage, detail).Observe(d.Seconds())
	if err != nil {
		r.stageErrors.WithLabelValues(stage, detail).Inc()
	}
}

// =============================================================================
// CacheHooks
// =============================================================================

func (r *Recorder) OnCacheHit(_ context.Context, keyType string) {
	r.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (r *Recorder) OnCacheMiss(_ context.Context, keyType string) {
	r.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (r *Recorder) OnCacheSet(_ context.Context, keyType string, size int) {
	r.cacheOps.WithLabelValues(keyType, "set").Inc()
	r.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

// =============================================================================
// HTTPHooks
// =============================================================================

func (r *Recorder) OnRequest(context.Context, string, string, string) {}

func (r *Recorder) OnResponse(_ context.Context, _, host, _ string, status int, d time.Duration) {
	r.upstreamDuration.WithLabelValues(host, strconv.Itoa(status)).Observe(d.Seconds())
}

func (r *Recorder) OnError(_ context.Context, _, host, _ string, _ error) {
	r.upstreamErrors.WithLabelValues(host).Inc()
}

// =============================================================================
// Inbound HTTP
// =============================================================================

// Middleware records duration and in-flight count of served requests.
// Routes are labeled by their chi pattern to keep label cardinality bounded.
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		r.reqInflight.Inc()
		defer r.reqInflight.Dec()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, req)

		route := "unmatched"
		if rc := chi.RouteContext(req.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		r.reqDuration.WithLabelValues(req.Method, route, strconv.Itoa(sw.status)).Observe(time.Since(start).Seconds())
	})
}

// Handler returns the /metrics handler for the registry r was created with.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

var (
	_ observability.PipelineHooks = (*Recorder)(nil)
	_ observability.CacheHooks    = (*Recorder)(nil)
	_ observability.HTTPHooks     = (*Recorder)(nil)
)
