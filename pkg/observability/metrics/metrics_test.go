package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/WJZ-P/CommitCraft/pkg/observability"
)

func TestRecorderCacheCounters(t *testing.T) {
	r := New(prometheus.NewRegistry())
	ctx := context.Background()

	r.OnCacheHit(ctx, "calendar")
	r.OnCacheHit(ctx, "calendar")
	r.OnCacheMiss(ctx, "artifact")
	r.OnCacheSet(ctx, "artifact", 512)

	if got := testutil.ToFloat64(r.cacheOps.WithLabelValues("calendar", "hit")); got != 2 {
		t.Errorf("calendar hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.cacheOps.WithLabelValues("artifact", "miss")); got != 1 {
		t.Errorf("artifact misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.cacheBytes.WithLabelValues("artifact")); got != 512 {
		t.Errorf("artifact bytes = %v, want 512", got)
	}
}

func TestRecorderStageErrors(t *testing.T) {
	r := New(prometheus.NewRegistry())
	ctx := context.Background()

	r.OnFetchComplete(ctx, "octocat", 0, time.Second, errors.New("boom"))
	r.OnRenderComplete(ctx, "svg", 100, time.Millisecond, nil)
	r.OnRenderComplete(ctx, "png", 0, time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(r.stageErrors.WithLabelValues("fetch", "github")); got != 1 {
		t.Errorf("fetch errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.stageErrors.WithLabelValues("render", "png")); got != 1 {
		t.Errorf("png render errors = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(r.artifactBytes); got != 1 {
		t.Errorf("artifact series = %d, want 1 (failed renders are not sized)", got)
	}
}

func TestMiddlewareAndHandler(t *testing.T) {
	r := New(prometheus.NewRegistry())

	router := chi.NewRouter()
	router.Use(r.Middleware)
	router.Get("/api/scene/{username}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	router.Handle("/metrics", r.Handler())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scene/octocat", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `route="/api/scene/{username}"`) {
		t.Errorf("metrics output missing route label:\n%s", body)
	}
	if !strings.Contains(body, `status="418"`) {
		t.Errorf("metrics output missing status label")
	}
}

func TestInstall(t *testing.T) {
	defer observability.Reset()

	r := New(prometheus.NewRegistry())
	r.Install()

	if observability.Pipeline() != r {
		t.Error("Install should register pipeline hooks")
	}
	if observability.Cache() != r {
		t.Error("Install should register cache hooks")
	}
	if observability.HTTP() != r {
		t.Error("Install should register HTTP hooks")
	}
}
