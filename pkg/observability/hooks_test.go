package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnFetchStart(ctx, "octocat")
	p.OnFetchComplete(ctx, "octocat", 371, time.Second, nil)
	p.OnBuildStart(ctx, "rich", 371)
	p.OnBuildComplete(ctx, "rich", 371, 1200, time.Millisecond)
	p.OnRenderStart(ctx, "svg")
	p.OnRenderComplete(ctx, "svg", 4096, time.Millisecond, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "calendar")
	c.OnCacheMiss(ctx, "calendar")
	c.OnCacheSet(ctx, "artifact", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "api.github.com", "/graphql")
	h.OnResponse(ctx, "POST", "api.github.com", "/graphql", 200, time.Second)
	h.OnError(ctx, "POST", "api.github.com", "/graphql", nil)
}

func TestRegistryDefaults(t *testing.T) {
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want NoopHTTPHooks", HTTP())
	}
}

func TestSetHooks(t *testing.T) {
	defer Reset()

	p, c, h := &testPipelineHooks{}, &testCacheHooks{}, &testHTTPHooks{}
	SetPipelineHooks(p)
	SetCacheHooks(c)
	SetHTTPHooks(h)
	if Pipeline() != p || Cache() != c || HTTP() != h {
		t.Fatal("setters did not install hooks")
	}

	// nil is ignored.
	SetPipelineHooks(nil)
	if Pipeline() != p {
		t.Error("SetPipelineHooks(nil) replaced the hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() did not restore NoopPipelineHooks")
	}
}

func TestRegister(t *testing.T) {
	defer Reset()

	tests := []struct {
		name string
		impl any
		want int
	}{
		{"all three", &allHooks{}, 3},
		{"cache only", &testCacheHooks{}, 1},
		{"unrelated", struct{}{}, 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			if got := Register(tt.impl); got != tt.want {
				t.Errorf("Register() = %d, want %d", got, tt.want)
			}
		})
	}

	a := &allHooks{}
	Register(a)
	Cache().OnCacheHit(context.Background(), "calendar")
	if a.hits != 1 {
		t.Errorf("hits = %d, want 1", a.hits)
	}
}

// Test implementations
type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }

type allHooks struct {
	NoopPipelineHooks
	NoopCacheHooks
	NoopHTTPHooks
	hits int
}

func (a *allHooks) OnCacheHit(context.Context, string) { a.hits++ }
