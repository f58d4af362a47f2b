package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/WJZ-P/CommitCraft/pkg/cache"
	"github.com/WJZ-P/CommitCraft/pkg/httputil"
	"github.com/WJZ-P/CommitCraft/pkg/observability"
)

// upstream serves handler and returns a client pointed at it with a file
// cache in a temp dir.
func upstream(t *testing.T, headers map[string]string, handler http.HandlerFunc) (*Client, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	client := NewClient(fc, "texture", time.Hour, headers)
	client.SetHTTPClient(srv.Client())
	return client, srv.URL
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	client, url := upstream(t, map[string]string{"Authorization": "Bearer ghp_x", "X-Mode": "default"},
		func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Clone()
			w.Write([]byte(`{}`))
		})

	var v map[string]any
	if err := client.GetWithHeaders(context.Background(), url, map[string]string{"X-Mode": "override"}, &v); err != nil {
		t.Fatal(err)
	}
	for key, want := range map[string]string{
		"Authorization": "Bearer ghp_x",
		"X-Mode":        "override",
		"User-Agent":    UserAgent,
	} {
		if got.Get(key) != want {
			t.Errorf("%s = %q, want %q", key, got.Get(key), want)
		}
	}
}

func TestGetDecodesJSON(t *testing.T) {
	client, url := upstream(t, nil, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s", r.Method)
		}
		w.Write([]byte(`{"login":"octocat","id":1}`))
	})

	var v struct {
		Login string `json:"login"`
		ID    int    `json:"id"`
	}
	if err := client.Get(context.Background(), url, &v); err != nil {
		t.Fatal(err)
	}
	if v.Login != "octocat" || v.ID != 1 {
		t.Errorf("decoded %+v", v)
	}
}

func TestGetText(t *testing.T) {
	const png = "\x89PNG\r\n\x1a\n"
	client, url := upstream(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(png))
	})

	text, err := client.GetText(context.Background(), url+"/stone.png")
	if err != nil {
		t.Fatal(err)
	}
	if text != png {
		t.Errorf("GetText() = %q", text)
	}
}

func TestPostJSON(t *testing.T) {
	client, url := upstream(t, nil, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var req struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"echo": req.Query})
	})

	var resp map[string]string
	if err := client.PostJSON(context.Background(), url, map[string]string{"query": "{ viewer { login } }"}, &resp); err != nil {
		t.Fatal(err)
	}
	if resp["echo"] != "{ viewer { login } }" {
		t.Errorf("echo = %q", resp["echo"])
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		code      int
		want      error // nil means success
		retryable bool
	}{
		{200, nil, false},
		{404, ErrNotFound, false},
		{401, ErrUnauthorized, false},
		{403, ErrForbidden, false},
		{429, ErrRateLimited, false},
		{418, ErrNetwork, false},
		{500, ErrNetwork, true},
		{502, ErrNetwork, true},
		{503, ErrNetwork, true},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.code), func(t *testing.T) {
			err := checkStatus(tt.code)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("checkStatus() = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("checkStatus() = %v, want %v", err, tt.want)
			}
			if httputil.IsRetryable(err) != tt.retryable {
				t.Errorf("retryable = %v, want %v", !tt.retryable, tt.retryable)
			}
		})
	}
}

func TestServerErrorIsRetryable(t *testing.T) {
	client, url := upstream(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	var v map[string]any
	err := client.Get(context.Background(), url, &v)
	if !errors.Is(err, ErrNetwork) || !httputil.IsRetryable(err) {
		t.Errorf("Get() = %v, want a retryable network error", err)
	}
}

func TestRateLimitHeaders(t *testing.T) {
	reset := time.Now().Add(90 * time.Second).Unix()
	client, url := upstream(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset, 10))
		w.WriteHeader(http.StatusForbidden)
	})

	var v map[string]any
	err := client.Get(context.Background(), url, &v)
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("Get() = %v, want ErrRateLimited", err)
	}
	var rl *RateLimitError
	if !errors.As(err, &rl) || rl.RetryAfter <= 0 || rl.RetryAfter > 90*time.Second {
		t.Errorf("RetryAfter = %v", rl)
	}
	// An exhausted hourly quota is too long to wait for.
	if httputil.IsRetryable(err) {
		t.Error("quota exhaustion should not be retried")
	}
}

func TestRetryAfterHeader(t *testing.T) {
	client, url := upstream(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	var v map[string]any
	var rl *RateLimitError
	err := client.Get(context.Background(), url, &v)
	if !errors.As(err, &rl) || rl.RetryAfter != 7*time.Second {
		t.Errorf("Get() = %v, want 7s retry hint", err)
	}
	if !httputil.IsRetryable(err) {
		t.Error("a short Retry-After should be retryable")
	}
}

func TestCachedRetriesShortRateLimit(t *testing.T) {
	var calls atomic.Int32
	client, url := upstream(t, nil, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	})

	var resp map[string]string
	err := client.Cached(context.Background(), "k", false, &resp, func() error {
		return client.Get(context.Background(), url, &resp)
	})
	if err != nil {
		t.Fatalf("Cached() = %v", err)
	}
	if calls.Load() != 2 || resp["status"] != "ok" {
		t.Errorf("calls = %d, resp = %v", calls.Load(), resp)
	}
}

func TestCached(t *testing.T) {
	client, _ := upstream(t, nil, func(http.ResponseWriter, *http.Request) {})
	ctx := context.Background()

	fetches := 0
	fetch := func(v *string, value string) func() error {
		return func() error {
			fetches++
			*v = value
			return nil
		}
	}

	var first, second, third string
	if err := client.Cached(ctx, "stone.png", false, &first, fetch(&first, "v1")); err != nil {
		t.Fatal(err)
	}
	if err := client.Cached(ctx, "stone.png", false, &second, fetch(&second, "v2")); err != nil {
		t.Fatal(err)
	}
	if fetches != 1 || second != "v1" {
		t.Errorf("second lookup: fetches = %d, value = %q; want a cache hit", fetches, second)
	}

	if err := client.Cached(ctx, "stone.png", true, &third, fetch(&third, "v3")); err != nil {
		t.Fatal(err)
	}
	if fetches != 2 || third != "v3" {
		t.Errorf("refresh: fetches = %d, value = %q", fetches, third)
	}
}

func TestCachedDoesNotStoreFailures(t *testing.T) {
	client, _ := upstream(t, nil, func(http.ResponseWriter, *http.Request) {})
	ctx := context.Background()

	var v string
	if err := client.Cached(ctx, "gone.png", false, &v, func() error { return ErrNotFound }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Cached() = %v, want ErrNotFound", err)
	}

	called := false
	err := client.Cached(ctx, "gone.png", false, &v, func() error {
		called = true
		v = "found"
		return nil
	})
	if err != nil || !called {
		t.Errorf("failure was cached: err = %v, called = %v", err, called)
	}
}

func TestSetKeyerScopesEntries(t *testing.T) {
	client, _ := upstream(t, nil, func(http.ResponseWriter, *http.Request) {})
	ctx := context.Background()

	var a string
	if err := client.Cached(ctx, "octocat", false, &a, func() error { a = "shared"; return nil }); err != nil {
		t.Fatal(err)
	}

	client.SetKeyer(cache.NewScopedKeyer(nil, cache.TokenScope("ghp_private")))
	var b string
	fetched := false
	if err := client.Cached(ctx, "octocat", false, &b, func() error { fetched = true; b = "scoped"; return nil }); err != nil {
		t.Fatal(err)
	}
	if !fetched || b != "scoped" {
		t.Errorf("scoped lookup read the shared entry: fetched = %v, value = %q", fetched, b)
	}
}

type countingHTTPHooks struct {
	observability.NoopHTTPHooks
	requests, responses atomic.Int32
	lastStatus          atomic.Int32
}

func (h *countingHTTPHooks) OnRequest(context.Context, string, string, string) { h.requests.Add(1) }

func (h *countingHTTPHooks) OnResponse(_ context.Context, _, _, _ string, status int, _ time.Duration) {
	h.responses.Add(1)
	h.lastStatus.Store(int32(status))
}

func TestHTTPHooks(t *testing.T) {
	hooks := &countingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	client, url := upstream(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	var v map[string]any
	_ = client.Get(context.Background(), url, &v)

	if hooks.requests.Load() != 1 || hooks.responses.Load() != 1 || hooks.lastStatus.Load() != 404 {
		t.Errorf("requests = %d, responses = %d, status = %d",
			hooks.requests.Load(), hooks.responses.Load(), hooks.lastStatus.Load())
	}
}
