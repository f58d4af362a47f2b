package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/WJZ-P/CommitCraft/pkg/cache"
	"github.com/WJZ-P/CommitCraft/pkg/calendar"
	cerrors "github.com/WJZ-P/CommitCraft/pkg/errors"
)

const calendarBody = `{
  "data": {
    "user": {
      "avatarUrl": "https://avatars.example/u/1",
      "contributionsCollection": {
        "contributionCalendar": {
          "totalContributions": 21,
          "weeks": [
            {"contributionDays": [
              {"date": "2024-01-07", "contributionCount": 0, "color": "#ebedf0", "contributionLevel": "NONE", "weekday": 0},
              {"date": "2024-01-08", "contributionCount": 1, "color": "#9be9a8", "contributionLevel": "FIRST_QUARTILE", "weekday": 1},
              {"date": "2024-01-09", "contributionCount": 20, "color": "#216e39", "contributionLevel": "FOURTH_QUARTILE", "weekday": 2}
            ]}
          ]
        }
      }
    }
  }
}`

func TestClient_Contributions(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		var req graphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Variables["login"] != "octocat" {
			t.Errorf("login variable = %v", req.Variables["login"])
		}
		if req.Variables["from"] != "2024-01-01T00:00:00Z" {
			t.Errorf("from variable = %v", req.Variables["from"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(calendarBody))
	}))
	defer server.Close()

	c := testClient(t, server.URL, "secret")
	r := Range{From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	cal, err := c.Contributions(context.Background(), "octocat", r, false)
	if err != nil {
		t.Fatalf("Contributions failed: %v", err)
	}
	if cal.Total != 21 || cal.DayCount() != 3 {
		t.Errorf("total %d, days %d", cal.Total, cal.DayCount())
	}
	if cal.AvatarURL != "https://avatars.example/u/1" {
		t.Errorf("avatar = %q", cal.AvatarURL)
	}
	if got := cal.Weeks[0].Days[2].Level; got != calendar.LevelFourthQuartile {
		t.Errorf("level = %v", got)
	}

	// Second call is served from the cache, regardless of login case
	if _, err := c.Contributions(context.Background(), "OctoCat", r, false); err != nil {
		t.Fatalf("cached Contributions failed: %v", err)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("upstream calls = %d, want 1", n)
	}
}

func TestClient_ContributionsErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		header map[string]string
		want   cerrors.Code
	}{
		{"null user", 200, `{"data":{"user":null}}`, nil, cerrors.ErrCodeUserNotFound},
		{"not found error", 200, `{"data":{"user":null},"errors":[{"type":"NOT_FOUND","message":"Could not resolve to a User"}]}`, nil, cerrors.ErrCodeUserNotFound},
		{"graphql error", 200, `{"errors":[{"message":"Something went wrong"}]}`, nil, cerrors.ErrCodeNetwork},
		{"bad token", 401, `{"message":"Bad credentials"}`, nil, cerrors.ErrCodeUnauthorized},
		{"rate limited", 403, `{}`, map[string]string{"X-RateLimit-Remaining": "0"}, cerrors.ErrCodeRateLimited},
		{"forbidden", 403, `{}`, nil, cerrors.ErrCodeForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := testClient(t, server.URL, "secret").Contributions(context.Background(), "octocat", Range{}, true)
			if got := cerrors.GetCode(err); got != tt.want {
				t.Errorf("code = %q, want %q (err: %v)", got, tt.want, err)
			}
		})
	}
}

func TestClient_ContributionsRequiresToken(t *testing.T) {
	c := NewClient(nil, "", time.Hour)
	_, err := c.Contributions(context.Background(), "octocat", Range{}, false)
	if !cerrors.Is(err, cerrors.ErrCodeUnauthorized) {
		t.Errorf("err = %v, want UNAUTHORIZED", err)
	}
}

func TestClient_ContributionsValidatesUsername(t *testing.T) {
	c := NewClient(nil, "secret", time.Hour)
	_, err := c.Contributions(context.Background(), "-bad-", Range{}, false)
	if !cerrors.Is(err, cerrors.ErrCodeInvalidUsername) {
		t.Errorf("err = %v, want INVALID_USERNAME", err)
	}
}

func TestNewClient(t *testing.T) {
	c := NewClient(cache.NewNullCache(), "test-token", time.Hour)
	if c.Client == nil {
		t.Error("expected client to be initialized")
	}
	if c.endpoint != DefaultEndpoint {
		t.Errorf("endpoint = %q", c.endpoint)
	}
}

func testClient(t *testing.T, serverURL, token string) *Client {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := NewClient(fc, token, time.Hour)
	c.SetEndpoint(serverURL)
	return c
}
