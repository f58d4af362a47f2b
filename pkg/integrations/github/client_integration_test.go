//go:build integration

package github

import (
	"context"
	"os"
	"testing"
	"time"

	cerrors "github.com/WJZ-P/CommitCraft/pkg/errors"
)

func TestContributions_Integration(t *testing.T) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		t.Skip("GITHUB_TOKEN not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tests := []struct {
		name     string
		username string
		wantCode cerrors.Code
	}{
		{"octocat", "octocat", ""},
		{"nonexistent", "nonexistent-user-0987654321abc", cerrors.ErrCodeUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal, err := Contributions(ctx, token, tt.username, Range{})
			if got := cerrors.GetCode(err); got != tt.wantCode {
				t.Fatalf("Contributions(%q) code = %q, want %q (err: %v)", tt.username, got, tt.wantCode, err)
			}
			if err == nil && cal.DayCount() < 365 {
				t.Errorf("Contributions(%q) returned %d days", tt.username, cal.DayCount())
			}
		})
	}
}
