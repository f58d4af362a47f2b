package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cerrors "github.com/WJZ-P/CommitCraft/pkg/errors"
)

func TestRenderFromFile(t *testing.T) {
	input := writeCalendarFile(t, "octocat.json", []int{0, 2, 5, 11, 25, 1, 0, 3})
	outDir := filepath.Join(t.TempDir(), "out")

	_, status, err := runCLI(t, "render", "--input", input, "-o", outDir, "-f", "svg,json", "--seed", "3", "--no-cache")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(outDir, "octocat-commitcraft.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Errorf("svg starts with %q", svg[:min(20, len(svg))])
	}
	if _, err := os.Stat(filepath.Join(outDir, "octocat-commitcraft.json")); err != nil {
		t.Errorf("json not written: %v", err)
	}
	if !strings.Contains(status, "seed 3") {
		t.Errorf("status missing seed:\n%s", status)
	}
	if strings.Contains(status, "--seed") {
		t.Errorf("pinned seed should not suggest a reproduce command:\n%s", status)
	}
}

func TestRenderUnseededSuggestsSeed(t *testing.T) {
	input := writeCalendarFile(t, "octocat.json", []int{1, 2, 3})

	_, status, err := runCLI(t, "render", "--input", input, "-o", t.TempDir(), "--no-cache")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(status, "--seed") {
		t.Errorf("status should show how to reproduce:\n%s", status)
	}
}

func TestRenderSingleFileOutput(t *testing.T) {
	input := writeCalendarFile(t, "octocat.json", []int{4, 0, 9})
	out := filepath.Join(t.TempDir(), "nested", "world.png")

	if _, _, err := runCLI(t, "render", "--input", input, "-o", out, "-f", "png", "--scale", "1", "--seed", "1", "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestRenderLabelAndSimpleMode(t *testing.T) {
	input := writeCalendarFile(t, "cal.json", []int{1, 8, 30})
	dir := t.TempDir()

	if _, _, err := runCLI(t, "render", "--input", input, "-o", dir, "--label", "team", "--mode", "simple", "--no-script", "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}
	svg, err := os.ReadFile(filepath.Join(dir, "team-commitcraft.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(svg, []byte("<script")) {
		t.Error("--no-script output contains a script")
	}
}

func TestRenderEmptyCalendar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte(`{"totalContributions":0,"weeks":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, status, err := runCLI(t, "render", "--input", path, "-o", t.TempDir(), "--no-cache")
	if err != nil {
		t.Fatalf("empty calendar should not fail: %v", err)
	}
	if !strings.Contains(status, "nothing to render") {
		t.Errorf("status = %q", status)
	}
}

func TestRenderArgumentErrors(t *testing.T) {
	input := writeCalendarFile(t, "octocat.json", []int{1})

	tests := []struct {
		name string
		args []string
		code cerrors.Code
	}{
		{"no source", []string{"render"}, cerrors.ErrCodeInvalidInput},
		{"both sources", []string{"render", "octocat", "--input", input}, cerrors.ErrCodeInvalidInput},
		{"bad format", []string{"render", "--input", input, "-f", "gif"}, cerrors.ErrCodeInvalidFormat},
		{"bad mode", []string{"render", "--input", input, "--mode", "fancy"}, cerrors.ErrCodeInvalidMode},
		{"bad username", []string{"render", "bad_name", "--no-cache"}, cerrors.ErrCodeInvalidUsername},
		{"bad date", []string{"render", "octocat", "--from", "2024-13-01"}, cerrors.ErrCodeInvalidDate},
		{"scale too large", []string{"render", "--input", input, "--scale", "100"}, cerrors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			if !cerrors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestFetchWithoutToken(t *testing.T) {
	_, _, err := runCLI(t, "fetch", "octocat", "--no-cache")
	if !cerrors.Is(err, cerrors.ErrCodeUnauthorized) {
		t.Errorf("err = %v, want UNAUTHORIZED", err)
	}
}
