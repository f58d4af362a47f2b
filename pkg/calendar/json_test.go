package calendar

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/WJZ-P/CommitCraft/pkg/errors"
)

const githubSample = `{
  "totalContributions": 21,
  "weeks": [
    {"contributionDays": [
      {"date": "2024-01-06", "contributionCount": 0, "color": "#ebedf0", "weekday": 6}
    ]},
    {"contributionDays": [
      {"date": "2024-01-07", "contributionCount": 1, "color": "#9be9a8", "weekday": 0},
      {"date": "2024-01-08", "contributionCount": 20, "color": "#216e39", "contributionLevel": "FOURTH_QUARTILE", "weekday": 1}
    ]}
  ]
}`

func TestReadJSON(t *testing.T) {
	cal, err := ReadJSON(strings.NewReader(githubSample))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if cal.Total != 21 {
		t.Errorf("Total = %d, want 21", cal.Total)
	}
	got := cal.Cells()
	want := []Cell{
		{Week: 0, Day: 6, Count: 0, Date: "2024-01-06", Level: LevelNone},
		{Week: 1, Day: 0, Count: 1, Date: "2024-01-07", Level: LevelFirstQuartile},
		{Week: 1, Day: 1, Count: 20, Date: "2024-01-08", Level: LevelFourthQuartile},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestReadJSONRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"weeks": [`},
		{"negative count", `{"weeks":[{"contributionDays":[{"date":"2024-01-01","contributionCount":-1}]}]}`},
		{"eight days", `{"weeks":[{"contributionDays":[{},{},{},{},{},{},{},{}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidCalendar) {
				t.Errorf("ReadJSON error = %v, want %s", err, errors.ErrCodeInvalidCalendar)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	start := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)
	cal := FromCounts(start, []int{0, 1, 2, 9, 14, 30, 0, 7})
	cal.AvatarURL = "https://avatars.example.com/u/1"

	var buf bytes.Buffer
	if err := WriteJSON(cal, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if diff := cmp.Diff(cal, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestImportExportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cal.json")
	cal := FromCounts(time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), []int{4, 5, 6})

	if err := ExportJSON(cal, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if got.Sum() != 15 {
		t.Errorf("Sum() = %d, want 15", got.Sum())
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON(missing) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}
