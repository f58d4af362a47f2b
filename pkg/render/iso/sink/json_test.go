package sink

import (
	"encoding/json"
	"testing"

	"github.com/WJZ-P/CommitCraft/pkg/calendar"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso"
)

func TestRenderJSON(t *testing.T) {
	s := testScene(t)
	data, err := RenderJSON(s)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Label != "octo<cat>" || out.Seed == nil || *out.Seed != 1 || out.Weeks != 2 {
		t.Errorf("header = %+v", out)
	}
	if len(out.Columns) != len(s.Columns) {
		t.Fatalf("columns = %d, want %d", len(out.Columns), len(s.Columns))
	}
	for i, c := range out.Columns {
		if c.ID != s.Columns[i].ID {
			t.Errorf("column %d = %s, want %s", i, c.ID, s.Columns[i].ID)
		}
		if want := s.Columns[i].Height + 1; c.Height > 0 && len(c.Blocks) != want {
			t.Errorf("%s: %d blocks, want %d", c.ID, len(c.Blocks), want)
		}
		if (c.Tooltip != nil) != (c.Height > 0) {
			t.Errorf("%s: tooltip presence does not match height %d", c.ID, c.Height)
		}
	}
	if out.ViewBox.Width != s.Viewport.Width() {
		t.Errorf("view box width = %v, want %v", out.ViewBox.Width, s.Viewport.Width())
	}
}

func TestRenderJSONSeed(t *testing.T) {
	cal := calendar.FromCounts(sunday, []int{3, 8})
	tests := []struct {
		name string
		opt  iso.Option
		want *uint64
	}{
		{"zero seed", iso.WithSeed(0), new(uint64)},
		{"explicit rand", iso.WithRand(iso.NewRand(9)), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderJSON(iso.Build(cal, tt.opt))
			if err != nil {
				t.Fatal(err)
			}
			var out jsonOutput
			if err := json.Unmarshal(data, &out); err != nil {
				t.Fatal(err)
			}
			if (out.Seed == nil) != (tt.want == nil) || (out.Seed != nil && *out.Seed != *tt.want) {
				t.Errorf("seed = %v, want %v", out.Seed, tt.want)
			}
		})
	}
}

func TestRenderJSONNil(t *testing.T) {
	data, err := RenderJSON(nil)
	if err != nil || string(data) != "null\n" {
		t.Errorf("RenderJSON(nil) = %q, %v", data, err)
	}
}
