package styles

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/WJZ-P/CommitCraft/pkg/render/iso/geometry"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/material"
)

func near(a, b geometry.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

// The texture's four corners must land on the face's four corners.
func TestFaceTransformMapsTextureOntoFace(t *testing.T) {
	s := TextureSize
	corners := map[geometry.Face][4]geometry.Point{
		// image (0,0), (s,0), (s,s), (0,s)
		geometry.FaceTop:   {{X: 0, Y: -14}, {X: 14, Y: -7}, {X: 0, Y: 0}, {X: -14, Y: -7}},
		geometry.FaceLeft:  {{X: -14, Y: -7}, {X: 0, Y: 0}, {X: 0, Y: 14}, {X: -14, Y: 7}},
		geometry.FaceRight: {{X: 0, Y: 0}, {X: 14, Y: -7}, {X: 14, Y: 7}, {X: 0, Y: 14}},
	}
	src := [4]geometry.Point{{X: 0, Y: 0}, {X: s, Y: 0}, {X: s, Y: s}, {X: 0, Y: s}}
	for face, want := range corners {
		m := FaceTransform(face, s)
		for i, p := range src {
			if got := m.Apply(p); !near(got, want[i]) {
				t.Errorf("%v: corner %v -> %v, want %v", face, p, got, want[i])
			}
		}
		// Every mapped corner is a vertex of the face quad.
		quad := geometry.FaceQuad(face, geometry.BH)
		for _, p := range want {
			found := false
			for _, v := range quad {
				found = found || near(p, v)
			}
			if !found {
				t.Errorf("%v: %v is not a face vertex of %v", face, p, quad)
			}
		}
	}
}

func TestMatrixString(t *testing.T) {
	got := FaceTransform(geometry.FaceTop, TextureSize).String()
	if got != "matrix(0.875,0.4375,-0.875,0.4375,0,-14)" {
		t.Errorf("top transform = %s", got)
	}
}

func TestPatternsFor(t *testing.T) {
	ps := PatternsFor(material.Grass, TextureSource{Base: "https://tex.example/"})
	if len(ps) != 3 {
		t.Fatalf("len = %d, want 3", len(ps))
	}
	byFace := map[geometry.Face]Pattern{}
	for _, p := range ps {
		byFace[p.Face] = p
	}
	top := byFace[geometry.FaceTop]
	if top.ID != "pat-grass-top" || top.Href != "https://tex.example/grass_block_top.png" || top.Filter != "tint-grass" {
		t.Errorf("top pattern = %+v", top)
	}
	left := byFace[geometry.FaceLeft]
	if left.Href != "https://tex.example/grass_block_side.png" || left.Filter != "" {
		t.Errorf("left pattern = %+v", left)
	}
}

func TestTextureSourceEmbeds(t *testing.T) {
	src := TextureSource{Data: map[string][]byte{"stone.png": {0x89, 'P', 'N', 'G'}}}
	if got := src.Href("stone.png"); !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Errorf("embedded href = %q", got)
	}
	if got := src.Href("dirt.png"); got != DefaultTextureBase+"dirt.png" {
		t.Errorf("fallback href = %q", got)
	}
}

func TestWritePatternAndFilter(t *testing.T) {
	var buf bytes.Buffer
	WritePattern(&buf, PatternsFor(material.Water, TextureSource{})[0])
	WriteFilter(&buf, Filters[0])
	out := buf.String()
	for _, want := range []string{
		`<pattern id="pat-water-left"`,
		`patternTransform="matrix(0.875,0.4375,0,0.875,-14,-7)"`,
		`filter="url(#tint-water)"`,
		`<filter id="tint-water">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShadeFor(t *testing.T) {
	if s := ShadeFor(geometry.FaceLeft, material.Stone); s.Opacity != 0.5 {
		t.Errorf("stone left shade = %v", s)
	}
	if s := ShadeFor(geometry.FaceLeft, material.Water); s.Opacity != 0.4 {
		t.Errorf("water left shade = %v", s)
	}
	if s := ShadeFor(geometry.FaceTop, material.Water); s.Fill != "#fff" || s.Opacity != 0.1 {
		t.Errorf("water top shade = %v", s)
	}
}

func TestStylesheet(t *testing.T) {
	full := Stylesheet(Rules{Animate: true, Tooltips: true})
	for _, want := range []string{"@keyframes float", "translateY(-8px)", "translateY(-3px)", `[data-state="revealed"]`, "brightness(1.5)"} {
		if !strings.Contains(full, want) {
			t.Errorf("stylesheet missing %q", want)
		}
	}
	still := Stylesheet(Rules{})
	if strings.Contains(still, "@keyframes") || strings.Contains(still, ".tooltip") {
		t.Errorf("static stylesheet has animation or tooltip rules:\n%s", still)
	}
}
