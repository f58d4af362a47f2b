package styles

import (
	"bytes"
	"fmt"

	"github.com/WJZ-P/CommitCraft/pkg/render/iso/geometry"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/material"
)

// DefaultTextureBase serves the vanilla 1.20.4 block textures.
const DefaultTextureBase = "https://cdn.jsdelivr.net/gh/InventivetalentDev/minecraft-assets@1.20.4/assets/minecraft/textures/block/"

// TextureSource resolves texture file names to hrefs.
type TextureSource struct {
	Base string            // URL prefix for remote textures
	Data map[string][]byte // embedded PNGs keyed by file name; take precedence over Base
}

// Href returns the href for file, embedding it as a data URI when available.
func (s TextureSource) Href(file string) string {
	if png, ok := s.Data[file]; ok {
		return DataURI(png)
	}
	base := s.Base
	if base == "" {
		base = DefaultTextureBase
	}
	return base + file
}

// Pattern is one orientation of one material's texture.
type Pattern struct {
	ID        string
	Material  material.Material
	Face      geometry.Face
	Href      string
	Filter    string // tint filter id, may be empty
	Transform Matrix
}

// PatternID returns the id of the pattern for material m on face f.
func PatternID(m material.Material, f geometry.Face) string {
	return "pat-" + m.String() + "-" + f.String()
}

// PatternsFor returns the three orientation variants for m, all sampling the
// material's textures through [FaceTransform].
func PatternsFor(m material.Material, src TextureSource) []Pattern {
	info := m.Info()
	out := make([]Pattern, 0, len(geometry.Faces))
	for _, f := range geometry.Faces {
		file, tint := info.SideFile, info.SideTint
		if f == geometry.FaceTop {
			file, tint = info.TopFile, info.TopTint
		}
		out = append(out, Pattern{
			ID:        PatternID(m, f),
			Material:  m,
			Face:      f,
			Href:      src.Href(file),
			Filter:    tint,
			Transform: FaceTransform(f, TextureSize),
		})
	}
	return out
}

// Patterns returns the patterns for every material in ms, in order.
func Patterns(ms []material.Material, src TextureSource) []Pattern {
	out := make([]Pattern, 0, len(ms)*len(geometry.Faces))
	for _, m := range ms {
		out = append(out, PatternsFor(m, src)...)
	}
	return out
}

// WritePattern writes p as an SVG pattern element.
func WritePattern(buf *bytes.Buffer, p Pattern) {
	filter := ""
	if p.Filter != "" {
		filter = fmt.Sprintf(` filter="url(#%s)"`, p.Filter)
	}
	fmt.Fprintf(buf, `    <pattern id="%s" width="%s" height="%s" patternUnits="userSpaceOnUse" patternTransform="%s">`+"\n",
		p.ID, geometry.Num(TextureSize), geometry.Num(TextureSize), p.Transform)
	fmt.Fprintf(buf, `      <image href="%s" width="%s" height="%s" preserveAspectRatio="none" style="image-rendering:pixelated"%s/>`+"\n",
		EscapeXML(p.Href), geometry.Num(TextureSize), geometry.Num(TextureSize), filter)
	buf.WriteString("    </pattern>\n")
}
