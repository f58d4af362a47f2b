package styles

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/WJZ-P/CommitCraft/pkg/render/iso/geometry"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/material"
)

// Background fills the viewport behind the scene.
const Background = "#09121c"

// Filter is an feColorMatrix tint for grayscale textures.
type Filter struct {
	ID     string
	Values [4][5]float64
}

// Filters tints the grayscale water and grass textures.
var Filters = []Filter{
	{ID: "tint-water", Values: [4][5]float64{
		{0.1, 0, 0, 0, 0.15},
		{0.3, 0, 0, 0, 0.35},
		{0.6, 0, 0, 0, 0.85},
		{0, 0, 0, 1, 0},
	}},
	{ID: "tint-grass", Values: [4][5]float64{
		{0.569, 0, 0, 0, 0.05},
		{0.741, 0, 0, 0, 0.05},
		{0.349, 0, 0, 0, 0.05},
		{0, 0, 0, 1, 0},
	}},
}

// WriteFilter writes f as an SVG filter element.
func WriteFilter(buf *bytes.Buffer, f Filter) {
	rows := make([]string, len(f.Values))
	for i, row := range f.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = geometry.Num(v)
		}
		rows[i] = strings.Join(cells, " ")
	}
	fmt.Fprintf(buf, `    <filter id="%s"><feColorMatrix type="matrix" values="%s"/></filter>`+"\n", f.ID, strings.Join(rows, "  "))
}

// Shade is a flat overlay drawn on a textured face to fake directional light.
type Shade struct {
	Fill    string
	Opacity float64
}

// ShadeFor returns the overlay for face f of material m.
func ShadeFor(f geometry.Face, m material.Material) Shade {
	liquid := m.Info().Liquid
	switch f {
	case geometry.FaceLeft:
		if liquid {
			return Shade{"#000", 0.4}
		}
		return Shade{"#000", 0.5}
	case geometry.FaceRight:
		return Shade{"#000", 0.15}
	default:
		if liquid {
			return Shade{"#fff", 0.1}
		}
		return Shade{"#fff", 0.05}
	}
}
