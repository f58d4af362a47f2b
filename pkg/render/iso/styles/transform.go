// Package styles holds the reusable declarations of a scene: texture
// patterns, tint filters, face shading, and the stylesheet that animates
// columns and reveals tooltips.
package styles

import (
	"fmt"

	"github.com/WJZ-P/CommitCraft/pkg/render/iso/geometry"
)

// TextureSize is the edge length of a source texture in pixels.
const TextureSize = 16.0

// Matrix is a 2D affine transform in SVG order: (a b c d e f).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Apply maps p through m.
func (m Matrix) Apply(p geometry.Point) geometry.Point {
	return geometry.Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// String formats m for a transform attribute.
func (m Matrix) String() string {
	return fmt.Sprintf("matrix(%s,%s,%s,%s,%s,%s)",
		geometry.Num(m.A), geometry.Num(m.B), geometry.Num(m.C),
		geometry.Num(m.D), geometry.Num(m.E), geometry.Num(m.F))
}

// FaceTransform maps a size x size tileable image onto face f of a unit
// block in local block coordinates. The image's corners land exactly on the
// face's corners, so one square texture reads correctly on all three faces.
func FaceTransform(f geometry.Face, size float64) Matrix {
	a := geometry.TW / size
	b := geometry.TH / size
	d := geometry.BH / size
	switch f {
	case geometry.FaceLeft:
		return Matrix{A: a, B: b, C: 0, D: d, E: -geometry.TW, F: -geometry.TH}
	case geometry.FaceRight:
		return Matrix{A: a, B: -b, C: 0, D: d, E: 0, F: 0}
	default:
		return Matrix{A: a, B: b, C: -a, D: b, E: 0, F: -2 * geometry.TH}
	}
}
