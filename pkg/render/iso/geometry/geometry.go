// Package geometry projects grid coordinates onto the isometric screen plane
// and produces the three visible faces of a block.
//
// The grid has a w axis (calendar week) running down-right and a d axis
// (weekday) running down-left. A block's local origin is the front vertex of
// its top face; the top face is a rhombus 2*TW wide and 2*TH tall above the
// origin, and the side faces hang below it by the block height.
//
//	       (0,-2TH)
//	(-TW,-TH)     (TW,-TH)
//	        (0,0)
//	  left  |  right
//	        (0,h)
//
// With these constants, neighbouring blocks share edges exactly, so the
// draw order alone decides what is visible.
package geometry

import "fmt"

const (
	// TW is the tile half-width in screen units.
	TW = 14.0
	// TH is the tile half-height in screen units.
	TH = 7.0
	// BH is the height of one unit block.
	BH = 2 * TH
)

// Point is a screen-space position.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Quad is a face outline with vertices in drawing order.
type Quad [4]Point

// Translate returns q moved by p.
func (q Quad) Translate(p Point) Quad {
	for i := range q {
		q[i] = q[i].Add(p)
	}
	return q
}

// Points formats q for an SVG points attribute.
func (q Quad) Points() string {
	return fmt.Sprintf("%s %s %s %s", fmtPoint(q[0]), fmtPoint(q[1]), fmtPoint(q[2]), fmtPoint(q[3]))
}

func fmtPoint(p Point) string {
	return fmt.Sprintf("%s,%s", Num(p.X), Num(p.Y))
}

// Num formats a coordinate with at most four decimals and no trailing zeros.
func Num(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// Face identifies one visible side of a block.
type Face int

const (
	FaceLeft Face = iota
	FaceRight
	FaceTop
)

// Faces lists the visible faces in the order they are painted.
var Faces = [...]Face{FaceLeft, FaceRight, FaceTop}

func (f Face) String() string {
	switch f {
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	default:
		return "top"
	}
}

// Anchor returns the screen position of grid cell (w, d).
func Anchor(w, d int) Point {
	return Point{X: float64(w-d) * TW, Y: float64(w+d) * TH}
}

// Origin returns the local origin of a block of height h whose bottom sits
// base units above the ground plane of the cell at anchor a.
func Origin(a Point, base, h float64) Point {
	return Point{X: a.X, Y: a.Y + BH - base - h}
}

// LayerOrigin returns the origin of unit block z in the column at anchor a.
// Layer 0 rests on the ground plane.
func LayerOrigin(a Point, z int) Point {
	return Origin(a, float64(z)*BH, BH)
}

// FaceQuad returns the outline of face f for a block of height h in local
// coordinates.
func FaceQuad(f Face, h float64) Quad {
	switch f {
	case FaceLeft:
		return Quad{{0, 0}, {0, h}, {-TW, h - TH}, {-TW, -TH}}
	case FaceRight:
		return Quad{{0, 0}, {TW, -TH}, {TW, h - TH}, {0, h}}
	default:
		return Quad{{0, -2 * TH}, {TW, -TH}, {0, 0}, {-TW, -TH}}
	}
}

// BlockFaces returns the three faces of a block of height h at origin o in
// screen coordinates, in paint order.
func BlockFaces(o Point, h float64) [3]Quad {
	var out [3]Quad
	for i, f := range Faces {
		out[i] = FaceQuad(f, h).Translate(o)
	}
	return out
}

// BlockBounds returns the screen footprint of a block of height h at origin o.
func BlockBounds(o Point, h float64) Bounds {
	return Bounds{
		MinX: o.X - TW, MaxX: o.X + TW,
		MinY: o.Y - 2*TH, MaxY: o.Y + h,
	}
}
