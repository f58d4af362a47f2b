package geometry

import "math"

// Bounds is an axis-aligned rectangle in screen space.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyBounds returns bounds that any Extend call will replace.
func EmptyBounds() Bounds {
	return Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Union returns the smallest bounds containing b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: min(b.MinX, o.MinX), MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX), MaxY: max(b.MaxY, o.MaxY),
	}
}

// Extend returns b grown to include p.
func (b Bounds) Extend(p Point) Bounds {
	return Bounds{
		MinX: min(b.MinX, p.X), MinY: min(b.MinY, p.Y),
		MaxX: max(b.MaxX, p.X), MaxY: max(b.MaxY, p.Y),
	}
}

// Pad returns b grown by d on every side.
func (b Bounds) Pad(d float64) Bounds {
	return Bounds{MinX: b.MinX - d, MinY: b.MinY - d, MaxX: b.MaxX + d, MaxY: b.MaxY + d}
}

// Shift returns b moved by p.
func (b Bounds) Shift(p Point) Bounds {
	return Bounds{MinX: b.MinX + p.X, MinY: b.MinY + p.Y, MaxX: b.MaxX + p.X, MaxY: b.MaxY + p.Y}
}

// StrictlyContains reports whether o lies inside b without touching its edges.
func (b Bounds) StrictlyContains(o Bounds) bool {
	return o.MinX > b.MinX && o.MaxX < b.MaxX && o.MinY > b.MinY && o.MaxY < b.MaxY
}

// ViewBox formats b for an SVG viewBox attribute.
func (b Bounds) ViewBox() string {
	return Num(b.MinX) + " " + Num(b.MinY) + " " + Num(b.Width()) + " " + Num(b.Height())
}
