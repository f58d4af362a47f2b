// Package tooltip derives the hover overlay shown above a column.
//
// Each overlay carries three lines of text (date, contribution count, and
// tier flavor) in a box sized from the longest line using an average glyph
// width. The box sits a fixed inset above the column's top face and is
// clamped horizontally into the scene viewport. Overlays start Dormant;
// revealing them is left to the presentation layer.
package tooltip

import (
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/WJZ-P/CommitCraft/pkg/render/iso/geometry"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/hover"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/material"
)

const (
	// Inset is the gap between the top face and the bottom of the box.
	Inset = 6.0
	// FontSize is the text size the glyph width is measured for.
	FontSize = 11.0
	// GlyphWidth is the average advance of one character at FontSize.
	GlyphWidth = 6.2
	// PaddingX is the horizontal padding on each side, including the tier swatch.
	PaddingX = 10.0
	// SwatchSize is the edge of the tier color square.
	SwatchSize = 8.0
	// PaddingY is the vertical padding above and below the text.
	PaddingY = 6.0
	// LineHeight is the distance between baselines.
	LineHeight = 14.0
	// BoxHeight is constant for every overlay.
	BoxHeight = 2*PaddingY + 3*LineHeight
	// MaxLineRunes caps every line; longer text is truncated.
	MaxLineRunes = 30
	// MaxBoxWidth is the widest box any input can produce.
	MaxBoxWidth = MaxLineRunes*GlyphWidth + 2*PaddingX + SwatchSize
	// Margin keeps clamped boxes off the viewport edge.
	Margin = 4.0
)

// Tooltip is a positioned overlay for one column.
type Tooltip struct {
	ID     string
	Anchor geometry.Point // the point the box hangs from, above the top face
	Box    geometry.Bounds
	Lines  [3]string
	Tier   material.Tier
	State  hover.State
}

var printer = message.NewPrinter(language.English)

// Lines returns the date, count summary, and tier flavor for a day.
func Lines(date string, count int) [3]string {
	return [3]string{
		truncate(formatDate(date)),
		truncate(formatCount(count)),
		truncate(TierInfoOf(material.TierOf(count)).Flavor),
	}
}

func formatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2 2006")
}

func formatCount(count int) string {
	if count == 1 {
		return "1 contribution"
	}
	return printer.Sprintf("%d contributions", count)
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxLineRunes {
		return s
	}
	r := []rune(s)
	return string(r[:MaxLineRunes-1]) + "…"
}

// Width returns the box width for lines.
func Width(lines [3]string) float64 {
	longest := 0
	for _, l := range lines {
		longest = max(longest, utf8.RuneCountInString(l))
	}
	return float64(longest)*GlyphWidth + 2*PaddingX + SwatchSize
}

// New derives the overlay for a column whose highest vertex is top.
// The box is centered on top and clamped horizontally into view.
// It returns nil for a count of zero, since such columns have no land.
func New(id, date string, count int, top geometry.Point, view geometry.Bounds) *Tooltip {
	if material.HeightOf(count) == 0 {
		return nil
	}
	lines := Lines(date, count)
	w := Width(lines)
	anchor := geometry.Point{X: top.X, Y: top.Y - Inset}

	x := anchor.X - w/2
	x = max(x, view.MinX+Margin)
	x = min(x, view.MaxX-Margin-w)

	return &Tooltip{
		ID:     id,
		Anchor: anchor,
		Box: geometry.Bounds{
			MinX: x, MaxX: x + w,
			MinY: anchor.Y - BoxHeight, MaxY: anchor.Y,
		},
		Lines: lines,
		Tier:  material.TierOf(count),
		State: hover.Dormant,
	}
}

// Baseline returns the y coordinate of line i's text baseline.
func (t *Tooltip) Baseline(i int) float64 {
	return t.Box.MinY + PaddingY + float64(i+1)*LineHeight - 3
}

// TextX returns the x coordinate where line text starts.
func (t *Tooltip) TextX() float64 {
	return t.Box.MinX + PaddingX + SwatchSize
}
