package iso

import (
	"fmt"
	"math/rand/v2"

	"github.com/WJZ-P/CommitCraft/pkg/calendar"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/geometry"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/material"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/ordering"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/styles"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/tooltip"
)

// Padding is the margin between the outermost geometry and the viewport.
const Padding = 12.0

// Block is one drawn block in screen space.
type Block struct {
	Z        int // layer index, 0 is the water base
	Material material.Material
	Origin   geometry.Point
	Height   float64
}

// Faces returns the block's faces in paint order.
func (b Block) Faces() [3]geometry.Quad { return geometry.BlockFaces(b.Origin, b.Height) }

// Bounds returns the block's screen footprint.
func (b Block) Bounds() geometry.Bounds { return geometry.BlockBounds(b.Origin, b.Height) }

// Anim is the declarative motion descriptor of a column's moving group.
type Anim struct {
	Class     string  // styles.ClassLand or styles.ClassWater
	Delay     float64 // seconds, negative to start mid-cycle
	Amplitude float64 // peak upward displacement
}

// Column is everything drawn for one calendar day.
type Column struct {
	ID     string
	Week   int
	Day    int
	Date   string
	Count  int
	Level  calendar.Level
	Height int // land layers above the water base
	Anchor geometry.Point
	Depth  int

	// Static blocks never move. Blocks are drawn inside the column's moving
	// group, bottom to top, followed by the tooltip.
	Static  []Block
	Blocks  []Block
	Tooltip *tooltip.Tooltip
	Anim    *Anim
}

// Top returns the highest vertex of the column at rest.
func (c *Column) Top() geometry.Point {
	all := c.Blocks
	if len(all) == 0 {
		all = c.Static
	}
	if len(all) == 0 {
		return c.Anchor
	}
	return all[len(all)-1].Origin.Add(geometry.Point{Y: -2 * geometry.TH})
}

// Footprint returns the screen area the column can ever cover, including
// the peak of its float animation and its tooltip.
func (c *Column) Footprint() geometry.Bounds {
	out := geometry.EmptyBounds()
	for _, b := range c.Static {
		out = out.Union(b.Bounds())
	}
	moving := geometry.EmptyBounds()
	for _, b := range c.Blocks {
		moving = moving.Union(b.Bounds())
	}
	if c.Tooltip != nil {
		moving = moving.Union(c.Tooltip.Box)
	}
	if len(c.Blocks) > 0 || c.Tooltip != nil {
		out = out.Union(moving)
		if c.Anim != nil {
			out = out.Union(moving.Shift(geometry.Point{Y: -c.Anim.Amplitude}))
		}
	}
	return out
}

// Scene is a fully composed, serializer-independent document.
type Scene struct {
	Label     string
	Mode      Mode
	Seed      uint64
	Seeded    bool // false when built WithRand; Seed is then meaningless
	Weeks     int
	Total     int
	AvatarURL string

	Viewport  geometry.Bounds
	Materials []material.Material // distinct materials in use
	Patterns  []styles.Pattern
	Filters   []styles.Filter
	Columns   []Column // back to front
	Tooltips  bool
	Animate   bool
}

// Stylesheet returns the declarative style rules of the scene.
func (s *Scene) Stylesheet() string {
	return styles.Stylesheet(styles.Rules{Animate: s.Animate, Tooltips: s.Tooltips})
}

// BlockCount returns the number of blocks drawn.
func (s *Scene) BlockCount() int {
	n := 0
	for i := range s.Columns {
		n += len(s.Columns[i].Static) + len(s.Columns[i].Blocks)
	}
	return n
}

// Footprint returns the union of every column footprint.
func (s *Scene) Footprint() geometry.Bounds {
	out := geometry.EmptyBounds()
	for i := range s.Columns {
		out = out.Union(s.Columns[i].Footprint())
	}
	return out
}

// DownloadName returns the export file name for the scene.
func (s *Scene) DownloadName(ext string) string {
	label := s.Label
	if label == "" {
		label = "calendar"
	}
	return calendar.DownloadName(label, ext)
}

// Build composes the scene for cal. It returns nil when the calendar has no
// days, in which case there is nothing to display.
func Build(cal *calendar.Calendar, opts ...Option) *Scene {
	if cal.IsEmpty() {
		return nil
	}
	b := newBuilder(opts...)
	rng, seed := b.random()

	s := &Scene{
		Label:     b.label,
		Mode:      b.mode,
		Seed:      seed,
		Seeded:    b.rng == nil,
		Weeks:     len(cal.Weeks),
		Total:     cal.Total,
		AvatarURL: cal.AvatarURL,
		Tooltips:  b.tooltips && b.mode == ModeRich,
		Animate:   b.animate,
	}
	s.Viewport = Viewport(s.Weeks, s.Mode, s.Tooltips)

	cells := cal.Cells()
	s.Columns = make([]Column, 0, len(cells))
	for _, cell := range cells {
		s.Columns = append(s.Columns, b.column(cell, rng, s))
	}
	ordering.Sort(s.Columns, func(c Column) int { return c.Depth })

	s.Materials = usedMaterials(s.Columns)
	s.Patterns = styles.Patterns(s.Materials, b.textures)
	s.Filters = usedFilters(s.Patterns)
	return s
}

func (b *builder) column(cell calendar.Cell, rng *rand.Rand, s *Scene) Column {
	a := geometry.Anchor(cell.Week, cell.Day)
	c := Column{
		ID:     fmt.Sprintf("col-%d-%d", cell.Week, cell.Day),
		Week:   cell.Week,
		Day:    cell.Day,
		Date:   cell.Date,
		Count:  cell.Count,
		Level:  cell.Level,
		Anchor: a,
		Depth:  ordering.Depth(cell.Week, cell.Day),
	}
	if s.Mode == ModeSimple {
		b.simpleColumn(&c)
	} else {
		b.richColumn(&c, rng)
	}
	if s.Tooltips {
		id := fmt.Sprintf("tip-%d-%d", cell.Week, cell.Day)
		c.Tooltip = tooltip.New(id, cell.Date, cell.Count, c.Top(), s.Viewport)
	}
	if s.Animate && len(c.Blocks) > 0 {
		c.Anim = &Anim{
			Class:     styles.ClassLand,
			Delay:     -float64(c.Depth) * styles.DelayStep,
			Amplitude: styles.FloatAmplitude,
		}
		if c.Height == 0 {
			c.Anim.Class = styles.ClassWater
			c.Anim.Amplitude = styles.WaterFloatAmplitude
		}
	}
	return c
}

func (b *builder) richColumn(c *Column, rng *rand.Rand) {
	mats := material.Column(c.Count, rng)
	c.Height = len(mats) - 1
	for z, m := range mats {
		blk := Block{Z: z, Material: m, Origin: geometry.LayerOrigin(c.Anchor, z), Height: geometry.BH}
		if z == 0 && c.Height > 0 {
			c.Static = append(c.Static, blk)
			continue
		}
		c.Blocks = append(c.Blocks, blk)
	}
}

func (b *builder) simpleColumn(c *Column) {
	surface := material.SimpleFor(c.Level)
	if c.Level > calendar.LevelNone {
		c.Height = 1
	}
	c.Static = []Block{{
		Material: material.Water,
		Origin:   geometry.Origin(c.Anchor, 0, material.BaseWaterHeight),
		Height:   material.BaseWaterHeight,
	}}
	c.Blocks = []Block{{
		Z:        1,
		Material: surface.Material,
		Origin:   geometry.Origin(c.Anchor, material.BaseWaterHeight, surface.Height),
		Height:   surface.Height,
	}}
}

// StackRise returns how far above its anchor the tallest possible column
// of mode reaches at rest.
func StackRise(mode Mode) float64 {
	if mode == ModeSimple {
		return material.BaseWaterHeight + material.MaxSimpleHeight
	}
	return float64(material.MaxHeight+1) * geometry.BH
}

// Viewport returns the bounding viewport for a calendar of weeks columns.
// It depends only on the week count and the fixed maxima, never on the
// drawn geometry, and strictly contains every block, float offset and
// tooltip a scene of that size can produce.
func Viewport(weeks int, mode Mode, tooltips bool) geometry.Bounds {
	weeks = max(weeks, 1)
	rows := calendar.DaysPerWeek
	top := StackRise(mode) + styles.FloatAmplitude
	if tooltips {
		top += tooltip.Inset + tooltip.BoxHeight
	}
	v := geometry.Bounds{
		MinX: -float64(rows) * geometry.TW,
		MaxX: float64(weeks) * geometry.TW,
		MinY: -top,
		MaxY: float64(weeks-1+rows-1)*geometry.TH + geometry.BH,
	}.Pad(Padding)

	if tooltips {
		if need := tooltip.MaxBoxWidth + 2*tooltip.Margin + 2; v.Width() < need {
			grow := (need - v.Width()) / 2
			v.MinX -= grow
			v.MaxX += grow
		}
	}
	return v
}

func usedMaterials(cols []Column) []material.Material {
	seen := make(map[material.Material]bool)
	for i := range cols {
		for _, blk := range cols[i].Static {
			seen[blk.Material] = true
		}
		for _, blk := range cols[i].Blocks {
			seen[blk.Material] = true
		}
	}
	var out []material.Material
	for _, m := range material.All() {
		if seen[m] {
			out = append(out, m)
		}
	}
	return out
}

func usedFilters(ps []styles.Pattern) []styles.Filter {
	used := make(map[string]bool)
	for _, p := range ps {
		if p.Filter != "" {
			used[p.Filter] = true
		}
	}
	var out []styles.Filter
	for _, f := range styles.Filters {
		if used[f.ID] {
			out = append(out, f)
		}
	}
	return out
}
