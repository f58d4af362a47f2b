package sink

import (
	"encoding/json"

	"github.com/WJZ-P/CommitCraft/pkg/render/iso"
)

type jsonOutput struct {
	Label     string       `json:"label,omitempty"`
	Mode      iso.Mode     `json:"mode"`
	Seed      *uint64      `json:"seed,omitempty"`
	Weeks     int          `json:"weeks"`
	Total     int          `json:"total_contributions"`
	AvatarURL string       `json:"avatar_url,omitempty"`
	ViewBox   jsonViewBox  `json:"view_box"`
	Materials []string     `json:"materials"`
	Columns   []jsonColumn `json:"columns"`
}

type jsonViewBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonColumn struct {
	ID      string       `json:"id"`
	Week    int          `json:"week"`
	Day     int          `json:"day"`
	Date    string       `json:"date,omitempty"`
	Count   int          `json:"count"`
	Height  int          `json:"height"`
	Depth   int          `json:"depth"`
	X       float64      `json:"x"`
	Y       float64      `json:"y"`
	Blocks  []jsonBlock  `json:"blocks"`
	Tooltip *jsonTooltip `json:"tooltip,omitempty"`
	Anim    *jsonAnim    `json:"animation,omitempty"`
}

type jsonBlock struct {
	Z        int     `json:"z"`
	Material string  `json:"material"`
	Height   float64 `json:"height"`
	Static   bool    `json:"static,omitempty"`
}

type jsonTooltip struct {
	ID    string    `json:"id"`
	Lines [3]string `json:"lines"`
	Tier  int       `json:"tier"`
	Name  string    `json:"tier_name"`
	Color string    `json:"color"`
	State string    `json:"state"`
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	Width float64   `json:"width"`
}

type jsonAnim struct {
	Class string  `json:"class"`
	Delay float64 `json:"delay"`
}

// RenderJSON exports the scene's draw list, columns in paint order.
func RenderJSON(s *iso.Scene) ([]byte, error) {
	if s == nil {
		return []byte("null\n"), nil
	}
	v := s.Viewport
	out := jsonOutput{
		Label:     s.Label,
		Mode:      s.Mode,
		Weeks:     s.Weeks,
		Total:     s.Total,
		AvatarURL: s.AvatarURL,
		ViewBox:   jsonViewBox{X: v.MinX, Y: v.MinY, Width: v.Width(), Height: v.Height()},
		Materials: make([]string, len(s.Materials)),
		Columns:   make([]jsonColumn, len(s.Columns)),
	}
	if s.Seeded {
		seed := s.Seed
		out.Seed = &seed
	}
	for i, m := range s.Materials {
		out.Materials[i] = m.String()
	}
	for i := range s.Columns {
		out.Columns[i] = columnJSON(&s.Columns[i])
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func columnJSON(c *iso.Column) jsonColumn {
	jc := jsonColumn{
		ID: c.ID, Week: c.Week, Day: c.Day, Date: c.Date,
		Count: c.Count, Height: c.Height, Depth: c.Depth,
		X: c.Anchor.X, Y: c.Anchor.Y,
		Blocks: make([]jsonBlock, 0, len(c.Static)+len(c.Blocks)),
	}
	for _, b := range c.Static {
		jc.Blocks = append(jc.Blocks, jsonBlock{Z: b.Z, Material: b.Material.String(), Height: b.Height, Static: true})
	}
	for _, b := range c.Blocks {
		jc.Blocks = append(jc.Blocks, jsonBlock{Z: b.Z, Material: b.Material.String(), Height: b.Height})
	}
	if t := c.Tooltip; t != nil {
		info := tooltipInfo(t)
		jc.Tooltip = &jsonTooltip{
			ID: t.ID, Lines: t.Lines, Tier: int(t.Tier),
			Name: info.Name, Color: info.Color, State: t.State.String(),
			X: t.Box.MinX, Y: t.Box.MinY, Width: t.Box.Width(),
		}
	}
	if c.Anim != nil {
		jc.Anim = &jsonAnim{Class: c.Anim.Class, Delay: c.Anim.Delay}
	}
	return jc
}
