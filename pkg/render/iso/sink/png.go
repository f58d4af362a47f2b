package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/vector"

	"github.com/WJZ-P/CommitCraft/pkg/render/iso"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/geometry"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/styles"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes a static preview of the scene at rest: every face
// filled with its material's flat color and shade, without textures or
// tooltips.
func RenderPNG(s *iso.Scene, opts ...PNGOption) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if !(r.scale > 0) || math.IsInf(r.scale, 0) {
		r.scale = 1
	}

	img := Rasterize(s, r.scale)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Rasterize draws the scene into a new image at the given scale.
func Rasterize(s *iso.Scene, scale float64) *image.RGBA {
	v := s.Viewport
	w := max(1, int(v.Width()*scale+0.5))
	h := max(1, int(v.Height()*scale+0.5))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(parseHex(styles.Background)), image.Point{}, draw.Src)

	z := vector.NewRasterizer(w, h)
	project := func(p geometry.Point) (float32, float32) {
		return float32((p.X - v.MinX) * scale), float32((p.Y - v.MinY) * scale)
	}
	fill := func(q geometry.Quad, c color.Color) {
		z.Reset(w, h)
		z.MoveTo(project(q[0]))
		for _, p := range q[1:] {
			z.LineTo(project(p))
		}
		z.ClosePath()
		z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	}

	for i := range s.Columns {
		c := &s.Columns[i]
		for _, blocks := range [][]iso.Block{c.Static, c.Blocks} {
			for _, b := range blocks {
				faces := b.Faces()
				for fi, f := range geometry.Faces {
					fill(faces[fi], faceColor(b, f))
				}
			}
		}
	}
	return img
}

func faceColor(b iso.Block, f geometry.Face) color.RGBA {
	info := b.Material.Info()
	base := info.SideColor
	if f == geometry.FaceTop {
		base = info.TopColor
	}
	shade := styles.ShadeFor(f, b.Material)
	return mix(parseHex(base), parseHex(shade.Fill), shade.Opacity)
}

func mix(c, over color.RGBA, alpha float64) color.RGBA {
	blend := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-alpha) + float64(b)*alpha + 0.5)
	}
	return color.RGBA{R: blend(c.R, over.R), G: blend(c.G, over.G), B: blend(c.B, over.B), A: 0xff}
}

// parseHex parses #rgb and #rrggbb colors. Anything else is opaque black.
func parseHex(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}
}
