package sink

import (
	"bytes"
	"fmt"

	"github.com/WJZ-P/CommitCraft/pkg/render/iso"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/geometry"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/styles"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/tooltip"
)

const tooltipJS = `
    (function () {
      var overlay = document.getElementById('overlay');
      if (!overlay) return;
      overlay.ownerSVGElement.classList.add('scripted');
      var state = {};
      function dispatch(id, ev) {
        var next = ev === 'enter' ? 'revealed' : 'dormant';
        if (state[id] === next) return;
        state[id] = next;
        var tip = document.getElementById(id);
        tip.setAttribute('data-state', next);
        while (overlay.firstChild) overlay.removeChild(overlay.firstChild);
        if (next === 'revealed') {
          var clone = tip.cloneNode(true);
          clone.removeAttribute('id');
          overlay.appendChild(clone);
        }
      }
      document.querySelectorAll('.column[data-tooltip]').forEach(function (col) {
        var id = col.getAttribute('data-tooltip');
        col.addEventListener('mouseenter', function () { dispatch(id, 'enter'); });
        col.addEventListener('mouseleave', function () { dispatch(id, 'leave'); });
      });
    })();`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	script bool
	width  float64 // 0 keeps the viewport size
}

// WithoutScript omits the interaction script. Tooltips still appear on
// hover through the stylesheet fallback, but a revealed tooltip stays inside
// its column's group, so columns painted after it (nearer the viewer) can
// cover it. The scripted document lifts the revealed tooltip to the top.
func WithoutScript() SVGOption { return func(r *svgRenderer) { r.script = false } }

// WithWidth sets the width attribute; the height follows the viewport's
// aspect ratio.
func WithWidth(w float64) SVGOption { return func(r *svgRenderer) { r.width = w } }

// RenderSVG serializes s. It returns nil for a nil scene.
func RenderSVG(s *iso.Scene, opts ...SVGOption) []byte {
	if s == nil {
		return nil
	}
	r := svgRenderer{script: true}
	for _, opt := range opts {
		opt(&r)
	}

	v := s.Viewport
	w, h := v.Width(), v.Height()
	if r.width > 0 {
		w, h = r.width, r.width*v.Height()/v.Width()
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s" width="%.0f" height="%.0f" data-mode="%s" data-seed="%d">`+"\n",
		v.ViewBox(), w, h, s.Mode, s.Seed)
	if s.Label != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(s.Label))
	}

	renderDefs(&buf, s)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", s.Stylesheet())
	fmt.Fprintf(&buf, `  <rect class="background" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		geometry.Num(v.MinX), geometry.Num(v.MinY), geometry.Num(v.Width()), geometry.Num(v.Height()), styles.Background)

	for i := range s.Columns {
		renderColumn(&buf, &s.Columns[i])
	}

	if s.Tooltips && r.script {
		buf.WriteString(`  <g id="overlay"/>` + "\n")
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", tooltipJS)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer, s *iso.Scene) {
	buf.WriteString("  <defs>\n")
	for _, f := range s.Filters {
		styles.WriteFilter(buf, f)
	}
	for _, p := range s.Patterns {
		styles.WritePattern(buf, p)
	}
	buf.WriteString("  </defs>\n")
}

func renderColumn(buf *bytes.Buffer, c *iso.Column) {
	fmt.Fprintf(buf, `  <g class="column" id="%s" data-date="%s" data-count="%d"`, c.ID, styles.EscapeXML(c.Date), c.Count)
	if c.Tooltip != nil {
		fmt.Fprintf(buf, ` data-tooltip="%s"`, c.Tooltip.ID)
	}
	buf.WriteString(">\n")

	for _, b := range c.Static {
		renderBlock(buf, b, "    ")
	}
	if len(c.Blocks) > 0 || c.Tooltip != nil {
		switch {
		case c.Anim != nil:
			fmt.Fprintf(buf, `    <g class="%s" style="animation-delay:%ss">`+"\n", c.Anim.Class, geometry.Num(c.Anim.Delay))
		case c.Height > 0:
			fmt.Fprintf(buf, `    <g class="%s">`+"\n", styles.ClassLand)
		default:
			fmt.Fprintf(buf, `    <g class="%s">`+"\n", styles.ClassWater)
		}
		for _, b := range c.Blocks {
			renderBlock(buf, b, "      ")
		}
		if c.Tooltip != nil {
			renderTooltip(buf, c.Tooltip)
		}
		buf.WriteString("    </g>\n")
	}
	buf.WriteString("  </g>\n")
}

func renderBlock(buf *bytes.Buffer, b iso.Block, indent string) {
	fmt.Fprintf(buf, `%s<g class="block" data-material="%s" transform="translate(%s,%s)">`+"\n",
		indent, b.Material, geometry.Num(b.Origin.X), geometry.Num(b.Origin.Y))
	for _, f := range geometry.Faces {
		q := geometry.FaceQuad(f, b.Height)
		shade := styles.ShadeFor(f, b.Material)
		fmt.Fprintf(buf, `%s  <polygon points="%s" fill="url(#%s)"/>`+"\n", indent, q.Points(), styles.PatternID(b.Material, f))
		fmt.Fprintf(buf, `%s  <polygon points="%s" fill="%s" fill-opacity="%s"/>`+"\n", indent, q.Points(), shade.Fill, geometry.Num(shade.Opacity))
	}
	fmt.Fprintf(buf, "%s</g>\n", indent)
}

func renderTooltip(buf *bytes.Buffer, t *tooltip.Tooltip) {
	info := tooltipInfo(t)
	box := t.Box
	fmt.Fprintf(buf, `      <g class="tooltip" id="%s" data-state="%s" data-tier="%d">`+"\n", t.ID, t.State, t.Tier)
	fmt.Fprintf(buf, `        <rect x="%s" y="%s" width="%s" height="%s" rx="3" fill="#101010" fill-opacity="0.92" stroke="%s"/>`+"\n",
		geometry.Num(box.MinX), geometry.Num(box.MinY), geometry.Num(box.Width()), geometry.Num(box.Height()), info.Color)
	fmt.Fprintf(buf, `        <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		geometry.Num(box.MinX+tooltip.PaddingX/2), geometry.Num(t.Baseline(0)-tooltip.SwatchSize),
		geometry.Num(tooltip.SwatchSize), geometry.Num(tooltip.SwatchSize), info.Color)
	for i, line := range t.Lines {
		class := ""
		if i == len(t.Lines)-1 {
			class = ` class="flavor"`
		}
		fmt.Fprintf(buf, `        <text x="%s" y="%s" font-size="%s"%s>%s</text>`+"\n",
			geometry.Num(t.TextX()), geometry.Num(t.Baseline(i)), geometry.Num(tooltip.FontSize), class, styles.EscapeXML(line))
	}
	buf.WriteString("      </g>\n")
}

func tooltipInfo(t *tooltip.Tooltip) tooltip.TierInfo { return tooltip.TierInfoOf(t.Tier) }
