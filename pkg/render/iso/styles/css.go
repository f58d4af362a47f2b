package styles

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strings"
)

// Animation amplitudes, in screen units, used by the viewport computation.
const (
	FloatAmplitude      = 8.0
	WaterFloatAmplitude = 3.0
	// DelayStep staggers the float animation along the painter's depth.
	DelayStep = 0.15
)

// Animation classes attached to a column's moving group.
const (
	ClassLand  = "land"
	ClassWater = "water"
)

// Rules selects which declarative rules a stylesheet carries.
type Rules struct {
	Animate  bool
	Tooltips bool
}

// Stylesheet returns the CSS for a scene. The rules never reference a
// specific element: float motion is keyed on the animation classes, and
// tooltip visibility on the data-state attribute. Documents displayed
// without script fall back to revealing a tooltip while its column is
// hovered.
func Stylesheet(r Rules) string {
	var sb strings.Builder
	if r.Animate {
		fmt.Fprintf(&sb, `
    .%[1]s { animation: float 4s ease-in-out infinite; }
    .%[2]s { animation: water-float 4s ease-in-out infinite; }
    @keyframes float { 0%%, 100%% { transform: translateY(0); } 50%% { transform: translateY(-%[3]spx); } }
    @keyframes water-float { 0%%, 100%% { transform: translateY(0); } 50%% { transform: translateY(-%[4]spx); } }`,
			ClassLand, ClassWater, fmtAmp(FloatAmplitude), fmtAmp(WaterFloatAmplitude))
	}
	fmt.Fprintf(&sb, `
    .%[1]s, .%[2]s { transition: filter 0.2s; cursor: crosshair; }
    .%[1]s:hover, .%[2]s:hover { filter: brightness(1.5) contrast(1.2); }`, ClassLand, ClassWater)
	if r.Tooltips {
		sb.WriteString(`
    .tooltip { pointer-events: none; opacity: 0; transition: opacity 0.15s ease; }
    .tooltip[data-state="revealed"], svg:not(.scripted) .column:hover .tooltip { opacity: 1; }
    .tooltip text { font-family: ui-monospace, Menlo, Consolas, monospace; fill: #f0f0f0; }
    .tooltip .flavor { fill: #ffd966; }`)
	}
	return sb.String()
}

func fmtAmp(v float64) string { return fmt.Sprintf("%g", v) }

// EscapeXML escapes s for use in text content and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// DataURI encodes a PNG as a data URI.
func DataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
