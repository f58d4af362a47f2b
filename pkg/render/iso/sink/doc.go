// Package sink serializes an [iso.Scene] into output formats.
//
//   - SVG: the self-contained, embeddable document with texture patterns,
//     animation rules and tooltips
//   - JSON: the scene's draw list for external tools
//   - PNG: a flat-colored raster preview drawn natively, without textures
//
// Basic usage:
//
//	scene := iso.Build(cal, iso.WithLabel("octocat"))
//	if scene == nil {
//	    return // nothing to draw
//	}
//	svg := sink.RenderSVG(scene)
//	err := sink.WriteFile(dir, scene, "svg", svg)
//
// The SVG declares tooltip state with a data-state attribute and, unless
// disabled with [WithoutScript], carries a small script that drives the
// dormant/revealed state machine on pointer events and redraws the revealed
// tooltip above every column.
package sink
