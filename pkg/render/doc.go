// Package render groups the renderers of CommitCraft.
//
// The only renderer is [iso], which turns a contribution calendar into an
// isometric block world. Its subpackages split the work:
//
//   - [iso/geometry]: the 2:1 isometric projection and screen bounds
//   - [iso/material]: block materials, height and ore classification
//   - [iso/ordering]: back-to-front painter's order
//   - [iso/styles]: texture patterns, shading filters and CSS
//   - [iso/tooltip]: overlay text, tier flavor and placement
//   - [iso/hover]: the reveal state machine behind tooltips
//   - [iso/sink]: SVG, PNG and JSON serialization
//
// Scenes are built once and serialized by any sink:
//
//	scene := iso.Build(cal, iso.WithSeed(7))
//	svg := sink.RenderSVG(scene)
//	png, err := sink.RenderPNG(scene, sink.WithScale(2))
package render
