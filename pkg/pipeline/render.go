package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/WJZ-P/CommitCraft/pkg/observability"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/sink"
)

// Render generates output artifacts in the requested formats.
// Options must already be validated.
func Render(ctx context.Context, scene *iso.Scene, opts Options) (map[string][]byte, error) {
	if scene == nil {
		return nil, fmt.Errorf("no scene to render")
	}
	hooks := observability.Pipeline()
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		hooks.OnRenderStart(ctx, format)
		start := time.Now()

		data, err := renderFormat(scene, format, opts)
		hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderFormat(scene *iso.Scene, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(scene, svgOptions(opts)...), nil
	case FormatPNG:
		return sink.RenderPNG(scene, sink.WithScale(opts.Scale))
	case FormatJSON:
		return sink.RenderJSON(scene)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func svgOptions(opts Options) []sink.SVGOption {
	var out []sink.SVGOption
	if opts.NoScript {
		out = append(out, sink.WithoutScript())
	}
	return out
}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatJSON:
		return "application/json"
	}
	return "application/octet-stream"
}
