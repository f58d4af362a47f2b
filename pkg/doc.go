// Package pkg holds the libraries behind CommitCraft, which renders a GitHub
// contribution calendar as an isometric voxel world.
//
// # Overview
//
// The pkg directory is organized by stage:
//
//  1. [calendar] - the contribution calendar model and its JSON form
//  2. [integrations] - HTTP clients, including the GitHub GraphQL client
//  3. [render] - scene composition and the SVG, PNG and JSON sinks
//  4. [pipeline] - orchestration (fetch → build → render) with caching
//  5. [cache] - file, Redis and MongoDB backends behind one interface
//
// Supporting packages: [config] (TOML configuration), [errors] (coded errors
// and input validation), [observability] (hooks and Prometheus metrics),
// [httputil] (retry helpers) and [buildinfo] (version stamping).
//
// # Architecture
//
//	GitHub GraphQL / calendar JSON file
//	         ↓
//	    [calendar] (weeks of days, counts and levels)
//	         ↓
//	    [render/iso] (columns of blocks, ores, tooltips, animation)
//	         ↓
//	    [render/iso/sink] (SVG, PNG, JSON)
//
// # Quick Start
//
//	import (
//	    "context"
//
//	    "github.com/WJZ-P/CommitCraft/pkg/pipeline"
//	)
//
//	seed := uint64(42)
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Execute(context.Background(), pipeline.Options{
//	    Input:   "octocat.json",
//	    Seed:    &seed,
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("octocat.svg", res.Artifacts[pipeline.FormatSVG], 0o644)
//
// Lower-level use skips the pipeline:
//
//	cal, _ := calendar.ImportJSON("octocat.json")
//	scene := iso.Build(cal, iso.WithSeed(42), iso.WithMode(iso.ModeSimple))
//	svg := sink.RenderSVG(scene)
//
// # Determinism
//
// Ore placement is the only random part of a scene. Every random draw comes
// from a PCG source seeded by the caller, so a fixed seed and calendar always
// produce byte-identical documents. Without a seed one is drawn and recorded
// on the scene, so any render can be reproduced later.
package pkg
