// Package pkg provides the core libraries for arcplot topology rendering.
//
// # Overview
//
// Arcplot turns base-pairing interchange files into 1-D topology diagrams:
// each pair becomes a semicircular arc above the sequence axis, and arcs
// belonging to the same helix share a color. The pkg directory is organized
// into five main areas:
//
//  1. [pairing] - Domain model (pairs, normalization, input formats)
//  2. [helix] - Helix segmentation of ordered pair sequences
//  3. [render] - Palettes, scene construction, and output sinks
//  4. [pipeline] - Orchestration (parse → segment → render) with caching
//  5. [cache], [config], [errors], [buildinfo] - Infrastructure
//
// # Architecture
//
// The typical data flow through arcplot:
//
//	Contact table / Segment annotation / Residue pair table
//	         ↓
//	    [pairing/format] package (decode pairs)
//	         ↓
//	    [pairing] package (normalize + order)
//	         ↓
//	    [helix] package (group adjacent pairs)
//	         ↓
//	    [render] package (scene + palette + sinks)
//	         ↓
//	    SVG/PNG/PDF/DOT output
//
// # Quick Start
//
// Parse a residue pair table and render an arc diagram:
//
//	import (
//	    "github.com/arcplot/arcplot/pkg/helix"
//	    "github.com/arcplot/arcplot/pkg/pairing"
//	    "github.com/arcplot/arcplot/pkg/pairing/format"
//	    "github.com/arcplot/arcplot/pkg/render"
//	    "github.com/arcplot/arcplot/pkg/render/arcs"
//	)
//
//	// 1. Read and normalize pairs
//	src := format.Source{Kind: format.KindResiduePairTable, Path: "structure.bpseq"}
//	raw, _ := src.Pairs()
//	pairs, _ := pairing.Normalize(raw)
//
//	// 2. Group into helices
//	helices, _ := helix.Segment(pairs)
//
//	// 3. Build the scene and render
//	p, _ := render.LookupPalette(render.DefaultPalette)
//	scene := render.BuildScene(helices, pairing.BoundsOf(pairs), p)
//	svg := arcs.RenderSVG(scene, arcs.Options{})
//
// For end-to-end runs with caching and multiple output formats, use the
// [pipeline] package instead.
package pkg
