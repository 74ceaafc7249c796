// Package whiteboard implements a multi-page raster drawing surface with
// bounded undo/redo, durable session persistence, and PNG export.
//
// # Overview
//
// The central type is [Board]: an ordered collection of fixed-aspect-ratio
// pages sharing one process-wide drawing context (tool, brush size, color).
// Each page owns a device-pixel RGBA buffer that tracks the host container's
// size and device pixel ratio without losing drawn content, plus a
// snapshot-based undo/redo history capped at [HistoryDepth] entries.
//
// # Quick Start
//
//	vp := &whiteboard.FixedViewport{W: 800, H: 600, DPR: 2}
//	b := whiteboard.NewBoard(vp, whiteboard.WithStore(store.NewMemory()))
//	b.CreatePage()
//
//	// Draw a stroke
//	b.SetColor("#1a73e8")
//	b.PointerDown(10, 10)
//	b.PointerMove(120, 80)
//	b.PointerUp(200, 150)
//
//	// Undo it, persist, export
//	b.Undo()
//	b.Save(ctx, "sketch")
//	out, _ := b.ExportActivePage()
//
// # Architecture
//
// The module is organized into:
//   - Public API: Board, Page, Canvas, Pixmap, Paint, Viewport
//   - Internal: raster (anti-aliased stroke coverage engine)
//   - Persistence: store (Store interface, SQLite and in-memory backends)
//
// # Coordinate System
//
// Pointer input and brush sizes are in logical (CSS-like) units with origin
// at the page's top-left corner; X increases right, Y increases down. Each
// canvas multiplies by its device pixel ratio internally, so callers never
// deal in device pixels.
//
// # Concurrency
//
// Board is safe for concurrent use; it serializes all drawing, layout, and
// history operations behind one lock, and Save/Load against each other
// behind a second so a durable write never blocks drawing.
package whiteboard

// Version is the current version of the library.
const Version = "0.2.0"
