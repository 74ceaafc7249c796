// Command wbdemo exercises the whiteboard core headlessly: it draws
// scripted strokes across two pages, undoes and redoes, saves the session,
// reloads it into a second board, and exports every page as a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/WOWitsaQT/whiteboard"
	"github.com/WOWitsaQT/whiteboard/store"
)

func main() {
	var (
		width   = flag.Float64("width", 800, "container width in logical units")
		height  = flag.Float64("height", 600, "container height in logical units")
		dpr     = flag.Float64("dpr", 2, "device pixel ratio")
		session = flag.String("session", "demo", "session name")
		dbPath  = flag.String("db", "", "sqlite store path (empty = in-memory)")
		outDir  = flag.String("out", ".", "directory for exported PNGs")
	)
	flag.Parse()

	whiteboard.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(*width, *height, *dpr, *session, *dbPath, *outDir); err != nil {
		fmt.Fprintln(os.Stderr, "wbdemo:", err)
		os.Exit(1)
	}
}

func run(width, height, dpr float64, session, dbPath, outDir string) error {
	var st store.Store
	if dbPath != "" {
		db, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		st = db
	} else {
		st = store.NewMemory()
	}

	vp := &whiteboard.FixedViewport{W: width, H: height, DPR: dpr}
	b := whiteboard.NewBoard(vp, whiteboard.WithStore(st))
	ctx := context.Background()

	// Page 1: a colored zigzag, partially erased.
	b.CreatePage()
	if err := b.SetColor("#1a73e8"); err != nil {
		return err
	}
	b.SetBrushSize(6)
	b.PointerDown(20, 20)
	b.PointerMove(120, 160)
	b.PointerMove(220, 40)
	b.PointerUp(320, 180)

	b.SetTool(whiteboard.ToolErase)
	b.SetBrushSize(24)
	b.PointerDown(100, 100)
	b.PointerUp(180, 100)
	b.SetTool(whiteboard.ToolMark)

	// Page 2: a red dot, drawn twice with one stroke undone.
	b.CreatePage()
	if err := b.SetColor("#d93025"); err != nil {
		return err
	}
	b.PointerDown(50, 50)
	b.PointerUp(50, 50)
	b.PointerDown(90, 90)
	b.PointerUp(90, 90)
	b.Undo()
	b.Redo()
	b.Undo()

	if err := b.Save(ctx, session); err != nil {
		return err
	}

	// Reload into a fresh board and export every page.
	b2 := whiteboard.NewBoard(vp, whiteboard.WithStore(st))
	if err := b2.Load(ctx, session); err != nil {
		return err
	}
	for i := 0; i < b2.PageCount(); i++ {
		b2.SelectPage(i)
		out, err := b2.ExportActivePage()
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, out.Filename)
		if err := os.WriteFile(path, out.PNG, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Println("exported", path)
	}
	return nil
}
