// Package ggsoft is a CPU rendering backend for retained-mode GUI toolkits.
//
// A host toolkit describes a frame as a tree of primitives (package
// primitive): text, rounded rectangles, clips and translations. Backend.Draw
// walks the tree and paints it onto a Canvas, normally a *raster.DrawTarget.
// Backend.Measure reports the size text will occupy so the host can lay out
// widgets before drawing.
//
// # Quick Start
//
//	b := ggsoft.NewBackend()
//	dt := raster.NewDrawTarget(800, 600)
//
//	tree := primitive.Group{Primitives: []primitive.Primitive{
//	    primitive.Quad{
//	        Bounds:       primitive.Rect(10, 10, 200, 40),
//	        Background:   primitive.BackgroundColor{Color: primitive.FromRGB(0.2, 0.4, 0.8)},
//	        BorderRadius: 6,
//	    },
//	    primitive.Text{
//	        Content: "Hello",
//	        Bounds:  primitive.Rect(20, 18, 180, 24),
//	        Color:   primitive.White,
//	        Size:    18,
//	    },
//	}}
//
//	b.Draw(dt, ggsoft.NewViewport(800, 600, 1), tree, primitive.Idle, nil)
//	_ = dt.SavePNG("frame.png")
//
// # Text
//
// Text is laid out by text.Layout and rasterized glyph by glyph. Rasterized
// glyphs are memoized in a text.GlyphCache keyed by character, pixel size and
// font, so repeated frames only composite. The default font is Go Regular;
// external fonts are parsed once per name.
//
// # Logging
//
// ggsoft logs through log/slog and is silent by default. See SetLogger.
package ggsoft
