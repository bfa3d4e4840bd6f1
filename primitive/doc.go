// Package primitive defines the retained-mode description of a frame that a
// host GUI toolkit hands to the renderer: a tree of drawing primitives plus
// the geometry, color, font and cursor value types they reference.
//
// The tree is a closed sum type. Every node implements [Primitive]; a switch
// over the concrete types is exhaustive:
//
//	tree := primitive.Group{Primitives: []primitive.Primitive{
//	    primitive.Quad{Bounds: primitive.Rect(0, 0, 100, 40), Background: primitive.BackgroundColor{Color: primitive.White}},
//	    primitive.Text{Content: "OK", Bounds: primitive.Rect(0, 0, 100, 40), Color: primitive.Black, Size: 16},
//	}}
//
// The renderer only borrows a tree for the duration of one draw call.
package primitive
