// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/chewxy/math32"

// Point is a position in user space.
type Point struct {
	X, Y float32
}

// OpKind identifies a path command.
type OpKind uint8

const (
	OpMoveTo OpKind = iota
	OpLineTo
	OpQuadTo
	OpClose
)

// PathOp is a single path command. QuadTo uses both points (control, end);
// MoveTo and LineTo use only the first; Close uses none.
type PathOp struct {
	Kind   OpKind
	Points [2]Point
}

// Path is an immutable sequence of path commands.
type Path struct {
	ops []PathOp
}

// Ops returns the path's commands. The slice must not be modified.
func (p *Path) Ops() []PathOp {
	return p.ops
}

// Vertices returns the on-curve points: the targets of every MoveTo, LineTo
// and QuadTo, in order.
func (p *Path) Vertices() []Point {
	var pts []Point
	for _, op := range p.ops {
		switch op.Kind {
		case OpMoveTo, OpLineTo:
			pts = append(pts, op.Points[0])
		case OpQuadTo:
			pts = append(pts, op.Points[1])
		}
	}
	return pts
}

// Bounds returns the bounding box of all points including curve control points.
// The control points of a quadratic lie on the hull, so this box contains the
// filled area. An empty path returns ok=false.
func (p *Path) Bounds() (minX, minY, maxX, maxY float32, ok bool) {
	visit := func(pt Point) {
		if !ok {
			minX, minY, maxX, maxY = pt.X, pt.Y, pt.X, pt.Y
			ok = true
			return
		}
		minX = math32.Min(minX, pt.X)
		minY = math32.Min(minY, pt.Y)
		maxX = math32.Max(maxX, pt.X)
		maxY = math32.Max(maxY, pt.Y)
	}
	for _, op := range p.ops {
		switch op.Kind {
		case OpMoveTo, OpLineTo:
			visit(op.Points[0])
		case OpQuadTo:
			visit(op.Points[0])
			visit(op.Points[1])
		}
	}
	return minX, minY, maxX, maxY, ok
}

// transformed returns a copy of p mapped through t.
func (p *Path) transformed(t Transform) *Path {
	if t.IsIdentity() {
		return p
	}
	out := &Path{ops: make([]PathOp, len(p.ops))}
	for i, op := range p.ops {
		for j := range op.Points {
			op.Points[j].X, op.Points[j].Y = t.TransformPoint(op.Points[j].X, op.Points[j].Y)
		}
		out.ops[i] = op
	}
	return out
}

// PathBuilder accumulates path commands.
type PathBuilder struct {
	ops []PathOp
}

// NewPathBuilder returns an empty builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{ops: make([]PathOp, 0, 16)}
}

// MoveTo starts a new subpath at (x, y).
func (b *PathBuilder) MoveTo(x, y float32) {
	b.ops = append(b.ops, PathOp{Kind: OpMoveTo, Points: [2]Point{{X: x, Y: y}}})
}

// LineTo adds a straight edge to (x, y).
func (b *PathBuilder) LineTo(x, y float32) {
	b.ops = append(b.ops, PathOp{Kind: OpLineTo, Points: [2]Point{{X: x, Y: y}}})
}

// QuadTo adds a quadratic Bézier curve through control (cx, cy) to (x, y).
func (b *PathBuilder) QuadTo(cx, cy, x, y float32) {
	b.ops = append(b.ops, PathOp{Kind: OpQuadTo, Points: [2]Point{{X: cx, Y: cy}, {X: x, Y: y}}})
}

// Close closes the current subpath.
func (b *PathBuilder) Close() {
	b.ops = append(b.ops, PathOp{Kind: OpClose})
}

// Finish returns the built path and resets the builder.
func (b *PathBuilder) Finish() *Path {
	p := &Path{ops: b.ops}
	b.ops = nil
	return p
}
