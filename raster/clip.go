// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

// clipStack manages nested device-space clip rectangles with push/pop.
// Each push stores the previous bounds so Pop restores it exactly.
type clipStack struct {
	saved  []image.Rectangle
	bounds image.Rectangle
}

func newClipStack(bounds image.Rectangle) clipStack {
	return clipStack{
		saved:  make([]image.Rectangle, 0, 8),
		bounds: bounds,
	}
}

// push narrows the clip to the intersection with r.
func (cs *clipStack) push(r image.Rectangle) {
	cs.saved = append(cs.saved, cs.bounds)
	cs.bounds = cs.bounds.Intersect(r)
}

// pop restores the bounds in effect before the matching push.
// Popping an empty stack is a no-op.
func (cs *clipStack) pop() {
	n := len(cs.saved)
	if n == 0 {
		return
	}
	cs.bounds = cs.saved[n-1]
	cs.saved = cs.saved[:n-1]
}

func (cs *clipStack) depth() int {
	return len(cs.saved)
}
