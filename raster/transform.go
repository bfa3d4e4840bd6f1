// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Transform is a 2D affine transform stored as a 2x3 matrix:
//
//	x' = M11*x + M21*y + M31
//	y' = M12*x + M22*y + M32
type Transform struct {
	M11, M12 float32
	M21, M22 float32
	M31, M32 float32
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{M11: 1, M22: 1}
}

// Translation returns a transform that moves points by (x, y).
func Translation(x, y float32) Transform {
	return Transform{M11: 1, M22: 1, M31: x, M32: y}
}

// Scaling returns a transform that scales by (sx, sy) around the origin.
func Scaling(sx, sy float32) Transform {
	return Transform{M11: sx, M22: sy}
}

// Then returns the transform that applies t first and o second.
func (t Transform) Then(o Transform) Transform {
	return Transform{
		M11: t.M11*o.M11 + t.M12*o.M21,
		M12: t.M11*o.M12 + t.M12*o.M22,
		M21: t.M21*o.M11 + t.M22*o.M21,
		M22: t.M21*o.M12 + t.M22*o.M22,
		M31: t.M31*o.M11 + t.M32*o.M21 + o.M31,
		M32: t.M31*o.M12 + t.M32*o.M22 + o.M32,
	}
}

// PreTranslate returns the transform that moves by (x, y) and then applies t.
func (t Transform) PreTranslate(x, y float32) Transform {
	return Translation(x, y).Then(t)
}

// TransformPoint maps (x, y) through t.
func (t Transform) TransformPoint(x, y float32) (float32, float32) {
	return t.M11*x + t.M21*y + t.M31, t.M12*x + t.M22*y + t.M32
}

// IsIdentity reports whether t is the identity transform.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// IsTranslation reports whether t only translates.
func (t Transform) IsTranslation() bool {
	return t.M11 == 1 && t.M12 == 0 && t.M21 == 0 && t.M22 == 1
}
