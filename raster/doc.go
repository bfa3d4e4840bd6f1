// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster is a small software canvas: a premultiplied ARGB pixel
// surface with path filling, image blitting, a clip-rectangle stack and an
// affine transform.
//
// Path coverage is computed by golang.org/x/image/vector; this package only
// maps paths into device space, applies the clip and composites the result.
//
//	dt := raster.NewDrawTarget(200, 100)
//	pb := raster.NewPathBuilder()
//	pb.MoveTo(10, 10)
//	pb.LineTo(190, 10)
//	pb.LineTo(190, 90)
//	pb.Close()
//	dt.Fill(pb.Finish(), raster.FromUnpremultipliedARGB(255, 255, 0, 0), raster.DefaultDrawOptions())
//
// A DrawTarget is not safe for concurrent use.
package raster
