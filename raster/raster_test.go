// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func rectPath(x0, y0, x1, y1 float32) *Path {
	pb := NewPathBuilder()
	pb.MoveTo(x0, y0)
	pb.LineTo(x1, y0)
	pb.LineTo(x1, y1)
	pb.LineTo(x0, y1)
	pb.Close()
	return pb.Finish()
}

func alphaOf(p uint32) uint32 { return p >> 24 }

func TestTransform(t *testing.T) {
	tr := Translation(10, 20)
	x, y := tr.TransformPoint(1, 2)
	if x != 11 || y != 22 {
		t.Errorf("TransformPoint = %v, %v, want 11, 22", x, y)
	}

	// Translate first, then scale.
	composed := Translation(1, 1).Then(Scaling(2, 3))
	x, y = composed.TransformPoint(1, 1)
	if x != 4 || y != 6 {
		t.Errorf("Then = %v, %v, want 4, 6", x, y)
	}

	pre := Translation(5, 5).PreTranslate(1, 2)
	if pre != Translation(6, 7) {
		t.Errorf("PreTranslate = %+v", pre)
	}
	if !Identity().IsIdentity() || Translation(1, 0).IsIdentity() {
		t.Error("IsIdentity mismatch")
	}
	if !Translation(3, 4).IsTranslation() || Scaling(2, 2).IsTranslation() {
		t.Error("IsTranslation mismatch")
	}
}

func TestPathBuilder(t *testing.T) {
	pb := NewPathBuilder()
	pb.MoveTo(0, 10)
	pb.QuadTo(0, 0, 10, 0)
	pb.LineTo(20, 0)
	pb.Close()
	p := pb.Finish()

	if got := len(p.Ops()); got != 4 {
		t.Fatalf("len(Ops) = %d, want 4", got)
	}
	verts := p.Vertices()
	want := []Point{{0, 10}, {10, 0}, {20, 0}}
	if len(verts) != len(want) {
		t.Fatalf("Vertices = %v, want %v", verts, want)
	}
	for i := range want {
		if verts[i] != want[i] {
			t.Errorf("Vertices[%d] = %v, want %v", i, verts[i], want[i])
		}
	}

	minX, minY, maxX, maxY, ok := p.Bounds()
	if !ok || minX != 0 || minY != 0 || maxX != 20 || maxY != 10 {
		t.Errorf("Bounds = %v %v %v %v %v", minX, minY, maxX, maxY, ok)
	}

	if _, _, _, _, ok := (&Path{}).Bounds(); ok {
		t.Error("empty path should have no bounds")
	}
	if pb.Finish().Ops() != nil {
		t.Error("Finish should reset the builder")
	}
}

func TestFromUnpremultipliedARGB(t *testing.T) {
	s := FromUnpremultipliedARGB(128, 255, 0, 255)
	if s.A != 128 || s.R != 128 || s.G != 0 || s.B != 128 {
		t.Errorf("FromUnpremultipliedARGB = %+v", s)
	}
	if got := s.Pixel(); got != 0x80800080 {
		t.Errorf("Pixel = %#08x, want 0x80800080", got)
	}
}

func TestFillRect(t *testing.T) {
	dt := NewDrawTarget(40, 30)
	dt.Fill(rectPath(10, 10, 30, 20), FromUnpremultipliedARGB(255, 255, 0, 0), nil)

	if got := dt.Pixel(20, 15); alphaOf(got) < 250 || (got>>16)&0xff < 250 {
		t.Errorf("inside pixel = %#08x, want opaque red", got)
	}
	for _, pt := range []image.Point{{0, 0}, {5, 15}, {35, 15}, {20, 5}, {20, 25}} {
		if got := dt.Pixel(pt.X, pt.Y); got != 0 {
			t.Errorf("outside pixel %v = %#08x, want 0", pt, got)
		}
	}
}

func TestFillRespectsClipAndRestores(t *testing.T) {
	dt := NewDrawTarget(20, 20)
	full := dt.ClipBounds()

	dt.PushClipRect(image.Rect(0, 0, 10, 10))
	dt.PushClipRect(image.Rect(5, 5, 20, 20))
	if got := dt.ClipBounds(); got != image.Rect(5, 5, 10, 10) {
		t.Errorf("nested clip = %v, want (5,5)-(10,10)", got)
	}
	if dt.ClipDepth() != 2 {
		t.Errorf("ClipDepth = %d, want 2", dt.ClipDepth())
	}
	dt.Fill(rectPath(0, 0, 20, 20), FromUnpremultipliedARGB(255, 0, 0, 255), nil)
	dt.PopClip()
	dt.PopClip()
	dt.PopClip() // extra pop is a no-op

	if dt.ClipBounds() != full || dt.ClipDepth() != 0 {
		t.Errorf("clip after pops = %v depth %d, want %v depth 0", dt.ClipBounds(), dt.ClipDepth(), full)
	}
	if got := dt.Pixel(7, 7); alphaOf(got) == 0 {
		t.Error("pixel inside clip should be painted")
	}
	for _, pt := range []image.Point{{2, 2}, {12, 12}, {7, 12}} {
		if got := dt.Pixel(pt.X, pt.Y); got != 0 {
			t.Errorf("pixel %v outside clip = %#08x, want 0", pt, got)
		}
	}
}

func TestFillUsesTransform(t *testing.T) {
	dt := NewDrawTarget(20, 20)
	dt.SetTransform(Translation(10, 10))
	dt.Fill(rectPath(0, 0, 5, 5), FromUnpremultipliedARGB(255, 255, 255, 255), nil)

	if alphaOf(dt.Pixel(2, 2)) != 0 {
		t.Error("untransformed location should stay empty")
	}
	if alphaOf(dt.Pixel(12, 12)) == 0 {
		t.Error("translated location should be painted")
	}
}

func TestFillAntialiasNone(t *testing.T) {
	dt := NewDrawTarget(32, 32)
	pb := NewPathBuilder()
	pb.MoveTo(1, 1)
	pb.LineTo(30, 4)
	pb.LineTo(7, 29)
	pb.Close()
	opts := DefaultDrawOptions()
	opts.Antialias = AntialiasNone
	dt.Fill(pb.Finish(), FromUnpremultipliedARGB(255, 255, 255, 255), opts)

	painted := 0
	for _, p := range dt.Data() {
		switch alphaOf(p) {
		case 0:
		case 255:
			painted++
		default:
			t.Fatalf("found partial alpha %d with AntialiasNone", alphaOf(p))
		}
	}
	if painted == 0 {
		t.Error("triangle should paint some pixels")
	}
}

func TestFillGlobalAlpha(t *testing.T) {
	dt := NewDrawTarget(10, 10)
	opts := DefaultDrawOptions()
	opts.Alpha = 0
	dt.Fill(rectPath(0, 0, 10, 10), FromUnpremultipliedARGB(255, 255, 255, 255), opts)
	for _, p := range dt.Data() {
		if p != 0 {
			t.Fatal("Alpha = 0 should draw nothing")
		}
	}
}

func TestDrawImageAt(t *testing.T) {
	dt := NewDrawTarget(8, 8)
	img := &Image{Width: 2, Height: 2, Data: []uint32{
		0xffff0000, 0x80800000,
		0x00000000, 0xff0000ff,
	}}

	dt.SetTransform(Translation(3, 4))
	dt.DrawImageAt(1, 1, img, nil)

	tests := []struct {
		x, y int
		want uint32
	}{
		{4, 5, 0xffff0000},
		{5, 5, 0x80800000},
		{4, 6, 0x00000000},
		{5, 6, 0xff0000ff},
		{3, 4, 0x00000000},
	}
	for _, tt := range tests {
		if got := dt.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Pixel(%d,%d) = %#08x, want %#08x", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawImageAtClipsToSurface(t *testing.T) {
	dt := NewDrawTarget(4, 4)
	img := &Image{Width: 3, Height: 3, Data: make([]uint32, 9)}
	for i := range img.Data {
		img.Data[i] = 0xffffffff
	}
	dt.DrawImageAt(-1, 2, img, nil)

	if dt.Pixel(0, 2) != 0xffffffff || dt.Pixel(1, 3) != 0xffffffff {
		t.Error("visible part of image should be drawn")
	}
	if dt.Pixel(2, 2) != 0 || dt.Pixel(0, 1) != 0 {
		t.Error("pixels outside image should stay empty")
	}
}

func TestDrawImageAtSrcMode(t *testing.T) {
	dt := NewDrawTarget(1, 1)
	dt.Clear(FromUnpremultipliedARGB(255, 255, 255, 255))
	opts := DefaultDrawOptions()
	opts.BlendMode = BlendSrc
	dt.DrawImageAt(0, 0, &Image{Width: 1, Height: 1, Data: []uint32{0}}, opts)
	if got := dt.Pixel(0, 0); got != 0 {
		t.Errorf("BlendSrc with transparent source = %#08x, want 0", got)
	}
}

func TestToImageAndSavePNG(t *testing.T) {
	dt := NewDrawTarget(2, 1)
	dt.Data()[1] = 0x80402010
	img := dt.ToImage()
	if got := img.Pix[4:8]; got[0] != 0x40 || got[1] != 0x20 || got[2] != 0x10 || got[3] != 0x80 {
		t.Errorf("ToImage pixel = %v", got)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := dt.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := dt.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}

func TestToImageClampsChannelsToAlpha(t *testing.T) {
	dt := NewDrawTarget(1, 1)
	// Half-transparent white composed without premultiplying by its alpha.
	dt.Data()[0] = 0x7fffffff
	img := dt.ToImage()
	if got := img.Pix[0:4]; got[0] != 0x7f || got[1] != 0x7f || got[2] != 0x7f || got[3] != 0x7f {
		t.Errorf("ToImage pixel = %v, want [127 127 127 127]", got)
	}
	if got := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 0x7f}) {
		t.Errorf("non-premultiplied pixel = %v, want white at alpha 127", got)
	}
}

func BenchmarkFillRect(b *testing.B) {
	dt := NewDrawTarget(256, 256)
	p := rectPath(8, 8, 248, 248)
	src := FromUnpremultipliedARGB(200, 10, 20, 30)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dt.Fill(p, src, nil)
	}
}
