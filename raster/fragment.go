// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"context"
	"image"
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/keplerview/orbitline/trajectory"
)

// windowVertex is a vertex stage output in window (pixel) coordinates,
// y down, with the values needed for perspective-correct interpolation.
type windowVertex struct {
	pos math32.Vector2

	// invW is 1/w of the clip position.
	invW float32

	// anomW is the eccentric anomaly divided by w.
	anomW float32
}

func toWindow(v trajectory.VertexOut, viewport math32.Vector2) windowVertex {
	iw := 1 / v.Position.W
	x := v.Position.X * iw
	y := v.Position.Y * iw
	return windowVertex{
		pos:   math32.Vec2((x+1)*0.5*viewport.X, (1-y)*0.5*viewport.Y),
		invW:  iw,
		anomW: v.EccAnom * iw,
	}
}

// barycentric returns the barycentric coordinates of p in triangle t.
// ok is false for a degenerate triangle.
func barycentric(t *[3]windowVertex, p math32.Vector2) (b [3]float32, ok bool) {
	a, b1, c := t[0].pos, t[1].pos, t[2].pos
	den := (b1.Y-c.Y)*(a.X-c.X) + (c.X-b1.X)*(a.Y-c.Y)
	if math32.Abs(den) < 1e-12 {
		return b, false
	}
	b[0] = ((b1.Y-c.Y)*(p.X-c.X) + (c.X-b1.X)*(p.Y-c.Y)) / den
	b[1] = ((c.Y-a.Y)*(p.X-c.X) + (a.X-c.X)*(p.Y-c.Y)) / den
	b[2] = 1 - b[0] - b[1]
	return b, true
}

// interpolate returns the perspective-correct anomaly at barycentric b.
func interpolate(t *[3]windowVertex, b [3]float32) float32 {
	num := b[0]*t[0].anomW + b[1]*t[1].anomW + b[2]*t[2].anomW
	den := b[0]*t[0].invW + b[1]*t[1].invW + b[2]*t[2].invW
	if den == 0 {
		return t[0].anomW / t[0].invW
	}
	return num / den
}

func minOf(b [3]float32) float32 {
	return min(b[0], b[1], b[2])
}

// windowQuad is one ribbon quad in window coordinates.
type windowQuad struct {

	// win are the corners in strip order.
	win [4]windowVertex

	// tris are the two triangles of the quad, (0,1,2) and (2,1,3).
	tris [2][3]windowVertex

	// bounds is the pixel bounding box, padded by one pixel.
	bounds image.Rectangle
}

// contains returns how deep p is inside the quad: the larger of the
// smallest barycentric coordinate over its two triangles, which is
// negative outside. It also returns the triangle and coordinates.
func (q *windowQuad) contains(p math32.Vector2) (score float32, tri int, b [3]float32) {
	tri = -1
	score = -1e30
	for i := range q.tris {
		bb, ok := barycentric(&q.tris[i], p)
		if !ok {
			continue
		}
		if m := minOf(bb); m > score {
			score, tri, b = m, i, bb
		}
	}
	return
}

// anomaly returns the interpolated anomaly at pixel center p. Pixels
// covered by the anti-aliased edge but outside both triangles use the
// closest point of the triangle they are nearest to.
func (q *windowQuad) anomaly(p math32.Vector2) float32 {
	_, tri, b := q.contains(p)
	if tri < 0 {
		t := &q.tris[0]
		return t[0].anomW / t[0].invW
	}
	for i := range b {
		b[i] = math32.Clamp(b[i], 0, 1)
	}
	s := b[0] + b[1] + b[2]
	for i := range b {
		b[i] /= s
	}
	return interpolate(&q.tris[tri], b)
}

// fragmentImage is the source image for a ribbon: each pixel is the
// fragment stage output at the interpolated anomaly of its pixel center,
// taken from the quad that owns the pixel.
type fragmentImage struct {
	uniforms *trajectory.FragmentUniforms
	fader    trajectory.Fader
	cmap     trajectory.ColorMapper

	quads []windowQuad

	// bounds is the area covered by owner.
	bounds image.Rectangle

	// owner is the index of the quad owning each pixel of bounds, or -1.
	owner []int32
}

// resolve assigns every pixel of bounds to the quad that contains its
// center most deeply.
func (f *fragmentImage) resolve(ctx context.Context, quads []windowQuad, bounds image.Rectangle) error {
	f.quads = quads
	f.bounds = bounds
	n := bounds.Dx() * bounds.Dy()
	f.owner = make([]int32, n)
	score := make([]float32, n)
	for i := range f.owner {
		f.owner[i] = -1
		score[i] = -1e30
	}
	for qi := range quads {
		if err := ctx.Err(); err != nil {
			return err
		}
		q := &quads[qi]
		qb := q.bounds.Intersect(bounds)
		for y := qb.Min.Y; y < qb.Max.Y; y++ {
			row := (y - bounds.Min.Y) * bounds.Dx()
			for x := qb.Min.X; x < qb.Max.X; x++ {
				s, tri, _ := q.contains(math32.Vec2(float32(x)+0.5, float32(y)+0.5))
				if tri < 0 {
					continue
				}
				pi := row + x - bounds.Min.X
				if s > score[pi] {
					score[pi] = s
					f.owner[pi] = int32(qi)
				}
			}
		}
	}
	return nil
}

func (f *fragmentImage) ColorModel() color.Model { return color.NRGBA64Model }

func (f *fragmentImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (f *fragmentImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(f.bounds) {
		return color.NRGBA64{}
	}
	o := f.owner[(y-f.bounds.Min.Y)*f.bounds.Dx()+x-f.bounds.Min.X]
	if o < 0 {
		return color.NRGBA64{}
	}
	anom := f.quads[o].anomaly(math32.Vec2(float32(x)+0.5, float32(y)+0.5))
	c := trajectory.Fragment(anom, f.uniforms, f.fader, f.cmap)
	return color.NRGBA64{
		R: channel(c.X),
		G: channel(c.Y),
		B: channel(c.Z),
		A: channel(c.W),
	}
}

func channel(v float32) uint16 {
	return uint16(math32.Clamp(v, 0, 1)*0xffff + 0.5)
}
