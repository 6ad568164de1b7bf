// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster is a CPU reference renderer for trajectories.
// It runs the trajectory vertex stage for every index, rasterizes the
// ribbon quads with coverage anti-aliasing in a single pass, interpolates the anomaly
// perspective-correctly and runs the fragment stage for each pixel,
// blending over the destination image.
package raster

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"runtime"

	"cogentcore.org/core/math32"
	"github.com/keplerview/orbitline/trajectory"
	"golang.org/x/image/vector"
	"golang.org/x/sync/errgroup"
)

// Renderer draws trajectories into an RGBA image.
type Renderer struct {

	// Image is the color target.
	Image *image.RGBA

	// Fader computes the phase fade; nil uses [trajectory.UniformFade],
	// the formula selected by the FadeMode of the uniforms.
	Fader trajectory.Fader

	// ColorMap is applied to the line color; nil leaves it unchanged.
	ColorMap trajectory.ColorMapper

	// Workers is the number of goroutines running the vertex stage;
	// 0 uses GOMAXPROCS.
	Workers int

	rast vector.Rasterizer
}

// NewRenderer returns a new [Renderer] with a transparent image of the given size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{Image: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Size returns the image size.
func (r *Renderer) Size() image.Point {
	return r.Image.Bounds().Size()
}

// Viewport returns the image size as a viewport.
func (r *Renderer) Viewport() math32.Vector2 {
	sz := r.Size()
	return math32.Vec2(float32(sz.X), float32(sz.Y))
}

// Clear fills the image with the color.
func (r *Renderer) Clear(c color.Color) {
	draw.Draw(r.Image, r.Image.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Vertices runs the vertex stage for indices 0 .. n-1, split across workers.
// Invocations are independent, so the order they run in does not matter.
func (r *Renderer) Vertices(ctx context.Context, pr *trajectory.Params, n int) ([]trajectory.VertexOut, error) {
	out := make([]trajectory.VertexOut, n)
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := max(64, (n+workers-1)/workers)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for st := 0; st < n; st += chunk {
		ed := min(st+chunk, n)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := st; i < ed; i++ {
				out[i] = trajectory.Vertex(uint32(i), pr)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Draw draws one trajectory with its vertex and fragment uniforms.
// The viewport in pr should match the image size.
//
// All quads of the ribbon go into one coverage pass, so edges shared by
// adjacent quads cancel and overlaps clamp, with no seams. Each pixel then
// takes its anomaly from the quad that contains it best.
func (r *Renderer) Draw(ctx context.Context, pr *trajectory.Params, u *trajectory.FragmentUniforms) error {
	ns := int(trajectory.SegmentCount(pr.VertexCount, pr.Eccentricity))
	if ns == 0 || u.AnomalyRange <= 0 {
		return nil
	}
	verts, err := r.Vertices(ctx, pr, 2*(ns+1))
	if err != nil {
		return err
	}
	quads := r.windowQuads(verts, ns)
	if len(quads) == 0 {
		return nil
	}
	bounds := quads[0].bounds
	for i := 1; i < len(quads); i++ {
		bounds = bounds.Union(quads[i].bounds)
	}
	bounds = bounds.Intersect(r.Image.Bounds())
	if bounds.Empty() {
		return nil
	}

	off := math32.Vec2(float32(bounds.Min.X), float32(bounds.Min.Y))
	r.rast.Reset(bounds.Dx(), bounds.Dy())
	for i := range quads {
		// strip order 0,1,3,2 walks the quad outline
		w := &quads[i].win
		r.rast.MoveTo(w[0].pos.X-off.X, w[0].pos.Y-off.Y)
		r.rast.LineTo(w[1].pos.X-off.X, w[1].pos.Y-off.Y)
		r.rast.LineTo(w[3].pos.X-off.X, w[3].pos.Y-off.Y)
		r.rast.LineTo(w[2].pos.X-off.X, w[2].pos.Y-off.Y)
		r.rast.ClosePath()
	}

	frag := &fragmentImage{uniforms: u, fader: r.Fader, cmap: r.ColorMap}
	if err := frag.resolve(ctx, quads, bounds); err != nil {
		return err
	}
	r.rast.DrawOp = draw.Over
	r.rast.Draw(r.Image, bounds, frag, bounds.Min)
	return nil
}

// windowQuads returns the ribbon quads in window coordinates.
// Quads with a corner behind the camera are skipped, as there is no clipping.
func (r *Renderer) windowQuads(verts []trajectory.VertexOut, ns int) []windowQuad {
	sz := r.Viewport()
	quads := make([]windowQuad, 0, ns)
outer:
	for p := range ns {
		var q windowQuad
		for i, v := range verts[2*p : 2*p+4] {
			if v.Position.W <= trajectory.WEpsilon {
				continue outer
			}
			q.win[i] = toWindow(v, sz)
		}
		bmin, bmax := q.win[0].pos, q.win[0].pos
		for _, w := range q.win[1:] {
			bmin = math32.Vec2(min(bmin.X, w.pos.X), min(bmin.Y, w.pos.Y))
			bmax = math32.Vec2(max(bmax.X, w.pos.X), max(bmax.Y, w.pos.Y))
		}
		q.bounds = image.Rect(int(math32.Floor(bmin.X)), int(math32.Floor(bmin.Y)),
			int(math32.Ceil(bmax.X))+1, int(math32.Ceil(bmax.Y))+1)
		q.tris = [2][3]windowVertex{{q.win[0], q.win[1], q.win[2]}, {q.win[2], q.win[1], q.win[3]}}
		quads = append(quads, q)
	}
	return quads
}
