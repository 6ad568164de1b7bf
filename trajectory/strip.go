// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trajectory

import "cogentcore.org/core/math32"

// Quad is the ribbon piece between two adjacent orbit points.
// It only exists while a draw call assembles primitives.
type Quad struct {

	// Corners in clip space: current point (-side, +side),
	// then next point (-side, +side).
	Corners [4]math32.Vector4

	// EccAnom holds the anomaly carried by the current and next corners.
	EccAnom [2]float32
}

// SegmentCount returns the number of ribbon segments drawn for n points.
// An ellipse is a closed loop of n segments, the last one ending at the full
// anomaly range. A hyperbola is an open arc of n-1 segments.
func SegmentCount(n uint32, eccentricity float32) uint32 {
	if eccentricity < 1 {
		return n
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

// Strip runs the vertex stage for each of the 2N strip indices.
func Strip(pr *Params) []VertexOut {
	nv := uint32(pr.NumVertices())
	out := make([]VertexOut, nv)
	for i := range nv {
		out[i] = Vertex(i, pr)
	}
	return out
}

// QuadAt assembles segment p from the vertex stage outputs at
// indices 2p .. 2p+3. The vertices are recomputed from their indices.
func QuadAt(p uint32, pr *Params) Quad {
	var q Quad
	b := 2 * p
	for i := range uint32(4) {
		v := Vertex(b+i, pr)
		q.Corners[i] = v.Position
		q.EccAnom[i/2] = v.EccAnom
	}
	return q
}

// Quads returns all segment quads of a draw call.
func Quads(pr *Params) []Quad {
	ns := SegmentCount(pr.VertexCount, pr.Eccentricity)
	qs := make([]Quad, ns)
	for p := range ns {
		qs[p] = QuadAt(p, pr)
	}
	return qs
}

// TriangleIndices returns the triangle list indices for hosts that draw the
// strip as indexed triangles, two per segment.
func TriangleIndices(n uint32, eccentricity float32) []uint32 {
	ns := SegmentCount(n, eccentricity)
	idx := make([]uint32, 0, ns*6)
	for i := range ns {
		b := i * 2
		idx = append(idx, b, b+1, b+2, b+2, b+1, b+3)
	}
	return idx
}

// Centerline returns the unexpanded clip-space point of each strip vertex
// pair, the midpoint of its two offset vertices.
func Centerline(strip []VertexOut) []math32.Vector4 {
	pts := make([]math32.Vector4, len(strip)/2)
	for i := range pts {
		pts[i] = strip[2*i].Position.Add(strip[2*i+1].Position).MulScalar(0.5)
	}
	return pts
}
