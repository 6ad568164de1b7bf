// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trajectory draws a Keplerian orbit as a thick line of constant
// pixel width that fades with phase distance from the orbiting body.
//
// The vertex and fragment stages are plain Go functions written so that
// gosl can translate the code between the //gosl:start and //gosl:end
// markers into WGSL. The geometry is procedural: every vertex is computed
// from its index and the [Params] uniforms alone, with no vertex buffer.
// The same functions run on the CPU, see package raster.
package trajectory

//go:generate core generate
//go:generate gosl -out shaders .

import (
	"math"

	"cogentcore.org/core/math32"
	"github.com/keplerview/orbitline/camera"
	"github.com/keplerview/orbitline/orbit"
)

const (
	// DefaultPointCount is the default number of orbit points.
	DefaultPointCount = 512

	// MinPointCount is the smallest number of orbit points drawn.
	MinPointCount = 3

	// DefaultThickness is the default line thickness in pixels.
	DefaultThickness = 3
)

// Trajectory is the host-side state for drawing one orbit.
// It turns orbital elements and the live anomaly into the
// per draw call uniforms of the two shader stages.
type Trajectory struct {

	// Color is the base line color, with components in 0..1.
	Color math32.Vector4

	// Thickness is the line thickness in pixels.
	Thickness float32

	// CurrEccAnom is the current eccentric anomaly of the body.
	CurrEccAnom float32

	// Fade selects the fade formula.
	Fade FadeModes

	eccentricity float32
	aNorm        float32
	bNorm        float32
	transform    math32.Matrix4
	pointCount   int
}

// New returns a new [Trajectory] for the orbit, focused at parentPos,
// with the body at the given eccentric anomaly.
func New(el *orbit.Elements, parentPos math32.Vector3, eccAnom float32, pointCount int, thickness float32) *Trajectory {
	tr := &Trajectory{
		Color:       math32.Vec4(1, 1, 1, 1),
		Thickness:   thickness,
		CurrEccAnom: eccAnom,
	}
	tr.UpdateFromOrbit(el, parentPos)
	tr.SetPointCount(pointCount)
	return tr
}

// Eccentricity returns the eccentricity of the orbit.
func (tr *Trajectory) Eccentricity() float32 { return tr.eccentricity }

// PointCount returns the number of orbit points.
func (tr *Trajectory) PointCount() int { return tr.pointCount }

// IsElliptic returns whether the orbit is elliptic.
func (tr *Trajectory) IsElliptic() bool { return tr.eccentricity < 1 }

// SetPointCount sets the number of orbit points, at least [MinPointCount].
func (tr *Trajectory) SetPointCount(n int) {
	tr.pointCount = max(n, MinPointCount)
}

// SetEccentricAnomaly sets the current anomaly of the body, wrapped
// into [0, 2π) for ellipses.
func (tr *Trajectory) SetEccentricAnomaly(psi float64) {
	tr.CurrEccAnom = float32(orbit.WrapEccentricAnomaly(float64(tr.eccentricity), psi))
}

// UpdateFromOrbit updates the shape and transform from the elements.
func (tr *Trajectory) UpdateFromOrbit(el *orbit.Elements, parentPos math32.Vector3) {
	sh := el.Shape()
	tr.eccentricity = float32(el.Eccentricity)
	tr.aNorm = float32(sh.ANorm)
	tr.bNorm = float32(sh.BNorm)
	tr.transform = el.Transform(parentPos)
}

// AnomalyRange returns the anomaly range drawn for the current anomaly.
func (tr *Trajectory) AnomalyRange() float32 {
	return float32(orbit.AnomalyRange(float64(tr.eccentricity), float64(tr.CurrEccAnom)))
}

// Params returns the vertex stage uniforms for drawing with the view.
func (tr *Trajectory) Params(view *camera.View) Params {
	rng := tr.AnomalyRange()
	return Params{
		ProjView:     view.ProjView(),
		Transform:    tr.transform,
		Viewport:     view.Viewport(),
		Eccentricity: tr.eccentricity,
		ANorm:        tr.aNorm,
		BNorm:        tr.bNorm,
		StartEccAnom: tr.CurrEccAnom - 0.5*rng,
		EccAnomRange: rng,
		ThicknessPx:  tr.Thickness,
		VertexCount:  uint32(tr.pointCount),
	}
}

// FragmentUniforms returns the fragment stage uniforms.
func (tr *Trajectory) FragmentUniforms() FragmentUniforms {
	return FragmentUniforms{
		SurfaceColor: tr.Color,
		CurrEccAnom:  tr.CurrEccAnom,
		AnomalyRange: tr.AnomalyRange(),
		Eccentricity: tr.eccentricity,
		FadeMode:     tr.Fade,
	}
}

// Visible returns whether there is anything to draw.
func (tr *Trajectory) Visible() bool {
	rng := tr.AnomalyRange()
	return rng > 0 && !math.IsNaN(float64(rng))
}
