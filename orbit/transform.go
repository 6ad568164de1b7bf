// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"math"

	"cogentcore.org/core/math32"
	"gonum.org/v1/gonum/mat"
)

// R3R1R3 returns the 3-1-3 Euler rotation taking inertial coordinates
// into the perifocal frame, for the rotation angles (Ω, i, ω).
func R3R1R3(θ1, θ2, θ3 float64) *mat.Dense {
	sθ1, cθ1 := math.Sincos(θ1)
	sθ2, cθ2 := math.Sincos(θ2)
	sθ3, cθ3 := math.Sincos(θ3)
	return mat.NewDense(3, 3, []float64{
		cθ3*cθ1 - sθ3*cθ2*sθ1, cθ3*sθ1 + sθ3*cθ2*cθ1, sθ3 * sθ2,
		-sθ3*cθ1 - cθ3*cθ2*sθ1, -sθ3*sθ1 + cθ3*cθ2*cθ1, cθ3 * sθ2,
		sθ2 * sθ1, -sθ2 * cθ1, cθ2})
}

// Rotation returns the rotation from the perifocal (PQW) frame into
// the world frame. Its columns are the P, Q and W unit vectors.
func (el *Elements) Rotation() *mat.Dense {
	var rot mat.Dense
	rot.CloneFrom(R3R1R3(el.LongAscNode, el.Inclination, el.ArgPeriapsis).T())
	return &rot
}

// PQW returns the world-frame P (toward periapsis), Q and W unit vectors.
func (el *Elements) PQW() (p, q, w math32.Vector3) {
	rot := el.Rotation()
	col := func(j int) math32.Vector3 {
		return math32.Vec3(float32(rot.At(0, j)), float32(rot.At(1, j)), float32(rot.At(2, j)))
	}
	return col(0), col(1), col(2)
}

// Transform returns the matrix taking the periapsis-normalized orbit plane
// into world space: P and Q scaled by the periapsis distance, the plane
// normal dropped, and the origin moved to parentPos (the focus).
// Hyperbolas are turned half way around the focus to match the positive
// axes returned by [Elements.Shape].
func (el *Elements) Transform(parentPos math32.Vector3) math32.Matrix4 {
	rot := el.Rotation()
	s := el.Periapsis
	if !el.IsElliptic() {
		s = -s
	}
	var m math32.Matrix4
	// column-major: columns are P, Q, 0, translation
	for r := range 3 {
		m[r] = float32(rot.At(r, 0) * s)
		m[4+r] = float32(rot.At(r, 1) * s)
	}
	m[12] = parentPos.X
	m[13] = parentPos.Y
	m[14] = parentPos.Z
	m[15] = 1
	return m
}

// PositionAt returns the world position at eccentric anomaly psi,
// relative to the focus.
func (el *Elements) PositionAt(psi float64) []float64 {
	e := el.Eccentricity
	sh := el.Shape()
	var local []float64
	if el.IsElliptic() {
		local = []float64{sh.ANorm * (math.Cos(psi) - e), sh.BNorm * math.Sin(psi), 0}
	} else {
		local = []float64{-sh.ANorm * (math.Cosh(psi) - e), sh.BNorm * math.Sinh(psi), 0}
	}
	var r mat.VecDense
	r.MulVec(el.Rotation(), mat.NewVecDense(3, local))
	r.ScaleVec(el.Periapsis, &r)
	return []float64{r.AtVec(0), r.AtVec(1), r.AtVec(2)}
}

// RadialSize is the apparent angular size of an object of the given
// radius seen from the given distance.
func RadialSize(radius, distance float64) float64 {
	return 2 * radius / distance
}

// MinRadialSize is the radial size below which an elliptic orbit is too
// small on screen to be worth drawing.
const MinRadialSize = 0.002
