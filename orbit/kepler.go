// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import "math"

const (
	twoPi = 2 * math.Pi

	// keplerTol is the Newton step size at which the solvers stop.
	keplerTol = 1e-12

	keplerMaxIter = 100
)

// MeanMotion returns the mean motion in radians per unit time.
// It is 0 when Mu is not set.
func (el *Elements) MeanMotion() float64 {
	if el.Mu <= 0 {
		return 0
	}
	a := math.Abs(el.SemiMajorAxis())
	return math.Sqrt(el.Mu / (a * a * a))
}

// MeanAnomalyAt returns the mean anomaly at time t, measured from time 0.
func (el *Elements) MeanAnomalyAt(t float64) float64 {
	return el.MeanAnomaly + el.MeanMotion()*t
}

// EccentricAnomalyAt returns the eccentric (or hyperbolic) anomaly at time t.
func (el *Elements) EccentricAnomalyAt(t float64) float64 {
	return EccentricAnomaly(el.Eccentricity, el.MeanAnomalyAt(t))
}

// EccentricAnomaly solves Kepler's equation for the given eccentricity
// and mean anomaly. For e < 1 it solves E - e sin E = M and returns E in
// [0, 2π); for e > 1 it solves e sinh H - H = M and returns H.
func EccentricAnomaly(e, m float64) float64 {
	if e < 1 {
		return ellipticAnomaly(e, m)
	}
	return hyperbolicAnomaly(e, m)
}

func ellipticAnomaly(e, m float64) float64 {
	m = WrapAngle(m)
	if e == 0 {
		return m
	}
	E := m
	if e >= 0.8 {
		E = math.Pi
	}
	for range keplerMaxIter {
		s, c := math.Sincos(E)
		delta := (E - e*s - m) / (1 - e*c)
		E -= delta
		if math.Abs(delta) < keplerTol {
			break
		}
	}
	return WrapAngle(E)
}

func hyperbolicAnomaly(e, m float64) float64 {
	H := math.Asinh(m / e)
	for range keplerMaxIter {
		delta := (e*math.Sinh(H) - H - m) / (e*math.Cosh(H) - 1)
		H -= delta
		if math.Abs(delta) < keplerTol {
			break
		}
	}
	return H
}

// WrapAngle returns the angle in [0, 2π).
func WrapAngle(a float64) float64 {
	r := math.Mod(a, twoPi)
	if r < 0 {
		r += twoPi
	}
	if r >= twoPi {
		r = 0
	}
	return r
}

// WrapEccentricAnomaly wraps an elliptic anomaly into [0, 2π) and
// leaves a hyperbolic one unchanged, since it does not repeat.
func WrapEccentricAnomaly(e, psi float64) float64 {
	if e < 1 {
		return WrapAngle(psi)
	}
	return psi
}

// HyperbolicRangeCutoff is the hyperbolic anomaly past which no
// trajectory is drawn at all.
const HyperbolicRangeCutoff = 10

// AnomalyRange returns the anomaly range to tessellate for an orbit whose
// body is at anomaly psi. Ellipses always use the full 2π. Hyperbolas use
// a bell curve around the body so the drawn arm does not grow too long
// too quickly, and nothing once the body is past [HyperbolicRangeCutoff].
func AnomalyRange(e, psi float64) float64 {
	if e < 1 {
		return twoPi
	}
	if psi > HyperbolicRangeCutoff {
		return 0
	}
	return 30 * math.Pow(2, -0.15*psi*psi)
}
