// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit adapts Keplerian orbital elements into the normalized
// shape and transform needed to draw a trajectory.
package orbit

import (
	"errors"
	"fmt"
	"math"
)

// Elements are classical Keplerian elements, with the periapsis distance
// in place of the semi-major axis so that hyperbolic orbits are described
// the same way as elliptic ones. Angles are in radians.
type Elements struct {

	// Eccentricity: 0 is circular, < 1 elliptic, > 1 hyperbolic.
	Eccentricity float64 `toml:"eccentricity" yaml:"eccentricity"`

	// Periapsis is the periapsis distance, in world units.
	Periapsis float64 `toml:"periapsis" yaml:"periapsis"`

	// Inclination of the orbital plane.
	Inclination float64 `toml:"inclination" yaml:"inclination"`

	// LongAscNode is the longitude of the ascending node.
	LongAscNode float64 `toml:"long_asc_node" yaml:"long_asc_node"`

	// ArgPeriapsis is the argument of periapsis.
	ArgPeriapsis float64 `toml:"arg_periapsis" yaml:"arg_periapsis"`

	// MeanAnomaly at time 0.
	MeanAnomaly float64 `toml:"mean_anomaly" yaml:"mean_anomaly"`

	// Mu is the gravitational parameter of the parent body.
	Mu float64 `toml:"mu" yaml:"mu"`
}

// Shape is the orbit shape normalized to a periapsis distance of 1.
type Shape struct {
	ANorm float64
	BNorm float64
}

// IsElliptic returns whether the orbit is elliptic (e < 1).
func (el *Elements) IsElliptic() bool {
	return el.Eccentricity < 1
}

// Validate returns an error for elements that cannot be drawn.
func (el *Elements) Validate() error {
	var errs []error
	if el.Eccentricity < 0 || math.IsNaN(el.Eccentricity) {
		errs = append(errs, fmt.Errorf("orbit: invalid eccentricity %g", el.Eccentricity))
	}
	if el.Eccentricity == 1 {
		errs = append(errs, errors.New("orbit: parabolic orbits (e = 1) are not supported"))
	}
	if el.Periapsis <= 0 {
		errs = append(errs, fmt.Errorf("orbit: periapsis must be positive, got %g", el.Periapsis))
	}
	return errors.Join(errs...)
}

// Shape returns the magnitudes of the periapsis-normalized semi-major and
// semi-minor axes. A hyperbola drawn with positive axes has its periapsis
// on the -P axis; [Elements.Transform] turns it back around.
func (el *Elements) Shape() Shape {
	e := el.Eccentricity
	a := math.Abs(1 / (1 - e))
	b := a * math.Sqrt(math.Abs(1-e*e))
	return Shape{ANorm: a, BNorm: b}
}

// SemiMajorAxis returns the semi-major axis in world units
// (negative for hyperbolic orbits).
func (el *Elements) SemiMajorAxis() float64 {
	return el.Periapsis / (1 - el.Eccentricity)
}

// Apoapsis returns the apoapsis distance, +Inf for open orbits.
func (el *Elements) Apoapsis() float64 {
	if !el.IsElliptic() {
		return math.Inf(1)
	}
	return el.SemiMajorAxis() * (1 + el.Eccentricity)
}
