// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trajectory

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

//gosl:start trajectory

// Params are the per draw call uniforms for the vertex stage.
// They hold both the orbit shape and the view, and are read-only
// for every vertex invocation of a draw call.
type Params struct {

	// ProjView is the combined projection * view matrix.
	ProjView math32.Matrix4

	// Transform maps the periapsis-normalized perifocal (PQW) plane
	// into world space.
	Transform math32.Matrix4

	// Viewport is the viewport size in pixels (width, height).
	Viewport math32.Vector2

	// Eccentricity of the orbit: < 1 is elliptic, >= 1 is hyperbolic.
	Eccentricity float32

	// ANorm is the semi-major axis normalized to a periapsis of 1.
	ANorm float32

	// BNorm is the semi-minor axis normalized to a periapsis of 1.
	BNorm float32

	// StartEccAnom is the hyperbolic anomaly the strip starts from.
	// Only used when Eccentricity >= 1.
	StartEccAnom float32

	// EccAnomRange is the total anomaly range to tessellate.
	EccAnomRange float32

	// ThicknessPx is the line thickness in pixels.
	ThicknessPx float32

	// VertexCount is the number of orbit points N. The strip has 2N vertices.
	VertexCount uint32

	pad, pad1, pad2 float32
}

// FragmentUniforms are the per draw call uniforms for the fragment stage.
type FragmentUniforms struct {

	// SurfaceColor is the flat base color of the line (linear RGBA).
	SurfaceColor math32.Vector4

	// CurrEccAnom is the live eccentric anomaly of the orbiting body.
	CurrEccAnom float32

	// AnomalyRange is the tessellated anomaly range, matching
	// [Params.EccAnomRange].
	AnomalyRange float32

	// Eccentricity of the orbit.
	Eccentricity float32

	// FadeMode selects the fade formula.
	FadeMode FadeModes
}

//gosl:end trajectory

// IsElliptic returns whether the orbit is elliptic (e < 1).
func (pr *Params) IsElliptic() bool {
	return pr.Eccentricity < 1
}

// NumVertices returns the number of vertex invocations per draw call.
func (pr *Params) NumVertices() int {
	return 2 * int(pr.VertexCount)
}

// Validate checks the invariants hosts must uphold before drawing.
// Shader code never checks these.
func (pr *Params) Validate() error {
	var errs []error
	if pr.VertexCount < 2 {
		errs = append(errs, fmt.Errorf("trajectory: vertex count %d < 2", pr.VertexCount))
	}
	if pr.Eccentricity < 0 {
		errs = append(errs, fmt.Errorf("trajectory: negative eccentricity %g", pr.Eccentricity))
	}
	if pr.ANorm <= 0 || pr.BNorm <= 0 {
		errs = append(errs, fmt.Errorf("trajectory: normalized axes must be positive, got a=%g b=%g", pr.ANorm, pr.BNorm))
	}
	if pr.ThicknessPx < 0 {
		errs = append(errs, fmt.Errorf("trajectory: negative thickness %g", pr.ThicknessPx))
	}
	if pr.EccAnomRange < 0 {
		errs = append(errs, fmt.Errorf("trajectory: negative anomaly range %g", pr.EccAnomRange))
	}
	return errors.Join(errs...)
}

// Uniforms returns the fragment uniforms matching these params
// for the given live anomaly and base color.
func (pr *Params) Uniforms(currEccAnom float32, color math32.Vector4) FragmentUniforms {
	return FragmentUniforms{
		SurfaceColor: color,
		CurrEccAnom:  currEccAnom,
		AnomalyRange: pr.EccAnomRange,
		Eccentricity: pr.Eccentricity,
	}
}
