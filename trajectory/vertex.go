// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trajectory

import "cogentcore.org/core/math32"

//gosl:start trajectory

const (
	// WEpsilon is the smallest homogeneous w used as a perspective divisor.
	WEpsilon float32 = 1e-6

	// MinSegmentLength is the screen-space length below which a segment
	// is considered degenerate and FallbackDirection is used instead.
	MinSegmentLength float32 = 1e-4
)

// FallbackDirection is the screen direction used for degenerate segments.
var FallbackDirection = math32.Vec2(0, 1)

// VertexOut is the output of one vertex invocation.
type VertexOut struct {

	// Position in clip space.
	Position math32.Vector4

	// EccAnom is the eccentric anomaly of the orbit point this vertex
	// belongs to. It is the only value interpolated for the fragment stage.
	EccAnom float32

	pad, pad1, pad2 float32
}

// OrbitPoint returns the position in the periapsis-normalized orbit plane
// at eccentric anomaly psi.
func OrbitPoint(e, a, b, psi float32) math32.Vector3 {
	if e < 1 {
		return math32.Vec3(a*(math32.Cos(psi)-e), b*math32.Sin(psi), 0)
	}
	return math32.Vec3(a*(math32.Cosh(psi)-e), b*math32.Sinh(psi), 0)
}

// EccAnomAt returns the eccentric anomaly of orbit point p.
// Ellipses run forward from periapsis; hyperbolas run in the opposite
// sign convention, anchored at StartEccAnom.
func EccAnomAt(p uint32, pr *Params) float32 {
	t := float32(p) / float32(pr.VertexCount) * pr.EccAnomRange
	if pr.Eccentricity < 1 {
		return t
	}
	return -t - pr.StartEccAnom
}

// ClipPosition transforms a local orbit-plane point into clip space.
func ClipPosition(local math32.Vector3, pr *Params) math32.Vector4 {
	world := math32.Vector4FromVector3(local, 1).MulMatrix4(&pr.Transform)
	return world.MulMatrix4(&pr.ProjView)
}

// Aspect returns the viewport aspect ratio, 1 for an empty viewport.
func Aspect(viewport math32.Vector2) float32 {
	if viewport.Y <= 0 {
		return 1
	}
	return viewport.X / viewport.Y
}

// PixelScale converts a pixel length into a half-extent in normalized
// device coordinates along the vertical axis. A zero height collapses to 0.
func PixelScale(viewport math32.Vector2) float32 {
	if viewport.Y <= 0 {
		return 0
	}
	return 1 / viewport.Y
}

// PerspDivAspect divides the clip position by its guarded w and
// stretches x by the aspect ratio, so that distances are isotropic.
func PerspDivAspect(clip math32.Vector4, aspect float32) math32.Vector2 {
	w := clip.W
	if math32.Abs(w) < WEpsilon {
		w = WEpsilon
	}
	return math32.Vec2(clip.X/w*aspect, clip.Y/w)
}

// ScreenNormal returns the unit normal of the screen segment from curr
// to next, both in aspect-corrected NDC.
func ScreenNormal(curr, next math32.Vector2) math32.Vector2 {
	dir := next.Sub(curr)
	ln := dir.Length()
	if ln < MinSegmentLength {
		dir = FallbackDirection
	} else {
		dir = dir.DivScalar(ln)
	}
	return math32.Vec2(-dir.Y, dir.X)
}

// Vertex runs the vertex stage for vertex index idx of the 2N strip.
func Vertex(idx uint32, pr *Params) VertexOut {
	p := idx / 2
	side := float32(-1)
	if idx%2 == 1 {
		side = 1
	}

	psi := EccAnomAt(p, pr)
	psiNext := EccAnomAt(p+1, pr)

	curr := ClipPosition(OrbitPoint(pr.Eccentricity, pr.ANorm, pr.BNorm, psi), pr)
	next := ClipPosition(OrbitPoint(pr.Eccentricity, pr.ANorm, pr.BNorm, psiNext), pr)

	aspect := Aspect(pr.Viewport)
	normal := ScreenNormal(PerspDivAspect(curr, aspect), PerspDivAspect(next, aspect))

	halfPx := pr.ThicknessPx * PixelScale(pr.Viewport)
	off := math32.Vec2(normal.X*halfPx/aspect, normal.Y*halfPx).MulScalar(side * curr.W)

	var out VertexOut
	out.Position = math32.Vec4(curr.X+off.X, curr.Y+off.Y, curr.Z, curr.W)
	out.EccAnom = psi
	return out
}

//gosl:end trajectory
