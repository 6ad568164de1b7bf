// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trajectory

import "cogentcore.org/core/math32"

//gosl:start trajectory

// FadeModes selects the fade formula of the fragment stage.
type FadeModes int32 //enums:enum -trim-prefix Fade -transform lower

const (
	// FadeCurrent is the fade formula in use: unsigned modulo wraparound
	// for ellipses, with the extreme-anomaly dropoff in both regimes.
	FadeCurrent FadeModes = iota

	// FadeLegacy is the older fade formula: signed half-range recentring
	// for ellipses and no extreme-anomaly dropoff.
	FadeLegacy
)

const (
	// MinAlpha is the lowest fade factor of a visible line.
	MinAlpha float32 = 0.18

	// DiffMultiplier spans the fade from MinAlpha up to 1.
	DiffMultiplier float32 = 1 - MinAlpha

	// DropoffStart is the anomaly magnitude where the line starts
	// fading out, as the float32 transcendentals lose precision.
	DropoffStart float32 = 9

	// DropoffEnd is the anomaly magnitude where the line is fully gone.
	DropoffEnd float32 = 10
)

// Dropoff is the extra multiplier applied at extreme anomaly magnitudes:
// 1 below DropoffStart, falling linearly to 0 at DropoffEnd.
func Dropoff(psi float32) float32 {
	a := math32.Abs(psi)
	if a < DropoffStart {
		return 1
	}
	return math32.Max(0, DropoffEnd-a)
}

// PositiveMod returns x mod m in [0, m) for m > 0.
func PositiveMod(x, m float32) float32 {
	r := math32.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// FadeEllipticCurrent returns the fade of an elliptic orbit fragment
// using the unsigned modulo distance to the body.
// Just past the body the line is at MinAlpha, brightening to 1
// as it wraps around to just behind the body.
func FadeEllipticCurrent(fragAnom, currAnom, anomRange float32) float32 {
	d := PositiveMod(fragAnom-currAnom, anomRange)
	return math32.Max(MinAlpha, DiffMultiplier*d/anomRange+MinAlpha)
}

// FadeEllipticLegacy returns the fade of an elliptic orbit fragment
// using the signed distance recentred on the body. Everything ahead
// of the body is at MinAlpha, and behind it fades from 1 down to
// MinAlpha half an orbit back.
func FadeEllipticLegacy(fragAnom, currAnom, anomRange float32) float32 {
	halfRange := 0.5 * anomRange
	s := PositiveMod(fragAnom-currAnom+halfRange, anomRange) - halfRange
	if s >= 0 {
		return MinAlpha
	}
	return math32.Max(MinAlpha, 1-DiffMultiplier*(-s)/halfRange)
}

// FadeHyperbolic returns the fade of a hyperbolic trajectory fragment.
// The strip uses the negated anomaly convention, so fragAnom is negated
// first. The arm ahead of the body is at MinAlpha, and behind it fades
// from 1 at the body down to MinAlpha half the range back.
func FadeHyperbolic(fragAnom, currAnom, anomRange float32) float32 {
	psi := -fragAnom
	if psi > currAnom {
		return MinAlpha
	}
	behind := (currAnom - psi) / (0.5 * anomRange)
	return math32.Max(MinAlpha, 1-DiffMultiplier*behind)
}

// ModeFade returns the fade factor of a fragment with the interpolated
// anomaly fragAnom, using the formula selected by u.FadeMode.
func ModeFade(fragAnom float32, u *FragmentUniforms) float32 {
	if u.FadeMode == FadeLegacy {
		if u.Eccentricity < 1 {
			return FadeEllipticLegacy(fragAnom, u.CurrEccAnom, u.AnomalyRange)
		}
		return FadeHyperbolic(fragAnom, u.CurrEccAnom, u.AnomalyRange)
	}
	f := float32(0)
	if u.Eccentricity < 1 {
		f = FadeEllipticCurrent(fragAnom, u.CurrEccAnom, u.AnomalyRange)
	} else {
		f = FadeHyperbolic(fragAnom, u.CurrEccAnom, u.AnomalyRange)
	}
	return f * Dropoff(fragAnom)
}

//gosl:end trajectory

// Fader computes the phase fade factor of a fragment.
type Fader interface {

	// Fade returns the fade factor for the interpolated fragment anomaly.
	Fade(fragAnom float32, u *FragmentUniforms) float32
}

// UniformFade uses the formula selected by the FadeMode of the uniforms,
// matching the fragment shader.
type UniformFade struct{}

func (UniformFade) Fade(fragAnom float32, u *FragmentUniforms) float32 {
	return ModeFade(fragAnom, u)
}

// CurrentFade always uses [FadeCurrent].
type CurrentFade struct{}

func (CurrentFade) Fade(fragAnom float32, u *FragmentUniforms) float32 {
	cu := *u
	cu.FadeMode = FadeCurrent
	return ModeFade(fragAnom, &cu)
}

// LegacyFade always uses [FadeLegacy].
type LegacyFade struct{}

func (LegacyFade) Fade(fragAnom float32, u *FragmentUniforms) float32 {
	lu := *u
	lu.FadeMode = FadeLegacy
	return ModeFade(fragAnom, &lu)
}

// Fader returns the [Fader] that always uses this mode.
func (fm FadeModes) Fader() Fader {
	if fm == FadeLegacy {
		return LegacyFade{}
	}
	return CurrentFade{}
}
