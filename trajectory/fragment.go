// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trajectory

import "cogentcore.org/core/math32"

// ColorMapper is the host supplied color-space post-processing step,
// applied to the RGB channels after the fade is computed.
// A nil ColorMapper leaves the color unchanged.
type ColorMapper func(rgb math32.Vector3) math32.Vector3

// Fragment runs the fragment stage for a pixel with the interpolated
// anomaly fragAnom. The fade from fader scales the alpha of the surface
// color, and the RGB channels go through cmap. A nil fader uses
// [UniformFade].
func Fragment(fragAnom float32, u *FragmentUniforms, fader Fader, cmap ColorMapper) math32.Vector4 {
	if fader == nil {
		fader = UniformFade{}
	}
	fade := float32(0)
	if u.AnomalyRange > 0 {
		fade = fader.Fade(fragAnom, u)
	}
	rgb := math32.Vec3(u.SurfaceColor.X, u.SurfaceColor.Y, u.SurfaceColor.Z)
	if cmap != nil {
		rgb = cmap(rgb)
	}
	return math32.Vector4FromVector3(rgb, u.SurfaceColor.W*fade)
}
