// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the projection and view transforms
// and viewport a trajectory is drawn with.
package camera

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// View is a perspective camera looking at a target, together with
// the viewport it renders into.
type View struct {

	// Position of the camera in world space.
	Position math32.Vector3 `toml:"position" yaml:"position"`

	// Target the camera looks at.
	Target math32.Vector3 `toml:"target" yaml:"target"`

	// Up direction.
	Up math32.Vector3 `toml:"up" yaml:"up"`

	// FOV is the vertical field of view in degrees.
	FOV float32 `toml:"fov" yaml:"fov"`

	// Near clipping plane distance.
	Near float32 `toml:"near" yaml:"near"`

	// Far clipping plane distance.
	Far float32 `toml:"far" yaml:"far"`

	// Width of the viewport in pixels.
	Width int `toml:"width" yaml:"width"`

	// Height of the viewport in pixels.
	Height int `toml:"height" yaml:"height"`
}

// Defaults sets the default field of view, clip planes, up vector and size,
// looking at the origin from +Z.
func (v *View) Defaults() {
	v.Position = math32.Vec3(0, 0, 10)
	v.Target = math32.Vec3(0, 0, 0)
	v.Up = math32.Vec3(0, 1, 0)
	v.FOV = 45
	v.Near = 0.01
	v.Far = 1000
	v.Width = 800
	v.Height = 600
}

// Validate returns an error if the view cannot produce a projection.
func (v *View) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("camera: viewport must be positive, got %dx%d", v.Width, v.Height)
	}
	if v.Near <= 0 || v.Far <= v.Near {
		return fmt.Errorf("camera: invalid clip planes near=%g far=%g", v.Near, v.Far)
	}
	if v.Position == v.Target {
		return fmt.Errorf("camera: position and target are both %v", v.Position)
	}
	return nil
}

// Aspect returns the width / height ratio of the viewport.
func (v *View) Aspect() float32 {
	if v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Viewport returns the viewport size in pixels.
func (v *View) Viewport() math32.Vector2 {
	return math32.Vec2(float32(v.Width), float32(v.Height))
}

// ViewMatrix returns the view matrix, based on the position
// of the camera facing the target, with the up vector.
func (v *View) ViewMatrix() *math32.Matrix4 {
	up := v.Up
	if up == (math32.Vector3{}) {
		up = math32.Vec3(0, 1, 0)
	}
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(v.Position, v.Target, up))
	scale := math32.Vec3(1, 1, 1)
	var cview math32.Matrix4
	cview.SetTransform(v.Position, lookq, scale)
	view, _ := cview.Inverse()
	return view
}

// Projection returns the perspective projection matrix.
func (v *View) Projection() *math32.Matrix4 {
	var prjn math32.Matrix4
	prjn.SetPerspective(v.FOV, v.Aspect(), v.Near, v.Far)
	return &prjn
}

// ProjView returns the combined projection * view matrix.
func (v *View) ProjView() math32.Matrix4 {
	var pv math32.Matrix4
	pv.MulMatrices(v.Projection(), v.ViewMatrix())
	return pv
}
