// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	var v View
	v.Defaults()
	assert.NoError(t, v.Validate())
	assert.InDelta(t, 800.0/600.0, v.Aspect(), 1e-6)
	assert.Equal(t, math32.Vec2(800, 600), v.Viewport())
}

func TestValidate(t *testing.T) {
	var v View
	v.Defaults()
	v.Height = 0
	assert.Error(t, v.Validate())
	assert.Equal(t, float32(1), v.Aspect())

	v.Defaults()
	v.Far = v.Near
	assert.Error(t, v.Validate())

	v.Defaults()
	v.Target = v.Position
	assert.Error(t, v.Validate())
}

func TestProjViewCentersTarget(t *testing.T) {
	var v View
	v.Defaults()
	v.Position = math32.Vec3(3, 4, 5)
	v.Target = math32.Vec3(1, -1, 0.5)
	pv := v.ProjView()
	c := math32.Vector4FromVector3(v.Target, 1).MulMatrix4(&pv)
	assert.Greater(t, c.W, float32(0))
	assert.InDelta(t, 0, c.X/c.W, 1e-4)
	assert.InDelta(t, 0, c.Y/c.W, 1e-4)
}

func TestProjViewPerspective(t *testing.T) {
	var v View
	v.Defaults()
	pv := v.ProjView()
	near := math32.Vec4(1, 0, 0, 1).MulMatrix4(&pv)
	far := math32.Vec4(1, 0, -10, 1).MulMatrix4(&pv)
	// the same offset looks smaller further away
	assert.Greater(t, near.X/near.W, far.X/far.W)
	assert.Greater(t, far.W, near.W)
}

func TestUpFallback(t *testing.T) {
	var v View
	v.Defaults()
	v.Up = math32.Vector3{}
	a := v.ViewMatrix()
	v.Up = math32.Vec3(0, 1, 0)
	b := v.ViewMatrix()
	assert.Equal(t, *b, *a)
}
