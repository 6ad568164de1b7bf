// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/keplerview/orbitline/orbit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	sc, err := Open("testdata/solar.toml")
	require.NoError(t, err)
	assert.Len(t, sc.Bodies, 4)
	assert.Equal(t, float32(2), sc.Thickness)
	assert.Equal(t, 128, sc.Points)
	assert.Equal(t, 320, sc.Camera.Width)
	assert.Equal(t, math32.Vec3(0, -5, 20), sc.Camera.Position)
	// unset camera fields keep their defaults
	assert.Equal(t, float32(45), sc.Camera.FOV)
	assert.Equal(t, math32.Vec3(0, 1, 0), sc.Camera.Up)

	moon := sc.Body("moon")
	require.NotNil(t, moon)
	assert.Equal(t, "earth", moon.Parent)
	assert.Equal(t, 0.1, moon.Elements.Eccentricity)
	assert.Nil(t, sc.Body("pluto"))

	ys, err := Open("testdata/solar.yaml")
	require.NoError(t, err)
	assert.Equal(t, sc, ys)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open("testdata/missing.toml")
	assert.ErrorIs(t, err, os.ErrNotExist)

	dir := t.TempDir()
	fn := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(fn, []byte("{}"), 0666))
	_, err = Open(fn)
	assert.ErrorContains(t, err, "unsupported")

	_, err = Open("testdata/cycle.toml")
	assert.ErrorContains(t, err, "orbits itself")

	_, err = Open("testdata/invalid.yaml")
	require.Error(t, err)
	for _, s := range []string{"thickness", "unknown parent", "parabolic", "periapsis", "probe"} {
		assert.ErrorContains(t, err, s)
	}
}

func TestPositions(t *testing.T) {
	sc, err := Open("testdata/solar.toml")
	require.NoError(t, err)
	pos, err := sc.Positions()
	require.NoError(t, err)
	assert.Equal(t, math32.Vector3{}, pos["sun"])

	earth := pos["earth"]
	assert.InDelta(t, 4, earth.X, 1e-5)
	assert.InDelta(t, 0, earth.Y, 1e-5)

	moon := sc.Body("moon").Elements
	E := orbit.EccentricAnomaly(0.1, 1)
	want := moon.SemiMajorAxis() * (1 - 0.1*math.Cos(E))
	assert.InDelta(t, want, pos["moon"].Sub(earth).Length(), 1e-5)
}

func TestTrajectories(t *testing.T) {
	sc, err := Open("testdata/solar.toml")
	require.NoError(t, err)
	trs, err := sc.Trajectories()
	require.NoError(t, err)
	require.Len(t, trs, 3)

	earth := trs[0]
	assert.True(t, earth.IsElliptic())
	assert.Equal(t, 128, earth.PointCount())
	assert.Equal(t, float32(2), earth.Thickness)
	assert.InDelta(t, float32(0x30)/255, earth.Color.X, 1e-6)
	assert.InDelta(t, 1, earth.Color.Z, 1e-6)
	assert.InDelta(t, 1, earth.Color.W, 1e-6)

	comet := trs[2]
	assert.False(t, comet.IsElliptic())
	assert.True(t, comet.Visible())
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(fn, []byte("time = 1\n"), 0666))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	scenes := make(chan *Scene, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, func(sc *Scene) { scenes <- sc })
	}()

	select {
	case sc := <-scenes:
		assert.Equal(t, 1.0, sc.Time)
	case <-ctx.Done():
		t.Fatal("no initial scene")
	}

	require.NoError(t, os.WriteFile(fn, []byte("time = 5\n"), 0666))
	for found := false; !found; {
		select {
		case sc := <-scenes:
			found = sc.Time == 5
		case <-ctx.Done():
			t.Fatal("no reloaded scene")
		}
	}
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
