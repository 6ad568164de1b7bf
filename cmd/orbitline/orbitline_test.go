// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/base/iox/imagex"
	"github.com/keplerview/orbitline/scene"
	"github.com/keplerview/orbitline/trajectory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const solar = "../../scene/testdata/solar.toml"

func testConfig() *Config {
	return &Config{Scene: solar, ColorMap: "identity", Background: "#000000"}
}

func TestRender(t *testing.T) {
	sc, err := scene.Open(solar)
	require.NoError(t, err)
	c := testConfig()
	img, err := Render(context.Background(), c, sc, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 0))

	lit := 0
	for y := range 240 {
		for x := range 320 {
			p := img.RGBAAt(x, y)
			if p.R > 0 || p.G > 0 || p.B > 0 {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 100)

	small, err := Render(context.Background(), c, sc, 64, 32)
	require.NoError(t, err)
	assert.Equal(t, 64, small.Bounds().Dx())
}

func TestRenderErrors(t *testing.T) {
	sc, err := scene.Open(solar)
	require.NoError(t, err)
	for _, c := range []*Config{
		{Fade: trajectory.FadeCurrent, ColorMap: "sepia", Background: "#000000"},
		{Fade: trajectory.FadeLegacy, ColorMap: "srgb", Background: "#12"},
	} {
		_, err := Render(context.Background(), c, sc, 0, 0)
		assert.Error(t, err)
	}
}

func TestRenderFadeModes(t *testing.T) {
	sc, err := scene.Open(solar)
	require.NoError(t, err)
	c := testConfig()
	cur, err := Render(context.Background(), c, sc, 0, 0)
	require.NoError(t, err)
	c.Fade = trajectory.FadeLegacy
	leg, err := Render(context.Background(), c, sc, 0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, cur.Pix, leg.Pix)
}

func TestConfigFade(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Fade.SetString("legacy"))
	assert.Equal(t, trajectory.FadeLegacy, c.Fade)
	assert.Error(t, c.Fade.SetString("sideways"))
}

func TestSave(t *testing.T) {
	sc, err := scene.Open(solar)
	require.NoError(t, err)
	c := testConfig()
	c.Output = filepath.Join(t.TempDir(), "solar.png")
	c.Width, c.Height = 80, 60
	require.NoError(t, Save(context.Background(), c, sc))
	exists, err := fsx.FileExists(c.Output)
	require.NoError(t, err)
	assert.True(t, exists)
	img, _, err := imagex.Open(c.Output)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
}

func TestRunMissingScene(t *testing.T) {
	c := testConfig()
	c.Scene = "does-not-exist.toml"
	assert.ErrorContains(t, Run(c), "not found")
}

func TestWatchErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	loaded := 0
	assert.NoError(t, watch(ctx, solar, func(sc *scene.Scene) { loaded++ }))
	assert.Equal(t, 1, loaded)

	missing := filepath.Join(t.TempDir(), "gone", "scene.toml")
	assert.Error(t, watch(context.Background(), missing, func(sc *scene.Scene) {}))
}
