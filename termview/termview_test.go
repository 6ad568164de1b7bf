// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termview

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(cols, rows)
	return s
}

func cellColors(s tcell.Screen, x, y int) (rune, tcell.Color, tcell.Color) {
	r, _, st, _ := s.GetContent(x, y)
	fg, bg, _ := st.Decompose()
	return r, fg, bg
}

func TestDraw(t *testing.T) {
	s := newScreen(t, 4, 2)
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(3, 3, color.RGBA{0, 128, 0, 128})
	Draw(s, img)

	r, fg, bg := cellColors(s, 0, 0)
	assert.Equal(t, HalfBlock, r)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)

	_, fg, bg = cellColors(s, 1, 0)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)

	_, _, bg = cellColors(s, 3, 1)
	assert.Equal(t, tcell.NewRGBColor(0, 128, 0), bg)
}

func TestDrawDownscaleKeepsLines(t *testing.T) {
	s := newScreen(t, 2, 1)
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	// one pixel line in the lower left block
	for x := range 10 {
		img.Set(x, 15, color.RGBA{255, 255, 255, 255})
	}
	Draw(s, img)
	_, fg, bg := cellColors(s, 0, 0)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), bg)
	_, _, bg = cellColors(s, 1, 0)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)
}

func TestPreviewQuit(t *testing.T) {
	s := newScreen(t, 8, 4)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	sizes := make(chan image.Point, 4)
	render := func(cols, rows int) image.Image {
		sizes <- image.Pt(cols, rows)
		return image.NewRGBA(image.Rect(0, 0, 16, 16))
	}
	done := make(chan error, 1)
	go func() { done <- Preview(ctx, s, nil, render) }()
	assert.Equal(t, image.Pt(8, 4), <-sizes)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("preview did not quit")
	}
}

func TestPreviewCanceled(t *testing.T) {
	s := newScreen(t, 8, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Preview(ctx, s, nil, func(cols, rows int) image.Image {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	})
	assert.ErrorIs(t, err, context.Canceled)
}
