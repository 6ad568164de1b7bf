// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termview previews rendered images in a terminal, two pixel rows
// per cell using the upper half block character.
package termview

import (
	"context"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// HalfBlock is drawn in every cell: its foreground is the top pixel and
// its background the bottom pixel.
const HalfBlock = '▀'

// Draw draws img scaled to fill the screen. Each half cell shows the most
// opaque pixel of the block it covers, composited over black, so that
// thin lines survive the downscale. It does not call Show.
func Draw(s tcell.Screen, img image.Image) {
	cols, rows := s.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	b := img.Bounds()
	for cy := range rows {
		for cx := range cols {
			top := sample(img, b, cx, 2*cy, cols, 2*rows)
			bot := sample(img, b, cx, 2*cy+1, cols, 2*rows)
			st := tcell.StyleDefault.Foreground(toColor(top)).Background(toColor(bot))
			s.SetContent(cx, cy, HalfBlock, nil, st)
		}
	}
}

// sample returns the most opaque pixel in block (bx, by) of a cols x rows grid over b.
func sample(img image.Image, b image.Rectangle, bx, by, cols, rows int) color.RGBA64 {
	x0 := b.Min.X + bx*b.Dx()/cols
	x1 := max(b.Min.X+(bx+1)*b.Dx()/cols, x0+1)
	y0 := b.Min.Y + by*b.Dy()/rows
	y1 := max(b.Min.Y+(by+1)*b.Dy()/rows, y0+1)
	var best color.RGBA64
	found := false
	for y := y0; y < min(y1, b.Max.Y); y++ {
		for x := x0; x < min(x1, b.Max.X); x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if !found || a > uint32(best.A) {
				best = color.RGBA64{uint16(r), uint16(g), uint16(bl), uint16(a)}
				found = true
			}
		}
	}
	return best
}

// toColor converts premultiplied c over black to a terminal color.
func toColor(c color.RGBA64) tcell.Color {
	return tcell.NewRGBColor(int32(c.R>>8), int32(c.G>>8), int32(c.B>>8))
}

// Preview draws the image returned by render until ctx is done or the
// user presses Escape, q or Ctrl-C. render is called again when the
// terminal is resized, with the new size in cells, and whenever a value
// arrives on redraw.
func Preview(ctx context.Context, s tcell.Screen, redraw <-chan struct{}, render func(cols, rows int) image.Image) error {
	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	defer close(quit)
	go s.ChannelEvents(events, quit)

	show := func() {
		s.Clear()
		Draw(s, render(s.Size()))
		s.Show()
	}
	show()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-redraw:
			show()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
				show()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			}
		}
	}
}
