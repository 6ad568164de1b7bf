// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command orbitline draws the trajectories of a scene file into an image,
// or previews them in the terminal.
package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/colors"
	"github.com/gdamore/tcell/v2"
	"github.com/keplerview/orbitline/colormap"
	"github.com/keplerview/orbitline/raster"
	"github.com/keplerview/orbitline/scene"
	"github.com/keplerview/orbitline/termview"
	"github.com/keplerview/orbitline/trajectory"
)

// Config is the configuration information for the orbitline cli.
type Config struct {

	// Scene is the .toml or .yaml scene file to draw.
	Scene string `posarg:"0"`

	// Output is the image file to save to; the format comes from the extension.
	Output string `flag:"o,output" default:"orbit.png"`

	// Width of the image in pixels; 0 uses the scene camera width.
	Width int

	// Height of the image in pixels; 0 uses the scene camera height.
	Height int

	// Fade is the fade formula.
	Fade trajectory.FadeModes `default:"current"`

	// ColorMap is applied to line colors: identity, srgb, gamma:<g> or tone:<t>.
	ColorMap string `default:"identity"`

	// Background is the color the image is cleared to.
	Background string `default:"#000000"`

	// Time is added to the scene time.
	Time float64

	// Watch redraws whenever the scene file changes.
	Watch bool

	// Term previews in the terminal instead of saving an image.
	Term bool
}

func main() {
	opts := cli.DefaultOptions("orbitline", "Orbitline draws orbit trajectories with a phase fade.")
	opts.DefaultFiles = []string{"orbitline.toml"}
	cli.Run(opts, &Config{}, Run)
}

// Run draws the scene in c.Scene as configured.
func Run(c *Config) error {
	if !errors.Log1(fsx.FileExists(c.Scene)) {
		return fmt.Errorf("scene file %q not found", c.Scene)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if c.Term {
		return Term(ctx, c)
	}
	if c.Watch {
		err := scene.Watch(ctx, c.Scene, func(sc *scene.Scene) {
			errors.Log(Save(ctx, c, sc))
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	sc, err := scene.Open(c.Scene)
	if err != nil {
		return err
	}
	return Save(ctx, c, sc)
}

// Save draws the scene and saves it to c.Output.
func Save(ctx context.Context, c *Config, sc *scene.Scene) error {
	img, err := Render(ctx, c, sc, c.Width, c.Height)
	if err != nil {
		return err
	}
	if err := imagex.Save(img, c.Output); err != nil {
		return err
	}
	slog.Info("saved", "file", c.Output, "bodies", len(sc.Bodies))
	return nil
}

// Render draws every trajectory of the scene into a new image.
// A zero width or height uses the scene camera size.
func Render(ctx context.Context, c *Config, sc *scene.Scene, width, height int) (*image.RGBA, error) {
	cmap, err := colormap.ByName(c.ColorMap)
	if err != nil {
		return nil, err
	}
	bg, err := colors.FromHex(c.Background)
	if err != nil {
		return nil, err
	}
	view := sc.Camera
	if width > 0 {
		view.Width = width
	}
	if height > 0 {
		view.Height = height
	}
	if err := view.Validate(); err != nil {
		return nil, err
	}
	at := *sc
	at.Time += c.Time
	trs, err := at.Trajectories()
	if err != nil {
		return nil, err
	}

	r := raster.NewRenderer(view.Width, view.Height)
	r.ColorMap = cmap
	r.Clear(bg)
	for _, tr := range trs {
		if !tr.Visible() {
			continue
		}
		tr.Fade = c.Fade
		pr := tr.Params(&view)
		if err := pr.Validate(); err != nil {
			return nil, err
		}
		u := tr.FragmentUniforms()
		if err := r.Draw(ctx, &pr, &u); err != nil {
			return nil, err
		}
	}
	return r.Image, nil
}

// Term previews the scene in the terminal, reloading it on change
// when c.Watch is set.
func Term(ctx context.Context, c *Config) error {
	sc, err := scene.Open(c.Scene)
	if err != nil {
		return err
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	var mu sync.Mutex
	redraw := make(chan struct{}, 1)
	if c.Watch {
		go watch(ctx, c.Scene, func(nsc *scene.Scene) {
			mu.Lock()
			sc = nsc
			mu.Unlock()
			select {
			case redraw <- struct{}{}:
			default:
			}
		})
	}
	err = termview.Preview(ctx, s, redraw, func(cols, rows int) image.Image {
		mu.Lock()
		cur := sc
		mu.Unlock()
		img, err := Render(ctx, c, cur, cols, 2*rows)
		if errors.Log(err) != nil {
			return image.NewRGBA(image.Rect(0, 0, 1, 1))
		}
		return img
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// watch runs [scene.Watch] for a background redraw, logging any error
// other than cancellation.
func watch(ctx context.Context, filename string, fn func(sc *scene.Scene)) error {
	err := scene.Watch(ctx, filename, fn)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return errors.Log(err)
}
