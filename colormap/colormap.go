// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides color-space post-processing functions
// for the trajectory fragment stage.
package colormap

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/core/colors/cam/hct"
	"cogentcore.org/core/math32"
	"github.com/keplerview/orbitline/trajectory"
	"github.com/lucasb-eyer/go-colorful"
)

// Identity returns the color unchanged.
func Identity(rgb math32.Vector3) math32.Vector3 {
	return rgb
}

// LinearToSRGB encodes linear RGB with the sRGB transfer function,
// for writing into an sRGB target.
func LinearToSRGB(rgb math32.Vector3) math32.Vector3 {
	c := colorful.LinearRgb(float64(rgb.X), float64(rgb.Y), float64(rgb.Z)).Clamped()
	return math32.Vec3(float32(c.R), float32(c.G), float32(c.B))
}

// Gamma returns a mapper raising each channel to 1/g.
func Gamma(g float32) trajectory.ColorMapper {
	inv := 1 / g
	return func(rgb math32.Vector3) math32.Vector3 {
		return math32.Vec3(
			math32.Pow(math32.Clamp(rgb.X, 0, 1), inv),
			math32.Pow(math32.Clamp(rgb.Y, 0, 1), inv),
			math32.Pow(math32.Clamp(rgb.Z, 0, 1), inv))
	}
}

// Tone returns a mapper that keeps hue and chroma but sets the HCT tone
// (0 black .. 100 white), so lines of any color read with equal lightness.
func Tone(tone float32) trajectory.ColorMapper {
	return func(rgb math32.Vector3) math32.Vector3 {
		c := colorful.LinearRgb(float64(rgb.X), float64(rgb.Y), float64(rgb.Z)).Clamped()
		r, g, b := c.RGB255()
		h := hct.FromColor(color.RGBA{R: r, G: g, B: b, A: 255})
		h.SetTone(tone)
		o := h.AsRGBA()
		lr, lg, lb := colorful.Color{R: float64(o.R) / 255, G: float64(o.G) / 255, B: float64(o.B) / 255}.LinearRgb()
		return math32.Vec3(float32(lr), float32(lg), float32(lb))
	}
}

// ByName returns the mapper for a name: "identity" (or empty), "srgb",
// "gamma:<g>" or "tone:<t>".
func ByName(name string) (trajectory.ColorMapper, error) {
	kind, arg, hasArg := strings.Cut(strings.ToLower(strings.TrimSpace(name)), ":")
	switch kind {
	case "", "identity", "none":
		return Identity, nil
	case "srgb":
		return LinearToSRGB, nil
	case "gamma", "tone":
		if !hasArg {
			return nil, fmt.Errorf("colormap: %q needs a value, as in %s:2.2", name, kind)
		}
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return nil, fmt.Errorf("colormap: %q: %w", name, err)
		}
		if kind == "gamma" {
			if v <= 0 {
				return nil, fmt.Errorf("colormap: gamma must be positive, got %g", v)
			}
			return Gamma(float32(v)), nil
		}
		return Tone(float32(v)), nil
	}
	return nil, fmt.Errorf("colormap: unknown color map %q", name)
}
