// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene loads a set of orbiting bodies and a camera from a
// TOML or YAML file, and turns them into trajectories to draw.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/keplerview/orbitline/camera"
	"github.com/keplerview/orbitline/orbit"
	"github.com/keplerview/orbitline/trajectory"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Scene is a camera looking at a hierarchy of bodies at a moment in time.
type Scene struct {

	// Camera the scene is drawn with.
	Camera camera.View `toml:"camera" yaml:"camera"`

	// Time at which body positions are evaluated.
	Time float64 `toml:"time" yaml:"time"`

	// Thickness of the lines in pixels.
	Thickness float32 `toml:"thickness" yaml:"thickness"`

	// Points is the number of points each line is tessellated with.
	Points int `toml:"points" yaml:"points"`

	// Bodies in the scene. A body without a parent sits at the origin
	// and has no trajectory.
	Bodies []Body `toml:"bodies" yaml:"bodies"`
}

// Body is a named body orbiting its parent.
type Body struct {

	// Name identifies the body for use as a parent.
	Name string `toml:"name" yaml:"name"`

	// Parent is the name of the body orbited; empty for a root body.
	Parent string `toml:"parent" yaml:"parent"`

	// Color of the trajectory, as a hex value or a color name; white if empty.
	Color string `toml:"color" yaml:"color"`

	// Elements of the orbit around the parent.
	Elements orbit.Elements `toml:"orbit" yaml:"orbit"`
}

// New returns a new empty [Scene] with default settings.
func New() *Scene {
	sc := &Scene{}
	sc.Defaults()
	return sc
}

// Defaults sets the default camera, thickness and point count.
func (sc *Scene) Defaults() {
	sc.Camera.Defaults()
	sc.Thickness = trajectory.DefaultThickness
	sc.Points = trajectory.DefaultPointCount
}

// Open reads a scene from a .toml, .yaml or .yml file, on top of the defaults.
func Open(filename string) (*Scene, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	sc := New()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(b, sc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, sc)
	default:
		return nil, fmt.Errorf("scene: unsupported file type %q for %s", ext, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("scene: reading %s: %w", filename, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %s: %w", filename, err)
	}
	return sc, nil
}

// Body returns the body with the given name, or nil.
func (sc *Scene) Body(name string) *Body {
	for i := range sc.Bodies {
		if sc.Bodies[i].Name == name {
			return &sc.Bodies[i]
		}
	}
	return nil
}

// Validate returns all problems with the scene joined together.
func (sc *Scene) Validate() error {
	var errs []error
	if err := sc.Camera.Validate(); err != nil {
		errs = append(errs, err)
	}
	if sc.Thickness <= 0 {
		errs = append(errs, fmt.Errorf("thickness must be positive, got %g", sc.Thickness))
	}
	names := map[string]bool{}
	for i := range sc.Bodies {
		bd := &sc.Bodies[i]
		if bd.Name == "" {
			errs = append(errs, fmt.Errorf("body %d has no name", i))
			continue
		}
		if names[bd.Name] {
			errs = append(errs, fmt.Errorf("duplicate body %q", bd.Name))
		}
		names[bd.Name] = true
	}
	for i := range sc.Bodies {
		bd := &sc.Bodies[i]
		if bd.Parent == "" {
			continue
		}
		if !names[bd.Parent] {
			errs = append(errs, fmt.Errorf("body %q: unknown parent %q", bd.Name, bd.Parent))
		}
		if err := bd.Elements.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("body %q: %w", bd.Name, err))
		}
		if _, err := bd.RGBA(); err != nil {
			errs = append(errs, fmt.Errorf("body %q: %w", bd.Name, err))
		}
	}
	if len(errs) == 0 {
		if _, err := sc.Positions(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RGBA returns the parsed trajectory color.
func (bd *Body) RGBA() (color.RGBA, error) {
	switch {
	case bd.Color == "":
		return color.RGBA{255, 255, 255, 255}, nil
	case strings.HasPrefix(bd.Color, "#"):
		return colors.FromHex(bd.Color)
	}
	return colors.FromName(bd.Color)
}

// Positions returns the world position of every body at the scene time.
// Root bodies are at the origin and each other body is offset from its
// parent. It is an error for parents to form a cycle.
func (sc *Scene) Positions() (map[string]math32.Vector3, error) {
	pos := make(map[string]math32.Vector3, len(sc.Bodies))
	visiting := map[string]bool{}
	var resolve func(name string) (math32.Vector3, error)
	resolve = func(name string) (math32.Vector3, error) {
		if p, ok := pos[name]; ok {
			return p, nil
		}
		bd := sc.Body(name)
		if bd == nil {
			return math32.Vector3{}, fmt.Errorf("unknown body %q", name)
		}
		if bd.Parent == "" {
			pos[name] = math32.Vector3{}
			return pos[name], nil
		}
		if visiting[name] {
			return math32.Vector3{}, fmt.Errorf("body %q orbits itself through its parents", name)
		}
		visiting[name] = true
		pp, err := resolve(bd.Parent)
		if err != nil {
			return pp, err
		}
		r := bd.Elements.PositionAt(bd.Elements.EccentricAnomalyAt(sc.Time))
		p := pp.Add(math32.Vec3(float32(r[0]), float32(r[1]), float32(r[2])))
		pos[name] = p
		return p, nil
	}
	for i := range sc.Bodies {
		if _, err := resolve(sc.Bodies[i].Name); err != nil {
			return nil, err
		}
	}
	return pos, nil
}

// Trajectories returns a trajectory for every body with a parent,
// centered on the parent position at the scene time.
func (sc *Scene) Trajectories() ([]*trajectory.Trajectory, error) {
	pos, err := sc.Positions()
	if err != nil {
		return nil, err
	}
	var trs []*trajectory.Trajectory
	for i := range sc.Bodies {
		bd := &sc.Bodies[i]
		if bd.Parent == "" {
			continue
		}
		c, err := bd.RGBA()
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", bd.Name, err)
		}
		psi := bd.Elements.EccentricAnomalyAt(sc.Time)
		tr := trajectory.New(&bd.Elements, pos[bd.Parent], float32(psi), sc.Points, sc.Thickness)
		tr.Color = math32.Vec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
		trs = append(trs, tr)
	}
	return trs, nil
}
