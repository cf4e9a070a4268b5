// Copyright (c) 2024, The Embla3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command orbit places a ring of items in a group and runs it for a
// number of ticks: every tick each item spins, the ring revolves about
// its center, expands and drifts. It prints the final item positions.
//
// Usage:
//
//	orbit [-config orbit.toml] [-v|-vv|-q]
//
// Settings can also be given as ORBIT_* environment variables;
// see package config.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"embla3d.dev/engine/base/errors"
	"embla3d.dev/engine/config"
	"embla3d.dev/engine/items"
	"embla3d.dev/engine/logx"
	"embla3d.dev/engine/math32"
	"embla3d.dev/engine/mesh"
)

func main() {
	file := flag.String("config", "", "toml or yaml config file")
	vv := flag.Bool("vv", false, "debug output")
	v := flag.Bool("v", false, "verbose output")
	q := flag.Bool("q", false, "only show errors")
	flag.Parse()

	setUserLevel(*vv, *v, *q)
	logx.SetDefaultLogger()

	cfg, err := config.Load(*file)
	if errors.Log(err) != nil {
		os.Exit(1)
	}
	sc := build(cfg)
	errors.Must(run(sc, cfg, os.Stdout))
}

// setUserLevel overrides [logx.UserLevel] when a verbosity flag is given,
// keeping the build default otherwise.
func setUserLevel(vv, v, q bool) {
	if vv || v || q {
		logx.UserLevel = logx.LevelFromFlags(vv, v, q)
	}
}

// spinner is an item that turns about its own Y axis every tick.
type spinner struct {
	*items.Item
	step float32
}

func (s *spinner) Update() {
	s.Rotate(0, s.step, 0)
}

// build makes the scene: cfg.Items spinners evenly spaced on a circle in
// the XY plane, all sharing one mesh and all members of the "ring" group.
func build(cfg config.Config) *items.Scene {
	sc := items.NewScene()
	ring := errors.Log1(sc.NewGroup("ring"))

	ms := mesh.NewMesh("sphere")
	ms.SetMaterial(mesh.NewMaterial(cfg.ColorVector(), cfg.Reflectance))

	center := cfg.CenterVector()
	for i := 0; i < cfg.Items; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(cfg.Items)
		s, c := math32.Sincos(angle)
		it := items.New(ms)
		it.SetPosition(center.Add(math32.Vec3(c, s, 0).MulScalar(cfg.Radius)))
		sc.Add(&spinner{Item: it, step: cfg.Spin})
		ring.Add(it)
	}
	slog.Info("built ring", "items", ring.Len(), "center", ring.Center())
	return sc
}

// run advances the scene for cfg.Ticks ticks and writes the final
// positions to w.
func run(sc *items.Scene, cfg config.Config, w io.Writer) error {
	ring, ok := sc.Group("ring")
	if !ok {
		return fmt.Errorf("orbit: %w: ring", items.ErrGroupNotFound)
	}
	drift := cfg.DriftVector()
	for tick := 0; tick < cfg.Ticks; tick++ {
		sc.Update()
		ring.Revolve(0, 0, cfg.Revolve)
		ring.Repel(cfg.Repel)
		ring.Translate(drift.X, drift.Y, drift.Z)
		slog.Debug("tick", "tick", tick, "center", ring.Center())
	}
	slog.Info("done", "ticks", cfg.Ticks, "center", ring.Center())

	fmt.Fprintf(w, "center %v\n", ring.Center())
	for i, n := range sc.Nodes() {
		it := n.AsItem()
		if _, err := fmt.Fprintf(w, "%d %v rot %v\n", i, it.Position(), it.Rotation()); err != nil {
			return err
		}
	}
	return nil
}
