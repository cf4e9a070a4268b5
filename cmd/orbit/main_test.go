// Copyright (c) 2024, The Embla3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"embla3d.dev/engine/base/tolassert"
	"embla3d.dev/engine/config"
	"embla3d.dev/engine/items"
	"embla3d.dev/engine/logx"
	"embla3d.dev/engine/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	cfg := config.Defaults()
	cfg.Items = 4
	cfg.Radius = 2
	cfg.Center = []float32{1, 1, 1}
	sc := build(cfg)

	ring, ok := sc.Group("ring")
	require.True(t, ok)
	assert.Equal(t, 4, ring.Len())
	assert.Len(t, sc.Nodes(), 4)
	tolassert.EqualVector3(t, math32.Vec3(1, 1, 1), ring.Center(), 1e-5)
	tolassert.EqualVector3(t, math32.Vec3(3, 1, 1), ring.Items()[0].Position(), 1e-5)
	assert.Same(t, ring.Items()[0].Mesh(), ring.Items()[3].Mesh())
}

func TestRun(t *testing.T) {
	cfg := config.Defaults()
	cfg.Items = 4
	cfg.Radius = 1
	cfg.Revolve = 90
	cfg.Spin = 10
	cfg.Repel = 1
	cfg.Drift = []float32{0, 0, 1}
	cfg.Ticks = 2
	sc := build(cfg)

	var buf bytes.Buffer
	require.NoError(t, run(sc, cfg, &buf))

	ring, _ := sc.Group("ring")
	tolassert.EqualVector3(t, math32.Vec3(0, 0, 2), ring.Center(), 1e-4)
	first := ring.Items()[0]
	// two quarter turns bring item 0 to -X, pushed out to radius 3
	tolassert.EqualVector3(t, math32.Vec3(-3, 0, 2), first.Position(), 1e-4)
	assert.Equal(t, math32.Vec3(0, 20, 0), first.Rotation())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "center "))
}

func TestRunMissingGroup(t *testing.T) {
	err := run(items.NewScene(), config.Defaults(), &bytes.Buffer{})
	assert.ErrorIs(t, err, items.ErrGroupNotFound)
}

func TestSetUserLevel(t *testing.T) {
	old := logx.UserLevel
	t.Cleanup(func() { logx.UserLevel = old })

	// without flags the build default stays in place
	logx.UserLevel = slog.LevelError
	setUserLevel(false, false, false)
	assert.Equal(t, slog.LevelError, logx.UserLevel)

	setUserLevel(false, true, false)
	assert.Equal(t, slog.LevelInfo, logx.UserLevel)
	setUserLevel(true, false, true)
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)
	setUserLevel(false, false, true)
	assert.Equal(t, slog.LevelError, logx.UserLevel)
}
