// Copyright (c) 2024, The Embla3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package items provides positioned, renderable scene items and the
// flat, named groups they belong to.
//
// An [Item] has a uniform scale, an Euler rotation in degrees and a
// translation, and points to a shared mesh for its appearance. A [Group]
// holds items and keeps a center (by default the mean position) that is
// recomputed whenever a member moves or membership changes.
//
// Everything here is single-threaded: callers must serialize access,
// typically by mutating items only from the simulation tick.
package items

// Node is anything that can be placed in a [Scene]: an [Item], or a
// type that embeds *Item and overrides Update with its own per-tick
// behavior.
type Node interface {

	// AsItem returns the underlying [Item].
	AsItem() *Item

	// Update is called once per tick by [Scene.Update].
	Update()
}

// test for impl
var _ Node = &Item{}
