// Copyright (c) 2024, The Embla3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package items

import (
	"log/slog"
	"slices"

	"embla3d.dev/engine/math32"
)

// CenterFunc computes the aggregate position of a group from its members.
type CenterFunc func(members []*Item) math32.Vector3

// Mean returns the arithmetic mean of the member positions,
// or the zero vector for no members.
func Mean(members []*Item) math32.Vector3 {
	if len(members) == 0 {
		return math32.Vector3{}
	}
	var sum math32.Vector3
	for _, it := range members {
		sum.SetAdd(it.translation)
	}
	return sum.DivScalar(float32(len(members)))
}

// BoxCenter returns the center of the bounding box of the member
// positions, or the zero vector for no members.
func BoxCenter(members []*Item) math32.Vector3 {
	bb := math32.B3Empty()
	for _, it := range members {
		bb.ExpandByPoint(it.translation)
	}
	return bb.Center()
}

// Group is a flat, named collection of items with a derived center.
// Groups do not nest and do not own their items.
//
// The center is recomputed whenever membership changes or a member
// moves, so [Group.Center] is never stale.
type Group struct {
	name       string
	members    []*Item
	center     math32.Vector3
	centerFunc CenterFunc
}

// NewGroup returns a new empty [Group] whose center is the [Mean]
// of its members.
func NewGroup(name string) *Group {
	return &Group{name: name, centerFunc: Mean}
}

// Name returns the name of the group.
func (g *Group) Name() string {
	return g.name
}

// Len returns the number of members.
func (g *Group) Len() int {
	return len(g.members)
}

// Items returns the members in the order they were added.
// The slice is a copy.
func (g *Group) Items() []*Item {
	return slices.Clone(g.members)
}

// Contains returns whether it is a member.
func (g *Group) Contains(it *Item) bool {
	return slices.Contains(g.members, it)
}

// Center returns the current center of the group.
func (g *Group) Center() math32.Vector3 {
	return g.center
}

// SetCenterFunc sets the aggregate used for the center and recomputes it.
// A nil f restores [Mean].
func (g *Group) SetCenterFunc(f CenterFunc) *Group {
	if f == nil {
		f = Mean
	}
	g.centerFunc = f
	g.UpdateCenter()
	return g
}

// UpdateCenter recomputes the center from the current members.
func (g *Group) UpdateCenter() {
	f := g.centerFunc
	if f == nil {
		f = Mean
	}
	g.center = f(g.members)
}

// Add makes the given items members of the group, recording the
// membership on both sides, and returns how many were added.
// Items that are already members are skipped.
func (g *Group) Add(its ...*Item) int {
	n := 0
	for _, it := range its {
		if it == nil || g.Contains(it) {
			continue
		}
		g.members = append(g.members, it)
		it.addToGroup(g)
		n++
	}
	if n > 0 {
		g.UpdateCenter()
		slog.Debug("items.Group.Add", "group", g.name, "added", n, "members", len(g.members))
	}
	return n
}

// Remove takes it out of the group on both sides.
// It returns false if it was not a member.
func (g *Group) Remove(it *Item) bool {
	i := slices.Index(g.members, it)
	if i < 0 {
		return false
	}
	g.members = slices.Delete(g.members, i, i+1)
	it.removeFromGroup(g)
	g.UpdateCenter()
	slog.Debug("items.Group.Remove", "group", g.name, "members", len(g.members))
	return true
}

// Clear removes all members on both sides.
func (g *Group) Clear() {
	for _, it := range g.members {
		it.removeFromGroup(g)
	}
	g.members = nil
	g.UpdateCenter()
}

// batch applies f to every member with the group excluded from
// notification, then recomputes the center once.
func (g *Group) batch(f func(it *Item, ex Exclude)) *Group {
	ex := Except(g)
	for _, it := range g.members {
		f(it, ex)
	}
	g.UpdateCenter()
	return g
}

// Translate moves every member by the given offset.
func (g *Group) Translate(dx, dy, dz float32) *Group {
	return g.batch(func(it *Item, ex Exclude) {
		it.TranslateExcept(dx, dy, dz, ex)
	})
}

// MoveTo translates every member by the same offset so that
// the center lands on pos.
func (g *Group) MoveTo(pos math32.Vector3) *Group {
	d := pos.Sub(g.center)
	return g.Translate(d.X, d.Y, d.Z)
}

// Revolve revolves every member about the group center by the given
// degrees around X, then Y, then Z. See [Item.RevolveAround].
func (g *Group) Revolve(degX, degY, degZ float32) *Group {
	c := g.center
	return g.batch(func(it *Item, ex Exclude) {
		it.RevolveAroundExcept(c, degX, degY, degZ, ex)
	})
}

// Repel pushes every member away from the group center by dist.
// See [Item.RepelBy].
func (g *Group) Repel(dist float32) *Group {
	c := g.center
	return g.batch(func(it *Item, ex Exclude) {
		it.RepelByExcept(c, dist, ex)
	})
}

// Rotate adds the given degrees to the rotation of every member.
// Positions do not change, so the center is left alone.
func (g *Group) Rotate(dx, dy, dz float32) *Group {
	for _, it := range g.members {
		it.Rotate(dx, dy, dz)
	}
	return g
}

// SetColor sets the color of every member. See [Item.SetColor].
func (g *Group) SetColor(r, gr, b float32) *Group {
	for _, it := range g.members {
		it.SetColor(r, gr, b)
	}
	return g
}
