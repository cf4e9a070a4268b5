// Copyright (c) 2024, The Embla3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package items

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

var (
	// ErrGroupExists is returned when creating a group whose name is taken.
	ErrGroupExists = errors.New("group already exists")

	// ErrGroupNotFound is returned when a named group does not exist.
	ErrGroupNotFound = errors.New("group not found")
)

// Scene holds the nodes of a simulation in order, along with the
// named groups among them. It owns membership bookkeeping for the
// nodes it holds.
type Scene struct {
	nodes      []Node
	groups     map[string]*Group
	groupNames []string
}

// NewScene returns a new empty [Scene].
func NewScene() *Scene {
	return &Scene{groups: make(map[string]*Group)}
}

// Add appends the given nodes to the scene.
func (sc *Scene) Add(nodes ...Node) *Scene {
	sc.nodes = append(sc.nodes, nodes...)
	return sc
}

// Nodes returns the nodes in the order they were added. The slice is a copy.
func (sc *Scene) Nodes() []Node {
	return slices.Clone(sc.nodes)
}

// Remove takes the node out of the scene and out of every group
// it belongs to. Nodes are matched by their underlying [Item], so
// node values of non-comparable types work too.
// It returns false if the node is not in the scene.
func (sc *Scene) Remove(n Node) bool {
	it := n.AsItem()
	i := slices.IndexFunc(sc.nodes, func(x Node) bool { return x.AsItem() == it })
	if i < 0 {
		return false
	}
	sc.nodes = slices.Delete(sc.nodes, i, i+1)
	for _, g := range it.Groups() {
		g.Remove(it)
	}
	return true
}

// NewGroup makes a new named group in the scene.
func (sc *Scene) NewGroup(name string) (*Group, error) {
	if name == "" {
		return nil, errors.New("items.Scene.NewGroup: group name is empty")
	}
	if _, ok := sc.groups[name]; ok {
		return nil, fmt.Errorf("items.Scene.NewGroup: %q: %w", name, ErrGroupExists)
	}
	if sc.groups == nil {
		sc.groups = make(map[string]*Group)
	}
	g := NewGroup(name)
	sc.groups[name] = g
	sc.groupNames = append(sc.groupNames, name)
	slog.Debug("items.Scene.NewGroup", "group", name)
	return g, nil
}

// Group returns the group with the given name.
func (sc *Scene) Group(name string) (*Group, bool) {
	g, ok := sc.groups[name]
	return g, ok
}

// GroupNames returns the group names in creation order.
func (sc *Scene) GroupNames() []string {
	return slices.Clone(sc.groupNames)
}

// DeleteGroup removes the named group, clearing its membership on both sides.
func (sc *Scene) DeleteGroup(name string) error {
	g, ok := sc.groups[name]
	if !ok {
		return fmt.Errorf("items.Scene.DeleteGroup: %q: %w", name, ErrGroupNotFound)
	}
	g.Clear()
	delete(sc.groups, name)
	sc.groupNames = slices.DeleteFunc(sc.groupNames, func(s string) bool { return s == name })
	slog.Debug("items.Scene.DeleteGroup", "group", name)
	return nil
}

// Update calls Update on every node, in order.
func (sc *Scene) Update() {
	for _, n := range sc.nodes {
		n.Update()
	}
}
