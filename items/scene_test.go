// Copyright (c) 2024, The Embla3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package items

import (
	"testing"

	"embla3d.dev/engine/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneGroups(t *testing.T) {
	sc := NewScene()
	g, err := sc.NewGroup("ring")
	require.NoError(t, err)
	assert.Equal(t, "ring", g.Name())

	_, err = sc.NewGroup("ring")
	assert.ErrorIs(t, err, ErrGroupExists)
	_, err = sc.NewGroup("")
	assert.Error(t, err)

	_, err = sc.NewGroup("moons")
	require.NoError(t, err)
	assert.Equal(t, []string{"ring", "moons"}, sc.GroupNames())

	got, ok := sc.Group("ring")
	assert.True(t, ok)
	assert.Same(t, g, got)
	_, ok = sc.Group("nope")
	assert.False(t, ok)

	it := newItem()
	sc.Add(it)
	g.Add(it)
	require.NoError(t, sc.DeleteGroup("ring"))
	assert.Empty(t, it.Groups())
	assert.Equal(t, []string{"moons"}, sc.GroupNames())
	assert.ErrorIs(t, sc.DeleteGroup("ring"), ErrGroupNotFound)
}

func TestSceneRemove(t *testing.T) {
	var sc Scene
	g, err := sc.NewGroup("g")
	require.NoError(t, err)

	a := newItem().SetPosition(math32.Vec3(2, 0, 0))
	b := newItem().SetPosition(math32.Vec3(4, 0, 0))
	sc.Add(a, b)
	g.Add(a, b)
	assert.Equal(t, math32.Vec3(3, 0, 0), g.Center())

	assert.True(t, sc.Remove(a))
	assert.False(t, sc.Remove(a))
	assert.Equal(t, []Node{b}, sc.Nodes())
	assert.False(t, g.Contains(a))
	assert.Equal(t, math32.Vec3(4, 0, 0), g.Center())
}

// tagged is a node stored by value whose type is not comparable.
type tagged struct {
	*Item
	tags []string
}

func TestSceneRemoveValueNode(t *testing.T) {
	sc := NewScene()
	g, err := sc.NewGroup("g")
	require.NoError(t, err)

	v := tagged{Item: newItem(), tags: []string{"a"}}
	other := newItem()
	sc.Add(other, v)
	g.Add(v.Item, other)

	assert.NotPanics(t, func() {
		assert.True(t, sc.Remove(v))
	})
	assert.Equal(t, []Node{other}, sc.Nodes())
	assert.False(t, g.Contains(v.Item))
	assert.Empty(t, v.Groups())

	// a different value wrapping the same item matches too
	sc.Add(v)
	assert.True(t, sc.Remove(tagged{Item: v.Item}))
	assert.False(t, sc.Remove(v))
	assert.True(t, sc.Remove(other))
	assert.Empty(t, sc.Nodes())
}

func TestSceneUpdate(t *testing.T) {
	sc := NewScene()
	s := &spinner{Item: newItem(), step: 10}
	plain := newItem()
	sc.Add(s, plain)
	sc.Update()
	sc.Update()
	assert.Equal(t, math32.Vec3(0, 20, 0), s.Rotation())
	assert.Equal(t, math32.Vector3{}, plain.Rotation())
}
