// Copyright (c) 2024, The Embla3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package items

import (
	"testing"

	"embla3d.dev/engine/base/tolassert"
	"embla3d.dev/engine/math32"
	"embla3d.dev/engine/mesh"
	"github.com/stretchr/testify/assert"
)

const tol = float32(1.0e-5)

func newItem() *Item {
	return New(mesh.NewMesh("cube"))
}

// countingGroup returns a group whose center recomputations are counted.
func countingGroup(name string) (*Group, *int) {
	n := new(int)
	g := NewGroup(name)
	g.centerFunc = func(members []*Item) math32.Vector3 {
		*n++
		return Mean(members)
	}
	return g, n
}

func TestNewDefaults(t *testing.T) {
	it := newItem()
	assert.Equal(t, float32(1), it.Scale())
	assert.Equal(t, math32.Vector3{}, it.Rotation())
	assert.Equal(t, math32.Vector3{}, it.Position())
	assert.Empty(t, it.Groups())
	assert.Equal(t, "cube", it.Mesh().Name)
}

func TestWorldMatrixOrigin(t *testing.T) {
	for _, tc := range []struct {
		scale float32
		rot   math32.Vector3
		pos   math32.Vector3
	}{
		{1, math32.Vector3{}, math32.Vector3{}},
		{2, math32.Vec3(30, 45, 60), math32.Vec3(1, 2, 3)},
		{0.5, math32.Vec3(-90, 720, 13), math32.Vec3(-7, 0, 11)},
	} {
		it := NewPosed(mesh.NewMesh("m"), tc.scale, tc.rot, tc.pos)
		o := math32.Vec4(0, 0, 0, 1).MulMatrix4(it.WorldMatrix())
		assert.Equal(t, math32.Vector4FromVector3(tc.pos, 1), o)
	}
}

func TestWorldMatrixOrder(t *testing.T) {
	it := newItem()
	it.SetScale(2).SetRotation(math32.Vec3(0, 0, 90)).SetPosition(math32.Vec3(1, 1, 1))
	// scale, then rotate about the item's own origin, then place it
	p := math32.Vec3(1, 0, 0).MulMatrix4AsPoint(it.WorldMatrix())
	tolassert.EqualVector3(t, math32.Vec3(1, 3, 1), p, tol)

	it.SetRotation(math32.Vec3(90, 0, 90))
	// Rx * Rz: z turns (1,0,0) to (0,1,0), then x turns it to (0,0,1)
	p = math32.Vec3(1, 0, 0).MulMatrix4AsPoint(it.WorldMatrix())
	tolassert.EqualVector3(t, math32.Vec3(1, 1, 3), p, tol)
}

func TestRotate(t *testing.T) {
	a := newItem()
	a.Rotate(10, 0, 0).Rotate(10, 0, 0)
	b := newItem()
	b.Rotate(20, 0, 0)
	assert.Equal(t, b.Rotation(), a.Rotation())

	a.Rotate(350, -30, 400)
	assert.Equal(t, math32.Vec3(370, -30, 400), a.Rotation())

	rot := a.Rotation()
	rot.X = 0
	assert.Equal(t, float32(370), a.Rotation().X)
}

func TestTranslate(t *testing.T) {
	it := newItem()
	it.SetPosition(math32.Vec3(1, 2, 3))
	it.Translate(1, 1, 1)
	assert.Equal(t, math32.Vec3(2, 3, 4), it.Position())
}

func TestClone(t *testing.T) {
	src := newItem()
	src.SetPosition(math32.Vec3(5, 5, 5)).SetRotation(math32.Vec3(1, 2, 3)).SetScale(3)
	g := NewGroup("g")
	g.Add(src)

	cl := src.Clone()
	assert.Empty(t, cl.Groups())
	assert.Same(t, src.Mesh(), cl.Mesh())
	assert.Equal(t, float32(3), cl.Scale())

	cl.SetPosition(math32.Vec3(0, 0, 0)).Rotate(10, 0, 0)
	assert.Equal(t, math32.Vec3(5, 5, 5), src.Position())
	assert.Equal(t, math32.Vec3(1, 2, 3), src.Rotation())
	assert.Equal(t, []*Group{g}, src.Groups())
	assert.Equal(t, math32.Vec3(5, 5, 5), g.Center())
}

func TestSetPositionNotifies(t *testing.T) {
	it := newItem()
	it.SetPosition(math32.Vec3(1, 1, 1))

	a, na := countingGroup("a")
	b, nb := countingGroup("b")
	a.Add(it)
	b.Add(it)
	*na, *nb = 0, 0

	it.SetPosition(math32.Vec3(2, 2, 2))
	assert.Equal(t, 1, *na)
	assert.Equal(t, 1, *nb)

	it.SetPositionExcept(math32.Vec3(3, 3, 3), Except(a))
	assert.Equal(t, 1, *na)
	assert.Equal(t, 2, *nb)

	// a group the item is not in excludes nothing
	other := NewGroup("other")
	it.TranslateExcept(1, 0, 0, Except(other))
	assert.Equal(t, 2, *na)
	assert.Equal(t, 3, *nb)
	assert.Equal(t, math32.Vec3(4, 3, 3), b.Center())

	it.SetPositionExcept(math32.Vec3(0, 0, 0), Except(nil))
	assert.Equal(t, 3, *na)
}

func TestSetPositionNoGroups(t *testing.T) {
	it := newItem()
	_, n := countingGroup("unused")
	it.SetPosition(math32.Vec3(1, 0, 0))
	assert.Equal(t, 0, *n)
	assert.Equal(t, math32.Vec3(1, 0, 0), it.Position())
}

func TestRepelBy(t *testing.T) {
	c := math32.Vec3(1, 2, 3)
	it := newItem()
	it.SetPosition(c)
	it.RepelBy(c, 2)
	assert.Equal(t, c, it.Position())

	it.SetPosition(math32.Vec3(c.X+3, c.Y, c.Z))
	it.RepelBy(c, 2)
	tolassert.EqualVector3(t, math32.Vec3(c.X+5, c.Y, c.Z), it.Position(), tol)
	tolassert.EqualTol(t, 5, it.Position().DistanceTo(c), tol)

	it.RepelBy(c, -1)
	tolassert.EqualTol(t, 4, it.Position().DistanceTo(c), tol)
}

func TestRepelByNotifies(t *testing.T) {
	c := math32.Vec3(0, 0, 0)
	it := newItem()
	g, n := countingGroup("g")
	g.Add(it)
	*n = 0

	it.RepelBy(c, 1)
	assert.Equal(t, 0, *n)

	it.SetPosition(math32.Vec3(1, 0, 0))
	*n = 0
	it.RepelBy(c, 1)
	assert.Equal(t, 1, *n)
	tolassert.EqualVector3(t, math32.Vec3(2, 0, 0), g.Center(), tol)

	it.RepelByExcept(c, 1, Except(g))
	assert.Equal(t, 1, *n)
}

func TestRevolveAround(t *testing.T) {
	c := math32.Vec3(2, 3, 4)
	it := newItem()
	it.SetRotation(math32.Vec3(5, 6, 7))
	it.SetPosition(c.Add(math32.Vec3(1, 0, 0)))

	it.RevolveAround(c, 0, 0, 90)
	tolassert.EqualVector3(t, c.Add(math32.Vec3(0, 1, 0)), it.Position(), tol)
	assert.Equal(t, math32.Vec3(5, 6, 7), it.Rotation())

	it.RevolveAround(c, 90, 0, 0)
	tolassert.EqualVector3(t, c.Add(math32.Vec3(0, 0, 1)), it.Position(), tol)

	g, n := countingGroup("g")
	g.Add(it)
	*n = 0
	it.RevolveAround(c, 0, 90, 0)
	assert.Equal(t, 1, *n)
	tolassert.EqualVector3(t, c.Add(math32.Vec3(1, 0, 0)), g.Center(), tol)
}

func TestColor(t *testing.T) {
	it := newItem()
	it.SetReflectance(0.7)
	assert.Equal(t, float32(0.7), it.Reflectance())

	it.SetColor(1, 0, 0)
	assert.Equal(t, math32.Vec3(1, 0, 0), it.Color())
	assert.Equal(t, float32(0), it.Reflectance())

	mt := it.Mesh().Material()
	it.SetReflectance(0.3)
	assert.Same(t, mt, it.Mesh().Material())
	assert.Equal(t, math32.Vec3(1, 0, 0), it.Color())

	it.SetColorVector(math32.Vec3(0, 1, 0))
	assert.NotSame(t, mt, it.Mesh().Material())
	assert.Equal(t, float32(0), it.Reflectance())

	// the mesh is shared between clones
	cl := it.Clone()
	cl.SetColor(0, 0, 1)
	assert.Equal(t, math32.Vec3(0, 0, 1), it.Color())
}

func TestNilMesh(t *testing.T) {
	it := New(nil)
	if assert.NotNil(t, it.Mesh()) {
		assert.Equal(t, "", it.Mesh().Name)
	}
	assert.Equal(t, mesh.DefaultMaterial().Color, it.Color())
	assert.NotPanics(t, func() {
		it.SetColor(1, 0, 0).SetReflectance(0.25)
	})
	assert.Equal(t, math32.Vec3(1, 0, 0), it.Color())
	assert.Equal(t, float32(0.25), it.Reflectance())
	assert.Contains(t, it.String(), "pos: (0, 0, 0)")

	p := NewPosed(nil, 2, math32.Vector3{}, math32.Vec3(1, 2, 3))
	assert.NotNil(t, p.Mesh())
	assert.NotSame(t, it.Mesh(), p.Mesh())
	assert.Equal(t, math32.Vec3(1, 2, 3), p.Position())
}

type spinner struct {
	*Item
	step float32
}

func (s *spinner) Update() {
	s.Rotate(0, s.step, 0)
}

func TestUpdate(t *testing.T) {
	it := newItem()
	it.Update()
	assert.Equal(t, math32.Vector3{}, it.Rotation())

	var n Node = &spinner{Item: newItem(), step: 15}
	n.Update()
	n.Update()
	assert.Equal(t, math32.Vec3(0, 30, 0), n.AsItem().Rotation())
}
