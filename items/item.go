// Copyright (c) 2024, The Embla3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package items

import (
	"fmt"
	"slices"

	"embla3d.dev/engine/math32"
	"embla3d.dev/engine/mesh"
)

// Item is a positioned, renderable entity. It points to a shared
// [mesh.Mesh] for its appearance and has its own uniform scale,
// Euler rotation (in degrees, applied X then Y then Z) and translation.
//
// An item can be a member of any number of [Group]s. Membership is
// managed by the groups (see [Group.Add] and [Group.Remove]); the item
// only keeps the back references so that it can tell its groups when
// it moves.
type Item struct {
	mesh        *mesh.Mesh
	scale       float32
	rotation    math32.Vector3
	translation math32.Vector3

	// groups has no duplicates and does not own the groups.
	groups []*Group
}

// New returns a new [Item] using the given mesh, with scale 1
// and zero rotation and translation. A nil mesh is replaced by
// a new unnamed mesh with the default material.
func New(m *mesh.Mesh) *Item {
	return NewPosed(m, 1, math32.Vector3{}, math32.Vector3{})
}

// NewPosed returns a new [Item] using the given mesh and transform.
// A nil mesh is handled as in [New].
func NewPosed(m *mesh.Mesh, scale float32, rotation, position math32.Vector3) *Item {
	if m == nil {
		m = mesh.NewMesh("")
	}
	return &Item{mesh: m, scale: scale, rotation: rotation, translation: position}
}

// Clone returns a copy of the item that shares its mesh
// but belongs to no groups.
func (it *Item) Clone() *Item {
	return &Item{
		mesh:        it.mesh,
		scale:       it.scale,
		rotation:    it.rotation,
		translation: it.translation,
	}
}

// AsItem returns the item itself; it implements [Node].
func (it *Item) AsItem() *Item {
	return it
}

// Update is the per-tick hook of [Node]. It does nothing on a plain item;
// types that embed *Item override it.
func (it *Item) Update() {}

func (it *Item) String() string {
	return fmt.Sprintf("Item{%s pos: %v rot: %v scale: %v}", it.mesh.Name, it.translation, it.rotation, it.scale)
}

// Mesh returns the shared appearance of the item.
func (it *Item) Mesh() *mesh.Mesh {
	return it.mesh
}

// WorldMatrix returns the transform from the item's local space to
// world space: T * Rx * Ry * Rz * S. Scale and rotation happen about the
// item's own origin, which then lands on the translation.
func (it *Item) WorldMatrix() *math32.Matrix4 {
	return math32.Identity4().
		Translate(it.translation).
		RotateX(math32.DegToRad(it.rotation.X)).
		RotateY(math32.DegToRad(it.rotation.Y)).
		RotateZ(math32.DegToRad(it.rotation.Z)).
		Scale(it.scale)
}

// Scale returns the uniform scale.
func (it *Item) Scale() float32 {
	return it.scale
}

// SetScale sets the uniform scale.
func (it *Item) SetScale(v float32) *Item {
	it.scale = v
	return it
}

// Rotation returns the Euler rotation in degrees.
func (it *Item) Rotation() math32.Vector3 {
	return it.rotation
}

// SetRotation sets the Euler rotation in degrees.
func (it *Item) SetRotation(v math32.Vector3) *Item {
	it.rotation = v
	return it
}

// Rotate adds the given degrees to the rotation.
// Angles are not wrapped.
func (it *Item) Rotate(dx, dy, dz float32) *Item {
	return it.SetRotation(it.rotation.Add(math32.Vec3(dx, dy, dz)))
}

// Position returns the world-space translation.
func (it *Item) Position() math32.Vector3 {
	return it.translation
}

// SetPosition sets the translation and updates the center of every
// group the item belongs to.
func (it *Item) SetPosition(pos math32.Vector3) *Item {
	return it.SetPositionExcept(pos, NoExclude)
}

// SetPositionExcept sets the translation and updates the center of every
// group the item belongs to, except the excluded one.
func (it *Item) SetPositionExcept(pos math32.Vector3, ex Exclude) *Item {
	it.translation = pos
	for _, g := range it.groups {
		if !ex.Excludes(g) {
			g.UpdateCenter()
		}
	}
	return it
}

// Translate moves the item by the given offset. See [Item.SetPosition].
func (it *Item) Translate(dx, dy, dz float32) *Item {
	return it.TranslateExcept(dx, dy, dz, NoExclude)
}

// TranslateExcept moves the item by the given offset.
// See [Item.SetPositionExcept].
func (it *Item) TranslateExcept(dx, dy, dz float32, ex Exclude) *Item {
	return it.SetPositionExcept(it.translation.Add(math32.Vec3(dx, dy, dz)), ex)
}

// RevolveAround rotates the position of the item about center by the
// given degrees around X, then Y, then Z. The item's own rotation is
// not changed. Groups are notified as in [Item.SetPosition].
func (it *Item) RevolveAround(center math32.Vector3, degX, degY, degZ float32) *Item {
	return it.RevolveAroundExcept(center, degX, degY, degZ, NoExclude)
}

// RevolveAroundExcept is [Item.RevolveAround] with a group exclusion.
func (it *Item) RevolveAroundExcept(center math32.Vector3, degX, degY, degZ float32, ex Exclude) *Item {
	offset := math32.Vector4FromVector3(center, 0)
	pos := math32.Vector4FromVector3(it.translation, 1).Sub(offset)
	rot := math32.Identity4().
		RotateX(math32.DegToRad(degX)).
		RotateY(math32.DegToRad(degY)).
		RotateZ(math32.DegToRad(degZ))
	pos = pos.MulMatrix4(rot).Add(offset)
	return it.SetPositionExcept(pos.Vector3(), ex)
}

// RepelBy pushes the item away from center along the line joining them,
// so that its distance to center grows by dist (a negative dist pulls it
// in). When the item sits exactly on center there is no direction to
// push along and nothing happens. Groups are notified as in
// [Item.SetPosition] when the item moves.
func (it *Item) RepelBy(center math32.Vector3, dist float32) *Item {
	return it.RepelByExcept(center, dist, NoExclude)
}

// RepelByExcept is [Item.RepelBy] with a group exclusion.
func (it *Item) RepelByExcept(center math32.Vector3, dist float32, ex Exclude) *Item {
	dif := it.translation.Sub(center)
	norm := dif.Length()
	if norm == 0 {
		return it
	}
	return it.SetPositionExcept(center.Add(dif.MulScalar(dist/norm+1)), ex)
}

// Groups returns the groups the item belongs to, in the order it joined them.
// The slice is a copy; use [Group.Add] and [Group.Remove] to change membership.
func (it *Item) Groups() []*Group {
	return slices.Clone(it.groups)
}

// InGroup returns whether the item belongs to g.
func (it *Item) InGroup(g *Group) bool {
	return slices.Contains(it.groups, g)
}

// addToGroup records g on the item side only.
func (it *Item) addToGroup(g *Group) bool {
	if it.InGroup(g) {
		return false
	}
	it.groups = append(it.groups, g)
	return true
}

// removeFromGroup drops g on the item side only.
func (it *Item) removeFromGroup(g *Group) bool {
	i := slices.Index(it.groups, g)
	if i < 0 {
		return false
	}
	it.groups = slices.Delete(it.groups, i, i+1)
	return true
}

// SetColor replaces the mesh material with a new one of the given color
// and zero reflectance. The mesh is shared, so every item using it changes.
func (it *Item) SetColor(r, g, b float32) *Item {
	return it.SetColorVector(math32.Vec3(r, g, b))
}

// SetColorVector is [Item.SetColor] taking the color as a vector.
func (it *Item) SetColorVector(color math32.Vector3) *Item {
	it.mesh.SetMaterial(mesh.NewMaterial(color, 0))
	return it
}

// Color returns the color of the current material.
func (it *Item) Color() math32.Vector3 {
	return it.mesh.Material().Color
}

// SetReflectance sets the reflectance of the current material in place,
// keeping its color.
func (it *Item) SetReflectance(v float32) *Item {
	it.mesh.Material().Reflectance = v
	return it
}

// Reflectance returns the reflectance of the current material.
func (it *Item) Reflectance() float32 {
	return it.mesh.Material().Reflectance
}
