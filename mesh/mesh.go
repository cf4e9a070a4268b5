// Copyright (c) 2024, The Embla3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides the appearance that scene items reference:
// a named [Mesh] holding the current [Material]. Vertex data and GPU
// upload live with the renderer, not here.
package mesh

// Mesh is the shared visual resource of one or more items.
// Items hold a pointer to it, so a material change made through
// any of them is seen by all of them.
type Mesh struct {
	// Name is the name of the mesh.
	Name string

	material *Material
}

// NewMesh returns a new [Mesh] with the given name and the [DefaultMaterial].
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name, material: DefaultMaterial()}
}

// Material returns the current material. The returned pointer is the
// live material, so field writes are seen by every item using this mesh.
// A zero Mesh gets a [DefaultMaterial] on first access.
func (ms *Mesh) Material() *Material {
	if ms.material == nil {
		ms.material = DefaultMaterial()
	}
	return ms.material
}

// SetMaterial replaces the material wholesale.
func (ms *Mesh) SetMaterial(mt *Material) *Mesh {
	ms.material = mt
	return ms
}
