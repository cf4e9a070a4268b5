// Copyright (c) 2024, The Embla3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"image/color"

	"embla3d.dev/engine/math32"
)

// Material describes the surface properties of a mesh:
// a base color and a specular reflectance factor.
type Material struct {

	// Color is the main color of the surface, with each component in [0, 1].
	Color math32.Vector3

	// Reflectance is the specular reflectiveness factor: how much the surface
	// shines back directional light. 0 means a fully diffuse surface.
	Reflectance float32
}

// NewMaterial returns a new [Material] with the given color and reflectance.
func NewMaterial(color math32.Vector3, reflectance float32) *Material {
	return &Material{Color: color, Reflectance: reflectance}
}

// DefaultMaterial returns the material that new meshes start with:
// a mid gray with no reflectance.
func DefaultMaterial() *Material {
	return NewMaterial(math32.Vec3(0.5, 0.5, 0.5), 0)
}

// RGBA returns the material color as an opaque [color.RGBA],
// clamping each component to [0, 1].
func (mt *Material) RGBA() color.RGBA {
	return color.RGBA{channel(mt.Color.X), channel(mt.Color.Y), channel(mt.Color.Z), 255}
}

func channel(v float32) uint8 {
	return uint8(math32.Max(0, math32.Min(1, v))*255 + 0.5)
}

func (mt *Material) String() string {
	return fmt.Sprintf("Material{Color: %v, Reflectance: %v}", mt.Color, mt.Reflectance)
}
