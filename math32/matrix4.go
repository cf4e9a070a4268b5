// Copyright (c) 2024, The Embla3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Embla3D functionality.

package math32

import "fmt"

// Matrix4 is a 4x4 homogeneous transform stored in column-major order.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// Set sets all the elements of this matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) {
	m[0], m[4], m[8], m[12] = n11, n12, n13, n14
	m[1], m[5], m[9], m[13] = n21, n22, n23, n24
	m[2], m[6], m[10], m[14] = n31, n32, n33, n34
	m[3], m[7], m[11], m[15] = n41, n42, n43, n44
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetTranslation sets this matrix to a translation matrix from the specified x, y and z values.
func (m *Matrix4) SetTranslation(x, y, z float32) {
	m.Set(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// SetRotationX sets this matrix to a rotation matrix of angle theta
// (in radians) around the X axis.
func (m *Matrix4) SetRotationX(theta float32) {
	s, c := Sincos(theta)
	m.Set(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// SetRotationY sets this matrix to a rotation matrix of angle theta
// (in radians) around the Y axis.
func (m *Matrix4) SetRotationY(theta float32) {
	s, c := Sincos(theta)
	m.Set(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// SetRotationZ sets this matrix to a rotation matrix of angle theta
// (in radians) around the Z axis.
func (m *Matrix4) SetRotationZ(theta float32) {
	s, c := Sincos(theta)
	m.Set(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetScale sets this matrix to a scale transformation matrix
// using the specified x, y and z values.
func (m *Matrix4) SetScale(x, y, z float32) {
	m.Set(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// SetMulMatrices sets this matrix to a * b.
// It is safe for m to be a or b.
func (m *Matrix4) SetMulMatrices(a, b *Matrix4) {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	*m = r
}

// Mul returns this matrix times other matrix (this matrix is unchanged).
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.SetMulMatrices(m, other)
	return nm
}

// SetMul sets this matrix to this matrix times other.
func (m *Matrix4) SetMul(other *Matrix4) {
	m.SetMulMatrices(m, other)
}

// Translate post-multiplies this matrix by a translation of v and returns m
// for chaining.
func (m *Matrix4) Translate(v Vector3) *Matrix4 {
	var t Matrix4
	t.SetTranslation(v.X, v.Y, v.Z)
	m.SetMul(&t)
	return m
}

// RotateX post-multiplies this matrix by a rotation of theta radians
// about the X axis and returns m for chaining.
func (m *Matrix4) RotateX(theta float32) *Matrix4 {
	var r Matrix4
	r.SetRotationX(theta)
	m.SetMul(&r)
	return m
}

// RotateY post-multiplies this matrix by a rotation of theta radians
// about the Y axis and returns m for chaining.
func (m *Matrix4) RotateY(theta float32) *Matrix4 {
	var r Matrix4
	r.SetRotationY(theta)
	m.SetMul(&r)
	return m
}

// RotateZ post-multiplies this matrix by a rotation of theta radians
// about the Z axis and returns m for chaining.
func (m *Matrix4) RotateZ(theta float32) *Matrix4 {
	var r Matrix4
	r.SetRotationZ(theta)
	m.SetMul(&r)
	return m
}

// Scale post-multiplies this matrix by a uniform scale of s on all
// three axes and returns m for chaining.
func (m *Matrix4) Scale(s float32) *Matrix4 {
	var sc Matrix4
	sc.SetScale(s, s, s)
	m.SetMul(&sc)
	return m
}

// Translation returns the translation part of the matrix.
func (m *Matrix4) Translation() Vector3 {
	return Vector3{m[12], m[13], m[14]}
}

func (m *Matrix4) String() string {
	return fmt.Sprintf("[%v %v %v %v; %v %v %v %v; %v %v %v %v; %v %v %v %v]",
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15])
}
