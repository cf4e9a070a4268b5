// Copyright (c) 2024, The Embla3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides tolerance-based float assertions
// on top of testify's assert package.
package tolassert

import (
	"embla3d.dev/engine/math32"
	"github.com/stretchr/testify/assert"
)

// EqualTol asserts that expected and actual are within tol of each other.
func EqualTol(t assert.TestingT, expected, actual, tol float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, float64(expected), float64(actual), float64(tol), msgAndArgs...)
}

// EqualVector3 asserts that each component of actual is within tol of expected.
func EqualVector3(t assert.TestingT, expected, actual math32.Vector3, tol float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	ok := EqualTol(t, expected.X, actual.X, tol, msgAndArgs...)
	ok = EqualTol(t, expected.Y, actual.Y, tol, msgAndArgs...) && ok
	return EqualTol(t, expected.Z, actual.Z, tol, msgAndArgs...) && ok
}
