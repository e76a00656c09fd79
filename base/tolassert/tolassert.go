// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality
// of float values within some level of tolerance.
package tolassert

import (
	"cogentcore.org/controls/math32"
	"github.com/stretchr/testify/assert"
)

// DefaultTol is the tolerance used by [Equal].
const DefaultTol = 1e-4

// EqualTol asserts that the given two float32 values are equal
// within the given tolerance.
func EqualTol(t assert.TestingT, expected, actual, tolerance float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, float64(expected), float64(actual), float64(tolerance), msgAndArgs...)
}

// Equal asserts that the given two float32 values are equal
// within [DefaultTol].
func Equal(t assert.TestingT, expected, actual float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, DefaultTol, msgAndArgs...)
}

// EqualVector asserts that the given two vectors are equal
// component-wise within [DefaultTol].
func EqualVector(t assert.TestingT, expected, actual math32.Vector2, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	okx := EqualTol(t, expected.X, actual.X, DefaultTol, msgAndArgs...)
	oky := EqualTol(t, expected.Y, actual.Y, DefaultTol, msgAndArgs...)
	return okx && oky
}

// EqualBox asserts that the given two boxes are equal
// component-wise within [DefaultTol].
func EqualBox(t assert.TestingT, expected, actual math32.Box2, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	okmin := EqualVector(t, expected.Min, actual.Min, msgAndArgs...)
	okmax := EqualVector(t, expected.Max, actual.Max, msgAndArgs...)
	return okmin && okmax
}
