// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and math package
// for the 2D geometry of controls.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// The scalar functions call through to chewxy/math32,
// which avoids float64 round trips.

const (
	Pi = math.Pi

	// DegToRadFactor is radians per degree.
	DegToRadFactor = Pi / 180
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad returns the given angle in radians.
func DegToRad(degrees float32) float32 { return degrees * DegToRadFactor }

// Signum returns -1, 0 or 1 by the sign of x.
func Signum(x float32) float32 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Round rounds half away from zero.
func Round(x float32) float32 { return math32.Round(x) }

func Sincos(x float32) (sin, cos float32) { return math32.Sincos(x) }

func Sqrt(x float32) float32 { return math32.Sqrt(x) }

func Pow(x, y float32) float32 { return math32.Pow(x, y) }

func Exp2(x float32) float32 { return math32.Exp2(x) }

func Log2(x float32) float32 { return math32.Log2(x) }

func Log10(x float32) float32 { return math32.Log10(x) }

func IsNaN(x float32) bool { return math32.IsNaN(x) }

// NaN returns a not-a-number value.
func NaN() float32 { return math32.NaN() }

// Lerp interpolates linearly from start (amount 0) to stop (amount 1).
func Lerp(start, stop, amount float32) float32 {
	return start + amount*(stop-start)
}

// Clamp returns x limited to the closed interval [lo, hi].
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	return min(max(x, lo), hi)
}
