// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normal

import (
	"fmt"

	"cogentcore.org/controls/math32"
	"golang.org/x/exp/constraints"
)

// Range is a monotonic converter between raw parameter units and [Normal].
// Out-of-range raw values are clamped, never rejected. Min maps to 0 and
// Max maps to 1.
type Range interface {

	// Normalize converts a raw value to a [Normal].
	Normalize(raw float32) Normal

	// Denormalize converts a [Normal] to a raw value.
	Denormalize(n Normal) float32

	// Snapped rounds n to the nearest value representable by the range
	// and returns it as a [Normal]. Continuous ranges without a step
	// return n unchanged.
	Snapped(n Normal) Normal

	// Bipolar returns whether the range treats its center as a semantic zero.
	// It only affects rendering.
	Bipolar() bool
}

// IntRange is a [Range] over the integers from Min to Max inclusive.
// The raw domain is a finite set of evenly spaced points.
type IntRange struct {
	min, max int
	span     float32
	bipolar  bool
}

// NewIntRange returns a new [IntRange]. It panics if min >= max.
func NewIntRange(min, max int) IntRange {
	if min >= max {
		panic(fmt.Sprintf("normal.NewIntRange: min %d must be less than max %d", min, max))
	}
	return IntRange{min: min, max: max, span: float32(max - min)}
}

// NewIntRangeBipolar returns a new bipolar [IntRange], whose center
// is rendered as a semantic zero. It panics if min >= max.
func NewIntRangeBipolar(min, max int) IntRange {
	r := NewIntRange(min, max)
	r.bipolar = true
	return r
}

// Min returns the minimum raw value.
func (r IntRange) Min() int { return r.min }

// Max returns the maximum raw value.
func (r IntRange) Max() int { return r.max }

// ToNormal converts an integer value to a [Normal], clamping it to the range.
func (r IntRange) ToNormal(value int) Normal {
	value = math32.Clamp(value, r.min, r.max)
	return New(float32(value-r.min) / r.span)
}

// FromNormal converts a [Normal] to the nearest integer value in the range.
func (r IntRange) FromNormal(n Normal) int {
	return r.min + int(math32.Round(n.v*r.span))
}

// NormalParam returns a [Param] for the given integer value and default.
func (r IntRange) NormalParam(value, def int) Param {
	return NewParamWithDefault(r.ToNormal(value), r.ToNormal(def))
}

func (r IntRange) Normalize(raw float32) Normal {
	return New((raw - float32(r.min)) / r.span)
}

func (r IntRange) Denormalize(n Normal) float32 {
	return float32(r.FromNormal(n))
}

func (r IntRange) Snapped(n Normal) Normal {
	return r.ToNormal(r.FromNormal(n))
}

func (r IntRange) Bipolar() bool { return r.bipolar }

// FromInt converts a value of any integer type to a [Normal] in the given range.
func FromInt[T constraints.Integer](r IntRange, value T) Normal {
	return r.ToNormal(int(value))
}

// ToInt converts a [Normal] to the nearest value of the given
// integer type in the range.
func ToInt[T constraints.Integer](r IntRange, n Normal) T {
	return T(r.FromNormal(n))
}

// FloatRange is a linear [Range] over a continuous interval,
// with an optional step for snapping.
type FloatRange struct {
	min, max float32
	step     float32
	bipolar  bool
}

// NewFloatRange returns a new [FloatRange]. It panics if min >= max.
func NewFloatRange(min, max float32) FloatRange {
	if !(min < max) {
		panic(fmt.Sprintf("normal.NewFloatRange: min %g must be less than max %g", min, max))
	}
	return FloatRange{min: min, max: max}
}

// NewFloatRangeBipolar returns a new bipolar [FloatRange], whose center
// is rendered as a semantic zero. It panics if min >= max.
func NewFloatRangeBipolar(min, max float32) FloatRange {
	r := NewFloatRange(min, max)
	r.bipolar = true
	return r
}

// DefaultFloatRange returns the range from 0 to 1.
func DefaultFloatRange() FloatRange { return NewFloatRange(0, 1) }

// DefaultBipolar returns the bipolar range from -1 to 1.
func DefaultBipolar() FloatRange { return NewFloatRangeBipolar(-1, 1) }

// WithStep returns a copy of the range that snaps to multiples of step
// measured from min. A step <= 0 disables snapping.
func (r FloatRange) WithStep(step float32) FloatRange {
	r.step = max(step, 0)
	return r
}

// Min returns the minimum raw value.
func (r FloatRange) Min() float32 { return r.min }

// Max returns the maximum raw value.
func (r FloatRange) Max() float32 { return r.max }

// Step returns the snapping step, which is 0 when snapping is off.
func (r FloatRange) Step() float32 { return r.step }

// ToNormal converts a raw value to a [Normal], clamping it to the range.
func (r FloatRange) ToNormal(value float32) Normal {
	return New((value - r.min) / (r.max - r.min))
}

// FromNormal converts a [Normal] to a raw value.
func (r FloatRange) FromNormal(n Normal) float32 {
	return r.min + n.v*(r.max-r.min)
}

// NormalParam returns a [Param] for the given raw value and default.
func (r FloatRange) NormalParam(value, def float32) Param {
	return NewParamWithDefault(r.ToNormal(value), r.ToNormal(def))
}

func (r FloatRange) Normalize(raw float32) Normal { return r.ToNormal(raw) }

func (r FloatRange) Denormalize(n Normal) float32 { return r.FromNormal(n) }

func (r FloatRange) Snapped(n Normal) Normal {
	if r.step <= 0 {
		return n
	}
	steps := math32.Round((r.FromNormal(n) - r.min) / r.step)
	return r.ToNormal(math32.Clamp(r.min+steps*r.step, r.min, r.max))
}

func (r FloatRange) Bipolar() bool { return r.bipolar }
