// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package normal provides the normalized value domain shared by all controls:
// the [Normal] type, which is a value clamped to [0, 1], parameters holding a
// value and a default, and [Range] converters between raw parameter units and
// normals.
package normal

import (
	"fmt"

	"cogentcore.org/controls/math32"
)

// Normal is a value clamped to the closed interval [0, 1].
// It represents the position of a parameter along its range,
// independent of units. The zero value is 0.
type Normal struct {
	v float32
}

// New returns a new [Normal] from the given fraction,
// clamping it to [0, 1]. NaN maps to 0.
func New(f float32) Normal {
	if math32.IsNaN(f) {
		return Normal{}
	}
	return Normal{math32.Clamp(f, 0, 1)}
}

// Min returns the [Normal] with value 0.
func Min() Normal { return Normal{0} }

// Max returns the [Normal] with value 1.
func Max() Normal { return Normal{1} }

// Center returns the [Normal] with value 0.5.
func Center() Normal { return Normal{0.5} }

// Float32 returns the value as a float32 in [0, 1].
func (n Normal) Float32() float32 { return n.v }

// Inv returns 1 - n.
func (n Normal) Inv() Normal { return Normal{1 - n.v} }

// Add returns n + delta, clamped to [0, 1].
func (n Normal) Add(delta float32) Normal { return New(n.v + delta) }

// Scale returns n scaled by the given length: the position
// of n measured from the start of a span of that length.
func (n Normal) Scale(length float32) float32 { return n.v * length }

// ScaleInv returns (1 - n) scaled by the given length: the position
// of n measured from the end of a span of that length.
func (n Normal) ScaleInv(length float32) float32 { return (1 - n.v) * length }

func (n Normal) String() string {
	return fmt.Sprintf("%g", n.v)
}

// Param is a parameter that contains a normalized Value and a Default.
// Default is read by reset gestures such as a double click.
type Param struct {

	// Value is the current value of the parameter.
	Value Normal

	// Default is the value the parameter returns to on reset.
	Default Normal
}

// NewParam returns a new [Param] with the given value
// as both its value and default.
func NewParam(value Normal) Param {
	return Param{Value: value, Default: value}
}

// NewParamWithDefault returns a new [Param] with the given value and default.
func NewParamWithDefault(value, def Normal) Param {
	return Param{Value: value, Default: def}
}

// Reset sets the value to the default.
func (p *Param) Reset() {
	p.Value = p.Default
}

// ModulationRange is an auxiliary pair of normals rendered as a secondary
// marker over a control, representing an externally driven modulation
// amount layered visually over the base value. Controls never mutate it.
type ModulationRange struct {

	// Start is where the modulation begins.
	Start Normal

	// End is where the modulation ends. It may be below Start.
	End Normal

	// FilledVisible is whether the filled portion between
	// Start and End is drawn.
	FilledVisible bool
}

// NewModulationRange returns a new visible [ModulationRange].
func NewModulationRange(start, end Normal) ModulationRange {
	return ModulationRange{Start: start, End: end, FilledVisible: true}
}

// Ordered returns the start and end of the range in ascending order.
func (mr ModulationRange) Ordered() (lo, hi Normal) {
	if mr.End.v < mr.Start.v {
		return mr.End, mr.Start
	}
	return mr.Start, mr.End
}

// IsReversed returns whether End is below Start.
func (mr ModulationRange) IsReversed() bool {
	return mr.End.v < mr.Start.v
}
