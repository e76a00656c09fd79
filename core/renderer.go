// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/controls/marks"
	"cogentcore.org/controls/math32"
	"cogentcore.org/controls/normal"
	"cogentcore.org/controls/paint"
	"cogentcore.org/controls/styles"
	"cogentcore.org/controls/styles/states"
)

// Renderer draws controls from fully resolved frames. Each method
// returns the primitives for one control, which the host draws.
// [DefaultRenderer] is a complete implementation that hosts can use
// directly or wrap.
type Renderer interface {
	DrawLinear(f *LinearFrame) paint.Primitive
	DrawKnob(f *KnobFrame) paint.Primitive
	DrawXYPad(f *XYPadFrame) paint.Primitive
	DrawModRangeInput(f *DotFrame) paint.Primitive
}

// Frame is the state common to the frames of all controls.
type Frame struct {

	// Bounds are the layout bounds of the control.
	Bounds math32.Box2

	// Cursor is the current cursor position.
	Cursor math32.Vector2

	// States are the interaction states the style was resolved for.
	States states.States
}

// LinearFrame is everything needed to draw a horizontal or vertical slider.
type LinearFrame struct {
	Frame

	Vertical bool

	// Track is the span along which the center of the handle travels,
	// with the thickness of the rail across it.
	Track math32.Box2

	Normal normal.Normal

	// Bipolar is whether the value is filled from the center.
	Bipolar bool

	ModRanges [2]*normal.ModulationRange

	Style *styles.Slider

	// Ticks and Text are the cached geometry of the tick and text marks,
	// or empty if there are none.
	Ticks, Text *paint.Group
}

// HandleCenter returns the position of the center of the handle
// along the axis for the given normal.
func (f *LinearFrame) HandleCenter(n normal.Normal) float32 {
	if f.Vertical {
		return f.Track.ProjectY(n.Inv().Float32())
	}
	return f.Track.ProjectX(n.Float32())
}

// KnobFrame is everything needed to draw a knob.
type KnobFrame struct {
	Frame

	// Knob is the square the knob is drawn in, centered in the bounds.
	Knob math32.Box2

	Normal  normal.Normal
	Bipolar bool
	Angles  marks.AngleRange

	// Angle is the angle of the value, in radians.
	Angle float32

	ModRanges [2]*normal.ModulationRange

	Style *styles.Knob

	Ticks, Text *paint.Group
}

// XYPadFrame is everything needed to draw an XY pad.
type XYPadFrame struct {
	Frame

	X, Y normal.Normal

	Style *styles.XYPad
}

// Handle returns the position of the center of the handle.
func (f *XYPadFrame) Handle() math32.Vector2 {
	return math32.Vec2(f.Bounds.ProjectX(f.X.Float32()), f.Bounds.ProjectY(f.Y.Inv().Float32()))
}

// DotFrame is everything needed to draw a modulation range input.
type DotFrame struct {
	Frame

	Normal normal.Normal

	Style *styles.ModRangeInput
}

// hoverStates returns the states of a control for drawing.
func hoverStates(bounds math32.Box2, cursor math32.Vector2, dragging, disabled bool) states.States {
	var st states.States
	st.SetFlag(bounds.ContainsPoint(cursor), states.Hovered)
	st.SetFlag(dragging, states.Dragging)
	st.SetFlag(disabled, states.Disabled)
	return st
}
