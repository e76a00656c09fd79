// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/controls/events"
	"cogentcore.org/controls/events/key"
	"cogentcore.org/controls/math32"
	"cogentcore.org/controls/normal"
	"cogentcore.org/controls/paint"
	"cogentcore.org/controls/styles"
)

// ModRangeInputState is the persistent state of a modulation range input.
type ModRangeInputState struct {
	ValueState
}

// NewModRangeInputState returns a new modulation range input state
// with the given value and default.
func NewModRangeInputState(p normal.Param) *ModRangeInputState {
	return &ModRangeInputState{ValueState: newValueState(p)}
}

// ModRangeInput is a small dot that is dragged like a knob to set the
// amount of a modulation, typically the end of a [normal.ModulationRange]
// drawn over another control.
type ModRangeInput struct {
	OnChange func(n normal.Normal)

	Sensitivity Sensitivity

	Snap normal.Range

	Disabled bool

	Sheet *styles.Sheet[styles.ModRangeInput]

	state *ModRangeInputState
}

// DefaultModRangeInputSensitivity returns the default sensitivity of
// modulation range inputs, half that of a knob.
func DefaultModRangeInputSensitivity() Sensitivity {
	return Sensitivity{
		Scalar:         0.00385 / 2,
		WheelScalar:    0.005,
		ModifierScalar: 0.02,
		ModifierKeys:   key.NewModifiers(key.Control),
	}
}

// NewModRangeInput returns a new modulation range input over the given state.
func NewModRangeInput(st *ModRangeInputState, onChange func(n normal.Normal)) *ModRangeInput {
	return &ModRangeInput{
		OnChange:    onChange,
		Sensitivity: DefaultModRangeInputSensitivity(),
		Sheet:       styles.ModRangeInputSheet(),
		state:       st,
	}
}

// SetScalar sets the drag sensitivity.
func (mi *ModRangeInput) SetScalar(v float32) *ModRangeInput {
	mi.Sensitivity.Scalar = v
	return mi
}

// SetWheelScalar sets the change per scroll wheel line; 0 disables the wheel.
func (mi *ModRangeInput) SetWheelScalar(v float32) *ModRangeInput {
	mi.Sensitivity.WheelScalar = v
	return mi
}

// SetModifierScalar sets the multiplier for fine adjustment.
func (mi *ModRangeInput) SetModifierScalar(v float32) *ModRangeInput {
	mi.Sensitivity.ModifierScalar = v
	return mi
}

// SetModifierKeys sets the keys that enable fine adjustment.
func (mi *ModRangeInput) SetModifierKeys(m key.Modifiers) *ModRangeInput {
	mi.Sensitivity.ModifierKeys = m
	return mi
}

// SetSnap sets the range the value is snapped to.
func (mi *ModRangeInput) SetSnap(r normal.Range) *ModRangeInput {
	mi.Snap = r
	return mi
}

// SetDisabled sets whether the input ignores events.
func (mi *ModRangeInput) SetDisabled(b bool) *ModRangeInput {
	mi.Disabled = b
	return mi
}

// SetSheet sets the style sheet.
func (mi *ModRangeInput) SetSheet(sh *styles.Sheet[styles.ModRangeInput]) *ModRangeInput {
	mi.Sheet = sh
	return mi
}

// State returns the persistent state of the input.
func (mi *ModRangeInput) State() *ModRangeInputState { return mi.state }

// HandleEvent handles the given event for the input occupying the
// given bounds, calling OnChange if the value changes. It returns
// whether the event was consumed.
func (mi *ModRangeInput) HandleEvent(e *events.Event, bounds math32.Box2) bool {
	if mi.Disabled {
		return false
	}
	st := mi.state
	return st.Control.HandleEvent(e, bounds, RadialAxis{}, &mi.Sensitivity, [2]normal.Range{mi.Snap}, func() {
		if mi.OnChange != nil {
			mi.OnChange(st.Normal())
		}
	})
}

// Frame returns the resolved frame for drawing the input in the given
// bounds with the cursor at the given position.
func (mi *ModRangeInput) Frame(bounds math32.Box2, cursor math32.Vector2) *DotFrame {
	st := mi.state
	sts := hoverStates(bounds, cursor, st.IsDragging(), mi.Disabled)
	return &DotFrame{
		Frame:  Frame{Bounds: bounds, Cursor: cursor, States: sts},
		Normal: st.Normal(),
		Style:  mi.Sheet.For(sts),
	}
}

// Draw returns the primitives for the input drawn by the given renderer.
func (mi *ModRangeInput) Draw(bounds math32.Box2, cursor math32.Vector2, r Renderer) paint.Primitive {
	return r.DrawModRangeInput(mi.Frame(bounds, cursor))
}
