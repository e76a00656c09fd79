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

// XYPadState is the persistent state of an XY pad.
type XYPadState struct {

	// Control is the underlying interaction state,
	// with channel 0 for X and 1 for Y.
	Control Control
}

// NewXYPadState returns a new XY pad state with the given x and y params.
func NewXYPadState(x, y normal.Param) *XYPadState {
	return &XYPadState{Control: *NewControl(x, y)}
}

// X returns the current x value.
func (st *XYPadState) X() normal.Normal { return st.Control.Normal(0) }

// Y returns the current y value.
func (st *XYPadState) Y() normal.Normal { return st.Control.Normal(1) }

// SetX sets the x value without notifying.
func (st *XYPadState) SetX(n normal.Normal) { st.Control.SetNormal(0, n) }

// SetY sets the y value without notifying.
func (st *XYPadState) SetY(n normal.Normal) { st.Control.SetNormal(1, n) }

// IsDragging returns whether the pad is being dragged.
func (st *XYPadState) IsDragging() bool { return st.Control.IsDragging() }

// SetClickPolicy sets the multi-click policy of this pad.
func (st *XYPadState) SetClickPolicy(p events.ClickPolicy) { st.Control.ClickPolicy = &p }

// XYPad is a two dimensional control whose handle moves freely within
// its bounds, with x increasing to the right and y increasing upward.
// A double click resets both values.
type XYPad struct {

	// OnChange is called with both values whenever the user changes either.
	OnChange func(x, y normal.Normal)

	Sensitivity Sensitivity

	// SnapX and SnapY are optional ranges the values are snapped to.
	SnapX, SnapY normal.Range

	Disabled bool

	Sheet *styles.Sheet[styles.XYPad]

	state *XYPadState
}

// DefaultXYPadSensitivity returns the default sensitivity of XY pads,
// whose handle follows the cursor and which ignore the scroll wheel.
func DefaultXYPadSensitivity() Sensitivity {
	return Sensitivity{
		Scalar:         1,
		ModifierScalar: 0.02,
		ModifierKeys:   key.NewModifiers(key.Control),
	}
}

// NewXYPad returns a new XY pad over the given state.
func NewXYPad(st *XYPadState, onChange func(x, y normal.Normal)) *XYPad {
	return &XYPad{
		OnChange:    onChange,
		Sensitivity: DefaultXYPadSensitivity(),
		Sheet:       styles.XYPadSheet(),
		state:       st,
	}
}

// SetScalar sets the drag sensitivity.
func (xy *XYPad) SetScalar(v float32) *XYPad {
	xy.Sensitivity.Scalar = v
	return xy
}

// SetModifierScalar sets the multiplier for fine adjustment.
func (xy *XYPad) SetModifierScalar(v float32) *XYPad {
	xy.Sensitivity.ModifierScalar = v
	return xy
}

// SetModifierKeys sets the keys that enable fine adjustment.
func (xy *XYPad) SetModifierKeys(m key.Modifiers) *XYPad {
	xy.Sensitivity.ModifierKeys = m
	return xy
}

// SetSnap sets the ranges the x and y values are snapped to.
func (xy *XYPad) SetSnap(x, y normal.Range) *XYPad {
	xy.SnapX, xy.SnapY = x, y
	return xy
}

// SetDisabled sets whether the pad ignores events.
func (xy *XYPad) SetDisabled(b bool) *XYPad {
	xy.Disabled = b
	return xy
}

// SetSheet sets the style sheet.
func (xy *XYPad) SetSheet(sh *styles.Sheet[styles.XYPad]) *XYPad {
	xy.Sheet = sh
	return xy
}

// State returns the persistent state of the pad.
func (xy *XYPad) State() *XYPadState { return xy.state }

// HandleEvent handles the given event for the pad occupying the
// given bounds, calling OnChange if the values change. It returns
// whether the event was consumed.
func (xy *XYPad) HandleEvent(e *events.Event, bounds math32.Box2) bool {
	if xy.Disabled {
		return false
	}
	st := xy.state
	return st.Control.HandleEvent(e, bounds, PlanarAxis{}, &xy.Sensitivity, [2]normal.Range{xy.SnapX, xy.SnapY}, func() {
		if xy.OnChange != nil {
			xy.OnChange(st.X(), st.Y())
		}
	})
}

// Frame returns the resolved frame for drawing the pad in the given
// bounds with the cursor at the given position.
func (xy *XYPad) Frame(bounds math32.Box2, cursor math32.Vector2) *XYPadFrame {
	st := xy.state
	sts := hoverStates(bounds, cursor, st.IsDragging(), xy.Disabled)
	return &XYPadFrame{
		Frame: Frame{Bounds: bounds, Cursor: cursor, States: sts},
		X:     st.X(),
		Y:     st.Y(),
		Style: xy.Sheet.For(sts),
	}
}

// Draw returns the primitives for the pad drawn by the given renderer.
func (xy *XYPad) Draw(bounds math32.Box2, cursor math32.Vector2, r Renderer) paint.Primitive {
	return r.DrawXYPad(xy.Frame(bounds, cursor))
}
