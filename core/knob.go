// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/controls/events"
	"cogentcore.org/controls/events/key"
	"cogentcore.org/controls/marks"
	"cogentcore.org/controls/math32"
	"cogentcore.org/controls/normal"
	"cogentcore.org/controls/paint"
	"cogentcore.org/controls/styles"
)

// KnobState is the persistent state of a knob.
type KnobState struct {
	ValueState

	ticks, text marks.Cache
}

// NewKnobState returns a new knob state with the given value and default.
func NewKnobState(p normal.Param) *KnobState {
	return &KnobState{ValueState: newValueState(p)}
}

// Knob is a rotary control, dragged vertically (and optionally
// horizontally) by pixels. Its value is drawn as an angle within
// its Angles.
type Knob struct {
	OnChange func(n normal.Normal)

	Sensitivity Sensitivity

	// Horizontal is whether horizontal drags also turn the knob.
	Horizontal bool

	// Angles is the range of angles the knob turns through.
	Angles marks.AngleRange

	Ticks *marks.TickGroup
	Text  *marks.TextGroup

	ModRanges [2]*normal.ModulationRange

	Snap normal.Range

	Bipolar bool

	Disabled bool

	Sheet *styles.Sheet[styles.Knob]

	state *KnobState
}

// DefaultKnobSensitivity returns the default sensitivity of knobs,
// which turn through their full range in about 260 pixels.
func DefaultKnobSensitivity() Sensitivity {
	return Sensitivity{
		Scalar:         0.00385,
		WheelScalar:    0.01,
		ModifierScalar: 0.02,
		ModifierKeys:   key.NewModifiers(key.Control),
	}
}

// NewKnob returns a new knob over the given state.
func NewKnob(st *KnobState, onChange func(n normal.Normal)) *Knob {
	return &Knob{
		OnChange:    onChange,
		Sensitivity: DefaultKnobSensitivity(),
		Angles:      marks.DefaultAngleRange(),
		Sheet:       styles.KnobSheet(),
		state:       st,
	}
}

// SetScalar sets the drag sensitivity.
func (kn *Knob) SetScalar(v float32) *Knob {
	kn.Sensitivity.Scalar = v
	return kn
}

// SetWheelScalar sets the change per scroll wheel line; 0 disables the wheel.
func (kn *Knob) SetWheelScalar(v float32) *Knob {
	kn.Sensitivity.WheelScalar = v
	return kn
}

// SetModifierScalar sets the multiplier for fine adjustment.
func (kn *Knob) SetModifierScalar(v float32) *Knob {
	kn.Sensitivity.ModifierScalar = v
	return kn
}

// SetModifierKeys sets the keys that enable fine adjustment.
func (kn *Knob) SetModifierKeys(m key.Modifiers) *Knob {
	kn.Sensitivity.ModifierKeys = m
	return kn
}

// SetHorizontal sets whether horizontal drags also turn the knob.
func (kn *Knob) SetHorizontal(b bool) *Knob {
	kn.Horizontal = b
	return kn
}

// SetAngles sets the range of angles the knob turns through.
func (kn *Knob) SetAngles(ar marks.AngleRange) *Knob {
	kn.Angles = ar
	return kn
}

// SetTicks sets the tick marks around the knob.
func (kn *Knob) SetTicks(g *marks.TickGroup) *Knob {
	kn.Ticks = g
	return kn
}

// SetText sets the text marks around the knob.
func (kn *Knob) SetText(g *marks.TextGroup) *Knob {
	kn.Text = g
	return kn
}

// SetModRange sets the first modulation range.
func (kn *Knob) SetModRange(mr *normal.ModulationRange) *Knob {
	kn.ModRanges[0] = mr
	return kn
}

// SetModRange2 sets the second modulation range.
func (kn *Knob) SetModRange2(mr *normal.ModulationRange) *Knob {
	kn.ModRanges[1] = mr
	return kn
}

// SetBipolar sets whether the value arc is filled from the center.
func (kn *Knob) SetBipolar(b bool) *Knob {
	kn.Bipolar = b
	return kn
}

// SetDisabled sets whether the knob ignores events.
func (kn *Knob) SetDisabled(b bool) *Knob {
	kn.Disabled = b
	return kn
}

// SetSheet sets the style sheet.
func (kn *Knob) SetSheet(sh *styles.Sheet[styles.Knob]) *Knob {
	kn.Sheet = sh
	return kn
}

// SetSnap sets the range values are snapped to, and whether the
// value is bipolar from it.
func (kn *Knob) SetSnap(r normal.Range) *Knob {
	kn.Snap = r
	kn.Bipolar = r != nil && r.Bipolar()
	return kn
}

// State returns the persistent state of the knob.
func (kn *Knob) State() *KnobState { return kn.state }

// Angle returns the angle of the given normal, in radians.
func (kn *Knob) Angle(n normal.Normal) float32 {
	return kn.Angles.Angle(n)
}

// HandleEvent handles the given event for the knob occupying the
// given bounds, calling OnChange if the value changes. It returns
// whether the event was consumed.
func (kn *Knob) HandleEvent(e *events.Event, bounds math32.Box2) bool {
	if kn.Disabled {
		return false
	}
	st := kn.state
	return st.Control.HandleEvent(e, bounds, RadialAxis{Horizontal: kn.Horizontal}, &kn.Sensitivity, [2]normal.Range{kn.Snap}, func() {
		if kn.OnChange != nil {
			kn.OnChange(st.Normal())
		}
	})
}

// knobSquare returns the largest square centered in the bounds.
func knobSquare(bounds math32.Box2) math32.Box2 {
	c := bounds.Center()
	r := min(bounds.Width(), bounds.Height()) / 2
	return math32.B2(c.X-r, c.Y-r, c.X+r, c.Y+r)
}

// Frame returns the resolved frame for drawing the knob in the given
// bounds with the cursor at the given position.
func (kn *Knob) Frame(bounds math32.Box2, cursor math32.Vector2) *KnobFrame {
	st := kn.state
	sts := hoverStates(bounds, cursor, st.IsDragging(), kn.Disabled)
	s := kn.Sheet.For(sts)
	n := st.Normal()
	f := &KnobFrame{
		Frame:     Frame{Bounds: bounds, Cursor: cursor, States: sts},
		Knob:      knobSquare(bounds),
		Normal:    n,
		Bipolar:   kn.Bipolar,
		Angles:    kn.Angles,
		Angle:     kn.Angle(n),
		ModRanges: kn.ModRanges,
		Style:     s,
	}
	f.Ticks = marks.TicksRadial(f.Knob, kn.Ticks, &s.Ticks, s.TickPlacement, false, kn.Angles, &st.ticks)
	f.Text = marks.TextRadial(f.Knob, kn.Text, &s.Text, s.TextPlacement, false, kn.Angles, &st.text)
	return f
}

// Draw returns the primitives for the knob drawn by the given renderer.
func (kn *Knob) Draw(bounds math32.Box2, cursor math32.Vector2, r Renderer) paint.Primitive {
	return r.DrawKnob(kn.Frame(bounds, cursor))
}
