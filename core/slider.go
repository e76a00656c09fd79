// Copyright (c) 2018, Cogent Core. All rights reserved.
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

// SliderState is the persistent state of a horizontal or vertical slider.
type SliderState struct {
	ValueState

	ticks, text marks.Cache
}

// NewSliderState returns a new slider state with the given value and default.
func NewSliderState(p normal.Param) *SliderState {
	return &SliderState{ValueState: newValueState(p)}
}

// Slider is a horizontal or vertical slider with a handle that is dragged
// along a rail. A Slider is a light configuration that is typically made
// anew each frame over a persistent [SliderState].
type Slider struct {

	// Vertical is whether the slider slides vertically.
	Vertical bool

	// OnChange is called with the new value whenever the user changes it.
	OnChange func(n normal.Normal)

	Sensitivity Sensitivity

	// Ticks are the optional tick marks along the rail.
	Ticks *marks.TickGroup

	// Text are the optional text marks along the rail.
	Text *marks.TextGroup

	// ModRanges are up to two optional modulation ranges,
	// drawn if they are FilledVisible.
	ModRanges [2]*normal.ModulationRange

	// Snap is an optional range that values are snapped to.
	Snap normal.Range

	// Bipolar is whether the value is filled from the center.
	Bipolar bool

	// Disabled sliders ignore all events.
	Disabled bool

	Sheet *styles.Sheet[styles.Slider]

	state *SliderState
}

// DefaultSliderSensitivity returns the default sensitivity of sliders:
// a drag across the full bounds moves the value by slightly less than
// the whole range, so the handle lags the cursor slightly.
func DefaultSliderSensitivity() Sensitivity {
	return Sensitivity{
		Scalar:         0.9575,
		WheelScalar:    0.01,
		ModifierScalar: 0.02,
		ModifierKeys:   key.NewModifiers(key.Control),
	}
}

func newSlider(st *SliderState, vertical bool, onChange func(n normal.Normal)) *Slider {
	return &Slider{
		Vertical:    vertical,
		OnChange:    onChange,
		Sensitivity: DefaultSliderSensitivity(),
		Sheet:       styles.SliderSheet(),
		state:       st,
	}
}

// NewHSlider returns a new horizontal slider over the given state.
func NewHSlider(st *SliderState, onChange func(n normal.Normal)) *Slider {
	return newSlider(st, false, onChange)
}

// NewVSlider returns a new vertical slider over the given state.
// Its text marks go to the left of the rail by default.
func NewVSlider(st *SliderState, onChange func(n normal.Normal)) *Slider {
	sr := newSlider(st, true, onChange)
	sr.Sheet.Active.TextPlacement = styles.VSliderText()
	return sr
}

// SetScalar sets the drag sensitivity.
func (sr *Slider) SetScalar(v float32) *Slider { sr.Sensitivity.Scalar = v; return sr }

// SetWheelScalar sets the change per scroll wheel line; 0 disables the wheel.
func (sr *Slider) SetWheelScalar(v float32) *Slider { sr.Sensitivity.WheelScalar = v; return sr }

// SetModifierScalar sets the multiplier for fine adjustment.
func (sr *Slider) SetModifierScalar(v float32) *Slider { sr.Sensitivity.ModifierScalar = v; return sr }

// SetModifierKeys sets the keys that enable fine adjustment.
func (sr *Slider) SetModifierKeys(m key.Modifiers) *Slider {
	sr.Sensitivity.ModifierKeys = m
	return sr
}

// SetTicks sets the tick marks.
func (sr *Slider) SetTicks(g *marks.TickGroup) *Slider { sr.Ticks = g; return sr }

// SetText sets the text marks.
func (sr *Slider) SetText(g *marks.TextGroup) *Slider { sr.Text = g; return sr }

// SetModRange sets the first modulation range.
func (sr *Slider) SetModRange(mr *normal.ModulationRange) *Slider { sr.ModRanges[0] = mr; return sr }

// SetModRange2 sets the second modulation range.
func (sr *Slider) SetModRange2(mr *normal.ModulationRange) *Slider { sr.ModRanges[1] = mr; return sr }

// SetSnap sets the range values are snapped to, and whether the
// value is bipolar from it.
func (sr *Slider) SetSnap(r normal.Range) *Slider {
	sr.Snap = r
	sr.Bipolar = r != nil && r.Bipolar()
	return sr
}

// SetBipolar sets whether the value is filled from the center.
func (sr *Slider) SetBipolar(b bool) *Slider { sr.Bipolar = b; return sr }

// SetDisabled sets whether the slider ignores events.
func (sr *Slider) SetDisabled(b bool) *Slider { sr.Disabled = b; return sr }

// SetSheet sets the style sheet.
func (sr *Slider) SetSheet(sh *styles.Sheet[styles.Slider]) *Slider { sr.Sheet = sh; return sr }

// State returns the persistent state of the slider.
func (sr *Slider) State() *SliderState { return sr.state }

func (sr *Slider) axis() Axis {
	if sr.Vertical {
		return VerticalAxis{}
	}
	return HorizontalAxis{}
}

// HandleEvent handles the given event for the slider occupying the
// given bounds, calling OnChange if the value changes. It returns
// whether the event was consumed.
func (sr *Slider) HandleEvent(e *events.Event, bounds math32.Box2) bool {
	if sr.Disabled {
		return false
	}
	st := sr.state
	return st.Control.HandleEvent(e, bounds, sr.axis(), &sr.Sensitivity, [2]normal.Range{sr.Snap}, func() {
		if sr.OnChange != nil {
			sr.OnChange(st.Normal())
		}
	})
}

// track returns the span the handle center travels along, with the
// thickness of the rail across it, centered in the bounds.
func (sr *Slider) track(bounds math32.Box2, s *styles.Slider) math32.Box2 {
	hl := s.Handle.Length / 2
	c := bounds.Center()
	rw := s.Rail.Width / 2
	if sr.Vertical {
		return math32.B2(c.X-rw, bounds.Min.Y+hl, c.X+rw, bounds.Max.Y-hl)
	}
	return math32.B2(bounds.Min.X+hl, c.Y-rw, bounds.Max.X-hl, c.Y+rw)
}

// Frame returns the resolved frame for drawing the slider in the given
// bounds with the cursor at the given position. The geometry of the
// marks comes from the caches in the state.
func (sr *Slider) Frame(bounds math32.Box2, cursor math32.Vector2) *LinearFrame {
	st := sr.state
	sts := hoverStates(bounds, cursor, st.IsDragging(), sr.Disabled)
	s := sr.Sheet.For(sts)
	f := &LinearFrame{
		Frame:     Frame{Bounds: bounds, Cursor: cursor, States: sts},
		Vertical:  sr.Vertical,
		Track:     sr.track(bounds, s),
		Normal:    st.Normal(),
		Bipolar:   sr.Bipolar,
		ModRanges: sr.ModRanges,
		Style:     s,
	}
	if sr.Vertical {
		f.Ticks = marks.TicksVertical(f.Track, sr.Ticks, &s.Ticks, s.TickPlacement, false, &st.ticks)
		f.Text = marks.TextVertical(f.Track, sr.Text, &s.Text, s.TextPlacement, false, &st.text)
	} else {
		f.Ticks = marks.TicksHorizontal(f.Track, sr.Ticks, &s.Ticks, s.TickPlacement, false, &st.ticks)
		f.Text = marks.TextHorizontal(f.Track, sr.Text, &s.Text, s.TextPlacement, false, &st.text)
	}
	return f
}

// Draw returns the primitives for the slider drawn by the given renderer.
func (sr *Slider) Draw(bounds math32.Box2, cursor math32.Vector2, r Renderer) paint.Primitive {
	return r.DrawLinear(sr.Frame(bounds, cursor))
}
