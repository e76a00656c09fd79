// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"
	"testing"
	"time"

	"cogentcore.org/controls/base/tolassert"
	"cogentcore.org/controls/events"
	"cogentcore.org/controls/events/key"
	"cogentcore.org/controls/marks"
	"cogentcore.org/controls/math32"
	"cogentcore.org/controls/normal"
	"cogentcore.org/controls/paint"
	"cogentcore.org/controls/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0     = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	policy = events.ClickPolicy{Interval: 500 * time.Millisecond, Distance: 4}
)

func at(d time.Duration) time.Time { return t0.Add(d) }

func down(x, y float32, d time.Duration) *events.Event {
	return events.NewMouseDown(events.Left, math32.Vec2(x, y)).SetTime(at(d))
}

func up(x, y float32) *events.Event {
	return events.NewMouseUp(events.Left, math32.Vec2(x, y))
}

func move(x, y float32) *events.Event {
	return events.NewMouseMove(math32.Vec2(x, y))
}

func newTestSlider(vertical bool, value float32) (*Slider, *int) {
	st := NewSliderState(normal.NewParamWithDefault(normal.New(value), normal.Center()))
	st.SetClickPolicy(policy)
	calls := new(int)
	onChange := func(n normal.Normal) { *calls++ }
	if vertical {
		return NewVSlider(st, onChange), calls
	}
	return NewHSlider(st, onChange), calls
}

func TestHSliderDrag(t *testing.T) {
	sr, calls := newTestSlider(false, 0.5)
	st := sr.State()
	b := math32.B2(0, 0, 100, 20)

	assert.True(t, sr.HandleEvent(down(50, 10, 0), b))
	assert.True(t, st.IsDragging())
	assert.Equal(t, 0, *calls)

	assert.True(t, sr.HandleEvent(move(60, 10), b))
	tolassert.EqualTol(t, 0.59575, st.Normal().Float32(), 1e-5)
	assert.Equal(t, 1, *calls)

	// fine adjustment
	ke := events.NewKey(events.KeyDown, key.NewModifiers(key.Control))
	assert.True(t, sr.HandleEvent(ke, b))
	assert.True(t, ke.IsHandled())
	assert.True(t, sr.HandleEvent(move(70, 10), b))
	tolassert.EqualTol(t, 0.59575+0.0019150, st.Normal().Float32(), 1e-5)
	assert.Equal(t, 2, *calls)

	assert.True(t, sr.HandleEvent(events.NewKey(events.KeyUp, 0), b))
	assert.True(t, sr.HandleEvent(up(70, 10), b))
	assert.False(t, st.IsDragging())
	assert.False(t, sr.HandleEvent(move(80, 10), b))
	assert.Equal(t, 2, *calls)
}

func TestVSliderDrag(t *testing.T) {
	sr, calls := newTestSlider(true, 0.5)
	b := math32.B2(0, 0, 20, 100)
	sr.HandleEvent(down(10, 50, 0), b)
	assert.True(t, sr.HandleEvent(move(10, 60), b))
	tolassert.EqualTol(t, 0.40425, sr.State().Normal().Float32(), 1e-5)
	assert.Equal(t, 1, *calls)

	// clamped at the top
	sr.HandleEvent(move(10, -1000), b)
	assert.Equal(t, normal.Max(), sr.State().Normal())
}

func TestDoubleClickReset(t *testing.T) {
	sr, calls := newTestSlider(false, 0.73)
	st := sr.State()
	b := math32.B2(0, 0, 100, 20)

	assert.True(t, sr.HandleEvent(down(50, 10, 0), b))
	assert.True(t, sr.HandleEvent(up(50, 10), b))
	assert.True(t, sr.HandleEvent(down(51, 10, 100*time.Millisecond), b))
	assert.Equal(t, normal.Center(), st.Normal())
	assert.Equal(t, 1, *calls)
	assert.False(t, st.IsDragging())
	assert.Equal(t, float32(0.5), st.Control.channels[0].continuous)

	// too late for a double click
	st.SetNormal(normal.New(0.73))
	sr.HandleEvent(up(50, 10), b)
	sr.HandleEvent(down(50, 10, time.Second), b)
	sr.HandleEvent(up(50, 10), b)
	sr.HandleEvent(down(50, 10, 2*time.Second), b)
	tolassert.Equal(t, 0.73, st.Normal().Float32())
	assert.Equal(t, 1, *calls)
}

func TestRepeatedClicksKeepResetting(t *testing.T) {
	sr, calls := newTestSlider(false, 0.73)
	st := sr.State()
	b := math32.B2(0, 0, 100, 20)

	sr.HandleEvent(down(50, 10, 0), b)
	sr.HandleEvent(up(50, 10), b)
	for i := 1; i <= 3; i++ {
		st.SetNormal(normal.New(0.73))
		assert.True(t, sr.HandleEvent(down(50, 10, time.Duration(i)*100*time.Millisecond), b))
		assert.False(t, st.IsDragging(), "press %d", i+1)
		assert.Equal(t, normal.Center(), st.Normal(), "press %d", i+1)
		assert.True(t, sr.HandleEvent(up(50, 10), b))
	}
	assert.Equal(t, 3, *calls)
}

func TestPressOutside(t *testing.T) {
	sr, _ := newTestSlider(false, 0.5)
	b := math32.B2(0, 0, 100, 20)
	assert.False(t, sr.HandleEvent(down(150, 10, 0), b))
	assert.False(t, sr.HandleEvent(events.NewMouseDown(events.Right, math32.Vec2(50, 10)), b))
	assert.False(t, sr.State().IsDragging())
	assert.False(t, sr.HandleEvent(up(150, 10), b))
	assert.True(t, sr.HandleEvent(up(50, 10), b))
}

func TestWheel(t *testing.T) {
	sr, calls := newTestSlider(false, 0.5)
	st := sr.State()
	b := math32.B2(0, 0, 100, 20)
	in := math32.Vec2(50, 10)

	assert.True(t, sr.HandleEvent(events.NewScroll(in, events.ScrollDelta{Lines: true, Y: 1}), b))
	tolassert.Equal(t, 0.51, st.Normal().Float32())
	assert.True(t, sr.HandleEvent(events.NewScroll(in, events.ScrollDelta{Y: -35}), b))
	tolassert.Equal(t, 0.5, st.Normal().Float32())
	assert.Equal(t, 2, *calls)

	assert.False(t, sr.HandleEvent(events.NewScroll(in, events.ScrollDelta{}), b))
	assert.False(t, sr.HandleEvent(events.NewScroll(math32.Vec2(500, 10), events.ScrollDelta{Lines: true, Y: 1}), b))
	assert.Equal(t, 2, *calls)
}

func TestWheelDisabledXYPad(t *testing.T) {
	st := NewXYPadState(normal.NewParam(normal.Center()), normal.NewParam(normal.Center()))
	calls := 0
	xy := NewXYPad(st, func(x, y normal.Normal) { calls++ })
	b := math32.B2(0, 0, 100, 100)
	e := events.NewScroll(math32.Vec2(50, 50), events.ScrollDelta{Lines: true, Y: 3})
	assert.False(t, xy.HandleEvent(e, b))
	assert.False(t, e.IsHandled())
	assert.Equal(t, normal.Center(), st.X())
	assert.Equal(t, normal.Center(), st.Y())
	assert.Equal(t, 0, calls)
}

func TestSnapKeepsContinuous(t *testing.T) {
	sr, _ := newTestSlider(false, 0.5)
	sr.SetSnap(normal.NewIntRange(0, 10))
	st := sr.State()
	b := math32.B2(0, 0, 100, 20)

	sr.HandleEvent(down(50, 10, 0), b)
	sr.HandleEvent(move(52, 10), b)
	tolassert.Equal(t, 0.5, st.Normal().Float32())
	sr.HandleEvent(move(54, 10), b)
	tolassert.Equal(t, 0.5, st.Normal().Float32())
	sr.HandleEvent(move(58, 10), b)
	tolassert.Equal(t, 0.6, st.Normal().Float32())
	tolassert.EqualTol(t, 0.5766, st.Control.channels[0].continuous, 1e-4)

	sr.HandleEvent(up(58, 10), b)
	tolassert.Equal(t, 0.6, st.Control.channels[0].continuous)
}

func TestSnapVisibleTo(t *testing.T) {
	st := NewSliderState(normal.NewParam(normal.New(0.53)))
	st.SnapVisibleTo(normal.NewIntRange(0, 10))
	tolassert.Equal(t, 0.5, st.Normal().Float32())
	tolassert.Equal(t, 0.53, st.Control.channels[0].continuous)
}

func TestZeroSizeBounds(t *testing.T) {
	c := NewControl(normal.NewParam(normal.Center()))
	c.dragging = true
	sens := DefaultSliderSensitivity()
	calls := 0
	handled := c.HandleEvent(move(10, 10), math32.B2(0, 0, 0, 20), HorizontalAxis{}, &sens, [2]normal.Range{}, func() { calls++ })
	assert.False(t, handled)
	assert.Equal(t, 0, calls)
	assert.Equal(t, normal.Center(), c.Normal(0))
}

func TestDisabled(t *testing.T) {
	sr, calls := newTestSlider(false, 0.5)
	sr.SetDisabled(true)
	b := math32.B2(0, 0, 100, 20)
	assert.False(t, sr.HandleEvent(down(50, 10, 0), b))
	assert.False(t, sr.HandleEvent(events.NewKey(events.KeyDown, 0), b))
	assert.Equal(t, 0, *calls)
}

func TestKnob(t *testing.T) {
	st := NewKnobState(normal.NewParam(normal.Center()))
	st.SetClickPolicy(policy)
	var last normal.Normal
	kn := NewKnob(st, func(n normal.Normal) { last = n })
	b := math32.B2(0, 0, 40, 40)

	kn.HandleEvent(down(20, 20, 0), b)
	assert.True(t, kn.HandleEvent(move(20, 10), b))
	tolassert.EqualTol(t, 0.5385, st.Normal().Float32(), 1e-5)
	assert.Equal(t, st.Normal(), last)

	// horizontal motion is ignored unless enabled
	kn.HandleEvent(move(30, 10), b)
	tolassert.EqualTol(t, 0.5385, st.Normal().Float32(), 1e-5)
	kn.SetHorizontal(true)
	kn.HandleEvent(move(40, 10), b)
	tolassert.EqualTol(t, 0.577, st.Normal().Float32(), 1e-5)

	tolassert.Equal(t, math32.DegToRad(30), kn.Angle(normal.Min()))
	tolassert.Equal(t, math32.Pi, kn.Angle(normal.Center()))
	tolassert.Equal(t, math32.DegToRad(330), kn.Angle(normal.Max()))
}

func TestModRangeInput(t *testing.T) {
	st := NewModRangeInputState(normal.NewParam(normal.Center()))
	mi := NewModRangeInput(st, nil)
	b := math32.B2(0, 0, 10, 10)
	mi.HandleEvent(down(5, 5, 0), b)
	mi.HandleEvent(move(5, -5), b)
	tolassert.EqualTol(t, 0.5+0.00385*5, st.Normal().Float32(), 1e-5)

	mi.HandleEvent(up(5, -5), b)
	assert.True(t, mi.HandleEvent(events.NewScroll(math32.Vec2(5, 5), events.ScrollDelta{Lines: true, Y: -2}), b))
	tolassert.EqualTol(t, 0.5+0.00385*5-0.01, st.Normal().Float32(), 1e-5)
}

func TestXYPad(t *testing.T) {
	st := NewXYPadState(
		normal.NewParamWithDefault(normal.Center(), normal.New(0.2)),
		normal.NewParamWithDefault(normal.Center(), normal.New(0.8)))
	st.SetClickPolicy(policy)
	calls := 0
	xy := NewXYPad(st, func(x, y normal.Normal) { calls++ })
	b := math32.B2(0, 0, 100, 100)

	xy.HandleEvent(down(50, 50, 0), b)
	assert.True(t, xy.HandleEvent(move(60, 60), b))
	tolassert.Equal(t, 0.6, st.X().Float32())
	tolassert.Equal(t, 0.4, st.Y().Float32())
	assert.Equal(t, 1, calls)

	// the first press was too far away to pair with this one
	xy.HandleEvent(up(60, 60), b)
	xy.HandleEvent(down(60, 60, 100*time.Millisecond), b)
	assert.True(t, st.IsDragging())
	tolassert.Equal(t, 0.6, st.X().Float32())
	xy.HandleEvent(up(60, 60), b)
	xy.HandleEvent(down(60, 60, 200*time.Millisecond), b)
	assert.False(t, st.IsDragging())
	tolassert.Equal(t, 0.2, st.X().Float32())
	tolassert.Equal(t, 0.8, st.Y().Float32())
	assert.Equal(t, 2, calls)

	f := xy.Frame(b, math32.Vec2(-1, -1))
	tolassert.EqualVector(t, math32.Vec2(20, 20), f.Handle())
}

func TestSliderDrawCache(t *testing.T) {
	sr, _ := newTestSlider(false, 0.5)
	sr.SetTicks(marks.EvenlySpaced(5, marks.Tier1))
	st := sr.State()
	b := math32.B2(0, 0, 114, 20)
	cursor := math32.Vec2(-1, -1)

	p := sr.Draw(b, cursor, DefaultRenderer{})
	g, ok := p.(*paint.Group)
	require.True(t, ok)
	assert.Greater(t, g.Len(), 0)
	sr.Draw(b, cursor, DefaultRenderer{})
	assert.Equal(t, 1, st.ticks.Computes())

	// a new value does not change the marks
	st.SetNormal(normal.New(0.9))
	sr.Draw(b, cursor, DefaultRenderer{})
	assert.Equal(t, 1, st.ticks.Computes())

	sr.Draw(math32.B2(0, 0, 214, 20), cursor, DefaultRenderer{})
	assert.Equal(t, 2, st.ticks.Computes())
}

func TestSliderFrame(t *testing.T) {
	sr, _ := newTestSlider(false, 0.75)
	b := math32.B2(0, 0, 114, 20)
	f := sr.Frame(b, math32.Vec2(10, 10))
	tolassert.EqualBox(t, math32.B2(7, 9, 107, 11), f.Track)
	tolassert.Equal(t, 82, f.HandleCenter(f.Normal))
	assert.Equal(t, "Hovered", f.States.String())

	vf := NewVSlider(sr.State(), nil).Frame(math32.B2(0, 0, 20, 114), math32.Vec2(-1, -1))
	tolassert.EqualBox(t, math32.B2(9, 7, 11, 107), vf.Track)
	tolassert.Equal(t, 32, vf.HandleCenter(vf.Normal))
}

func TestBipolarFill(t *testing.T) {
	sr, _ := newTestSlider(false, 0.75)
	fill := color.RGBA{1, 2, 3, 255}
	sh := styles.SliderSheet()
	sh.Active.Filled = fill
	sr.SetSheet(sh).SetSnap(normal.DefaultBipolar())
	assert.True(t, sr.Bipolar)

	g := sr.Draw(math32.B2(0, 0, 114, 20), math32.Vec2(-1, -1), DefaultRenderer{}).(*paint.Group)
	var fills []*paint.Quad
	g.Walk(func(p paint.Primitive) {
		if q, ok := p.(*paint.Quad); ok && q.Color == fill {
			fills = append(fills, q)
		}
	})
	require.Len(t, fills, 1)
	tolassert.EqualBox(t, math32.B2(57, 9, 82, 11), fills[0].Box)
}

func TestKnobDraw(t *testing.T) {
	st := NewKnobState(normal.NewParam(normal.Center()))
	kn := NewKnob(st, nil).SetTicks(marks.MinMaxAndCenter(marks.Tier1, marks.Tier2))
	mr := normal.NewModulationRange(normal.New(0.2), normal.New(0.6))
	kn.SetModRange(&mr)
	f := kn.Frame(math32.B2(0, 0, 60, 40), math32.Vec2(30, 20))
	tolassert.EqualBox(t, math32.B2(10, 0, 50, 40), f.Knob)
	tolassert.Equal(t, math32.Pi, f.Angle)
	assert.Equal(t, 3, f.Ticks.Len())

	g := DefaultRenderer{}.DrawKnob(f).(*paint.Group)
	arcs := 0
	g.Walk(func(p paint.Primitive) {
		if _, ok := p.(*paint.Arc); ok {
			arcs++
		}
	})
	// value arc behind and filled, mod range filled
	assert.Equal(t, 3, arcs)
}

func TestDrawModRangeInput(t *testing.T) {
	st := NewModRangeInputState(normal.NewParam(normal.Center()))
	mi := NewModRangeInput(st, nil)
	b := math32.B2(0, 0, 20, 20)
	g := mi.Draw(b, math32.Vector2{}, DefaultRenderer{}).(*paint.Group)
	require.Equal(t, 1, g.Len())
	q := g.Primitives[0].(*paint.Quad)
	tolassert.EqualBox(t, math32.B2(5, 5, 15, 15), q.Box)
	tolassert.Equal(t, 5, q.Radius)

	sh := styles.ModRangeInputSheet()
	sh.Active.Shape = styles.DotInvisible
	g = mi.SetSheet(sh).Draw(b, math32.Vector2{}, DefaultRenderer{}).(*paint.Group)
	assert.Equal(t, 0, g.Len())
}
