// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"
	"time"

	"cogentcore.org/controls/events/key"
	"cogentcore.org/controls/math32"
	"cogentcore.org/controls/settings"
	"github.com/stretchr/testify/assert"
)

func TestScrollDelta(t *testing.T) {
	assert.Equal(t, float32(2), ScrollDelta{Lines: true, Y: 2}.LineDelta())
	assert.Equal(t, float32(-0.5), ScrollDelta{Lines: true, Y: -0.5}.LineDelta())
	assert.Equal(t, float32(1), ScrollDelta{Y: 37}.LineDelta())
	assert.Equal(t, float32(-1), ScrollDelta{Y: -3}.LineDelta())
	assert.Equal(t, float32(0), ScrollDelta{X: 5}.LineDelta())
}

func TestConstructors(t *testing.T) {
	pos := math32.Vec2(3, 4)
	ev := NewMouseDown(Left, pos)
	assert.Equal(t, MouseDown, ev.Type)
	assert.Equal(t, Left, ev.Button)
	assert.Equal(t, pos, ev.Pos)
	assert.False(t, ev.Time.IsZero())
	assert.False(t, ev.IsHandled())
	ev.SetHandled()
	assert.True(t, ev.IsHandled())

	assert.Equal(t, MouseUp, NewMouseUp(Left, pos).Type)
	assert.Equal(t, MouseMove, NewMouseMove(pos).Type)
	sc := NewScroll(pos, ScrollDelta{Lines: true, Y: 1})
	assert.Equal(t, Scroll, sc.Type)
	assert.True(t, sc.Type.IsMouse())

	k := NewKey(KeyDown, key.NewModifiers(key.Control))
	assert.True(t, k.Type.IsKey())
	assert.True(t, k.Mods.HasFlag(key.Control))
	assert.Contains(t, k.String(), "KeyDown")

	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, fixed, NewMouseMove(pos).SetTime(fixed).Time)
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "MouseDown", MouseDown.String())
	assert.Equal(t, "KeyUp", KeyUp.String())
	assert.Equal(t, "Types(?)", TypesN.String())
	assert.Equal(t, "Right", Right.String())
}

func TestDefaultClickPolicy(t *testing.T) {
	p := DefaultClickPolicy()
	assert.Equal(t, settings.Device.DoubleClickInterval, p.Interval)
	assert.Equal(t, settings.Device.DoubleClickDistance, p.Distance)
}

func TestNewClick(t *testing.T) {
	policy := ClickPolicy{Interval: 300 * time.Millisecond, Distance: 4}
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pos := math32.Vec2(10, 10)

	c1 := NewClick(pos, t0, nil, policy)
	assert.Equal(t, SingleClick, c1.Kind)

	c2 := NewClick(pos.Add(math32.Vec2(1, 1)), t0.Add(100*time.Millisecond), &c1, policy)
	assert.Equal(t, DoubleClick, c2.Kind)

	c3 := NewClick(pos, t0.Add(200*time.Millisecond), &c2, policy)
	assert.Equal(t, TripleClick, c3.Kind)

	c4 := NewClick(pos, t0.Add(300*time.Millisecond), &c3, policy)
	assert.Equal(t, TripleClick, c4.Kind)

	late := NewClick(pos, t0.Add(time.Second), &c1, policy)
	assert.Equal(t, SingleClick, late.Kind)

	far := NewClick(pos.Add(math32.Vec2(10, 0)), t0.Add(50*time.Millisecond), &c1, policy)
	assert.Equal(t, SingleClick, far.Kind)

	earlier := NewClick(pos, t0.Add(-time.Millisecond), &c1, policy)
	assert.Equal(t, SingleClick, earlier.Kind)
	assert.Equal(t, "DoubleClick", DoubleClick.String())
}
