// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core provides the interactive controls (sliders, knobs, XY pads
// and modulation range inputs) and the state machine they share for turning
// pointer and keyboard events into changes of normalized values.
package core

import (
	"fmt"
	"log/slog"

	"cogentcore.org/controls/events"
	"cogentcore.org/controls/events/key"
	"cogentcore.org/controls/math32"
	"cogentcore.org/controls/normal"
	"cogentcore.org/controls/settings"
)

// Sensitivity determines how strongly input moves the values of a control.
type Sensitivity struct {

	// Scalar multiplies the normalized drag delta from the [Axis].
	Scalar float32

	// WheelScalar is the change of value per scroll wheel line.
	// Zero disables the scroll wheel.
	WheelScalar float32

	// ModifierScalar multiplies all deltas while any of the
	// ModifierKeys are held, for fine adjustment.
	ModifierScalar float32

	// ModifierKeys are the keys that enable fine adjustment.
	ModifierKeys key.Modifiers
}

// channel is one normalized value of a control.
type channel struct {
	param normal.Param

	// continuous is the unsnapped drag position of the value,
	// which accumulates deltas smaller than a snapping step.
	continuous float32
}

// Control is the persistent interaction state of one control instance:
// its values, whether it is being dragged, the held modifier keys, and
// the last click for multi-click detection. It is owned by the host,
// lives as long as the control does, and is used from one goroutine.
type Control struct {
	channels []channel
	dragging bool
	prevDrag math32.Vector2
	mods     key.Modifiers

	lastClick *events.Click

	// ClickPolicy overrides the shared [events.DefaultClickPolicy]
	// for this control if non-nil.
	ClickPolicy *events.ClickPolicy
}

// NewControl returns a new control with a channel for each given param.
func NewControl(params ...normal.Param) *Control {
	c := &Control{channels: make([]channel, len(params))}
	for i, p := range params {
		c.channels[i] = channel{param: p, continuous: p.Value.Float32()}
	}
	return c
}

// Channels returns the number of values of the control.
func (c *Control) Channels() int {
	return len(c.channels)
}

// Param returns the param of the given channel.
func (c *Control) Param(i int) normal.Param {
	return c.channels[i].param
}

// Normal returns the current value of the given channel.
func (c *Control) Normal(i int) normal.Normal {
	return c.channels[i].param.Value
}

// SetNormal sets the value of the given channel, including its
// unsnapped drag position. It does not notify.
func (c *Control) SetNormal(i int, n normal.Normal) {
	ch := &c.channels[i]
	ch.param.Value = n
	ch.continuous = n.Float32()
}

// Default returns the default value of the given channel.
func (c *Control) Default(i int) normal.Normal {
	return c.channels[i].param.Default
}

// SetDefault sets the default value of the given channel,
// to which it resets on a double click.
func (c *Control) SetDefault(i int, n normal.Normal) {
	c.channels[i].param.Default = n
}

// SnapVisibleTo snaps the current value of the given channel to the
// given range, leaving the unsnapped drag position alone.
func (c *Control) SnapVisibleTo(i int, r normal.Range) {
	ch := &c.channels[i]
	ch.param.Value = r.Snapped(ch.param.Value)
}

// IsDragging returns whether the control is being dragged.
func (c *Control) IsDragging() bool {
	return c.dragging
}

// Modifiers returns the modifier keys currently held, as last reported
// by a key event.
func (c *Control) Modifiers() key.Modifiers {
	return c.mods
}

func (c *Control) clickPolicy() events.ClickPolicy {
	if c.ClickPolicy != nil {
		return *c.ClickPolicy
	}
	return events.DefaultClickPolicy()
}

// move applies the given deltas to the values, snapping to the ranges
// for channels that have one.
func (c *Control) move(deltas [2]float32, sens *Sensitivity, snap [2]normal.Range) {
	for i := range c.channels {
		c.moveChannel(i, deltas[i], sens, snap[i])
	}
}

func (c *Control) moveChannel(i int, d float32, sens *Sensitivity, snap normal.Range) {
	if c.mods.HasAny(sens.ModifierKeys) {
		d *= sens.ModifierScalar
	}
	ch := &c.channels[i]
	ch.continuous = math32.Clamp(ch.continuous-d, 0, 1)
	n := normal.New(ch.continuous)
	if snap != nil {
		n = snap.Snapped(n)
	}
	ch.param.Value = n
}

// reset sets all values to their defaults.
func (c *Control) reset() {
	for i := range c.channels {
		ch := &c.channels[i]
		ch.param.Reset()
		ch.continuous = ch.param.Value.Float32()
	}
}

// HandleEvent handles the given event for a control occupying the given
// bounds, moving its values along the axis with the given sensitivity.
// Values of channels with a non-nil snap range are snapped to it, while
// the drag position stays unsnapped. The notify function is called
// exactly once for each event that changes the values, before HandleEvent
// returns. HandleEvent returns whether the event was consumed, which it
// also marks on the event.
//
// A left press starts a drag, or on a double (or triple) click resets
// all values to their defaults. Motion while dragging moves the values.
// A left release ends the drag. The scroll wheel moves the first value by
// one step per line. Key events update the held modifier keys.
func (c *Control) HandleEvent(e *events.Event, bounds math32.Box2, axis Axis, sens *Sensitivity, snap [2]normal.Range, notify func()) bool {
	handled := c.handleEvent(e, bounds, axis, sens, snap, notify)
	if handled {
		e.SetHandled()
	}
	if settings.Debug.EventTrace {
		slog.Info("control event", "event", e, "handled", handled, "values", c.String(), "dragging", c.dragging)
	}
	return handled
}

func (c *Control) handleEvent(e *events.Event, bounds math32.Box2, axis Axis, sens *Sensitivity, snap [2]normal.Range, notify func()) bool {
	switch e.Type {
	case events.MouseMove:
		if !c.dragging {
			return false
		}
		d, ok := axis.Project(c.prevDrag, e.Pos, bounds)
		if !ok {
			return false
		}
		c.prevDrag = e.Pos
		for i := range d {
			d[i] *= sens.Scalar
		}
		c.move(d, sens, snap)
		notify()
		return true

	case events.Scroll:
		if sens.WheelScalar == 0 || !bounds.ContainsPoint(e.Pos) {
			return false
		}
		lines := e.Scroll.LineDelta()
		if lines == 0 {
			return false
		}
		// only the first channel scrolls
		c.moveChannel(0, -lines*sens.WheelScalar, sens, snap[0])
		notify()
		return true

	case events.MouseDown:
		if e.Button != events.Left || !bounds.ContainsPoint(e.Pos) {
			return false
		}
		click := events.NewClick(e.Pos, e.Time, c.lastClick, c.clickPolicy())
		c.lastClick = &click
		if click.Kind == events.SingleClick {
			c.dragging = true
			c.prevDrag = e.Pos
			return true
		}
		c.dragging = false
		c.reset()
		notify()
		return true

	case events.MouseUp:
		if e.Button != events.Left {
			return false
		}
		if !c.dragging && !bounds.ContainsPoint(e.Pos) {
			return false
		}
		c.dragging = false
		for i := range c.channels {
			ch := &c.channels[i]
			ch.continuous = ch.param.Value.Float32()
		}
		return true

	case events.KeyDown, events.KeyUp:
		c.mods = e.Mods
		return true
	}
	return false
}

// String returns the current values of the control.
func (c *Control) String() string {
	switch len(c.channels) {
	case 0:
		return "[]"
	case 1:
		return fmt.Sprintf("[%v]", c.channels[0].param.Value)
	}
	return fmt.Sprintf("[%v %v]", c.channels[0].param.Value, c.channels[1].param.Value)
}
