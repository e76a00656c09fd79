// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the closed set of input events that a host
// delivers to controls, along with click-kind detection.
package events

import (
	"fmt"
	"time"

	"cogentcore.org/controls/events/key"
	"cogentcore.org/controls/math32"
)

// Event is a single input event. Pointer events carry the cursor
// position in the same coordinate space as the control bounds passed
// alongside them. Key events carry the modifier state that results from
// the key press or release.
type Event struct {

	// Type is the type of event.
	Type Types

	// Button is the mouse button for [MouseDown] and [MouseUp] events.
	Button Buttons

	// Pos is the cursor position at the time of the event.
	Pos math32.Vector2

	// Scroll is the wheel delta for [Scroll] events.
	Scroll ScrollDelta

	// Mods are the modifier keys held, for key events.
	Mods key.Modifiers

	// Time is when the event happened. Click-kind detection relies on it.
	Time time.Time

	// handled is whether a control consumed the event.
	handled bool
}

// Init stamps the event with the current time if it has none.
func (ev *Event) Init() {
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}
}

// SetTime sets the time of the event and returns it, for chaining
// in tests and replays.
func (ev *Event) SetTime(t time.Time) *Event {
	ev.Time = t
	return ev
}

// SetHandled marks the event as consumed so that the host does not
// propagate it further.
func (ev *Event) SetHandled() {
	ev.handled = true
}

// IsHandled returns whether the event has been consumed.
func (ev *Event) IsHandled() bool {
	return ev.handled
}

func (ev *Event) String() string {
	switch {
	case ev.Type.IsKey():
		return fmt.Sprintf("%v{Mods: %v, Time: %v}", ev.Type, ev.Mods, ev.Time.Format("04:05.000"))
	case ev.Type == Scroll:
		return fmt.Sprintf("%v{Pos: %v, Delta: %v, Time: %v}", ev.Type, ev.Pos, ev.Scroll, ev.Time.Format("04:05.000"))
	}
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Time: %v}", ev.Type, ev.Button, ev.Pos, ev.Time.Format("04:05.000"))
}

// NewKey returns a new [KeyDown] or [KeyUp] event carrying
// the given resulting modifier state.
func NewKey(typ Types, mods key.Modifiers) *Event {
	ev := &Event{Type: typ, Mods: mods}
	ev.Init()
	return ev
}
