// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"cogentcore.org/controls/math32"
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

var buttonsNames = [...]string{"NoButton", "Left", "Middle", "Right"}

// String returns the name of the button.
func (bt Buttons) String() string {
	if bt < 0 || int(bt) >= len(buttonsNames) {
		return "Buttons(?)"
	}
	return buttonsNames[bt]
}

// ScrollDelta is the amount scrolled by a wheel event.
// Positive Y is up (away from the user).
type ScrollDelta struct {

	// Lines is whether the delta is in lines (as from a notched wheel)
	// rather than pixels (as from a trackpad).
	Lines bool

	X, Y float32
}

// LineDelta returns the vertical delta expressed in lines.
// Line deltas pass through unchanged; pixel deltas become a single
// step in the direction of Y (or 0 when Y is 0).
func (sd ScrollDelta) LineDelta() float32 {
	if sd.Lines {
		return sd.Y
	}
	return math32.Signum(sd.Y)
}

// NewMouseMove returns a new [MouseMove] event at the given position.
func NewMouseMove(pos math32.Vector2) *Event {
	ev := &Event{Type: MouseMove, Pos: pos}
	ev.Init()
	return ev
}

// NewMouseDown returns a new [MouseDown] event for the given button and position.
func NewMouseDown(but Buttons, pos math32.Vector2) *Event {
	ev := &Event{Type: MouseDown, Button: but, Pos: pos}
	ev.Init()
	return ev
}

// NewMouseUp returns a new [MouseUp] event for the given button and position.
func NewMouseUp(but Buttons, pos math32.Vector2) *Event {
	ev := &Event{Type: MouseUp, Button: but, Pos: pos}
	ev.Init()
	return ev
}

// NewScroll returns a new [Scroll] event at the given position.
func NewScroll(pos math32.Vector2, delta ScrollDelta) *Event {
	ev := &Event{Type: Scroll, Pos: pos, Scroll: delta}
	ev.Init()
	return ev
}
