// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of input event delivered by the host.
// The set is closed: controls only ever react to these.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseMove is sent whenever the cursor moves, whether or not
	// a button is down. Controls use it to advance a drag.
	MouseMove

	// MouseDown happens when a mouse button is pressed down. See Button for which.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button for which.
	MouseUp

	// Scroll is for scroll wheel events, with a line or pixel granularity delta.
	Scroll

	// KeyDown is sent when a key is pressed, carrying the resulting
	// modifier state.
	KeyDown

	// KeyUp is sent when a key is released, carrying the resulting
	// modifier state.
	KeyUp

	// TypesN is the number of event types.
	TypesN
)

var typesNames = [...]string{"UnknownType", "MouseMove", "MouseDown", "MouseUp", "Scroll", "KeyDown", "KeyUp"}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "Types(?)"
	}
	return typesNames[tp]
}

// IsMouse returns whether the type is one of the pointer event types.
func (tp Types) IsMouse() bool {
	return tp == MouseMove || tp == MouseDown || tp == MouseUp || tp == Scroll
}

// IsKey returns whether the type is a key event type.
func (tp Types) IsKey() bool {
	return tp == KeyDown || tp == KeyUp
}
