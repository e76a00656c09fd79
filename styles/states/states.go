// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package states defines the interaction states of controls
// that are relevant for styling.
package states

import "strings"

// States are the interaction states of a control, as a bitflag.
// The constants are bit positions; use [New] to build a set.
type States int64

const (
	// Disabled controls do not respond to input, but do display.
	Disabled States = iota

	// Hovered indicates that the cursor is over the control.
	Hovered

	// Dragging indicates that the control is being dragged.
	Dragging

	// StatesN is the number of states.
	StatesN
)

var statesNames = [...]string{"Disabled", "Hovered", "Dragging"}

// New returns a set of the given states.
func New(st ...States) States {
	var s States
	s.SetFlag(true, st...)
	return s
}

// HasFlag returns whether the given state is set.
func (s States) HasFlag(f States) bool {
	return s&(1<<f) != 0
}

// SetFlag sets or clears the given states.
func (s *States) SetFlag(on bool, f ...States) {
	for _, fl := range f {
		if on {
			*s |= 1 << fl
		} else {
			*s &^= 1 << fl
		}
	}
}

// Is is an alias for [States.HasFlag].
func (s States) Is(f States) bool {
	return s.HasFlag(f)
}

// String returns the set states joined with "|".
func (s States) String() string {
	var names []string
	for f := Disabled; f < StatesN; f++ {
		if s.HasFlag(f) {
			names = append(names, statesNames[f])
		}
	}
	return strings.Join(names, "|")
}
