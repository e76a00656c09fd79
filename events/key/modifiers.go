// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the keyboard modifier set tracked by controls.
package key

import "strings"

// Modifiers is a bitflag representing a set of modifier keys.
// The constants are bit positions; use [NewModifiers] to
// build a set from them.
type Modifiers int64

const (
	// Shift is the shift key.
	Shift Modifiers = iota

	// Control is the control key.
	Control

	// Alt is the alt key, or the option key on Apple keyboards.
	Alt

	// Meta is the system meta key (Command on Apple, Windows key elsewhere).
	Meta

	// ModifiersN is the number of modifier keys.
	ModifiersN
)

var modifiersNames = [...]string{"Shift", "Control", "Alt", "Meta"}

// NewModifiers returns a set containing the given modifier keys.
func NewModifiers(mods ...Modifiers) Modifiers {
	var m Modifiers
	m.SetFlag(true, mods...)
	return m
}

// HasFlag returns whether the given modifier key is in the set.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&(1<<f) != 0
}

// SetFlag sets or clears the given modifier keys.
func (m *Modifiers) SetFlag(on bool, f ...Modifiers) {
	for _, fl := range f {
		if on {
			*m |= 1 << fl
		} else {
			*m &^= 1 << fl
		}
	}
}

// HasAny returns whether any of the keys in the set o are in m.
func (m Modifiers) HasAny(o Modifiers) bool {
	return m&o != 0
}

// HasAll returns whether all of the keys in the set o are in m.
func (m Modifiers) HasAll(o Modifiers) bool {
	return m&o == o
}

// String returns the keys in the set joined with "+",
// or "None" for the empty set.
func (m Modifiers) String() string {
	var names []string
	for f := Shift; f < ModifiersN; f++ {
		if m.HasFlag(f) {
			names = append(names, modifiersNames[f])
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "+")
}
