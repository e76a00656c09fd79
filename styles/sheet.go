// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the appearance of each control family and
// the style sheets that vary it with the interaction state.
package styles

import (
	"cogentcore.org/controls/base/errors"
	"cogentcore.org/controls/styles/states"
	"github.com/jinzhu/copier"
)

// Sheet is a style sheet for one control family: the active style,
// plus optional modifiers applied on top of it in particular states.
type Sheet[T any] struct {

	// Active is the style of an idle control.
	Active T

	// Hovered modifies the style while the cursor is over the control.
	Hovered func(s *T)

	// Dragging modifies the style while the control is being dragged.
	// It is applied after Hovered.
	Dragging func(s *T)

	// Disabled modifies the style of a disabled control.
	// It is applied last.
	Disabled func(s *T)
}

// For returns the style for the given states: a deep copy of the
// active style with the modifiers for the states applied in order.
// The sheet itself is never changed.
func (sh *Sheet[T]) For(st states.States) *T {
	s := new(T)
	errors.Log(copier.CopyWithOption(s, &sh.Active, copier.Option{DeepCopy: true}))
	if st.HasFlag(states.Hovered) && sh.Hovered != nil {
		sh.Hovered(s)
	}
	if st.HasFlag(states.Dragging) && sh.Dragging != nil {
		sh.Dragging(s)
	}
	if st.HasFlag(states.Disabled) && sh.Disabled != nil {
		sh.Disabled(s)
	}
	return s
}
