// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/controls/events"
	"cogentcore.org/controls/normal"
)

// ValueState is the persistent state of a control with a single value.
type ValueState struct {

	// Control is the underlying interaction state.
	Control Control
}

func newValueState(p normal.Param) ValueState {
	return ValueState{Control: *NewControl(p)}
}

// Param returns the value and default of the control.
func (vs *ValueState) Param() normal.Param { return vs.Control.Param(0) }

// Normal returns the current value.
func (vs *ValueState) Normal() normal.Normal { return vs.Control.Normal(0) }

// SetNormal sets the current value without notifying.
func (vs *ValueState) SetNormal(n normal.Normal) { vs.Control.SetNormal(0, n) }

// Default returns the value a double click resets to.
func (vs *ValueState) Default() normal.Normal { return vs.Control.Default(0) }

// SetDefault sets the value a double click resets to.
func (vs *ValueState) SetDefault(n normal.Normal) { vs.Control.SetDefault(0, n) }

// SnapVisibleTo snaps the current value to the given range, so that
// the control shows the value the host will use.
func (vs *ValueState) SnapVisibleTo(r normal.Range) { vs.Control.SnapVisibleTo(0, r) }

// IsDragging returns whether the control is being dragged.
func (vs *ValueState) IsDragging() bool { return vs.Control.IsDragging() }

// SetClickPolicy sets the multi-click policy of this control,
// overriding the shared default.
func (vs *ValueState) SetClickPolicy(p events.ClickPolicy) { vs.Control.ClickPolicy = &p }
