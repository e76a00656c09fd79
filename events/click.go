// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"time"

	"cogentcore.org/controls/math32"
	"cogentcore.org/controls/settings"
)

// ClickKinds are the kinds of click, determined by how many presses
// occurred in quick succession.
type ClickKinds int32

const (
	// SingleClick is a lone press, or the first of a sequence.
	SingleClick ClickKinds = iota

	// DoubleClick is the second press of a sequence.
	DoubleClick

	// TripleClick is the third and any further press of a sequence.
	TripleClick
)

func (ck ClickKinds) String() string {
	switch ck {
	case SingleClick:
		return "SingleClick"
	case DoubleClick:
		return "DoubleClick"
	case TripleClick:
		return "TripleClick"
	}
	return "ClickKinds(?)"
}

func (ck ClickKinds) next() ClickKinds {
	switch ck {
	case SingleClick:
		return DoubleClick
	}
	return TripleClick
}

// ClickPolicy determines when successive presses count as one
// multi-click sequence.
type ClickPolicy struct {

	// Interval is the maximum time between presses.
	Interval time.Duration

	// Distance is the maximum distance in pixels between presses.
	Distance float32
}

// DefaultClickPolicy returns the policy from the current [settings.Device],
// which is shared by all controls.
func DefaultClickPolicy() ClickPolicy {
	return ClickPolicy{
		Interval: settings.Device.DoubleClickInterval,
		Distance: settings.Device.DoubleClickDistance,
	}
}

// Click is a record of a button press and its kind.
type Click struct {
	Pos  math32.Vector2
	Time time.Time
	Kind ClickKinds
}

// NewClick classifies a press at the given position and time against
// the previous press on the same control (nil if none).
func NewClick(pos math32.Vector2, t time.Time, prev *Click, policy ClickPolicy) Click {
	c := Click{Pos: pos, Time: t, Kind: SingleClick}
	if prev == nil {
		return c
	}
	dt := t.Sub(prev.Time)
	if dt >= 0 && dt <= policy.Interval && pos.DistanceTo(prev.Pos) <= policy.Distance {
		c.Kind = prev.Kind.next()
	}
	return c
}
