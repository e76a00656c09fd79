// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/controls/math32"
)

// Axis determines how cursor motion during a drag maps to changes
// of the normalized values of a [Control]. Implementations are
// stateless and are chosen by each control family.
type Axis interface {

	// Channels returns the number of values driven by the axis: 1 or 2.
	Channels() int

	// Project returns the unscaled normalized deltas for each channel
	// for a cursor moving from one position to another within bounds.
	// A positive delta decreases the value. It returns false if the
	// bounds are too small to drag in, in which case the motion is ignored.
	Project(from, to math32.Vector2, bounds math32.Box2) ([2]float32, bool)
}

// HorizontalAxis drags along the width of the bounds, with values
// increasing to the right.
type HorizontalAxis struct{}

func (HorizontalAxis) Channels() int { return 1 }

func (HorizontalAxis) Project(from, to math32.Vector2, bounds math32.Box2) ([2]float32, bool) {
	w := bounds.Width()
	if w <= 0 {
		return [2]float32{}, false
	}
	return [2]float32{(to.X - from.X) / w * -1}, true
}

// VerticalAxis drags along the height of the bounds, with values
// increasing upward.
type VerticalAxis struct{}

func (VerticalAxis) Channels() int { return 1 }

func (VerticalAxis) Project(from, to math32.Vector2, bounds math32.Box2) ([2]float32, bool) {
	h := bounds.Height()
	if h <= 0 {
		return [2]float32{}, false
	}
	return [2]float32{(to.Y - from.Y) / h}, true
}

// RadialAxis drags vertically by pixels, independent of the bounds,
// with values increasing upward. It is used by controls whose
// position is an angle, where the angle plays no part in dragging.
type RadialAxis struct {

	// Horizontal also accepts horizontal motion,
	// with values increasing to the right.
	Horizontal bool
}

func (RadialAxis) Channels() int { return 1 }

func (ra RadialAxis) Project(from, to math32.Vector2, bounds math32.Box2) ([2]float32, bool) {
	d := to.Y - from.Y
	if ra.Horizontal {
		d -= to.X - from.X
	}
	return [2]float32{d}, true
}

// PlanarAxis drags along both dimensions of the bounds independently:
// channel 0 along the width (increasing to the right) and channel 1
// along the height (increasing upward).
type PlanarAxis struct{}

func (PlanarAxis) Channels() int { return 2 }

func (PlanarAxis) Project(from, to math32.Vector2, bounds math32.Box2) ([2]float32, bool) {
	w, h := bounds.Width(), bounds.Height()
	if w <= 0 || h <= 0 {
		return [2]float32{}, false
	}
	return [2]float32{(to.X - from.X) / w * -1, (to.Y - from.Y) / h}, true
}
