// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marks

import (
	"log/slog"

	"cogentcore.org/controls/math32"
	"cogentcore.org/controls/paint"
	"cogentcore.org/controls/settings"
)

// Key is everything the geometry of a set of marks depends on.
// Groups are compared by identity, which is sound because they
// are immutable.
type Key struct {
	Axis      Axes
	Bounds    math32.Box2
	Ticks     *TickGroup
	Texts     *TextGroup
	TickStyle TickStyle
	TextStyle TextStyle
	Placement Placement
	Inverse   bool
	Angles    AngleRange
}

// Cache memoizes the geometry of one set of marks, so that redrawing
// with an unchanged [Key] does not recompute it. It holds a single
// entry, replaced whenever the key changes. A Cache is owned by one
// control and must not be shared.
type Cache struct {
	key      Key
	group    *paint.Group
	valid    bool
	computes int
}

// Cached returns the geometry for the given key, calling compute
// only if the key differs from the one last used.
func (c *Cache) Cached(key Key, compute func() *paint.Group) *paint.Group {
	if c.valid && c.key == key {
		if settings.Debug.CacheTrace {
			slog.Info("marks cache hit", "axis", key.Axis, "bounds", key.Bounds)
		}
		return c.group
	}
	c.key = key
	c.group = compute()
	c.valid = true
	c.computes++
	if settings.Debug.CacheTrace {
		slog.Info("marks cache computed", "axis", key.Axis, "bounds", key.Bounds, "primitives", c.group.Len(), "computes", c.computes)
	}
	return c.group
}

// Computes returns the number of times the geometry has been computed.
func (c *Cache) Computes() int {
	return c.computes
}

// Reset clears the cache, so that the next call computes.
func (c *Cache) Reset() {
	*c = Cache{computes: c.computes}
}

func cached(c *Cache, key Key, compute func() *paint.Group) *paint.Group {
	if c == nil {
		return compute()
	}
	return c.Cached(key, compute)
}

// TicksHorizontal returns the geometry of the given tick marks along a
// horizontal axis within bounds, positioned left to right (right to left
// if inverse). The cache may be nil.
func TicksHorizontal(bounds math32.Box2, group *TickGroup, style *TickStyle, pl Placement, inverse bool, cache *Cache) *paint.Group {
	key := Key{Axis: Horizontal, Bounds: bounds, Ticks: group, TickStyle: *style, Placement: pl, Inverse: inverse}
	return cached(cache, key, func() *paint.Group {
		return linearTicks(bounds, group, style, &pl, inverse, false)
	})
}

// TicksVertical returns the geometry of the given tick marks along a
// vertical axis within bounds, positioned bottom to top (top to bottom
// if inverse). The cache may be nil.
func TicksVertical(bounds math32.Box2, group *TickGroup, style *TickStyle, pl Placement, inverse bool, cache *Cache) *paint.Group {
	key := Key{Axis: Vertical, Bounds: bounds, Ticks: group, TickStyle: *style, Placement: pl, Inverse: inverse}
	return cached(cache, key, func() *paint.Group {
		return linearTicks(bounds, group, style, &pl, inverse, true)
	})
}

// TicksRadial returns the geometry of the given tick marks around the
// rim of the circle inscribed in bounds, positioned clockwise over the
// angle range (counterclockwise if inverse). The cache may be nil.
func TicksRadial(bounds math32.Box2, group *TickGroup, style *TickStyle, pl Placement, inverse bool, angles AngleRange, cache *Cache) *paint.Group {
	key := Key{Axis: Radial, Bounds: bounds, Ticks: group, TickStyle: *style, Placement: pl, Inverse: inverse, Angles: angles}
	return cached(cache, key, func() *paint.Group {
		return radialTicks(bounds, group, style, &pl, inverse, angles)
	})
}

// TextHorizontal returns the geometry of the given text marks along a
// horizontal axis within bounds. The cache may be nil.
func TextHorizontal(bounds math32.Box2, group *TextGroup, style *TextStyle, pl Placement, inverse bool, cache *Cache) *paint.Group {
	key := Key{Axis: Horizontal, Bounds: bounds, Texts: group, TextStyle: *style, Placement: pl, Inverse: inverse}
	return cached(cache, key, func() *paint.Group {
		return linearText(bounds, group, style, &pl, inverse, false)
	})
}

// TextVertical returns the geometry of the given text marks along a
// vertical axis within bounds. The cache may be nil.
func TextVertical(bounds math32.Box2, group *TextGroup, style *TextStyle, pl Placement, inverse bool, cache *Cache) *paint.Group {
	key := Key{Axis: Vertical, Bounds: bounds, Texts: group, TextStyle: *style, Placement: pl, Inverse: inverse}
	return cached(cache, key, func() *paint.Group {
		return linearText(bounds, group, style, &pl, inverse, true)
	})
}

// TextRadial returns the geometry of the given text marks around the
// rim of the circle inscribed in bounds. The cache may be nil.
func TextRadial(bounds math32.Box2, group *TextGroup, style *TextStyle, pl Placement, inverse bool, angles AngleRange, cache *Cache) *paint.Group {
	key := Key{Axis: Radial, Bounds: bounds, Texts: group, TextStyle: *style, Placement: pl, Inverse: inverse, Angles: angles}
	return cached(cache, key, func() *paint.Group {
		return radialText(bounds, group, style, &pl, inverse, angles)
	})
}

func (ax Axes) String() string {
	switch ax {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	case Radial:
		return "Radial"
	}
	return "Axes(?)"
}
