// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marks

import (
	"cogentcore.org/controls/math32"
	"cogentcore.org/controls/normal"
	"cogentcore.org/controls/paint"
)

// Axes are the kinds of axis along which marks are placed.
type Axes int32

const (
	// Horizontal is a left to right axis.
	Horizontal Axes = iota

	// Vertical is a bottom to top axis.
	Vertical

	// Radial is a clockwise arc around the center of the bounds.
	Radial
)

// linear is the geometry of a linear axis within (offset) bounds.
// Positions run along the axis and extents run across it.
type linear struct {
	vertical bool
	inverse  bool
	bounds   math32.Box2
}

// along returns the position of n along the axis, relative to the start
// of the bounds. Vertical axes grow upward unless inverse.
func (l *linear) along(n normal.Normal) float32 {
	if l.vertical {
		if l.inverse {
			return n.Scale(l.bounds.Height())
		}
		return n.ScaleInv(l.bounds.Height())
	}
	if l.inverse {
		return n.ScaleInv(l.bounds.Width())
	}
	return n.Scale(l.bounds.Width())
}

// alongStart returns the starting coordinate of the bounds along the axis.
func (l *linear) alongStart() float32 {
	if l.vertical {
		return l.bounds.Min.Y
	}
	return l.bounds.Min.X
}

// crossStart returns the starting coordinate of the bounds across the axis.
func (l *linear) crossStart() float32 {
	if l.vertical {
		return l.bounds.Min.X
	}
	return l.bounds.Min.Y
}

// crossSize returns the size of the bounds across the axis.
func (l *linear) crossSize() float32 {
	if l.vertical {
		return l.bounds.Width()
	}
	return l.bounds.Height()
}

// crossCenter returns the centerline of the bounds across the axis.
func (l *linear) crossCenter() float32 {
	return l.crossStart() + l.crossSize()/2
}

// crossEnd returns the ending coordinate of the bounds across the axis.
func (l *linear) crossEnd() float32 {
	return l.crossStart() + l.crossSize()
}

// ticks adds a quad per position, each centered on its position along
// the axis with the given thickness, starting at cross and extending
// length across the axis.
func (l *linear) ticks(g *paint.Group, positions []normal.Normal, sh Shape, thick, cross, length float32) {
	if length <= 0 || thick <= 0 {
		return
	}
	var radius float32
	if sh.Kind == CircleShape {
		radius = thick / 2
	}
	start := l.alongStart() - thick/2
	for _, p := range positions {
		at := start + l.along(p)
		var b math32.Box2
		if l.vertical {
			b = math32.B2XYWH(cross, at, length, thick)
		} else {
			b = math32.B2XYWH(at, cross, thick, length)
		}
		g.Add(&paint.Quad{Box: b, Color: sh.Color, Radius: radius})
	}
}

// tickAligns are the alignments of a tier of tick marks relative to
// a cross-axis coordinate.
type tickAligns int32

const (
	// tickStart extends from the coordinate toward increasing values.
	tickStart tickAligns = iota

	// tickEnd extends from the coordinate toward decreasing values.
	tickEnd

	// tickCenter is centered on the coordinate.
	tickCenter

	// tickSplit is split in two about the coordinate.
	tickSplit
)

func (l *linear) tier(g *paint.Group, positions []normal.Normal, sh Shape, al tickAligns, cross float32, pl *Placement) {
	if len(positions) == 0 || sh.Kind == NoShape {
		return
	}
	thick, length := sh.thickness()
	circle := sh.Kind == CircleShape
	switch al {
	case tickStart:
		l.ticks(g, positions, sh, thick, cross, length)
	case tickEnd:
		l.ticks(g, positions, sh, thick, cross-length, length)
	case tickCenter:
		if pl.FillLength {
			cross = l.crossStart() + length
			length = l.crossSize() - 2*length
			if circle {
				thick = length
			}
		} else {
			cross -= length / 2
		}
		l.ticks(g, positions, sh, thick, cross, length)
	case tickSplit:
		half := pl.Gap / 2
		if pl.FillLength {
			length = (l.crossSize() - pl.Gap) / 2
			if circle {
				thick = length
			}
			l.ticks(g, positions, sh, thick, l.crossStart(), length)
		} else {
			l.ticks(g, positions, sh, thick, cross-length-half, length)
		}
		l.ticks(g, positions, sh, thick, cross+half, length)
	}
}

// tiers draws all tiers of the group with the given alignment.
func (l *linear) tiers(g *paint.Group, group *TickGroup, style *TickStyle, al tickAligns, cross float32, pl *Placement) {
	for t := Tier1; t <= Tier3; t++ {
		l.tier(g, group.Tier(t), style.Shape(t), al, cross, pl)
	}
}

// linearTicks computes the tick mark geometry for a linear axis.
func linearTicks(bounds math32.Box2, group *TickGroup, style *TickStyle, pl *Placement, inverse, vertical bool) *paint.Group {
	g := &paint.Group{}
	b := pl.Offset.Rect(bounds)
	if group.Len() == 0 || bounds.IsEmpty() || b.Width() < 0 || b.Height() < 0 {
		return g
	}
	l := &linear{vertical: vertical, inverse: inverse, bounds: b}
	switch pl.Kind {
	case PlaceBothSides:
		if pl.Inside {
			l.tiers(g, group, style, tickStart, l.crossStart(), pl)
			l.tiers(g, group, style, tickEnd, l.crossEnd(), pl)
		} else {
			l.tiers(g, group, style, tickEnd, l.crossStart(), pl)
			l.tiers(g, group, style, tickStart, l.crossEnd(), pl)
		}
	case PlaceLeftOrTop:
		if pl.Inside {
			l.tiers(g, group, style, tickStart, l.crossStart(), pl)
		} else {
			l.tiers(g, group, style, tickEnd, l.crossStart(), pl)
		}
	case PlaceRightOrBottom:
		if pl.Inside {
			l.tiers(g, group, style, tickEnd, l.crossEnd(), pl)
		} else {
			l.tiers(g, group, style, tickStart, l.crossEnd(), pl)
		}
	case PlaceCenter:
		l.tiers(g, group, style, tickCenter, l.crossCenter(), pl)
	case PlaceCenterSplit:
		l.tiers(g, group, style, tickSplit, l.crossCenter(), pl)
	}
	return g
}

// text adds a text run per mark, anchored at its position along the axis
// and at cross across it. The across-axis alignment says which side of
// the anchor the label sits on.
func (l *linear) text(g *paint.Group, group *TextGroup, style *TextStyle, cross float32, al paint.Aligns) {
	bw, bh := style.BoundsWidth, style.BoundsHeight
	for _, m := range group.Marks() {
		at := math32.Round(l.alongStart() + l.along(m.Position))
		t := &paint.Text{Content: m.Label, Size: style.Size, Color: style.Color, Font: style.Font}
		if l.vertical {
			t.HAlign, t.VAlign = al, paint.Center
			t.Box = math32.B2XYWH(alignedStart(cross, bw, al), at-bh/2, bw, bh)
		} else {
			t.HAlign, t.VAlign = paint.Center, al
			t.Box = math32.B2XYWH(at-bw/2, alignedStart(cross, bh, al), bw, bh)
		}
		g.Add(t)
	}
}

// alignedStart returns the start of a box of the given size
// aligned at the anchor.
func alignedStart(anchor, size float32, al paint.Aligns) float32 {
	switch al {
	case paint.Center:
		return anchor - size/2
	case paint.End:
		return anchor - size
	}
	return anchor
}

// linearText computes the text mark geometry for a linear axis.
// [PlaceCenterSplit] places text like [PlaceCenter].
func linearText(bounds math32.Box2, group *TextGroup, style *TextStyle, pl *Placement, inverse, vertical bool) *paint.Group {
	g := &paint.Group{}
	b := pl.Offset.Rect(bounds)
	if group.Len() == 0 || bounds.IsEmpty() || b.Width() < 0 || b.Height() < 0 {
		return g
	}
	l := &linear{vertical: vertical, inverse: inverse, bounds: b}
	switch pl.Kind {
	case PlaceBothSides:
		if pl.Inside {
			l.text(g, group, style, l.crossStart(), paint.Start)
			l.text(g, group, style, l.crossEnd(), paint.End)
		} else {
			l.text(g, group, style, l.crossStart(), paint.End)
			l.text(g, group, style, l.crossEnd(), paint.Start)
		}
	case PlaceLeftOrTop:
		if pl.Inside {
			l.text(g, group, style, l.crossStart(), paint.Start)
		} else {
			l.text(g, group, style, l.crossStart(), paint.End)
		}
	case PlaceRightOrBottom:
		if pl.Inside {
			l.text(g, group, style, l.crossEnd(), paint.End)
		} else {
			l.text(g, group, style, l.crossEnd(), paint.Start)
		}
	case PlaceCenter, PlaceCenterSplit:
		l.text(g, group, style, l.crossCenter(), pl.Align)
	}
	return g
}
