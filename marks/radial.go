// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marks

import (
	"cogentcore.org/controls/math32"
	"cogentcore.org/controls/normal"
	"cogentcore.org/controls/paint"
)

// radial is the geometry of a radial axis around the center of the bounds.
// The rim is the largest circle that fits in the bounds.
type radial struct {
	center  math32.Vector2
	rim     float32
	angles  AngleRange
	inverse bool
}

func newRadial(bounds math32.Box2, angles AngleRange, inverse bool) *radial {
	return &radial{
		center:  bounds.Center(),
		rim:     min(bounds.Width(), bounds.Height()) / 2,
		angles:  angles,
		inverse: inverse,
	}
}

func (r *radial) angle(n normal.Normal) float32 {
	if r.inverse {
		n = n.Inv()
	}
	return r.angles.Angle(n)
}

// span adds a mark per position covering the radial distances from r0 to r1.
// Lines run from r0 to r1, and circles fill the span.
func (r *radial) span(g *paint.Group, positions []normal.Normal, sh Shape, r0, r1 float32) {
	r0 = max(r0, 0)
	if r1 <= r0 {
		return
	}
	for _, p := range positions {
		a := r.angle(p)
		if sh.Kind == CircleShape {
			d := r1 - r0
			c := r.center.Polar((r0+r1)/2, a)
			g.Add(&paint.Quad{Box: math32.B2XYWH(c.X-d/2, c.Y-d/2, d, d), Color: sh.Color, Radius: d / 2})
			continue
		}
		if sh.Width <= 0 {
			return
		}
		g.Add(&paint.Line{From: r.center.Polar(r0, a), To: r.center.Polar(r1, a), Width: sh.Width, Color: sh.Color})
	}
}

func (r *radial) tier(g *paint.Group, positions []normal.Normal, sh Shape, pl *Placement) {
	if len(positions) == 0 || sh.Kind == NoShape {
		return
	}
	_, length := sh.thickness()
	off := pl.Offset.X
	inward := func() { r.span(g, positions, sh, r.rim-off-length, r.rim-off) }
	outward := func() { r.span(g, positions, sh, r.rim+off, r.rim+off+length) }
	switch pl.Kind {
	case PlaceBothSides:
		inward()
		outward()
	case PlaceLeftOrTop, PlaceRightOrBottom:
		if pl.Inside {
			inward()
		} else {
			outward()
		}
	case PlaceCenter:
		rc := r.rim - off
		if pl.FillLength {
			r.span(g, positions, sh, 0, rc)
		} else {
			r.span(g, positions, sh, rc-length/2, rc+length/2)
		}
	case PlaceCenterSplit:
		rc := r.rim - off
		half := pl.Gap / 2
		if pl.FillLength {
			r.span(g, positions, sh, 0, rc-half)
		} else {
			r.span(g, positions, sh, rc-half-length, rc-half)
		}
		r.span(g, positions, sh, rc+half, rc+half+length)
	}
}

// radialTicks computes the tick mark geometry for a radial axis.
// Offset.X is the distance of the marks from the rim.
// [PlaceLeftOrTop] and [PlaceRightOrBottom] both place marks on the rim,
// pointing inward if Inside. [PlaceCenter] centers marks on the rim, and
// with FillLength they run from the center out to the rim.
func radialTicks(bounds math32.Box2, group *TickGroup, style *TickStyle, pl *Placement, inverse bool, angles AngleRange) *paint.Group {
	g := &paint.Group{}
	if group.Len() == 0 || bounds.IsEmpty() {
		return g
	}
	r := newRadial(bounds, angles, inverse)
	for t := Tier1; t <= Tier3; t++ {
		r.tier(g, group.Tier(t), style.Shape(t), pl)
	}
	return g
}

// radialText computes the text mark geometry for a radial axis.
// Each label box is centered on a point at its angle, just inside or
// outside the rim per the placement, or on the rim when centered.
func radialText(bounds math32.Box2, group *TextGroup, style *TextStyle, pl *Placement, inverse bool, angles AngleRange) *paint.Group {
	g := &paint.Group{}
	if group.Len() == 0 || bounds.IsEmpty() {
		return g
	}
	r := newRadial(bounds, angles, inverse)
	bw, bh := style.BoundsWidth, style.BoundsHeight
	half := max(bw, bh) / 2
	off := pl.Offset.X
	ring := func(dist float32) {
		if dist < 0 {
			return
		}
		for _, m := range group.Marks() {
			c := r.center.Polar(dist, r.angle(m.Position))
			x, y := math32.Round(c.X), math32.Round(c.Y)
			g.Add(&paint.Text{
				Content: m.Label, Size: style.Size, Color: style.Color, Font: style.Font,
				Box:    math32.B2XYWH(x-bw/2, y-bh/2, bw, bh),
				HAlign: paint.Center, VAlign: paint.Center,
			})
		}
	}
	switch pl.Kind {
	case PlaceBothSides:
		ring(r.rim - off - half)
		ring(r.rim + off + half)
	case PlaceLeftOrTop, PlaceRightOrBottom:
		if pl.Inside {
			ring(r.rim - off - half)
		} else {
			ring(r.rim + off + half)
		}
	case PlaceCenter, PlaceCenterSplit:
		ring(r.rim - off)
	}
	return g
}
