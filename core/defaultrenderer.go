// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"

	"cogentcore.org/controls/marks"
	"cogentcore.org/controls/math32"
	"cogentcore.org/controls/normal"
	"cogentcore.org/controls/paint"
	"cogentcore.org/controls/styles"
)

// DefaultRenderer is the standard look of all controls.
// Each method returns a [paint.Group].
type DefaultRenderer struct{}

var _ Renderer = DefaultRenderer{}

func visible(c color.RGBA) bool { return c.A != 0 }

// alongBox returns the box spanning from a to b along the axis of the
// frame and from c0 to c1 across it.
func (f *LinearFrame) alongBox(a, b, c0, c1 float32) math32.Box2 {
	a, b = min(a, b), max(a, b)
	if f.Vertical {
		return math32.B2(c0, a, c1, b)
	}
	return math32.B2(a, c0, b, c1)
}

// cross returns the start and end of the frame bounds and track across the axis.
func (f *LinearFrame) cross() (b0, b1, t0, t1 float32) {
	if f.Vertical {
		return f.Bounds.Min.X, f.Bounds.Max.X, f.Track.Min.X, f.Track.Max.X
	}
	return f.Bounds.Min.Y, f.Bounds.Max.Y, f.Track.Min.Y, f.Track.Max.Y
}

func (DefaultRenderer) DrawLinear(f *LinearFrame) paint.Primitive {
	s := f.Style
	g := paint.NewGroup()
	b0, b1, t0, t1 := f.cross()
	start, end := f.HandleCenter(normal.Min()), f.HandleCenter(normal.Max())
	mid := (t0 + t1) / 2

	g.Add(&paint.Quad{Box: f.alongBox(start, end, t0, mid), Color: s.Rail.Colors[0]})
	g.Add(&paint.Quad{Box: f.alongBox(start, end, mid, t1), Color: s.Rail.Colors[1]})

	handle := f.HandleCenter(f.Normal)
	if visible(s.Filled) {
		from := start
		if f.Bipolar {
			from = f.HandleCenter(normal.Center())
		}
		if from != handle {
			g.Add(&paint.Quad{Box: f.alongBox(from, handle, t0, t1), Color: s.Filled})
		}
	}

	mr := &s.ModRange
	for i, r := range f.ModRanges {
		if r == nil || !r.FilledVisible || mr.Width <= 0 {
			continue
		}
		var c0 float32
		step := float32(i) * (mr.Width + mr.Offset)
		switch mr.Placement {
		case marks.PlaceRightOrBottom:
			c0 = b1 + mr.Offset + step
		case marks.PlaceCenter:
			c0 = mid - mr.Width/2
		default:
			c0 = b0 - mr.Offset - mr.Width - step
		}
		c1 := c0 + mr.Width
		if visible(mr.Empty) {
			g.Add(&paint.Quad{Box: f.alongBox(start, end, c0, c1), Color: mr.Empty})
		}
		lo, hi := r.Ordered()
		if lo == hi {
			continue
		}
		clr := mr.Filled
		if r.IsReversed() {
			clr = mr.FilledInverse
		}
		g.Add(&paint.Quad{Box: f.alongBox(f.HandleCenter(lo), f.HandleCenter(hi), c0, c1), Color: clr})
	}

	g.Add(f.Ticks, f.Text)

	hl := s.Handle.Length / 2
	g.Add(&paint.Quad{
		Box:         f.alongBox(handle-hl, handle+hl, b0, b1),
		Color:       s.Handle.Color,
		Radius:      s.Handle.Radius,
		BorderWidth: s.Handle.BorderWidth,
		BorderColor: s.Handle.BorderColor,
	})
	if visible(s.Handle.NotchColor) && s.Handle.NotchWidth > 0 {
		from, to := math32.Vec2(handle, b0), math32.Vec2(handle, b1)
		if f.Vertical {
			from, to = math32.Vec2(b0, handle), math32.Vec2(b1, handle)
		}
		g.Add(&paint.Line{From: from, To: to, Width: s.Handle.NotchWidth, Color: s.Handle.NotchColor})
	}
	return g
}

// arc returns the arc between the given angles in either order,
// or nil if they are equal.
func arc(center math32.Vector2, radius, a0, a1, width float32, c color.RGBA) paint.Primitive {
	if a0 == a1 || width <= 0 || !visible(c) {
		return nil
	}
	return &paint.Arc{Center: center, Radius: radius, Start: min(a0, a1), End: max(a0, a1), Width: width, Color: c}
}

func (DefaultRenderer) DrawKnob(f *KnobFrame) paint.Primitive {
	s := f.Style
	g := paint.NewGroup()
	c := f.Knob.Center()
	r := f.Knob.Width() / 2

	if s.Arc.Width > 0 {
		ar := r + s.Arc.Offset
		g.Add(arc(c, ar, f.Angles.Min, f.Angles.Max, s.Arc.Width, s.Arc.Empty))
		from := f.Angles.Min
		fill := s.Arc.Filled
		if f.Bipolar {
			from = f.Angles.Angle(normal.Center())
			if f.Normal.Float32() < 0.5 && visible(s.Arc.FilledNegative) {
				fill = s.Arc.FilledNegative
			}
		}
		g.Add(arc(c, ar, from, f.Angle, s.Arc.Width, fill))
	}

	mr := &s.ModRange
	for i, m := range f.ModRanges {
		if m == nil || !m.FilledVisible {
			continue
		}
		mrad := r + mr.Offset + float32(i)*(mr.Width+1)
		g.Add(arc(c, mrad, f.Angles.Min, f.Angles.Max, mr.Width, mr.Empty))
		lo, hi := m.Ordered()
		clr := mr.Filled
		if m.IsReversed() {
			clr = mr.FilledInverse
		}
		g.Add(arc(c, mrad, f.Angles.Angle(lo), f.Angles.Angle(hi), mr.Width, clr))
	}

	g.Add(&paint.Quad{Box: f.Knob, Color: s.Back, Radius: r, BorderWidth: s.BorderWidth, BorderColor: s.BorderColor})
	if s.Notch.Width > 0 && visible(s.Notch.Color) {
		outer := r * (1 - s.Notch.Offset)
		inner := max(outer-r*s.Notch.Length, 0)
		g.Add(&paint.Line{From: c.Polar(inner, f.Angle), To: c.Polar(outer, f.Angle), Width: s.Notch.Width, Color: s.Notch.Color})
	}
	g.Add(f.Ticks, f.Text)
	return g
}

func (DefaultRenderer) DrawXYPad(f *XYPadFrame) paint.Primitive {
	s := f.Style
	b := f.Bounds
	g := paint.NewGroup()
	g.Add(&paint.Quad{Box: b, Color: s.Back, BorderWidth: s.BorderWidth, BorderColor: s.BorderColor})

	cross := func(p math32.Vector2, w float32, c color.RGBA) {
		if w <= 0 || !visible(c) {
			return
		}
		g.Add(&paint.Line{From: math32.Vec2(p.X, b.Min.Y), To: math32.Vec2(p.X, b.Max.Y), Width: w, Color: c})
		g.Add(&paint.Line{From: math32.Vec2(b.Min.X, p.Y), To: math32.Vec2(b.Max.X, p.Y), Width: w, Color: c})
	}
	h := f.Handle()
	cross(b.Center(), s.CenterLineWidth, s.CenterLineColor)
	cross(h, s.RailWidth, s.RailColor)

	d := s.HandleDiameter
	g.Add(&paint.Quad{
		Box:         math32.B2XYWH(h.X-d/2, h.Y-d/2, d, d),
		Color:       s.HandleColor,
		Radius:      d / 2,
		BorderWidth: s.HandleBorderWidth,
		BorderColor: s.HandleBorderColor,
	})
	return g
}

func (DefaultRenderer) DrawModRangeInput(f *DotFrame) paint.Primitive {
	s := f.Style
	g := paint.NewGroup()
	if s.Shape == styles.DotInvisible || s.Size <= 0 {
		return g
	}
	c := f.Bounds.Center()
	q := &paint.Quad{
		Box:         math32.B2XYWH(c.X-s.Size/2, c.Y-s.Size/2, s.Size, s.Size),
		Color:       s.Color,
		BorderWidth: s.BorderWidth,
		BorderColor: s.BorderColor,
	}
	if s.Shape == styles.DotCircle {
		q.Radius = s.Size / 2
	}
	return g.Add(q)
}
