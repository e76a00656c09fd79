// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marks

import (
	"fmt"
	"image/color"

	"cogentcore.org/controls/math32"
	"cogentcore.org/controls/normal"
	"cogentcore.org/controls/paint"
)

// ShapeKinds are the kinds of tick mark shape.
type ShapeKinds int32

const (
	// NoShape draws nothing for the tier.
	NoShape ShapeKinds = iota

	// LineShape is a rectangular line.
	LineShape

	// CircleShape is a filled circle.
	CircleShape
)

// Shape is the shape of the tick marks of one tier.
type Shape struct {
	Kind ShapeKinds

	// Length is the extent of a line across the axis.
	Length float32

	// Width is the thickness of a line along the axis.
	Width float32

	// Diameter is the diameter of a circle.
	Diameter float32

	Color color.RGBA
}

// Line returns a line shape. It panics on negative sizes.
func Line(length, width float32, c color.RGBA) Shape {
	if length < 0 || width < 0 {
		panic(fmt.Sprintf("marks.Line: negative size: length %g, width %g", length, width))
	}
	return Shape{Kind: LineShape, Length: length, Width: width, Color: c}
}

// Circle returns a circle shape. It panics on a negative diameter.
func Circle(diameter float32, c color.RGBA) Shape {
	if diameter < 0 {
		panic(fmt.Sprintf("marks.Circle: negative diameter %g", diameter))
	}
	return Shape{Kind: CircleShape, Diameter: diameter, Color: c}
}

// thickness returns the size of the shape along the axis and its
// length across it.
func (sh Shape) thickness() (thick, length float32) {
	if sh.Kind == CircleShape {
		return sh.Diameter, sh.Diameter
	}
	return sh.Width, sh.Length
}

// TickStyle is the style of tick marks, with a shape per tier.
type TickStyle struct {
	Tier1, Tier2, Tier3 Shape
}

// Shape returns the shape for the given tier.
func (ts *TickStyle) Shape(t Tiers) Shape {
	switch t {
	case Tier1:
		return ts.Tier1
	case Tier2:
		return ts.Tier2
	case Tier3:
		return ts.Tier3
	}
	return Shape{}
}

// TextStyle is the style of text marks.
type TextStyle struct {
	Color color.RGBA

	// Size is the font size in pixels.
	Size float32

	// BoundsWidth and BoundsHeight are the size of the box
	// each label is laid out in.
	BoundsWidth  float32
	BoundsHeight float32

	Font string
}

// Offset moves marks inward from the edges of the bounds: X from the left
// and right and Y from the top and bottom. Negative values move outward.
// For radial marks, X is the distance from the rim.
type Offset struct {
	X, Y float32
}

// Rect returns the given bounds with the offset applied.
func (o Offset) Rect(b math32.Box2) math32.Box2 {
	return b.Inset(o.X, o.Y)
}

// PlacementKinds are the policies for placing marks relative to the bounds.
type PlacementKinds int32

const (
	// PlaceBothSides draws the marks once along each edge parallel to the axis.
	PlaceBothSides PlacementKinds = iota

	// PlaceLeftOrTop draws the marks along the left (vertical axis)
	// or top (horizontal axis) edge.
	PlaceLeftOrTop

	// PlaceRightOrBottom draws the marks along the right (vertical axis)
	// or bottom (horizontal axis) edge.
	PlaceRightOrBottom

	// PlaceCenter draws the marks once through the centerline.
	PlaceCenter

	// PlaceCenterSplit draws the marks twice, mirrored about the
	// centerline with a gap between the halves.
	PlaceCenterSplit
)

// Placement is the placement of marks relative to the bounds of a control.
// Use one of the constructors rather than setting fields directly.
type Placement struct {
	Kind   PlacementKinds
	Offset Offset

	// Inside is whether edge-placed marks point into the bounds
	// rather than away from them.
	Inside bool

	// FillLength stretches centered tick marks to span the bounds
	// instead of using their own length.
	FillLength bool

	// Gap is the distance between the two halves of [PlaceCenterSplit].
	Gap float32

	// Align is the alignment of centered text marks across the axis.
	Align paint.Aligns
}

// BothSides returns a placement along both edges parallel to the axis.
func BothSides(offset Offset, inside bool) Placement {
	return Placement{Kind: PlaceBothSides, Offset: offset, Inside: inside}
}

// LeftOrTop returns a placement along the left or top edge.
func LeftOrTop(offset Offset, inside bool) Placement {
	return Placement{Kind: PlaceLeftOrTop, Offset: offset, Inside: inside}
}

// RightOrBottom returns a placement along the right or bottom edge.
func RightOrBottom(offset Offset, inside bool) Placement {
	return Placement{Kind: PlaceRightOrBottom, Offset: offset, Inside: inside}
}

// Centered returns a placement through the centerline.
func Centered(offset Offset, fillLength bool) Placement {
	return Placement{Kind: PlaceCenter, Offset: offset, FillLength: fillLength}
}

// CenteredText returns a placement of text marks through the centerline,
// aligned across the axis by align.
func CenteredText(offset Offset, align paint.Aligns) Placement {
	return Placement{Kind: PlaceCenter, Offset: offset, Align: align}
}

// CenterSplit returns a placement mirrored about the centerline with the
// given gap between the halves. It panics on a negative gap.
func CenterSplit(offset Offset, fillLength bool, gap float32) Placement {
	if gap < 0 {
		panic(fmt.Sprintf("marks.CenterSplit: negative gap %g", gap))
	}
	return Placement{Kind: PlaceCenterSplit, Offset: offset, FillLength: fillLength, Gap: gap}
}

// AngleRange is the range of angles, in radians, swept by a radial axis
// from its minimum to its maximum. An angle of 0 points straight down
// and angles increase clockwise.
type AngleRange struct {
	Min, Max float32
}

// DefaultAngleRange returns the range from 30° to 330°, leaving a
// 60° gap at the bottom.
func DefaultAngleRange() AngleRange {
	return AngleRange{Min: math32.DegToRad(30), Max: math32.DegToRad(330)}
}

// NewAngleRange returns the range between the given angles in degrees.
func NewAngleRange(minDeg, maxDeg float32) AngleRange {
	return AngleRange{Min: math32.DegToRad(minDeg), Max: math32.DegToRad(maxDeg)}
}

// Angle returns the angle for the given normal.
func (ar AngleRange) Angle(n normal.Normal) float32 {
	return ar.Min + n.Scale(ar.Max-ar.Min)
}

// Span returns the swept angle.
func (ar AngleRange) Span() float32 {
	return ar.Max - ar.Min
}
