// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint defines the fully resolved geometric primitives that
// controls hand to a renderer: quads, lines, arcs, and text runs, in
// pixel coordinates. Turning them into pixels is up to the host.
package paint

import (
	"fmt"
	"image/color"

	"cogentcore.org/controls/math32"
)

// Primitive is a union interface for paint primitives:
// [Quad], [Line], [Arc], [Text], and [Group].
type Primitive interface {

	// Bounds returns the bounding box of the primitive.
	Bounds() math32.Box2

	isPrimitive()
}

// Quad is an axis-aligned rectangle, optionally with rounded corners
// and a border. A quad whose Radius is half of its size is a circle.
type Quad struct {
	Box         math32.Box2
	Color       color.RGBA
	Radius      float32
	BorderWidth float32
	BorderColor color.RGBA
}

func (q *Quad) Bounds() math32.Box2 { return q.Box }

func (q *Quad) String() string {
	return fmt.Sprintf("Quad{%v, Color: %v, Radius: %g}", q.Box, q.Color, q.Radius)
}

// Line is a straight line segment with a stroke width.
type Line struct {
	From, To math32.Vector2
	Width    float32
	Color    color.RGBA
}

func (l *Line) Bounds() math32.Box2 {
	hw := l.Width / 2
	return math32.Box2{Min: l.From.Min(l.To).SubScalar(hw), Max: l.From.Max(l.To).AddScalar(hw)}
}

// Arc is a stroked circular arc. Angles are in radians, with
// 0 pointing straight down and increasing clockwise, matching
// [math32.Vector2.Polar]. The arc runs from Start to End.
type Arc struct {
	Center     math32.Vector2
	Radius     float32
	Start, End float32
	Width      float32
	Color      color.RGBA
}

// Bounds returns the bounding box of the full circle of the arc.
func (a *Arc) Bounds() math32.Box2 {
	r := a.Radius + a.Width/2
	return math32.Box2{Min: a.Center.SubScalar(r), Max: a.Center.AddScalar(r)}
}

// Text is a single run of text to be laid out by the renderer within
// its box according to the alignments.
type Text struct {
	Content string
	Box     math32.Box2
	Size    float32
	Color   color.RGBA
	Font    string
	HAlign  Aligns
	VAlign  Aligns
}

func (t *Text) Bounds() math32.Box2 { return t.Box }

func (q *Quad) isPrimitive() {}
func (l *Line) isPrimitive() {}
func (a *Arc) isPrimitive()  {}
func (t *Text) isPrimitive() {}
