// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Box2 is an axis-aligned rectangle from Min to Max, in pixels with
// y increasing downward. It is the layout bounds type of every control.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns the box with the given corners.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2XYWH returns the box at the given position with the given size.
func B2XYWH(x, y, width, height float32) Box2 {
	return Box2{Vec2(x, y), Vec2(x+width, y+height)}
}

func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// IsEmpty returns whether the box has no area.
func (b Box2) IsEmpty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

func (b Box2) Width() float32 { return b.Max.X - b.Min.X }

func (b Box2) Height() float32 { return b.Max.Y - b.Min.Y }

func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ContainsPoint returns whether the point is in the box, edges included.
func (b Box2) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Inset returns the box shrunk by dx on the left and right and by dy on
// the top and bottom, growing it for negative values. The result may
// have a negative size.
func (b Box2) Inset(dx, dy float32) Box2 {
	return Box2{
		Min: Vec2(b.Min.X+dx, b.Min.Y+dy),
		Max: Vec2(b.Max.X-dx, b.Max.Y-dy),
	}
}

// ProjectX returns the x coordinate at fraction v of the width.
func (b Box2) ProjectX(v float32) float32 {
	return b.Min.X + v*b.Width()
}

// ProjectY returns the y coordinate at fraction v of the height.
func (b Box2) ProjectY(v float32) float32 {
	return b.Min.Y + v*b.Height()
}
