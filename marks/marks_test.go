// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marks

import (
	"image/color"
	"testing"

	"cogentcore.org/controls/base/tolassert"
	"cogentcore.org/controls/math32"
	"cogentcore.org/controls/normal"
	"cogentcore.org/controls/paint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gray = color.RGBA{100, 100, 100, 255}

func lineStyle(length, width float32) *TickStyle {
	return &TickStyle{Tier1: Line(length, width, gray), Tier2: Line(length/2, width, gray)}
}

func quads(t *testing.T, g *paint.Group) []math32.Box2 {
	var boxes []math32.Box2
	g.Walk(func(p paint.Primitive) {
		q, ok := p.(*paint.Quad)
		require.True(t, ok, "expected a quad, got %T", p)
		boxes = append(boxes, q.Box)
	})
	return boxes
}

func texts(t *testing.T, g *paint.Group) []*paint.Text {
	var ts []*paint.Text
	g.Walk(func(p paint.Primitive) {
		tx, ok := p.(*paint.Text)
		require.True(t, ok, "expected text, got %T", p)
		ts = append(ts, tx)
	})
	return ts
}

func TestTickGroups(t *testing.T) {
	g := EvenlySpaced(5, Tier2)
	assert.Equal(t, 5, g.Len())
	assert.Empty(t, g.Tier(Tier1))
	assert.Equal(t, []normal.Normal{normal.New(0), normal.New(0.25), normal.New(0.5), normal.New(0.75), normal.New(1)}, g.Tier(Tier2))

	assert.Equal(t, []normal.Normal{normal.Center()}, EvenlySpaced(1, Tier1).Tier(Tier1))
	assert.Equal(t, 0, EvenlySpaced(0, Tier1).Len())

	s := Subdivided(1, 1, 0, Tier1)
	assert.Equal(t, []normal.Normal{normal.New(0.5), normal.Min(), normal.Max()}, s.Tier(Tier1))
	assert.Equal(t, []normal.Normal{normal.New(0.25), normal.New(0.75)}, s.Tier(Tier2))
	assert.Equal(t, 5, s.Len())

	s3 := Subdivided(0, 0, 3, NoTier)
	assert.Equal(t, []normal.Normal{normal.New(0.25), normal.New(0.5), normal.New(0.75)}, s3.Tier(Tier3))

	mmc := MinMaxAndCenter(Tier1, Tier2)
	assert.Equal(t, []normal.Normal{normal.Min(), normal.Max()}, mmc.Tier(Tier1))
	assert.Equal(t, []normal.Normal{normal.Center()}, mmc.Tier(Tier2))
	assert.True(t, mmc.Equal(MinMaxAndCenter(Tier1, Tier2)))
	assert.False(t, mmc.Equal(MinMax(Tier1)))
	assert.Equal(t, 1, CenterTick(Tier3).Len())

	assert.Equal(t, 1, NewTickGroup(TickMark{normal.Center(), NoTier}, TickMark{normal.Center(), Tier1}).Len())
	var nilGroup *TickGroup
	assert.Equal(t, 0, nilGroup.Len())
	assert.Nil(t, nilGroup.Tier(Tier1))
}

func TestTextGroups(t *testing.T) {
	g := TextMinMaxAndCenter("-12", "+12", "")
	assert.Equal(t, []TextMark{{normal.Min(), "-12"}, {normal.Max(), "+12"}}, g.Marks())

	e := TextEvenlySpaced("a", "b", "c")
	assert.Equal(t, []TextMark{{normal.Min(), "a"}, {normal.Center(), "b"}, {normal.Max(), "c"}}, e.Marks())
	assert.True(t, e.Equal(TextEvenlySpaced("a", "b", "c")))
	assert.False(t, e.Equal(TextEvenlySpaced("a", "b")))

	f := TextFromNormalized([]normal.Normal{normal.New(0.1), normal.New(0.2)}, []string{"x"})
	assert.Equal(t, []TextMark{{normal.New(0.1), "x"}}, f.Marks())
}

func TestCenterFillLength(t *testing.T) {
	bounds := math32.B2XYWH(0, 0, 100, 200)
	g := TicksVertical(bounds, MinMax(Tier1), lineStyle(10, 2), Centered(Offset{}, true), false, nil)
	boxes := quads(t, g)
	require.Len(t, boxes, 2)
	for _, b := range boxes {
		tolassert.Equal(t, 10, b.Min.X)
		tolassert.Equal(t, 90, b.Max.X)
	}
	tolassert.EqualBox(t, math32.B2XYWH(10, 199, 80, 2), boxes[0])
	tolassert.EqualBox(t, math32.B2XYWH(10, -1, 80, 2), boxes[1])

	g = TicksHorizontal(math32.B2XYWH(0, 0, 200, 100), MinMax(Tier1), lineStyle(10, 2), Centered(Offset{}, true), false, nil)
	boxes = quads(t, g)
	require.Len(t, boxes, 2)
	tolassert.EqualBox(t, math32.B2XYWH(-1, 10, 2, 80), boxes[0])
	tolassert.EqualBox(t, math32.B2XYWH(199, 10, 2, 80), boxes[1])
}

func TestCenterNoFill(t *testing.T) {
	g := TicksVertical(math32.B2XYWH(0, 0, 40, 100), CenterTick(Tier1), lineStyle(10, 2), Centered(Offset{}, false), false, nil)
	boxes := quads(t, g)
	require.Len(t, boxes, 1)
	tolassert.EqualBox(t, math32.B2XYWH(15, 49, 10, 2), boxes[0])
}

func TestBothSidesHorizontal(t *testing.T) {
	bounds := math32.B2XYWH(10, 20, 100, 30)
	group := CenterTick(Tier1)
	style := lineStyle(4, 2)

	boxes := quads(t, TicksHorizontal(bounds, group, style, BothSides(Offset{}, true), false, nil))
	require.Len(t, boxes, 2)
	tolassert.EqualBox(t, math32.B2(59, 20, 61, 24), boxes[0])
	tolassert.EqualBox(t, math32.B2(59, 46, 61, 50), boxes[1])

	boxes = quads(t, TicksHorizontal(bounds, group, style, BothSides(Offset{}, false), false, nil))
	require.Len(t, boxes, 2)
	tolassert.EqualBox(t, math32.B2(59, 16, 61, 20), boxes[0])
	tolassert.EqualBox(t, math32.B2(59, 50, 61, 54), boxes[1])
}

func TestEdgesAndOffset(t *testing.T) {
	bounds := math32.B2XYWH(10, 20, 100, 30)
	group := NewTickGroup(TickMark{normal.Min(), Tier1})
	style := lineStyle(4, 2)

	boxes := quads(t, TicksHorizontal(bounds, group, style, LeftOrTop(Offset{X: 5, Y: 2}, true), false, nil))
	require.Len(t, boxes, 1)
	tolassert.EqualBox(t, math32.B2XYWH(14, 22, 2, 4), boxes[0])

	boxes = quads(t, TicksHorizontal(bounds, group, style, RightOrBottom(Offset{}, true), false, nil))
	tolassert.EqualBox(t, math32.B2XYWH(9, 46, 2, 4), boxes[0])

	boxes = quads(t, TicksHorizontal(bounds, group, style, RightOrBottom(Offset{}, false), true, nil))
	tolassert.EqualBox(t, math32.B2XYWH(109, 50, 2, 4), boxes[0])

	boxes = quads(t, TicksVertical(math32.B2XYWH(0, 0, 20, 100), group, style, LeftOrTop(Offset{}, false), false, nil))
	tolassert.EqualBox(t, math32.B2XYWH(-4, 99, 4, 2), boxes[0])

	boxes = quads(t, TicksVertical(math32.B2XYWH(0, 0, 20, 100), group, style, LeftOrTop(Offset{}, false), true, nil))
	tolassert.EqualBox(t, math32.B2XYWH(-4, -1, 4, 2), boxes[0])
}

func TestTiers(t *testing.T) {
	group := NewTickGroup(TickMark{normal.Center(), Tier1}, TickMark{normal.Min(), Tier2}, TickMark{normal.Max(), Tier3})
	style := &TickStyle{Tier1: Line(8, 2, gray), Tier2: Line(4, 2, gray)}
	boxes := quads(t, TicksHorizontal(math32.B2XYWH(0, 0, 100, 20), group, style, LeftOrTop(Offset{}, true), false, nil))
	require.Len(t, boxes, 2)
	tolassert.Equal(t, 8, boxes[0].Height())
	tolassert.Equal(t, 4, boxes[1].Height())
}

func TestCenterSplit(t *testing.T) {
	bounds := math32.B2XYWH(0, 0, 100, 40)
	group := CenterTick(Tier1)

	boxes := quads(t, TicksHorizontal(bounds, group, lineStyle(6, 2), CenterSplit(Offset{}, false, 4), false, nil))
	require.Len(t, boxes, 2)
	tolassert.EqualBox(t, math32.B2XYWH(49, 12, 2, 6), boxes[0])
	tolassert.EqualBox(t, math32.B2XYWH(49, 22, 2, 6), boxes[1])

	boxes = quads(t, TicksHorizontal(bounds, group, lineStyle(6, 2), CenterSplit(Offset{}, true, 4), false, nil))
	require.Len(t, boxes, 2)
	tolassert.EqualBox(t, math32.B2XYWH(49, 0, 2, 18), boxes[0])
	tolassert.EqualBox(t, math32.B2XYWH(49, 22, 2, 18), boxes[1])

	assert.Panics(t, func() { CenterSplit(Offset{}, false, -1) })
}

func TestCircles(t *testing.T) {
	style := &TickStyle{Tier1: Circle(4, gray)}
	g := TicksVertical(math32.B2XYWH(0, 0, 20, 100), CenterTick(Tier1), style, LeftOrTop(Offset{}, true), false, nil)
	require.Equal(t, 1, g.Len())
	q := g.Primitives[0].(*paint.Quad)
	tolassert.EqualBox(t, math32.B2XYWH(0, 48, 4, 4), q.Box)
	tolassert.Equal(t, 2, q.Radius)

	g = TicksVertical(math32.B2XYWH(0, 0, 20, 100), CenterTick(Tier1), style, RightOrBottom(Offset{}, true), false, nil)
	tolassert.EqualBox(t, math32.B2XYWH(16, 48, 4, 4), g.Primitives[0].Bounds())

	assert.Panics(t, func() { Circle(-1, gray) })
	assert.Panics(t, func() { Line(-1, 1, gray) })
}

func TestDegenerate(t *testing.T) {
	style := lineStyle(4, 2)
	assert.Equal(t, 0, TicksHorizontal(math32.Box2{}, MinMax(Tier1), style, LeftOrTop(Offset{}, true), false, nil).Len())
	assert.Equal(t, 0, TicksHorizontal(math32.B2XYWH(0, 0, 10, 10), nil, style, LeftOrTop(Offset{}, true), false, nil).Len())
	assert.Equal(t, 0, TicksHorizontal(math32.B2XYWH(0, 0, 10, 10), MinMax(Tier1), style, LeftOrTop(Offset{X: 20}, true), false, nil).Len())
	assert.Equal(t, 0, TicksVertical(math32.B2XYWH(0, 0, 6, 100), MinMax(Tier1), style, Centered(Offset{}, true), false, nil).Len())
	assert.Equal(t, 0, TextHorizontal(math32.Box2{}, TextEvenlySpaced("a"), &TextStyle{}, LeftOrTop(Offset{}, true), false, nil).Len())
	assert.Equal(t, 0, TicksRadial(math32.Box2{}, MinMax(Tier1), style, LeftOrTop(Offset{}, true), false, DefaultAngleRange(), nil).Len())
}

func TestTextHorizontal(t *testing.T) {
	bounds := math32.B2XYWH(0.3, 0, 100, 20)
	style := &TextStyle{Size: 12, BoundsWidth: 30, BoundsHeight: 10, Color: gray}
	group := TextMinMaxAndCenter("lo", "hi", "mid")

	ts := texts(t, TextHorizontal(bounds, group, style, BothSides(Offset{}, true), false, nil))
	require.Len(t, ts, 6)
	assert.Equal(t, "lo", ts[0].Content)
	tolassert.EqualBox(t, math32.B2XYWH(-15, 0, 30, 10), ts[0].Box)
	tolassert.EqualBox(t, math32.B2XYWH(35, 0, 30, 10), ts[1].Box)
	assert.Equal(t, paint.Center, ts[0].HAlign)
	assert.Equal(t, paint.Start, ts[0].VAlign)
	tolassert.EqualBox(t, math32.B2XYWH(-15, 10, 30, 10), ts[3].Box)
	assert.Equal(t, paint.End, ts[3].VAlign)

	ts = texts(t, TextHorizontal(bounds, group, style, LeftOrTop(Offset{}, false), true, nil))
	require.Len(t, ts, 3)
	tolassert.EqualBox(t, math32.B2XYWH(85, -10, 30, 10), ts[0].Box)
	assert.Equal(t, paint.End, ts[0].VAlign)

	ts = texts(t, TextHorizontal(bounds, group, style, CenteredText(Offset{}, paint.End), false, nil))
	require.Len(t, ts, 3)
	tolassert.EqualBox(t, math32.B2XYWH(35, 0, 30, 10), ts[1].Box)
}

func TestTextVertical(t *testing.T) {
	bounds := math32.B2XYWH(0, 0, 20, 100)
	style := &TextStyle{Size: 12, BoundsWidth: 30, BoundsHeight: 10}
	group := NewTextGroup(TextMark{normal.Min(), "min"})

	ts := texts(t, TextVertical(bounds, group, style, RightOrBottom(Offset{}, false), false, nil))
	require.Len(t, ts, 1)
	tolassert.EqualBox(t, math32.B2XYWH(20, 95, 30, 10), ts[0].Box)
	assert.Equal(t, paint.Start, ts[0].HAlign)
	assert.Equal(t, paint.Center, ts[0].VAlign)

	ts = texts(t, TextVertical(bounds, group, style, LeftOrTop(Offset{}, false), true, nil))
	tolassert.EqualBox(t, math32.B2XYWH(-30, -5, 30, 10), ts[0].Box)
	assert.Equal(t, paint.End, ts[0].HAlign)
}

func TestRadial(t *testing.T) {
	bounds := math32.B2XYWH(0, 0, 100, 100)
	style := lineStyle(10, 2)
	angles := DefaultAngleRange()

	g := TicksRadial(bounds, CenterTick(Tier1), style, LeftOrTop(Offset{}, true), false, angles, nil)
	require.Equal(t, 1, g.Len())
	l := g.Primitives[0].(*paint.Line)
	tolassert.EqualVector(t, math32.Vec2(50, 10), l.From)
	tolassert.EqualVector(t, math32.Vec2(50, 0), l.To)

	g = TicksRadial(bounds, CenterTick(Tier1), style, LeftOrTop(Offset{}, false), false, angles, nil)
	l = g.Primitives[0].(*paint.Line)
	tolassert.EqualVector(t, math32.Vec2(50, 0), l.From)
	tolassert.EqualVector(t, math32.Vec2(50, -10), l.To)

	g = TicksRadial(bounds, NewTickGroup(TickMark{normal.Min(), Tier1}), style, Centered(Offset{}, true), false, angles, nil)
	l = g.Primitives[0].(*paint.Line)
	tolassert.EqualVector(t, math32.Vec2(50, 50), l.From)
	tolassert.EqualVector(t, math32.Vec2(25, 50+25*math32.Sqrt(3)), l.To)

	g = TicksRadial(bounds, NewTickGroup(TickMark{normal.Min(), Tier1}), style, Centered(Offset{}, true), true, angles, nil)
	l = g.Primitives[0].(*paint.Line)
	tolassert.EqualVector(t, math32.Vec2(75, 50+25*math32.Sqrt(3)), l.To)

	assert.Equal(t, 4, TicksRadial(bounds, MinMax(Tier1), style, BothSides(Offset{}, true), false, angles, nil).Len())

	ts := texts(t, TextRadial(bounds, TextMinMaxAndCenter("", "", "0"), &TextStyle{BoundsWidth: 20, BoundsHeight: 10}, LeftOrTop(Offset{}, false), false, angles, nil))
	require.Len(t, ts, 1)
	tolassert.EqualBox(t, math32.B2XYWH(40, -15, 20, 10), ts[0].Box)
}

func TestAngleRange(t *testing.T) {
	ar := DefaultAngleRange()
	tolassert.Equal(t, math32.Pi, ar.Angle(normal.Center()))
	tolassert.Equal(t, math32.DegToRad(300), ar.Span())
	tolassert.Equal(t, math32.DegToRad(90), NewAngleRange(0, 180).Angle(normal.Center()))
}

func TestCache(t *testing.T) {
	bounds := math32.B2XYWH(0, 0, 100, 20)
	group := EvenlySpaced(11, Tier1)
	style := lineStyle(4, 1)
	pl := BothSides(Offset{}, true)
	c := &Cache{}

	g1 := TicksHorizontal(bounds, group, style, pl, false, c)
	g2 := TicksHorizontal(bounds, group, style, pl, false, c)
	assert.Equal(t, 1, c.Computes())
	assert.Same(t, g1, g2)

	TicksHorizontal(math32.B2XYWH(0, 0, 101, 20), group, style, pl, false, c)
	assert.Equal(t, 2, c.Computes())
	TicksHorizontal(math32.B2XYWH(0, 0, 101, 20), EvenlySpaced(11, Tier1), style, pl, false, c)
	assert.Equal(t, 3, c.Computes())
	TicksHorizontal(bounds, group, style, pl, false, c)
	assert.Equal(t, 4, c.Computes())
	TicksHorizontal(bounds, group, lineStyle(5, 1), pl, false, c)
	assert.Equal(t, 5, c.Computes())
	TicksHorizontal(bounds, group, style, LeftOrTop(Offset{}, true), false, c)
	assert.Equal(t, 6, c.Computes())
	TicksHorizontal(bounds, group, style, LeftOrTop(Offset{}, true), true, c)
	assert.Equal(t, 7, c.Computes())
	TicksHorizontal(bounds, group, style, LeftOrTop(Offset{}, true), true, c)
	assert.Equal(t, 7, c.Computes())
	TicksVertical(bounds, group, style, LeftOrTop(Offset{}, true), true, c)
	assert.Equal(t, 8, c.Computes())

	c.Reset()
	TicksVertical(bounds, group, style, LeftOrTop(Offset{}, true), true, c)
	assert.Equal(t, 9, c.Computes())

	tc := &Cache{}
	tg := TextEvenlySpaced("a", "b")
	ts := &TextStyle{Size: 10, BoundsWidth: 20, BoundsHeight: 10}
	TextHorizontal(bounds, tg, ts, pl, false, tc)
	TextHorizontal(bounds, tg, ts, pl, false, tc)
	assert.Equal(t, 1, tc.Computes())
	TextHorizontal(bounds, tg, &TextStyle{Size: 11, BoundsWidth: 20, BoundsHeight: 10}, pl, false, tc)
	assert.Equal(t, 2, tc.Computes())
}
