// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package marks computes the pixel geometry of tick marks and text
// labels placed along linear and radial control axes, and caches it
// across redraws.
package marks

import (
	"cogentcore.org/controls/normal"
)

// Tiers are the levels of prominence of tick marks, each drawn
// with its own shape. Tier1 is the most prominent.
type Tiers int32

const (
	// NoTier is used where a tier is optional, to mean none.
	NoTier Tiers = iota
	Tier1
	Tier2
	Tier3
)

// TickMark is a single tick mark position with its tier.
type TickMark struct {
	Position normal.Normal
	Tier     Tiers
}

// TickGroup is an immutable set of tick marks partitioned into tiers.
// Geometry caches key on the identity of the group, so a group that is
// reused across frames is computed only once.
type TickGroup struct {
	tiers [3][]normal.Normal
	n     int
}

// NewTickGroup returns a new group of the given tick marks.
// Marks with [NoTier] are dropped.
func NewTickGroup(marks ...TickMark) *TickGroup {
	g := &TickGroup{}
	for _, m := range marks {
		if m.Tier < Tier1 || m.Tier > Tier3 {
			continue
		}
		g.tiers[m.Tier-1] = append(g.tiers[m.Tier-1], m.Position)
		g.n++
	}
	return g
}

// Tier returns the positions of the marks in the given tier, in the
// order they were given.
func (g *TickGroup) Tier(t Tiers) []normal.Normal {
	if g == nil || t < Tier1 || t > Tier3 {
		return nil
	}
	return g.tiers[t-1]
}

// Len returns the total number of marks in all tiers.
func (g *TickGroup) Len() int {
	if g == nil {
		return 0
	}
	return g.n
}

// Equal returns whether the two groups have the same marks in the same tiers.
func (g *TickGroup) Equal(o *TickGroup) bool {
	if g.Len() != o.Len() {
		return false
	}
	for t := Tier1; t <= Tier3; t++ {
		a, b := g.Tier(t), o.Tier(t)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}

// evenly returns n positions spaced evenly from min to max.
// One position is the center.
func evenly(n int) []normal.Normal {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []normal.Normal{normal.Center()}
	}
	pos := make([]normal.Normal, n)
	span := 1 / float32(n-1)
	for i := range pos {
		pos[i] = normal.New(float32(i) * span)
	}
	pos[n-1] = normal.Max()
	return pos
}

// EvenlySpaced returns a group of n marks of the given tier spaced
// evenly from min to max. A single mark is placed at the center.
func EvenlySpaced(n int, tier Tiers) *TickGroup {
	pos := evenly(n)
	marks := make([]TickMark, len(pos))
	for i, p := range pos {
		marks[i] = TickMark{p, tier}
	}
	return NewTickGroup(marks...)
}

// Subdivided returns a group that divides the range into one+1 [Tier1]
// spans, each of those into two+1 [Tier2] spans, and each of those into
// three+1 [Tier3] spans. The ends get marks of the sides tier, or none
// for [NoTier].
func Subdivided(one, two, three int, sides Tiers) *TickGroup {
	var marks []TickMark
	oneSpan := 1 / float32(max(one, 0)+1)
	twoSpan := oneSpan / float32(max(two, 0)+1)
	threeSpan := twoSpan / float32(max(three, 0)+1)
	for i1 := 0; i1 <= max(one, 0); i1++ {
		p1 := float32(i1) * oneSpan
		if i1 != 0 {
			marks = append(marks, TickMark{normal.New(p1), Tier1})
		}
		for i2 := 0; i2 <= max(two, 0); i2++ {
			p2 := p1 + float32(i2)*twoSpan
			if i2 != 0 {
				marks = append(marks, TickMark{normal.New(p2), Tier2})
			}
			for i3 := 1; i3 <= max(three, 0); i3++ {
				marks = append(marks, TickMark{normal.New(p2 + float32(i3)*threeSpan), Tier3})
			}
		}
	}
	if sides != NoTier {
		marks = append(marks, TickMark{normal.Min(), sides}, TickMark{normal.Max(), sides})
	}
	return NewTickGroup(marks...)
}

// MinMax returns a group with marks of the given tier at min and max.
func MinMax(tier Tiers) *TickGroup {
	return NewTickGroup(TickMark{normal.Min(), tier}, TickMark{normal.Max(), tier})
}

// CenterTick returns a group with a single mark of the given tier at the center.
func CenterTick(tier Tiers) *TickGroup {
	return NewTickGroup(TickMark{normal.Center(), tier})
}

// MinMaxAndCenter returns a group with marks at min and max of the
// minMax tier, and a mark at the center of the center tier.
func MinMaxAndCenter(minMax, center Tiers) *TickGroup {
	return NewTickGroup(TickMark{normal.Min(), minMax}, TickMark{normal.Center(), center}, TickMark{normal.Max(), minMax})
}

// TextMark is a single text label at a position.
type TextMark struct {
	Position normal.Normal
	Label    string
}

// TextGroup is an immutable ordered set of text marks.
type TextGroup struct {
	marks []TextMark
}

// NewTextGroup returns a new group of the given text marks.
func NewTextGroup(marks ...TextMark) *TextGroup {
	return &TextGroup{marks: append([]TextMark(nil), marks...)}
}

// Marks returns the marks in the group.
func (g *TextGroup) Marks() []TextMark {
	if g == nil {
		return nil
	}
	return g.marks
}

// Len returns the number of marks in the group.
func (g *TextGroup) Len() int {
	return len(g.Marks())
}

// Equal returns whether the two groups have the same marks.
func (g *TextGroup) Equal(o *TextGroup) bool {
	a, b := g.Marks(), o.Marks()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TextMinMaxAndCenter returns a group with labels at min, max and center.
// Empty labels are omitted.
func TextMinMaxAndCenter(min, max, center string) *TextGroup {
	var marks []TextMark
	for _, m := range []TextMark{{normal.Min(), min}, {normal.Center(), center}, {normal.Max(), max}} {
		if m.Label != "" {
			marks = append(marks, m)
		}
	}
	return NewTextGroup(marks...)
}

// TextEvenlySpaced returns a group of the given labels spaced evenly
// from min to max. A single label is placed at the center.
func TextEvenlySpaced(labels ...string) *TextGroup {
	pos := evenly(len(labels))
	marks := make([]TextMark, len(pos))
	for i, p := range pos {
		marks[i] = TextMark{p, labels[i]}
	}
	return NewTextGroup(marks...)
}

// TextFromNormalized returns a group pairing the given positions and
// labels. Extra positions or labels are ignored.
func TextFromNormalized(positions []normal.Normal, labels []string) *TextGroup {
	n := min(len(positions), len(labels))
	marks := make([]TextMark, n)
	for i := 0; i < n; i++ {
		marks[i] = TextMark{positions[i], labels[i]}
	}
	return NewTextGroup(marks...)
}
