// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import "cogentcore.org/controls/math32"

// Group is an ordered collection of primitives, drawn in order.
// A Group is itself a [Primitive], so groups nest.
type Group struct {
	Primitives []Primitive
}

// NewGroup returns a new group of the given primitives.
func NewGroup(prims ...Primitive) *Group {
	return &Group{Primitives: prims}
}

// Add adds primitive(s) to the group, skipping nil ones and empty groups.
func (g *Group) Add(prims ...Primitive) *Group {
	for _, p := range prims {
		if p == nil {
			continue
		}
		if sg, ok := p.(*Group); ok && sg.Len() == 0 {
			continue
		}
		g.Primitives = append(g.Primitives, p)
	}
	return g
}

// Reset empties the group, preserving the existing slice memory for re-use.
func (g *Group) Reset() {
	g.Primitives = g.Primitives[:0]
}

// Len returns the number of primitives directly in the group.
// A nil group has length 0.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Primitives)
}

// Bounds returns the union of the bounds of all primitives in the group.
func (g *Group) Bounds() math32.Box2 {
	if g.Len() == 0 {
		return math32.Box2{}
	}
	b := g.Primitives[0].Bounds()
	for _, p := range g.Primitives[1:] {
		pb := p.Bounds()
		b.Min = b.Min.Min(pb.Min)
		b.Max = b.Max.Max(pb.Max)
	}
	return b
}

// Walk calls fun for each non-group primitive in the group, recursively,
// in draw order.
func (g *Group) Walk(fun func(p Primitive)) {
	if g == nil {
		return
	}
	for _, p := range g.Primitives {
		if sg, ok := p.(*Group); ok {
			sg.Walk(fun)
			continue
		}
		fun(p)
	}
}

func (g *Group) isPrimitive() {}
