// Copyright 2025 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2XYWH(10, 20, 100, 50)
	assert.Equal(t, float32(100), b.Width())
	assert.Equal(t, float32(50), b.Height())
	assert.Equal(t, Vec2(60, 45), b.Center())
	assert.True(t, b.ContainsPoint(Vec2(10, 20)))
	assert.True(t, b.ContainsPoint(Vec2(110, 70)))
	assert.False(t, b.ContainsPoint(Vec2(111, 70)))
	assert.False(t, b.IsEmpty())
	assert.True(t, B2(0, 0, 0, 10).IsEmpty())

	in := b.Inset(5, 10)
	assert.Equal(t, B2(15, 30, 105, 60), in)
	assert.Equal(t, float32(35), b.ProjectX(0.25))
	assert.Equal(t, float32(70), b.ProjectY(1))
}

func TestPolar(t *testing.T) {
	c := Vec2(50, 50)
	down := c.Polar(10, 0)
	assert.InDelta(t, 50, down.X, 1e-4)
	assert.InDelta(t, 60, down.Y, 1e-4)
	left := c.Polar(10, Pi/2)
	assert.InDelta(t, 40, left.X, 1e-4)
	assert.InDelta(t, 50, left.Y, 1e-4)
	up := c.Polar(10, Pi)
	assert.InDelta(t, 40, up.Y, 1e-4)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), Clamp(float32(-1), 0, 1))
	assert.Equal(t, float32(1), Clamp(float32(3), 0, 1))
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, float32(-1), Signum(-3))
	assert.Equal(t, float32(0), Signum(0))
}
