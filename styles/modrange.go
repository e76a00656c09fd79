// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"

	"cogentcore.org/controls/colors"
	"cogentcore.org/controls/marks"
)

// ModRange is the style of a modulation range drawn alongside
// a linear control or around a knob.
type ModRange struct {

	// Width is the thickness of the range indicator.
	Width float32

	// Offset is the distance of the indicator from the edge of the
	// control, or from the rim of a knob. Negative values are inside.
	Offset float32

	// Placement is the edge the indicator is drawn along on linear
	// controls: [marks.PlaceLeftOrTop], [marks.PlaceRightOrBottom]
	// or [marks.PlaceCenter].
	Placement marks.PlacementKinds

	// Empty is the color of the whole track behind the range.
	// A zero color draws no track.
	Empty color.RGBA

	// Filled is the color of the range from start to end.
	Filled color.RGBA

	// FilledInverse is the color of the range when end is less than start.
	FilledInverse color.RGBA
}

// DefaultModRange returns the default modulation range style.
func DefaultModRange() ModRange {
	return ModRange{
		Width:         3,
		Offset:        2,
		Placement:     marks.PlaceLeftOrTop,
		Empty:         colors.Default.ModRangeEmpty,
		Filled:        colors.Default.ModRange,
		FilledInverse: colors.Default.ModRange,
	}
}

// DotShapes are the shapes of the dot of a modulation range input.
type DotShapes int32

const (
	DotCircle DotShapes = iota
	DotSquare

	// DotInvisible draws nothing, leaving the input as a hit area only.
	DotInvisible
)

// ModRangeInput is the style of a modulation range input: a small dot
// that is dragged to set the amount of modulation.
type ModRangeInput struct {
	Shape       DotShapes
	Size        float32
	Color       color.RGBA
	BorderWidth float32
	BorderColor color.RGBA
}

// ModRangeInputSheet returns the default style sheet for modulation range inputs.
func ModRangeInputSheet() *Sheet[ModRangeInput] {
	return &Sheet[ModRangeInput]{
		Active: ModRangeInput{
			Shape:       DotCircle,
			Size:        10,
			Color:       colors.Default.LightBack,
			BorderWidth: 1,
			BorderColor: colors.Default.Border,
		},
		Hovered: func(s *ModRangeInput) {
			s.Color = colors.Default.LightBackHover
		},
		Dragging: func(s *ModRangeInput) {
			s.Color = colors.Default.LightBackDrag
		},
		Disabled: disabledModRangeInput,
	}
}

func disabledModRangeInput(s *ModRangeInput) {
	s.Color = colors.Blend(50, s.Color, colors.Default.DisabledShadow)
}
