// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"

	"cogentcore.org/controls/colors"
	"cogentcore.org/controls/marks"
)

// Rail is the style of the rail a slider handle travels along.
type Rail struct {

	// Colors are the colors of the two halves of the rail,
	// drawn side by side across it.
	Colors [2]color.RGBA

	// Width is the total thickness of the rail.
	Width float32
}

// Handle is the style of a slider handle.
type Handle struct {
	Color       color.RGBA
	BorderColor color.RGBA
	BorderWidth float32
	Radius      float32

	// Length is the size of the handle along the axis.
	Length float32

	// NotchColor is the color of the line through the middle of the
	// handle. A zero color draws no notch.
	NotchColor color.RGBA
	NotchWidth float32
}

// Slider is the style of horizontal and vertical sliders.
type Slider struct {
	Rail   Rail
	Handle Handle

	// Filled is the color of the rail between its start (or its center
	// for bipolar values) and the handle. A zero color draws no fill.
	Filled color.RGBA

	Ticks         marks.TickStyle
	TickPlacement marks.Placement

	Text          marks.TextStyle
	TextPlacement marks.Placement

	ModRange ModRange
}

// DefaultTicks returns the default tick mark style for sliders.
func DefaultTicks() marks.TickStyle {
	return marks.TickStyle{
		Tier1: marks.Line(4, 2, colors.Default.SliderTickTier1),
		Tier2: marks.Line(3, 1, colors.Default.SliderTickTier2),
		Tier3: marks.Line(2, 1, colors.Default.SliderTickTier3),
	}
}

// DefaultText returns the default text mark style.
func DefaultText() marks.TextStyle {
	return marks.TextStyle{
		Color:        colors.Default.Text,
		Size:         12,
		BoundsWidth:  30,
		BoundsHeight: 14,
	}
}

// SliderSheet returns the default style sheet for sliders.
func SliderSheet() *Sheet[Slider] {
	return &Sheet[Slider]{
		Active: Slider{
			Rail: Rail{
				Colors: [2]color.RGBA{colors.Default.RailLeft, colors.Default.RailRight},
				Width:  2,
			},
			Handle: Handle{
				Color:       colors.Default.LightBack,
				BorderColor: colors.Default.Border,
				BorderWidth: 1,
				Radius:      2,
				Length:      14,
				NotchColor:  colors.Default.Border,
				NotchWidth:  2,
			},
			Ticks:         DefaultTicks(),
			TickPlacement: marks.BothSides(marks.Offset{}, false),
			Text:          DefaultText(),
			TextPlacement: marks.LeftOrTop(marks.Offset{Y: -6}, false),
			ModRange:      DefaultModRange(),
		},
		Hovered: func(s *Slider) {
			s.Handle.Color = colors.Default.LightBackHover
		},
		Dragging: func(s *Slider) {
			s.Handle.Color = colors.Default.LightBackDrag
		},
		Disabled: func(s *Slider) {
			s.Handle.Color = colors.Blend(50, s.Handle.Color, colors.Default.DisabledShadow)
			s.Filled = colors.WithAlpha(s.Filled, 0.4)
		},
	}
}

// VSliderText returns the default text placement for vertical sliders,
// to the left of the rail.
func VSliderText() marks.Placement {
	return marks.LeftOrTop(marks.Offset{X: -6}, false)
}
