// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"

	"cogentcore.org/controls/colors"
	"cogentcore.org/controls/marks"
)

// Arc is the style of the value arc of a knob, drawn around its rim
// from the start of the angle range (or its center for bipolar
// values) to the current value.
type Arc struct {
	Width float32

	// Offset is the distance of the arc outside the rim of the knob.
	Offset float32

	// Empty is the color of the whole arc behind the value.
	// A zero color draws no empty arc.
	Empty color.RGBA

	// Filled is the color of the arc up to the value.
	Filled color.RGBA

	// FilledNegative is the color of the arc for bipolar values below
	// the center. A zero color uses Filled.
	FilledNegative color.RGBA
}

// Notch is the style of the line marking the value on a knob.
type Notch struct {
	Color color.RGBA
	Width float32

	// Length is the length of the notch as a fraction of the knob radius.
	Length float32

	// Offset is the distance of the outer end of the notch inside
	// the rim, as a fraction of the knob radius.
	Offset float32
}

// Knob is the style of knobs.
type Knob struct {
	Back        color.RGBA
	BorderColor color.RGBA
	BorderWidth float32

	Notch Notch

	// Arc is the value arc. A zero width draws no arc.
	Arc Arc

	Ticks         marks.TickStyle
	TickPlacement marks.Placement

	Text          marks.TextStyle
	TextPlacement marks.Placement

	ModRange ModRange
}

// KnobSheet returns the default style sheet for knobs.
func KnobSheet() *Sheet[Knob] {
	return &Sheet[Knob]{
		Active: Knob{
			Back:        colors.Default.LightBack,
			BorderColor: colors.Default.Border,
			BorderWidth: 1,
			Notch: Notch{
				Color:  colors.Default.KnobNotch,
				Width:  2,
				Length: 0.35,
				Offset: 0.15,
			},
			Arc: Arc{
				Width:          3,
				Offset:         4,
				Empty:          colors.Default.RailRight,
				Filled:         colors.Default.KnobValueArc,
				FilledNegative: colors.Default.BipolarNegArc,
			},
			Ticks: marks.TickStyle{
				Tier1: marks.Line(4, 2, colors.Default.KnobTickTier1),
				Tier2: marks.Line(3, 1, colors.Default.KnobTickTier2),
				Tier3: marks.Line(2, 1, colors.Default.KnobTickTier3),
			},
			TickPlacement: marks.LeftOrTop(marks.Offset{X: 9}, false),
			Text:          DefaultText(),
			TextPlacement: marks.LeftOrTop(marks.Offset{X: 15}, false),
			ModRange: ModRange{
				Width:         2,
				Offset:        9,
				Filled:        colors.Default.ModRange,
				FilledInverse: colors.Default.ModRange,
			},
		},
		Hovered: func(s *Knob) {
			s.Back = colors.Default.KnobBackHover
		},
		Dragging: func(s *Knob) {
			s.Back = colors.Default.LightBackDrag
		},
		Disabled: func(s *Knob) {
			s.Back = colors.Blend(50, s.Back, colors.Default.DisabledShadow)
			s.Arc.Filled = colors.WithAlpha(s.Arc.Filled, 0.4)
		},
	}
}
