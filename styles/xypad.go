// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"

	"cogentcore.org/controls/colors"
)

// XYPad is the style of XY pads.
type XYPad struct {
	Back        color.RGBA
	BorderColor color.RGBA
	BorderWidth float32

	// RailColor and RailWidth are the lines through the handle
	// along both axes. A zero width draws no rails.
	RailColor color.RGBA
	RailWidth float32

	// CenterLineColor and CenterLineWidth are the lines through the
	// center of the pad. A zero width draws no center lines.
	CenterLineColor color.RGBA
	CenterLineWidth float32

	HandleDiameter    float32
	HandleColor       color.RGBA
	HandleBorderColor color.RGBA
	HandleBorderWidth float32
}

// XYPadSheet returns the default style sheet for XY pads.
func XYPadSheet() *Sheet[XYPad] {
	return &Sheet[XYPad]{
		Active: XYPad{
			Back:              colors.Default.LightBack,
			BorderColor:       colors.Default.Border,
			BorderWidth:       1,
			RailColor:         colors.Default.XYPadRail,
			RailWidth:         2,
			CenterLineColor:   colors.Default.XYPadCenter,
			CenterLineWidth:   1,
			HandleDiameter:    11,
			HandleColor:       colors.Default.LightBack,
			HandleBorderColor: colors.Default.Border,
			HandleBorderWidth: 2,
		},
		Hovered: func(s *XYPad) {
			s.HandleColor = colors.Default.LightBackHover
		},
		Dragging: func(s *XYPad) {
			s.HandleColor = colors.Default.LightBackDrag
			s.HandleDiameter += 2
		},
		Disabled: func(s *XYPad) {
			s.HandleColor = colors.Blend(50, s.HandleColor, colors.Default.DisabledShadow)
		},
	}
}
