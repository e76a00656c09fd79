// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the default color palette of the controls,
// color parsing, and perceptual color manipulation.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/controls/base/errors"
	"cogentcore.org/controls/math32"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// AsRGBA returns the given color as a premultiplied RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromFloat returns the color with the given non-premultiplied
// components in the range [0, 1].
func FromFloat(r, g, b, a float32) color.RGBA {
	c8 := func(v float32) uint8 {
		return uint8(math32.Round(math32.Clamp(v, 0, 1) * 255))
	}
	return AsRGBA(color.NRGBA{c8(r), c8(g), c8(b), c8(a)})
}

// FromRGB returns the opaque color with the given components in the range [0, 1].
func FromRGB(r, g, b float32) color.RGBA {
	return FromFloat(r, g, b, 1)
}

// FromName returns the color value specified by the given
// CSS standard color name.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("colors.FromName: name not found: %q", name)
	}
	return c, nil
}

// FromHex parses the given hex color string, which may have
// 3, 6, or 8 (with alpha) digits and an optional leading #.
// The digits specify non-premultiplied components.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	a := 255
	var n int
	var err error
	switch len(hex) {
	case 3:
		n, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
		n++
	case 6:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
		n++
	case 8:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process: %q", hex)
	}
	if err != nil || n != 4 {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process: %q", hex)
	}
	return AsRGBA(color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}), nil
}

// MustFromHex is [FromHex] for literals known to be valid.
// It panics on an invalid value.
func MustFromHex(hex string) color.RGBA {
	return errors.Must1(FromHex(hex))
}

// FromString returns the color for the given hex value (starting with #)
// or CSS color name.
func FromString(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return FromHex(s)
	}
	return FromName(s)
}

// AsHex returns the color as a #RRGGBBAA string of
// non-premultiplied components.
func AsHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// WithAlpha returns the given color with its alpha replaced by
// the given value in the range [0, 1].
func WithAlpha(c color.Color, alpha float32) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math32.Round(math32.Clamp(alpha, 0, 1) * 255))
	return AsRGBA(n)
}

func toColorful(c color.Color) (colorful.Color, float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}, float32(n.A) / 255
}

func fromColorful(c colorful.Color, alpha float32) color.RGBA {
	c = c.Clamped()
	return FromFloat(float32(c.R), float32(c.G), float32(c.B), alpha)
}

// Blend returns a color that is the given percent blend between the first
// and second color: 10 = 10% of the second and 90% of the first, etc.
// Blending is done in the perceptually uniform CIE L*a*b* space, with
// alpha blended linearly.
func Blend(pct float32, x, y color.Color) color.RGBA {
	pct = math32.Clamp(pct, 0, 100) / 100
	xc, xa := toColorful(x)
	yc, ya := toColorful(y)
	return fromColorful(xc.BlendLab(yc, float64(pct)), math32.Lerp(xa, ya, pct))
}

// Lighten returns the given color lightened by the given percent
// of CIE L*C*h° lightness: 10 = 10% lighter.
func Lighten(c color.Color, pct float32) color.RGBA {
	return shiftLightness(c, pct)
}

// Darken returns the given color darkened by the given percent
// of CIE L*C*h° lightness: 10 = 10% darker.
func Darken(c color.Color, pct float32) color.RGBA {
	return shiftLightness(c, -pct)
}

func shiftLightness(c color.Color, pct float32) color.RGBA {
	cc, a := toColorful(c)
	h, ch, l := cc.Hcl()
	l = float64(math32.Clamp(float32(l)+pct/100, 0, 1))
	return fromColorful(colorful.Hcl(h, ch, l), a)
}
