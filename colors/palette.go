// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"os"
	"sort"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Palette is the set of colors from which the default styles
// of all controls are built.
type Palette struct {
	Border         color.RGBA
	LightBack      color.RGBA
	LightBackHover color.RGBA
	LightBackDrag  color.RGBA

	// RailLeft and RailRight are the two halves of a slider rail,
	// drawn side by side for a subtle bevel.
	RailLeft  color.RGBA
	RailRight color.RGBA

	SliderTickTier1 color.RGBA
	SliderTickTier2 color.RGBA
	SliderTickTier3 color.RGBA

	KnobBackHover  color.RGBA
	KnobTickTier1  color.RGBA
	KnobTickTier2  color.RGBA
	KnobTickTier3  color.RGBA
	KnobValueArc   color.RGBA
	KnobNotch      color.RGBA
	XYPadRail      color.RGBA
	XYPadCenter    color.RGBA
	ModRange       color.RGBA
	ModRangeEmpty  color.RGBA
	Text           color.RGBA
	BipolarNegArc  color.RGBA
	DisabledShadow color.RGBA
}

// Default is the default palette. Styles read it when they are created,
// so changes affect styles created afterward.
var Default = &Palette{
	Border:         FromRGB(0.35, 0.35, 0.35),
	LightBack:      FromRGB(0.97, 0.97, 0.97),
	LightBackHover: FromRGB(0.93, 0.93, 0.93),
	LightBackDrag:  FromRGB(0.92, 0.92, 0.92),

	RailLeft:  FromFloat(0.26, 0.26, 0.26, 0.75),
	RailRight: FromFloat(0.56, 0.56, 0.56, 0.75),

	SliderTickTier1: FromFloat(0.56, 0.56, 0.56, 0.7),
	SliderTickTier2: FromFloat(0.56, 0.56, 0.56, 0.43),
	SliderTickTier3: FromFloat(0.56, 0.56, 0.56, 0.39),

	KnobBackHover:  FromRGB(0.96, 0.96, 0.96),
	KnobTickTier1:  FromFloat(0.56, 0.56, 0.56, 0.9),
	KnobTickTier2:  FromFloat(0.56, 0.56, 0.56, 0.85),
	KnobTickTier3:  FromFloat(0.56, 0.56, 0.56, 0.75),
	KnobValueArc:   FromRGB(0.29, 0.55, 0.77),
	KnobNotch:      FromRGB(0.35, 0.35, 0.35),
	XYPadRail:      FromFloat(0.56, 0.56, 0.56, 0.75),
	XYPadCenter:    FromFloat(0.56, 0.56, 0.56, 0.4),
	ModRange:       FromFloat(0.0, 0.7, 0.0, 0.85),
	ModRangeEmpty:  FromFloat(0.56, 0.56, 0.56, 0.3),
	Text:           MustFromHex("#292929"),
	BipolarNegArc:  FromRGB(0.77, 0.29, 0.33),
	DisabledShadow: FromFloat(0.5, 0.5, 0.5, 0.5),
}

// fields returns the named color fields of the palette, keyed
// by the names used in palette files.
func (pl *Palette) fields() map[string]*color.RGBA {
	return map[string]*color.RGBA{
		"border":           &pl.Border,
		"light-back":       &pl.LightBack,
		"light-back-hover": &pl.LightBackHover,
		"light-back-drag":  &pl.LightBackDrag,
		"rail-left":        &pl.RailLeft,
		"rail-right":       &pl.RailRight,
		"slider-tick-1":    &pl.SliderTickTier1,
		"slider-tick-2":    &pl.SliderTickTier2,
		"slider-tick-3":    &pl.SliderTickTier3,
		"knob-back-hover":  &pl.KnobBackHover,
		"knob-tick-1":      &pl.KnobTickTier1,
		"knob-tick-2":      &pl.KnobTickTier2,
		"knob-tick-3":      &pl.KnobTickTier3,
		"knob-value-arc":   &pl.KnobValueArc,
		"knob-notch":       &pl.KnobNotch,
		"xy-pad-rail":      &pl.XYPadRail,
		"xy-pad-center":    &pl.XYPadCenter,
		"mod-range":        &pl.ModRange,
		"mod-range-empty":  &pl.ModRangeEmpty,
		"text":             &pl.Text,
		"bipolar-neg-arc":  &pl.BipolarNegArc,
		"disabled-shadow":  &pl.DisabledShadow,
	}
}

// Clone returns a deep copy of the palette.
func (pl *Palette) Clone() *Palette {
	cp := *pl
	return &cp
}

// Decode applies the colors in the given TOML data to the palette.
// The data is a flat table of color names to hex values or CSS color
// names, for example:
//
//	border = "#595959"
//	mod-range = "seagreen"
//
// Colors not named in the data are left unchanged.
func (pl *Palette) Decode(data []byte) error {
	var m map[string]string
	if err := toml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("colors: decoding palette: %w", err)
	}
	fields := pl.fields()
	for name, val := range m {
		f, ok := fields[name]
		if !ok {
			return fmt.Errorf("colors: unknown palette color %q", name)
		}
		c, err := FromString(val)
		if err != nil {
			return fmt.Errorf("colors: palette color %q: %w", name, err)
		}
		*f = c
	}
	return nil
}

// Encode returns the palette as TOML data in the format read by [Palette.Decode].
func (pl *Palette) Encode() ([]byte, error) {
	m := map[string]string{}
	for name, f := range pl.fields() {
		m[name] = AsHex(*f)
	}
	return toml.Marshal(m)
}

// Names returns the sorted names of the palette colors used in palette files.
func (pl *Palette) Names() []string {
	fields := pl.fields()
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadPalette returns a copy of the [Default] palette with the colors in
// the given TOML file applied on top of it. See [Palette.Decode] for the format.
func LoadPalette(filename string) (*Palette, error) {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	pl := Default.Clone()
	if err := pl.Decode(b); err != nil {
		return nil, err
	}
	return pl, nil
}

// SavePalette saves the given palette to the given TOML file.
func SavePalette(pl *Palette, filename string) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	b, err := pl.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}
