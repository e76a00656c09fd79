// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normal

import (
	"fmt"

	"cogentcore.org/controls/math32"
)

// LogDBRange is a [Range] over decibels. 0 dB sits at a configurable
// normal position. Values above 0 dB are linear in the normal. Values
// below 0 dB are linear in amplitude (10^(dB/20)), so the lower part of
// the range is decade scaled and compresses toward the minimum.
type LogDBRange struct {
	minDB, maxDB float32
	zero         float32

	// amplitudes at minDB and at the top of the lower segment
	minAmp, topAmp float32
}

// NewLogDBRange returns a new [LogDBRange]. zeroPosition is the normal
// position of 0 dB and is only used when the range spans 0 dB, in which
// case it must lie strictly between 0 and 1. It panics if minDB >= maxDB.
func NewLogDBRange(minDB, maxDB float32, zeroPosition Normal) LogDBRange {
	if !(minDB < maxDB) {
		panic(fmt.Sprintf("normal.NewLogDBRange: min %g dB must be less than max %g dB", minDB, maxDB))
	}
	r := LogDBRange{minDB: minDB, maxDB: maxDB}
	switch {
	case minDB >= 0:
		r.zero = 0
	case maxDB <= 0:
		r.zero = 1
	default:
		z := zeroPosition.v
		if z <= 0 || z >= 1 {
			panic(fmt.Sprintf("normal.NewLogDBRange: zero position %g must be inside (0, 1) when the range spans 0 dB", z))
		}
		r.zero = z
	}
	r.minAmp = dbToAmp(minDB)
	r.topAmp = dbToAmp(min(maxDB, 0))
	return r
}

func dbToAmp(db float32) float32 {
	return math32.Pow(10, db/20)
}

func ampToDB(amp float32) float32 {
	return 20 * math32.Log10(amp)
}

// Min returns the minimum in decibels.
func (r LogDBRange) Min() float32 { return r.minDB }

// Max returns the maximum in decibels.
func (r LogDBRange) Max() float32 { return r.maxDB }

// ZeroPosition returns the normal position of 0 dB,
// which is 0 or 1 when the range does not span 0 dB.
func (r LogDBRange) ZeroPosition() Normal { return Normal{r.zero} }

// ToNormal converts decibels to a [Normal], clamping to the range.
func (r LogDBRange) ToNormal(db float32) Normal {
	if math32.IsNaN(db) {
		return Normal{}
	}
	switch {
	case db <= r.minDB:
		return Min()
	case db >= r.maxDB:
		return Max()
	}
	if db >= 0 && r.maxDB > 0 {
		bottom := max(r.minDB, 0)
		return New(r.zero + (1-r.zero)*(db-bottom)/(r.maxDB-bottom))
	}
	return New(r.zero * (dbToAmp(db) - r.minAmp) / (r.topAmp - r.minAmp))
}

// FromNormal converts a [Normal] to decibels.
func (r LogDBRange) FromNormal(n Normal) float32 {
	switch {
	case n.v <= 0:
		return r.minDB
	case n.v >= 1:
		return r.maxDB
	}
	if n.v >= r.zero && r.maxDB > 0 {
		bottom := max(r.minDB, 0)
		if r.zero >= 1 {
			return bottom
		}
		return bottom + (n.v-r.zero)/(1-r.zero)*(r.maxDB-bottom)
	}
	amp := r.minAmp + (n.v/r.zero)*(r.topAmp-r.minAmp)
	return math32.Clamp(ampToDB(amp), r.minDB, r.maxDB)
}

// NormalParam returns a [Param] for the given value and default in decibels.
func (r LogDBRange) NormalParam(db, def float32) Param {
	return NewParamWithDefault(r.ToNormal(db), r.ToNormal(def))
}

func (r LogDBRange) Normalize(raw float32) Normal { return r.ToNormal(raw) }

func (r LogDBRange) Denormalize(n Normal) float32 { return r.FromNormal(n) }

func (r LogDBRange) Snapped(n Normal) Normal { return n }

func (r LogDBRange) Bipolar() bool { return false }

// FreqRange is a [Range] over frequencies in Hz on an octave (log2) scale,
// so that every octave takes the same normal distance.
type FreqRange struct {
	minHz, maxHz     float32
	minOct, spanOcts float32
}

// NewFreqRange returns a new [FreqRange]. It panics unless 0 < minHz < maxHz.
func NewFreqRange(minHz, maxHz float32) FreqRange {
	if !(minHz > 0 && minHz < maxHz) {
		panic(fmt.Sprintf("normal.NewFreqRange: need 0 < min (%g Hz) < max (%g Hz)", minHz, maxHz))
	}
	lo := math32.Log2(minHz)
	return FreqRange{minHz: minHz, maxHz: maxHz, minOct: lo, spanOcts: math32.Log2(maxHz) - lo}
}

// DefaultFreqRange returns the audible range from 20 Hz to 20 kHz.
func DefaultFreqRange() FreqRange { return NewFreqRange(20, 20000) }

// Min returns the minimum frequency in Hz.
func (r FreqRange) Min() float32 { return r.minHz }

// Max returns the maximum frequency in Hz.
func (r FreqRange) Max() float32 { return r.maxHz }

// ToNormal converts a frequency in Hz to a [Normal], clamping to the range.
func (r FreqRange) ToNormal(hz float32) Normal {
	if math32.IsNaN(hz) {
		return Normal{}
	}
	switch {
	case hz <= r.minHz:
		return Min()
	case hz >= r.maxHz:
		return Max()
	}
	return New((math32.Log2(hz) - r.minOct) / r.spanOcts)
}

// FromNormal converts a [Normal] to a frequency in Hz.
func (r FreqRange) FromNormal(n Normal) float32 {
	switch {
	case n.v <= 0:
		return r.minHz
	case n.v >= 1:
		return r.maxHz
	}
	return math32.Clamp(math32.Exp2(r.minOct+n.v*r.spanOcts), r.minHz, r.maxHz)
}

// NormalParam returns a [Param] for the given value and default in Hz.
func (r FreqRange) NormalParam(hz, def float32) Param {
	return NewParamWithDefault(r.ToNormal(hz), r.ToNormal(def))
}

func (r FreqRange) Normalize(raw float32) Normal { return r.ToNormal(raw) }

func (r FreqRange) Denormalize(n Normal) float32 { return r.FromNormal(n) }

func (r FreqRange) Snapped(n Normal) Normal { return n }

func (r FreqRange) Bipolar() bool { return false }
