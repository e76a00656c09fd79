// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides the process-wide, read-mostly settings
// shared by all controls, such as the double-click policy, and their
// loading from and saving to TOML or YAML files.
package settings

import (
	"io/fs"
	"path/filepath"
	"time"

	"cogentcore.org/controls/base/errors"
)

// All is a global slice containing all of the [Settings].
// Applications can append their own settings to it.
var All = []Settings{Device, Debug}

// Settings is a group of settings stored together in one file.
type Settings interface {

	// Label returns the name of the settings for display and logs.
	Label() string

	// Filename returns the path of the settings file.
	Filename() string

	// Defaults sets any defaults that cannot be given as struct tags.
	Defaults()

	// Apply makes newly loaded values take effect.
	Apply()
}

// Base implements [Settings] with no defaults or apply step,
// for embedding in settings types.
type Base struct {

	// Name is the display name.
	Name string `toml:"-" yaml:"-"`

	// File is the filename/filepath at which the settings are stored
	// relative to [DataDir]. Absolute paths are used as is.
	File string `toml:"-" yaml:"-"`
}

// Label returns the name.
func (sb *Base) Label() string {
	return sb.Name
}

// Filename returns File, relative to [DataDir] unless absolute.
func (sb *Base) Filename() string {
	if filepath.IsAbs(sb.File) {
		return sb.File
	}
	return filepath.Join(DataDir(), sb.File)
}

// Defaults does nothing.
func (sb *Base) Defaults() {}

// Apply does nothing.
func (sb *Base) Apply() {}

// Device are the global device settings.
var Device = &DeviceSettings{
	Base: Base{
		Name: "Device",
		File: "device-settings.toml",
	},
}

// DeviceSettings is the data type for the device settings.
// They form a single shared policy across all control instances.
type DeviceSettings struct {
	Base `yaml:",inline"`

	// DoubleClickInterval is the maximum time interval between button
	// presses on the same control to count as a double click.
	DoubleClickInterval time.Duration `default:"500ms"`

	// DoubleClickDistance is the maximum distance in pixels between button
	// presses on the same control to count as a double click.
	DoubleClickDistance float32 `default:"4"`
}

// Debug are the currently active debugging settings.
var Debug = &DebugSettings{
	Base: Base{
		Name: "Debug",
		File: "debug-settings.toml",
	},
}

// DebugSettings is the data type for debugging settings.
type DebugSettings struct {
	Base `yaml:",inline"`

	// EventTrace prints a trace of every event handled by a control
	// and the values that result.
	EventTrace bool

	// CacheTrace prints a trace of tick and text mark geometry
	// cache hits and misses.
	CacheTrace bool
}

func init() {
	for _, se := range All {
		errors.Must(SetFromDefaultTags(se))
		se.Defaults()
	}
}

// Open opens the given settings from their [Settings.Filename].
func Open(se Settings) error {
	return OpenFile(se, se.Filename())
}

// Save saves the given settings to their [Settings.Filename].
func Save(se Settings) error {
	return SaveFile(se, se.Filename())
}

// Reset resets the given settings to their default values.
// It processes their `default:` struct tags in addition to calling their
// [Settings.Defaults] method, and then applies them.
func Reset(se Settings) error {
	err := SetFromDefaultTags(se)
	se.Defaults()
	se.Apply()
	return err
}

// Load sets the defaults of, opens, and applies the given settings.
// It is okay for the settings file to not exist.
func Load(se Settings) error {
	errors.Log(SetFromDefaultTags(se))
	se.Defaults()
	err := Open(se)
	// we always apply the settings even if we can't open them
	// to apply at least the default values
	se.Apply()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// LoadAll loads [All] settings.
func LoadAll() error {
	errs := []error{}
	for _, se := range All {
		if err := Load(se); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SaveAll saves [All] settings.
func SaveAll() error {
	errs := []error{}
	for _, se := range All {
		if err := Save(se); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
