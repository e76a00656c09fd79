// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DataDirName is the name of the directory, inside the user's
// configuration directory, in which settings are stored.
var DataDirName = "cogentcore-controls"

// DataDir returns the directory in which settings files are stored,
// which is ~/.config/[DataDirName]. It falls back on the working
// directory if the home directory cannot be determined.
func DataDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return DataDirName
	}
	return filepath.Join(home, ".config", DataDirName)
}

func isYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

// OpenFile reads the given file into v. The file is decoded as YAML
// if it has a .yaml or .yml extension, and as TOML otherwise.
// A missing file results in an error wrapping [fs.ErrNotExist].
func OpenFile(v any, filename string) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return Decode(v, b, isYAML(filename))
}

// Decode decodes the given TOML (or YAML if yml is set) data into v.
func Decode(v any, data []byte, yml bool) error {
	var err error
	if yml {
		err = yaml.Unmarshal(data, v)
	} else {
		err = toml.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("settings: decoding: %w", err)
	}
	return nil
}

// SaveFile writes v to the given file, creating its directory if needed.
// The file is encoded as YAML if it has a .yaml or .yml extension, and as
// TOML otherwise.
func SaveFile(v any, filename string) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	var b []byte
	if isYAML(filename) {
		b, err = yaml.Marshal(v)
	} else {
		b, err = toml.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("settings: encoding %s: %w", filename, err)
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}
