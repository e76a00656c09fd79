// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors is a drop-in for the standard errors package
// that adds helpers for errors that are reported and then ignored,
// and for errors that can only come from a programming mistake.
package errors

import (
	"errors"
	"log/slog"
)

// Log reports a non-nil error with [slog.Error] and returns it unchanged,
// for cases where the caller carries on with defaults:
//
//	errors.Log(settings.Open(s))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 is [Log] for functions that also return a value,
// which it passes through:
//
//	pl := errors.Log1(colors.LoadPalette(file))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Must panics with a non-nil error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 is [Must] for functions that also return a value,
// which it returns when there is no error:
//
//	c := errors.Must1(colors.FromHex("#ff0000"))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// New calls [errors.New].
func New(text string) error { return errors.New(text) }

// Is calls [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As calls [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Join calls [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
