// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides error logging helpers on top of the
// standard library errors package, which it re-exports, so that
// a single import covers both.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Log takes the given error and logs it if it is non-nil,
// returning it either way so that it can remain part of
// a standard error handling chain.
func Log(err error) error {
	if err == nil {
		return nil
	}
	slog.Error(err.Error(), "from", callerInfo())
	return err
}

// Log1 is a version of [Log] for functions that return a
// value and an error: it logs the error and returns the value.
func Log1[T any](v T, err error) T {
	Log(err)
	return v
}

// Must panics on a non-nil error. It is for errors that
// indicate programmer mistakes, not runtime conditions.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// callerInfo returns the file and line of the caller of the
// exported function that called it.
func callerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
