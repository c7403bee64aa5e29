// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides context-wrapped error handling
// together with the standard [errors] functions, so that
// callers only need to import one errors package.
package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Error is an error with a base error and the call stack
// (as function names, innermost first) at the point it was wrapped.
type Error struct {
	Base  error
	Stack []string
}

// Wrap wraps the given error into an [*Error] with the
// current call stack. It returns nil if the given error is nil.
// Wrapping an [*Error] again returns it unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Base: err, Stack: callers(3)}
}

// New returns a new error with the given text, wrapped via [Wrap].
// It is the equivalent of [errors.New].
func New(text string) error {
	return &Error{Base: errors.New(text), Stack: callers(3)}
}

// Errorf returns a new error with the given format and arguments,
// wrapped via [Wrap]. It is the equivalent of [fmt.Errorf], and
// supports %w verbs.
func Errorf(format string, a ...any) error {
	return &Error{Base: fmt.Errorf(format, a...), Stack: callers(3)}
}

// Error returns the message of the base error.
func (e *Error) Error() string {
	return e.Base.Error()
}

// StackString returns the message of the base error followed
// by the stack trace in parentheses.
func (e *Error) StackString() string {
	res := e.Base.Error()
	if len(e.Stack) > 0 {
		res += " (" + strings.Join(e.Stack, ": ") + ")"
	}
	return res
}

// Details returns the [Error.StackString] of the first [*Error] in
// the tree of err, or err.Error() if there is none.
func Details(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.StackString()
	}
	return err.Error()
}

// Unwrap returns the underlying base error.
func (e *Error) Unwrap() error {
	return e.Base
}

func callers(skip int) []string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(skip, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	var stack []string
	for {
		f, more := frames.Next()
		if f.Function != "" && !strings.HasPrefix(f.Function, "runtime.") && !strings.HasPrefix(f.Function, "testing.") {
			stack = append(stack, f.Function[strings.LastIndex(f.Function, "/")+1:])
		}
		if !more {
			break
		}
	}
	return stack
}

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As is [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }
