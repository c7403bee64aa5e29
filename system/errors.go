// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "github.com/glboot/hii/base/errors"

var (
	// ErrInit is returned when the windowing subsystem
	// cannot be initialized, for example with no display.
	ErrInit = errors.New("cannot initialize windowing subsystem")

	// ErrWindowCreation is returned when the window
	// cannot be created.
	ErrWindowCreation = errors.New("cannot create window")

	// ErrLoader is returned when the OpenGL functions
	// cannot be loaded.
	ErrLoader = errors.New("cannot load OpenGL functions")

	// ErrAlreadyRun is returned by [Bootstrap.Run] when it
	// has already been called.
	ErrAlreadyRun = errors.New("bootstrap has already run")
)
