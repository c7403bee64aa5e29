// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the platform interface used to open a
// window with an OpenGL context, and the [Bootstrap] that drives
// a window through its whole lifecycle.
package system

// Platform represents the windowing subsystem. Its lifecycle is
// Init before any other call, and Terminate exactly once at the end.
// All of its methods must be called from the main thread.
type Platform interface {

	// Init initializes the windowing subsystem.
	Init() error

	// NewWindow creates a new window with an OpenGL context
	// using the given options. A nil window is never valid,
	// even if the error is nil.
	NewWindow(opts WindowOptions) (Window, error)

	// PollEvents processes all pending events without blocking.
	// It may set the close flag of a window.
	PollEvents()

	// Terminate destroys any remaining windows and releases
	// all resources of the windowing subsystem.
	Terminate()
}

// Window is a window with an OpenGL context, owned by the
// caller of [Platform.NewWindow] until it calls Destroy.
type Window interface {

	// MakeContextCurrent makes the OpenGL context of the
	// window current on the calling thread.
	MakeContextCurrent()

	// SetSwapInterval sets the number of screen updates to wait
	// for before swapping the buffers; 0 disables vsync. The
	// context must be current.
	SetSwapInterval(interval int)

	// ShouldClose returns the value of the close flag.
	ShouldClose() bool

	// SetShouldClose sets the value of the close flag.
	SetShouldClose(value bool)

	// SwapBuffers swaps the front and back buffers of the window.
	SwapBuffers()

	// SetTitle sets the title of the window.
	SetTitle(title string)

	// SetSize sets the size of the content area of the window,
	// in screen coordinates.
	SetSize(width, height int)

	// Destroy destroys the window and its context.
	Destroy()
}

// Loader resolves the OpenGL entry points against
// the current context.
type Loader interface {

	// Init loads the OpenGL functions. The context of a
	// window must be current.
	Init() error

	// Version returns the version string of the current context.
	Version() string
}

// WindowOptions are the options for [Platform.NewWindow].
type WindowOptions struct {
	Width  int
	Height int
	Title  string

	// requested OpenGL context version; a zero major version
	// uses the driver defaults
	ContextMajor int
	ContextMinor int

	// CoreProfile requests a forward-compatible core profile context.
	CoreProfile bool

	Resizable bool
}
