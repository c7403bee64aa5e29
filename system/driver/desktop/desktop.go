// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || freebsd || openbsd

// Package desktop implements [system.Platform] and [system.Loader]
// for desktop platforms using glfw and go-gl.
package desktop

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/glboot/hii/base/errors"
	"github.com/glboot/hii/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw requires all of its calls to be made from the main thread
	runtime.LockOSThread()
}

// Platform is the glfw [system.Platform].
type Platform struct{}

var _ system.Platform = (*Platform)(nil)

// Init initializes glfw. It must be called from the main thread.
func (p *Platform) Init() (err error) {
	defer recoverError(&err)
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err)
	}
	slog.Debug("glfw initialized", "version", glfw.GetVersionString())
	return nil
}

// NewWindow creates a new glfw window with an OpenGL context
// according to the given options. A zero context major version
// leaves the context hints at the glfw defaults.
func (p *Platform) NewWindow(opts system.WindowOptions) (win system.Window, err error) {
	defer recoverError(&err)
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	if opts.ContextMajor > 0 {
		glfw.WindowHint(glfw.ContextVersionMajor, opts.ContextMajor)
		glfw.WindowHint(glfw.ContextVersionMinor, opts.ContextMinor)
		if opts.CoreProfile {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
			glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		}
	}
	glfw.WindowHint(glfw.Resizable, glfwBool(opts.Resizable))

	glw, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	if glw == nil {
		return nil, errors.New("glfw returned no window")
	}
	return &Window{glw: glw}, nil
}

// PollEvents processes all pending glfw events.
func (p *Platform) PollEvents() {
	glfw.PollEvents()
}

// Terminate terminates glfw, destroying any remaining windows.
func (p *Platform) Terminate() {
	glfw.Terminate()
}

// recoverError turns a panic from glfw, which it raises for
// errors it does not expect, into an error in *err.
func recoverError(err *error) {
	if r := recover(); r != nil {
		if rerr, ok := r.(error); ok {
			*err = errors.Wrap(rerr)
			return
		}
		*err = errors.New(fmt.Sprint(r))
	}
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
