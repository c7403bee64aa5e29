// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || freebsd || openbsd

package desktop

import (
	"github.com/glboot/hii/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the glfw [system.Window].
type Window struct {
	glw *glfw.Window
}

var _ system.Window = (*Window)(nil)

func (w *Window) MakeContextCurrent() {
	w.glw.MakeContextCurrent()
}

func (w *Window) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

func (w *Window) SetShouldClose(value bool) {
	w.glw.SetShouldClose(value)
}

func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

func (w *Window) SetTitle(title string) {
	w.glw.SetTitle(title)
}

func (w *Window) SetSize(width, height int) {
	w.glw.SetSize(width, height)
}

// Size returns the size of the content area of the window.
func (w *Window) Size() (width, height int) {
	return w.glw.GetSize()
}

func (w *Window) Destroy() {
	w.glw.Destroy()
}
