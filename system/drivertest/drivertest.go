// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drivertest provides an in-memory [system.Platform] and
// [system.Loader] that record every call, for testing code that
// drives windows without a display.
package drivertest

import (
	"fmt"
	"sync"

	"github.com/glboot/hii/base/errors"
	"github.com/glboot/hii/system"
)

// Platform is a fake [system.Platform]. Its exported fields
// configure failures and must be set before use.
type Platform struct {

	// InitErr is returned by Init if non-nil.
	InitErr error

	// NewWindowErr is returned by NewWindow if non-nil.
	NewWindowErr error

	// NilWindow makes NewWindow return a nil window and a nil error.
	NilWindow bool

	// MaxContextMajor, if non-zero, makes NewWindow fail when the
	// requested context major version is above it, as a driver
	// without that version would.
	MaxContextMajor int

	// CloseAfter is the number of PollEvents calls after which the
	// close flag of every open window is set, as if the user clicked
	// the close control. Zero means never.
	CloseAfter int

	// OnPoll, if set, is called at the end of every PollEvents
	// with the number of polls so far.
	OnPoll func(n int)

	mu      sync.Mutex
	calls   []string
	polls   int
	inited  bool
	current *Window
	windows []*Window
}

var _ system.Platform = (*Platform)(nil)

func (p *Platform) record(format string, a ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, fmt.Sprintf(format, a...))
}

// Calls returns the calls made so far, in order. ShouldClose is
// not recorded, since it is called on every frame.
func (p *Platform) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

// Count returns the number of recorded calls that are exactly call.
func (p *Platform) Count(call string) int {
	n := 0
	for _, c := range p.Calls() {
		if c == call {
			n++
		}
	}
	return n
}

// Windows returns all of the windows created so far.
func (p *Platform) Windows() []*Window {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Window(nil), p.windows...)
}

func (p *Platform) Init() error {
	p.record("Init")
	if p.InitErr != nil {
		return p.InitErr
	}
	p.inited = true
	return nil
}

func (p *Platform) NewWindow(opts system.WindowOptions) (system.Window, error) {
	p.record("NewWindow %dx%d %q", opts.Width, opts.Height, opts.Title)
	if !p.inited {
		panic("drivertest: NewWindow called before Init")
	}
	if p.NewWindowErr != nil {
		return nil, p.NewWindowErr
	}
	if p.NilWindow {
		return nil, nil
	}
	if p.MaxContextMajor > 0 && opts.ContextMajor > p.MaxContextMajor {
		return nil, errors.Errorf("drivertest: context version %d.%d not supported", opts.ContextMajor, opts.ContextMinor)
	}
	w := &Window{platform: p, Options: opts, Title: opts.Title, Width: opts.Width, Height: opts.Height}
	p.mu.Lock()
	p.windows = append(p.windows, w)
	p.mu.Unlock()
	return w, nil
}

func (p *Platform) PollEvents() {
	p.record("PollEvents")
	p.polls++
	if p.CloseAfter > 0 && p.polls >= p.CloseAfter {
		for _, w := range p.Windows() {
			if !w.destroyed {
				w.closeFlag = true
			}
		}
	}
	if p.OnPoll != nil {
		p.OnPoll(p.polls)
	}
}

func (p *Platform) Terminate() {
	p.record("Terminate")
	for _, w := range p.Windows() {
		w.destroyed = true
	}
	p.inited = false
	p.current = nil
}

// Window is a fake [system.Window] created by [Platform.NewWindow].
type Window struct {
	platform *Platform

	// Options are the options the window was created with.
	Options system.WindowOptions

	// current title and size
	Title         string
	Width, Height int

	SwapInterval int

	closeFlag bool
	destroyed bool
}

var _ system.Window = (*Window)(nil)

func (w *Window) check(call string) {
	if w.destroyed {
		panic("drivertest: " + call + " called on a destroyed window")
	}
}

func (w *Window) MakeContextCurrent() {
	w.check("MakeContextCurrent")
	w.platform.record("MakeContextCurrent")
	w.platform.current = w
}

func (w *Window) SetSwapInterval(interval int) {
	w.check("SetSwapInterval")
	w.platform.record("SetSwapInterval %d", interval)
	w.SwapInterval = interval
}

func (w *Window) ShouldClose() bool {
	w.check("ShouldClose")
	return w.closeFlag
}

func (w *Window) SetShouldClose(value bool) {
	w.check("SetShouldClose")
	w.platform.record("SetShouldClose %t", value)
	w.closeFlag = value
}

func (w *Window) SwapBuffers() {
	w.check("SwapBuffers")
	w.platform.record("SwapBuffers")
}

func (w *Window) SetTitle(title string) {
	w.check("SetTitle")
	w.platform.record("SetTitle %q", title)
	w.Title = title
}

func (w *Window) SetSize(width, height int) {
	w.check("SetSize")
	w.platform.record("SetSize %dx%d", width, height)
	w.Width, w.Height = width, height
}

func (w *Window) Destroy() {
	w.check("Destroy")
	w.platform.record("Destroy")
	w.destroyed = true
	if w.platform.current == w {
		w.platform.current = nil
	}
}

// Destroyed returns whether the window has been destroyed.
func (w *Window) Destroyed() bool {
	return w.destroyed
}

// Loader is a fake [system.Loader] recording its calls on a [Platform].
// Init fails if no context is current on the platform.
type Loader struct {
	platform *Platform

	// Err is returned by Init if non-nil.
	Err error
}

var _ system.Loader = (*Loader)(nil)

// NewLoader returns a new [Loader] recording its calls on p.
func NewLoader(p *Platform) *Loader {
	return &Loader{platform: p}
}

func (l *Loader) Init() error {
	l.platform.record("LoaderInit")
	if l.Err != nil {
		return l.Err
	}
	if l.platform.current == nil {
		return errors.New("drivertest: no current context")
	}
	return nil
}

func (l *Loader) Version() string {
	return "4.1 drivertest"
}
