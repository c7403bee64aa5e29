// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/glboot/hii/base/errors"
)

// Options are the options for a [Bootstrap].
type Options struct {
	WindowOptions

	// SwapInterval is passed to [Window.SetSwapInterval]
	// once the context is current.
	SwapInterval int
}

// Bootstrap opens one window on a [Platform], loads the OpenGL
// functions with a [Loader], and runs an event loop that polls
// events and swaps buffers until the window is flagged to close.
// A Bootstrap can only be run once.
type Bootstrap struct {
	platform Platform
	loader   Loader
	opts     Options

	state   atomic.Int32
	ran     atomic.Bool
	updates chan WindowOptions
}

// New returns a new [Bootstrap] for the given platform,
// loader and options.
func New(platform Platform, loader Loader, opts Options) *Bootstrap {
	return &Bootstrap{
		platform: platform,
		loader:   loader,
		opts:     opts,
		updates:  make(chan WindowOptions, 1),
	}
}

// State returns the current lifecycle state. It is safe to
// call from any goroutine.
func (b *Bootstrap) State() State {
	return State(b.state.Load())
}

func (b *Bootstrap) setState(s State) {
	slog.Debug("bootstrap state", "from", b.State(), "to", s)
	b.state.Store(int32(s))
}

// Update queues new window options to be applied by the event loop
// on its next iteration. Only the title and size are applied. If an
// update is already pending it is replaced. It is safe to call from
// any goroutine, and never blocks.
func (b *Bootstrap) Update(opts WindowOptions) {
	for {
		select {
		case b.updates <- opts:
			return
		default:
			select {
			case <-b.updates:
			default:
			}
		}
	}
}

// Run initializes the platform, creates the window, makes its context
// current, loads the OpenGL functions, and then runs the event loop
// until the close flag of the window is set. Cancelling ctx sets the
// close flag. Whatever was acquired is released before Run returns:
// the window is destroyed and then the platform terminated, once each.
// Run must be called from the main thread.
func (b *Bootstrap) Run(ctx context.Context) error {
	if !b.ran.CompareAndSwap(false, true) {
		return ErrAlreadyRun
	}

	if err := b.platform.Init(); err != nil {
		return errors.Errorf("%w: %w", ErrInit, err)
	}
	b.setState(Initialized)
	defer func() {
		b.platform.Terminate()
		b.setState(Terminated)
	}()

	wopts := b.opts.WindowOptions
	win, err := b.newWindow(wopts)
	if err != nil && wopts.ContextMajor > 0 {
		slog.Warn("could not create window with requested context, retrying with driver defaults",
			"major", wopts.ContextMajor, "minor", wopts.ContextMinor, "core", wopts.CoreProfile, "err", err)
		wopts.ContextMajor, wopts.ContextMinor, wopts.CoreProfile = 0, 0, false
		win, err = b.newWindow(wopts)
	}
	if err != nil {
		return err
	}
	b.setState(WindowOpen)
	slog.Debug("window created", "width", wopts.Width, "height", wopts.Height, "title", wopts.Title)
	defer func() {
		b.setState(Closing)
		win.Destroy()
	}()

	win.MakeContextCurrent()
	win.SetSwapInterval(b.opts.SwapInterval)
	if err := b.loader.Init(); err != nil {
		return errors.Errorf("%w: %w", ErrLoader, err)
	}
	slog.Info("OpenGL loaded", "version", b.loader.Version())

	b.loop(ctx, win, wopts)
	return nil
}

// newWindow creates a window with the given options, treating
// a nil window as a failure.
func (b *Bootstrap) newWindow(opts WindowOptions) (Window, error) {
	win, err := b.platform.NewWindow(opts)
	if err != nil {
		return nil, errors.Errorf("%w: %w", ErrWindowCreation, err)
	}
	if win == nil {
		return nil, errors.Errorf("%w: no window returned", ErrWindowCreation)
	}
	return win, nil
}

// loop runs the event loop until the close flag is set.
func (b *Bootstrap) loop(ctx context.Context, win Window, cur WindowOptions) {
	frames := 0
	for !win.ShouldClose() {
		select {
		case <-ctx.Done():
			slog.Debug("bootstrap context done, closing window", "err", ctx.Err())
			win.SetShouldClose(true)
		case opts := <-b.updates:
			cur = apply(win, cur, opts)
		default:
		}
		b.platform.PollEvents()
		win.SwapBuffers()
		frames++
	}
	slog.Debug("event loop exited", "frames", frames)
}

// apply applies the title and size of next to win,
// and returns the resulting current options.
func apply(win Window, cur, next WindowOptions) WindowOptions {
	if next.Title != cur.Title {
		win.SetTitle(next.Title)
		cur.Title = next.Title
	}
	if next.Width != cur.Width || next.Height != cur.Height {
		win.SetSize(next.Width, next.Height)
		cur.Width, cur.Height = next.Width, next.Height
	}
	return cur
}
