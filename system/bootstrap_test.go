// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system_test

import (
	"context"
	"io"
	"testing"

	"github.com/glboot/hii/base/errors"
	. "github.com/glboot/hii/system"
	"github.com/glboot/hii/system/drivertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOptions = Options{
	WindowOptions: WindowOptions{
		Width:        800,
		Height:       600,
		Title:        "hii",
		ContextMajor: 4,
		ContextMinor: 1,
		CoreProfile:  true,
		Resizable:    true,
	},
	SwapInterval: 1,
}

func newTest(p *drivertest.Platform) (*Bootstrap, *drivertest.Loader) {
	l := drivertest.NewLoader(p)
	return New(p, l, testOptions), l
}

func TestRun(t *testing.T) {
	p := &drivertest.Platform{CloseAfter: 3}
	b, _ := newTest(p)
	assert.Equal(t, Uninitialized, b.State())

	require.NoError(t, b.Run(context.Background()))
	assert.Equal(t, Terminated, b.State())

	assert.Equal(t, []string{
		"Init",
		`NewWindow 800x600 "hii"`,
		"MakeContextCurrent",
		"SetSwapInterval 1",
		"LoaderInit",
		"PollEvents", "SwapBuffers",
		"PollEvents", "SwapBuffers",
		"PollEvents", "SwapBuffers",
		"Destroy",
		"Terminate",
	}, p.Calls())

	ws := p.Windows()
	require.Len(t, ws, 1)
	assert.Equal(t, testOptions.WindowOptions, ws[0].Options)
	assert.True(t, ws[0].Destroyed())
}

func TestRunLoopUntilClose(t *testing.T) {
	for _, n := range []int{1, 10, 250} {
		p := &drivertest.Platform{CloseAfter: n}
		b, _ := newTest(p)
		require.NoError(t, b.Run(context.Background()))
		assert.Equal(t, n, p.Count("PollEvents"))
		assert.Equal(t, n, p.Count("SwapBuffers"))
		assert.Equal(t, 1, p.Count("Destroy"))
		assert.Equal(t, 1, p.Count("Terminate"))
	}
}

func TestRunStatesDuringLoop(t *testing.T) {
	p := &drivertest.Platform{CloseAfter: 2}
	b, _ := newTest(p)
	var states []State
	p.OnPoll = func(n int) { states = append(states, b.State()) }
	require.NoError(t, b.Run(context.Background()))
	assert.Equal(t, []State{WindowOpen, WindowOpen}, states)
}

func TestRunCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p := &drivertest.Platform{}
	p.OnPoll = func(n int) {
		if n == 5 {
			cancel()
		}
	}
	b, _ := newTest(p)
	require.NoError(t, b.Run(ctx))

	// the close flag is the only way out of the loop
	assert.Equal(t, 1, p.Count("SetShouldClose true"))
	assert.Equal(t, 6, p.Count("PollEvents"))
	calls := p.Calls()
	assert.Equal(t, []string{"Destroy", "Terminate"}, calls[len(calls)-2:])
}

func TestRunUpdate(t *testing.T) {
	p := &drivertest.Platform{CloseAfter: 4}
	b, _ := newTest(p)
	p.OnPoll = func(n int) {
		switch n {
		case 1:
			b.Update(WindowOptions{Width: 800, Height: 600, Title: "ignored"})
			b.Update(WindowOptions{Width: 1024, Height: 768, Title: "hii again"})
		case 2:
			b.Update(WindowOptions{Width: 1024, Height: 768, Title: "hii again"})
		}
	}
	require.NoError(t, b.Run(context.Background()))

	assert.Equal(t, 1, p.Count(`SetTitle "hii again"`))
	assert.Equal(t, 0, p.Count(`SetTitle "ignored"`))
	assert.Equal(t, 1, p.Count("SetSize 1024x768"))
	w := p.Windows()[0]
	assert.Equal(t, "hii again", w.Title)
	assert.Equal(t, 1024, w.Width)
}

func TestRunInitError(t *testing.T) {
	p := &drivertest.Platform{InitErr: io.ErrUnexpectedEOF}
	b, _ := newTest(p)
	err := b.Run(context.Background())
	assert.ErrorIs(t, err, ErrInit)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, []string{"Init"}, p.Calls())
	assert.Equal(t, Uninitialized, b.State())
}

func TestRunWindowCreationError(t *testing.T) {
	for name, p := range map[string]*drivertest.Platform{
		"error": {NewWindowErr: errors.New("no pixel format")},
		"nil":   {NilWindow: true},
	} {
		t.Run(name, func(t *testing.T) {
			b, _ := newTest(p)
			err := b.Run(context.Background())
			assert.ErrorIs(t, err, ErrWindowCreation)
			assert.Equal(t, []string{
				"Init",
				`NewWindow 800x600 "hii"`,
				`NewWindow 800x600 "hii"`,
				"Terminate",
			}, p.Calls())
			assert.Equal(t, 0, p.Count("MakeContextCurrent"))
			assert.Equal(t, 0, p.Count("PollEvents"))
			assert.Equal(t, Terminated, b.State())
		})
	}

	p := &drivertest.Platform{NewWindowErr: errors.New("no pixel format")}
	opts := testOptions
	opts.ContextMajor, opts.ContextMinor, opts.CoreProfile = 0, 0, false
	b := New(p, drivertest.NewLoader(p), opts)
	assert.ErrorIs(t, b.Run(context.Background()), ErrWindowCreation)
	assert.Equal(t, []string{"Init", `NewWindow 800x600 "hii"`, "Terminate"}, p.Calls(), "no retry without a requested version")
}

func TestRunContextFallback(t *testing.T) {
	p := &drivertest.Platform{MaxContextMajor: 3, CloseAfter: 1}
	b, _ := newTest(p)
	require.NoError(t, b.Run(context.Background()))
	assert.Equal(t, []string{
		"Init",
		`NewWindow 800x600 "hii"`,
		`NewWindow 800x600 "hii"`,
		"MakeContextCurrent",
		"SetSwapInterval 1",
		"LoaderInit",
		"PollEvents", "SwapBuffers",
		"Destroy",
		"Terminate",
	}, p.Calls())

	ws := p.Windows()
	require.Len(t, ws, 1)
	assert.Equal(t, 0, ws[0].Options.ContextMajor)
	assert.Equal(t, 0, ws[0].Options.ContextMinor)
	assert.False(t, ws[0].Options.CoreProfile)
	assert.Equal(t, "hii", ws[0].Options.Title)
	assert.True(t, ws[0].Destroyed())
}

func TestRunLoaderError(t *testing.T) {
	p := &drivertest.Platform{CloseAfter: 1}
	b, l := newTest(p)
	l.Err = errors.New("missing glGenVertexArrays")
	err := b.Run(context.Background())
	assert.ErrorIs(t, err, ErrLoader)
	assert.Equal(t, []string{
		"Init",
		`NewWindow 800x600 "hii"`,
		"MakeContextCurrent",
		"SetSwapInterval 1",
		"LoaderInit",
		"Destroy",
		"Terminate",
	}, p.Calls())
	assert.Equal(t, Terminated, b.State())
}

func TestRunTwice(t *testing.T) {
	p := &drivertest.Platform{CloseAfter: 1}
	b, _ := newTest(p)
	require.NoError(t, b.Run(context.Background()))
	n := len(p.Calls())

	assert.ErrorIs(t, b.Run(context.Background()), ErrAlreadyRun)
	assert.Len(t, p.Calls(), n)
	assert.Len(t, p.Windows(), 1)
	assert.Equal(t, 1, p.Count("Terminate"))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "WindowOpen", WindowOpen.String())
	assert.Equal(t, "Terminated", Terminated.String())
	assert.Equal(t, "State(9)", State(9).String())
}
