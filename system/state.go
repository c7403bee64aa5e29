// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "strconv"

// State is the lifecycle state of a [Bootstrap]. States only
// ever advance, in the order they are declared.
type State int32

const (
	// Uninitialized is the state before the platform is initialized.
	Uninitialized State = iota

	// Initialized is the state after the platform is initialized
	// and before the window is open.
	Initialized

	// WindowOpen is the state while the window is open and
	// the event loop runs.
	WindowOpen

	// Closing is the state after the event loop exits,
	// while the window and platform are torn down.
	Closing

	// Terminated is the final state after the platform
	// has been terminated.
	Terminated
)

var stateNames = [...]string{"Uninitialized", "Initialized", "WindowOpen", "Closing", "Terminated"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
	return stateNames[s]
}
