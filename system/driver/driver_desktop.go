// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || freebsd || openbsd

// Package driver provides the [system.Platform] and [system.Loader]
// for the current platform.
package driver

import (
	"github.com/glboot/hii/system"
	"github.com/glboot/hii/system/driver/desktop"
)

// New returns the platform and OpenGL loader for the current platform.
func New() (system.Platform, system.Loader) {
	return &desktop.Platform{}, &desktop.Loader{}
}
