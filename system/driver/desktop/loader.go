// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || freebsd || openbsd

package desktop

import (
	"github.com/glboot/hii/base/errors"
	"github.com/glboot/hii/system"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Loader is the go-gl [system.Loader] for OpenGL 4.1 core.
type Loader struct{}

var _ system.Loader = (*Loader)(nil)

// Init loads the OpenGL functions for the current context.
func (l *Loader) Init() error {
	return errors.Wrap(gl.Init())
}

// Version returns the GL_VERSION string of the current context.
func (l *Loader) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}
