// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration struct for hii
// and the functions that load it from defaults, files and flags.
package config

import (
	"github.com/glboot/hii/base/errors"
)

// Config is the main config struct that contains all of the
// configuration options for the hii window.
type Config struct {

	// the width of the window in screen coordinates
	Width int `default:"800" flag:"width" toml:"width" yaml:"width" desc:"the width of the window in screen coordinates"`

	// the height of the window in screen coordinates
	Height int `default:"600" flag:"height" toml:"height" yaml:"height" desc:"the height of the window in screen coordinates"`

	// the title of the window
	Title string `default:"hii" flag:"title" toml:"title" yaml:"title" desc:"the title of the window"`

	// whether to wait for a vertical refresh before each buffer swap
	VSync bool `default:"true" flag:"vsync" toml:"vsync" yaml:"vsync" desc:"whether to wait for a vertical refresh before each buffer swap"`

	// whether the window can be resized by the user
	Resizable bool `default:"true" flag:"resizable" toml:"resizable" yaml:"resizable" desc:"whether the window can be resized by the user"`

	// the major version of the requested OpenGL context
	ContextMajor int `default:"4" flag:"gl-major" toml:"gl_major" yaml:"gl_major" desc:"the major version of the requested OpenGL context"`

	// the minor version of the requested OpenGL context
	ContextMinor int `default:"1" flag:"gl-minor" toml:"gl_minor" yaml:"gl_minor" desc:"the minor version of the requested OpenGL context"`

	// whether to request a forward-compatible core profile context
	CoreProfile bool `default:"true" flag:"core" toml:"core" yaml:"core" desc:"whether to request a forward-compatible core profile context"`

	// whether to watch the config file and apply title and size changes live
	Watch bool `default:"false" flag:"watch" toml:"watch" yaml:"watch" desc:"whether to watch the config file and apply title and size changes live"`
}

// Default returns a new [Config] with all fields set
// from their default tag values.
func Default() *Config {
	cfg := &Config{}
	errors.Must(SetFromDefaults(cfg))
	return cfg
}

// Validate returns an error if the config cannot be used
// to open a window.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("config: invalid window size %dx%d", c.Width, c.Height)
	case c.ContextMajor <= 0 || c.ContextMinor < 0:
		return errors.Errorf("config: invalid OpenGL context version %d.%d", c.ContextMajor, c.ContextMinor)
	}
	return nil
}
