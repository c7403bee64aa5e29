// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the command definitions
// for the hii command line tool.
package cmd

import (
	"github.com/glboot/hii/config"
	"github.com/glboot/hii/system"
)

// Version is the version of hii. It is set by a linker flag.
var Version = "dev"

// App is the main app type that holds the state
// shared by the hii commands.
type App struct {

	// NewDriver returns the platform and loader to open windows with.
	NewDriver func() (system.Platform, system.Loader)

	// the config file given on the command line, if any
	configFile string

	// flags holds the values of the config flags; only those
	// explicitly set are applied over the loaded config
	flags *config.Config

	// verbosity flags
	veryVerbose bool
	verbose     bool
	quiet       bool
}

// windowOptions returns the bootstrap options for the given config.
func windowOptions(cfg *config.Config) system.Options {
	swap := 0
	if cfg.VSync {
		swap = 1
	}
	return system.Options{
		WindowOptions: system.WindowOptions{
			Width:        cfg.Width,
			Height:       cfg.Height,
			Title:        cfg.Title,
			ContextMajor: cfg.ContextMajor,
			ContextMinor: cfg.ContextMinor,
			CoreProfile:  cfg.CoreProfile,
			Resizable:    cfg.Resizable,
		},
		SwapInterval: swap,
	}
}
