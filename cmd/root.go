// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/glboot/hii/base/errors"
	"github.com/glboot/hii/base/logx"
	"github.com/glboot/hii/config"
	"github.com/glboot/hii/system"
	"github.com/spf13/cobra"
)

// NewRootCmd returns the root hii command, which opens a window and
// keeps it open until it is closed, together with its subcommands.
func NewRootCmd(app *App) *cobra.Command {
	app.flags = config.Default()
	root := &cobra.Command{
		Use:           "hii",
		Short:         "Open an OpenGL window and keep it open until it is closed",
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(app.veryVerbose, app.verbose, app.quiet)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx, cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&app.veryVerbose, "vv", false, "print debug messages")
	pf.BoolVarP(&app.verbose, "verbose", "v", false, "print informational messages")
	pf.BoolVarP(&app.quiet, "quiet", "q", false, "only print errors")

	root.Flags().StringVarP(&app.configFile, "config", "c", "", "the config file to use (.toml or .yaml); defaults to <user config dir>/hii/config.toml if it exists")
	config.AddFlags(root.Flags(), app.flags)

	root.AddCommand(newTraceCmd(), newInitConfigCmd())
	return root
}

// Run loads the config and runs the window bootstrap until the
// window is closed or ctx is done.
func (a *App) Run(ctx context.Context, cmd *cobra.Command) error {
	cfg, file, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	config.ApplyFlags(cmd.Flags(), a.flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if file != "" {
		slog.Info("using config file", "file", file)
	}

	platform, loader := a.NewDriver()
	b := system.New(platform, loader, windowOptions(cfg))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if cfg.Watch {
		if file == "" {
			slog.Warn("no config file to watch")
		} else {
			base := *config.Default()
			go func() {
				errors.Log(config.Watch(ctx, file, base, func(c *config.Config) {
					config.ApplyFlags(cmd.Flags(), a.flags, c)
					b.Update(windowOptions(c).WindowOptions)
				}))
			}()
		}
	}
	return b.Run(ctx)
}
