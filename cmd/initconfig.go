// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"github.com/glboot/hii/base/errors"
	"github.com/glboot/hii/config"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func newInitConfigCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config [file]",
		Short: "Write the default config to a file",
		Long:  "Write the default config to the given file (.toml or .yaml), or to the default config file if none is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) > 0 {
				file = args[0]
			} else {
				def, err := config.DefaultFile()
				if err != nil {
					return err
				}
				file = def
			}
			file, err := homedir.Expand(file)
			if err != nil {
				return errors.Wrap(err)
			}
			if _, err := os.Stat(file); err == nil && !force {
				return errors.Errorf("config file %q already exists; use --force to overwrite it", file)
			}
			if err := config.Save(config.Default(), file); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), file)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}
