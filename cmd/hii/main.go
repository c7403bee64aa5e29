// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hii opens an OpenGL window and keeps it
// open until it is closed.
package main

import (
	"log/slog"
	"os"

	"github.com/glboot/hii/base/errors"
	"github.com/glboot/hii/base/logx"
	"github.com/glboot/hii/cmd"
	"github.com/glboot/hii/system/driver"
)

func main() {
	logx.SetDefaultLogger()
	app := &cmd.App{NewDriver: driver.New}
	if err := cmd.NewRootCmd(app).Execute(); err != nil {
		slog.Error(err.Error())
		slog.Debug(errors.Details(err))
		os.Exit(1)
	}
}
