// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"strconv"
	"strings"

	"github.com/glboot/hii/base/errors"
	"github.com/glboot/hii/voxel"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// traceResult is the output of the trace command.
type traceResult struct {
	Shape  string
	Size   int
	Solid  int
	Ray    voxel.Ray
	Hit    bool
	Result *voxel.Hit `yaml:",omitempty"`

	// Reflected is the direction of the ray reflected off the hit face.
	Reflected *voxel.Vector3 `yaml:",omitempty"`
}

func newTraceCmd() *cobra.Command {
	var shape, from, dir string
	var size int
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Cast a ray into a voxel grid and print the first hit as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return errors.Errorf("invalid grid size %d", size)
			}
			var g *voxel.Grid
			var err error
			switch shape {
			case "square":
				g, err = voxel.Square(size, size, size)
			case "circle":
				g, err = voxel.Circle(size, size, size)
			default:
				return errors.Errorf("unknown shape %q; must be square or circle", shape)
			}
			if err != nil {
				return err
			}
			pos, err := parseVector(from)
			if err != nil {
				return errors.Errorf("invalid --from: %w", err)
			}
			d, err := parseVector(dir)
			if err != nil {
				return errors.Errorf("invalid --dir: %w", err)
			}

			res := traceResult{Shape: shape, Size: size, Solid: g.Solid(), Ray: voxel.Ray{Position: pos, Direction: d}}
			if h, ok := res.Ray.CalculateHit(g); ok {
				res.Hit = true
				res.Result = &h
				r := res.Ray.Reflect(h)
				res.Reflected = &r
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(res); err != nil {
				return errors.Wrap(err)
			}
			return errors.Wrap(enc.Close())
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "circle", "the shape of the grid: square or circle")
	cmd.Flags().IntVar(&size, "size", 40, "the size of the grid along each axis")
	cmd.Flags().StringVar(&from, "from", "-5,20.5,20.5", "the origin of the ray, as x,y,z")
	cmd.Flags().StringVar(&dir, "dir", "1,0,0", "the direction of the ray, as x,y,z")
	return cmd
}

// parseVector parses a vector of the form "x,y,z".
func parseVector(s string) (voxel.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return voxel.Vector3{}, errors.Errorf("%q is not of the form x,y,z", s)
	}
	var c [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return voxel.Vector3{}, errors.Wrap(err)
		}
		c[i] = float32(f)
	}
	return voxel.Vec3(c[0], c[1], c[2]), nil
}
