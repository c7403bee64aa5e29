// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package voxel provides a dense voxel grid and ray casting against it.
package voxel

import "github.com/glboot/hii/base/errors"

// MaxVoxels is the largest number of voxels a [Grid] can hold.
const MaxVoxels = 1 << 28

// Grid is a dense 3D grid of voxels, stored x-major: the voxel at
// (x, y, z) is Voxels[x + y*Width + z*Width*Height]. A zero voxel
// is empty; any other value is solid.
type Grid struct {
	Voxels []uint8
	Width  int
	Height int
	Depth  int
}

// NewGrid returns a new empty [Grid] with the given size. It returns
// an error if any dimension is negative or the grid would hold more
// than [MaxVoxels] voxels.
func NewGrid(width, height, depth int) (*Grid, error) {
	if width < 0 || height < 0 || depth < 0 {
		return nil, errors.Errorf("voxel: invalid grid size %dx%dx%d", width, height, depth)
	}
	n := 1
	for _, d := range []int{width, height, depth} {
		if d == 0 {
			n = 0
			break
		}
		if n > MaxVoxels/d {
			return nil, errors.Errorf("voxel: grid size %dx%dx%d exceeds %d voxels", width, height, depth, MaxVoxels)
		}
		n *= d
	}
	return &Grid{
		Voxels: make([]uint8, n),
		Width:  width,
		Height: height,
		Depth:  depth,
	}, nil
}

// Square returns a new [Grid] with the given size where the middle
// half of each axis is solid, forming a box in the center.
func Square(width, height, depth int) (*Grid, error) {
	g, err := NewGrid(width, height, depth)
	if err != nil {
		return nil, err
	}
	w, h, d := width/4, height/4, depth/4
	for z := d; z < d*3; z++ {
		for y := h; y < h*3; y++ {
			for x := w; x < w*3; x++ {
				g.Set(x, y, z, 1)
			}
		}
	}
	return g, nil
}

// CircleRadius is the radius of the sphere made by [Circle].
const CircleRadius = 10

// Circle returns a new [Grid] with the given size where every voxel
// whose corner is within [CircleRadius] of the grid center is solid.
func Circle(width, height, depth int) (*Grid, error) {
	g, err := NewGrid(width, height, depth)
	if err != nil {
		return nil, err
	}
	center := Vec3(float32(width), float32(height), float32(depth)).MulScalar(0.5)
	for z := range depth {
		for y := range height {
			for x := range width {
				p := Vec3(float32(x), float32(y), float32(z))
				if p.DistanceToSquared(center) < CircleRadius*CircleRadius {
					g.Set(x, y, z, 1)
				}
			}
		}
	}
	return g, nil
}

// InBounds returns whether (x, y, z) is inside the grid.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < g.Width && y < g.Height && z < g.Depth
}

// Index returns the index in Voxels of (x, y, z),
// which must be in bounds.
func (g *Grid) Index(x, y, z int) int {
	return x + y*g.Width + z*g.Width*g.Height
}

// At returns the voxel at (x, y, z), or 0 if it is out of bounds.
func (g *Grid) At(x, y, z int) uint8 {
	if !g.InBounds(x, y, z) {
		return 0
	}
	return g.Voxels[g.Index(x, y, z)]
}

// Set sets the voxel at (x, y, z) to v. It does nothing
// if (x, y, z) is out of bounds.
func (g *Grid) Set(x, y, z int, v uint8) {
	if !g.InBounds(x, y, z) {
		return
	}
	g.Voxels[g.Index(x, y, z)] = v
}

// Solid returns the number of solid voxels in the grid.
func (g *Grid) Solid() int {
	n := 0
	for _, v := range g.Voxels {
		if v != 0 {
			n++
		}
	}
	return n
}
