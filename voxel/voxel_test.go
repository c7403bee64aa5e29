// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func must(g *Grid, err error) *Grid {
	if err != nil {
		panic(err)
	}
	return g
}

func TestSquare(t *testing.T) {
	g := must(Square(40, 40, 40))
	assert.Len(t, g.Voxels, 40*40*40)
	assert.Equal(t, 20*20*20, g.Solid())
	assert.Equal(t, uint8(1), g.At(10, 10, 10))
	assert.Equal(t, uint8(1), g.At(29, 29, 29))
	assert.Equal(t, uint8(0), g.At(9, 10, 10))
	assert.Equal(t, uint8(0), g.At(30, 29, 29))
	assert.Equal(t, uint8(0), g.At(-1, 20, 20))
}

func TestCircle(t *testing.T) {
	g := must(Circle(40, 40, 40))
	assert.Equal(t, uint8(1), g.At(20, 20, 20))
	assert.Equal(t, uint8(1), g.At(11, 20, 20))
	assert.Equal(t, uint8(0), g.At(10, 20, 20), "distance of exactly the radius is outside")
	assert.Equal(t, uint8(0), g.At(0, 0, 0))

	// symmetric around the center
	assert.Equal(t, g.At(12, 15, 20), g.At(28, 25, 20))
	assert.Greater(t, g.Solid(), 0)
}

func TestGridSet(t *testing.T) {
	g := must(NewGrid(2, 3, 4))
	g.Set(1, 2, 3, 7)
	assert.Equal(t, uint8(7), g.Voxels[len(g.Voxels)-1])
	assert.Equal(t, 1+2*2+3*2*3, g.Index(1, 2, 3))
	assert.NotPanics(t, func() { g.Set(2, 0, 0, 1) })
	assert.Equal(t, 1, g.Solid())
}

func TestNewGridSize(t *testing.T) {
	g, err := NewGrid(0, 5, 5)
	require.NoError(t, err)
	assert.Empty(t, g.Voxels)
	assert.Equal(t, uint8(0), g.At(0, 0, 0))

	_, err = NewGrid(-1, 5, 5)
	assert.Error(t, err)
	_, err = Square(4, -4, 4)
	assert.Error(t, err)

	assert.NotPanics(t, func() {
		_, err = Circle(3000000, 3000000, 3000000)
	})
	assert.Error(t, err)
	_, err = NewGrid(MaxVoxels, 2, 1)
	assert.Error(t, err)
	_, err = NewGrid(MaxVoxels/2+1, 2, 1)
	assert.Error(t, err, "one more row than fits")
}

func TestCalculateHitCircle(t *testing.T) {
	g := must(Circle(40, 40, 40))
	r := Ray{Position: Vec3(-5, 20.5, 20.5), Direction: Vec3(1, 0, 0)}
	h, ok := r.CalculateHit(g)
	require.True(t, ok)
	assert.Equal(t, Vec3i(11, 20, 20), h.Voxel)
	assert.Equal(t, Vec3(-1, 0, 0), h.Normal)
	assert.Equal(t, Vec3(11, 20.5, 20.5), h.Position)
	assert.Equal(t, float32(16), h.Distance)

	assert.Equal(t, Vec3(-1, 0, 0), r.Reflect(h))
}

func TestCalculateHitSquare(t *testing.T) {
	g := must(Square(40, 40, 40))
	r := Ray{Position: Vec3(20.5, 50, 20.5), Direction: Vec3(0, -2, 0)}
	h, ok := r.CalculateHit(g)
	require.True(t, ok)
	assert.Equal(t, Vec3i(20, 29, 20), h.Voxel)
	assert.Equal(t, Vec3(0, 1, 0), h.Normal)
	assert.Equal(t, Vec3(20.5, 30, 20.5), h.Position)
	assert.Equal(t, float32(10), h.Distance)
}

func TestCalculateHitDiagonal(t *testing.T) {
	g := must(Square(40, 40, 40))
	r := Ray{Position: Vec3(0.5, 0.25, 0.5), Direction: Vec3(1, 1, 1)}
	h, ok := r.CalculateHit(g)
	require.True(t, ok)
	// x and z reach the box at t = 9.5, y last at t = 9.75
	assert.Equal(t, Vec3i(10, 10, 10), h.Voxel)
	assert.Equal(t, Vec3(0, -1, 0), h.Normal)
	assert.InDelta(t, 10.25, h.Position.X, 1e-4)
	assert.InDelta(t, 10, h.Position.Y, 1e-4)
	assert.InDelta(t, 10.25, h.Position.Z, 1e-4)
	assert.InDelta(t, 9.75, h.Distance, 1e-4)
}

func TestCalculateHitMiss(t *testing.T) {
	g := must(Square(40, 40, 40))

	_, ok := Ray{Position: Vec3(5, 5, 5), Direction: Vec3(-1, 0, 0)}.CalculateHit(g)
	assert.False(t, ok, "pointing away")

	_, ok = Ray{Position: Vec3(5, 5, 5), Direction: Vector3{}}.CalculateHit(g)
	assert.False(t, ok, "zero direction")

	_, ok = Ray{Position: Vec3(-200, 20, 20), Direction: Vec3(1, 0, 0)}.CalculateHit(g)
	assert.False(t, ok, "beyond the step limit")
}

func TestCalculateHitInside(t *testing.T) {
	g := must(Square(40, 40, 40))
	r := Ray{Position: Vec3(20, 20, 20), Direction: Vec3(0, 0, 1)}
	h, ok := r.CalculateHit(g)
	require.True(t, ok)
	assert.Equal(t, Vector3{}, h.Normal)
	assert.Equal(t, r.Position, h.Position)
}
