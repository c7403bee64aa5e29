// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import "github.com/chewxy/math32"

// Vector3 is a 3D vector/point with X, Y and Z float32 components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the vector sum of v and other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v minus other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// MulScalar returns v with each component multiplied by s.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// DistanceToSquared returns the squared distance between v and other.
func (v Vector3) DistanceToSquared(other Vector3) float32 {
	d := v.Sub(other)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// Floor returns the [Vector3i] of the largest integers
// less than or equal to each component.
func (v Vector3) Floor() Vector3i {
	return Vector3i{int32(math32.Floor(v.X)), int32(math32.Floor(v.Y)), int32(math32.Floor(v.Z))}
}

// Dim returns the component of v for the given dimension (0, 1 or 2).
func (v Vector3) Dim(dim int) float32 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Vector3i is a 3D vector/point with X, Y and Z int32 components.
type Vector3i struct {
	X int32
	Y int32
	Z int32
}

// Vec3i returns a new [Vector3i] with the given x, y and z components.
func Vec3i(x, y, z int32) Vector3i {
	return Vector3i{X: x, Y: y, Z: z}
}

// ToVector3 returns v as a [Vector3].
func (v Vector3i) ToVector3() Vector3 {
	return Vector3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Dim returns the component of v for the given dimension (0, 1 or 2).
func (v Vector3i) Dim(dim int) int32 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// SetDim sets the component of v for the given dimension (0, 1 or 2).
func (v *Vector3i) SetDim(dim int, value int32) {
	switch dim {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
}
