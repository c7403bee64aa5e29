// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import "github.com/chewxy/math32"

// MaxSteps is the maximum number of voxel boundaries
// a ray crosses before [Ray.CalculateHit] gives up.
const MaxSteps = 100

// Ray is a half-line from Position along Direction.
// Direction need not be normalized.
type Ray struct {
	Position  Vector3
	Direction Vector3
}

// Hit is the result of a ray hitting a solid voxel.
type Hit struct {

	// Position is where the ray enters the voxel.
	Position Vector3

	// Normal is the outward normal of the face the ray entered
	// through, or zero if the ray starts inside a solid voxel.
	Normal Vector3

	// Voxel is the grid coordinate of the voxel.
	Voxel Vector3i

	// Distance is the ray parameter of Position, in
	// units of Direction.
	Distance float32
}

// CalculateHit walks the voxels along the ray, one boundary at a
// time, and returns the first solid voxel of g it enters. Voxels
// outside of g are empty. It returns false if there is no solid
// voxel within [MaxSteps] boundaries or the direction is zero.
func (r Ray) CalculateHit(g *Grid) (Hit, bool) {
	if r.Direction == (Vector3{}) {
		return Hit{}, false
	}
	cur := r.Position.Floor()
	if g.At(int(cur.X), int(cur.Y), int(cur.Z)) != 0 {
		return Hit{Position: r.Position, Voxel: cur}, true
	}

	// step is the voxel increment along each axis, tMax the ray parameter
	// of the next boundary on each axis, and tDelta the ray parameter
	// between boundaries on each axis.
	var step Vector3i
	var tMax, tDelta [3]float32
	for dim := range 3 {
		p, d := r.Position.Dim(dim), r.Direction.Dim(dim)
		c := float32(cur.Dim(dim))
		switch {
		case d > 0:
			step.SetDim(dim, 1)
			tMax[dim] = (c + 1 - p) / d
			tDelta[dim] = 1 / d
		case d < 0:
			step.SetDim(dim, -1)
			tMax[dim] = (p - c) / -d
			tDelta[dim] = -1 / d
		default:
			tMax[dim] = math32.Inf(1)
			tDelta[dim] = math32.Inf(1)
		}
	}

	for range MaxSteps {
		dim := 0
		if tMax[1] < tMax[dim] {
			dim = 1
		}
		if tMax[2] < tMax[dim] {
			dim = 2
		}
		t := tMax[dim]
		cur.SetDim(dim, cur.Dim(dim)+step.Dim(dim))
		tMax[dim] += tDelta[dim]

		if g.At(int(cur.X), int(cur.Y), int(cur.Z)) == 0 {
			continue
		}
		var normal Vector3i
		normal.SetDim(dim, -step.Dim(dim))
		return Hit{
			Position: r.Position.Add(r.Direction.MulScalar(t)),
			Normal:   normal.ToVector3(),
			Voxel:    cur,
			Distance: t,
		}, true
	}
	return Hit{}, false
}

// Reflect returns the direction of the ray reflected
// about the normal of the given hit.
func (r Ray) Reflect(h Hit) Vector3 {
	n := h.Normal
	dot := r.Direction.X*n.X + r.Direction.Y*n.Y + r.Direction.Z*n.Z
	return r.Direction.Sub(n.MulScalar(2 * dot))
}
