// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates simple meshes as [flat.Vertex] slices
// with uint32 indices, front faces wound counter-clockwise.
// Planar shapes lie in the XY plane facing +Z, with tangent +X
// and bitangent +Y.
package shape

import (
	"github.com/ShadowCurse/breakout-zero/flat"
	"github.com/go-gl/mathgl/mgl32"
)

// Quad returns a width x height rectangle centered on the origin
// in the XY plane: 4 vertices, 2 triangles.
func Quad(width, height float32) ([]flat.Vertex, []uint32) {
	hw := width / 2
	hh := height / 2
	normal := mgl32.Vec3{0, 0, 1}
	tangent := mgl32.Vec3{1, 0, 0}
	bitangent := mgl32.Vec3{0, 1, 0}
	vtxs := []flat.Vertex{
		{Position: mgl32.Vec3{-hw, -hh, 0}, Texcoord: mgl32.Vec2{0, 1}, Normal: normal, Tangent: tangent, Bitangent: bitangent},
		{Position: mgl32.Vec3{hw, -hh, 0}, Texcoord: mgl32.Vec2{1, 1}, Normal: normal, Tangent: tangent, Bitangent: bitangent},
		{Position: mgl32.Vec3{hw, hh, 0}, Texcoord: mgl32.Vec2{1, 0}, Normal: normal, Tangent: tangent, Bitangent: bitangent},
		{Position: mgl32.Vec3{-hw, hh, 0}, Texcoord: mgl32.Vec2{0, 0}, Normal: normal, Tangent: tangent, Bitangent: bitangent},
	}
	idxs := []uint32{0, 1, 2, 0, 2, 3}
	return vtxs, idxs
}
