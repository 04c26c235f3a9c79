// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/ShadowCurse/breakout-zero/flat"
	"github.com/go-gl/mathgl/mgl32"
)

// boxFace is one face of a box: outward normal, tangent, bitangent,
// and the four corners wound counter-clockwise from outside.
type boxFace struct {
	normal    mgl32.Vec3
	tangent   mgl32.Vec3
	bitangent mgl32.Vec3
	corners   [4]mgl32.Vec3
}

// Box returns a box of given size centered on the origin, with
// 4 vertices per face (24 total, 36 indices) so each face has its
// own normal, tangent, and bitangent.
func Box(sx, sy, sz float32) ([]flat.Vertex, []uint32) {
	x := sx / 2
	y := sy / 2
	z := sz / 2
	faces := []boxFace{
		{ // +z
			normal: mgl32.Vec3{0, 0, 1}, tangent: mgl32.Vec3{1, 0, 0}, bitangent: mgl32.Vec3{0, 1, 0},
			corners: [4]mgl32.Vec3{{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z}},
		},
		{ // -z
			normal: mgl32.Vec3{0, 0, -1}, tangent: mgl32.Vec3{-1, 0, 0}, bitangent: mgl32.Vec3{0, 1, 0},
			corners: [4]mgl32.Vec3{{x, -y, -z}, {-x, -y, -z}, {-x, y, -z}, {x, y, -z}},
		},
		{ // +x
			normal: mgl32.Vec3{1, 0, 0}, tangent: mgl32.Vec3{0, 0, -1}, bitangent: mgl32.Vec3{0, 1, 0},
			corners: [4]mgl32.Vec3{{x, -y, z}, {x, -y, -z}, {x, y, -z}, {x, y, z}},
		},
		{ // -x
			normal: mgl32.Vec3{-1, 0, 0}, tangent: mgl32.Vec3{0, 0, 1}, bitangent: mgl32.Vec3{0, 1, 0},
			corners: [4]mgl32.Vec3{{-x, -y, -z}, {-x, -y, z}, {-x, y, z}, {-x, y, -z}},
		},
		{ // +y
			normal: mgl32.Vec3{0, 1, 0}, tangent: mgl32.Vec3{1, 0, 0}, bitangent: mgl32.Vec3{0, 0, -1},
			corners: [4]mgl32.Vec3{{-x, y, z}, {x, y, z}, {x, y, -z}, {-x, y, -z}},
		},
		{ // -y
			normal: mgl32.Vec3{0, -1, 0}, tangent: mgl32.Vec3{1, 0, 0}, bitangent: mgl32.Vec3{0, 0, 1},
			corners: [4]mgl32.Vec3{{-x, -y, -z}, {x, -y, -z}, {x, -y, z}, {-x, -y, z}},
		},
	}
	texcoords := [4]mgl32.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	vtxs := make([]flat.Vertex, 0, 24)
	idxs := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vtxs))
		for ci, c := range f.corners {
			vtxs = append(vtxs, flat.Vertex{
				Position:  c,
				Texcoord:  texcoords[ci],
				Normal:    f.normal,
				Tangent:   f.tangent,
				Bitangent: f.bitangent,
			})
		}
		idxs = append(idxs, base, base+1, base+2, base, base+2, base+3)
	}
	return vtxs, idxs
}
