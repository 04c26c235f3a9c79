// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/ShadowCurse/breakout-zero/flat"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Circle returns a disc of given radius centered on the origin in
// the XY plane, tessellated as a triangle fan with the given number
// of segments (minimum 3): segments+1 vertices, segments triangles.
func Circle(radius float32, segments int) ([]flat.Vertex, []uint32) {
	segments = max(segments, 3)
	normal := mgl32.Vec3{0, 0, 1}
	tangent := mgl32.Vec3{1, 0, 0}
	bitangent := mgl32.Vec3{0, 1, 0}
	vtxs := make([]flat.Vertex, segments+1)
	vtxs[0] = flat.Vertex{
		Texcoord:  mgl32.Vec2{0.5, 0.5},
		Normal:    normal,
		Tangent:   tangent,
		Bitangent: bitangent,
	}
	for i := range segments {
		ang := 2 * math32.Pi * float32(i) / float32(segments)
		sin, cos := math32.Sincos(ang)
		vtxs[i+1] = flat.Vertex{
			Position:  mgl32.Vec3{radius * cos, radius * sin, 0},
			Texcoord:  mgl32.Vec2{0.5 + cos/2, 0.5 - sin/2},
			Normal:    normal,
			Tangent:   tangent,
			Bitangent: bitangent,
		}
	}
	idxs := make([]uint32, 0, 3*segments)
	for i := range segments {
		next := (i + 1) % segments
		idxs = append(idxs, 0, uint32(i+1), uint32(next+1))
	}
	return vtxs, idxs
}
