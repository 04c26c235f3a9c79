// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/ShadowCurse/breakout-zero/flat"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// triCross returns the cross product of the given triangle's edges:
// it points along the face normal when the winding is
// counter-clockwise seen from the front.
func triCross(vtxs []flat.Vertex, idxs []uint32, tri int) mgl32.Vec3 {
	a := vtxs[idxs[3*tri]].Position
	b := vtxs[idxs[3*tri+1]].Position
	c := vtxs[idxs[3*tri+2]].Position
	return b.Sub(a).Cross(c.Sub(a))
}

func TestQuad(t *testing.T) {
	vtxs, idxs := Quad(3, 2)
	assert.Len(t, vtxs, 4)
	assert.Len(t, idxs, 6)

	assert.Equal(t, mgl32.Vec3{-1.5, -1, 0}, vtxs[0].Position)
	assert.Equal(t, mgl32.Vec3{1.5, 1, 0}, vtxs[2].Position)
	assert.Equal(t, mgl32.Vec2{0, 1}, vtxs[0].Texcoord)
	assert.Equal(t, mgl32.Vec2{1, 0}, vtxs[2].Texcoord)

	for tri := range 2 {
		assert.Greater(t, triCross(vtxs, idxs, tri).Z(), float32(0))
	}
	for _, v := range vtxs {
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, v.Normal)
		assert.Equal(t, v.Normal, v.Tangent.Cross(v.Bitangent))
	}
}

func TestCircle(t *testing.T) {
	vtxs, idxs := Circle(2.5, 8)
	assert.Len(t, vtxs, 9)
	assert.Len(t, idxs, 24)

	assert.Equal(t, mgl32.Vec3{}, vtxs[0].Position)
	assert.Equal(t, mgl32.Vec2{0.5, 0.5}, vtxs[0].Texcoord)
	for _, v := range vtxs[1:] {
		assert.InDelta(t, 2.5, math32.Hypot(v.Position.X(), v.Position.Y()), 1e-5)
		assert.Equal(t, float32(0), v.Position.Z())
		assert.LessOrEqual(t, v.Texcoord.X(), float32(1))
		assert.GreaterOrEqual(t, v.Texcoord.X(), float32(0))
		assert.LessOrEqual(t, v.Texcoord.Y(), float32(1))
		assert.GreaterOrEqual(t, v.Texcoord.Y(), float32(0))
	}
	for tri := range 8 {
		assert.Greater(t, triCross(vtxs, idxs, tri).Z(), float32(0))
	}
	// the last triangle closes the fan back to the first ring vertex
	assert.Equal(t, []uint32{0, 8, 1}, idxs[21:])
}

func TestCircleMinSegments(t *testing.T) {
	vtxs, idxs := Circle(1, 1)
	assert.Len(t, vtxs, 4)
	assert.Len(t, idxs, 9)
}

func TestBox(t *testing.T) {
	vtxs, idxs := Box(2, 4, 6)
	assert.Len(t, vtxs, 24)
	assert.Len(t, idxs, 36)

	half := mgl32.Vec3{1, 2, 3}
	sum := mgl32.Vec3{}
	for _, v := range vtxs {
		// every vertex sits on the plane of its face
		ext := math32.Abs(v.Normal.X())*half.X() +
			math32.Abs(v.Normal.Y())*half.Y() +
			math32.Abs(v.Normal.Z())*half.Z()
		assert.Equal(t, ext, v.Position.Dot(v.Normal))
		assert.Equal(t, v.Normal, v.Tangent.Cross(v.Bitangent))
		sum = sum.Add(v.Position)
	}
	// centered on the origin
	assert.Equal(t, mgl32.Vec3{}, sum)

	// every face is wound counter-clockwise seen from outside
	for tri := range 12 {
		n := vtxs[idxs[3*tri]].Normal
		assert.Greater(t, triCross(vtxs, idxs, tri).Dot(n), float32(0))
	}
}
