// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRectangle(t *testing.T) {
	r := FromCenter(mgl32.Vec2{1, 2}, 4, 6)
	assert.Equal(t, Rectangle{X: -1, Y: -1, Width: 4, Height: 6}, r)
	assert.Equal(t, mgl32.Vec2{1, 2}, r.Center())
	assert.Equal(t, float32(-1), r.Left())
	assert.Equal(t, float32(3), r.Right())
	assert.Equal(t, float32(-1), r.Bottom())
	assert.Equal(t, float32(5), r.Top())
}

func TestCollidesMisses(t *testing.T) {
	r := FromCenter(mgl32.Vec2{0, 0}, 4, 2)

	// far apart
	assert.Nil(t, r.Collides(FromCenter(mgl32.Vec2{10, 0}, 2, 2)))
	assert.Nil(t, r.Collides(FromCenter(mgl32.Vec2{0, -10}, 2, 2)))

	// touching edges do not overlap
	assert.Nil(t, r.Collides(FromCenter(mgl32.Vec2{3, 0}, 2, 2)))
	assert.Nil(t, r.Collides(FromCenter(mgl32.Vec2{0, 2}, 2, 2)))

	// a rectangle never collides with itself
	assert.Nil(t, r.Collides(r))
}

func TestCollidesMinimumAxis(t *testing.T) {
	r := FromCenter(mgl32.Vec2{0, 0}, 4, 2)

	// shallower in x than in y: contact on r's right edge at the
	// other body's center height
	col := r.Collides(FromCenter(mgl32.Vec2{2.5, 0}, 2, 2))
	assert.NotNil(t, col)
	assert.Equal(t, mgl32.Vec2{1, 0}, col.Normal)
	assert.Equal(t, mgl32.Vec2{2, 0}, col.Pos)

	// same from the left
	col = r.Collides(FromCenter(mgl32.Vec2{-2.5, 0.5}, 2, 2))
	assert.NotNil(t, col)
	assert.Equal(t, mgl32.Vec2{-1, 0}, col.Normal)
	assert.Equal(t, mgl32.Vec2{-2, 0.5}, col.Pos)

	// shallower in y: contact on r's top edge
	col = r.Collides(FromCenter(mgl32.Vec2{0, 1.5}, 2, 2))
	assert.NotNil(t, col)
	assert.Equal(t, mgl32.Vec2{0, 1}, col.Normal)
	assert.Equal(t, mgl32.Vec2{0, 1}, col.Pos)

	// and on r's bottom edge
	col = r.Collides(FromCenter(mgl32.Vec2{1, -1.5}, 2, 2))
	assert.NotNil(t, col)
	assert.Equal(t, mgl32.Vec2{0, -1}, col.Normal)
	assert.Equal(t, mgl32.Vec2{1, -1}, col.Pos)
}

func TestCollidesContained(t *testing.T) {
	// a small body fully inside still resolves on the axis nearest
	// to an edge
	r := FromCenter(mgl32.Vec2{0, 0}, 10, 10)
	col := r.Collides(FromCenter(mgl32.Vec2{4, 0}, 1, 1))
	assert.NotNil(t, col)
	assert.Equal(t, mgl32.Vec2{1, 0}, col.Normal)
}
