// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physics provides the minimal 2D axis-aligned collision
// tests the game needs: center-based rectangles and
// minimum-penetration overlap resolution.
package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Rectangle is an axis-aligned rectangle, stored as its bottom-left
// corner and size, in a y-up world.
type Rectangle struct {
	// X, Y is the bottom-left corner.
	X, Y float32

	// Width, Height is the size.
	Width, Height float32
}

// FromCenter returns the Rectangle of given size centered on the
// given point.
func FromCenter(center mgl32.Vec2, width, height float32) Rectangle {
	return Rectangle{
		X:      center.X() - width/2,
		Y:      center.Y() - height/2,
		Width:  width,
		Height: height,
	}
}

// Center returns the center point.
func (r Rectangle) Center() mgl32.Vec2 {
	return mgl32.Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Left returns the minimum x edge.
func (r Rectangle) Left() float32 { return r.X }

// Right returns the maximum x edge.
func (r Rectangle) Right() float32 { return r.X + r.Width }

// Bottom returns the minimum y edge.
func (r Rectangle) Bottom() float32 { return r.Y }

// Top returns the maximum y edge.
func (r Rectangle) Top() float32 { return r.Y + r.Height }

// Collision is a contact between two bodies: the contact point and
// the axis-aligned contact normal, pointing from the tested
// rectangle toward the other body.
type Collision struct {
	Pos    mgl32.Vec2
	Normal mgl32.Vec2
}

// Collides tests the other rectangle for overlap with r, returning
// the contact on the minimum-penetration axis, or nil if the two do
// not overlap. Identical rectangles do not collide.
func (r Rectangle) Collides(other Rectangle) *Collision {
	if r == other {
		return nil
	}
	rc := r.Center()
	oc := other.Center()

	dx := oc.X() - rc.X()
	px := (other.Width+r.Width)/2 - math32.Abs(dx)
	if px <= 0 {
		return nil
	}

	dy := oc.Y() - rc.Y()
	py := (other.Height+r.Height)/2 - math32.Abs(dy)
	if py <= 0 {
		return nil
	}

	if px < py {
		sign := math32.Copysign(1, dx)
		return &Collision{
			Pos:    mgl32.Vec2{rc.X() + r.Width/2*sign, oc.Y()},
			Normal: mgl32.Vec2{sign, 0},
		}
	}
	sign := math32.Copysign(1, dy)
	return &Collision{
		Pos:    mgl32.Vec2{oc.X(), rc.Y() + r.Height/2*sign},
		Normal: mgl32.Vec2{0, sign},
	}
}
