// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breakout

import (
	"github.com/ShadowCurse/breakout-zero/flat"
	"github.com/ShadowCurse/breakout-zero/physics"
	"github.com/go-gl/mathgl/mgl32"
)

// BorderInstances is the number of records the border occupies at
// the start of the shared boxes instance buffer.
const BorderInstances = 2

// Border is the playing field frame: an outer box behind everything
// and an inner box on top of it, whose size difference leaves the
// visible frame. The outer box is also the collision boundary that
// keeps bodies inside the field.
type Border struct {
	Width      float32
	Height     float32
	Thickness  float32
	Color      mgl32.Vec4
	InnerColor mgl32.Vec4
}

// NewBorder returns the border for the given configuration.
func NewBorder(cfg BorderConfig) *Border {
	return &Border{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Thickness:  cfg.Thickness,
		Color:      mgl32.Vec4(cfg.Color),
		InnerColor: mgl32.Vec4(cfg.InnerColor),
	}
}

// Rect returns the outer collision rectangle, centered on the
// origin.
func (bd *Border) Rect() physics.Rectangle {
	return physics.FromCenter(mgl32.Vec2{0, 0}, bd.Width, bd.Height)
}

// Collides tests the given rectangle against the inside of the
// border, returning a collision with an inward normal for whichever
// edge it crossed, or nil if it is fully inside.
func (bd *Border) Collides(other physics.Rectangle) *physics.Collision {
	rect := bd.Rect()
	switch {
	case other.Left() < rect.Left():
		return &physics.Collision{
			Pos:    mgl32.Vec2{rect.Left(), other.Center().Y()},
			Normal: mgl32.Vec2{1, 0},
		}
	case rect.Right() < other.Right():
		return &physics.Collision{
			Pos:    mgl32.Vec2{rect.Right(), other.Center().Y()},
			Normal: mgl32.Vec2{-1, 0},
		}
	case other.Bottom() < rect.Bottom():
		return &physics.Collision{
			Pos:    mgl32.Vec2{other.Center().X(), rect.Bottom()},
			Normal: mgl32.Vec2{0, 1},
		}
	case rect.Top() < other.Top():
		return &physics.Collision{
			Pos:    mgl32.Vec2{other.Center().X(), rect.Top()},
			Normal: mgl32.Vec2{0, -1},
		}
	}
	return nil
}

// Sync writes the border's two records at the start of the shared
// boxes buffer: the outer box at z -0.1 and the inner box, shrunk
// by the frame thickness, at z -0.01 in front of it.
func (bd *Border) Sync(boxes *flat.ColorInstances) error {
	outer := flat.NewTransform()
	outer.Position = mgl32.Vec3{0, 0, -0.1}
	outer.Scale = mgl32.Vec3{bd.Width, bd.Height, 1}
	inner := flat.NewTransform()
	inner.Position = mgl32.Vec3{0, 0, -0.01}
	inner.Scale = mgl32.Vec3{bd.Width - bd.Thickness, bd.Height - bd.Thickness, 1}
	return boxes.Set(0, []flat.ColorInstance{
		{Transform: outer.Matrix(), Color: bd.Color},
		{Transform: inner.Matrix(), Color: bd.InnerColor},
	})
}
