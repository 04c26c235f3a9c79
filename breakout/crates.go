// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breakout

import (
	"github.com/ShadowCurse/breakout-zero/flat"
	"github.com/ShadowCurse/breakout-zero/physics"
	"github.com/go-gl/mathgl/mgl32"
)

// Crate is one crate of the pack. A disabled crate stays in the
// instance buffer with its disabled flag set: the pipeline discards
// it, and the instance count of the pack never changes.
type Crate struct {
	Transform flat.Transform
	Color     mgl32.Vec4
	Disabled  bool
}

// CratePack is the grid of crates, writing its records into the
// shared boxes buffer after the border.
type CratePack struct {
	Crates []Crate

	// RectWidth, RectHeight is the collision size of every crate.
	RectWidth  float32
	RectHeight float32

	// offset is the pack's first record index in the shared boxes
	// buffer.
	offset int

	needSync bool
}

// NewCratePack returns the crate pack for the given level, laid out
// as a rows x cols grid around the level center, writing its
// records at the given record offset of the shared boxes buffer.
func NewCratePack(lv *Level, offset int) *CratePack {
	bottomLeft := mgl32.Vec2{
		lv.Center[0] - (lv.GapX+lv.CrateWidth)/2*float32(lv.Cols-1),
		lv.Center[1] - (lv.GapY+lv.CrateHeight)/2*float32(lv.Rows-1),
	}
	crates := make([]Crate, 0, lv.Crates())
	for x := range lv.Cols {
		for y := range lv.Rows {
			tr := flat.NewTransform()
			tr.Position = mgl32.Vec3{
				bottomLeft.X() + float32(x)*(lv.CrateWidth+lv.GapX),
				bottomLeft.Y() + float32(y)*(lv.CrateHeight+lv.GapY),
				0,
			}
			tr.Scale = mgl32.Vec3{lv.CrateWidth, lv.CrateHeight, 1}
			crates = append(crates, Crate{
				Transform: tr,
				Color:     mgl32.Vec4(lv.RowColor(y)),
			})
		}
	}
	return &CratePack{
		Crates:     crates,
		RectWidth:  lv.CrateWidth,
		RectHeight: lv.CrateHeight,
		offset:     offset,
		needSync:   true,
	}
}

// Collide tests the given rectangle against the enabled crates,
// disabling the first one hit and returning the collision, or nil.
func (cp *CratePack) Collide(other physics.Rectangle) *physics.Collision {
	for i := range cp.Crates {
		c := &cp.Crates[i]
		if c.Disabled {
			continue
		}
		rect := physics.FromCenter(
			mgl32.Vec2{c.Transform.Position.X(), c.Transform.Position.Y()},
			cp.RectWidth, cp.RectHeight)
		if col := rect.Collides(other); col != nil {
			c.Disabled = true
			cp.needSync = true
			return col
		}
	}
	return nil
}

// Remaining returns the number of enabled crates.
func (cp *CratePack) Remaining() int {
	n := 0
	for i := range cp.Crates {
		if !cp.Crates[i].Disabled {
			n++
		}
	}
	return n
}

// Sync uploads the pack's records to the shared boxes buffer if any
// crate changed since the last upload. All records are always
// written, disabled ones included.
func (cp *CratePack) Sync(boxes *flat.ColorInstances) error {
	if !cp.needSync {
		return nil
	}
	records := make([]flat.ColorInstance, len(cp.Crates))
	for i, c := range cp.Crates {
		var disabled int32
		if c.Disabled {
			disabled = 1
		}
		records[i] = flat.ColorInstance{
			Transform: c.Transform.Matrix(),
			Color:     c.Color,
			Disabled:  disabled,
		}
	}
	if err := boxes.Set(cp.offset, records); err != nil {
		return err
	}
	cp.needSync = false
	return nil
}
