// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breakout

import (
	"github.com/ShadowCurse/breakout-zero/flat"
	"github.com/ShadowCurse/breakout-zero/gpu"
	"github.com/ShadowCurse/breakout-zero/physics"
	"github.com/ShadowCurse/breakout-zero/shape"
	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Ball is the bouncing ball: a circle mesh drawn as a single
// per-instance-color record, moving with a constant speed and
// reflecting off whatever it hits.
type Ball struct {
	Radius    float32
	Color     mgl32.Vec4
	Speed     float32
	Velocity  mgl32.Vec2
	Transform flat.Transform

	mesh      *flat.Mesh
	instances *flat.ColorInstances
}

// NewBall returns the ball for the given configuration, with its
// velocity direction normalized.
func NewBall(dev *gpu.Device, cfg BallConfig) (*Ball, error) {
	vtxs, idxs := shape.Circle(cfg.Radius, cfg.Segments)
	mesh, err := flat.NewMesh(dev, "ball", vtxs, idxs)
	if err != nil {
		return nil, err
	}
	instances, err := flat.NewColorInstances(dev, "ball", mesh, 1)
	if err != nil {
		mesh.Release()
		return nil, err
	}
	vel := mgl32.Vec2(cfg.Velocity)
	if l := math32.Hypot(vel.X(), vel.Y()); l > 0 {
		vel = vel.Mul(1 / l)
	}
	tr := flat.NewTransform()
	tr.Position = mgl32.Vec3{cfg.Start[0], cfg.Start[1], 0}
	return &Ball{
		Radius:    cfg.Radius,
		Color:     mgl32.Vec4(cfg.Color),
		Speed:     cfg.Speed,
		Velocity:  vel,
		Transform: tr,
		mesh:      mesh,
		instances: instances,
	}, nil
}

// Rect returns the ball's bounding rectangle.
func (bl *Ball) Rect() physics.Rectangle {
	return physics.FromCenter(
		mgl32.Vec2{bl.Transform.Position.X(), bl.Transform.Position.Y()},
		bl.Radius*2, bl.Radius*2)
}

// Update advances the ball by dt and reflects it off the border,
// the platform, and the first crate it hits, in that order.
func (bl *Ball) Update(border *Border, platform *Platform, crates *CratePack, dt float32) {
	bl.Transform.Position[0] += bl.Velocity.X() * bl.Speed * dt
	bl.Transform.Position[1] += bl.Velocity.Y() * bl.Speed * dt

	bl.reflect(border.Collides(bl.Rect()))
	bl.reflect(platform.Rect().Collides(bl.Rect()))
	bl.reflect(crates.Collide(bl.Rect()))
}

// reflect flips the velocity along the collision normal axes.
func (bl *Ball) reflect(col *physics.Collision) {
	if col == nil {
		return
	}
	if col.Normal.X() != 0 {
		bl.Velocity[0] *= -1
	}
	if col.Normal.Y() != 0 {
		bl.Velocity[1] *= -1
	}
}

// Sync uploads the ball's instance record.
func (bl *Ball) Sync() error {
	return bl.instances.Set(0, []flat.ColorInstance{
		{Transform: bl.Transform.Matrix(), Color: bl.Color},
	})
}

// Draw draws the ball; the per-instance-color pipeline must be
// bound.
func (bl *Ball) Draw(rp *wgpu.RenderPassEncoder) {
	bl.instances.Draw(rp)
}

func (bl *Ball) Release() {
	if bl.instances != nil {
		bl.instances.Release()
		bl.instances = nil
	}
	if bl.mesh != nil {
		bl.mesh.Release()
		bl.mesh = nil
	}
}
