// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breakout

import (
	"github.com/ShadowCurse/breakout-zero/flat"
	"github.com/ShadowCurse/breakout-zero/physics"
	"github.com/ShadowCurse/breakout-zero/shape"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Platform is the player paddle: a quad drawn by the one-color
// pipeline with its own material, moving along a fixed height under
// a/d input and clamped inside the border.
type Platform struct {
	Width     float32
	Height    float32
	Speed     float32
	Transform flat.Transform

	// movement is the current input direction: -1 left, +1 right,
	// 0 idle.
	movement float32

	mesh      *flat.Mesh
	material  *flat.Material
	instances *flat.Instances
}

// NewPlatform returns the platform for the given configuration,
// with its material created against the system's one-color
// pipeline.
func NewPlatform(fl *flat.Flat, cfg PlatformConfig) (*Platform, error) {
	vtxs, idxs := shape.Quad(cfg.Width, cfg.Height)
	mesh, err := flat.NewMesh(fl.Device(), "platform", vtxs, idxs)
	if err != nil {
		return nil, err
	}
	material, err := fl.NewMaterial("platform", mgl32.Vec4(cfg.Color))
	if err != nil {
		mesh.Release()
		return nil, err
	}
	instances, err := flat.NewInstances(fl.Device(), "platform", mesh, 1)
	if err != nil {
		material.Release()
		mesh.Release()
		return nil, err
	}
	tr := flat.NewTransform()
	tr.Position = mgl32.Vec3{0, cfg.Y, 0}
	return &Platform{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Speed:     cfg.Speed,
		Transform: tr,
		mesh:      mesh,
		material:  material,
		instances: instances,
	}, nil
}

// SetMovement sets the current input direction: -1 moves left,
// +1 moves right, 0 stops.
func (pf *Platform) SetMovement(dir float32) {
	pf.movement = dir
}

// Rect returns the platform's collision rectangle.
func (pf *Platform) Rect() physics.Rectangle {
	return physics.FromCenter(
		mgl32.Vec2{pf.Transform.Position.X(), pf.Transform.Position.Y()},
		pf.Width, pf.Height)
}

// Update moves the platform by the current input direction and
// clamps it inside the border.
func (pf *Platform) Update(border *Border, dt float32) {
	pf.Transform.Position[0] += pf.movement * pf.Speed * dt

	if col := border.Collides(pf.Rect()); col != nil {
		if col.Normal.X() >= 0 {
			pf.Transform.Position[0] = col.Pos.X() + pf.Width/2
		} else {
			pf.Transform.Position[0] = col.Pos.X() - pf.Width/2
		}
	}
}

// Sync uploads the platform's instance record.
func (pf *Platform) Sync() error {
	return pf.instances.Set(0, []flat.Instance{
		{Transform: pf.Transform.Matrix()},
	})
}

// Draw binds the platform material and draws it; the one-color
// pipeline must be bound.
func (pf *Platform) Draw(rp *wgpu.RenderPassEncoder) {
	pf.material.Bind(rp)
	pf.instances.Draw(rp)
}

func (pf *Platform) Release() {
	if pf.instances != nil {
		pf.instances.Release()
		pf.instances = nil
	}
	if pf.material != nil {
		pf.material.Release()
		pf.material = nil
	}
	if pf.mesh != nil {
		pf.mesh.Release()
		pf.mesh = nil
	}
}
