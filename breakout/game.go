// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package breakout is the breakout game built on the [flat]
// rendering system: a ball bouncing inside a bordered field,
// a player platform, and a pack of crates that disable as the ball
// hits them. The platform draws through the one-color pipeline with
// its own material; the ball and the border+crate boxes draw
// through the per-instance-color pipeline, the boxes sharing one
// instance buffer.
package breakout

import (
	"image"

	"github.com/ShadowCurse/breakout-zero/flat"
	"github.com/ShadowCurse/breakout-zero/gpu"
	"github.com/ShadowCurse/breakout-zero/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// Game owns the rendering system and all game objects, and drives
// the per-frame update / sync / render cycle.
type Game struct {
	Config *Config
	Level  *Level

	Flat   *flat.Flat
	Camera *flat.Camera

	Ball     *Ball
	Platform *Platform
	Border   *Border
	Crates   *CratePack

	// boxMesh is the unit quad every box instance scales.
	boxMesh *flat.Mesh

	// boxes is the instance buffer shared by the border (records
	// 0-1) and the crate pack (the rest). Its record count is fixed
	// for the life of the game.
	boxes *flat.ColorInstances
}

// NewGame builds the game for the given configuration, rendering
// to the given target.
func NewGame(gp *gpu.GPU, rd gpu.Renderer, cfg *Config) (*Game, error) {
	lv, err := LoadLevel(cfg.LevelFile)
	if err != nil {
		return nil, err
	}
	fl, err := flat.NewFlat(gp, rd)
	if err != nil {
		return nil, err
	}
	gm := &Game{Config: cfg, Level: lv, Flat: fl}

	gm.Camera = flat.NewOrthographicCamera(
		mgl32.Vec3{0, 0, cfg.Camera.Z}, mgl32.Vec3{0, 0, -1},
		cfg.Camera.Extent, cfg.Camera.Extent, cfg.Camera.Near, cfg.Camera.Far)
	if err := fl.SetCamera(gm.Camera); err != nil {
		gm.Release()
		return nil, err
	}

	vtxs, idxs := shape.Quad(1, 1)
	gm.boxMesh, err = flat.NewMesh(fl.Device(), "box", vtxs, idxs)
	if err != nil {
		gm.Release()
		return nil, err
	}
	gm.boxes, err = flat.NewColorInstances(fl.Device(), "boxes",
		gm.boxMesh, BorderInstances+lv.Crates())
	if err != nil {
		gm.Release()
		return nil, err
	}

	gm.Border = NewBorder(cfg.Border)
	if err := gm.Border.Sync(gm.boxes); err != nil {
		gm.Release()
		return nil, err
	}
	gm.Crates = NewCratePack(lv, BorderInstances)

	gm.Ball, err = NewBall(fl.Device(), cfg.Ball)
	if err != nil {
		gm.Release()
		return nil, err
	}
	gm.Platform, err = NewPlatform(fl, cfg.Platform)
	if err != nil {
		gm.Release()
		return nil, err
	}
	return gm, nil
}

// SetPlatformMovement sets the platform input direction:
// -1 left, +1 right, 0 idle.
func (gm *Game) SetPlatformMovement(dir float32) {
	gm.Platform.SetMovement(dir)
}

// Update advances the game by dt seconds: the platform moves and
// clamps first, then the ball moves and resolves its collisions.
func (gm *Game) Update(dt float32) {
	gm.Platform.Update(gm.Border, dt)
	gm.Ball.Update(gm.Border, gm.Platform, gm.Crates, dt)
}

// Sync uploads changed instance data: ball and platform every
// frame, the crate pack only when a crate was hit. All uploads are
// queue writes issued before Render submits the frame's commands,
// so the draws observe them.
func (gm *Game) Sync() error {
	if err := gm.Platform.Sync(); err != nil {
		return err
	}
	if err := gm.Ball.Sync(); err != nil {
		return err
	}
	return gm.Crates.Sync(gm.boxes)
}

// Render draws one frame: the one-color pipeline draws the
// platform, then the per-instance-color pipeline draws the ball
// and the boxes.
func (gm *Game) Render() error {
	rp, err := gm.Flat.BeginRenderPass()
	if err != nil {
		return err
	}
	gm.Flat.OneColor.BindPipeline(rp)
	gm.Platform.Draw(rp)

	gm.Flat.PerInstance.BindPipeline(rp)
	gm.Ball.Draw(rp)
	gm.boxes.Draw(rp)

	rp.End()
	gm.Flat.EndRenderPass(rp)
	return nil
}

// SetSize resizes the render target. The camera is fixed: the world
// box stays the same.
func (gm *Game) SetSize(size image.Point) {
	gm.Flat.SetSize(size)
}

func (gm *Game) Release() {
	if gm.Platform != nil {
		gm.Platform.Release()
		gm.Platform = nil
	}
	if gm.Ball != nil {
		gm.Ball.Release()
		gm.Ball = nil
	}
	if gm.boxes != nil {
		gm.boxes.Release()
		gm.boxes = nil
	}
	if gm.boxMesh != nil {
		gm.boxMesh.Release()
		gm.boxMesh = nil
	}
	if gm.Flat != nil {
		gm.Flat.Release()
		gm.Flat = nil
	}
}
