// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breakout

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/ShadowCurse/breakout-zero/flat"
	"github.com/ShadowCurse/breakout-zero/gpu"
	"github.com/ShadowCurse/breakout-zero/physics"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func testBorder() *Border {
	return NewBorder(BorderConfig{Width: 19, Height: 19, Thickness: 0.5})
}

// testLevel is a 2x3 grid around (0, 3): crate centers at x -2, 0,
// 2 and y 2.5, 3.5.
func testLevel() *Level {
	return &Level{
		Rows: 2, Cols: 3,
		CrateWidth: 1.5, CrateHeight: 0.75,
		GapX: 0.5, GapY: 0.25,
		Center: [2]float32{0, 3},
		Colors: [][4]float32{{1, 0, 0, 1}, {0, 1, 0, 1}},
	}
}

func TestBorderCollides(t *testing.T) {
	bd := testBorder()
	assert.Equal(t, physics.Rectangle{X: -9.5, Y: -9.5, Width: 19, Height: 19}, bd.Rect())

	// fully inside
	assert.Nil(t, bd.Collides(physics.FromCenter(mgl32.Vec2{0, 0}, 1, 1)))
	assert.Nil(t, bd.Collides(physics.FromCenter(mgl32.Vec2{9, 9}, 1, 1)))

	// each crossed edge pushes back inward
	col := bd.Collides(physics.FromCenter(mgl32.Vec2{-9.4, 2}, 1, 1))
	assert.NotNil(t, col)
	assert.Equal(t, mgl32.Vec2{1, 0}, col.Normal)
	assert.Equal(t, mgl32.Vec2{-9.5, 2}, col.Pos)

	col = bd.Collides(physics.FromCenter(mgl32.Vec2{9.4, -1}, 1, 1))
	assert.NotNil(t, col)
	assert.Equal(t, mgl32.Vec2{-1, 0}, col.Normal)
	assert.Equal(t, mgl32.Vec2{9.5, -1}, col.Pos)

	col = bd.Collides(physics.FromCenter(mgl32.Vec2{0, -9.4}, 1, 1))
	assert.NotNil(t, col)
	assert.Equal(t, mgl32.Vec2{0, 1}, col.Normal)
	assert.Equal(t, mgl32.Vec2{0, -9.5}, col.Pos)

	col = bd.Collides(physics.FromCenter(mgl32.Vec2{3, 9.4}, 1, 1))
	assert.NotNil(t, col)
	assert.Equal(t, mgl32.Vec2{0, -1}, col.Normal)
	assert.Equal(t, mgl32.Vec2{3, 9.5}, col.Pos)
}

func TestCrateGrid(t *testing.T) {
	cp := NewCratePack(testLevel(), BorderInstances)
	assert.Len(t, cp.Crates, 6)
	assert.Equal(t, float32(1.5), cp.RectWidth)
	assert.Equal(t, float32(0.75), cp.RectHeight)

	// column-major: all rows of a column before the next column
	want := []mgl32.Vec3{
		{-2, 2.5, 0}, {-2, 3.5, 0},
		{0, 2.5, 0}, {0, 3.5, 0},
		{2, 2.5, 0}, {2, 3.5, 0},
	}
	for i, c := range cp.Crates {
		assert.Equal(t, want[i], c.Transform.Position)
		assert.Equal(t, mgl32.Vec3{1.5, 0.75, 1}, c.Transform.Scale)
		assert.False(t, c.Disabled)
	}
	// colors follow rows
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, cp.Crates[0].Color)
	assert.Equal(t, mgl32.Vec4{0, 1, 0, 1}, cp.Crates[1].Color)
}

func TestCrateCollide(t *testing.T) {
	cp := NewCratePack(testLevel(), BorderInstances)

	// a miss hits nothing and disables nothing
	assert.Nil(t, cp.Collide(physics.FromCenter(mgl32.Vec2{5, 5}, 0.5, 0.5)))
	assert.Equal(t, 6, cp.Remaining())

	// the first hit disables exactly the crate it struck
	probe := physics.FromCenter(mgl32.Vec2{-2, 2.2}, 0.5, 0.5)
	col := cp.Collide(probe)
	assert.NotNil(t, col)
	assert.Equal(t, mgl32.Vec2{0, -1}, col.Normal)
	assert.True(t, cp.Crates[0].Disabled)
	assert.Equal(t, 5, cp.Remaining())
	// the pack never shrinks
	assert.Len(t, cp.Crates, 6)

	// the same probe misses now: disabled crates are skipped
	assert.Nil(t, cp.Collide(probe))

	// a probe overlapping the disabled crate and its neighbor hits
	// the neighbor
	tall := physics.FromCenter(mgl32.Vec2{-2, 3}, 0.4, 1.2)
	col = cp.Collide(tall)
	assert.NotNil(t, col)
	assert.True(t, cp.Crates[1].Disabled)
	assert.Equal(t, 4, cp.Remaining())
}

func TestBallReflect(t *testing.T) {
	bd := testBorder()
	pf := &Platform{Width: 2, Height: 0.5, Transform: flat.NewTransform()}
	pf.Transform.Position = mgl32.Vec3{0, -8, 0}
	cp := &CratePack{}

	// off the right border wall
	bl := &Ball{Radius: 0.5, Speed: 8, Velocity: mgl32.Vec2{1, 0}, Transform: flat.NewTransform()}
	bl.Transform.Position = mgl32.Vec3{9, 0, 0}
	bl.Update(bd, pf, cp, 0.1)
	assert.Equal(t, mgl32.Vec2{-1, 0}, bl.Velocity)

	// off the platform, flipping only y
	bl = &Ball{Radius: 0.5, Speed: 8, Velocity: mgl32.Vec2{0, -1}, Transform: flat.NewTransform()}
	bl.Transform.Position = mgl32.Vec3{0, -7, 0}
	bl.Update(bd, pf, cp, 0.05)
	assert.Equal(t, mgl32.Vec2{0, 1}, bl.Velocity)

	// off a crate, disabling it
	cp = NewCratePack(testLevel(), BorderInstances)
	bl = &Ball{Radius: 0.5, Speed: 8, Velocity: mgl32.Vec2{0, 1}, Transform: flat.NewTransform()}
	bl.Transform.Position = mgl32.Vec3{-2, 1, 0}
	bl.Update(bd, pf, cp, 0.15)
	assert.Equal(t, mgl32.Vec2{0, -1}, bl.Velocity)
	assert.Equal(t, 5, cp.Remaining())

	// no hit leaves the velocity alone
	bl = &Ball{Radius: 0.5, Speed: 8, Velocity: mgl32.Vec2{1, 0}, Transform: flat.NewTransform()}
	bl.Update(bd, pf, cp, 0.01)
	assert.Equal(t, mgl32.Vec2{1, 0}, bl.Velocity)
}

func TestPlatformClamp(t *testing.T) {
	bd := testBorder()
	pf := &Platform{Width: 2, Height: 0.5, Speed: 10, Transform: flat.NewTransform()}
	pf.Transform.Position = mgl32.Vec3{9, -8, 0}

	// running into the right wall clamps flush against it
	pf.SetMovement(1)
	pf.Update(bd, 0.2)
	assert.Equal(t, float32(8.5), pf.Transform.Position.X())
	assert.Equal(t, float32(-8), pf.Transform.Position.Y())

	// and the left wall the other way
	pf.SetMovement(-1)
	pf.Update(bd, 2)
	assert.Equal(t, float32(-8.5), pf.Transform.Position.X())

	// idle means no motion
	pf.SetMovement(0)
	pf.Update(bd, 1)
	assert.Equal(t, float32(-8.5), pf.Transform.Position.X())
}

func TestGameFrame(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, dev, err := gpu.NoDisplayGPU()
	assert.NoError(t, err)
	sz := image.Point{480, 480}
	rt := gpu.NewRenderTexture(gp, dev, sz, 1, gpu.Depth32)
	rt.SetFormat(wgpu.TextureFormatRGBA8Unorm)

	// one yellow 2x1 crate at (0, 3), and primary colors everywhere
	// else, so readback is bit-exact
	level := filepath.Join(t.TempDir(), "level.yaml")
	assert.NoError(t, os.WriteFile(level, []byte(`
rows: 1
cols: 1
crate_width: 2
crate_height: 1
center: [0, 3]
colors:
  - [1, 1, 0, 1]
`), 0666))
	cfg := DefaultConfig()
	cfg.LevelFile = level
	cfg.Ball.Color = [4]float32{0, 1, 0, 1}
	cfg.Platform.Color = [4]float32{1, 0, 0, 1}
	cfg.Border.Color = [4]float32{1, 1, 1, 1}
	cfg.Border.InnerColor = [4]float32{0, 0, 1, 1}

	gm, err := NewGame(gp, rt, cfg)
	assert.NoError(t, err)

	gm.Update(0.016)
	assert.NoError(t, gm.Sync())
	assert.NoError(t, gm.Render())
	gm.Flat.WaitDone()

	img, err := rt.GrabImage(0)
	assert.NoError(t, err)
	// world (x, y) lands at pixel (240 + 24x, 240 - 24y)
	assert.Equal(t, color.RGBA{R: 255, G: 255, A: 255}, img.RGBAAt(240, 168)) // crate
	assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(240, 360))        // ball
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(240, 432))        // platform
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(360, 240))        // field
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(240, 14)) // frame

	gm.Release()
	rt.Release()
	gp.Release()
}
