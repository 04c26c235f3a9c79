// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flat_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/ShadowCurse/breakout-zero/flat"
	"github.com/ShadowCurse/breakout-zero/gpu"
	"github.com/ShadowCurse/breakout-zero/shape"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// TestCubeScenario renders a unit cube from the shape package with
// an identity instance transform under an orthographic camera down
// -z: enabled it covers its silhouette in exactly the material
// color, disabled it covers nothing, and a zero-scale transform
// collapses it without an error.
func TestCubeScenario(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, dev, err := gpu.NoDisplayGPU()
	assert.NoError(t, err)
	defer gp.Release()

	rt := gpu.NewRenderTexture(gp, dev, image.Point{480, 320}, 1, gpu.Depth32)
	rt.SetFormat(wgpu.TextureFormatRGBA8Unorm)
	defer rt.Release()

	fl, err := flat.NewFlat(gp, rt)
	assert.NoError(t, err)
	defer fl.Release()

	cam := flat.NewOrthographicCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}, 10, 10, 0.1, 100)
	assert.NoError(t, fl.SetCamera(cam))

	mt, err := fl.NewMaterial("red", mgl32.Vec4{1, 0, 0, 1})
	assert.NoError(t, err)
	defer mt.Release()

	vtxs, idxs := shape.Box(1, 1, 1)
	mesh, err := flat.NewMesh(fl.Device(), "cube", vtxs, idxs)
	assert.NoError(t, err)
	defer mesh.Release()

	in, err := flat.NewInstances(fl.Device(), "cube", mesh, 1)
	assert.NoError(t, err)
	defer in.Release()

	frame := func() *image.RGBA {
		rp, err := fl.BeginRenderPass()
		assert.NoError(t, err)
		fl.OneColor.BindPipeline(rp)
		mt.Bind(rp)
		in.Draw(rp)
		rp.End()
		fl.EndRenderPass(rp)
		fl.WaitDone()
		img, err := fl.Renderer.(*gpu.RenderTexture).GrabImage(0)
		assert.NoError(t, err)
		return img
	}

	// enabled: the half-unit silhouette around the screen center is
	// exactly the material color, the outside stays clear
	assert.NoError(t, in.Set(0, []flat.Instance{
		{Transform: flat.NewTransform().Matrix()},
	}))
	img := frame()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(240, 160))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(300, 160))

	// disabled: no pixel is written for the same cube
	assert.NoError(t, in.Set(0, []flat.Instance{
		{Transform: flat.NewTransform().Matrix(), Disabled: 1},
	}))
	img = frame()
	assert.Equal(t, color.RGBA{}, img.RGBAAt(240, 160))

	// a zero-scale transform collapses the cube to nothing, without
	// an error anywhere in the frame
	assert.NoError(t, in.Set(0, []flat.Instance{
		{Transform: mgl32.Mat4{}},
	}))
	img = frame()
	assert.Equal(t, color.RGBA{}, img.RGBAAt(240, 160))
}
