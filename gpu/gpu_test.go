// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestNoDisplayGPU(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, dev, err := NoDisplayGPU()
	assert.NoError(t, err)
	assert.NotNil(t, gp.Adapter)
	assert.NotNil(t, dev.Device)
	assert.NotNil(t, dev.Queue)
	dev.Release()
	gp.Release()
}

func TestValueAlloc(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, dev, err := NoDisplayGPU()
	assert.NoError(t, err)

	vl := NewValue(dev, "test", wgpu.BufferUsageVertex)
	// CopyDst is always added so the queue can write updates
	assert.Equal(t, wgpu.BufferUsageVertex|wgpu.BufferUsageCopyDst, vl.Usage)
	assert.Error(t, vl.NilBufferCheck())

	assert.NoError(t, vl.Alloc(64))
	assert.Equal(t, 64, vl.AllocSize)
	assert.NotNil(t, vl.Buffer())

	// realloc at the same size keeps the buffer
	buf := vl.Buffer()
	assert.NoError(t, vl.Alloc(64))
	assert.Equal(t, buf, vl.Buffer())

	assert.NoError(t, SetValueFrom(vl, make([]float32, 16)))
	assert.NoError(t, WriteValueAt(vl, 32, make([]float32, 8)))

	// writes past the allocation fail before touching the queue
	assert.Error(t, WriteValueAt(vl, 40, make([]float32, 8)))
	assert.Error(t, vl.WriteAt(65, []byte{0}))

	vl.Release()
	assert.Equal(t, 0, vl.AllocSize)
	dev.Release()
	gp.Release()
}

func TestRenderTextureGrab(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, dev, err := NoDisplayGPU()
	assert.NoError(t, err)
	sz := image.Point{480, 320}
	rt := NewRenderTexture(gp, dev, sz, 1, Depth32)
	rt.SetFormat(wgpu.TextureFormatRGBA8Unorm)

	// clear-only pass
	view, err := rt.GetCurrentTexture()
	assert.NoError(t, err)
	cmd, err := dev.Device.CreateCommandEncoder(nil)
	assert.NoError(t, err)
	rp := rt.Render().BeginRenderPass(cmd, view)
	rp.End()
	rp.Release()
	cmdBuffer, err := cmd.Finish(nil)
	assert.NoError(t, err)
	dev.Queue.Submit(cmdBuffer)
	cmdBuffer.Release()
	cmd.Release()
	dev.WaitDone()

	img, err := rt.GrabImage(0)
	assert.NoError(t, err)
	assert.Equal(t, image.Rectangle{Max: sz}, img.Bounds())

	_, err = rt.GrabImage(1)
	assert.Error(t, err)

	rt.Release()
	dev.Release()
	gp.Release()
}
