// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"github.com/ShadowCurse/breakout-zero/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// RenderTexture is an offscreen, non-window-backed rendering target,
// functioning like a Surface. It implements the Renderer interface.
type RenderTexture struct {
	// render helper for this RenderTexture.
	render Render

	// Format has the current image format and dimensions.
	Format TextureFormat

	// number of frames to maintain in the simulated swapchain.
	NFrames int

	// Frames of textures that we iterate through when rendering
	// subsequent frames.
	Frames []*Texture

	// pointer to gpu device, for convenience.
	GPU *GPU

	// current frame number.
	curFrame int

	// device, which we do NOT own.
	device Device
}

// NewRenderTexture returns a new standalone texture render
// target for given GPU and device, suitable for offscreen rendering
// and for reading rendered frames back to the host with GrabImage.
//   - device should be from a Surface if one is being used, otherwise
//     can be created anew for offscreen rendering.
//   - size should reflect the size of the frames to render.
//   - samples is the multisampling parameter: 1 = none.
//   - depthFmt is the depth buffer format: UndefinedType for none,
//     or Depth32 recommended.
func NewRenderTexture(gp *GPU, dev *Device, size image.Point, samples int, depthFmt Types) *RenderTexture {
	rt := &RenderTexture{}
	rt.Defaults()
	rt.init(gp, dev, size, samples, depthFmt)
	return rt
}

func (rt *RenderTexture) Defaults() {
	rt.NFrames = 1
	rt.Format.Defaults()
	rt.Format.Set(1024, 768, wgpu.TextureFormatRGBA8UnormSrgb)
}

func (rt *RenderTexture) init(gp *GPU, dev *Device, size image.Point, samples int, depthFmt Types) {
	rt.GPU = gp
	rt.device = *dev
	rt.Format.Size = size
	rt.Format.SetMultisample(samples)
	rt.render.Config(&rt.device, &rt.Format, depthFmt)
	rt.ConfigFrames()
}

func (rt *RenderTexture) Device() *Device { return &rt.device }
func (rt *RenderTexture) Render() *Render { return &rt.render }

// SetFormat sets the texture format, reconfiguring the frames.
// The default is RGBA8UnormSrgb; use RGBA8Unorm for render output
// that will be read back and compared against known byte values.
func (rt *RenderTexture) SetFormat(ft wgpu.TextureFormat) {
	if rt.Format.Format == ft {
		return
	}
	rt.Format.Format = ft
	rt.render.Format.Format = ft
	rt.ConfigFrames()
}

// GetCurrentTexture returns a TextureView that is the current
// target for rendering.
func (rt *RenderTexture) GetCurrentTexture() (*wgpu.TextureView, error) {
	cf := rt.curFrame
	rt.curFrame = (rt.curFrame + 1) % rt.NFrames
	return rt.Frames[cf].view, nil
}

// ConfigFrames configures the frames, calling ReleaseFrames
// so it is safe for re-use.
func (rt *RenderTexture) ConfigFrames() {
	rt.ReleaseFrames()
	rt.Frames = make([]*Texture, rt.NFrames)
	for i := range rt.NFrames {
		fr := NewTexture(&rt.device)
		fr.ConfigRenderTexture(&rt.device, &rt.Format)
		rt.Frames[i] = fr
	}
	rt.curFrame = 0
}

// SetSize sets the size for the render frames,
// doesn't do anything if already that size.
func (rt *RenderTexture) SetSize(size image.Point) {
	if rt.Format.Size == size {
		return
	}
	rt.render.SetSize(size)
	rt.Format.Size = size
	rt.ConfigFrames()
}

func (rt *RenderTexture) ReleaseFrames() {
	for _, fr := range rt.Frames {
		fr.Release()
	}
	rt.Frames = nil
}

func (rt *RenderTexture) Release() {
	rt.ReleaseFrames()
	rt.render.Release()
}

func (rt *RenderTexture) Present() {
	// no-op
}

// GrabImage reads the rendered image of the given frame index back
// from the device, returning it as an RGBA image.
// Rendering to the frame must have completed: call WaitDone on the
// device after submitting, before grabbing.
func (rt *RenderTexture) GrabImage(idx int) (*image.RGBA, error) {
	if idx < 0 || idx >= len(rt.Frames) {
		return nil, errors.Log(errors.New("gpu.RenderTexture.GrabImage: frame index out of range"))
	}
	fr := rt.Frames[idx]
	data, err := fr.ReadData()
	if err != nil {
		return nil, err
	}
	return &image.RGBA{
		Pix:    data,
		Stride: 4 * fr.Format.Size.X,
		Rect:   fr.Format.Bounds(),
	}, nil
}
