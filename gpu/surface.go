// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"github.com/ShadowCurse/breakout-zero/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Surface manages the WebGPU surface for an actual on-screen window,
// and provides the swapchain textures to render into.
// It implements the Renderer interface.
type Surface struct {
	// render helper for this Surface.
	render Render

	// Format has the current surface format and dimensions.
	Format TextureFormat

	// pointer to gpu device, for convenience.
	GPU *GPU

	// surface is the WebGPU handle from the windowing system.
	surface *wgpu.Surface

	// current swapchain texture and view, between
	// GetCurrentTexture and Present.
	curTexture *wgpu.Texture
	curView    *wgpu.TextureView

	// alphaMode is the supported composite alpha mode.
	alphaMode wgpu.CompositeAlphaMode

	// device for this surface, which it owns.
	device Device
}

// NewSurface returns a new Surface for the given WebGPU surface
// handle, obtained from the windowing system, creating a new
// logical device for it.
//   - size should reflect the actual size of the window,
//     and can be updated with the SetSize method.
//   - samples is the multisampling parameter: 1 = none.
//   - depthFmt is the depth buffer format: UndefinedType for none,
//     or Depth32 recommended.
func NewSurface(gp *GPU, wsurf *wgpu.Surface, size image.Point, samples int, depthFmt Types) (*Surface, error) {
	sf := &Surface{GPU: gp, surface: wsurf}
	dev, err := gp.NewDevice()
	if err != nil {
		return nil, err
	}
	sf.device = *dev

	caps := wsurf.GetCapabilities(gp.Adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return nil, errors.Log(errors.New("gpu.NewSurface: surface has no supported formats"))
	}
	sf.Format.Defaults()
	sf.Format.Format = caps.Formats[0]
	sf.Format.Size = size
	sf.Format.SetMultisample(samples)
	sf.alphaMode = caps.AlphaModes[0]

	sf.configure()
	sf.render.Config(&sf.device, &sf.Format, depthFmt)
	return sf, nil
}

func (sf *Surface) Device() *Device { return &sf.device }
func (sf *Surface) Render() *Render { return &sf.render }

// configure configures the surface for its current format and size.
func (sf *Surface) configure() {
	w, h := sf.Format.Size32()
	sf.surface.Configure(sf.GPU.Adapter, sf.device.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format.Format,
		Width:       w,
		Height:      h,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   sf.alphaMode,
	})
}

// GetCurrentTexture returns a TextureView to render into
// for the current frame. Present releases it.
func (sf *Surface) GetCurrentTexture() (*wgpu.TextureView, error) {
	tex, err := sf.surface.GetCurrentTexture()
	if errors.Log(err) != nil {
		return nil, err
	}
	sf.curTexture = tex
	view, err := tex.CreateView(nil)
	if errors.Log(err) != nil {
		return nil, err
	}
	sf.curView = view
	return view, nil
}

// Present shows the current frame on the window,
// releasing the current texture.
func (sf *Surface) Present() {
	sf.surface.Present()
	if sf.curView != nil {
		sf.curView.Release()
		sf.curView = nil
	}
	if sf.curTexture != nil {
		sf.curTexture.Release()
		sf.curTexture = nil
	}
}

// SetSize sets the size for the surface, and reconfigures it
// if the size has actually changed. When the window is resized,
// call this function.
func (sf *Surface) SetSize(size image.Point) {
	if sf.Format.Size == size || size.X == 0 || size.Y == 0 {
		return
	}
	sf.render.SetSize(size)
	sf.Format.Size = size
	sf.configure()
}

func (sf *Surface) Release() {
	sf.render.Release()
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
	sf.device.Release()
}
