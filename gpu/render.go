// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"

	"github.com/cogentcore/webgpu/wgpu"
)

// Renderer is the interface for a rendering target:
// either a Surface or a RenderTexture.
type Renderer interface {
	// Device returns the device for this renderer.
	Device() *Device

	// Render returns the Render object for this renderer.
	Render() *Render

	// GetCurrentTexture returns the texture view to render into
	// for the current frame.
	GetCurrentTexture() (*wgpu.TextureView, error)

	// Present shows the rendered frame. It is a no-op for offscreen
	// render textures.
	Present()

	// SetSize sets the size of the rendering target.
	SetSize(size image.Point)

	Release()
}

// Render manages the color and depth attachments for render passes
// to a rendering target. It lives on the Renderer (Surface or
// RenderTexture), which owns the color frames; Render owns the
// depth buffer if one is used.
type Render struct {
	// Format has the image format information for the
	// framebuffer we render to.
	Format TextureFormat

	// Depth is the associated depth buffer, if set.
	Depth Texture

	// HasDepth is true if configured with depth buffer.
	HasDepth bool

	// ClearColor is the color to clear the framebuffer to
	// at the start of a render pass.
	ClearColor color.Color

	// ClearDepth is the depth value to clear the depth buffer to
	// at the start of a render pass.
	ClearDepth float32

	// ClearStencil is the stencil value to clear to.
	ClearStencil uint32

	device Device
}

// Config configures the render, using standard parameters for
// graphics rendering, based on the given target format and
// depth texture format (pass UndefinedType for no depth buffer).
func (rp *Render) Config(dev *Device, imgFmt *TextureFormat, depthFmt Types) {
	rp.device = *dev
	rp.Format = *imgFmt
	rp.ClearColor = color.RGBA{} // transparent
	rp.SetClearDepthStencil(1, 0)
	if depthFmt != UndefinedType {
		rp.HasDepth = true
		rp.Depth.Name = "depth"
		rp.Depth.ConfigDepth(dev, depthFmt, &rp.Format)
	}
}

// SetClearDepthStencil sets the depth and stencil values
// used when starting a new render pass.
func (rp *Render) SetClearDepthStencil(depth float32, stencil uint32) {
	rp.ClearDepth = depth
	rp.ClearStencil = stencil
}

// SetSize updates the size of the attachments,
// reallocating the depth buffer if needed.
func (rp *Render) SetSize(size image.Point) {
	if rp.Format.Size == size {
		return
	}
	rp.Format.Size = size
	if rp.HasDepth {
		rp.Depth.Release()
		rp.Depth.ConfigDepth(&rp.device, Depth32, &rp.Format)
	}
}

// clearValue returns the render pass clear value for ClearColor.
func (rp *Render) clearValue() wgpu.Color {
	if rp.ClearColor == nil {
		return wgpu.Color{}
	}
	r, g, b, a := rp.ClearColor.RGBA()
	return wgpu.Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
		A: float64(a) / 0xffff,
	}
}

// ClearRenderPass returns a render pass descriptor that clears the
// framebuffer, and the depth buffer if present.
func (rp *Render) ClearRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	rpd := &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			ClearValue: rp.clearValue(),
			StoreOp:    wgpu.StoreOpStore,
		}},
	}
	if rp.HasDepth {
		rpd.DepthStencilAttachment = &wgpu.RenderPassDepthStencilAttachment{
			View:            rp.Depth.view,
			DepthClearValue: rp.ClearDepth,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
		}
	}
	return rpd
}

// LoadRenderPass returns a render pass descriptor that loads the
// previous framebuffer and depth contents.
func (rp *Render) LoadRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	rpd := &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  wgpu.LoadOpLoad,
			StoreOp: wgpu.StoreOpStore,
		}},
	}
	if rp.HasDepth {
		rpd.DepthStencilAttachment = &wgpu.RenderPassDepthStencilAttachment{
			View:         rp.Depth.view,
			DepthLoadOp:  wgpu.LoadOpLoad,
			DepthStoreOp: wgpu.StoreOpStore,
		}
	}
	return rpd
}

// BeginRenderPass adds commands to the given command encoder
// to start the render pass on the given target view.
// Clears the frame first, according to the clear values.
// See BeginRenderPassNoClear for a non-clearing version.
func (rp *Render) BeginRenderPass(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rp.ClearRenderPass(view))
}

// BeginRenderPassNoClear adds commands to the given command encoder
// to start the render pass on the given target view.
// Does NOT clear the frame first, loading the prior state.
func (rp *Render) BeginRenderPassNoClear(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rp.LoadRenderPass(view))
}

func (rp *Render) Release() {
	rp.Depth.Release()
}
