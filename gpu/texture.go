// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/ShadowCurse/breakout-zero/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Texture represents a WebGPU Texture with an associated TextureView.
// The WebGPU Texture is in device memory, in an optimized format.
// Textures here are render targets: offscreen color frames and
// depth buffers.
type Texture struct {
	// Name of the texture, helpful for debugging.
	Name string

	// Format & size of texture.
	Format TextureFormat

	// WebGPU texture handle, in device memory.
	texture *wgpu.Texture

	// WebGPU texture view.
	view *wgpu.TextureView

	// keep track of device for destroying view.
	device Device
}

func NewTexture(dev *Device) *Texture {
	tx := &Texture{}
	tx.device = *dev
	tx.Format.Defaults()
	return tx
}

// CreateTexture creates the texture based on current settings,
// and a view of that texture.  Calls release first.
func (tx *Texture) CreateTexture(usage wgpu.TextureUsage) error {
	tx.Release()

	t, err := tx.device.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         tx.Name,
		Size:          tx.Format.Extent3D(),
		MipLevelCount: 1,
		SampleCount:   uint32(tx.Format.Samples),
		Dimension:     wgpu.TextureDimension2D,
		Format:        tx.Format.Format,
		Usage:         usage,
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.texture = t
	vw, err := t.CreateView(nil)
	if errors.Log(err) != nil {
		return err
	}
	tx.view = vw
	return nil
}

// ConfigRenderTexture configures this texture as an offscreen color
// render target that can also be read back to the host.
// Sets multisampling to 1: the Render handles multisampling.
func (tx *Texture) ConfigRenderTexture(dev *Device, imgFmt *TextureFormat) error {
	tx.device = *dev
	nfmt := *imgFmt
	nfmt.SetMultisample(1)
	if tx.texture != nil && tx.Format == nfmt {
		return nil
	}
	tx.Format = nfmt
	return tx.CreateTexture(wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc)
}

// ConfigDepth configures this texture as a depth texture
// using given depth texture format, and other format information
// from the given render texture format.
// If current texture is identical format, does not recreate.
func (tx *Texture) ConfigDepth(dev *Device, depthType Types, imgFmt *TextureFormat) error {
	tx.device = *dev
	nfmt := *imgFmt
	nfmt.Format = depthType.TextureFormat()
	if tx.texture != nil && tx.Format == nfmt {
		return nil
	}
	tx.Format = nfmt
	return tx.CreateTexture(wgpu.TextureUsageRenderAttachment)
}

// ReadData reads the texture pixels back from the device into a
// host byte slice, with the row alignment padding removed, so the
// result is tightly packed Format.Size.X * 4 byte rows.
// It submits a copy command and waits for it to complete.
func (tx *Texture) ReadData() ([]byte, error) {
	dims := NewTextureBufferDims(tx.Format.Size)
	buf, err := tx.device.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: tx.Name + " read buffer",
		Size:  dims.PaddedSize(),
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	defer buf.Release()

	cmd, err := tx.device.Device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return nil, err
	}
	cmd.CopyTextureToBuffer(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  tx.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: 0, Y: 0, Z: 0},
		},
		&wgpu.ImageCopyBuffer{
			Buffer: buf,
			Layout: wgpu.TextureDataLayout{
				Offset:       0,
				BytesPerRow:  uint32(dims.PaddedRowSize),
				RowsPerImage: uint32(dims.Height),
			},
		},
		&wgpu.Extent3D{
			Width:              uint32(dims.Width),
			Height:             uint32(dims.Height),
			DepthOrArrayLayers: 1,
		},
	)
	cb, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		return nil, err
	}
	tx.device.Queue.Submit(cb)
	cb.Release()
	cmd.Release()

	err = BufferReadSync(&tx.device, int(dims.PaddedSize()), buf)
	if err != nil {
		return nil, err
	}
	mapped := buf.GetMappedRange(0, uint(dims.PaddedSize()))
	data := make([]byte, dims.UnpaddedSize())
	if dims.HasNoPadding() {
		copy(data, mapped)
	} else {
		urs := int(dims.UnpaddedRowSize)
		prs := int(dims.PaddedRowSize)
		for r := range int(dims.Height) {
			copy(data[r*urs:(r+1)*urs], mapped[r*prs:r*prs+urs])
		}
	}
	buf.Unmap()
	return data, nil
}

// ReleaseView destroys any existing view.
func (tx *Texture) ReleaseView() {
	if tx.view == nil {
		return
	}
	tx.view.Release()
	tx.view = nil
}

// ReleaseTexture frees device memory version of texture that we own.
func (tx *Texture) ReleaseTexture() {
	tx.ReleaseView()
	if tx.texture == nil {
		return
	}
	tx.texture.Release()
	tx.texture = nil
}

// Release destroys any existing view, nils fields.
func (tx *Texture) Release() {
	tx.ReleaseTexture()
}
