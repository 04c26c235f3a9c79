// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormat describes the size and WebGPU format of a Texture
// or rendering target.
type TextureFormat struct {
	// Size of the texture in pixels.
	Size image.Point

	// Format is the WebGPU pixel format.
	Format wgpu.TextureFormat

	// Samples is the number of samples per pixel: 1 unless
	// multisampling is in use.
	Samples int
}

// NewTextureFormat returns a new TextureFormat for the given size
// and number of samples.
func NewTextureFormat(width, height, samples int) *TextureFormat {
	tf := &TextureFormat{}
	tf.Defaults()
	tf.Size = image.Point{X: width, Y: height}
	tf.SetMultisample(samples)
	return tf
}

func (tf *TextureFormat) Defaults() {
	tf.Format = wgpu.TextureFormatRGBA8UnormSrgb
	tf.Samples = 1
}

// String returns a human-readable description of the format.
func (tf *TextureFormat) String() string {
	return fmt.Sprintf("Size: %v  Format: %d  Samples: %d", tf.Size, tf.Format, tf.Samples)
}

// SetSize sets the size of the format.
func (tf *TextureFormat) SetSize(width, height int) {
	tf.Size = image.Point{X: width, Y: height}
}

// Set sets the size and format.
func (tf *TextureFormat) Set(width, height int, ft wgpu.TextureFormat) {
	tf.SetSize(width, height)
	tf.Format = ft
}

// Aspect returns the aspect ratio width / height.
func (tf *TextureFormat) Aspect() float32 {
	if tf.Size.Y > 0 {
		return float32(tf.Size.X) / float32(tf.Size.Y)
	}
	return 1.3
}

// SetMultisample sets the number of samples, which must be a power
// of 2 no larger than 4.
func (tf *TextureFormat) SetMultisample(samples int) {
	switch samples {
	case 2, 4:
		tf.Samples = samples
	default:
		tf.Samples = 1
	}
}

// Size32 returns the size as uint32 width, height values.
func (tf *TextureFormat) Size32() (width, height uint32) {
	return uint32(tf.Size.X), uint32(tf.Size.Y)
}

// Extent3D returns the size as a WebGPU Extent3D.
func (tf *TextureFormat) Extent3D() wgpu.Extent3D {
	w, h := tf.Size32()
	return wgpu.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}
}

// Bounds returns the size as a rectangle at the origin.
func (tf *TextureFormat) Bounds() image.Rectangle {
	return image.Rectangle{Max: tf.Size}
}

// BytesPerPixel returns the number of bytes per pixel for the
// format. All formats used here are 4 bytes per pixel.
func (tf *TextureFormat) BytesPerPixel() int {
	return 4
}

// TextureBufferDims holds the sizes required to copy a texture of a
// given size to a host-readable buffer, taking into account the
// required aligned padding of each row.
type TextureBufferDims struct {
	Width           uint64
	Height          uint64
	UnpaddedRowSize uint64
	PaddedRowSize   uint64
}

// NewTextureBufferDims returns the buffer dimensions for copying a
// 4 byte-per-pixel texture of the given size.
func NewTextureBufferDims(size image.Point) *TextureBufferDims {
	td := &TextureBufferDims{}
	td.Set(size)
	return td
}

func (td *TextureBufferDims) Set(size image.Point) {
	td.Width = uint64(size.X)
	td.Height = uint64(size.Y)
	const bytesPerPixel = 4
	align := uint64(wgpu.CopyBytesPerRowAlignment)
	td.UnpaddedRowSize = td.Width * bytesPerPixel
	padding := (align - td.UnpaddedRowSize%align) % align
	td.PaddedRowSize = td.UnpaddedRowSize + padding
}

// PaddedSize returns the total padded size of the buffer in bytes.
func (td *TextureBufferDims) PaddedSize() uint64 {
	return td.PaddedRowSize * td.Height
}

// UnpaddedSize returns the total unpadded size of the texture data
// in bytes.
func (td *TextureBufferDims) UnpaddedSize() uint64 {
	return td.UnpaddedRowSize * td.Height
}

// HasNoPadding returns true if the rows have no padding, so the
// buffer data can be used directly.
func (td *TextureBufferDims) HasNoPadding() bool {
	return td.UnpaddedRowSize == td.PaddedRowSize
}
