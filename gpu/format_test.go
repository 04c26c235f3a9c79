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

func TestTextureBufferDims(t *testing.T) {
	// 480 * 4 = 1920 bytes per row, which needs 128 bytes of
	// padding to reach the 256-byte copy alignment.
	td := NewTextureBufferDims(image.Point{480, 320})
	assert.Equal(t, uint64(1920), td.UnpaddedRowSize)
	assert.Equal(t, uint64(2048), td.PaddedRowSize)
	assert.Equal(t, uint64(1920*320), td.UnpaddedSize())
	assert.Equal(t, uint64(2048*320), td.PaddedSize())
	assert.False(t, td.HasNoPadding())

	// 64 * 4 = 256 is already aligned.
	td.Set(image.Point{64, 64})
	assert.Equal(t, td.UnpaddedRowSize, td.PaddedRowSize)
	assert.True(t, td.HasNoPadding())
}

func TestTextureFormatMultisample(t *testing.T) {
	tf := NewTextureFormat(800, 600, 4)
	assert.Equal(t, 4, tf.Samples)
	assert.Equal(t, float32(800)/float32(600), tf.Aspect())

	// anything other than 2 or 4 falls back to 1
	tf.SetMultisample(3)
	assert.Equal(t, 1, tf.Samples)
	tf.SetMultisample(8)
	assert.Equal(t, 1, tf.Samples)
}

func TestTypesFormats(t *testing.T) {
	assert.Equal(t, wgpu.VertexFormatFloat32x3, Float32Vector3.VertexFormat())
	assert.Equal(t, wgpu.VertexFormatSint32, Int32.VertexFormat())
	assert.Equal(t, wgpu.TextureFormatDepth32Float, Depth32.TextureFormat())
	assert.Equal(t, 16, Float32Vector4.Bytes())
	assert.Equal(t, 4, Int32.Bytes())
}
