// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "github.com/cogentcore/webgpu/wgpu"

// Types is a list of GPU data types used in vertex attributes,
// instance attributes, and textures. Each has a defined size and
// a corresponding WebGPU vertex or texture format.
type Types int32

const (
	UndefinedType Types = iota

	// Int32 is a signed 32 bit integer, e.g. the instance
	// disabled flag.
	Int32

	Float32
	Float32Vector2
	Float32Vector3
	Float32Vector4

	// TextureRGBA32 is a 32 bit RGBA texture, 8 bits per component.
	TextureRGBA32

	// Depth32 is a 32 bit float depth texture.
	Depth32
)

// TypeSizes gives the size of each type in bytes.
var TypeSizes = map[Types]int{
	UndefinedType:  0,
	Int32:          4,
	Float32:        4,
	Float32Vector2: 8,
	Float32Vector3: 12,
	Float32Vector4: 16,
	TextureRGBA32:  4,
	Depth32:        4,
}

// Bytes returns the size of the type in bytes.
func (tp Types) Bytes() int {
	return TypeSizes[tp]
}

// VertexFormat returns the WebGPU vertex format for the type.
func (tp Types) VertexFormat() wgpu.VertexFormat {
	switch tp {
	case Int32:
		return wgpu.VertexFormatSint32
	case Float32:
		return wgpu.VertexFormatFloat32
	case Float32Vector2:
		return wgpu.VertexFormatFloat32x2
	case Float32Vector3:
		return wgpu.VertexFormatFloat32x3
	case Float32Vector4:
		return wgpu.VertexFormatFloat32x4
	}
	return wgpu.VertexFormatFloat32
}

// TextureFormat returns the WebGPU texture format for the type.
func (tp Types) TextureFormat() wgpu.TextureFormat {
	switch tp {
	case Depth32:
		return wgpu.TextureFormatDepth32Float
	default:
		return wgpu.TextureFormatRGBA8UnormSrgb
	}
}

func (tp Types) String() string {
	switch tp {
	case Int32:
		return "Int32"
	case Float32:
		return "Float32"
	case Float32Vector2:
		return "Float32Vector2"
	case Float32Vector3:
		return "Float32Vector3"
	case Float32Vector4:
		return "Float32Vector4"
	case TextureRGBA32:
		return "TextureRGBA32"
	case Depth32:
		return "Depth32"
	}
	return "UndefinedType"
}
