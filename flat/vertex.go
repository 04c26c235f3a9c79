// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flat

import (
	"unsafe"

	"github.com/ShadowCurse/breakout-zero/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the per-vertex record consumed by both pipelines,
// tightly packed at 56 bytes. Texcoord, normal, tangent, and
// bitangent are declared in the vertex stage but not forwarded;
// keeping them in the record means mesh assets with full attribute
// sets load without re-packing.
type Vertex struct {
	Position  mgl32.Vec3
	Texcoord  mgl32.Vec2
	Normal    mgl32.Vec3
	Tangent   mgl32.Vec3
	Bitangent mgl32.Vec3
}

// vertexLayout is the vertex buffer layout for Vertex,
// shader locations 0-4, stepped per vertex in slot 0.
func vertexLayout() wgpu.VertexBufferLayout {
	var v Vertex
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(v)),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: gpu.Float32Vector3.VertexFormat(), Offset: uint64(unsafe.Offsetof(v.Position)), ShaderLocation: 0},
			{Format: gpu.Float32Vector2.VertexFormat(), Offset: uint64(unsafe.Offsetof(v.Texcoord)), ShaderLocation: 1},
			{Format: gpu.Float32Vector3.VertexFormat(), Offset: uint64(unsafe.Offsetof(v.Normal)), ShaderLocation: 2},
			{Format: gpu.Float32Vector3.VertexFormat(), Offset: uint64(unsafe.Offsetof(v.Tangent)), ShaderLocation: 3},
			{Format: gpu.Float32Vector3.VertexFormat(), Offset: uint64(unsafe.Offsetof(v.Bitangent)), ShaderLocation: 4},
		},
	}
}
