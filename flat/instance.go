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

// Instance is the per-instance record for the one-color pipeline:
// the model transform, passed to the shader as its four columns,
// and the disabled flag last. Any nonzero Disabled value disables
// the instance: the fragment stage discards it entirely, writing
// neither color nor depth. Disabled instances stay in the buffer;
// the instance count of a draw never changes.
type Instance struct {
	Transform mgl32.Mat4
	Disabled  int32
}

// ColorInstance is the per-instance record for the
// per-instance-color pipeline: transform columns first, then the
// instance color, then the disabled flag last.
type ColorInstance struct {
	Transform mgl32.Mat4
	Color     mgl32.Vec4
	Disabled  int32
}

// instanceLayout is the instance buffer layout for Instance,
// stepped per instance in slot 1: transform columns at shader
// locations 5-8, disabled at 9.
func instanceLayout() wgpu.VertexBufferLayout {
	var in Instance
	col := uint64(unsafe.Sizeof(mgl32.Vec4{}))
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(in)),
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{Format: gpu.Float32Vector4.VertexFormat(), Offset: 0, ShaderLocation: 5},
			{Format: gpu.Float32Vector4.VertexFormat(), Offset: col, ShaderLocation: 6},
			{Format: gpu.Float32Vector4.VertexFormat(), Offset: 2 * col, ShaderLocation: 7},
			{Format: gpu.Float32Vector4.VertexFormat(), Offset: 3 * col, ShaderLocation: 8},
			{Format: gpu.Int32.VertexFormat(), Offset: uint64(unsafe.Offsetof(in.Disabled)), ShaderLocation: 9},
		},
	}
}

// colorInstanceLayout is the instance buffer layout for
// ColorInstance: transform at locations 5-8, color at 9,
// disabled at 10.
func colorInstanceLayout() wgpu.VertexBufferLayout {
	var in ColorInstance
	col := uint64(unsafe.Sizeof(mgl32.Vec4{}))
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(in)),
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{Format: gpu.Float32Vector4.VertexFormat(), Offset: 0, ShaderLocation: 5},
			{Format: gpu.Float32Vector4.VertexFormat(), Offset: col, ShaderLocation: 6},
			{Format: gpu.Float32Vector4.VertexFormat(), Offset: 2 * col, ShaderLocation: 7},
			{Format: gpu.Float32Vector4.VertexFormat(), Offset: 3 * col, ShaderLocation: 8},
			{Format: gpu.Float32Vector4.VertexFormat(), Offset: uint64(unsafe.Offsetof(in.Color)), ShaderLocation: 9},
			{Format: gpu.Int32.VertexFormat(), Offset: uint64(unsafe.Offsetof(in.Disabled)), ShaderLocation: 10},
		},
	}
}

// Instances is a device buffer of Instance records drawn with a
// Mesh by the one-color pipeline. The buffer is allocated for a
// fixed record count; Set updates sub-ranges in place.
type Instances struct {
	// Mesh is the geometry drawn for each instance.
	Mesh *Mesh

	// N is the number of instance records in the buffer,
	// all of which are drawn every time.
	N int

	buffer *gpu.Value
}

// NewInstances allocates a device buffer of n Instance records
// for the given mesh. Record contents are undefined until Set.
func NewInstances(dev *gpu.Device, name string, mesh *Mesh, n int) (*Instances, error) {
	in := &Instances{
		Mesh:   mesh,
		N:      n,
		buffer: gpu.NewValue(dev, name, wgpu.BufferUsageVertex),
	}
	var rec Instance
	if err := in.buffer.Alloc(n * int(unsafe.Sizeof(rec))); err != nil {
		return nil, err
	}
	return in, nil
}

// Set writes the given records into the buffer starting at record
// index start. The records must fit within the allocated count.
// The write is queued, and is visible to any draw submitted after it.
func (in *Instances) Set(start int, records []Instance) error {
	var rec Instance
	return gpu.WriteValueAt(in.buffer, start*int(unsafe.Sizeof(rec)), records)
}

// Draw binds the mesh vertex buffer in slot 0, the instance buffer
// in slot 1, and the mesh index buffer, and draws all N instances.
// Disabled instances are submitted like every other: the fragment
// stage discards them.
func (in *Instances) Draw(rp *wgpu.RenderPassEncoder) {
	rp.SetVertexBuffer(0, in.Mesh.vertex.Buffer(), 0, wgpu.WholeSize)
	rp.SetVertexBuffer(1, in.buffer.Buffer(), 0, wgpu.WholeSize)
	rp.SetIndexBuffer(in.Mesh.index.Buffer(), wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	rp.DrawIndexed(in.Mesh.NumIndex, uint32(in.N), 0, 0, 0)
}

func (in *Instances) Release() {
	in.buffer.Release()
}

// ColorInstances is a device buffer of ColorInstance records drawn
// with a Mesh by the per-instance-color pipeline. Multiple owners
// can share one buffer, each writing its own record sub-range.
type ColorInstances struct {
	// Mesh is the geometry drawn for each instance.
	Mesh *Mesh

	// N is the number of instance records in the buffer,
	// all of which are drawn every time.
	N int

	buffer *gpu.Value
}

// NewColorInstances allocates a device buffer of n ColorInstance
// records for the given mesh. Record contents are undefined
// until Set.
func NewColorInstances(dev *gpu.Device, name string, mesh *Mesh, n int) (*ColorInstances, error) {
	in := &ColorInstances{
		Mesh:   mesh,
		N:      n,
		buffer: gpu.NewValue(dev, name, wgpu.BufferUsageVertex),
	}
	var rec ColorInstance
	if err := in.buffer.Alloc(n * int(unsafe.Sizeof(rec))); err != nil {
		return nil, err
	}
	return in, nil
}

// Set writes the given records into the buffer starting at record
// index start. The records must fit within the allocated count.
// The write is queued, and is visible to any draw submitted after it.
func (in *ColorInstances) Set(start int, records []ColorInstance) error {
	var rec ColorInstance
	return gpu.WriteValueAt(in.buffer, start*int(unsafe.Sizeof(rec)), records)
}

// Draw binds the mesh vertex buffer in slot 0, the instance buffer
// in slot 1, and the mesh index buffer, and draws all N instances.
func (in *ColorInstances) Draw(rp *wgpu.RenderPassEncoder) {
	rp.SetVertexBuffer(0, in.Mesh.vertex.Buffer(), 0, wgpu.WholeSize)
	rp.SetVertexBuffer(1, in.buffer.Buffer(), 0, wgpu.WholeSize)
	rp.SetIndexBuffer(in.Mesh.index.Buffer(), wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	rp.DrawIndexed(in.Mesh.NumIndex, uint32(in.N), 0, 0, 0)
}

func (in *ColorInstances) Release() {
	in.buffer.Release()
}
