// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flat

import (
	"github.com/ShadowCurse/breakout-zero/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// Mesh is one piece of geometry on the device: a vertex buffer of
// Vertex records and a uint32 index buffer. Meshes are shared
// between instance buffers that draw them.
type Mesh struct {
	// NumIndex is the number of indices drawn per instance.
	NumIndex uint32

	vertex *gpu.Value
	index  *gpu.Value
}

// NewMesh uploads the given vertices and indices to the device.
func NewMesh(dev *gpu.Device, name string, verts []Vertex, idxs []uint32) (*Mesh, error) {
	ms := &Mesh{
		NumIndex: uint32(len(idxs)),
		vertex:   gpu.NewValue(dev, name+" vertex", wgpu.BufferUsageVertex),
		index:    gpu.NewValue(dev, name+" index", wgpu.BufferUsageIndex),
	}
	if err := gpu.SetValueFrom(ms.vertex, verts); err != nil {
		return nil, err
	}
	if err := gpu.SetValueFrom(ms.index, idxs); err != nil {
		return nil, err
	}
	return ms, nil
}

func (ms *Mesh) Release() {
	ms.vertex.Release()
	ms.index.Release()
}
