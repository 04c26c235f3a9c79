// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flat

import (
	"fmt"

	"github.com/ShadowCurse/breakout-zero/base/errors"
	"github.com/ShadowCurse/breakout-zero/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Material is the uniform color used by the one-color pipeline for
// everything drawn while it is bound. Pipelines with per-instance
// colors do not use materials.
type Material struct {
	// Color is the current RGBA color, as uploaded to the GPU.
	Color mgl32.Vec4

	// Name is the label used for the uniform buffer and bind group.
	Name string

	uniform   *gpu.Value
	bindGroup *wgpu.BindGroup
	pipeline  *Pipeline
}

// NewMaterial makes a material with the given color, bound at the
// material group and binding configured on the given pipeline,
// which must have been built with a material in its bindings.
func NewMaterial(dev *gpu.Device, name string, color mgl32.Vec4, pl *Pipeline) (*Material, error) {
	if !pl.Bindings.HasMaterial {
		err := fmt.Errorf("flat.NewMaterial: pipeline %q has no material binding", pl.Name)
		return nil, errors.Log(err)
	}
	mt := &Material{Color: color, Name: name, pipeline: pl}
	mt.uniform = gpu.NewValue(&pl.device, name, wgpu.BufferUsageUniform)
	err := gpu.SetValueFrom(mt.uniform, []mgl32.Vec4{color})
	if err != nil {
		return nil, err
	}
	mt.bindGroup, err = pl.device.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  name,
		Layout: pl.materialLayout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: pl.Bindings.MaterialBinding,
			Buffer:  mt.uniform.Buffer(),
			Offset:  0,
			Size:    wgpu.WholeSize,
		}},
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return mt, nil
}

// SetColor sets the material color and uploads it.
func (mt *Material) SetColor(color mgl32.Vec4) error {
	mt.Color = color
	return gpu.SetValueFrom(mt.uniform, []mgl32.Vec4{color})
}

// Bind binds the material at its configured group number, for use
// by subsequent draws in the given render pass.
func (mt *Material) Bind(rp *wgpu.RenderPassEncoder) {
	rp.SetBindGroup(mt.pipeline.Bindings.MaterialGroup, mt.bindGroup, nil)
}

func (mt *Material) Release() {
	if mt.bindGroup != nil {
		mt.bindGroup.Release()
		mt.bindGroup = nil
	}
	if mt.uniform != nil {
		mt.uniform.Release()
		mt.uniform = nil
	}
}
