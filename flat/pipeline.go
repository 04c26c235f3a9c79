// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flat

import (
	"github.com/ShadowCurse/breakout-zero/base/errors"
	"github.com/ShadowCurse/breakout-zero/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// BindingConfig specifies the bind group and binding numbers used
// by one pipeline, as referred to by @group and @binding in its
// WGSL shader. Each Pipeline carries its own copy: group numbering
// is pipeline-scoped, never shared between pipelines.
type BindingConfig struct {
	// CameraGroup is the bind group index of the camera uniform.
	CameraGroup uint32

	// CameraBinding is the binding index of the camera uniform
	// within CameraGroup.
	CameraBinding uint32

	// MaterialGroup is the bind group index of the material color
	// uniform, for pipelines that have one.
	MaterialGroup uint32

	// MaterialBinding is the binding index of the material color
	// uniform within MaterialGroup.
	MaterialBinding uint32

	// HasMaterial is true if the pipeline uses a material uniform.
	HasMaterial bool
}

// OneColorBindings returns the binding configuration of the
// one-color pipeline: material color at group 0, camera at group 1.
func OneColorBindings() BindingConfig {
	return BindingConfig{
		CameraGroup:     1,
		CameraBinding:   0,
		MaterialGroup:   0,
		MaterialBinding: 0,
		HasMaterial:     true,
	}
}

// PerInstanceBindings returns the binding configuration of the
// per-instance-color pipeline: camera at group 0, no material.
func PerInstanceBindings() BindingConfig {
	return BindingConfig{
		CameraGroup:   0,
		CameraBinding: 0,
	}
}

// Pipeline is one configured render pipeline: its shader module,
// bind group layouts, camera bind group, and the WebGPU render
// pipeline, together with the BindingConfig it was built from.
type Pipeline struct {
	// Name is the label used for all pipeline resources.
	Name string

	// Bindings is this pipeline's binding configuration.
	Bindings BindingConfig

	module         *wgpu.ShaderModule
	cameraLayout   *wgpu.BindGroupLayout
	materialLayout *wgpu.BindGroupLayout
	layout         *wgpu.PipelineLayout
	renderPipeline *wgpu.RenderPipeline
	cameraGroup    *wgpu.BindGroup
	device         gpu.Device
}

// newPipeline builds a render pipeline from WGSL source for the
// given render target configuration. The camera buffer must
// already be allocated; its bind group is created at the group
// and binding numbers given in bindings.
func newPipeline(dev *gpu.Device, name, wgsl string, bindings BindingConfig, instLayout wgpu.VertexBufferLayout, rd *gpu.Render, camera *gpu.Value) (*Pipeline, error) {
	pl := &Pipeline{Name: name, Bindings: bindings, device: *dev}
	wd := dev.Device

	module, err := wd.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: wgsl,
		},
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	pl.module = module

	pl.cameraLayout, err = wd.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: name + " camera",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    bindings.CameraBinding,
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type: wgpu.BufferBindingTypeUniform,
			},
		}},
	})
	if errors.Log(err) != nil {
		return nil, err
	}

	nGroups := bindings.CameraGroup + 1
	if bindings.HasMaterial {
		pl.materialLayout, err = wd.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
			Label: name + " material",
			Entries: []wgpu.BindGroupLayoutEntry{{
				Binding:    bindings.MaterialBinding,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			}},
		})
		if errors.Log(err) != nil {
			return nil, err
		}
		nGroups = max(nGroups, bindings.MaterialGroup+1)
	}

	// the group number indexes the layout array: the numbering in
	// Bindings is what actually places each resource.
	groupLayouts := make([]*wgpu.BindGroupLayout, nGroups)
	groupLayouts[bindings.CameraGroup] = pl.cameraLayout
	if bindings.HasMaterial {
		groupLayouts[bindings.MaterialGroup] = pl.materialLayout
	}

	pl.layout, err = wd.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            name,
		BindGroupLayouts: groupLayouts,
	})
	if errors.Log(err) != nil {
		return nil, err
	}

	pd := &wgpu.RenderPipelineDescriptor{
		Label:  name,
		Layout: pl.layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{vertexLayout(), instLayout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    rd.Format.Format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}
	if rd.HasDepth {
		pd.DepthStencil = &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth32Float,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLessEqual,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		}
	}
	pl.renderPipeline, err = wd.CreateRenderPipeline(pd)
	if errors.Log(err) != nil {
		return nil, err
	}

	pl.cameraGroup, err = wd.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  name + " camera",
		Layout: pl.cameraLayout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: bindings.CameraBinding,
			Buffer:  camera.Buffer(),
			Offset:  0,
			Size:    wgpu.WholeSize,
		}},
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return pl, nil
}

// BindPipeline binds this pipeline as the one to use for the next
// commands in the given render pass, along with its camera bind
// group at the configured group number.
func (pl *Pipeline) BindPipeline(rp *wgpu.RenderPassEncoder) {
	rp.SetPipeline(pl.renderPipeline)
	rp.SetBindGroup(pl.Bindings.CameraGroup, pl.cameraGroup, nil)
}

func (pl *Pipeline) Release() {
	if pl.cameraGroup != nil {
		pl.cameraGroup.Release()
		pl.cameraGroup = nil
	}
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.materialLayout != nil {
		pl.materialLayout.Release()
		pl.materialLayout = nil
	}
	if pl.cameraLayout != nil {
		pl.cameraLayout.Release()
		pl.cameraLayout = nil
	}
	if pl.module != nil {
		pl.module.Release()
		pl.module = nil
	}
}
