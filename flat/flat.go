// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flat implements instanced flat-color rendering on top of
// the [gpu] package, with two pipelines sharing one camera:
// OneColor draws every instance of a draw call with a single
// material color, and PerInstance draws each instance with its own
// color. Both read per-instance transforms and a disabled flag from
// the instance buffer, discarding disabled instances entirely.
package flat

import (
	_ "embed"
	"image"
	"unsafe"

	"github.com/ShadowCurse/breakout-zero/base/errors"
	"github.com/ShadowCurse/breakout-zero/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed onecolor.wgsl
var oneColorShader string

//go:embed perinstance.wgsl
var perInstanceShader string

// Flat is the instanced flat-color rendering system.
// It manages the camera uniform, the two pipelines, and the render
// pass lifecycle against its Renderer.
type Flat struct {
	// OneColor draws all instances of a draw call with the single
	// color of the currently bound [Material].
	OneColor *Pipeline

	// PerInstance draws each instance with the color stored in its
	// [ColorInstance] record.
	PerInstance *Pipeline

	// Renderer is the rendering target for this system.
	// It is either a Surface or a RenderTexture.
	Renderer gpu.Renderer

	// CommandEncoder is the command encoder created in
	// [Flat.BeginRenderPass], and released in [Flat.EndRenderPass].
	CommandEncoder *wgpu.CommandEncoder

	// camera is the uniform buffer holding the current
	// [CameraUniform], shared by both pipelines.
	camera *gpu.Value

	// logical device for this system, from the Renderer.
	device gpu.Device

	// gpu is our GPU device, which has properties
	// and alignment factors.
	gpu *gpu.GPU
}

// NewFlat returns a new Flat system rendering to the given Renderer.
// Both pipelines are built immediately, against the Renderer's
// texture and depth formats.
func NewFlat(gp *gpu.GPU, rd gpu.Renderer) (*Flat, error) {
	fl := &Flat{Renderer: rd, gpu: gp}
	fl.device = *rd.Device()
	fl.camera = gpu.NewValue(&fl.device, "camera", wgpu.BufferUsageUniform)
	if err := fl.camera.Alloc(int(unsafe.Sizeof(CameraUniform{}))); err != nil {
		return nil, err
	}
	var err error
	fl.OneColor, err = newPipeline(&fl.device, "onecolor", oneColorShader,
		OneColorBindings(), instanceLayout(), rd.Render(), fl.camera)
	if err != nil {
		return nil, err
	}
	fl.PerInstance, err = newPipeline(&fl.device, "perinstance", perInstanceShader,
		PerInstanceBindings(), colorInstanceLayout(), rd.Render(), fl.camera)
	if err != nil {
		return nil, err
	}
	return fl, nil
}

func (fl *Flat) Device() *gpu.Device { return &fl.device }
func (fl *Flat) GPU() *gpu.GPU      { return fl.gpu }
func (fl *Flat) Render() *gpu.Render {
	return fl.Renderer.Render()
}

// SetCamera uploads the given camera's uniform data, used by all
// draws in subsequent render passes until set again.
func (fl *Flat) SetCamera(cam *Camera) error {
	u := cam.Uniform()
	return gpu.SetValueFrom(fl.camera, []CameraUniform{u})
}

// NewMaterial makes a new [Material] with the given color, for use
// with the OneColor pipeline.
func (fl *Flat) NewMaterial(name string, color mgl32.Vec4) (*Material, error) {
	return NewMaterial(&fl.device, name, color, fl.OneColor)
}

// When the render surface (e.g., window) is resized, call this function.
// WebGPU does not have any internal mechanism for tracking this, so we
// need to drive it from external events.
func (fl *Flat) SetSize(size image.Point) {
	fl.Renderer.SetSize(size)
}

// WaitDone waits until device is done with current processing steps
func (fl *Flat) WaitDone() {
	fl.device.WaitDone()
}

// NewCommandEncoder returns a new CommandEncoder for encoding
// rendering commands. This is automatically called by
// BeginRenderPass and the result maintained in CommandEncoder.
func (fl *Flat) NewCommandEncoder() (*wgpu.CommandEncoder, error) {
	cmd, err := fl.device.Device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return nil, err
	}
	return cmd, nil
}

// BeginRenderPass starts a render pass against the Renderer's
// current texture, clearing it first, and returns the encoder to
// which pipeline binds and draws should be added.
// Call [Flat.EndRenderPass] when done.
func (fl *Flat) BeginRenderPass() (*wgpu.RenderPassEncoder, error) {
	view, err := fl.Renderer.GetCurrentTexture()
	if errors.Log(err) != nil {
		return nil, err
	}
	cmd, err := fl.NewCommandEncoder()
	if errors.Log(err) != nil {
		return nil, err
	}
	fl.CommandEncoder = cmd
	return fl.Render().BeginRenderPass(cmd, view), nil
}

// SubmitRender submits the current render commands to the device
// Queue and releases the [CommandEncoder] and the given
// RenderPassEncoder. You must call rp.End prior to calling this.
// Can insert other commands after rp.End, e.g., to copy the rendered
// image, prior to calling SubmitRender.
func (fl *Flat) SubmitRender(rp *wgpu.RenderPassEncoder) error {
	cmd := fl.CommandEncoder
	fl.CommandEncoder = nil
	rp.Release() // must happen before Finish
	cmdBuffer, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		return err
	}
	fl.device.Queue.Submit(cmdBuffer)
	cmdBuffer.Release()
	cmd.Release()
	return nil
}

// EndRenderPass ends the render pass started by [BeginRenderPass],
// by calling [SubmitRender] to submit the rendering commands to the
// device, and calling Present() on the Renderer to show results.
func (fl *Flat) EndRenderPass(rp *wgpu.RenderPassEncoder) {
	fl.SubmitRender(rp)
	fl.Renderer.Present()
}

func (fl *Flat) Release() {
	fl.WaitDone()
	if fl.OneColor != nil {
		fl.OneColor.Release()
		fl.OneColor = nil
	}
	if fl.PerInstance != nil {
		fl.PerInstance.Release()
		fl.PerInstance = nil
	}
	if fl.camera != nil {
		fl.camera.Release()
		fl.camera = nil
	}
	fl.gpu = nil
}
