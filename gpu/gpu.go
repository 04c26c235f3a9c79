// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu provides the WebGPU host layer for breakout-zero:
// adapter and device setup, window surfaces, offscreen render
// textures, render pass configuration, and buffer read-back.
//
// The shader-facing data contracts (camera uniform, vertex and
// instance records, render pipelines) live in the flat package;
// this package owns the resources those contracts are bound to.
package gpu

import (
	"github.com/ShadowCurse/breakout-zero/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

var theInstance *wgpu.Instance

// Instance returns the process-wide WebGPU instance,
// creating it on first use.
func Instance() *wgpu.Instance {
	if theInstance == nil {
		theInstance = wgpu.CreateInstance(nil)
	}
	return theInstance
}

// GPU represents the physical GPU hardware,
// accessed through a WebGPU adapter.
type GPU struct {
	// Adapter is the WebGPU adapter for this GPU.
	Adapter *wgpu.Adapter
}

// NewGPU returns a new GPU, requesting a high-performance adapter
// compatible with the given surface, which can be nil for
// offscreen-only use.
func NewGPU(sf *wgpu.Surface) (*GPU, error) {
	opts := &wgpu.RequestAdapterOptions{
		CompatibleSurface: sf,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	}
	ad, err := Instance().RequestAdapter(opts)
	if errors.Log(err) != nil {
		return nil, err
	}
	return &GPU{Adapter: ad}, nil
}

// NewDevice returns a new logical device for this GPU,
// with the default limits.
func (gp *GPU) NewDevice() (*Device, error) {
	return NewDevice(gp)
}

// NoDisplayGPU returns a GPU and Device suitable for offscreen
// rendering or testing, without any window surface.
func NoDisplayGPU() (*GPU, *Device, error) {
	gp, err := NewGPU(nil)
	if err != nil {
		return nil, nil, err
	}
	dev, err := gp.NewDevice()
	return gp, dev, err
}

// Release releases the adapter.
func (gp *GPU) Release() {
	if gp.Adapter == nil {
		return
	}
	gp.Adapter.Release()
	gp.Adapter = nil
}
