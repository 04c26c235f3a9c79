// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/ShadowCurse/breakout-zero/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Device holds a WebGPU logical device and its command queue.
// Everything allocated or submitted in this package goes through
// one of these.
type Device struct {
	// Device is the logical device.
	Device *wgpu.Device

	// Queue is the command queue for the device.
	Queue *wgpu.Queue
}

// NewDevice returns a new device for the given GPU,
// using the default limits.
func NewDevice(gp *GPU) (*Device, error) {
	limits := wgpu.DefaultLimits()
	wd, err := gp.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:          "breakout-zero",
		RequiredLimits: &wgpu.RequiredLimits{Limits: limits},
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return &Device{Device: wd, Queue: wd.GetQueue()}, nil
}

// WaitDone blocks until all queued work on the device has finished.
func (dv *Device) WaitDone() {
	if dv.Device == nil {
		return
	}
	dv.Device.Poll(true, nil)
}

// Release releases the device.
func (dv *Device) Release() {
	if dv.Device == nil {
		return
	}
	dv.Device.Release()
	dv.Device = nil
	dv.Queue = nil
}
