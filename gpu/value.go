// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/ShadowCurse/breakout-zero/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Value represents one buffer-backed resource on the device:
// vertex data, index data, instance data, or a uniform.
// It manages the create-or-write lifecycle of its buffer.
type Value struct {
	// Name of this value, used as the buffer label, for debugging.
	Name string

	// Usage flags for the buffer. CopyDst is added automatically
	// so the queue can write updates.
	Usage wgpu.BufferUsage

	// AllocSize is the currently allocated buffer size in bytes.
	AllocSize int

	buffer *wgpu.Buffer
	device Device
}

// NewValue returns a new Value of given name and buffer usage,
// for the given device. No buffer is allocated until SetFromBytes
// or Alloc is called.
func NewValue(dev *Device, name string, usage wgpu.BufferUsage) *Value {
	return &Value{Name: name, Usage: usage | wgpu.BufferUsageCopyDst, device: *dev}
}

// Buffer returns the WebGPU buffer, or nil if not yet allocated.
func (vl *Value) Buffer() *wgpu.Buffer {
	return vl.buffer
}

// NilBufferCheck checks if buffer is nil, returning error if so.
func (vl *Value) NilBufferCheck() error {
	if vl.buffer == nil {
		return fmt.Errorf("gpu.Value NilBufferCheck: buffer is nil for value: %s", vl.Name)
	}
	return nil
}

// Alloc ensures the buffer is allocated with exactly the given
// byte size, creating or re-creating it as needed.
// Contents are undefined after a re-creation.
func (vl *Value) Alloc(size int) error {
	if vl.buffer != nil && vl.AllocSize == size {
		return nil
	}
	vl.Release()
	buf, err := vl.device.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Size:             uint64(size),
		Label:            vl.Name,
		Usage:            vl.Usage,
		MappedAtCreation: false,
	})
	if errors.Log(err) != nil {
		return err
	}
	vl.AllocSize = size
	vl.buffer = buf
	return nil
}

// SetValueFrom copies given values into value buffer memory,
// making the buffer if it has not yet been constructed.
func SetValueFrom[E any](vl *Value, from []E) error {
	return vl.SetFromBytes(wgpu.ToBytes(from))
}

// SetFromBytes copies given bytes into value buffer memory,
// making the buffer if it has not yet been constructed
// or if the size has changed.
func (vl *Value) SetFromBytes(from []byte) error {
	nb := len(from)
	if vl.buffer == nil || vl.AllocSize != nb {
		vl.Release()
		buf, err := vl.device.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    vl.Name,
			Contents: from,
			Usage:    vl.Usage,
		})
		if errors.Log(err) != nil {
			return err
		}
		vl.buffer = buf
		vl.AllocSize = nb
	} else {
		err := vl.device.Queue.WriteBuffer(vl.buffer, 0, from)
		if errors.Log(err) != nil {
			return err
		}
	}
	return nil
}

// WriteValueAt writes given values at the given byte offset within
// the existing value buffer, which must already be allocated with
// the full range in place. Used for updating a sub-range of a
// buffer shared by multiple owners.
func WriteValueAt[E any](vl *Value, offset int, from []E) error {
	return vl.WriteAt(offset, wgpu.ToBytes(from))
}

// WriteAt writes bytes at the given byte offset within the existing
// value buffer. See [WriteValueAt].
func (vl *Value) WriteAt(offset int, from []byte) error {
	if err := vl.NilBufferCheck(); err != nil {
		return errors.Log(err)
	}
	if offset+len(from) > vl.AllocSize {
		err := fmt.Errorf("gpu.Value WriteAt %s: offset %d + %d bytes exceeds allocated size %d", vl.Name, offset, len(from), vl.AllocSize)
		return errors.Log(err)
	}
	return errors.Log(vl.device.Queue.WriteBuffer(vl.buffer, uint64(offset), from))
}

// Release releases the buffer for this value.
func (vl *Value) Release() {
	if vl.buffer != nil {
		vl.buffer.Release()
		vl.buffer = nil
	}
	vl.AllocSize = 0
}
