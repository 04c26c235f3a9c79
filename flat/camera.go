// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flat

import "github.com/go-gl/mathgl/mgl32"

// CameraUniform is the per-frame camera data as laid out in the
// shader uniform: the five matrices in order, then the camera
// world position. All matrices are column-major with column-vector
// convention: a point transforms as M * p, view applied before
// projection.
type CameraUniform struct {
	// View is the world-to-camera matrix.
	View mgl32.Mat4

	// Projection is the camera-to-clip matrix.
	Projection mgl32.Mat4

	// ViewProjection is Projection * View.
	ViewProjection mgl32.Mat4

	// ViewProjectionInverse is the inverse of ViewProjection.
	ViewProjectionInverse mgl32.Mat4

	// ViewProjectionNoTranslation is Projection * View with the
	// view translation column zeroed, for surround geometry that
	// follows the camera.
	ViewProjectionNoTranslation mgl32.Mat4

	// Position is the camera position in world space.
	Position mgl32.Vec3

	// pad fills the struct to the 16-byte uniform stride.
	pad float32
}

// Camera holds the host-side camera state from which the shader
// uniform is derived once per frame.
type Camera struct {
	// View is the world-to-camera matrix.
	View mgl32.Mat4

	// Projection is the camera-to-clip matrix, producing WebGPU
	// clip space (z in [0, 1]).
	Projection mgl32.Mat4

	// Position is the camera position in world space.
	Position mgl32.Vec3
}

// glToWGPU remaps a GL-convention projection (clip z in [-1, 1])
// to WebGPU clip space (z in [0, 1]): z' = 0.5*z + 0.5*w.
var glToWGPU = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// NewOrthographicCamera returns a camera at the given position
// looking along dir, with an orthographic projection spanning
// ±halfWidth and ±halfHeight, between near and far.
func NewOrthographicCamera(pos, dir mgl32.Vec3, halfWidth, halfHeight, near, far float32) *Camera {
	return &Camera{
		View:       mgl32.LookAtV(pos, pos.Add(dir), mgl32.Vec3{0, 1, 0}),
		Projection: glToWGPU.Mul4(mgl32.Ortho(-halfWidth, halfWidth, -halfHeight, halfHeight, near, far)),
		Position:   pos,
	}
}

// NewPerspectiveCamera returns a camera at the given position
// looking at target, with a perspective projection of the given
// vertical field of view in degrees and aspect ratio.
func NewPerspectiveCamera(pos, target mgl32.Vec3, fovDegrees, aspect, near, far float32) *Camera {
	return &Camera{
		View:       mgl32.LookAtV(pos, target, mgl32.Vec3{0, 1, 0}),
		Projection: glToWGPU.Mul4(mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, near, far)),
		Position:   pos,
	}
}

// Uniform derives the shader uniform from the camera state.
// ViewProjection is Projection * View; its inverse is the zero
// matrix if the product is singular (a silent numeric degeneracy,
// never an error).
func (cm *Camera) Uniform() CameraUniform {
	vp := cm.Projection.Mul4(cm.View)
	vnt := cm.View
	vnt.SetCol(3, mgl32.Vec4{0, 0, 0, 1})
	return CameraUniform{
		View:                        cm.View,
		Projection:                  cm.Projection,
		ViewProjection:              vp,
		ViewProjectionInverse:       vp.Inv(),
		ViewProjectionNoTranslation: cm.Projection.Mul4(vnt),
		Position:                    cm.Position,
	}
}
