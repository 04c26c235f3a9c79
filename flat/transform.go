// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flat

import "github.com/go-gl/mathgl/mgl32"

// Transform is a position, rotation, and scale that compose into
// an instance model matrix: scale applied first, then rotation,
// then translation.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Matrix returns the composed model matrix T * R * S.
func (tr Transform) Matrix() mgl32.Mat4 {
	t := mgl32.Translate3D(tr.Position.X(), tr.Position.Y(), tr.Position.Z())
	r := tr.Rotation.Mat4()
	s := mgl32.Scale3D(tr.Scale.X(), tr.Scale.Y(), tr.Scale.Z())
	return t.Mul4(r).Mul4(s)
}
