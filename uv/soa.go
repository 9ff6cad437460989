// Copyright 2025 The ultraviolet-go Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package uv

import (
	"github.com/viterin/vek/vek32"
)

// Vec3Buffer holds many float32 3D vectors in structure-of-arrays layout:
// all x components contiguous, then all y, then all z. This is the layout
// the batch kernels want; use it when the same operation runs over many
// vectors and AoS Vec3f values only at the edges.
type Vec3Buffer struct {
	X, Y, Z []float32
}

// NewVec3Buffer returns a buffer of n zero vectors.
func NewVec3Buffer(n int) *Vec3Buffer {
	return &Vec3Buffer{
		X: make([]float32, n),
		Y: make([]float32, n),
		Z: make([]float32, n),
	}
}

// Vec3BufferFrom de-interleaves vs into a new buffer.
func Vec3BufferFrom(vs []Vec3f) *Vec3Buffer {
	b := NewVec3Buffer(len(vs))
	for i, v := range vs {
		b.X[i] = float32(v.X)
		b.Y[i] = float32(v.Y)
		b.Z[i] = float32(v.Z)
	}
	return b
}

// Len returns the number of vectors in the buffer.
func (b *Vec3Buffer) Len() int { return len(b.X) }

// At returns vector i. It panics if i is out of range.
func (b *Vec3Buffer) At(i int) Vec3f {
	return NewVec3f(b.X[i], b.Y[i], b.Z[i])
}

// Set replaces vector i. It panics if i is out of range.
func (b *Vec3Buffer) Set(i int, v Vec3f) {
	b.X[i] = float32(v.X)
	b.Y[i] = float32(v.Y)
	b.Z[i] = float32(v.Z)
}

// Vecs re-interleaves the buffer into a new slice of vectors.
func (b *Vec3Buffer) Vecs() []Vec3f {
	vs := make([]Vec3f, b.Len())
	for i := range vs {
		vs[i] = b.At(i)
	}
	return vs
}

// RotateAll applies the normalized rotor r to every vector in place.
func (b *Vec3Buffer) RotateAll(r Rotor3f) {
	BaseRotateVecsBatch(
		float32(r.S), float32(r.Bv.XY), float32(r.Bv.XZ), float32(r.Bv.YZ),
		b.X, b.Y, b.Z,
	)
}

// NormalizeAll scales every vector to unit length in place. Zero vectors
// become NaN, matching Vec3f.Normalized.
func (b *Vec3Buffer) NormalizeAll() {
	BaseNormalizeBatch(b.X, b.Y, b.Z)
}

// Dots writes the pairwise dot products of b and o into dst, which must be
// at least Len long.
func (b *Vec3Buffer) Dots(o *Vec3Buffer, dst []float32) {
	BaseDotBatch(b.X, b.Y, b.Z, o.X, o.Y, o.Z, dst)
}

// Wedges writes the pairwise wedge products of b and o into the SoA
// bivector buffers xy, xz, yz.
func (b *Vec3Buffer) Wedges(o *Vec3Buffer, xy, xz, yz []float32) {
	BaseWedgeBatch(b.X, b.Y, b.Z, o.X, o.Y, o.Z, xy, xz, yz)
}

// SumDot returns the sum over i of b[i]·o[i], as one flat reduction per
// component slice.
func (b *Vec3Buffer) SumDot(o *Vec3Buffer) float32 {
	return vek32.Dot(b.X, o.X) + vek32.Dot(b.Y, o.Y) + vek32.Dot(b.Z, o.Z)
}

// Norm returns the Frobenius norm of the buffer: the square root of the sum
// of squares of every component of every vector.
func (b *Vec3Buffer) Norm() float32 {
	sumSq := vek32.Dot(b.X, b.X) + vek32.Dot(b.Y, b.Y) + vek32.Dot(b.Z, b.Z)
	return float32(F32(sumSq).Sqrt())
}

// DivScalarAll divides every component by the given divisor in place.
func (b *Vec3Buffer) DivScalarAll(s float32) {
	vek32.DivNumber_Inplace(b.X, s)
	vek32.DivNumber_Inplace(b.Y, s)
	vek32.DivNumber_Inplace(b.Z, s)
}
