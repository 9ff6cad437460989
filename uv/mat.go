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

// Mat2 is a 2x2 column-major matrix.
type Mat2[T Lane[T]] struct {
	Cols [2]Vec2[T]
}

// Mat3 is a 3x3 column-major matrix.
type Mat3[T Lane[T]] struct {
	Cols [3]Vec3[T]
}

// Mat4 is a 4x4 column-major matrix.
type Mat4[T Lane[T]] struct {
	Cols [4]Vec4[T]
}

type (
	Mat2f = Mat2[F32]
	Mat3f = Mat3[F32]
	Mat4f = Mat4[F32]

	Mat2d = Mat2[F64]
	Mat3d = Mat3[F64]
	Mat4d = Mat4[F64]

	Mat3x8 = Mat3[F32x8]
	Mat4x8 = Mat4[F32x8]
)

// NewMat2 returns the matrix with the given columns.
func NewMat2[T Lane[T]](c0, c1 Vec2[T]) Mat2[T] {
	return Mat2[T]{Cols: [2]Vec2[T]{c0, c1}}
}

// NewMat3 returns the matrix with the given columns.
func NewMat3[T Lane[T]](c0, c1, c2 Vec3[T]) Mat3[T] {
	return Mat3[T]{Cols: [3]Vec3[T]{c0, c1, c2}}
}

// NewMat4 returns the matrix with the given columns.
func NewMat4[T Lane[T]](c0, c1, c2, c3 Vec4[T]) Mat4[T] {
	return Mat4[T]{Cols: [4]Vec4[T]{c0, c1, c2, c3}}
}

// Mat2Identity returns the 2x2 identity matrix.
func Mat2Identity[T Lane[T]]() Mat2[T] {
	return NewMat2(Vec2UnitX[T](), Vec2UnitY[T]())
}

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity[T Lane[T]]() Mat3[T] {
	return NewMat3(Vec3UnitX[T](), Vec3UnitY[T](), Vec3UnitZ[T]())
}

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity[T Lane[T]]() Mat4[T] {
	return NewMat4(Vec4UnitX[T](), Vec4UnitY[T](), Vec4UnitZ[T](), Vec4UnitW[T]())
}

// Mat3FromTranslation2D returns the homogeneous 3x3 matrix translating 2D
// points by t.
func Mat3FromTranslation2D[T Lane[T]](t Vec2[T]) Mat3[T] {
	m := Mat3Identity[T]()
	m.Cols[2] = t.IntoHomogeneousPoint()
	return m
}

// Mat4FromTranslation3D returns the homogeneous 4x4 matrix translating 3D
// points by t.
func Mat4FromTranslation3D[T Lane[T]](t Vec3[T]) Mat4[T] {
	m := Mat4Identity[T]()
	m.Cols[3] = t.IntoHomogeneousPoint()
	return m
}

// Mat4FromScale returns the homogeneous 4x4 matrix scaling uniformly by s.
func Mat4FromScale[T Lane[T]](s T) Mat4[T] {
	var zero T
	one := splat[T](1)
	return NewMat4(
		Vec4[T]{X: s},
		Vec4[T]{Y: s},
		Vec4[T]{Z: s},
		Vec4[T]{X: zero, Y: zero, Z: zero, W: one},
	)
}

// Mat2 operations.

// MulVec applies m to v.
func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] {
	return m.Cols[0].Scale(v.X).Add(m.Cols[1].Scale(v.Y))
}

// MulMat returns the matrix product m * o: o applied first, then m.
func (m Mat2[T]) MulMat(o Mat2[T]) Mat2[T] {
	return NewMat2(m.MulVec(o.Cols[0]), m.MulVec(o.Cols[1]))
}

// Transposed returns the transpose of m.
func (m Mat2[T]) Transposed() Mat2[T] {
	return NewMat2(
		Vec2[T]{X: m.Cols[0].X, Y: m.Cols[1].X},
		Vec2[T]{X: m.Cols[0].Y, Y: m.Cols[1].Y},
	)
}

// EqEps reports whether every entry of m is within eps of o.
func (m Mat2[T]) EqEps(o Mat2[T], eps float64) bool {
	for i := range m.Cols {
		if !m.Cols[i].EqEps(o.Cols[i], eps) {
			return false
		}
	}
	return true
}

// Mat3 operations.

// MulVec applies m to v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return m.Cols[0].Scale(v.X).
		Add(m.Cols[1].Scale(v.Y)).
		Add(m.Cols[2].Scale(v.Z))
}

// MulMat returns the matrix product m * o: o applied first, then m.
func (m Mat3[T]) MulMat(o Mat3[T]) Mat3[T] {
	return NewMat3(m.MulVec(o.Cols[0]), m.MulVec(o.Cols[1]), m.MulVec(o.Cols[2]))
}

// Transposed returns the transpose of m.
func (m Mat3[T]) Transposed() Mat3[T] {
	return NewMat3(
		Vec3[T]{X: m.Cols[0].X, Y: m.Cols[1].X, Z: m.Cols[2].X},
		Vec3[T]{X: m.Cols[0].Y, Y: m.Cols[1].Y, Z: m.Cols[2].Y},
		Vec3[T]{X: m.Cols[0].Z, Y: m.Cols[1].Z, Z: m.Cols[2].Z},
	)
}

// IntoHomogeneous promotes m to a 4x4 matrix with no translation.
func (m Mat3[T]) IntoHomogeneous() Mat4[T] {
	return NewMat4(
		m.Cols[0].IntoHomogeneousVector(),
		m.Cols[1].IntoHomogeneousVector(),
		m.Cols[2].IntoHomogeneousVector(),
		Vec4UnitW[T](),
	)
}

// EqEps reports whether every entry of m is within eps of o.
func (m Mat3[T]) EqEps(o Mat3[T], eps float64) bool {
	for i := range m.Cols {
		if !m.Cols[i].EqEps(o.Cols[i], eps) {
			return false
		}
	}
	return true
}

// Mat4 operations.

// MulVec applies m to v.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return m.Cols[0].Scale(v.X).
		Add(m.Cols[1].Scale(v.Y)).
		Add(m.Cols[2].Scale(v.Z)).
		Add(m.Cols[3].Scale(v.W))
}

// MulMat returns the matrix product m * o: o applied first, then m.
func (m Mat4[T]) MulMat(o Mat4[T]) Mat4[T] {
	return NewMat4(
		m.MulVec(o.Cols[0]),
		m.MulVec(o.Cols[1]),
		m.MulVec(o.Cols[2]),
		m.MulVec(o.Cols[3]),
	)
}

// Transposed returns the transpose of m.
func (m Mat4[T]) Transposed() Mat4[T] {
	return NewMat4(
		Vec4[T]{X: m.Cols[0].X, Y: m.Cols[1].X, Z: m.Cols[2].X, W: m.Cols[3].X},
		Vec4[T]{X: m.Cols[0].Y, Y: m.Cols[1].Y, Z: m.Cols[2].Y, W: m.Cols[3].Y},
		Vec4[T]{X: m.Cols[0].Z, Y: m.Cols[1].Z, Z: m.Cols[2].Z, W: m.Cols[3].Z},
		Vec4[T]{X: m.Cols[0].W, Y: m.Cols[1].W, Z: m.Cols[2].W, W: m.Cols[3].W},
	)
}

// TransformPoint3 applies m to a 3D point (w = 1) and projects the result
// back by dividing out w.
func (m Mat4[T]) TransformPoint3(p Vec3[T]) Vec3[T] {
	return Vec3FromHomogeneousPoint(m.MulVec(p.IntoHomogeneousPoint()))
}

// EqEps reports whether every entry of m is within eps of o.
func (m Mat4[T]) EqEps(o Mat4[T], eps float64) bool {
	for i := range m.Cols {
		if !m.Cols[i].EqEps(o.Cols[i], eps) {
			return false
		}
	}
	return true
}
