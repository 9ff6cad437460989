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

// Vec2 is a 2D vector with lane components.
type Vec2[T Lane[T]] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

// Vec3 is a 3D vector with lane components.
type Vec3[T Lane[T]] struct {
	X T `json:"x"`
	Y T `json:"y"`
	Z T `json:"z"`
}

// Vec4 is a 4D vector with lane components.
type Vec4[T Lane[T]] struct {
	X T `json:"x"`
	Y T `json:"y"`
	Z T `json:"z"`
	W T `json:"w"`
}

// Concrete families. f = scalar float32, d = scalar float64, x8 = eight
// float32 lanes in lockstep.
type (
	Vec2f = Vec2[F32]
	Vec3f = Vec3[F32]
	Vec4f = Vec4[F32]

	Vec2d = Vec2[F64]
	Vec3d = Vec3[F64]
	Vec4d = Vec4[F64]

	Vec2x8 = Vec2[F32x8]
	Vec3x8 = Vec3[F32x8]
	Vec4x8 = Vec4[F32x8]
)

// NewVec2 returns the vector (x, y).
func NewVec2[T Lane[T]](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// NewVec3 returns the vector (x, y, z).
func NewVec3[T Lane[T]](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// NewVec4 returns the vector (x, y, z, w).
func NewVec4[T Lane[T]](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// NewVec2f returns the float32 vector (x, y).
func NewVec2f(x, y float32) Vec2f { return Vec2f{F32(x), F32(y)} }

// NewVec3f returns the float32 vector (x, y, z).
func NewVec3f(x, y, z float32) Vec3f { return Vec3f{F32(x), F32(y), F32(z)} }

// NewVec4f returns the float32 vector (x, y, z, w).
func NewVec4f(x, y, z, w float32) Vec4f {
	return Vec4f{F32(x), F32(y), F32(z), F32(w)}
}

// NewVec3d returns the float64 vector (x, y, z).
func NewVec3d(x, y, z float64) Vec3d { return Vec3d{F64(x), F64(y), F64(z)} }

// Vec2Broadcast returns a vector with every component set to v.
func Vec2Broadcast[T Lane[T]](v T) Vec2[T] { return Vec2[T]{v, v} }

// Vec3Broadcast returns a vector with every component set to v.
func Vec3Broadcast[T Lane[T]](v T) Vec3[T] { return Vec3[T]{v, v, v} }

// Vec4Broadcast returns a vector with every component set to v.
func Vec4Broadcast[T Lane[T]](v T) Vec4[T] { return Vec4[T]{v, v, v, v} }

// Vec2UnitX returns (1, 0).
func Vec2UnitX[T Lane[T]]() Vec2[T] { return Vec2[T]{X: splat[T](1)} }

// Vec2UnitY returns (0, 1).
func Vec2UnitY[T Lane[T]]() Vec2[T] { return Vec2[T]{Y: splat[T](1)} }

// Vec3UnitX returns (1, 0, 0).
func Vec3UnitX[T Lane[T]]() Vec3[T] { return Vec3[T]{X: splat[T](1)} }

// Vec3UnitY returns (0, 1, 0).
func Vec3UnitY[T Lane[T]]() Vec3[T] { return Vec3[T]{Y: splat[T](1)} }

// Vec3UnitZ returns (0, 0, 1).
func Vec3UnitZ[T Lane[T]]() Vec3[T] { return Vec3[T]{Z: splat[T](1)} }

// Vec4UnitX returns (1, 0, 0, 0).
func Vec4UnitX[T Lane[T]]() Vec4[T] { return Vec4[T]{X: splat[T](1)} }

// Vec4UnitY returns (0, 1, 0, 0).
func Vec4UnitY[T Lane[T]]() Vec4[T] { return Vec4[T]{Y: splat[T](1)} }

// Vec4UnitZ returns (0, 0, 1, 0).
func Vec4UnitZ[T Lane[T]]() Vec4[T] { return Vec4[T]{Z: splat[T](1)} }

// Vec4UnitW returns (0, 0, 0, 1).
func Vec4UnitW[T Lane[T]]() Vec4[T] { return Vec4[T]{W: splat[T](1)} }

// Vec2 operations.

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X.Add(o.X), v.Y.Add(o.Y)}
}

func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X.Sub(o.X), v.Y.Sub(o.Y)}
}

func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{v.X.Neg(), v.Y.Neg()}
}

// CompMul returns the component-wise (Hadamard) product.
func (v Vec2[T]) CompMul(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X.Mul(o.X), v.Y.Mul(o.Y)}
}

// CompDiv returns the component-wise quotient.
func (v Vec2[T]) CompDiv(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X.Div(o.X), v.Y.Div(o.Y)}
}

// Scale multiplies every component by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{v.X.Mul(s), v.Y.Mul(s)}
}

// DivScalar divides every component by s.
func (v Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{v.X.Div(s), v.Y.Div(s)}
}

// MulAdd returns v*mul + add component-wise, using fused multiply-adds.
func (v Vec2[T]) MulAdd(mul, add Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X.MulAdd(mul.X, add.X), v.Y.MulAdd(mul.Y, add.Y)}
}

func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v.X.MulAdd(o.X, v.Y.Mul(o.Y))
}

// Wedge returns the exterior product of v and o, the oriented area of the
// parallelogram they span. It is antisymmetric: v.Wedge(o) == o.Wedge(v).Neg().
func (v Vec2[T]) Wedge(o Vec2[T]) Bivec2[T] {
	return Bivec2[T]{XY: v.X.Mul(o.Y).Sub(v.Y.Mul(o.X))}
}

func (v Vec2[T]) MagSq() T { return v.Dot(v) }

func (v Vec2[T]) Mag() T { return v.MagSq().Sqrt() }

// Normalized returns v scaled to unit length. If v has zero magnitude the
// result is undefined (NaN components).
func (v Vec2[T]) Normalized() Vec2[T] {
	return v.DivScalar(v.Mag())
}

// Normalize scales v to unit length in place. See Normalized.
func (v *Vec2[T]) Normalize() {
	*v = v.Normalized()
}

// Reflect returns v reflected across the plane perpendicular to normal,
// which must be normalized.
func (v Vec2[T]) Reflect(normal Vec2[T]) Vec2[T] {
	two := splat[T](2)
	return v.Sub(normal.Scale(two.Mul(v.Dot(normal))))
}

// MinByComponent returns the component-wise minimum of v and o.
func (v Vec2[T]) MinByComponent(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X.Min(o.X), v.Y.Min(o.Y)}
}

// MaxByComponent returns the component-wise maximum of v and o.
func (v Vec2[T]) MaxByComponent(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X.Max(o.X), v.Y.Max(o.Y)}
}

// Lerp linearly interpolates from v to end by t.
func (v Vec2[T]) Lerp(end Vec2[T], t T) Vec2[T] {
	one := splat[T](1)
	return v.Scale(one.Sub(t)).Add(end.Scale(t))
}

// EqEps reports whether every component of v is within eps of o.
func (v Vec2[T]) EqEps(o Vec2[T], eps float64) bool {
	return v.X.EqEps(o.X, eps) && v.Y.EqEps(o.Y, eps)
}

// Component returns component i (0 = X, 1 = Y). It panics if i is out of
// range.
func (v Vec2[T]) Component(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("uv: vector component index out of range")
}

// IntoHomogeneousPoint appends a 1 coordinate, making v a 2D point in
// homogeneous coordinates.
func (v Vec2[T]) IntoHomogeneousPoint() Vec3[T] {
	return Vec3[T]{v.X, v.Y, splat[T](1)}
}

// IntoHomogeneousVector appends a 0 coordinate, making v a 2D direction in
// homogeneous coordinates.
func (v Vec2[T]) IntoHomogeneousVector() Vec3[T] {
	var zero T
	return Vec3[T]{v.X, v.Y, zero}
}

// Vec2FromHomogeneousPoint projects a homogeneous 2D point back to a Vec2 by
// dividing out the last coordinate.
func Vec2FromHomogeneousPoint[T Lane[T]](v Vec3[T]) Vec2[T] {
	return Vec2[T]{v.X.Div(v.Z), v.Y.Div(v.Z)}
}

// Vec3 operations.

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)}
}

func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)}
}

func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{v.X.Neg(), v.Y.Neg(), v.Z.Neg()}
}

// CompMul returns the component-wise (Hadamard) product.
func (v Vec3[T]) CompMul(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X.Mul(o.X), v.Y.Mul(o.Y), v.Z.Mul(o.Z)}
}

// CompDiv returns the component-wise quotient.
func (v Vec3[T]) CompDiv(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X.Div(o.X), v.Y.Div(o.Y), v.Z.Div(o.Z)}
}

// Scale multiplies every component by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

// DivScalar divides every component by s.
func (v Vec3[T]) DivScalar(s T) Vec3[T] {
	return Vec3[T]{v.X.Div(s), v.Y.Div(s), v.Z.Div(s)}
}

// MulAdd returns v*mul + add component-wise, using fused multiply-adds.
func (v Vec3[T]) MulAdd(mul, add Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.X.MulAdd(mul.X, add.X),
		v.Y.MulAdd(mul.Y, add.Y),
		v.Z.MulAdd(mul.Z, add.Z),
	}
}

func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X.MulAdd(o.X, v.Y.MulAdd(o.Y, v.Z.Mul(o.Z)))
}

// Cross returns the right-handed cross product of v and o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y.Mul(o.Z).Sub(v.Z.Mul(o.Y)),
		v.Z.Mul(o.X).Sub(v.X.Mul(o.Z)),
		v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)),
	}
}

// Wedge returns the exterior product of v and o, the oriented area of the
// parallelogram they span. It is antisymmetric: v.Wedge(o) == o.Wedge(v).Neg().
func (v Vec3[T]) Wedge(o Vec3[T]) Bivec3[T] {
	return Bivec3[T]{
		XY: v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)),
		XZ: v.X.Mul(o.Z).Sub(v.Z.Mul(o.X)),
		YZ: v.Y.Mul(o.Z).Sub(v.Z.Mul(o.Y)),
	}
}

func (v Vec3[T]) MagSq() T { return v.Dot(v) }

func (v Vec3[T]) Mag() T { return v.MagSq().Sqrt() }

// Normalized returns v scaled to unit length. If v has zero magnitude the
// result is undefined (NaN components).
func (v Vec3[T]) Normalized() Vec3[T] {
	return v.DivScalar(v.Mag())
}

// Normalize scales v to unit length in place. See Normalized.
func (v *Vec3[T]) Normalize() {
	*v = v.Normalized()
}

// Reflect returns v reflected across the plane perpendicular to normal,
// which must be normalized.
func (v Vec3[T]) Reflect(normal Vec3[T]) Vec3[T] {
	two := splat[T](2)
	return v.Sub(normal.Scale(two.Mul(v.Dot(normal))))
}

// MinByComponent returns the component-wise minimum of v and o.
func (v Vec3[T]) MinByComponent(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X.Min(o.X), v.Y.Min(o.Y), v.Z.Min(o.Z)}
}

// MaxByComponent returns the component-wise maximum of v and o.
func (v Vec3[T]) MaxByComponent(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X.Max(o.X), v.Y.Max(o.Y), v.Z.Max(o.Z)}
}

// Lerp linearly interpolates from v to end by t.
func (v Vec3[T]) Lerp(end Vec3[T], t T) Vec3[T] {
	one := splat[T](1)
	return v.Scale(one.Sub(t)).Add(end.Scale(t))
}

// Slerp spherically interpolates from v to end by t at constant angular
// velocity. Both vectors should be normalized. On scalar lanes, nearly
// parallel inputs fall back to Lerp; on wide lanes there is no fallback and
// exactly aligned inputs produce undefined results.
func (v Vec3[T]) Slerp(end Vec3[T], t T) Vec3[T] {
	return slerpGeneric[Vec3[T], T](v, end, t)
}

// EqEps reports whether every component of v is within eps of o.
func (v Vec3[T]) EqEps(o Vec3[T], eps float64) bool {
	return v.X.EqEps(o.X, eps) && v.Y.EqEps(o.Y, eps) && v.Z.EqEps(o.Z, eps)
}

// Component returns component i (0 = X, 1 = Y, 2 = Z). It panics if i is
// out of range.
func (v Vec3[T]) Component(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("uv: vector component index out of range")
}

// XY truncates v to its first two components.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v.X, v.Y} }

// IntoHomogeneousPoint appends a 1 coordinate, making v a 3D point in
// homogeneous coordinates.
func (v Vec3[T]) IntoHomogeneousPoint() Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, splat[T](1)}
}

// IntoHomogeneousVector appends a 0 coordinate, making v a 3D direction in
// homogeneous coordinates.
func (v Vec3[T]) IntoHomogeneousVector() Vec4[T] {
	var zero T
	return Vec4[T]{v.X, v.Y, v.Z, zero}
}

// Vec3FromHomogeneousPoint projects a homogeneous 3D point back to a Vec3 by
// dividing out the last coordinate.
func Vec3FromHomogeneousPoint[T Lane[T]](v Vec4[T]) Vec3[T] {
	return Vec3[T]{v.X.Div(v.W), v.Y.Div(v.W), v.Z.Div(v.W)}
}

// Vec4 operations.

func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z), v.W.Add(o.W)}
}

func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z), v.W.Sub(o.W)}
}

func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{v.X.Neg(), v.Y.Neg(), v.Z.Neg(), v.W.Neg()}
}

// CompMul returns the component-wise (Hadamard) product.
func (v Vec4[T]) CompMul(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X.Mul(o.X), v.Y.Mul(o.Y), v.Z.Mul(o.Z), v.W.Mul(o.W)}
}

// CompDiv returns the component-wise quotient.
func (v Vec4[T]) CompDiv(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X.Div(o.X), v.Y.Div(o.Y), v.Z.Div(o.Z), v.W.Div(o.W)}
}

// Scale multiplies every component by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s), v.W.Mul(s)}
}

// DivScalar divides every component by s.
func (v Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{v.X.Div(s), v.Y.Div(s), v.Z.Div(s), v.W.Div(s)}
}

// MulAdd returns v*mul + add component-wise, using fused multiply-adds.
func (v Vec4[T]) MulAdd(mul, add Vec4[T]) Vec4[T] {
	return Vec4[T]{
		v.X.MulAdd(mul.X, add.X),
		v.Y.MulAdd(mul.Y, add.Y),
		v.Z.MulAdd(mul.Z, add.Z),
		v.W.MulAdd(mul.W, add.W),
	}
}

func (v Vec4[T]) Dot(o Vec4[T]) T {
	return v.X.MulAdd(o.X, v.Y.MulAdd(o.Y, v.Z.MulAdd(o.Z, v.W.Mul(o.W))))
}

func (v Vec4[T]) MagSq() T { return v.Dot(v) }

func (v Vec4[T]) Mag() T { return v.MagSq().Sqrt() }

// Normalized returns v scaled to unit length. If v has zero magnitude the
// result is undefined (NaN components).
func (v Vec4[T]) Normalized() Vec4[T] {
	return v.DivScalar(v.Mag())
}

// Normalize scales v to unit length in place. See Normalized.
func (v *Vec4[T]) Normalize() {
	*v = v.Normalized()
}

// Reflect returns v reflected across the hyperplane perpendicular to normal,
// which must be normalized.
func (v Vec4[T]) Reflect(normal Vec4[T]) Vec4[T] {
	two := splat[T](2)
	return v.Sub(normal.Scale(two.Mul(v.Dot(normal))))
}

// MinByComponent returns the component-wise minimum of v and o.
func (v Vec4[T]) MinByComponent(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X.Min(o.X), v.Y.Min(o.Y), v.Z.Min(o.Z), v.W.Min(o.W)}
}

// MaxByComponent returns the component-wise maximum of v and o.
func (v Vec4[T]) MaxByComponent(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X.Max(o.X), v.Y.Max(o.Y), v.Z.Max(o.Z), v.W.Max(o.W)}
}

// Lerp linearly interpolates from v to end by t.
func (v Vec4[T]) Lerp(end Vec4[T], t T) Vec4[T] {
	one := splat[T](1)
	return v.Scale(one.Sub(t)).Add(end.Scale(t))
}

// EqEps reports whether every component of v is within eps of o.
func (v Vec4[T]) EqEps(o Vec4[T], eps float64) bool {
	return v.X.EqEps(o.X, eps) && v.Y.EqEps(o.Y, eps) &&
		v.Z.EqEps(o.Z, eps) && v.W.EqEps(o.W, eps)
}

// Component returns component i (0 = X, 1 = Y, 2 = Z, 3 = W). It panics if
// i is out of range.
func (v Vec4[T]) Component(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("uv: vector component index out of range")
}

// XYZ truncates v to its first three components.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }
