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

// Bivec2 is an oriented-area value in 2D. There is only one plane in 2D, so
// a single component suffices; its sign encodes the orientation of the area.
type Bivec2[T Lane[T]] struct {
	XY T `json:"xy"`
}

// Bivec3 is an oriented-area value in 3D: a plane together with a rotation
// direction within it. A normalized bivector satisfies
// XY²+XZ²+YZ² == 1; several rotor constructors require one by contract.
type Bivec3[T Lane[T]] struct {
	XY T `json:"xy"`
	XZ T `json:"xz"`
	YZ T `json:"yz"`
}

type (
	Bivec2f = Bivec2[F32]
	Bivec3f = Bivec3[F32]

	Bivec2d = Bivec2[F64]
	Bivec3d = Bivec3[F64]

	Bivec2x8 = Bivec2[F32x8]
	Bivec3x8 = Bivec3[F32x8]
)

// NewBivec2 returns the bivector with component xy.
func NewBivec2[T Lane[T]](xy T) Bivec2[T] { return Bivec2[T]{XY: xy} }

// NewBivec3 returns the bivector with components (xy, xz, yz).
func NewBivec3[T Lane[T]](xy, xz, yz T) Bivec3[T] {
	return Bivec3[T]{XY: xy, XZ: xz, YZ: yz}
}

// NewBivec3f returns the float32 bivector with components (xy, xz, yz).
func NewBivec3f(xy, xz, yz float32) Bivec3f {
	return Bivec3f{XY: F32(xy), XZ: F32(xz), YZ: F32(yz)}
}

// Bivec2UnitXY returns the unit bivector in the xy plane.
func Bivec2UnitXY[T Lane[T]]() Bivec2[T] {
	return Bivec2[T]{XY: splat[T](1)}
}

// Bivec3UnitXY returns the unit bivector in the xy plane.
func Bivec3UnitXY[T Lane[T]]() Bivec3[T] {
	return Bivec3[T]{XY: splat[T](1)}
}

// Bivec3UnitXZ returns the unit bivector in the xz plane.
func Bivec3UnitXZ[T Lane[T]]() Bivec3[T] {
	return Bivec3[T]{XZ: splat[T](1)}
}

// Bivec3UnitYZ returns the unit bivector in the yz plane.
func Bivec3UnitYZ[T Lane[T]]() Bivec3[T] {
	return Bivec3[T]{YZ: splat[T](1)}
}

// Bivec3FromNormalizedAxis returns the plane dual to the given rotation
// axis, which must be normalized: the yz component takes the axis x
// component, xz takes y, and xy takes z.
func Bivec3FromNormalizedAxis[T Lane[T]](axis Vec3[T]) Bivec3[T] {
	return Bivec3[T]{XY: axis.Z, XZ: axis.Y, YZ: axis.X}
}

// Bivec2 operations.

func (b Bivec2[T]) Add(o Bivec2[T]) Bivec2[T] {
	return Bivec2[T]{XY: b.XY.Add(o.XY)}
}

func (b Bivec2[T]) Sub(o Bivec2[T]) Bivec2[T] {
	return Bivec2[T]{XY: b.XY.Sub(o.XY)}
}

func (b Bivec2[T]) Neg() Bivec2[T] {
	return Bivec2[T]{XY: b.XY.Neg()}
}

// CompMul multiplies componentwise.
func (b Bivec2[T]) CompMul(o Bivec2[T]) Bivec2[T] {
	return Bivec2[T]{XY: b.XY.Mul(o.XY)}
}

// CompDiv divides componentwise.
func (b Bivec2[T]) CompDiv(o Bivec2[T]) Bivec2[T] {
	return Bivec2[T]{XY: b.XY.Div(o.XY)}
}

// Scale multiplies the component by s.
func (b Bivec2[T]) Scale(s T) Bivec2[T] {
	return Bivec2[T]{XY: b.XY.Mul(s)}
}

// DivScalar divides the component by s.
func (b Bivec2[T]) DivScalar(s T) Bivec2[T] {
	return Bivec2[T]{XY: b.XY.Div(s)}
}

func (b Bivec2[T]) Dot(o Bivec2[T]) T {
	return b.XY.Mul(o.XY)
}

func (b Bivec2[T]) MagSq() T { return b.XY.Mul(b.XY) }

func (b Bivec2[T]) Mag() T { return b.XY.Abs() }

// Normalized returns b scaled to unit magnitude. Undefined for zero
// bivectors.
func (b Bivec2[T]) Normalized() Bivec2[T] {
	return b.DivScalar(b.Mag())
}

// Lerp linearly interpolates from b to end by t.
func (b Bivec2[T]) Lerp(end Bivec2[T], t T) Bivec2[T] {
	one := splat[T](1)
	return b.Scale(one.Sub(t)).Add(end.Scale(t))
}

// EqEps reports whether the component of b is within eps of o.
func (b Bivec2[T]) EqEps(o Bivec2[T], eps float64) bool {
	return b.XY.EqEps(o.XY, eps)
}

// Bivec3 operations.

func (b Bivec3[T]) Add(o Bivec3[T]) Bivec3[T] {
	return Bivec3[T]{b.XY.Add(o.XY), b.XZ.Add(o.XZ), b.YZ.Add(o.YZ)}
}

func (b Bivec3[T]) Sub(o Bivec3[T]) Bivec3[T] {
	return Bivec3[T]{b.XY.Sub(o.XY), b.XZ.Sub(o.XZ), b.YZ.Sub(o.YZ)}
}

func (b Bivec3[T]) Neg() Bivec3[T] {
	return Bivec3[T]{b.XY.Neg(), b.XZ.Neg(), b.YZ.Neg()}
}

// CompMul multiplies componentwise.
func (b Bivec3[T]) CompMul(o Bivec3[T]) Bivec3[T] {
	return Bivec3[T]{b.XY.Mul(o.XY), b.XZ.Mul(o.XZ), b.YZ.Mul(o.YZ)}
}

// CompDiv divides componentwise.
func (b Bivec3[T]) CompDiv(o Bivec3[T]) Bivec3[T] {
	return Bivec3[T]{b.XY.Div(o.XY), b.XZ.Div(o.XZ), b.YZ.Div(o.YZ)}
}

// Scale multiplies every component by s.
func (b Bivec3[T]) Scale(s T) Bivec3[T] {
	return Bivec3[T]{b.XY.Mul(s), b.XZ.Mul(s), b.YZ.Mul(s)}
}

// DivScalar divides every component by s.
func (b Bivec3[T]) DivScalar(s T) Bivec3[T] {
	return Bivec3[T]{b.XY.Div(s), b.XZ.Div(s), b.YZ.Div(s)}
}

func (b Bivec3[T]) Dot(o Bivec3[T]) T {
	return b.XY.MulAdd(o.XY, b.XZ.MulAdd(o.XZ, b.YZ.Mul(o.YZ)))
}

func (b Bivec3[T]) MagSq() T { return b.Dot(b) }

func (b Bivec3[T]) Mag() T { return b.MagSq().Sqrt() }

// Normalized returns b scaled to unit magnitude. Undefined for zero
// bivectors.
func (b Bivec3[T]) Normalized() Bivec3[T] {
	return b.DivScalar(b.Mag())
}

// Lerp linearly interpolates from b to end by t.
func (b Bivec3[T]) Lerp(end Bivec3[T], t T) Bivec3[T] {
	one := splat[T](1)
	return b.Scale(one.Sub(t)).Add(end.Scale(t))
}

// Slerp spherically interpolates from b to end by t. Both bivectors should
// be normalized. On scalar lanes, nearly parallel inputs fall back to Lerp;
// on wide lanes there is no fallback and exactly aligned inputs produce
// undefined results.
func (b Bivec3[T]) Slerp(end Bivec3[T], t T) Bivec3[T] {
	return slerpGeneric[Bivec3[T], T](b, end, t)
}

// EqEps reports whether every component of b is within eps of o.
func (b Bivec3[T]) EqEps(o Bivec3[T], eps float64) bool {
	return b.XY.EqEps(o.XY, eps) && b.XZ.EqEps(o.XZ, eps) && b.YZ.EqEps(o.YZ, eps)
}
