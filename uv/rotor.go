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

// Rotor2 represents a rotation in 2D as a scalar plus a bivector, the
// geometric product of two unit vectors.
//
// A normalized rotor satisfies S² + Bv·Bv == 1. Applying or composing an
// unnormalized rotor produces undefined results; this is a documented
// precondition, never checked at runtime.
type Rotor2[T Lane[T]] struct {
	S  T         `json:"s"`
	Bv Bivec2[T] `json:"bv"`
}

// Rotor3 represents a rotation in 3D as a scalar plus a bivector. It is the
// geometric-algebra counterpart of a quaternion: instead of an axis it
// stores the plane the rotation happens in, which is what actually
// generalizes across dimensions.
//
// A normalized rotor satisfies S² + Bv·Bv == 1. Applying or composing an
// unnormalized rotor produces undefined results; this is a documented
// precondition, never checked at runtime.
type Rotor3[T Lane[T]] struct {
	S  T         `json:"s"`
	Bv Bivec3[T] `json:"bv"`
}

type (
	Rotor2f = Rotor2[F32]
	Rotor3f = Rotor3[F32]

	Rotor2d = Rotor2[F64]
	Rotor3d = Rotor3[F64]

	Rotor2x8 = Rotor2[F32x8]
	Rotor3x8 = Rotor3[F32x8]
)

// NewRotor2 returns the rotor with scalar part s and bivector part bv.
func NewRotor2[T Lane[T]](s T, bv Bivec2[T]) Rotor2[T] {
	return Rotor2[T]{S: s, Bv: bv}
}

// NewRotor3 returns the rotor with scalar part s and bivector part bv.
func NewRotor3[T Lane[T]](s T, bv Bivec3[T]) Rotor3[T] {
	return Rotor3[T]{S: s, Bv: bv}
}

// Rotor2Identity returns the rotor that performs no rotation.
func Rotor2Identity[T Lane[T]]() Rotor2[T] {
	return Rotor2[T]{S: splat[T](1)}
}

// Rotor3Identity returns the rotor that performs no rotation.
func Rotor3Identity[T Lane[T]]() Rotor3[T] {
	return Rotor3[T]{S: splat[T](1)}
}

// Rotor2FromAngle returns a rotor by angle radians in the xy plane. Positive
// angles rotate +x toward +y.
func Rotor2FromAngle[T Lane[T]](angle T) Rotor2[T] {
	half := angle.Mul(splat[T](0.5))
	sin, cos := half.SinCos()
	return Rotor2[T]{S: cos, Bv: Bivec2[T]{XY: sin.Neg()}}
}

// Rotor2FromAnglePlane returns a rotor by angle radians in the given plane,
// which must be normalized.
//
// Rotors apply by a double-sided sandwich product, so the half angle is
// baked in here: the conjugation doubles the effective rotation.
func Rotor2FromAnglePlane[T Lane[T]](angle T, plane Bivec2[T]) Rotor2[T] {
	half := angle.Mul(splat[T](0.5))
	sin, cos := half.SinCos()
	return Rotor2[T]{S: cos, Bv: plane.Scale(sin.Neg())}
}

// Rotor2FromRotationBetween returns the rotor that takes from onto to. Both
// vectors must be normalized. Undefined for antiparallel inputs: the sum
// used for normalization degenerates to zero.
func Rotor2FromRotationBetween[T Lane[T]](from, to Vec2[T]) Rotor2[T] {
	r := Rotor2[T]{
		S:  splat[T](1).Add(to.Dot(from)),
		Bv: to.Wedge(from),
	}
	return r.Normalized()
}

// Rotor3FromAnglePlane returns a rotor by angle radians in the given plane,
// which must be normalized.
//
// Rotors apply by a double-sided sandwich product, so the half angle is
// baked in here: the conjugation doubles the effective rotation.
func Rotor3FromAnglePlane[T Lane[T]](angle T, plane Bivec3[T]) Rotor3[T] {
	half := angle.Mul(splat[T](0.5))
	sin, cos := half.SinCos()
	return Rotor3[T]{S: cos, Bv: plane.Scale(sin.Neg())}
}

// Rotor3FromRotationXY returns a rotor by angle radians in the xy plane.
func Rotor3FromRotationXY[T Lane[T]](angle T) Rotor3[T] {
	return Rotor3FromAnglePlane(angle, Bivec3UnitXY[T]())
}

// Rotor3FromRotationXZ returns a rotor by angle radians in the xz plane.
func Rotor3FromRotationXZ[T Lane[T]](angle T) Rotor3[T] {
	return Rotor3FromAnglePlane(angle, Bivec3UnitXZ[T]())
}

// Rotor3FromRotationYZ returns a rotor by angle radians in the yz plane.
func Rotor3FromRotationYZ[T Lane[T]](angle T) Rotor3[T] {
	return Rotor3FromAnglePlane(angle, Bivec3UnitYZ[T]())
}

// Rotor3FromRotationBetween returns the rotor that takes from onto to. Both
// vectors must be normalized. Undefined for antiparallel inputs: the sum
// used for normalization degenerately cancels to zero.
func Rotor3FromRotationBetween[T Lane[T]](from, to Vec3[T]) Rotor3[T] {
	r := Rotor3[T]{
		S:  splat[T](1).Add(to.Dot(from)),
		Bv: to.Wedge(from),
	}
	return r.Normalized()
}

// Rotor3FromEulerAngles returns a rotor from Euler angles: roll is applied
// first in the xy plane, then pitch in the yz plane, then yaw in the xz
// plane. The left operand of Compose applies last, hence the order below.
func Rotor3FromEulerAngles[T Lane[T]](roll, pitch, yaw T) Rotor3[T] {
	return Rotor3FromAnglePlane(yaw, Bivec3UnitXZ[T]()).
		Compose(Rotor3FromAnglePlane(pitch, Bivec3UnitYZ[T]())).
		Compose(Rotor3FromAnglePlane(roll, Bivec3UnitXY[T]()))
}

// Rotor3FromQuaternionArray builds a rotor from quaternion components
// [x, y, z, w]. The mapping is a pure relabeling with sign flips, so
// round-tripping through IntoQuaternionArray is bit-exact.
func Rotor3FromQuaternionArray[T Lane[T]](q [4]T) Rotor3[T] {
	return Rotor3[T]{
		S:  q[3],
		Bv: Bivec3[T]{XY: q[2].Neg(), XZ: q[1], YZ: q[0].Neg()},
	}
}

// Rotor2 operations.

// Compose returns the rotor equivalent to applying rhs first, then r.
// Composition is the rotor (geometric) product and does not commute.
func (r Rotor2[T]) Compose(rhs Rotor2[T]) Rotor2[T] {
	return Rotor2[T]{
		S:  r.S.Mul(rhs.S).Sub(r.Bv.XY.Mul(rhs.Bv.XY)),
		Bv: Bivec2[T]{XY: r.S.Mul(rhs.Bv.XY).Add(r.Bv.XY.Mul(rhs.S))},
	}
}

// RotateVec applies r to v by the double-sided sandwich product, expanded
// into closed form. r must be normalized.
func (r Rotor2[T]) RotateVec(v Vec2[T]) Vec2[T] {
	fx := r.S.Mul(v.X).Add(r.Bv.XY.Mul(v.Y))
	fy := r.S.Mul(v.Y).Sub(r.Bv.XY.Mul(v.X))

	return Vec2[T]{
		X: r.S.Mul(fx).Add(r.Bv.XY.Mul(fy)),
		Y: r.S.Mul(fy).Sub(r.Bv.XY.Mul(fx)),
	}
}

// RotateVecs applies r to every vector of vs in place. r must be
// normalized.
func (r Rotor2[T]) RotateVecs(vs []Vec2[T]) {
	for i := range vs {
		vs[i] = r.RotateVec(vs[i])
	}
}

// RotatedBy conjugates r by other: the plane of r is carried through the
// rotation other performs. This rotates a rotation; it is not composition.
func (r Rotor2[T]) RotatedBy(other Rotor2[T]) Rotor2[T] {
	return other.Compose(r).Compose(other.Reversed())
}

// RotateBy is the in-place form of RotatedBy.
func (r *Rotor2[T]) RotateBy(other Rotor2[T]) {
	*r = r.RotatedBy(other)
}

// Reversed returns the reverse (conjugate) of r: the bivector part negated.
// For a normalized rotor this is the inverse rotation.
func (r Rotor2[T]) Reversed() Rotor2[T] {
	return Rotor2[T]{S: r.S, Bv: r.Bv.Neg()}
}

// Reverse negates the bivector part in place. See Reversed.
func (r *Rotor2[T]) Reverse() {
	r.Bv = r.Bv.Neg()
}

func (r Rotor2[T]) Dot(o Rotor2[T]) T {
	return r.S.MulAdd(o.S, r.Bv.Dot(o.Bv))
}

func (r Rotor2[T]) MagSq() T { return r.Dot(r) }

func (r Rotor2[T]) Mag() T { return r.MagSq().Sqrt() }

// Normalized returns r scaled to unit magnitude.
func (r Rotor2[T]) Normalized() Rotor2[T] {
	mag := r.Mag()
	return Rotor2[T]{S: r.S.Div(mag), Bv: r.Bv.DivScalar(mag)}
}

// Normalize scales r to unit magnitude in place.
func (r *Rotor2[T]) Normalize() {
	*r = r.Normalized()
}

// Add returns the component-wise sum. The result is generally not
// normalized; it is a building block for interpolation.
func (r Rotor2[T]) Add(o Rotor2[T]) Rotor2[T] {
	return Rotor2[T]{S: r.S.Add(o.S), Bv: r.Bv.Add(o.Bv)}
}

// Sub returns the component-wise difference.
func (r Rotor2[T]) Sub(o Rotor2[T]) Rotor2[T] {
	return Rotor2[T]{S: r.S.Sub(o.S), Bv: r.Bv.Sub(o.Bv)}
}

// Scale multiplies every component by s.
func (r Rotor2[T]) Scale(s T) Rotor2[T] {
	return Rotor2[T]{S: r.S.Mul(s), Bv: r.Bv.Scale(s)}
}

// DivScalar divides every component by s.
func (r Rotor2[T]) DivScalar(s T) Rotor2[T] {
	return Rotor2[T]{S: r.S.Div(s), Bv: r.Bv.DivScalar(s)}
}

// IntoAnglePlane extracts the rotation angle in [0, 2π) and the normalized
// plane of r, which must be normalized.
func (r Rotor2[T]) IntoAnglePlane() (angle T, plane Bivec2[T]) {
	half := r.Bv.Mag().Atan2(r.S)
	return half.Mul(splat[T](2)), r.Bv.Normalized().Neg()
}

// ScaledBy returns a rotor with the same plane and the angle multiplied by
// t. r must be normalized.
func (r Rotor2[T]) ScaledBy(t T) Rotor2[T] {
	angle, plane := r.IntoAnglePlane()
	return Rotor2FromAnglePlane(angle.Mul(t), plane)
}

// IntoMatrix converts r, which must be normalized, to a rotation matrix.
func (r Rotor2[T]) IntoMatrix() Mat2[T] {
	s2mb2 := r.S.Mul(r.S).Sub(r.Bv.XY.Mul(r.Bv.XY))
	two := splat[T](2)
	sb2 := two.Mul(r.S).Mul(r.Bv.XY)

	return Mat2[T]{Cols: [2]Vec2[T]{
		{X: s2mb2, Y: sb2.Neg()},
		{X: sb2, Y: s2mb2},
	}}
}

// Lerp linearly interpolates the components of r toward end by t. The
// result is not unit length; re-normalize before using it as a rotation.
func (r Rotor2[T]) Lerp(end Rotor2[T], t T) Rotor2[T] {
	one := splat[T](1)
	return r.Scale(one.Sub(t)).Add(end.Scale(t))
}

// Slerp interpolates from r to end at constant angular velocity. Both
// rotors must be normalized. On scalar lanes, nearly parallel inputs fall
// back to Lerp; on wide lanes there is no fallback and exactly aligned
// inputs produce undefined results.
func (r Rotor2[T]) Slerp(end Rotor2[T], t T) Rotor2[T] {
	return slerpGeneric[Rotor2[T], T](r, end, t)
}

// EqEps reports whether every component of r is within eps of o.
func (r Rotor2[T]) EqEps(o Rotor2[T], eps float64) bool {
	return r.S.EqEps(o.S, eps) && r.Bv.EqEps(o.Bv, eps)
}

// Rotor3 operations.

// Compose returns the rotor equivalent to applying rhs first, then r.
// Composition is the rotor (geometric) product and does not commute. It is
// a distinct operation from RotatedBy, which conjugates instead.
func (r Rotor3[T]) Compose(rhs Rotor3[T]) Rotor3[T] {
	s := r.S.Mul(rhs.S).
		Sub(r.Bv.XY.Mul(rhs.Bv.XY)).
		Sub(r.Bv.XZ.Mul(rhs.Bv.XZ)).
		Sub(r.Bv.YZ.Mul(rhs.Bv.YZ))

	xy := r.Bv.XY.Mul(rhs.S).Add(r.S.Mul(rhs.Bv.XY)).
		Add(r.Bv.YZ.Mul(rhs.Bv.XZ)).Sub(r.Bv.XZ.Mul(rhs.Bv.YZ))

	xz := r.Bv.XZ.Mul(rhs.S).Add(r.S.Mul(rhs.Bv.XZ)).
		Sub(r.Bv.YZ.Mul(rhs.Bv.XY)).Add(r.Bv.XY.Mul(rhs.Bv.YZ))

	yz := r.Bv.YZ.Mul(rhs.S).Add(r.S.Mul(rhs.Bv.YZ)).
		Add(r.Bv.XZ.Mul(rhs.Bv.XY)).Sub(r.Bv.XY.Mul(rhs.Bv.XZ))

	return Rotor3[T]{S: s, Bv: Bivec3[T]{XY: xy, XZ: xz, YZ: yz}}
}

// RotateVec applies r to v by the double-sided sandwich product, expanded
// into closed form so the two geometric products are never materialized.
// r must be normalized.
func (r Rotor3[T]) RotateVec(v Vec3[T]) Vec3[T] {
	// First half of the sandwich: the vector and trivector parts of r*v.
	fx := r.S.Mul(v.X).Add(r.Bv.XY.Mul(v.Y)).Add(r.Bv.XZ.Mul(v.Z))
	fy := r.S.Mul(v.Y).Sub(r.Bv.XY.Mul(v.X)).Add(r.Bv.YZ.Mul(v.Z))
	fz := r.S.Mul(v.Z).Sub(r.Bv.XZ.Mul(v.X)).Sub(r.Bv.YZ.Mul(v.Y))
	fw := r.Bv.XY.Mul(v.Z).Sub(r.Bv.XZ.Mul(v.Y)).Add(r.Bv.YZ.Mul(v.X))

	return Vec3[T]{
		X: r.S.Mul(fx).Add(r.Bv.XY.Mul(fy)).Add(r.Bv.XZ.Mul(fz)).Add(r.Bv.YZ.Mul(fw)),
		Y: r.S.Mul(fy).Sub(r.Bv.XY.Mul(fx)).Sub(r.Bv.XZ.Mul(fw)).Add(r.Bv.YZ.Mul(fz)),
		Z: r.S.Mul(fz).Add(r.Bv.XY.Mul(fw)).Sub(r.Bv.XZ.Mul(fx)).Sub(r.Bv.YZ.Mul(fy)),
	}
}

// RotateVecs applies r to every vector of vs in place. The nine matrix
// entries of the rotation are computed once and shared across the batch,
// so setup is constant and each vector costs one matrix apply. r must be
// normalized.
func (r Rotor3[T]) RotateVecs(vs []Vec3[T]) {
	m := r.IntoMatrix()
	for i := range vs {
		vs[i] = m.MulVec(vs[i])
	}
}

// RotatedBy conjugates r by other: the plane of r is carried through the
// rotation other performs. This rotates a rotation; it is not composition.
func (r Rotor3[T]) RotatedBy(other Rotor3[T]) Rotor3[T] {
	return other.Compose(r).Compose(other.Reversed())
}

// RotateBy is the in-place form of RotatedBy.
func (r *Rotor3[T]) RotateBy(other Rotor3[T]) {
	*r = r.RotatedBy(other)
}

// Reversed returns the reverse (conjugate) of r: the bivector part negated.
// For a normalized rotor this is the inverse rotation.
func (r Rotor3[T]) Reversed() Rotor3[T] {
	return Rotor3[T]{S: r.S, Bv: r.Bv.Neg()}
}

// Reverse negates the bivector part in place. See Reversed.
func (r *Rotor3[T]) Reverse() {
	r.Bv = r.Bv.Neg()
}

func (r Rotor3[T]) Dot(o Rotor3[T]) T {
	return r.S.MulAdd(o.S, r.Bv.Dot(o.Bv))
}

func (r Rotor3[T]) MagSq() T { return r.Dot(r) }

func (r Rotor3[T]) Mag() T { return r.MagSq().Sqrt() }

// Normalized returns r scaled to unit magnitude.
func (r Rotor3[T]) Normalized() Rotor3[T] {
	mag := r.Mag()
	return Rotor3[T]{S: r.S.Div(mag), Bv: r.Bv.DivScalar(mag)}
}

// Normalize scales r to unit magnitude in place.
func (r *Rotor3[T]) Normalize() {
	*r = r.Normalized()
}

// Add returns the component-wise sum. The result is generally not
// normalized; it is a building block for interpolation.
func (r Rotor3[T]) Add(o Rotor3[T]) Rotor3[T] {
	return Rotor3[T]{S: r.S.Add(o.S), Bv: r.Bv.Add(o.Bv)}
}

// Sub returns the component-wise difference.
func (r Rotor3[T]) Sub(o Rotor3[T]) Rotor3[T] {
	return Rotor3[T]{S: r.S.Sub(o.S), Bv: r.Bv.Sub(o.Bv)}
}

// Scale multiplies every component by s.
func (r Rotor3[T]) Scale(s T) Rotor3[T] {
	return Rotor3[T]{S: r.S.Mul(s), Bv: r.Bv.Scale(s)}
}

// DivScalar divides every component by s.
func (r Rotor3[T]) DivScalar(s T) Rotor3[T] {
	return Rotor3[T]{S: r.S.Div(s), Bv: r.Bv.DivScalar(s)}
}

// IntoAnglePlane extracts the rotation angle in [0, 2π) and the normalized
// plane of r, which must be normalized. The half angle recovered by atan2
// lies in [0, π), so the plane carries the orientation.
func (r Rotor3[T]) IntoAnglePlane() (angle T, plane Bivec3[T]) {
	half := r.Bv.Mag().Atan2(r.S)
	return half.Mul(splat[T](2)), r.Bv.Normalized().Neg()
}

// ScaledBy returns a rotor with the same plane and the angle multiplied by
// t. r must be normalized.
func (r Rotor3[T]) ScaledBy(t T) Rotor3[T] {
	angle, plane := r.IntoAnglePlane()
	return Rotor3FromAnglePlane(angle.Mul(t), plane)
}

// IntoMatrix converts r, which must be normalized, to an orthonormal
// rotation matrix.
func (r Rotor3[T]) IntoMatrix() Mat3[T] {
	s2 := r.S.Mul(r.S)
	bxy2 := r.Bv.XY.Mul(r.Bv.XY)
	bxz2 := r.Bv.XZ.Mul(r.Bv.XZ)
	byz2 := r.Bv.YZ.Mul(r.Bv.YZ)

	sBxy := r.S.Mul(r.Bv.XY)
	sBxz := r.S.Mul(r.Bv.XZ)
	sByz := r.S.Mul(r.Bv.YZ)
	bxyBxz := r.Bv.XY.Mul(r.Bv.XZ)
	bxyByz := r.Bv.XY.Mul(r.Bv.YZ)
	bxzByz := r.Bv.XZ.Mul(r.Bv.YZ)

	two := splat[T](2)

	return Mat3[T]{Cols: [3]Vec3[T]{
		{
			X: s2.Sub(bxy2).Sub(bxz2).Add(byz2),
			Y: two.Mul(bxzByz.Add(sBxy)).Neg(),
			Z: two.Mul(bxyByz.Sub(sBxz)),
		},
		{
			X: two.Mul(sBxy.Sub(bxzByz)),
			Y: s2.Sub(bxy2).Add(bxz2).Sub(byz2),
			Z: two.Mul(sByz.Add(bxyBxz)).Neg(),
		},
		{
			X: two.Mul(sBxz.Add(bxyByz)),
			Y: two.Mul(sByz.Sub(bxyBxz)),
			Z: s2.Add(bxy2).Sub(bxz2).Sub(byz2),
		},
	}}
}

// IntoQuaternionArray converts r to quaternion components [x, y, z, w].
// The mapping is a pure relabeling with sign flips; no arithmetic error is
// introduced and the round trip through Rotor3FromQuaternionArray is
// bit-exact.
func (r Rotor3[T]) IntoQuaternionArray() [4]T {
	return [4]T{r.Bv.YZ.Neg(), r.Bv.XZ, r.Bv.XY.Neg(), r.S}
}

// Lerp linearly interpolates the components of r toward end by t. The
// result is not unit length; re-normalize before using it as a rotation.
func (r Rotor3[T]) Lerp(end Rotor3[T], t T) Rotor3[T] {
	one := splat[T](1)
	return r.Scale(one.Sub(t)).Add(end.Scale(t))
}

// Slerp interpolates from r to end at constant angular velocity. Both
// rotors must be normalized. On scalar lanes, nearly parallel inputs fall
// back to Lerp; on wide lanes there is no fallback and exactly aligned
// inputs produce undefined results.
func (r Rotor3[T]) Slerp(end Rotor3[T], t T) Rotor3[T] {
	return slerpGeneric[Rotor3[T], T](r, end, t)
}

// EqEps reports whether every component of r is within eps of o.
func (r Rotor3[T]) EqEps(o Rotor3[T], eps float64) bool {
	return r.S.EqEps(o.S, eps) && r.Bv.EqEps(o.Bv, eps)
}
