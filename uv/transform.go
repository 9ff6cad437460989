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

// Isometry2 is a rigid 2D transform: a rotation followed by a translation.
// Rotation should be normalized for TransformVec and Inversed to be correct.
type Isometry2[T Lane[T]] struct {
	Translation Vec2[T]   `json:"translation"`
	Rotation    Rotor2[T] `json:"rotation"`
}

// Isometry3 is a rigid 3D transform: a rotation followed by a translation.
// Rotation should be normalized for TransformVec and Inversed to be correct.
type Isometry3[T Lane[T]] struct {
	Translation Vec3[T]   `json:"translation"`
	Rotation    Rotor3[T] `json:"rotation"`
}

// Similarity2 is a 2D similarity transform: a uniform scale, then a
// rotation, then a translation.
type Similarity2[T Lane[T]] struct {
	Translation Vec2[T]   `json:"translation"`
	Rotation    Rotor2[T] `json:"rotation"`
	Scale       T         `json:"scale"`
}

// Similarity3 is a 3D similarity transform: a uniform scale, then a
// rotation, then a translation.
type Similarity3[T Lane[T]] struct {
	Translation Vec3[T]   `json:"translation"`
	Rotation    Rotor3[T] `json:"rotation"`
	Scale       T         `json:"scale"`
}

type (
	Isometry2f   = Isometry2[F32]
	Isometry3f   = Isometry3[F32]
	Similarity2f = Similarity2[F32]
	Similarity3f = Similarity3[F32]

	Isometry3d   = Isometry3[F64]
	Similarity3d = Similarity3[F64]

	Isometry3x8   = Isometry3[F32x8]
	Similarity3x8 = Similarity3[F32x8]
)

// NewIsometry2 returns the transform rotating by rotation then translating
// by translation.
func NewIsometry2[T Lane[T]](translation Vec2[T], rotation Rotor2[T]) Isometry2[T] {
	return Isometry2[T]{Translation: translation, Rotation: rotation}
}

// NewIsometry3 returns the transform rotating by rotation then translating
// by translation.
func NewIsometry3[T Lane[T]](translation Vec3[T], rotation Rotor3[T]) Isometry3[T] {
	return Isometry3[T]{Translation: translation, Rotation: rotation}
}

// Isometry2Identity returns the identity transform.
func Isometry2Identity[T Lane[T]]() Isometry2[T] {
	return Isometry2[T]{Rotation: Rotor2Identity[T]()}
}

// Isometry3Identity returns the identity transform.
func Isometry3Identity[T Lane[T]]() Isometry3[T] {
	return Isometry3[T]{Rotation: Rotor3Identity[T]()}
}

// NewSimilarity2 returns the transform scaling by scale, rotating by
// rotation, then translating by translation.
func NewSimilarity2[T Lane[T]](translation Vec2[T], rotation Rotor2[T], scale T) Similarity2[T] {
	return Similarity2[T]{Translation: translation, Rotation: rotation, Scale: scale}
}

// NewSimilarity3 returns the transform scaling by scale, rotating by
// rotation, then translating by translation.
func NewSimilarity3[T Lane[T]](translation Vec3[T], rotation Rotor3[T], scale T) Similarity3[T] {
	return Similarity3[T]{Translation: translation, Rotation: rotation, Scale: scale}
}

// Similarity2Identity returns the identity transform.
func Similarity2Identity[T Lane[T]]() Similarity2[T] {
	return Similarity2[T]{Rotation: Rotor2Identity[T](), Scale: splat[T](1)}
}

// Similarity3Identity returns the identity transform.
func Similarity3Identity[T Lane[T]]() Similarity3[T] {
	return Similarity3[T]{Rotation: Rotor3Identity[T](), Scale: splat[T](1)}
}

// Isometry2 operations.

// TransformVec applies the transform to v: rotation first, then
// translation.
func (iso Isometry2[T]) TransformVec(v Vec2[T]) Vec2[T] {
	return iso.Rotation.RotateVec(v).Add(iso.Translation)
}

// Compose returns the transform applying rhs first, then iso.
func (iso Isometry2[T]) Compose(rhs Isometry2[T]) Isometry2[T] {
	return Isometry2[T]{
		Translation: iso.Translation.Add(iso.Rotation.RotateVec(rhs.Translation)),
		Rotation:    iso.Rotation.Compose(rhs.Rotation),
	}
}

// Inversed returns the transform undoing iso. Rotation must be normalized.
func (iso Isometry2[T]) Inversed() Isometry2[T] {
	inv := iso.Rotation.Reversed()
	return Isometry2[T]{
		Translation: inv.RotateVec(iso.Translation.Neg()),
		Rotation:    inv,
	}
}

// Inverse inverts iso in place. See Inversed.
func (iso *Isometry2[T]) Inverse() {
	*iso = iso.Inversed()
}

// IntoHomogeneousMatrix returns the equivalent homogeneous 3x3 matrix.
func (iso Isometry2[T]) IntoHomogeneousMatrix() Mat3[T] {
	rot := iso.Rotation.IntoMatrix()
	return NewMat3(
		rot.Cols[0].IntoHomogeneousVector(),
		rot.Cols[1].IntoHomogeneousVector(),
		iso.Translation.IntoHomogeneousPoint(),
	)
}

// EqEps reports whether every component of iso is within eps of o.
func (iso Isometry2[T]) EqEps(o Isometry2[T], eps float64) bool {
	return iso.Translation.EqEps(o.Translation, eps) && iso.Rotation.EqEps(o.Rotation, eps)
}

// Isometry3 operations.

// TransformVec applies the transform to v: rotation first, then
// translation.
func (iso Isometry3[T]) TransformVec(v Vec3[T]) Vec3[T] {
	return iso.Rotation.RotateVec(v).Add(iso.Translation)
}

// Compose returns the transform applying rhs first, then iso.
func (iso Isometry3[T]) Compose(rhs Isometry3[T]) Isometry3[T] {
	return Isometry3[T]{
		Translation: iso.Translation.Add(iso.Rotation.RotateVec(rhs.Translation)),
		Rotation:    iso.Rotation.Compose(rhs.Rotation),
	}
}

// Inversed returns the transform undoing iso. Rotation must be normalized.
func (iso Isometry3[T]) Inversed() Isometry3[T] {
	inv := iso.Rotation.Reversed()
	return Isometry3[T]{
		Translation: inv.RotateVec(iso.Translation.Neg()),
		Rotation:    inv,
	}
}

// Inverse inverts iso in place. See Inversed.
func (iso *Isometry3[T]) Inverse() {
	*iso = iso.Inversed()
}

// IntoHomogeneousMatrix returns the equivalent homogeneous 4x4 matrix.
func (iso Isometry3[T]) IntoHomogeneousMatrix() Mat4[T] {
	rot := iso.Rotation.IntoMatrix()
	return NewMat4(
		rot.Cols[0].IntoHomogeneousVector(),
		rot.Cols[1].IntoHomogeneousVector(),
		rot.Cols[2].IntoHomogeneousVector(),
		iso.Translation.IntoHomogeneousPoint(),
	)
}

// EqEps reports whether every component of iso is within eps of o.
func (iso Isometry3[T]) EqEps(o Isometry3[T], eps float64) bool {
	return iso.Translation.EqEps(o.Translation, eps) && iso.Rotation.EqEps(o.Rotation, eps)
}

// Similarity2 operations.

// TransformVec applies the transform to v: scale first, then rotation, then
// translation.
func (sim Similarity2[T]) TransformVec(v Vec2[T]) Vec2[T] {
	return sim.Rotation.RotateVec(v.Scale(sim.Scale)).Add(sim.Translation)
}

// Compose returns the transform applying rhs first, then sim.
func (sim Similarity2[T]) Compose(rhs Similarity2[T]) Similarity2[T] {
	return Similarity2[T]{
		Translation: sim.Translation.Add(
			sim.Rotation.RotateVec(rhs.Translation.Scale(sim.Scale))),
		Rotation: sim.Rotation.Compose(rhs.Rotation),
		Scale:    sim.Scale.Mul(rhs.Scale),
	}
}

// Inversed returns the transform undoing sim. Rotation must be normalized
// and Scale nonzero.
func (sim Similarity2[T]) Inversed() Similarity2[T] {
	invScale := splat[T](1).Div(sim.Scale)
	invRot := sim.Rotation.Reversed()
	return Similarity2[T]{
		Translation: invRot.RotateVec(sim.Translation.Neg()).Scale(invScale),
		Rotation:    invRot,
		Scale:       invScale,
	}
}

// Inverse inverts sim in place. See Inversed.
func (sim *Similarity2[T]) Inverse() {
	*sim = sim.Inversed()
}

// IntoHomogeneousMatrix returns the equivalent homogeneous 3x3 matrix.
func (sim Similarity2[T]) IntoHomogeneousMatrix() Mat3[T] {
	rot := sim.Rotation.IntoMatrix()
	return NewMat3(
		rot.Cols[0].Scale(sim.Scale).IntoHomogeneousVector(),
		rot.Cols[1].Scale(sim.Scale).IntoHomogeneousVector(),
		sim.Translation.IntoHomogeneousPoint(),
	)
}

// EqEps reports whether every component of sim is within eps of o.
func (sim Similarity2[T]) EqEps(o Similarity2[T], eps float64) bool {
	return sim.Translation.EqEps(o.Translation, eps) &&
		sim.Rotation.EqEps(o.Rotation, eps) &&
		sim.Scale.EqEps(o.Scale, eps)
}

// Similarity3 operations.

// TransformVec applies the transform to v: scale first, then rotation, then
// translation.
func (sim Similarity3[T]) TransformVec(v Vec3[T]) Vec3[T] {
	return sim.Rotation.RotateVec(v.Scale(sim.Scale)).Add(sim.Translation)
}

// Compose returns the transform applying rhs first, then sim.
func (sim Similarity3[T]) Compose(rhs Similarity3[T]) Similarity3[T] {
	return Similarity3[T]{
		Translation: sim.Translation.Add(
			sim.Rotation.RotateVec(rhs.Translation.Scale(sim.Scale))),
		Rotation: sim.Rotation.Compose(rhs.Rotation),
		Scale:    sim.Scale.Mul(rhs.Scale),
	}
}

// Inversed returns the transform undoing sim. Rotation must be normalized
// and Scale nonzero.
func (sim Similarity3[T]) Inversed() Similarity3[T] {
	invScale := splat[T](1).Div(sim.Scale)
	invRot := sim.Rotation.Reversed()
	return Similarity3[T]{
		Translation: invRot.RotateVec(sim.Translation.Neg()).Scale(invScale),
		Rotation:    invRot,
		Scale:       invScale,
	}
}

// Inverse inverts sim in place. See Inversed.
func (sim *Similarity3[T]) Inverse() {
	*sim = sim.Inversed()
}

// IntoHomogeneousMatrix returns the equivalent homogeneous 4x4 matrix.
func (sim Similarity3[T]) IntoHomogeneousMatrix() Mat4[T] {
	rot := sim.Rotation.IntoMatrix()
	return NewMat4(
		rot.Cols[0].Scale(sim.Scale).IntoHomogeneousVector(),
		rot.Cols[1].Scale(sim.Scale).IntoHomogeneousVector(),
		rot.Cols[2].Scale(sim.Scale).IntoHomogeneousVector(),
		sim.Translation.IntoHomogeneousPoint(),
	)
}

// EqEps reports whether every component of sim is within eps of o.
func (sim Similarity3[T]) EqEps(o Similarity3[T], eps float64) bool {
	return sim.Translation.EqEps(o.Translation, eps) &&
		sim.Rotation.EqEps(o.Rotation, eps) &&
		sim.Scale.EqEps(o.Scale, eps)
}
