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

// spherical is the method set slerpGeneric needs: vectors, bivectors and
// rotors all satisfy it for their own type.
type spherical[S any, T Lane[T]] interface {
	Dot(S) T
	Add(S) S
	Sub(S) S
	Scale(T) S
	Normalized() S
	Lerp(S, T) S
}

// slerpGeneric interpolates from a to b along the great circle between them,
// at constant angular velocity. Both inputs must be normalized.
//
// On scalar lanes, a dot product above slerpDotThreshold short-circuits to
// Lerp: acos loses too much precision that close to 1 for the great-circle
// path to be worth computing. The wide lane kind reports NearOne as
// constant false, so wide slerp takes the full path unconditionally and
// exactly aligned inputs are a documented precondition violation (the
// orthonormal basis below degenerates to zero magnitude).
func slerpGeneric[S spherical[S, T], T Lane[T]](a, b S, t T) S {
	dot := a.Dot(b)
	if dot.NearOne() {
		return a.Lerp(b, t)
	}

	one := splat[T](1)
	robustDot := dot.Max(one.Neg()).Min(one)

	// Angle from a to the interpolated value.
	theta := robustDot.Acos().Mul(t)
	sin, cos := theta.SinCos()

	// Orthonormal basis in the plane spanned by a and b.
	basis := b.Sub(a.Scale(robustDot)).Normalized()

	return a.Scale(cos).Add(basis.Scale(sin))
}
