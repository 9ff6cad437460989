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

// Projection matrix builders for right-handed view spaces with a 0..1 depth
// range (Vulkan/DirectX convention). These are plain formula lookups with no
// geometric derivation of their own.

// Mat4PerspectiveRH returns a right-handed perspective projection with
// depth mapped to [0, 1]. fovY is the vertical field of view in radians,
// aspect is width over height, and near/far are the positive clip-plane
// distances.
func Mat4PerspectiveRH[T Lane[T]](fovY, aspect, near, far T) Mat4[T] {
	var zero T
	one := splat[T](1)

	sin, cos := fovY.Mul(splat[T](0.5)).SinCos()
	tanHalf := sin.Div(cos)

	sy := one.Div(tanHalf)
	sx := sy.Div(aspect)
	nmf := near.Sub(far)

	return NewMat4(
		Vec4[T]{X: sx},
		Vec4[T]{Y: sy},
		Vec4[T]{Z: far.Div(nmf), W: one.Neg()},
		Vec4[T]{X: zero, Y: zero, Z: near.Mul(far).Div(nmf), W: zero},
	)
}

// Mat4OrthographicRH returns a right-handed orthographic projection with
// depth mapped to [0, 1].
func Mat4OrthographicRH[T Lane[T]](left, right, bottom, top, near, far T) Mat4[T] {
	two := splat[T](2)
	one := splat[T](1)

	rml := right.Sub(left)
	tmb := top.Sub(bottom)
	fmn := far.Sub(near)

	return NewMat4(
		Vec4[T]{X: two.Div(rml)},
		Vec4[T]{Y: two.Div(tmb)},
		Vec4[T]{Z: one.Div(fmn).Neg()},
		Vec4[T]{
			X: right.Add(left).Div(rml).Neg(),
			Y: top.Add(bottom).Div(tmb).Neg(),
			Z: near.Div(fmn).Neg(),
			W: one,
		},
	)
}
