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

import "github.com/chewxy/math32"

// F32x8 is the wide single-precision lane: eight float32 values processed in
// lockstep. The arithmetic bodies are plain fixed-length loops over the
// array, the shape the Go compiler auto-vectorizes; they share their
// per-lane helpers with F32 so both kinds produce identical results lane for
// lane.
type F32x8 [8]float32

// F32x8Splat returns an F32x8 with every lane set to v.
func F32x8Splat(v float32) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = v
	}
	return r
}

func (a F32x8) Add(b F32x8) F32x8 {
	var r F32x8
	for i := range a {
		r[i] = a[i] + b[i]
	}
	return r
}

func (a F32x8) Sub(b F32x8) F32x8 {
	var r F32x8
	for i := range a {
		r[i] = a[i] - b[i]
	}
	return r
}

func (a F32x8) Mul(b F32x8) F32x8 {
	var r F32x8
	for i := range a {
		r[i] = a[i] * b[i]
	}
	return r
}

func (a F32x8) Div(b F32x8) F32x8 {
	var r F32x8
	for i := range a {
		r[i] = a[i] / b[i]
	}
	return r
}

func (a F32x8) Neg() F32x8 {
	var r F32x8
	for i := range a {
		r[i] = -a[i]
	}
	return r
}

func (a F32x8) MulAdd(b, c F32x8) F32x8 {
	var r F32x8
	for i := range a {
		r[i] = fma32(a[i], b[i], c[i])
	}
	return r
}

func (a F32x8) Sqrt() F32x8 {
	var r F32x8
	for i := range a {
		r[i] = math32.Sqrt(a[i])
	}
	return r
}

func (a F32x8) Abs() F32x8 {
	var r F32x8
	for i := range a {
		r[i] = math32.Abs(a[i])
	}
	return r
}

func (a F32x8) Min(b F32x8) F32x8 {
	var r F32x8
	for i := range a {
		r[i] = math32.Min(a[i], b[i])
	}
	return r
}

func (a F32x8) Max(b F32x8) F32x8 {
	var r F32x8
	for i := range a {
		r[i] = math32.Max(a[i], b[i])
	}
	return r
}

func (a F32x8) SinCos() (sin, cos F32x8) {
	for i := range a {
		sin[i] = math32.Sin(a[i])
		cos[i] = math32.Cos(a[i])
	}
	return sin, cos
}

func (a F32x8) Acos() F32x8 {
	var r F32x8
	for i := range a {
		r[i] = math32.Acos(a[i])
	}
	return r
}

func (a F32x8) Atan2(x F32x8) F32x8 {
	var r F32x8
	for i := range a {
		r[i] = math32.Atan2(a[i], x[i])
	}
	return r
}

func (F32x8) Splat(v float64) F32x8 { return F32x8Splat(float32(v)) }

// EqEps reports whether every lane of a is within eps of the matching lane
// of b.
func (a F32x8) EqEps(b F32x8, eps float64) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > float32(eps) {
			return false
		}
	}
	return true
}

// NearOne always reports false for the wide kind: Slerp over wide lanes
// never takes the linear fallback, so callers must not pass exactly aligned
// inputs (the orthonormal basis degenerates and the result is undefined).
func (F32x8) NearOne() bool { return false }

// Lane extracts lane i. It panics if i is out of range.
func (a F32x8) Lane(i int) float32 { return a[i] }

// WithLane returns a copy of a with lane i replaced by v. It panics if i is
// out of range.
func (a F32x8) WithLane(i int, v float32) F32x8 {
	a[i] = v
	return a
}
