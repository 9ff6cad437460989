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
	"math"

	"github.com/chewxy/math32"
)

// slerpDotThreshold is the dot product above which two rotation-like values
// are considered near-parallel and Slerp falls back to Lerp on scalar lanes.
const slerpDotThreshold = 0.9995

// Lane is the capability set a numeric element must provide for the
// geometric types in this package. It is implemented once per lane kind:
// F32 and F64 carry a single float, F32x8 carries eight floats processed in
// lockstep.
//
// Every operation except Splat, EqEps and NearOne is purely per-lane: the
// wide kind must produce, in each lane, exactly the value the scalar kind
// would produce for that lane's inputs. No cross-lane data flow is permitted
// in the arithmetic operations.
type Lane[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T

	// MulAdd returns receiver*b + c with fused multiply-add semantics
	// (a single rounding step where the platform provides one).
	MulAdd(b, c T) T

	Sqrt() T
	Abs() T
	Min(T) T
	Max(T) T

	SinCos() (sin, cos T)
	Acos() T
	// Atan2 returns atan2(receiver, x), receiver being the y argument.
	Atan2(x T) T

	// Splat broadcasts v into every lane. The receiver value is ignored;
	// it exists only so constants can be built in generic code.
	Splat(v float64) T

	// EqEps reports approximate equality within eps. For the wide kind
	// this is an AND across lanes: true only if every lane is within eps.
	EqEps(other T, eps float64) bool

	// NearOne reports whether a dot product is close enough to one that
	// spherical interpolation should degrade to linear interpolation.
	// The wide kind always reports false: a lane-masked branch costs more
	// than the fallback saves, so wide Slerp never short-circuits.
	NearOne() bool
}

// splat builds a broadcast constant of lane type T.
func splat[T Lane[T]](v float64) T {
	var z T
	return z.Splat(v)
}

// fma32 is the float32 fused multiply-add used by both the scalar and wide
// float32 lane kinds, keeping their per-lane results identical.
func fma32(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}

// F32 is the single-precision scalar lane.
type F32 float32

func (a F32) Add(b F32) F32 { return a + b }
func (a F32) Sub(b F32) F32 { return a - b }
func (a F32) Mul(b F32) F32 { return a * b }
func (a F32) Div(b F32) F32 { return a / b }
func (a F32) Neg() F32      { return -a }

func (a F32) MulAdd(b, c F32) F32 {
	return F32(fma32(float32(a), float32(b), float32(c)))
}

func (a F32) Sqrt() F32 { return F32(math32.Sqrt(float32(a))) }
func (a F32) Abs() F32  { return F32(math32.Abs(float32(a))) }

func (a F32) Min(b F32) F32 {
	return F32(math32.Min(float32(a), float32(b)))
}

func (a F32) Max(b F32) F32 {
	return F32(math32.Max(float32(a), float32(b)))
}

func (a F32) SinCos() (sin, cos F32) {
	return F32(math32.Sin(float32(a))), F32(math32.Cos(float32(a)))
}

func (a F32) Acos() F32 { return F32(math32.Acos(float32(a))) }

func (a F32) Atan2(x F32) F32 {
	return F32(math32.Atan2(float32(a), float32(x)))
}

func (F32) Splat(v float64) F32 { return F32(v) }

func (a F32) EqEps(b F32, eps float64) bool {
	return math32.Abs(float32(a-b)) <= float32(eps)
}

func (a F32) NearOne() bool { return a > slerpDotThreshold }

// F64 is the double-precision scalar lane.
type F64 float64

func (a F64) Add(b F64) F64 { return a + b }
func (a F64) Sub(b F64) F64 { return a - b }
func (a F64) Mul(b F64) F64 { return a * b }
func (a F64) Div(b F64) F64 { return a / b }
func (a F64) Neg() F64      { return -a }

func (a F64) MulAdd(b, c F64) F64 {
	return F64(math.FMA(float64(a), float64(b), float64(c)))
}

func (a F64) Sqrt() F64 { return F64(math.Sqrt(float64(a))) }
func (a F64) Abs() F64  { return F64(math.Abs(float64(a))) }

func (a F64) Min(b F64) F64 {
	return F64(math.Min(float64(a), float64(b)))
}

func (a F64) Max(b F64) F64 {
	return F64(math.Max(float64(a), float64(b)))
}

func (a F64) SinCos() (sin, cos F64) {
	s, c := math.Sincos(float64(a))
	return F64(s), F64(c)
}

func (a F64) Acos() F64 { return F64(math.Acos(float64(a))) }

func (a F64) Atan2(x F64) F64 {
	return F64(math.Atan2(float64(a), float64(x)))
}

func (F64) Splat(v float64) F64 { return F64(v) }

func (a F64) EqEps(b F64, eps float64) bool {
	return math.Abs(float64(a-b)) <= eps
}

func (a F64) NearOne() bool { return a > slerpDotThreshold }
