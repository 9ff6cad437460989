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
	"errors"
	"math"
	"unsafe"
)

// Conversion boundary. This is the only fallible surface in the package:
// lossy numeric narrowing reports a closed error taxonomy, checked in the
// order NaN, infinity, range.
var (
	// ErrNaN reports an attempt to narrow a NaN.
	ErrNaN = errors.New("uv: cannot convert NaN")
	// ErrInfinite reports an attempt to narrow an infinity.
	ErrInfinite = errors.New("uv: cannot convert infinity")
	// ErrPosOverflow reports a finite value above the target type's range.
	ErrPosOverflow = errors.New("uv: value overflows target type")
	// ErrNegOverflow reports a finite value below the target type's range.
	ErrNegOverflow = errors.New("uv: value underflows target type")
)

// Int32FromFloat32 truncates v to an int32. The fractional part is
// discarded (rounding toward zero).
func Int32FromFloat32(v float32) (int32, error) {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return 0, ErrNaN
	case math.IsInf(f, 0):
		return 0, ErrInfinite
	case f >= math.MaxInt32+1:
		return 0, ErrPosOverflow
	case f < math.MinInt32:
		return 0, ErrNegOverflow
	}
	return int32(f), nil
}

// Int64FromFloat64 truncates v to an int64. The fractional part is
// discarded (rounding toward zero).
func Int64FromFloat64(v float64) (int64, error) {
	switch {
	case math.IsNaN(v):
		return 0, ErrNaN
	case math.IsInf(v, 0):
		return 0, ErrInfinite
	case v >= math.MaxInt64:
		// MaxInt64 itself is not exactly representable; the nearest
		// float64 at or above it already overflows.
		return 0, ErrPosOverflow
	case v < math.MinInt64:
		return 0, ErrNegOverflow
	}
	return int64(v), nil
}

// Array and slice interchange.

// IntoArray returns the components of v in declaration order.
func (v Vec2[T]) IntoArray() [2]T { return [2]T{v.X, v.Y} }

// IntoArray returns the components of v in declaration order.
func (v Vec3[T]) IntoArray() [3]T { return [3]T{v.X, v.Y, v.Z} }

// IntoArray returns the components of v in declaration order.
func (v Vec4[T]) IntoArray() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }

// IntoArray returns the components of b in declaration order.
func (b Bivec3[T]) IntoArray() [3]T { return [3]T{b.XY, b.XZ, b.YZ} }

// Vec2FromArray builds a vector from components in declaration order.
func Vec2FromArray[T Lane[T]](a [2]T) Vec2[T] { return Vec2[T]{a[0], a[1]} }

// Vec3FromArray builds a vector from components in declaration order.
func Vec3FromArray[T Lane[T]](a [3]T) Vec3[T] { return Vec3[T]{a[0], a[1], a[2]} }

// Vec4FromArray builds a vector from components in declaration order.
func Vec4FromArray[T Lane[T]](a [4]T) Vec4[T] {
	return Vec4[T]{a[0], a[1], a[2], a[3]}
}

// Bivec3FromArray builds a bivector from components in declaration order.
func Bivec3FromArray[T Lane[T]](a [3]T) Bivec3[T] {
	return Bivec3[T]{XY: a[0], XZ: a[1], YZ: a[2]}
}

// Raw memory views. Each type's in-memory layout is exactly its field
// declaration order with no padding: every field is the same lane type, so
// Go inserts none. The returned slice aliases the value; it is valid only
// while the value is.

func bytesOf[V any](p *V) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), int(unsafe.Sizeof(*p)))
}

// Bytes returns a byte view of v's packed components, for zero-copy
// interchange with graphics APIs.
func (v *Vec2[T]) Bytes() []byte { return bytesOf(v) }

// Bytes returns a byte view of v's packed components, for zero-copy
// interchange with graphics APIs.
func (v *Vec3[T]) Bytes() []byte { return bytesOf(v) }

// Bytes returns a byte view of v's packed components, for zero-copy
// interchange with graphics APIs.
func (v *Vec4[T]) Bytes() []byte { return bytesOf(v) }

// Bytes returns a byte view of b's packed components.
func (b *Bivec2[T]) Bytes() []byte { return bytesOf(b) }

// Bytes returns a byte view of b's packed components.
func (b *Bivec3[T]) Bytes() []byte { return bytesOf(b) }

// Bytes returns a byte view of r's packed components, scalar part first.
func (r *Rotor2[T]) Bytes() []byte { return bytesOf(r) }

// Bytes returns a byte view of r's packed components, scalar part first.
func (r *Rotor3[T]) Bytes() []byte { return bytesOf(r) }

// Bytes returns a byte view of m's entries, column-major.
func (m *Mat2[T]) Bytes() []byte { return bytesOf(m) }

// Bytes returns a byte view of m's entries, column-major.
func (m *Mat3[T]) Bytes() []byte { return bytesOf(m) }

// Bytes returns a byte view of m's entries, column-major.
func (m *Mat4[T]) Bytes() []byte { return bytesOf(m) }
