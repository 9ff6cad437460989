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
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt32FromFloat32(t *testing.T) {
	tests := []struct {
		name    string
		in      float32
		want    int32
		wantErr error
	}{
		{"zero", 0, 0, nil},
		{"truncates toward zero", 3.9, 3, nil},
		{"negative truncates toward zero", -3.9, -3, nil},
		{"nan", float32(math.NaN()), 0, ErrNaN},
		{"positive inf", float32(math.Inf(1)), 0, ErrInfinite},
		{"negative inf", float32(math.Inf(-1)), 0, ErrInfinite},
		{"above range", 3e9, 0, ErrPosOverflow},
		{"below range", -3e9, 0, ErrNegOverflow},
		{"min exactly", math.MinInt32, math.MinInt32, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Int32FromFloat32(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInt64FromFloat64(t *testing.T) {
	if _, err := Int64FromFloat64(math.NaN()); !assert.ErrorIs(t, err, ErrNaN) {
		return
	}
	if _, err := Int64FromFloat64(math.Inf(1)); !assert.ErrorIs(t, err, ErrInfinite) {
		return
	}

	// MaxInt64 is not exactly representable as float64; the nearest value
	// at or above it must overflow rather than wrap.
	_, err := Int64FromFloat64(float64(math.MaxInt64))
	assert.ErrorIs(t, err, ErrPosOverflow)

	// MinInt64 is a power of two and round-trips exactly.
	got, err := Int64FromFloat64(float64(math.MinInt64))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), got)

	got, err = Int64FromFloat64(-1.5e18)
	require.NoError(t, err)
	assert.Equal(t, int64(-1.5e18), got)
}

func TestArrayRoundTrip(t *testing.T) {
	v3 := NewVec3f(1, 2, 3)
	assert.Equal(t, [3]F32{1, 2, 3}, v3.IntoArray())
	assert.Equal(t, v3, Vec3FromArray(v3.IntoArray()))

	v2 := NewVec2f(4, 5)
	assert.Equal(t, v2, Vec2FromArray(v2.IntoArray()))

	v4 := NewVec4f(1, 2, 3, 4)
	assert.Equal(t, v4, Vec4FromArray(v4.IntoArray()))

	b := NewBivec3f(6, 7, 8)
	assert.Equal(t, [3]F32{6, 7, 8}, b.IntoArray())
	assert.Equal(t, b, Bivec3FromArray(b.IntoArray()))
}

func TestBytesLayout(t *testing.T) {
	v := NewVec3f(1, 2, 3)
	raw := v.Bytes()
	require.Len(t, raw, 12)

	for i, want := range []float32{1, 2, 3} {
		got := math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
		assert.Equal(t, want, got, "component %d", i)
	}

	// The view aliases the value.
	v.X = 9
	got := math.Float32frombits(binary.LittleEndian.Uint32(raw))
	assert.Equal(t, float32(9), got)
}

func TestBytesLengths(t *testing.T) {
	var (
		v2 Vec2f
		v4 Vec4f
		b3 Bivec3f
		r3 Rotor3f
		m3 Mat3f
		m4 Mat4f
	)
	assert.Len(t, v2.Bytes(), 8)
	assert.Len(t, v4.Bytes(), 16)
	assert.Len(t, b3.Bytes(), 12)
	assert.Len(t, r3.Bytes(), 16)
	assert.Len(t, m3.Bytes(), 36)
	assert.Len(t, m4.Bytes(), 64)

	var vd Vec3d
	assert.Len(t, vd.Bytes(), 24)

	var vw Vec3x8
	assert.Len(t, vw.Bytes(), 96)
}

func TestMatBytesColumnMajor(t *testing.T) {
	m := NewMat2(NewVec2f(1, 2), NewVec2f(3, 4))
	raw := m.Bytes()
	require.Len(t, raw, 16)

	for i, want := range []float32{1, 2, 3, 4} {
		got := math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
		assert.Equal(t, want, got, "entry %d", i)
	}
}

func TestRotorBytesScalarFirst(t *testing.T) {
	r := Rotor3f{S: 0.5, Bv: NewBivec3f(0.1, 0.2, 0.3)}
	raw := r.Bytes()
	require.Len(t, raw, 16)
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(raw)))
	assert.Equal(t, float32(0.3), math.Float32frombits(binary.LittleEndian.Uint32(raw[12:])))
}
