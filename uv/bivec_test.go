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
	"testing"
)

func TestBivec3Arithmetic(t *testing.T) {
	a := NewBivec3f(1, 2, 3)
	b := NewBivec3f(0.5, -1, 2)

	if got := a.Add(b); !got.EqEps(NewBivec3f(1.5, 1, 5), testEps) {
		t.Errorf("add = %+v", got)
	}
	if got := a.Sub(b); !got.EqEps(NewBivec3f(0.5, 3, 1), testEps) {
		t.Errorf("sub = %+v", got)
	}
	if got := a.Scale(2); !got.EqEps(NewBivec3f(2, 4, 6), testEps) {
		t.Errorf("scale = %+v", got)
	}
	if got := float32(a.Dot(b)); !eqf(got, 0.5-2+6, testEps) {
		t.Errorf("dot = %v", got)
	}
}

func TestBivec3Normalized(t *testing.T) {
	b := NewBivec3f(0.2, 0.4, 0.7)
	n := b.Normalized()
	if got := float32(n.Mag()); !eqf(got, 1, testEps) {
		t.Errorf("normalized mag = %v, want 1", got)
	}
	// Direction preserved.
	if got := float32(n.XY.Div(n.XZ)); !eqf(got, 0.5, testEps) {
		t.Errorf("component ratio changed: %v", got)
	}
}

// The plane dual to a rotation axis: unit axes map to their perpendicular
// unit planes.
func TestBivec3FromNormalizedAxis(t *testing.T) {
	if got := Bivec3FromNormalizedAxis(Vec3UnitX[F32]()); !got.EqEps(Bivec3UnitYZ[F32](), testEps) {
		t.Errorf("dual of +x = %+v, want unit yz", got)
	}
	if got := Bivec3FromNormalizedAxis(Vec3UnitY[F32]()); !got.EqEps(Bivec3UnitXZ[F32](), testEps) {
		t.Errorf("dual of +y = %+v, want unit xz", got)
	}
	if got := Bivec3FromNormalizedAxis(Vec3UnitZ[F32]()); !got.EqEps(Bivec3UnitXY[F32](), testEps) {
		t.Errorf("dual of +z = %+v, want unit xy", got)
	}
}

func TestBivec2MagIsAbs(t *testing.T) {
	b := NewBivec2[F32](-3)
	if got := float32(b.Mag()); got != 3 {
		t.Errorf("mag = %v, want 3", got)
	}
	n := b.Normalized()
	if got := float32(n.XY); got != -1 {
		t.Errorf("normalized keeps orientation: got %v, want -1", got)
	}
}
