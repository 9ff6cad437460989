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
	"math/rand"
	"testing"
)

// The wide lane kind must produce, in every lane, exactly the value the
// scalar kind produces for that lane's inputs.
func TestWideLanesMatchScalarPerLane(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var a, b, c F32x8
	for i := range a {
		a[i] = float32(rng.Float64()*4 - 2)
		b[i] = float32(rng.Float64()*4-2) + 0.5 // keep divisors away from 0
		c[i] = float32(rng.Float64()*4 - 2)
	}

	binary := []struct {
		name   string
		scalar func(x, y F32) F32
		wide   func(x, y F32x8) F32x8
	}{
		{"Add", F32.Add, F32x8.Add},
		{"Sub", F32.Sub, F32x8.Sub},
		{"Mul", F32.Mul, F32x8.Mul},
		{"Div", F32.Div, F32x8.Div},
		{"Min", F32.Min, F32x8.Min},
		{"Max", F32.Max, F32x8.Max},
		{"Atan2", F32.Atan2, F32x8.Atan2},
	}
	for _, tc := range binary {
		got := tc.wide(a, b)
		for i := range a {
			want := tc.scalar(F32(a[i]), F32(b[i]))
			if got[i] != float32(want) {
				t.Errorf("%s lane %d: got %v, want %v", tc.name, i, got[i], want)
			}
		}
	}

	gotFMA := a.MulAdd(b, c)
	for i := range a {
		want := F32(a[i]).MulAdd(F32(b[i]), F32(c[i]))
		if gotFMA[i] != float32(want) {
			t.Errorf("MulAdd lane %d: got %v, want %v", i, gotFMA[i], want)
		}
	}

	absIn := a
	absIn[0] = -absIn[0]
	gotAbs := absIn.Abs()
	gotNeg := a.Neg()
	gotSqrtIn := a.Abs()
	gotSqrt := gotSqrtIn.Sqrt()
	sinW, cosW := a.SinCos()
	for i := range a {
		if gotAbs[i] != float32(F32(absIn[i]).Abs()) {
			t.Errorf("Abs lane %d mismatch", i)
		}
		if gotNeg[i] != -a[i] {
			t.Errorf("Neg lane %d mismatch", i)
		}
		if gotSqrt[i] != float32(F32(gotSqrtIn[i]).Sqrt()) {
			t.Errorf("Sqrt lane %d mismatch", i)
		}
		sinS, cosS := F32(a[i]).SinCos()
		if sinW[i] != float32(sinS) || cosW[i] != float32(cosS) {
			t.Errorf("SinCos lane %d mismatch", i)
		}
	}
}

func TestSplatBroadcasts(t *testing.T) {
	w := splat[F32x8](2.5)
	for i := range w {
		if w[i] != 2.5 {
			t.Fatalf("lane %d = %v, want 2.5", i, w[i])
		}
	}
	if s := splat[F32](2.5); s != 2.5 {
		t.Fatalf("scalar splat = %v, want 2.5", s)
	}
}

// EqEps on the wide kind is an AND across lanes, not a per-lane verdict.
func TestWideEqEpsRequiresAllLanes(t *testing.T) {
	a := F32x8Splat(1.0)
	b := a

	if !a.EqEps(b, 1e-6) {
		t.Fatal("identical wide values should compare equal")
	}

	b = b.WithLane(3, 1.5)
	if a.EqEps(b, 1e-6) {
		t.Fatal("one mismatched lane must fail the whole comparison")
	}
}

// Scalar lanes take the near-parallel slerp fallback; wide lanes never do.
// This difference is deliberate (a lane-masked branch costs more than the
// fallback saves), so pin it down.
func TestNearOneScalarWideDiscrepancy(t *testing.T) {
	if !F32(0.9999).NearOne() {
		t.Error("scalar dot of 0.9999 should report near one")
	}
	if F32(0.9).NearOne() {
		t.Error("scalar dot of 0.9 should not report near one")
	}
	if F32x8Splat(0.9999).NearOne() {
		t.Error("wide kind must never report near one")
	}
	if F32x8Splat(1).NearOne() {
		t.Error("wide kind must never report near one, even at exactly 1")
	}
}

func TestF64MatchesF32Semantics(t *testing.T) {
	if got := F64(2).MulAdd(3, 4); got != 10 {
		t.Errorf("F64 MulAdd = %v, want 10", got)
	}
	if !F64(1).EqEps(1+1e-9, 1e-8) {
		t.Error("F64 EqEps should accept difference below eps")
	}
	if F64(1).EqEps(1.1, 1e-8) {
		t.Error("F64 EqEps should reject difference above eps")
	}
}
