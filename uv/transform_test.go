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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsometryIdentityIsNoop(t *testing.T) {
	v2 := NewVec2f(1, -2)
	v3 := NewVec3f(1, -2, 3)
	assert.Equal(t, v2, Isometry2Identity[F32]().TransformVec(v2))
	assert.Equal(t, v3, Isometry3Identity[F32]().TransformVec(v3))
	assert.Equal(t, v3, Similarity3Identity[F32]().TransformVec(v3))
}

func TestIsometry3RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for range 30 {
		iso := NewIsometry3(
			randomUnitVec3f(rng).Scale(F32(rng.Float32()*10)),
			randomRotor3f(rng),
		)
		v := randomUnitVec3f(rng)

		back := iso.Inversed().TransformVec(iso.TransformVec(v))
		assert.True(t, back.EqEps(v, 1e-4), "round trip %+v -> %+v", v, back)
	}
}

func TestIsometry3InverseComposesToIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	iso := NewIsometry3(NewVec3f(4, -1, 2), randomRotor3f(rng))

	id := iso.Compose(iso.Inversed())
	assert.True(t, id.EqEps(Isometry3Identity[F32](), 1e-5), "iso * iso^-1 = %+v", id)
}

func TestIsometryComposeAppliesRHSFirst(t *testing.T) {
	// rot rotates xy by 90 degrees, trans moves +x by 1. Composing
	// rot.Compose(trans) applies the translation first, so the origin
	// lands wherever rot sends (1, 0).
	rot := NewIsometry2(NewVec2f(0, 0), Rotor2FromAngle(F32(math.Pi / 2)))
	trans := NewIsometry2(NewVec2f(1, 0), Rotor2Identity[F32]())

	got := rot.Compose(trans).TransformVec(NewVec2f(0, 0))
	want := rot.TransformVec(trans.TransformVec(NewVec2f(0, 0)))
	assert.True(t, got.EqEps(want, testEps))

	// The opposite order translates after rotating and ends at (1, 0).
	other := trans.Compose(rot).TransformVec(NewVec2f(0, 0))
	assert.True(t, other.EqEps(NewVec2f(1, 0), testEps), "got %+v", other)
}

func TestIsometry3MatchesHomogeneousMatrix(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	for range 20 {
		iso := NewIsometry3(
			randomUnitVec3f(rng).Scale(F32(rng.Float32()*5)),
			randomRotor3f(rng),
		)
		v := randomUnitVec3f(rng)

		direct := iso.TransformVec(v)
		viaMat := iso.IntoHomogeneousMatrix().TransformPoint3(v)
		assert.True(t, direct.EqEps(viaMat, 1e-4), "direct %+v vs matrix %+v", direct, viaMat)
	}
}

func TestSimilarity3ScalesBeforeRotating(t *testing.T) {
	sim := NewSimilarity3(
		NewVec3f(0, 0, 10),
		Rotor3Identity[F32](),
		F32(3),
	)
	got := sim.TransformVec(NewVec3f(1, 2, 3))
	assert.True(t, got.EqEps(NewVec3f(3, 6, 19), testEps), "got %+v", got)
}

func TestSimilarity3RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(10))

	for range 30 {
		sim := NewSimilarity3(
			randomUnitVec3f(rng).Scale(F32(rng.Float32()*10)),
			randomRotor3f(rng),
			F32(rng.Float32()*4+0.25),
		)
		v := randomUnitVec3f(rng)

		back := sim.Inversed().TransformVec(sim.TransformVec(v))
		assert.True(t, back.EqEps(v, 1e-3), "round trip %+v -> %+v", v, back)

		id := sim.Compose(sim.Inversed())
		assert.True(t, id.EqEps(Similarity3Identity[F32](), 1e-3), "sim * sim^-1 = %+v", id)
	}
}

func TestSimilarity2MatchesHomogeneousMatrix(t *testing.T) {
	sim := NewSimilarity2(NewVec2f(3, -1), Rotor2FromAngle(F32(0.6)), F32(2))
	v := NewVec2f(0.5, -0.25)

	direct := sim.TransformVec(v)
	viaMat := Vec2FromHomogeneousPoint(sim.IntoHomogeneousMatrix().MulVec(v.IntoHomogeneousPoint()))
	assert.True(t, direct.EqEps(viaMat, testEps), "direct %+v vs matrix %+v", direct, viaMat)
}

func TestInverseInPlace(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	iso := NewIsometry3(NewVec3f(1, 2, 3), randomRotor3f(rng))

	want := iso.Inversed()
	iso.Inverse()
	assert.Equal(t, want, iso)
}
