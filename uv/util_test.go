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
)

const testEps = 1e-5

func eqf(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

// randomUnitVec3f returns a normalized pseudo-random vector away from the
// degenerate zero case.
func randomUnitVec3f(rng *rand.Rand) Vec3f {
	for {
		v := NewVec3f(
			float32(rng.Float64()*2-1),
			float32(rng.Float64()*2-1),
			float32(rng.Float64()*2-1),
		)
		if float32(v.Mag()) > 0.1 {
			return v.Normalized()
		}
	}
}

// randomUnitBivec3f returns a normalized pseudo-random rotation plane.
func randomUnitBivec3f(rng *rand.Rand) Bivec3f {
	plane := NewBivec3f(
		float32(rng.Float64()*2-1),
		float32(rng.Float64()*2-1),
		float32(rng.Float64()*2-1),
	)
	if float32(plane.Mag()) < 0.1 {
		return Bivec3UnitXY[F32]()
	}
	return plane.Normalized()
}

// randomRotor3f returns a normalized pseudo-random rotor.
func randomRotor3f(rng *rand.Rand) Rotor3f {
	angle := F32(rng.Float64() * 2 * math.Pi)
	plane := NewBivec3f(
		float32(rng.Float64()*2-1),
		float32(rng.Float64()*2-1),
		float32(rng.Float64()*2-1),
	)
	if float32(plane.Mag()) < 0.1 {
		plane = Bivec3UnitXY[F32]()
	}
	return Rotor3FromAnglePlane(angle, plane.Normalized())
}
