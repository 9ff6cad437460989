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

// Package uv provides vectors, bivectors, rotors, matrices and rigid
// transforms for 2D, 3D and 4D space, in both scalar and SIMD-lane-parallel
// ("wide") flavors.
//
// Rotations are represented by rotors, the geometric-algebra counterpart of
// quaternions: a scalar plus a bivector describing the plane of rotation.
// Unlike an axis-angle or quaternion formulation, the same rotor construction
// works in 2D and 3D, and the plane-based formulation generalizes cleanly.
//
// Every geometric type is generic over a lane type. A lane is either a single
// float (F32, F64) or a fixed-width group of floats processed in lockstep
// (F32x8). All formulas are written once against the Lane capability set and
// therefore behave identically per lane for the scalar and wide kinds.
//
// In addition to the wide value types, the package exposes batch kernels over
// structure-of-arrays buffers (see Vec3Buffer and the Base* functions), built
// on github.com/ajroetker/go-highway for runtime SIMD dispatch.
//
// The geometric core performs no runtime validation. Operations document
// their preconditions (normalized inputs, non-degenerate vector pairs);
// violating one yields mathematically meaningless output, typically NaN,
// never a panic or an error. This is deliberate: hot inner-loop math does
// not pay for checks. The only fallible surface is the lossy numeric
// narrowing in convert.go.
package uv
