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

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-highway/hwy/contrib/algo"
)

// BaseRotateVecsBatch applies one normalized rotor to a set of 3D vectors
// (SoA layout) in place.
//
// The sandwich product of a fixed rotor is a linear map, so its nine matrix
// entries are computed once from the rotor components and broadcast across
// the batch: constant setup, one fused matrix apply per vector.
func BaseRotateVecsBatch[T hwy.Floats](
	s, bxy, bxz, byz T,
	xs, ys, zs []T,
) {
	size := min(len(xs), len(ys), len(zs))

	s2 := s * s
	bxy2 := bxy * bxy
	bxz2 := bxz * bxz
	byz2 := byz * byz

	// Column-major entries, same closed form as Rotor3.IntoMatrix.
	m00 := s2 - bxy2 - bxz2 + byz2
	m10 := -2 * (bxz*byz + s*bxy)
	m20 := 2 * (bxy*byz - s*bxz)
	m01 := 2 * (s*bxy - bxz*byz)
	m11 := s2 - bxy2 + bxz2 - byz2
	m21 := -2 * (s*byz + bxy*bxz)
	m02 := 2 * (s*bxz + bxy*byz)
	m12 := 2 * (s*byz - bxy*bxz)
	m22 := s2 + bxy2 - bxz2 - byz2

	vM00 := hwy.Set(m00)
	vM01 := hwy.Set(m01)
	vM02 := hwy.Set(m02)
	vM10 := hwy.Set(m10)
	vM11 := hwy.Set(m11)
	vM12 := hwy.Set(m12)
	vM20 := hwy.Set(m20)
	vM21 := hwy.Set(m21)
	vM22 := hwy.Set(m22)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x := hwy.Load(xs[offset:])
			y := hwy.Load(ys[offset:])
			z := hwy.Load(zs[offset:])

			resX := hwy.Mul(x, vM00)
			resX = hwy.FMA(y, vM01, resX)
			resX = hwy.FMA(z, vM02, resX)

			resY := hwy.Mul(x, vM10)
			resY = hwy.FMA(y, vM11, resY)
			resY = hwy.FMA(z, vM12, resY)

			resZ := hwy.Mul(x, vM20)
			resZ = hwy.FMA(y, vM21, resZ)
			resZ = hwy.FMA(z, vM22, resZ)

			hwy.Store(resX, xs[offset:])
			hwy.Store(resY, ys[offset:])
			hwy.Store(resZ, zs[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			x := hwy.MaskLoad(mask, xs[offset:])
			y := hwy.MaskLoad(mask, ys[offset:])
			z := hwy.MaskLoad(mask, zs[offset:])

			resX := hwy.Mul(x, vM00)
			resX = hwy.FMA(y, vM01, resX)
			resX = hwy.FMA(z, vM02, resX)

			resY := hwy.Mul(x, vM10)
			resY = hwy.FMA(y, vM11, resY)
			resY = hwy.FMA(z, vM12, resY)

			resZ := hwy.Mul(x, vM20)
			resZ = hwy.FMA(y, vM21, resZ)
			resZ = hwy.FMA(z, vM22, resZ)

			hwy.MaskStore(mask, resX, xs[offset:])
			hwy.MaskStore(mask, resY, ys[offset:])
			hwy.MaskStore(mask, resZ, zs[offset:])
		},
	)
}

// BaseRotorsFromAnglesBatch builds one rotor per angle, all in the same
// plane (which must be normalized), into SoA component buffers.
//
// The half-angle trig runs as a batch transform first, then the components
// combine in a vector loop.
func BaseRotorsFromAnglesBatch(
	angles []float32,
	planeXY, planeXZ, planeYZ float32,
	s, bxy, bxz, byz []float32,
) {
	size := min(len(angles), len(s), len(bxy), len(bxz), len(byz))

	// Temp buffers for the batch trig. Callers doing this in a loop would
	// want a reusable workspace; keep the kernel allocation-simple here.
	halves := make([]float32, size)
	sines := make([]float32, size)
	for i := range halves {
		halves[i] = 0.5 * angles[i]
	}

	algo.SinTransform(halves, sines)
	algo.CosTransform(halves, s[:size])

	vPXY := hwy.Set(-planeXY)
	vPXZ := hwy.Set(-planeXZ)
	vPYZ := hwy.Set(-planeYZ)

	hwy.ProcessWithTail[float32](size,
		func(offset int) {
			vSin := hwy.Load(sines[offset:])

			hwy.Store(hwy.Mul(vSin, vPXY), bxy[offset:])
			hwy.Store(hwy.Mul(vSin, vPXZ), bxz[offset:])
			hwy.Store(hwy.Mul(vSin, vPYZ), byz[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[float32](count)
			vSin := hwy.MaskLoad(mask, sines[offset:])

			hwy.MaskStore(mask, hwy.Mul(vSin, vPXY), bxy[offset:])
			hwy.MaskStore(mask, hwy.Mul(vSin, vPXZ), bxz[offset:])
			hwy.MaskStore(mask, hwy.Mul(vSin, vPYZ), byz[offset:])
		},
	)
}
