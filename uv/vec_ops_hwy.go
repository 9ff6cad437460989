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
)

// Batch vector kernels over structure-of-arrays (SoA) buffers. Splitting
// components into separate arrays lets each SIMD lane hold one logical
// vector, which is significantly faster than iterating a slice of structs.

// BaseWedgeBatch computes the wedge product of two sets of 3D vectors (SoA).
// xy = ax*by - ay*bx
// xz = ax*bz - az*bx
// yz = ay*bz - az*by
func BaseWedgeBatch[T hwy.Floats](
	ax, ay, az []T,
	bx, by, bz []T,
	xy, xz, yz []T,
) {
	size := min(len(ax), len(ay), len(az), len(bx), len(by), len(bz))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vAx := hwy.Load(ax[offset:])
			vAy := hwy.Load(ay[offset:])
			vAz := hwy.Load(az[offset:])

			vBx := hwy.Load(bx[offset:])
			vBy := hwy.Load(by[offset:])
			vBz := hwy.Load(bz[offset:])

			vXY := hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx))
			vXZ := hwy.Sub(hwy.Mul(vAx, vBz), hwy.Mul(vAz, vBx))
			vYZ := hwy.Sub(hwy.Mul(vAy, vBz), hwy.Mul(vAz, vBy))

			hwy.Store(vXY, xy[offset:])
			hwy.Store(vXZ, xz[offset:])
			hwy.Store(vYZ, yz[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			vAx := hwy.MaskLoad(mask, ax[offset:])
			vAy := hwy.MaskLoad(mask, ay[offset:])
			vAz := hwy.MaskLoad(mask, az[offset:])
			vBx := hwy.MaskLoad(mask, bx[offset:])
			vBy := hwy.MaskLoad(mask, by[offset:])
			vBz := hwy.MaskLoad(mask, bz[offset:])

			vXY := hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx))
			vXZ := hwy.Sub(hwy.Mul(vAx, vBz), hwy.Mul(vAz, vBx))
			vYZ := hwy.Sub(hwy.Mul(vAy, vBz), hwy.Mul(vAz, vBy))

			hwy.MaskStore(mask, vXY, xy[offset:])
			hwy.MaskStore(mask, vXZ, xz[offset:])
			hwy.MaskStore(mask, vYZ, yz[offset:])
		},
	)
}

// BaseDotBatch computes pairwise dot products of two sets of 3D vectors
// (SoA).
// dst[i] = ax[i]*bx[i] + ay[i]*by[i] + az[i]*bz[i]
func BaseDotBatch[T hwy.Floats](
	ax, ay, az []T,
	bx, by, bz []T,
	dst []T,
) {
	size := min(len(ax), len(ay), len(az), len(bx), len(by), len(bz), len(dst))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vAx := hwy.Load(ax[offset:])
			vAy := hwy.Load(ay[offset:])
			vAz := hwy.Load(az[offset:])
			vBx := hwy.Load(bx[offset:])
			vBy := hwy.Load(by[offset:])
			vBz := hwy.Load(bz[offset:])

			// FMA chains are both faster and more precise here.
			sum := hwy.Mul(vAx, vBx)
			sum = hwy.FMA(vAy, vBy, sum)
			sum = hwy.FMA(vAz, vBz, sum)

			hwy.Store(sum, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			vAx := hwy.MaskLoad(mask, ax[offset:])
			vAy := hwy.MaskLoad(mask, ay[offset:])
			vAz := hwy.MaskLoad(mask, az[offset:])
			vBx := hwy.MaskLoad(mask, bx[offset:])
			vBy := hwy.MaskLoad(mask, by[offset:])
			vBz := hwy.MaskLoad(mask, bz[offset:])

			sum := hwy.Mul(vAx, vBx)
			sum = hwy.FMA(vAy, vBy, sum)
			sum = hwy.FMA(vAz, vBz, sum)

			hwy.MaskStore(mask, sum, dst[offset:])
		},
	)
}

// BaseNormalizeBatch scales a set of 3D vectors (SoA) to unit length in
// place. Zero-magnitude inputs produce NaN, matching the scalar Normalized
// contract.
func BaseNormalizeBatch[T hwy.Floats](xs, ys, zs []T) {
	size := min(len(xs), len(ys), len(zs))

	vOne := hwy.Set(T(1))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vx := hwy.Load(xs[offset:])
			vy := hwy.Load(ys[offset:])
			vz := hwy.Load(zs[offset:])

			magSq := hwy.Mul(vx, vx)
			magSq = hwy.FMA(vy, vy, magSq)
			magSq = hwy.FMA(vz, vz, magSq)

			inv := hwy.Div(vOne, hwy.Sqrt(magSq))

			hwy.Store(hwy.Mul(vx, inv), xs[offset:])
			hwy.Store(hwy.Mul(vy, inv), ys[offset:])
			hwy.Store(hwy.Mul(vz, inv), zs[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			vx := hwy.MaskLoad(mask, xs[offset:])
			vy := hwy.MaskLoad(mask, ys[offset:])
			vz := hwy.MaskLoad(mask, zs[offset:])

			magSq := hwy.Mul(vx, vx)
			magSq = hwy.FMA(vy, vy, magSq)
			magSq = hwy.FMA(vz, vz, magSq)

			inv := hwy.Div(vOne, hwy.Sqrt(magSq))

			hwy.MaskStore(mask, hwy.Mul(vx, inv), xs[offset:])
			hwy.MaskStore(mask, hwy.Mul(vy, inv), ys[offset:])
			hwy.MaskStore(mask, hwy.Mul(vz, inv), zs[offset:])
		},
	)
}
