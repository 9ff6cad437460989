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
	"encoding/json"
	"fmt"
)

// Vectors, bivectors, rotors and transforms serialize structurally through
// their json struct tags (x/y/z/w, xy/xz/yz, s/bv, translation/rotation/
// scale). Matrices serialize as flat sequences in column-major order: for a
// 2x2, [col0.x, col0.y, col1.x, col1.y]. Decoding what encoding produced
// yields the identical value for all finite inputs.

// MarshalJSON encodes m as its 4 entries flattened column-major.
func (m Mat2[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]T{
		m.Cols[0].X, m.Cols[0].Y,
		m.Cols[1].X, m.Cols[1].Y,
	})
}

// UnmarshalJSON decodes a flat column-major sequence of 4 entries.
func (m *Mat2[T]) UnmarshalJSON(data []byte) error {
	var flat []T
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("uv: decoding Mat2: %w", err)
	}
	if len(flat) != 4 {
		return fmt.Errorf("uv: decoding Mat2: got %d entries, want 4", len(flat))
	}
	m.Cols[0] = Vec2[T]{X: flat[0], Y: flat[1]}
	m.Cols[1] = Vec2[T]{X: flat[2], Y: flat[3]}
	return nil
}

// MarshalJSON encodes m as its 9 entries flattened column-major.
func (m Mat3[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([9]T{
		m.Cols[0].X, m.Cols[0].Y, m.Cols[0].Z,
		m.Cols[1].X, m.Cols[1].Y, m.Cols[1].Z,
		m.Cols[2].X, m.Cols[2].Y, m.Cols[2].Z,
	})
}

// UnmarshalJSON decodes a flat column-major sequence of 9 entries.
func (m *Mat3[T]) UnmarshalJSON(data []byte) error {
	var flat []T
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("uv: decoding Mat3: %w", err)
	}
	if len(flat) != 9 {
		return fmt.Errorf("uv: decoding Mat3: got %d entries, want 9", len(flat))
	}
	for c := range 3 {
		m.Cols[c] = Vec3[T]{X: flat[3*c], Y: flat[3*c+1], Z: flat[3*c+2]}
	}
	return nil
}

// MarshalJSON encodes m as its 16 entries flattened column-major.
func (m Mat4[T]) MarshalJSON() ([]byte, error) {
	var flat [16]T
	for c := range 4 {
		flat[4*c] = m.Cols[c].X
		flat[4*c+1] = m.Cols[c].Y
		flat[4*c+2] = m.Cols[c].Z
		flat[4*c+3] = m.Cols[c].W
	}
	return json.Marshal(flat)
}

// UnmarshalJSON decodes a flat column-major sequence of 16 entries.
func (m *Mat4[T]) UnmarshalJSON(data []byte) error {
	var flat []T
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("uv: decoding Mat4: %w", err)
	}
	if len(flat) != 16 {
		return fmt.Errorf("uv: decoding Mat4: got %d entries, want 16", len(flat))
	}
	for c := range 4 {
		m.Cols[c] = Vec4[T]{
			X: flat[4*c], Y: flat[4*c+1], Z: flat[4*c+2], W: flat[4*c+3],
		}
	}
	return nil
}
