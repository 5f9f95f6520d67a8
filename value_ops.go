// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lazyjson

import "math"

// ValueEqual reports whether a and b are structurally equal JSON values.
// Numbers compare by numeric value (so 1 and 1.0 are equal), not by raw
// text; objects ignore field order; arrays do not.
func ValueEqual(a, b View) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *Object:
		return av.Equal(b.(*Object))
	case *Array:
		return av.Equal(b.(*Array))
	case *String:
		return av.Equals(b.(*String))
	case *Number:
		da, erra := av.AsDouble()
		db, errb := b.(*Number).AsDouble()
		if erra != nil || errb != nil {
			return string(av.rawBytes()) == string(b.(*Number).rawBytes())
		}
		return da == db
	case Boolean:
		return av == b.(Boolean)
	case Null:
		return true
	default:
		return false
	}
}

// ValueHash returns a structural hash of v consistent with [ValueEqual]:
// equal values always hash equal (the converse need not hold).
func ValueHash(v View) uint32 {
	switch t := v.(type) {
	case *Object:
		return t.Hash()
	case *Array:
		return t.Hash()
	case *String:
		return HashString(t.ToString())
	case *Number:
		d, err := t.AsDouble()
		if err != nil {
			return HashBytes(t.rawBytes())
		}
		bits := math.Float64bits(d)
		return uint32(bits) ^ uint32(bits>>32)
	case Boolean:
		if t {
			return 0x9e3779b1
		}
		return 0x85ebca77
	case Null:
		return 0x27d4eb2f
	default:
		return 0
	}
}
