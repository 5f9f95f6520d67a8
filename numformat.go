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

import "strconv"

// maxIntDigits is the widest decimal rendering of a signed 64-bit integer
// ("-9223372036854775808"), a fixed 20-byte upper bound.
const maxIntDigits = 20

// maxDoubleDigits is the scratch size allotted to double formatting.
const maxDoubleDigits = 32

// AppendLong writes v in decimal ASCII to the end of dst and returns the
// extended slice. No heap allocation occurs as long as dst has at least
// [maxIntDigits] bytes of spare capacity.
func AppendLong(dst []byte, v int64) []byte {
	if v == 0 {
		return append(dst, '0')
	}

	var buf [maxIntDigits]byte
	i := len(buf)
	neg := v < 0

	// Avoid negating math.MinInt64, which would overflow; peel digits off
	// as negative remainders instead.
	if neg {
		for v != 0 {
			i--
			buf[i] = byte('0' - v%10)
			v /= 10
		}
		i--
		buf[i] = '-'
	} else {
		for v != 0 {
			i--
			buf[i] = byte('0' + v%10)
			v /= 10
		}
	}

	return append(dst, buf[i:]...)
}

// AppendInt writes v in decimal ASCII to the end of dst.
func AppendInt(dst []byte, v int32) []byte { return AppendLong(dst, int64(v)) }

// AppendDouble writes v using a round-trip-correct, shortest-representation
// formatter (Go's strconv 'g'-style shortest decimal, the same algorithm
// family as Ryū): the smallest number of digits such that parsing the
// output back recovers v exactly, switching to scientific notation for
// very large or very small magnitudes the way [strconv.AppendFloat]'s 'g'
// verb does. This picks a concrete, documented canonical form for the
// writer's double format.
func AppendDouble(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'g', -1, 64)
}

// AppendFloat32 writes v using the same convention as [AppendDouble], at
// float32 precision.
func AppendFloat32(dst []byte, v float32) []byte {
	return strconv.AppendFloat(dst, float64(v), 'g', -1, 32)
}
