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

import (
	"bytes"
	"fmt"

	"github.com/quantjson/lazyjson/internal/hash"
)

// Slice is a zero-copy view over a contiguous run of bytes owned by some
// other buffer: a (source, offset, length) triple. A Slice is valid only
// while its source bytes remain live and unchanged; this is guaranteed for
// the lifetime of the [Context] that produced it.
//
// Slice is poolable: [Environment] keeps a pool of them, and every Slice
// handed back while navigating a parsed document is tracked by the active
// [Context] and returned to that pool when the context closes.
type Slice struct {
	src    []byte
	offset int
	length int
}

// newSlice builds a Slice over src[offset:offset+length]. Callers must have
// already validated the range.
func newSlice(src []byte, offset, length int) Slice {
	return Slice{src: src, offset: offset, length: length}
}

// reset clears a pooled Slice back to its zero state.
func (s *Slice) reset() { *s = Slice{} }

// Len returns the number of bytes in the slice.
func (s Slice) Len() int { return s.length }

// IsEmpty reports whether the slice has zero length.
func (s Slice) IsEmpty() bool { return s.length == 0 }

// Bytes returns the raw bytes covered by this slice. The returned slice
// aliases the original input buffer; callers must not mutate it, and must
// not retain it past the lifetime of the buffer passed to [Parse].
func (s Slice) Bytes() []byte {
	if s.length == 0 {
		return nil
	}
	return s.src[s.offset : s.offset+s.length]
}

// ByteAt returns the byte at index i within the slice, or a [UsageError]
// wrapping [ErrIndexOutOfBounds] if i is out of range.
func (s Slice) ByteAt(i int) (byte, error) {
	if i < 0 || i >= s.length {
		return 0, newUsageError(usageIndexOutOfBounds, fmt.Sprintf("[0,%d)", s.length), fmt.Sprintf("%d", i))
	}
	return s.src[s.offset+i], nil
}

// String materializes the slice's raw bytes as a string. This allocates (or,
// for a slice that already aliases a string-backed cursor, a zero-copy
// conversion is not guaranteed by this API — use [Slice.Bytes] on the hot
// path instead).
func (s Slice) String() string { return string(s.Bytes()) }

// Hash returns the 31-multiplied polynomial hash of the slice's bytes (see
// internal/hash), matching the hash a caller computes via [HashBytes] or
// [HashString] over the same content.
func (s Slice) Hash() uint32 { return hash.Bytes(s.Bytes()) }

// Equal reports whether two slices have byte-identical content. Slices from
// different contexts, or a slice and a live byte run, may be compared this
// way without materializing either as a string.
func (s Slice) Equal(other Slice) bool { return bytes.Equal(s.Bytes(), other.Bytes()) }

// EqualBytes reports whether the slice's raw bytes equal b.
func (s Slice) EqualBytes(b []byte) bool { return bytes.Equal(s.Bytes(), b) }

// EqualString reports whether the slice's raw bytes equal s2, byte for
// byte, without allocating.
func (s Slice) EqualString(s2 string) bool { return string(s.Bytes()) == s2 }

// HashBytes computes the same polynomial hash as [Slice.Hash], over an
// arbitrary byte slice.
func HashBytes(b []byte) uint32 { return hash.Bytes(b) }

// HashString computes the same polynomial hash as [Slice.Hash], over an
// arbitrary string, without requiring a []byte conversion.
func HashString(s string) uint32 { return hash.String(s) }
