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

// Package hash provides the string-hashing convention shared by the
// tokenizer, the AST store, and [lazyjson.Slice].
//
// Field-name lookup requires a hash function that exactly matches between
// the one used to hash an AST field name and the one used to hash a
// caller's query string or byte slice, so a hash computed once during
// tokenization can be compared, by value, against a hash the caller
// computes later without re-walking either one's bytes. This package picks
// a plain 31-multiplied polynomial hash, the same convention as
// java.lang.String's hashCode and a direct match for what a caller can
// trivially reproduce in any language, over either a string or a byte
// slice.
package hash

// Bytes computes the 31-multiplied polynomial hash of b.
//
//	h = b[0]*31^(n-1) + b[1]*31^(n-2) + ... + b[n-1]
//
// computed left-to-right as h = h*31 + b[i], matching [String].
func Bytes(b []byte) uint32 {
	var h uint32
	for _, c := range b {
		h = h*31 + uint32(c)
	}
	return h
}

// String computes the 31-multiplied polynomial hash of s. Identical to
// [Bytes] applied to the same content; provided separately so callers
// holding a string need not convert it to a []byte (which would allocate)
// just to hash it.
func String(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}
	return h
}

// Keyed128 is a keyed 128-bit fingerprint used by the config package to
// version a loaded limit-set; it is unrelated to the field-name hash above,
// which must stay unkeyed and stable across processes. See
// internal/hash/keyed.go.
type Keyed128 [2]uint64
