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

package hash

import "github.com/dchest/siphash"

// FingerprintConfig computes a keyed 128-bit fingerprint of a serialized
// configuration document, using a fixed process-local key. It is used by the
// config package to detect when a loaded limit-set has changed and a cached
// compiled [lazyjson.ParseOption] set needs rebuilding; it is unrelated to
// the parser's own field-name hashing, which is deliberately unkeyed so any
// caller can reproduce it independently.
func FingerprintConfig(key0, key1 uint64, data []byte) Keyed128 {
	lo, hi := siphash.Hash128(key0, key1, data)
	return Keyed128{lo, hi}
}
