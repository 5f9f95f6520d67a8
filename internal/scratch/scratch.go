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

// Package scratch provides small, round-robin, stack-allocated-feeling
// scratch buffers for the index arrays a [Context] hands out during field
// and element lookups: a handful of reusable int32 scratch arrays,
// round-robin assigned, falling back to a heap allocation once a caller's
// usage exceeds the fixed size.
//
// A single *Int32Arrays is meant to live inside one Context, not be shared.
package scratch

// numArrays is how many independent scratch buffers rotate through Next,
// so that a handful of calls nested within one another (e.g. building a
// field-index buffer for an outer object while iterating a nested one) do
// not alias the same backing array.
const numArrays = 8

// slotsPerArray is the fixed capacity of each rotating buffer. A caller
// whose usage fits within this many elements allocates nothing; a caller
// that appends past it gets ordinary Go slice growth onto the heap, same as
// appending to any other slice once its capacity is exhausted.
const slotsPerArray = 16

// Int32Arrays is a small pool of fixed-size int32 buffers, handed out in
// round-robin order.
type Int32Arrays struct {
	bufs [numArrays][slotsPerArray]int32
	next int
}

// Next returns the next buffer in rotation, truncated to length zero and
// ready to be appended to. The returned slice aliases Int32Arrays's
// internal storage up to its capacity; appending past slotsPerArray causes
// Go's normal append reallocation, at which point the caller silently
// stops using the scratch storage and holds an ordinary heap slice.
func (a *Int32Arrays) Next() []int32 {
	b := &a.bufs[a.next%numArrays]
	a.next++
	return b[:0]
}

// Reset rewinds the rotation. It does not need to clear the backing
// arrays: Next always returns a zero-length slice, so stale contents past
// the returned length are never observed.
func (a *Int32Arrays) Reset() { a.next = 0 }
