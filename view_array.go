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

// Array is a lazy view over a JSON array. Elements are linked in
// source order via the AST store; random access by index walks the
// sibling chain from the start, so repeated indexed access to a large
// array is O(n) per call — callers that need repeated random access should
// prefer [Array.Range] or cache element views themselves.
type Array struct {
	binding

	size      int32
	sizeKnown bool
}

func bindArray(store *ast, src []byte, ctx *Context, node int32) *Array {
	return ctx.borrowArray(store, src, node)
}

func (a *Array) reset() {
	a.binding.reset()
	a.size, a.sizeKnown = 0, false
}

// Kind implements [View].
func (a *Array) Kind() ValueKind { return KindArray }

// Size returns the number of elements in the array.
func (a *Array) Size() int {
	if a.sizeKnown {
		return int(a.size)
	}
	var n int32
	for e := a.store.firstChildOf(a.node); e != noneIndex; e = a.store.nextSiblingOf(e) {
		n++
	}
	a.size, a.sizeKnown = n, true
	return int(n)
}

// IsEmpty reports whether the array has zero elements.
func (a *Array) IsEmpty() bool { return a.store.firstChildOf(a.node) == noneIndex }

// Get returns the element at index i, or a [UsageError] wrapping
// [ErrIndexOutOfBounds] if i is out of range.
func (a *Array) Get(i int) (View, error) {
	if i < 0 {
		return nil, errIndex(i, a.Size())
	}
	e := a.store.firstChildOf(a.node)
	for k := 0; k < i && e != noneIndex; k++ {
		e = a.store.nextSiblingOf(e)
	}
	if e == noneIndex {
		return nil, errIndex(i, a.Size())
	}
	return valueFromNode(a.store, a.src, a.ctx, e), nil
}

// Range calls f once per element, in order, stopping early if f returns
// false.
func (a *Array) Range(f func(index int, value View) bool) {
	i := 0
	for e := a.store.firstChildOf(a.node); e != noneIndex; e = a.store.nextSiblingOf(e) {
		if !f(i, valueFromNode(a.store, a.src, a.ctx, e)) {
			return
		}
		i++
	}
}

// Equal reports whether a and other have the same length with structurally
// equal elements in the same order.
func (a *Array) Equal(other *Array) bool {
	if a.Size() != other.Size() {
		return false
	}
	eq := true
	ea := a.store.firstChildOf(a.node)
	eb := other.store.firstChildOf(other.node)
	for ea != noneIndex {
		va := valueFromNode(a.store, a.src, a.ctx, ea)
		vb := valueFromNode(other.store, other.src, other.ctx, eb)
		if !ValueEqual(va, vb) {
			eq = false
			break
		}
		ea = a.store.nextSiblingOf(ea)
		eb = other.store.nextSiblingOf(eb)
	}
	return eq
}

// Hash returns an order-dependent structural hash of the array's elements.
func (a *Array) Hash() uint32 {
	var h uint32
	a.Range(func(_ int, value View) bool {
		h = h*31 + ValueHash(value)
		return true
	})
	return h
}
