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

import "github.com/quantjson/lazyjson/internal/hash"

// Object is a lazy view over a JSON object. Fields are linked in
// source order via the AST store; [Object.Get] walks that chain, filtering
// candidates by the field name's precomputed polynomial hash before
// falling back to a byte comparison, so for a name without escapes a miss
// on a non-matching hash never touches the candidate's bytes at all.
// Names containing escapes skip the hash filter and are decoded and
// compared by content.
//
// JSON permits duplicate field names; lookups resolve ties first-match-wins
// (the field nearest the start of the object), matching the order a
// straightforward single-pass reader would naturally encounter them.
type Object struct {
	binding

	size      int32
	sizeKnown bool
}

func bindObject(store *ast, src []byte, ctx *Context, node int32) *Object {
	return ctx.borrowObject(store, src, node)
}

func (o *Object) reset() {
	o.binding.reset()
	o.size, o.sizeKnown = 0, false
}

// Kind implements [View].
func (o *Object) Kind() ValueKind { return KindObject }

// Size returns the number of fields in the object, including duplicates.
func (o *Object) Size() int {
	if o.sizeKnown {
		return int(o.size)
	}
	var n int32
	for f := o.store.firstChildOf(o.node); f != noneIndex; f = o.store.nextSiblingOf(f) {
		n++
	}
	o.size, o.sizeKnown = n, true
	return int(n)
}

// IsEmpty reports whether the object has zero fields.
func (o *Object) IsEmpty() bool { return o.store.firstChildOf(o.node) == noneIndex }

// fieldNameMatches reports whether the field name at nameNode equals q,
// using the precomputed hash as a pre-filter when the name contains no
// escapes (the common case); escaped names are always decoded and compared
// by content, since an escaped hash is computed over pre-decode bytes and
// cannot be compared directly against a caller's already-decoded query.
func fieldNameMatches(store *ast, src []byte, nameNode int32, q string, qHash uint32) bool {
	if store.hasFlag(nameNode, flagStringEscaped) {
		return decodeJSONEscapes(rawBytesOf(store, src, nameNode)) == q
	}
	if store.hashOf(nameNode) != qHash {
		return false
	}
	return string(rawBytesOf(store, src, nameNode)) == q
}

func fieldNameMatchesSlice(store *ast, src []byte, nameNode int32, q []byte, qHash uint32) bool {
	if store.hasFlag(nameNode, flagStringEscaped) {
		return decodeJSONEscapes(rawBytesOf(store, src, nameNode)) == string(q)
	}
	if store.hashOf(nameNode) != qHash {
		return false
	}
	raw := rawBytesOf(store, src, nameNode)
	if len(raw) != len(q) {
		return false
	}
	for i := range raw {
		if raw[i] != q[i] {
			return false
		}
	}
	return true
}

func rawBytesOf(store *ast, src []byte, node int32) []byte {
	return src[store.start(node):store.end(node)]
}

// Get returns the value of the first field named name, or a [UsageError]
// wrapping [ErrNotFound] if no field has that name.
func (o *Object) Get(name string) (View, error) {
	q := hash.String(name)
	for f := o.store.firstChildOf(o.node); f != noneIndex; f = o.store.nextSiblingOf(f) {
		nameNode := o.store.firstChildOf(f)
		if fieldNameMatches(o.store, o.src, nameNode, name, q) {
			return valueFromNode(o.store, o.src, o.ctx, o.store.nextSiblingOf(nameNode)), nil
		}
	}
	return nil, newUsageError(usageNotFound, name, "<absent>")
}

// GetSlice is like [Object.Get], but takes the field name as a [Slice],
// hashing and comparing its bytes directly instead of a string.
func (o *Object) GetSlice(name Slice) (View, error) {
	q := name.Hash()
	qBytes := name.Bytes()
	for f := o.store.firstChildOf(o.node); f != noneIndex; f = o.store.nextSiblingOf(f) {
		nameNode := o.store.firstChildOf(f)
		if fieldNameMatchesSlice(o.store, o.src, nameNode, qBytes, q) {
			return valueFromNode(o.store, o.src, o.ctx, o.store.nextSiblingOf(nameNode)), nil
		}
	}
	return nil, newUsageError(usageNotFound, name.String(), "<absent>")
}

// Has reports whether the object contains a field named name.
func (o *Object) Has(name string) bool {
	q := hash.String(name)
	for f := o.store.firstChildOf(o.node); f != noneIndex; f = o.store.nextSiblingOf(f) {
		if fieldNameMatches(o.store, o.src, o.store.firstChildOf(f), name, q) {
			return true
		}
	}
	return false
}

// Range calls f once per field, in source order, stopping early if f
// returns false. The Slice passed to f is only valid for the duration of
// the Range call's Context lifetime, same as any other borrowed Slice.
func (o *Object) Range(f func(name Slice, value View) bool) {
	for field := o.store.firstChildOf(o.node); field != noneIndex; field = o.store.nextSiblingOf(field) {
		nameNode := o.store.firstChildOf(field)
		start := int(o.store.start(nameNode))
		name := o.ctx.borrowSlice(o.src, start, int(o.store.end(nameNode))-start)
		value := valueFromNode(o.store, o.src, o.ctx, o.store.nextSiblingOf(nameNode))
		if !f(name, value) {
			return
		}
	}
}

// Keys returns every field name in source order, including duplicates.
// Unlike [Object.Range], this allocates a slice sized to [Object.Size].
func (o *Object) Keys() []Slice {
	out := make([]Slice, 0, o.Size())
	o.Range(func(name Slice, _ View) bool {
		out = append(out, name)
		return true
	})
	return out
}

// GetAll returns the values of every field named name, in source order,
// for callers that need to handle duplicate field names explicitly rather
// than accept [Object.Get]'s first-match-wins resolution. The node indices
// of matching fields are staged in one of ctx's round-robin scratch
// buffers before any [View] is constructed, so the common case of a
// handful of matches costs no heap allocation beyond the returned slice
// itself.
func (o *Object) GetAll(name string) []View {
	q := hash.String(name)
	nodes := o.ctx.scratchIndices()
	for f := o.store.firstChildOf(o.node); f != noneIndex; f = o.store.nextSiblingOf(f) {
		nameNode := o.store.firstChildOf(f)
		if fieldNameMatches(o.store, o.src, nameNode, name, q) {
			nodes = append(nodes, o.store.nextSiblingOf(nameNode))
		}
	}
	if len(nodes) == 0 {
		return nil
	}
	out := make([]View, len(nodes))
	for i, n := range nodes {
		out[i] = valueFromNode(o.store, o.src, o.ctx, n)
	}
	return out
}

// Equal reports whether o and other have the same fields (ignoring
// duplicate-field and ordering differences beyond first-match-wins
// resolution) with structurally equal values.
func (o *Object) Equal(other *Object) bool {
	if o.Size() != other.Size() {
		return false
	}
	eq := true
	o.Range(func(name Slice, value View) bool {
		ov, err := other.GetSlice(name)
		if err != nil || !ValueEqual(value, ov) {
			eq = false
			return false
		}
		return true
	})
	return eq
}

// Hash returns an order-independent structural hash of the object's
// fields, suitable for hash-based equality pre-filtering.
func (o *Object) Hash() uint32 {
	var h uint32
	o.Range(func(name Slice, value View) bool {
		h += name.Hash()*31 + ValueHash(value)
		return true
	})
	return h
}
