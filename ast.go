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

// nodeType is the tag of an AST node.
type nodeType uint8

const (
	ntObject nodeType = iota
	ntArray
	ntField
	ntString
	ntNumber
	ntBoolTrue
	ntBoolFalse
	ntNull
)

func (t nodeType) String() string {
	switch t {
	case ntObject:
		return "object"
	case ntArray:
		return "array"
	case ntField:
		return "field"
	case ntString:
		return "string"
	case ntNumber:
		return "number"
	case ntBoolTrue:
		return "true"
	case ntBoolFalse:
		return "false"
	case ntNull:
		return "null"
	default:
		return "<invalid>"
	}
}

// Node flag bits.
const (
	flagStringEscaped uint8 = 1 << iota // slice contains at least one backslash escape
	flagNumberFloat                     // slice contains '.', 'e', or 'E'
)

// noneIndex is the sentinel "no such node" index, used for first_child,
// next_sibling, and the root slot of an empty store.
const noneIndex int32 = -1

// ast is the flat, index-addressed, structure-of-arrays representation of a
// parsed JSON document. It is built once per parse by the
// [tokenizer], owned by it, and reset at the start of every tokenize call;
// its backing arrays are retained and reused across parses on the same
// [Environment].
//
// A node's index is stable for the life of the parse. Object node children
// are Field nodes; each Field has exactly two children, in order: name
// (String) then value (any). Array node children are value nodes linked by
// nextSibling. first_child == noneIndex iff the container is empty;
// sibling chains are terminated by nextSibling == noneIndex.
type ast struct {
	types       []nodeType
	starts      []int32
	ends        []int32
	firstChild  []int32
	nextSibling []int32
	flags       []uint8
	hashes      []uint32

	root int32
}

// reset empties the store for reuse, retaining its backing arrays' capacity.
func (a *ast) reset() {
	a.types = a.types[:0]
	a.starts = a.starts[:0]
	a.ends = a.ends[:0]
	a.firstChild = a.firstChild[:0]
	a.nextSibling = a.nextSibling[:0]
	a.flags = a.flags[:0]
	a.hashes = a.hashes[:0]
	a.root = noneIndex
}

// newNode appends a fresh node and returns its index. first_child and
// next_sibling both start as noneIndex.
func (a *ast) newNode(t nodeType, start, end int32, flags uint8) int32 {
	idx := int32(len(a.types))
	a.types = append(a.types, t)
	a.starts = append(a.starts, start)
	a.ends = append(a.ends, end)
	a.firstChild = append(a.firstChild, noneIndex)
	a.nextSibling = append(a.nextSibling, noneIndex)
	a.flags = append(a.flags, flags)
	a.hashes = append(a.hashes, 0)
	return idx
}

func (a *ast) setHash(idx int32, h uint32) { a.hashes[idx] = h }

func (a *ast) setFirstChild(parent, child int32) { a.firstChild[parent] = child }

func (a *ast) setNextSibling(node, sibling int32) { a.nextSibling[node] = sibling }

// appendChild links child onto the end of parent's child chain in O(children
// seen so far). The tokenizer does not use it: it keeps a "last child" cursor
// per open container on its work stack and links through the primitive
// operations above in O(1). Nothing else in this module calls it either.
func (a *ast) appendChild(parent, child int32) {
	if a.firstChild[parent] == noneIndex {
		a.firstChild[parent] = child
		return
	}
	last := a.firstChild[parent]
	for a.nextSibling[last] != noneIndex {
		last = a.nextSibling[last]
	}
	a.nextSibling[last] = child
}

func (a *ast) nodeType(idx int32) nodeType   { return a.types[idx] }
func (a *ast) start(idx int32) int32         { return a.starts[idx] }
func (a *ast) end(idx int32) int32           { return a.ends[idx] }
func (a *ast) firstChildOf(idx int32) int32  { return a.firstChild[idx] }
func (a *ast) nextSiblingOf(idx int32) int32 { return a.nextSibling[idx] }
func (a *ast) flagsOf(idx int32) uint8       { return a.flags[idx] }
func (a *ast) hashOf(idx int32) uint32       { return a.hashes[idx] }

func (a *ast) hasFlag(idx int32, bit uint8) bool { return a.flags[idx]&bit != 0 }
