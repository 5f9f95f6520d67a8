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
	"github.com/quantjson/lazyjson/internal/debug"
	"github.com/quantjson/lazyjson/internal/scratch"
)

// trackInline is the size of a [trackList]'s unboxed inline array: most
// documents touch far fewer than this many views of any one kind per
// parse, so the common case tracks with zero allocation; a spillover slice
// picks up anything beyond it.
const trackInline = 8

// trackList is the list a [Context] uses to remember every pooled value of
// one kind it has handed out, so [Context.reset] can release all of them
// in one pass.
type trackList[T any] struct {
	inline [trackInline]*T
	n      int
	spill  []*T
}

func (t *trackList[T]) push(v *T) {
	if t.n < len(t.inline) {
		t.inline[t.n] = v
		t.n++
		return
	}
	t.spill = append(t.spill, v)
}

func (t *trackList[T]) each(f func(*T)) {
	for i := 0; i < t.n; i++ {
		f(t.inline[i])
	}
	for _, v := range t.spill {
		f(v)
	}
}

func (t *trackList[T]) reset() {
	for i := 0; i < t.n; i++ {
		t.inline[i] = nil
	}
	t.n = 0
	t.spill = t.spill[:0]
}

// Context is a parse arena: the scope of a single logical parse (or
// a single logical stream-array cursor), scoped to one [Environment] and
// one goroutine. Every pooled [View] and [Slice] handed out while the
// Context is open is remembered so [Context.Close] — or the next
// [Context.Parse], which implicitly resets — can return all of it to the
// Environment's pools in one pass.
//
// Contexts are meant to be reused across many parses in a hot loop:
//
//	ctx := env.OpenContext()
//	defer ctx.Close()
//	for msg := range messages {
//		root, err := ctx.Parse(msg)
//		...
//		ctx.Reset() // release everything from this iteration before the next
//	}
type Context struct {
	env *Environment

	cur cursor
	src []byte

	root int32

	objects trackList[Object]
	arrays  trackList[Array]
	strings trackList[String]
	numbers trackList[Number]
	slices  trackList[Slice]

	idx scratch.Int32Arrays

	open bool
}

func (ctx *Context) assertOpen() {
	if debug.Enabled {
		debug.Assert(ctx.open, "lazyjson: use of a Context after Close")
	}
}

// Parse tokenizes input and returns a [View] over its root value, scoped to
// ctx. input must not be mutated while any view or slice borrowed from ctx
// is still live.
func (ctx *Context) Parse(input []byte, opts ...ParseOption) (View, error) {
	ctx.assertOpen()
	ctx.env.checkAffinity()
	ctx.Reset()

	ctx.env.byteCur.Bind(input)
	return ctx.parseFrom(&ctx.env.byteCur, resolveLimits(opts))
}

// ParseString is like [Context.Parse] but over a Go string, avoiding the
// []byte conversion an already-contiguous string would otherwise need.
func (ctx *Context) ParseString(s string, opts ...ParseOption) (View, error) {
	ctx.assertOpen()
	ctx.env.checkAffinity()
	ctx.Reset()

	ctx.env.strCur.Bind(s)
	return ctx.parseFrom(&ctx.env.strCur, resolveLimits(opts))
}

// ParseContainer is like [Context.Parse] but over a caller-supplied
// [ByteContainer] adapter (buffer types outside the core byte/string cases
// plug in here).
func (ctx *Context) ParseContainer(c ByteContainer, opts ...ParseOption) (View, error) {
	ctx.assertOpen()
	ctx.env.checkAffinity()
	ctx.Reset()

	ctx.env.contCur.Bind(c)
	return ctx.parseFrom(&ctx.env.contCur, resolveLimits(opts))
}

func (ctx *Context) parseFrom(c cursor, limits Limits) (View, error) {
	b, ok := c.underlyingBytes()
	if !ok {
		return nil, newUsageError(usageWrongType, "byte-addressable input", "non-contiguous cursor")
	}

	if err := ctx.env.tok.tokenize(b, limits); err != nil {
		ctx.cur, ctx.src, ctx.root = nil, nil, noneIndex
		return nil, err
	}

	ctx.cur = c
	ctx.src = b
	ctx.root = ctx.env.tok.store.root
	return valueFromNode(&ctx.env.tok.store, ctx.src, ctx, ctx.root), nil
}

// StreamArray opens an incremental [ArrayCursor] over a top-level JSON
// array without materializing an AST for elements the caller never visits.
// Unlike [Context.Parse], the underlying tokenizer frame advances lazily
// as the returned cursor is walked.
func (ctx *Context) StreamArray(input []byte, opts ...ParseOption) (*ArrayCursor, error) {
	ctx.assertOpen()
	ctx.env.checkAffinity()
	ctx.Reset()

	return newArrayCursor(ctx, input, resolveLimits(opts))
}

// Reset releases every view and slice ctx is currently tracking back to
// its Environment's pools, and rewinds ctx's scratch index arrays. It does
// not close ctx; call [Context.Parse] again, or [Context.Close] when done.
func (ctx *Context) Reset() {
	ctx.objects.each(func(o *Object) { ctx.env.objects.Release(o) })
	ctx.arrays.each(func(a *Array) { ctx.env.arrays.Release(a) })
	ctx.strings.each(func(s *String) { ctx.env.strings.Release(s) })
	ctx.numbers.each(func(n *Number) { ctx.env.numbers.Release(n) })
	ctx.slices.each(func(s *Slice) { ctx.env.slices.Release(s) })

	ctx.objects.reset()
	ctx.arrays.reset()
	ctx.strings.reset()
	ctx.numbers.reset()
	ctx.slices.reset()

	ctx.idx.Reset()
	ctx.cur = nil
	ctx.src = nil
	ctx.root = noneIndex
}

// Close releases every view and slice ctx is tracking and marks ctx
// unusable until it is reopened via [Environment.OpenContext]. Calling
// Close on an already-closed Context is a no-op.
func (ctx *Context) Close() {
	if !ctx.open {
		return
	}
	ctx.Reset()
	ctx.open = false
}

func (ctx *Context) borrowObject(store *ast, src []byte, node int32) *Object {
	if ctx == nil {
		return &Object{binding: binding{store: store, src: src, node: node}}
	}
	o := ctx.env.objects.Acquire()
	o.binding = binding{store: store, src: src, node: node, ctx: ctx}
	ctx.objects.push(o)
	return o
}

func (ctx *Context) borrowArray(store *ast, src []byte, node int32) *Array {
	if ctx == nil {
		return &Array{binding: binding{store: store, src: src, node: node}}
	}
	a := ctx.env.arrays.Acquire()
	a.binding = binding{store: store, src: src, node: node, ctx: ctx}
	ctx.arrays.push(a)
	return a
}

func (ctx *Context) borrowString(store *ast, src []byte, node int32) *String {
	if ctx == nil {
		return &String{binding: binding{store: store, src: src, node: node}}
	}
	s := ctx.env.strings.Acquire()
	s.binding = binding{store: store, src: src, node: node, ctx: ctx}
	ctx.strings.push(s)
	return s
}

func (ctx *Context) borrowNumber(store *ast, src []byte, node int32) *Number {
	if ctx == nil {
		return &Number{binding: binding{store: store, src: src, node: node}}
	}
	n := ctx.env.numbers.Acquire()
	n.binding = binding{store: store, src: src, node: node, ctx: ctx}
	ctx.numbers.push(n)
	return n
}

// borrowSlice returns a [Slice] over src[offset:offset+length], tracked by
// ctx (if any) so a fresh value can be reused from ctx's Environment on the
// next reset instead of handing out a brand-new one every call.
func (ctx *Context) borrowSlice(src []byte, offset, length int) Slice {
	if ctx == nil {
		return newSlice(src, offset, length)
	}
	s := ctx.env.slices.Acquire()
	*s = newSlice(src, offset, length)
	ctx.slices.push(s)
	return *s
}

// scratchIndices returns the next round-robin int32 scratch buffer, or a
// fresh zero-length slice with no backing Context.
func (ctx *Context) scratchIndices() []int32 {
	if ctx == nil {
		return nil
	}
	return ctx.idx.Next()
}
