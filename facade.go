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

// This file holds the simple, one-shot entry points built on top of
// [Environment] and [Context] for callers that don't need to manage either
// explicitly; see doc.go for the package overview.
package lazyjson

// Document is the result of a one-shot [Parse], [ParseString], or
// [ParseContainer] call: the parsed root [View] plus the [Context] that
// produced it. Close must be called once the caller is done with Root and
// every view reachable from it.
//
// Document exists for casual, one-off parsing. A sustained, high-throughput
// workload should instead keep one [Environment] and [Context] alive across
// many parses via [Environment.OpenContext] and [Context.Parse], which
// amortizes pool and AST-store allocation across calls instead of paying
// for a fresh Environment on every Document.
type Document struct {
	// Root is the parsed document's root value.
	Root View

	ctx *Context
}

// Close releases every pooled view and slice produced by this Document's
// parse back to its (private, single-use) Environment.
func (d *Document) Close() { d.ctx.Close() }

// Parse tokenizes b and returns its root value wrapped in a [Document].
func Parse(b []byte, opts ...ParseOption) (*Document, error) {
	ctx := NewEnvironment().OpenContext()
	root, err := ctx.Parse(b, opts...)
	if err != nil {
		ctx.Close()
		return nil, err
	}
	return &Document{Root: root, ctx: ctx}, nil
}

// ParseString is like [Parse], but over a Go string.
func ParseString(s string, opts ...ParseOption) (*Document, error) {
	ctx := NewEnvironment().OpenContext()
	root, err := ctx.ParseString(s, opts...)
	if err != nil {
		ctx.Close()
		return nil, err
	}
	return &Document{Root: root, ctx: ctx}, nil
}

// ParseContainer is like [Parse], but over a caller-supplied
// [ByteContainer] adapter.
func ParseContainer(c ByteContainer, opts ...ParseOption) (*Document, error) {
	ctx := NewEnvironment().OpenContext()
	root, err := ctx.ParseContainer(c, opts...)
	if err != nil {
		ctx.Close()
		return nil, err
	}
	return &Document{Root: root, ctx: ctx}, nil
}

// ParseDetached tokenizes b and returns its root value as ordinary,
// garbage-collected views with no attached [Context] — no pool is
// involved, and nothing needs to be closed. This is the simplest possible
// entry point, appropriate for cold paths and tests; [Parse] and
// [Environment.OpenContext] are the amortized, high-throughput path.
func ParseDetached(b []byte, opts ...ParseOption) (View, error) {
	var tok tokenizer
	if err := tok.tokenize(b, resolveLimits(opts)); err != nil {
		return nil, err
	}
	return valueFromNode(&tok.store, b, nil, tok.store.root), nil
}

// StreamArray opens an [ArrayCursor] over a top-level JSON array in b,
// backed by a private, single-use [Environment]. The returned close
// function must be called once the caller is done walking the array.
func StreamArray(b []byte, opts ...ParseOption) (cursor *ArrayCursor, closeFn func(), err error) {
	ctx := NewEnvironment().OpenContext()
	cursor, err = ctx.StreamArray(b, opts...)
	if err != nil {
		ctx.Close()
		return nil, nil, err
	}
	return cursor, ctx.Close, nil
}

// OpenContext is a convenience for opening a [Context] against a
// brand-new, private [Environment], for a caller that wants to manage a
// Context's lifetime explicitly (reusing it across a hot loop) without
// needing to manage an Environment separately.
func OpenContext() *Context { return NewEnvironment().OpenContext() }
