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

import "fmt"

// cursor is a uniform byte-addressable view over any input container. It is
// the capability set every parse is built on: length, random byte access,
// zero-copy sub-slicing, and an escape hatch to the underlying contiguous
// bytes for zero-allocation number parsing.
//
// Implementations are tagged variants selected at bind time rather than an
// interface reached through a v-table on the tokenizer's hot loop; the
// interface below exists for the handful of call sites (mostly tests and
// the [ContainerCursor] adapter boundary) that need to be polymorphic over
// cursor kind.
type cursor interface {
	// length returns the number of addressable bytes.
	length() int
	// byteAt returns the byte at index i, or ok=false if i is out of range.
	byteAt(i int) (b byte, ok bool)
	// rawSlice returns src[offset:offset+length] directly, without pool
	// involvement; callers that want pooled tracking go through
	// [Context.borrowSlice] instead.
	rawSlice(offset, length int) ([]byte, bool)
	// underlyingBytes returns the contiguous byte representation backing
	// this cursor, if one exists, or ok=false if it does not; numeric
	// parsers must fall back to a slice-based path in that case. Every
	// cursor in this package, [StringCursor] included, returns ok=true.
	underlyingBytes() (b []byte, ok bool)
}

// ByteCursor is a [cursor] over a plain byte slice: the identity adapter.
// This is what [Parse] uses internally for []byte input.
type ByteCursor struct {
	buf []byte
}

// NewByteCursor binds a ByteCursor to buf. The cursor aliases buf; buf must
// not be mutated for the lifetime of any parse using this cursor.
func NewByteCursor(buf []byte) *ByteCursor { return &ByteCursor{buf: buf} }

// Bind rebinds this cursor to a new buffer, so pooled cursors can be reused
// across parses without reallocating the wrapper.
func (c *ByteCursor) Bind(buf []byte) { c.buf = buf }

func (c *ByteCursor) length() int { return len(c.buf) }

func (c *ByteCursor) byteAt(i int) (byte, bool) {
	if i < 0 || i >= len(c.buf) {
		return 0, false
	}
	return c.buf[i], true
}

func (c *ByteCursor) rawSlice(offset, length int) ([]byte, bool) {
	if offset < 0 || length < 0 || offset+length > len(c.buf) {
		return nil, false
	}
	return c.buf[offset : offset+length], true
}

func (c *ByteCursor) underlyingBytes() ([]byte, bool) { return c.buf, true }

// ByteContainer is the capability set a caller-supplied buffer-type adapter
// must implement to be accepted by [ParseContainer]. It mirrors the access pattern
// of [ByteCursor] but without assuming the data is already a contiguous Go
// []byte — e.g. a direct/off-heap buffer, or a ring buffer.
//
// This interface is the seam external, non-core buffer-type adapters
// are expected to implement.
type ByteContainer interface {
	// Len returns the number of bytes in the container.
	Len() int
	// At returns the byte at index i.
	At(i int) byte
	// CopyTo copies container[offset:offset+length] into dst, which is at
	// least length bytes long, and returns the number of bytes copied.
	CopyTo(dst []byte, offset, length int) int
}

// ContainerCursor adapts an arbitrary [ByteContainer] to the cursor
// contract. Because the container is not assumed to be backed by a
// contiguous Go slice, this cursor copies the whole container into an
// internal reusable fallback buffer once per bind. The copy is made for
// every container, contiguous or not; there is no copy-free path.
type ContainerCursor struct {
	c        ByteContainer
	fallback []byte
}

// NewContainerCursor binds a ContainerCursor to c.
func NewContainerCursor(c ByteContainer) *ContainerCursor {
	cc := &ContainerCursor{}
	cc.Bind(c)
	return cc
}

// Bind rebinds this cursor to a new container, materializing it into the
// cursor's reusable fallback buffer exactly once.
func (c *ContainerCursor) Bind(cont ByteContainer) {
	c.c = cont
	n := cont.Len()
	if cap(c.fallback) < n {
		c.fallback = make([]byte, n)
	} else {
		c.fallback = c.fallback[:n]
	}
	cont.CopyTo(c.fallback, 0, n)
}

func (c *ContainerCursor) length() int { return len(c.fallback) }

func (c *ContainerCursor) byteAt(i int) (byte, bool) {
	if i < 0 || i >= len(c.fallback) {
		return 0, false
	}
	return c.fallback[i], true
}

func (c *ContainerCursor) rawSlice(offset, length int) ([]byte, bool) {
	if offset < 0 || length < 0 || offset+length > len(c.fallback) {
		return nil, false
	}
	return c.fallback[offset : offset+length], true
}

func (c *ContainerCursor) underlyingBytes() ([]byte, bool) { return c.fallback, true }

// StringCursor is a [cursor] over a Go string. It eagerly encodes to bytes
// on bind (a string's bytes are already UTF-8 and contiguous in Go, so this
// is a single conversion, not a decode), and its underlyingBytes escape
// hatch always succeeds because the encoding is always one byte-for-byte
// reinterpretation.
//
// Note: a character-backed cursor's natural
// offsets would be *character* positions, not byte offsets, for container
// types where the two differ. Because Go strings are UTF-8 byte sequences
// already, StringCursor's offsets are byte offsets throughout and this
// caveat does not apply to it; a future character-oriented cursor (e.g. for
// UTF-16-backed containers) would need its own offset convention and must
// not be taken down the byte-oriented numeric fast path.
type StringCursor struct {
	buf []byte
}

// NewStringCursor binds a StringCursor to s.
func NewStringCursor(s string) *StringCursor {
	c := &StringCursor{}
	c.Bind(s)
	return c
}

// Bind rebinds this cursor to a new string.
func (c *StringCursor) Bind(s string) { c.buf = []byte(s) }

func (c *StringCursor) length() int { return len(c.buf) }

func (c *StringCursor) byteAt(i int) (byte, bool) {
	if i < 0 || i >= len(c.buf) {
		return 0, false
	}
	return c.buf[i], true
}

func (c *StringCursor) rawSlice(offset, length int) ([]byte, bool) {
	if offset < 0 || length < 0 || offset+length > len(c.buf) {
		return nil, false
	}
	return c.buf[offset : offset+length], true
}

func (c *StringCursor) underlyingBytes() ([]byte, bool) { return c.buf, true }

// errIndex is a small helper for cursor range errors surfaced as
// [UsageError]s when a public API crosses from an internal bounds check.
func errIndex(i, n int) error {
	return newUsageError(usageIndexOutOfBounds, fmt.Sprintf("[0,%d)", n), fmt.Sprintf("%d", i))
}
