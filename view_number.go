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

import "math/big"

// Number is a lazy view over a JSON number's raw decimal text.
// Nothing is parsed until one of the As* accessors is called, and each is
// memoized independently after its first call.
type Number struct {
	binding

	longVal     int64
	longKnown   bool
	intVal      int32
	intKnown    bool
	doubleVal   float64
	doubleKnown bool
	floatVal    float32
	floatKnown  bool
}

func bindNumber(store *ast, src []byte, ctx *Context, node int32) *Number {
	return ctx.borrowNumber(store, src, node)
}

func (n *Number) reset() {
	n.binding.reset()
	n.longVal, n.longKnown = 0, false
	n.intVal, n.intKnown = 0, false
	n.doubleVal, n.doubleKnown = 0, false
	n.floatVal, n.floatKnown = 0, false
}

// Kind implements [View].
func (n *Number) Kind() ValueKind { return KindNumber }

func (n *Number) rawBytes() []byte { return n.src[n.store.start(n.node):n.store.end(n.node)] }

// Raw returns a zero-copy [Slice] over the number's raw decimal text.
func (n *Number) Raw() Slice {
	start := int(n.store.start(n.node))
	end := int(n.store.end(n.node))
	return n.ctx.borrowSlice(n.src, start, end-start)
}

// IsInteger reports whether the number's text contains none of '.', 'e',
// or 'E' — i.e. whether it can be represented exactly as an integer
// without rounding.
func (n *Number) IsInteger() bool { return !n.store.hasFlag(n.node, flagNumberFloat) }

// IsNegative reports whether the number's text begins with '-'.
func (n *Number) IsNegative() bool {
	b := n.rawBytes()
	return len(b) > 0 && b[0] == '-'
}

// AsLong parses the number as a signed 64-bit integer, memoized after the
// first successful call. Fails with [ErrOverflow] if the value (or its
// double-narrowed form, for non-integer text) does not fit in an int64.
func (n *Number) AsLong() (int64, error) {
	if n.longKnown {
		return n.longVal, nil
	}
	v, err := ParseLong(n.rawBytes())
	if err != nil {
		return 0, err
	}
	n.longVal, n.longKnown = v, true
	return v, nil
}

// AsInt parses the number as a signed 32-bit integer, memoized after the
// first successful call.
func (n *Number) AsInt() (int32, error) {
	if n.intKnown {
		return n.intVal, nil
	}
	v, err := ParseInt(n.rawBytes())
	if err != nil {
		return 0, err
	}
	n.intVal, n.intKnown = v, true
	return v, nil
}

// AsDouble parses the number as a float64, memoized after the first
// successful call.
func (n *Number) AsDouble() (float64, error) {
	if n.doubleKnown {
		return n.doubleVal, nil
	}
	v, err := ParseDouble(n.rawBytes())
	if err != nil {
		return 0, err
	}
	n.doubleVal, n.doubleKnown = v, true
	return v, nil
}

// AsFloat parses the number as a float32, memoized after the first
// successful call.
func (n *Number) AsFloat() (float32, error) {
	if n.floatKnown {
		return n.floatVal, nil
	}
	v, err := ParseFloat(n.rawBytes())
	if err != nil {
		return 0, err
	}
	n.floatVal, n.floatKnown = v, true
	return v, nil
}

// AsBigDecimal parses the number as an arbitrary-precision decimal. Never
// memoized: this path already allocates on every call.
func (n *Number) AsBigDecimal() (*big.Float, error) { return ParseBigDecimal(n.rawBytes()) }

// AsBigInteger parses the number as an arbitrary-precision integer. Never
// memoized, for the same reason as [Number.AsBigDecimal]. Fails if the
// number's text is not a plain integer (see [Number.IsInteger]).
func (n *Number) AsBigInteger() (*big.Int, error) { return ParseBigInt(n.rawBytes()) }

func (n *Number) String() string { return string(n.rawBytes()) }
