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

// ArrayCursor incrementally walks a top-level JSON array one element at a
// time, without ever materializing an AST for elements the caller
// skips past or for elements already consumed. Each call to [Next]
// releases every view produced by the previous element back to the
// cursor's [Context] — a view returned by Next is only valid until the
// next call to Next or Skip.
type ArrayCursor struct {
	ctx    *Context
	src    []byte
	limits Limits

	pos     int
	started bool
	done    bool
}

func newArrayCursor(ctx *Context, input []byte, limits Limits) (*ArrayCursor, error) {
	pos := skipWS(input, 0)
	if pos >= len(input) || input[pos] != '[' {
		return nil, newParseError(errCodeUnexpected, pos, input, "expected '[' to stream an array")
	}
	return &ArrayCursor{ctx: ctx, src: input, limits: limits, pos: pos + 1}, nil
}

// HasNext reports whether another element remains, advancing past any
// comma or array-close token it needed to inspect to find out. Calling it
// more than once without an intervening [ArrayCursor.Next] or
// [ArrayCursor.Skip] is safe and idempotent.
func (c *ArrayCursor) HasNext() (bool, error) {
	if c.done {
		return false, nil
	}

	n := len(c.src)
	pos := skipWS(c.src, c.pos)
	if pos >= n {
		return false, newParseError(errCodeUnterminatedContainer, pos, c.src, "")
	}

	if !c.started {
		if c.src[pos] == ']' {
			c.pos, c.done = pos+1, true
			return false, nil
		}
		c.pos = pos
		return true, nil
	}

	switch c.src[pos] {
	case ']':
		c.pos, c.done = pos+1, true
		return false, nil
	case ',':
		pos = skipWS(c.src, pos+1)
		if pos >= n {
			return false, newParseError(errCodeUnterminatedContainer, pos, c.src, "")
		}
		if c.src[pos] == ']' {
			return false, newParseError(errCodeUnexpected, pos, c.src, "trailing comma before ']'")
		}
		// The separator is consumed and c.pos now sits on the element's
		// first byte, so a repeated call must take the !started path above.
		c.pos = pos
		c.started = false
		return true, nil
	default:
		return false, newParseError(errCodeUnexpected, pos, c.src, "expected ',' or ']'")
	}
}

// Peek reports the [ValueKind] of the next element without consuming it,
// or an error if the array has no next element or is malformed at that
// point.
func (c *ArrayCursor) Peek() (ValueKind, error) {
	has, err := c.HasNext()
	if err != nil {
		return 0, err
	}
	if !has {
		return 0, newUsageError(usageNotFound, "array element", "end of array")
	}
	switch c.src[c.pos] {
	case '{':
		return KindObject, nil
	case '[':
		return KindArray, nil
	case '"':
		return KindString, nil
	case 't', 'f':
		return KindBoolean, nil
	case 'n':
		return KindNull, nil
	default:
		return KindNumber, nil
	}
}

// Next parses and returns the array's next element, or a [UsageError]
// wrapping [ErrNotFound] if the array is exhausted. It releases every view
// the previous call to Next produced.
func (c *ArrayCursor) Next() (View, error) {
	has, err := c.HasNext()
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, newUsageError(usageNotFound, "array element", "end of array")
	}

	c.ctx.Reset()
	root, newPos, err := c.ctx.env.tok.parseValueAt(c.src, c.pos, c.limits)
	if err != nil {
		return nil, err
	}
	c.pos = newPos
	c.started = true
	return valueFromNode(&c.ctx.env.tok.store, c.src, c.ctx, root), nil
}

// Skip advances past the array's next element without materializing any
// AST nodes for it at all, not even transiently: it scans the element's
// raw bytes to find where it ends.
func (c *ArrayCursor) Skip() error {
	has, err := c.HasNext()
	if err != nil {
		return err
	}
	if !has {
		return newUsageError(usageNotFound, "array element", "end of array")
	}
	newPos, err := skipValue(c.src, c.pos)
	if err != nil {
		return err
	}
	c.pos = newPos
	c.started = true
	return nil
}

// NextString is a convenience for Next that also type-asserts the result,
// failing with a [UsageError] wrapping [ErrWrongType] if the next element
// is not a string.
func (c *ArrayCursor) NextString() (*String, error) {
	v, err := c.Next()
	if err != nil {
		return nil, err
	}
	s, ok := v.(*String)
	if !ok {
		return nil, newUsageError(usageWrongType, "string", v.Kind().String())
	}
	return s, nil
}

// NextNumber is a convenience for Next that also type-asserts the result,
// failing with a [UsageError] wrapping [ErrWrongType] if the next element
// is not a number.
func (c *ArrayCursor) NextNumber() (*Number, error) {
	v, err := c.Next()
	if err != nil {
		return nil, err
	}
	num, ok := v.(*Number)
	if !ok {
		return nil, newUsageError(usageWrongType, "number", v.Kind().String())
	}
	return num, nil
}

// Reset rebinds the cursor to input and rewinds it to the start of that
// array. It checks only that input opens with '['; the next call to
// HasNext/Next/Skip reads the array's first element token.
func (c *ArrayCursor) Reset(input []byte) error {
	pos := skipWS(input, 0)
	if pos >= len(input) || input[pos] != '[' {
		return newParseError(errCodeUnexpected, pos, input, "expected '[' to stream an array")
	}
	c.src = input
	c.pos = pos + 1
	c.started = false
	c.done = false
	return nil
}

// skipValue scans exactly one JSON value starting at pos (after
// whitespace) and returns the position just past it, without allocating
// an AST. Its validation is lighter than the tokenizer's: containers are
// skipped by counting their own open and close brackets outside strings,
// so commas, colons, field names and nested values inside a skipped
// container are not checked, and no [Limits] are applied.
func skipValue(src []byte, pos int) (int, error) {
	n := len(src)
	pos = skipWS(src, pos)
	if pos >= n {
		return pos, newParseError(errCodeUnterminatedContainer, pos, src, "")
	}
	switch src[pos] {
	case '{':
		return skipContainer(src, pos, '{', '}')
	case '[':
		return skipContainer(src, pos, '[', ']')
	case '"':
		return skipString(src, pos)
	case 't':
		return skipLiteral(src, pos, "true")
	case 'f':
		return skipLiteral(src, pos, "false")
	case 'n':
		return skipLiteral(src, pos, "null")
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return skipNumber(src, pos)
	default:
		return pos, newParseError(errCodeUnexpected, pos, src, "")
	}
}

func skipContainer(src []byte, pos int, open, closeByte byte) (int, error) {
	n := len(src)
	depth := 0
	for pos < n {
		c := src[pos]
		switch {
		case c == '"':
			newPos, err := skipString(src, pos)
			if err != nil {
				return pos, err
			}
			pos = newPos
			continue
		case c == open:
			depth++
		case c == closeByte:
			depth--
			if depth == 0 {
				return pos + 1, nil
			}
		}
		pos++
	}
	return pos, newParseError(errCodeUnterminatedContainer, pos, src, "")
}

func skipString(src []byte, pos int) (int, error) {
	n := len(src)
	i := pos + 1
	for {
		if i >= n {
			return pos, newParseError(errCodeUnterminatedString, pos, src, "")
		}
		switch src[i] {
		case '"':
			return i + 1, nil
		case '\\':
			i += 2
		default:
			i++
		}
	}
}

func skipNumber(src []byte, pos int) (int, error) {
	n := len(src)
	i := pos
	if src[i] == '-' {
		i++
	}
	if i >= n || !isDigit(src[i]) {
		return pos, newParseError(errCodeInvalidNumber, pos, src, "")
	}
	for i < n && isDigit(src[i]) {
		i++
	}
	if i < n && src[i] == '.' {
		i++
		for i < n && isDigit(src[i]) {
			i++
		}
	}
	if i < n && (src[i] == 'e' || src[i] == 'E') {
		i++
		if i < n && (src[i] == '+' || src[i] == '-') {
			i++
		}
		for i < n && isDigit(src[i]) {
			i++
		}
	}
	return i, nil
}

func skipLiteral(src []byte, pos int, lit string) (int, error) {
	if pos+len(lit) > len(src) {
		return pos, newParseError(errCodeUnterminatedLiteral, pos, src, "")
	}
	for i := 0; i < len(lit); i++ {
		if src[pos+i] != lit[i] {
			return pos, newParseError(errCodeUnexpected, pos+i, src, "")
		}
	}
	return pos + len(lit), nil
}
