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

// Limits bounds the resources a single parse may consume. Exceeding
// MaxDepth is reported as a [ParseError] wrapping [ErrNestingTooDeep];
// exceeding any of the others, as a [ParseError] wrapping [ErrLimitExceeded].
type Limits struct {
	MaxDepth         int // default 100
	MaxStringBytes   int // default 1 MiB
	MaxNumberBytes   int // default 1,000
	MaxArrayElements int // default 100,000
	MaxObjectFields  int // default 100,000
}

// DefaultLimits returns the default resource limits.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:         100,
		MaxStringBytes:   1 << 20,
		MaxNumberBytes:   1000,
		MaxArrayElements: 100_000,
		MaxObjectFields:  100_000,
	}
}

// awaitState is the tokenizer's per-frame expectation: what kind of token is
// structurally valid next, given where we are inside an open container.
type awaitState uint8

const (
	awaitArrayValueOrClose awaitState = iota
	awaitArrayValue
	awaitArrayCommaOrClose
	awaitObjectKeyOrClose
	awaitObjectKey
	awaitObjectColon
	awaitObjectValue
	awaitObjectCommaOrClose
)

// frame is one entry of the tokenizer's explicit work stack, holding
// (parent node, expected state) so nested containers are walked iteratively
// instead of recursively. node is the Object/Array node this frame is
// building; lastChild is the most recently linked field (object) or value
// (array); pendingField, for objects, is the Field node whose name has been
// read and which is awaiting its value.
type frame struct {
	node         int32
	kind         nodeType
	state        awaitState
	lastChild    int32
	pendingField int32
	count        int
}

// tokenizer performs a single-pass parse of a complete JSON value from a
// byte buffer into an [ast] store. It owns the store it builds,
// resets it at the start of every call, and retains its backing arrays
// across calls so a hot parse loop does not re-allocate the AST on every
// message.
type tokenizer struct {
	store ast
	stack []frame
}

// tokenize resets the store and parses src into it, honoring limits. On
// success, t.store.root is the index of the parsed document's root node.
func (t *tokenizer) tokenize(src []byte, limits Limits) error {
	t.store.reset()
	t.stack = t.stack[:0]

	n := len(src)
	pos := skipWS(src, 0)
	if pos >= n {
		return newParseError(errCodeEmpty, 0, src, "")
	}

	for {
		if len(t.stack) == 0 {
			if t.store.root != noneIndex {
				break
			}
			var err error
			pos, err = t.stepRoot(src, pos, limits)
			if err != nil {
				return err
			}
			continue
		}

		idx := len(t.stack) - 1
		var err error
		pos, err = t.stepFrame(src, pos, idx, limits)
		if err != nil {
			return err
		}
	}

	pos = skipWS(src, pos)
	if pos < n {
		return newParseError(errCodeTrailingGarbage, pos, src, "")
	}
	return nil
}

// stepRoot advances parsing when no container is open yet: the only legal
// thing to see is the start of the document's single root value.
func (t *tokenizer) stepRoot(src []byte, pos int, limits Limits) (int, error) {
	n := len(src)
	pos = skipWS(src, pos)
	if pos >= n {
		return pos, newParseError(errCodeUnterminatedContainer, pos, src, "")
	}
	switch src[pos] {
	case '{':
		if err := t.push(ntObject, pos, limits); err != nil {
			return pos, err
		}
		return pos + 1, nil
	case '[':
		if err := t.push(ntArray, pos, limits); err != nil {
			return pos, err
		}
		return pos + 1, nil
	default:
		node, newPos, err := t.parseScalar(src, pos, limits)
		if err != nil {
			return pos, err
		}
		t.store.root = node
		return newPos, nil
	}
}

// stepFrame advances parsing by one token within the container at
// t.stack[idx], the current top of the work stack.
func (t *tokenizer) stepFrame(src []byte, pos int, idx int, limits Limits) (int, error) {
	n := len(src)
	switch t.stack[idx].state {
	case awaitObjectKeyOrClose, awaitObjectKey:
		pos = skipWS(src, pos)
		if pos >= n {
			return pos, newParseError(errCodeUnterminatedContainer, pos, src, "")
		}
		c := src[pos]
		if c == '}' {
			if t.stack[idx].state == awaitObjectKey {
				return pos, newParseError(errCodeUnexpected, pos, src, "trailing comma before '}'")
			}
			return t.closeContainer(src, idx, pos+1, limits)
		}
		if c != '"' {
			return pos, newParseError(errCodeUnexpected, pos, src, "expected a field name")
		}
		nameNode, newPos, h, err := t.parseString(src, pos, limits, true)
		if err != nil {
			return pos, err
		}
		fieldNode := t.store.newNode(ntField, t.store.start(nameNode), t.store.end(nameNode), 0)
		t.store.setFirstChild(fieldNode, nameNode)
		t.store.setHash(nameNode, h)

		objNode := t.stack[idx].node
		if t.stack[idx].lastChild == noneIndex {
			t.store.setFirstChild(objNode, fieldNode)
		} else {
			t.store.setNextSibling(t.stack[idx].lastChild, fieldNode)
		}
		t.stack[idx].lastChild = fieldNode
		t.stack[idx].pendingField = fieldNode
		t.stack[idx].count++
		if t.stack[idx].count > limits.MaxObjectFields {
			return pos, newParseError(errCodeLimitExceeded, pos, src, "too many object fields")
		}
		t.stack[idx].state = awaitObjectColon
		return newPos, nil

	case awaitObjectColon:
		pos = skipWS(src, pos)
		if pos >= n {
			return pos, newParseError(errCodeUnterminatedContainer, pos, src, "")
		}
		if src[pos] != ':' {
			return pos, newParseError(errCodeUnexpected, pos, src, "expected ':'")
		}
		t.stack[idx].state = awaitObjectValue
		return pos + 1, nil

	case awaitObjectValue:
		pos = skipWS(src, pos)
		if pos >= n {
			return pos, newParseError(errCodeUnterminatedContainer, pos, src, "")
		}
		switch src[pos] {
		case '{':
			if err := t.push(ntObject, pos, limits); err != nil {
				return pos, err
			}
			return pos + 1, nil
		case '[':
			if err := t.push(ntArray, pos, limits); err != nil {
				return pos, err
			}
			return pos + 1, nil
		default:
			node, newPos, err := t.parseScalar(src, pos, limits)
			if err != nil {
				return pos, err
			}
			if err := t.attachValue(idx, node, pos, src, limits); err != nil {
				return pos, err
			}
			return newPos, nil
		}

	case awaitObjectCommaOrClose:
		pos = skipWS(src, pos)
		if pos >= n {
			return pos, newParseError(errCodeUnterminatedContainer, pos, src, "")
		}
		switch src[pos] {
		case ',':
			t.stack[idx].state = awaitObjectKey
			return pos + 1, nil
		case '}':
			return t.closeContainer(src, idx, pos+1, limits)
		default:
			return pos, newParseError(errCodeUnexpected, pos, src, "expected ',' or '}'")
		}

	case awaitArrayValueOrClose, awaitArrayValue:
		pos = skipWS(src, pos)
		if pos >= n {
			return pos, newParseError(errCodeUnterminatedContainer, pos, src, "")
		}
		c := src[pos]
		if c == ']' {
			if t.stack[idx].state == awaitArrayValue {
				return pos, newParseError(errCodeUnexpected, pos, src, "trailing comma before ']'")
			}
			return t.closeContainer(src, idx, pos+1, limits)
		}
		switch c {
		case '{':
			if err := t.push(ntObject, pos, limits); err != nil {
				return pos, err
			}
			return pos + 1, nil
		case '[':
			if err := t.push(ntArray, pos, limits); err != nil {
				return pos, err
			}
			return pos + 1, nil
		default:
			node, newPos, err := t.parseScalar(src, pos, limits)
			if err != nil {
				return pos, err
			}
			if err := t.attachValue(idx, node, pos, src, limits); err != nil {
				return pos, err
			}
			return newPos, nil
		}

	case awaitArrayCommaOrClose:
		pos = skipWS(src, pos)
		if pos >= n {
			return pos, newParseError(errCodeUnterminatedContainer, pos, src, "")
		}
		switch src[pos] {
		case ',':
			t.stack[idx].state = awaitArrayValue
			return pos + 1, nil
		case ']':
			return t.closeContainer(src, idx, pos+1, limits)
		default:
			return pos, newParseError(errCodeUnexpected, pos, src, "expected ',' or ']'")
		}
	}

	panic("lazyjson: unreachable tokenizer state")
}

// push opens a new container frame for a '{' or '[' encountered at pos,
// enforcing the configured nesting depth.
func (t *tokenizer) push(kind nodeType, pos int, limits Limits) error {
	if len(t.stack)+1 > limits.MaxDepth {
		return newParseError(errCodeNestingTooDeep, pos, nil, "")
	}
	node := t.store.newNode(kind, int32(pos), int32(pos), 0)
	var state awaitState
	if kind == ntObject {
		state = awaitObjectKeyOrClose
	} else {
		state = awaitArrayValueOrClose
	}
	t.stack = append(t.stack, frame{node: node, kind: kind, state: state, lastChild: noneIndex, pendingField: noneIndex})
	return nil
}

// closeContainer finalizes the container at t.stack[idx] (which must be the
// top of the stack), recording its end offset, popping it, and attaching it
// as a value to whatever frame (or the root) now sits above it.
func (t *tokenizer) closeContainer(src []byte, idx int, newPos int, limits Limits) (int, error) {
	node := t.stack[idx].node
	startPos := int(t.store.start(node))
	t.store.ends[node] = int32(newPos)
	t.stack = t.stack[:idx]
	if err := t.attachValue(idx-1, node, startPos, src, limits); err != nil {
		return newPos, err
	}
	return newPos, nil
}

// attachValue links a just-produced value node (scalar or freshly closed
// container) into the frame now at parentIdx, or sets it as the document
// root if parentIdx < 0 (i.e. the stack is now empty). pos is the offset the
// value started at, used only to locate a MaxArrayElements violation.
func (t *tokenizer) attachValue(parentIdx int, value int32, pos int, src []byte, limits Limits) error {
	if parentIdx < 0 {
		t.store.root = value
		return nil
	}
	switch t.stack[parentIdx].kind {
	case ntArray:
		if t.stack[parentIdx].lastChild == noneIndex {
			t.store.setFirstChild(t.stack[parentIdx].node, value)
		} else {
			t.store.setNextSibling(t.stack[parentIdx].lastChild, value)
		}
		t.stack[parentIdx].lastChild = value
		t.stack[parentIdx].count++
		t.stack[parentIdx].state = awaitArrayCommaOrClose
		if t.stack[parentIdx].count > limits.MaxArrayElements {
			return newParseError(errCodeLimitExceeded, pos, src, "too many array elements")
		}
	case ntObject:
		nameNode := t.store.firstChildOf(t.stack[parentIdx].pendingField)
		t.store.setNextSibling(nameNode, value)
		t.stack[parentIdx].pendingField = noneIndex
		t.stack[parentIdx].state = awaitObjectCommaOrClose
	}
	return nil
}

// parseScalar parses a string, number, or true/false/null literal starting
// at pos.
func (t *tokenizer) parseScalar(src []byte, pos int, limits Limits) (int32, int, error) {
	switch c := src[pos]; {
	case c == '"':
		node, newPos, _, err := t.parseString(src, pos, limits, false)
		return node, newPos, err
	case c == '-' || (c >= '0' && c <= '9'):
		return t.parseNumber(src, pos, limits)
	case c == 't':
		return t.parseLiteral(src, pos, "true", ntBoolTrue)
	case c == 'f':
		return t.parseLiteral(src, pos, "false", ntBoolFalse)
	case c == 'n':
		return t.parseLiteral(src, pos, "null", ntNull)
	default:
		return 0, pos, newParseError(errCodeUnexpected, pos, src, "")
	}
}

func (t *tokenizer) parseLiteral(src []byte, pos int, lit string, nt nodeType) (int32, int, error) {
	n := len(src)
	if pos+len(lit) > n {
		return 0, pos, newParseError(errCodeUnterminatedLiteral, pos, src, "")
	}
	for i := 0; i < len(lit); i++ {
		if src[pos+i] != lit[i] {
			return 0, pos, newParseError(errCodeUnexpected, pos+i, src, "")
		}
	}
	node := t.store.newNode(nt, int32(pos), int32(pos+len(lit)), 0)
	return node, pos + len(lit), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// parseNumber parses a JSON number per the standard grammar: optional leading '-',
// one or more digits, optional fractional '.digits', optional
// '[eE][+-]?digits'.
func (t *tokenizer) parseNumber(src []byte, pos int, limits Limits) (int32, int, error) {
	n := len(src)
	start := pos
	i := pos
	if src[i] == '-' {
		i++
	}
	if i >= n || !isDigit(src[i]) {
		return 0, pos, newParseError(errCodeInvalidNumber, start, src, "")
	}
	if src[i] == '0' {
		i++
	} else {
		for i < n && isDigit(src[i]) {
			i++
		}
	}

	isFloat := false
	if i < n && src[i] == '.' {
		isFloat = true
		i++
		if i >= n || !isDigit(src[i]) {
			return 0, pos, newParseError(errCodeInvalidNumber, start, src, "")
		}
		for i < n && isDigit(src[i]) {
			i++
		}
	}
	if i < n && (src[i] == 'e' || src[i] == 'E') {
		isFloat = true
		i++
		if i < n && (src[i] == '+' || src[i] == '-') {
			i++
		}
		if i >= n || !isDigit(src[i]) {
			return 0, pos, newParseError(errCodeInvalidNumber, start, src, "")
		}
		for i < n && isDigit(src[i]) {
			i++
		}
	}

	if i-start > limits.MaxNumberBytes {
		return 0, pos, newParseError(errCodeLimitExceeded, start, src, "number too long")
	}

	var flags uint8
	if isFloat {
		flags |= flagNumberFloat
	}
	node := t.store.newNode(ntNumber, int32(start), int32(i), flags)
	return node, i, nil
}

// parseString parses a quoted string starting at pos (src[pos] == '"').
// When forFieldName is true, the polynomial hash of the raw (still-escaped)
// content is computed and returned for the caller to stash on the
// surrounding Field node's name, so object field lookup can hash-prefilter
// before ever decoding escapes.
func (t *tokenizer) parseString(src []byte, pos int, limits Limits, forFieldName bool) (int32, int, uint32, error) {
	n := len(src)
	start := pos + 1
	i := start
	escaped := false

	for {
		if i >= n {
			return 0, pos, 0, newParseError(errCodeUnterminatedString, pos, src, "")
		}
		c := src[i]
		switch {
		case c == '"':
			end := i
			i++
			length := end - start
			if length > limits.MaxStringBytes {
				return 0, pos, 0, newParseError(errCodeLimitExceeded, pos, src, "string too long")
			}
			var flags uint8
			if escaped {
				flags |= flagStringEscaped
			}
			node := t.store.newNode(ntString, int32(start), int32(end), flags)
			var h uint32
			if forFieldName {
				h = hash.Bytes(src[start:end])
			}
			return node, i, h, nil
		case c == '\\':
			escaped = true
			i++
			if i >= n {
				return 0, pos, 0, newParseError(errCodeUnterminatedString, i, src, "")
			}
			switch src[i] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i++
			case 'u':
				i++
				if i+4 > n {
					return 0, pos, 0, newParseError(errCodeInvalidUnicodeEscape, i-1, src, "")
				}
				for k := 0; k < 4; k++ {
					if !isHex(src[i+k]) {
						return 0, pos, 0, newParseError(errCodeInvalidUnicodeEscape, i-1, src, "")
					}
				}
				i += 4
			default:
				return 0, pos, 0, newParseError(errCodeInvalidEscape, i, src, "")
			}
		case c < 0x20:
			return 0, pos, 0, newParseError(errCodeUnexpected, i, src, "unescaped control character in string")
		default:
			i++
		}
	}
}

// parseValueAt resets the store and parses exactly one JSON value starting
// at pos (after skipping leading whitespace), without requiring the value
// to consume the rest of src. This is the entry point [ArrayCursor] uses to
// parse one array element at a time instead of tokenizing the whole
// document up front.
func (t *tokenizer) parseValueAt(src []byte, pos int, limits Limits) (int32, int, error) {
	t.store.reset()
	t.stack = t.stack[:0]

	pos = skipWS(src, pos)
	if pos >= len(src) {
		return 0, pos, newParseError(errCodeUnterminatedContainer, pos, src, "")
	}

	pos, err := t.stepRoot(src, pos, limits)
	if err != nil {
		return 0, pos, err
	}
	for len(t.stack) > 0 {
		idx := len(t.stack) - 1
		pos, err = t.stepFrame(src, pos, idx, limits)
		if err != nil {
			return 0, pos, err
		}
	}
	return t.store.root, pos, nil
}

func skipWS(src []byte, pos int) int {
	n := len(src)
	for pos < n {
		switch src[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}
