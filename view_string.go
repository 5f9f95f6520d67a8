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
	"math/big"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// String is a lazy view over a JSON string's raw, still-encoded bytes.
// Byte-oriented operations ([String.ByteLength], [String.ByteAt],
// [String.Raw]) never decode escapes and never allocate. [String.ToString]
// decodes `\" \\ \/ \b \f \n \r \t` and `\uXXXX` escapes (including
// surrogate pairs) into a materialized Go string, memoized after the first
// call.
type String struct {
	binding

	decoded      string
	decodedKnown bool

	longVal     int64
	longKnown   bool
	intVal      int32
	intKnown    bool
	doubleVal   float64
	doubleKnown bool
	floatVal    float32
	floatKnown  bool
}

func bindString(store *ast, src []byte, ctx *Context, node int32) *String {
	return ctx.borrowString(store, src, node)
}

func (s *String) reset() {
	s.binding.reset()
	s.decoded, s.decodedKnown = "", false
	s.longVal, s.longKnown = 0, false
	s.intVal, s.intKnown = 0, false
	s.doubleVal, s.doubleKnown = 0, false
	s.floatVal, s.floatKnown = 0, false
}

// Kind implements [View].
func (s *String) Kind() ValueKind { return KindString }

func (s *String) rawBytes() []byte { return s.src[s.store.start(s.node):s.store.end(s.node)] }

func (s *String) escaped() bool { return s.store.hasFlag(s.node, flagStringEscaped) }

// ByteLength returns the length, in bytes, of the string's raw encoded
// content (i.e. before decoding any escapes).
func (s *String) ByteLength() int { return int(s.store.end(s.node) - s.store.start(s.node)) }

// IsEmpty reports whether the string's raw encoded content has zero length.
func (s *String) IsEmpty() bool { return s.ByteLength() == 0 }

// ByteAt returns the raw encoded byte at index i, without decoding escapes.
func (s *String) ByteAt(i int) (byte, error) {
	n := s.ByteLength()
	if i < 0 || i >= n {
		return 0, errIndex(i, n)
	}
	return s.rawBytes()[i], nil
}

// Raw returns a zero-copy [Slice] over the string's raw encoded content.
func (s *String) Raw() Slice {
	start := int(s.store.start(s.node))
	return s.ctx.borrowSlice(s.src, start, s.ByteLength())
}

// ToString decodes the string's escapes and returns the result. The first
// call materializes and memoizes the result; subsequent calls are free.
func (s *String) ToString() string {
	if s.decodedKnown {
		return s.decoded
	}
	raw := s.rawBytes()
	if s.escaped() {
		s.decoded = decodeJSONEscapes(raw)
	} else {
		s.decoded = string(raw)
	}
	s.decodedKnown = true
	return s.decoded
}

// Equals reports whether s and other have the same decoded content.
func (s *String) Equals(other *String) bool { return s.ToString() == other.ToString() }

// EqualsString reports whether s's decoded content equals q.
func (s *String) EqualsString(q string) bool {
	if !s.escaped() {
		return string(s.rawBytes()) == q
	}
	return s.ToString() == q
}

// EqualsBytes reports whether s's decoded content, encoded as UTF-8, equals
// b byte for byte.
func (s *String) EqualsBytes(b []byte) bool {
	if !s.escaped() {
		return string(s.rawBytes()) == string(b)
	}
	return s.ToString() == string(b)
}

// AppendTo appends the string's decoded content to dst and returns the
// extended slice, without an intermediate string allocation when the raw
// content contains no escapes.
func (s *String) AppendTo(dst []byte) []byte {
	if !s.escaped() {
		return append(dst, s.rawBytes()...)
	}
	return append(dst, s.ToString()...)
}

// textBytes returns the bytes to run numeric parsing over: the raw bytes
// when unescaped (the overwhelmingly common case for numeric-looking JSON
// string content), or the decoded string otherwise.
func (s *String) textBytes() []byte {
	if !s.escaped() {
		return s.rawBytes()
	}
	return []byte(s.ToString())
}

// ParseLong parses the string's decoded content as a signed 64-bit integer,
// memoized after the first successful call.
func (s *String) ParseLong() (int64, error) {
	if s.longKnown {
		return s.longVal, nil
	}
	v, err := ParseLong(s.textBytes())
	if err != nil {
		return 0, err
	}
	s.longVal, s.longKnown = v, true
	return v, nil
}

// ParseInt parses the string's decoded content as a signed 32-bit integer,
// memoized after the first successful call.
func (s *String) ParseInt() (int32, error) {
	if s.intKnown {
		return s.intVal, nil
	}
	v, err := ParseInt(s.textBytes())
	if err != nil {
		return 0, err
	}
	s.intVal, s.intKnown = v, true
	return v, nil
}

// ParseDouble parses the string's decoded content as a float64, memoized
// after the first successful call.
func (s *String) ParseDouble() (float64, error) {
	if s.doubleKnown {
		return s.doubleVal, nil
	}
	v, err := ParseDouble(s.textBytes())
	if err != nil {
		return 0, err
	}
	s.doubleVal, s.doubleKnown = v, true
	return v, nil
}

// ParseFloat parses the string's decoded content as a float32, memoized
// after the first successful call.
func (s *String) ParseFloat() (float32, error) {
	if s.floatKnown {
		return s.floatVal, nil
	}
	v, err := ParseFloat(s.textBytes())
	if err != nil {
		return 0, err
	}
	s.floatVal, s.floatKnown = v, true
	return v, nil
}

// ParseBigDecimal parses the string's decoded content as an
// arbitrary-precision decimal. Unlike the fixed-width parsers above, this
// is never memoized: it already allocates on every call.
func (s *String) ParseBigDecimal() (*big.Float, error) { return ParseBigDecimal(s.textBytes()) }

// ParseBigInteger parses the string's decoded content as an
// arbitrary-precision integer. Never memoized, for the same reason as
// [String.ParseBigDecimal].
func (s *String) ParseBigInteger() (*big.Int, error) { return ParseBigInt(s.textBytes()) }

func (s *String) String() string { return s.ToString() }

// decodeJSONEscapes decodes the JSON string escapes in raw (which must be
// the interior of a JSON string literal, without surrounding quotes) into a
// materialized Go string. Unpaired UTF-16 surrogates decode to the Unicode
// replacement character, matching how [encoding/json] handles them.
func decodeJSONEscapes(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))

	n := len(raw)
	for i := 0; i < n; {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= n {
			break
		}
		switch raw[i] {
		case '"':
			b.WriteByte('"')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		case '/':
			b.WriteByte('/')
			i++
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'u':
			i++
			r1 := decodeHex4(raw[i:])
			i += 4
			if utf16.IsSurrogate(rune(r1)) && i+6 <= n && raw[i] == '\\' && raw[i+1] == 'u' {
				r2 := decodeHex4(raw[i+2:])
				if combined := utf16.DecodeRune(rune(r1), rune(r2)); combined != utf8.RuneError {
					b.WriteRune(combined)
					i += 6
					continue
				}
			}
			if utf16.IsSurrogate(rune(r1)) {
				b.WriteRune(utf8.RuneError)
			} else {
				b.WriteRune(rune(r1))
			}
		default:
			i++
		}
	}
	return b.String()
}

// decodeHex4 decodes the four hex digits at the start of b. The tokenizer
// has already validated that these are present and are hex digits.
func decodeHex4(b []byte) uint16 {
	var v uint16
	for i := 0; i < 4; i++ {
		c := b[i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint16(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint16(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint16(c-'A') + 10
		}
	}
	return v
}
