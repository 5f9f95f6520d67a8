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

// Writer is an immediate-mode streaming JSON emitter: every call
// appends directly to an internal buffer, with no intermediate tree and no
// heap allocation beyond that buffer's own growth. It tracks open
// container depth and whether each open container has already emitted a
// child, so callers never have to manage commas or brackets themselves.
//
// A Writer is not safe for concurrent use, and is meant to be reused
// across many messages via [Writer.Reset] rather than reconstructed.
type Writer struct {
	buf    []byte
	stack  []bool // per open container: has it emitted a child yet
	indent string

	// awaitingColon is true between a FieldName call and the value that
	// must immediately follow it; value-writing methods consume it instead
	// of treating themselves as a new sibling needing a comma.
	awaitingColon bool
}

// NewWriter constructs a Writer. With no options, it emits compact JSON
// with no inter-token whitespace; [WithIndent] switches to pretty-printing.
func NewWriter(opts ...WriterOption) *Writer {
	cfg := resolveWriterConfig(opts)
	return &Writer{indent: cfg.indent}
}

// Reset empties w's buffer and container stack for reuse, retaining their
// backing capacity.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.stack = w.stack[:0]
	w.awaitingColon = false
}

// Size returns the number of bytes written so far.
func (w *Writer) Size() int { return len(w.buf) }

// Depth returns the number of currently open containers.
func (w *Writer) Depth() int { return len(w.stack) }

// Bytes returns the bytes written so far. The returned slice aliases w's
// internal buffer and is invalidated by the next write or [Writer.Reset].
func (w *Writer) Bytes() []byte { return w.buf }

// String materializes the bytes written so far as a string.
func (w *Writer) String() string { return string(w.buf) }

// separator emits a comma if the currently open container has already
// emitted a child, marks that it has one now, and indents for the child
// about to be written.
func (w *Writer) separator() {
	if len(w.stack) == 0 {
		return
	}
	top := len(w.stack) - 1
	if w.stack[top] {
		w.buf = append(w.buf, ',')
	}
	w.stack[top] = true
	w.indentNewline()
}

func (w *Writer) indentNewline() {
	if w.indent == "" {
		return
	}
	w.buf = append(w.buf, '\n')
	for i := 0; i < len(w.stack); i++ {
		w.buf = append(w.buf, w.indent...)
	}
}

// beforeValue prepares the buffer for a scalar or container value about to
// be written: a comma plus indent if it is another array element or a
// top-level sibling (which never happens for a well-formed document but
// costs nothing to handle), or nothing at all if it is the value half of a
// field this Writer already wrote the name for.
func (w *Writer) beforeValue() {
	if w.awaitingColon {
		w.awaitingColon = false
		return
	}
	w.separator()
}

// ObjectStart opens a new object, as either a top-level value, an array
// element, or an object field's value.
func (w *Writer) ObjectStart() {
	w.beforeValue()
	w.buf = append(w.buf, '{')
	w.stack = append(w.stack, false)
}

// ObjectEnd closes the innermost open object.
func (w *Writer) ObjectEnd() {
	w.closeContainer('}')
}

// ArrayStart opens a new array, as either a top-level value, an array
// element, or an object field's value.
func (w *Writer) ArrayStart() {
	w.beforeValue()
	w.buf = append(w.buf, '[')
	w.stack = append(w.stack, false)
}

// ArrayEnd closes the innermost open array.
func (w *Writer) ArrayEnd() {
	w.closeContainer(']')
}

func (w *Writer) closeContainer(closeByte byte) {
	hadChild := len(w.stack) > 0 && w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	if hadChild {
		w.indentNewline()
	}
	w.buf = append(w.buf, closeByte)
}

// FieldName writes an object field's name and the colon that follows it.
// It must be called while the innermost open container is an object, and
// must be followed immediately by exactly one value-writing call (one of
// Write*, ObjectStart, or ArrayStart).
func (w *Writer) FieldName(name string) {
	w.separator()
	w.appendQuotedString(name)
	w.afterFieldName()
}

// FieldNameBytes is like [Writer.FieldName] but takes the unescaped name
// as bytes, without a string conversion. It escapes those bytes as
// FieldName does, so already-escaped bytes such as [String.Raw] belong in
// [Writer.FieldNameRaw] instead.
func (w *Writer) FieldNameBytes(name []byte) {
	w.separator()
	w.appendQuotedBytes(name)
	w.afterFieldName()
}

// FieldNameRaw writes an object field's name from already-escaped JSON
// string interior bytes, such as [String.Raw], without re-escaping them —
// the zero-copy counterpart to [Writer.FieldNameBytes] for re-serializing a
// name read from a parsed document.
func (w *Writer) FieldNameRaw(raw []byte) {
	w.separator()
	w.buf = append(w.buf, '"')
	w.buf = append(w.buf, raw...)
	w.buf = append(w.buf, '"')
	w.afterFieldName()
}

func (w *Writer) afterFieldName() {
	w.buf = append(w.buf, ':')
	if w.indent != "" {
		w.buf = append(w.buf, ' ')
	}
	w.awaitingColon = true
}

// WriteString writes s as a JSON string, escaping it.
func (w *Writer) WriteString(s string) {
	w.beforeValue()
	w.appendQuotedString(s)
}

// WriteRawString writes raw directly between quotes without escaping it —
// for a caller that already holds validly-escaped JSON string interior
// bytes, such as [String.Raw].
func (w *Writer) WriteRawString(raw []byte) {
	w.beforeValue()
	w.buf = append(w.buf, '"')
	w.buf = append(w.buf, raw...)
	w.buf = append(w.buf, '"')
}

// WriteInt writes v as a JSON number.
func (w *Writer) WriteInt(v int32) {
	w.beforeValue()
	w.buf = AppendInt(w.buf, v)
}

// WriteLong writes v as a JSON number.
func (w *Writer) WriteLong(v int64) {
	w.beforeValue()
	w.buf = AppendLong(w.buf, v)
}

// WriteDouble writes v as a JSON number.
func (w *Writer) WriteDouble(v float64) {
	w.beforeValue()
	w.buf = AppendDouble(w.buf, v)
}

// WriteFloat writes v as a JSON number.
func (w *Writer) WriteFloat(v float32) {
	w.beforeValue()
	w.buf = AppendFloat32(w.buf, v)
}

// WriteBoolean writes v as a JSON true/false literal.
func (w *Writer) WriteBoolean(v bool) {
	w.beforeValue()
	if v {
		w.buf = append(w.buf, "true"...)
	} else {
		w.buf = append(w.buf, "false"...)
	}
}

// WriteNull writes a JSON null literal.
func (w *Writer) WriteNull() {
	w.beforeValue()
	w.buf = append(w.buf, "null"...)
}

// WriteRaw appends already-formatted, valid JSON text directly, still
// participating in comma/indent bookkeeping as a single value. The caller
// is responsible for raw being valid JSON; Writer does not validate it.
func (w *Writer) WriteRaw(raw []byte) {
	w.beforeValue()
	w.buf = append(w.buf, raw...)
}

// FieldString writes a string-valued field in one call.
func (w *Writer) FieldString(name, value string) {
	w.FieldName(name)
	w.WriteString(value)
}

// FieldInt writes an int-valued field in one call.
func (w *Writer) FieldInt(name string, value int32) {
	w.FieldName(name)
	w.WriteInt(value)
}

// FieldLong writes a long-valued field in one call.
func (w *Writer) FieldLong(name string, value int64) {
	w.FieldName(name)
	w.WriteLong(value)
}

// FieldDouble writes a double-valued field in one call.
func (w *Writer) FieldDouble(name string, value float64) {
	w.FieldName(name)
	w.WriteDouble(value)
}

// FieldFloat writes a float-valued field in one call.
func (w *Writer) FieldFloat(name string, value float32) {
	w.FieldName(name)
	w.WriteFloat(value)
}

// FieldBoolean writes a boolean-valued field in one call.
func (w *Writer) FieldBoolean(name string, value bool) {
	w.FieldName(name)
	w.WriteBoolean(value)
}

// FieldNull writes a null-valued field in one call.
func (w *Writer) FieldNull(name string) {
	w.FieldName(name)
	w.WriteNull()
}

// WriteView serializes v, recursively, exercising the zero-copy raw-bytes
// passthrough for strings and numbers instead of re-decoding and
// re-formatting them.
func (w *Writer) WriteView(v View) {
	switch t := v.(type) {
	case *Object:
		w.ObjectStart()
		t.Range(func(name Slice, value View) bool {
			w.FieldNameRaw(name.Bytes())
			w.WriteView(value)
			return true
		})
		w.ObjectEnd()
	case *Array:
		w.ArrayStart()
		t.Range(func(_ int, value View) bool {
			w.WriteView(value)
			return true
		})
		w.ArrayEnd()
	case *String:
		w.WriteRawString(t.rawBytes())
	case *Number:
		w.beforeValue()
		w.buf = append(w.buf, t.rawBytes()...)
	case Boolean:
		w.WriteBoolean(bool(t))
	case Null:
		w.WriteNull()
	}
}

func (w *Writer) appendQuotedString(s string) {
	w.buf = append(w.buf, '"')
	for i := 0; i < len(s); i++ {
		w.appendEscapedByte(s[i])
	}
	w.buf = append(w.buf, '"')
}

func (w *Writer) appendQuotedBytes(b []byte) {
	w.buf = append(w.buf, '"')
	for _, c := range b {
		w.appendEscapedByte(c)
	}
	w.buf = append(w.buf, '"')
}

func (w *Writer) appendEscapedByte(c byte) {
	switch c {
	case '"':
		w.buf = append(w.buf, '\\', '"')
	case '\\':
		w.buf = append(w.buf, '\\', '\\')
	case '\b':
		w.buf = append(w.buf, '\\', 'b')
	case '\f':
		w.buf = append(w.buf, '\\', 'f')
	case '\n':
		w.buf = append(w.buf, '\\', 'n')
	case '\r':
		w.buf = append(w.buf, '\\', 'r')
	case '\t':
		w.buf = append(w.buf, '\\', 't')
	default:
		if c < 0x20 {
			w.buf = append(w.buf, '\\', 'u', '0', '0', hexNibble(c>>4), hexNibble(c&0xF))
		} else {
			w.buf = append(w.buf, c)
		}
	}
}

func hexNibble(n byte) byte {
	if n < 10 {
		return '0' + n
	}
	return 'a' + (n - 10)
}
