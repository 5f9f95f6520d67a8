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

package lazyjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantjson/lazyjson"
)

func TestWriterScalarsAndStructure(t *testing.T) {
	t.Parallel()

	w := lazyjson.NewWriter()
	w.ObjectStart()
	w.FieldString("name", "Ada")
	w.FieldInt("age", 36)
	w.FieldName("tags")
	w.ArrayStart()
	w.WriteString("math")
	w.WriteString("engines")
	w.ArrayEnd()
	w.FieldBoolean("active", true)
	w.FieldNull("note")
	w.ObjectEnd()

	want := `{"name":"Ada","age":36,"tags":["math","engines"],"active":true,"note":null}`
	assert.Equal(t, want, w.String())
	assert.Equal(t, 0, w.Depth())
}

func TestWriterIndent(t *testing.T) {
	t.Parallel()

	w := lazyjson.NewWriter(lazyjson.WithIndent("  "))
	w.ObjectStart()
	w.FieldInt("a", 1)
	w.ObjectEnd()

	want := "{\n  \"a\": 1\n}"
	assert.Equal(t, want, w.String())
}

func TestWriterReset(t *testing.T) {
	t.Parallel()

	w := lazyjson.NewWriter()
	w.WriteInt(1)
	assert.Equal(t, "1", w.String())

	w.Reset()
	assert.Equal(t, 0, w.Size())
	w.WriteInt(2)
	assert.Equal(t, "2", w.String())
}

func TestWriteViewRoundTrip(t *testing.T) {
	t.Parallel()

	input := `{"a":1,"b":[true,false,null],"c":"hi"}`
	doc, err := lazyjson.ParseString(input)
	require.NoError(t, err)
	defer doc.Close()

	w := lazyjson.NewWriter()
	w.WriteView(doc.Root)
	assert.Equal(t, input, w.String())
}

func TestWriteViewEscapedFieldNameNotDoubleEscaped(t *testing.T) {
	t.Parallel()

	// The field name contains an escaped quote and backslash; WriteView must
	// copy the already-escaped bytes rather than re-escaping them.
	input := `{"a\"b\\c": 1}`
	doc, err := lazyjson.ParseString(input)
	require.NoError(t, err)
	defer doc.Close()

	w := lazyjson.NewWriter()
	w.WriteView(doc.Root)
	assert.Equal(t, `{"a\"b\\c":1}`, w.String())

	// Confirm the round-tripped output still decodes to the same field name.
	doc2, err := lazyjson.ParseString(w.String())
	require.NoError(t, err)
	defer doc2.Close()
	obj := doc2.Root.(*lazyjson.Object)
	assert.True(t, obj.Has(`a"b\c`))
}

func TestWriterRawPassthrough(t *testing.T) {
	t.Parallel()

	doc, err := lazyjson.ParseString(`"hello\tworld"`)
	require.NoError(t, err)
	defer doc.Close()

	s := doc.Root.(*lazyjson.String)

	w := lazyjson.NewWriter()
	w.WriteRawString(s.Raw().Bytes())
	assert.Equal(t, `"hello\tworld"`, w.String())
}

func TestWriterEscapesControlCharacters(t *testing.T) {
	t.Parallel()

	input := string([]byte{'a', 0x01, 'b', '"', 'c', '\\', 'd', '\n'})
	w := lazyjson.NewWriter()
	w.WriteString(input)
	assert.Equal(t, "\"a\\u0001b\\\"c\\\\d\\n\"", w.String())
}

func TestWriterNumericFieldVariants(t *testing.T) {
	t.Parallel()

	w := lazyjson.NewWriter()
	w.ObjectStart()
	w.FieldLong("big", 9223372036854775807)
	w.FieldDouble("pi", 3.5)
	w.FieldFloat("half", 0.5)
	w.ObjectEnd()

	assert.Equal(t, `{"big":9223372036854775807,"pi":3.5,"half":0.5}`, w.String())
}

func TestWriterWriteRawAppendsVerbatim(t *testing.T) {
	t.Parallel()

	w := lazyjson.NewWriter()
	w.ArrayStart()
	w.WriteRaw([]byte(`{"already":"json"}`))
	w.WriteInt(1)
	w.ArrayEnd()

	assert.Equal(t, `[{"already":"json"},1]`, w.String())
}

func TestWriterNestedArraysInsideObjectField(t *testing.T) {
	t.Parallel()

	w := lazyjson.NewWriter()
	w.ObjectStart()
	w.FieldName("matrix")
	w.ArrayStart()
	w.ArrayStart()
	w.WriteInt(1)
	w.WriteInt(2)
	w.ArrayEnd()
	w.ArrayStart()
	w.WriteInt(3)
	w.WriteInt(4)
	w.ArrayEnd()
	w.ArrayEnd()
	w.ObjectEnd()

	assert.Equal(t, `{"matrix":[[1,2],[3,4]]}`, w.String())
}

func TestWriterEmptyObjectAndArray(t *testing.T) {
	t.Parallel()

	w := lazyjson.NewWriter()
	w.ObjectStart()
	w.FieldName("empty_obj")
	w.ObjectStart()
	w.ObjectEnd()
	w.FieldName("empty_arr")
	w.ArrayStart()
	w.ArrayEnd()
	w.ObjectEnd()

	assert.Equal(t, `{"empty_obj":{},"empty_arr":[]}`, w.String())
}

func TestWriterFieldNameBytes(t *testing.T) {
	t.Parallel()

	w := lazyjson.NewWriter()
	w.ObjectStart()
	w.FieldNameBytes([]byte("k"))
	w.WriteBoolean(false)
	w.ObjectEnd()

	assert.Equal(t, `{"k":false}`, w.String())
}
