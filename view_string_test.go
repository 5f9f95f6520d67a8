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

func TestStringByteAccessors(t *testing.T) {
	t.Parallel()

	doc, err := lazyjson.ParseString(`"abc"`)
	require.NoError(t, err)
	defer doc.Close()

	s := doc.Root.(*lazyjson.String)
	assert.Equal(t, 3, s.ByteLength())
	assert.False(t, s.IsEmpty())

	b, err := s.ByteAt(1)
	require.NoError(t, err)
	assert.Equal(t, byte('b'), b)

	_, err = s.ByteAt(10)
	require.Error(t, err)
}

func TestStringEmptyRaw(t *testing.T) {
	t.Parallel()

	doc, err := lazyjson.ParseString(`""`)
	require.NoError(t, err)
	defer doc.Close()

	s := doc.Root.(*lazyjson.String)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Raw().Len())
}

func TestStringEqualsVariants(t *testing.T) {
	t.Parallel()

	doc, err := lazyjson.ParseString(`"line\nbreak"`)
	require.NoError(t, err)
	defer doc.Close()

	s := doc.Root.(*lazyjson.String)
	assert.True(t, s.EqualsString("line\nbreak"))
	assert.False(t, s.EqualsString("line\nbreakX"))
	assert.True(t, s.EqualsBytes([]byte("line\nbreak")))

	doc2, err := lazyjson.ParseString(`"line\nbreak"`)
	require.NoError(t, err)
	defer doc2.Close()
	s2 := doc2.Root.(*lazyjson.String)
	assert.True(t, s.Equals(s2))
}

func TestStringAppendTo(t *testing.T) {
	t.Parallel()

	doc, err := lazyjson.ParseString(`"a\tb"`)
	require.NoError(t, err)
	defer doc.Close()

	s := doc.Root.(*lazyjson.String)
	out := s.AppendTo([]byte("prefix:"))
	assert.Equal(t, "prefix:a\tb", string(out))
}

func TestStringNumericAccessors(t *testing.T) {
	t.Parallel()

	doc, err := lazyjson.ParseString(`"42"`)
	require.NoError(t, err)
	defer doc.Close()

	s := doc.Root.(*lazyjson.String)
	l, err := s.ParseLong()
	require.NoError(t, err)
	assert.Equal(t, int64(42), l)

	i, err := s.ParseInt()
	require.NoError(t, err)
	assert.Equal(t, int32(42), i)

	d, err := s.ParseDouble()
	require.NoError(t, err)
	assert.Equal(t, 42.0, d)

	f, err := s.ParseFloat()
	require.NoError(t, err)
	assert.Equal(t, float32(42.0), f)
}

func TestStringBigNumberAccessors(t *testing.T) {
	t.Parallel()

	doc, err := lazyjson.ParseString(`"123456789012345678901234567890"`)
	require.NoError(t, err)
	defer doc.Close()

	s := doc.Root.(*lazyjson.String)
	bi, err := s.ParseBigInteger()
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", bi.String())
}

func TestStringGoStringerMatchesToString(t *testing.T) {
	t.Parallel()

	doc, err := lazyjson.ParseString(`"hi"`)
	require.NoError(t, err)
	defer doc.Close()

	s := doc.Root.(*lazyjson.String)
	assert.Equal(t, "hi", s.String())
	assert.Equal(t, s.ToString(), s.String())
}
