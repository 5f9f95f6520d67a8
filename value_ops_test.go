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

func parseRoot(t *testing.T, s string) lazyjson.View {
	t.Helper()
	doc, err := lazyjson.ParseString(s)
	require.NoError(t, err)
	t.Cleanup(doc.Close)
	return doc.Root
}

func TestValueEqualNumbersByValueNotText(t *testing.T) {
	t.Parallel()

	a := parseRoot(t, "1")
	b := parseRoot(t, "1.0")
	assert.True(t, lazyjson.ValueEqual(a, b))
	assert.Equal(t, lazyjson.ValueHash(a), lazyjson.ValueHash(b))
}

func TestValueEqualObjectsIgnoreFieldOrder(t *testing.T) {
	t.Parallel()

	a := parseRoot(t, `{"a": 1, "b": 2}`)
	b := parseRoot(t, `{"b": 2, "a": 1}`)
	assert.True(t, lazyjson.ValueEqual(a, b))
	assert.Equal(t, lazyjson.ValueHash(a), lazyjson.ValueHash(b))
}

func TestValueEqualArraysAreOrderSensitive(t *testing.T) {
	t.Parallel()

	a := parseRoot(t, `[1, 2]`)
	b := parseRoot(t, `[2, 1]`)
	assert.False(t, lazyjson.ValueEqual(a, b))
}

func TestValueEqualDifferentKinds(t *testing.T) {
	t.Parallel()

	a := parseRoot(t, `"1"`)
	b := parseRoot(t, `1`)
	assert.False(t, lazyjson.ValueEqual(a, b))
}

func TestValueEqualStringsAndBooleansAndNull(t *testing.T) {
	t.Parallel()

	assert.True(t, lazyjson.ValueEqual(parseRoot(t, `"hi"`), parseRoot(t, `"hi"`)))
	assert.False(t, lazyjson.ValueEqual(parseRoot(t, `"hi"`), parseRoot(t, `"bye"`)))
	assert.True(t, lazyjson.ValueEqual(parseRoot(t, `true`), parseRoot(t, `true`)))
	assert.False(t, lazyjson.ValueEqual(parseRoot(t, `true`), parseRoot(t, `false`)))
	assert.True(t, lazyjson.ValueEqual(parseRoot(t, `null`), parseRoot(t, `null`)))
}

func TestValueEqualNestedStructures(t *testing.T) {
	t.Parallel()

	a := parseRoot(t, `{"list": [1, {"x": true}], "name": "ok"}`)
	b := parseRoot(t, `{"name": "ok", "list": [1, {"x": true}]}`)
	assert.True(t, lazyjson.ValueEqual(a, b))

	c := parseRoot(t, `{"list": [1, {"x": false}], "name": "ok"}`)
	assert.False(t, lazyjson.ValueEqual(a, c))
}

func TestValueHashObjectOrderIndependentButContentSensitive(t *testing.T) {
	t.Parallel()

	a := parseRoot(t, `{"a": 1, "b": 2}`)
	c := parseRoot(t, `{"a": 1, "b": 3}`)
	assert.NotEqual(t, lazyjson.ValueHash(a), lazyjson.ValueHash(c))
}
