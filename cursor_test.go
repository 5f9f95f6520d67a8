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

// ringContainer is a minimal [lazyjson.ByteContainer] backed by a plain byte
// slice, standing in for an off-heap or ring-buffer-backed input.
type ringContainer struct {
	data []byte
}

func (r *ringContainer) Len() int { return len(r.data) }
func (r *ringContainer) At(i int) byte { return r.data[i] }
func (r *ringContainer) CopyTo(dst []byte, offset, length int) int {
	return copy(dst, r.data[offset:offset+length])
}

func TestParseContainerAdapter(t *testing.T) {
	t.Parallel()

	c := &ringContainer{data: []byte(`{"a": [1, 2, 3]}`)}
	doc, err := lazyjson.ParseContainer(c)
	require.NoError(t, err)
	defer doc.Close()

	obj := doc.Root.(*lazyjson.Object)
	a, err := obj.Get("a")
	require.NoError(t, err)
	arr := a.(*lazyjson.Array)
	assert.Equal(t, 3, arr.Size())
}

func TestContainerCursorReuseAcrossBinds(t *testing.T) {
	t.Parallel()

	cc := lazyjson.NewContainerCursor(&ringContainer{data: []byte(`1`)})
	cc.Bind(&ringContainer{data: []byte(`{"x": 2}`)})

	ctx := lazyjson.OpenContext()
	defer ctx.Close()

	root, err := ctx.ParseContainer(&ringContainer{data: []byte(`true`)})
	require.NoError(t, err)
	b, ok := root.(lazyjson.Boolean)
	require.True(t, ok)
	assert.True(t, b.Value())
}
