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

func TestEnvironmentPoolsGrowAndReleaseOnReset(t *testing.T) {
	t.Parallel()

	env := lazyjson.NewEnvironment()
	ctx := env.OpenContext()
	defer ctx.Close()

	empty := env.Stats()
	assert.Equal(t, lazyjson.PoolStats{}, empty)

	root, err := ctx.Parse([]byte(`{"a": [1, 2], "b": "x"}`))
	require.NoError(t, err)
	_ = root

	ctx.Reset()
	after := env.Stats()
	assert.Greater(t, after.Objects+after.Arrays+after.Strings+after.Numbers, 0,
		"views acquired during the parse should return to the free list on Reset")
}

func TestOpenContextTwiceSharesEnvironmentPools(t *testing.T) {
	t.Parallel()

	env := lazyjson.NewEnvironment()

	ctx1 := env.OpenContext()
	_, err := ctx1.Parse([]byte(`{"a": 1}`))
	require.NoError(t, err)
	ctx1.Close()

	statsAfterFirst := env.Stats()

	ctx2 := env.OpenContext()
	defer ctx2.Close()
	_, err = ctx2.Parse([]byte(`{"a": 1}`))
	require.NoError(t, err)
	ctx2.Reset()

	statsAfterSecond := env.Stats()
	assert.Equal(t, statsAfterFirst, statsAfterSecond,
		"reusing an Environment across Contexts should settle into the same steady-state pool depth")
}

func TestContextCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := lazyjson.OpenContext()
	_, err := ctx.Parse([]byte(`1`))
	require.NoError(t, err)
	ctx.Close()
	ctx.Close()
}
