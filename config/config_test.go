// Copyright 2025 Buf Technologies, Inc.
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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantjson/lazyjson"
	"github.com/quantjson/lazyjson/config"
)

func TestLoadAppliesOverridesOnlyWhereSet(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load([]byte("limits:\n  max_depth: 2\nwriter:\n  indent: \"  \"\n"))
	require.NoError(t, err)

	_, err = lazyjson.ParseString(`[[[1]]]`, cfg.ParseOptions()...)
	require.Error(t, err)
	assert.ErrorIs(t, err, lazyjson.ErrNestingTooDeep)

	_, err = lazyjson.ParseString(`[[1]]`, cfg.ParseOptions()...)
	require.NoError(t, err)
}

func TestLoadEmptyDocumentUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	_, err = lazyjson.ParseString(`[[[[[1]]]]]`, cfg.ParseOptions()...)
	require.NoError(t, err, "defaults allow nesting far deeper than 5 levels")
}

func TestWriterOptionsAppliesIndent(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load([]byte("writer:\n  indent: \"  \"\n"))
	require.NoError(t, err)

	w := lazyjson.NewWriter(cfg.WriterOptions()...)
	w.ObjectStart()
	w.FieldInt("a", 1)
	w.ObjectEnd()
	assert.Equal(t, "{\n  \"a\": 1\n}", w.String())
}

func TestWriterOptionsEmptyIndentIsCompact(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	w := lazyjson.NewWriter(cfg.WriterOptions()...)
	w.ObjectStart()
	w.FieldInt("a", 1)
	w.ObjectEnd()
	assert.Equal(t, `{"a":1}`, w.String())
}

func TestFingerprintDiffersOnContentChange(t *testing.T) {
	t.Parallel()

	a, err := config.Load([]byte("limits:\n  max_depth: 2\n"))
	require.NoError(t, err)
	b, err := config.Load([]byte("limits:\n  max_depth: 3\n"))
	require.NoError(t, err)

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	c, err := config.Load([]byte("limits:\n  max_depth: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), c.Fingerprint())
}

func TestLoadInvalidYAMLErrors(t *testing.T) {
	t.Parallel()

	_, err := config.Load([]byte("limits: [this is not a mapping"))
	require.Error(t, err)
}
