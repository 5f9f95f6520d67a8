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

package hash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantjson/lazyjson/internal/hash"
)

func TestBytesAndStringAgree(t *testing.T) {
	t.Parallel()

	s := "hello, world"
	assert.Equal(t, hash.String(s), hash.Bytes([]byte(s)))
}

func TestBytesMatchesPolynomialFormula(t *testing.T) {
	t.Parallel()

	// "ab" = 'a'*31 + 'b'
	want := uint32('a')*31 + uint32('b')
	assert.Equal(t, want, hash.Bytes([]byte("ab")))
}

func TestEmptyHashesToZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(0), hash.Bytes(nil))
	assert.Equal(t, uint32(0), hash.String(""))
}

func TestDifferentContentDifferentHashUsually(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, hash.String("alpha"), hash.String("beta"))
}

func TestFingerprintConfigDeterministic(t *testing.T) {
	t.Parallel()

	a := hash.FingerprintConfig(1, 2, []byte("payload"))
	b := hash.FingerprintConfig(1, 2, []byte("payload"))
	assert.Equal(t, a, b)
}

func TestFingerprintConfigSensitiveToKeyAndData(t *testing.T) {
	t.Parallel()

	base := hash.FingerprintConfig(1, 2, []byte("payload"))
	diffKey := hash.FingerprintConfig(3, 4, []byte("payload"))
	diffData := hash.FingerprintConfig(1, 2, []byte("other"))

	assert.NotEqual(t, base, diffKey)
	assert.NotEqual(t, base, diffData)
}
