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
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/quantjson/lazyjson"
)

func TestToStructScalarsAndContainers(t *testing.T) {
	t.Parallel()

	doc, err := lazyjson.ParseString(`{"name": "Ada", "age": 36, "tags": ["x", "y"], "active": true, "note": null}`)
	require.NoError(t, err)
	defer doc.Close()

	sv, err := lazyjson.ToStruct(doc.Root)
	require.NoError(t, err)

	st := sv.GetStructValue()
	require.NotNil(t, st)

	assert.Equal(t, "Ada", st.Fields["name"].GetStringValue())
	assert.Equal(t, 36.0, st.Fields["age"].GetNumberValue())
	assert.True(t, st.Fields["active"].GetBoolValue())
	assert.Equal(t, structpb.NullValue_NULL_VALUE, st.Fields["note"].GetNullValue())

	tags := st.Fields["tags"].GetListValue()
	require.NotNil(t, tags)
	require.Len(t, tags.Values, 2)
	assert.Equal(t, "x", tags.Values[0].GetStringValue())
	assert.Equal(t, "y", tags.Values[1].GetStringValue())
}

func TestToStructNestedObject(t *testing.T) {
	t.Parallel()

	doc, err := lazyjson.ParseString(`{"outer": {"inner": 1}}`)
	require.NoError(t, err)
	defer doc.Close()

	sv, err := lazyjson.ToStruct(doc.Root)
	require.NoError(t, err)

	outer := sv.GetStructValue().Fields["outer"].GetStructValue()
	require.NotNil(t, outer)
	assert.Equal(t, 1.0, outer.Fields["inner"].GetNumberValue())
}

func TestToStructTopLevelScalar(t *testing.T) {
	t.Parallel()

	doc, err := lazyjson.ParseString(`42`)
	require.NoError(t, err)
	defer doc.Close()

	sv, err := lazyjson.ToStruct(doc.Root)
	require.NoError(t, err)
	assert.Equal(t, 42.0, sv.GetNumberValue())
}
