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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func runCmd(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestFormatCmdCompact(t *testing.T) {
	configPath = ""
	path := writeTempFile(t, `{"b": 2, "a": 1}`)

	cmd := formatCmd()
	out := runCmd(t, cmd, path)
	assert.Equal(t, `{"b":2,"a":1}`+"\n", out)
}

func TestFormatCmdIndent(t *testing.T) {
	configPath = ""
	path := writeTempFile(t, `{"a": 1}`)

	cmd := formatCmd()
	out := runCmd(t, cmd, "--indent", "  ", path)
	assert.Equal(t, "{\n  \"a\": 1\n}\n", out)
}

func TestValidateCmdReportsKind(t *testing.T) {
	configPath = ""
	path := writeTempFile(t, `[1, 2, 3]`)

	cmd := validateCmd()
	out := runCmd(t, cmd, path)
	assert.Equal(t, "ok: array\n", out)
}

func TestValidateCmdReportsError(t *testing.T) {
	configPath = ""
	path := writeTempFile(t, `{"a":}`)

	cmd := validateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid"))
}

func TestToStructCmdPrintsJSON(t *testing.T) {
	configPath = ""
	path := writeTempFile(t, `{"a": 1}`)

	cmd := toStructCmd()
	out := runCmd(t, cmd, path)
	assert.Contains(t, out, `"a"`)
}
