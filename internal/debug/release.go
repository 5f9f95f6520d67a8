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

//go:build !debug

package debug

// Enabled is true if the package was built with the debug tag.
const Enabled = false

// Log is a no-op in release builds.
func Log(context []any, operation string, format string, args ...any) {}

// Assert is a no-op in release builds.
func Assert(cond bool, format string, args ...any) {}

// GoroutineID always returns 0 in release builds; no goroutine affinity
// checking is performed outside of debug builds.
func GoroutineID() int64 { return 0 }

// Value is a zero-size placeholder in release builds.
type Value[T any] struct{}

// Get panics: debug values do not exist outside of debug builds.
func (v *Value[T]) Get() *T { panic("lazyjson: debug.Value used outside of a debug build") }
