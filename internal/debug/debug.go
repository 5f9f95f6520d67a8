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

//go:build debug

// Package debug includes debugging helpers used throughout lazyjson: pool
// double-acquire assertions, AST-invariant assertions, and goroutine-tagged
// tracing of the pool/context lifecycle. None of this is compiled into
// release builds; see release.go for the no-op counterparts.
package debug

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/timandy/routine"
)

// Enabled is true if the package was built with the debug tag.
const Enabled = true

var (
	debugPattern *regexp.Regexp
	nocapture    = flag.Bool("lazyjson.nocapture", false, "print debug logs to stderr instead of suppressing them")
)

func init() {
	flag.Func("lazyjson.filter", "regexp to filter debug logs by", func(s string) (err error) {
		debugPattern, err = regexp.Compile(s)
		return err
	})
}

// Log prints debugging information to stderr, tagged with the calling
// package, file, line, and goroutine id.
//
// context is optional args for fmt.Printf that are printed before operation,
// useful for identifying which pool/context/environment an entry belongs to.
func Log(context []any, operation string, format string, args ...any) {
	skip := 1
again:
	pc, file, line, _ := runtime.Caller(skip)

	fn := runtime.FuncForPC(pc)
	name := fn.Name()
	name = name[strings.LastIndex(name, ".")+1:]
	if strings.HasPrefix(name, "log") || strings.Contains(name, "Log") {
		skip++
		goto again
	}

	pkg := fn.Name()
	pkg = strings.TrimPrefix(pkg, "github.com/quantjson/")
	pkg = strings.TrimPrefix(pkg, "lazyjson/internal/")
	if idx := strings.Index(pkg, "."); idx >= 0 {
		pkg = pkg[:idx]
	}

	file = filepath.Base(file)

	buf := new(strings.Builder)
	_, _ = fmt.Fprintf(buf, "%s/%s:%d [g%04d", pkg, file, line, routine.Goid())
	if len(context) >= 1 {
		_, _ = fmt.Fprintf(buf, ", "+context[0].(string), context[1:]...)
	}
	_, _ = fmt.Fprintf(buf, "] %s: ", operation)
	_, _ = fmt.Fprintf(buf, format, args...)

	if debugPattern != nil && !debugPattern.MatchString(buf.String()) {
		return
	}

	_, _ = buf.Write([]byte{'\n'})
	_, _ = os.Stderr.WriteString(buf.String())
	_ = os.Stderr.Sync()
}

// Assert panics if cond is false. Only compiled into debug builds; use this
// for invariants that are too expensive to check in release builds, such as
// walking a pool's free list to rule out a double-release.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("lazyjson: internal assertion failed: "+format, args...))
	}
}

// GoroutineID returns the id of the calling goroutine, used to assert that a
// [Context] is not handed across goroutine boundaries.
func GoroutineID() int64 { return routine.Goid() }

// Value is a value of any type that only exists when the debug tag is
// enabled. When disabled, this struct is replaced with an empty struct that
// costs no space in the enclosing struct.
type Value[T any] struct {
	x T
}

// Get returns a pointer to this value. Panics if not in debug mode.
func (v *Value[T]) Get() *T { return &v.x }
