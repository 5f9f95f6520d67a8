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

package lazyjson

import (
	"github.com/quantjson/lazyjson/internal/debug"
	"github.com/quantjson/lazyjson/internal/pool"
)

// Environment is the top-level resource registry for a sustained parsing
// workload: one pool per poolable view kind, one pool of [Slice]
// handles, the reusable input cursors, and the single reusable tokenizer
// (and the AST store it owns) that every [Context] opened against this
// Environment parses through.
//
// An Environment is bound to the goroutine that creates it and is not safe
// for concurrent use — it is meant to be kept one-per-worker-goroutine in a
// pool of workers, not shared across them. Debug builds assert this
// affinity on every [Environment.OpenContext] and [Context.Parse] call;
// release builds do not pay for the check.
type Environment struct {
	objects pool.Pool[Object]
	arrays  pool.Pool[Array]
	strings pool.Pool[String]
	numbers pool.Pool[Number]
	slices  pool.Pool[Slice]

	byteCur ByteCursor
	contCur ContainerCursor
	strCur  StringCursor

	tok tokenizer

	owner debug.Value[int64]
}

// NewEnvironment constructs an Environment with all of its pools wired to
// reset their contents on acquire, so every [pool.Pool.Acquire] call
// returns a freshly reset instance.
func NewEnvironment() *Environment {
	env := &Environment{}
	env.objects.Reset = func(o *Object) { o.reset() }
	env.arrays.Reset = func(a *Array) { a.reset() }
	env.strings.Reset = func(s *String) { s.reset() }
	env.numbers.Reset = func(n *Number) { n.reset() }
	env.slices.Reset = func(s *Slice) { s.reset() }

	if debug.Enabled {
		*env.owner.Get() = debug.GoroutineID()
	}
	return env
}

// checkAffinity panics (debug builds only) if called from a goroutine other
// than the one that created env.
func (env *Environment) checkAffinity() {
	if debug.Enabled {
		debug.Assert(*env.owner.Get() == debug.GoroutineID(),
			"lazyjson: Environment used from goroutine %d, created on goroutine %d",
			debug.GoroutineID(), *env.owner.Get())
	}
}

// OpenContext opens a new [Context] against this Environment. The returned
// Context should be closed with [Context.Close] when the caller is done
// with every view it produced, or reused for another [Context.Parse] call
// in a tight loop — both paths release every pooled view and slice the
// Context is currently tracking back to env's pools.
func (env *Environment) OpenContext() *Context {
	env.checkAffinity()
	return &Context{env: env, root: noneIndex, open: true}
}

// PoolStats reports the free-list depth of each of env's pools, for
// diagnostics (e.g. sizing Capacity hints for a steady-state workload).
type PoolStats struct {
	Objects, Arrays, Strings, Numbers, Slices int
}

// Stats returns a snapshot of env's pool occupancy.
func (env *Environment) Stats() PoolStats {
	return PoolStats{
		Objects: env.objects.Len(),
		Arrays:  env.arrays.Len(),
		Strings: env.strings.Len(),
		Numbers: env.numbers.Len(),
		Slices:  env.slices.Len(),
	}
}
