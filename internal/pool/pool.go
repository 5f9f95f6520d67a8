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

// Package pool provides a fixed-capacity, single-environment, strongly typed
// object pool.
//
// Unlike [sync.Pool], a [Pool] is not safe for concurrent use and never
// discards entries under GC pressure: it is a plain free-list with a
// nominal capacity and an auto-grow policy for overflow, matching the
// pooling contract of one parse environment: Acquire returns a reset
// instance of type T; Release returns a prior-acquired instance to the
// free list; on exhaustion a new instance is created rather than blocking.
package pool

import "github.com/quantjson/lazyjson/internal/debug"

// Pool is a fixed-capacity, single-environment recycler of values of type T.
//
// A zero Pool is usable; Capacity defaults to a small nominal size and grows
// on demand. New, if set, constructs a fresh T on exhaustion; Reset, if set,
// is called on every acquired value before it is handed to the caller.
type Pool[T any] struct {
	// New constructs a fresh *T when the free list is empty. If nil, new(T)
	// is used.
	New func() *T
	// Reset clears a value before it is handed out again. If nil, the value
	// is handed out as last released (the caller is expected to overwrite
	// every field on bind, as views do).
	Reset func(*T)
	// Capacity is the nominal number of entries this pool tries to keep on
	// its free list; it is a hint, not a hard limit. The free list grows
	// past it without blocking, up to 4*Capacity entries; values released
	// beyond that are dropped.
	Capacity int

	free []*T
	// outstanding tracks how many values are currently held by callers, for
	// debug-mode leak/double-release detection.
	outstanding map[*T]bool
}

const defaultCapacity = 16

// Acquire returns a reset value of type T, constructing one if the free
// list is empty.
func (p *Pool[T]) Acquire() *T {
	var v *T
	if n := len(p.free); n > 0 {
		v = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	} else {
		if p.New != nil {
			v = p.New()
		} else {
			v = new(T)
		}
	}

	if p.Reset != nil {
		p.Reset(v)
	}

	if debug.Enabled {
		if p.outstanding == nil {
			p.outstanding = make(map[*T]bool)
		}
		debug.Assert(!p.outstanding[v], "pool: value acquired twice without an intervening release: %p\n%s", v, debug.Stack(2))
		p.outstanding[v] = true
	}

	return v
}

// Release returns a value previously obtained from [Pool.Acquire] to the
// free list. Releasing a value not currently outstanding from this pool is
// a fatal assertion in debug builds: pool corruption is treated as fatal.
func (p *Pool[T]) Release(v *T) {
	if v == nil {
		return
	}

	if debug.Enabled {
		debug.Assert(p.outstanding[v], "pool: value released that was not outstanding: %p\n%s", v, debug.Stack(2))
		delete(p.outstanding, v)
	}

	cap := p.Capacity
	if cap == 0 {
		cap = defaultCapacity
	}
	if len(p.free) >= cap*4 {
		// Overflow beyond a generous multiple of the nominal capacity is
		// simply dropped, so a pathological caller that acquires millions of
		// objects in one parse cannot pin that memory forever.
		return
	}
	p.free = append(p.free, v)
}

// Len returns the number of values currently sitting on the free list.
func (p *Pool[T]) Len() int { return len(p.free) }

// Outstanding returns the number of values currently held by callers. Only
// meaningful in debug builds; always 0 in release builds.
func (p *Pool[T]) Outstanding() int { return len(p.outstanding) }
