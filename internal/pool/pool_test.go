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

package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantjson/lazyjson/internal/pool"
)

type widget struct {
	n int
}

func TestAcquireConstructsFreshWhenEmpty(t *testing.T) {
	t.Parallel()

	var p pool.Pool[widget]
	w := p.Acquire()
	assert.NotNil(t, w)
	assert.Equal(t, 0, w.n)
}

func TestReleaseThenAcquireReusesValue(t *testing.T) {
	t.Parallel()

	var p pool.Pool[widget]
	w1 := p.Acquire()
	w1.n = 42
	p.Release(w1)
	assert.Equal(t, 1, p.Len())

	w2 := p.Acquire()
	assert.Same(t, w1, w2)
	assert.Equal(t, 0, p.Len())
}

func TestResetClearsValueOnAcquire(t *testing.T) {
	t.Parallel()

	p := pool.Pool[widget]{
		Reset: func(w *widget) { w.n = 0 },
	}
	w := p.Acquire()
	w.n = 7
	p.Release(w)

	w2 := p.Acquire()
	assert.Equal(t, 0, w2.n)
}

func TestNewConstructorUsedOnExhaustion(t *testing.T) {
	t.Parallel()

	calls := 0
	p := pool.Pool[widget]{
		New: func() *widget {
			calls++
			return &widget{n: -1}
		},
	}
	w := p.Acquire()
	assert.Equal(t, 1, calls)
	assert.Equal(t, -1, w.n)
}

func TestReleaseNilIsNoop(t *testing.T) {
	t.Parallel()

	var p pool.Pool[widget]
	p.Release(nil)
	assert.Equal(t, 0, p.Len())
}

func TestReleaseOverflowBeyondCapacityIsDropped(t *testing.T) {
	t.Parallel()

	p := pool.Pool[widget]{Capacity: 2}
	var held []*widget
	for i := 0; i < 20; i++ {
		held = append(held, p.Acquire())
	}
	for _, w := range held {
		p.Release(w)
	}
	// Capacity*4 == 8 is the hard ceiling on the free list length.
	assert.Equal(t, 8, p.Len())
}

func TestOutstandingZeroInReleaseBuilds(t *testing.T) {
	t.Parallel()

	var p pool.Pool[widget]
	p.Acquire()
	// debug.Enabled is false absent the debug build tag, so outstanding
	// tracking is never populated.
	assert.Equal(t, 0, p.Outstanding())
}
