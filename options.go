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

package lazyjson

// ParseOption is a configuration setting for [Parse] and [Context.Parse].
//
// This is a struct rather than an interface so that With*() calls on the
// parse hot path inline cleanly; see
// https://github.com/golang/go/issues/74356 for the general case against
// interface-typed functional options on a hot path.
type ParseOption struct{ apply func(*Limits) }

// WithMaxDepth overrides the maximum container nesting depth (default 100).
// Exceeding it fails with a [ParseError] wrapping [ErrNestingTooDeep].
func WithMaxDepth(depth int) ParseOption {
	return ParseOption{func(l *Limits) { l.MaxDepth = depth }}
}

// WithMaxStringBytes overrides the maximum byte length of a single string's
// interior (default 1 MiB).
func WithMaxStringBytes(n int) ParseOption {
	return ParseOption{func(l *Limits) { l.MaxStringBytes = n }}
}

// WithMaxNumberBytes overrides the maximum byte length of a number's digit
// run (default 1,000).
func WithMaxNumberBytes(n int) ParseOption {
	return ParseOption{func(l *Limits) { l.MaxNumberBytes = n }}
}

// WithMaxArrayElements overrides the maximum number of elements a single
// array may contain (default 100,000).
func WithMaxArrayElements(n int) ParseOption {
	return ParseOption{func(l *Limits) { l.MaxArrayElements = n }}
}

// WithMaxObjectFields overrides the maximum number of fields a single
// object may contain (default 100,000).
func WithMaxObjectFields(n int) ParseOption {
	return ParseOption{func(l *Limits) { l.MaxObjectFields = n }}
}

// WithLimits overrides every limit at once, e.g. with a [Limits] value
// loaded from the config package.
func WithLimits(l Limits) ParseOption {
	return ParseOption{func(dst *Limits) { *dst = l }}
}

func resolveLimits(opts []ParseOption) Limits {
	l := DefaultLimits()
	for _, o := range opts {
		o.apply(&l)
	}
	return l
}

// WriterOption is a configuration setting for [NewWriter].
type WriterOption struct{ apply func(*writerConfig) }

type writerConfig struct {
	indent string
}

// WithIndent makes the writer pretty-print with the given per-level indent
// string (e.g. "  "). The default is the empty string, which emits compact
// JSON with no inter-token whitespace.
func WithIndent(indent string) WriterOption {
	return WriterOption{func(c *writerConfig) { c.indent = indent }}
}

func resolveWriterConfig(opts []WriterOption) writerConfig {
	var c writerConfig
	for _, o := range opts {
		o.apply(&c)
	}
	return c
}
