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

// Package lazyjson is a zero-copy, lazily materialized JSON parser and
// serializer for sustained high-throughput, low-latency workloads, such as
// exchange market-data feeds and RPC hot paths, where per-message garbage
// must stay near zero.
//
// Parsing happens in two phases. [Parse] tokenizes a complete input buffer
// into a flat, array-backed AST store, then hands back a [View] that holds
// indices into that store rather than materialized Go values. Navigating the
// view (Object.Get, Array.Get, String.ToString, ...) only materializes the
// leaf being touched, and only on demand.
//
// Every view, and every byte [Slice] produced while navigating one, is
// borrowed from a pool owned by an [Environment] and tracked by a [Context].
// Call [Environment.OpenContext] once per parse (or reuse one across a hot
// loop via [Context.Reset]), and call [Context.Close] when done with the
// views it produced; that returns every borrowed object to its pool.
//
// To write JSON, acquire a [Writer] bound to an output buffer and issue
// structural/value calls directly; the writer allocates nothing beyond its
// destination buffer.
//
// # Support status
//
// This package does not implement JSON schema validation, path queries, or
// structural mutation. It never converts a parsed document into an allocated
// generic value tree — materialization happens per leaf, on request. Parsing
// a single document is single-threaded; multiple [Environment] values may be
// used concurrently from separate goroutines, but a [Context] (and anything
// borrowed through it) must stay on the goroutine that opened it.
package lazyjson
