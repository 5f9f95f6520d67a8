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

import "fmt"

// ValueKind identifies the JSON type a [View] carries.
type ValueKind uint8

const (
	KindObject ValueKind = iota
	KindArray
	KindString
	KindNumber
	KindBoolean
	KindNull
)

func (k ValueKind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "<invalid>"
	}
}

// View is the common interface implemented by every lazy JSON value handle:
// [*Object], [*Array], [*String], [*Number], [Boolean], and [Null].
//
// A View holds no independent ownership of bytes, nodes, or memory — all
// lifetimes are external, tied either to the input buffer ([Slice]s) or to
// the [Context] that produced the view (poolable views). Views produced
// without an attached Context (see [ParseDetached]) are not poolable and
// are ordinary garbage-collected values.
type View interface {
	// Kind reports which concrete JSON type this view carries.
	Kind() ValueKind
}

// Boolean is a JSON true/false value. Booleans are stateless singletons:
// they are never pooled and carry no back-reference to any store, cursor,
// or context.
type Boolean bool

// Kind implements [View].
func (Boolean) Kind() ValueKind { return KindBoolean }

// Value returns the underlying bool.
func (b Boolean) Value() bool { return bool(b) }

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Null is the JSON null value. Like [Boolean], it is a stateless singleton,
// never pooled.
type Null struct{}

// Kind implements [View].
func (Null) Kind() ValueKind { return KindNull }

func (Null) String() string { return "null" }

// binding is the (store, node, src, context) quadruple every pooled view
// embeds: an AST reference, an index into it, the cursor's underlying
// bytes, and a non-owning handle to the context that tracks this view's
// lifetime. None of these are owned by the view.
type binding struct {
	store *ast
	node  int32
	src   []byte
	ctx   *Context
}

func (b *binding) reset() { *b = binding{} }

// nodeTypeName returns the bound node's type name for debugging/formatting
// purposes, or "<unbound>" if the binding has no store.
func (b *binding) nodeTypeName() string {
	if b.store == nil {
		return "<unbound>"
	}
	return b.store.nodeType(b.node).String()
}

func (b *binding) String() string {
	return fmt.Sprintf("%s@%d", b.nodeTypeName(), b.node)
}

// valueFromNode builds the [View] for an arbitrary AST node, borrowing a
// pooled Object/Array/String/Number from ctx when one is attached, or
// constructing an unpooled value otherwise (the path used by
// [ParseDetached]). Boolean and Null are returned as stateless values in
// either case: Booleans and null never enter the tracking lists.
func valueFromNode(store *ast, src []byte, ctx *Context, node int32) View {
	switch store.nodeType(node) {
	case ntObject:
		return bindObject(store, src, ctx, node)
	case ntArray:
		return bindArray(store, src, ctx, node)
	case ntString:
		return bindString(store, src, ctx, node)
	case ntNumber:
		return bindNumber(store, src, ctx, node)
	case ntBoolTrue:
		return Boolean(true)
	case ntBoolFalse:
		return Boolean(false)
	case ntNull:
		return Null{}
	default:
		panic(fmt.Sprintf("lazyjson: unexpected node type %v at value position", store.nodeType(node)))
	}
}
