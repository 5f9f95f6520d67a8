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

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// ToStruct converts a parsed [View] into a protobuf well-known
// google.protobuf.Value, for handing a lazily parsed document to code that
// speaks protobuf (gRPC request/response fields typed as
// google.protobuf.Struct, CEL evaluation, protovalidate, ...) without an
// intermediate encoding/json round trip. This materializes the entire
// subtree into one Value; it is not the zero-allocation path.
func ToStruct(v View) (*structpb.Value, error) {
	switch t := v.(type) {
	case *Object:
		fields := make(map[string]*structpb.Value, t.Size())
		var convErr error
		t.Range(func(name Slice, value View) bool {
			sv, err := ToStruct(value)
			if err != nil {
				convErr = err
				return false
			}
			fields[name.String()] = sv
			return true
		})
		if convErr != nil {
			return nil, convErr
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil

	case *Array:
		vals := make([]*structpb.Value, 0, t.Size())
		var convErr error
		t.Range(func(_ int, value View) bool {
			sv, err := ToStruct(value)
			if err != nil {
				convErr = err
				return false
			}
			vals = append(vals, sv)
			return true
		})
		if convErr != nil {
			return nil, convErr
		}
		return structpb.NewListValue(&structpb.ListValue{Values: vals}), nil

	case *String:
		return structpb.NewStringValue(t.ToString()), nil

	case *Number:
		d, err := t.AsDouble()
		if err != nil {
			return nil, err
		}
		return structpb.NewNumberValue(d), nil

	case Boolean:
		return structpb.NewBoolValue(bool(t)), nil

	case Null:
		return structpb.NewNullValue(), nil

	default:
		return nil, fmt.Errorf("lazyjson: unsupported view kind %T", v)
	}
}
