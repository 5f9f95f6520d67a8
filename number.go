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
	"math"
	"math/big"
	"strconv"
)

// ParseLong parses b as a signed 64-bit integer with zero allocation on the
// fast (pure-digit) path. Inputs containing '.', 'e', or 'E' are
// parsed as a double and narrowed, failing if the value is outside the
// int64 range; this matches the documented numeric-boundary properties:
//
//	ParseLong("9223372036854775807")  == math.MaxInt64
//	ParseLong("9223372036854775808")  fails with overflow
//	ParseLong("-9223372036854775808") == math.MinInt64
func ParseLong(b []byte) (int64, error) {
	if len(b) == 0 {
		return 0, newUsageError(usageInvalidNumber, "integer", "empty")
	}

	neg := false
	i := 0
	if b[0] == '-' || b[0] == '+' {
		neg = b[0] == '-'
		i = 1
	}
	if i >= len(b) {
		return 0, newUsageError(usageInvalidNumber, "integer", "bare sign")
	}

	for j := i; j < len(b); j++ {
		c := b[j]
		if c == '.' || c == 'e' || c == 'E' {
			f, err := ParseDouble(b)
			if err != nil {
				return 0, err
			}
			if f < math.MinInt64 || f > math.MaxInt64 {
				return 0, newUsageError(usageOverflow, "int64", strconv.FormatFloat(f, 'g', -1, 64))
			}
			return int64(f), nil
		}
		if !isDigit(c) {
			return 0, newUsageError(usageInvalidNumber, "integer", string(c))
		}
	}

	var mag uint64
	for j := i; j < len(b); j++ {
		d := uint64(b[j] - '0')
		if mag > (math.MaxUint64-d)/10 {
			return 0, newUsageError(usageOverflow, "int64", string(b))
		}
		mag = mag*10 + d
	}

	if neg {
		if mag > 1<<63 {
			return 0, newUsageError(usageOverflow, "int64", string(b))
		}
		return -int64(mag), nil
	}
	if mag > math.MaxInt64 {
		return 0, newUsageError(usageOverflow, "int64", string(b))
	}
	return int64(mag), nil
}

// ParseInt parses b as a signed 32-bit integer via [ParseLong], narrowing
// and range-checking the result.
func ParseInt(b []byte) (int32, error) {
	v, err := ParseLong(b)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, newUsageError(usageOverflow, "int32", strconv.FormatInt(v, 10))
	}
	return int32(v), nil
}

// ParseDouble parses b as a float64. Scientific notation is
// delegated to [strconv.ParseFloat] for correctness; the common integer and
// fractional-only path is parsed by hand with a running /10 factor to avoid
// strconv's allocation-prone slow path on the hottest inputs (plain decimal
// market-data prices).
func ParseDouble(b []byte) (float64, error) {
	if len(b) == 0 {
		return 0, newUsageError(usageInvalidNumber, "double", "empty")
	}

	for _, c := range b {
		if c == 'e' || c == 'E' {
			f, err := strconv.ParseFloat(string(b), 64)
			if err != nil {
				return 0, newUsageError(usageInvalidNumber, "double", string(b))
			}
			return f, nil
		}
	}

	i := 0
	neg := false
	if b[i] == '-' || b[i] == '+' {
		neg = b[i] == '-'
		i++
	}
	if i >= len(b) || !isDigit(b[i]) {
		return 0, newUsageError(usageInvalidNumber, "double", string(b))
	}

	var intPart float64
	for ; i < len(b) && isDigit(b[i]); i++ {
		intPart = intPart*10 + float64(b[i]-'0')
	}

	frac := 0.0
	if i < len(b) && b[i] == '.' {
		i++
		if i >= len(b) || !isDigit(b[i]) {
			return 0, newUsageError(usageInvalidNumber, "double", string(b))
		}
		factor := 0.1
		for ; i < len(b) && isDigit(b[i]); i++ {
			frac += float64(b[i]-'0') * factor
			factor /= 10
		}
	}

	if i != len(b) {
		return 0, newUsageError(usageInvalidNumber, "double", string(b))
	}

	v := intPart + frac
	if neg {
		v = -v
	}
	return v, nil
}

// ParseFloat parses b as a float32 via [ParseDouble] and narrows the
// result.
func ParseFloat(b []byte) (float32, error) {
	v, err := ParseDouble(b)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

// ParseBigInt parses b as an arbitrary-precision integer using
// [math/big.Int]. Unlike the routines above, this allocates; it exists for
// APIs that need precision beyond int64, as an acknowledged
// non-zero-allocation escape hatch.
func ParseBigInt(b []byte) (*big.Int, error) {
	z := new(big.Int)
	if _, ok := z.SetString(string(b), 10); !ok {
		return nil, newUsageError(usageInvalidNumber, "big integer", string(b))
	}
	return z, nil
}

// ParseBigDecimal parses b as an arbitrary-precision decimal using
// [math/big.Float] with enough mantissa precision to round-trip any JSON
// number grammar token. This allocates.
func ParseBigDecimal(b []byte) (*big.Float, error) {
	z := new(big.Float).SetPrec(256)
	if _, ok := z.SetString(string(b)); !ok {
		return nil, newUsageError(usageInvalidNumber, "big decimal", string(b))
	}
	return z, nil
}
