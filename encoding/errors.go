/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package encoding implements the fixed-point encoding layer on top of
// package paillier: EncodingContext maps signed/unsigned, configurable-
// base, configurable-precision rationals into the plaintext ring Z_n,
// and Encoded/Encrypted carry out homomorphic arithmetic that respects
// the encoding.
package encoding

import (
	"errors"

	gopaillier "github.com/fentec-project/paillier/internal"
)

// ErrInvalidConfig is returned by NewContext for a bad precision, a
// base smaller than 2, or a precision exceeding the modulus bit length.
var ErrInvalidConfig = errors.New("invalid encoding context configuration")

// ErrOutOfRange is returned when an integer or rational significand
// falls outside the context's [minSignificand, maxSignificand] range.
var ErrOutOfRange = errors.New("value out of the encoding context's significand range")

// ErrEncodeUnrepresentable is returned when encoding a NaN, an
// infinity, or (in an unsigned context) a negative finite value.
var ErrEncodeUnrepresentable = errors.New("value is not representable by this encoding context")

// ErrOverflowOnDecode is returned when a value lies outside the valid
// encoded range [0, maxEncoded] (unsigned) or
// [0, maxEncoded] ∪ [minEncoded, n) (signed) at decode time.
var ErrOverflowOnDecode = errors.New("encoded value overflows the context's valid range")

// ErrNonIntegerDecode is returned by DecodeBigInt when the value's
// exponent is negative and decoding would introduce a fractional part.
var ErrNonIntegerDecode = errors.New("value cannot be decoded as an exact integer")

// ErrDoubleOverflow is returned by DecodeFloat64 when the decoded
// magnitude exceeds what a float64 can represent.
var ErrDoubleOverflow = errors.New("decoded value overflows float64 range")

// ErrContextMismatch is returned by arithmetic methods when operands
// are bound to contexts that are not Equal.
var ErrContextMismatch = gopaillier.ErrContextMismatch

// ErrExponentGapTooLarge is returned when aligning two operands would
// require shifting a significand by more than the context's safety
// margin.
var ErrExponentGapTooLarge = errors.New("exponent alignment gap exceeds the safety margin")
