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

package encoding_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/fentec-project/paillier"
	"github.com/fentec-project/paillier/encoding"
	"github.com/stretchr/testify/assert"
)

func signedFullContext(t *testing.T, bits int, base uint64) *encoding.Context {
	pub, _, err := paillier.GenerateKeyPair(bits)
	if err != nil {
		t.Fatalf("error during key generation: %v", err)
	}
	ctx, err := encoding.NewContext(pub, true, uint(pub.BitLen()), base)
	if err != nil {
		t.Fatalf("error creating context: %v", err)
	}
	return ctx
}

func TestEncodeDecodeIntRoundTrip(t *testing.T) {
	ctx := signedFullContext(t, 256, 10)

	e, err := ctx.EncodeInt64(-15)
	if err != nil {
		t.Fatalf("error encoding: %v", err)
	}

	v, err := e.DecodeInt64()
	if err != nil {
		t.Fatalf("error decoding: %v", err)
	}
	assert.Equal(t, int64(-15), v)
}

func TestEncodeOutOfRange(t *testing.T) {
	pub, _, err := paillier.GenerateKeyPair(256)
	if err != nil {
		t.Fatalf("error during key generation: %v", err)
	}
	ctx, err := encoding.NewContext(pub, false, 16, 2)
	if err != nil {
		t.Fatalf("error creating context: %v", err)
	}

	tooBig := new(big.Int).Lsh(big.NewInt(1), 16) // 2^16, one past maxEncoded
	_, err = ctx.EncodeBigInt(tooBig)
	assert.Equal(t, encoding.ErrOutOfRange, err)
}

func TestEncodeUnsignedRejectsNegative(t *testing.T) {
	pub, _, err := paillier.GenerateKeyPair(256)
	if err != nil {
		t.Fatalf("error during key generation: %v", err)
	}
	ctx, err := encoding.NewContext(pub, false, uint(pub.BitLen()), 10)
	if err != nil {
		t.Fatalf("error creating context: %v", err)
	}

	_, err = ctx.EncodeFloat64(-1.5)
	assert.Equal(t, encoding.ErrEncodeUnrepresentable, err)
}

func TestEncodeRejectsNaNAndInf(t *testing.T) {
	ctx := signedFullContext(t, 256, 10)

	_, err := ctx.EncodeFloat64(math.NaN())
	assert.Equal(t, encoding.ErrEncodeUnrepresentable, err)

	_, err = ctx.EncodeFloat64(math.Inf(1))
	assert.Equal(t, encoding.ErrEncodeUnrepresentable, err)
}

func TestEncodedAddIntegers(t *testing.T) {
	ctx := signedFullContext(t, 256, 10)

	a, err := ctx.EncodeInt64(-15)
	if err != nil {
		t.Fatalf("error encoding a: %v", err)
	}
	b, err := ctx.EncodeInt64(1)
	if err != nil {
		t.Fatalf("error encoding b: %v", err)
	}

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("error adding: %v", err)
	}

	v, err := sum.DecodeInt64()
	if err != nil {
		t.Fatalf("error decoding sum: %v", err)
	}
	assert.Equal(t, int64(-14), v)
}

func TestEncodedDifferentContextsMismatch(t *testing.T) {
	ctxA := signedFullContext(t, 256, 10)
	ctxB := signedFullContext(t, 256, 10)

	a, err := ctxA.EncodeInt64(1)
	if err != nil {
		t.Fatalf("error encoding: %v", err)
	}
	b, err := ctxB.EncodeInt64(1)
	if err != nil {
		t.Fatalf("error encoding: %v", err)
	}

	_, err = a.Add(b)
	assert.Equal(t, encoding.ErrContextMismatch, err)
}

func TestEncodedMultiplyAddsExponents(t *testing.T) {
	ctx := signedFullContext(t, 256, 10)

	a, err := ctx.EncodeWithExponent(big.NewInt(3), 2)
	if err != nil {
		t.Fatalf("error encoding a: %v", err)
	}
	b, err := ctx.EncodeWithExponent(big.NewInt(4), -1)
	if err != nil {
		t.Fatalf("error encoding b: %v", err)
	}

	product, err := a.Multiply(b)
	if err != nil {
		t.Fatalf("error multiplying: %v", err)
	}
	assert.Equal(t, int32(1), product.Exponent)

	v, err := product.DecodeInt64()
	if err != nil {
		t.Fatalf("error decoding: %v", err)
	}
	assert.Equal(t, int64(120), v) // 3*10^2 * 4*10^-1 = 120
}

func TestChangeContext(t *testing.T) {
	pub, _, err := paillier.GenerateKeyPair(256)
	if err != nil {
		t.Fatalf("error during key generation: %v", err)
	}
	small, err := encoding.NewContext(pub, true, 16, 2)
	if err != nil {
		t.Fatalf("error creating small context: %v", err)
	}
	big_, err := encoding.NewContext(pub, true, uint(pub.BitLen()), 10)
	if err != nil {
		t.Fatalf("error creating big context: %v", err)
	}

	e, err := small.EncodeInt64(42)
	if err != nil {
		t.Fatalf("error encoding: %v", err)
	}

	moved, err := e.ChangeContext(big_)
	if err != nil {
		t.Fatalf("error changing context: %v", err)
	}

	v, err := moved.DecodeInt64()
	if err != nil {
		t.Fatalf("error decoding: %v", err)
	}
	assert.Equal(t, int64(42), v)
}
