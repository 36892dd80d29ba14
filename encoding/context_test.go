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
	"math/big"
	"testing"

	"github.com/fentec-project/paillier"
	"github.com/fentec-project/paillier/encoding"
	"github.com/stretchr/testify/assert"
)

func newTestKey(t *testing.T, bits int) *paillier.PublicKey {
	pub, _, err := paillier.GenerateKeyPair(bits)
	if err != nil {
		t.Fatalf("error during key generation: %v", err)
	}
	return pub
}

func TestNewContextSignedFullPrecision(t *testing.T) {
	pub := newTestKey(t, 256)

	ctx, err := encoding.NewContext(pub, true, uint(pub.BitLen()), 10)
	if err != nil {
		t.Fatalf("error creating context: %v", err)
	}

	expectedMax := new(big.Int).Div(pub.N, big.NewInt(3))
	assert.Equal(t, 0, expectedMax.Cmp(ctx.MaxEncoded()))
}

func TestNewContextUnsignedPartialPrecision(t *testing.T) {
	pub := newTestKey(t, 256)

	ctx, err := encoding.NewContext(pub, false, 16, 2)
	if err != nil {
		t.Fatalf("error creating context: %v", err)
	}

	expectedMax := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 16), big.NewInt(1))
	assert.Equal(t, 0, expectedMax.Cmp(ctx.MaxEncoded()))
}

func TestNewContextRejectsBadBase(t *testing.T) {
	pub := newTestKey(t, 256)
	_, err := encoding.NewContext(pub, true, 4, 1)
	assert.Equal(t, encoding.ErrInvalidConfig, err)
}

func TestNewContextRejectsPrecisionTooLarge(t *testing.T) {
	pub := newTestKey(t, 256)
	_, err := encoding.NewContext(pub, false, uint(pub.BitLen())+1, 10)
	assert.Equal(t, encoding.ErrInvalidConfig, err)
}

func TestNewContextRejectsSignedPrecisionOne(t *testing.T) {
	pub := newTestKey(t, 256)
	_, err := encoding.NewContext(pub, true, 1, 10)
	assert.Equal(t, encoding.ErrInvalidConfig, err)
}

func TestContextEqual(t *testing.T) {
	pub := newTestKey(t, 256)

	a, err := encoding.NewContext(pub, true, uint(pub.BitLen()), 10)
	if err != nil {
		t.Fatalf("error creating context: %v", err)
	}
	b, err := encoding.NewContext(pub, true, uint(pub.BitLen()), 10)
	if err != nil {
		t.Fatalf("error creating context: %v", err)
	}
	c, err := encoding.NewContext(pub, false, uint(pub.BitLen()), 10)
	if err != nil {
		t.Fatalf("error creating context: %v", err)
	}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
