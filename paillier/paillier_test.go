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

package paillier_test

import (
	"math/big"
	"testing"

	"github.com/fentec-project/paillier"
	"github.com/fentec-project/paillier/sample"
	"github.com/stretchr/testify/assert"
)

func TestGenerateKeyPair(t *testing.T) {
	pub, priv, err := paillier.GenerateKeyPair(256)
	if err != nil {
		t.Fatalf("error during key generation: %v", err)
	}

	assert.True(t, pub.Equal(priv.PublicKey))
	assert.Equal(t, 256, pub.BitLen())
	assert.Equal(t, new(big.Int).Mul(priv.P, priv.Q), pub.N)
}

func TestEncryptDecrypt(t *testing.T) {
	pub, priv, err := paillier.GenerateKeyPair(256)
	if err != nil {
		t.Fatalf("error during key generation: %v", err)
	}

	m := big.NewInt(123456789)
	sampler := sample.NewUniformRange(big.NewInt(1), pub.N)

	c, err := pub.Encrypt(sampler, m)
	if err != nil {
		t.Fatalf("error during encryption: %v", err)
	}

	recovered := priv.Decrypt(c)
	assert.Equal(t, 0, m.Cmp(recovered))
}

func TestHomomorphicAddition(t *testing.T) {
	pub, priv, err := paillier.GenerateKeyPair(256)
	if err != nil {
		t.Fatalf("error during key generation: %v", err)
	}

	a := big.NewInt(123456789)
	b := big.NewInt(314159265359)

	ca := pub.EncryptUnobfuscated(a)
	cb := pub.EncryptUnobfuscated(b)

	sum := new(big.Int).Mul(ca, cb)
	sum.Mod(sum, pub.NSquare)

	recovered := priv.Decrypt(sum)
	assert.Equal(t, new(big.Int).Add(a, b), recovered)
}

func TestPrivateKeyFromTotient(t *testing.T) {
	_, priv, err := paillier.GenerateKeyPair(256)
	if err != nil {
		t.Fatalf("error during key generation: %v", err)
	}

	one := big.NewInt(1)
	totient := new(big.Int).Mul(
		new(big.Int).Sub(priv.P, one),
		new(big.Int).Sub(priv.Q, one),
	)

	recovered, err := paillier.PrivateKeyFromTotient(priv.PublicKey, totient)
	if err != nil {
		t.Fatalf("error recovering private key from totient: %v", err)
	}

	assert.True(t, priv.Equal(recovered))
}

func TestPrivateKeyFromPrimesRejectsEqualPrimes(t *testing.T) {
	_, priv, err := paillier.GenerateKeyPair(256)
	if err != nil {
		t.Fatalf("error during key generation: %v", err)
	}

	_, err = paillier.PrivateKeyFromPrimes(priv.P, priv.P)
	assert.Equal(t, paillier.ErrInvalidPrimes, err)
}

func TestPublicKeyFromModulusRejectsBadBitLength(t *testing.T) {
	_, err := paillier.PublicKeyFromModulus(big.NewInt(100)) // bit length 7, not a multiple of 8
	assert.Equal(t, paillier.ErrInvalidModulus, err)
}
