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

// Package paillier implements the Paillier partially homomorphic
// cryptosystem: public/private key material, key generation, and the
// encrypt/decrypt trapdoor. Fixed-point encoding and homomorphic
// arithmetic over encrypted values live in the sibling encoding package.
package paillier

import "math/big"

// PublicKey holds the Paillier public modulus n, its square, and the
// generator g = n+1 of the plaintext group. n is the product of two
// primes of equal bit length; its bit length must be a multiple of 8
// and at least 8.
type PublicKey struct {
	N       *big.Int
	NSquare *big.Int
	G       *big.Int // g = n + 1
}

// PublicKeyFromModulus builds a PublicKey from a previously generated
// modulus n. It returns ErrInvalidModulus if n is not odd, has fewer
// than 8 bits, or has a bit length that is not a multiple of 8.
func PublicKeyFromModulus(n *big.Int) (*PublicKey, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	if n.BitLen() < 8 || n.BitLen()%8 != 0 {
		return nil, ErrInvalidModulus
	}
	if n.Bit(0) == 0 {
		return nil, ErrInvalidModulus
	}

	one := big.NewInt(1)
	return &PublicKey{
		N:       new(big.Int).Set(n),
		NSquare: new(big.Int).Mul(n, n),
		G:       new(big.Int).Add(n, one),
	}, nil
}

// Equal reports whether pub and other share the same modulus n, which
// is the structural equality expected of public keys.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	if pub == nil || other == nil {
		return pub == other
	}
	return pub.N.Cmp(other.N) == 0
}

// BitLen returns the bit length of the modulus n.
func (pub *PublicKey) BitLen() int {
	return pub.N.BitLen()
}
