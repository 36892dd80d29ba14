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

// Package keygen generates the prime material Paillier key pairs are
// built from.
package keygen

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// maxCandidateTries bounds the retry loop in GetProbablePrime and
// GetPrimePair; exhausting it signals a starved entropy source rather
// than looping forever.
const maxCandidateTries = 1000

// GetProbablePrime returns a probable prime of exactly bitLen bits, with
// its top bit set so the product of two such primes has the expected
// combined bit length. It is adapted from the candidate-sampling loop
// NewElGamal uses to find a generator, applied here to prime candidates
// instead.
func GetProbablePrime(bitLen int) (*big.Int, error) {
	if bitLen < 2 {
		return nil, fmt.Errorf("bit length must be at least 2, got %d", bitLen)
	}

	for i := 0; i < maxCandidateTries; i++ {
		p, err := rand.Prime(rand.Reader, bitLen)
		if err != nil {
			return nil, errors.Wrap(err, "error generating probable prime")
		}
		if p.BitLen() == bitLen {
			return p, nil
		}
	}

	return nil, fmt.Errorf("could not generate a %d-bit prime in %d tries", bitLen, maxCandidateTries)
}

// GetPrimePair returns two independent probable primes p, q each of
// bitLen/2 bits such that n = p*q has exactly bitLen bits and
// gcd(n, (p-1)(q-1)) = 1, as required for a valid Paillier modulus. It
// returns an error if the retry budget is exhausted.
func GetPrimePair(bitLen int) (p, q *big.Int, err error) {
	if bitLen < 8 || bitLen%8 != 0 {
		return nil, nil, fmt.Errorf("bit length must be a positive multiple of 8, got %d", bitLen)
	}
	half := bitLen / 2

	one := big.NewInt(1)
	for i := 0; i < maxCandidateTries; i++ {
		p, err = GetProbablePrime(half)
		if err != nil {
			return nil, nil, err
		}
		q, err = GetProbablePrime(half)
		if err != nil {
			return nil, nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}

		n := new(big.Int).Mul(p, q)
		if n.BitLen() != bitLen {
			continue
		}

		totient := new(big.Int).Sub(p, one)
		qMinusOne := new(big.Int).Sub(q, one)
		totient.Mul(totient, qMinusOne)

		if new(big.Int).GCD(nil, nil, n, totient).Cmp(one) == 0 {
			return p, q, nil
		}
	}

	return nil, nil, fmt.Errorf("could not generate a suitable %d-bit prime pair in %d tries", bitLen, maxCandidateTries)
}
