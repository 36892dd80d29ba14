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

package paillier

import (
	"math/big"

	"github.com/fentec-project/paillier/internal/bigutil"
)

// PrivateKey holds the Paillier trapdoor: the two primes p, q and the
// CRT constants derived from them. hp and hq are the
// precomputed L_p(g^(p-1) mod p^2)^-1 mod p and the q-analogue; pInvModQ
// is p^-1 mod q, used to recombine the two CRT partial plaintexts.
type PrivateKey struct {
	PublicKey *PublicKey

	P, Q     *big.Int
	PSquare  *big.Int
	QSquare  *big.Int
	Hp, Hq   *big.Int
	PInvModQ *big.Int
}

// PrivateKeyFromPrimes builds a PrivateKey directly from two primes p, q.
// It returns ErrInvalidPrimes if p == q, either is not prime, or the
// resulting n = p*q does not satisfy gcd(n, (p-1)(q-1)) = 1.
func PrivateKeyFromPrimes(p, q *big.Int) (*PrivateKey, error) {
	if p == nil || q == nil || p.Cmp(q) == 0 {
		return nil, ErrInvalidPrimes
	}
	if !p.ProbablyPrime(20) || !q.ProbablyPrime(20) {
		return nil, ErrInvalidPrimes
	}

	n := new(big.Int).Mul(p, q)
	one := big.NewInt(1)
	totient := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)
	if !bigutil.Coprime(n, totient) {
		return nil, ErrInvalidPrimes
	}

	pub, err := PublicKeyFromModulus(n)
	if err != nil {
		return nil, ErrInvalidPrimes
	}

	return newPrivateKey(pub, p, q)
}

// PrivateKeyFromTotient reconstructs a PrivateKey from a public key and
// the Euler totient phi(n) = (p-1)(q-1), factoring n via the quadratic
// x^2 - (n - totient + 1)x + n = 0 whose roots are p and q.
func PrivateKeyFromTotient(pub *PublicKey, totient *big.Int) (*PrivateKey, error) {
	if pub == nil || totient == nil {
		return nil, ErrInvalidPrimes
	}

	one := big.NewInt(1)
	n := pub.N

	// b = n - totient + 1
	b := new(big.Int).Sub(n, totient)
	b.Add(b, one)

	// discriminant = b^2 - 4n
	discriminant := new(big.Int).Mul(b, b)
	discriminant.Sub(discriminant, new(big.Int).Lsh(n, 2))
	if discriminant.Sign() < 0 {
		return nil, ErrInvalidPrimes
	}

	sqrtD := new(big.Int).Sqrt(discriminant)
	if new(big.Int).Mul(sqrtD, sqrtD).Cmp(discriminant) != 0 {
		return nil, ErrInvalidPrimes
	}

	// p, q = (b +/- sqrtD) / 2
	p := new(big.Int).Add(b, sqrtD)
	if p.Bit(0) != 0 {
		return nil, ErrInvalidPrimes
	}
	p.Rsh(p, 1)

	q := new(big.Int).Sub(b, sqrtD)
	if q.Bit(0) != 0 {
		return nil, ErrInvalidPrimes
	}
	q.Rsh(q, 1)

	if new(big.Int).Mul(p, q).Cmp(n) != 0 {
		return nil, ErrInvalidPrimes
	}

	return newPrivateKey(pub, p, q)
}

// newPrivateKey precomputes the CRT constants (hp, hq, p^-1 mod q) for
// decryption, given a public key already matching p*q = n.
func newPrivateKey(pub *PublicKey, p, q *big.Int) (*PrivateKey, error) {
	pSquare := new(big.Int).Mul(p, p)
	qSquare := new(big.Int).Mul(q, q)

	hp, err := computeH(pub.G, p, pSquare)
	if err != nil {
		return nil, err
	}
	hq, err := computeH(pub.G, q, qSquare)
	if err != nil {
		return nil, err
	}

	pInvModQ := new(big.Int).ModInverse(p, q)
	if pInvModQ == nil {
		return nil, ErrInvalidPrimes
	}

	return &PrivateKey{
		PublicKey: pub,
		P:         new(big.Int).Set(p),
		Q:         new(big.Int).Set(q),
		PSquare:   pSquare,
		QSquare:   qSquare,
		Hp:        hp,
		Hq:        hq,
		PInvModQ:  pInvModQ,
	}, nil
}

// computeH computes h_x = L_x(g^(x-1) mod x^2)^-1 mod x, the per-prime
// CRT constant used by Decrypt.
func computeH(g, x, xSquare *big.Int) (*big.Int, error) {
	xMinusOne := new(big.Int).Sub(x, big.NewInt(1))
	u := new(big.Int).Exp(g, xMinusOne, xSquare)
	l := bigutil.L(u, x)
	h := new(big.Int).ModInverse(l, x)
	if h == nil {
		return nil, ErrInvalidPrimes
	}
	return h, nil
}

// Equal reports whether priv and other hold the same prime pair,
// regardless of generation path or order: equality is structural on
// the {p,q} set, not on which one is labeled p.
func (priv *PrivateKey) Equal(other *PrivateKey) bool {
	if priv == nil || other == nil {
		return priv == other
	}
	same := priv.P.Cmp(other.P) == 0 && priv.Q.Cmp(other.Q) == 0
	swapped := priv.P.Cmp(other.Q) == 0 && priv.Q.Cmp(other.P) == 0
	return same || swapped
}
