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
	"github.com/fentec-project/paillier/sample"
)

// EncryptUnobfuscated computes c0 = (1 + m*n) mod n^2, the Paillier
// ciphertext of m under randomizer r = 1. It is cheap to produce and
// valid for further homomorphic arithmetic, but must be obfuscated (see
// the encoding package's Encrypted.Obfuscate) before it is ever
// observed outside the process.
func (pub *PublicKey) EncryptUnobfuscated(m *big.Int) *big.Int {
	c := new(big.Int).Mul(m, pub.N)
	c.Add(c, big.NewInt(1))
	return c.Mod(c, pub.NSquare)
}

// Blind re-randomizes ciphertext c by multiplying in r^n mod n^2 for the
// given r, which must be coprime to n. This is the mechanical step
// behind both Encrypt and the encoding package's Encrypted.Obfuscate.
func (pub *PublicKey) Blind(c, r *big.Int) *big.Int {
	rn := new(big.Int).Exp(r, pub.N, pub.NSquare)
	blinded := new(big.Int).Mul(c, rn)
	return blinded.Mod(blinded, pub.NSquare)
}

// SampleBlindingFactor draws a random r in [1, n) with gcd(r, n) = 1
// from sampler, retrying on an unlucky (non-coprime) draw. This is the
// only place fresh randomness enters encryption or obfuscation.
func (pub *PublicKey) SampleBlindingFactor(sampler sample.Sampler) (*big.Int, error) {
	for i := 0; i < 100; i++ {
		r, err := sampler.Sample()
		if err != nil {
			return nil, err
		}
		if r.Sign() <= 0 || r.Cmp(pub.N) >= 0 {
			continue
		}
		if bigutil.Coprime(r, pub.N) {
			return r, nil
		}
	}

	return nil, sample.ErrSamplingFailed
}

// Encrypt computes a freshly obfuscated Paillier ciphertext of plaintext
// m in [0, n), sampling its own blinding factor via sampler.
func (pub *PublicKey) Encrypt(sampler sample.Sampler, m *big.Int) (*big.Int, error) {
	r, err := pub.SampleBlindingFactor(sampler)
	if err != nil {
		return nil, err
	}
	c0 := pub.EncryptUnobfuscated(m)
	return pub.Blind(c0, r), nil
}

// Decrypt recovers the plaintext m in [0, n) encrypted in ciphertext c,
// using CRT acceleration: the L-function is evaluated mod p^2 and mod
// q^2 separately and the two partial results are recombined mod n.
func (priv *PrivateKey) Decrypt(c *big.Int) *big.Int {
	n := priv.PublicKey.N

	up := new(big.Int).Exp(c, new(big.Int).Sub(priv.P, big.NewInt(1)), priv.PSquare)
	mp := new(big.Int).Mul(bigutil.L(up, priv.P), priv.Hp)
	mp.Mod(mp, priv.P)

	uq := new(big.Int).Exp(c, new(big.Int).Sub(priv.Q, big.NewInt(1)), priv.QSquare)
	mq := new(big.Int).Mul(bigutil.L(uq, priv.Q), priv.Hq)
	mq.Mod(mq, priv.Q)

	// m = mp + p * ((mq - mp) * pInvModQ mod q)
	diff := new(big.Int).Sub(mq, mp)
	diff.Mul(diff, priv.PInvModQ)
	diff.Mod(diff, priv.Q)

	m := new(big.Int).Mul(priv.P, diff)
	m.Add(m, mp)
	return m.Mod(m, n)
}
