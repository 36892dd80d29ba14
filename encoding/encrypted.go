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

package encoding

import (
	"math/big"

	"github.com/fentec-project/paillier"
	"github.com/fentec-project/paillier/internal/bigutil"
	"github.com/fentec-project/paillier/sample"
)

// Encrypted is a Paillier ciphertext tied to an EncodingContext, with
// the exponent of the underlying Encoded value carried alongside it and
// an Obfuscated flag tracking whether it has been re-randomized.
// Encrypted is immutable; every operation returns a new value, and
// arithmetic never itself obfuscates its result.
type Encrypted struct {
	Context    *Context
	Ciphertext *big.Int
	Exponent   int32
	Obfuscated bool
}

// Encrypt encrypts e under e.Context's public key, sampling a fresh
// blinding factor via sampler. The result carries Obfuscated = true.
func (e *Encoded) Encrypt(sampler sample.Sampler) (*Encrypted, error) {
	c, err := e.Context.PublicKey.Encrypt(sampler, e.Value)
	if err != nil {
		return nil, err
	}
	return &Encrypted{
		Context:    e.Context,
		Ciphertext: c,
		Exponent:   e.Exponent,
		Obfuscated: true,
	}, nil
}

// EncryptUnobfuscated encrypts e with randomizer r = 1.
// The result is cheap to produce but MUST be obfuscated (see Obfuscate)
// before it is ever observed outside the process.
func (e *Encoded) EncryptUnobfuscated() *Encrypted {
	return &Encrypted{
		Context:    e.Context,
		Ciphertext: e.Context.PublicKey.EncryptUnobfuscated(e.Value),
		Exponent:   e.Exponent,
		Obfuscated: false,
	}
}

func (c *Encrypted) checkSameContext(other *Encrypted) error {
	if !c.Context.Equal(other.Context) {
		return ErrContextMismatch
	}
	return nil
}

// alignedCiphertext re-encrypts the homomorphic effect of multiplying
// the plaintext by factor: c^factor mod n^2, which shifts c's effective
// exponent down by the same amount alignedTo shifts a plaintext value.
func (c *Encrypted) alignedCiphertext(factor *big.Int) *big.Int {
	nSquare := c.Context.PublicKey.NSquare
	return bigutil.ModExp(c.Ciphertext, factor, nSquare)
}

// Add returns c + other: ciphertexts are exponent-aligned (each side
// multiplied homomorphically by base^delta as needed) and then
// multiplied mod n^2. The result is never obfuscated.
func (c *Encrypted) Add(other *Encrypted) (*Encrypted, error) {
	if err := c.checkSameContext(other); err != nil {
		return nil, err
	}

	lowExp, factorA, factorB, err := c.Context.exponentAlign(c.Exponent, other.Exponent)
	if err != nil {
		return nil, err
	}

	ca := c.alignedCiphertext(factorA)
	cb := other.alignedCiphertext(factorB)

	nSquare := c.Context.PublicKey.NSquare
	sum := new(big.Int).Mul(ca, cb)
	sum.Mod(sum, nSquare)

	return &Encrypted{Context: c.Context, Ciphertext: sum, Exponent: lowExp}, nil
}

// AddEncoded returns c + p, computed as c' = c * (1 + p.value*n) mod n^2
// after exponent alignment — equivalent to encrypting p with r=1 and
// multiplying.
func (c *Encrypted) AddEncoded(p *Encoded) (*Encrypted, error) {
	if !c.Context.Equal(p.Context) {
		return nil, ErrContextMismatch
	}

	lowExp, factorC, factorP, err := c.Context.exponentAlign(c.Exponent, p.Exponent)
	if err != nil {
		return nil, err
	}

	ca := c.alignedCiphertext(factorC)
	pValue := p.alignedTo(lowExp, factorP)

	addend := c.Context.PublicKey.EncryptUnobfuscated(pValue)
	nSquare := c.Context.PublicKey.NSquare
	sum := new(big.Int).Mul(ca, addend)
	sum.Mod(sum, nSquare)

	return &Encrypted{Context: c.Context, Ciphertext: sum, Exponent: lowExp}, nil
}

// AddBigInt lifts i to c's context at exponent 0 and adds it.
func (c *Encrypted) AddBigInt(i *big.Int) (*Encrypted, error) {
	p, err := c.Context.EncodeBigInt(i)
	if err != nil {
		return nil, err
	}
	return c.AddEncoded(p)
}

// AddInt64 lifts i to c's context at exponent 0 and adds it.
func (c *Encrypted) AddInt64(i int64) (*Encrypted, error) {
	return c.AddBigInt(big.NewInt(i))
}

// AddFloat64 lifts d to c's context and adds it.
func (c *Encrypted) AddFloat64(d float64) (*Encrypted, error) {
	p, err := c.Context.EncodeFloat64(d)
	if err != nil {
		return nil, err
	}
	return c.AddEncoded(p)
}

// AdditiveInverse returns the ciphertext of -m, computed as c^-1 mod
// n^2 (multiplying the plaintext by -1 in Z_n).
func (c *Encrypted) AdditiveInverse() *Encrypted {
	nSquare := c.Context.PublicKey.NSquare
	inv := bigutil.ModExp(c.Ciphertext, big.NewInt(-1), nSquare)
	return &Encrypted{Context: c.Context, Ciphertext: inv, Exponent: c.Exponent, Obfuscated: c.Obfuscated}
}

// Subtract returns c - other.
func (c *Encrypted) Subtract(other *Encrypted) (*Encrypted, error) {
	return c.Add(other.AdditiveInverse())
}

// SubtractEncoded returns c - p.
func (c *Encrypted) SubtractEncoded(p *Encoded) (*Encrypted, error) {
	return c.AddEncoded(p.AdditiveInverse())
}

// Multiply returns c scaled by the plaintext significand of s:
// c^s mod n^2, with the result's exponent the sum of both exponents. A
// negative significand is handled by ModExp's negative-exponent path
// (additive inverse in Z_n).
func (c *Encrypted) Multiply(s *Encoded) (*Encrypted, error) {
	if !c.Context.Equal(s.Context) {
		return nil, ErrContextMismatch
	}

	nSquare := c.Context.PublicKey.NSquare
	result := bigutil.ModExp(c.Ciphertext, s.significand(), nSquare)

	return &Encrypted{
		Context:    c.Context,
		Ciphertext: result,
		Exponent:   c.Exponent + s.Exponent,
	}, nil
}

// MultiplyBigInt scales c by the integer scalar k.
func (c *Encrypted) MultiplyBigInt(k *big.Int) (*Encrypted, error) {
	s, err := c.Context.EncodeBigInt(k)
	if err != nil {
		return nil, err
	}
	return c.Multiply(s)
}

// MultiplyInt64 scales c by the integer scalar k.
func (c *Encrypted) MultiplyInt64(k int64) (*Encrypted, error) {
	return c.MultiplyBigInt(big.NewInt(k))
}

// MultiplyFloat64 scales c by the float64 scalar k.
func (c *Encrypted) MultiplyFloat64(k float64) (*Encrypted, error) {
	s, err := c.Context.EncodeFloat64(k)
	if err != nil {
		return nil, err
	}
	return c.Multiply(s)
}

// Divide scales c by the modular inverse of scalar in Z_n, keeping c's
// exponent; the result decodes to plaintext/scalar only when the
// plaintext significand is a multiple of scalar. The inverse is applied as a raw exponent via ModExp rather than
// routed through Multiply, since scalar^-1 is itself rarely a
// representable significand (it is a ring element, not a plaintext
// number, and would spuriously fail Multiply's range check).
func (c *Encrypted) Divide(scalar *big.Int) (*Encrypted, error) {
	if scalar.Sign() == 0 {
		return nil, ErrOutOfRange
	}
	inv := new(big.Int).ModInverse(scalar, c.Context.PublicKey.N)
	if inv == nil {
		return nil, ErrOutOfRange
	}

	nSquare := c.Context.PublicKey.NSquare
	result := bigutil.ModExp(c.Ciphertext, inv, nSquare)

	return &Encrypted{Context: c.Context, Ciphertext: result, Exponent: c.Exponent}, nil
}

// Obfuscate returns a new Encrypted carrying the same plaintext and
// exponent but a fresh blinding factor: c' = c * r^n mod n^2 for a
// sampled r coprime to n. The result has Obfuscated = true. This is the
// step a caller takes before a ciphertext leaves the process.
func (c *Encrypted) Obfuscate(sampler sample.Sampler) (*Encrypted, error) {
	r, err := c.Context.PublicKey.SampleBlindingFactor(sampler)
	if err != nil {
		return nil, err
	}
	blinded := c.Context.PublicKey.Blind(c.Ciphertext, r)
	return &Encrypted{Context: c.Context, Ciphertext: blinded, Exponent: c.Exponent, Obfuscated: true}, nil
}

// Decrypt decrypts c under priv, returning the resulting Encoded value.
// It returns ErrKeyMismatch if priv's public key differs from c's
// context's public key. Decrypt never fails on an out-of-range
// plaintext — the ring is closed, so overflow is only observable when
// the caller decodes the result.
func (c *Encrypted) Decrypt(priv *paillier.PrivateKey) (*Encoded, error) {
	if !priv.PublicKey.Equal(c.Context.PublicKey) {
		return nil, paillier.ErrKeyMismatch
	}

	m := priv.Decrypt(c.Ciphertext)
	return &Encoded{Context: c.Context, Value: m, Exponent: c.Exponent}, nil
}
