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
	"math"
	"math/big"
)

// Encoded is a plaintext value represented as significand*base^exponent,
// with the significand stored as an element of Z_n.
// Encoded is immutable; every arithmetic method returns a new value.
type Encoded struct {
	Context  *Context
	Value    *big.Int
	Exponent int32
}

// checkSameContext is the internal guard requires before
// any two-operand arithmetic.
func (e *Encoded) checkSameContext(other *Encoded) error {
	if !e.Context.Equal(other.Context) {
		return ErrContextMismatch
	}
	return nil
}

// significand reconstructs the signed significand represented by Value:
// Value itself when Value <= maxEncoded, or Value - n when Value lies
// in the signed context's upper band.
func (e *Encoded) significand() *big.Int {
	ctx := e.Context
	if ctx.Signed && e.Value.Cmp(ctx.maxEncoded) > 0 {
		return new(big.Int).Sub(e.Value, ctx.PublicKey.N)
	}
	return new(big.Int).Set(e.Value)
}

// DecodeBigInt reconstructs significand*base^exponent as an exact
// integer. It returns ErrNonIntegerDecode if Exponent < 0 and the
// significand is not a multiple of base^-Exponent (the value has a
// fractional part), and ErrOverflowOnDecode if Value lies outside the
// context's valid encoded range.
func (e *Encoded) DecodeBigInt() (*big.Int, error) {
	if !e.Context.inEncodedRange(e.Value) {
		return nil, ErrOverflowOnDecode
	}

	sig := e.significand()
	if e.Exponent == 0 {
		return sig, nil
	}

	baseBig := new(big.Int).SetUint64(e.Context.Base)
	if e.Exponent < 0 {
		divisor := new(big.Int).Exp(baseBig, big.NewInt(-int64(e.Exponent)), nil)
		q, r := new(big.Int).QuoRem(sig, divisor, new(big.Int))
		if r.Sign() != 0 {
			return nil, ErrNonIntegerDecode
		}
		return q, nil
	}
	scale := new(big.Int).Exp(baseBig, big.NewInt(int64(e.Exponent)), nil)
	return sig.Mul(sig, scale), nil
}

// DecodeInt64 is DecodeBigInt narrowed to an int64; it does not itself
// introduce additional range checks beyond what big.Int.Int64 performs.
func (e *Encoded) DecodeInt64() (int64, error) {
	v, err := e.DecodeBigInt()
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

// DecodeFloat64 reconstructs the nearest float64 to
// significand*base^exponent. It returns ErrOverflowOnDecode if Value is
// outside the valid encoded range, and ErrDoubleOverflow if the
// magnitude exceeds what float64 can represent.
func (e *Encoded) DecodeFloat64() (float64, error) {
	if !e.Context.inEncodedRange(e.Value) {
		return 0, ErrOverflowOnDecode
	}

	sig := e.significand()
	sigF := new(big.Float).SetInt(sig)
	scale := math.Pow(float64(e.Context.Base), float64(e.Exponent))

	result, _ := sigF.Float64()
	result *= scale

	if math.IsInf(result, 0) {
		return 0, ErrDoubleOverflow
	}
	return result, nil
}

// alignedTo returns a copy of e's significand value rescaled to
// exponent lowExp, given the pre-computed factor from Context.exponentAlign.
func (e *Encoded) alignedTo(lowExp int32, factor *big.Int) *big.Int {
	v := new(big.Int).Mul(e.Value, factor)
	return v.Mod(v, e.Context.PublicKey.N)
}

// Add returns e + other, aligning exponents first. It
// returns ErrContextMismatch if the two belong to different contexts,
// and ErrExponentGapTooLarge if the exponent gap exceeds the context's
// safety margin.
func (e *Encoded) Add(other *Encoded) (*Encoded, error) {
	if err := e.checkSameContext(other); err != nil {
		return nil, err
	}

	lowExp, factorA, factorB, err := e.Context.exponentAlign(e.Exponent, other.Exponent)
	if err != nil {
		return nil, err
	}

	va := e.alignedTo(lowExp, factorA)
	vb := other.alignedTo(lowExp, factorB)

	sum := new(big.Int).Add(va, vb)
	sum.Mod(sum, e.Context.PublicKey.N)

	return &Encoded{Context: e.Context, Value: sum, Exponent: lowExp}, nil
}

// AddBigInt lifts i to this context at exponent 0 and adds it.
func (e *Encoded) AddBigInt(i *big.Int) (*Encoded, error) {
	rhs, err := e.Context.EncodeBigInt(i)
	if err != nil {
		return nil, err
	}
	return e.Add(rhs)
}

// AddInt64 lifts i to this context at exponent 0 and adds it.
func (e *Encoded) AddInt64(i int64) (*Encoded, error) {
	return e.AddBigInt(big.NewInt(i))
}

// AddFloat64 lifts d to this context and adds it.
func (e *Encoded) AddFloat64(d float64) (*Encoded, error) {
	rhs, err := e.Context.EncodeFloat64(d)
	if err != nil {
		return nil, err
	}
	return e.Add(rhs)
}

// AdditiveInverse returns -e, i.e. the encoding of -significand at the
// same exponent.
func (e *Encoded) AdditiveInverse() *Encoded {
	neg := new(big.Int).Neg(e.Value)
	neg.Mod(neg, e.Context.PublicKey.N)
	return &Encoded{Context: e.Context, Value: neg, Exponent: e.Exponent}
}

// Subtract returns e - other.
func (e *Encoded) Subtract(other *Encoded) (*Encoded, error) {
	if err := e.checkSameContext(other); err != nil {
		return nil, err
	}
	return e.Add(other.AdditiveInverse())
}

// Multiply returns e * other: significands multiply mod n, exponents
// add.
func (e *Encoded) Multiply(other *Encoded) (*Encoded, error) {
	if err := e.checkSameContext(other); err != nil {
		return nil, err
	}

	product := new(big.Int).Mul(e.Value, other.Value)
	product.Mod(product, e.Context.PublicKey.N)

	return &Encoded{
		Context:  e.Context,
		Value:    product,
		Exponent: e.Exponent + other.Exponent,
	}, nil
}

// MultiplyBigInt multiplies e by the scalar i.
func (e *Encoded) MultiplyBigInt(i *big.Int) (*Encoded, error) {
	rhs, err := e.Context.EncodeBigInt(i)
	if err != nil {
		return nil, err
	}
	return e.Multiply(rhs)
}

// MultiplyInt64 multiplies e by the scalar i.
func (e *Encoded) MultiplyInt64(i int64) (*Encoded, error) {
	return e.MultiplyBigInt(big.NewInt(i))
}

// Divide returns e / scalar, computed as Value * scalar^-1 mod n. The
// inverse is applied directly to the ring value rather than routed
// through Multiply, since scalar^-1 is itself rarely a representable
// significand (it is a ring element, not a plaintext number).
func (e *Encoded) Divide(scalar *big.Int) (*Encoded, error) {
	if scalar.Sign() == 0 {
		return nil, ErrOutOfRange
	}
	n := e.Context.PublicKey.N
	inv := new(big.Int).ModInverse(scalar, n)
	if inv == nil {
		return nil, ErrOutOfRange
	}

	value := new(big.Int).Mul(e.Value, inv)
	value.Mod(value, n)

	return &Encoded{Context: e.Context, Value: value, Exponent: e.Exponent}, nil
}

// ChangeContext re-encodes e's underlying numeric value
// significand*base^exponent into other. When the two contexts share a
// base, the significand and exponent carry over unchanged; otherwise
// the value is reconstructed as a float64 and re-encoded from scratch
// in other's base, since a base change generally has no exact
// same-exponent representation. It returns ErrOutOfRange if the value
// does not fit in other, or ErrOverflowOnDecode/ErrDoubleOverflow if
// the cross-base reconstruction cannot represent it as a float64.
func (e *Encoded) ChangeContext(other *Context) (*Encoded, error) {
	if e.Context.Base == other.Base {
		return other.EncodeWithExponent(e.significand(), e.Exponent)
	}

	d, err := e.DecodeFloat64()
	if err != nil {
		return nil, err
	}
	return other.EncodeFloat64(d)
}
