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

	"github.com/fentec-project/paillier"
)

// doubleMantissaBits is the number of bits of precision a float64's
// mantissa carries; it bounds how large an exponent gap can be crossed
// without losing information a double could represent in the first
// place.
const doubleMantissaBits = 53

// Context binds a paillier.PublicKey with the encoding configuration:
// whether negative values are representable (signed), how many base-b
// digits of significand are kept (precision), and the base itself.
// Context is immutable after construction; two contexts are equal iff
// their PublicKey, Signed, Precision, and Base all match.
type Context struct {
	PublicKey *paillier.PublicKey
	Signed    bool
	Precision uint
	Base      uint64

	maxEncoded      *big.Int
	minEncoded      *big.Int
	maxSignificand  *big.Int
	minSignificand  *big.Int
	maxExponentDiff int
}

// NewContext builds an EncodingContext over pub. precision must lie in
// [1, bitlen(n)] (and be at least 2 when signed, so that at least one
// sign bit of significand range remains); base must be at least 2. It
// returns ErrInvalidConfig otherwise.
func NewContext(pub *paillier.PublicKey, signed bool, precision uint, base uint64) (*Context, error) {
	if pub == nil {
		return nil, ErrInvalidConfig
	}
	if base < 2 {
		return nil, ErrInvalidConfig
	}

	bitLen := uint(pub.N.BitLen())
	if precision < 1 || precision > bitLen {
		return nil, ErrInvalidConfig
	}
	if signed && precision < 2 {
		return nil, ErrInvalidConfig
	}

	ctx := &Context{
		PublicKey: pub,
		Signed:    signed,
		Precision: precision,
		Base:      base,
	}

	fullPrecision := precision == bitLen
	baseBig := new(big.Int).SetUint64(base)

	if signed {
		if fullPrecision {
			// the classic Paillier signed range: split n at 1/3 so that
			// arithmetic overflow crossing the n/2 boundary is always
			// detectable at decode time.
			ctx.maxEncoded = new(big.Int).Div(pub.N, big.NewInt(3))
		} else {
			ctx.maxEncoded = new(big.Int).Exp(baseBig, big.NewInt(int64(precision-1)), nil)
			ctx.maxEncoded.Sub(ctx.maxEncoded, big.NewInt(1))
		}
		ctx.minEncoded = new(big.Int).Sub(pub.N, ctx.maxEncoded)
		ctx.maxSignificand = new(big.Int).Set(ctx.maxEncoded)
		ctx.minSignificand = new(big.Int).Neg(ctx.maxEncoded)
	} else {
		if fullPrecision {
			ctx.maxEncoded = new(big.Int).Sub(pub.N, big.NewInt(1))
		} else {
			ctx.maxEncoded = new(big.Int).Exp(baseBig, big.NewInt(int64(precision)), nil)
			ctx.maxEncoded.Sub(ctx.maxEncoded, big.NewInt(1))
		}
		ctx.minEncoded = big.NewInt(0)
		ctx.maxSignificand = new(big.Int).Set(ctx.maxEncoded)
		ctx.minSignificand = big.NewInt(0)
	}

	log2Base := math.Log2(float64(base))
	margin := int(float64(bitLen)/log2Base) - (doubleMantissaBits + 1)
	if margin < 0 {
		margin = 0
	}
	ctx.maxExponentDiff = margin

	return ctx, nil
}

// MaxEncoded returns the largest ring value this context treats as a
// valid non-negative encoded significand.
func (ctx *Context) MaxEncoded() *big.Int { return new(big.Int).Set(ctx.maxEncoded) }

// MinEncoded returns the smallest ring value this context treats as a
// valid negative-band encoded significand (signed contexts only;
// 0 for unsigned contexts, which admit no such band).
func (ctx *Context) MinEncoded() *big.Int { return new(big.Int).Set(ctx.minEncoded) }

// MaxSignificand returns the largest integer significand this context
// can encode.
func (ctx *Context) MaxSignificand() *big.Int { return new(big.Int).Set(ctx.maxSignificand) }

// MinSignificand returns the smallest (most negative) integer
// significand this context can encode.
func (ctx *Context) MinSignificand() *big.Int { return new(big.Int).Set(ctx.minSignificand) }

// MaxExponentDiff returns the derived exponent-gap safety margin.
func (ctx *Context) MaxExponentDiff() int { return ctx.maxExponentDiff }

// Equal reports whether ctx and other share the same public key,
// signedness, precision, and base.
func (ctx *Context) Equal(other *Context) bool {
	if ctx == nil || other == nil {
		return ctx == other
	}
	return ctx.PublicKey.Equal(other.PublicKey) &&
		ctx.Signed == other.Signed &&
		ctx.Precision == other.Precision &&
		ctx.Base == other.Base
}

// exponentAlign computes the common (lower) exponent for two operands
// at exponents ea, eb, and the multiplier each side's value must be
// scaled by to reach it: exactly one of factorA, factorB is base^diff
// and the other is 1, unless ea == eb, in which case both are 1. It
// returns ErrExponentGapTooLarge if the gap exceeds the context's
// derived safety margin.
func (ctx *Context) exponentAlign(ea, eb int32) (lowExp int32, factorA, factorB *big.Int, err error) {
	diff := int64(ea) - int64(eb)
	if diff < 0 {
		diff = -diff
	}
	if diff > int64(ctx.maxExponentDiff) {
		return 0, nil, nil, ErrExponentGapTooLarge
	}

	baseBig := new(big.Int).SetUint64(ctx.Base)
	one := big.NewInt(1)

	switch {
	case ea == eb:
		return ea, one, one, nil
	case ea > eb:
		factor := new(big.Int).Exp(baseBig, big.NewInt(int64(ea)-int64(eb)), nil)
		return eb, factor, one, nil
	default:
		factor := new(big.Int).Exp(baseBig, big.NewInt(int64(eb)-int64(ea)), nil)
		return ea, one, factor, nil
	}
}

// inEncodedRange reports whether value is a legal encoded ring element
// for this context: [0, maxEncoded] for unsigned, or
// [0, maxEncoded] ∪ [minEncoded, n) for signed.
func (ctx *Context) inEncodedRange(value *big.Int) bool {
	if value.Sign() < 0 || value.Cmp(ctx.PublicKey.N) >= 0 {
		return false
	}
	if value.Cmp(ctx.maxEncoded) <= 0 {
		return true
	}
	if ctx.Signed && value.Cmp(ctx.minEncoded) >= 0 {
		return true
	}
	return false
}

// EncodeBigInt encodes an arbitrary-precision integer i with exponent
// 0. It returns ErrOutOfRange if i does not lie within
// [minSignificand, maxSignificand].
func (ctx *Context) EncodeBigInt(i *big.Int) (*Encoded, error) {
	return ctx.EncodeWithExponent(i, 0)
}

// EncodeInt64 encodes a native signed integer with exponent 0.
func (ctx *Context) EncodeInt64(i int64) (*Encoded, error) {
	return ctx.EncodeBigInt(big.NewInt(i))
}

// EncodeWithExponent encodes the rational significand*base^exponent
// directly, checking that significand lies in the context's
// significand range. Every other Encode* constructor is a thin wrapper
// around this one.
func (ctx *Context) EncodeWithExponent(significand *big.Int, exponent int32) (*Encoded, error) {
	if significand.Cmp(ctx.maxSignificand) > 0 || significand.Cmp(ctx.minSignificand) < 0 {
		return nil, ErrOutOfRange
	}

	value := new(big.Int).Mod(significand, ctx.PublicKey.N)
	if !ctx.inEncodedRange(value) {
		return nil, ErrOutOfRange
	}

	return &Encoded{
		Context:  ctx,
		Value:    value,
		Exponent: exponent,
	}, nil
}

// EncodeFloat64 encodes a float64, choosing the smallest exponent e
// (possibly negative) such that round(d * base^-e) fits the
// significand range and the double's ~53-bit mantissa budget. NaN,
// +-Inf, and (in an unsigned context) negative finite values are
// rejected with ErrEncodeUnrepresentable.
func (ctx *Context) EncodeFloat64(d float64) (*Encoded, error) {
	return ctx.encodeFloat64(d, nil)
}

// EncodeFloat64WithPrecision encodes d like EncodeFloat64, but accepts
// an explicit precision hint: a positive tolerance strictly less than
// 1 (the exponent is chosen so that base^exponent <= tolerance), or an
// explicit exponent via EncodeFloat64WithExponentHint.
func (ctx *Context) EncodeFloat64WithPrecision(d float64, tolerance float64) (*Encoded, error) {
	if tolerance <= 0 || tolerance >= 1 {
		return nil, ErrInvalidConfig
	}
	return ctx.encodeFloat64(d, &tolerance)
}

// EncodeFloat64WithExponentHint encodes d using precisely the given
// exponent, rather than searching for one.
func (ctx *Context) EncodeFloat64WithExponentHint(d float64, exponent int32) (*Encoded, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, ErrEncodeUnrepresentable
	}
	if !ctx.Signed && d < 0 {
		return nil, ErrEncodeUnrepresentable
	}

	significand := significandAtExponent(d, exponent, ctx.Base)
	return ctx.EncodeWithExponent(significand, exponent)
}

func (ctx *Context) encodeFloat64(d float64, tolerance *float64) (*Encoded, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, ErrEncodeUnrepresentable
	}
	if !ctx.Signed && d < 0 {
		return nil, ErrEncodeUnrepresentable
	}

	exponent := minExponentFor(d, ctx.Base, ctx.maxSignificand)
	if tolerance != nil {
		// base^exponent <= tolerance  <=>  exponent <= log_base(tolerance)
		boundExp := int32(math.Floor(math.Log(*tolerance) / math.Log(float64(ctx.Base))))
		if boundExp < exponent {
			exponent = boundExp
		}
	}

	significand := significandAtExponent(d, exponent, ctx.Base)
	return ctx.EncodeWithExponent(significand, exponent)
}

// minExponentFor finds the smallest exponent such that
// round(d * base^-exponent) still fits within maxSignificand and the
// double's mantissa budget, searching upward from the exponent
// implied by d's binary exponent (or from 0, if that is lower).
func minExponentFor(d float64, base uint64, maxSignificand *big.Int) int32 {
	if d == 0 {
		return 0
	}

	_, binExp := math.Frexp(d)
	// a double has ~53 bits of mantissa; beyond that, extra digits of
	// precision are noise, so start the search there.
	startExp := int32(math.Floor(float64(binExp-doubleMantissaBits) / math.Log2(float64(base))))
	if startExp > 0 {
		startExp = 0
	}

	maxF := new(big.Float).SetInt(maxSignificand)
	for exp := startExp; ; exp++ {
		sig := significandAtExponent(d, exp, base)
		sigF := new(big.Float).SetInt(new(big.Int).Abs(sig))
		if sigF.Cmp(maxF) <= 0 {
			return exp
		}
	}
}

// significandAtExponent returns round(d * base^-exponent) as a big.Int.
func significandAtExponent(d float64, exponent int32, base uint64) *big.Int {
	scale := math.Pow(float64(base), float64(-exponent))
	scaled := new(big.Float).Mul(big.NewFloat(d), big.NewFloat(scale))
	rounded, _ := scaled.Int(nil)
	// big.Float.Int truncates; correct to round-half-away-from-zero.
	frac := new(big.Float).Sub(scaled, new(big.Float).SetInt(rounded))
	half := big.NewFloat(0.5)
	if frac.Cmp(half) >= 0 {
		rounded.Add(rounded, big.NewInt(1))
	} else if negHalf := new(big.Float).Neg(half); frac.Cmp(negHalf) <= 0 {
		rounded.Sub(rounded, big.NewInt(1))
	}
	return rounded
}
