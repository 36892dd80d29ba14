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

package sample

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/salsa20"
)

// UniformDet samples values from [0, max) deterministically, deriving
// its output from a salsa20 keystream keyed by a caller-supplied key
// instead of crypto/rand. Two UniformDet samplers built from the same
// max and key always produce the same sequence of values; this is the
// mechanism deterministic tests use in place of true randomness.
type UniformDet struct {
	key     *[32]byte
	max     *big.Int
	maxBits int
	counter uint64
}

// NewUniformDet returns an instance of the UniformDet sampler bounded
// by max and keyed by key.
func NewUniformDet(max *big.Int, key *[32]byte) *UniformDet {
	maxBits := new(big.Int).Sub(max, big.NewInt(1)).BitLen()
	return &UniformDet{
		key:     key,
		max:     max,
		maxBits: maxBits,
	}
}

// Sample deterministically returns the next value in [0, max). It
// satisfies the Sampler interface so tests can substitute UniformDet
// anywhere production code expects a Sampler.
func (u *UniformDet) Sample() (*big.Int, error) {
	maxBytes := (u.maxBits / 8) + 1
	over := uint(8 - (u.maxBits % 8))
	if over == 8 {
		maxBytes -= 1
		over = 0
	}

	in := make([]byte, maxBytes)
	out := make([]byte, maxBytes)
	nonce := make([]byte, 8)

	// draws of maxBits bits can reach up to 2^maxBits - 1, so redraw
	// (with the next counter value) until one falls below max.
	for {
		binary.BigEndian.PutUint64(nonce, u.counter)
		u.counter++

		salsa20.XORKeyStream(out, in, nonce, u.key)
		out[0] = out[0] >> over

		ret := new(big.Int).SetBytes(out)
		if ret.Cmp(u.max) < 0 {
			return ret, nil
		}
	}
}
