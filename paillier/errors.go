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
	"errors"

	gopaillier "github.com/fentec-project/paillier/internal"
)

// ErrInvalidModulus is returned by PublicKeyFromModulus when n is not
// odd, not composite-sized, or has a bit length that is not a multiple
// of 8.
var ErrInvalidModulus = errors.New("modulus is not a valid Paillier public modulus")

// ErrInvalidPrimes is returned by PrivateKeyFromPrimes when p, q fail
// the arithmetic preconditions of a Paillier modulus.
var ErrInvalidPrimes = errors.New("p, q do not form a valid Paillier key pair")

// ErrKeyGenFailure is returned by GenerateKeyPair when no valid key
// pair could be produced within the retry budget.
var ErrKeyGenFailure = errors.New("key generation failed to produce a valid key pair")

// ErrKeyMismatch is returned by Decrypt when the private key's public
// key differs from the ciphertext's public key.
var ErrKeyMismatch = gopaillier.ErrKeyMismatch
