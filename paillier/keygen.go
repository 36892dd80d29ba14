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
	"github.com/fentec-project/paillier/internal/keygen"
)

// GenerateKeyPair generates two independent probable primes of bitLen/2
// bits each, checks gcd(n, (p-1)(q-1)) = 1, and returns the resulting
// public/private key pair. bitLen must be a positive
// multiple of 8, at least 8. It returns ErrKeyGenFailure if the retry
// budget of the underlying prime search is exhausted.
func GenerateKeyPair(bitLen int) (*PublicKey, *PrivateKey, error) {
	p, q, err := keygen.GetPrimePair(bitLen)
	if err != nil {
		return nil, nil, ErrKeyGenFailure
	}

	priv, err := PrivateKeyFromPrimes(p, q)
	if err != nil {
		return nil, nil, ErrKeyGenFailure
	}

	return priv.PublicKey, priv, nil
}
