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
	"errors"
	"math/big"
)

// Sampler is the randomness collaborator encryption and obfuscation
// require: a source of cryptographically strong *big.Int values. Both
// accept one explicitly, for their blinding factor, rather than
// reaching for a process-wide generator.
type Sampler interface {
	Sample() (*big.Int, error)
}

// ErrSamplingFailed is returned when a sampler cannot produce a value
// satisfying a caller's constraint (e.g. coprimality) within its retry
// budget.
var ErrSamplingFailed = errors.New("sampler could not produce a suitable value")
