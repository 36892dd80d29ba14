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

// Package sample provides the Sampler interface used throughout the
// paillier and encoding packages, along with the implementations of it
// they rely on.
//
// NewUniformRange draws from crypto/rand for encryption's and
// obfuscation's blinding factors. NewUniformDet instead derives its
// output from a salsa20 keystream seeded by a caller-supplied key, so
// that tests can reproduce a specific run without sacrificing the same
// Sampler interface production code depends on.
package sample
