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

// Package internal holds sentinel errors shared by the paillier and
// encoding packages.
package internal

import "errors"

// ErrKeyMismatch is returned when decrypting a ciphertext under a
// private key whose public key differs from the ciphertext's context.
var ErrKeyMismatch = errors.New("private key does not match ciphertext's public key")

// ErrContextMismatch is returned when an arithmetic operation is given
// operands bound to encoding contexts that are not Equal.
var ErrContextMismatch = errors.New("operands belong to different encoding contexts")
