/*
 * apsieve - Pluggable primality predicate.
 *
 * Copyright 2026, apsieve contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package sieve

import "math/big"

// Primality is the black-box predicate kept external to the sieve
// core: the engine only needs *an* answer to "is n prime", not the
// Miller-Rabin/Montgomery machinery behind it.
type Primality interface {
	IsPrime(n uint64) bool
}

// DefaultPrimality is a base-2-and-beyond probabilistic primality
// check built on math/big's ProbablyPrime, which is itself the
// standard library's black-box primality oracle -- there is no
// third-party library that provides a faster one, and reimplementing
// Miller-Rabin by hand here would duplicate exactly the machinery this
// interface exists to keep pluggable. See DESIGN.md for this
// stdlib-usage justification.
type DefaultPrimality struct {
	// Rounds is the number of pseudorandom-base Miller-Rabin rounds
	// math/big's ProbablyPrime runs in addition to its Baillie-PSW
	// test; zero runs Baillie-PSW alone, and a negative value makes
	// ProbablyPrime panic. This engine defaults
	// to a small number of extra rounds since a sieve survivor is
	// already astronomically more likely to be prime than a random
	// 64-bit integer, but a false positive would still waste the
	// whole extension probe on a composite.
	Rounds int
}

// NewDefaultPrimality returns a DefaultPrimality with a sensible round
// count for 64-bit candidates.
func NewDefaultPrimality() *DefaultPrimality {
	return &DefaultPrimality{Rounds: 20}
}

func (d *DefaultPrimality) IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	return new(big.Int).SetUint64(n).ProbablyPrime(d.Rounds)
}
