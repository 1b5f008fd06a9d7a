/*
 * apsieve - Sieve constants and residue tables.
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

// Package sieve implements the AP26-style residue sieve: given a search
// multiplier K, it enumerates candidate first terms n and hands every
// survivor of a multi-level residue filter to a pluggable primality
// probe, extending surviving arithmetic progressions and reporting
// those of 10 or more terms.
package sieve

// M is 23#, the primorial 2*3*5*7*11*13*17*19*23.
const M uint64 = 223092870

// Prim23 is 2*M; every AP reported here has common difference K*Prim23.
const Prim23 uint64 = 2 * M

// The four nested-loop level primes. Their loop trip counts (Prime5-24
// etc.) are the number of residues mod p that survive removing the 24
// forbidden residues a 24-term probe window would otherwise hit.
const (
	Prime5 = 43
	Prime6 = 47
	Prime7 = 53
	Prime8 = 59
)

// MinAPLength is the progression length the probe window is sized
// around. Prober.Extend reports every run of 10 or more terms, so runs
// shorter than MinAPLength also reach the Reporter.
const MinAPLength = 20

// probeWindow is the number of consecutive first-term candidates (j =
// 0..probeWindow-1) whose divisibility by a prime p disqualifies a
// residue of n mod p. It leaves margin on both sides of MinAPLength so
// the extension probe (see probe.go) can grow an AP in either
// direction from a sieve-verified midpoint.
const probeWindow = 24

// numN43 is the fixed size of the outer seed table (see seeds.go).
const numN43 = 10840

// shiftWindowSize is the number of consecutive shift positions folded
// into one OKOK word, and the size of one SHIFT sweep increment.
const shiftWindowSize = 64

// shiftWindowCount is the number of shiftWindowSize windows swept per
// invocation of Session.Run, covering startSHIFT..startSHIFT+640.
const shiftWindowCount = 10

// PSmall is the ordered set of sieve primes folded into 64-wide OKOK
// bitmasks and tested 16-incremental / 11-scalar / 15-scalar per the
// three-stage AND-reduction in the inner loop (see kernel.go).
var PSmall = [...]uint32{
	61, 67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137,
	139, 149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211,
	223, 227, 229, 233, 239, 241, 251, 257, 263, 269, 271, 277,
}

// PPost is the ordered set of primes checked scalar, per surviving
// candidate, after the OKOK mask has already rejected almost
// everything. It includes the primes dividing M itself (7, 11, 13, 17,
// 19, 23 -- 2, 3 and 5 are excluded by construction of the seed table,
// see seeds.go) as well as the primes from 281 to 541.
var PPost = buildPPost()

func buildPPost() []uint32 {
	post := []uint32{7, 11, 13, 17, 19, 23}
	for p := uint32(281); p <= 541; p++ {
		if isPrimeSmall(p) {
			post = append(post, p)
		}
	}
	return post
}

// isPrimeSmall is a trial-division primality test used only to build
// the compile-time-sized PPost table; it is never called from the hot
// path.
func isPrimeSmall(n uint32) bool {
	if n < 2 {
		return false
	}
	for d := uint32(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// allSievePrimes returns every prime for which an OK table must be
// built: PSmall followed by PPost.
func allSievePrimes() []uint32 {
	all := make([]uint32, 0, len(PSmall)+len(PPost))
	all = append(all, PSmall[:]...)
	all = append(all, PPost...)
	return all
}

// WillSearch reports whether K is eligible to be searched: K must not
// be a multiple of any prime in PSmall union PPost. A K that fails
// this precondition would make every outer-loop seed land on a
// residue already known to be composite, so Run skips it without
// building any tables or spawning any workers.
func WillSearch(k uint32) bool {
	for _, p := range allSievePrimes() {
		if k%p == 0 {
			return false
		}
	}
	return true
}
