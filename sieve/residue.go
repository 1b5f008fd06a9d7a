/*
 * apsieve - Incremental residue updater for the first 16 small primes.
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

// residueLanes is the count of small primes maintained incrementally
// instead of recomputed with a modulo each inner step. The reference
// engine keeps these in two 8-lane SIMD registers; Go has no portable
// intrinsic for that, so this is a semantically equivalent scalar
// fallback. The residues live in one 16-wide array; kernel.go reads
// lanes 0-7 first and lanes 8-15 second, so its short-circuit grouping
// mirrors the reference engine's two-register AND-reduction.
const residueLanes = 16

// residueVector tracks (n mod p) for residueLanes primes, plus the
// per-lane step and modulus needed to advance and renormalize it.
type residueVector struct {
	primes [residueLanes]uint32
	values [residueLanes]uint32
	step   [residueLanes]uint32 // S59 mod p, per lane
	mmod   [residueLanes]uint32 // M mod p, per lane
}

// newResidueVector seeds a residueVector from a base value n mod M and
// a lane prime list (must have len == residueLanes).
func newResidueVector(primes [residueLanes]uint32, n59, s59 uint64) residueVector {
	v := residueVector{primes: primes}
	for i, p := range primes {
		v.values[i] = uint32(n59 % uint64(p))
		v.step[i] = uint32(s59 % uint64(p))
		v.mmod[i] = uint32(M % uint64(p))
	}
	return v
}

// advance adds one step of S59 to every lane, applying the M-wrap
// correction whenever the caller signals n59 has wrapped past M (the
// same sign-aware conditional-subtract the reference engine expresses
// with _mm_cmpgt_epi16 + a blend; here it's a plain branch per lane).
func (v *residueVector) advance(wrapped bool) {
	for i := range v.values {
		p := v.primes[i]
		val := v.values[i] + v.step[i]
		if wrapped {
			if val >= v.mmod[i] {
				val -= v.mmod[i]
			} else {
				val = val + p - v.mmod[i]
			}
		}
		if val >= p {
			val -= p
		}
		v.values[i] = val
	}
}

// get returns the current residue for lane i.
func (v *residueVector) get(i int) uint64 { return uint64(v.values[i]) }
