/*
 * apsieve - n43 outer seed generator.
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

// n31Range, n37Range and n41Range are p-probeWindow for p = 31, 37, 41:
// the number of residues left once the 24-wide forbidden window is
// removed.
const (
	n31Range = 31 - probeWindow
	n37Range = 37 - probeWindow
	n41Range = 41 - probeWindow
	n3Range  = 2 // residues of n mod 3 coprime to 3: {1, 2}
	n5Range  = 4 // residues of n mod 5 coprime to 5: {1, 2, 3, 4}
)

// BuildSeeds enumerates the numN43 outer residue classes: the
// Cartesian product over i3, i5 and the filtered
// (i31, i37, i41) triples. The filter mirrors the reference engine's
// bound on how far apart the three indices may drift, which keeps the
// combined residue inside a useful range without requiring a true
// safe-residue permutation for 31/37/41 the way level primes
// 43/47/53/59 get inside the kernel (see kernel.go).
func BuildSeeds(st StepTable) []uint64 {
	seeds := make([]uint64, 0, numN43)
	for i31 := 0; i31 < n31Range; i31++ {
		for i37 := 0; i37 < n37Range; i37++ {
			if i37-i31 > 10 || i31-i37 > 4 {
				continue
			}
			for i41 := 0; i41 < n41Range; i41++ {
				if i41-i31 > 14 || i41-i37 > 14 || i31-i41 > 4 || i37-i41 > 10 {
					continue
				}
				base := addMod(st.N0, mulMod(uint64(i31), st.S31, M), M)
				base = addMod(base, mulMod(uint64(i37), st.S37, M), M)
				base = addMod(base, mulMod(uint64(i41), st.S41, M), M)
				for i3 := 0; i3 < n3Range; i3++ {
					withI3 := addMod(base, mulMod(uint64(i3), st.S3, M), M)
					for i5 := 0; i5 < n5Range; i5++ {
						seeds = append(seeds, addMod(withI3, mulMod(uint64(i5), st.S5, M), M))
					}
				}
			}
		}
	}
	return seeds
}
