/*
 * apsieve - OKOK 64-wide shift masks.
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

// OKOKTable folds 64 consecutive shift positions of a base residue
// into a single 64-bit mask: bit j of OKOK[p][r] is
// OK[p][(r + (j+SHIFT)*M) mod p].
type OKOKTable struct {
	p     uint32
	shift uint32
	words []uint64
}

// NewOKOKTable builds OKOK[p] for a given OK table and SHIFT.
func NewOKOKTable(ok OKTable, shift uint32) OKOKTable {
	p := ok.Prime()
	t := OKOKTable{p: p, shift: shift, words: make([]uint64, p)}
	mModP := M % p64(p)
	for r := uint64(0); r < p64(p); r++ {
		var word uint64
		for j := uint64(0); j < shiftWindowSize; j++ {
			idx := (r + (j+uint64(shift))*mModP) % p64(p)
			if ok.table[idx] {
				word |= 1 << j
			}
		}
		t.words[r] = word
	}
	return t
}

// Prime returns the prime this mask table was built for.
func (t OKOKTable) Prime() uint32 { return t.p }

// Lookup returns the 64-bit survivor mask for base residue r mod p.
func (t OKOKTable) Lookup(r uint64) uint64 {
	return t.words[r%p64(t.p)]
}

// BuildOKOKTables builds one OKOKTable per entry of okTables, keyed the
// same way, for the given SHIFT.
func BuildOKOKTables(okTables map[uint32]OKTable, primes []uint32, shift uint32) map[uint32]OKOKTable {
	tables := make(map[uint32]OKOKTable, len(primes))
	for _, p := range primes {
		tables[p] = NewOKOKTable(okTables[p], shift)
	}
	return tables
}
