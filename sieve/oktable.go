/*
 * apsieve - OK residue admissibility tables.
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

// OKTable maps, for a single prime p, each residue r in [0, p) to
// whether a candidate first term n with n mod p == r could still be
// part of a valid AP: false means some n+j*STEP for j in
// [0, probeWindow) is divisible by p.
type OKTable struct {
	p     uint32
	table []bool
}

// NewOKTable builds OK[p] for the given per-K step: all
// residues start admissible, then the probeWindow residues
// n ≡ -j*STEP (mod p), j = 0..probeWindow-1, are marked forbidden.
func NewOKTable(p uint32, step uint64) OKTable {
	t := OKTable{p: p, table: make([]bool, p)}
	for i := range t.table {
		t.table[i] = true
	}
	s := step % uint64(p)
	for j := uint64(0); j < probeWindow; j++ {
		forbidden := (p64(p) - (j*s)%p64(p)) % p64(p)
		t.table[forbidden] = false
	}
	return t
}

func p64(p uint32) uint64 { return uint64(p) }

// Prime returns the prime this table was built for.
func (t OKTable) Prime() uint32 { return t.p }

// Get reports whether residue r mod p is admissible.
func (t OKTable) Get(r uint64) bool {
	return t.table[r%p64(t.p)]
}

// ForbiddenCount returns the number of residues marked inadmissible,
// used by property tests. When p does not divide step it equals
// min(p, probeWindow), since the probeWindow forbidden residues can
// collide when p < probeWindow; when p divides step every j maps to
// residue 0 and the count is 1.
func (t OKTable) ForbiddenCount() int {
	n := 0
	for _, ok := range t.table {
		if !ok {
			n++
		}
	}
	return n
}

// BuildOKTables builds one OKTable per prime in primes for the given
// step, keyed by prime.
func BuildOKTables(primes []uint32, step uint64) map[uint32]OKTable {
	tables := make(map[uint32]OKTable, len(primes))
	for _, p := range primes {
		tables[p] = NewOKTable(p, step)
	}
	return tables
}
