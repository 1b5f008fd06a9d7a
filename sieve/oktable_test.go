/*
 * apsieve - OK table tests.
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

import "testing"

func TestOKTableForbiddenCount(t *testing.T) {
	st := NewStepTable(1)
	for _, p := range PSmall {
		ok := NewOKTable(p, st.Step)
		want := int(p)
		if want > probeWindow {
			want = probeWindow
		}
		if got := ok.ForbiddenCount(); got != want {
			t.Errorf("prime %d: forbidden count = %d, want %d", p, got, want)
		}
	}
}

func TestOKTableMarksExpectedResidues(t *testing.T) {
	st := NewStepTable(3)
	p := uint32(61)
	ok := NewOKTable(p, st.Step)
	s := st.Step % uint64(p)

	for j := uint64(0); j < probeWindow; j++ {
		r := (p64(p) - (j*s)%p64(p)) % p64(p)
		if ok.Get(r) {
			t.Errorf("residue %d (j=%d) should be forbidden for prime %d", r, j, p)
		}
	}
}

func TestOKTableGetWrapsModulo(t *testing.T) {
	st := NewStepTable(1)
	p := uint32(61)
	ok := NewOKTable(p, st.Step)
	for r := uint64(0); r < 3; r++ {
		if ok.Get(r) != ok.Get(r+uint64(p)) {
			t.Errorf("Get should be periodic mod p=%d at r=%d", p, r)
		}
	}
}

func TestBuildOKTablesCoversAllPrimes(t *testing.T) {
	st := NewStepTable(2)
	tables := BuildOKTables(PSmall[:], st.Step)
	if len(tables) != len(PSmall) {
		t.Fatalf("got %d tables, want %d", len(tables), len(PSmall))
	}
	for _, p := range PSmall {
		if _, ok := tables[p]; !ok {
			t.Errorf("missing OK table for prime %d", p)
		}
	}
}
