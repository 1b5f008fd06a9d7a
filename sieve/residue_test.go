/*
 * apsieve - Incremental residue vector tests.
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

// TestResidueVectorMatchesScalarModulo advances a residueVector
// alongside a plain n59 accumulator and checks every lane matches a
// fresh n59 % p at each step, including across several M-wraps.
func TestResidueVectorMatchesScalarModulo(t *testing.T) {
	st := NewStepTable(11)

	var lanes [residueLanes]uint32
	copy(lanes[:], PSmall[:residueLanes])

	n59 := uint64(12345)
	rv := newResidueVector(lanes, n59, st.S59)

	for step := 0; step < 500; step++ {
		for i, p := range lanes {
			want := n59 % uint64(p)
			if got := rv.get(i); got != want {
				t.Fatalf("step %d lane %d (p=%d): got %d, want %d", step, i, p, got, want)
			}
		}
		n59 += st.S59
		wrapped := n59 >= M
		if wrapped {
			n59 -= M
		}
		rv.advance(wrapped)
	}
}
