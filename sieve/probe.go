/*
 * apsieve - Extension probe.
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

// Prober wraps a Primality check and a solution sink, and grows a
// sieve survivor into a full arithmetic progression.
type Prober struct {
	primality Primality
	sink      *solutionSink
}

func newProber(p Primality, sink *solutionSink) *Prober {
	return &Prober{primality: p, sink: sink}
}

// Extend grows the AP anchored at a sieve-surviving n: the sieve has
// already guaranteed positions 0..probeWindow-1 are free of small
// prime factors, so the probe starts at the midpoint (n + 5*STEP) and
// grows outward, minimizing wasted primality tests when a run is
// short.
func (p *Prober) Extend(n uint64, K uint32, step uint64) {
	k := 0
	m := n + 5*step
	for p.primality.IsPrime(m) {
		k++
		m += step
	}

	firstTerm := n + 5*step
	if k >= 10 {
		m = n + 4*step
		for p.primality.IsPrime(m) {
			k++
			firstTerm = m
			if m < step {
				// Underflow guard: subtracting step would wrap past
				// zero. The reference engine instead relies on
				// "m -= STEP; if m > mstart: break", which is
				// correct but depends on unsigned wraparound;
				// checking before the subtract avoids that.
				break
			}
			m -= step
		}
	}

	if k >= 10 {
		p.sink.report(k, K, firstTerm)
	}
}
