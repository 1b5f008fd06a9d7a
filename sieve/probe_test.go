/*
 * apsieve - Extension probe tests.
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

// fakePrimality treats every multiple of step in [lowMult, highMult]
// (inclusive, relative to a fixed origin) as prime, and everything
// else as composite -- enough to exercise Extend's bidirectional walk
// without a real primality test.
type fakePrimality struct {
	origin            uint64
	step              uint64
	lowMult, highMult int64
}

func (f *fakePrimality) IsPrime(n uint64) bool {
	delta := int64(n) - int64(f.origin)
	if delta%int64(f.step) != 0 {
		return false
	}
	mult := delta / int64(f.step)
	return mult >= f.lowMult && mult <= f.highMult
}

func TestProbeExtendReportsLongRun(t *testing.T) {
	const step = 1000
	origin := uint64(1_000_000)

	// AP spans multiplier -12 .. 13 relative to origin (26 terms), and
	// Extend starts its probe at n+5*step / n+4*step where n = origin
	// + (-12)*step, i.e. the AP's first term.
	n := origin - 12*step
	fp := &fakePrimality{origin: origin, step: step, lowMult: -12, highMult: 13}

	collector := &CollectingReporter{}
	sink := newSolutionSink(collector)
	prober := newProber(fp, sink)

	prober.Extend(n, 7, step)

	if len(collector.Solutions) != 1 {
		t.Fatalf("got %d solutions, want 1", len(collector.Solutions))
	}
	sol := collector.Solutions[0]
	if sol.Length != 26 {
		t.Errorf("length = %d, want 26", sol.Length)
	}
	wantFirst := origin - 12*step
	if sol.FirstTerm != wantFirst {
		t.Errorf("first term = %d, want %d", sol.FirstTerm, wantFirst)
	}
}

func TestProbeExtendSkipsShortRun(t *testing.T) {
	const step = 1000
	origin := uint64(1_000_000)

	n := origin - 2*step
	fp := &fakePrimality{origin: origin, step: step, lowMult: -2, highMult: 3}

	collector := &CollectingReporter{}
	sink := newSolutionSink(collector)
	prober := newProber(fp, sink)

	prober.Extend(n, 7, step)

	if len(collector.Solutions) != 0 {
		t.Fatalf("got %d solutions, want 0 for a run shorter than MinAPLength", len(collector.Solutions))
	}
}

// TestProbeExtendDiscoversPublishedAP26Record feeds the real published
// AP26 record (first term 3486107472997423, K=11840885) through Extend
// with the real primality oracle, confirming the probe reports the
// same k=26, first_term the record is known by.
func TestProbeExtendDiscoversPublishedAP26Record(t *testing.T) {
	const (
		k         = 11840885
		firstTerm = 3486107472997423
	)

	st := NewStepTable(k)
	if st.Step != 5283234035979900 {
		t.Fatalf("NewStepTable(%d).Step = %d, want 5283234035979900", k, st.Step)
	}

	collector := &CollectingReporter{}
	sink := newSolutionSink(collector)
	prober := newProber(NewDefaultPrimality(), sink)

	prober.Extend(firstTerm, k, st.Step)

	if len(collector.Solutions) != 1 {
		t.Fatalf("got %d solutions, want 1", len(collector.Solutions))
	}
	sol := collector.Solutions[0]
	if sol.Length != 26 {
		t.Errorf("length = %d, want 26", sol.Length)
	}
	if sol.FirstTerm != firstTerm {
		t.Errorf("first term = %d, want %d", sol.FirstTerm, firstTerm)
	}
	if sol.K != k {
		t.Errorf("K = %d, want %d", sol.K, k)
	}
}

func TestProbeExtendHandlesUnderflow(t *testing.T) {
	// step=1 and a small n put the downward loop's first few steps
	// right at the uint64 zero boundary, exercising the underflow
	// guard instead of relying on unsigned wraparound.
	const step = 1
	fp := &fakePrimality{origin: 0, step: step, lowMult: 0, highMult: 30}

	collector := &CollectingReporter{}
	sink := newSolutionSink(collector)
	prober := newProber(fp, sink)

	prober.Extend(3, 7, step)

	if len(collector.Solutions) != 1 {
		t.Fatalf("got %d solutions, want 1", len(collector.Solutions))
	}
	sol := collector.Solutions[0]
	if sol.FirstTerm != 0 {
		t.Errorf("first term = %d, want 0", sol.FirstTerm)
	}
	if sol.Length != 31 {
		t.Errorf("length = %d, want 31", sol.Length)
	}
}
