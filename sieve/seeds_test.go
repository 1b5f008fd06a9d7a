/*
 * apsieve - Seed table tests.
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

func TestBuildSeedsCount(t *testing.T) {
	for _, k := range []uint32{1, 2, 17, 1000} {
		st := NewStepTable(k)
		seeds := BuildSeeds(st)
		if len(seeds) != numN43 {
			t.Errorf("K=%d: got %d seeds, want %d", k, len(seeds), numN43)
		}
	}
}

func TestBuildSeedsInRange(t *testing.T) {
	st := NewStepTable(42)
	for _, s := range BuildSeeds(st) {
		if s >= M {
			t.Fatalf("seed %d is not less than M=%d", s, M)
		}
	}
}

func TestBuildSeedsDeterministic(t *testing.T) {
	st := NewStepTable(9)
	a := BuildSeeds(st)
	b := BuildSeeds(st)
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seed %d differs: %d vs %d", i, a[i], b[i])
		}
	}
}
