/*
 * apsieve - Solution sink.
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

import "sync"

// Reporter is the external collaborator the sieve reports solutions
// and progress estimates to. solutionSink serializes every call
// through its own mutex, so a Reporter does not need to be safe for
// concurrent use by itself.
type Reporter interface {
	ReportSolution(k int, K uint32, firstTerm uint64)
	Progress(fraction float64)
}

// solutionSink wraps a Reporter with a mutex serializing every report
// and progress call, and keeps the running AP counter alongside it.
type solutionSink struct {
	mu        sync.Mutex
	reporter  Reporter
	totalAPs  uint64
}

func newSolutionSink(r Reporter) *solutionSink {
	return &solutionSink{reporter: r}
}

func (s *solutionSink) report(k int, K uint32, firstTerm uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reporter.ReportSolution(k, K, firstTerm)
	s.totalAPs++
}

func (s *solutionSink) progress(fraction float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reporter.Progress(fraction)
}

func (s *solutionSink) count() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalAPs
}

// NullReporter discards every solution and progress update; useful in
// tests that only care about the sieve's internal determinism.
type NullReporter struct{}

func (NullReporter) ReportSolution(int, uint32, uint64) {}
func (NullReporter) Progress(float64)                   {}

// CollectingReporter records every solution in-memory, guarded by its
// own mutex so it is safe to pass directly as a Reporter too.
type CollectingReporter struct {
	mu        sync.Mutex
	Solutions []Solution
	Fractions []float64
}

// Solution is one reported (k, K, first_term) tuple.
type Solution struct {
	K         uint32
	Length    int
	FirstTerm uint64
}

func (c *CollectingReporter) ReportSolution(k int, K uint32, firstTerm uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Solutions = append(c.Solutions, Solution{K: K, Length: k, FirstTerm: firstTerm})
}

func (c *CollectingReporter) Progress(fraction float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Fractions = append(c.Fractions, fraction)
}
