/*
 * apsieve - Reporter implementations.
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

// Package report implements the on-disk side of a search run: a
// results file that accumulates every discovered arithmetic
// progression while keeping a running checksum of it, and a
// double-buffered state file a run can resume from after a restart.
// Neither format has a counterpart inside the sieve package itself;
// sieve only knows about the sieve.Reporter interface it is handed.
package report

import (
	"log/slog"
)

// FileReporter implements sieve.Reporter by appending solutions to a
// ResultsFile and forwarding progress fractions to a logger, the way
// the reference engine prints a percentage to its console.
type FileReporter struct {
	results *ResultsFile
	log     *slog.Logger
}

// NewFileReporter wraps an already-open ResultsFile. log may be nil, in
// which case progress updates are discarded.
func NewFileReporter(results *ResultsFile, log *slog.Logger) *FileReporter {
	return &FileReporter{results: results, log: log}
}

func (f *FileReporter) ReportSolution(k int, commonDiffK uint32, firstTerm uint64) {
	if err := f.results.Append(commonDiffK, k, firstTerm); err != nil && f.log != nil {
		f.log.Error("failed to record solution", "error", err, "k", commonDiffK, "length", k)
		return
	}
	if f.log != nil {
		f.log.Info("found arithmetic progression", "length", k, "k", commonDiffK, "first_term", firstTerm)
	}
}

func (f *FileReporter) Progress(fraction float64) {
	if f.log == nil {
		return
	}
	f.log.Info("progress", "fraction", fraction)
}
