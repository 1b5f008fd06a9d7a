/*
 * apsieve - Reporter tests.
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

package report

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileReporterReportSolutionAppendsLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	rf, err := OpenResultsFile(path)
	if err != nil {
		t.Fatalf("OpenResultsFile returned error: %v", err)
	}
	defer rf.Close()

	fr := NewFileReporter(rf, nil)
	fr.ReportSolution(26, 528323403, 3486107472997423)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	want := "26 528323403 3486107472997423\n"
	if string(data) != want {
		t.Errorf("results file contents = %q, want %q", string(data), want)
	}
}

func TestFileReporterProgressNoPanicWithNilLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	rf, err := OpenResultsFile(path)
	if err != nil {
		t.Fatalf("OpenResultsFile returned error: %v", err)
	}
	defer rf.Close()

	fr := NewFileReporter(rf, nil)
	fr.Progress(0.5)
}
