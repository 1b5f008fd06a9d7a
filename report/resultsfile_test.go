/*
 * apsieve - Results file tests.
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
	"strings"
	"testing"
)

func TestResultsFileAppendAndChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	rf, err := OpenResultsFile(path)
	if err != nil {
		t.Fatalf("OpenResultsFile returned error: %v", err)
	}

	if err := rf.Append(528323403, 26, 3486107472997423); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	first := rf.Checksum()
	if len(first) != 16 {
		t.Errorf("checksum length = %d, want 16", len(first))
	}

	if err := rf.Append(7, 20, 1000); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	second := rf.Checksum()
	if second == first {
		t.Error("checksum should change after a second append")
	}
	if err := rf.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "26 528323403 3486107472997423" {
		t.Errorf("line 1 = %q", lines[0])
	}
}

func TestOpenResultsFileResumesChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	rf, err := OpenResultsFile(path)
	if err != nil {
		t.Fatalf("OpenResultsFile returned error: %v", err)
	}
	if err := rf.Append(1, 20, 2); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	want := rf.Checksum()
	if err := rf.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	rf2, err := OpenResultsFile(path)
	if err != nil {
		t.Fatalf("second OpenResultsFile returned error: %v", err)
	}
	defer rf2.Close()
	if got := rf2.Checksum(); got != want {
		t.Errorf("resumed checksum = %s, want %s", got, want)
	}
}
