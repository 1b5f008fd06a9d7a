/*
 * apsieve - Results file: append-only solutions with a running checksum.
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
	"bytes"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"sync"
)

// ResultsFile accumulates discovered arithmetic progressions, one
// per line as "<k> <d> <first_term>", and keeps a running FNV-1a
// checksum of every line appended so far. The checksum is held in
// memory only (see Checksum); no checksum line is written to the file.
//
// hash/fnv is used directly from the standard library rather than a
// third-party hashing package: it is a two-line accumulator call with
// no parameters worth a dependency, and none of the retrieved example
// repos import a hashing library for anything heavier. See DESIGN.md.
type ResultsFile struct {
	mu       sync.Mutex
	f        *os.File
	checksum uint64
}

// OpenResultsFile opens (creating if necessary) the results file at
// path for appending and recomputes its checksum by replaying any
// existing solution lines.
func OpenResultsFile(path string) (*ResultsFile, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("report: open results file: %w", err)
	}
	r := &ResultsFile{f: f}
	if err := r.replay(); err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

func (r *ResultsFile) replay() error {
	info, err := r.f.Stat()
	if err != nil {
		return fmt.Errorf("report: stat results file: %w", err)
	}
	buf := make([]byte, info.Size())
	if _, err := r.f.ReadAt(buf, 0); err != nil && info.Size() > 0 {
		return fmt.Errorf("report: read results file: %w", err)
	}
	// Replay each line through the same chaining Append applies.
	checksum := fnv.New64a().Sum64()
	for len(buf) > 0 {
		end := len(buf)
		if i := bytes.IndexByte(buf, '\n'); i >= 0 {
			end = i + 1
		}
		h := fnv.New64a()
		h.Write(uint64ToChecksumSeed(checksum))
		h.Write(buf[:end])
		checksum = h.Sum64()
		buf = buf[end:]
	}
	r.checksum = checksum
	return nil
}

// Append writes one "<k> <d> <first_term>" line and folds it into the
// in-memory checksum.
func (r *ResultsFile) Append(k uint32, length int, firstTerm uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := fmt.Sprintf("%d %d %d\n", length, k, firstTerm)

	h := fnv.New64a()
	h.Write(uint64ToChecksumSeed(r.checksum))
	h.Write([]byte(line))
	r.checksum = h.Sum64()

	if _, err := r.f.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("report: seek results file: %w", err)
	}
	if _, err := r.f.WriteString(line); err != nil {
		return fmt.Errorf("report: write results file: %w", err)
	}
	if err := r.f.Sync(); err != nil {
		return fmt.Errorf("report: sync results file: %w", err)
	}
	return nil
}

// Checksum returns the current 16-hex-digit checksum as a string.
func (r *ResultsFile) Checksum() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fmt.Sprintf("%016x", r.checksum)
}

// Close releases the underlying file handle.
func (r *ResultsFile) Close() error {
	return r.f.Close()
}

func uint64ToChecksumSeed(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return b
}
