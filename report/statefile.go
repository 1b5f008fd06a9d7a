/*
 * apsieve - Double-buffered resumption state file.
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
	"bufio"
	"fmt"
	"os"
)

// State is the outer K/SHIFT resumption point a run can be restarted
// from. It never captures partial shift-window sieve state (no
// OK/OKOK tables, no worker cursor) -- only the position in the outer
// K/SHIFT sweep and the running solution counter/checksum.
type State struct {
	KMin, KMax uint32
	Shift      uint32
	K          uint32
	Checksum   string
	TotalAPs   uint64
}

// StateFile alternates writes between two files (".a.txt" and
// ".b.txt") so a crash mid-write leaves the other copy intact. prefix
// is the shared basename; the two paths are prefix+".a.txt" and
// prefix+".b.txt".
type StateFile struct {
	prefix string
	next   int // 0 or 1: which of the two files to write next
}

// NewStateFile returns a StateFile writing to prefix.a.txt / prefix.b.txt.
func NewStateFile(prefix string) *StateFile {
	return &StateFile{prefix: prefix}
}

func (s *StateFile) pathFor(slot int) string {
	if slot == 0 {
		return s.prefix + ".a.txt"
	}
	return s.prefix + ".b.txt"
}

// Save writes st to the next slot in the rotation and flips the slot
// for the following call.
func (s *StateFile) Save(st State) error {
	path := s.pathFor(s.next)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create state file %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	_, err = fmt.Fprintf(w, "KMIN %d\nKMAX %d\nSHIFT %d\nK %d\ncksum %s\ntotalaps %d\n",
		st.KMin, st.KMax, st.Shift, st.K, st.Checksum, st.TotalAPs)
	if err != nil {
		return fmt.Errorf("report: write state file %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("report: flush state file %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("report: sync state file %s: %w", path, err)
	}

	s.next = 1 - s.next
	return nil
}

// Load reads whichever of the two state files was modified more
// recently, falling back to the other if that one is missing or
// malformed.
func (s *StateFile) Load() (State, error) {
	slots := [2]int{0, 1}
	infoA, errA := os.Stat(s.pathFor(0))
	infoB, errB := os.Stat(s.pathFor(1))
	if errA == nil && errB == nil && infoB.ModTime().After(infoA.ModTime()) {
		slots = [2]int{1, 0}
	} else if errA != nil && errB == nil {
		slots = [2]int{1, 0}
	}

	var lastErr error
	for _, slot := range slots {
		st, err := loadStateFile(s.pathFor(slot))
		if err == nil {
			s.next = 1 - slot
			return st, nil
		}
		lastErr = err
	}
	return State{}, fmt.Errorf("report: no usable state file: %w", lastErr)
}

func loadStateFile(path string) (State, error) {
	f, err := os.Open(path)
	if err != nil {
		return State{}, err
	}
	defer f.Close()

	var st State
	fields := map[string]*uint32{
		"KMIN":  &st.KMin,
		"KMAX":  &st.KMax,
		"SHIFT": &st.Shift,
		"K":     &st.K,
	}

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var key, value string
		if _, err := fmt.Sscanf(sc.Text(), "%s %s", &key, &value); err != nil {
			continue
		}
		switch key {
		case "cksum":
			st.Checksum = value
		case "totalaps":
			if _, err := fmt.Sscanf(value, "%d", &st.TotalAPs); err != nil {
				return State{}, fmt.Errorf("report: parse totalaps in %s: %w", path, err)
			}
		default:
			if ptr, ok := fields[key]; ok {
				if _, err := fmt.Sscanf(value, "%d", ptr); err != nil {
					return State{}, fmt.Errorf("report: parse %s in %s: %w", key, path, err)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return State{}, fmt.Errorf("report: scan state file %s: %w", path, err)
	}
	return st, nil
}
