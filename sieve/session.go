/*
 * apsieve - Search session: owns per-run state and the outer SHIFT loop.
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

import (
	"context"
	"fmt"
	"time"
)

// Options configures a Session. KMin and KMax bound the inclusive range
// of multipliers to search; StartShift is the first SHIFT value of the
// shiftWindowCount*shiftWindowSize sweep a single Run performs.
// Threads defaults to 1 when left zero; ProgressInterval defaults to 5
// seconds when left zero, matching the reference engine's cadence.
type Options struct {
	KMin, KMax      uint32
	StartShift      uint32
	Threads         int
	ThreadRange     int
	ProgressInterval time.Duration
	Primality       Primality
	Reporter        Reporter

	// maxSeeds caps the number of n43 seeds Run sweeps per K, for tests
	// that need the real multi-window, multi-thread Run path without
	// the cost of the full numN43-seed table. Zero means no cap.
	maxSeeds int
}

// Session owns every piece of mutable state one search run needs: the
// solution sink, the primality oracle, and the tuning knobs pulled out
// of Options. A Session is built once per process invocation; Run
// sweeps the K range fixed in Options, and calling it again repeats
// that sweep while TotalAPs keeps counting across calls. This
// gathers what the reference engine keeps as process-global state into
// a single owned value instead of package-level globals.
type Session struct {
	opts      Options
	primality Primality
	sink      *solutionSink
	pause     *pauser
}

// NewSession validates opts and returns a ready-to-run Session. It
// returns an error rather than panicking so a caller (the CLI, the
// interactive console) can report a bad configuration and keep running
// instead of aborting the whole process.
func NewSession(opts Options) (*Session, error) {
	if opts.KMax < opts.KMin {
		return nil, fmt.Errorf("sieve: kmax %d is less than kmin %d", opts.KMax, opts.KMin)
	}
	if opts.Threads <= 0 {
		opts.Threads = 1
	}
	if opts.ThreadRange <= 0 {
		opts.ThreadRange = numN43 / opts.Threads
		if opts.ThreadRange == 0 {
			opts.ThreadRange = 1
		}
	}
	if opts.ProgressInterval == 0 {
		opts.ProgressInterval = 5 * time.Second
	}
	if opts.Primality == nil {
		opts.Primality = NewDefaultPrimality()
	}
	if opts.Reporter == nil {
		opts.Reporter = NullReporter{}
	}

	return &Session{
		opts:      opts,
		primality: opts.Primality,
		sink:      newSolutionSink(opts.Reporter),
		pause:     newPauser(),
	}, nil
}

// TotalAPs returns the number of arithmetic progressions reported so
// far across every Run call this Session has made.
func (s *Session) TotalAPs() uint64 {
	return s.sink.count()
}

// Pause suspends worker goroutines between claimed slices of the
// current window. A paused Run does not abandon its in-flight tables
// or seed position; Resume picks up exactly where the workers left
// off.
func (s *Session) Pause() {
	s.pause.Pause()
}

// Resume releases any workers blocked in Pause.
func (s *Session) Resume() {
	s.pause.Resume()
}

// Paused reports whether the session's workers are currently suspended.
func (s *Session) Paused() bool {
	return s.pause.isPaused()
}

// Run sweeps every K in [KMin, KMax] across shiftWindowCount windows of
// shiftWindowSize SHIFT values starting at StartShift, rebuilding the
// OK/OKOK tables once per (K, window) pair. Any K that fails WillSearch
// is skipped entirely: no step table, no seeds, no workers. It returns
// early with ctx.Err() if ctx is cancelled between windows: a window in
// flight runs to completion, but no new window starts.
func (s *Session) Run(ctx context.Context) error {
	probe := newProber(s.primality, s.sink)

	for k := s.opts.KMin; k <= s.opts.KMax; k++ {
		if !WillSearch(k) {
			continue
		}

		st := NewStepTable(k)
		seeds := BuildSeeds(st)
		if s.opts.maxSeeds > 0 && s.opts.maxSeeds < len(seeds) {
			seeds = seeds[:s.opts.maxSeeds]
		}

		for w := 0; w < shiftWindowCount; w++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			shift := s.opts.StartShift + uint32(w*shiftWindowSize)
			t := buildTables(st, shift)

			base := float64(k-s.opts.KMin) / float64(s.opts.KMax-s.opts.KMin+1)
			scale := 1.0 / float64(s.opts.KMax-s.opts.KMin+1) / float64(shiftWindowCount) / float64(len(seeds))
			windowBase := base + float64(w)/float64(shiftWindowCount)/float64(s.opts.KMax-s.opts.KMin+1)

			runWindow(ctx, t, seeds, probe, s.sink, s.pause, s.opts.Threads, s.opts.ThreadRange,
				s.opts.ProgressInterval, windowBase, scale)
		}
	}

	s.sink.progress(1.0)
	return nil
}
