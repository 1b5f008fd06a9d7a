/*
 * apsieve - Worker pool and scheduler.
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
	"sync"
	"time"
)

// cursor is the shared work-stealing index over the n43 seed table,
// guarded by its own mutex so every worker goroutine claims a disjoint
// slice of seeds.
type cursor struct {
	mu    sync.Mutex
	next  int
	total int
}

func newCursor(total int) *cursor {
	return &cursor{total: total}
}

// claim hands out the next contiguous slice of up to size indices, or
// ok=false once the table is exhausted.
func (c *cursor) claim(size int) (start, stop int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.next >= c.total {
		return 0, 0, false
	}
	start = c.next
	stop = start + size
	if stop > c.total {
		stop = c.total
	}
	c.next = stop
	return start, stop, true
}

// progress returns the index of the next unclaimed seed.
func (c *cursor) progress() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.next
}

// runWindow spawns threads workers to sweep seeds[0:len(seeds)) through
// t, each claiming threadRange indices at a time from a shared cursor.
// Worker 0 additionally emits a progress estimate at most once every
// progressInterval. Workers block in pause.wait between claims while
// paused, and every worker returns promptly if ctx is cancelled even
// mid-pause.
func runWindow(ctx context.Context, t *tables, seeds []uint64, probe *Prober, sink *solutionSink, pause *pauser,
	threads, threadRange int, progressInterval time.Duration, progressBase, progressScale float64,
) {
	cur := newCursor(len(seeds))
	var wg sync.WaitGroup
	wg.Add(threads)
	for id := 0; id < threads; id++ {
		go func(id int) {
			defer wg.Done()
			var lastReport time.Time
			for {
				if err := pause.wait(ctx); err != nil {
					return
				}
				start, stop, ok := cur.claim(threadRange)
				if !ok {
					return
				}
				if id == 0 && progressInterval > 0 {
					now := time.Now()
					if lastReport.IsZero() || now.Sub(lastReport) >= progressInterval {
						frac := progressBase + progressScale*float64(start)
						sink.progress(frac)
						lastReport = now
					}
				}
				runSlice(t, seeds, start, stop, probe)
			}
		}(id)
	}
	wg.Wait()
}
