/*
 * apsieve - Terminal progress display.
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

// Package progress renders a sieve.Reporter's fractional progress
// updates as a terminal bar on stderr, the way a long-running search
// reports advancement without a GUI.
package progress

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Bar is a progress display fed with the fractions a sieve.Reporter
// receives: its Update method takes a fraction in [0, 1] rather than a
// delta, since the
// sieve only knows its own position within the current K/SHIFT sweep,
// not an absolute unit count.
type Bar struct {
	mu          sync.Mutex
	width       int
	description string
	startTime   time.Time
	fraction    float64
}

// NewBar returns a Bar labeled description.
func NewBar(description string) *Bar {
	return &Bar{
		width:       40,
		description: description,
		startTime:   time.Now(),
	}
}

// Update sets the current fractional progress and redraws.
func (b *Bar) Update(fraction float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	b.fraction = fraction
	b.render()
}

// Finish draws the bar at 100% and moves to the next line.
func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fraction = 1
	b.render()
	fmt.Fprintln(os.Stderr)
}

func (b *Bar) render() {
	filled := int(b.fraction * float64(b.width))
	elapsed := time.Since(b.startTime)
	fmt.Fprintf(os.Stderr, "\r%s: [%s%s] %3.0f%% | %s elapsed",
		b.description,
		strings.Repeat("=", filled),
		strings.Repeat(" ", b.width-filled),
		b.fraction*100,
		elapsed.Round(time.Second))
}
