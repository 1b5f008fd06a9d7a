/*
 * apsieve - Cooperative pause/resume gate for worker goroutines.
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
)

// pauser lets an operator (the interactive console) suspend worker
// progress between claimed slices without tearing down the worker
// goroutines or losing the in-flight window's tables. Unlike a plain
// sync.Cond, wait also unblocks on context cancellation, so a paused
// session still shuts down promptly on SIGINT/SIGTERM.
type pauser struct {
	mu     sync.Mutex
	resume chan struct{} // nil when not paused; closed by Resume
}

func newPauser() *pauser {
	return &pauser{}
}

// wait blocks while the pauser is paused, returning early with ctx's
// error if ctx is done first.
func (p *pauser) wait(ctx context.Context) error {
	for {
		p.mu.Lock()
		ch := p.resume
		p.mu.Unlock()
		if ch == nil {
			return nil
		}
		select {
		case <-ch:
			// Resumed; loop to recheck in case Pause raced back in.
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *pauser) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.resume == nil {
		p.resume = make(chan struct{})
	}
}

func (p *pauser) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.resume != nil {
		close(p.resume)
		p.resume = nil
	}
}

func (p *pauser) isPaused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resume != nil
}
