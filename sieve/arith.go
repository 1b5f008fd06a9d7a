/*
 * apsieve - 128-bit-safe modular arithmetic helpers.
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

import "math/bits"

// bitsMul64 and bitsDiv64 are thin names over math/bits so that
// mulMod's 128-bit intermediate product (two uint64 values that would
// overflow a single uint64 multiply) stays honest about what's
// happening: step-table generation must never silently overflow, and
// math/bits.Mul64/Div64 is the idiomatic stdlib way to get a full
// 128-bit product and reduce it without pulling in math/big for what
// is, per call, a single multiply-then-reduce.
func bitsMul64(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

func bitsDiv64(hi, lo, m uint64) (quo, rem uint64) {
	return bits.Div64(hi, lo, m)
}
