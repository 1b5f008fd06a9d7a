/*
 * apsieve - Split-multiply arithmetic tests.
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
	"math/big"
	"testing"
)

func TestMulModMatchesBigInt(t *testing.T) {
	cases := []struct{ a, b, m uint64 }{
		{12345, 67890, M},
		{M - 1, M - 1, M},
		{0, 12345, M},
		{1, 1, M},
		{splitDivisor, 999999999, M},
	}
	for _, c := range cases {
		got := mulMod(c.a, c.b, c.m)
		want := new(big.Int).Mod(
			new(big.Int).Mul(big.NewInt(0).SetUint64(c.a), big.NewInt(0).SetUint64(c.b)),
			big.NewInt(0).SetUint64(c.m),
		).Uint64()
		if got != want {
			t.Errorf("mulMod(%d, %d, %d) = %d, want %d", c.a, c.b, c.m, got, want)
		}
	}
}

func TestScaledStepMatchesDirectProduct(t *testing.T) {
	c := uint64(81173389)
	for _, k := range []uint32{0, 1, 17835, 17836, 1_000_000} {
		got := scaledStep(c, k)
		want := new(big.Int).Mod(
			new(big.Int).Mul(big.NewInt(0).SetUint64(c), big.NewInt(int64(k))),
			big.NewInt(0).SetUint64(M),
		).Uint64()
		if got != want {
			t.Errorf("scaledStep(%d, %d) = %d, want %d", c, k, got, want)
		}
	}
}

func TestAddModWraps(t *testing.T) {
	if got := addMod(M-1, 2, M); got != 1 {
		t.Errorf("addMod(M-1, 2, M) = %d, want 1", got)
	}
	if got := addMod(0, 0, M); got != 0 {
		t.Errorf("addMod(0, 0, M) = %d, want 0", got)
	}
}
