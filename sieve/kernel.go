/*
 * apsieve - Sieve kernel: the nested n43 -> n47 -> n53 -> n59 walk.
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

// tables bundles the read-only, per-(K,SHIFT) state every worker
// shares for the duration of one shift window. Nothing in it is
// mutated once buildTables returns, so workers need no lock to read it.
type tables struct {
	step     StepTable
	shift    uint32
	okPost   map[uint32]OKTable  // PPost: scalar n%p cascade
	okokFast map[uint32]OKOKTable // PSmall[0:16]: incremental lanes
	okokMid  map[uint32]OKOKTable // PSmall[16:27]: scalar REM
	okokSlow map[uint32]OKOKTable // PSmall[27:]: scalar REM
	fastLanes1, fastLanes2 [8]uint32
	midPrimes, slowPrimes  []uint32
}

func buildTables(st StepTable, shift uint32) *tables {
	okPost := BuildOKTables(PPost, st.Step)
	okSmall := BuildOKTables(PSmall[:], st.Step)

	t := &tables{
		step:     st,
		shift:    shift,
		okPost:   okPost,
		okokFast: BuildOKOKTables(okSmall, PSmall[:16], shift),
		okokMid:  BuildOKOKTables(okSmall, PSmall[16:27], shift),
		okokSlow: BuildOKOKTables(okSmall, PSmall[27:], shift),
		midPrimes: append([]uint32{}, PSmall[16:27]...),
		slowPrimes: append([]uint32{}, PSmall[27:]...),
	}
	copy(t.fastLanes1[:], PSmall[0:8])
	copy(t.fastLanes2[:], PSmall[8:16])
	return t
}

// kernelResult accumulates what one worker's slice of n43 indices
// produced; only a candidate counter crosses back to the caller
// (solutions go through the Prober's sink), everything else stays on
// the worker's stack.
type kernelResult struct {
	candidates uint64
}

// runSlice processes seeds[start:stop] through the four-level nested
// n43/n47/n53/n59 walk, handing every n that survives the sieve and
// the post cascade to probe to extend it into an AP.
func runSlice(t *tables, seeds []uint64, start, stop int, probe *Prober) kernelResult {
	var result kernelResult
	st := t.step

	for idx := start; idx < stop; idx++ {
		n43 := seeds[idx]
		for i43 := 0; i43 < Prime5-probeWindow; i43++ {
			n47 := n43
			for i47 := 0; i47 < Prime6-probeWindow; i47++ {
				n53 := n47
				for i53 := 0; i53 < Prime7-probeWindow; i53++ {
					n59 := n53

					var lanes [residueLanes]uint32
					copy(lanes[0:8], t.fastLanes1[:])
					copy(lanes[8:16], t.fastLanes2[:])
					rv := newResidueVector(lanes, n59, st.S59)

					for i59 := 0; i59 < Prime8-probeWindow; i59++ {
						result.candidates++

						sito := t.okokFast[t.fastLanes1[0]].Lookup(rv.get(0))
						for lane := 1; lane < 8 && sito != 0; lane++ {
							sito &= t.okokFast[t.fastLanes1[lane]].Lookup(rv.get(lane))
						}
						if sito != 0 {
							for lane := 0; lane < 8 && sito != 0; lane++ {
								sito &= t.okokFast[t.fastLanes2[lane]].Lookup(rv.get(8 + lane))
							}
						}

						if sito != 0 {
							for _, p := range t.midPrimes {
								sito &= t.okokMid[p].Lookup(n59 % p64(p))
								if sito == 0 {
									break
								}
							}
						}

						if sito != 0 {
							for _, p := range t.slowPrimes {
								sito &= t.okokSlow[p].Lookup(n59 % p64(p))
								if sito == 0 {
									break
								}
							}
						}

						for sito != 0 {
							j := 63 - bits.LeadingZeros64(sito)
							n := n59 + (uint64(j)+uint64(t.shift))*M

							if passesPostCascade(t.okPost, n) {
								probe.Extend(n, st.K, st.Step)
							}

							sito ^= uint64(1) << uint(j)
						}

						n59 += st.S59
						wrapped := n59 >= M
						if wrapped {
							n59 -= M
						}
						rv.advance(wrapped)
					}

					n53 += st.S53
					if n53 >= M {
						n53 -= M
					}
				}
				n47 += st.S47
				if n47 >= M {
					n47 -= M
				}
			}
			n43 += st.S43
			if n43 >= M {
				n43 -= M
			}
		}
	}
	return result
}

// passesPostCascade runs the scalar P_post divisibility cascade: it
// short-circuits on the first failed test. Ordering primes by
// rejection rate is left to table order (see constants.go); reordering
// it is a valid, non-semantic-changing optimization.
func passesPostCascade(okPost map[uint32]OKTable, n uint64) bool {
	for _, p := range PPost {
		if !okPost[p].Get(n % p64(p)) {
			return false
		}
	}
	return true
}
