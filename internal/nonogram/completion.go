package nonogram

import "math/bits"

// Run is a maximal contiguous span of filled cells within a line.
// Start is inclusive, End exclusive. A run is sealed when both ends are
// bounded by the line boundary or a MarkedX cell, so it cannot grow
// without overwriting a confirmed-incorrect marker.
type Run struct {
	Start, End int
	Sealed     bool
}

func (r Run) Len() int { return r.End - r.Start }

// DecomposeRuns splits a line into its maximal filled runs.
func DecomposeRuns(line []CellState) []Run {
	var runs []Run
	i := 0
	for i < len(line) {
		if line[i] != Filled {
			i++
			continue
		}
		start := i
		for i < len(line) && line[i] == Filled {
			i++
		}
		sealedLeft := start == 0 || line[start-1] == MarkedX
		sealedRight := i == len(line) || line[i] == MarkedX
		runs = append(runs, Run{
			Start:  start,
			End:    i,
			Sealed: sealedLeft && sealedRight,
		})
	}
	return runs
}

// clueSet is a small bitset of clue indices a run may stand for.
type clueSet uint32

func (s clueSet) empty() bool    { return s == 0 }
func (s clueSet) count() int     { return bits.OnesCount32(uint32(s)) }
func (s clueSet) min() int       { return bits.TrailingZeros32(uint32(s)) }
func (s clueSet) max() int       { return 31 - bits.LeadingZeros32(uint32(s)) }
func (s clueSet) has(i int) bool { return s&(1<<i) != 0 }

// below returns the members strictly less than i.
func (s clueSet) below(i int) clueSet { return s & (1<<i - 1) }

// above returns the members strictly greater than i.
func (s clueSet) above(i int) clueSet { return s &^ (1<<(i+1) - 1) }

// LineCompletion determines, for each clue number of a line, whether
// that number is already definitively satisfied by a run the player has
// placed. The line holds the player's cells, not the solution; every
// Filled cell is known correct (wrong fills never reach the board), so
// the only questions are which clue a run stands for and whether its
// length is final.
//
// Each run starts with a candidate set of clue indices: those whose
// length equals the run's length and whose prefix-sum feasibility
// bounds admit the run's position. Candidate sets are then pruned
// against the left-to-right ordering of runs and clues until a fixed
// point. A clue lights up iff exactly one run holds that clue as its
// lone candidate and that run is sealed, so its length cannot change.
func LineCompletion(line []CellState, clue Clue) []bool {
	done := make([]bool, len(clue))

	// A [0] clue is satisfied by the absence of filled cells.
	if len(clue) == 1 && clue[0] == 0 {
		done[0] = true
		for _, s := range line {
			if s == Filled {
				done[0] = false
				break
			}
		}
		return done
	}

	runs := DecomposeRuns(line)
	if len(runs) == 0 {
		return done
	}

	n := len(clue)

	// minBefore[i]: cells consumed by clues 0..i-1 plus one gap each.
	// minAfter[i]: cells required after clue i for the clues behind it.
	minBefore := make([]int, n)
	minAfter := make([]int, n)
	acc := 0
	for i := range n {
		minBefore[i] = acc + i
		acc += clue[i]
	}
	acc = 0
	for i := n - 1; i >= 0; i-- {
		minAfter[i] = acc + (n - 1 - i)
		acc += clue[i]
	}

	cands := make([]clueSet, len(runs))
	for k, run := range runs {
		for i := range n {
			if run.Len() == clue[i] &&
				run.Start >= minBefore[i] &&
				len(line)-run.End >= minAfter[i] {
				cands[k] |= 1 << i
			}
		}
	}

	// Mutual pruning: a run's candidates must sit strictly after the
	// minimal candidate of the run before it and strictly before the
	// maximal candidate of the run after it. Forward and backward
	// passes repeat until nothing shrinks.
	for changed := true; changed; {
		changed = false
		prevMin := -1
		for k := range cands {
			if prevMin >= 0 {
				pruned := cands[k].above(prevMin)
				if pruned != cands[k] {
					cands[k] = pruned
					changed = true
				}
			}
			if !cands[k].empty() {
				prevMin = cands[k].min()
			}
		}
		nextMax := -1
		for k := len(cands) - 1; k >= 0; k-- {
			if nextMax >= 0 {
				pruned := cands[k].below(nextMax)
				if pruned != cands[k] {
					cands[k] = pruned
					changed = true
				}
			}
			if !cands[k].empty() {
				nextMax = cands[k].max()
			}
		}
	}

	// A clue completes only when exactly one run claims it outright.
	// Unsealed runs still take part in pruning above, but cannot light
	// their own number: their length may yet grow.
	for i := range n {
		holder := -1
		for k := range cands {
			if cands[k].count() == 1 && cands[k].has(i) {
				if holder >= 0 {
					holder = -2
					break
				}
				holder = k
			}
		}
		done[i] = holder >= 0 && runs[holder].Sealed
	}
	return done
}
