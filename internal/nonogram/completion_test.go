package nonogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseLine builds a player line from a compact picture: '#' filled,
// 'x' marked, '.' empty.
func parseLine(s string) []CellState {
	line := make([]CellState, len(s))
	for i, c := range s {
		switch c {
		case '#':
			line[i] = Filled
		case 'x':
			line[i] = MarkedX
		}
	}
	return line
}

func TestDecomposeRuns(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Run
	}{
		{"no runs", ".x.x.", nil},
		{"sealed by edges", "#####", []Run{{0, 5, true}}},
		{"sealed by marks", ".x##x", []Run{{2, 4, true}}},
		{"open right", "x##..", []Run{{1, 3, false}}},
		{"open left", "..##x", []Run{{2, 4, false}}},
		{"two runs", "#x.##", []Run{{0, 1, true}, {3, 5, false}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, DecomposeRuns(parseLine(test.line)))
		})
	}
}

func TestLineCompletionZeroClue(t *testing.T) {
	assert.Equal(t, []bool{true}, LineCompletion(parseLine("....."), Clue{0}))
	assert.Equal(t, []bool{true}, LineCompletion(parseLine("xx.x."), Clue{0}))
	assert.Equal(t, []bool{false}, LineCompletion(parseLine("..#.."), Clue{0}))
}

func TestLineCompletionSealedRunExact(t *testing.T) {
	// A single sealed run of the clue's length is definitively done.
	assert.Equal(t, []bool{true}, LineCompletion(parseLine(".x###x."), Clue{3}))
	assert.Equal(t, []bool{true}, LineCompletion(parseLine("###x..."), Clue{3}))
	assert.Equal(t, []bool{true}, LineCompletion(parseLine("#####"), Clue{5}))
}

func TestLineCompletionUnsealedRun(t *testing.T) {
	// An unsealed run may still grow; it cannot light its number even
	// when its current length matches.
	assert.Equal(t, []bool{false}, LineCompletion(parseLine("###...."), Clue{3}))

	// Two different later placements of the second [2] remain legal and
	// the leading run is unsealed: no completion signal at all.
	assert.Equal(t, []bool{false, false}, LineCompletion(parseLine("##...."), Clue{2, 2}))
}

func TestLineCompletionNoRuns(t *testing.T) {
	assert.Equal(t, []bool{false, false}, LineCompletion(parseLine("......"), Clue{2, 2}))
}

func TestLineCompletionOrderedAssignment(t *testing.T) {
	// "#x#" with clue [1 1]: both runs sealed, assignment forced.
	assert.Equal(t, []bool{true, true}, LineCompletion(parseLine("#x#"), Clue{1, 1}))

	// Sealed [1] completes while the unsealed trailing run stays open.
	assert.Equal(t, []bool{true, false}, LineCompletion(parseLine("x#x.#"), Clue{1, 1}))

	// The middle sealed [1] of [2 1 2] is position-bound to clue 1.
	assert.Equal(t, []bool{false, true, false},
		LineCompletion(parseLine("..x#x....."), Clue{2, 1, 2}))
}

func TestLineCompletionAmbiguousRun(t *testing.T) {
	// A sealed run of length 2 that could be either [2] of the clue
	// contributes no signal.
	assert.Equal(t, []bool{false, false},
		LineCompletion(parseLine("...x##x..."), Clue{2, 2}))

	// Two sealed [1] runs in the middle of [1 1 1]: each could be
	// clue 0/1 or 1/2, nothing is forced.
	assert.Equal(t, []bool{false, false, false},
		LineCompletion(parseLine("..x#x#x.."), Clue{1, 1, 1}))
}

func TestLineCompletionPruning(t *testing.T) {
	// Runs at both edges pin the outer clues; the middle stays open.
	got := LineCompletion(parseLine("#x...x#"), Clue{1, 1, 1})
	assert.Equal(t, []bool{true, false, true}, got)

	// A fragment run (length not matching any feasible clue) holds no
	// candidates but must not break its neighbors' assignment.
	got = LineCompletion(parseLine("#x.##..x#"), Clue{1, 3, 1})
	assert.Equal(t, []bool{true, false, true}, got)
}

func TestLineCompletionLengthMismatch(t *testing.T) {
	// A sealed run shorter than every clue number is a contradiction
	// under correct play for its slot, so nothing lights up.
	require.Equal(t, []bool{false}, LineCompletion(parseLine(".x#x."), Clue{3}))
}
