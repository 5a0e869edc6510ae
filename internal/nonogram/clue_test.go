package nonogram

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestComputeClues(t *testing.T) {
	tests := []struct {
		name string
		line []bool
		want Clue
	}{
		{"empty", []bool{false, false, false}, Clue{0}},
		{"full", []bool{true, true, true}, Clue{3}},
		{"single", []bool{false, true, false}, Clue{1}},
		{"split", []bool{true, false, true, true}, Clue{1, 2}},
		{"edges", []bool{true, false, false, true}, Clue{1, 1}},
		{"zero length", []bool{}, Clue{0}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ComputeClues(test.line)
			if !slices.Equal(got, test.want) {
				t.Errorf("ComputeClues(%v) = %v, want %v", test.line, got, test.want)
			}
		})
	}
}

func TestClueRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		line := make([]bool, 1+r.IntN(25))
		for i := range line {
			line[i] = r.Float64() < 0.5
		}
		if !LineMatchesClue(line, ComputeClues(line)) {
			t.Fatalf("line %v does not match its own clue %v", line, ComputeClues(line))
		}
	}
}

func TestLineMatchesClue(t *testing.T) {
	line := []bool{true, false, true, true}
	if !LineMatchesClue(line, Clue{1, 2}) {
		t.Error("expected exact clue to match")
	}
	if LineMatchesClue(line, Clue{1, 2, 1}) {
		t.Error("longer clue must not match")
	}
	if LineMatchesClue(line, Clue{2, 1}) {
		t.Error("reordered clue must not match")
	}
}

func TestMinSpace(t *testing.T) {
	tests := []struct {
		clue Clue
		want int
	}{
		{Clue{0}, 0},
		{Clue{3}, 3},
		{Clue{2, 2}, 5},
		{Clue{1, 1, 1}, 5},
	}
	for _, test := range tests {
		if got := test.clue.MinSpace(); got != test.want {
			t.Errorf("%v.MinSpace() = %d, want %d", test.clue, got, test.want)
		}
	}
}

func TestDeriveClues(t *testing.T) {
	// 3x3 checkerboard
	solution := []bool{
		true, false, true,
		false, true, false,
		true, false, true,
	}
	rowClues, colClues := DeriveClues(solution, 3, 3)
	want := []Clue{{1, 1}, {1}, {1, 1}}
	for i := range want {
		if !slices.Equal(rowClues[i], want[i]) {
			t.Errorf("row clue %d = %v, want %v", i, rowClues[i], want[i])
		}
		if !slices.Equal(colClues[i], want[i]) {
			t.Errorf("col clue %d = %v, want %v", i, colClues[i], want[i])
		}
	}
}

func TestCheckWin(t *testing.T) {
	solution := []bool{
		true, false, true,
		false, true, false,
		true, false, true,
	}
	rowClues, colClues := DeriveClues(solution, 3, 3)

	board := NewBoard(3, 3)
	if CheckWin(board, rowClues, colClues) {
		t.Error("empty board must not win")
	}

	for i, filled := range solution {
		if filled {
			board.Cells[i] = Filled
		}
	}
	if !CheckWin(board, rowClues, colClues) {
		t.Error("fully matching board must win")
	}

	// A board whose rows match but columns do not.
	board = NewBoard(3, 3)
	board.Cells = []CellState{
		Filled, Empty, Filled,
		Filled, Empty, Empty,
		Filled, Empty, Filled,
	}
	rc := []Clue{{1, 1}, {1}, {1, 1}}
	cc := []Clue{{3}, {0}, {1, 1}}
	if CheckWin(board, rc, []Clue{{1, 1}, {1}, {1, 1}}) {
		t.Error("column mismatch must fail the win check")
	}
	if !CheckWin(board, rc, cc) {
		t.Error("expected all-lines match to win")
	}
}
