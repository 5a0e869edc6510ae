package nonogram

import "slices"

// Clue is the ordered run-length description of one solved line. A line
// with no filled cells has the single-element clue [0].
type Clue []int

// ComputeClues scans a line left to right and emits one number per
// maximal run of filled cells.
func ComputeClues(line []bool) Clue {
	clue := Clue{}
	run := 0
	for _, filled := range line {
		if filled {
			run++
		} else if run > 0 {
			clue = append(clue, run)
			run = 0
		}
	}
	if run > 0 {
		clue = append(clue, run)
	}
	if len(clue) == 0 {
		clue = Clue{0}
	}
	return clue
}

// LineMatchesClue reports whether the line's filled pattern satisfies
// the clue exactly.
func LineMatchesClue(line []bool, clue Clue) bool {
	return slices.Equal(ComputeClues(line), clue)
}

// MinSpace is the least number of cells the clue can occupy: the runs
// themselves plus one mandatory gap between neighbors.
func (c Clue) MinSpace() int {
	if len(c) == 1 && c[0] == 0 {
		return 0
	}
	total := len(c) - 1
	for _, n := range c {
		total += n
	}
	return total
}

// DeriveClues computes the row and column clue arrays for a solution
// grid. Done once per puzzle; the results are immutable afterwards.
func DeriveClues(solution []bool, rows, cols int) (rowClues, colClues []Clue) {
	rowClues = make([]Clue, rows)
	for y := range rows {
		rowClues[y] = ComputeClues(SolutionRow(solution, cols, y))
	}
	colClues = make([]Clue, cols)
	for x := range cols {
		colClues[x] = ComputeClues(SolutionCol(solution, cols, x))
	}
	return rowClues, colClues
}

// CheckWin reports whether every row and column of the board matches
// its clue.
func CheckWin(b Board, rowClues, colClues []Clue) bool {
	for y := range b.Rows {
		if !LineMatchesClue(FilledMask(b.Row(y)), rowClues[y]) {
			return false
		}
	}
	for x := range b.Cols {
		if !LineMatchesClue(FilledMask(b.Col(x)), colClues[x]) {
			return false
		}
	}
	return true
}
