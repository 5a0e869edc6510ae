package nonogram

import (
	"fmt"
	"strings"
)

type CellState int8

const (
	Empty   CellState = 0
	Filled  CellState = 1
	MarkedX CellState = 2
)

func (s CellState) String() string {
	switch s {
	case Filled:
		return "#"
	case MarkedX:
		return "x"
	default:
		return "."
	}
}

// Board is the player-visible grid, stored row-major: i = y*Cols + x.
type Board struct {
	Rows, Cols int
	Cells      []CellState
}

func NewBoard(rows, cols int) Board {
	return Board{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]CellState, rows*cols),
	}
}

func (b Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.Cols && 0 <= y && y < b.Rows
}

func (b Board) At(x, y int) CellState {
	return b.Cells[y*b.Cols+x]
}

func (b *Board) Set(x, y int, s CellState) {
	b.Cells[y*b.Cols+x] = s
}

// Row returns a copy of row y, top row first.
func (b Board) Row(y int) []CellState {
	line := make([]CellState, b.Cols)
	copy(line, b.Cells[y*b.Cols:(y+1)*b.Cols])
	return line
}

// Col synthesizes column x as a line, top-to-bottom.
func (b Board) Col(x int) []CellState {
	line := make([]CellState, b.Rows)
	for y := range b.Rows {
		line[y] = b.Cells[y*b.Cols+x]
	}
	return line
}

// FilledMask reduces a line to its filled cells, the view the clue
// model reasons about.
func FilledMask(line []CellState) []bool {
	mask := make([]bool, len(line))
	for i, s := range line {
		mask[i] = s == Filled
	}
	return mask
}

func (b Board) String() string {
	var sb strings.Builder
	for y := range b.Rows {
		for x := range b.Cols {
			fmt.Fprint(&sb, b.At(x, y).String()+" ")
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}

// SolutionRow and SolutionCol extract lines from a solution grid laid
// out like a Board (row-major, width cols).
func SolutionRow(solution []bool, cols, y int) []bool {
	line := make([]bool, cols)
	copy(line, solution[y*cols:(y+1)*cols])
	return line
}

func SolutionCol(solution []bool, cols, x int) []bool {
	rows := len(solution) / cols
	line := make([]bool, rows)
	for y := range rows {
		line[y] = solution[y*cols+x]
	}
	return line
}
