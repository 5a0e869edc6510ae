package nonogram

import (
	"bytes"
	"encoding/gob"
)

const errorPenaltySeconds = 5

const (
	LostByTime   = "time"
	LostByErrors = "errors"
)

// GameState is the full state of one game. It is mutated only through
// Fill, Mark, Tick and Reset; once Won or Lost is set, every transition
// is a no-op.
type GameState struct {
	Name     string
	Color    string
	Rows     int
	Cols     int
	Solution []bool
	Board    Board
	RowClues []Clue
	ColClues []Clue

	Remaining  int // seconds
	TimeLimit  int
	ErrorCount int
	MaxErrors  int
	ErrorCells []int

	Started    bool
	Won        bool
	Lost       bool
	LostReason string
}

func NewGame(def *PuzzleDef) *GameState {
	rowClues, colClues := DeriveClues(def.Solution, def.Rows, def.Cols)
	limit, maxErrors := Budget(def.Rows, def.Cols)
	return &GameState{
		Name:      def.Name,
		Color:     def.Color,
		Rows:      def.Rows,
		Cols:      def.Cols,
		Solution:  def.Solution,
		Board:     NewBoard(def.Rows, def.Cols),
		RowClues:  rowClues,
		ColClues:  colClues,
		Remaining: limit,
		TimeLimit: limit,
		MaxErrors: maxErrors,
	}
}

func DecodeGameState(buf []byte) (*GameState, error) {
	var game GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (g GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g GameState) Terminal() bool { return g.Won || g.Lost }

func (g GameState) ValidatePoint(x, y int) bool {
	return g.Board.InBounds(x, y)
}

// Fill resolves a fill gesture on a cell. Filling a cell the solution
// leaves empty is a player mistake, not a fault: the cell auto-resolves
// to MarkedX and a time/error penalty applies. Returns whether the
// move was a mistake.
func (g *GameState) Fill(x, y int) (wrong bool) {
	if g.Terminal() {
		return false
	}
	g.Started = true
	switch g.Board.At(x, y) {
	case MarkedX:
		return false
	case Filled:
		g.Board.Set(x, y, Empty) // free undo
		return false
	}
	if !g.Solution[y*g.Cols+x] {
		g.Board.Set(x, y, MarkedX)
		g.penalize(y*g.Cols + x)
		return true
	}
	g.Board.Set(x, y, Filled)
	g.autoMark()
	if CheckWin(g.Board, g.RowClues, g.ColClues) {
		g.Won = true
	}
	return false
}

// Mark is symmetric to Fill: marking a cell that the solution fills is
// the mistake case and auto-resolves the cell to Filled.
func (g *GameState) Mark(x, y int) (wrong bool) {
	if g.Terminal() {
		return false
	}
	g.Started = true
	switch g.Board.At(x, y) {
	case Filled:
		return false
	case MarkedX:
		g.Board.Set(x, y, Empty) // free undo
		return false
	}
	if !g.Solution[y*g.Cols+x] {
		g.Board.Set(x, y, MarkedX)
		return false
	}
	g.Board.Set(x, y, Filled)
	g.penalize(y*g.Cols + x)
	if g.Lost {
		return true
	}
	g.autoMark()
	if CheckWin(g.Board, g.RowClues, g.ColClues) {
		g.Won = true
	}
	return true
}

// penalize records a mistake. The error budget is checked before the
// clock so that a simultaneous trip reports "errors". A penalty that
// drains the clock to exactly zero leaves the game running until the
// next tick; only a mistake made with the clock already spent loses on
// time here.
func (g *GameState) penalize(cell int) {
	g.ErrorCount++
	g.ErrorCells = append(g.ErrorCells, cell)
	outOfTime := g.Remaining == 0
	g.Remaining = max(0, g.Remaining-errorPenaltySeconds)
	if g.ErrorCount >= g.MaxErrors {
		g.Lost = true
		g.LostReason = LostByErrors
	} else if outOfTime {
		g.Lost = true
		g.LostReason = LostByTime
	}
}

// Tick advances the countdown by one second. Safe to skip or repeat; a
// late batch of ticks just decrements more than once.
func (g *GameState) Tick() {
	if !g.Started || g.Terminal() {
		return
	}
	g.Remaining--
	if g.Remaining <= 0 {
		g.Remaining = 0
		g.Lost = true
		g.LostReason = LostByTime
	}
}

// Reset rebuilds the board, timer and error budget for the same puzzle.
func (g *GameState) Reset() {
	g.Board = NewBoard(g.Rows, g.Cols)
	g.Remaining = g.TimeLimit
	g.ErrorCount = 0
	g.ErrorCells = nil
	g.Started = false
	g.Won = false
	g.Lost = false
	g.LostReason = ""
}

// autoMark closes out every line whose clue is already fully consumed:
// remaining Empty cells become MarkedX. Runs over the whole board once
// per player action.
func (g *GameState) autoMark() {
	for y := range g.Rows {
		if LineMatchesClue(FilledMask(g.Board.Row(y)), g.RowClues[y]) {
			for x := range g.Cols {
				if g.Board.At(x, y) == Empty {
					g.Board.Set(x, y, MarkedX)
				}
			}
		}
	}
	for x := range g.Cols {
		if LineMatchesClue(FilledMask(g.Board.Col(x)), g.ColClues[x]) {
			for y := range g.Rows {
				if g.Board.At(x, y) == Empty {
					g.Board.Set(x, y, MarkedX)
				}
			}
		}
	}
}

// Completion recomputes the per-clue satisfaction flags for every row
// and column, the arrays the UI uses to dim finished numbers.
func (g GameState) Completion() (rows, cols [][]bool) {
	rows = make([][]bool, g.Rows)
	for y := range g.Rows {
		rows[y] = LineCompletion(g.Board.Row(y), g.RowClues[y])
	}
	cols = make([][]bool, g.Cols)
	for x := range g.Cols {
		cols[x] = LineCompletion(g.Board.Col(x), g.ColClues[x])
	}
	return rows, cols
}
