package nonogram

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkerboard3() *PuzzleDef {
	return &PuzzleDef{
		Name: "Checker",
		Rows: 3,
		Cols: 3,
		Solution: []bool{
			true, false, true,
			false, true, false,
			true, false, true,
		},
		Color: "#e2725b",
	}
}

func TestNewGame(t *testing.T) {
	g := NewGame(checkerboard3())

	want := []Clue{{1, 1}, {1}, {1, 1}}
	for i := range want {
		assert.Equal(t, want[i], g.RowClues[i])
		assert.Equal(t, want[i], g.ColClues[i])
	}
	assert.Equal(t, 180, g.Remaining)
	assert.Equal(t, 3, g.MaxErrors)
	assert.False(t, g.Started)
	assert.False(t, g.Terminal())
}

func TestFillToWin(t *testing.T) {
	g := NewGame(checkerboard3())

	coords := [][2]int{{0, 0}, {2, 0}, {1, 1}, {0, 2}}
	for _, c := range coords {
		wrong := g.Fill(c[0], c[1])
		require.False(t, wrong)
		require.False(t, g.Won)
	}
	wrong := g.Fill(2, 2)
	require.False(t, wrong)
	assert.True(t, g.Won)
	assert.False(t, g.Lost)

	// Terminal state freezes the board.
	snapshot := slices.Clone(g.Board.Cells)
	g.Fill(1, 0)
	g.Mark(1, 2)
	g.Tick()
	assert.Equal(t, snapshot, g.Board.Cells)
}

func TestFillToggleAndNoops(t *testing.T) {
	g := NewGame(checkerboard3())

	require.False(t, g.Fill(0, 0))
	assert.Equal(t, Filled, g.Board.At(0, 0))

	// Filling a filled cell is a free undo.
	require.False(t, g.Fill(0, 0))
	assert.Equal(t, Empty, g.Board.At(0, 0))
	assert.Equal(t, 0, g.ErrorCount)

	// Filling a marked cell is a no-op.
	require.False(t, g.Mark(1, 0))
	assert.Equal(t, MarkedX, g.Board.At(1, 0))
	require.False(t, g.Fill(1, 0))
	assert.Equal(t, MarkedX, g.Board.At(1, 0))
}

func TestErrorPenalty(t *testing.T) {
	g := NewGame(checkerboard3())
	g.Remaining = 10
	g.MaxErrors = 3

	wrong := g.Fill(1, 0) // solution empty here
	assert.True(t, wrong)
	assert.Equal(t, 5, g.Remaining)
	assert.Equal(t, 1, g.ErrorCount)
	assert.False(t, g.Lost)
	assert.Equal(t, MarkedX, g.Board.At(1, 0))

	assert.True(t, g.Fill(0, 1))
	assert.True(t, g.Fill(2, 1))
	assert.True(t, g.Lost)
	assert.Equal(t, LostByErrors, g.LostReason)
}

func TestErrorsTakePrecedenceOverTime(t *testing.T) {
	g := NewGame(checkerboard3())
	g.Remaining = 5
	g.MaxErrors = 1

	// One mistake exhausts the budget and the clock at once.
	assert.True(t, g.Fill(1, 0))
	assert.Equal(t, 0, g.Remaining)
	assert.True(t, g.Lost)
	assert.Equal(t, LostByErrors, g.LostReason)
}

func TestWrongMarkResolvesToFill(t *testing.T) {
	g := NewGame(checkerboard3())

	wrong := g.Mark(0, 0) // solution filled here
	assert.True(t, wrong)
	assert.Equal(t, Filled, g.Board.At(0, 0))
	assert.Equal(t, 1, g.ErrorCount)

	// Correct mark sticks, and marking again undoes it.
	assert.False(t, g.Mark(1, 0))
	assert.Equal(t, MarkedX, g.Board.At(1, 0))
	assert.False(t, g.Mark(1, 0))
	assert.Equal(t, Empty, g.Board.At(1, 0))
}

func TestWrongMarkCanWin(t *testing.T) {
	g := NewGame(checkerboard3())
	for _, c := range [][2]int{{0, 0}, {2, 0}, {1, 1}, {0, 2}} {
		require.False(t, g.Fill(c[0], c[1]))
	}
	// The last solution cell arrives via a wrong mark; the win still
	// registers because the error budget holds.
	assert.True(t, g.Mark(2, 2))
	assert.True(t, g.Won)
	assert.False(t, g.Lost)
}

func TestTick(t *testing.T) {
	g := NewGame(checkerboard3())

	// Untouched board: the clock does not run.
	g.Tick()
	assert.Equal(t, 180, g.Remaining)

	g.Fill(0, 0)
	g.Tick()
	assert.Equal(t, 179, g.Remaining)

	g.Remaining = 1
	g.Tick()
	assert.True(t, g.Lost)
	assert.Equal(t, LostByTime, g.LostReason)
	assert.Equal(t, 0, g.Remaining)
}

func TestAutoMark(t *testing.T) {
	g := NewGame(checkerboard3())

	// Completing row 1 marks its remaining cells.
	g.Fill(1, 1)
	assert.Equal(t, MarkedX, g.Board.At(0, 1))
	assert.Equal(t, MarkedX, g.Board.At(2, 1))
	// Column 1 is also complete: (1,0) and (1,2) go too.
	assert.Equal(t, MarkedX, g.Board.At(1, 0))
	assert.Equal(t, MarkedX, g.Board.At(1, 2))
}

func TestAutoMarkIdempotent(t *testing.T) {
	g := NewGame(checkerboard3())
	g.Fill(0, 0)
	g.Fill(1, 1)

	before := slices.Clone(g.Board.Cells)
	g.autoMark()
	assert.Equal(t, before, g.Board.Cells)
}

func TestReset(t *testing.T) {
	g := NewGame(checkerboard3())
	g.Remaining = 10
	g.MaxErrors = 1
	g.Fill(1, 0)
	require.True(t, g.Lost)

	g.Reset()
	assert.False(t, g.Lost)
	assert.Empty(t, g.LostReason)
	assert.Equal(t, 0, g.ErrorCount)
	assert.Equal(t, g.TimeLimit, g.Remaining)
	assert.Equal(t, make([]CellState, 9), g.Board.Cells)
	assert.False(t, g.Started)
}

func TestGameStateBytes(t *testing.T) {
	g := NewGame(checkerboard3())
	g.Fill(0, 0)

	b, err := g.Bytes()
	require.NoError(t, err)
	decoded, err := DecodeGameState(b)
	require.NoError(t, err)
	assert.Equal(t, g.Board.Cells, decoded.Board.Cells)
	assert.Equal(t, g.Remaining, decoded.Remaining)
}

func TestCompletionSnapshot(t *testing.T) {
	g := NewGame(checkerboard3())
	g.Fill(1, 1)

	rows, cols := g.Completion()
	require.Len(t, rows, 3)
	require.Len(t, cols, 3)
	// Row 1 ([1]) is sealed by the auto-mark pass.
	assert.Equal(t, []bool{true}, rows[1])
	assert.Equal(t, []bool{true}, cols[1])
	assert.Equal(t, []bool{false, false}, rows[0])
}

func TestBudget(t *testing.T) {
	tests := []struct {
		rows, cols, seconds, errors int
	}{
		{3, 3, 180, 3},
		{5, 5, 180, 3},
		{10, 10, 600, 5},
		{5, 10, 600, 5},
		{15, 15, 1200, 7},
		{20, 20, 1200, 7},
	}
	for _, test := range tests {
		s, e := Budget(test.rows, test.cols)
		if s != test.seconds || e != test.errors {
			t.Errorf("Budget(%d, %d) = (%d, %d), want (%d, %d)",
				test.rows, test.cols, s, e, test.seconds, test.errors)
		}
	}
}
