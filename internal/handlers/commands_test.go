package handlers

import (
	"testing"

	"github.com/ndbell/nonogram-server/internal/nonogram"
)

func TestByPiece(t *testing.T) {
	testCases := []struct {
		input string
		sep   string
		array []string
	}{
		{"a b c", " ", []string{"a", "b", "c"}},
		{"f 0 0\nm 1 1\n\nr", "\n", []string{"f 0 0", "m 1 1", "", "r"}},
	}
	for _, test := range testCases {
		for i, p := range byPiece(test.input, test.sep) {
			if i < 0 || i >= len(test.array) {
				t.Errorf("byPiece returned an invalid index: %d", i)
			}
			if p != test.array[i] {
				t.Errorf("byPiece returned an incorrect piece: have %s, want %s",
					p, test.array[i])
			}
		}
	}
}

func newTestGame() *nonogram.GameState {
	return nonogram.NewGame(&nonogram.PuzzleDef{
		Name: "checker",
		Rows: 3,
		Cols: 3,
		Solution: []bool{
			true, false, true,
			false, true, false,
			true, false, true,
		},
		Color: "#fb7185",
	})
}

func TestExecuteCommand(t *testing.T) {
	testCases := []struct {
		command string
		wantErr bool
	}{
		{"f 0 0", false},
		{"m 1 0", false},
		{"r", false},
		{"  f 2 2  ", false},
		{"f 0", true},
		{"f 0 0 0", true},
		{"f a b", true},
		{"f 3 0", true},
		{"f 0 -1", true},
		{"q", true},
		{"t", true},
	}
	for _, test := range testCases {
		game := newTestGame()
		err := executeCommand(game, test.command)
		if test.wantErr && err == nil {
			t.Errorf("executeCommand(%q) expected an error, got nil", test.command)
		}
		if !test.wantErr && err != nil {
			t.Errorf("executeCommand(%q) unexpected error: %s", test.command, err)
		}
	}
}

func TestExecuteCommandEffects(t *testing.T) {
	game := newTestGame()

	if err := executeCommand(game, "f 0 0"); err != nil {
		t.Fatal(err)
	}
	if have := game.Board.At(0, 0); have != nonogram.Filled {
		t.Errorf("after \"f 0 0\": cell (0,0) = %s, want %s", have, nonogram.Filled)
	}

	if err := executeCommand(game, "m 1 0"); err != nil {
		t.Fatal(err)
	}
	if have := game.Board.At(1, 0); have != nonogram.MarkedX {
		t.Errorf("after \"m 1 0\": cell (1,0) = %s, want %s", have, nonogram.MarkedX)
	}

	if err := executeCommand(game, "r"); err != nil {
		t.Fatal(err)
	}
	if have := game.Board.At(0, 0); have != nonogram.Empty {
		t.Errorf("after \"r\": cell (0,0) = %s, want %s", have, nonogram.Empty)
	}
	if game.Started {
		t.Error("after \"r\": game still marked as started")
	}
}

// The wall clock is the only countdown authority; a client replaying
// its moves must not drain the timer a second time.
func TestCommandsNeverAdvanceClock(t *testing.T) {
	game := newTestGame()
	for _, c := range []string{"f 0 0", "m 1 0", "f 2 0", "r", "f 1 1"} {
		if err := executeCommand(game, c); err != nil {
			t.Fatal(err)
		}
	}
	if game.Remaining != game.TimeLimit {
		t.Errorf("commands drained the countdown: remaining %d, limit %d",
			game.Remaining, game.TimeLimit)
	}
}
