package handlers

import (
	"errors"
	"io"
	"iter"
	"net/http"
	"strconv"
	"strings"

	"github.com/ndbell/nonogram-server/internal/nonogram"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"f": 2,
	"m": 2,
	"r": 0,
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func executeCommand(g *nonogram.GameState, c string) error {
	parts := strings.Split(strings.TrimSpace(c), " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "f", "m":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		if !g.ValidatePoint(x, y) {
			return errors.New("invalid cell coordinates")
		}
		if parts[0] == "f" {
			g.Fill(x, y)
		} else {
			g.Mark(x, y)
		}
	case "r":
		g.Reset()
	}
	return nil
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

func readBody(r *http.Request) (string, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}
