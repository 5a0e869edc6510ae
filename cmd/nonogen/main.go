// Command nonogen generates random nonogram puzzles and prints them as
// text grids with their clues, useful for eyeballing generator output.
package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/ndbell/nonogram-server/internal/nonogram"
)

var (
	rows   int
	cols   int
	count  int
	seed   uint64
	preset string
)

func init() {
	flag.IntVar(&rows, "rows", 10, "puzzle height")
	flag.IntVar(&cols, "cols", 10, "puzzle width")
	flag.IntVar(&count, "n", 1, "number of puzzles to generate")
	flag.Uint64Var(&seed, "seed", 0, "rng seed (0 = random)")
	flag.StringVar(&preset, "preset", "", "print a built-in puzzle instead of generating")
}

func createRand() *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func clueString(c nonogram.Clue) string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

func render(def *nonogram.PuzzleDef) string {
	rowClues, colClues := nonogram.DeriveClues(def.Solution, def.Rows, def.Cols)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%dx%d, %s)\n", def.Name, def.Cols, def.Rows, def.Color)
	for y := range def.Rows {
		for x := range def.Cols {
			if def.Solution[y*def.Cols+x] {
				sb.WriteString("##")
			} else {
				sb.WriteString("··")
			}
		}
		fmt.Fprintf(&sb, "  %s\n", clueString(rowClues[y]))
	}
	cols := make([]string, len(colClues))
	for x, c := range colClues {
		cols[x] = clueString(c)
	}
	fmt.Fprintf(&sb, "cols: %s\n", strings.Join(cols, " | "))
	return sb.String()
}

func main() {
	flag.Parse()

	if preset != "" {
		def, ok := nonogram.Preset(preset)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown preset %q (have: %s)\n",
				preset, strings.Join(nonogram.PresetKeys(), ", "))
			os.Exit(1)
		}
		fmt.Print(render(def))
		return
	}

	rnd := createRand()
	for i := range count {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(render(nonogram.Generate(rows, cols, rnd)))
	}
}
