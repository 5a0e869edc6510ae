package nonogram

import (
	"fmt"
	"slices"
)

// Presets are hand-authored puzzles. Each must keep every row and
// column non-empty, same as generated grids.
var presets = map[string]*PuzzleDef{
	"heart": {
		Name:  "Heart",
		Rows:  5,
		Cols:  5,
		Color: "#e2725b",
		Solution: parsePicture(
			".#.#.",
			"#####",
			"#####",
			".###.",
			"..#..",
		),
	},
	"cup": {
		Name:  "Cup",
		Rows:  5,
		Cols:  5,
		Color: "#5b8ee2",
		Solution: parsePicture(
			"####.",
			"#..##",
			"#..##",
			"####.",
			".###.",
		),
	},
	"anchor": {
		Name:  "Anchor",
		Rows:  10,
		Cols:  10,
		Color: "#5be28c",
		Solution: parsePicture(
			"....##....",
			"...#..#...",
			"....##....",
			"..######..",
			"....##....",
			"#...##...#",
			"##..##..##",
			".#..##..#.",
			".########.",
			"...####...",
		),
	},
}

// Preset looks up a hand-authored puzzle by its key.
func Preset(key string) (*PuzzleDef, bool) {
	def, ok := presets[key]
	return def, ok
}

// PresetKeys lists the available preset names.
func PresetKeys() []string {
	keys := make([]string, 0, len(presets))
	for k := range presets {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func parsePicture(rows ...string) []bool {
	grid := make([]bool, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		if len(row) != len(rows[0]) {
			panic(fmt.Sprintf("ragged preset row %q", row))
		}
		for _, c := range row {
			grid = append(grid, c == '#')
		}
	}
	return grid
}
