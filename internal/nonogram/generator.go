package nonogram

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// PuzzleDef is a generated (or preset) puzzle: a solution grid plus
// presentation-only metadata.
type PuzzleDef struct {
	Name     string `json:"name"`
	Rows     int    `json:"rows"`
	Cols     int    `json:"cols"`
	Solution []bool `json:"-"`
	Color    string `json:"color"`
}

const genAttempts = 30

var accentPalette = []string{
	"#e2725b", "#5b8ee2", "#5be28c", "#e2c75b", "#a75be2", "#e25b9e",
}

var genNames = []string{
	"Inkblot", "Orbit", "Meander", "Thicket", "Lantern", "Drift",
	"Burrow", "Signal", "Tangle", "Harbor",
}

// Generate synthesizes a solution grid with no empty row or column and
// a fill density inside the aesthetic band. It tries a bounded number
// of random candidates, keeps the best-scoring one, and falls back to a
// deterministic diamond fill if none passes validation.
func Generate(rows, cols int, r *rand.Rand) *PuzzleDef {
	var (
		best      []bool
		bestScore = math.Inf(-1)
	)
	for range genAttempts {
		grid := basePattern(rows, cols, r)
		for range smoothingPasses(rows, cols) {
			grid = smooth(grid, rows, cols)
		}
		if hasEmptyLine(grid, rows, cols) {
			continue
		}
		d := density(grid)
		if d < 0.30 || d > 0.65 {
			continue
		}
		if score := -math.Abs(d - 0.45); score > bestScore {
			best, bestScore = grid, score
		}
	}
	if best == nil {
		best = diamondFallback(rows, cols)
	}
	return &PuzzleDef{
		Name:     fmt.Sprintf("%s %d", genNames[r.IntN(len(genNames))], 1+r.IntN(99)),
		Rows:     rows,
		Cols:     cols,
		Solution: best,
		Color:    accentPalette[r.IntN(len(accentPalette))],
	}
}

func basePattern(rows, cols int, r *rand.Rand) []bool {
	switch p := r.Float64(); {
	case p < 0.35:
		return symmetricBlob(rows, cols, r)
	case p < 0.65:
		return ellipseOverlay(rows, cols, r)
	default:
		return randomWalks(rows, cols, r)
	}
}

// symmetricBlob fills by radial-probability noise around the center and
// mirrors the left half onto the right. The fill probability never
// drops below 0.25, so border rows and columns stay populated.
func symmetricBlob(rows, cols int, r *rand.Rand) []bool {
	grid := make([]bool, rows*cols)
	cx, cy := float64(cols-1)/2, float64(rows-1)/2
	maxDist := math.Hypot(cx, cy)
	if maxDist == 0 {
		maxDist = 1
	}
	for y := range rows {
		for x := 0; x <= cols/2; x++ {
			dist := math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
			if r.Float64() < 0.85-0.6*dist {
				grid[y*cols+x] = true
				grid[y*cols+(cols-1-x)] = true
			}
		}
	}
	return grid
}

// ellipseOverlay unions 3-5 random ellipses. Centers range over the
// whole board, so lobes regularly spill across the border lines.
func ellipseOverlay(rows, cols int, r *rand.Rand) []bool {
	grid := make([]bool, rows*cols)
	for range 3 + r.IntN(3) {
		cx := float64(cols) * r.Float64()
		cy := float64(rows) * r.Float64()
		rx := 1 + r.Float64()*float64(cols)/2.5
		ry := 1 + r.Float64()*float64(rows)/2.5
		for y := range rows {
			for x := range cols {
				dx, dy := (float64(x)-cx)/rx, (float64(y)-cy)/ry
				if dx*dx+dy*dy <= 1 {
					grid[y*cols+x] = true
				}
			}
		}
	}
	return grid
}

// randomWalks traces 3-6 organic strokes from uniformly random starting
// points, marking every visited cell and sometimes a random neighbor.
// Steps past the border clamp to it, so strokes slide along the edges
// instead of dying there.
func randomWalks(rows, cols int, r *rand.Rand) []bool {
	grid := make([]bool, rows*cols)
	steps := (rows*cols)/4 + 1
	for range 3 + r.IntN(4) {
		x, y := r.IntN(cols), r.IntN(rows)
		for range steps {
			grid[y*cols+x] = true
			if r.Float64() < 0.3 {
				nx, ny := x+r.IntN(3)-1, y+r.IntN(3)-1
				if nx >= 0 && nx < cols && ny >= 0 && ny < rows {
					grid[ny*cols+nx] = true
				}
			}
			switch r.IntN(4) {
			case 0:
				x = min(x+1, cols-1)
			case 1:
				x = max(x-1, 0)
			case 2:
				y = min(y+1, rows-1)
			case 3:
				y = max(y-1, 0)
			}
		}
	}
	return grid
}

func smoothingPasses(rows, cols int) int {
	switch side := max(rows, cols); {
	case side <= 5:
		return 0
	case side <= 10:
		return 1
	default:
		return 2
	}
}

// smooth runs one cellular-automaton pass: filled cells survive with
// >=2 filled neighbors, empty cells are born with >=4. All cells update
// from the previous snapshot simultaneously.
func smooth(grid []bool, rows, cols int) []bool {
	next := make([]bool, len(grid))
	for y := range rows {
		for x := range cols {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					xx, yy := x+dx, y+dy
					if xx >= 0 && xx < cols && yy >= 0 && yy < rows &&
						grid[yy*cols+xx] {
						n++
					}
				}
			}
			if grid[y*cols+x] {
				next[y*cols+x] = n >= 2
			} else {
				next[y*cols+x] = n >= 4
			}
		}
	}
	return next
}

func hasEmptyLine(grid []bool, rows, cols int) bool {
	for y := range rows {
		empty := true
		for x := range cols {
			if grid[y*cols+x] {
				empty = false
				break
			}
		}
		if empty {
			return true
		}
	}
	for x := range cols {
		empty := true
		for y := range rows {
			if grid[y*cols+x] {
				empty = false
				break
			}
		}
		if empty {
			return true
		}
	}
	return false
}

func density(grid []bool) float64 {
	filled := 0
	for _, c := range grid {
		if c {
			filled++
		}
	}
	return float64(filled) / float64(len(grid))
}

// diamondFallback is the last-resort deterministic fill: the rhombus
// inscribed in the board plus its central row and column. The rhombus
// covers about half the cells on any rectangle, and the central cross
// keeps every row and column populated.
func diamondFallback(rows, cols int) []bool {
	grid := make([]bool, rows*cols)
	cx, cy := float64(cols-1)/2, float64(rows-1)/2
	a, b := float64(cols)/2, float64(rows)/2
	for y := range rows {
		for x := range cols {
			u := math.Abs(float64(x)-cx) / a
			v := math.Abs(float64(y)-cy) / b
			grid[y*cols+x] = u+v <= 1 || x == cols/2 || y == rows/2
		}
	}
	return grid
}
