package nonogram

// Budget returns the time limit (seconds) and error allowance for a
// board size. Keyed by the longer side.
func Budget(rows, cols int) (seconds, maxErrors int) {
	switch side := max(rows, cols); {
	case side <= 5:
		return 180, 3
	case side <= 10:
		return 600, 5
	default:
		return 1200, 7
	}
}
