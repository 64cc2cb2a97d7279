package core

// Viewport projects the logical pixel world onto a terminal grid.
type Viewport struct {
	WorldW, WorldH int // Logical world size in pixels
	CellsW, CellsH int // Terminal size in characters
}

// NewViewport creates a viewport for the given world and terminal sizes.
func NewViewport(worldW, worldH, cellsW, cellsH int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, CellsW: cellsW, CellsH: cellsH}
}

// CellX converts a world x coordinate to a column.
func (v Viewport) CellX(x int) int {
	if v.WorldW <= 0 {
		return 0
	}
	return floorDiv(x*v.CellsW, v.WorldW)
}

// CellY converts a world y coordinate to a row.
func (v Viewport) CellY(y int) int {
	if v.WorldH <= 0 {
		return 0
	}
	return floorDiv(y*v.CellsH, v.WorldH)
}

// Project converts a world rectangle to the cells it covers.
// Any non-empty rectangle covers at least one cell.
func (v Viewport) Project(r Rect) Rect {
	x0, y0 := v.CellX(r.X), v.CellY(r.Y)
	x1, y1 := v.CellX(r.Right()), v.CellY(r.Bottom())
	if x1 <= x0 && r.W > 0 {
		x1 = x0 + 1
	}
	if y1 <= y0 && r.H > 0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// WorldPoint converts a cell position back to the world pixel at the
// cell's center.
func (v Viewport) WorldPoint(col, row int) (int, int) {
	if v.CellsW <= 0 || v.CellsH <= 0 {
		return 0, 0
	}
	x := (2*col + 1) * v.WorldW / (2 * v.CellsW)
	y := (2*row + 1) * v.WorldH / (2 * v.CellsH)
	return x, y
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
