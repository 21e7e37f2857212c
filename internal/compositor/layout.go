package compositor

import "github.com/go-gl/mathgl/mgl64"

// CellOffset returns the world-space offset of the cell for scene index out of
// total scenes, laid out maxPerRow to a row with the given spacing between
// cell centers. Rows grow along +Z; columns are centered on X against the
// row's final member count, so a partially filled last row stays centered
// instead of left-justified. The result is a pure function of its arguments.
func CellOffset(index, total, maxPerRow int, spacing float64) mgl64.Vec3 {
	if maxPerRow < 1 {
		maxPerRow = 1
	}
	if total < index+1 {
		total = index + 1
	}
	row := index / maxPerRow
	col := index % maxPerRow

	rowCols := total - row*maxPerRow
	if rowCols > maxPerRow {
		rowCols = maxPerRow
	}

	x := (float64(col) - float64(rowCols-1)/2) * spacing
	z := float64(row) * spacing
	return mgl64.Vec3{x, 0, z}
}
