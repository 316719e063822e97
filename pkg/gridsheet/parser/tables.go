package parser

import "github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"

// UsedRange returns the bounding box of non-empty cells in grid coordinates
// (row 1 is the first data row) and the number of non-empty cells inside it.
// ok is false when the grid holds no content.
func UsedRange(grid *models.Grid) (area models.Area, nonEmpty int, ok bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(grid)
	if minRow < 0 {
		return models.Area{}, 0, false
	}

	area = models.Area{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}
	return area, countNonEmptyCells(grid, minRow, maxRow, minCol, maxCol), true
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(grid *models.Grid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx := 0; rowIdx < grid.Rows(); rowIdx++ {
		for colIdx := 0; colIdx < grid.Cols(); colIdx++ {
			if grid.Cell(rowIdx, colIdx).IsEmpty() {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(grid *models.Grid, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		for colIdx := minCol; colIdx <= maxCol; colIdx++ {
			if !grid.Cell(rowIdx, colIdx).IsEmpty() {
				count++
			}
		}
	}
	return count
}
