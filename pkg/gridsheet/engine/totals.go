package engine

import "github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"

// ColumnTotals sums the coercible values of every column, in column order.
// A column without numbers totals 0.
func ColumnTotals(grid *models.Grid) []models.ColumnTotal {
	totals := make([]models.ColumnTotal, grid.Cols())
	for c := range totals {
		t := models.ColumnTotal{Label: grid.Label(c), Caption: grid.Caption(c)}
		for _, v := range grid.Column(c) {
			if f, ok := Coerce(v); ok {
				t.Sum += f
				t.Count++
			}
		}
		totals[c] = t
	}
	return totals
}
