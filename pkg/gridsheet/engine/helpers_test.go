package engine

import (
	"fmt"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
)

// gridOf builds a grid from literal rows: strings become text, ints and
// floats become numbers, nil is empty.
func gridOf(rows ...[]any) *models.Grid {
	values := make([][]models.Value, len(rows))
	for r, row := range rows {
		values[r] = make([]models.Value, len(row))
		for c, cell := range row {
			values[r][c] = valueOf(cell)
		}
	}
	return models.FromRows(values)
}

func valueOf(cell any) models.Value {
	switch v := cell.(type) {
	case nil:
		return models.Empty()
	case string:
		return models.Text(v)
	case int:
		return models.Number(float64(v))
	case float64:
		return models.Number(v)
	default:
		panic(fmt.Sprintf("unsupported literal %T", cell))
	}
}

// rowsOf returns the grid's values row by row.
func rowsOf(g *models.Grid) [][]models.Value {
	out := make([][]models.Value, g.Rows())
	for r := range out {
		out[r] = g.Row(r)
	}
	return out
}

func addr(row, col int) CellAddress {
	return CellAddress{row: row, col: col}
}
