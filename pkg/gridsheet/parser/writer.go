package parser

import (
	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/engine"
	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
	"github.com/xuri/excelize/v2"
)

// WriteGrid writes grid to a sheet starting at A1. With header, the first
// row holds the column captions (the labels when the grid has none) and
// data starts on row 2.
func WriteGrid(f *excelize.File, sheetName string, grid *models.Grid, header bool) error {
	offset := headerOffset(header)

	if header {
		captions := make([]interface{}, grid.Cols())
		for c := range captions {
			captions[c] = grid.Caption(c)
		}
		if err := f.SetSheetRow(sheetName, "A1", &captions); err != nil {
			return err
		}
	}

	for r := 0; r < grid.Rows(); r++ {
		row := grid.Row(r)
		values := make([]interface{}, len(row))
		for c, v := range row {
			values[c] = v.Interface()
		}
		cell, err := excelize.CoordinatesToCellName(1, r+1+offset)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	return nil
}

// CellName returns the sheet cell name of a grid address.
func CellName(addr engine.CellAddress, header bool) (string, error) {
	return excelize.CoordinatesToCellName(addr.Col()+1, addr.Row()+1+headerOffset(header))
}

func headerOffset(header bool) int {
	if header {
		return 1
	}
	return 0
}
