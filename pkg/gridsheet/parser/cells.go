package parser

import (
	"math"
	"strconv"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
	"github.com/xuri/excelize/v2"
)

// ReadGrid reads a sheet into a grid using raw (unformatted) cell values.
// With header, the first row becomes the grid's column captions.
// Ragged rows are padded with empty values. Cells stored as strings stay
// text even when they look numeric, so "02134" keeps its leading zero.
func ReadGrid(f *excelize.File, sheetName string, header bool) (*models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var captions []string
	if header && len(rows) > 0 {
		captions = rows[0]
		rows = rows[1:]
	}

	offset := headerOffset(header)
	values := make([][]models.Value, len(rows))
	for rowIdx, row := range rows {
		values[rowIdx] = make([]models.Value, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1+offset)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(sheetName, cell)
			if err != nil {
				return nil, err
			}
			values[rowIdx][colIdx] = parseValue(cellValue, typ)
		}
	}

	grid := models.FromRows(values)
	if captions == nil {
		return grid, nil
	}

	// A header row can be wider than every data row.
	for grid.Cols() < len(captions) {
		grid.AddColumn()
	}
	padded := make([]string, grid.Cols())
	copy(padded, captions)
	if err := grid.SetCaptions(padded); err != nil {
		return nil, err
	}
	return grid, nil
}

// parseValue converts a raw cell string to a value. String cells are text.
// Otherwise integers and finite decimals become numbers and anything else is text.
func parseValue(s string, typ excelize.CellType) models.Value {
	if s == "" {
		return models.Empty()
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.Text(s)
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return models.Number(f)
	}
	return models.Text(s)
}
