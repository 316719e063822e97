package gridsheet

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/engine"
	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/parser"
	"github.com/xuri/excelize/v2"
)

// LoadGrid reads one sheet of an xlsx file into a grid and returns the name
// of the sheet it read.
func LoadGrid(path string, opts Options) (*models.Grid, string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	sheetName := opts.Sheet
	switch {
	case sheetName == "" && len(sheetList) > 0:
		sheetName = sheetList[0]
	case sheetName == "" || !slices.Contains(sheetList, sheetName):
		return nil, "", NewWorkbookError(sheetName, StageRead, ErrSheetNotFound)
	}

	grid, err := parser.ReadGrid(f, sheetName, opts.ShouldReadHeader())
	if err != nil {
		return nil, "", NewWorkbookError(sheetName, StageRead, err)
	}
	return grid, sheetName, nil
}

// SaveGrid writes grid to a new xlsx file at path, paints resolved styles
// over it and, when opts.Chart is set, adds the column totals chart on its
// own sheet. An existing file at path is replaced.
func SaveGrid(path string, grid *models.Grid, resolved map[engine.CellAddress]models.Style, opts Options) error {
	sheetName := opts.SheetName()
	chartSheet := opts.ChartSheetName()
	if opts.Chart != models.ChartNone && chartSheet == sheetName {
		return NewWorkbookError(sheetName, StageChart, errors.New("chart sheet must differ from the data sheet"))
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheetName != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheetName); err != nil {
			return NewWorkbookError(sheetName, StageWrite, err)
		}
	}

	header := opts.ShouldWriteHeader()
	if err := parser.WriteGrid(f, sheetName, grid, header); err != nil {
		return NewWorkbookError(sheetName, StageWrite, err)
	}
	if err := parser.ApplyStyles(f, sheetName, grid, resolved, opts.Baseline, header); err != nil {
		return NewWorkbookError(sheetName, StageStyles, err)
	}
	if err := parser.AddTotalsChart(f, chartSheet, engine.ColumnTotals(grid), opts.Chart); err != nil {
		return NewWorkbookError(chartSheet, StageChart, err)
	}

	if err := f.SaveAs(path); err != nil {
		return NewWorkbookError(sheetName, StageSave, err)
	}
	return nil
}
