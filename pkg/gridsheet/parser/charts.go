package parser

import (
	"fmt"
	"strconv"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
	"github.com/xuri/excelize/v2"
)

// chartTypes maps chart kinds to excelize chart types. Bars are vertical.
var chartTypes = map[models.ChartKind]excelize.ChartType{
	models.ChartBar:  excelize.Col,
	models.ChartLine: excelize.Line,
	models.ChartArea: excelize.Area,
}

// TotalsChartTitle is the title of the column totals chart.
const TotalsChartTitle = "Column totals (SUM)"

// AddTotalsChart writes the column totals as a two-row table on chartSheet
// (captions on row 1, sums on row 2, starting at column B) and plots them
// below the table. ChartNone or an empty totals slice writes nothing.
func AddTotalsChart(f *excelize.File, chartSheet string, totals []models.ColumnTotal, kind models.ChartKind) error {
	if kind == models.ChartNone || len(totals) == 0 {
		return nil
	}
	chartType, ok := chartTypes[kind]
	if !ok {
		return fmt.Errorf("unsupported chart kind %q", kind)
	}

	if _, err := f.NewSheet(chartSheet); err != nil {
		return err
	}
	if err := f.SetCellValue(chartSheet, "A1", "Column"); err != nil {
		return err
	}
	if err := f.SetCellValue(chartSheet, "A2", "SUM"); err != nil {
		return err
	}

	for i, t := range totals {
		header, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(chartSheet, header, t.Caption); err != nil {
			return err
		}
		value, err := excelize.CoordinatesToCellName(i+2, 2)
		if err != nil {
			return err
		}
		var sum interface{} = t.Sum
		if !t.Finite() {
			sum = strconv.FormatFloat(t.Sum, 'f', -1, 64)
		}
		if err := f.SetCellValue(chartSheet, value, sum); err != nil {
			return err
		}
	}

	categories, err := rowReference(chartSheet, 1, 2, len(totals)+1)
	if err != nil {
		return err
	}
	values, err := rowReference(chartSheet, 2, 2, len(totals)+1)
	if err != nil {
		return err
	}

	return f.AddChart(chartSheet, "A4", &excelize.Chart{
		Type: chartType,
		Series: []excelize.ChartSeries{
			{
				Name:       quoteSheetName(chartSheet) + "!$A$2",
				Categories: categories,
				Values:     values,
			},
		},
		Title: []excelize.RichTextRun{{Text: TotalsChartTitle}},
	})
}

// rowReference returns an absolute reference such as 'Totals'!$B$1:$D$1.
func rowReference(sheetName string, row, firstCol, lastCol int) (string, error) {
	start, err := excelize.CoordinatesToCellName(firstCol, row, true)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(lastCol, row, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s!%s:%s", quoteSheetName(sheetName), start, end), nil
}
