// Package gridsheet holds an editing session over a grid and moves grids in
// and out of xlsx workbooks.
package gridsheet

import "github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"

const (
	// DefaultRows is the row count of a new blank grid.
	DefaultRows = 5
	// DefaultCols is the column count of a new blank grid.
	DefaultCols = 5
	// DefaultSheetName names the data sheet of a saved workbook.
	DefaultSheetName = "Sheet1"
	// DefaultChartSheet names the sheet holding the column totals chart.
	DefaultChartSheet = "Totals"
)

// Options configures workbook I/O.
type Options struct {
	// Sheet is the sheet to read and write. Empty means the first sheet on
	// load and DefaultSheetName on save.
	Sheet string
	// ReadHeader specifies whether the first sheet row holds column captions.
	// If nil, defaults to true.
	ReadHeader *bool
	// WriteHeader specifies whether to write a caption row above the data.
	// If nil, follows ShouldReadHeader.
	WriteHeader *bool
	// Baseline is the style given to cells no declaration paints.
	// If nil, unpainted cells keep the workbook default.
	Baseline *models.Style
	// Chart selects the column totals chart. ChartNone writes no chart.
	Chart models.ChartKind
	// ChartSheet names the chart sheet. Empty means DefaultChartSheet.
	ChartSheet string
}

// DefaultOptions returns default workbook options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldReadHeader returns whether the first row is read as captions.
func (o Options) ShouldReadHeader() bool {
	if o.ReadHeader != nil {
		return *o.ReadHeader
	}
	return true
}

// ShouldWriteHeader returns whether a caption row is written.
func (o Options) ShouldWriteHeader() bool {
	if o.WriteHeader != nil {
		return *o.WriteHeader
	}
	return o.ShouldReadHeader()
}

// SheetName returns the sheet to write.
func (o Options) SheetName() string {
	if o.Sheet != "" {
		return o.Sheet
	}
	return DefaultSheetName
}

// ChartSheetName returns the sheet the totals chart goes on.
func (o Options) ChartSheetName() string {
	if o.ChartSheet != "" {
		return o.ChartSheet
	}
	return DefaultChartSheet
}
