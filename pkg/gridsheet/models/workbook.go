package models

// Summary describes a loaded grid.
type Summary struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name,omitempty"`
	// SheetName is the sheet the grid was read from.
	SheetName string `json:"sheet_name,omitempty"`
	// Rows is the row count.
	Rows int `json:"rows"`
	// Cols is the column count.
	Cols int `json:"cols"`
	// Labels lists the column labels in order.
	Labels []string `json:"labels"`
	// Captions lists the header captions, when present.
	Captions []string `json:"captions,omitempty"`
	// UsedRange is the bounding box of non-empty cells (e.g. "A1:D10").
	UsedRange string `json:"used_range,omitempty"`
	// NonEmpty is the number of non-empty cells.
	NonEmpty int `json:"non_empty"`
	// Totals holds the per-column sums.
	Totals []ColumnTotal `json:"totals"`
}
