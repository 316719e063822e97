package gridsheet

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Stages of workbook I/O reported by WorkbookError.
const (
	StageRead   = "read"
	StageWrite  = "write"
	StageStyles = "styles"
	StageChart  = "chart"
	StageSave   = "save"
)

// WorkbookError represents an error while reading or writing a workbook.
type WorkbookError struct {
	SheetName string
	Stage     string // "read", "write", "styles", "chart", "save"
	Err       error
}

func (e *WorkbookError) Error() string {
	return fmt.Sprintf("workbook error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *WorkbookError) Unwrap() error {
	return e.Err
}

// NewWorkbookError creates a new WorkbookError.
func NewWorkbookError(sheetName, stage string, err error) *WorkbookError {
	return &WorkbookError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
