// Package engine resolves cell labels, evaluates range aggregates, applies grid
// transforms and resolves range style overlays. It holds no state between calls.
package engine

import (
	"iter"
	"strconv"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
)

// CellAddress is a resolved zero-based cell coordinate.
// Values are produced by Resolve, so an address always points inside the grid
// it was resolved against at the time.
type CellAddress struct {
	row int
	col int
}

// Row returns the zero-based row index.
func (a CellAddress) Row() int { return a.row }

// Col returns the zero-based column index.
func (a CellAddress) Col() int { return a.col }

// String returns the A1-style label of the address.
func (a CellAddress) String() string {
	return FormatLabel(a)
}

// Range is an ordered pair of resolved addresses. Iteration runs from Start to
// End on each axis; an End before its Start on either axis is an empty range.
type Range struct {
	Start CellAddress
	End   CellAddress
}

// Empty reports whether iteration over r yields no cells.
func (r Range) Empty() bool {
	return r.End.row < r.Start.row || r.End.col < r.Start.col
}

// Cells yields the addresses of r row by row.
func (r Range) Cells() iter.Seq[CellAddress] {
	return func(yield func(CellAddress) bool) {
		for row := r.Start.row; row <= r.End.row; row++ {
			for col := r.Start.col; col <= r.End.col; col++ {
				if !yield(CellAddress{row: row, col: col}) {
					return
				}
			}
		}
	}
}

// Cells yields every address of grid row by row.
func Cells(grid *models.Grid) iter.Seq[CellAddress] {
	return Range{End: CellAddress{row: grid.Rows() - 1, col: grid.Cols() - 1}}.Cells()
}

// Resolve parses a label such as "B3" into a zero-based address in grid.
// Only single-letter columns are supported: "AA1" does not resolve.
func Resolve(label string, grid *models.Grid) (CellAddress, error) {
	if label == "" {
		return CellAddress{}, NewAddressError(label, "empty label")
	}
	if grid == nil {
		return CellAddress{}, NewAddressError(label, "%v", ErrNoGrid)
	}

	letter := label[0]
	if letter < 'A' || letter > 'Z' {
		return CellAddress{}, NewAddressError(label, "column must be an uppercase letter")
	}
	col := int(letter - 'A')
	if col >= grid.Cols() {
		return CellAddress{}, NewAddressError(label, "unknown column %q (grid has %d columns)", string(letter), grid.Cols())
	}

	n, ok := parseRowNumber(label[1:])
	if !ok {
		return CellAddress{}, NewAddressError(label, "row must be a positive integer")
	}
	row := n - 1
	if row >= grid.Rows() {
		return CellAddress{}, NewAddressError(label, "row %d out of range (grid has %d rows)", n, grid.Rows())
	}

	return CellAddress{row: row, col: col}, nil
}

// ResolveRange resolves a start and end label. The start label is resolved
// first and its error wins.
func ResolveRange(start, end string, grid *models.Grid) (Range, error) {
	s, err := Resolve(start, grid)
	if err != nil {
		return Range{}, err
	}
	e, err := Resolve(end, grid)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: s, End: e}, nil
}

// FormatLabel returns the label for an address. It is the inverse of Resolve
// for columns A through Z.
func FormatLabel(a CellAddress) string {
	if a.col < 0 || a.col >= 26 || a.row < 0 {
		return ""
	}
	return string(rune('A'+a.col)) + strconv.Itoa(a.row+1)
}

// parseRowNumber accepts ASCII digits only, with a value of at least 1.
// Signs and spaces are rejected.
func parseRowNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
