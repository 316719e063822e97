package models

import (
	"errors"
	"fmt"

	"github.com/tiendc/go-deepcopy"
	"github.com/xuri/excelize/v2"
)

// ErrOutOfBounds indicates a row or column index outside the grid.
var ErrOutOfBounds = errors.New("cell out of bounds")

// ErrRowTooWide indicates a row with more values than the grid has columns.
var ErrRowTooWide = errors.New("row wider than grid")

// Grid is a rectangular table of cell values stored column by column.
// Column labels are derived from position (A, B, C, ...) and never change.
// All columns always hold the same number of values.
type Grid struct {
	columns  [][]Value
	captions []string
	rows     int
}

// NewGrid returns a grid of the given size filled with empty values.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &Grid{columns: make([][]Value, cols), rows: rows}
	for c := range g.columns {
		g.columns[c] = make([]Value, rows)
	}
	return g
}

// FromRows builds a grid from row-major values. The width is the widest row;
// shorter rows are padded with empty values.
func FromRows(rows [][]Value) *Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	g := NewGrid(len(rows), width)
	for r, row := range rows {
		for c, v := range row {
			g.columns[c][r] = v
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	if g == nil {
		return 0
	}
	return len(g.columns)
}

// Label returns the letter label of the zero-based column index.
func (g *Grid) Label(col int) string {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return ""
	}
	return name
}

// Labels returns the labels of all columns in order.
func (g *Grid) Labels() []string {
	labels := make([]string, g.Cols())
	for c := range labels {
		labels[c] = g.Label(c)
	}
	return labels
}

// Caption returns the header text of a column, or its label when the grid has no captions.
func (g *Grid) Caption(col int) string {
	if col < len(g.captions) && g.captions[col] != "" {
		return g.captions[col]
	}
	return g.Label(col)
}

// HasCaptions reports whether the grid carries header captions.
func (g *Grid) HasCaptions() bool {
	return g != nil && len(g.captions) > 0
}

// SetCaptions sets the header captions. The count must match the column count.
func (g *Grid) SetCaptions(captions []string) error {
	if len(captions) != len(g.columns) {
		return fmt.Errorf("captions: got %d, grid has %d columns", len(captions), len(g.columns))
	}
	g.captions = append([]string(nil), captions...)
	return nil
}

// Cell returns the value at the zero-based position. Out-of-range positions yield Empty.
func (g *Grid) Cell(row, col int) Value {
	if !g.inBounds(row, col) {
		return Empty()
	}
	return g.columns[col][row]
}

// Set replaces the value at the zero-based position.
func (g *Grid) Set(row, col int, v Value) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("set (%d, %d): %w", row, col, ErrOutOfBounds)
	}
	g.columns[col][row] = v
	return nil
}

// Row returns a copy of the values in a row.
func (g *Grid) Row(row int) []Value {
	if row < 0 || row >= g.Rows() {
		return nil
	}
	out := make([]Value, len(g.columns))
	for c := range g.columns {
		out[c] = g.columns[c][row]
	}
	return out
}

// Column returns a copy of the values in a column.
func (g *Grid) Column(col int) []Value {
	if col < 0 || col >= g.Cols() {
		return nil
	}
	return append([]Value(nil), g.columns[col]...)
}

// AppendRow adds a row at the bottom, padding missing trailing values with Empty.
func (g *Grid) AppendRow(values ...Value) error {
	if len(values) > len(g.columns) {
		return fmt.Errorf("append %d values: %w", len(values), ErrRowTooWide)
	}
	for c := range g.columns {
		v := Empty()
		if c < len(values) {
			v = values[c]
		}
		g.columns[c] = append(g.columns[c], v)
	}
	g.rows++
	return nil
}

// AddColumn appends an empty column and returns its label.
func (g *Grid) AddColumn() string {
	g.columns = append(g.columns, make([]Value, g.rows))
	if len(g.captions) > 0 {
		g.captions = append(g.captions, "")
	}
	return g.Label(len(g.columns) - 1)
}

// MapCells replaces every value with fn(value), in place.
func (g *Grid) MapCells(fn func(Value) Value) {
	for c := range g.columns {
		for r := range g.columns[c] {
			g.columns[c][r] = fn(g.columns[c][r])
		}
	}
}

// SelectRows returns a new grid holding the given rows in the given order.
// Captions are carried over.
func (g *Grid) SelectRows(indices []int) *Grid {
	out := NewGrid(0, g.Cols())
	out.captions = append([]string(nil), g.captions...)
	for _, r := range indices {
		if r < 0 || r >= g.rows {
			continue
		}
		for c := range g.columns {
			out.columns[c] = append(out.columns[c], g.columns[c][r])
		}
		out.rows++
	}
	return out
}

// Clone returns a deep copy of the grid. A nil grid clones to an empty grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return NewGrid(0, 0)
	}
	out := &Grid{rows: g.rows}
	if err := deepcopy.Copy(&out.columns, &g.columns); err != nil {
		out.columns = make([][]Value, len(g.columns))
		for c := range g.columns {
			out.columns[c] = append([]Value(nil), g.columns[c]...)
		}
	}
	if len(g.captions) > 0 {
		out.captions = append([]string(nil), g.captions...)
	}
	return out
}

func (g *Grid) inBounds(row, col int) bool {
	return g != nil && row >= 0 && row < g.rows && col >= 0 && col < len(g.columns)
}
