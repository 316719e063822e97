package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ChartKind is the chart type used to plot column totals.
type ChartKind string

const (
	// ChartNone disables the totals chart.
	ChartNone ChartKind = ""
	// ChartBar plots totals as vertical bars.
	ChartBar ChartKind = "bar"
	// ChartLine plots totals as a line.
	ChartLine ChartKind = "line"
	// ChartArea plots totals as a filled area.
	ChartArea ChartKind = "area"
)

// ParseChartKind parses a chart kind name, ignoring case. "none" and "" disable the chart.
func ParseChartKind(s string) (ChartKind, bool) {
	switch k := ChartKind(strings.ToLower(strings.TrimSpace(s))); k {
	case ChartNone, ChartBar, ChartLine, ChartArea:
		return k, true
	case "none":
		return ChartNone, true
	}
	return "", false
}

// ColumnTotal is the sum of a column's numeric values.
type ColumnTotal struct {
	// Label is the column letter.
	Label string `json:"label"`
	// Caption is the header text, or the label when the grid has none.
	Caption string `json:"caption"`
	// Sum is the total of the numeric values (0 when there are none).
	Sum float64 `json:"sum"`
	// Count is the number of numeric values summed.
	Count int `json:"count"`
}

// Finite reports whether Sum is a finite number.
func (t ColumnTotal) Finite() bool {
	return !math.IsNaN(t.Sum) && !math.IsInf(t.Sum, 0)
}

// MarshalJSON writes a non-finite Sum ("+Inf", "-Inf", "NaN") as a string.
func (t ColumnTotal) MarshalJSON() ([]byte, error) {
	type plain ColumnTotal
	if t.Finite() {
		return json.Marshal(plain(t))
	}
	return json.Marshal(struct {
		plain
		Sum string `json:"sum"`
	}{plain(t), strconv.FormatFloat(t.Sum, 'f', -1, 64)})
}
