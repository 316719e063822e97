// Package output renders grids, evaluation results and resolved styles as JSON.
package output

import (
	"cmp"
	"encoding/json"
	"math"
	"slices"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/engine"
	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
)

// ToJSON serializes v to JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// GridView is the JSON form of a grid. Empty rows are left out.
type GridView struct {
	Rows     int              `json:"rows"`
	Cols     int              `json:"cols"`
	Captions []string         `json:"captions,omitempty"`
	Cells    []models.CellRow `json:"cells"`
}

// NewGridView builds the JSON view of grid.
func NewGridView(grid *models.Grid) GridView {
	view := GridView{
		Rows:  grid.Rows(),
		Cols:  grid.Cols(),
		Cells: CellRows(grid),
	}
	if grid.HasCaptions() {
		view.Captions = make([]string, grid.Cols())
		for c := range view.Captions {
			view.Captions[c] = grid.Caption(c)
		}
	}
	return view
}

// CellRows returns the non-empty rows of grid, cells keyed by column label.
func CellRows(grid *models.Grid) []models.CellRow {
	rows := make([]models.CellRow, 0, grid.Rows())
	for r := 0; r < grid.Rows(); r++ {
		cells := make(map[string]interface{})
		for c, v := range grid.Row(r) {
			if v.IsEmpty() {
				continue
			}
			cells[grid.Label(c)] = jsonValue(v)
		}
		if len(cells) > 0 {
			rows = append(rows, models.CellRow{R: r + 1, C: cells})
		}
	}
	return rows
}

// jsonValue returns v.Interface(). NaN and infinities become text.
func jsonValue(v models.Value) interface{} {
	if v.Kind == models.KindNumber && (math.IsNaN(v.Number) || math.IsInf(v.Number, 0)) {
		return v.String()
	}
	return v.Interface()
}

// EvalReport is the JSON form of an evaluation.
type EvalReport struct {
	Operation string `json:"operation"`
	Start     string `json:"start"`
	End       string `json:"end"`
	// Result is the display text: a number, "NaN", "Invalid operation" or "Error: ...".
	Result string `json:"result"`
	// Value is nil when the result is NaN or an error.
	Value *float64 `json:"value"`
	Error string   `json:"error,omitempty"`
}

// NewEvalReport builds the report for res.
func NewEvalReport(op engine.Aggregate, start, end string, res engine.Result) EvalReport {
	report := EvalReport{
		Operation: string(op),
		Start:     start,
		End:       end,
		Result:    res.String(),
	}
	if res.Err != nil {
		report.Error = res.Err.Error()
		return report
	}
	if !math.IsNaN(res.Value) && !math.IsInf(res.Value, 0) {
		v := res.Value
		report.Value = &v
	}
	return report
}

// StyledCell is one painted cell.
type StyledCell struct {
	Cell  string       `json:"cell"`
	Style models.Style `json:"style"`
	CSS   string       `json:"css"`
}

// StyledCells lists resolved styles in row-major cell order.
func StyledCells(resolved map[engine.CellAddress]models.Style) []StyledCell {
	addrs := make([]engine.CellAddress, 0, len(resolved))
	for addr := range resolved {
		addrs = append(addrs, addr)
	}
	slices.SortFunc(addrs, func(a, b engine.CellAddress) int {
		return cmp.Or(cmp.Compare(a.Row(), b.Row()), cmp.Compare(a.Col(), b.Col()))
	})

	out := make([]StyledCell, len(addrs))
	for i, addr := range addrs {
		style := resolved[addr]
		out[i] = StyledCell{Cell: addr.String(), Style: style, CSS: style.CSS()}
	}
	return out
}
