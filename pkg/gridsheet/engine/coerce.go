package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
)

// Coerce converts a cell value to a number. The boolean is false when the
// value is missing from numeric aggregates: empty cells, text that is not a
// decimal number, and NaN.
func Coerce(v models.Value) (float64, bool) {
	switch v.Kind {
	case models.KindNumber:
		if math.IsNaN(v.Number) {
			return 0, false
		}
		return v.Number, true
	case models.KindText:
		return parseNumber(v.Text)
	default:
		return 0, false
	}
}

// parseNumber parses decimal and exponent forms. Hex floats and digit
// separators are not numbers in a grid.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX_pP") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
