// Package models defines the grid data structures shared by the engine and the workbook codec.
package models

import (
	"math"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindEmpty is a cell with no content.
	KindEmpty Kind = iota
	// KindText is a cell holding a string.
	KindText
	// KindNumber is a cell holding a float64.
	KindNumber
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "empty"
	}
}

// Value is a single cell value: Empty, Text or Number.
type Value struct {
	// Kind is the variant tag.
	Kind Kind `json:"kind"`
	// Text is the content of a KindText value.
	Text string `json:"text,omitempty"`
	// Number is the content of a KindNumber value.
	Number float64 `json:"number,omitempty"`
}

// Empty returns the empty cell value.
func Empty() Value {
	return Value{}
}

// Text returns a text value. The empty string is the empty cell.
func Text(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{Kind: KindText, Text: s}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Number: f}
}

// IsEmpty reports whether v holds no content.
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmpty
}

// Equal reports whether v and o hold the same variant and content.
// Numbers compare by value, so 0 and -0 are equal.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindText:
		return v.Text == o.Text
	case KindNumber:
		return v.Number == o.Number || (math.IsNaN(v.Number) && math.IsNaN(o.Number))
	default:
		return true
	}
}

// String renders the value the way a grid displays it.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// Interface returns nil, a string or a float64 for serialization.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return v.Number
	default:
		return nil
	}
}
