package engine

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
)

// Aggregate is an aggregate operation over a range.
type Aggregate string

const (
	Sum     Aggregate = "SUM"
	Average Aggregate = "AVERAGE"
	Max     Aggregate = "MAX"
	Min     Aggregate = "MIN"
	Count   Aggregate = "COUNT"
)

// Aggregates lists the supported aggregate operations in display order.
var Aggregates = []Aggregate{Sum, Average, Max, Min, Count}

var aggregateFuncs = map[Aggregate]func([]float64) float64{
	Sum:     sum,
	Average: mean,
	Max:     maxOf,
	Min:     minOf,
	Count:   func(xs []float64) float64 { return float64(len(xs)) },
}

// ParseAggregate parses an aggregate name, ignoring case.
func ParseAggregate(s string) (Aggregate, bool) {
	op := Aggregate(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := aggregateFuncs[op]
	return op, ok
}

// Result is the outcome of Evaluate: a number, or an error reported as data.
type Result struct {
	// Value is the aggregate. It is NaN when Err is set.
	Value float64
	// Err is an *AddressError, an *OperationError or a recovered fault.
	Err error
}

// OK reports whether the evaluation produced a value.
func (r Result) OK() bool {
	return r.Err == nil
}

// String renders the result for display next to the control that triggered it.
// An unknown operation renders as "Invalid operation"; other failures as "Error: ...".
func (r Result) String() string {
	if r.Err != nil {
		var opErr *OperationError
		if errors.As(r.Err, &opErr) {
			return "Invalid operation"
		}
		return "Error: " + r.Err.Error()
	}
	if math.IsNaN(r.Value) {
		return "NaN"
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

func errorResult(err error) Result {
	return Result{Value: math.NaN(), Err: err}
}

// Evaluate computes op over the cells from start to end inclusive. Values that
// do not coerce to numbers are left out of the population. A reversed range is
// empty: SUM and COUNT give 0, AVERAGE, MAX and MIN give NaN.
//
// Evaluate never panics; every failure comes back in Result.Err.
func Evaluate(grid *models.Grid, op Aggregate, start, end string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = errorResult(fmt.Errorf("evaluate %s %s:%s: %v", op, start, end, r))
		}
	}()

	rng, err := ResolveRange(start, end, grid)
	if err != nil {
		return errorResult(err)
	}

	fn, ok := aggregateFuncs[op]
	if !ok {
		return errorResult(&OperationError{Kind: "aggregate", Op: string(op)})
	}

	return Result{Value: fn(Numbers(grid, rng))}
}

// Numbers returns the coercible values of rng in iteration order.
func Numbers(grid *models.Grid, rng Range) []float64 {
	var out []float64
	for addr := range rng.Cells() {
		if f, ok := Coerce(grid.Cell(addr.row, addr.col)); ok {
			out = append(out, f)
		}
	}
	return out
}

func sum(xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return sum(xs) / float64(len(xs))
}

func maxOf(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return slices.Max(xs)
}

func minOf(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return slices.Min(xs)
}
