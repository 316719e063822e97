package engine

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
)

func TestEvaluate_Count(t *testing.T) {
	tests := []struct {
		name string
		a1   any
		want float64
	}{
		{"number", 5, 1},
		{"numeric text", "42", 1},
		{"empty", nil, 0},
		{"text", "apple", 0},
	}

	for _, tt := range tests {
		grid := gridOf([]any{tt.a1, 7})
		res := Evaluate(grid, Count, "A1", "A1")
		require.True(t, res.OK(), "%s: %v", tt.name, res.Err)
		assert.Equal(t, tt.want, res.Value, tt.name)
	}
}

func TestEvaluate_MixedBlock(t *testing.T) {
	grid := gridOf(
		[]any{1, 2},
		[]any{"x", 4},
	)

	tests := []struct {
		op   Aggregate
		want float64
	}{
		{Sum, 7},
		{Average, 7.0 / 3.0},
		{Max, 4},
		{Min, 1},
		{Count, 3},
	}

	for _, tt := range tests {
		res := Evaluate(grid, tt.op, "A1", "B2")
		require.True(t, res.OK(), "%s: %v", tt.op, res.Err)
		assert.InDelta(t, tt.want, res.Value, 1e-12, string(tt.op))
	}
}

func TestEvaluate_NumericTextAndWhitespace(t *testing.T) {
	grid := gridOf(
		[]any{" 3 ", "1e2"},
		[]any{"-0.5", ""},
	)
	res := Evaluate(grid, Sum, "A1", "B2")
	require.True(t, res.OK())
	assert.Equal(t, 102.5, res.Value)
}

func TestEvaluate_ReversedRange(t *testing.T) {
	grid := gridOf(
		[]any{1, 10},
		[]any{2, 20},
		[]any{3, 30},
	)

	tests := []struct {
		op    Aggregate
		start string
		end   string
		want  float64
	}{
		{Sum, "A3", "A1", 0},
		{Count, "A3", "A1", 0},
		{Sum, "B1", "A3", 0},
		{Count, "B3", "A1", 0},
	}
	for _, tt := range tests {
		res := Evaluate(grid, tt.op, tt.start, tt.end)
		require.True(t, res.OK(), "%s %s:%s", tt.op, tt.start, tt.end)
		assert.Equal(t, tt.want, res.Value, "%s %s:%s", tt.op, tt.start, tt.end)
	}

	for _, op := range []Aggregate{Average, Max, Min} {
		res := Evaluate(grid, op, "A3", "A1")
		require.True(t, res.OK())
		assert.True(t, math.IsNaN(res.Value), "%s over reversed range = %v", op, res.Value)
		assert.Equal(t, "NaN", res.String())
	}
}

func TestEvaluate_NoNumbers(t *testing.T) {
	grid := gridOf([]any{"a", nil}, []any{"", "b"})

	assert.Equal(t, "0", Evaluate(grid, Sum, "A1", "B2").String())
	assert.Equal(t, "0", Evaluate(grid, Count, "A1", "B2").String())
	assert.Equal(t, "NaN", Evaluate(grid, Average, "A1", "B2").String())
	assert.Equal(t, "NaN", Evaluate(grid, Max, "A1", "B2").String())
	assert.Equal(t, "NaN", Evaluate(grid, Min, "A1", "B2").String())
}

func TestEvaluate_InvalidOperation(t *testing.T) {
	grid := gridOf([]any{1, 2})

	res := Evaluate(grid, Aggregate("MEDIAN"), "A1", "B1")
	assert.False(t, res.OK())
	assert.Equal(t, "Invalid operation", res.String())

	var opErr *OperationError
	require.True(t, errors.As(res.Err, &opErr))
	assert.Equal(t, "MEDIAN", opErr.Op)
	assert.Equal(t, "aggregate", opErr.Kind)
}

func TestEvaluate_AddressErrorBeforeOperation(t *testing.T) {
	grid := gridOf([]any{1, 2})

	res := Evaluate(grid, Aggregate("MEDIAN"), "Z1", "B1")
	assert.True(t, strings.HasPrefix(res.String(), "Error: "), res.String())

	var addrErr *AddressError
	assert.True(t, errors.As(res.Err, &addrErr))
}

func TestEvaluate_Errors(t *testing.T) {
	grid := gridOf([]any{1, 2}, []any{3, 4})

	tests := []struct {
		start, end string
	}{
		{"", "B2"},
		{"A1", ""},
		{"A1", "C1"},
		{"A3", "B2"},
		{"a1", "B2"},
		{"A0", "B2"},
	}
	for _, tt := range tests {
		res := Evaluate(grid, Sum, tt.start, tt.end)
		assert.False(t, res.OK(), "%q:%q", tt.start, tt.end)
		assert.True(t, math.IsNaN(res.Value))
		assert.True(t, strings.HasPrefix(res.String(), "Error: invalid cell label"), res.String())
	}

	res := Evaluate(nil, Sum, "A1", "A1")
	assert.Equal(t, `Error: invalid cell label "A1": no grid`, res.String())
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "7", Result{Value: 7}.String())
	assert.Equal(t, "2.5", Result{Value: 2.5}.String())
	assert.Equal(t, "-0.125", Result{Value: -0.125}.String())
	assert.Equal(t, "NaN", Result{Value: math.NaN()}.String())
	assert.Equal(t, "Error: boom", Result{Err: errors.New("boom")}.String())
}

func TestParseAggregate(t *testing.T) {
	for _, op := range Aggregates {
		got, ok := ParseAggregate(strings.ToLower(string(op)))
		assert.True(t, ok, op)
		assert.Equal(t, op, got)
	}
	_, ok := ParseAggregate("MEDIAN")
	assert.False(t, ok)
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		in   models.Value
		want float64
		ok   bool
	}{
		{models.Number(2.5), 2.5, true},
		{models.Number(math.NaN()), 0, false},
		{models.Text("12"), 12, true},
		{models.Text("  -7.25 "), -7.25, true},
		{models.Text("1e3"), 1000, true},
		{models.Text("inf"), math.Inf(1), true},
		{models.Text("nan"), 0, false},
		{models.Text("0x10"), 0, false},
		{models.Text("1_000"), 0, false},
		{models.Text("12abc"), 0, false},
		{models.Text("   "), 0, false},
		{models.Empty(), 0, false},
	}

	for _, tt := range tests {
		got, ok := Coerce(tt.in)
		assert.Equal(t, tt.ok, ok, "Coerce(%#v)", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "Coerce(%#v)", tt.in)
		}
	}
}
