package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
)

func TestColumnTotals(t *testing.T) {
	grid := gridOf(
		[]any{1, "x", nil},
		[]any{"2", nil, nil},
		[]any{nil, 3.5, "n/a"},
	)
	require.NoError(t, grid.SetCaptions([]string{"qty", "", "notes"}))

	got := ColumnTotals(grid)
	assert.Equal(t, []models.ColumnTotal{
		{Label: "A", Caption: "qty", Sum: 3, Count: 2},
		{Label: "B", Caption: "B", Sum: 3.5, Count: 1},
		{Label: "C", Caption: "notes", Sum: 0, Count: 0},
	}, got)
}

func TestColumnTotals_EmptyGrid(t *testing.T) {
	assert.Empty(t, ColumnTotals(models.NewGrid(0, 0)))
	assert.Empty(t, ColumnTotals(nil))
}
