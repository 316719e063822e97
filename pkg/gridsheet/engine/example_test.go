package engine_test

import (
	"fmt"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/engine"
	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
)

func ExampleEvaluate() {
	grid := models.FromRows([][]models.Value{
		{models.Number(1), models.Number(2)},
		{models.Text("x"), models.Number(4)},
		{models.Number(5), models.Empty()},
	})

	fmt.Println(engine.Evaluate(grid, engine.Sum, "A1", "B2"))
	fmt.Println(engine.Evaluate(grid, engine.Sum, "A3", "A1"))
	fmt.Println(engine.Evaluate(grid, engine.Aggregate("MEDIAN"), "A1", "B2"))
	fmt.Println(engine.Evaluate(grid, engine.Sum, "C1", "B2"))
	// Output:
	// 7
	// 0
	// Invalid operation
	// Error: invalid cell label "C1": unknown column "C" (grid has 2 columns)
}

func ExampleApply() {
	grid := models.FromRows([][]models.Value{
		{models.Text("concatenate")},
	})

	out := engine.Apply(grid, engine.FindAndReplace, "cat", "dog")
	fmt.Println(out.Cell(0, 0))
	fmt.Println(grid.Cell(0, 0))
	// Output:
	// condogenate
	// concatenate
}

func ExampleResolveAll() {
	grid := models.NewGrid(3, 3)
	reg := engine.NewStyleRegistry()
	reg.Register("A1", "B2", models.Style{FontSizePx: 12, FontColor: "#000000", FontStyle: models.FontNormal})
	reg.Register("A1", "A1", models.Style{FontSizePx: 18, FontColor: "red", FontStyle: models.FontBold})

	resolved := engine.ResolveAll(grid, reg)
	for _, label := range []string{"A1", "B2", "C3"} {
		addr, _ := engine.Resolve(label, grid)
		style, ok := resolved[addr]
		fmt.Println(label, ok, style.FontSizePx, style.FontStyle)
	}
	// Output:
	// A1 true 18 bold
	// B2 true 12 normal
	// C3 false 0
}
