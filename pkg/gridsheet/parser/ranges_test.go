package parser

import (
	"errors"
	"testing"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
	"github.com/xuri/excelize/v2"
)

func TestParseRangeReference(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{"A1:B3", "", "A1", "B3", false},
		{"$A$1:$B$3", "", "A1", "B3", false},
		{"Sheet1!A1:B3", "Sheet1", "A1", "B3", false},
		{"'My Sheet'!A1:B3", "My Sheet", "A1", "B3", false},
		{"'Bob''s'!C2:C9", "Bob's", "C2", "C9", false},
		{"B2", "", "B2", "B2", false},
		{" C1 : A1 ", "", "C1", "A1", false},
		{"b3:c4", "", "b3", "c4", false},
		{"", "", "", "", true},
		{"A1:", "", "", "", true},
		{"A1:B2:C3", "", "", "", true},
	}

	for _, tt := range tests {
		sheet, start, end, err := ParseRangeReference(tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRangeReference(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if sheet != tt.wantSheet || start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("ParseRangeReference(%q) = (%q, %q, %q), expected (%q, %q, %q)",
				tt.ref, sheet, start, end, tt.wantSheet, tt.wantStart, tt.wantEnd)
		}
	}

	if _, _, _, err := ParseRangeReference("   "); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("Expected ErrEmptyRange, got %v", err)
	}
}

func TestUsedRange(t *testing.T) {
	grid := models.NewGrid(6, 5)
	grid.Set(1, 1, models.Text("x"))
	grid.Set(3, 3, models.Number(2))
	grid.Set(2, 2, models.Number(0))

	area, nonEmpty, ok := UsedRange(grid)
	if !ok {
		t.Fatalf("Expected used range")
	}
	if got := area.String(); got != "B2:D4" {
		t.Errorf("UsedRange = %s, expected B2:D4", got)
	}
	if nonEmpty != 3 {
		t.Errorf("Expected 3 non-empty cells, got %d", nonEmpty)
	}

	if _, _, ok := UsedRange(models.NewGrid(3, 3)); ok {
		t.Errorf("Expected no used range for a blank grid")
	}
}

func TestAddTotalsChart(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	totals := []models.ColumnTotal{
		{Label: "A", Caption: "qty", Sum: 3, Count: 2},
		{Label: "B", Caption: "B", Sum: 7.5, Count: 1},
	}
	if err := AddTotalsChart(f, "Totals", totals, models.ChartBar); err != nil {
		t.Fatalf("AddTotalsChart failed: %v", err)
	}

	idx, err := f.GetSheetIndex("Totals")
	if err != nil || idx < 0 {
		t.Fatalf("Expected Totals sheet, index %d, err %v", idx, err)
	}

	for cell, want := range map[string]string{
		"A1": "Column",
		"A2": "SUM",
		"B1": "qty",
		"B2": "3",
		"C1": "B",
		"C2": "7.5",
	} {
		got, err := f.GetCellValue("Totals", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", cell, err)
		}
		if got != want {
			t.Errorf("%s = %q, expected %q", cell, got, want)
		}
	}
}

func TestAddTotalsChart_None(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	totals := []models.ColumnTotal{{Label: "A", Caption: "A", Sum: 1, Count: 1}}
	if err := AddTotalsChart(f, "Totals", totals, models.ChartNone); err != nil {
		t.Fatalf("AddTotalsChart failed: %v", err)
	}
	if err := AddTotalsChart(f, "Totals", nil, models.ChartLine); err != nil {
		t.Fatalf("AddTotalsChart failed: %v", err)
	}
	if len(f.GetSheetList()) != 1 {
		t.Errorf("Expected no chart sheet, got %v", f.GetSheetList())
	}

	if err := AddTotalsChart(f, "Totals", totals, models.ChartKind("pie")); err == nil {
		t.Errorf("Expected error for unsupported chart kind")
	}
}

func TestRowReference(t *testing.T) {
	got, err := rowReference("Totals", 2, 2, 4)
	if err != nil {
		t.Fatalf("rowReference failed: %v", err)
	}
	if got != "'Totals'!$B$2:$D$2" {
		t.Errorf("rowReference = %q", got)
	}
}
