package parser

import (
	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/engine"
	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
	"github.com/xuri/excelize/v2"
)

// ApplyStyles sets the font of every painted cell from resolved. When
// baseline is non-nil, unpainted cells get the baseline font; otherwise they
// keep the workbook default. Identical styles share one excelize style ID.
func ApplyStyles(f *excelize.File, sheetName string, grid *models.Grid, resolved map[engine.CellAddress]models.Style, baseline *models.Style, header bool) error {
	ids := make(map[models.Style]int)
	var base models.Style
	if baseline != nil {
		base = *baseline
	}

	for addr := range engine.Cells(grid) {
		if _, painted := resolved[addr]; !painted && baseline == nil {
			continue
		}
		style := engine.StyleAt(resolved, addr, base)

		id, ok := ids[style]
		if !ok {
			var err error
			id, err = f.NewStyle(excelStyle(style))
			if err != nil {
				return err
			}
			ids[style] = id
		}

		cell, err := CellName(addr, header)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, id); err != nil {
			return err
		}
	}

	return nil
}

// excelStyle converts a grid style to an excelize font style.
func excelStyle(s models.Style) *excelize.Style {
	font := &excelize.Font{
		Size:   PixelsToPoints(s.FontSizePx),
		Bold:   s.Bold(),
		Italic: s.Italic(),
	}
	if hex, ok := s.HexColor(); ok {
		font.Color = hex
	}
	return &excelize.Style{Font: font}
}
