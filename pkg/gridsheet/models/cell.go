package models

// CellRow represents a single non-empty grid row for serialization.
type CellRow struct {
	// R is the row number (1-based, as used in cell labels).
	R int `json:"r"`
	// C maps column label to cell value.
	C map[string]interface{} `json:"c"`
}
