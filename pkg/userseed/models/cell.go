// Package models defines the data structures of the user workbook.
package models

// CellRow represents a single non-empty sheet row.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string, 1-based) to cell value.
	C map[string]interface{} `json:"c"`
}
