package models

// SheetData represents the contents of a single sheet.
type SheetData struct {
	// Rows contains non-empty rows with their cell values.
	Rows []CellRow `json:"rows,omitempty"`
	// DataRange is the bounding range of non-empty cells (e.g. "A1:C4").
	DataRange string `json:"data_range,omitempty"`
}
