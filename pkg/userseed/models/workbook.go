package models

// WorkbookData represents a read-only view of a user workbook.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// ActiveSheet is the name of the sheet the seeder writes to by default.
	ActiveSheet string `json:"active_sheet"`
	// Sheets maps sheet name to SheetData.
	Sheets map[string]SheetData `json:"sheets"`
	// Users are the records parsed from the active sheet.
	Users []Record `json:"users"`
}
