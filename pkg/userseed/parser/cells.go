// Package parser provides excelize helpers for reading and writing user rows.
package parser

import (
	"strconv"

	"github.com/ukaji3/userseed-go/pkg/userseed/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts cell data from a sheet.
// It returns a slice of CellRow containing non-empty rows.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cellMap := make(map[string]interface{})

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			cellMap[strconv.Itoa(colIdx+1)] = typedValue(cellType, cellValue)
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{
				R: rowNum,
				C: cellMap,
			})
		}
	}

	return result, nil
}

// typedValue keeps text cells as strings so that numeric-looking
// usernames and passwords are not turned into numbers.
func typedValue(cellType excelize.CellType, s string) interface{} {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return s
	}
	return parseValue(s)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
