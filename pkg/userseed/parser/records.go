package parser

import (
	"github.com/ukaji3/userseed-go/pkg/userseed/models"
	"github.com/xuri/excelize/v2"
)

// WriteRow writes values as plain text into the given 1-based row,
// starting at column 1.
func WriteRow(f *excelize.File, sheetName string, row int, values []string) error {
	for i, v := range values {
		cellName, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheetName, cellName, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadRecords parses user records from the rows below the header row.
// Reading stops at the first row with no name, username or password.
func ReadRecords(f *excelize.File, sheetName string) ([]models.Record, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var records []models.Record
	for i := 1; i < len(rows); i++ {
		vals := make([]string, 3)
		copy(vals, rows[i])
		if vals[0] == "" && vals[1] == "" && vals[2] == "" {
			break
		}
		records = append(records, models.Record{
			Name:     vals[0],
			Username: vals[1],
			Password: vals[2],
		})
	}

	return records, nil
}
