package userseed

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/userseed-go/pkg/userseed/models"
	"github.com/ukaji3/userseed-go/pkg/userseed/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect reads the workbook at path without modifying it.
func Inspect(path string) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, ErrFileNotFound
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, classifyOpenError(err)
	}
	defer f.Close()

	sheets := make(map[string]models.SheetData)
	for _, sheetName := range f.GetSheetList() {
		rows, err := parser.ExtractCells(f, sheetName)
		if err != nil {
			log.Warn().Err(err).Str("sheet", sheetName).Msg("skipping unreadable sheet")
			continue
		}
		dataRange, err := parser.DataRange(f, sheetName)
		if err != nil {
			dataRange = ""
		}
		sheets[sheetName] = models.SheetData{
			Rows:      rows,
			DataRange: dataRange,
		}
	}

	active := activeSheet(f)
	users, err := parser.ReadRecords(f, active)
	if err != nil {
		return nil, err
	}

	return &models.WorkbookData{
		BookName:    filepath.Base(path),
		ActiveSheet: active,
		Sheets:      sheets,
		Users:       users,
	}, nil
}
