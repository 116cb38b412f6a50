package userseed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/userseed-go/pkg/userseed/models"
	"github.com/ukaji3/userseed-go/pkg/userseed/parser"
	"github.com/xuri/excelize/v2"
)

// Store is an open handle on a user workbook. Writes are buffered in memory
// until Save. A Store must be closed with Close.
type Store struct {
	path    string
	file    *excelize.File
	sheet   string
	created bool
}

// Open opens the workbook at path. If no file exists there, an empty
// workbook is created and persisted first.
func Open(path string) (*Store, error) {
	created := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createEmpty(path); err != nil {
			return nil, NewSeedError(path, "create", err)
		}
		created = true
		log.Info().Str("path", path).Msg("workbook created")
	} else if err != nil {
		return nil, NewSeedError(path, "stat", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewSeedError(path, "open", classifyOpenError(err))
	}

	return &Store{
		path:    path,
		file:    f,
		sheet:   activeSheet(f),
		created: created,
	}, nil
}

func createEmpty(path string) error {
	f := excelize.NewFile()
	defer f.Close()
	return f.SaveAs(path)
}

// classifyOpenError separates OS errors from unreadable workbook content.
func classifyOpenError(err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
}

func activeSheet(f *excelize.File) string {
	if name := f.GetSheetName(f.GetActiveSheetIndex()); name != "" {
		return name
	}
	if list := f.GetSheetList(); len(list) > 0 {
		return list[0]
	}
	return ""
}

// Path returns the workbook file path.
func (s *Store) Path() string { return s.path }

// Created reports whether Open created the workbook file.
func (s *Store) Created() bool { return s.created }

// Sheet returns the name of the sheet writes go to.
func (s *Store) Sheet() string { return s.sheet }

// UseSheet directs subsequent reads and writes to the named sheet,
// creating it if needed.
func (s *Store) UseSheet(name string) error {
	if s.file == nil {
		return ErrClosed
	}
	idx, err := s.file.GetSheetIndex(name)
	if err != nil {
		return NewSeedError(s.path, "sheet", err)
	}
	if idx == -1 {
		if _, err := s.file.NewSheet(name); err != nil {
			return NewSeedError(s.path, "sheet", err)
		}
		log.Debug().Str("path", s.path).Str("sheet", name).Msg("sheet created")
	}
	s.sheet = name
	return nil
}

// WriteHeader writes the header into row 1.
func (s *Store) WriteHeader(header models.Header) error {
	if s.file == nil {
		return ErrClosed
	}
	if err := parser.WriteRow(s.file, s.sheet, 1, header); err != nil {
		return NewSeedError(s.path, "write", err)
	}
	return nil
}

// WriteRecords writes records into consecutive rows starting at startRow.
// Existing cells in those rows are overwritten; other rows are untouched.
func (s *Store) WriteRecords(startRow int, records []models.Record) error {
	if s.file == nil {
		return ErrClosed
	}
	for i, rec := range records {
		if err := parser.WriteRow(s.file, s.sheet, startRow+i, rec.Values()); err != nil {
			return NewSeedError(s.path, "write", err)
		}
	}
	return nil
}

// Records reads the user records below the header row.
func (s *Store) Records() ([]models.Record, error) {
	if s.file == nil {
		return nil, ErrClosed
	}
	return parser.ReadRecords(s.file, s.sheet)
}

// Save persists the workbook to its path, overwriting the file.
func (s *Store) Save() error {
	if s.file == nil {
		return ErrClosed
	}
	if err := s.file.SaveAs(s.path); err != nil {
		return NewSeedError(s.path, "save", err)
	}
	return nil
}

// Close releases the workbook. Unsaved writes are discarded.
func (s *Store) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
