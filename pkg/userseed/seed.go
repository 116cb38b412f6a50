package userseed

import (
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/userseed-go/pkg/userseed/models"
	"golang.org/x/crypto/bcrypt"
)

// Result describes a completed seeding run.
type Result struct {
	// Path is the workbook file path.
	Path string `json:"path"`
	// SheetName is the sheet that was written.
	SheetName string `json:"sheet_name"`
	// Created is true when the workbook file did not exist before the run.
	Created bool `json:"created"`
	// RowsWritten counts the header row plus the record rows.
	RowsWritten int `json:"rows_written"`
}

// EnsureSeed makes sure the workbook at path exists and holds the default
// header and sample users.
func EnsureSeed(path string) error {
	opts := DefaultOptions()
	opts.Path = path
	_, err := Seed(opts)
	return err
}

// Seed writes the header to row 1 and the records to rows 2..N+1 of the
// workbook described by opts, creating the file when it does not exist.
// Rows outside that range are left untouched, so repeated runs do not
// duplicate data.
func Seed(opts Options) (*Result, error) {
	path := opts.path()

	records, err := preparePasswords(opts.records(), opts.PasswordMode, opts.bcryptCost())
	if err != nil {
		return nil, NewSeedError(path, "hash", err)
	}

	s, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	if opts.SheetName != "" {
		if err := s.UseSheet(opts.SheetName); err != nil {
			return nil, err
		}
	}

	if err := s.WriteHeader(opts.header()); err != nil {
		return nil, err
	}
	if err := s.WriteRecords(2, records); err != nil {
		return nil, err
	}
	if err := s.Save(); err != nil {
		return nil, err
	}

	log.Info().
		Str("path", path).
		Str("sheet", s.Sheet()).
		Int("records", len(records)).
		Str("password_mode", string(passwordModeOrDefault(opts.PasswordMode))).
		Msg("users seeded")

	return &Result{
		Path:        path,
		SheetName:   s.Sheet(),
		Created:     s.Created(),
		RowsWritten: 1 + len(records),
	}, nil
}

// preparePasswords returns a copy of records with passwords encoded for mode.
func preparePasswords(records []models.Record, mode PasswordMode, cost int) ([]models.Record, error) {
	switch passwordModeOrDefault(mode) {
	case PasswordPlaintext:
		return records, nil
	case PasswordBcrypt:
		out := make([]models.Record, len(records))
		for i, rec := range records {
			hash, err := bcrypt.GenerateFromPassword([]byte(rec.Password), cost)
			if err != nil {
				return nil, err
			}
			rec.Password = string(hash)
			out[i] = rec
		}
		return out, nil
	default:
		return nil, ErrUnsupportedPasswordMode
	}
}

func passwordModeOrDefault(mode PasswordMode) PasswordMode {
	if mode == "" {
		return PasswordPlaintext
	}
	return mode
}
