// Package userseed seeds a spreadsheet-backed user store.
package userseed

import (
	"github.com/ukaji3/userseed-go/pkg/userseed/models"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPath is the workbook written when no path is configured.
const DefaultPath = "users.xlsx"

// PasswordMode controls how the password column is written.
type PasswordMode string

const (
	// PasswordPlaintext writes passwords exactly as given.
	PasswordPlaintext PasswordMode = "plaintext"
	// PasswordBcrypt writes a bcrypt hash of each password.
	PasswordBcrypt PasswordMode = "bcrypt"
)

// Options configures seeding behavior.
type Options struct {
	// Path is the workbook file path.
	Path string
	// SheetName selects the sheet to write. Empty means the active sheet.
	// A named sheet that does not exist is created.
	SheetName string
	// Header is written to row 1. Nil means models.DefaultHeader().
	Header models.Header
	// Records are written from row 2 in order. Nil means models.DefaultRecords().
	Records []models.Record
	// PasswordMode selects plaintext or bcrypt password storage.
	PasswordMode PasswordMode
	// BcryptCost is the bcrypt work factor. Zero means bcrypt.DefaultCost.
	BcryptCost int
}

// DefaultOptions returns options that reproduce the sample user workbook.
func DefaultOptions() Options {
	return Options{
		Path:         DefaultPath,
		Header:       models.DefaultHeader(),
		Records:      models.DefaultRecords(),
		PasswordMode: PasswordPlaintext,
		BcryptCost:   bcrypt.DefaultCost,
	}
}

// ParsePasswordMode converts a mode name to a PasswordMode.
func ParsePasswordMode(s string) (PasswordMode, error) {
	switch PasswordMode(s) {
	case PasswordPlaintext, "":
		return PasswordPlaintext, nil
	case PasswordBcrypt:
		return PasswordBcrypt, nil
	default:
		return "", ErrUnsupportedPasswordMode
	}
}

func (o Options) header() models.Header {
	if o.Header != nil {
		return o.Header
	}
	return models.DefaultHeader()
}

func (o Options) records() []models.Record {
	if o.Records != nil {
		return o.Records
	}
	return models.DefaultRecords()
}

func (o Options) path() string {
	if o.Path != "" {
		return o.Path
	}
	return DefaultPath
}

func (o Options) bcryptCost() int {
	if o.BcryptCost != 0 {
		return o.BcryptCost
	}
	return bcrypt.DefaultCost
}
