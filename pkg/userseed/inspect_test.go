package userseed

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/userseed-go/pkg/userseed/models"
)

func TestInspectSeededWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.xlsx")
	require.NoError(t, EnsureSeed(path))

	wb, err := Inspect(path)
	require.NoError(t, err)

	assert.Equal(t, "users.xlsx", wb.BookName)
	assert.Equal(t, "Sheet1", wb.ActiveSheet)
	assert.Equal(t, models.DefaultRecords(), wb.Users)

	sheet, ok := wb.Sheets["Sheet1"]
	require.True(t, ok)
	assert.Equal(t, "A1:C4", sheet.DataRange)
	require.Len(t, sheet.Rows, 4)
	assert.Equal(t, "bjohnson", sheet.Rows[2].C["2"])
}

func TestInspectMissingFile(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}
