package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDataRange(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	got, err := DataRange(f, "Sheet1")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, f.SetCellStr("Sheet1", "B2", "x"))
	require.NoError(t, f.SetCellStr("Sheet1", "D5", "y"))

	got, err = DataRange(f, "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, "B2:D5", got)
}

func TestDataRangeMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := DataRange(f, "Nope")
	assert.Error(t, err)
}

func TestFindDataBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", "", "c"},
		{"a"},
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	assert.Equal(t, []int{1, 2, 0, 2}, []int{minRow, maxRow, minCol, maxCol})

	minRow, _, _, _ = findDataBounds(nil)
	assert.Equal(t, -1, minRow)
}
