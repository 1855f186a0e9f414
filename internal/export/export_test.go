package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("csv")
	require.NoError(t, err)
	require.Equal(t, FormatCSV, f)

	f, err = ParseFormat("XLSX")
	require.NoError(t, err)
	require.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRenderCSV(t *testing.T) {
	records := []map[string]string{
		{"name": "atlas", "price": "12.50"},
		{"name": "globe", "price": "7"},
	}

	data, err := Render(records, FormatCSV)
	require.NoError(t, err)
	require.Equal(t, "NAME,PRICE\natlas,12.50\nglobe,7\n", string(data))
}

func TestRenderCSVEmptyRecordSet(t *testing.T) {
	data, err := Render(nil, FormatCSV)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestRenderXLSX(t *testing.T) {
	records := []map[string]string{
		{"name": "atlas", "price": "12.50"},
	}

	data, err := Render(records, FormatXLSX)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	a1, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	require.Equal(t, "NAME", a1)

	b2, err := f.GetCellValue("Sheet1", "B2")
	require.NoError(t, err)
	require.Equal(t, "12.50", b2)
}

func TestRenderXLSXEmptyRecordSet(t *testing.T) {
	data, err := Render(nil, FormatXLSX)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestRenderMissingKeysAreEmpty(t *testing.T) {
	// heterogeneous records: columns come from the first record only
	records := []map[string]string{
		{"name": "atlas", "price": "1"},
		{"name": "globe", "extra": "ignored"},
	}

	data, err := Render(records, FormatCSV)
	require.NoError(t, err)
	require.Equal(t, "NAME,PRICE\natlas,1\nglobe,\n", string(data))
}
