package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var ErrUnknownFormat = errors.New("Please enter the correct filetype")

// ParseFormat accepts the :filetype route parameter.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", ErrUnknownFormat
	}
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// Render turns flat records into a downloadable byte stream. Column order is
// the sorted key set of the first record, headers upper-cased. An empty
// record set renders an empty file rather than failing.
func Render(records []map[string]string, format Format) ([]byte, error) {
	keys := columnKeys(records)

	switch format {
	case FormatCSV:
		return renderCSV(records, keys)
	case FormatXLSX:
		return renderXLSX(records, keys)
	default:
		return nil, ErrUnknownFormat
	}
}

func columnKeys(records []map[string]string) []string {
	if len(records) == 0 {
		return nil
	}
	keys := make([]string, 0, len(records[0]))
	for key := range records[0] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func renderCSV(records []map[string]string, keys []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if len(keys) > 0 {
		header := make([]string, len(keys))
		for i, key := range keys {
			header[i] = strings.ToUpper(key)
		}
		if err := w.Write(header); err != nil {
			return nil, err
		}
	}

	for _, record := range records {
		row := make([]string, len(keys))
		for i, key := range keys {
			row[i] = record[key]
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderXLSX(records []map[string]string, keys []string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	if len(keys) > 0 {
		header := make([]any, len(keys))
		for i, key := range keys {
			header[i] = strings.ToUpper(key)
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return nil, err
		}
	}

	for i, record := range records {
		row := make([]any, len(keys))
		for j, key := range keys {
			row[j] = record[key]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
