package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/kantanpro/kantanpro/internal/models"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

type Encoding string

const (
	EncodingUTF8     Encoding = "utf8"
	EncodingShiftJIS Encoding = "sjis"
)

const (
	contentTypeXLSX    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV     = "text/csv; charset=utf-8"
	contentTypeCSVSJIS = "text/csv; charset=Shift_JIS"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseFormat defaults to xlsx.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	}
	return "", srvErrors.NewValidationError("format", "unsupported export format %q", s)
}

// ParseEncoding defaults to utf8. It only matters for CSV.
func ParseEncoding(s string) (Encoding, error) {
	switch Encoding(s) {
	case "", EncodingUTF8:
		return EncodingUTF8, nil
	case EncodingShiftJIS, "shift_jis":
		return EncodingShiftJIS, nil
	}
	return "", srvErrors.NewValidationError("encoding", "unsupported encoding %q", s)
}

// Table is a report flattened to a header and rows of cell values.
type Table struct {
	Name   string
	Header []string
	Rows   [][]any
}

// Records returns the rows as text, the way they appear in a csv file.
func (t Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = text(v)
		}
		records = append(records, record)
	}
	return records
}

// File is a rendered export ready to be downloaded.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

func Render(t Table, format Format, enc Encoding) (*File, error) {
	switch format {
	case FormatXLSX:
		data, err := renderXLSX(t)
		if err != nil {
			return nil, err
		}
		return &File{Name: t.Name + ".xlsx", ContentType: contentTypeXLSX, Data: data}, nil
	case FormatCSV:
		data, err := renderCSV(t, enc)
		if err != nil {
			return nil, err
		}
		contentType := contentTypeCSV
		if enc == EncodingShiftJIS {
			contentType = contentTypeCSVSJIS
		}
		return &File{Name: t.Name + ".csv", ContentType: contentType, Data: data}, nil
	}
	return nil, srvErrors.NewValidationError("format", "unsupported export format %q", format)
}

func renderXLSX(t Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if len(t.Header) > 0 {
		last, err := excelize.CoordinatesToCellName(len(t.Header), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = xlsxValue(v)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func renderCSV(t Table, enc Encoding) ([]byte, error) {
	var buf bytes.Buffer

	var w *csv.Writer
	var sjis *transform.Writer
	if enc == EncodingShiftJIS {
		sjis = transform.NewWriter(&buf, japanese.ShiftJIS.NewEncoder())
		w = csv.NewWriter(sjis)
	} else {
		buf.Write(utf8BOM)
		w = csv.NewWriter(&buf)
	}
	w.UseCRLF = true

	if err := w.Write(t.Header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for _, record := range t.Records() {
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode csv: %w", err)
	}
	if sjis != nil {
		if err := sjis.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode csv as Shift_JIS: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// xlsxValue keeps numbers numeric in the workbook.
func xlsxValue(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.InexactFloat64()
	case decimal.NullDecimal:
		if !x.Valid {
			return nil
		}
		return x.Decimal.InexactFloat64()
	case models.Date:
		return x.String()
	case models.OrderStatus:
		return x.String()
	}
	return v
}

func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case decimal.Decimal:
		return x.String()
	case decimal.NullDecimal:
		if !x.Valid {
			return ""
		}
		return x.Decimal.String()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
