// Package ingest turns an uploaded payroll file into a roster record: it
// parses the tabular content, infers which column carries the monetary
// total, sums that column, and assembles the record.
package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/andinopay/nomina/internal/portal/domain"
	"github.com/andinopay/nomina/pkg/idx"
)

// ErrParse reports that the upload could not be read as a spreadsheet or CSV.
var ErrParse = errors.New("ingest: file is not a readable spreadsheet or CSV")

// MaxRows caps how many data rows a single upload may contribute. Real
// rosters are a few hundred lines; the cap guards against pathological files.
const MaxRows = 100_000

// amountHints are matched, in order, against each uppercased header when
// inferring the monetary-total column.
var amountHints = []string{"CLP", "MONTO", "TOTAL", "SUELDO"}

// amountFallbacks are tried per row when the inferred column is missing or
// empty for that row.
var amountFallbacks = []string{"CLP", "Monto", "MONTO", "Total", "TOTAL"}

// FromUpload runs the full pipeline and assembles a pending roster record
// for the uploading account. A file with zero data rows is not an error: it
// yields an empty record with a zero total.
func FromUpload(data []byte, filename string, uploader domain.Account) (domain.Roster, error) {
	rows, err := ParseRows(data, filename)
	if err != nil {
		return domain.Roster{}, err
	}

	return domain.Roster{
		ID:             idx.New().String(),
		Filename:       filename,
		Contractor:     uploader.Username,
		ContractorName: uploader.DisplayName,
		UploadedAt:     time.Now().UTC(),
		Status:         domain.StatusPending,
		TotalAmount:    Total(rows),
		RowCount:       len(rows),
		Rows:           rows,
	}, nil
}

// ParseRows dispatches on the filename: ".csv" (exact suffix) is parsed as
// delimited text with the first row as field headers; ".xls" as a legacy
// workbook; anything else as an xlsx workbook, first sheet only.
func ParseRows(data []byte, filename string) ([]domain.Row, error) {
	switch {
	case strings.HasSuffix(filename, ".csv"):
		return parseCSV(data)
	case strings.HasSuffix(strings.ToLower(filename), ".xls"):
		return parseXLS(data)
	default:
		return parseXLSX(data)
	}
}

func parseCSV(data []byte) ([]domain.Row, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // ragged rows are common in hand-edited exports

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(records) == 0 {
		return []domain.Row{}, nil
	}

	headers := records[0]
	rows := make([]domain.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(rows) >= MaxRows {
			break
		}

		var row domain.Row
		for i, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" {
				continue
			}
			var cell string
			if i < len(record) {
				cell = record[i]
			}
			row.Set(header, domain.StringValue(cell))
		}
		// Rows where every value is empty are dropped.
		if row.Empty() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseXLSX(data []byte) ([]domain.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer func() { _ = f.Close() }()

	// First sheet only.
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrParse)
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return rowsFromCells(cells), nil
}

func parseXLS(data []byte) ([]domain.Row, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if wb.NumSheets() == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrParse)
	}
	return rowsFromCells(wb.ReadAllCells(MaxRows)), nil
}

// rowsFromCells converts a cell grid to row records using the grid's own
// header row. Empty cells are omitted and numeric-looking cells become
// numbers, so workbook rows behave like the spreadsheet library's JSON view.
func rowsFromCells(cells [][]string) []domain.Row {
	if len(cells) == 0 {
		return []domain.Row{}
	}

	headers := cells[0]
	rows := make([]domain.Row, 0, len(cells)-1)
	for _, record := range cells[1:] {
		if len(rows) >= MaxRows {
			break
		}

		var row domain.Row
		for i, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" || i >= len(record) {
				continue
			}
			raw := record[i]
			if raw == "" {
				continue
			}
			if f, err := strconv.ParseFloat(raw, 64); err == nil {
				row.Set(header, domain.NumberValue(f))
			} else {
				row.Set(header, domain.StringValue(raw))
			}
		}
		if row.Empty() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// InferAmountColumn picks the monetary-total column: the first header, in
// original column order, whose uppercased form contains any known hint.
// Returns "" when no header matches.
func InferAmountColumn(headers []string) string {
	for _, header := range headers {
		upper := strings.ToUpper(header)
		for _, hint := range amountHints {
			if strings.Contains(upper, hint) {
				return header
			}
		}
	}
	return ""
}

// Total sums the per-row amounts across all rows. The amount column is
// inferred once from the first row's headers and used uniformly.
func Total(rows []domain.Row) float64 {
	if len(rows) == 0 {
		return 0
	}

	column := InferAmountColumn(rows[0].Keys())

	var sum float64
	for _, row := range rows {
		sum += rowAmount(row, column)
	}
	return sum
}

// rowAmount extracts one row's amount: the inferred column first, then the
// literal fallback fields, skipping empty values. Anything unparseable
// contributes 0 — a bad cell never aborts the sum.
func rowAmount(row domain.Row, column string) float64 {
	candidates := make([]string, 0, 1+len(amountFallbacks))
	if column != "" {
		candidates = append(candidates, column)
	}
	candidates = append(candidates, amountFallbacks...)

	for _, name := range candidates {
		v, ok := row.Get(name)
		if !ok || v.Falsy() {
			continue
		}
		return amountValue(v)
	}
	return 0
}

func amountValue(v domain.Value) float64 {
	switch v.Kind {
	case domain.KindNumber:
		return v.Num
	case domain.KindString:
		return ParseCurrency(v.Str)
	default:
		return 0
	}
}

// ParseCurrency normalizes a Chilean-formatted currency string: "$" and "."
// (thousands separators) are stripped and "," becomes the decimal point.
// Unparseable input yields 0.
func ParseCurrency(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("$", "", ".", "").Replace(s)
	s = strings.ReplaceAll(s, ",", ".")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
