// Package importer turns uploaded tabular files (CSV or Excel) into
// validated income records. File-level failures abort the whole import;
// row-level failures are collected and the remaining rows keep going.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/psatpute/HOA-OPs-AI/models"
)

// MaxRows caps the number of data rows a single import may carry.
const MaxRows = 1000

// sourceAliases maps common spreadsheet spellings to canonical income
// sources. Lookup is lowercase; anything unmatched becomes "Other".
var sourceAliases = map[string]string{
	"dues":               "Dues",
	"hoa dues":           "Dues",
	"assessment":         "Assessment",
	"special assessment": "Assessment",
	"fine":               "Fine",
	"fines":              "Fine",
	"violation":          "Fine",
	"interest":           "Interest",
	"bank interest":      "Interest",
	"other":              "Other",
}

// dateLayouts are tried in order when normalizing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// Parse reads the file and returns the valid records plus any errors. The
// extension selects the reader; an unsupported extension is a file-level
// error (row 0) with no rows processed.
func Parse(content []byte, filename string) ([]models.IncomeCreate, []models.RowError) {
	var errs []models.RowError

	var rows [][]string
	var err error
	switch {
	case strings.HasSuffix(filename, ".csv"):
		rows, err = readCSV(content)
	case strings.HasSuffix(filename, ".xlsx"), strings.HasSuffix(filename, ".xls"):
		rows, err = readExcel(content)
	default:
		return nil, []models.RowError{{Row: 0, Error: "Unsupported file format. Use CSV or Excel files."}}
	}
	if err != nil {
		return nil, []models.RowError{{Row: 0, Error: fmt.Sprintf("Error reading file: %v", err)}}
	}
	if len(rows) == 0 {
		return nil, []models.RowError{{Row: 0, Error: "File is empty"}}
	}

	columns := headerIndex(rows[0])
	for _, required := range []string{"date", "amount", "description"} {
		if _, ok := columns[required]; !ok {
			return nil, []models.RowError{{Row: 0, Error: fmt.Sprintf("Missing required column: %s", required)}}
		}
	}
	_, hasSource := columns["source"]
	_, hasCategory := columns["category"]
	if !hasSource && !hasCategory {
		return nil, []models.RowError{{Row: 0, Error: "File must have either 'source' or 'category' column"}}
	}

	dataRows := rows[1:]
	if len(dataRows) > MaxRows {
		return nil, []models.RowError{{Row: 0, Error: fmt.Sprintf("File exceeds maximum of %d rows", MaxRows)}}
	}

	var valid []models.IncomeCreate
	for i, row := range dataRows {
		// Row numbers are 1-based including the header, so the first
		// data row is row 2.
		rowNum := i + 2

		record, rowErr := parseRow(row, columns, hasSource)
		if rowErr != "" {
			errs = append(errs, models.RowError{Row: rowNum, Error: rowErr})
			continue
		}
		valid = append(valid, record)
	}

	return valid, errs
}

func parseRow(row []string, columns map[string]int, preferSource bool) (models.IncomeCreate, string) {
	amountStr := cell(row, columns["amount"])
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	if err != nil {
		return models.IncomeCreate{}, fmt.Sprintf("Invalid amount: %q", amountStr)
	}
	if amount <= 0 || amount != amount { // reject non-positive and NaN
		return models.IncomeCreate{}, "Amount must be greater than 0"
	}

	var rawSource string
	if preferSource {
		rawSource = cell(row, columns["source"])
	} else {
		rawSource = cell(row, columns["category"])
	}
	source := NormalizeSource(rawSource)

	date, ok := NormalizeDate(cell(row, columns["date"]))
	if !ok {
		return models.IncomeCreate{}, fmt.Sprintf("Invalid date: %q", cell(row, columns["date"]))
	}

	description := strings.TrimSpace(cell(row, columns["description"]))
	if description == "" || description == "nan" {
		return models.IncomeCreate{}, "Description is required"
	}

	return models.IncomeCreate{
		Date:        date,
		Amount:      amount,
		Source:      source,
		Description: description,
	}, ""
}

// NormalizeSource maps a raw source/category cell to a canonical income
// source. Unrecognized values, including empty ones, become "Other".
func NormalizeSource(raw string) string {
	trimmed := strings.TrimSpace(raw)
	for _, allowed := range models.IncomeSources {
		if trimmed == allowed {
			return allowed
		}
	}
	if mapped, ok := sourceAliases[strings.ToLower(trimmed)]; ok {
		return mapped
	}
	return "Other"
}

// NormalizeDate parses a date cell permissively and reformats it YYYY-MM-DD.
func NormalizeDate(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.Format("2006-01-02"), true
		}
	}
	return "", false
}

func readCSV(content []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

func readExcel(content []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return columns
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
