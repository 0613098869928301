package flightdata

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
	"github.com/xuri/excelize/v2"
)

// loadJSONRecords reads a dataset stored as a top-level JSON array of
// raw records. Loose values survive decoding: a string price stays a
// string and absent optional fields stay nil.
func loadJSONRecords(path string) ([]schema.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	var records []schema.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse JSON dataset: %w", err)
	}
	return records, nil
}

// loadCSVRecords reads a header-mapped CSV dataset.
func loadCSVRecords(path string) ([]schema.RawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Rows may be shorter than the header
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV dataset: %w", err)
	}
	return recordsFromRows(rows), nil
}

// loadXLSXRecords reads the first sheet of an XLSX workbook with a
// header row, in the same shape as the CSV loader.
func loadXLSXRecords(path string) ([]schema.RawRecord, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return recordsFromRows(rows), nil
}

// recordsFromRows converts a header row plus data rows into raw records.
func recordsFromRows(rows [][]string) []schema.RawRecord {
	if len(rows) == 0 {
		return []schema.RawRecord{}
	}
	index := headerIndex(rows[0])
	records := make([]schema.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		records = append(records, recordFromRow(index, row))
	}
	return records
}

// headerIndex maps normalized column names to their positions.
// The first occurrence of a repeated name wins.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}
	return index
}

// cellAt returns the trimmed cell under the first matching column name,
// or empty when every candidate column is missing or the row is short.
func cellAt(index map[string]int, row []string, names ...string) string {
	for _, name := range names {
		pos, ok := index[name]
		if !ok || pos >= len(row) {
			continue
		}
		return strings.TrimSpace(row[pos])
	}
	return ""
}

// recordFromRow builds a raw record from one tabular row. Cells stay as
// loose as the wire allows: prices remain strings for the cleaning pass
// and unparsable optional cells are dropped rather than failing the row.
func recordFromRow(index map[string]int, row []string) schema.RawRecord {
	record := schema.RawRecord{
		Origin:      cellAt(index, row, "origin"),
		Destination: cellAt(index, row, "destination"),
		Date:        cellAt(index, row, "date"),
		Time:        cellAt(index, row, "time"),
		Airline:     cellAt(index, row, "airline"),
		Source:      cellAt(index, row, "source"),
	}
	if price := cellAt(index, row, "price"); price != "" {
		record.Price = price
	}
	if direct := cellAt(index, row, "direct"); direct != "" {
		if parsed, err := contract.ParseBoolString(direct); err == nil {
			record.Direct = &parsed
		}
	}
	// Older collectors labeled the column "duration" without the unit.
	if duration := cellAt(index, row, "duration_minutes", "duration"); duration != "" {
		if parsed, err := strconv.Atoi(duration); err == nil {
			record.Duration = &parsed
		}
	}
	if score := cellAt(index, row, "demand_score"); score != "" {
		if parsed, err := strconv.ParseFloat(score, 64); err == nil {
			record.DemandScore = &parsed
		}
	}
	return record
}

// isBlankRow reports whether every cell in a row is empty.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
