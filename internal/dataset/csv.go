package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseCSV imports CSV text. The first non-empty row is the header; rows
// with only empty cells are skipped. Missing cells become "" and surplus
// cells are dropped with an issue attributed to the last field.
func ParseCSV(text string, limits Limits) (*Result, error) {
	records, err := readCSV(normalizeNewlines(strings.TrimPrefix(text, "\ufeff")))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}

	header, data := records[0], records[1:]
	b, err := newBuilder(header, len(data), limits)
	if err != nil {
		return nil, err
	}

	rows := make([]Record, 0, len(data))
	for i, cells := range data {
		rowNum := i + 2
		rec := make(Record, len(b.fields))
		for j, f := range b.fields {
			var v string
			if j < len(cells) {
				v = cells[j]
			}
			rec[f.Key] = b.cell(rowNum, f, v)
		}
		if len(cells) > len(b.fields) && len(b.fields) > 0 {
			b.issues = append(b.issues, Issue{
				Row:     rowNum,
				Field:   b.fields[len(b.fields)-1].Label,
				Message: fmt.Sprintf("row has %d values but only %d columns; extra values ignored", len(cells), len(b.fields)),
			})
		}
		rows = append(rows, rec)
	}

	return b.finish(rows, SourceCSV, len(text)), nil
}

// normalizeNewlines rewrites CRLF and lone CR line endings to LF, the only
// separator encoding/csv splits records on.
func normalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	return strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
}

// readCSV tokenizes text into trimmed rows, dropping rows whose cells are
// all empty. Quoted fields may span lines and use "" for a literal quote.
func readCSV(text string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	// Ragged rows are reconciled against the header by the caller.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	// A quote after ", " still opens a quoted field.
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}

		empty := true
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
			if rec[i] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}
