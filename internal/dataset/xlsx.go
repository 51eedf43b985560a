package dataset

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// emptyHeader names header cells that carry no text.
const emptyHeader = "__EMPTY"

// ParseXLSX imports the first sheet of a workbook. Cells are read as their
// formatted text, blank cells default to "" and blank rows are skipped.
// The sheet is converted to row objects and handled like JSON input.
func ParseXLSX(data []byte, limits Limits) (*Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpreadsheet, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpreadsheet, err)
	}

	headerIdx := -1
	for i, r := range rows {
		if !blankRow(r) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, ErrEmptySheet
	}

	headers := sheetHeaders(rows[headerIdx])
	var records []rawRecord
	for _, r := range rows[headerIdx+1:] {
		if blankRow(r) {
			continue
		}
		rec := rawRecord{keys: headers, values: make(map[string]any, len(headers))}
		for j, h := range headers {
			v := ""
			if j < len(r) {
				v = r[j]
			}
			rec.values[h] = v
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		// Header-only sheets still describe the field set.
		b, err := newBuilder(headers, 0, limits)
		if err != nil {
			return nil, err
		}
		return b.finish([]Record{}, SourceXLSX, len(data)), nil
	}
	return buildFromRecords(records, limits, SourceXLSX, len(data))
}

// sheetHeaders names columns from the header row. Blank headers become
// __EMPTY and repeated names gain _1, _2, ... so object keys stay unique.
func sheetHeaders(row []string) []string {
	counts := make(map[string]int, len(row))
	headers := make([]string, len(row))
	for i, cell := range row {
		base := cell
		if strings.TrimSpace(base) == "" {
			base = emptyHeader
		}
		name := base
		if n := counts[base]; n > 0 {
			name = base + "_" + strconv.Itoa(n)
		}
		counts[base]++
		headers[i] = name
	}
	return headers
}

func blankRow(r []string) bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
