package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// rawRecord is a decoded object that remembers key order.
type rawRecord struct {
	keys   []string
	values map[string]any
}

// ParseJSON imports a JSON array of objects. The header set is the union of
// object keys in first-seen order. Each field value is looked up by source
// label, then label, then key; the first non-null hit wins.
func ParseJSON(data []byte, limits Limits) (*Result, error) {
	records, err := decodeRecords(data)
	if err != nil {
		return nil, err
	}
	return buildFromRecords(records, limits, SourceJSON, len(data))
}

// buildFromRecords is the shared object-row path for JSON and XLSX input.
func buildFromRecords(records []rawRecord, limits Limits, sourceType SourceType, size int) (*Result, error) {
	var headers []string
	seen := make(map[string]bool)
	for _, r := range records {
		for _, k := range r.keys {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
	}

	b, err := newBuilder(headers, len(records), limits)
	if err != nil {
		return nil, err
	}

	rows := make([]Record, 0, len(records))
	for i, r := range records {
		rowNum := i + 2
		rec := make(Record, len(b.fields))
		for _, f := range b.fields {
			rec[f.Key] = b.cell(rowNum, f, lookupField(r.values, f))
		}
		rows = append(rows, rec)
	}

	return b.finish(rows, sourceType, size), nil
}

// lookupField tries the source label, the label and the key in that order.
func lookupField(values map[string]any, f Field) any {
	for _, name := range []string{f.SourceLabel, f.Label, f.Key} {
		if v, ok := values[name]; ok && v != nil {
			return v
		}
	}
	return ""
}

// decodeRecords reads a top-level array of objects, preserving key order.
func decodeRecords(data []byte) ([]rawRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNotArray
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, ErrNotArray
	}

	var records []rawRecord
	for i := 0; dec.More(); i++ {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		rec, ok, err := decodeObject(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: record at index %d: %v", ErrInvalidJSON, i, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: record at index %d", ErrNotObject, i)
		}
		records = append(records, rec)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyArray
	}
	return records, nil
}

// decodeObject decodes raw as an object. ok is false when raw is valid JSON
// but not an object.
func decodeObject(raw json.RawMessage) (rec rawRecord, ok bool, err error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return rawRecord{}, false, err
	}
	if d, isDelim := tok.(json.Delim); !isDelim || d != '{' {
		return rawRecord{}, false, nil
	}

	rec.values = make(map[string]any)
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return rawRecord{}, false, err
		}
		key, _ := kt.(string)

		var v any
		if err := dec.Decode(&v); err != nil {
			return rawRecord{}, false, err
		}
		if _, dup := rec.values[key]; !dup {
			rec.keys = append(rec.keys, key)
		}
		rec.values[key] = v
	}
	return rec, true, nil
}
