package dataset

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// builder accumulates fields, issues and rows shared by every import format.
type builder struct {
	limits  Limits
	fields  []Field
	headers []HeaderMapping
	issues  []Issue
}

// newBuilder validates table dimensions and derives fields from raw headers.
// Limits are enforced here, before any row is processed.
func newBuilder(rawHeaders []string, rowCount int, limits Limits) (*builder, error) {
	limits = limits.withDefaults()

	if len(rawHeaders) > limits.MaxColumns {
		return nil, fmt.Errorf("%w: %d columns (max %d)", ErrTooManyColumns, len(rawHeaders), limits.MaxColumns)
	}
	if rowCount > limits.MaxRows {
		return nil, fmt.Errorf("%w: %d rows (max %d)", ErrTooManyRows, rowCount, limits.MaxRows)
	}

	b := &builder{limits: limits}

	truncated := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		cut, didCut := truncateRunes(h, limits.MaxHeaderLength)
		if didCut {
			b.issues = append(b.issues, Issue{
				Row:     1,
				Field:   strings.TrimSpace(cut),
				Message: fmt.Sprintf("header truncated to %d characters", limits.MaxHeaderLength),
			})
		}
		truncated[i] = cut
	}

	for i, m := range UniqueKeys(truncated) {
		label := strings.TrimSpace(truncated[i])
		if label == "" {
			label = m.Key
		}
		b.fields = append(b.fields, Field{
			Key:         m.Key,
			Label:       label,
			Type:        TypeString,
			SourceLabel: rawHeaders[i],
		})
		b.headers = append(b.headers, HeaderMapping{Original: rawHeaders[i], Key: m.Key})
	}

	return b, nil
}

// cell sanitizes a value and truncates oversized strings, recording one
// issue per truncated cell.
func (b *builder) cell(row int, f Field, v any) any {
	val := SanitizeValue(v)
	s, ok := val.(string)
	if !ok {
		return val
	}
	cut, didCut := truncateRunes(s, b.limits.MaxCellLength)
	if didCut {
		b.issues = append(b.issues, Issue{
			Row:     row,
			Field:   f.Label,
			Message: fmt.Sprintf("value truncated to %d characters", b.limits.MaxCellLength),
		})
	}
	return cut
}

// finish infers field types and assembles the result.
func (b *builder) finish(rows []Record, sourceType SourceType, size int) *Result {
	for i := range b.fields {
		values := make([]any, 0, min(len(rows), sampleSize))
		for _, r := range rows {
			if len(values) == sampleSize {
				break
			}
			values = append(values, r[b.fields[i].Key])
		}
		b.fields[i].Type = InferType(values)
	}

	return &Result{
		Dataset: &Dataset{
			Fields: b.fields,
			Rows:   rows,
			SourceMeta: SourceMeta{
				ID:         uuid.NewString(),
				Type:       sourceType,
				Size:       int64(size),
				ImportedAt: time.Now().UTC(),
			},
		},
		Issues:  b.issues,
		Headers: b.headers,
	}
}
