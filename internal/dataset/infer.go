package dataset

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// sampleSize caps how many values InferType looks at.
const sampleSize = 20

var (
	isoDatePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	currencyPattern = regexp.MustCompile(`^\$?\s?-?[0-9]+(?:,[0-9]{3})*(?:\.[0-9]{2})?$`)
)

// dateLayouts are the non-ISO layouts accepted as dates.
var dateLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon, 02 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
}

// InferType votes over up to 20 non-nil values and returns the plurality
// type. Ties resolve in the order string, number, date, boolean, currency.
// An empty sample yields TypeString.
func InferType(values []any) FieldType {
	votes := make(map[FieldType]int, len(fieldTypeOrder))
	sampled := 0
	for _, v := range values {
		if v == nil {
			continue
		}
		votes[classify(v)]++
		sampled++
		if sampled == sampleSize {
			break
		}
	}
	if sampled == 0 {
		return TypeString
	}

	best := TypeString
	for _, t := range fieldTypeOrder {
		if votes[t] > votes[best] {
			best = t
		}
	}
	return best
}

// classify assigns a single value to a FieldType.
func classify(v any) FieldType {
	switch x := v.(type) {
	case float64:
		if isFinite(x) {
			return TypeNumber
		}
		return TypeString
	case float32:
		if isFinite(float64(x)) {
			return TypeNumber
		}
		return TypeString
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TypeNumber
	case json.Number:
		return classifyString(x.String())
	case bool:
		return TypeBoolean
	case time.Time:
		return TypeDate
	case string:
		return classifyString(x)
	default:
		return TypeString
	}
}

func classifyString(s string) FieldType {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return TypeString
	}
	if isNumeric(trimmed) {
		return TypeNumber
	}
	if strings.EqualFold(trimmed, "true") || strings.EqualFold(trimmed, "false") {
		return TypeBoolean
	}
	if IsDate(trimmed) {
		return TypeDate
	}
	if currencyPattern.MatchString(trimmed) {
		return TypeCurrency
	}
	return TypeString
}

// isNumeric reports whether s parses as a finite decimal number.
func isNumeric(s string) bool {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	// ParseFloat accepts "Inf" and "NaN" spellings; those are not numbers here.
	return isFinite(f)
}

// IsDate reports whether s is an ISO date or matches a known date layout.
func IsDate(s string) bool {
	if isoDatePattern.MatchString(s) {
		return true
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
