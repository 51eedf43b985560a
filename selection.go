package docmerge

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-docmerge/internal/merge"
)

// Range selects which rows are generated.
type Range string

// Ranges.
const (
	RangeAll       Range = "all"
	RangeSelection Range = "selection"
	RangeFiltered  Range = "filtered"
)

// FilterOp is a row filter comparison.
type FilterOp string

// Filter operators.
const (
	OpEq       FilterOp = "eq"
	OpNeq      FilterOp = "neq"
	OpGt       FilterOp = "gt"
	OpLt       FilterOp = "lt"
	OpContains FilterOp = "contains"
)

// Filter keeps rows whose Field value compares true against Value.
type Filter struct {
	Field string
	Op    FilterOp
	Value any
}

// GenerationOptions controls one generation request.
type GenerationOptions struct {
	Format          Format
	Range           Range
	Filter          *Filter
	Selection       []int // row indices, kept in the given order
	FilenamePattern string
}

// Validate checks the options against ds. An empty range is accepted and
// means all rows.
func (o GenerationOptions) Validate(ds *Dataset) error {
	if o.Format != "" && !o.Format.Valid() {
		return fmt.Errorf("%w: %q (expected pdf, docx or html)", ErrInvalidFormat, o.Format)
	}
	switch o.Range {
	case "", RangeAll, RangeFiltered:
	case RangeSelection:
		if ds == nil {
			return ErrNilDataset
		}
		for _, i := range o.Selection {
			if i < 0 || i >= len(ds.Rows) {
				return fmt.Errorf("%w: %d (dataset has %d rows)", ErrSelectionOutOfRange, i, len(ds.Rows))
			}
		}
	default:
		return fmt.Errorf("%w: %q (expected all, selection or filtered)", ErrInvalidRange, o.Range)
	}
	return nil
}

// SelectRows returns the indices of the rows to generate.
//
// RangeSelection yields exactly the selection, in order; an empty
// selection yields no rows rather than all of them. Indices outside the
// dataset are skipped. RangeFiltered without a filter yields all rows.
func SelectRows(ds *Dataset, opts GenerationOptions) []int {
	if ds == nil {
		return []int{}
	}

	switch opts.Range {
	case RangeSelection:
		out := make([]int, 0, len(opts.Selection))
		for _, i := range opts.Selection {
			if i >= 0 && i < len(ds.Rows) {
				out = append(out, i)
			}
		}
		return out

	case RangeFiltered:
		if opts.Filter == nil {
			break
		}
		out := []int{}
		for i, row := range ds.Rows {
			v, present := row[opts.Filter.Field]
			if opts.Filter.matches(v, present) {
				out = append(out, i)
			}
		}
		return out
	}

	out := make([]int, len(ds.Rows))
	for i := range out {
		out[i] = i
	}
	return out
}

// matches compares a row value with the filter value. A missing field is
// distinct from a nil value: it is never equal to anything and converts
// to NaN.
func (f *Filter) matches(v any, present bool) bool {
	switch f.Op {
	case OpEq:
		return present && strictEqual(v, f.Value)
	case OpNeq:
		return !present || !strictEqual(v, f.Value)
	case OpGt:
		return toNumber(v, present) > toNumber(f.Value, true)
	case OpLt:
		return toNumber(v, present) < toNumber(f.Value, true)
	case OpContains:
		return strings.Contains(strings.ToLower(toText(v)), strings.ToLower(toText(f.Value)))
	default:
		return false
	}
}

// strictEqual matches values of the same kind. Numbers compare by value,
// so an int filter equals a float64 cell. Maps and slices are never equal.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if x, ok := number(a); ok {
		y, ok := number(b)
		return ok && x == y
	}
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case time.Time:
		y, ok := b.(time.Time)
		return ok && x.Equal(y)
	}
	return false
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// toNumber converts like JavaScript's Number(): blank strings and nil are
// 0, booleans are 0 or 1, dates are milliseconds since the epoch and
// anything unparseable is NaN.
func toNumber(v any, present bool) float64 {
	if !present {
		return math.NaN()
	}
	if n, ok := number(v); ok {
		return n
	}
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		return parseNumber(x)
	case time.Time:
		return float64(x.UnixMilli())
	case []any:
		// An array converts through its string form.
		switch len(x) {
		case 0:
			return 0
		case 1:
			return parseNumber(toText(x[0]))
		}
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}
	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeError(err) {
		return math.NaN()
	}
	return f
}

func isRangeError(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// toText converts like String(v ?? ""): arrays join their elements with
// commas and objects become "[object Object]".
func toText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = toText(e)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	}
	return merge.FormatValue(v)
}
