package docmerge

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestGenerationOptions_Validate
// ---------------------------------------------------------------------------

func TestGenerationOptions_Validate(t *testing.T) {
	t.Parallel()

	ds := testDataset()

	tests := []struct {
		name    string
		opts    GenerationOptions
		ds      *Dataset
		wantErr error
	}{
		{"zero value", GenerationOptions{}, ds, nil},
		{"all", GenerationOptions{Format: FormatPDF, Range: RangeAll}, ds, nil},
		{"filtered without filter", GenerationOptions{Range: RangeFiltered}, ds, nil},
		{"selection in range", GenerationOptions{Range: RangeSelection, Selection: []int{2, 0}}, ds, nil},
		{"empty selection", GenerationOptions{Range: RangeSelection}, ds, nil},
		{"bad format", GenerationOptions{Format: "odt"}, ds, ErrInvalidFormat},
		{"bad range", GenerationOptions{Range: "some"}, ds, ErrInvalidRange},
		{"selection out of range", GenerationOptions{Range: RangeSelection, Selection: []int{3}}, ds, ErrSelectionOutOfRange},
		{"negative selection", GenerationOptions{Range: RangeSelection, Selection: []int{-1}}, ds, ErrSelectionOutOfRange},
		{"selection without dataset", GenerationOptions{Range: RangeSelection}, nil, ErrNilDataset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate(tt.ds)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSelectRows - Ranges
// ---------------------------------------------------------------------------

func TestSelectRows(t *testing.T) {
	t.Parallel()

	ds := testDataset()

	tests := []struct {
		name string
		opts GenerationOptions
		want []int
	}{
		{"default is all", GenerationOptions{}, []int{0, 1, 2}},
		{"all", GenerationOptions{Range: RangeAll}, []int{0, 1, 2}},
		{"selection keeps order", GenerationOptions{Range: RangeSelection, Selection: []int{2, 0}}, []int{2, 0}},
		{"selection skips invalid", GenerationOptions{Range: RangeSelection, Selection: []int{5, 1, -2}}, []int{1}},
		{"empty selection selects nothing", GenerationOptions{Range: RangeSelection}, []int{}},
		{"filtered without filter", GenerationOptions{Range: RangeFiltered}, []int{0, 1, 2}},
		{
			"filter ignored outside filtered range",
			GenerationOptions{Range: RangeAll, Filter: &Filter{Field: "name", Op: OpEq, Value: "Ada"}},
			[]int{0, 1, 2},
		},
		{
			"filter eq",
			GenerationOptions{Range: RangeFiltered, Filter: &Filter{Field: "name", Op: OpEq, Value: "Ada"}},
			[]int{0},
		},
		{
			"filter without matches",
			GenerationOptions{Range: RangeFiltered, Filter: &Filter{Field: "name", Op: OpEq, Value: "Nobody"}},
			[]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SelectRows(ds, tt.opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SelectRows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectRows_NilDataset(t *testing.T) {
	t.Parallel()

	got := SelectRows(nil, GenerationOptions{})
	if got == nil || len(got) != 0 {
		t.Errorf("SelectRows(nil) = %#v, want empty slice", got)
	}
}

// ---------------------------------------------------------------------------
// TestFilter - Operator Semantics
// ---------------------------------------------------------------------------

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	when := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		filter  Filter
		v       any
		present bool
		want    bool
	}{
		// eq / neq are strict.
		{"eq string", Filter{Op: OpEq, Value: "a"}, "a", true, true},
		{"eq is case sensitive", Filter{Op: OpEq, Value: "A"}, "a", true, false},
		{"eq does not coerce", Filter{Op: OpEq, Value: "5"}, 5.0, true, false},
		{"eq numbers across kinds", Filter{Op: OpEq, Value: 5}, 5.0, true, true},
		{"eq nil", Filter{Op: OpEq, Value: nil}, nil, true, true},
		{"eq missing is not nil", Filter{Op: OpEq, Value: nil}, nil, false, false},
		{"eq bool", Filter{Op: OpEq, Value: true}, true, true, true},
		{"eq time", Filter{Op: OpEq, Value: when}, when, true, true},
		{"eq maps never", Filter{Op: OpEq, Value: map[string]any{}}, map[string]any{}, true, false},
		{"neq different kind", Filter{Op: OpNeq, Value: "5"}, 5.0, true, true},
		{"neq same", Filter{Op: OpNeq, Value: "a"}, "a", true, false},
		{"neq missing", Filter{Op: OpNeq, Value: "a"}, nil, false, true},

		// gt / lt coerce to numbers.
		{"gt numeric string", Filter{Op: OpGt, Value: 10}, "12", true, true},
		{"gt equal", Filter{Op: OpGt, Value: 12}, 12.0, true, false},
		{"lt hex string", Filter{Op: OpLt, Value: "0x20"}, 16.0, true, true},
		{"lt blank is zero", Filter{Op: OpLt, Value: 1}, "  ", true, true},
		{"lt nil is zero", Filter{Op: OpLt, Value: 1}, nil, true, true},
		{"gt bool", Filter{Op: OpGt, Value: 0}, true, true, true},
		{"gt NaN never", Filter{Op: OpGt, Value: 0}, "abc", true, false},
		{"lt NaN never", Filter{Op: OpLt, Value: 0}, "abc", true, false},
		{"gt missing never", Filter{Op: OpGt, Value: -1}, nil, false, false},
		{"lt missing never", Filter{Op: OpLt, Value: 1}, nil, false, false},
		{"gt infinity", Filter{Op: OpGt, Value: 1e300}, "Infinity", true, true},

		// contains compares text ignoring case.
		{"contains", Filter{Op: OpContains, Value: "DON"}, "London", true, true},
		{"contains number", Filter{Op: OpContains, Value: 2}, 12.5, true, true},
		{"contains array", Filter{Op: OpContains, Value: "a,b"}, []any{"a", "b"}, true, true},
		{"contains miss", Filter{Op: OpContains, Value: "x"}, "London", true, false},

		{"unknown operator", Filter{Op: "like", Value: "a"}, "a", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.filter.matches(tt.v, tt.present); got != tt.want {
				t.Errorf("matches(%#v, %v) = %v, want %v", tt.v, tt.present, got, tt.want)
			}
		})
	}
}

func TestToNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want float64
	}{
		{"42", 42},
		{" -3.5 ", -3.5},
		{".5", 0.5},
		{"1e3", 1000},
		{"0b101", 5},
		{"0o17", 15},
		{"", 0},
		{false, 0},
		{[]any{}, 0},
		{[]any{"7"}, 7},
		{"-Infinity", math.Inf(-1)},
	}
	for _, tt := range tests {
		if got := toNumber(tt.in, true); got != tt.want {
			t.Errorf("toNumber(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []any{"12px", "0x", "1,000", []any{"1", "2"}, map[string]any{}} {
		if got := toNumber(in, true); !math.IsNaN(got) {
			t.Errorf("toNumber(%#v) = %v, want NaN", in, got)
		}
	}
}
