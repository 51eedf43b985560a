package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string   `yaml:"name"`
	Count int      `yaml:"count"`
	Tags  []string `yaml:"tags"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
		strict  bool
	}{
		{name: "valid", input: "name: a\ncount: 2\n"},
		{name: "empty", input: "", wantErr: ErrEmptyInput},
		{name: "unknown field", input: "name: a\nextra: 1\n", strict: true},
		{name: "syntax error", input: "name: [a\n", strict: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got sample
			err := UnmarshalStrict([]byte(tt.input), &got)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
			case tt.strict:
				if err == nil {
					t.Error("UnmarshalStrict() expected an error")
				} else if !strings.HasPrefix(err.Error(), "yamlutil:") {
					t.Errorf("error %q lacks the package prefix", err)
				}
			default:
				if err != nil {
					t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
				}
				if got.Name != "a" || got.Count != 2 {
					t.Errorf("decoded %+v", got)
				}
			}
		})
	}
}

func TestUnmarshalStrict_Guards(t *testing.T) {
	t.Parallel()

	if err := UnmarshalStrict([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil destination error = %v", err)
	}

	big := []byte("name: " + strings.Repeat("x", MaxInputSize))
	var s sample
	if err := UnmarshalStrict(big, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversized input error = %v", err)
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := Marshal(sample{Name: "a", Count: 1, Tags: []string{"x"}})
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	for _, want := range []string{"name: a", "count: 1", "- x"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("Marshal() output missing %q:\n%s", want, out)
		}
	}

	var back sample
	if err := UnmarshalStrict(out, &back); err != nil {
		t.Fatalf("decoding marshaled output: %v", err)
	}
	if back.Name != "a" || len(back.Tags) != 1 {
		t.Errorf("round trip = %+v", back)
	}
}
