package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_HeaderUnionInOrder(t *testing.T) {
	t.Parallel()

	res, err := ParseJSON([]byte(`[{"b":"1","a":"x"},{"c":true,"b":"2"}]`), DefaultLimits())
	require.NoError(t, err)

	keys := make([]string, len(res.Dataset.Fields))
	for i, f := range res.Dataset.Fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{"b", "a", "c"}, keys)

	rows := res.Dataset.Rows
	require.Len(t, rows, 2)
	assert.Equal(t, "", rows[0]["c"])
	assert.Equal(t, "", rows[1]["a"])
	assert.Equal(t, true, rows[1]["c"])
	assert.Equal(t, TypeNumber, res.Dataset.Fields[0].Type)
	assert.Equal(t, SourceJSON, res.Dataset.SourceMeta.Type)
}

func TestParseJSON_ValueKinds(t *testing.T) {
	t.Parallel()

	res, err := ParseJSON([]byte(`[{"n":12.5,"z":null,"nested":{"x":1},"list":[1,"a"],"s":"pad  "}]`), DefaultLimits())
	require.NoError(t, err)

	row := res.Dataset.Rows[0]
	assert.Equal(t, 12.5, row["n"])
	assert.Equal(t, "", row["z"])
	assert.Equal(t, map[string]any{"x": 1.0}, row["nested"])
	assert.Equal(t, []any{1.0, "a"}, row["list"])
	assert.Equal(t, "pad", row["s"])
}

func TestParseJSON_LookupOrder(t *testing.T) {
	t.Parallel()

	// "First Name" and "first_name" normalize to the same base key.
	input := `[
		{"First Name":"Ada","first_name":"ada"},
		{"first_name":"grace"}
	]`
	res, err := ParseJSON([]byte(input), DefaultLimits())
	require.NoError(t, err)

	fields := res.Dataset.Fields
	require.Len(t, fields, 2)
	assert.Equal(t, "first_name", fields[0].Key)
	assert.Equal(t, "first_name_1", fields[1].Key)

	rows := res.Dataset.Rows
	assert.Equal(t, "Ada", rows[0]["first_name"])
	assert.Equal(t, "ada", rows[0]["first_name_1"])

	// The second record has no "First Name", so the first field falls
	// through to its key, which is the raw "first_name" column.
	assert.Equal(t, "grace", rows[1]["first_name"])
	assert.Equal(t, "grace", rows[1]["first_name_1"])
}

func TestParseJSON_StructuralErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{"object at top level", `{"a":1}`, ErrNotArray, ""},
		{"string at top level", `"a"`, ErrNotArray, ""},
		{"empty input", ``, ErrNotArray, ""},
		{"empty array", `[]`, ErrEmptyArray, ""},
		{"scalar record", `[1]`, ErrNotObject, "index 0"},
		{"later scalar record", `[{"a":1},"x"]`, ErrNotObject, "index 1"},
		{"array record", `[{"a":1},{"b":2},[3]]`, ErrNotObject, "index 2"},
		{"truncated", `[{"a":`, ErrInvalidJSON, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseJSON([]byte(tt.input), DefaultLimits())
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParseJSON_Limits(t *testing.T) {
	t.Parallel()

	_, err := ParseJSON([]byte(`[{"a":1},{"a":2},{"a":3}]`), Limits{MaxRows: 2})
	assert.ErrorIs(t, err, ErrTooManyRows)

	_, err = ParseJSON([]byte(`[{"a":1,"b":2,"c":3}]`), Limits{MaxColumns: 2})
	assert.ErrorIs(t, err, ErrTooManyColumns)
}
