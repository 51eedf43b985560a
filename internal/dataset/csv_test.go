package dataset

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_DuplicateHeaders(t *testing.T) {
	t.Parallel()

	res, err := ParseCSV("Name, Name ,Amount\nAlice,Alpha,1000\nBob,Beta,2000\n", DefaultLimits())
	require.NoError(t, err)

	ds := res.Dataset
	require.Len(t, ds.Fields, 3)
	assert.Equal(t, "name", ds.Fields[0].Key)
	assert.Equal(t, "name_1", ds.Fields[1].Key)
	assert.Equal(t, "amount", ds.Fields[2].Key)
	assert.Equal(t, "Name", ds.Fields[1].Label)
	assert.Equal(t, "Name", ds.Fields[1].SourceLabel)
	assert.Equal(t, TypeString, ds.Fields[0].Type)
	assert.Equal(t, TypeNumber, ds.Fields[2].Type)

	require.Len(t, ds.Rows, 2)
	assert.Equal(t, Record{"name": "Alice", "name_1": "Alpha", "amount": "1000"}, ds.Rows[0])
	assert.Empty(t, res.Issues)
	assert.Equal(t, SourceCSV, ds.SourceMeta.Type)
	assert.NotEmpty(t, ds.SourceMeta.ID)
	assert.Len(t, res.Headers, 3)
}

func TestParseCSV_RowsHaveFieldKeySet(t *testing.T) {
	t.Parallel()

	res, err := ParseCSV("a,b,c\n1\n1,2\n1,2,3\n", DefaultLimits())
	require.NoError(t, err)

	for i, row := range res.Dataset.Rows {
		assert.Len(t, row, 3, "row %d", i)
		for _, f := range res.Dataset.Fields {
			_, ok := row[f.Key]
			assert.True(t, ok, "row %d missing %s", i, f.Key)
		}
	}
	assert.Equal(t, "", res.Dataset.Rows[0]["c"])
}

func TestParseCSV_ExtraCellsProduceIssue(t *testing.T) {
	t.Parallel()

	res, err := ParseCSV("a,b\n1,2,3\n4,5\n", DefaultLimits())
	require.NoError(t, err)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, 2, res.Issues[0].Row)
	assert.Equal(t, "b", res.Issues[0].Field)
	assert.Equal(t, Record{"a": "1", "b": "2"}, res.Dataset.Rows[0])
}

func TestParseCSV_Quoting(t *testing.T) {
	t.Parallel()

	input := "name,note\r\n\"Smith, J\",\"He said \"\"hi\"\"\"\r\n\"Multi\nLine\",x\r\n"
	res, err := ParseCSV(input, DefaultLimits())
	require.NoError(t, err)

	require.Len(t, res.Dataset.Rows, 2)
	assert.Equal(t, "Smith, J", res.Dataset.Rows[0]["name"])
	assert.Equal(t, `He said "hi"`, res.Dataset.Rows[0]["note"])
	assert.Equal(t, "Multi\nLine", res.Dataset.Rows[1]["name"])
}

func TestParseCSV_LineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"LF", "name,amount\nAlice,1\nBob,2\n"},
		{"CRLF", "name,amount\r\nAlice,1\r\nBob,2\r\n"},
		{"CR", "name,amount\rAlice,1\rBob,2"},
		{"mixed", "name,amount\r\nAlice,1\rBob,2\r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := ParseCSV(tt.input, DefaultLimits())
			require.NoError(t, err)

			require.Len(t, res.Dataset.Fields, 2)
			assert.Equal(t, "name", res.Dataset.Fields[0].Key)
			assert.Equal(t, "amount", res.Dataset.Fields[1].Key)
			assert.Equal(t, []Record{
				{"name": "Alice", "amount": "1"},
				{"name": "Bob", "amount": "2"},
			}, res.Dataset.Rows)
			assert.Empty(t, res.Issues)
		})
	}
}

func TestParseCSV_QuotedFieldAfterSpace(t *testing.T) {
	t.Parallel()

	res, err := ParseCSV("a,b\n1, \"x,y\"\n", DefaultLimits())
	require.NoError(t, err)

	require.Len(t, res.Dataset.Rows, 1)
	assert.Equal(t, Record{"a": "1", "b": "x,y"}, res.Dataset.Rows[0])
	assert.Empty(t, res.Issues)
}

func TestParseCSV_SkipsEmptyRows(t *testing.T) {
	t.Parallel()

	res, err := ParseCSV("\n\na,b\n\n,\n1,2\n\n", DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, "a", res.Dataset.Fields[0].Key)
	require.Len(t, res.Dataset.Rows, 1)
	assert.Equal(t, "1", res.Dataset.Rows[0]["a"])
}

func TestParseCSV_NoRows(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "\n\n", ",,\n,\n"} {
		_, err := ParseCSV(input, DefaultLimits())
		assert.ErrorIs(t, err, ErrNoRows, "input %q", input)
	}
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	t.Parallel()

	res, err := ParseCSV("a,b\n", DefaultLimits())
	require.NoError(t, err)
	assert.Len(t, res.Dataset.Fields, 2)
	assert.Empty(t, res.Dataset.Rows)
}

func TestParseCSV_RowLimit(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString("n\n")
	for i := range 10 {
		fmt.Fprintf(&sb, "%d\n", i)
	}

	_, err := ParseCSV(sb.String(), Limits{MaxRows: 9})
	assert.ErrorIs(t, err, ErrTooManyRows)

	res, err := ParseCSV(sb.String(), Limits{MaxRows: 10})
	require.NoError(t, err)
	assert.Len(t, res.Dataset.Rows, 10)
}

func TestParseCSV_ColumnLimit(t *testing.T) {
	t.Parallel()

	_, err := ParseCSV("a,b,c\n1,2,3\n", Limits{MaxColumns: 2})
	assert.ErrorIs(t, err, ErrTooManyColumns)
}

func TestParseCSV_CellTruncation(t *testing.T) {
	t.Parallel()

	res, err := ParseCSV("a,b\nabcdefgh,ok\n", Limits{MaxCellLength: 5})
	require.NoError(t, err)

	assert.Equal(t, "abcde", res.Dataset.Rows[0]["a"])
	assert.Equal(t, "ok", res.Dataset.Rows[0]["b"])
	require.Len(t, res.Issues, 1)
	assert.Equal(t, 2, res.Issues[0].Row)
	assert.Equal(t, "a", res.Issues[0].Field)
	assert.Contains(t, res.Issues[0].Message, "5")
}

func TestParseCSV_HeaderTruncation(t *testing.T) {
	t.Parallel()

	res, err := ParseCSV("abcdefghij,b\n1,2\n", Limits{MaxHeaderLength: 4})
	require.NoError(t, err)

	assert.Equal(t, "abcd", res.Dataset.Fields[0].Key)
	assert.Equal(t, "abcdefghij", res.Dataset.Fields[0].SourceLabel)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, 1, res.Issues[0].Row)
}

func TestParseCSV_StripsBOM(t *testing.T) {
	t.Parallel()

	res, err := ParseCSV("\ufeffName\nAda\n", DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, "name", res.Dataset.Fields[0].Key)
}
