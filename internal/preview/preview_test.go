package preview_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-segmentation/internal/preview"
)

func TestParseBasic(t *testing.T) {
	table := preview.Parse("a,b\n1,2\n3,4")

	assert.Equal(t, []string{"a", "b"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, table.Rows[0])
	assert.Equal(t, map[string]string{"a": "3", "b": "4"}, table.Rows[1])
}

func TestParseTruncatesAtTenRows(t *testing.T) {
	var b strings.Builder
	b.WriteString("id,value\n")
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, "%d,%d\n", i, i*10)
	}

	table := preview.Parse(b.String())
	assert.Len(t, table.Rows, 10)
	assert.Equal(t, "0", table.Rows[0]["id"])
	assert.Equal(t, "9", table.Rows[9]["id"])
}

func TestParseTrimsWhitespace(t *testing.T) {
	table := preview.Parse(" age , spend \r\n 34 , 1200 ")

	assert.Equal(t, []string{"age", "spend"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "34", table.Rows[0]["age"])
	assert.Equal(t, "1200", table.Rows[0]["spend"])
}

func TestParseMissingTrailingFields(t *testing.T) {
	table := preview.Parse("a,b,c\n1,2")

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "1", table.Rows[0]["a"])
	assert.Equal(t, "2", table.Rows[0]["b"])
	assert.Equal(t, "", table.Rows[0]["c"])
}

func TestParseEmptyInput(t *testing.T) {
	table := preview.Parse("")

	assert.Equal(t, []string{""}, table.Headers)
	assert.Empty(t, table.Rows)
}

// A comma inside a quoted field shifts the alignment. That is the
// documented preview behavior, not something to silently fix.
func TestParseDoesNotHandleQuotedCommas(t *testing.T) {
	table := preview.Parse(`name,city` + "\n" + `"Doe, Jane",Berlin`)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, `"Doe`, table.Rows[0]["name"])
	assert.Equal(t, `Jane"`, table.Rows[0]["city"])
}

func TestBuildColumnSummary(t *testing.T) {
	p := preview.Build("age,spend,category\n34,1200.5,Electronics\n29,800,Books")

	assert.Equal(t, 3, p.ColumnCount)
	assert.Equal(t, 2, p.RowCount)
	assert.Equal(t, []string{"age", "spend"}, p.NumericColumns)
}
