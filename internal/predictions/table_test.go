package predictions

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable(t *testing.T) {
	table, err := ParseTable(strings.NewReader("customer_id,prob_first_time_investor,segment\n1001,0.9,retail\n1002,0.5,private\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"customer_id", "prob_first_time_investor", "segment"}, table.Columns)
	require.Len(t, table.Rows, 2)

	prob, ok := table.Rows[0].Get("prob_first_time_investor")
	require.True(t, ok)
	assert.Equal(t, "0.9", prob.String())

	_, ok = table.Rows[0].Get("missing")
	assert.False(t, ok)
}

func TestParseTableHeaderOnly(t *testing.T) {
	table, err := ParseTable(strings.NewReader("customer_id,risk_6m\n"))
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}

func TestParseTableMalformed(t *testing.T) {
	_, err := ParseTable(strings.NewReader("a,b\n1,2,3\n"))
	assert.Error(t, err)

	_, err = ParseTable(strings.NewReader(""))
	assert.Error(t, err)
}

func TestRowJsonKeepsColumnOrder(t *testing.T) {
	table, err := ParseTable(strings.NewReader("zeta,alpha,mid\n1,2,3\n"))
	require.NoError(t, err)

	data, err := json.Marshal(table.Rows[0])
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":2,"mid":3}`, string(data))
}

func TestValueJsonTypes(t *testing.T) {
	table, err := ParseTable(strings.NewReader("id,prob,name,empty,big\n42,0.95,alice,,9007199254740993\n"))
	require.NoError(t, err)

	data, err := json.Marshal(table.Rows[0])
	require.NoError(t, err)
	// Integers stay exact, floats are numbers, everything else is a string.
	assert.Equal(t, `{"id":42,"prob":0.95,"name":"alice","empty":"","big":9007199254740993}`, string(data))
}

func TestWriteCSVRoundTrip(t *testing.T) {
	src := "customer_id,prob_first_time_investor\n1001,0.90\n1002,0.50\n"

	table, err := ParseTable(strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))
	assert.Equal(t, src, buf.String())
}

func TestCompareValues(t *testing.T) {
	table, err := ParseTable(strings.NewReader("v\n2\n10\nabc\n"))
	require.NoError(t, err)

	two, _ := table.Rows[0].Get("v")
	ten, _ := table.Rows[1].Get("v")
	abc, _ := table.Rows[2].Get("v")

	// Numeric pairs compare numerically, not lexically.
	assert.Negative(t, compareValues(two, ten))
	assert.Positive(t, compareValues(ten, two))
	assert.Zero(t, compareValues(two, two))

	// Mixed pairs fall back to lexical order.
	assert.Negative(t, compareValues(ten, abc))
}
