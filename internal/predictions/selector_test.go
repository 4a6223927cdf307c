package predictions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTable(t *testing.T, csv string) *Table {
	t.Helper()
	table, err := ParseTable(strings.NewReader(csv))
	require.NoError(t, err)
	return table
}

func columnStrings(t *testing.T, table *Table, column string) []string {
	t.Helper()
	var out []string
	for _, row := range table.Rows {
		val, ok := row.Get(column)
		require.True(t, ok)
		out = append(out, val.String())
	}
	return out
}

func TestTopRowsSortsByRankAscending(t *testing.T) {
	table := parseTable(t, "customer_id,rank\n1001,3\n1002,1\n1003,2\n")

	top, err := TopRows(table, "prob_first_time_investor", 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"1002", "1003", "1001"}, columnStrings(t, top, "customer_id"))
}

func TestTopRowsRankWinsOverScoreColumn(t *testing.T) {
	// The score column would give the opposite order; rank must take priority.
	table := parseTable(t, "customer_id,rank,prob_first_time_investor\n1001,2,0.9\n1002,1,0.1\n")

	top, err := TopRows(table, "prob_first_time_investor", 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"1002", "1001"}, columnStrings(t, top, "customer_id"))
}

func TestTopRowsSortsByScoreDescending(t *testing.T) {
	table := parseTable(t, "customer_id,risk_6m\n1001,0.2\n1002,0.8\n1003,0.5\n")

	top, err := TopRows(table, "risk_6m", 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"1002", "1003", "1001"}, columnStrings(t, top, "customer_id"))
}

func TestTopRowsStableOnTies(t *testing.T) {
	table := parseTable(t, "id,prob_first_time_investor\n1,0.9\n2,0.9\n3,0.5\n")

	top, err := TopRows(table, "prob_first_time_investor", 2)
	require.NoError(t, err)

	// Equal scores keep source order.
	assert.Equal(t, []string{"1", "2"}, columnStrings(t, top, "id"))
}

func TestTopRowsTruncation(t *testing.T) {
	table := parseTable(t, "id,rank\n1,1\n2,2\n3,3\n")

	top, err := TopRows(table, "prob_first_time_investor", 2)
	require.NoError(t, err)
	assert.Len(t, top.Rows, 2)

	// top_x past the table size returns the whole table, not an error.
	top, err = TopRows(table, "prob_first_time_investor", 50)
	require.NoError(t, err)
	assert.Len(t, top.Rows, 3)
}

func TestTopRowsMissingScoreColumn(t *testing.T) {
	table := parseTable(t, "customer_id,other\n1001,1\n")

	_, err := TopRows(table, "prob_first_time_investor", 10)
	require.Error(t, err)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "prob_first_time_investor", validation.Column)
}

func TestTopRowsDoesNotMutateInput(t *testing.T) {
	table := parseTable(t, "id,rank\n1,2\n2,1\n")

	_, err := TopRows(table, "prob_first_time_investor", 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, columnStrings(t, table, "id"))
}

func TestTopRowsDeterministic(t *testing.T) {
	table := parseTable(t, "id,prob_first_time_investor\n1,0.5\n2,0.5\n3,0.5\n4,0.9\n")

	first, err := TopRows(table, "prob_first_time_investor", 4)
	require.NoError(t, err)
	second, err := TopRows(table, "prob_first_time_investor", 4)
	require.NoError(t, err)

	assert.Equal(t, columnStrings(t, first, "id"), columnStrings(t, second, "id"))
	assert.Equal(t, []string{"4", "1", "2", "3"}, columnStrings(t, first, "id"))
}
