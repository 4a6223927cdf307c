package predictions

import "sort"

// RankColumn, when present in a table, overrides the model's score column.
// Lower rank means higher priority.
const RankColumn = "rank"

// TopRows returns at most topX rows ordered by relevance: ascending by the
// rank column when the table has one, otherwise descending by scoreColumn.
// The sort is stable, so rows with equal keys keep their source order and
// repeated calls on an unchanged table produce identical output. The input
// table is not modified.
func TopRows(t *Table, scoreColumn string, topX int) (*Table, error) {
	var keys []Value
	var less func(i, j int) bool

	if idx := t.columnIndex(RankColumn); idx >= 0 {
		keys = columnValues(t, idx)
		less = func(i, j int) bool { return compareValues(keys[i], keys[j]) < 0 }
	} else {
		idx := t.columnIndex(scoreColumn)
		if idx < 0 {
			return nil, &ValidationError{Column: scoreColumn}
		}
		keys = columnValues(t, idx)
		less = func(i, j int) bool { return compareValues(keys[i], keys[j]) > 0 }
	}

	order := make([]int, len(t.Rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return less(order[i], order[j]) })

	if topX > len(order) {
		topX = len(order)
	}

	rows := make([]Row, topX)
	for i, src := range order[:topX] {
		rows[i] = t.Rows[src]
	}

	return &Table{Columns: t.Columns, Rows: rows}, nil
}

func columnValues(t *Table, idx int) []Value {
	values := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row.values[idx]
	}
	return values
}
