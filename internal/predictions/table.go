package predictions

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Value is a single table cell. The raw CSV text is kept so CSV output stays
// byte-faithful to the source file; JSON output renders numeric-looking cells
// as numbers.
type Value struct {
	raw string
}

func (v Value) String() string {
	return v.raw
}

func (v Value) MarshalJSON() ([]byte, error) {
	if i, err := strconv.ParseInt(v.raw, 10, 64); err == nil {
		return json.Marshal(i)
	}
	if f, err := strconv.ParseFloat(v.raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return json.Marshal(f)
	}
	return json.Marshal(v.raw)
}

// compareValues orders two cells numerically when both parse as numbers,
// falling back to a lexical comparison otherwise.
func compareValues(a, b Value) int {
	af, aerr := strconv.ParseFloat(a.raw, 64)
	bf, berr := strconv.ParseFloat(b.raw, 64)
	if aerr == nil && berr == nil {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	return strings.Compare(a.raw, b.raw)
}

// Row is one table row. It marshals to a JSON object whose keys follow the
// source file's column order, which encoding/json maps cannot guarantee.
type Row struct {
	columns []string
	values  []Value
}

func (r Row) Get(column string) (Value, bool) {
	for i, col := range r.columns {
		if col == column {
			return r.values[i], true
		}
	}
	return Value{}, false
}

func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := r.values[i].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Table is an in-memory prediction table. Rows share the Columns slice, so a
// table is cheap to truncate and reorder but is never mutated cell-wise.
type Table struct {
	Columns []string
	Rows    []Row
}

func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

func (t *Table) columnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// ParseTable reads a CSV document with a header row into a Table.
func ParseTable(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed csv: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("malformed csv: missing header row")
	}

	columns := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		values := make([]Value, len(record))
		for i, cell := range record {
			values[i] = Value{raw: cell}
		}
		rows = append(rows, Row{columns: columns, values: values})
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

// WriteCSV serializes the table back to CSV, header first, cells verbatim in
// source column order.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, val := range row.values {
			record[i] = val.raw
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
