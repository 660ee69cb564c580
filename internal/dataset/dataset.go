package dataset

import (
	"fmt"
	"strings"
)

// Row is a single record; cells are positional, aligned with the dataset's
// column order.
type Row []Value

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Dataset is an ordered collection of rows sharing a fixed column set.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// New creates an empty dataset with the given column set. Column order is
// preserved for export.
func New(columns ...string) *Dataset {
	d := &Dataset{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range d.columns {
		d.index[c] = i
	}
	return d
}

// FromRows builds a dataset from a column set and pre-built rows. It returns
// an error if any row width does not match the column count.
func FromRows(columns []string, rows []Row) (*Dataset, error) {
	d := New(columns...)
	for i, r := range rows {
		if err := d.AppendRow(r...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return d, nil
}

// Columns returns the column names in order.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// NumRows returns the row count.
func (d *Dataset) NumRows() int { return len(d.rows) }

// NumCols returns the column count.
func (d *Dataset) NumCols() int { return len(d.columns) }

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// ColumnIndex returns the position of the named column.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// AppendRow adds a record. The number of values must match the column count.
func (d *Dataset) AppendRow(values ...Value) error {
	if len(values) != len(d.columns) {
		return fmt.Errorf("row has %d values, dataset has %d columns", len(values), len(d.columns))
	}
	d.rows = append(d.rows, Row(values).Clone())
	return nil
}

// At returns the cell at the given row for the named column.
func (d *Dataset) At(row int, column string) (Value, bool) {
	i, ok := d.index[column]
	if !ok || row < 0 || row >= len(d.rows) {
		return Null(), false
	}
	return d.rows[row][i], true
}

// Column returns a copy of the named column's values in row order.
func (d *Dataset) Column(name string) ([]Value, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	out := make([]Value, len(d.rows))
	for r, row := range d.rows {
		out[r] = row[i]
	}
	return out, true
}

// SetColumn replaces the named column's values. The value count must match
// the row count; columns are never added this way.
func (d *Dataset) SetColumn(name string, values []Value) error {
	i, ok := d.index[name]
	if !ok {
		return fmt.Errorf("unknown column %q", name)
	}
	if len(values) != len(d.rows) {
		return fmt.Errorf("column %q: %d values for %d rows", name, len(values), len(d.rows))
	}
	for r := range d.rows {
		d.rows[r][i] = values[r]
	}
	return nil
}

// Apply transforms every cell of the named column in place. It reports
// whether the column exists; a missing column is a no-op.
func (d *Dataset) Apply(column string, fn func(Value) Value) bool {
	i, ok := d.index[column]
	if !ok {
		return false
	}
	for r := range d.rows {
		d.rows[r][i] = fn(d.rows[r][i])
	}
	return true
}

// Filter keeps only rows for which the predicate returns true, preserving
// order, and returns the number of rows removed.
func (d *Dataset) Filter(keep func(Row) bool) int {
	kept := d.rows[:0]
	for _, row := range d.rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	removed := len(d.rows) - len(kept)
	d.rows = kept
	return removed
}

// Each calls fn for every row in order.
func (d *Dataset) Each(fn func(Row)) {
	for _, row := range d.rows {
		fn(row)
	}
}

// Clone returns a deep copy sharing no state with the receiver.
func (d *Dataset) Clone() *Dataset {
	out := New(d.columns...)
	out.rows = make([]Row, len(d.rows))
	for i, row := range d.rows {
		out.rows[i] = row.Clone()
	}
	return out
}

// RowKey returns a canonical representation of a row for full-row equality
// checks (duplicate detection).
func (d *Dataset) RowKey(row Row) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = v.key()
	}
	return strings.Join(parts, "\x1f")
}

// CellCount returns the total number of cells (rows times columns).
func (d *Dataset) CellCount() int {
	return len(d.rows) * len(d.columns)
}

// NullCount returns the number of null cells across the dataset.
func (d *Dataset) NullCount() int {
	n := 0
	for _, row := range d.rows {
		for _, v := range row {
			if v.IsNull() {
				n++
			}
		}
	}
	return n
}

// UniqueRowCount returns the number of rows remaining after collapsing
// full-row duplicates.
func (d *Dataset) UniqueRowCount() int {
	seen := make(map[string]struct{}, len(d.rows))
	for _, row := range d.rows {
		seen[d.RowKey(row)] = struct{}{}
	}
	return len(seen)
}

// Records renders every row as formatted strings in column order, suitable
// for CSV or spreadsheet export.
func (d *Dataset) Records() [][]string {
	out := make([][]string, len(d.rows))
	for i, row := range d.rows {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = v.Format()
		}
		out[i] = rec
	}
	return out
}
