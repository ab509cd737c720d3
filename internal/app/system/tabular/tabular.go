// Package tabular provides the in-memory table model shared by the cleansing
// pipeline and the dashboard loader. A cell is either a string value or
// missing; missing is distinct from the empty string, which matters to the
// cleaning rules (a blank field is data, an absent field is not).
package tabular

// Cell is a single table cell. The zero value is a missing cell.
type Cell struct {
	Value string
	Valid bool
}

// String returns a cell holding the given value.
func String(v string) Cell {
	return Cell{Value: v, Valid: true}
}

// Missing returns a missing cell.
func Missing() Cell {
	return Cell{}
}

// IsMissing reports whether the cell has no value.
func (c Cell) IsMissing() bool {
	return !c.Valid
}

// Row is one record of a table, cells in column order.
type Row []Cell

// Equal compares two rows cell by cell. Rows of different widths are never
// equal; two missing cells are equal regardless of their carried value.
func (r Row) Equal(r2 Row) bool {
	if len(r) != len(r2) {
		return false
	}
	for i, c := range r {
		if c.Valid != r2[i].Valid {
			return false
		}
		if c.Valid && c.Value != r2[i].Value {
			return false
		}
	}
	return true
}

// Table is a header plus rows. Column order is significant and preserved
// end to end.
type Table struct {
	Columns []string
	Rows    []Row
}

// ColumnIndex returns the position of the named column, or -1 if the table
// does not carry it.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column is present.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Cell returns the cell at (row, column name). A row that is shorter than the
// header or a column the table does not carry yields a missing cell.
func (t *Table) Cell(row int, name string) Cell {
	idx := t.ColumnIndex(name)
	if idx < 0 || row < 0 || row >= len(t.Rows) || idx >= len(t.Rows[row]) {
		return Missing()
	}
	return t.Rows[row][idx]
}

// SetCell stores a cell at (row, column name). Unknown columns and
// out-of-range rows are ignored.
func (t *Table) SetCell(row int, name string, c Cell) {
	idx := t.ColumnIndex(name)
	if idx < 0 || row < 0 || row >= len(t.Rows) || idx >= len(t.Rows[row]) {
		return
	}
	t.Rows[row][idx] = c
}

// AddColumn appends a column with a missing cell in every existing row and
// returns its index. If the column already exists its index is returned
// unchanged.
func (t *Table) AddColumn(name string) int {
	if idx := t.ColumnIndex(name); idx >= 0 {
		return idx
	}
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], Missing())
	}
	return len(t.Columns) - 1
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = append(Row(nil), r...)
	}
	return out
}
