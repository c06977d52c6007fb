package table

import (
	"fmt"
	"io"
	"slices"
)

// ConditionRow is one experimental condition. Values line up with the
// table's Columns.
type ConditionRow struct {
	ID     string
	Name   string
	Values []Value
}

// ConditionTable maps condition IDs to parameter overrides.
type ConditionTable struct {
	// Columns are the override columns, excluding conditionId and conditionName.
	Columns []string
	Rows    []ConditionRow

	rows map[string]int
	cols map[string]int
}

// NewConditionTable creates an empty table with the given override columns.
func NewConditionTable(columns ...string) *ConditionTable {
	t := &ConditionTable{
		Columns: columns,
		rows:    make(map[string]int),
		cols:    make(map[string]int, len(columns)),
	}

	for i, c := range columns {
		t.cols[c] = i
	}

	return t
}

// Add appends a row. Values must have one entry per column.
func (t *ConditionTable) Add(row ConditionRow) error {
	if t.rows == nil {
		t.rows = make(map[string]int)
	}

	if t.cols == nil {
		t.cols = make(map[string]int, len(t.Columns))
		for i, c := range t.Columns {
			t.cols[c] = i
		}
	}

	if len(row.Values) != len(t.Columns) {
		return fmt.Errorf("%w: condition %q has %d values for %d columns",
			ErrRowWidth, row.ID, len(row.Values), len(t.Columns))
	}

	if _, dup := t.rows[row.ID]; dup {
		return fmt.Errorf("%w: condition %q", ErrDuplicateID, row.ID)
	}

	t.rows[row.ID] = len(t.Rows)
	t.Rows = append(t.Rows, row)

	return nil
}

// Has reports whether the table defines condition id.
func (t *ConditionTable) Has(id string) bool {
	_, ok := t.rows[id]
	return ok
}

// HasColumn reports whether column is an override column.
func (t *ConditionTable) HasColumn(column string) bool {
	_, ok := t.cols[column]
	return ok
}

// Row returns the row for condition id.
func (t *ConditionTable) Row(id string) (ConditionRow, bool) {
	i, ok := t.rows[id]
	if !ok {
		return ConditionRow{}, false
	}

	return t.Rows[i], true
}

// Value returns the cell of condition id in column.
// The second result is false when either the row or the column is unknown.
func (t *ConditionTable) Value(id, column string) (Value, bool) {
	r, ok := t.rows[id]
	if !ok {
		return Value{}, false
	}

	c, ok := t.cols[column]
	if !ok {
		return Value{}, false
	}

	return t.Rows[r].Values[c], true
}

// IDs returns the condition IDs in table order.
func (t *ConditionTable) IDs() []string {
	ids := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		ids[i] = r.ID
	}

	return ids
}

// ParseConditionFrame builds a condition table from a raw frame.
func ParseConditionFrame(f *Frame) (*ConditionTable, error) {
	if err := f.Require(RequiredConditionColumns...); err != nil {
		return nil, fmt.Errorf("condition table: %w", err)
	}

	var columns []string

	for _, h := range f.Header {
		if h != ConditionID && h != ConditionName {
			columns = append(columns, h)
		}
	}

	t := NewConditionTable(columns...)

	for i := range f.Records {
		row := ConditionRow{
			ID:     f.Cell(i, ConditionID),
			Name:   f.Cell(i, ConditionName),
			Values: make([]Value, len(columns)),
		}

		for j, c := range columns {
			row.Values[j] = Parse(f.Cell(i, c))
		}

		if err := t.Add(row); err != nil {
			return nil, fmt.Errorf("condition table: %w", err)
		}
	}

	return t, nil
}

// ReadConditionTable reads a condition table in TSV form.
func ReadConditionTable(r io.Reader) (*ConditionTable, error) {
	f, err := ReadFrame(r)
	if err != nil {
		return nil, err
	}

	return ParseConditionFrame(f)
}

// LoadConditionTable reads a condition table file.
func LoadConditionTable(path string) (*ConditionTable, error) {
	f, err := ReadFrameFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConditionFrame(f)
}

// ConcatConditionTables joins tables row-wise. Columns are the union of all
// columns in first-seen order; cells absent from a source table are missing.
func ConcatConditionTables(tables ...*ConditionTable) (*ConditionTable, error) {
	var columns []string

	for _, t := range tables {
		for _, c := range t.Columns {
			if !slices.Contains(columns, c) {
				columns = append(columns, c)
			}
		}
	}

	out := NewConditionTable(columns...)

	for _, t := range tables {
		for _, r := range t.Rows {
			values := make([]Value, len(columns))
			for j, c := range columns {
				values[j], _ = t.Value(r.ID, c)
			}

			if err := out.Add(ConditionRow{ID: r.ID, Name: r.Name, Values: values}); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Frame converts the table back to its raw form.
func (t *ConditionTable) Frame() *Frame {
	f := NewFrame(append([]string{ConditionID, ConditionName}, t.Columns...)...)

	for _, r := range t.Rows {
		rec := []string{r.ID, r.Name}
		for _, v := range r.Values {
			rec = append(rec, v.Cell())
		}

		f.Append(rec...)
	}

	return f
}
