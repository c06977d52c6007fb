package table

import (
	"fmt"
	"io"
	"slices"
)

// ObservableRow defines an observable and its noise model.
type ObservableRow struct {
	ID                string
	Name              string
	Formula           string
	NoiseFormula      string
	Transformation    string
	NoiseDistribution string
}

// ObservableTable is keyed by observable ID.
type ObservableTable struct {
	Columns []string
	Rows    []ObservableRow

	index map[string]int
}

// NewObservableTable creates a table holding rows with all standard columns.
func NewObservableTable(rows ...ObservableRow) (*ObservableTable, error) {
	t := &ObservableTable{Columns: ObservableColumns, index: make(map[string]int)}
	for _, r := range rows {
		if err := t.Add(r); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Add appends a row.
func (t *ObservableTable) Add(row ObservableRow) error {
	if t.index == nil {
		t.index = make(map[string]int)
	}

	if _, dup := t.index[row.ID]; dup {
		return fmt.Errorf("%w: observable %q", ErrDuplicateID, row.ID)
	}

	t.index[row.ID] = len(t.Rows)
	t.Rows = append(t.Rows, row)

	return nil
}

// Get returns the observable with the given id.
func (t *ObservableTable) Get(id string) (ObservableRow, bool) {
	if t == nil {
		return ObservableRow{}, false
	}

	i, ok := t.index[id]
	if !ok {
		return ObservableRow{}, false
	}

	return t.Rows[i], true
}

// IDs returns the observable IDs in table order.
func (t *ObservableTable) IDs() []string {
	ids := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		ids[i] = r.ID
	}

	return ids
}

// ParseObservableFrame builds an observable table from a raw frame.
func ParseObservableFrame(f *Frame) (*ObservableTable, error) {
	if err := f.Require(ObservableID); err != nil {
		return nil, fmt.Errorf("observable table: %w", err)
	}

	t := &ObservableTable{Columns: f.Header, index: make(map[string]int)}

	for i := range f.Records {
		row := ObservableRow{
			ID:                f.Cell(i, ObservableID),
			Name:              f.Cell(i, ObservableName),
			Formula:           f.Cell(i, ObservableFormula),
			NoiseFormula:      f.Cell(i, NoiseFormula),
			Transformation:    f.Cell(i, ObservableTransformation),
			NoiseDistribution: f.Cell(i, NoiseDistribution),
		}

		if err := t.Add(row); err != nil {
			return nil, fmt.Errorf("observable table: %w", err)
		}
	}

	return t, nil
}

// ReadObservableTable reads an observable table in TSV form.
func ReadObservableTable(r io.Reader) (*ObservableTable, error) {
	f, err := ReadFrame(r)
	if err != nil {
		return nil, err
	}

	return ParseObservableFrame(f)
}

// LoadObservableTable reads an observable table file.
func LoadObservableTable(path string) (*ObservableTable, error) {
	f, err := ReadFrameFile(path)
	if err != nil {
		return nil, err
	}

	return ParseObservableFrame(f)
}

// ConcatObservableTables joins tables row-wise, rejecting duplicate IDs.
// Columns are the union of all columns in first-seen order.
func ConcatObservableTables(tables ...*ObservableTable) (*ObservableTable, error) {
	out := &ObservableTable{index: make(map[string]int)}

	for _, t := range tables {
		for _, c := range t.Columns {
			if !slices.Contains(out.Columns, c) {
				out.Columns = append(out.Columns, c)
			}
		}

		for _, r := range t.Rows {
			if err := out.Add(r); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
