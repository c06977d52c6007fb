package table

import (
	"fmt"
	"io"
	"slices"
)

// ParameterRow describes one parameter of the estimation problem.
type ParameterRow struct {
	ID              string
	Name            string
	Scale           string
	LowerBound      Value
	UpperBound      Value
	NominalValue    Value
	Estimate        Value
	PriorType       string
	PriorParameters string
}

// Estimated reports whether the parameter is estimated. Only an explicit
// estimate of 0 marks a parameter as fixed; a missing cell or an absent
// estimate column means estimated.
func (r ParameterRow) Estimated() bool {
	return !(r.Estimate.IsLiteral() && r.Estimate.Float() == 0)
}

// ParameterTable is keyed by parameter ID.
type ParameterTable struct {
	// Columns lists the columns present in the source file.
	Columns []string
	Rows    []ParameterRow

	index map[string]int
}

// NewParameterTable creates a table with all standard columns.
func NewParameterTable() *ParameterTable {
	return &ParameterTable{
		Columns: ParameterColumns,
		index:   make(map[string]int),
	}
}

// Add appends a row.
func (t *ParameterTable) Add(row ParameterRow) error {
	if t.index == nil {
		t.index = make(map[string]int)
	}

	if _, dup := t.index[row.ID]; dup {
		return fmt.Errorf("%w: parameter %q", ErrDuplicateID, row.ID)
	}

	t.index[row.ID] = len(t.Rows)
	t.Rows = append(t.Rows, row)

	return nil
}

// Get returns the row for parameter id. A nil table has no rows.
func (t *ParameterTable) Get(id string) (ParameterRow, bool) {
	if t == nil {
		return ParameterRow{}, false
	}

	i, ok := t.index[id]
	if !ok {
		return ParameterRow{}, false
	}

	return t.Rows[i], true
}

// HasColumn reports whether column was present in the source.
func (t *ParameterTable) HasColumn(column string) bool {
	return slices.Contains(t.Columns, column)
}

// IDs returns the parameter IDs in table order.
func (t *ParameterTable) IDs() []string {
	ids := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		ids[i] = r.ID
	}

	return ids
}

// ParseParameterFrame builds a parameter table from a raw frame.
// Only parameterId is needed to read the table; the other required columns
// are checked by the linter.
func ParseParameterFrame(f *Frame) (*ParameterTable, error) {
	if err := f.Require(ParameterID); err != nil {
		return nil, fmt.Errorf("parameter table: %w", err)
	}

	t := &ParameterTable{Columns: f.Header, index: make(map[string]int)}

	for i := range f.Records {
		row := ParameterRow{
			ID:              f.Cell(i, ParameterID),
			Name:            f.Cell(i, ParameterName),
			Scale:           f.Cell(i, ParameterScale),
			LowerBound:      Parse(f.Cell(i, LowerBound)),
			UpperBound:      Parse(f.Cell(i, UpperBound)),
			NominalValue:    Parse(f.Cell(i, NominalValue)),
			Estimate:        Parse(f.Cell(i, Estimate)),
			PriorType:       f.Cell(i, PriorType),
			PriorParameters: f.Cell(i, PriorParameters),
		}

		if err := t.Add(row); err != nil {
			return nil, fmt.Errorf("parameter table: %w", err)
		}
	}

	return t, nil
}

// ReadParameterTable reads a parameter table in TSV form.
func ReadParameterTable(r io.Reader) (*ParameterTable, error) {
	f, err := ReadFrame(r)
	if err != nil {
		return nil, err
	}

	return ParseParameterFrame(f)
}

// LoadParameterTable reads a parameter table file.
func LoadParameterTable(path string) (*ParameterTable, error) {
	f, err := ReadFrameFile(path)
	if err != nil {
		return nil, err
	}

	return ParseParameterFrame(f)
}

// Frame converts the table to its raw form with the standard columns.
func (t *ParameterTable) Frame() *Frame {
	f := NewFrame(ParameterColumns...)

	for _, r := range t.Rows {
		f.Append(
			r.ID, r.Name, r.Scale,
			r.LowerBound.Cell(), r.UpperBound.Cell(), r.NominalValue.Cell(), r.Estimate.Cell(),
			r.PriorType, r.PriorParameters,
		)
	}

	return f
}

// WriteParameterTable writes t as TSV.
func WriteParameterTable(w io.Writer, t *ParameterTable) error {
	return t.Frame().Write(w)
}
