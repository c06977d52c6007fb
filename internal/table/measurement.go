package table

import (
	"fmt"
	"io"
)

// MeasurementRow is one observation of an observable at a timepoint.
// Override cells are kept raw; see measurement.SplitOverrides.
type MeasurementRow struct {
	ObservableID                string
	PreequilibrationConditionID string
	SimulationConditionID       string
	Measurement                 Value
	Time                        Value
	ObservableParameters        string
	NoiseParameters             string
	ObservableTransformation    string
	NoiseDistribution           string
	DatasetID                   string
	ReplicateID                 string
}

// MeasurementTable is an ordered list of measurements.
type MeasurementTable struct {
	// Columns lists the columns present in the source file.
	Columns []string
	Rows    []MeasurementRow
}

// NewMeasurementTable creates a table holding rows with all standard columns.
func NewMeasurementTable(rows ...MeasurementRow) *MeasurementTable {
	return &MeasurementTable{
		Columns: MeasurementColumns,
		Rows:    rows,
	}
}

// HasColumn reports whether column was present in the source.
func (t *MeasurementTable) HasColumn(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}

	return false
}

// ParseMeasurementFrame builds a measurement table from a raw frame.
func ParseMeasurementFrame(f *Frame) (*MeasurementTable, error) {
	if err := f.Require(ObservableID, SimulationConditionID); err != nil {
		return nil, fmt.Errorf("measurement table: %w", err)
	}

	t := &MeasurementTable{Columns: f.Header}

	for i := range f.Records {
		t.Rows = append(t.Rows, MeasurementRow{
			ObservableID:                f.Cell(i, ObservableID),
			PreequilibrationConditionID: OptionalID(f.Cell(i, PreequilibrationConditionID)),
			SimulationConditionID:       f.Cell(i, SimulationConditionID),
			Measurement:                 Parse(f.Cell(i, Measurement)),
			Time:                        Parse(f.Cell(i, Time)),
			ObservableParameters:        f.Cell(i, ObservableParameters),
			NoiseParameters:             f.Cell(i, NoiseParameters),
			ObservableTransformation:    f.Cell(i, ObservableTransformation),
			NoiseDistribution:           f.Cell(i, NoiseDistribution),
			DatasetID:                   f.Cell(i, DatasetID),
			ReplicateID:                 f.Cell(i, ReplicateID),
		})
	}

	return t, nil
}

// ReadMeasurementTable reads a measurement table in TSV form.
func ReadMeasurementTable(r io.Reader) (*MeasurementTable, error) {
	f, err := ReadFrame(r)
	if err != nil {
		return nil, err
	}

	return ParseMeasurementFrame(f)
}

// LoadMeasurementTable reads a measurement table file.
func LoadMeasurementTable(path string) (*MeasurementTable, error) {
	f, err := ReadFrameFile(path)
	if err != nil {
		return nil, err
	}

	return ParseMeasurementFrame(f)
}

// ConcatMeasurementTables appends the rows of all tables in order.
func ConcatMeasurementTables(tables ...*MeasurementTable) *MeasurementTable {
	out := &MeasurementTable{}

	seen := make(map[string]struct{})
	for _, t := range tables {
		for _, c := range t.Columns {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				out.Columns = append(out.Columns, c)
			}
		}

		out.Rows = append(out.Rows, t.Rows...)
	}

	return out
}
