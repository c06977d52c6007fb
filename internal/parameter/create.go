package parameter

import (
	"fmt"

	"petab-mapper/internal/common"
	"petab-mapper/internal/formula"
	"petab-mapper/internal/measurement"
	"petab-mapper/internal/model"
	"petab-mapper/internal/table"
)

// RequiredParameters returns the IDs that belong in the parameter table:
// model parameters that are neither observables, placeholders nor condition
// columns, followed by parameters referenced by measurement overrides and
// by condition table cells.
func RequiredParameters(
	m model.Model,
	ct *table.ConditionTable,
	mt *table.MeasurementTable,
	ot *table.ObservableTable,
) ([]string, error) {
	placeholders, err := formula.TablePlaceholders(ot)
	if err != nil {
		return nil, err
	}

	excluded := common.NewOrderedSet(placeholders...)
	if ot != nil {
		for _, id := range ot.IDs() {
			excluded.Add(id)
		}
	}

	for _, c := range ct.Columns {
		excluded.Add(c)
	}

	ids := common.NewOrderedSet[string]()

	for _, p := range m.Parameters() {
		if !excluded.Has(p.ID) {
			ids.Add(p.ID)
		}
	}

	for _, id := range measurement.ParameterIDs(mt) {
		if !ct.HasColumn(id) {
			ids.Add(id)
		}
	}

	for _, row := range ct.Rows {
		for _, v := range row.Values {
			if v.IsReference() {
				ids.Add(v.Ref())
			}
		}
	}

	return ids.Items(), nil
}

// TableOptions controls the defaults of a generated parameter table.
type TableOptions struct {
	Scale      Scale
	LowerBound table.Value
	UpperBound table.Value
}

// CreateTable generates a parameter table holding every required parameter.
// All parameters are estimated; nominal values come from the model defaults
// where the model defines the parameter.
func CreateTable(
	m model.Model,
	ct *table.ConditionTable,
	mt *table.MeasurementTable,
	ot *table.ObservableTable,
	opts TableOptions,
) (*table.ParameterTable, error) {
	if opts.Scale == "" {
		opts.Scale = Log10
	}

	if _, err := ParseScale(string(opts.Scale)); err != nil {
		return nil, err
	}

	ids, err := RequiredParameters(m, ct, mt, ot)
	if err != nil {
		return nil, err
	}

	defaults := make(map[string]table.Value)
	for _, p := range m.Parameters() {
		defaults[p.ID] = p.Default
	}

	pt := table.NewParameterTable()

	for _, id := range ids {
		row := table.ParameterRow{
			ID:           id,
			Name:         id,
			Scale:        string(opts.Scale),
			LowerBound:   opts.LowerBound,
			UpperBound:   opts.UpperBound,
			NominalValue: defaults[id],
			Estimate:     table.Literal(1),
		}

		if err := pt.Add(row); err != nil {
			return nil, fmt.Errorf("creating parameter table: %w", err)
		}
	}

	return pt, nil
}
