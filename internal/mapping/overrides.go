package mapping

import (
	"fmt"

	"petab-mapper/internal/formula"
	"petab-mapper/internal/measurement"
	"petab-mapper/internal/table"
)

// ApplyConditionOverrides sets every override column of the condition table
// to its cell for conditionID. Missing cells leave the entry untouched, so
// the model default applies.
func ApplyConditionOverrides(m *ParameterMap, conditionID string, ct *table.ConditionTable) error {
	row, ok := ct.Row(conditionID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCondition, conditionID)
	}

	for i, column := range ct.Columns {
		v := row.Values[i]
		if v.IsMissing() {
			continue
		}

		m.Set(column, v)
	}

	return nil
}

// ApplyOutputOverrides sets the observable and noise placeholders of each
// row to the row's overrides, in row order. Writing two different values
// to one placeholder is an error, except for numeric noise overrides where
// the last row wins.
func ApplyOutputOverrides(m *ParameterMap, rows []table.MeasurementRow) error {
	written := make(map[string]table.Value)

	for _, row := range rows {
		for _, kind := range []formula.Kind{formula.Observable, formula.Noise} {
			for i, v := range measurement.Overrides(row, kind) {
				id := formula.PlaceholderID(kind, i+1, row.ObservableID)

				if prev, ok := written[id]; ok && prev != v {
					lastWins := kind == formula.Noise && prev.IsLiteral() && v.IsLiteral()
					if !lastWins {
						return fmt.Errorf("%w: %s is overridden by both %s and %s",
							ErrConflictingOverrides, id, prev, v)
					}
				}

				written[id] = v
				m.Set(id, v)
			}
		}
	}

	return nil
}
