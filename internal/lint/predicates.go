package lint

import (
	"petab-mapper/internal/formula"
	"petab-mapper/internal/measurement"
	"petab-mapper/internal/table"
)

type overrideGroup struct {
	observableID         string
	condition            measurement.SimulationCondition
	observableParameters string
	noiseParameters      string
}

// MeasurementTableHasTimepointSpecificMappings reports whether measurements
// of one observable under one condition pair use different overrides, so
// that a single parameter mapping per condition cannot describe them.
// Purely numeric noise overrides are per-data-point sigmas and do not count.
func MeasurementTableHasTimepointSpecificMappings(mt *table.MeasurementTable) bool {
	type key struct {
		observableID string
		condition    measurement.SimulationCondition
	}

	first := make(map[key]overrideGroup)

	for _, row := range mt.Rows {
		g := overrideGroup{
			observableID:         row.ObservableID,
			condition:            measurement.ConditionOf(row),
			observableParameters: measurement.JoinOverrides(measurement.Overrides(row, formula.Observable)),
		}

		noise := measurement.Overrides(row, formula.Noise)
		if !allLiteral(noise) {
			g.noiseParameters = measurement.JoinOverrides(noise)
		}

		k := key{observableID: g.observableID, condition: g.condition}

		seen, ok := first[k]
		if !ok {
			first[k] = g
			continue
		}

		if seen != g {
			return true
		}
	}

	return false
}

// MeasurementTableHasObservableParameterNumericOverrides reports whether any
// observable parameter is overridden by a number.
func MeasurementTableHasObservableParameterNumericOverrides(mt *table.MeasurementTable) bool {
	for _, row := range mt.Rows {
		for _, v := range measurement.Overrides(row, formula.Observable) {
			if v.IsLiteral() {
				return true
			}
		}
	}

	return false
}

// ConditionTableIsParameterFree reports whether the condition table holds
// only numbers, i.e. no cell references a parameter.
func ConditionTableIsParameterFree(ct *table.ConditionTable) bool {
	for _, r := range ct.Rows {
		for _, v := range r.Values {
			if v.IsReference() {
				return false
			}
		}
	}

	return true
}

func allLiteral(values []table.Value) bool {
	for _, v := range values {
		if !v.IsLiteral() {
			return false
		}
	}

	return true
}
