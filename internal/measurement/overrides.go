package measurement

import (
	"strings"

	"petab-mapper/internal/common"
	"petab-mapper/internal/formula"
	"petab-mapper/internal/table"
)

// OverrideSeparator separates override values in observableParameters and
// noiseParameters cells.
const OverrideSeparator = ";"

// SplitOverrides parses an override cell. Tokens are trimmed and missing
// tokens (empty or nan) dropped, so an empty or nan cell yields no overrides.
func SplitOverrides(cell string) []table.Value {
	var out []table.Value

	for _, tok := range strings.Split(cell, OverrideSeparator) {
		v := table.Parse(tok)
		if v.IsMissing() {
			continue
		}

		out = append(out, v)
	}

	return out
}

// Overrides returns the parsed overrides of the given kind for a row.
func Overrides(row table.MeasurementRow, kind formula.Kind) []table.Value {
	if kind == formula.Noise {
		return SplitOverrides(row.NoiseParameters)
	}

	return SplitOverrides(row.ObservableParameters)
}

// JoinOverrides renders overrides back into a cell.
func JoinOverrides(values []table.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}

	return strings.Join(parts, OverrideSeparator)
}

// ParameterIDs returns every parameter ID referenced by an override in the
// table, in first-occurrence order.
func ParameterIDs(mt *table.MeasurementTable) []string {
	ids := common.NewOrderedSet[string]()

	for _, row := range mt.Rows {
		for _, kind := range []formula.Kind{formula.Observable, formula.Noise} {
			for _, v := range Overrides(row, kind) {
				if v.IsReference() {
					ids.Add(v.Ref())
				}
			}
		}
	}

	return ids.Items()
}
