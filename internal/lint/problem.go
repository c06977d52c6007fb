package lint

import (
	"context"
	"fmt"

	"petab-mapper/internal/ctxlog"
	"petab-mapper/internal/diagnostic"
	"petab-mapper/internal/match"
	"petab-mapper/internal/model"
	"petab-mapper/internal/parameter"
	"petab-mapper/internal/problem"
	"petab-mapper/internal/table"
)

// LintProblem runs every table and cross-table check on p.
func LintProblem(ctx context.Context, p *problem.Problem) *diagnostic.Diagnostics {
	logger := ctxlog.FromContext(ctx)
	res := &diagnostic.Diagnostics{}

	logger.DebugContext(ctx, "checking condition table", "conditions", len(p.Conditions.Rows))
	res.Merge(*CheckConditionTable(p.Conditions))

	logger.DebugContext(ctx, "checking measurement table", "measurements", len(p.Measurements.Rows))
	res.Merge(*CheckMeasurementTable(p.Measurements))
	res.Merge(*CheckConditionsExist(p.Measurements, p.Conditions))

	if p.Observables != nil {
		logger.DebugContext(ctx, "checking observable table", "observables", len(p.Observables.Rows))
		res.Merge(*CheckObservableTable(p.Observables))
		res.Merge(*CheckOverrideCounts(p.Measurements, p.Observables))
	} else {
		res.AddWarning(CodeNoObservableTable,
			"no observable table; measured observables and override counts are not checked", TableObservable, "")
	}

	if p.Model != nil {
		checkConditionColumns(res, p.Conditions, p.Model)
	}

	if p.Parameters != nil {
		logger.DebugContext(ctx, "checking parameter table", "parameters", len(p.Parameters.Rows))
		res.Merge(*CheckParameterTable(p.Parameters))

		if p.Model != nil {
			checkRequiredParameters(res, p)
		}
	} else {
		res.AddWarning(CodeNoParameterTable, "no parameter table; every parameter is treated as estimated",
			TableParameter, "")
	}

	if MeasurementTableHasTimepointSpecificMappings(p.Measurements) {
		res.AddWarning(CodeTimepointSpecific,
			"measurements of one observable and condition use different overrides; parameter mapping will fail",
			TableMeasurement, "")
	}

	if MeasurementTableHasObservableParameterNumericOverrides(p.Measurements) {
		res.AddInfo(CodeNumericObsOverrides, "observable parameters are overridden by numbers", TableMeasurement, "")
	}

	if !ConditionTableIsParameterFree(p.Conditions) {
		res.AddInfo(CodeParametricConditions, "condition table references parameters", TableCondition, "")
	}

	logger.DebugContext(ctx, "lint finished",
		"errors", len(res.Errors), "warnings", len(res.Warnings), "infos", len(res.Infos))

	return res
}

// CheckConditionsExist reports measurements whose simulation or
// preequilibration condition is not in the condition table.
func CheckConditionsExist(mt *table.MeasurementTable, ct *table.ConditionTable) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	known := ct.IDs()
	reported := make(map[string]struct{})

	for i, row := range mt.Rows {
		for _, id := range []string{row.SimulationConditionID, table.OptionalID(row.PreequilibrationConditionID)} {
			if id == "" || ct.Has(id) {
				continue
			}

			if _, dup := reported[id]; dup {
				continue
			}

			reported[id] = struct{}{}

			res.AddError(CodeUnknownCondition,
				fmt.Sprintf("condition %q is not defined in the condition table", id),
				TableMeasurement, fmt.Sprintf("row %d", i+1), match.Suggest(id, known)...)
		}
	}

	return res
}

func checkConditionColumns(res *diagnostic.Diagnostics, ct *table.ConditionTable, m model.Model) {
	ids := model.IDs(m)

	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}

	for _, c := range ct.Columns {
		if _, ok := known[c]; !ok {
			res.AddError(CodeUnknownModelParameter,
				fmt.Sprintf("condition table column %q is not a model parameter", c),
				TableCondition, c, match.Suggest(c, ids)...)
		}
	}
}

// checkRequiredParameters compares the parameter table with the parameters
// the problem needs: missing ones are errors, unused ones warnings.
func checkRequiredParameters(res *diagnostic.Diagnostics, p *problem.Problem) {
	required, err := parameter.RequiredParameters(p.Model, p.Conditions, p.Measurements, p.Observables)
	if err != nil {
		res.AddError(CodeFormulaParse, err.Error(), TableObservable, "")
		return
	}

	requiredSet := make(map[string]struct{}, len(required))
	for _, id := range required {
		requiredSet[id] = struct{}{}

		if _, ok := p.Parameters.Get(id); !ok {
			res.AddError(CodeMissingParameter,
				fmt.Sprintf("parameter %q is missing from the parameter table", id), TableParameter, id)
		}
	}

	for _, id := range p.Parameters.IDs() {
		if p.Conditions.HasColumn(id) {
			res.AddError(CodeConditionAndParameter,
				fmt.Sprintf("parameter %q is set by the condition table and must not appear in the parameter table", id),
				TableParameter, id)

			continue
		}

		if _, ok := requiredSet[id]; !ok {
			res.AddWarning(CodeExtraneousParameter,
				fmt.Sprintf("parameter %q is not used by the problem", id), TableParameter, id,
				match.Suggest(id, required)...)
		}
	}
}
