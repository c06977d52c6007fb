package lint

import (
	"errors"
	"fmt"
	"slices"
	"unicode"

	"petab-mapper/internal/common"
	"petab-mapper/internal/diagnostic"
	"petab-mapper/internal/formula"
	"petab-mapper/internal/parameter"
	"petab-mapper/internal/table"
)

// CheckConditionTable checks condition IDs and override column names.
func CheckConditionTable(ct *table.ConditionTable) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	checkNames(res, TableCondition, "column", ct.Columns)

	for i, r := range ct.Rows {
		checkID(res, TableCondition, fmt.Sprintf("row %d", i+1), r.ID)
	}

	return res
}

// CheckMeasurementTable checks required columns, identifiers and the
// numeric columns of the measurement table.
func CheckMeasurementTable(mt *table.MeasurementTable) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	checkColumns(res, TableMeasurement, mt.HasColumn, table.RequiredMeasurementColumns)
	checkNames(res, TableMeasurement, "column", mt.Columns)

	hasMeasurement := mt.HasColumn(table.Measurement)
	hasTime := mt.HasColumn(table.Time)

	for i, r := range mt.Rows {
		loc := fmt.Sprintf("row %d", i+1)

		checkID(res, TableMeasurement, loc, r.ObservableID)
		checkID(res, TableMeasurement, loc, r.SimulationConditionID)

		if preeq := table.OptionalID(r.PreequilibrationConditionID); preeq != "" {
			checkID(res, TableMeasurement, loc, preeq)
		}

		if hasMeasurement && !r.Measurement.IsLiteral() {
			res.AddError(CodeNonNumericValue,
				fmt.Sprintf("measurement must be numeric, got %q", r.Measurement.Cell()), TableMeasurement, loc)
		}

		if hasTime && !r.Time.IsLiteral() {
			res.AddError(CodeNonNumericValue,
				fmt.Sprintf("time must be numeric, got %q", r.Time.Cell()), TableMeasurement, loc)
		}

		checkNoiseModel(res, TableMeasurement, loc, r.ObservableTransformation, r.NoiseDistribution)

		if isLogTransformation(r.ObservableTransformation) && r.Measurement.IsLiteral() && r.Measurement.Float() <= 0 {
			res.AddError(CodeNonPositiveLogData,
				fmt.Sprintf("measurement %s must be positive under %s transformation",
					r.Measurement, r.ObservableTransformation), TableMeasurement, loc)
		}
	}

	return res
}

// CheckParameterTable checks identifiers, scales, bounds, estimate flags,
// nominal values and priors.
func CheckParameterTable(pt *table.ParameterTable) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	checkColumns(res, TableParameter, pt.HasColumn, table.RequiredParameterColumns)
	checkNames(res, TableParameter, "column", pt.Columns)

	for i, r := range pt.Rows {
		loc := r.ID
		if loc == "" {
			loc = fmt.Sprintf("row %d", i+1)
		}

		checkID(res, TableParameter, loc, r.ID)
		checkParameterRow(res, loc, r)
	}

	if _, err := parameter.Priors(pt); err != nil && !errors.Is(err, parameter.ErrInvalidScale) {
		res.AddError(CodeInvalidPrior, err.Error(), TableParameter, "")
	}

	return res
}

func checkParameterRow(res *diagnostic.Diagnostics, loc string, r table.ParameterRow) {
	scale, err := parameter.ParseScale(r.Scale)
	if err != nil {
		res.AddError(CodeInvalidScale,
			fmt.Sprintf("expected lin, log or log10 but got %q", r.Scale), TableParameter, loc)
	}

	if !r.Estimate.IsMissing() && !(r.Estimate.IsLiteral() && (r.Estimate.Float() == 0 || r.Estimate.Float() == 1)) {
		res.AddError(CodeInvalidEstimate,
			fmt.Sprintf("estimate must be 0 or 1, got %q", r.Estimate.Cell()), TableParameter, loc)
	}

	if r.NominalValue.IsReference() {
		res.AddError(CodeNonNumericValue,
			fmt.Sprintf("nominal value must be numeric, got %q", r.NominalValue.Cell()), TableParameter, loc)
	} else if !r.Estimated() && r.NominalValue.IsMissing() {
		res.AddError(CodeMissingNominal, "fixed parameter has no nominal value", TableParameter, loc)
	}

	bounds := []struct {
		name  string
		value table.Value
	}{
		{table.LowerBound, r.LowerBound},
		{table.UpperBound, r.UpperBound},
	}

	numeric := true

	for _, b := range bounds {
		switch {
		case b.value.IsReference():
			res.AddError(CodeNonNumericBound,
				fmt.Sprintf("%s must be numeric, got %q", b.name, b.value.Cell()), TableParameter, loc)

			numeric = false
		case b.value.IsMissing():
			if r.Estimated() {
				res.AddError(CodeNonNumericBound,
					fmt.Sprintf("estimated parameter has no %s", b.name), TableParameter, loc)
			}

			numeric = false
		case err == nil && scale != parameter.Lin && b.value.Float() <= 0:
			res.AddError(CodeNonPositiveLogBound,
				fmt.Sprintf("%s %s must be positive on %s scale", b.name, b.value, scale), TableParameter, loc)
		}
	}

	if numeric && r.LowerBound.Float() > r.UpperBound.Float() {
		res.AddError(CodeBoundsOrder,
			fmt.Sprintf("lower bound %s is larger than upper bound %s", r.LowerBound, r.UpperBound),
			TableParameter, loc)
	}
}

// CheckObservableTable checks identifiers, formulas, placeholder numbering
// and noise models.
func CheckObservableTable(ot *table.ObservableTable) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	checkColumns(res, TableObservable, func(c string) bool { return slices.Contains(ot.Columns, c) },
		table.RequiredObservableColumns)
	checkNames(res, TableObservable, "column", ot.Columns)

	for i, r := range ot.Rows {
		loc := r.ID
		if loc == "" {
			loc = fmt.Sprintf("row %d", i+1)
		}

		checkID(res, TableObservable, loc, r.ID)
		checkNoiseModel(res, TableObservable, loc, r.Transformation, r.NoiseDistribution)

		for _, f := range []struct {
			kind formula.Kind
			src  string
		}{
			{formula.Observable, r.Formula},
			{formula.Noise, r.NoiseFormula},
		} {
			_, err := formula.OrderedPlaceholders(f.src, r.ID, f.kind)

			switch {
			case errors.Is(err, formula.ErrParse):
				res.AddError(CodeFormulaParse, err.Error(), TableObservable, loc)
			case errors.Is(err, formula.ErrPlaceholderGap):
				res.AddError(CodePlaceholderGap, err.Error(), TableObservable, loc)
			case err != nil:
				res.AddError(CodeFormulaParse, err.Error(), TableObservable, loc)
			}
		}
	}

	return res
}

func checkColumns(res *diagnostic.Diagnostics, tableName string, has func(string) bool, required []string) {
	for _, c := range required {
		if !has(c) {
			res.AddError(CodeMissingColumn, fmt.Sprintf("required column %s is missing", c), tableName, "")
		}
	}
}

func checkNames(res *diagnostic.Diagnostics, tableName, what string, names []string) {
	for _, n := range names {
		if common.HasSurroundingSpace(n) {
			res.AddError(CodeSurroundingSpace,
				fmt.Sprintf("%s %q has leading or trailing whitespace", what, n), tableName, n)
		}
	}
}

// checkID reports empty identifiers, identifiers with surrounding
// whitespace and identifiers starting with a digit.
func checkID(res *diagnostic.Diagnostics, tableName, loc, id string) {
	switch {
	case common.IsBlank(id):
		res.AddError(CodeEmptyID, "identifier is empty", tableName, loc)
	case common.HasSurroundingSpace(id):
		res.AddError(CodeSurroundingSpace,
			fmt.Sprintf("identifier %q has leading or trailing whitespace", id), tableName, loc)
	case unicode.IsDigit([]rune(id)[0]):
		res.AddError(CodeInvalidID, fmt.Sprintf("identifier %q starts with a digit", id), tableName, loc)
	}
}

func checkNoiseModel(res *diagnostic.Diagnostics, tableName, loc, transformation, distribution string) {
	if transformation != "" && !slices.Contains(Transformations, transformation) {
		res.AddError(CodeInvalidTransformation,
			fmt.Sprintf("unknown observable transformation %q", transformation), tableName, loc)
	}

	if distribution != "" && !slices.Contains(NoiseDistributions, distribution) {
		res.AddError(CodeInvalidDistribution,
			fmt.Sprintf("unknown noise distribution %q", distribution), tableName, loc)
	}
}

func isLogTransformation(t string) bool {
	return t == "log" || t == "log10"
}
