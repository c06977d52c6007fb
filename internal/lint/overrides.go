package lint

import (
	"errors"
	"fmt"
	"strings"

	"petab-mapper/internal/common"
	"petab-mapper/internal/diagnostic"
	"petab-mapper/internal/formula"
	"petab-mapper/internal/match"
	"petab-mapper/internal/measurement"
	"petab-mapper/internal/table"
)

// placeholderCount is the number of placeholders in an observable's formulas.
type placeholderCount struct {
	observable int
	noise      int
}

func placeholderCounts(ot *table.ObservableTable) (map[string]placeholderCount, error) {
	counts := make(map[string]placeholderCount, len(ot.Rows))

	for _, obs := range ot.Rows {
		observable, err := formula.Placeholders(obs.Formula, obs.ID, formula.Observable)
		if err != nil {
			return nil, fmt.Errorf("observable %s: %w", obs.ID, err)
		}

		noise, err := formula.Placeholders(obs.NoiseFormula, obs.ID, formula.Noise)
		if err != nil {
			return nil, fmt.Errorf("observable %s: %w", obs.ID, err)
		}

		counts[obs.ID] = placeholderCount{observable: len(observable), noise: len(noise)}
	}

	return counts, nil
}

// ValidateOverrideCounts checks that every measurement gives either no
// overrides or exactly one per placeholder of its observable. A single
// numeric noise override is accepted for observables without noise
// placeholders. The first violation is returned; unknown observables wrap
// ErrUnknownObservable and count mismatches are *OverrideCountError.
func ValidateOverrideCounts(mt *table.MeasurementTable, ot *table.ObservableTable) error {
	errs, err := overrideCountViolations(mt, ot)
	if err != nil {
		return err
	}

	if len(errs) > 0 {
		return errs[0]
	}

	return nil
}

// CheckOverrideCounts is ValidateOverrideCounts reporting every violation.
func CheckOverrideCounts(mt *table.MeasurementTable, ot *table.ObservableTable) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	errs, err := overrideCountViolations(mt, ot)
	if err != nil {
		res.AddError(CodeFormulaParse, err.Error(), TableObservable, "")
		return res
	}

	for _, e := range errs {
		var countErr *OverrideCountError
		if errors.As(e, &countErr) {
			res.AddError(CodeOverrideCount, e.Error(), TableMeasurement, fmt.Sprintf("row %d", countErr.Row))
			continue
		}

		var unknown *unknownObservableError
		if errors.As(e, &unknown) {
			res.AddError(CodeUnknownObservable, e.Error(), TableMeasurement, fmt.Sprintf("row %d", unknown.row),
				unknown.suggestions...)
		}
	}

	return res
}

type unknownObservableError struct {
	row         int
	id          string
	suggestions []string
}

func (e *unknownObservableError) Error() string {
	msg := fmt.Sprintf("measurement %d: %s %q", e.row, ErrUnknownObservable, e.id)
	if len(e.suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.suggestions, ", "))
	}

	return msg
}

func (e *unknownObservableError) Unwrap() error {
	return ErrUnknownObservable
}

func overrideCountViolations(mt *table.MeasurementTable, ot *table.ObservableTable) ([]error, error) {
	if ot == nil {
		ot = &table.ObservableTable{}
	}

	counts, err := placeholderCounts(ot)
	if err != nil {
		return nil, err
	}

	var errs []error

	for i, row := range mt.Rows {
		expected, ok := counts[row.ObservableID]
		if !ok {
			errs = append(errs, &unknownObservableError{
				row:         i + 1,
				id:          row.ObservableID,
				suggestions: match.Suggest(row.ObservableID, ot.IDs()),
			})

			continue
		}

		observable := measurement.Overrides(row, formula.Observable)
		if len(observable) != 0 && len(observable) != expected.observable {
			errs = append(errs, &OverrideCountError{
				Row:          i + 1,
				ObservableID: row.ObservableID,
				Kind:         formula.Observable,
				Expected:     expected.observable,
				Actual:       len(observable),
			})
		}

		noise := measurement.Overrides(row, formula.Noise)
		if common.IsEmpty(noise) || len(noise) == expected.noise {
			continue
		}

		if expected.noise == 0 && common.IsSingle(noise) && noise[0].IsLiteral() {
			continue
		}

		errs = append(errs, &OverrideCountError{
			Row:          i + 1,
			ObservableID: row.ObservableID,
			Kind:         formula.Noise,
			Expected:     expected.noise,
			Actual:       len(noise),
		})
	}

	return errs, nil
}
