package lint

import (
	"errors"
	"fmt"

	"petab-mapper/internal/formula"
)

var (
	// ErrUnknownObservable is returned for a measurement of an observable the
	// observable table does not define.
	ErrUnknownObservable = errors.New("unknown observable")
	// ErrOverrideCountMismatch is wrapped by OverrideCountError.
	ErrOverrideCountMismatch = errors.New("override count mismatch")
)

// OverrideCountError reports a measurement row whose number of observable or
// noise overrides matches neither zero nor the observable's placeholders.
type OverrideCountError struct {
	// Row is the 1-based index of the measurement.
	Row          int
	ObservableID string
	Kind         formula.Kind
	Expected     int
	Actual       int
}

func (e *OverrideCountError) Error() string {
	return fmt.Sprintf("measurement %d: observable %s expects 0 or %d %s parameter overrides, got %d",
		e.Row, e.ObservableID, e.Expected, e.Kind, e.Actual)
}

func (e *OverrideCountError) Unwrap() error {
	return ErrOverrideCountMismatch
}
