package mapping

import (
	"errors"
	"fmt"

	"petab-mapper/internal/parameter"
	"petab-mapper/internal/table"
)

var (
	// ErrUnknownCondition is returned when a condition ID is not in the condition table.
	ErrUnknownCondition = errors.New("unknown condition")
	// ErrConflictingOverrides is returned when one condition overrides a
	// placeholder with two different values.
	ErrConflictingOverrides = errors.New("conflicting overrides")
	// ErrInconsistentPreeq is wrapped by every *MergeError.
	ErrInconsistentPreeq = errors.New("preequilibration and simulation mappings disagree")
)

// MergeError reports a parameter whose preequilibration and simulation
// mappings cannot be merged.
type MergeError struct {
	ParameterID string
	Preeq       table.Value
	Sim         table.Value
	PreeqScale  parameter.Scale
	SimScale    parameter.Scale
}

func (e *MergeError) Error() string {
	if e.Preeq == e.Sim {
		return fmt.Sprintf("%s has scale %s for preequilibration and %s for simulation",
			e.ParameterID, e.PreeqScale, e.SimScale)
	}

	return fmt.Sprintf("%s has value %s for preequilibration and %s for simulation",
		e.ParameterID, e.Preeq, e.Sim)
}

func (e *MergeError) Unwrap() error {
	return ErrInconsistentPreeq
}
