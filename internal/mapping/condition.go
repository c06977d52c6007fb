package mapping

import (
	"context"
	"fmt"

	"petab-mapper/internal/ctxlog"
	"petab-mapper/internal/table"
)

// Options configures the resolution of one condition.
type Options struct {
	// Preequilibration resolves the preequilibration half: output
	// overrides are skipped and no unmapped warning is logged.
	Preequilibration bool
	// WarnUnmapped logs placeholders left without an override.
	WarnUnmapped bool
}

// Result is the resolved mapping of one condition half.
type Result struct {
	Parameters *ParameterMap
	Scales     *ScaleMap
	// Unmapped lists placeholders that were set to missing.
	Unmapped []string
}

// ForCondition resolves the mapping for conditionID starting from a copy of
// base. rows are the measurements of the condition pair being resolved.
func ForCondition(
	ctx context.Context,
	conditionID string,
	rows []table.MeasurementRow,
	base *ParameterMap,
	ct *table.ConditionTable,
	pt *table.ParameterTable,
	opts Options,
) (Result, error) {
	m := base.Clone()

	if err := ApplyConditionOverrides(m, conditionID, ct); err != nil {
		return Result{}, err
	}

	if !opts.Preequilibration {
		if err := ApplyOutputOverrides(m, rows); err != nil {
			return Result{}, fmt.Errorf("condition %q: %w", conditionID, err)
		}
	}

	if err := FillNominalValues(m, pt); err != nil {
		return Result{}, fmt.Errorf("condition %q: %w", conditionID, err)
	}

	logger := ctxlog.FromContext(ctx).With("condition", conditionID, "preequilibration", opts.Preequilibration)
	unmapped := HandleMissingOverrides(ctxlog.WithLogger(ctx, logger), m, opts.WarnUnmapped && !opts.Preequilibration)

	scales, err := ScalesFor(m, pt)
	if err != nil {
		return Result{}, fmt.Errorf("condition %q: %w", conditionID, err)
	}

	logger.Debug("Resolved condition mapping", "parameters", m.Len(), "unmapped", len(unmapped))

	return Result{Parameters: m, Scales: scales, Unmapped: unmapped}, nil
}
