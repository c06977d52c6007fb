package plan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"petab-mapper/internal/ctxlog"
	"petab-mapper/internal/formula"
	"petab-mapper/internal/lint"
	"petab-mapper/internal/mapping"
	"petab-mapper/internal/measurement"
	"petab-mapper/internal/metrics"
	"petab-mapper/internal/model"
	"petab-mapper/internal/table"
)

// ErrTimepointSpecificOverrides is returned when measurements of one
// observable and condition pair use different overrides.
var ErrTimepointSpecificOverrides = errors.New("timepoint-specific overrides are not supported by parameter mapping")

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// Parallelism is the number of conditions resolved concurrently.
	// Values below 2 resolve sequentially.
	Parallelism int
	// WarnUnmapped logs placeholders left without an override and reports
	// them as warnings.
	WarnUnmapped bool
	// MergePreeqAndSim merges the preequilibration and simulation halves
	// of every condition pair.
	MergePreeqAndSim bool
	// Metrics receives resolution metrics. Nil disables them.
	Metrics *metrics.Metrics
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		Parallelism:  1,
		WarnUnmapped: true,
	}
}

// Input holds the tables a plan is resolved from.
type Input struct {
	Conditions   *table.ConditionTable
	Measurements *table.MeasurementTable
	// Parameters may be nil, in which case every parameter is estimated.
	Parameters *table.ParameterTable
	// Observables may be nil. When set, its placeholders are part of the
	// mapping even if no measurement overrides them.
	Observables *table.ObservableTable
	Model       model.Model
}

// Resolver performs the resolution pipeline.
type Resolver struct {
	in     Input
	config ResolutionConfig
}

// NewResolver creates a new Resolver.
func NewResolver(in Input, config ResolutionConfig) *Resolver {
	return &Resolver{in: in, config: config}
}

// Resolve runs the full resolution pipeline and returns a ResolvedMappingPlan.
// The first failing condition aborts resolution; no partial plan is returned.
func (r *Resolver) Resolve(ctx context.Context) (plan *ResolvedMappingPlan, err error) {
	start := time.Now()

	defer func() {
		r.config.Metrics.ObserveResolution(time.Since(start), err)
	}()

	if r.in.Conditions == nil || r.in.Measurements == nil || r.in.Model == nil {
		return nil, errors.New("condition table, measurement table and model are required")
	}

	if lint.MeasurementTableHasTimepointSpecificMappings(r.in.Measurements) {
		return nil, ErrTimepointSpecificOverrides
	}

	if r.in.Observables != nil {
		if err := lint.ValidateOverrideCounts(r.in.Measurements, r.in.Observables); err != nil {
			return nil, err
		}
	}

	base, err := r.baseMapping()
	if err != nil {
		return nil, err
	}

	conditions := measurement.SimulationConditions(r.in.Measurements)
	results := make([]ConditionMapping, len(conditions))

	logger := ctxlog.FromContext(ctx)
	logger.DebugContext(ctx, "Resolving parameter mapping",
		"conditions", len(conditions), "parallelism", r.config.Parallelism)

	if r.config.Parallelism > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.config.Parallelism)

		for i, c := range conditions {
			i, c := i, c

			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}

				res, err := r.resolveCondition(gctx, c, base)
				if err != nil {
					return err
				}

				results[i] = res

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, c := range conditions {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			res, err := r.resolveCondition(ctx, c, base)
			if err != nil {
				return nil, err
			}

			results[i] = res
		}
	}

	plan = &ResolvedMappingPlan{Conditions: results}

	if r.config.WarnUnmapped {
		for _, c := range results {
			if len(c.Unmapped) == 0 {
				continue
			}

			plan.Diagnostics.AddWarning("unmapped_placeholders",
				fmt.Sprintf("no override for %s", strings.Join(c.Unmapped, ", ")),
				lint.TableMeasurement, c.String())
		}
	}

	return plan, nil
}

// baseMapping is the identity over the model parameters, extended by the
// placeholders of the observable table.
func (r *Resolver) baseMapping() (*mapping.ParameterMap, error) {
	base := mapping.Identity(r.in.Model)

	placeholders, err := formula.TablePlaceholders(r.in.Observables)
	if err != nil {
		return nil, err
	}

	for _, p := range placeholders {
		if !base.Has(p) {
			base.Set(p, table.Reference(p))
		}
	}

	return base, nil
}

// resolveCondition resolves both halves of one condition pair.
func (r *Resolver) resolveCondition(
	ctx context.Context,
	c measurement.SimulationCondition,
	base *mapping.ParameterMap,
) (ConditionMapping, error) {
	rows := measurement.RowsForCondition(r.in.Measurements, c)

	out := ConditionMapping{
		SimulationCondition: c,
		Parameters:          mapping.ParameterMapping{Preeq: &mapping.ParameterMap{}},
		Scales:              mapping.ScaleMapping{Preeq: &mapping.ScaleMap{}},
	}

	if c.HasPreequilibration() {
		preeq, err := mapping.ForCondition(ctx, c.PreequilibrationID, rows, base,
			r.in.Conditions, r.in.Parameters, mapping.Options{Preequilibration: true})
		if err != nil {
			return ConditionMapping{}, err
		}

		out.Parameters.Preeq = preeq.Parameters
		out.Scales.Preeq = preeq.Scales
	}

	sim, err := mapping.ForCondition(ctx, c.SimulationID, rows, base,
		r.in.Conditions, r.in.Parameters, mapping.Options{WarnUnmapped: r.config.WarnUnmapped})
	if err != nil {
		return ConditionMapping{}, err
	}

	out.Parameters.Sim = sim.Parameters
	out.Scales.Sim = sim.Scales
	out.Unmapped = sim.Unmapped

	if r.config.MergePreeqAndSim {
		if err := mapping.MergePreeqAndSim(&out.Parameters, &out.Scales); err != nil {
			return ConditionMapping{}, fmt.Errorf("condition %s: %w", c, err)
		}
	}

	r.config.Metrics.ObserveCondition(len(out.Unmapped))

	return out, nil
}

// ResolveMapping resolves the parameter mapping of every condition pair of
// the measurement table.
func ResolveMapping(
	ctx context.Context,
	ct *table.ConditionTable,
	mt *table.MeasurementTable,
	pt *table.ParameterTable,
	m model.Model,
	cfg ResolutionConfig,
) ([]ConditionMapping, error) {
	plan, err := NewResolver(Input{
		Conditions:   ct,
		Measurements: mt,
		Parameters:   pt,
		Model:        m,
	}, cfg).Resolve(ctx)
	if err != nil {
		return nil, err
	}

	return plan.Conditions, nil
}
