package parameter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"petab-mapper/internal/table"
)

// OptimizationParameters returns every parameter ID of the table in order.
func OptimizationParameters(pt *table.ParameterTable) []string {
	return pt.IDs()
}

// EstimatedParameters returns the IDs of parameters that are estimated.
func EstimatedParameters(pt *table.ParameterTable) []string {
	var out []string

	for _, r := range pt.Rows {
		if r.Estimated() {
			out = append(out, r.ID)
		}
	}

	return out
}

// FixedIndices returns the row indices of parameters that are not estimated.
func FixedIndices(pt *table.ParameterTable) []int {
	var out []int

	for i, r := range pt.Rows {
		if !r.Estimated() {
			out = append(out, i)
		}
	}

	return out
}

// Scales returns the parsed scale of every row.
func Scales(pt *table.ParameterTable) ([]Scale, error) {
	out := make([]Scale, len(pt.Rows))

	for i, r := range pt.Rows {
		s, err := ParseScale(r.Scale)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", r.ID, err)
		}

		out[i] = s
	}

	return out, nil
}

// Column selects a numeric column of the parameter table.
type Column func(table.ParameterRow) table.Value

// Predefined numeric columns.
var (
	NominalValues Column = func(r table.ParameterRow) table.Value { return r.NominalValue }
	LowerBounds   Column = func(r table.ParameterRow) table.Value { return r.LowerBound }
	UpperBounds   Column = func(r table.ParameterRow) table.Value { return r.UpperBound }
)

// Values returns a numeric column in linear scale. Missing cells are NaN.
func Values(pt *table.ParameterTable, col Column) []float64 {
	out := make([]float64, len(pt.Rows))
	for i, r := range pt.Rows {
		out[i] = col(r).Float()
	}

	return out
}

// ScaledValues returns a numeric column mapped to each parameter's scale.
func ScaledValues(pt *table.ParameterTable, col Column) ([]float64, error) {
	scales, err := Scales(pt)
	if err != nil {
		return nil, err
	}

	return MapScale(Values(pt, col), scales)
}

// Prior describes the prior of an estimated parameter.
type Prior struct {
	ParameterID string
	Type        string
	Parameters  []float64
	Scale       Scale
	LowerBound  float64
	UpperBound  float64
}

// DefaultPriorType is assumed when an estimated parameter names no prior.
const DefaultPriorType = "parameterScaleUniform"

// Priors returns the priors of all estimated parameters. A parameter without
// a prior gets a uniform prior on its parameter scale between its bounds.
func Priors(pt *table.ParameterTable) ([]Prior, error) {
	var out []Prior

	for _, r := range pt.Rows {
		if !r.Estimated() {
			continue
		}

		s, err := ParseScale(r.Scale)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", r.ID, err)
		}

		p := Prior{
			ParameterID: r.ID,
			Type:        r.PriorType,
			Scale:       s,
			LowerBound:  r.LowerBound.Float(),
			UpperBound:  r.UpperBound.Float(),
		}

		if strings.TrimSpace(p.Type) == "" {
			p.Type = DefaultPriorType
			p.Parameters = []float64{p.LowerBound, p.UpperBound}
		} else {
			p.Parameters, err = parsePriorParameters(r.PriorParameters)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %w", r.ID, err)
			}
		}

		out = append(out, p)
	}

	return out, nil
}

func parsePriorParameters(cell string) ([]float64, error) {
	if strings.TrimSpace(cell) == "" {
		return nil, nil
	}

	parts := strings.Split(cell, ";")

	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid prior parameter %q", p)
		}

		out[i] = f
	}

	return out, nil
}

// BoundsViolated returns the IDs of estimated parameters whose nominal value
// lies outside their bounds.
func BoundsViolated(pt *table.ParameterTable) []string {
	var out []string

	for _, r := range pt.Rows {
		nominal := r.NominalValue.Float()
		if !r.Estimated() || math.IsNaN(nominal) {
			continue
		}

		if nominal < r.LowerBound.Float() || nominal > r.UpperBound.Float() {
			out = append(out, r.ID)
		}
	}

	return out
}
