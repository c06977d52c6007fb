package parameter

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petab-mapper/internal/model"
	"petab-mapper/internal/table"
)

func TestParseScale(t *testing.T) {
	tests := []struct {
		in      string
		want    Scale
		wantErr bool
	}{
		{in: "", want: Lin},
		{in: "lin", want: Lin},
		{in: "log", want: Log},
		{in: "log10", want: Log10},
		{in: "log2", wantErr: true},
		{in: "LOG", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScale(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidScale)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScaleRoundTrip(t *testing.T) {
	for _, s := range []Scale{Lin, Log, Log10} {
		for _, x := range []float64{1e-8, 0.01, 1, 2.5, 1e5, 1e12} {
			scaled, err := ScaleValue(x, s)
			require.NoError(t, err)

			back, err := UnscaleValue(scaled, s)
			require.NoError(t, err)
			assert.InEpsilon(t, x, back, 1e-12, "scale %s, x %g", s, x)
		}
	}
}

func TestScaleValue(t *testing.T) {
	v, err := ScaleValue(100, Log10)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-12)

	v, err = UnscaleValue(5, Log10)
	require.NoError(t, err)
	assert.InDelta(t, 1e5, v, 1e-6)

	v, err = UnscaleValue(-2, Log10)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, v, 1e-15)

	_, err = ScaleValue(1, Scale("sqrt"))
	require.ErrorIs(t, err, ErrInvalidScale)
}

func TestMapScale(t *testing.T) {
	got, err := MapScale([]float64{10, math.E, 3}, []Scale{Log10, Log, Lin})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 3}, got, 1e-12)

	_, err = MapScale([]float64{1}, nil)
	require.Error(t, err)
}

const parameterTSV = "parameterId\tparameterScale\tlowerBound\tupperBound\tnominalValue\testimate\tpriorType\tpriorParameters\n" +
	"k1\tlog10\t0.001\t1000\t10\t1\tnormal\t1;0.5\n" +
	"k2\tlin\t0\t10\t2\t0\t\t\n" +
	"k3\tlog\t1\t100\t200\t1\t\t\n"

func readParameters(t *testing.T) *table.ParameterTable {
	t.Helper()

	pt, err := table.ReadParameterTable(strings.NewReader(parameterTSV))
	require.NoError(t, err)

	return pt
}

func TestParameterQueries(t *testing.T) {
	pt := readParameters(t)

	assert.Equal(t, []string{"k1", "k2", "k3"}, OptimizationParameters(pt))
	assert.Equal(t, []string{"k1", "k3"}, EstimatedParameters(pt))
	assert.Equal(t, []int{1}, FixedIndices(pt))
	assert.Equal(t, []string{"k3"}, BoundsViolated(pt))

	nominal, err := ScaledValues(pt, NominalValues)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, math.Log(200)}, nominal, 1e-12)

	lb, err := ScaledValues(pt, LowerBounds)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-3, 0, 0}, lb, 1e-12)

	assert.Equal(t, []float64{1000, 10, 100}, Values(pt, UpperBounds))
}

func TestPriors(t *testing.T) {
	priors, err := Priors(readParameters(t))
	require.NoError(t, err)
	require.Len(t, priors, 2)

	assert.Equal(t, Prior{
		ParameterID: "k1", Type: "normal", Parameters: []float64{1, 0.5},
		Scale: Log10, LowerBound: 0.001, UpperBound: 1000,
	}, priors[0])
	assert.Equal(t, DefaultPriorType, priors[1].Type)
	assert.Equal(t, []float64{1, 100}, priors[1].Parameters)
}

func TestRequiredParametersAndCreateTable(t *testing.T) {
	m := model.ParameterList{
		{ID: "k1", Default: table.Literal(0.3)},
		{ID: "fixedParameter1", Default: table.Literal(1)},
		{ID: "observableParameter1_obs1"},
		{ID: "k2"},
	}

	ct := table.NewConditionTable("fixedParameter1", "k2")
	require.NoError(t, ct.Add(table.ConditionRow{ID: "c1", Values: []table.Value{table.Literal(1), table.Reference("k2_c1")}}))

	mt := table.NewMeasurementTable(
		table.MeasurementRow{ObservableID: "obs1", SimulationConditionID: "c1", ObservableParameters: "scaling;1.0", NoiseParameters: "k2"},
	)

	ot, err := table.NewObservableTable(table.ObservableRow{
		ID: "obs1", Formula: "observableParameter1_obs1 * k1", NoiseFormula: "1",
	})
	require.NoError(t, err)

	ids, err := RequiredParameters(m, ct, mt, ot)
	require.NoError(t, err)
	assert.Equal(t, []string{"k1", "scaling", "k2_c1"}, ids)

	pt, err := CreateTable(m, ct, mt, ot, TableOptions{LowerBound: table.Literal(1e-5), UpperBound: table.Literal(1e5)})
	require.NoError(t, err)
	require.Len(t, pt.Rows, 3)

	k1, ok := pt.Get("k1")
	require.True(t, ok)
	assert.Equal(t, string(Log10), k1.Scale)
	assert.Equal(t, table.Literal(0.3), k1.NominalValue)
	assert.True(t, k1.Estimated())

	scaling, _ := pt.Get("scaling")
	assert.True(t, scaling.NominalValue.IsMissing())

	_, err = CreateTable(m, ct, mt, ot, TableOptions{Scale: "bogus"})
	require.ErrorIs(t, err, ErrInvalidScale)
}
