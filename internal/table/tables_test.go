package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const conditionTSV = "conditionId\tconditionName\tfixedParameter1\tk2\n" +
	"condition1\tfirst\t1.0\t\n" +
	"condition2\t\t2.0\tdynamicOverride\n"

func TestReadConditionTable(t *testing.T) {
	ct, err := ReadConditionTable(strings.NewReader(conditionTSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"fixedParameter1", "k2"}, ct.Columns)
	assert.Equal(t, []string{"condition1", "condition2"}, ct.IDs())
	assert.True(t, ct.HasColumn("k2"))
	assert.False(t, ct.HasColumn(ConditionName))

	v, ok := ct.Value("condition1", "fixedParameter1")
	require.True(t, ok)
	assert.Equal(t, Literal(1), v)

	v, ok = ct.Value("condition1", "k2")
	require.True(t, ok)
	assert.True(t, v.IsMissing())

	v, _ = ct.Value("condition2", "k2")
	assert.Equal(t, Reference("dynamicOverride"), v)

	_, ok = ct.Value("condition3", "k2")
	assert.False(t, ok)

	row, ok := ct.Row("condition1")
	require.True(t, ok)
	assert.Equal(t, "first", row.Name)
}

func TestReadConditionTable_Errors(t *testing.T) {
	_, err := ReadConditionTable(strings.NewReader("id\tk\nc1\t1\n"))
	require.ErrorIs(t, err, ErrMissingColumn)

	_, err = ReadConditionTable(strings.NewReader("conditionId\tk\nc1\t1\nc1\t2\n"))
	require.ErrorIs(t, err, ErrDuplicateID)

	_, err = ReadConditionTable(strings.NewReader(""))
	require.Error(t, err)
}

func TestConditionTable_AddChecksWidth(t *testing.T) {
	ct := NewConditionTable("a", "b")
	err := ct.Add(ConditionRow{ID: "c1", Values: []Value{Literal(1)}})
	require.ErrorIs(t, err, ErrRowWidth)
}

func TestConditionTable_ZeroValue(t *testing.T) {
	ct := &ConditionTable{Columns: []string{"k1"}}

	require.NoError(t, ct.Add(ConditionRow{ID: "c1", Values: []Value{Literal(2)}}))
	require.ErrorIs(t, ct.Add(ConditionRow{ID: "c1", Values: []Value{Literal(3)}}), ErrDuplicateID)

	assert.True(t, ct.Has("c1"))

	v, ok := ct.Value("c1", "k1")
	require.True(t, ok)
	assert.Equal(t, Literal(2), v)

	require.NoError(t, (&ConditionTable{}).Add(ConditionRow{ID: "c0"}))
}

func TestConcatConditionTables(t *testing.T) {
	a := NewConditionTable("k1")
	require.NoError(t, a.Add(ConditionRow{ID: "c1", Values: []Value{Literal(1)}}))

	b := NewConditionTable("k2", "k1")
	require.NoError(t, b.Add(ConditionRow{ID: "c2", Values: []Value{Literal(2), Literal(3)}}))

	out, err := ConcatConditionTables(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"k1", "k2"}, out.Columns)

	v, _ := out.Value("c1", "k2")
	assert.True(t, v.IsMissing())

	v, _ = out.Value("c2", "k1")
	assert.Equal(t, Literal(3), v)

	_, err = ConcatConditionTables(a, a)
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestReadMeasurementTable(t *testing.T) {
	src := "observableId\tsimulationConditionId\tmeasurement\ttime\tobservableParameters\tnoiseParameters\n" +
		"obs1\tcondition1\t0.5\t1.0\tp1;p2\t\n" +
		"obs1\tcondition1\t0.7\tinf\n"

	mt, err := ReadMeasurementTable(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, mt.Rows, 2)

	assert.Equal(t, "p1;p2", mt.Rows[0].ObservableParameters)
	assert.Equal(t, "", mt.Rows[0].PreequilibrationConditionID)
	assert.Equal(t, Literal(0.5), mt.Rows[0].Measurement)
	assert.Equal(t, "", mt.Rows[1].NoiseParameters, "short rows are padded")
	assert.True(t, mt.HasColumn(NoiseParameters))
	assert.False(t, mt.HasColumn(PreequilibrationConditionID))

	_, err = ReadMeasurementTable(strings.NewReader("observableId\tmeasurement\nobs1\t1\n"))
	require.ErrorIs(t, err, ErrMissingColumn)
}

func TestReadMeasurementTable_NaNPreequilibration(t *testing.T) {
	src := "observableId\tpreequilibrationConditionId\tsimulationConditionId\tmeasurement\ttime\n" +
		"obs1\tnan\tcondition1\t0.5\t1\n" +
		"obs1\tpreeq\tcondition1\t0.5\t2\n"

	mt, err := ReadMeasurementTable(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, mt.Rows, 2)

	assert.Equal(t, "", mt.Rows[0].PreequilibrationConditionID)
	assert.Equal(t, "preeq", mt.Rows[1].PreequilibrationConditionID)
}

func TestConcatMeasurementTables(t *testing.T) {
	a := &MeasurementTable{Columns: []string{ObservableID, SimulationConditionID}, Rows: []MeasurementRow{{ObservableID: "o1"}}}
	b := &MeasurementTable{Columns: []string{ObservableID, Time}, Rows: []MeasurementRow{{ObservableID: "o2"}}}

	out := ConcatMeasurementTables(a, b)
	assert.Equal(t, []string{ObservableID, SimulationConditionID, Time}, out.Columns)
	assert.Len(t, out.Rows, 2)
}

func TestParameterTable_RoundTrip(t *testing.T) {
	src := "parameterId\tparameterScale\tlowerBound\tupperBound\tnominalValue\testimate\n" +
		"k1\tlog10\t1e-3\t1e3\t-2\t0\n" +
		"k2\tlin\t0\t10\t\t1\n"

	pt, err := ReadParameterTable(strings.NewReader(src))
	require.NoError(t, err)

	k1, ok := pt.Get("k1")
	require.True(t, ok)
	assert.Equal(t, "log10", k1.Scale)
	assert.Equal(t, Literal(-2), k1.NominalValue)
	assert.False(t, k1.Estimated())

	k2, _ := pt.Get("k2")
	assert.True(t, k2.Estimated())
	assert.True(t, k2.NominalValue.IsMissing())

	var buf bytes.Buffer
	require.NoError(t, WriteParameterTable(&buf, pt))

	again, err := ReadParameterTable(&buf)
	require.NoError(t, err)
	assert.Equal(t, pt.Rows, again.Rows)
}

func TestParameterRow_EstimatedWithoutColumn(t *testing.T) {
	pt, err := ReadParameterTable(strings.NewReader("parameterId\tnominalValue\nk1\t3\n"))
	require.NoError(t, err)

	k1, _ := pt.Get("k1")
	assert.True(t, k1.Estimated())

	var nilTable *ParameterTable
	_, ok := nilTable.Get("k1")
	assert.False(t, ok)
}

func TestReadObservableTable(t *testing.T) {
	src := "observableId\tobservableFormula\tnoiseFormula\n" +
		"obs1\tobservableParameter1_obs1 * x\tnoiseParameter1_obs1\n"

	ot, err := ReadObservableTable(strings.NewReader(src))
	require.NoError(t, err)

	obs, ok := ot.Get("obs1")
	require.True(t, ok)
	assert.Equal(t, "observableParameter1_obs1 * x", obs.Formula)
	assert.Equal(t, []string{"obs1"}, ot.IDs())

	_, err = ConcatObservableTables(ot, ot)
	require.ErrorIs(t, err, ErrDuplicateID)
}
