package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petab-mapper/internal/table"
)

func TestFreeSymbols(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		want    []string
	}{
		{name: "empty", formula: "", want: nil},
		{name: "constant", formula: "1.0", want: []string{}},
		{name: "sum", formula: "a + b", want: []string{"a", "b"}},
		{name: "repeated symbol", formula: "a * a + a", want: []string{"a"}},
		{name: "function names excluded", formula: "exp(k1) * log10(x)", want: []string{"k1", "x"}},
		{name: "double star power", formula: "scale ** 2 * x", want: []string{"scale", "x"}},
		{name: "caret power", formula: "x^n", want: []string{"x", "n"}},
		{name: "minus without spaces", formula: "a-b", want: []string{"a", "b"}},
		{name: "exponent literal", formula: "1e-3*k_a", want: []string{"k_a"}},
		{name: "leading dot literal", formula: ".5*x", want: []string{"x"}},
		{name: "underscore identifier", formula: "_x + y", want: []string{"_x", "y"}},
		{name: "keyword-like names", formula: "null + true", want: []string{"null", "true"}},
		{name: "division", formula: "a/b", want: []string{"a", "b"}},
		{
			name:    "floor division",
			formula: "observableParameter1_o // 2 + observableParameter2_o",
			want:    []string{"observableParameter1_o", "observableParameter2_o"},
		},
		{
			name:    "placeholders",
			formula: "observableParameter1_obs1 * x + observableParameter2_obs1",
			want:    []string{"observableParameter1_obs1", "x", "observableParameter2_obs1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FreeSymbols(tt.formula)
			require.NoError(t, err)

			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestFreeSymbols_ParseError(t *testing.T) {
	_, err := FreeSymbols("a + * (")
	require.ErrorIs(t, err, ErrParse)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "a + * (", pe.Formula)

	for _, f := range []string{"a # b", "a + b #", "a /* b */"} {
		_, err := FreeSymbols(f)
		require.ErrorIs(t, err, ErrParse, f)
	}
}

func TestPlaceholderID(t *testing.T) {
	assert.Equal(t, "observableParameter2_obs1", PlaceholderID(Observable, 2, "obs1"))
	assert.Equal(t, "noiseParameter1_obs_a", PlaceholderID(Noise, 1, "obs_a"))
}

func TestParsePlaceholder(t *testing.T) {
	kind, idx, obs, ok := ParsePlaceholder("noiseParameter12_obs_1")
	require.True(t, ok)
	assert.Equal(t, Noise, kind)
	assert.Equal(t, 12, idx)
	assert.Equal(t, "obs_1", obs)

	_, _, _, ok = ParsePlaceholder("noiseParameter_obs1")
	assert.False(t, ok)

	assert.True(t, IsPlaceholder("observableParameter1_x"))
	assert.False(t, IsPlaceholder("k1"))
}

func TestPlaceholders(t *testing.T) {
	formula := "observableParameter1_obs1 * x + observableParameter1_obs10 + noiseParameter1_obs1"

	got, err := Placeholders(formula, "obs1", Observable)
	require.NoError(t, err)
	assert.Equal(t, []string{"observableParameter1_obs1"}, got)

	got, err = Placeholders(formula, "obs1", Noise)
	require.NoError(t, err)
	assert.Equal(t, []string{"noiseParameter1_obs1"}, got)

	got, err = Placeholders("1.0", "obs1", Noise)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Placeholders("observableParameter1_o // 2 + observableParameter2_o", "o", Observable)
	require.NoError(t, err)
	assert.Equal(t, []string{"observableParameter1_o", "observableParameter2_o"}, got)
}

func TestOrderedPlaceholders(t *testing.T) {
	got, err := OrderedPlaceholders(
		"observableParameter2_o * x + observableParameter1_o", "o", Observable)
	require.NoError(t, err)
	assert.Equal(t, []string{"observableParameter1_o", "observableParameter2_o"}, got)

	_, err = OrderedPlaceholders("observableParameter1_o + observableParameter3_o", "o", Observable)
	require.ErrorIs(t, err, ErrPlaceholderGap)
}

func TestTablePlaceholders(t *testing.T) {
	ot, err := table.NewObservableTable(
		table.ObservableRow{ID: "obs1", Formula: "observableParameter1_obs1 * x", NoiseFormula: "noiseParameter1_obs1"},
		table.ObservableRow{ID: "obs2", Formula: "y", NoiseFormula: "1.0"},
	)
	require.NoError(t, err)

	got, err := TablePlaceholders(ot)
	require.NoError(t, err)
	assert.Equal(t, []string{"observableParameter1_obs1", "noiseParameter1_obs1"}, got)

	got, err = TablePlaceholders(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
