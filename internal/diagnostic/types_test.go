package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "message only",
			diag: Diagnostic{Message: "boom"},
			want: "boom",
		},
		{
			name: "code and location",
			diag: Diagnostic{Code: "unknown_observable", Message: "obs2 not defined", Table: "measurement", Location: "row 3"},
			want: "[measurement] row 3: [unknown_observable] obs2 not defined",
		},
		{
			name: "with suggestions",
			diag: Diagnostic{Message: "obs2 not defined", Suggestions: []string{"obs1", "obs3"}},
			want: "obs2 not defined (did you mean obs1, obs3?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestDiagnostics_ErrJoinsErrorsOnly(t *testing.T) {
	var d Diagnostics

	require.NoError(t, d.Err())

	d.AddWarning("w", "just a warning", "", "")
	require.NoError(t, d.Err())
	assert.True(t, d.IsValid())

	d.AddError("a", "first", "condition", "")
	d.AddError("b", "second", "", "row 1")

	err := d.Err()
	require.Error(t, err)
	assert.Equal(t, "[condition]: [a] first; row 1: [b] second", err.Error())
}

func TestDiagnostics_MergeAndCount(t *testing.T) {
	var a, b Diagnostics
	a.AddError("x", "1", "", "")
	b.AddError("x", "2", "", "")
	b.AddWarning("y", "3", "", "")
	b.AddInfo("z", "4", "", "")

	a.Merge(b)

	assert.Len(t, a.All(), 4)
	assert.Equal(t, SeverityError, a.All()[0].Severity)
	assert.Equal(t, SeverityInfo, a.All()[3].Severity)
	assert.Equal(t, map[string]int{"x": 2, "y": 1}, a.CountByCode())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
