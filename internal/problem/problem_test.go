package problem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petab-mapper/internal/model"
	"petab-mapper/internal/table"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(`
parameter_file: parameters.tsv
problems:
  - model_files: [model.tsv]
    condition_files: [conditions.tsv]
    measurement_files: [m1.tsv, m2.tsv]
`))
	require.NoError(t, err)

	assert.Equal(t, CurrentFormatVersion, f.FormatVersion)
	assert.Equal(t, "parameters.tsv", f.ParameterFile)
	require.Len(t, f.Problems, 1)
	assert.Equal(t, []string{"m1.tsv", "m2.tsv"}, f.Problems[0].MeasurementFiles)
	assert.Empty(t, f.Problems[0].ObservableFiles)
	assert.True(t, Validate(f).IsValid())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("problems: [unterminated"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		file     *File
		codes    []string
		warnings []string
	}{
		{
			name:  "nil",
			file:  nil,
			codes: []string{"problem_is_nil"},
		},
		{
			name:  "composite problem",
			file:  &File{FormatVersion: 1, ParameterFile: "p.tsv", Problems: []Files{{}, {}}},
			codes: []string{CodeProblemCount},
		},
		{
			name:  "wrong version and missing lists",
			file:  &File{FormatVersion: 2, ParameterFile: "p.tsv", Problems: []Files{{ModelFiles: []string{"m.tsv"}}}},
			codes: []string{CodeFormatVersion, CodeMissingFiles, CodeMissingFiles},
		},
		{
			name: "no parameter file",
			file: &File{FormatVersion: 1, Problems: []Files{{
				ModelFiles:       []string{"m.tsv"},
				ConditionFiles:   []string{"c.tsv"},
				MeasurementFiles: []string{"x.tsv"},
			}}},
			warnings: []string{CodeNoParameterFile},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Validate(tt.file)

			var codes, warnings []string
			for _, e := range d.Errors {
				codes = append(codes, e.Code)
			}

			for _, w := range d.Warnings {
				warnings = append(warnings, w.Code)
			}

			assert.Equal(t, tt.codes, codes)
			assert.Equal(t, tt.warnings, warnings)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"problem.yaml": `format_version: 1
parameter_file: parameters.tsv
problems:
  - model_files: [model.tsv]
    condition_files: [conditions.tsv]
    measurement_files: [data/m1.tsv, data/m2.tsv]
    observable_files: [observables.tsv]
`,
		"model.tsv":      "parameterId\tvalue\nk1\t1\nk2\t2\n",
		"conditions.tsv": "conditionId\tconditionName\tk1\nc0\tcontrol\t3\n",
		"data/m1.tsv":    "observableId\tsimulationConditionId\tmeasurement\ttime\nobs_a\tc0\t0.5\t1\n",
		"data/m2.tsv":    "observableId\tsimulationConditionId\tmeasurement\ttime\nobs_a\tc0\t0.7\t2\n",
		"observables.tsv": "observableId\tobservableFormula\tnoiseFormula\n" +
			"obs_a\tk2 * x\t1\n",
		"parameters.tsv": "parameterId\tparameterScale\tlowerBound\tupperBound\tnominalValue\testimate\n" +
			"k2\tlog10\t0.1\t10\t2\t1\n",
	})

	p, err := Load(filepath.Join(dir, "problem.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"k1", "k2"}, model.IDs(p.Model))
	assert.Equal(t, []string{"c0"}, p.Conditions.IDs())
	require.Len(t, p.Measurements.Rows, 2)
	assert.Equal(t, table.Literal(2), p.Measurements.Rows[1].Time)
	require.NotNil(t, p.Observables)
	assert.Equal(t, []string{"obs_a"}, p.Observables.IDs())
	require.NotNil(t, p.Parameters)
	assert.Equal(t, []string{"k2"}, p.Parameters.IDs())
}

func TestLoad_MissingTable(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"problem.yaml": `problems:
  - model_files: [model.tsv]
    condition_files: [conditions.tsv]
    measurement_files: [measurements.tsv]
`,
		"model.tsv": "parameterId\tvalue\nk1\t1\n",
	})

	_, err := Load(filepath.Join(dir, "problem.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conditions.tsv")
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"problem.yaml": "format_version: 3\nproblems: []\n"})

	_, err := Load(filepath.Join(dir, "problem.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), CodeProblemCount)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.yaml")
	f := &File{
		FormatVersion: 1,
		ParameterFile: "parameters.tsv",
		Problems: []Files{{
			ModelFiles:       []string{"model.tsv"},
			ConditionFiles:   []string{"conditions.tsv"},
			MeasurementFiles: []string{"measurements.tsv"},
		}},
	}

	require.NoError(t, WriteFile(f, path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}
