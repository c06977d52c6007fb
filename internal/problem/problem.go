package problem

import (
	"fmt"
	"path/filepath"

	"petab-mapper/internal/model"
	"petab-mapper/internal/table"
)

// Problem holds every table of a loaded problem.
type Problem struct {
	Model        model.Model
	Conditions   *table.ConditionTable
	Measurements *table.MeasurementTable
	// Parameters is nil when the problem file names no parameter table.
	Parameters *table.ParameterTable
	// Observables is nil when the problem file names no observable table.
	Observables *table.ObservableTable
}

// Load reads a problem YAML file and every table it references.
func Load(path string) (*Problem, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return FromFile(f, filepath.Dir(path))
}

// FromFile reads the tables referenced by f, resolving relative paths
// against dir.
func FromFile(f *File, dir string) (*Problem, error) {
	if err := Validate(f).Err(); err != nil {
		return nil, err
	}

	files := f.Problems[0]
	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}

		return filepath.Join(dir, p)
	}

	p := &Problem{}

	models := make([]model.Model, 0, len(files.ModelFiles))
	for _, name := range files.ModelFiles {
		m, err := model.Load(resolve(name))
		if err != nil {
			return nil, err
		}

		models = append(models, m)
	}

	m, err := model.Concat(models...)
	if err != nil {
		return nil, err
	}

	p.Model = m

	conditions := make([]*table.ConditionTable, 0, len(files.ConditionFiles))
	for _, name := range files.ConditionFiles {
		ct, err := table.LoadConditionTable(resolve(name))
		if err != nil {
			return nil, err
		}

		conditions = append(conditions, ct)
	}

	if p.Conditions, err = table.ConcatConditionTables(conditions...); err != nil {
		return nil, fmt.Errorf("condition files: %w", err)
	}

	measurements := make([]*table.MeasurementTable, 0, len(files.MeasurementFiles))
	for _, name := range files.MeasurementFiles {
		mt, err := table.LoadMeasurementTable(resolve(name))
		if err != nil {
			return nil, err
		}

		measurements = append(measurements, mt)
	}

	p.Measurements = table.ConcatMeasurementTables(measurements...)

	if len(files.ObservableFiles) > 0 {
		observables := make([]*table.ObservableTable, 0, len(files.ObservableFiles))
		for _, name := range files.ObservableFiles {
			ot, err := table.LoadObservableTable(resolve(name))
			if err != nil {
				return nil, err
			}

			observables = append(observables, ot)
		}

		if p.Observables, err = table.ConcatObservableTables(observables...); err != nil {
			return nil, fmt.Errorf("observable files: %w", err)
		}
	}

	if f.ParameterFile != "" {
		if p.Parameters, err = table.LoadParameterTable(resolve(f.ParameterFile)); err != nil {
			return nil, err
		}
	}

	return p, nil
}
