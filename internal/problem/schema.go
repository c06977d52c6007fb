package problem

// CurrentFormatVersion is the only supported format_version.
const CurrentFormatVersion = 1

// File is the root of a problem YAML file.
type File struct {
	// FormatVersion of the file; defaults to CurrentFormatVersion.
	FormatVersion int `yaml:"format_version"`
	// ParameterFile is the parameter table, shared by all problems.
	ParameterFile string `yaml:"parameter_file,omitempty"`
	// Problems lists the files of each problem.
	Problems []Files `yaml:"problems"`
}

// Files lists the table files of one problem.
type Files struct {
	ModelFiles       []string `yaml:"model_files"`
	ConditionFiles   []string `yaml:"condition_files"`
	MeasurementFiles []string `yaml:"measurement_files"`
	ObservableFiles  []string `yaml:"observable_files,omitempty"`
}
