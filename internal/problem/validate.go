package problem

import (
	"fmt"

	"petab-mapper/internal/common"
	"petab-mapper/internal/diagnostic"
)

// Diagnostic codes reported by Validate.
const (
	CodeFormatVersion   = "unsupported_format_version"
	CodeProblemCount    = "unsupported_problem_count"
	CodeMissingFiles    = "missing_files"
	CodeNoParameterFile = "no_parameter_file"
)

// Validate checks the structure of a problem file. It does not open any of
// the referenced files.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("problem_is_nil", "problem file is nil", "", "")
		return res
	}

	if f.FormatVersion != CurrentFormatVersion {
		res.AddError(CodeFormatVersion,
			fmt.Sprintf("format_version %d is not supported, expected %d", f.FormatVersion, CurrentFormatVersion),
			"yaml", "format_version")
	}

	if !common.IsSingle(f.Problems) {
		res.AddError(CodeProblemCount,
			fmt.Sprintf("expected exactly one problem, got %d", len(f.Problems)), "yaml", "problems")

		return res
	}

	if f.ParameterFile == "" {
		res.AddWarning(CodeNoParameterFile,
			"no parameter_file given; every parameter is treated as estimated", "yaml", "parameter_file")
	}

	p := f.Problems[0]

	for _, req := range []struct {
		key   string
		files []string
	}{
		{"model_files", p.ModelFiles},
		{"condition_files", p.ConditionFiles},
		{"measurement_files", p.MeasurementFiles},
	} {
		if common.IsEmpty(req.files) {
			res.AddError(CodeMissingFiles, req.key+" must list at least one file", "yaml", "problems[0]."+req.key)
		}
	}

	return res
}
