package lint

// Diagnostic codes.
const (
	CodeMissingColumn         = "missing_column"
	CodeSurroundingSpace      = "surrounding_whitespace"
	CodeEmptyID               = "empty_id"
	CodeInvalidID             = "invalid_id"
	CodeInvalidScale          = "invalid_scale"
	CodeNonNumericBound       = "non_numeric_bound"
	CodeBoundsOrder           = "lower_bound_above_upper_bound"
	CodeNonPositiveLogBound   = "non_positive_log_bound"
	CodeInvalidEstimate       = "invalid_estimate"
	CodeMissingNominal        = "missing_nominal_value"
	CodeInvalidPrior          = "invalid_prior"
	CodeNonNumericValue       = "non_numeric_value"
	CodeNonPositiveLogData    = "non_positive_log_measurement"
	CodeInvalidDistribution   = "invalid_noise_distribution"
	CodeInvalidTransformation = "invalid_transformation"
	CodeFormulaParse          = "formula_parse_error"
	CodePlaceholderGap        = "placeholder_gap"
	CodeUnknownObservable     = "unknown_observable"
	CodeUnknownCondition      = "unknown_condition"
	CodeUnknownModelParameter = "unknown_model_parameter"
	CodeOverrideCount         = "override_count_mismatch"
	CodeMissingParameter      = "missing_parameter"
	CodeExtraneousParameter   = "extraneous_parameter"
	CodeConditionAndParameter = "parameter_in_condition_table"
	CodeTimepointSpecific     = "timepoint_specific_overrides"
	CodeNumericObsOverrides   = "numeric_observable_overrides"
	CodeParametricConditions  = "parametric_condition_table"
	CodeNoObservableTable     = "no_observable_table"
	CodeNoParameterTable      = "no_parameter_table"
)

// Table names used in diagnostics.
const (
	TableCondition   = "condition"
	TableMeasurement = "measurement"
	TableParameter   = "parameter"
	TableObservable  = "observable"
	TableModel       = "model"
)

// Valid noise distributions and observable transformations. An empty cell
// stands for normal and lin respectively.
var (
	NoiseDistributions = []string{"normal", "laplace"}
	Transformations    = []string{"lin", "log", "log10"}
)
