package table

// Condition table columns.
const (
	ConditionID   = "conditionId"
	ConditionName = "conditionName"
)

// Measurement table columns.
const (
	ObservableID                = "observableId"
	PreequilibrationConditionID = "preequilibrationConditionId"
	SimulationConditionID       = "simulationConditionId"
	Measurement                 = "measurement"
	Time                        = "time"
	ObservableParameters        = "observableParameters"
	NoiseParameters             = "noiseParameters"
	DatasetID                   = "datasetId"
	ReplicateID                 = "replicateId"
)

// Parameter table columns.
const (
	ParameterID     = "parameterId"
	ParameterName   = "parameterName"
	ParameterScale  = "parameterScale"
	LowerBound      = "lowerBound"
	UpperBound      = "upperBound"
	NominalValue    = "nominalValue"
	Estimate        = "estimate"
	PriorType       = "priorType"
	PriorParameters = "priorParameters"
)

// Observable table columns. The transformation and distribution columns may
// also appear in the measurement table.
const (
	ObservableName           = "observableName"
	ObservableFormula        = "observableFormula"
	ObservableTransformation = "observableTransformation"
	NoiseFormula             = "noiseFormula"
	NoiseDistribution        = "noiseDistribution"
)

// MeasurementColumns lists the measurement table columns in canonical order.
var MeasurementColumns = []string{
	ObservableID, PreequilibrationConditionID, SimulationConditionID,
	Measurement, Time, ObservableParameters, NoiseParameters,
	ObservableTransformation, NoiseDistribution, DatasetID, ReplicateID,
}

// ParameterColumns lists the parameter table columns in canonical order.
var ParameterColumns = []string{
	ParameterID, ParameterName, ParameterScale, LowerBound, UpperBound,
	NominalValue, Estimate, PriorType, PriorParameters,
}

// ObservableColumns lists the observable table columns in canonical order.
var ObservableColumns = []string{
	ObservableID, ObservableName, ObservableFormula, ObservableTransformation,
	NoiseFormula, NoiseDistribution,
}

// Required columns per table.
var (
	RequiredConditionColumns   = []string{ConditionID}
	RequiredMeasurementColumns = []string{ObservableID, SimulationConditionID, Measurement, Time}
	RequiredParameterColumns   = []string{ParameterID, ParameterScale, LowerBound, UpperBound, NominalValue, Estimate}
	RequiredObservableColumns  = []string{ObservableID, ObservableFormula, NoiseFormula}
)
