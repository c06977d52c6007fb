package measurement

import (
	"petab-mapper/internal/common"
	"petab-mapper/internal/table"
)

// SimulationCondition identifies a simulation: the simulated condition and
// the optional preequilibration condition simulated before it.
type SimulationCondition struct {
	PreequilibrationID string `json:"preequilibrationConditionId,omitempty" yaml:"preequilibrationConditionId,omitempty"`
	SimulationID       string `json:"simulationConditionId" yaml:"simulationConditionId"`
}

// HasPreequilibration reports whether the condition is preceded by a
// preequilibration.
func (c SimulationCondition) HasPreequilibration() bool {
	return c.PreequilibrationID != ""
}

// String renders the condition as "sim" or "preeq:sim".
func (c SimulationCondition) String() string {
	if c.HasPreequilibration() {
		return c.PreequilibrationID + ":" + c.SimulationID
	}

	return c.SimulationID
}

// ConditionOf returns the simulation condition a measurement row belongs to.
func ConditionOf(row table.MeasurementRow) SimulationCondition {
	return SimulationCondition{
		PreequilibrationID: table.OptionalID(row.PreequilibrationConditionID),
		SimulationID:       row.SimulationConditionID,
	}
}

// SimulationConditions returns the distinct simulation conditions of the
// table in first-occurrence order.
func SimulationConditions(mt *table.MeasurementTable) []SimulationCondition {
	set := common.NewOrderedSet[SimulationCondition]()
	for _, row := range mt.Rows {
		set.Add(ConditionOf(row))
	}

	return set.Items()
}

// RowsForCondition returns the measurements taken under c, in table order.
// An empty preequilibration ID only matches rows without preequilibration.
func RowsForCondition(mt *table.MeasurementTable, c SimulationCondition) []table.MeasurementRow {
	var out []table.MeasurementRow

	for _, row := range mt.Rows {
		if ConditionOf(row) == c {
			out = append(out, row)
		}
	}

	return out
}

// ReplicateKey identifies measurements that are replicates of each other.
type ReplicateKey struct {
	ObservableID string
	Condition    SimulationCondition
	Time         table.Value
}

// HasReplicates reports whether any two rows share observable, condition
// and timepoint.
func HasReplicates(mt *table.MeasurementTable) bool {
	seen := make(map[ReplicateKey]struct{}, len(mt.Rows))

	for _, row := range mt.Rows {
		key := ReplicateKey{ObservableID: row.ObservableID, Condition: ConditionOf(row), Time: row.Time}
		if _, dup := seen[key]; dup {
			return true
		}

		seen[key] = struct{}{}
	}

	return false
}

// ObservableIDs returns the observables measured in the table in
// first-occurrence order.
func ObservableIDs(mt *table.MeasurementTable) []string {
	set := common.NewOrderedSet[string]()
	for _, row := range mt.Rows {
		set.Add(row.ObservableID)
	}

	return set.Items()
}

// NoiseModel is a (transformation, distribution) pair as found in the
// measurement table. Empty cells stand for lin and normal.
type NoiseModel struct {
	Transformation string
	Distribution   string
}

// NoiseModelGroup lists the observables measured under a noise model.
type NoiseModelGroup struct {
	NoiseModel
	ObservableIDs []string
}

// NoiseDistributions groups observables by noise model, in first-occurrence
// order of both models and observables.
func NoiseDistributions(mt *table.MeasurementTable) []NoiseModelGroup {
	groups := common.NewOrderedMap[NoiseModel, *common.OrderedSet[string]]()

	for _, row := range mt.Rows {
		nm := NoiseModel{Transformation: row.ObservableTransformation, Distribution: row.NoiseDistribution}
		if nm.Transformation == "" {
			nm.Transformation = "lin"
		}

		if nm.Distribution == "" {
			nm.Distribution = "normal"
		}

		ids, ok := groups.Get(nm)
		if !ok {
			ids = common.NewOrderedSet[string]()
			groups.Set(nm, ids)
		}

		ids.Add(row.ObservableID)
	}

	out := make([]NoiseModelGroup, 0, groups.Len())
	groups.Range(func(nm NoiseModel, ids *common.OrderedSet[string]) bool {
		out = append(out, NoiseModelGroup{NoiseModel: nm, ObservableIDs: ids.Items()})
		return true
	})

	return out
}
