package mapping

import (
	"petab-mapper/internal/parameter"
)

// MergePreeqAndSim reconciles the two halves of a condition mapping for
// parameters present in both. When one side is missing both adopt the other
// side's value and scale. Two different non-missing values, or equal values
// on different scales, yield a *MergeError. An empty preequilibration map is
// left alone.
func MergePreeqAndSim(pm *ParameterMapping, sm *ScaleMapping) error {
	if pm.Preeq.Len() == 0 {
		return nil
	}

	for _, id := range pm.Preeq.Keys() {
		simValue, ok := pm.Sim.Get(id)
		if !ok {
			continue
		}

		preValue, _ := pm.Preeq.Get(id)
		preScale := scaleOf(sm.Preeq, id)
		simScale := scaleOf(sm.Sim, id)

		switch {
		case preValue == simValue:
			if preScale != simScale {
				return &MergeError{ParameterID: id, Preeq: preValue, Sim: simValue, PreeqScale: preScale, SimScale: simScale}
			}
		case preValue.IsMissing():
			pm.Preeq.Set(id, simValue)
			sm.Preeq.Set(id, simScale)
		case simValue.IsMissing():
			pm.Sim.Set(id, preValue)
			sm.Sim.Set(id, preScale)
		default:
			return &MergeError{ParameterID: id, Preeq: preValue, Sim: simValue, PreeqScale: preScale, SimScale: simScale}
		}
	}

	return nil
}

func scaleOf(m *ScaleMap, id string) parameter.Scale {
	if s, ok := m.Get(id); ok {
		return s
	}

	return parameter.Lin
}
