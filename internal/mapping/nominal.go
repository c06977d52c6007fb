package mapping

import (
	"fmt"

	"petab-mapper/internal/parameter"
	"petab-mapper/internal/table"
)

// FillNominalValues replaces references to non-estimated parameters by their
// nominal value converted to linear scale. A missing nominal value yields a
// missing entry. A nil parameter table leaves m unchanged.
func FillNominalValues(m *ParameterMap, pt *table.ParameterTable) error {
	if pt == nil {
		return nil
	}

	for _, id := range m.Keys() {
		v, _ := m.Get(id)
		if !v.IsReference() {
			continue
		}

		row, ok := pt.Get(v.Ref())
		if !ok || row.Estimated() {
			continue
		}

		if row.NominalValue.IsMissing() {
			m.Set(id, table.Missing())
			continue
		}

		scale, err := parameter.ParseScale(row.Scale)
		if err != nil {
			return fmt.Errorf("parameter %s: %w", row.ID, err)
		}

		lin, err := parameter.UnscaleValue(row.NominalValue.Float(), scale)
		if err != nil {
			return fmt.Errorf("parameter %s: %w", row.ID, err)
		}

		m.Set(id, table.Literal(lin))
	}

	return nil
}
