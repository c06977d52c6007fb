package mapping

import (
	"fmt"

	"petab-mapper/internal/parameter"
	"petab-mapper/internal/table"
)

// ScalesFor returns the scale of every entry of m. Literal and missing
// values are linear; a reference takes the parameterScale of the referenced
// parameter, or linear when the parameter table does not list it.
func ScalesFor(m *ParameterMap, pt *table.ParameterTable) (*ScaleMap, error) {
	out := &ScaleMap{}

	var err error

	m.Range(func(id string, v table.Value) bool {
		scale := parameter.Lin

		if v.IsReference() {
			if row, ok := pt.Get(v.Ref()); ok {
				scale, err = parameter.ParseScale(row.Scale)
				if err != nil {
					err = fmt.Errorf("parameter %s: %w", row.ID, err)
					return false
				}
			}
		}

		out.Set(id, scale)

		return true
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}
