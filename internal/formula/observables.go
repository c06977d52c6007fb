package formula

import (
	"fmt"

	"petab-mapper/internal/common"
	"petab-mapper/internal/table"
)

// TablePlaceholders returns every observable and noise placeholder declared
// by the observable table, observable placeholders before noise placeholders
// within each observable, in table order.
func TablePlaceholders(ot *table.ObservableTable) ([]string, error) {
	if ot == nil {
		return nil, nil
	}

	set := common.NewOrderedSet[string]()

	for _, obs := range ot.Rows {
		for _, pair := range []struct {
			kind    Kind
			formula string
		}{
			{Observable, obs.Formula},
			{Noise, obs.NoiseFormula},
		} {
			found, err := OrderedPlaceholders(pair.formula, obs.ID, pair.kind)
			if err != nil {
				return nil, fmt.Errorf("observable %s: %w", obs.ID, err)
			}

			for _, p := range found {
				set.Add(p)
			}
		}
	}

	return set.Items(), nil
}
