package mapping

import (
	"context"

	"petab-mapper/internal/ctxlog"
	"petab-mapper/internal/formula"
	"petab-mapper/internal/table"
)

// HandleMissingOverrides sets placeholders that still map to a placeholder
// reference to missing and returns their IDs. With warn set, one warning
// listing them is logged through the context logger.
func HandleMissingOverrides(ctx context.Context, m *ParameterMap, warn bool) []string {
	var missed []string

	for _, id := range m.Keys() {
		if !formula.IsPlaceholder(id) {
			continue
		}

		v, _ := m.Get(id)
		if !v.IsReference() || !formula.IsPlaceholder(v.Ref()) {
			continue
		}

		m.Set(id, table.Missing())
		missed = append(missed, id)
	}

	if warn && len(missed) > 0 {
		ctxlog.FromContext(ctx).Warn("Could not map all overrides; set to missing",
			"parameters", missed)
	}

	return missed
}
