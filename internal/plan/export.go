package plan

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// exportDocument is the serialized form of a plan.
type exportDocument struct {
	Conditions []ConditionMapping `json:"conditions" yaml:"conditions"`
}

// Export serializes the condition mappings of a plan. Mapping entries keep
// model order.
func Export(plan *ResolvedMappingPlan, format ExportFormat) ([]byte, error) {
	doc := exportDocument{Conditions: plan.Conditions}
	if doc.Conditions == nil {
		doc.Conditions = []ConditionMapping{}
	}

	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown export format %s", format)
	}
}

// WriteFile exports a plan to the given path.
func WriteFile(plan *ResolvedMappingPlan, format ExportFormat, path string) error {
	data, err := Export(plan, format)
	if err != nil {
		return fmt.Errorf("failed to export plan: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write plan %s: %w", path, err)
	}

	return nil
}
