package plan

import (
	"fmt"
	"strings"

	"petab-mapper/internal/common"
	"petab-mapper/internal/diagnostic"
	"petab-mapper/internal/mapping"
	"petab-mapper/internal/measurement"
)

// ResolvedMappingPlan is the final output of the resolution pipeline.
type ResolvedMappingPlan struct {
	// Conditions holds one mapping per condition pair, in measurement order.
	Conditions []ConditionMapping
	// Diagnostics contains the warnings raised during resolution.
	Diagnostics diagnostic.Diagnostics
}

// ConditionMapping is the resolved mapping of one condition pair.
type ConditionMapping struct {
	measurement.SimulationCondition `yaml:",inline"`

	Parameters mapping.ParameterMapping `json:"parameters" yaml:"parameters"`
	Scales     mapping.ScaleMapping     `json:"scales" yaml:"scales"`
	// Unmapped lists the simulation placeholders no measurement overrides.
	Unmapped []string `json:"unmapped,omitempty" yaml:"unmapped,omitempty"`
}

// ExportFormat selects the serialization of an exported plan.
type ExportFormat int

const (
	// FormatYAML - YAML document (default).
	FormatYAML ExportFormat = iota
	// FormatJSON - indented JSON document.
	FormatJSON
)

// String returns the format name.
func (f ExportFormat) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return common.UnknownStr
	}
}

// ParseFormat parses a format name. An empty name selects YAML.
func ParseFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(s) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unknown export format %q", s)
	}
}
