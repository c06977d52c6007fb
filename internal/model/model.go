// Package model exposes the parameters of a dynamic model to the mapping.
//
// Only parameter IDs and default values are needed, so a model is anything
// that can list its parameters. A small TSV format (parameterId, value)
// stands in for a full model file on the command line.
package model

import (
	"fmt"
	"io"

	"petab-mapper/internal/common"
	"petab-mapper/internal/table"
)

// Column names of the model parameter file.
const (
	ColumnParameterID = "parameterId"
	ColumnValue       = "value"
)

// Parameter is a model parameter and its default value.
type Parameter struct {
	ID      string
	Default table.Value
}

// Model lists the parameters of a dynamic model in model order.
type Model interface {
	Parameters() []Parameter
}

// ParameterList is a Model backed by a slice.
type ParameterList []Parameter

// Parameters implements Model.
func (l ParameterList) Parameters() []Parameter {
	return l
}

// FromIDs builds a model whose parameters have no default value.
func FromIDs(ids ...string) ParameterList {
	out := make(ParameterList, len(ids))
	for i, id := range ids {
		out[i] = Parameter{ID: id}
	}

	return out
}

// IDs returns the parameter IDs of m in model order.
func IDs(m Model) []string {
	params := m.Parameters()

	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.ID
	}

	return out
}

// Read parses a model parameter file.
func Read(r io.Reader) (ParameterList, error) {
	f, err := table.ReadFrame(r)
	if err != nil {
		return nil, err
	}

	return fromFrame(f)
}

// Load reads a model parameter file from path.
func Load(path string) (ParameterList, error) {
	f, err := table.ReadFrameFile(path)
	if err != nil {
		return nil, err
	}

	out, err := fromFrame(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return out, nil
}

func fromFrame(f *table.Frame) (ParameterList, error) {
	if err := f.Require(ColumnParameterID); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	out := make(ParameterList, 0, len(f.Records))
	for i := range f.Records {
		out = append(out, Parameter{
			ID:      f.Cell(i, ColumnParameterID),
			Default: table.Parse(f.Cell(i, ColumnValue)),
		})
	}

	return out, nil
}

// Concat joins several models, rejecting parameter IDs defined twice.
func Concat(models ...Model) (ParameterList, error) {
	seen := common.NewOrderedSet[string]()

	var out ParameterList

	for _, m := range models {
		for _, p := range m.Parameters() {
			if !seen.Add(p.ID) {
				return nil, fmt.Errorf("%w: model parameter %q", table.ErrDuplicateID, p.ID)
			}

			out = append(out, p)
		}
	}

	return out, nil
}
