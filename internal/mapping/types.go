package mapping

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"petab-mapper/internal/common"
	"petab-mapper/internal/model"
	"petab-mapper/internal/parameter"
	"petab-mapper/internal/table"
)

// ParameterMap maps simulation parameter IDs to values, in insertion order.
type ParameterMap struct {
	common.OrderedMap[string, table.Value]
}

// Entry is one parameter map entry.
type Entry struct {
	ID    string
	Value table.Value
}

// NewParameterMap creates a map holding entries in order.
func NewParameterMap(entries ...Entry) *ParameterMap {
	m := &ParameterMap{}
	for _, e := range entries {
		m.Set(e.ID, e.Value)
	}

	return m
}

// Identity maps every model parameter to a reference to itself.
func Identity(m model.Model) *ParameterMap {
	out := &ParameterMap{}
	for _, p := range m.Parameters() {
		out.Set(p.ID, table.Reference(p.ID))
	}

	return out
}

// Clone returns an independent copy.
func (m *ParameterMap) Clone() *ParameterMap {
	return &ParameterMap{OrderedMap: *m.OrderedMap.Clone()}
}

// Entries returns the entries in order.
func (m *ParameterMap) Entries() []Entry {
	out := make([]Entry, 0, m.Len())
	m.Range(func(id string, v table.Value) bool {
		out = append(out, Entry{ID: id, Value: v})
		return true
	})

	return out
}

// Equal reports whether both maps hold the same entries in the same order.
func (m *ParameterMap) Equal(o *ParameterMap) bool {
	if m == nil || o == nil {
		return m == o
	}

	return orderedEqual(&m.OrderedMap, &o.OrderedMap)
}

// MarshalYAML writes the map as a YAML mapping in insertion order.
func (m *ParameterMap) MarshalYAML() (any, error) {
	return orderedYAML(&m.OrderedMap)
}

// MarshalJSON writes the map as a JSON object in insertion order.
func (m *ParameterMap) MarshalJSON() ([]byte, error) {
	return orderedJSON(&m.OrderedMap)
}

// ScaleMap maps simulation parameter IDs to their scale, in insertion order.
type ScaleMap struct {
	common.OrderedMap[string, parameter.Scale]
}

// ScaleEntry is one scale map entry.
type ScaleEntry struct {
	ID    string
	Scale parameter.Scale
}

// NewScaleMap creates a map holding entries in order.
func NewScaleMap(entries ...ScaleEntry) *ScaleMap {
	m := &ScaleMap{}
	for _, e := range entries {
		m.Set(e.ID, e.Scale)
	}

	return m
}

// Entries returns the entries in order.
func (m *ScaleMap) Entries() []ScaleEntry {
	out := make([]ScaleEntry, 0, m.Len())
	m.Range(func(id string, s parameter.Scale) bool {
		out = append(out, ScaleEntry{ID: id, Scale: s})
		return true
	})

	return out
}

// Equal reports whether both maps hold the same entries in the same order.
func (m *ScaleMap) Equal(o *ScaleMap) bool {
	if m == nil || o == nil {
		return m == o
	}

	return orderedEqual(&m.OrderedMap, &o.OrderedMap)
}

// MarshalYAML writes the map as a YAML mapping in insertion order.
func (m *ScaleMap) MarshalYAML() (any, error) {
	return orderedYAML(&m.OrderedMap)
}

// MarshalJSON writes the map as a JSON object in insertion order.
func (m *ScaleMap) MarshalJSON() ([]byte, error) {
	return orderedJSON(&m.OrderedMap)
}

// ParameterMapping holds the preequilibration and simulation halves for one
// condition. Preeq is empty, never nil, when there is no preequilibration.
type ParameterMapping struct {
	Preeq *ParameterMap `json:"preequilibration" yaml:"preequilibration"`
	Sim   *ParameterMap `json:"simulation" yaml:"simulation"`
}

// ScaleMapping parallels ParameterMapping with parameter scales.
type ScaleMapping struct {
	Preeq *ScaleMap `json:"preequilibration" yaml:"preequilibration"`
	Sim   *ScaleMap `json:"simulation" yaml:"simulation"`
}

func orderedEqual[V comparable](a, b *common.OrderedMap[string, V]) bool {
	if a.Len() != b.Len() {
		return false
	}

	ka, kb := a.Keys(), b.Keys()
	for i := range ka {
		if ka[i] != kb[i] {
			return false
		}

		va, _ := a.Get(ka[i])
		vb, _ := b.Get(kb[i])

		if va != vb {
			return false
		}
	}

	return true
}

func orderedYAML[V any](m *common.OrderedMap[string, V]) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	var err error

	m.Range(func(k string, v V) bool {
		key, val := &yaml.Node{}, &yaml.Node{}
		if err = key.Encode(k); err != nil {
			return false
		}

		if err = val.Encode(v); err != nil {
			return false
		}

		node.Content = append(node.Content, key, val)

		return true
	})

	return node, err
}

func orderedJSON[V any](m *common.OrderedMap[string, V]) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	var err error

	first := true
	m.Range(func(k string, v V) bool {
		var kb, vb []byte
		if kb, err = json.Marshal(k); err != nil {
			return false
		}

		if vb, err = json.Marshal(v); err != nil {
			return false
		}

		if !first {
			buf.WriteByte(',')
		}

		first = false

		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)

		return true
	})

	buf.WriteByte('}')

	return buf.Bytes(), err
}
