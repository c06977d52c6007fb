package table

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind tells which variant a Value holds.
type Kind int

const (
	KindMissing   Kind = iota // missing
	KindLiteral               // literal
	KindReference             // reference
)

// Value is a table cell or mapping entry: a float literal, a reference to
// a parameter ID, or missing. The zero Value is missing.
//
// Values are comparable with ==; two missing values are equal.
type Value struct {
	kind Kind
	num  float64
	ref  string
}

// Literal returns a literal value. NaN yields a missing value.
func Literal(v float64) Value {
	if math.IsNaN(v) {
		return Value{}
	}

	return Value{kind: KindLiteral, num: v}
}

// Reference returns a value naming the parameter id.
// An empty id yields a missing value.
func Reference(id string) Value {
	if id == "" {
		return Value{}
	}

	return Value{kind: KindReference, ref: id}
}

// Missing returns the missing value.
func Missing() Value {
	return Value{}
}

// Parse reads a cell. Empty cells and "nan" are missing, decimal floats
// are literals (out-of-range ones become infinite), and everything else is
// a reference. Hexadecimal and underscore-grouped numbers are references.
func Parse(cell string) Value {
	s := strings.TrimSpace(cell)
	if s == "" {
		return Value{}
	}

	if !isDecimal(s) {
		return Reference(s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return Literal(f)
	}

	return Reference(s)
}

// isDecimal rejects the number forms strconv accepts beyond plain decimal
// notation.
func isDecimal(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}

	s = strings.TrimLeft(s, "+-")

	return !(len(s) > 1 && s[0] == '0' && strings.ContainsAny(s[1:2], "xXoObB"))
}

// OptionalID reads an identifier cell that may be left empty. A cell that
// parses as missing, such as "nan", yields "".
func OptionalID(cell string) string {
	s := strings.TrimSpace(cell)
	if Parse(s).IsMissing() {
		return ""
	}

	return s
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is missing.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// IsLiteral reports whether v is a float literal.
func (v Value) IsLiteral() bool { return v.kind == KindLiteral }

// IsReference reports whether v names a parameter.
func (v Value) IsReference() bool { return v.kind == KindReference }

// Float returns the literal number, or NaN when v is not a literal.
func (v Value) Float() float64 {
	if v.kind != KindLiteral {
		return math.NaN()
	}

	return v.num
}

// Ref returns the referenced parameter ID, or "" when v is not a reference.
func (v Value) Ref() string {
	return v.ref
}

// Equal reports whether v and o hold the same variant and payload.
func (v Value) Equal(o Value) bool {
	return v == o
}

// String renders v for messages: numbers in shortest form, references as the
// bare ID and missing values as "nan".
func (v Value) String() string {
	switch v.kind {
	case KindLiteral:
		return formatFloat(v.num)
	case KindReference:
		return v.ref
	default:
		return "nan"
	}
}

// Cell renders v for a TSV file. Missing values become empty cells.
func (v Value) Cell() string {
	if v.kind == KindMissing {
		return ""
	}

	return v.String()
}

// MarshalYAML encodes literals as numbers, references as strings and
// missing values as null.
func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case KindLiteral:
		return v.num, nil
	case KindReference:
		return v.ref, nil
	default:
		return nil, nil
	}
}

// MarshalJSON encodes like MarshalYAML. Infinite literals, which JSON cannot
// represent as numbers, are written as the strings "inf" and "-inf".
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindLiteral:
		if math.IsInf(v.num, 0) {
			return json.Marshal(formatFloat(v.num))
		}

		return []byte(formatFloat(v.num)), nil
	case KindReference:
		return json.Marshal(v.ref)
	default:
		return []byte("null"), nil
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}
