package formula

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Kind is the class of an override placeholder.
type Kind string

const (
	Observable Kind = "observable"
	Noise      Kind = "noise"
)

var placeholderRe = regexp.MustCompile(`^(observable|noise)Parameter([0-9]+)_(.+)$`)

// PlaceholderID returns the placeholder name for the index-th (1-based)
// override of the given kind for an observable.
func PlaceholderID(kind Kind, index int, observableID string) string {
	return fmt.Sprintf("%sParameter%d_%s", kind, index, observableID)
}

// IsPlaceholder reports whether id has the shape of an observable or noise
// placeholder for any observable.
func IsPlaceholder(id string) bool {
	return placeholderRe.MatchString(id)
}

// ParsePlaceholder splits a placeholder into its kind, index and observable ID.
func ParsePlaceholder(id string) (kind Kind, index int, observableID string, ok bool) {
	m := placeholderRe.FindStringSubmatch(id)
	if m == nil {
		return "", 0, "", false
	}

	index, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, "", false
	}

	return Kind(m[1]), index, m[3], true
}

// Placeholders returns the placeholders of the given kind for observableID
// that occur free in formula, in first-occurrence order.
func Placeholders(formula, observableID string, kind Kind) ([]string, error) {
	symbols, err := FreeSymbols(formula)
	if err != nil {
		return nil, err
	}

	var out []string

	for _, s := range symbols {
		k, _, obs, ok := ParsePlaceholder(s)
		if ok && k == kind && obs == observableID {
			out = append(out, s)
		}
	}

	return out, nil
}

// OrderedPlaceholders returns the placeholders of Placeholders sorted by
// index. The indices must run 1..n without gaps.
func OrderedPlaceholders(formula, observableID string, kind Kind) ([]string, error) {
	found, err := Placeholders(formula, observableID, kind)
	if err != nil {
		return nil, err
	}

	byIndex := make(map[int]string, len(found))
	indices := make([]int, 0, len(found))

	for _, p := range found {
		_, idx, _, _ := ParsePlaceholder(p)
		byIndex[idx] = p
		indices = append(indices, idx)
	}

	sort.Ints(indices)

	out := make([]string, len(indices))
	for i, idx := range indices {
		if idx != i+1 {
			return nil, fmt.Errorf("%w: %s placeholders for %s are not numbered 1..%d: %s",
				ErrPlaceholderGap, kind, observableID, len(indices), strings.Join(found, ", "))
		}

		out[i] = byIndex[idx]
	}

	return out, nil
}
