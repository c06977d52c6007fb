package match

import (
	"sort"
)

// DefaultThreshold is the minimum similarity for an identifier to be suggested.
const DefaultThreshold = 0.6

// DefaultLimit is the number of suggestions returned by Suggest.
const DefaultLimit = 3

type scored struct {
	id    string
	score float64
}

// Suggest returns up to DefaultLimit identifiers from known that resemble name,
// best match first. An exact match yields no suggestions.
func Suggest(name string, known []string) []string {
	return SuggestN(name, known, DefaultLimit, DefaultThreshold)
}

// SuggestN is Suggest with an explicit limit and similarity threshold.
func SuggestN(name string, known []string, limit int, threshold float64) []string {
	if limit <= 0 {
		return nil
	}

	norm := NormalizeID(name)

	var candidates []scored

	seen := make(map[string]struct{}, len(known))
	for _, id := range known {
		if id == name {
			return nil
		}

		if _, dup := seen[id]; dup {
			continue
		}

		seen[id] = struct{}{}

		score := Similarity(norm, NormalizeID(id))
		if score < threshold {
			continue
		}

		candidates = append(candidates, scored{id: id, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}

		return candidates[i].id < candidates[j].id
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.id
	}

	return out
}
