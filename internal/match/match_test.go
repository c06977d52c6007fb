package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"obs1", "obs2", 1},
		{"k_deg", "kdeg", 1},
		{"Δt", "Δs", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-12)
	assert.InDelta(t, 0.75, Similarity("obs1", "obs2"), 1e-12)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-12)
}

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, "obsa", NormalizeID("obs_A"))
	assert.Equal(t, "obsa", NormalizeID("OBS-a"))
	assert.Equal(t, "kdeg", NormalizeID("k.deg"))
}

func TestSuggest(t *testing.T) {
	known := []string{"obs_total", "obs_free", "condition1", "obsTotal"}

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "case and separator variants rank first", in: "obstotal", want: []string{"obsTotal", "obs_total"}},
		{name: "exact match suggests nothing", in: "obs_free", want: nil},
		{name: "nothing similar", in: "zzz", want: []string{}},
		{name: "typo", in: "condition2", want: []string{"condition1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.in, known)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestN_Limit(t *testing.T) {
	known := []string{"p1", "p2", "p3", "p4"}

	assert.Equal(t, []string{"p1", "p2"}, SuggestN("p0", known, 2, 0.5))
	assert.Nil(t, SuggestN("p0", known, 0, 0.5))
}
