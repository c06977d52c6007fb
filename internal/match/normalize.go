package match

import (
	"strings"
	"unicode"
)

// NormalizeID case-folds an identifier and strips separators, so that
// "obs_A", "obsA" and "OBS-a" all normalize to "obsa".
func NormalizeID(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
