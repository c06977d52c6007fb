package formula

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"petab-mapper/internal/common"
)

var (
	// ErrParse is wrapped by every *ParseError.
	ErrParse = errors.New("invalid formula")
	// ErrPlaceholderGap is returned when placeholder indices are not consecutive.
	ErrPlaceholderGap = errors.New("placeholder indices not consecutive")
)

// ParseError reports a formula that could not be parsed.
type ParseError struct {
	Formula string
	Detail  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid formula %q: %s", e.Formula, e.Detail)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// FreeSymbols returns the identifiers that occur free in formula, in
// first-occurrence order. Function names are not free symbols.
// An empty formula has no symbols.
func FreeSymbols(formula string) ([]string, error) {
	if common.IsBlank(formula) {
		return nil, nil
	}

	if strings.ContainsRune(formula, '#') {
		return nil, &ParseError{Formula: formula, Detail: "unexpected character '#'"}
	}

	src, names := normalize(formula)

	expr, diags := hclsyntax.ParseExpression([]byte(src), "formula", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, &ParseError{Formula: formula, Detail: diags.Error()}
	}

	seen := common.NewOrderedSet[string]()
	for _, traversal := range expr.Variables() {
		if name, ok := names[traversal.RootName()]; ok {
			seen.Add(name)
		}
	}

	return seen.Items(), nil
}

// normalize rewrites a formula into HCL expression syntax. Power operators
// become multiplication and floor division becomes division since only the
// symbols matter. Slashes are spaced out so they never open a comment.
// Numbers are re-printed in a form HCL accepts. Every identifier is
// replaced by a synthetic name, so leading underscores, dashes and HCL
// keywords cannot change the parse; the returned map translates synthetic
// names back.
func normalize(formula string) (string, map[string]string) {
	var b strings.Builder

	names := make(map[string]string)
	synthetic := make(map[string]string)

	b.Grow(len(formula) + 16)

	for i := 0; i < len(formula); {
		c := formula[i]

		switch {
		case isDigit(c) || (c == '.' && i+1 < len(formula) && isDigit(formula[i+1])):
			j := scanNumber(formula, i)
			lit := formula[i:j]

			if f, err := strconv.ParseFloat(lit, 64); err == nil {
				lit = strconv.FormatFloat(f, 'g', -1, 64)
			}

			b.WriteByte(' ')
			b.WriteString(lit)
			b.WriteByte(' ')

			i = j
		case isIdentStart(c):
			j := i + 1
			for j < len(formula) && isIdentPart(formula[j]) {
				j++
			}

			id := formula[i:j]

			alias, ok := synthetic[id]
			if !ok {
				alias = "s" + strconv.Itoa(len(synthetic))
				synthetic[id] = alias
				names[alias] = id
			}

			b.WriteByte(' ')
			b.WriteString(alias)

			i = j
		case strings.HasPrefix(formula[i:], "**"):
			b.WriteString(" * ")

			i += 2
		case c == '^':
			b.WriteString(" * ")

			i++
		case c == '-':
			b.WriteString(" - ")

			i++
		case strings.HasPrefix(formula[i:], "//"):
			b.WriteString(" / ")

			i += 2
		case c == '/':
			b.WriteString(" / ")

			i++
		default:
			b.WriteByte(c)

			i++
		}
	}

	return b.String(), names
}

// scanNumber returns the end of the numeric literal starting at i,
// including an optional fraction and exponent.
func scanNumber(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}

	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}

		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}

			i = j
		}
	}

	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
