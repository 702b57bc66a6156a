package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/logicka/internal/token"
)

// SyntaxError is returned when the token stream does not form a valid
// expression: unexpected or trailing tokens, unbalanced parentheses, missing
// operands and empty input.
type SyntaxError struct {
	Pos      int
	Expected []token.Type
	Found    token.Type
	Value    string
}

func (e *SyntaxError) Error() string {
	found := e.Found.Describe()
	if e.Value != "" {
		found = fmt.Sprintf("%s %q", found, e.Value)
	}
	return fmt.Sprintf("syntax error at position %d: expected %s, found %s", e.Pos, describe(e.Expected), found)
}

// describe lists the expected token kinds once each; TRUE and FALSE both
// read as "literal".
func describe(types []token.Type) string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		if name := t.Describe(); !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
}
