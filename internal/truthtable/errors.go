package truthtable

import (
	"fmt"
	"strings"
)

// UnknownVariableError lists every fixed-value key that does not occur in the
// expression. Names are sorted.
type UnknownVariableError struct {
	Names []string
}

func (e *UnknownVariableError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("fixed variable %q does not occur in the expression", e.Names[0])
	}
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return fmt.Sprintf("fixed variables %s do not occur in the expression", strings.Join(quoted, ", "))
}

// TooManyVariablesError is returned before enumeration when the table would
// have more than 2^Limit rows.
type TooManyVariablesError struct {
	Free  int
	Limit int
}

func (e *TooManyVariablesError) Error() string {
	return fmt.Sprintf("expression has %d free variables, at most %d are allowed", e.Free, e.Limit)
}
