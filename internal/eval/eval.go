package eval

import (
	"fmt"

	"github.com/DjordjeVuckovic/logicka/internal/ast"
)

// UnboundVariableError means the assignment given to Evaluate has no value
// for a variable of the expression. Callers that build assignments from
// ast.CollectVariables never see it.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("variable %q has no assigned value", e.Name)
}

// Evaluate computes the truth value of node under assignment.
func Evaluate(node ast.Node, assignment map[string]bool) (bool, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return n.Value, nil
	case *ast.Variable:
		v, ok := assignment[n.Name]
		if !ok {
			return false, &UnboundVariableError{Name: n.Name}
		}
		return v, nil
	case *ast.Not:
		v, err := Evaluate(n.Operand, assignment)
		if err != nil {
			return false, err
		}
		return !v, nil
	case *ast.Binary:
		l, err := Evaluate(n.Left, assignment)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(n.Right, assignment)
		if err != nil {
			return false, err
		}
		return Apply(n.Op, l, r)
	default:
		return false, fmt.Errorf("unsupported node type %T", node)
	}
}

// Apply computes a single connective.
func Apply(op ast.Op, l, r bool) (bool, error) {
	switch op {
	case ast.And:
		return l && r, nil
	case ast.Xor:
		return l != r, nil
	case ast.Or:
		return l || r, nil
	case ast.Implies:
		return !l || r, nil
	case ast.Equiv:
		return l == r, nil
	default:
		return false, fmt.Errorf("unsupported operator %s", op)
	}
}
