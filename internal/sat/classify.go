package sat

import (
	"fmt"

	"github.com/DjordjeVuckovic/logicka/internal/ast"
	"github.com/DjordjeVuckovic/logicka/internal/truthtable"
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

type Kind string

const (
	Tautology     Kind = "tautology"
	Contradiction Kind = "contradiction"
	Contingent    Kind = "contingent"
)

// Classification describes an expression under optional fixed values.
// Witness satisfies the expression and Counterexample falsifies it; each is
// omitted when no such assignment exists.
type Classification struct {
	Kind           Kind                  `json:"kind"`
	Satisfiable    bool                  `json:"satisfiable"`
	Tautology      bool                  `json:"tautology"`
	Witness        []truthtable.Variable `json:"witness,omitempty"`
	Counterexample []truthtable.Variable `json:"counterexample,omitempty"`
}

// Classify decides satisfiability and validity of node with a SAT solver
// instead of enumerating the truth table.
func Classify(node ast.Node, fixed map[string]bool) (*Classification, error) {
	vars := ast.CollectVariables(node)
	if err := truthtable.ValidateFixed(vars, fixed); err != nil {
		return nil, err
	}

	c := logic.NewC()
	lits := make(map[string]z.Lit, len(vars))
	for _, v := range vars {
		lits[v] = c.Lit()
	}

	formula, err := build(c, node, lits)
	if err != nil {
		return nil, err
	}

	s := newSolver(c, vars, lits)

	assumptions := make([]z.Lit, 0, len(fixed)+1)
	for _, v := range vars {
		value, ok := fixed[v]
		if !ok {
			continue
		}
		if value {
			assumptions = append(assumptions, lits[v])
		} else {
			assumptions = append(assumptions, lits[v].Not())
		}
	}

	witness, err := s.find(formula, c, true, assumptions)
	if err != nil {
		return nil, err
	}
	counter, err := s.find(formula, c, false, assumptions)
	if err != nil {
		return nil, err
	}

	res := &Classification{
		Satisfiable:    witness != nil,
		Tautology:      counter == nil,
		Witness:        witness,
		Counterexample: counter,
	}
	switch {
	case !res.Satisfiable:
		res.Kind = Contradiction
	case res.Tautology:
		res.Kind = Tautology
	default:
		res.Kind = Contingent
	}
	return res, nil
}

type solver struct {
	g    *gini.Gini
	vars []string
	lits map[string]z.Lit
}

func newSolver(c *logic.C, vars []string, lits map[string]z.Lit) *solver {
	// circuit simplification can drop variables from every clause; tie each
	// one to a free padding literal so the solver still knows about it
	pad := c.Lit()

	g := gini.New()
	c.ToCnf(g)
	for _, v := range vars {
		g.Add(lits[v])
		g.Add(pad)
		g.Add(0)
	}

	return &solver{g: g, vars: vars, lits: lits}
}

// find returns an assignment under which formula evaluates to want, or nil
// when there is none.
func (s *solver) find(formula z.Lit, c *logic.C, want bool, assumptions []z.Lit) ([]truthtable.Variable, error) {
	target := formula
	if !want {
		target = formula.Not()
	}

	switch target {
	case c.F:
		return nil, nil
	case c.T:
	default:
		s.g.Assume(target)
	}
	s.g.Assume(assumptions...)

	switch s.g.Solve() {
	case 1:
		model := make([]truthtable.Variable, len(s.vars))
		for i, v := range s.vars {
			model[i] = truthtable.Variable{Name: v, Value: s.g.Value(s.lits[v])}
		}
		return model, nil
	case -1:
		return nil, nil
	default:
		return nil, fmt.Errorf("solver returned no answer")
	}
}

func build(c *logic.C, node ast.Node, lits map[string]z.Lit) (z.Lit, error) {
	switch n := node.(type) {
	case *ast.Variable:
		return lits[n.Name], nil
	case *ast.Literal:
		if n.Value {
			return c.T, nil
		}
		return c.F, nil
	case *ast.Not:
		operand, err := build(c, n.Operand, lits)
		if err != nil {
			return z.LitNull, err
		}
		return operand.Not(), nil
	case *ast.Binary:
		l, err := build(c, n.Left, lits)
		if err != nil {
			return z.LitNull, err
		}
		r, err := build(c, n.Right, lits)
		if err != nil {
			return z.LitNull, err
		}
		return gate(c, n.Op, l, r)
	default:
		return z.LitNull, fmt.Errorf("unsupported node type %T", node)
	}
}

func gate(c *logic.C, op ast.Op, l, r z.Lit) (z.Lit, error) {
	switch op {
	case ast.And:
		return c.And(l, r), nil
	case ast.Or:
		return c.Or(l, r), nil
	case ast.Xor:
		return c.Or(c.And(l, r.Not()), c.And(l.Not(), r)), nil
	case ast.Implies:
		return c.Or(l.Not(), r), nil
	case ast.Equiv:
		return c.Or(c.And(l, r.Not()), c.And(l.Not(), r)).Not(), nil
	default:
		return z.LitNull, fmt.Errorf("unsupported operator %s", op)
	}
}
