package truthtable

import (
	"slices"

	"github.com/DjordjeVuckovic/logicka/internal/ast"
	"github.com/DjordjeVuckovic/logicka/internal/eval"
)

const (
	DefaultMaxFreeVariables = 20
	// MaxFreeVariablesCeiling bounds any configured limit.
	MaxFreeVariablesCeiling = 30
)

type Option func(*Generator)

// WithMaxFreeVariables sets how many free variables a table may enumerate.
// Values below 1 keep the default, values above the ceiling are clamped.
func WithMaxFreeVariables(n int) Option {
	return func(g *Generator) {
		switch {
		case n < 1:
			g.maxFree = DefaultMaxFreeVariables
		case n > MaxFreeVariablesCeiling:
			g.maxFree = MaxFreeVariablesCeiling
		default:
			g.maxFree = n
		}
	}
}

// Generator builds truth tables. It holds no per-call state and is safe for
// concurrent use.
type Generator struct {
	maxFree int
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{maxFree: DefaultMaxFreeVariables}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) MaxFreeVariables() int {
	return g.maxFree
}

// ValidateFixed checks that every key of fixed names one of vars.
func ValidateFixed(vars []string, fixed map[string]bool) error {
	known := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		known[v] = struct{}{}
	}

	var unknown []string
	for name := range fixed {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return &UnknownVariableError{Names: unknown}
	}
	return nil
}

// Split validates fixed against the variables of node and returns the
// variable list together with the free variables, both in first-occurrence
// order.
func (g *Generator) Split(node ast.Node, fixed map[string]bool) (vars, free []string, err error) {
	vars = ast.CollectVariables(node)
	if err := ValidateFixed(vars, fixed); err != nil {
		return nil, nil, err
	}

	free = make([]string, 0, len(vars))
	for _, v := range vars {
		if _, ok := fixed[v]; !ok {
			free = append(free, v)
		}
	}

	if len(free) > g.maxFree {
		return nil, nil, &TooManyVariablesError{Free: len(free), Limit: g.maxFree}
	}
	return vars, free, nil
}

// Generate enumerates every assignment of the free variables of node in
// ascending binary order, the first free variable being the most
// significant bit, with fixed variables pinned to their values.
func (g *Generator) Generate(node ast.Node, fixed map[string]bool) (*Table, error) {
	vars, free, err := g.Split(node, fixed)
	if err != nil {
		return nil, err
	}

	k := len(free)
	total := 1 << k

	assignment := make(map[string]bool, len(vars))
	for name, value := range fixed {
		assignment[name] = value
	}

	rows := make([]Row, 0, total)
	for i := 0; i < total; i++ {
		for j, name := range free {
			assignment[name] = (i>>(k-1-j))&1 == 1
		}

		result, err := eval.Evaluate(node, assignment)
		if err != nil {
			return nil, err
		}

		cells := make([]Variable, len(vars))
		for c, name := range vars {
			cells[c] = Variable{Name: name, Value: assignment[name]}
		}
		rows = append(rows, Row{Result: result, Variables: cells})
	}

	return &Table{Variables: vars, Free: free, Rows: rows}, nil
}
