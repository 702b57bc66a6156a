package simplify

import (
	"log/slog"

	"github.com/DjordjeVuckovic/logicka/internal/ast"
)

const DefaultMaxPasses = 100

// Step records one rule application on a subtree.
type Step struct {
	Rule   string `json:"rule"`
	Before string `json:"before"`
	After  string `json:"after"`
}

type Result struct {
	Input      string   `json:"input"`
	Simplified string   `json:"simplified"`
	Node       ast.Node `json:"-"`
	Steps      []Step   `json:"steps"`
	// Passes is the number of rewrite passes that changed the tree.
	Passes int `json:"passes"`
}

type Option func(*Simplifier)

func WithRules(rules ...Rule) Option {
	return func(s *Simplifier) {
		s.rules = rules
	}
}

func WithMaxPasses(n int) Option {
	return func(s *Simplifier) {
		if n > 0 {
			s.maxPasses = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Simplifier) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Simplifier rewrites expressions to a fixed point. Each pass walks the
// tree bottom-up and applies at most one rule per node. It is safe for
// concurrent use.
type Simplifier struct {
	rules     []Rule
	maxPasses int
	logger    *slog.Logger
}

func New(opts ...Option) *Simplifier {
	s := &Simplifier{
		rules:     DefaultRules(),
		maxPasses: DefaultMaxPasses,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simplify returns an expression equivalent to node with every rule
// applied until nothing changes or the pass limit is reached.
func (s *Simplifier) Simplify(node ast.Node) *Result {
	res := &Result{
		Input: ast.String(node),
		Steps: make([]Step, 0),
	}

	current := node
	for res.Passes < s.maxPasses {
		next, changed := s.pass(current, res)
		if !changed {
			break
		}
		res.Passes++
		current = next
	}

	if res.Passes == s.maxPasses {
		s.logger.Warn("simplification stopped at pass limit", "input", res.Input, "passes", res.Passes)
	}

	res.Node = current
	res.Simplified = ast.String(current)
	return res
}

func (s *Simplifier) pass(node ast.Node, res *Result) (ast.Node, bool) {
	changed := false

	switch n := node.(type) {
	case *ast.Not:
		operand, c := s.pass(n.Operand, res)
		if c {
			node, changed = ast.Neg(operand), true
		}
	case *ast.Binary:
		left, cl := s.pass(n.Left, res)
		right, cr := s.pass(n.Right, res)
		if cl || cr {
			node, changed = ast.Bin(n.Op, left, right), true
		}
	}

	for _, rule := range s.rules {
		rewritten, ok := rule.Apply(node)
		if !ok {
			continue
		}

		step := Step{Rule: rule.Name(), Before: ast.String(node), After: ast.String(rewritten)}
		res.Steps = append(res.Steps, step)
		s.logger.Debug("rule applied", "rule", step.Rule, "before", step.Before, "after", step.After)

		return rewritten, true
	}

	return node, changed
}

// Simplify runs the default rule set.
func Simplify(node ast.Node) *Result {
	return New().Simplify(node)
}
