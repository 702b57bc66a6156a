// Package asttest provides random expression trees for property tests.
package asttest

import (
	"github.com/DjordjeVuckovic/logicka/internal/ast"
	"pgregory.net/rapid"
)

// DefaultNames is a small pool so generated trees share variables.
var DefaultNames = []string{"A", "B", "C", "D"}

var ops = []ast.Op{ast.And, ast.Xor, ast.Or, ast.Implies, ast.Equiv}

// Node returns a generator of trees at most depth levels deep over names.
func Node(depth int, names []string) *rapid.Generator[ast.Node] {
	return rapid.Custom(func(t *rapid.T) ast.Node {
		return draw(t, depth, names)
	})
}

func draw(t *rapid.T, depth int, names []string) ast.Node {
	kind := 0
	if depth > 0 {
		kind = rapid.IntRange(0, 3).Draw(t, "kind")
	} else {
		kind = rapid.IntRange(0, 1).Draw(t, "leaf")
	}

	switch kind {
	case 0:
		return ast.Var(rapid.SampledFrom(names).Draw(t, "name"))
	case 1:
		if rapid.IntRange(0, 4).Draw(t, "literal") == 0 {
			return ast.Lit(rapid.Bool().Draw(t, "value"))
		}
		return ast.Var(rapid.SampledFrom(names).Draw(t, "name"))
	case 2:
		return ast.Neg(draw(t, depth-1, names))
	default:
		op := rapid.SampledFrom(ops).Draw(t, "op")
		return ast.Bin(op, draw(t, depth-1, names), draw(t, depth-1, names))
	}
}
