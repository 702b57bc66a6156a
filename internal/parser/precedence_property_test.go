package parser

import (
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/logicka/internal/ast"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type connective struct {
	symbol string
	op     ast.Op
	level  int
}

var connectives = []connective{
	{symbol: "&&", op: ast.And, level: 5},
	{symbol: "AND", op: ast.And, level: 5},
	{symbol: "^", op: ast.Xor, level: 4},
	{symbol: "||", op: ast.Or, level: 3},
	{symbol: "or", op: ast.Or, level: 3},
	{symbol: "->", op: ast.Implies, level: 2},
	{symbol: "=>", op: ast.Implies, level: 2},
	{symbol: "<->", op: ast.Equiv, level: 1},
	{symbol: "iff", op: ast.Equiv, level: 1},
}

func TestPrecedenceProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	A, B, C := ast.Var("A"), ast.Var("B"), ast.Var("C")

	properties.Property("tighter connective groups first, ties group left", prop.ForAll(
		func(i, j int) bool {
			first, second := connectives[i], connectives[j]
			input := fmt.Sprintf("A %s B %s C", first.symbol, second.symbol)

			node, err := ParseString(input)
			if err != nil {
				return false
			}

			var expected ast.Node
			if first.level >= second.level {
				expected = ast.Bin(second.op, ast.Bin(first.op, A, B), C)
			} else {
				expected = ast.Bin(first.op, A, ast.Bin(second.op, B, C))
			}
			return ast.Equal(expected, node)
		},
		gen.IntRange(0, len(connectives)-1),
		gen.IntRange(0, len(connectives)-1),
	))

	properties.Property("negation applies to the nearest operand", prop.ForAll(
		func(i int, negation string) bool {
			c := connectives[i]
			node, err := ParseString(fmt.Sprintf("%sA %s B", negation, c.symbol))
			if err != nil {
				return false
			}
			return ast.Equal(ast.Bin(c.op, ast.Neg(A), B), node)
		},
		gen.IntRange(0, len(connectives)-1),
		gen.OneConstOf("!", "¬", "-", "NOT "),
	))

	properties.TestingRun(t)
}
