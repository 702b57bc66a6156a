package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectVariables(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected []string
	}{
		{
			name:     "single variable",
			node:     Var("A"),
			expected: []string{"A"},
		},
		{
			name:     "first occurrence order",
			node:     Bin(Or, Bin(And, Var("B"), Var("A")), Var("C")),
			expected: []string{"B", "A", "C"},
		},
		{
			name:     "duplicates removed",
			node:     Bin(And, Var("A"), Bin(Or, Neg(Var("A")), Var("B"))),
			expected: []string{"A", "B"},
		},
		{
			name:     "case sensitive",
			node:     Bin(And, Var("a"), Var("A")),
			expected: []string{"a", "A"},
		},
		{
			name:     "literals contribute nothing",
			node:     Bin(Or, Lit(true), Lit(false)),
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CollectVariables(tt.node))
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{name: "variable", node: Var("x1"), expected: "x1"},
		{name: "literals", node: Bin(And, Lit(true), Lit(false)), expected: "1 & 0"},
		{name: "negated variable", node: Neg(Var("A")), expected: "!A"},
		{name: "double negation", node: Neg(Neg(Var("A"))), expected: "!!A"},
		{name: "negated binary", node: Neg(Bin(And, Var("A"), Var("B"))), expected: "!(A & B)"},
		{
			name:     "tighter child needs no parens",
			node:     Bin(Or, Var("A"), Bin(And, Var("B"), Var("C"))),
			expected: "A | B & C",
		},
		{
			name:     "looser child gets parens",
			node:     Bin(And, Bin(Or, Var("A"), Var("B")), Var("C")),
			expected: "(A | B) & C",
		},
		{
			name:     "left chain stays flat",
			node:     Bin(Implies, Bin(Implies, Var("A"), Var("B")), Var("C")),
			expected: "A -> B -> C",
		},
		{
			name:     "right nested same op gets parens",
			node:     Bin(Implies, Var("A"), Bin(Implies, Var("B"), Var("C"))),
			expected: "A -> (B -> C)",
		},
		{
			name:     "all connectives",
			node:     Bin(Equiv, Bin(Implies, Var("A"), Bin(Or, Var("B"), Bin(Xor, Var("C"), Var("D")))), Var("E")),
			expected: "A -> B | C ^ D <-> E",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, String(tt.node))
		})
	}
}

func TestEqual(t *testing.T) {
	a := Bin(And, Var("A"), Neg(Var("B")))

	assert.True(t, Equal(a, Bin(And, Var("A"), Neg(Var("B")))))
	assert.False(t, Equal(a, Bin(Or, Var("A"), Neg(Var("B")))))
	assert.False(t, Equal(a, Bin(And, Neg(Var("B")), Var("A"))))
	assert.False(t, Equal(Lit(true), Lit(false)))
	assert.False(t, Equal(Var("A"), Lit(true)))
	assert.True(t, Equal(nil, nil))
}

func TestOp_Symbol(t *testing.T) {
	assert.Equal(t, "&", And.Symbol())
	assert.Equal(t, "<->", Equiv.Symbol())
	assert.Equal(t, "IMPLIES", Implies.String())
}
