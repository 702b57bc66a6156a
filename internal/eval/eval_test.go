package eval

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/logicka/internal/ast"
	"github.com/DjordjeVuckovic/logicka/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	tests := []struct {
		op       ast.Op
		expected [4]bool // (0,0) (0,1) (1,0) (1,1)
	}{
		{op: ast.And, expected: [4]bool{false, false, false, true}},
		{op: ast.Xor, expected: [4]bool{false, true, true, false}},
		{op: ast.Or, expected: [4]bool{false, true, true, true}},
		{op: ast.Implies, expected: [4]bool{true, true, false, true}},
		{op: ast.Equiv, expected: [4]bool{true, false, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			for i, want := range tt.expected {
				got, err := Apply(tt.op, i&2 != 0, i&1 != 0)
				require.NoError(t, err)
				assert.Equal(t, want, got, "row %d", i)
			}
		})
	}

	_, err := Apply(ast.Op(42), true, true)
	assert.Error(t, err)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		assignment map[string]bool
		expected   bool
	}{
		{name: "and", expression: "A && B", assignment: map[string]bool{"A": true, "B": true}, expected: true},
		{name: "not", expression: "!A", assignment: map[string]bool{"A": true}, expected: false},
		{name: "precedence", expression: "A || B && C", assignment: map[string]bool{"A": false, "B": true, "C": false}, expected: false},
		{name: "grouping", expression: "(A || B) && C", assignment: map[string]bool{"A": true, "B": false, "C": false}, expected: false},
		{name: "implication from false", expression: "A -> B", assignment: map[string]bool{"A": false, "B": false}, expected: true},
		{name: "equivalence", expression: "A <-> !B", assignment: map[string]bool{"A": true, "B": false}, expected: true},
		{name: "literals only", expression: "1 & !0", assignment: nil, expected: true},
		{name: "extra assignments ignored", expression: "A", assignment: map[string]bool{"A": true, "Z": false}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := parser.ParseString(tt.expression)
			require.NoError(t, err)

			got, err := Evaluate(node, tt.assignment)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluate_UnboundVariable(t *testing.T) {
	node, err := parser.ParseString("A & (B | C)")
	require.NoError(t, err)

	_, err = Evaluate(node, map[string]bool{"A": true, "B": false})
	require.Error(t, err)

	var unbound *UnboundVariableError
	require.True(t, errors.As(err, &unbound))
	assert.Equal(t, "C", unbound.Name)
}
