package simplify

import "github.com/DjordjeVuckovic/logicka/internal/ast"

// Rule rewrites a single node. Apply reports false when the rule does not
// match; it never looks below the children of node.
type Rule interface {
	Name() string
	Apply(node ast.Node) (ast.Node, bool)
}

type ruleFunc struct {
	name  string
	apply func(ast.Node) (ast.Node, bool)
}

func (r ruleFunc) Name() string { return r.name }

func (r ruleFunc) Apply(node ast.Node) (ast.Node, bool) { return r.apply(node) }

// NewRule adapts a function to the Rule interface.
func NewRule(name string, apply func(ast.Node) (ast.Node, bool)) Rule {
	return ruleFunc{name: name, apply: apply}
}

// DefaultRules returns the rewrite rules in the order they are tried.
func DefaultRules() []Rule {
	return []Rule{
		NewRule("implication elimination", implicationElimination),
		NewRule("equivalence elimination", equivalenceElimination),
		NewRule("double negation", doubleNegation),
		NewRule("literal negation", literalNegation),
		NewRule("de morgan", deMorgan),
		NewRule("identity", identity),
		NewRule("domination", domination),
		NewRule("xor with true", xorWithTrue),
		NewRule("chain collapse", chainCollapse),
		NewRule("duplicate elimination", duplicateElimination),
		NewRule("idempotency", idempotency),
		NewRule("complement", complement),
		NewRule("absorption", absorption),
		NewRule("resolution", resolution),
	}
}

func literal(n ast.Node) (bool, bool) {
	l, ok := n.(*ast.Literal)
	if !ok {
		return false, false
	}
	return l.Value, true
}

func binary(n ast.Node, ops ...ast.Op) (*ast.Binary, bool) {
	b, ok := n.(*ast.Binary)
	if !ok {
		return nil, false
	}
	for _, op := range ops {
		if b.Op == op {
			return b, true
		}
	}
	return nil, false
}

// isNegationOf reports whether a is !b.
func isNegationOf(a, b ast.Node) bool {
	n, ok := a.(*ast.Not)
	return ok && ast.Equal(n.Operand, b)
}

// a -> b  =>  !a | b
func implicationElimination(n ast.Node) (ast.Node, bool) {
	b, ok := binary(n, ast.Implies)
	if !ok {
		return nil, false
	}
	return ast.Bin(ast.Or, ast.Neg(b.Left), b.Right), true
}

// a <-> b  =>  (a -> b) & (b -> a)
func equivalenceElimination(n ast.Node) (ast.Node, bool) {
	b, ok := binary(n, ast.Equiv)
	if !ok {
		return nil, false
	}
	return ast.Bin(ast.And,
		ast.Bin(ast.Implies, b.Left, b.Right),
		ast.Bin(ast.Implies, b.Right, b.Left),
	), true
}

func doubleNegation(n ast.Node) (ast.Node, bool) {
	outer, ok := n.(*ast.Not)
	if !ok {
		return nil, false
	}
	inner, ok := outer.Operand.(*ast.Not)
	if !ok {
		return nil, false
	}
	return inner.Operand, true
}

func literalNegation(n ast.Node) (ast.Node, bool) {
	not, ok := n.(*ast.Not)
	if !ok {
		return nil, false
	}
	v, ok := literal(not.Operand)
	if !ok {
		return nil, false
	}
	return ast.Lit(!v), true
}

// !(a & b)  =>  !a | !b  and  !(a | b)  =>  !a & !b
func deMorgan(n ast.Node) (ast.Node, bool) {
	not, ok := n.(*ast.Not)
	if !ok {
		return nil, false
	}
	b, ok := binary(not.Operand, ast.And, ast.Or)
	if !ok {
		return nil, false
	}
	dual := ast.Or
	if b.Op == ast.Or {
		dual = ast.And
	}
	return ast.Bin(dual, ast.Neg(b.Left), ast.Neg(b.Right)), true
}

// a & 1, a | 0, a ^ 0  =>  a
func identity(n ast.Node) (ast.Node, bool) {
	b, ok := binary(n, ast.And, ast.Or, ast.Xor)
	if !ok {
		return nil, false
	}
	neutral := b.Op == ast.And
	if v, ok := literal(b.Right); ok && v == neutral {
		return b.Left, true
	}
	if v, ok := literal(b.Left); ok && v == neutral {
		return b.Right, true
	}
	return nil, false
}

// a & 0  =>  0  and  a | 1  =>  1
func domination(n ast.Node) (ast.Node, bool) {
	b, ok := binary(n, ast.And, ast.Or)
	if !ok {
		return nil, false
	}
	dominant := b.Op == ast.Or
	for _, side := range []ast.Node{b.Left, b.Right} {
		if v, ok := literal(side); ok && v == dominant {
			return ast.Lit(dominant), true
		}
	}
	return nil, false
}

// a ^ 1  =>  !a
func xorWithTrue(n ast.Node) (ast.Node, bool) {
	b, ok := binary(n, ast.Xor)
	if !ok {
		return nil, false
	}
	if v, ok := literal(b.Right); ok && v {
		return ast.Neg(b.Left), true
	}
	if v, ok := literal(b.Left); ok && v {
		return ast.Neg(b.Right), true
	}
	return nil, false
}

// a & a, a | a  =>  a  and  a ^ a  =>  0
func idempotency(n ast.Node) (ast.Node, bool) {
	b, ok := binary(n, ast.And, ast.Or, ast.Xor)
	if !ok || !ast.Equal(b.Left, b.Right) {
		return nil, false
	}
	if b.Op == ast.Xor {
		return ast.Lit(false), true
	}
	return b.Left, true
}

// a & !a  =>  0,  a | !a  =>  1,  a ^ !a  =>  1
func complement(n ast.Node) (ast.Node, bool) {
	b, ok := binary(n, ast.And, ast.Or, ast.Xor)
	if !ok {
		return nil, false
	}
	if !isNegationOf(b.Left, b.Right) && !isNegationOf(b.Right, b.Left) {
		return nil, false
	}
	return ast.Lit(b.Op != ast.And), true
}

// a & (a | b)  =>  a  and  a | (a & b)  =>  a, in any operand order
func absorption(n ast.Node) (ast.Node, bool) {
	b, ok := binary(n, ast.And, ast.Or)
	if !ok {
		return nil, false
	}
	inner := ast.Or
	if b.Op == ast.Or {
		inner = ast.And
	}
	if absorbs(b.Left, b.Right, inner) {
		return b.Left, true
	}
	if absorbs(b.Right, b.Left, inner) {
		return b.Right, true
	}
	return nil, false
}

func absorbs(a, other ast.Node, inner ast.Op) bool {
	c, ok := binary(other, inner)
	return ok && (ast.Equal(a, c.Left) || ast.Equal(a, c.Right))
}

// chain returns the operands of the maximal op-chain rooted at n, left to
// right. A node that is not an op binary is a chain of one.
func chain(op ast.Op, n ast.Node) []ast.Node {
	b, ok := binary(n, op)
	if !ok {
		return []ast.Node{n}
	}
	return append(chain(op, b.Left), chain(op, b.Right)...)
}

// foldChain rebuilds a left-nested op-chain.
func foldChain(op ast.Op, operands []ast.Node) ast.Node {
	node := operands[0]
	for _, o := range operands[1:] {
		node = ast.Bin(op, node, o)
	}
	return node
}

// longChain returns the operands of an and/or chain with at least three
// operands. Shorter chains are left to the pairwise rules.
func longChain(n ast.Node) (ast.Op, []ast.Node, bool) {
	b, ok := binary(n, ast.And, ast.Or)
	if !ok {
		return 0, nil, false
	}
	operands := chain(b.Op, b)
	return b.Op, operands, len(operands) >= 3
}

// a & b & !a  =>  0  and  a | b | !a  =>  1, also for a dominating literal
// anywhere in the chain
func chainCollapse(n ast.Node) (ast.Node, bool) {
	op, operands, ok := longChain(n)
	if !ok {
		return nil, false
	}
	dominant := op == ast.Or
	for i, a := range operands {
		if v, ok := literal(a); ok && v == dominant {
			return ast.Lit(dominant), true
		}
		for _, other := range operands[i+1:] {
			if isNegationOf(a, other) || isNegationOf(other, a) {
				return ast.Lit(dominant), true
			}
		}
	}
	return nil, false
}

// a & b & a  =>  a & b, keeping the first occurrence of every operand
func duplicateElimination(n ast.Node) (ast.Node, bool) {
	op, operands, ok := longChain(n)
	if !ok {
		return nil, false
	}

	unique := make([]ast.Node, 0, len(operands))
	for _, a := range operands {
		seen := false
		for _, u := range unique {
			if ast.Equal(a, u) {
				seen = true
				break
			}
		}
		if !seen {
			unique = append(unique, a)
		}
	}
	if len(unique) == len(operands) {
		return nil, false
	}
	return foldChain(op, unique), true
}

// (a | b) & (a | !b)  =>  a  and  (a & b) | (a & !b)  =>  a, in any operand
// order
func resolution(n ast.Node) (ast.Node, bool) {
	b, ok := binary(n, ast.And, ast.Or)
	if !ok {
		return nil, false
	}
	inner := ast.Or
	if b.Op == ast.Or {
		inner = ast.And
	}
	l, ok := binary(b.Left, inner)
	if !ok {
		return nil, false
	}
	r, ok := binary(b.Right, inner)
	if !ok {
		return nil, false
	}

	for _, lp := range [][2]ast.Node{{l.Left, l.Right}, {l.Right, l.Left}} {
		for _, rp := range [][2]ast.Node{{r.Left, r.Right}, {r.Right, r.Left}} {
			shared, x, y := lp[0], lp[1], rp[1]
			if ast.Equal(shared, rp[0]) && (isNegationOf(x, y) || isNegationOf(y, x)) {
				return shared, true
			}
		}
	}
	return nil, false
}
