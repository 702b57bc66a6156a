package ast

import "strings"

const (
	precPrimary = 7
	precNot     = 6
)

func precedence(n Node) int {
	switch n := n.(type) {
	case *Not:
		return precNot
	case *Binary:
		return opPrecedence(n.Op)
	default:
		return precPrimary
	}
}

func opPrecedence(op Op) int {
	switch op {
	case And:
		return 5
	case Xor:
		return 4
	case Or:
		return 3
	case Implies:
		return 2
	default:
		return 1
	}
}

// String renders node with canonical symbols and the fewest parentheses that
// keep the tree shape when the text is parsed again.
func String(node Node) string {
	var sb strings.Builder
	write(&sb, node)
	return sb.String()
}

func write(sb *strings.Builder, node Node) {
	switch n := node.(type) {
	case *Variable:
		sb.WriteString(n.Name)
	case *Literal:
		if n.Value {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	case *Not:
		sb.WriteByte('!')
		writeOperand(sb, n.Operand, precedence(n.Operand) < precNot)
	case *Binary:
		p := opPrecedence(n.Op)
		// binary connectives are left-associative, so an equal-precedence
		// right child needs parentheses
		writeOperand(sb, n.Left, precedence(n.Left) < p)
		sb.WriteByte(' ')
		sb.WriteString(n.Op.Symbol())
		sb.WriteByte(' ')
		writeOperand(sb, n.Right, precedence(n.Right) <= p)
	}
}

func writeOperand(sb *strings.Builder, n Node, paren bool) {
	if !paren {
		write(sb, n)
		return
	}
	sb.WriteByte('(')
	write(sb, n)
	sb.WriteByte(')')
}

// Equal reports whether a and b have the same shape and leaves.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Variable:
		b, ok := b.(*Variable)
		return ok && a.Name == b.Name
	case *Literal:
		b, ok := b.(*Literal)
		return ok && a.Value == b.Value
	case *Not:
		b, ok := b.(*Not)
		return ok && Equal(a.Operand, b.Operand)
	case *Binary:
		b, ok := b.(*Binary)
		return ok && a.Op == b.Op && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	default:
		return a == nil && b == nil
	}
}
