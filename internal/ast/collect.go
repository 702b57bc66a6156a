package ast

// CollectVariables returns the distinct variable names of node in the order
// they are first met by a left-to-right depth-first walk.
func CollectVariables(node Node) []string {
	seen := make(map[string]struct{})
	vars := make([]string, 0)

	var walk func(Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Variable:
			if _, ok := seen[n.Name]; !ok {
				seen[n.Name] = struct{}{}
				vars = append(vars, n.Name)
			}
		case *Not:
			walk(n.Operand)
		case *Binary:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(node)

	return vars
}
