package estree

// Children returns the direct child nodes of n in source order.
// Nil children are omitted.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil && !isNil(c) {
			out = append(out, c)
		}
	}

	switch n := n.(type) {
	case *Program:
		for _, s := range n.Body {
			add(s)
		}
	case *BlockStatement:
		for _, s := range n.Body {
			add(s)
		}
	case *ExpressionStatement:
		add(n.Expression)
	case *FunctionDeclaration:
		if n.ID != nil {
			add(n.ID)
		}
		for _, p := range n.Params {
			add(p)
		}
		if n.Body != nil {
			add(n.Body)
		}
	case *FunctionExpression:
		if n.ID != nil {
			add(n.ID)
		}
		for _, p := range n.Params {
			add(p)
		}
		if n.Body != nil {
			add(n.Body)
		}
	case *ArrowFunctionExpression:
		for _, p := range n.Params {
			add(p)
		}
		add(n.Body)
	case *AssignmentExpression:
		add(n.Left)
		add(n.Right)
	case *CallExpression:
		add(n.Callee)
		for _, a := range n.Arguments {
			add(a)
		}
	case *NewExpression:
		add(n.Callee)
		for _, a := range n.Arguments {
			add(a)
		}
	case *ChainExpression:
		add(n.Expression)
	case *UpdateExpression:
		add(n.Argument)
	case *YieldExpression:
		add(n.Argument)
	case *AwaitExpression:
		add(n.Argument)
	case *UnaryExpression:
		add(n.Argument)
	case *ConditionalExpression:
		add(n.Test)
		add(n.Consequent)
		add(n.Alternate)
	case *LogicalExpression:
		add(n.Left)
		add(n.Right)
	case *TaggedTemplateExpression:
		add(n.Tag)
		if n.Quasi != nil {
			add(n.Quasi)
		}
	case *TemplateLiteral:
		for _, e := range n.Expressions {
			add(e)
		}
	case *Other:
		for _, c := range n.Children {
			add(c)
		}
	}

	return out
}

// isNil catches typed nil pointers stored in an interface, such as a nil
// *BlockStatement assigned to ArrowFunctionExpression.Body.
func isNil(n Node) bool {
	switch n := n.(type) {
	case *BlockStatement:
		return n == nil
	case *Identifier:
		return n == nil
	case *TemplateLiteral:
		return n == nil
	case *Other:
		return n == nil
	}
	return false
}

// Inspect traverses the tree rooted at root in depth-first preorder. It
// calls f(n) for each node; if f returns false the children of n are skipped.
func Inspect(root Node, f func(Node) bool) {
	WithStack(root, func(n Node, push bool, _ []Node) bool {
		if !push {
			return true
		}
		return f(n)
	})
}

// WithStack traverses the tree rooted at root in depth-first preorder,
// calling f twice per node: once with push set before visiting the children,
// and once with push unset after. stack holds the path from root to n
// inclusive, so the ancestors of n are stack[:len(stack)-1].
//
// If f returns false on push, the children of n are skipped and the
// second call is not made. The stack slice is reused between calls and must
// not be retained.
func WithStack(root Node, f func(n Node, push bool, stack []Node) bool) {
	if root == nil || isNil(root) {
		return
	}
	var stack []Node
	var visit func(Node)
	visit = func(n Node) {
		stack = append(stack, n)
		if f(n, true, stack) {
			for _, c := range Children(n) {
				visit(c)
			}
			f(n, false, stack)
		}
		stack = stack[:len(stack)-1]
	}
	visit(root)
}
