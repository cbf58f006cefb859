package patterns

import "github.com/mpyw/unusedexpr/estree"

// SideEffect accepts the expression kinds that are always worth evaluating
// for their effect: assignment, call (optional calls included), new,
// increment/decrement, yield and await. Unary delete and void are accepted
// whatever their operand.
type SideEffect struct{}

func (SideEffect) Name() string {
	return "SideEffect"
}

func (SideEffect) Match(_ *Validator, expr estree.Expr) Result {
	switch e := expr.(type) {
	case *estree.AssignmentExpression,
		*estree.CallExpression,
		*estree.NewExpression,
		*estree.UpdateExpression,
		*estree.YieldExpression,
		*estree.AwaitExpression:
		return Valid
	case *estree.UnaryExpression:
		return resultOf(e.Operator == "delete" || e.Operator == "void")
	default:
		return NoMatch
	}
}

// Chain looks through an optional chain wrapper: a?.b() is as acceptable as
// the call inside it, a?.b is not.
type Chain struct{}

func (Chain) Name() string {
	return "Chain"
}

func (Chain) Match(v *Validator, expr estree.Expr) Result {
	c, ok := expr.(*estree.ChainExpression)
	if !ok {
		return NoMatch
	}
	return resultOf(v.IsValid(c.Expression))
}
