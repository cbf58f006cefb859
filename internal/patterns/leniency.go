package patterns

import "github.com/mpyw/unusedexpr/estree"

// Ternary accepts a conditional expression when both branches are
// acceptable. The test is not checked.
type Ternary struct{}

func (Ternary) Name() string {
	return "Ternary"
}

func (Ternary) Match(v *Validator, expr estree.Expr) Result {
	c, ok := expr.(*estree.ConditionalExpression)
	if !ok {
		return NoMatch
	}
	return resultOf(v.IsValid(c.Consequent) && v.IsValid(c.Alternate))
}

// ShortCircuit accepts a logical expression (&&, || or ??) when its right
// operand is acceptable. The left operand is not checked.
type ShortCircuit struct{}

func (ShortCircuit) Name() string {
	return "ShortCircuit"
}

func (ShortCircuit) Match(v *Validator, expr estree.Expr) Result {
	l, ok := expr.(*estree.LogicalExpression)
	if !ok {
		return NoMatch
	}
	return resultOf(v.IsValid(l.Right))
}

// TaggedTemplate accepts every tagged template.
type TaggedTemplate struct{}

func (TaggedTemplate) Name() string {
	return "TaggedTemplate"
}

func (TaggedTemplate) Match(_ *Validator, expr estree.Expr) Result {
	if _, ok := expr.(*estree.TaggedTemplateExpression); !ok {
		return NoMatch
	}
	return Valid
}
