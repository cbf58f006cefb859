// Package patterns defines the expression patterns that may stand alone as
// statements.
package patterns

import (
	"github.com/mpyw/unusedexpr/estree"
	"github.com/mpyw/unusedexpr/internal/config"
)

// Result is the outcome of matching a pattern against an expression.
type Result uint8

const (
	// NoMatch means the pattern does not apply to the expression's kind.
	NoMatch Result = iota
	// Valid means the pattern applies and the expression is acceptable.
	Valid
	// Invalid means the pattern applies and the expression is not acceptable.
	Invalid
)

func resultOf(ok bool) Result {
	if ok {
		return Valid
	}
	return Invalid
}

// Pattern classifies one family of expression kinds.
type Pattern interface {
	// Name returns a human-readable name for the pattern.
	Name() string

	// Match classifies expr. Patterns that recurse into sub-expressions do so
	// through v so the whole configured pattern set applies.
	Match(v *Validator, expr estree.Expr) Result
}

// Validator decides whether an expression is acceptable as a statement.
// It is immutable and safe for concurrent use.
type Validator struct {
	patterns []Pattern
}

// NewValidator returns a validator for the given options. Leniency patterns
// come first; their kinds never overlap with the base set.
func NewValidator(opts config.Options) *Validator {
	var ps []Pattern
	if opts.AllowTernary {
		ps = append(ps, Ternary{})
	}
	if opts.AllowShortCircuit {
		ps = append(ps, ShortCircuit{})
	}
	if opts.AllowTaggedTemplates {
		ps = append(ps, TaggedTemplate{})
	}
	ps = append(ps, Chain{}, SideEffect{})
	return &Validator{patterns: ps}
}

// Patterns returns the active patterns in match order.
func (v *Validator) Patterns() []Pattern {
	return append([]Pattern(nil), v.patterns...)
}

// IsValid reports whether expr may stand alone as a statement. A nil
// expression is never valid.
func (v *Validator) IsValid(expr estree.Expr) bool {
	if expr == nil {
		return false
	}
	for _, p := range v.patterns {
		switch p.Match(v, expr) {
		case Valid:
			return true
		case Invalid:
			return false
		}
	}
	return false
}
