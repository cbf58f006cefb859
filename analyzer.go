// Package unusedexpr provides the no-unused-expressions rule for ESTree
// syntax trees: it reports expression statements whose value is discarded
// without an observable effect.
package unusedexpr

import (
	"github.com/mpyw/unusedexpr/estree"
	"github.com/mpyw/unusedexpr/internal/checker"
	"github.com/mpyw/unusedexpr/internal/config"
	"github.com/mpyw/unusedexpr/internal/report"
)

// Name is the rule identifier.
const Name = report.RuleName

// Doc describes the rule.
const Doc = "disallow unused expressions"

// Message is the text reported for an unused expression statement.
var Message = report.Messages[report.MessageExpected]

type (
	// Options are the rule's leniency switches.
	Options = config.Options

	// Config is a rule activation: options plus directive handling and
	// output settings.
	Config = config.Config

	// Diagnostic is a single report.
	Diagnostic = report.Diagnostic
)

// Errors returned while building a rule from raw arguments.
var (
	ErrTooManyArguments = config.ErrTooManyArguments
	ErrInvalidOption    = config.ErrInvalidOption
	ErrNotProgram       = estree.ErrNotProgram
)

// Rule is an activated no-unused-expressions rule. It is immutable and safe
// for concurrent use.
type Rule struct {
	checker *checker.Checker
}

// New activates the rule with opts.
func New(opts Options) *Rule {
	return NewWithConfig(&Config{Options: opts})
}

// NewWithConfig activates the rule with a full configuration.
func NewWithConfig(cfg *Config) *Rule {
	return &Rule{checker: checker.New(cfg)}
}

// NewFromArgs activates the rule from positional options, as a host
// framework would pass them: nothing, or one mapping with the keys
// allowShortCircuit, allowTernary and allowTaggedTemplates.
func NewFromArgs(args ...any) (*Rule, error) {
	opts, err := config.FromArgs(args...)
	if err != nil {
		return nil, err
	}
	return New(opts), nil
}

// ExpressionStatement is the per-node entry point for a host that drives
// the traversal itself. ancestors runs from the root down to stmt's parent.
// emit is called at most once.
func (r *Rule) ExpressionStatement(stmt *estree.ExpressionStatement, ancestors []estree.Node, emit func(Diagnostic)) {
	if d, ok := r.checker.CheckStatement(stmt, ancestors); ok {
		emit(d)
	}
}

// Check walks prog and returns its diagnostics in document order.
// unusedexpr:ignore comments in prog.Comments are honoured.
func (r *Rule) Check(prog *estree.Program) []Diagnostic {
	return r.checker.Run(prog)
}

// CheckJSON decodes an ESTree JSON document and checks it.
func (r *Rule) CheckJSON(data []byte) ([]Diagnostic, error) {
	prog, err := estree.Decode(data)
	if err != nil {
		return nil, err
	}
	return r.Check(prog), nil
}
