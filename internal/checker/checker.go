// Package checker walks a program and reports unused expression statements.
package checker

import (
	"sort"

	"github.com/mpyw/unusedexpr/estree"
	"github.com/mpyw/unusedexpr/internal/config"
	"github.com/mpyw/unusedexpr/internal/directive/ignore"
	"github.com/mpyw/unusedexpr/internal/directive/prologue"
	"github.com/mpyw/unusedexpr/internal/patterns"
	"github.com/mpyw/unusedexpr/internal/report"
)

// Checker holds the configuration fixed for a rule activation. It keeps no
// per-program state and is safe for concurrent use.
type Checker struct {
	validator           *patterns.Validator
	reportUnusedIgnores bool
}

// New creates a checker for the given configuration.
func New(cfg *config.Config) *Checker {
	return &Checker{
		validator:           patterns.NewValidator(cfg.Options),
		reportUnusedIgnores: cfg.ReportUnusedIgnores,
	}
}

// Violates reports whether stmt is an unused expression. ancestors runs from
// the root down to stmt's parent.
//
// The expression is validated first; the directive check only runs for
// expressions that are not valid on their own.
func (c *Checker) Violates(stmt *estree.ExpressionStatement, ancestors []estree.Node) bool {
	if c.validator.IsValid(stmt.Expression) {
		return false
	}
	return !prologue.IsDirective(stmt, ancestors)
}

// CheckStatement returns the diagnostic for stmt, if any.
func (c *Checker) CheckStatement(stmt *estree.ExpressionStatement, ancestors []estree.Node) (report.Diagnostic, bool) {
	if !c.Violates(stmt, ancestors) {
		return report.Diagnostic{}, false
	}
	return report.At(report.MessageExpected, stmt), true
}

// Run checks every expression statement in prog, in document order, and
// applies the program's ignore directives.
func (c *Checker) Run(prog *estree.Program) []report.Diagnostic {
	ignores := ignore.Build(prog.Comments)

	var diags []report.Diagnostic

	estree.WithStack(prog, func(n estree.Node, push bool, stack []estree.Node) bool {
		if !push {
			return true
		}

		stmt, ok := n.(*estree.ExpressionStatement)
		if !ok {
			return true
		}

		d, ok := c.CheckStatement(stmt, stack[:len(stack)-1])
		if !ok {
			return true
		}
		if ignores.ShouldIgnore(stmt.Start.Line) {
			return true
		}
		diags = append(diags, d)

		return true
	})

	if c.reportUnusedIgnores {
		unused := ignores.Unused()
		for _, entry := range unused {
			diags = append(diags, report.New(report.MessageUnusedIgnore, entry.Comment.SourceLocation))
		}
		if len(unused) > 0 {
			sortByPosition(diags)
		}
	}

	return diags
}

func sortByPosition(diags []report.Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Line != diags[j].Line {
			return diags[i].Line < diags[j].Line
		}
		return diags[i].Column < diags[j].Column
	})
}
