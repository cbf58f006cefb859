// Package report defines diagnostics and renders them for output.
package report

import "github.com/mpyw/unusedexpr/estree"

// RuleName is the rule identifier attached to every diagnostic.
const RuleName = "no-unused-expressions"

// Message IDs.
const (
	MessageExpected     = "expected"
	MessageUnusedIgnore = "unusedIgnore"
)

// Messages keyed by message ID.
var Messages = map[string]string{
	MessageExpected:     "Expected an assignment or function call and instead saw an expression.",
	MessageUnusedIgnore: "unused unusedexpr:ignore directive",
}

// Diagnostic is a single report. Line and Column are 1-based.
type Diagnostic struct {
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`
	Rule      string `json:"ruleId"`
	MessageID string `json:"messageId"`
	Message   string `json:"message"`

	// Node is the offending statement, or nil for directive reports.
	Node estree.Node `json:"-"`
}

// New returns a diagnostic for messageID spanning loc. ESTree columns are
// 0-based and are shifted here.
func New(messageID string, loc estree.SourceLocation) Diagnostic {
	return Diagnostic{
		Line:      loc.Start.Line,
		Column:    loc.Start.Column + 1,
		EndLine:   loc.End.Line,
		EndColumn: loc.End.Column + 1,
		Rule:      RuleName,
		MessageID: messageID,
		Message:   Messages[messageID],
	}
}

// At returns a diagnostic for messageID on node.
func At(messageID string, node estree.Node) Diagnostic {
	d := New(messageID, node.Location())
	d.Node = node
	return d
}

// FileResult holds the diagnostics of one input file.
type FileResult struct {
	File        string       `json:"file"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Count returns the total number of diagnostics across results.
func Count(results []FileResult) int {
	n := 0
	for _, r := range results {
		n += len(r.Diagnostics)
	}
	return n
}
