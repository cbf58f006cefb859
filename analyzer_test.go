package unusedexpr_test

import (
	"errors"
	"testing"

	"github.com/mpyw/unusedexpr"
	"github.com/mpyw/unusedexpr/estree"
	"github.com/mpyw/unusedexpr/internal/ruletest"
)

func TestBasic(t *testing.T) {
	testdata := ruletest.TestData()
	ruletest.Run(t, testdata, "basic")
}

func TestDirectives(t *testing.T) {
	testdata := ruletest.TestData()
	ruletest.Run(t, testdata, "directives")
}

func TestShortCircuit(t *testing.T) {
	testdata := ruletest.TestData()
	ruletest.Run(t, testdata, "shortcircuit")
}

func TestTernary(t *testing.T) {
	testdata := ruletest.TestData()
	ruletest.Run(t, testdata, "ternary")
}

func TestTaggedTemplates(t *testing.T) {
	testdata := ruletest.TestData()
	ruletest.Run(t, testdata, "taggedtemplates")
}

func TestCombinedOptions(t *testing.T) {
	testdata := ruletest.TestData()
	ruletest.Run(t, testdata, "combined")
}

func TestOptionalChain(t *testing.T) {
	testdata := ruletest.TestData()
	ruletest.Run(t, testdata, "optionalchain")
}

func TestIgnoreDirectives(t *testing.T) {
	testdata := ruletest.TestData()
	ruletest.Run(t, testdata, "ignore")
}

func TestAllArchivesCovered(t *testing.T) {
	covered := map[string]bool{
		"basic":           true,
		"directives":      true,
		"shortcircuit":    true,
		"ternary":         true,
		"taggedtemplates": true,
		"combined":        true,
		"optionalchain":   true,
		"ignore":          true,
	}

	names, err := ruletest.Archives(ruletest.TestData())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if !covered[name] {
			t.Errorf("testdata/src/%s.txtar has no test", name)
		}
	}
}

func TestNewFromArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []any
		wantErr error
	}{
		{name: "no options"},
		{name: "mapping", args: []any{map[string]any{"allowTernary": true}}},
		{name: "too many", args: []any{map[string]any{}, map[string]any{}}, wantErr: unusedexpr.ErrTooManyArguments},
		{name: "invalid value", args: []any{map[string]any{"allowShortCircuit": 1}}, wantErr: unusedexpr.ErrInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := unusedexpr.NewFromArgs(tt.args...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewFromArgs() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil || rule == nil {
				t.Fatalf("NewFromArgs() = %v, %v", rule, err)
			}
		})
	}
}

func TestExpressionStatement(t *testing.T) {
	rule := unusedexpr.New(unusedexpr.Options{AllowTernary: true})

	bare := &estree.ExpressionStatement{Expression: &estree.Identifier{Name: "x"}}
	ternary := &estree.ExpressionStatement{Expression: &estree.ConditionalExpression{
		Test:       &estree.Identifier{Name: "a"},
		Consequent: &estree.CallExpression{Callee: &estree.Identifier{Name: "f"}},
		Alternate:  &estree.CallExpression{Callee: &estree.Identifier{Name: "g"}},
	}}
	prog := &estree.Program{Body: []estree.Stmt{bare, ternary}}

	var got []unusedexpr.Diagnostic
	emit := func(d unusedexpr.Diagnostic) { got = append(got, d) }

	rule.ExpressionStatement(bare, []estree.Node{prog}, emit)
	rule.ExpressionStatement(ternary, []estree.Node{prog}, emit)

	if len(got) != 1 {
		t.Fatalf("got %d reports, want 1", len(got))
	}
	if got[0].Node != bare {
		t.Error("report should reference the bare statement")
	}
	if got[0].Message != unusedexpr.Message {
		t.Errorf("Message = %q, want %q", got[0].Message, unusedexpr.Message)
	}
	if got[0].Rule != unusedexpr.Name {
		t.Errorf("Rule = %q, want %q", got[0].Rule, unusedexpr.Name)
	}
}

func TestCheckJSONErrors(t *testing.T) {
	rule := unusedexpr.New(unusedexpr.Options{})

	if _, err := rule.CheckJSON([]byte(`{"type": "Identifier"}`)); !errors.Is(err, unusedexpr.ErrNotProgram) {
		t.Errorf("CheckJSON() error = %v, want ErrNotProgram", err)
	}
	if _, err := rule.CheckJSON([]byte(`not json`)); err == nil {
		t.Error("CheckJSON() should fail on invalid JSON")
	}
}

func TestCheckJSONMalformedTree(t *testing.T) {
	rule := unusedexpr.New(unusedexpr.Options{})

	// An expression statement without an expression degrades to a report.
	diags, err := rule.CheckJSON([]byte(`{"type": "Program", "body": [
		{"type": "ExpressionStatement", "loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 1}}}
	]}`))
	if err != nil {
		t.Fatalf("CheckJSON() unexpected error: %v", err)
	}
	if len(diags) != 1 || diags[0].Line != 1 {
		t.Errorf("diagnostics = %+v, want one on line 1", diags)
	}
}
