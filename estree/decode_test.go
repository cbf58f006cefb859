package estree

import (
	"errors"
	"testing"
)

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "invalid json",
			input: `{"type": "Program",`,
		},
		{
			name:    "root is not an object",
			input:   `[]`,
			wantErr: ErrNotProgram,
		},
		{
			name:    "root is another node",
			input:   `{"type": "ExpressionStatement"}`,
			wantErr: ErrNotProgram,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeDirectivePrologue(t *testing.T) {
	input := `{
		"type": "Program",
		"sourceType": "script",
		"start": 0, "end": 20,
		"loc": {"start": {"line": 1, "column": 0}, "end": {"line": 2, "column": 7}},
		"body": [
			{
				"type": "ExpressionStatement",
				"start": 0, "end": 13,
				"loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 13}},
				"expression": {"type": "Literal", "value": "use strict", "raw": "\"use strict\""},
				"directive": "use strict"
			},
			{
				"type": "ExpressionStatement",
				"expression": {"type": "Literal", "value": 1, "raw": "1"}
			}
		]
	}`

	prog, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if prog.SourceType != "script" {
		t.Errorf("SourceType = %q, want %q", prog.SourceType, "script")
	}
	if len(prog.Body) != 2 {
		t.Fatalf("len(Body) = %d, want 2", len(prog.Body))
	}

	first, ok := prog.Body[0].(*ExpressionStatement)
	if !ok {
		t.Fatalf("Body[0] is %T, want *ExpressionStatement", prog.Body[0])
	}
	if got := first.Location().Start.Line; got != 1 {
		t.Errorf("Start.Line = %d, want 1", got)
	}
	if got := first.Location().End.Offset; got != 13 {
		t.Errorf("End.Offset = %d, want 13", got)
	}
	lit, ok := first.Expression.(*Literal)
	if !ok {
		t.Fatalf("Expression is %T, want *Literal", first.Expression)
	}
	if !lit.IsString() {
		t.Errorf("literal %v should be a string", lit.Value)
	}

	second := prog.Body[1].(*ExpressionStatement)
	if got, ok := second.Expression.(*Literal).Value.(NumberValue); !ok || got != 1 {
		t.Errorf("second literal = %#v, want NumberValue(1)", second.Expression.(*Literal).Value)
	}
}

func TestDecodeLiteralValues(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    LiteralValue
	}{
		{"string", `{"type": "Literal", "value": "x"}`, StringValue("x")},
		{"number", `{"type": "Literal", "value": 1.5}`, NumberValue(1.5)},
		{"true", `{"type": "Literal", "value": true}`, BooleanValue(true)},
		{"false", `{"type": "Literal", "value": false}`, BooleanValue(false)},
		{"null", `{"type": "Literal", "value": null}`, NullValue{}},
		{"missing value", `{"type": "Literal"}`, NullValue{}},
		{"regexp", `{"type": "Literal", "value": {}, "regex": {"pattern": "a+", "flags": "g"}}`, RegExpValue{Pattern: "a+", Flags: "g"}},
		{"bigint", `{"type": "Literal", "value": null, "bigint": "10"}`, BigIntValue("10")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := `{"type": "Program", "body": [{"type": "ExpressionStatement", "expression": ` + tt.literal + `}]}`
			prog, err := Decode([]byte(input))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			lit := prog.Body[0].(*ExpressionStatement).Expression.(*Literal)
			if lit.Value != tt.want {
				t.Errorf("Value = %#v, want %#v", lit.Value, tt.want)
			}
		})
	}
}

func TestDecodeExpressionKinds(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want Kind
	}{
		{"assignment", `{"type": "AssignmentExpression", "operator": "=", "left": {"type": "Identifier", "name": "a"}, "right": {"type": "Literal", "value": 1}}`, KindAssignmentExpression},
		{"call", `{"type": "CallExpression", "callee": {"type": "Identifier", "name": "f"}, "arguments": []}`, KindCallExpression},
		{"optional call", `{"type": "OptionalCallExpression", "callee": {"type": "Identifier", "name": "f"}, "arguments": [], "optional": true}`, KindCallExpression},
		{"chain", `{"type": "ChainExpression", "expression": {"type": "CallExpression", "callee": {"type": "Identifier", "name": "f"}, "arguments": [], "optional": true}}`, KindChainExpression},
		{"new", `{"type": "NewExpression", "callee": {"type": "Identifier", "name": "C"}, "arguments": []}`, KindNewExpression},
		{"update", `{"type": "UpdateExpression", "operator": "++", "prefix": false, "argument": {"type": "Identifier", "name": "i"}}`, KindUpdateExpression},
		{"yield", `{"type": "YieldExpression", "argument": null, "delegate": false}`, KindYieldExpression},
		{"await", `{"type": "AwaitExpression", "argument": {"type": "Identifier", "name": "p"}}`, KindAwaitExpression},
		{"unary", `{"type": "UnaryExpression", "operator": "void", "prefix": true, "argument": {"type": "Literal", "value": 0}}`, KindUnaryExpression},
		{"conditional", `{"type": "ConditionalExpression", "test": {"type": "Identifier", "name": "a"}, "consequent": {"type": "Literal", "value": 1}, "alternate": {"type": "Literal", "value": 2}}`, KindConditionalExpression},
		{"logical", `{"type": "LogicalExpression", "operator": "??", "left": {"type": "Identifier", "name": "a"}, "right": {"type": "Identifier", "name": "b"}}`, KindLogicalExpression},
		{"tagged template", `{"type": "TaggedTemplateExpression", "tag": {"type": "Identifier", "name": "tag"}, "quasi": {"type": "TemplateLiteral", "quasis": [{"type": "TemplateElement", "value": {"raw": "x", "cooked": "x"}, "tail": true}], "expressions": []}}`, KindTaggedTemplateExpression},
		{"member is other", `{"type": "MemberExpression", "object": {"type": "Identifier", "name": "a"}, "property": {"type": "Identifier", "name": "b"}, "computed": false}`, KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := `{"type": "Program", "body": [{"type": "ExpressionStatement", "expression": ` + tt.expr + `}]}`
			prog, err := Decode([]byte(input))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			got := prog.Body[0].(*ExpressionStatement).Expression.Kind()
			if got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeOptionalCall(t *testing.T) {
	input := `{"type": "Program", "body": [{"type": "ExpressionStatement", "expression":
		{"type": "OptionalCallExpression", "callee": {"type": "Identifier", "name": "f"}, "arguments": [{"type": "Identifier", "name": "x"}]}}]}`

	prog, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	call := prog.Body[0].(*ExpressionStatement).Expression.(*CallExpression)
	if !call.Optional {
		t.Error("OptionalCallExpression should decode with Optional set")
	}
	if len(call.Arguments) != 1 {
		t.Errorf("len(Arguments) = %d, want 1", len(call.Arguments))
	}
}

func TestDecodeMissingExpression(t *testing.T) {
	input := `{"type": "Program", "body": [{"type": "ExpressionStatement"}]}`

	prog, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	stmt := prog.Body[0].(*ExpressionStatement)
	other, ok := stmt.Expression.(*Other)
	if !ok {
		t.Fatalf("Expression is %T, want *Other placeholder", stmt.Expression)
	}
	if other.Type != "" {
		t.Errorf("placeholder Type = %q, want empty", other.Type)
	}
}

func TestDecodeKeepsChildrenOfUnknownNodes(t *testing.T) {
	input := `{"type": "Program", "body": [{
		"type": "IfStatement",
		"test": {"type": "Identifier", "name": "a"},
		"consequent": {"type": "BlockStatement", "body": [
			{"type": "ExpressionStatement", "expression": {"type": "Literal", "value": "use strict"}}
		]},
		"alternate": null
	}]}`

	prog, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	ifStmt, ok := prog.Body[0].(*Other)
	if !ok {
		t.Fatalf("Body[0] is %T, want *Other", prog.Body[0])
	}
	if ifStmt.Type != "IfStatement" {
		t.Errorf("Type = %q, want IfStatement", ifStmt.Type)
	}
	if len(ifStmt.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(ifStmt.Children))
	}
	if _, ok := ifStmt.Children[1].(*BlockStatement); !ok {
		t.Errorf("Children[1] is %T, want *BlockStatement", ifStmt.Children[1])
	}
}

func TestDecodeFunctions(t *testing.T) {
	input := `{"type": "Program", "body": [
		{"type": "FunctionDeclaration", "id": {"type": "Identifier", "name": "f"}, "params": [], "generator": true, "async": false,
		 "body": {"type": "BlockStatement", "body": []}},
		{"type": "ExpressionStatement", "expression":
			{"type": "ArrowFunctionExpression", "params": [], "async": true, "expression": true,
			 "body": {"type": "Identifier", "name": "x"}}}
	]}`

	prog, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	fn := prog.Body[0].(*FunctionDeclaration)
	if fn.ID == nil || fn.ID.Name != "f" {
		t.Errorf("ID = %v, want f", fn.ID)
	}
	if !fn.Generator || fn.Async {
		t.Errorf("Generator/Async = %v/%v, want true/false", fn.Generator, fn.Async)
	}
	if fn.Body == nil {
		t.Fatal("Body is nil")
	}

	arrow := prog.Body[1].(*ExpressionStatement).Expression.(*ArrowFunctionExpression)
	if !arrow.Async || !arrow.Expression {
		t.Errorf("Async/Expression = %v/%v, want true/true", arrow.Async, arrow.Expression)
	}
	if _, ok := arrow.Body.(*Identifier); !ok {
		t.Errorf("Body is %T, want *Identifier", arrow.Body)
	}
}

func TestDecodeComments(t *testing.T) {
	input := `{"type": "Program", "body": [], "comments": [
		{"type": "Line", "value": " unusedexpr:ignore", "loc": {"start": {"line": 3, "column": 2}, "end": {"line": 3, "column": 22}}, "range": [10, 30]}
	]}`

	prog, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(prog.Comments) != 1 {
		t.Fatalf("len(Comments) = %d, want 1", len(prog.Comments))
	}
	c := prog.Comments[0]
	if c.Type != "Line" || c.Value != " unusedexpr:ignore" {
		t.Errorf("comment = %+v", c)
	}
	if c.Start.Line != 3 || c.Start.Column != 2 || c.Start.Offset != 10 || c.End.Offset != 30 {
		t.Errorf("comment location = %+v", c.SourceLocation)
	}
}
