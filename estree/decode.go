package estree

import (
	"errors"
	"fmt"

	"github.com/valyala/fastjson"
)

// ErrNotProgram is returned by Decode when the root object is not a Program.
var ErrNotProgram = errors.New("estree: root node is not a Program")

// Decode builds a tree from ESTree JSON as emitted by acorn, espree or
// typescript-estree.
//
// Decoding is lenient: unknown node types become [Other] nodes, and a missing
// required child becomes an empty Other, so a malformed tree is still
// checkable. Only invalid JSON and a non-Program root are errors.
func Decode(data []byte) (*Program, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("estree: invalid JSON: %w", err)
	}
	if v.Type() != fastjson.TypeObject || string(v.GetStringBytes("type")) != "Program" {
		return nil, ErrNotProgram
	}
	return decodeProgram(v), nil
}

// fields holding position data or parser side tables rather than children.
var skipFields = map[string]bool{
	"type":     true,
	"loc":      true,
	"range":    true,
	"start":    true,
	"end":      true,
	"comments": true,
	"tokens":   true,
	"parent":   true,
}

func decodeProgram(v *fastjson.Value) *Program {
	prog := &Program{
		SourceLocation: location(v),
		SourceType:     string(v.GetStringBytes("sourceType")),
		Body:           stmts(v.GetArray("body")),
	}
	for _, c := range v.GetArray("comments") {
		prog.Comments = append(prog.Comments, Comment{
			SourceLocation: location(c),
			Type:           string(c.GetStringBytes("type")),
			Value:          string(c.GetStringBytes("value")),
		})
	}
	return prog
}

// node decodes v, or returns nil if v is absent, null, or not a node object.
func node(v *fastjson.Value) Node {
	if v == nil || v.Type() != fastjson.TypeObject {
		return nil
	}
	typ := string(v.GetStringBytes("type"))
	loc := location(v)

	switch KindOf(typ) {
	case KindInvalid:
		return nil
	case KindProgram:
		return decodeProgram(v)
	case KindBlockStatement:
		return block(v)
	case KindExpressionStatement:
		return &ExpressionStatement{SourceLocation: loc, Expression: expr(v.Get("expression"))}
	case KindFunctionDeclaration:
		return &FunctionDeclaration{
			SourceLocation: loc,
			ID:             ident(v.Get("id")),
			Params:         nodes(v.GetArray("params")),
			Body:           block(v.Get("body")),
			Async:          v.GetBool("async"),
			Generator:      v.GetBool("generator"),
		}
	case KindFunctionExpression:
		return &FunctionExpression{
			SourceLocation: loc,
			ID:             ident(v.Get("id")),
			Params:         nodes(v.GetArray("params")),
			Body:           block(v.Get("body")),
			Async:          v.GetBool("async"),
			Generator:      v.GetBool("generator"),
		}
	case KindArrowFunctionExpression:
		return &ArrowFunctionExpression{
			SourceLocation: loc,
			Params:         nodes(v.GetArray("params")),
			Body:           orPlaceholder(node(v.Get("body"))),
			Async:          v.GetBool("async"),
			Expression:     v.GetBool("expression"),
		}
	case KindIdentifier:
		return &Identifier{SourceLocation: loc, Name: string(v.GetStringBytes("name"))}
	case KindLiteral:
		return &Literal{SourceLocation: loc, Value: literalValue(v), Raw: string(v.GetStringBytes("raw"))}
	case KindAssignmentExpression:
		return &AssignmentExpression{
			SourceLocation: loc,
			Operator:       string(v.GetStringBytes("operator")),
			Left:           orPlaceholder(node(v.Get("left"))),
			Right:          expr(v.Get("right")),
		}
	case KindCallExpression:
		return &CallExpression{
			SourceLocation: loc,
			Callee:         expr(v.Get("callee")),
			Arguments:      exprs(v.GetArray("arguments")),
			Optional:       typ == "OptionalCallExpression" || v.GetBool("optional"),
		}
	case KindChainExpression:
		return &ChainExpression{SourceLocation: loc, Expression: expr(v.Get("expression"))}
	case KindNewExpression:
		return &NewExpression{
			SourceLocation: loc,
			Callee:         expr(v.Get("callee")),
			Arguments:      exprs(v.GetArray("arguments")),
		}
	case KindUpdateExpression:
		return &UpdateExpression{
			SourceLocation: loc,
			Operator:       string(v.GetStringBytes("operator")),
			Prefix:         v.GetBool("prefix"),
			Argument:       expr(v.Get("argument")),
		}
	case KindYieldExpression:
		return &YieldExpression{
			SourceLocation: loc,
			Argument:       optionalExpr(v.Get("argument")),
			Delegate:       v.GetBool("delegate"),
		}
	case KindAwaitExpression:
		return &AwaitExpression{SourceLocation: loc, Argument: expr(v.Get("argument"))}
	case KindUnaryExpression:
		return &UnaryExpression{
			SourceLocation: loc,
			Operator:       string(v.GetStringBytes("operator")),
			Argument:       expr(v.Get("argument")),
		}
	case KindConditionalExpression:
		return &ConditionalExpression{
			SourceLocation: loc,
			Test:           expr(v.Get("test")),
			Consequent:     expr(v.Get("consequent")),
			Alternate:      expr(v.Get("alternate")),
		}
	case KindLogicalExpression:
		return &LogicalExpression{
			SourceLocation: loc,
			Operator:       string(v.GetStringBytes("operator")),
			Left:           expr(v.Get("left")),
			Right:          expr(v.Get("right")),
		}
	case KindTaggedTemplateExpression:
		quasi := template(v.Get("quasi"))
		if quasi == nil {
			quasi = &TemplateLiteral{}
		}
		return &TaggedTemplateExpression{SourceLocation: loc, Tag: expr(v.Get("tag")), Quasi: quasi}
	case KindTemplateLiteral:
		return template(v)
	default:
		return other(v, typ, loc)
	}
}

func other(v *fastjson.Value, typ string, loc SourceLocation) *Other {
	o := &Other{SourceLocation: loc, Type: typ}
	obj, err := v.Object()
	if err != nil {
		return o
	}
	obj.Visit(func(key []byte, fv *fastjson.Value) {
		if skipFields[string(key)] {
			return
		}
		switch fv.Type() {
		case fastjson.TypeObject:
			if c := node(fv); c != nil {
				o.Children = append(o.Children, c)
			}
		case fastjson.TypeArray:
			o.Children = append(o.Children, nodes(fv.GetArray())...)
		}
	})
	return o
}

func block(v *fastjson.Value) *BlockStatement {
	if v == nil || string(v.GetStringBytes("type")) != "BlockStatement" {
		return nil
	}
	return &BlockStatement{SourceLocation: location(v), Body: stmts(v.GetArray("body"))}
}

func ident(v *fastjson.Value) *Identifier {
	if v == nil || string(v.GetStringBytes("type")) != "Identifier" {
		return nil
	}
	return &Identifier{SourceLocation: location(v), Name: string(v.GetStringBytes("name"))}
}

func template(v *fastjson.Value) *TemplateLiteral {
	if v == nil || string(v.GetStringBytes("type")) != "TemplateLiteral" {
		return nil
	}
	t := &TemplateLiteral{SourceLocation: location(v), Expressions: exprs(v.GetArray("expressions"))}
	for _, q := range v.GetArray("quasis") {
		t.Quasis = append(t.Quasis, TemplateElement{
			SourceLocation: location(q),
			Raw:            string(q.GetStringBytes("value", "raw")),
			Cooked:         string(q.GetStringBytes("value", "cooked")),
			Tail:           q.GetBool("tail"),
		})
	}
	return t
}

func literalValue(v *fastjson.Value) LiteralValue {
	if re := v.Get("regex"); re != nil && re.Type() == fastjson.TypeObject {
		return RegExpValue{
			Pattern: string(re.GetStringBytes("pattern")),
			Flags:   string(re.GetStringBytes("flags")),
		}
	}
	if bi := v.Get("bigint"); bi != nil && bi.Type() == fastjson.TypeString {
		return BigIntValue(bi.GetStringBytes())
	}
	val := v.Get("value")
	if val == nil {
		return NullValue{}
	}
	switch val.Type() {
	case fastjson.TypeString:
		return StringValue(val.GetStringBytes())
	case fastjson.TypeNumber:
		return NumberValue(val.GetFloat64())
	case fastjson.TypeTrue:
		return BooleanValue(true)
	case fastjson.TypeFalse:
		return BooleanValue(false)
	default:
		return NullValue{}
	}
}

// expr decodes a required expression child.
func expr(v *fastjson.Value) Expr {
	return asExpr(orPlaceholder(node(v)))
}

// optionalExpr decodes an expression child that may legitimately be absent.
func optionalExpr(v *fastjson.Value) Expr {
	n := node(v)
	if n == nil {
		return nil
	}
	return asExpr(n)
}

func asExpr(n Node) Expr {
	if e, ok := n.(Expr); ok {
		return e
	}
	return &Other{SourceLocation: n.Location(), Type: n.Kind().String(), Children: []Node{n}}
}

func asStmt(n Node) Stmt {
	if s, ok := n.(Stmt); ok {
		return s
	}
	return &Other{SourceLocation: n.Location(), Type: n.Kind().String(), Children: []Node{n}}
}

func orPlaceholder(n Node) Node {
	if n == nil {
		return &Other{}
	}
	return n
}

func nodes(vs []*fastjson.Value) []Node {
	var out []Node
	for _, v := range vs {
		if n := node(v); n != nil {
			out = append(out, n)
		}
	}
	return out
}

func exprs(vs []*fastjson.Value) []Expr {
	var out []Expr
	for _, v := range vs {
		if n := node(v); n != nil {
			out = append(out, asExpr(n))
		}
	}
	return out
}

func stmts(vs []*fastjson.Value) []Stmt {
	var out []Stmt
	for _, v := range vs {
		if n := node(v); n != nil {
			out = append(out, asStmt(n))
		}
	}
	return out
}

// location reads "loc" for line/column and "range" or "start"/"end" for
// offsets.
func location(v *fastjson.Value) SourceLocation {
	var l SourceLocation
	if loc := v.Get("loc"); loc != nil {
		l.Start.Line = loc.GetInt("start", "line")
		l.Start.Column = loc.GetInt("start", "column")
		l.End.Line = loc.GetInt("end", "line")
		l.End.Column = loc.GetInt("end", "column")
	}
	if r := v.GetArray("range"); len(r) == 2 {
		l.Start.Offset = r[0].GetInt()
		l.End.Offset = r[1].GetInt()
	} else {
		l.Start.Offset = v.GetInt("start")
		l.End.Offset = v.GetInt("end")
	}
	return l
}
