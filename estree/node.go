// Package estree defines the syntax tree inspected by unusedexpr.
//
// The tree is a typed subset of the ESTree format produced by JavaScript
// parsers such as acorn, espree and typescript-estree. Node types the rule
// needs to tell apart have their own struct carrying only their own fields;
// everything else is kept as an [Other] node so that traversal still reaches
// the statements nested inside it.
//
// Trees are read-only once built. Use [Decode] to build one from parser
// output, or construct nodes directly.
package estree

// Position is a point in the source text. Line is 1-based, Column is the
// 0-based UTF-16 column ESTree parsers emit, Offset is the 0-based index
// into the source. Fields the parser did not provide are zero.
type Position struct {
	Line   int
	Column int
	Offset int
}

// SourceLocation is the source range covered by a node.
type SourceLocation struct {
	Start Position
	End   Position
}

// Location returns the location itself; it lets every node embedding a
// SourceLocation satisfy [Node].
func (l SourceLocation) Location() SourceLocation { return l }

// Node is any node of the tree.
type Node interface {
	Kind() Kind
	Location() SourceLocation
}

// Stmt is a node that may appear in a statement list.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a node that evaluates to a value.
type Expr interface {
	Node
	exprNode()
}

// Comment is a source comment attached to a Program.
type Comment struct {
	SourceLocation
	Type  string // "Line" or "Block"
	Value string // text without the comment delimiters
}

// ----------------------------------------------------------------------------
// Statements
// ----------------------------------------------------------------------------

// Program is the root of a tree.
type Program struct {
	SourceLocation
	SourceType string // "script" or "module"
	Body       []Stmt
	Comments   []Comment
}

// BlockStatement is a braced statement list: { ... }.
type BlockStatement struct {
	SourceLocation
	Body []Stmt
}

// ExpressionStatement is an expression evaluated for its effect: expr;
type ExpressionStatement struct {
	SourceLocation
	Expression Expr
}

// FunctionDeclaration is: [async] function[*] id(params) { body }
type FunctionDeclaration struct {
	SourceLocation
	ID        *Identifier // nil for `export default function () {}`
	Params    []Node
	Body      *BlockStatement
	Async     bool
	Generator bool
}

func (*Program) Kind() Kind             { return KindProgram }
func (*BlockStatement) Kind() Kind      { return KindBlockStatement }
func (*ExpressionStatement) Kind() Kind { return KindExpressionStatement }
func (*FunctionDeclaration) Kind() Kind { return KindFunctionDeclaration }

func (*BlockStatement) stmtNode()      {}
func (*ExpressionStatement) stmtNode() {}
func (*FunctionDeclaration) stmtNode() {}

// ----------------------------------------------------------------------------
// Expressions
// ----------------------------------------------------------------------------

// Identifier is a name reference.
type Identifier struct {
	SourceLocation
	Name string
}

// Literal is a primitive literal. Value holds exactly one variant.
type Literal struct {
	SourceLocation
	Value LiteralValue
	Raw   string
}

// IsString reports whether the literal is a string literal.
func (x *Literal) IsString() bool {
	_, ok := x.Value.(StringValue)
	return ok
}

// AssignmentExpression is: left op right, where op is "=", "+=", ...
type AssignmentExpression struct {
	SourceLocation
	Operator string
	Left     Node // pattern or expression
	Right    Expr
}

// CallExpression is: callee(args). Optional is set for callee?.(args).
type CallExpression struct {
	SourceLocation
	Callee    Expr
	Arguments []Expr
	Optional  bool
}

// ChainExpression wraps an optional chain: a?.b(), a?.[b].
type ChainExpression struct {
	SourceLocation
	Expression Expr
}

// NewExpression is: new callee(args)
type NewExpression struct {
	SourceLocation
	Callee    Expr
	Arguments []Expr
}

// UpdateExpression is: ++x, --x, x++, x--
type UpdateExpression struct {
	SourceLocation
	Operator string // "++" or "--"
	Prefix   bool
	Argument Expr
}

// YieldExpression is: yield [argument], yield* argument
type YieldExpression struct {
	SourceLocation
	Argument Expr // nil for a bare yield
	Delegate bool
}

// AwaitExpression is: await argument
type AwaitExpression struct {
	SourceLocation
	Argument Expr
}

// UnaryExpression is a prefix operator: -x, !x, typeof x, void x, delete x.
type UnaryExpression struct {
	SourceLocation
	Operator string
	Argument Expr
}

// ConditionalExpression is: test ? consequent : alternate
type ConditionalExpression struct {
	SourceLocation
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

// LogicalExpression is: left && right, left || right, left ?? right
type LogicalExpression struct {
	SourceLocation
	Operator string
	Left     Expr
	Right    Expr
}

// TaggedTemplateExpression is: tag`quasi`
type TaggedTemplateExpression struct {
	SourceLocation
	Tag   Expr
	Quasi *TemplateLiteral
}

// TemplateElement is one literal segment of a template.
type TemplateElement struct {
	SourceLocation
	Raw    string
	Cooked string
	Tail   bool
}

// TemplateLiteral is: `quasi ${expr} quasi`
type TemplateLiteral struct {
	SourceLocation
	Quasis      []TemplateElement
	Expressions []Expr
}

// FunctionExpression is a function in expression position, including the
// value of a method definition.
type FunctionExpression struct {
	SourceLocation
	ID        *Identifier
	Params    []Node
	Body      *BlockStatement
	Async     bool
	Generator bool
}

// ArrowFunctionExpression is: [async] (params) => body
// Body is a *BlockStatement, or an Expr when Expression is set.
type ArrowFunctionExpression struct {
	SourceLocation
	Params     []Node
	Body       Node
	Async      bool
	Expression bool
}

func (*Identifier) Kind() Kind               { return KindIdentifier }
func (*Literal) Kind() Kind                  { return KindLiteral }
func (*AssignmentExpression) Kind() Kind     { return KindAssignmentExpression }
func (*CallExpression) Kind() Kind           { return KindCallExpression }
func (*ChainExpression) Kind() Kind          { return KindChainExpression }
func (*NewExpression) Kind() Kind            { return KindNewExpression }
func (*UpdateExpression) Kind() Kind         { return KindUpdateExpression }
func (*YieldExpression) Kind() Kind          { return KindYieldExpression }
func (*AwaitExpression) Kind() Kind          { return KindAwaitExpression }
func (*UnaryExpression) Kind() Kind          { return KindUnaryExpression }
func (*ConditionalExpression) Kind() Kind    { return KindConditionalExpression }
func (*LogicalExpression) Kind() Kind        { return KindLogicalExpression }
func (*TaggedTemplateExpression) Kind() Kind { return KindTaggedTemplateExpression }
func (*TemplateLiteral) Kind() Kind          { return KindTemplateLiteral }
func (*FunctionExpression) Kind() Kind       { return KindFunctionExpression }
func (*ArrowFunctionExpression) Kind() Kind  { return KindArrowFunctionExpression }

func (*Identifier) exprNode()               {}
func (*Literal) exprNode()                  {}
func (*AssignmentExpression) exprNode()     {}
func (*CallExpression) exprNode()           {}
func (*ChainExpression) exprNode()          {}
func (*NewExpression) exprNode()            {}
func (*UpdateExpression) exprNode()         {}
func (*YieldExpression) exprNode()          {}
func (*AwaitExpression) exprNode()          {}
func (*UnaryExpression) exprNode()          {}
func (*ConditionalExpression) exprNode()    {}
func (*LogicalExpression) exprNode()        {}
func (*TaggedTemplateExpression) exprNode() {}
func (*TemplateLiteral) exprNode()          {}
func (*FunctionExpression) exprNode()       {}
func (*ArrowFunctionExpression) exprNode()  {}

// ----------------------------------------------------------------------------
// Everything else
// ----------------------------------------------------------------------------

// Other is any ESTree node without a dedicated type (if, for, switch, try,
// class, member access, binary operators, ...). Children holds its child
// nodes in source order. Other is usable in both statement and expression
// position.
type Other struct {
	SourceLocation
	Type     string
	Children []Node
}

func (*Other) Kind() Kind { return KindOther }
func (*Other) stmtNode()  {}
func (*Other) exprNode()  {}
