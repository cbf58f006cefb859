package estree

// Kind identifies the variant of a Node.
type Kind uint8

// Node kinds. Every ESTree type the rule does not distinguish is KindOther.
const (
	KindInvalid Kind = iota
	KindProgram
	KindBlockStatement
	KindExpressionStatement
	KindFunctionDeclaration
	KindIdentifier
	KindLiteral
	KindAssignmentExpression
	KindCallExpression
	KindChainExpression
	KindNewExpression
	KindUpdateExpression
	KindYieldExpression
	KindAwaitExpression
	KindUnaryExpression
	KindConditionalExpression
	KindLogicalExpression
	KindTaggedTemplateExpression
	KindTemplateLiteral
	KindFunctionExpression
	KindArrowFunctionExpression
	KindOther
)

var kindNames = [...]string{
	KindInvalid:                  "Invalid",
	KindProgram:                  "Program",
	KindBlockStatement:           "BlockStatement",
	KindExpressionStatement:      "ExpressionStatement",
	KindFunctionDeclaration:      "FunctionDeclaration",
	KindIdentifier:               "Identifier",
	KindLiteral:                  "Literal",
	KindAssignmentExpression:     "AssignmentExpression",
	KindCallExpression:           "CallExpression",
	KindChainExpression:          "ChainExpression",
	KindNewExpression:            "NewExpression",
	KindUpdateExpression:         "UpdateExpression",
	KindYieldExpression:          "YieldExpression",
	KindAwaitExpression:          "AwaitExpression",
	KindUnaryExpression:          "UnaryExpression",
	KindConditionalExpression:    "ConditionalExpression",
	KindLogicalExpression:        "LogicalExpression",
	KindTaggedTemplateExpression: "TaggedTemplateExpression",
	KindTemplateLiteral:          "TemplateLiteral",
	KindFunctionExpression:       "FunctionExpression",
	KindArrowFunctionExpression:  "ArrowFunctionExpression",
	KindOther:                    "Other",
}

// String returns the ESTree type name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Invalid"
}

// IsFunction reports whether k is one of the function-like kinds.
// Methods, generators and async functions are covered through the flags on
// these kinds, not through separate kinds.
func (k Kind) IsFunction() bool {
	switch k {
	case KindFunctionDeclaration, KindFunctionExpression, KindArrowFunctionExpression:
		return true
	default:
		return false
	}
}

// KindOf maps an ESTree type name to its Kind.
// OptionalCallExpression, used by older typescript-estree releases, maps to
// KindCallExpression.
func KindOf(typ string) Kind {
	switch typ {
	case "Program":
		return KindProgram
	case "BlockStatement":
		return KindBlockStatement
	case "ExpressionStatement":
		return KindExpressionStatement
	case "FunctionDeclaration":
		return KindFunctionDeclaration
	case "Identifier":
		return KindIdentifier
	case "Literal":
		return KindLiteral
	case "AssignmentExpression":
		return KindAssignmentExpression
	case "CallExpression", "OptionalCallExpression":
		return KindCallExpression
	case "ChainExpression":
		return KindChainExpression
	case "NewExpression":
		return KindNewExpression
	case "UpdateExpression":
		return KindUpdateExpression
	case "YieldExpression":
		return KindYieldExpression
	case "AwaitExpression":
		return KindAwaitExpression
	case "UnaryExpression":
		return KindUnaryExpression
	case "ConditionalExpression":
		return KindConditionalExpression
	case "LogicalExpression":
		return KindLogicalExpression
	case "TaggedTemplateExpression":
		return KindTaggedTemplateExpression
	case "TemplateLiteral":
		return KindTemplateLiteral
	case "FunctionExpression":
		return KindFunctionExpression
	case "ArrowFunctionExpression":
		return KindArrowFunctionExpression
	case "":
		return KindInvalid
	default:
		return KindOther
	}
}
