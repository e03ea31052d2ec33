package js_ast

// Trees handed to the printer follow the ESTree layout: every node is a
// pointer to one of the structs below, and the struct's "Type()" is the ESTree
// "type" string as an enum. Fields that ESTree allows to be null are either
// a nil "Node" interface or a nil pointer of the concrete child type.
//
// Trees are immutable once they reach the printer. Nothing in this repository
// mutates a tree after it has been decoded or constructed.

type NodeType uint8

// If you add a new node type, remember to add it to "nodeTypeNames" too
const (
	TypeUnknown NodeType = iota

	// Statements
	TypeProgram
	TypeExpressionStatement
	TypeBlockStatement
	TypeEmptyStatement
	TypeDebuggerStatement
	TypeWithStatement
	TypeReturnStatement
	TypeLabeledStatement
	TypeBreakStatement
	TypeContinueStatement
	TypeIfStatement
	TypeSwitchStatement
	TypeSwitchCase
	TypeThrowStatement
	TypeTryStatement
	TypeCatchClause
	TypeWhileStatement
	TypeDoWhileStatement
	TypeForStatement
	TypeForInStatement
	TypeForOfStatement

	// Declarations
	TypeFunctionDeclaration
	TypeVariableDeclaration
	TypeVariableDeclarator
	TypeClassDeclaration
	TypeClassExpression
	TypeClassBody
	TypeMethodDefinition
	TypeDecorator

	// Expressions
	TypeThisExpression
	TypeSuper
	TypeArrayExpression
	TypeArrayPattern
	TypeObjectExpression
	TypeObjectPattern
	TypeProperty
	TypeFunctionExpression
	TypeArrowFunctionExpression
	TypeUnaryExpression
	TypeUpdateExpression
	TypeBinaryExpression
	TypeLogicalExpression
	TypeAssignmentExpression
	TypeAssignmentPattern
	TypeConditionalExpression
	TypeCallExpression
	TypeNewExpression
	TypeMemberExpression
	TypeSequenceExpression
	TypeYieldExpression
	TypeAwaitExpression
	TypeTemplateLiteral
	TypeTaggedTemplateExpression
	TypeTemplateElement
	TypeRestElement
	TypeSpreadElement
	TypeSpreadProperty
	TypeIdentifier
	TypeLiteral
	TypeMetaProperty

	// Modules
	TypeImportDeclaration
	TypeImportSpecifier
	TypeImportDefaultSpecifier
	TypeImportNamespaceSpecifier
	TypeExportNamedDeclaration
	TypeExportDefaultDeclaration
	TypeExportAllDeclaration
	TypeExportSpecifier

	typeCount
)

var nodeTypeNames = [typeCount]string{
	TypeUnknown: "<unknown>",

	TypeProgram:             "Program",
	TypeExpressionStatement: "ExpressionStatement",
	TypeBlockStatement:      "BlockStatement",
	TypeEmptyStatement:      "EmptyStatement",
	TypeDebuggerStatement:   "DebuggerStatement",
	TypeWithStatement:       "WithStatement",
	TypeReturnStatement:     "ReturnStatement",
	TypeLabeledStatement:    "LabeledStatement",
	TypeBreakStatement:      "BreakStatement",
	TypeContinueStatement:   "ContinueStatement",
	TypeIfStatement:         "IfStatement",
	TypeSwitchStatement:     "SwitchStatement",
	TypeSwitchCase:          "SwitchCase",
	TypeThrowStatement:      "ThrowStatement",
	TypeTryStatement:        "TryStatement",
	TypeCatchClause:         "CatchClause",
	TypeWhileStatement:      "WhileStatement",
	TypeDoWhileStatement:    "DoWhileStatement",
	TypeForStatement:        "ForStatement",
	TypeForInStatement:      "ForInStatement",
	TypeForOfStatement:      "ForOfStatement",

	TypeFunctionDeclaration: "FunctionDeclaration",
	TypeVariableDeclaration: "VariableDeclaration",
	TypeVariableDeclarator:  "VariableDeclarator",
	TypeClassDeclaration:    "ClassDeclaration",
	TypeClassExpression:     "ClassExpression",
	TypeClassBody:           "ClassBody",
	TypeMethodDefinition:    "MethodDefinition",
	TypeDecorator:           "Decorator",

	TypeThisExpression:           "ThisExpression",
	TypeSuper:                    "Super",
	TypeArrayExpression:          "ArrayExpression",
	TypeArrayPattern:             "ArrayPattern",
	TypeObjectExpression:         "ObjectExpression",
	TypeObjectPattern:            "ObjectPattern",
	TypeProperty:                 "Property",
	TypeFunctionExpression:       "FunctionExpression",
	TypeArrowFunctionExpression:  "ArrowFunctionExpression",
	TypeUnaryExpression:          "UnaryExpression",
	TypeUpdateExpression:         "UpdateExpression",
	TypeBinaryExpression:         "BinaryExpression",
	TypeLogicalExpression:        "LogicalExpression",
	TypeAssignmentExpression:     "AssignmentExpression",
	TypeAssignmentPattern:        "AssignmentPattern",
	TypeConditionalExpression:    "ConditionalExpression",
	TypeCallExpression:           "CallExpression",
	TypeNewExpression:            "NewExpression",
	TypeMemberExpression:         "MemberExpression",
	TypeSequenceExpression:       "SequenceExpression",
	TypeYieldExpression:          "YieldExpression",
	TypeAwaitExpression:          "AwaitExpression",
	TypeTemplateLiteral:          "TemplateLiteral",
	TypeTaggedTemplateExpression: "TaggedTemplateExpression",
	TypeTemplateElement:          "TemplateElement",
	TypeRestElement:              "RestElement",
	TypeSpreadElement:            "SpreadElement",
	TypeSpreadProperty:           "SpreadProperty",
	TypeIdentifier:               "Identifier",
	TypeLiteral:                  "Literal",
	TypeMetaProperty:             "MetaProperty",

	TypeImportDeclaration:          "ImportDeclaration",
	TypeImportSpecifier:            "ImportSpecifier",
	TypeImportDefaultSpecifier:     "ImportDefaultSpecifier",
	TypeImportNamespaceSpecifier:   "ImportNamespaceSpecifier",
	TypeExportNamedDeclaration:     "ExportNamedDeclaration",
	TypeExportDefaultDeclaration:   "ExportDefaultDeclaration",
	TypeExportAllDeclaration:       "ExportAllDeclaration",
	TypeExportSpecifier:            "ExportSpecifier",
}

var nodeTypesByName map[string]NodeType

func init() {
	nodeTypesByName = make(map[string]NodeType, typeCount)
	for t := TypeUnknown + 1; t < typeCount; t++ {
		nodeTypesByName[nodeTypeNames[t]] = t
	}
}

func (t NodeType) String() string {
	if t < typeCount {
		return nodeTypeNames[t]
	}
	return nodeTypeNames[TypeUnknown]
}

// Returns "TypeUnknown" and false for names that are not part of the grammar
func NodeTypeFromString(name string) (NodeType, bool) {
	t, ok := nodeTypesByName[name]
	return t, ok
}

// Every declared node type in declaration order, not including "TypeUnknown"
func AllNodeTypes() []NodeType {
	all := make([]NodeType, 0, typeCount-1)
	for t := TypeUnknown + 1; t < typeCount; t++ {
		all = append(all, t)
	}
	return all
}

// This is a 1-based line and a 0-based byte column in the input document. The
// zero value means the node was constructed in memory.
type Loc struct {
	Line   int32
	Column int32
}

func (loc Loc) IsValid() bool {
	return loc.Line > 0
}

type Comment struct {
	Text string

	// "/* ... */" instead of "// ..."
	Block bool
}

type Node interface {
	Type() NodeType
	Base() *NodeBase
}

type NodeBase struct {
	LeadingComments []Comment
	Loc             Loc
}

func (b *NodeBase) Base() *NodeBase { return b }

func HasLeadingComments(node Node) bool {
	return node != nil && len(node.Base().LeadingComments) > 0
}

// Statements

type Program struct {
	NodeBase
	Body []Node

	// Either "script" or "module"
	SourceType string
}

type ExpressionStatement struct {
	NodeBase
	Expression Node

	// Set for prologue entries such as "use strict"
	Directive string
}

type BlockStatement struct {
	NodeBase
	Body []Node
}

type EmptyStatement struct{ NodeBase }

type DebuggerStatement struct{ NodeBase }

type WithStatement struct {
	NodeBase
	Object Node
	Body   Node
}

type ReturnStatement struct {
	NodeBase
	Argument Node
}

type LabeledStatement struct {
	NodeBase
	Label *Identifier
	Body  Node
}

type BreakStatement struct {
	NodeBase
	Label *Identifier
}

type ContinueStatement struct {
	NodeBase
	Label *Identifier
}

type IfStatement struct {
	NodeBase
	Test       Node
	Consequent Node
	Alternate  Node
}

type SwitchStatement struct {
	NodeBase
	Discriminant Node
	Cases        []*SwitchCase
}

type SwitchCase struct {
	NodeBase

	// Nil for "default:"
	Test       Node
	Consequent []Node
}

type ThrowStatement struct {
	NodeBase
	Argument Node
}

type TryStatement struct {
	NodeBase
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

type CatchClause struct {
	NodeBase

	// Nil for "catch {}"
	Param Node
	Body  *BlockStatement
}

type WhileStatement struct {
	NodeBase
	Test Node
	Body Node
}

type DoWhileStatement struct {
	NodeBase
	Body Node
	Test Node
}

type ForStatement struct {
	NodeBase
	Init   Node
	Test   Node
	Update Node
	Body   Node
}

type ForInStatement struct {
	NodeBase
	Left  Node
	Right Node
	Body  Node
}

type ForOfStatement struct {
	NodeBase
	Left  Node
	Right Node
	Body  Node
	Await bool
}

// Declarations

// This is the shared part of function declarations and expressions
type Fn struct {
	ID        *Identifier
	Params    []Node
	Body      *BlockStatement
	Generator bool
	Async     bool
}

type FunctionDeclaration struct {
	NodeBase
	Fn
}

type VariableDeclaration struct {
	NodeBase
	Declarations []*VariableDeclarator

	// One of "var", "let", or "const"
	Kind string
}

type VariableDeclarator struct {
	NodeBase
	ID   Node
	Init Node
}

// This is the shared part of class declarations and expressions
type Class struct {
	ID         *Identifier
	SuperClass Node
	Body       *ClassBody
	Decorators []*Decorator
}

type ClassDeclaration struct {
	NodeBase
	Class
}

type ClassExpression struct {
	NodeBase
	Class
}

type ClassBody struct {
	NodeBase
	Body []Node
}

type MethodDefinition struct {
	NodeBase
	Key        Node
	Value      *FunctionExpression
	Decorators []*Decorator

	// One of "constructor", "method", "get", or "set"
	Kind     string
	Computed bool
	Static   bool
}

type Decorator struct {
	NodeBase
	Expression Node
}

// Expressions

type ThisExpression struct{ NodeBase }

type Super struct{ NodeBase }

// A nil element is a hole: "[a, , b]"
type ArrayExpression struct {
	NodeBase
	Elements []Node
}

type ArrayPattern struct {
	NodeBase
	Elements []Node
}

type ObjectExpression struct {
	NodeBase
	Properties []Node
}

type ObjectPattern struct {
	NodeBase
	Properties []Node
}

type Property struct {
	NodeBase
	Key        Node
	Value      Node
	Decorators []*Decorator

	// One of "init", "get", or "set"
	Kind      string
	Method    bool
	Shorthand bool
	Computed  bool
}

type FunctionExpression struct {
	NodeBase
	Fn
}

type ArrowFunctionExpression struct {
	NodeBase
	Params []Node

	// Either a "*BlockStatement" or an expression. "Expression" is true in the
	// second case.
	Body       Node
	Expression bool
	Async      bool
}

type UnaryExpression struct {
	NodeBase
	Operator string
	Argument Node
	Prefix   bool
}

type UpdateExpression struct {
	NodeBase
	Operator string
	Argument Node
	Prefix   bool
}

type BinaryExpression struct {
	NodeBase
	Operator string
	Left     Node
	Right    Node
}

type LogicalExpression struct {
	NodeBase
	Operator string
	Left     Node
	Right    Node
}

type AssignmentExpression struct {
	NodeBase
	Operator string
	Left     Node
	Right    Node
}

type AssignmentPattern struct {
	NodeBase
	Left  Node
	Right Node
}

type ConditionalExpression struct {
	NodeBase
	Test       Node
	Consequent Node
	Alternate  Node
}

type CallExpression struct {
	NodeBase
	Callee    Node
	Arguments []Node
}

type NewExpression struct {
	NodeBase
	Callee    Node
	Arguments []Node
}

type MemberExpression struct {
	NodeBase
	Object   Node
	Property Node
	Computed bool
}

type SequenceExpression struct {
	NodeBase
	Expressions []Node
}

type YieldExpression struct {
	NodeBase
	Argument Node
	Delegate bool
}

type AwaitExpression struct {
	NodeBase
	Argument Node
}

// There is always one more quasi than there are expressions
type TemplateLiteral struct {
	NodeBase
	Quasis      []*TemplateElement
	Expressions []Node
}

type TaggedTemplateExpression struct {
	NodeBase
	Tag   Node
	Quasi *TemplateLiteral
}

type TemplateElement struct {
	NodeBase
	Raw    string
	Cooked string
	Tail   bool
}

type RestElement struct {
	NodeBase
	Argument Node
}

type SpreadElement struct {
	NodeBase
	Argument Node
}

// This is the pre-ES2018 spelling of "SpreadElement" inside object literals
type SpreadProperty struct {
	NodeBase
	Argument Node
}

type Identifier struct {
	NodeBase
	Name string
}

type RegExp struct {
	Pattern string
	Flags   string
}

// "Value" holds a string, a number (any Go numeric kind), a bool, or nil. A
// regular expression literal has a non-nil "Regex" and a bigint literal has a
// non-empty "BigInt" with the digits in decimal.
type Literal struct {
	NodeBase
	Value  interface{}
	Raw    string
	Regex  *RegExp
	BigInt string
}

// "new.target" or "import.meta"
type MetaProperty struct {
	NodeBase
	Meta     *Identifier
	Property *Identifier
}

// Modules

type ImportDeclaration struct {
	NodeBase
	Specifiers []Node
	Source     *Literal
}

type ImportSpecifier struct {
	NodeBase
	Imported *Identifier
	Local    *Identifier
}

type ImportDefaultSpecifier struct {
	NodeBase
	Local *Identifier
}

type ImportNamespaceSpecifier struct {
	NodeBase
	Local *Identifier
}

type ExportNamedDeclaration struct {
	NodeBase
	Declaration Node
	Specifiers  []*ExportSpecifier
	Source      *Literal
}

type ExportDefaultDeclaration struct {
	NodeBase
	Declaration Node
}

type ExportAllDeclaration struct {
	NodeBase
	Exported *Identifier
	Source   *Literal
}

type ExportSpecifier struct {
	NodeBase
	Local    *Identifier
	Exported *Identifier
}

// A node whose "type" is not part of the grammar above. It is kept in the
// tree so that the printer can report where it was instead of the decoder
// silently dropping it.
type Opaque struct {
	NodeBase
	TypeName string
}

func (*Program) Type() NodeType                  { return TypeProgram }
func (*ExpressionStatement) Type() NodeType      { return TypeExpressionStatement }
func (*BlockStatement) Type() NodeType           { return TypeBlockStatement }
func (*EmptyStatement) Type() NodeType           { return TypeEmptyStatement }
func (*DebuggerStatement) Type() NodeType        { return TypeDebuggerStatement }
func (*WithStatement) Type() NodeType            { return TypeWithStatement }
func (*ReturnStatement) Type() NodeType          { return TypeReturnStatement }
func (*LabeledStatement) Type() NodeType         { return TypeLabeledStatement }
func (*BreakStatement) Type() NodeType           { return TypeBreakStatement }
func (*ContinueStatement) Type() NodeType        { return TypeContinueStatement }
func (*IfStatement) Type() NodeType              { return TypeIfStatement }
func (*SwitchStatement) Type() NodeType          { return TypeSwitchStatement }
func (*SwitchCase) Type() NodeType               { return TypeSwitchCase }
func (*ThrowStatement) Type() NodeType           { return TypeThrowStatement }
func (*TryStatement) Type() NodeType             { return TypeTryStatement }
func (*CatchClause) Type() NodeType              { return TypeCatchClause }
func (*WhileStatement) Type() NodeType           { return TypeWhileStatement }
func (*DoWhileStatement) Type() NodeType         { return TypeDoWhileStatement }
func (*ForStatement) Type() NodeType             { return TypeForStatement }
func (*ForInStatement) Type() NodeType           { return TypeForInStatement }
func (*ForOfStatement) Type() NodeType           { return TypeForOfStatement }
func (*FunctionDeclaration) Type() NodeType      { return TypeFunctionDeclaration }
func (*VariableDeclaration) Type() NodeType      { return TypeVariableDeclaration }
func (*VariableDeclarator) Type() NodeType       { return TypeVariableDeclarator }
func (*ClassDeclaration) Type() NodeType         { return TypeClassDeclaration }
func (*ClassExpression) Type() NodeType          { return TypeClassExpression }
func (*ClassBody) Type() NodeType                { return TypeClassBody }
func (*MethodDefinition) Type() NodeType         { return TypeMethodDefinition }
func (*Decorator) Type() NodeType                { return TypeDecorator }
func (*ThisExpression) Type() NodeType           { return TypeThisExpression }
func (*Super) Type() NodeType                    { return TypeSuper }
func (*ArrayExpression) Type() NodeType          { return TypeArrayExpression }
func (*ArrayPattern) Type() NodeType             { return TypeArrayPattern }
func (*ObjectExpression) Type() NodeType         { return TypeObjectExpression }
func (*ObjectPattern) Type() NodeType            { return TypeObjectPattern }
func (*Property) Type() NodeType                 { return TypeProperty }
func (*FunctionExpression) Type() NodeType       { return TypeFunctionExpression }
func (*ArrowFunctionExpression) Type() NodeType  { return TypeArrowFunctionExpression }
func (*UnaryExpression) Type() NodeType          { return TypeUnaryExpression }
func (*UpdateExpression) Type() NodeType         { return TypeUpdateExpression }
func (*BinaryExpression) Type() NodeType         { return TypeBinaryExpression }
func (*LogicalExpression) Type() NodeType        { return TypeLogicalExpression }
func (*AssignmentExpression) Type() NodeType     { return TypeAssignmentExpression }
func (*AssignmentPattern) Type() NodeType        { return TypeAssignmentPattern }
func (*ConditionalExpression) Type() NodeType    { return TypeConditionalExpression }
func (*CallExpression) Type() NodeType           { return TypeCallExpression }
func (*NewExpression) Type() NodeType            { return TypeNewExpression }
func (*MemberExpression) Type() NodeType         { return TypeMemberExpression }
func (*SequenceExpression) Type() NodeType       { return TypeSequenceExpression }
func (*YieldExpression) Type() NodeType          { return TypeYieldExpression }
func (*AwaitExpression) Type() NodeType          { return TypeAwaitExpression }
func (*TemplateLiteral) Type() NodeType          { return TypeTemplateLiteral }
func (*TaggedTemplateExpression) Type() NodeType { return TypeTaggedTemplateExpression }
func (*TemplateElement) Type() NodeType          { return TypeTemplateElement }
func (*RestElement) Type() NodeType              { return TypeRestElement }
func (*SpreadElement) Type() NodeType            { return TypeSpreadElement }
func (*SpreadProperty) Type() NodeType           { return TypeSpreadProperty }
func (*Identifier) Type() NodeType               { return TypeIdentifier }
func (*Literal) Type() NodeType                  { return TypeLiteral }
func (*MetaProperty) Type() NodeType             { return TypeMetaProperty }
func (*ImportDeclaration) Type() NodeType        { return TypeImportDeclaration }
func (*ImportSpecifier) Type() NodeType          { return TypeImportSpecifier }
func (*ImportDefaultSpecifier) Type() NodeType   { return TypeImportDefaultSpecifier }
func (*ImportNamespaceSpecifier) Type() NodeType { return TypeImportNamespaceSpecifier }
func (*ExportNamedDeclaration) Type() NodeType   { return TypeExportNamedDeclaration }
func (*ExportDefaultDeclaration) Type() NodeType { return TypeExportDefaultDeclaration }
func (*ExportAllDeclaration) Type() NodeType     { return TypeExportAllDeclaration }
func (*ExportSpecifier) Type() NodeType          { return TypeExportSpecifier }
func (*Opaque) Type() NodeType                   { return TypeUnknown }
