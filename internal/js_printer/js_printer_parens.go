package js_printer

import (
	"github.com/jsgen-dev/jsgen/internal/js_ast"
)

type parensResult uint8

const (
	parensNoOpinion parensResult = iota
	parensYes
	parensNo
)

type parensRule func(node js_ast.Node, parent js_ast.Node) parensResult

// Rules are consulted in this order. A node can match more than one entry
// (a "BinaryExpression" matches both "Binary" and itself) and the first rule
// with an opinion wins.
var parensRules = []struct {
	types []js_ast.NodeType
	rule  parensRule
}{
	{[]js_ast.NodeType{js_ast.TypeUpdateExpression}, updateExpressionNeedsParens},
	{[]js_ast.NodeType{js_ast.TypeObjectExpression}, objectExpressionNeedsParens},
	{[]js_ast.NodeType{js_ast.TypeBinaryExpression, js_ast.TypeLogicalExpression}, binaryNeedsParens},
	{[]js_ast.NodeType{js_ast.TypeBinaryExpression}, binaryExpressionNeedsParens},
	{[]js_ast.NodeType{js_ast.TypeSequenceExpression}, sequenceExpressionNeedsParens},
	{[]js_ast.NodeType{js_ast.TypeYieldExpression, js_ast.TypeAwaitExpression}, yieldExpressionNeedsParens},
	{[]js_ast.NodeType{js_ast.TypeClassExpression}, classExpressionNeedsParens},
	{[]js_ast.NodeType{js_ast.TypeUnaryExpression, js_ast.TypeSpreadElement, js_ast.TypeSpreadProperty}, unaryLikeNeedsParens},
	{[]js_ast.NodeType{js_ast.TypeFunctionExpression}, functionExpressionNeedsParens},
	{[]js_ast.NodeType{js_ast.TypeArrowFunctionExpression}, arrowFunctionExpressionNeedsParens},
	{[]js_ast.NodeType{js_ast.TypeConditionalExpression}, conditionalExpressionNeedsParens},
	{[]js_ast.NodeType{js_ast.TypeAssignmentExpression}, assignmentExpressionNeedsParens},
	{[]js_ast.NodeType{js_ast.TypeLiteral}, literalNeedsParens},
}

var parensTable map[js_ast.NodeType][]parensRule

func init() {
	parensTable = make(map[js_ast.NodeType][]parensRule)
	for _, entry := range parensRules {
		for _, t := range entry.types {
			parensTable[t] = append(parensTable[t], entry.rule)
		}
	}
}

func needsParens(node js_ast.Node, parent js_ast.Node) bool {
	if parent == nil {
		return false
	}

	// "new (a())()" must not be printed as "new a()()", and neither may
	// "new (a.b().c)()" lose its parentheses
	if n, ok := parent.(*js_ast.NewExpression); ok && n.Callee == node {
		if _, ok := node.(*js_ast.CallExpression); ok {
			return true
		}
		if js_ast.SomeDescendant(node, isCallExpression) {
			return true
		}
	}

	// These positions only accept a left-hand-side expression
	switch n := parent.(type) {
	case *js_ast.Decorator:
		if n.Expression == node {
			switch node.(type) {
			case *js_ast.Identifier, *js_ast.MemberExpression, *js_ast.CallExpression:
				return false
			}
			return true
		}
	case *js_ast.ClassDeclaration:
		if n.SuperClass == node {
			return !isLeftHandSide(node)
		}
	case *js_ast.ClassExpression:
		if n.SuperClass == node {
			return !isLeftHandSide(node)
		}
	}

	// Statements can't start with "function", "class", "{", or "let [", and
	// an arrow body can't start with "{"
	if hazards := startHazards(node, parent); hazards != 0 {
		if startsWithHazard(node, hazards) {
			return true
		}
	}

	for _, rule := range parensTable[node.Type()] {
		switch rule(node, parent) {
		case parensYes:
			return true
		case parensNo:
			return false
		}
	}
	return false
}

// A comment before a node may contain a line break. When the node follows a
// keyword that can't be followed by a line break, the comment and the node
// are wrapped in parentheses so automatic semicolon insertion can't end the
// statement early.
func needsParensNoLineTerminator(node js_ast.Node, parent js_ast.Node) bool {
	if parent == nil || !js_ast.HasLeadingComments(node) {
		return false
	}
	if js_ast.IsTerminatorless(parent) {
		return true
	}
	if arrow, ok := parent.(*js_ast.ArrowFunctionExpression); ok {
		return arrow.Expression && arrow.Body == node
	}
	return false
}

func isCallExpression(node js_ast.Node) bool {
	_, ok := node.(*js_ast.CallExpression)
	return ok
}

func isLeftHandSide(node js_ast.Node) bool {
	switch node.(type) {
	case *js_ast.Identifier, *js_ast.MemberExpression, *js_ast.CallExpression,
		*js_ast.NewExpression, *js_ast.ThisExpression, *js_ast.Super, *js_ast.Literal,
		*js_ast.ArrayExpression, *js_ast.ObjectExpression, *js_ast.TemplateLiteral,
		*js_ast.TaggedTemplateExpression, *js_ast.FunctionExpression,
		*js_ast.ClassExpression, *js_ast.MetaProperty:
		return true
	}
	return false
}

type startHazard uint8

const (
	hazardObject startHazard = 1 << iota
	hazardFunction
	hazardLetBracket
)

// Returns which leading tokens are a problem when "node" is printed in the
// position it has in "parent"
func startHazards(node js_ast.Node, parent js_ast.Node) startHazard {
	switch p := parent.(type) {
	case *js_ast.ExpressionStatement:
		if p.Expression == node {
			return hazardObject | hazardFunction | hazardLetBracket
		}
	case *js_ast.ArrowFunctionExpression:
		if p.Expression && p.Body == node {
			return hazardObject
		}
	case *js_ast.ExportDefaultDeclaration:
		if p.Declaration == node {
			return hazardFunction
		}
	}
	return 0
}

// "let[a] = 1;" would be read as a declaration
func isLetBracket(node js_ast.Node) bool {
	m, ok := node.(*js_ast.MemberExpression)
	if !ok || !m.Computed {
		return false
	}
	id, ok := m.Object.(*js_ast.Identifier)
	return ok && id.Name == "let" && !js_ast.HasLeadingComments(id)
}

// Follows the chain of leftmost sub-expressions, which are the ones printed
// first. The walk stops at a sub-expression that gets its own parentheses
// since the text then starts with "(".
func startsWithHazard(node js_ast.Node, hazards startHazard) bool {
	for {
		var next js_ast.Node
		switch n := node.(type) {
		case *js_ast.ObjectExpression:
			return hazards&hazardObject != 0
		case *js_ast.FunctionExpression, *js_ast.ClassExpression:
			return hazards&hazardFunction != 0
		case *js_ast.CallExpression:
			next = n.Callee
		case *js_ast.MemberExpression:
			if hazards&hazardLetBracket != 0 && isLetBracket(n) {
				return true
			}
			next = n.Object
		case *js_ast.BinaryExpression:
			next = n.Left
		case *js_ast.LogicalExpression:
			next = n.Left
		case *js_ast.AssignmentExpression:
			next = n.Left
		case *js_ast.ConditionalExpression:
			next = n.Test
		case *js_ast.TaggedTemplateExpression:
			next = n.Tag
		case *js_ast.SequenceExpression:
			if len(n.Expressions) > 0 {
				next = n.Expressions[0]
			}
		case *js_ast.UpdateExpression:
			if !n.Prefix {
				next = n.Argument
			}
		}
		if next == nil || needsParens(next, node) {
			return false
		}
		node = next
	}
}

func isMemberObject(node js_ast.Node, parent js_ast.Node) bool {
	m, ok := parent.(*js_ast.MemberExpression)
	return ok && m.Object == node
}

func isCallee(node js_ast.Node, parent js_ast.Node) bool {
	switch p := parent.(type) {
	case *js_ast.CallExpression:
		return p.Callee == node
	case *js_ast.NewExpression:
		return p.Callee == node
	}
	return false
}

func isTag(node js_ast.Node, parent js_ast.Node) bool {
	t, ok := parent.(*js_ast.TaggedTemplateExpression)
	return ok && t.Tag == node
}

func isExportDefault(node js_ast.Node, parent js_ast.Node) bool {
	e, ok := parent.(*js_ast.ExportDefaultDeclaration)
	return ok && e.Declaration == node
}

func isExpressionOfStatement(node js_ast.Node, parent js_ast.Node) bool {
	s, ok := parent.(*js_ast.ExpressionStatement)
	return ok && s.Expression == node
}

func yesIf(cond bool) parensResult {
	if cond {
		return parensYes
	}
	return parensNoOpinion
}

func updateExpressionNeedsParens(node js_ast.Node, parent js_ast.Node) parensResult {
	// "(foo++).test()", "(foo++)()", "new (foo++)()"
	return yesIf(isMemberObject(node, parent) || isCallee(node, parent) || isTag(node, parent))
}

func objectExpressionNeedsParens(node js_ast.Node, parent js_ast.Node) parensResult {
	switch {
	case isExpressionOfStatement(node, parent):
		// "({ foo: 'bar' });"
		return parensYes
	case isMemberObject(node, parent):
		// "({ foo: 'bar' }).foo"
		return parensYes
	case isExportDefault(node, parent):
		return parensYes
	}
	if arrow, ok := parent.(*js_ast.ArrowFunctionExpression); ok && arrow.Body == node {
		// "() => ({})"
		return parensYes
	}
	return parensNo
}

func binaryNeedsParens(node js_ast.Node, parent js_ast.Node) parensResult {
	if isCallee(node, parent) || isTag(node, parent) {
		return parensYes
	}
	if js_ast.IsUnaryLike(parent) {
		return parensYes
	}
	if isMemberObject(node, parent) {
		return parensYes
	}

	parentOp, ok := js_ast.BinaryOperator(parent)
	if !ok {
		return parensNoOpinion
	}
	nodeOp, _ := js_ast.BinaryOperator(node)
	parentLevel := js_ast.BinaryOpTable[parentOp].Level
	nodeLevel := js_ast.BinaryOpTable[nodeOp].Level

	// "??" can't be mixed with "||" or "&&" without parentheses
	if (parentOp == "??") != (nodeOp == "??") &&
		(parentLevel <= js_ast.LLogicalAnd && nodeLevel <= js_ast.LLogicalAnd) {
		return parensYes
	}

	if parentLevel > nodeLevel {
		return parensYes
	}
	if parentLevel == nodeLevel {
		left, right := binaryOperands(parent)

		// "a - (b - c)"
		if right == node {
			return parensYes
		}

		// "**" is right-associative: "(a ** b) ** c"
		if left == node && parentOp == "**" {
			return parensYes
		}
	}
	return parensNoOpinion
}

func binaryOperands(node js_ast.Node) (js_ast.Node, js_ast.Node) {
	switch n := node.(type) {
	case *js_ast.BinaryExpression:
		return n.Left, n.Right
	case *js_ast.LogicalExpression:
		return n.Left, n.Right
	}
	return nil, nil
}

func isInExpression(node js_ast.Node) bool {
	b, ok := node.(*js_ast.BinaryExpression)
	return ok && b.Operator == "in"
}

// "in" is allowed again inside braces
func isBracketed(node js_ast.Node) bool {
	switch node.(type) {
	case *js_ast.BlockStatement, *js_ast.ClassBody:
		return true
	}
	return false
}

func binaryExpressionNeedsParens(node js_ast.Node, parent js_ast.Node) parensResult {
	if node.(*js_ast.BinaryExpression).Operator == "in" {
		// "var i = (1 in []);"
		if _, ok := parent.(*js_ast.VariableDeclarator); ok {
			return parensYes
		}

		// "for ((1 in []);;);"
		if js_ast.IsFor(parent) {
			return parensYes
		}
	}
	return parensNoOpinion
}

func sequenceExpressionNeedsParens(node js_ast.Node, parent js_ast.Node) parensResult {
	if _, ok := parent.(*js_ast.ForStatement); ok {
		return parensNo
	}
	if isExpressionOfStatement(node, parent) {
		return parensNo
	}

	// Otherwise err on the side of too many parentheses
	return parensYes
}

func yieldExpressionNeedsParens(node js_ast.Node, parent js_ast.Node) parensResult {
	switch parent.(type) {
	case *js_ast.CallExpression, *js_ast.MemberExpression, *js_ast.NewExpression,
		*js_ast.ConditionalExpression, *js_ast.TaggedTemplateExpression,
		*js_ast.YieldExpression, *js_ast.AwaitExpression:
		return parensYes
	}
	return yesIf(js_ast.IsBinary(parent) || js_ast.IsUnaryLike(parent))
}

func classExpressionNeedsParens(node js_ast.Node, parent js_ast.Node) parensResult {
	return yesIf(isExpressionOfStatement(node, parent) || isExportDefault(node, parent))
}

func unaryLikeNeedsParens(node js_ast.Node, parent js_ast.Node) parensResult {
	// "(-a)()" is not "-a()"
	if isMemberObject(node, parent) || isCallee(node, parent) || isTag(node, parent) {
		return parensYes
	}

	// "(-a) ** b" is required by the grammar
	if b, ok := parent.(*js_ast.BinaryExpression); ok && b.Operator == "**" && b.Left == node {
		return parensYes
	}
	return parensNoOpinion
}

func functionExpressionNeedsParens(node js_ast.Node, parent js_ast.Node) parensResult {
	switch {
	case isExpressionOfStatement(node, parent):
		// "(function () {});"
		return parensYes
	case isMemberObject(node, parent):
		// "(function test() {}).name"
		return parensYes
	case isTag(node, parent), isExportDefault(node, parent):
		return parensYes
	}

	// "(function () {})()"
	if call, ok := parent.(*js_ast.CallExpression); ok && call.Callee == node {
		return parensYes
	}
	return parensNoOpinion
}

func arrowFunctionExpressionNeedsParens(node js_ast.Node, parent js_ast.Node) parensResult {
	if js_ast.IsExportDeclaration(parent) {
		return parensYes
	}
	if js_ast.IsBinary(parent) || js_ast.IsUnaryLike(parent) {
		return parensYes
	}
	if isCallee(node, parent) || isMemberObject(node, parent) || isTag(node, parent) {
		return parensYes
	}
	return conditionalExpressionNeedsParens(node, parent)
}

func conditionalExpressionNeedsParens(node js_ast.Node, parent js_ast.Node) parensResult {
	if js_ast.IsUnaryLike(parent) || js_ast.IsBinary(parent) {
		return parensYes
	}
	if isCallee(node, parent) || isMemberObject(node, parent) || isTag(node, parent) {
		return parensYes
	}
	if c, ok := parent.(*js_ast.ConditionalExpression); ok && c.Test == node {
		return parensYes
	}
	return parensNo
}

func assignmentExpressionNeedsParens(node js_ast.Node, parent js_ast.Node) parensResult {
	// "({ a } = b);"
	if _, ok := node.(*js_ast.AssignmentExpression).Left.(*js_ast.ObjectPattern); ok {
		return parensYes
	}
	return conditionalExpressionNeedsParens(node, parent)
}

// A negative number is printed as a "-" followed by digits, which binds like
// a unary expression
func literalNeedsParens(node js_ast.Node, parent js_ast.Node) parensResult {
	if !isNegativeNumber(node.(*js_ast.Literal)) {
		return parensNoOpinion
	}
	if isMemberObject(node, parent) || isCallee(node, parent) || isTag(node, parent) {
		return parensYes
	}

	// "(-1) ** 2"
	if b, ok := parent.(*js_ast.BinaryExpression); ok && b.Operator == "**" && b.Left == node {
		return parensYes
	}
	return parensNoOpinion
}
