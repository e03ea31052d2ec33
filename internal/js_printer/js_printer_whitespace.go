package js_printer

import (
	"strings"

	"github.com/jsgen-dev/jsgen/internal/js_ast"
)

// Blank lines are inserted around nodes that read better when separated from
// their neighbors: functions, classes, loops, calls to module helpers, and so
// on. The answer is a count of blank lines, and zero means "no opinion".

type edge uint8

const (
	edgeBefore edge = iota
	edgeAfter
)

type whitespace struct {
	Before int
	After  int
}

func (ws whitespace) get(e edge) int {
	if e == edgeBefore {
		return ws.Before
	}
	return ws.After
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

type whitespaceRule func(node js_ast.Node, parent js_ast.Node) (whitespace, bool)

var whitespaceTable map[js_ast.NodeType]whitespaceRule

// These are asked when the node type has no rule of its own. Each returns the
// sub-nodes that stand in for the node, and the first one with a non-zero
// answer decides.
var whitespaceListTable = map[js_ast.NodeType]func(node js_ast.Node) []js_ast.Node{
	js_ast.TypeVariableDeclaration: func(node js_ast.Node) []js_ast.Node {
		decls := node.(*js_ast.VariableDeclaration).Declarations
		inits := make([]js_ast.Node, 0, len(decls))
		for _, decl := range decls {
			if decl != nil && decl.Init != nil {
				inits = append(inits, decl.Init)
			}
		}
		return inits
	},
	js_ast.TypeArrayExpression: func(node js_ast.Node) []js_ast.Node {
		return node.(*js_ast.ArrayExpression).Elements
	},
	js_ast.TypeObjectExpression: func(node js_ast.Node) []js_ast.Node {
		return node.(*js_ast.ObjectExpression).Properties
	},
}

func init() {
	always := func(js_ast.Node, js_ast.Node) (whitespace, bool) {
		return whitespace{Before: 1, After: 1}, true
	}

	whitespaceTable = map[js_ast.NodeType]whitespaceRule{
		js_ast.TypeAssignmentExpression: assignmentExpressionWhitespace,
		js_ast.TypeSwitchCase:           switchCaseWhitespace,
		js_ast.TypeLogicalExpression:    logicalExpressionWhitespace,
		js_ast.TypeLiteral:              literalWhitespace,
		js_ast.TypeCallExpression:       callExpressionWhitespace,
		js_ast.TypeVariableDeclaration:  variableDeclarationWhitespace,
		js_ast.TypeIfStatement:          ifStatementWhitespace,
		js_ast.TypeProperty:             firstPropertyWhitespace,
		js_ast.TypeSpreadProperty:       firstPropertyWhitespace,
		js_ast.TypeSpreadElement:        firstPropertyWhitespace,

		js_ast.TypeLabeledStatement: always,
		js_ast.TypeSwitchStatement:  always,
		js_ast.TypeTryStatement:     always,
	}

	for _, t := range js_ast.AllNodeTypes() {
		if isAlwaysSeparated(t) {
			whitespaceTable[t] = always
		}
	}
}

// Functions, classes, and loops
func isAlwaysSeparated(t js_ast.NodeType) bool {
	switch t {
	case js_ast.TypeFunctionDeclaration, js_ast.TypeFunctionExpression, js_ast.TypeArrowFunctionExpression,
		js_ast.TypeClassDeclaration, js_ast.TypeClassExpression,
		js_ast.TypeWhileStatement, js_ast.TypeDoWhileStatement,
		js_ast.TypeForStatement, js_ast.TypeForInStatement, js_ast.TypeForOfStatement:
		return true
	}
	return false
}

func needsWhitespace(node js_ast.Node, parent js_ast.Node, e edge) int {
	if node == nil {
		return 0
	}
	if stmt, ok := node.(*js_ast.ExpressionStatement); ok {
		node = stmt.Expression
		if node == nil {
			return 0
		}
	}

	if rule, ok := whitespaceTable[node.Type()]; ok {
		if ws, ok := rule(node, parent); ok {
			if n := ws.get(e); n != 0 {
				return n
			}
		}
	}

	if items, ok := whitespaceListTable[node.Type()]; ok {
		for _, item := range items(node) {
			if n := needsWhitespace(item, node, e); n != 0 {
				return n
			}
		}
	}
	return 0
}

// What a walk down an expression found
type crawlState struct {
	hasCall     bool
	hasFunction bool
	hasHelper   bool
}

func crawl(node js_ast.Node) (state crawlState) {
	crawlInto(node, &state)
	return
}

func crawlInto(node js_ast.Node, state *crawlState) {
	switch n := node.(type) {
	case *js_ast.MemberExpression:
		crawlInto(n.Object, state)
		if n.Computed {
			crawlInto(n.Property, state)
		}

	case *js_ast.BinaryExpression:
		crawlInto(n.Left, state)
		crawlInto(n.Right, state)

	case *js_ast.LogicalExpression:
		crawlInto(n.Left, state)
		crawlInto(n.Right, state)

	case *js_ast.AssignmentExpression:
		crawlInto(n.Left, state)
		crawlInto(n.Right, state)

	case *js_ast.CallExpression:
		state.hasCall = true
		crawlInto(n.Callee, state)

	case *js_ast.FunctionExpression, *js_ast.ArrowFunctionExpression:
		state.hasFunction = true

	case *js_ast.Identifier:
		state.hasHelper = state.hasHelper || isHelper(n)
	}
}

// Module-level helpers are "require" and anything named with a leading
// underscore, possibly behind member accesses and calls
func isHelper(node js_ast.Node) bool {
	switch n := node.(type) {
	case *js_ast.MemberExpression:
		return isHelper(n.Object) || isHelper(n.Property)

	case *js_ast.Identifier:
		return n.Name == "require" || strings.HasPrefix(n.Name, "_")

	case *js_ast.CallExpression:
		return isHelper(n.Callee)

	case *js_ast.BinaryExpression:
		return isHelperOperands(n.Left, n.Right)

	case *js_ast.LogicalExpression:
		return isHelperOperands(n.Left, n.Right)

	case *js_ast.AssignmentExpression:
		return isHelperOperands(n.Left, n.Right)
	}
	return false
}

func isHelperOperands(left js_ast.Node, right js_ast.Node) bool {
	if _, ok := left.(*js_ast.Identifier); ok && isHelper(left) {
		return true
	}
	return isHelper(right)
}

// Values that are plain data rather than computation
func isType(node js_ast.Node) bool {
	switch node.(type) {
	case *js_ast.Literal, *js_ast.ObjectExpression, *js_ast.ArrayExpression,
		*js_ast.Identifier, *js_ast.MemberExpression:
		return true
	}
	return false
}

func assignmentExpressionWhitespace(node js_ast.Node, parent js_ast.Node) (whitespace, bool) {
	state := crawl(node.(*js_ast.AssignmentExpression).Right)
	if (state.hasCall && state.hasHelper) || state.hasFunction {
		return whitespace{Before: boolToInt(state.hasFunction), After: 1}, true
	}
	return whitespace{}, false
}

func switchCaseWhitespace(node js_ast.Node, parent js_ast.Node) (whitespace, bool) {
	if len(node.(*js_ast.SwitchCase).Consequent) > 0 {
		return whitespace{Before: 1}, true
	}
	if s, ok := parent.(*js_ast.SwitchStatement); ok && len(s.Cases) > 0 && s.Cases[0] == node {
		return whitespace{Before: 1}, true
	}
	return whitespace{}, false
}

func logicalExpressionWhitespace(node js_ast.Node, parent js_ast.Node) (whitespace, bool) {
	n := node.(*js_ast.LogicalExpression)
	if js_ast.IsFunction(n.Left) || js_ast.IsFunction(n.Right) {
		return whitespace{After: 1}, true
	}
	return whitespace{}, false
}

func literalWhitespace(node js_ast.Node, parent js_ast.Node) (whitespace, bool) {
	if value, ok := node.(*js_ast.Literal).Value.(string); ok && value == "use strict" {
		return whitespace{After: 1}, true
	}
	return whitespace{}, false
}

func callExpressionWhitespace(node js_ast.Node, parent js_ast.Node) (whitespace, bool) {
	if js_ast.IsFunction(node.(*js_ast.CallExpression).Callee) || isHelper(node) {
		return whitespace{Before: 1, After: 1}, true
	}
	return whitespace{}, false
}

func variableDeclarationWhitespace(node js_ast.Node, parent js_ast.Node) (whitespace, bool) {
	for _, decl := range node.(*js_ast.VariableDeclaration).Declarations {
		if decl == nil {
			continue
		}

		enabled := isHelper(decl.ID) && !isType(decl.Init)
		if !enabled && decl.Init != nil {
			state := crawl(decl.Init)
			enabled = (isHelper(decl.Init) && state.hasCall) || state.hasFunction
		}

		if enabled {
			return whitespace{Before: 1, After: 1}, true
		}
	}
	return whitespace{}, false
}

func ifStatementWhitespace(node js_ast.Node, parent js_ast.Node) (whitespace, bool) {
	if _, ok := node.(*js_ast.IfStatement).Consequent.(*js_ast.BlockStatement); ok {
		return whitespace{Before: 1, After: 1}, true
	}
	return whitespace{}, false
}

func firstPropertyWhitespace(node js_ast.Node, parent js_ast.Node) (whitespace, bool) {
	var properties []js_ast.Node
	switch p := parent.(type) {
	case *js_ast.ObjectExpression:
		properties = p.Properties
	case *js_ast.ObjectPattern:
		properties = p.Properties
	}
	if len(properties) > 0 && properties[0] == node {
		return whitespace{Before: 1}, true
	}
	return whitespace{}, false
}
