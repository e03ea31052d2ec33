package js_printer

import (
	"errors"
	"fmt"

	"github.com/jsgen-dev/jsgen/internal/config"
	"github.com/jsgen-dev/jsgen/internal/js_ast"
)

// Every node is printed through "printNode", which applies the blank-line
// and parenthesization decisions before and after handing the node to the
// printer registered for its type. Printers never write child text
// themselves, they always call back into "printNode" so the decisions are
// made at every level of the tree.

var ErrUnknownNodeType = errors.New("Unknown node type")

type UnknownNodeTypeError struct {
	Type string
	Loc  js_ast.Loc
}

func (e *UnknownNodeTypeError) Error() string {
	if e.Loc.IsValid() {
		return fmt.Sprintf("Unknown node type %q at line %d, column %d", e.Type, e.Loc.Line, e.Loc.Column)
	}
	return fmt.Sprintf("Unknown node type %q", e.Type)
}

func (e *UnknownNodeTypeError) Unwrap() error {
	return ErrUnknownNodeType
}

// This is thrown through the recursive printers and caught by "Print"
type printAbort struct {
	err error
}

type printFunc func(p *printer, node js_ast.Node, parent js_ast.Node)

var registry map[js_ast.NodeType]printFunc

// Node types that reuse the printer of another node type
var aliases = map[js_ast.NodeType]js_ast.NodeType{
	js_ast.TypeSpreadElement:  js_ast.TypeRestElement,
	js_ast.TypeSpreadProperty: js_ast.TypeRestElement,
	js_ast.TypeObjectPattern:  js_ast.TypeObjectExpression,
	js_ast.TypeArrayPattern:   js_ast.TypeArrayExpression,
}

func init() {
	registry = map[js_ast.NodeType]printFunc{
		// Statements
		js_ast.TypeProgram:             printProgram,
		js_ast.TypeExpressionStatement: printExpressionStatement,
		js_ast.TypeBlockStatement:      printBlockStatement,
		js_ast.TypeEmptyStatement:      printEmptyStatement,
		js_ast.TypeDebuggerStatement:   printDebuggerStatement,
		js_ast.TypeWithStatement:       printWithStatement,
		js_ast.TypeReturnStatement:     printReturnStatement,
		js_ast.TypeLabeledStatement:    printLabeledStatement,
		js_ast.TypeBreakStatement:      printBreakStatement,
		js_ast.TypeContinueStatement:   printContinueStatement,
		js_ast.TypeIfStatement:         printIfStatement,
		js_ast.TypeSwitchStatement:     printSwitchStatement,
		js_ast.TypeSwitchCase:          printSwitchCase,
		js_ast.TypeThrowStatement:      printThrowStatement,
		js_ast.TypeTryStatement:        printTryStatement,
		js_ast.TypeCatchClause:         printCatchClause,
		js_ast.TypeWhileStatement:      printWhileStatement,
		js_ast.TypeDoWhileStatement:    printDoWhileStatement,
		js_ast.TypeForStatement:        printForStatement,
		js_ast.TypeForInStatement:      printForInStatement,
		js_ast.TypeForOfStatement:      printForOfStatement,

		// Declarations
		js_ast.TypeFunctionDeclaration: printFunctionDeclaration,
		js_ast.TypeVariableDeclaration: printVariableDeclaration,
		js_ast.TypeVariableDeclarator:  printVariableDeclarator,
		js_ast.TypeClassDeclaration:    printClassDeclaration,
		js_ast.TypeClassExpression:     printClassExpression,
		js_ast.TypeClassBody:           printClassBody,
		js_ast.TypeMethodDefinition:    printMethodDefinition,
		js_ast.TypeDecorator:           printDecorator,

		// Expressions
		js_ast.TypeThisExpression:           printThisExpression,
		js_ast.TypeSuper:                    printSuper,
		js_ast.TypeArrayExpression:          printArrayExpression,
		js_ast.TypeObjectExpression:         printObjectExpression,
		js_ast.TypeProperty:                 printProperty,
		js_ast.TypeFunctionExpression:       printFunctionExpression,
		js_ast.TypeArrowFunctionExpression:  printArrowFunctionExpression,
		js_ast.TypeUnaryExpression:          printUnaryExpression,
		js_ast.TypeUpdateExpression:         printUpdateExpression,
		js_ast.TypeBinaryExpression:         printBinaryExpression,
		js_ast.TypeLogicalExpression:        printLogicalExpression,
		js_ast.TypeAssignmentExpression:     printAssignmentExpression,
		js_ast.TypeAssignmentPattern:        printAssignmentPattern,
		js_ast.TypeConditionalExpression:    printConditionalExpression,
		js_ast.TypeCallExpression:           printCallExpression,
		js_ast.TypeNewExpression:            printNewExpression,
		js_ast.TypeMemberExpression:         printMemberExpression,
		js_ast.TypeSequenceExpression:       printSequenceExpression,
		js_ast.TypeYieldExpression:          printYieldExpression,
		js_ast.TypeAwaitExpression:          printAwaitExpression,
		js_ast.TypeTemplateLiteral:          printTemplateLiteral,
		js_ast.TypeTaggedTemplateExpression: printTaggedTemplateExpression,
		js_ast.TypeTemplateElement:          printTemplateElement,
		js_ast.TypeRestElement:              printRestElement,
		js_ast.TypeIdentifier:               printIdentifier,
		js_ast.TypeLiteral:                  printLiteral,
		js_ast.TypeMetaProperty:             printMetaProperty,

		// Modules
		js_ast.TypeImportDeclaration:        printImportDeclaration,
		js_ast.TypeImportSpecifier:          printImportSpecifier,
		js_ast.TypeImportDefaultSpecifier:   printImportDefaultSpecifier,
		js_ast.TypeImportNamespaceSpecifier: printImportNamespaceSpecifier,
		js_ast.TypeExportNamedDeclaration:   printExportNamedDeclaration,
		js_ast.TypeExportDefaultDeclaration: printExportDefaultDeclaration,
		js_ast.TypeExportAllDeclaration:     printExportAllDeclaration,
		js_ast.TypeExportSpecifier:          printExportSpecifier,
	}

	// Dispatch must be total over the grammar
	for _, t := range js_ast.AllNodeTypes() {
		if lookupPrinter(t) == nil {
			panic(fmt.Sprintf("Internal error: no printer for node type %q", t.String()))
		}
	}
}

func lookupPrinter(t js_ast.NodeType) printFunc {
	if fn, ok := registry[t]; ok {
		return fn
	}
	if alias, ok := aliases[t]; ok {
		return registry[alias]
	}
	return nil
}

type printer struct {
	options      Options
	indentText   string
	js           []byte
	indent       int
	pendingLines int

	// Indentation is written by the first "print" on a line instead of by
	// "printNewline" so that blank lines never carry trailing whitespace. Raw
	// template text containing a newline doesn't set this, so the next line of
	// the template isn't indented.
	needsIndent bool

	// Set while printing the initializer of a "for" loop, where a bare "in"
	// would be read as a "for-in" loop
	forbidIn bool
}

type printFlags uint8

const (
	// The node is an element of a statement list. Its trailing blank lines
	// are deferred until the next statement is printed.
	flagStatement printFlags = 1 << iota

	// The node starts a line that directly follows its owner, such as the
	// body of an "if" without braces. No blank line may separate them.
	flagNoBlankLineBefore
)

func (p *printer) print(text string) {
	if text == "" {
		return
	}
	if p.needsIndent {
		p.printIndent()
	}
	p.js = append(p.js, text...)
}

func (p *printer) printIndent() {
	p.needsIndent = false
	for i := 0; i < p.indent; i++ {
		p.js = append(p.js, p.indentText...)
	}
}

func (p *printer) printSpace() {
	p.print(" ")
}

// Ends the current line. Calling this at the start of a line does nothing.
func (p *printer) printNewline() {
	if len(p.js) == 0 || p.needsIndent {
		return
	}
	p.js = append(p.js, '\n')
	p.needsIndent = true
}

func (p *printer) isMidLine() bool {
	return len(p.js) > 0 && !p.needsIndent
}

// Makes sure there are "n" blank lines before whatever is printed next.
// Blank lines only ever sit between lines, so this does nothing at the start
// of the output, in the middle of a line, or directly after an opening "{" or
// a "case" label. Requests merge instead of stacking up.
func (p *printer) addBlankLines(n int) {
	if n <= 0 || len(p.js) == 0 || p.isMidLine() {
		return
	}
	end := len(p.js)
	if end >= 2 && p.js[end-1] == '\n' && (p.js[end-2] == '{' || p.js[end-2] == ':') {
		return
	}
	trailing := 0
	for i := end - 1; i >= 0 && p.js[i] == '\n'; i-- {
		trailing++
	}
	for ; trailing < n+1; trailing++ {
		p.js = append(p.js, '\n')
	}
}

func (p *printer) deferBlankLines(n int) {
	if n > p.pendingLines {
		p.pendingLines = n
	}
}

func (p *printer) flushPendingLines() {
	n := p.pendingLines
	p.pendingLines = 0
	p.addBlankLines(n)
}

// Blank lines are never printed before a closing brace
func (p *printer) dropPendingLines() {
	p.pendingLines = 0
}

func (p *printer) printLeadingComments(node js_ast.Node) {
	for _, comment := range node.Base().LeadingComments {
		if comment.Block {
			p.print("/*")
			p.print(comment.Text)
			p.print("*/")
			p.printSpace()
		} else {
			p.print("//")
			p.print(comment.Text)
			p.printNewline()
		}
	}
}

func (p *printer) printNode(node js_ast.Node, parent js_ast.Node, flags printFlags) {
	if node == nil {
		return
	}

	printFn := lookupPrinter(node.Type())
	if printFn == nil {
		typeName := node.Type().String()
		if opaque, ok := node.(*js_ast.Opaque); ok {
			typeName = opaque.TypeName
		}
		panic(printAbort{&UnknownNodeTypeError{Type: typeName, Loc: node.Base().Loc}})
	}

	if flags&flagNoBlankLineBefore == 0 {
		p.addBlankLines(needsWhitespace(node, parent, edgeBefore))
	}

	// A comment may contain a line break, which must not end a "return"
	guardComments := needsParensNoLineTerminator(node, parent)
	if guardComments {
		p.print("(")
	}
	p.printLeadingComments(node)

	wrap := needsParens(node, parent) || (p.forbidIn && isInExpression(node))
	forbidIn := p.forbidIn
	if wrap {
		p.print("(")
		p.forbidIn = false
	} else if isBracketed(node) {
		p.forbidIn = false
	}
	printFn(p, node, parent)
	p.forbidIn = forbidIn
	if wrap {
		p.print(")")
	}
	if guardComments {
		p.print(")")
	}

	after := needsWhitespace(node, parent, edgeAfter)
	if flags&flagStatement != 0 {
		p.deferBlankLines(after)
	} else {
		p.addBlankLines(after)
	}
}

type listOptions struct {
	Separator string

	// Each element after the first starts on a new line, one level deeper
	Indent bool

	// Each element starts on its own line and is printed as a statement
	Statement bool
}

func (p *printer) printList(nodes []js_ast.Node, parent js_ast.Node, options listOptions) {
	if len(nodes) == 0 {
		return
	}
	if options.Indent {
		p.indent++
	}

	for i, node := range nodes {
		if options.Statement {
			p.printNewline()
			p.flushPendingLines()
			p.printNode(node, parent, flagStatement)
			continue
		}
		if i > 0 {
			p.print(options.Separator)
			if options.Indent {
				p.printNewline()
			} else {
				p.printSpace()
			}
		}
		p.printNode(node, parent, 0)
	}

	if options.Indent {
		p.indent--
	}
}

func (p *printer) printStatements(stmts []js_ast.Node, parent js_ast.Node) {
	p.printList(stmts, parent, listOptions{Statement: true})
}

// Quote style and indentation
type Options = config.Options

type PrintResult struct {
	JS []byte
}

// Prints "node" and its subtree. If the tree contains a node type without a
// printer, this returns an error wrapping "ErrUnknownNodeType" and the result
// holds no output at all.
func Print(node js_ast.Node, options Options) (result PrintResult, err error) {
	p := &printer{
		options:    options,
		indentText: options.IndentOrDefault(),
	}

	defer func() {
		if r := recover(); r != nil {
			abort, ok := r.(printAbort)
			if !ok {
				panic(r)
			}
			result = PrintResult{}
			err = abort.err
		}
	}()

	p.printNode(node, nil, flagStatement)

	// Generated code never ends with whitespace
	js := p.js
	for len(js) > 0 && (js[len(js)-1] == '\n' || js[len(js)-1] == ' ') {
		js = js[:len(js)-1]
	}
	if len(js) > 0 {
		js = append(js, '\n')
	}
	return PrintResult{JS: js}, nil
}
