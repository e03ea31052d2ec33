package js_printer

import (
	"strings"

	"github.com/jsgen-dev/jsgen/internal/js_ast"
)

// Statement printers start wherever the caller left off and end without a
// newline. Statement lists put each statement on its own line.

func printProgram(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.printStatements(node.(*js_ast.Program).Body, node)
}

func printExpressionStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	// The blank lines for this expression were already decided for the
	// statement that holds it
	p.printNode(node.(*js_ast.ExpressionStatement).Expression, node, flagNoBlankLineBefore)
	p.print(";")
}

func (p *printer) printBraced(stmts []js_ast.Node, parent js_ast.Node) {
	if len(stmts) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	p.indent++
	p.printStatements(stmts, parent)
	p.dropPendingLines()
	p.indent--
	p.printNewline()
	p.print("}")
}

func printBlockStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.printBraced(node.(*js_ast.BlockStatement).Body, node)
}

func printEmptyStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.print(";")
}

func printDebuggerStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.print("debugger;")
}

// Blocks stay on the line of their owner. Anything else goes on the next
// line, one level deeper.
func (p *printer) printBody(body js_ast.Node, parent js_ast.Node) {
	switch body.(type) {
	case nil:
		p.print(";")

	case *js_ast.EmptyStatement:
		p.printNode(body, parent, flagNoBlankLineBefore)

	case *js_ast.BlockStatement:
		p.printSpace()
		p.printNode(body, parent, flagNoBlankLineBefore)

	default:
		p.indent++
		p.printNewline()
		p.printNode(body, parent, flagNoBlankLineBefore)
		p.indent--
	}
}

func printWithStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.WithStatement)
	p.print("with (")
	p.printNode(n.Object, node, 0)
	p.print(")")
	p.printBody(n.Body, node)
}

func (p *printer) printKeywordArgument(keyword string, arg js_ast.Node, node js_ast.Node) {
	p.print(keyword)
	if arg != nil {
		p.printSpace()
		p.printNode(arg, node, 0)
	}
	p.print(";")
}

func printReturnStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.printKeywordArgument("return", node.(*js_ast.ReturnStatement).Argument, node)
}

func printThrowStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.printKeywordArgument("throw", node.(*js_ast.ThrowStatement).Argument, node)
}

func printBreakStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.printJump("break", node.(*js_ast.BreakStatement).Label, node)
}

func printContinueStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.printJump("continue", node.(*js_ast.ContinueStatement).Label, node)
}

func (p *printer) printJump(keyword string, label *js_ast.Identifier, node js_ast.Node) {
	p.print(keyword)
	if label != nil {
		p.printSpace()
		p.printNode(label, node, 0)
	}
	p.print(";")
}

func printLabeledStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.LabeledStatement)
	p.printIdentifierNode(n.Label, node)
	p.print(":")
	if _, ok := n.Body.(*js_ast.EmptyStatement); ok || n.Body == nil {
		p.print(";")
		return
	}
	p.printSpace()
	p.printNode(n.Body, node, flagNoBlankLineBefore)
}

func printIfStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.IfStatement)
	p.print("if (")
	p.printNode(n.Test, node, 0)
	p.print(")")

	_, isBlock := n.Consequent.(*js_ast.BlockStatement)
	if n.Alternate != nil && !isBlock && wrapToAvoidAmbiguousElse(n.Consequent) {
		// "if (a) { if (b) c; } else d;" must keep its braces
		p.print(" {")
		p.indent++
		p.printNewline()
		p.printNode(n.Consequent, node, flagNoBlankLineBefore)
		p.indent--
		p.printNewline()
		p.print("}")
		isBlock = true
	} else {
		p.printBody(n.Consequent, node)
	}

	if n.Alternate == nil {
		return
	}
	if isBlock {
		p.printSpace()
	} else {
		p.printNewline()
	}
	p.print("else")
	if _, ok := n.Alternate.(*js_ast.IfStatement); ok {
		p.printSpace()
		p.printNode(n.Alternate, node, flagNoBlankLineBefore)
	} else {
		p.printBody(n.Alternate, node)
	}
}

// An "else" binds to the closest "if" that doesn't have one yet, so an
// "if" without "else" at the end of a consequent would steal it
func wrapToAvoidAmbiguousElse(s js_ast.Node) bool {
	for {
		switch current := s.(type) {
		case *js_ast.IfStatement:
			if current.Alternate == nil {
				return true
			}
			s = current.Alternate

		case *js_ast.ForStatement:
			s = current.Body

		case *js_ast.ForInStatement:
			s = current.Body

		case *js_ast.ForOfStatement:
			s = current.Body

		case *js_ast.WhileStatement:
			s = current.Body

		case *js_ast.WithStatement:
			s = current.Body

		case *js_ast.LabeledStatement:
			s = current.Body

		default:
			return false
		}
	}
}

func printSwitchStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.SwitchStatement)
	p.print("switch (")
	p.printNode(n.Discriminant, node, 0)
	p.print(")")
	p.printSpace()

	if len(n.Cases) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	p.indent++
	for _, c := range n.Cases {
		if c == nil {
			continue
		}
		p.printNewline()
		p.flushPendingLines()
		p.printNode(c, node, flagStatement)
	}
	p.dropPendingLines()
	p.indent--
	p.printNewline()
	p.print("}")
}

func printSwitchCase(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.SwitchCase)
	if n.Test != nil {
		p.print("case ")
		p.printNode(n.Test, node, 0)
		p.print(":")
	} else {
		p.print("default:")
	}

	p.indent++
	p.printStatements(n.Consequent, node)
	p.indent--
}

func printTryStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.TryStatement)
	p.print("try")
	p.printSpace()
	p.printBlockNode(n.Block, node)
	if n.Handler != nil {
		p.printSpace()
		p.printNode(n.Handler, node, 0)
	}
	if n.Finalizer != nil {
		p.print(" finally")
		p.printSpace()
		p.printBlockNode(n.Finalizer, node)
	}
}

func (p *printer) printBlockNode(block *js_ast.BlockStatement, parent js_ast.Node) {
	if block == nil {
		p.print("{}")
		return
	}
	p.printNode(block, parent, 0)
}

func printCatchClause(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.CatchClause)
	p.print("catch")
	if n.Param != nil {
		p.print(" (")
		p.printNode(n.Param, node, 0)
		p.print(")")
	}
	p.printSpace()
	p.printBlockNode(n.Body, node)
}

func printWhileStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.WhileStatement)
	p.print("while (")
	p.printNode(n.Test, node, 0)
	p.print(")")
	p.printBody(n.Body, node)
}

func printDoWhileStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.DoWhileStatement)
	p.print("do")
	p.printBody(n.Body, node)
	if _, ok := n.Body.(*js_ast.BlockStatement); ok {
		p.printSpace()
	} else {
		p.printNewline()
	}
	p.print("while (")
	p.printNode(n.Test, node, 0)
	p.print(");")
}

func printForStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.ForStatement)
	p.print("for (")
	forbidIn := p.forbidIn
	p.forbidIn = true
	p.printNode(n.Init, node, 0)
	p.forbidIn = forbidIn
	p.print(";")
	if n.Test != nil {
		p.printSpace()
		p.printNode(n.Test, node, 0)
	}
	p.print(";")
	if n.Update != nil {
		p.printSpace()
		p.printNode(n.Update, node, 0)
	}
	p.print(")")
	p.printBody(n.Body, node)
}

func printForInStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.ForInStatement)
	p.print("for (")
	p.printNode(n.Left, node, 0)
	p.print(" in ")
	p.printNode(n.Right, node, 0)
	p.print(")")
	p.printBody(n.Body, node)
}

func printForOfStatement(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.ForOfStatement)
	p.print("for ")
	if n.Await {
		p.print("await ")
	}
	p.print("(")
	p.printNode(n.Left, node, 0)
	p.print(" of ")
	p.printNode(n.Right, node, 0)
	p.print(")")
	p.printBody(n.Body, node)
}

func printFunctionDeclaration(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.printFn(&node.(*js_ast.FunctionDeclaration).Fn, node)
}

// Reports whether "node" is the head of a "for" loop, where declarations
// don't end with a semicolon
func isForHead(node js_ast.Node, parent js_ast.Node) bool {
	switch p := parent.(type) {
	case *js_ast.ForStatement:
		return p.Init == node
	case *js_ast.ForInStatement:
		return p.Left == node
	case *js_ast.ForOfStatement:
		return p.Left == node
	}
	return false
}

func printVariableDeclaration(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.VariableDeclaration)
	p.print(n.Kind)
	p.printSpace()

	// Declarators with values go on their own lines, lined up after the
	// keyword:
	//
	//   var a = 1,
	//       b = 2;
	//
	inHead := isForHead(node, parent)
	multiline := false
	if !inHead {
		for _, decl := range n.Declarations {
			if decl != nil && decl.Init != nil {
				multiline = true
				break
			}
		}
	}

	first := true
	for _, decl := range n.Declarations {
		if decl == nil {
			continue
		}
		if !first {
			p.print(",")
			if multiline {
				p.printNewline()
				p.print(strings.Repeat(" ", len(n.Kind)+1))
			} else {
				p.printSpace()
			}
		}
		first = false
		p.printNode(decl, node, 0)
	}

	if !inHead {
		p.print(";")
	}
}

func printVariableDeclarator(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.VariableDeclarator)
	p.printNode(n.ID, node, 0)
	if n.Init != nil {
		p.print(" = ")
		p.printNode(n.Init, node, 0)
	}
}

// Class declarations put each decorator on its own line. Class expressions
// are usually in the middle of a line so they keep them inline.
func (p *printer) printClass(class *js_ast.Class, node js_ast.Node, decoratorsOnOwnLine bool) {
	for _, decorator := range class.Decorators {
		if decorator == nil {
			continue
		}
		p.printNode(decorator, node, 0)
		if decoratorsOnOwnLine {
			p.printNewline()
		} else {
			p.printSpace()
		}
	}

	p.print("class")
	if class.ID != nil {
		p.printSpace()
		p.printNode(class.ID, node, 0)
	}
	if class.SuperClass != nil {
		p.print(" extends ")
		p.printNode(class.SuperClass, node, 0)
	}
	p.printSpace()
	if class.Body == nil {
		p.print("{}")
	} else {
		p.printNode(class.Body, node, 0)
	}
}

func printClassDeclaration(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.printClass(&node.(*js_ast.ClassDeclaration).Class, node, true)
}

func printClassExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.printClass(&node.(*js_ast.ClassExpression).Class, node, false)
}

func printClassBody(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.printBraced(node.(*js_ast.ClassBody).Body, node)
}

func printMethodDefinition(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.MethodDefinition)
	for _, decorator := range n.Decorators {
		if decorator != nil {
			p.printNode(decorator, node, 0)
			p.printNewline()
		}
	}
	if n.Static {
		p.print("static ")
	}
	if n.Value == nil {
		p.printNode(n.Key, node, 0)
		p.print("() {}")
		return
	}
	p.printMethod(node, n.Kind, n.Key, n.Computed, n.Value)
}

func printDecorator(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.print("@")
	p.printNode(node.(*js_ast.Decorator).Expression, node, 0)
}
