package js_printer

import (
	"github.com/jsgen-dev/jsgen/internal/js_ast"
)

func printThisExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.print("this")
}

func printSuper(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.print("super")
}

func printIdentifier(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.print(node.(*js_ast.Identifier).Name)
}

func printMetaProperty(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.MetaProperty)
	p.printIdentifierNode(n.Meta, node)
	p.print(".")
	p.printIdentifierNode(n.Property, node)
}

// Typed nil pointers must not be converted to a non-nil "js_ast.Node"
func (p *printer) printIdentifierNode(id *js_ast.Identifier, parent js_ast.Node) {
	if id != nil {
		p.printNode(id, parent, 0)
	}
}

// This covers "RestElement", "SpreadElement", and "SpreadProperty"
func printRestElement(p *printer, node js_ast.Node, parent js_ast.Node) {
	var arg js_ast.Node
	switch n := node.(type) {
	case *js_ast.RestElement:
		arg = n.Argument
	case *js_ast.SpreadElement:
		arg = n.Argument
	case *js_ast.SpreadProperty:
		arg = n.Argument
	}
	p.print("...")
	p.printNode(arg, node, 0)
}

// This covers "ArrayExpression" and "ArrayPattern". A hole is printed as a
// lone comma so "[a, , b]" and "[a, b, ,]" keep their length.
func printArrayExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	var elements []js_ast.Node
	switch n := node.(type) {
	case *js_ast.ArrayExpression:
		elements = n.Elements
	case *js_ast.ArrayPattern:
		elements = n.Elements
	}

	p.print("[")
	for i, element := range elements {
		if element == nil {
			p.print(",")
			continue
		}
		if i > 0 {
			p.printSpace()
		}
		p.printNode(element, node, 0)
		if i < len(elements)-1 {
			p.print(",")
		}
	}
	p.print("]")
}

// This covers "ObjectExpression" and "ObjectPattern"
func printObjectExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	var properties []js_ast.Node
	switch n := node.(type) {
	case *js_ast.ObjectExpression:
		properties = n.Properties
	case *js_ast.ObjectPattern:
		properties = n.Properties
	}

	if len(properties) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	p.printSpace()
	p.printList(properties, node, listOptions{Separator: ",", Indent: true})
	p.printSpace()
	p.print("}")
}

func printProperty(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.Property)
	for _, decorator := range n.Decorators {
		if decorator != nil {
			p.printNode(decorator, node, 0)
			p.printSpace()
		}
	}

	if n.Method || n.Kind == "get" || n.Kind == "set" {
		if fn, ok := n.Value.(*js_ast.FunctionExpression); ok {
			p.printMethod(node, n.Kind, n.Key, n.Computed, fn)
			return
		}
	}

	if n.Computed {
		p.print("[")
		p.printNode(n.Key, node, 0)
		p.print("]")
	} else {
		key, _ := n.Key.(*js_ast.Identifier)

		// "{ key: key = 1 }" is written as "{ key = 1 }"
		if pattern, ok := n.Value.(*js_ast.AssignmentPattern); ok && key != nil {
			if left, ok := pattern.Left.(*js_ast.Identifier); ok && left.Name == key.Name {
				p.printNode(n.Value, node, 0)
				return
			}
		}

		p.printNode(n.Key, node, 0)

		// "{ key: key }" is written as "{ key }"
		if value, ok := n.Value.(*js_ast.Identifier); ok && key != nil && value.Name == key.Name {
			return
		}
	}

	p.print(":")
	p.printSpace()
	p.printNode(n.Value, node, 0)
}

// Object methods, accessors, and class members all share this layout
func (p *printer) printMethod(node js_ast.Node, kind string, key js_ast.Node, computed bool, fn *js_ast.FunctionExpression) {
	if fn.Async {
		p.print("async ")
	}
	if kind == "get" || kind == "set" {
		p.print(kind)
		p.printSpace()
	}
	if fn.Generator {
		p.print("*")
	}

	if computed {
		p.print("[")
		p.printNode(key, node, 0)
		p.print("]")
	} else {
		p.printNode(key, node, 0)
	}

	p.printParams(fn.Params, fn)
	p.printSpace()
	p.printFnBody(fn.Body, fn)
}

func (p *printer) printParams(params []js_ast.Node, parent js_ast.Node) {
	p.print("(")
	p.printList(params, parent, listOptions{Separator: ","})
	p.print(")")
}

func (p *printer) printFnBody(body *js_ast.BlockStatement, parent js_ast.Node) {
	if body == nil {
		p.print("{}")
		return
	}
	p.printNode(body, parent, 0)
}

// This is shared by function declarations and function expressions
func (p *printer) printFn(fn *js_ast.Fn, node js_ast.Node) {
	if fn.Async {
		p.print("async ")
	}
	p.print("function")
	if fn.Generator {
		p.print("*")
	}
	if fn.ID != nil {
		p.printSpace()
		p.printNode(fn.ID, node, 0)
	}
	p.printParams(fn.Params, node)
	p.printSpace()
	p.printFnBody(fn.Body, node)
}

func printFunctionExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.printFn(&node.(*js_ast.FunctionExpression).Fn, node)
}

func printArrowFunctionExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.ArrowFunctionExpression)
	if n.Async {
		p.print("async ")
	}

	// "x => x" doesn't need parentheses around the parameter
	if _, ok := singleIdentifier(n.Params); ok {
		p.printNode(n.Params[0], node, 0)
	} else {
		p.printParams(n.Params, node)
	}

	p.print(" => ")
	p.printNode(n.Body, node, 0)
}

func singleIdentifier(params []js_ast.Node) (*js_ast.Identifier, bool) {
	if len(params) != 1 || js_ast.HasLeadingComments(params[0]) {
		return nil, false
	}
	id, ok := params[0].(*js_ast.Identifier)
	return id, ok
}

func printUnaryExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.UnaryExpression)
	p.print(n.Operator)

	// "typeof x" and "- -x" need the space, "!!x" doesn't
	hasSpace := endsWithLetter(n.Operator)
	switch arg := n.Argument.(type) {
	case *js_ast.UpdateExpression:
		hasSpace = true
	case *js_ast.UnaryExpression:
		hasSpace = arg.Operator != "!"
	case *js_ast.Literal:
		// "- -1" is not "--1"
		hasSpace = hasSpace || (n.Operator == "-" && isNegativeNumber(arg))
	}
	if hasSpace {
		p.printSpace()
	}

	p.printNode(n.Argument, node, 0)
}

func endsWithLetter(text string) bool {
	if text == "" {
		return false
	}
	c := text[len(text)-1]
	return c >= 'a' && c <= 'z'
}

func printUpdateExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.UpdateExpression)
	if n.Prefix {
		p.print(n.Operator)
		p.printNode(n.Argument, node, 0)
	} else {
		p.printNode(n.Argument, node, 0)
		p.print(n.Operator)
	}
}

func (p *printer) printInfix(node js_ast.Node, left js_ast.Node, op string, right js_ast.Node) {
	p.printNode(left, node, 0)
	p.printSpace()
	p.print(op)
	p.printSpace()
	p.printNode(right, node, 0)
}

func printBinaryExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.BinaryExpression)
	p.printInfix(node, n.Left, n.Operator, n.Right)
}

func printLogicalExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.LogicalExpression)
	p.printInfix(node, n.Left, n.Operator, n.Right)
}

func printAssignmentExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.AssignmentExpression)
	p.printInfix(node, n.Left, n.Operator, n.Right)
}

func printAssignmentPattern(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.AssignmentPattern)
	p.printInfix(node, n.Left, "=", n.Right)
}

func printConditionalExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.ConditionalExpression)
	p.printNode(n.Test, node, 0)
	p.print(" ? ")
	p.printNode(n.Consequent, node, 0)
	p.print(" : ")
	p.printNode(n.Alternate, node, 0)
}

func (p *printer) printArguments(args []js_ast.Node, parent js_ast.Node) {
	p.print("(")
	p.printList(args, parent, listOptions{Separator: ","})
	p.print(")")
}

func printCallExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.CallExpression)
	p.printNode(n.Callee, node, 0)
	p.printArguments(n.Arguments, node)
}

// The argument list is always printed, even when it's empty
func printNewExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.NewExpression)
	p.print("new ")
	p.printNode(n.Callee, node, 0)
	p.printArguments(n.Arguments, node)
}

func printMemberExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.MemberExpression)
	p.printNode(n.Object, node, 0)
	if n.Computed {
		p.print("[")
		p.printNode(n.Property, node, 0)
		p.print("]")
	} else {
		p.print(".")
		p.printNode(n.Property, node, 0)
	}
}

func printSequenceExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.printList(node.(*js_ast.SequenceExpression).Expressions, node, listOptions{Separator: ","})
}

func printYieldExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.YieldExpression)
	p.print("yield")
	if n.Delegate {
		p.print("*")
	}
	if n.Argument != nil {
		p.printSpace()
		p.printNode(n.Argument, node, 0)
	}
}

func printAwaitExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.AwaitExpression)
	p.print("await")
	if n.Argument != nil {
		p.printSpace()
		p.printNode(n.Argument, node, 0)
	}
}

func printTemplateLiteral(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.TemplateLiteral)
	p.print("`")
	for i, quasi := range n.Quasis {
		if quasi != nil {
			p.printNode(quasi, node, 0)
		}
		if i+1 < len(n.Quasis) && i < len(n.Expressions) {
			p.print("${ ")
			p.printNode(n.Expressions[i], node, 0)
			p.print(" }")
		}
	}
	p.print("`")
}

// The raw text is printed as-is. A line break inside it must not be followed
// by indentation since that would change the value of the template.
func printTemplateElement(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.print(node.(*js_ast.TemplateElement).Raw)
}

func printTaggedTemplateExpression(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.TaggedTemplateExpression)
	p.printNode(n.Tag, node, 0)
	if n.Quasi != nil {
		p.printNode(n.Quasi, node, 0)
	} else {
		p.print("``")
	}
}
