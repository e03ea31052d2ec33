package js_printer

import (
	"github.com/jsgen-dev/jsgen/internal/js_ast"
)

func printImportDeclaration(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.ImportDeclaration)
	p.print("import ")

	if len(n.Specifiers) > 0 {
		// The default and namespace imports come before the braces
		leading := 0
		for leading < len(n.Specifiers) && isUnbracedImport(n.Specifiers[leading]) {
			leading++
		}
		p.printList(n.Specifiers[:leading], node, listOptions{Separator: ","})

		if named := n.Specifiers[leading:]; len(named) > 0 {
			if leading > 0 {
				p.print(", ")
			}
			p.print("{ ")
			p.printList(named, node, listOptions{Separator: ","})
			p.print(" }")
		}
		p.print(" from ")
	}

	p.printSource(n.Source, node)
	p.print(";")
}

func isUnbracedImport(node js_ast.Node) bool {
	switch node.(type) {
	case *js_ast.ImportDefaultSpecifier, *js_ast.ImportNamespaceSpecifier:
		return true
	}
	return false
}

func (p *printer) printSource(source *js_ast.Literal, parent js_ast.Node) {
	if source != nil {
		p.printNode(source, parent, 0)
	}
}

// Prints "name" or "name as alias"
func (p *printer) printAlias(name *js_ast.Identifier, alias *js_ast.Identifier, parent js_ast.Node) {
	if name == nil {
		p.printIdentifierNode(alias, parent)
		return
	}
	p.printNode(name, parent, 0)
	if alias != nil && alias.Name != name.Name {
		p.print(" as ")
		p.printNode(alias, parent, 0)
	}
}

func printImportSpecifier(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.ImportSpecifier)
	p.printAlias(n.Imported, n.Local, node)
}

func printImportDefaultSpecifier(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.printIdentifierNode(node.(*js_ast.ImportDefaultSpecifier).Local, node)
}

func printImportNamespaceSpecifier(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.print("* as ")
	p.printIdentifierNode(node.(*js_ast.ImportNamespaceSpecifier).Local, node)
}

func printExportNamedDeclaration(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.ExportNamedDeclaration)
	p.print("export ")

	// "export var a = 1;" ends with the semicolon of the declaration
	if n.Declaration != nil {
		p.printNode(n.Declaration, node, 0)
		return
	}

	if len(n.Specifiers) == 0 {
		p.print("{}")
	} else {
		p.print("{ ")
		for i, s := range n.Specifiers {
			if i > 0 {
				p.print(", ")
			}
			if s != nil {
				p.printNode(s, node, 0)
			}
		}
		p.print(" }")
	}
	if n.Source != nil {
		p.print(" from ")
		p.printNode(n.Source, node, 0)
	}
	p.print(";")
}

func printExportDefaultDeclaration(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.ExportDefaultDeclaration)
	p.print("export default ")
	p.printNode(n.Declaration, node, 0)
	switch n.Declaration.(type) {
	case *js_ast.FunctionDeclaration, *js_ast.ClassDeclaration:
	default:
		p.print(";")
	}
}

func printExportAllDeclaration(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.ExportAllDeclaration)
	p.print("export *")
	if n.Exported != nil {
		p.print(" as ")
		p.printNode(n.Exported, node, 0)
	}
	p.print(" from ")
	p.printSource(n.Source, node)
	p.print(";")
}

func printExportSpecifier(p *printer, node js_ast.Node, parent js_ast.Node) {
	n := node.(*js_ast.ExportSpecifier)
	p.printAlias(n.Local, n.Exported, node)
}
