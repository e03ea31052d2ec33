package js_printer

import (
	"testing"

	"github.com/jsgen-dev/jsgen/internal/js_ast"
	"github.com/jsgen-dev/jsgen/internal/test"
)

func TestWhitespaceAroundFunctions(t *testing.T) {
	expectPrinted(t, prog(stmt(call(id("a"))), fnDecl("f"), stmt(call(id("b")))),
		"a();\n\nfunction f() {}\n\nb();\n")

	// Requests from both sides merge into one blank line
	expectPrinted(t, prog(fnDecl("f"), fnDecl("g")), "function f() {}\n\nfunction g() {}\n")

	expectPrinted(t, prog(stmt(call(id("a"))), stmt(assign(dot(id("exports"), "f"), fn(nil))), stmt(call(id("b")))),
		"a();\n\nexports.f = function() {};\n\nb();\n")
	expectPrinted(t, prog(stmt(bin("||", id("a"), fn(nil))), stmt(call(id("b")))),
		"a || function() {};\n\nb();\n")
	expectPrinted(t, prog(stmt(call(id("a"))), varDecl("var", declarator("x", arr(fn(nil)))), stmt(call(id("b")))),
		"a();\n\nvar x = [function() {}];\n\nb();\n")
	expectPrinted(t, prog(stmt(call(id("a"))), stmt(call(fn(nil))), stmt(call(id("b")))),
		"a();\n\n(function() {})();\n\nb();\n")
}

func TestWhitespaceAroundHelpers(t *testing.T) {
	expectPrinted(t, prog(
		varDecl("var", declarator("x", num(1))),
		varDecl("var", declarator("a", call(id("require"), str("a")))),
		varDecl("var", declarator("b", num(1))),
	), "var x = 1;\n\nvar a = require(\"a\");\n\nvar b = 1;\n")

	expectPrinted(t, prog(stmt(assign(id("a"), call(id("_b")))), stmt(call(id("c")))),
		"a = _b();\n\nc();\n")
	expectPrinted(t, prog(stmt(call(id("a"))), stmt(call(dot(id("_b"), "c"))), stmt(call(id("d")))),
		"a();\n\n_b.c();\n\nd();\n")
	expectPrinted(t, prog(stmt(call(id("a"))), varDecl("var", declarator("_a", call(id("b"))))),
		"a();\n\nvar _a = b();\n")

	// Plain values assigned to helpers don't count
	expectPrinted(t, prog(stmt(call(id("a"))), varDecl("var", declarator("_a", id("b"))), stmt(call(id("c")))),
		"a();\nvar _a = b;\nc();\n")
	expectPrinted(t, prog(stmt(call(id("a"))), stmt(assign(id("x"), id("_b"))), stmt(call(id("c")))),
		"a();\nx = _b;\nc();\n")
}

func TestWhitespaceDirectives(t *testing.T) {
	expectPrinted(t, prog(stmt(str("use strict")), stmt(call(id("a")))), "\"use strict\";\n\na();\n")
	expectPrinted(t, prog(stmt(str("use asm")), stmt(call(id("a")))), "\"use asm\";\na();\n")
}

func TestWhitespaceObjects(t *testing.T) {
	expectPrinted(t, prog(stmt(call(id("a"))), varDecl("var", declarator("o", obj(prop(id("a"), num(1)))))),
		"a();\n\nvar o = { a: 1 };\n")
	expectPrinted(t, prog(stmt(call(id("a"))), varDecl("var", declarator("o", obj())), stmt(call(id("b")))),
		"a();\nvar o = {};\nb();\n")
}

func TestWhitespaceStatements(t *testing.T) {
	a := func() js_ast.Node { return stmt(call(id("a"))) }
	d := func() js_ast.Node { return stmt(call(id("d"))) }

	expectPrinted(t, prog(a(), &js_ast.IfStatement{Test: id("b"), Consequent: block(stmt(call(id("c"))))}, d()),
		"a();\n\nif (b) {\n  c();\n}\n\nd();\n")
	expectPrinted(t, prog(a(), &js_ast.IfStatement{Test: id("b"), Consequent: stmt(call(id("c")))}, d()),
		"a();\nif (b)\n  c();\nd();\n")
	expectPrinted(t, prog(a(), &js_ast.WhileStatement{Test: id("b"), Body: stmt(call(id("c")))}, d()),
		"a();\n\nwhile (b)\n  c();\n\nd();\n")
	expectPrinted(t, prog(a(), &js_ast.TryStatement{Block: block(), Finalizer: block()}, d()),
		"a();\n\ntry {} finally {}\n\nd();\n")
	expectPrinted(t, prog(a(), &js_ast.SwitchStatement{Discriminant: id("b")}, d()),
		"a();\n\nswitch (b) {}\n\nd();\n")
	expectPrinted(t, prog(a(), &js_ast.LabeledStatement{Label: id("b"), Body: &js_ast.EmptyStatement{}}, d()),
		"a();\n\nb:;\n\nd();\n")
	expectPrinted(t, prog(a(), &js_ast.ClassDeclaration{Class: js_ast.Class{ID: id("B"), Body: &js_ast.ClassBody{}}}, d()),
		"a();\n\nclass B {}\n\nd();\n")
}

func TestWhitespaceInsideBlocks(t *testing.T) {
	// No blank line after "{" or before "}"
	expectPrinted(t, fnDecl("g", stmt(call(id("a"))), fnDecl("f")),
		"function g() {\n  a();\n\n  function f() {}\n}\n")
	expectPrinted(t, fnDecl("g", fnDecl("f"), stmt(call(id("a")))),
		"function g() {\n  function f() {}\n\n  a();\n}\n")
	expectPrinted(t, &js_ast.IfStatement{Test: id("a"), Consequent: block(&js_ast.IfStatement{Test: id("b"), Consequent: block()})},
		"if (a) {\n  if (b) {}\n}\n")

	// The body of an "if" without braces stays attached
	expectPrinted(t, &js_ast.IfStatement{Test: id("a"), Consequent: fnDecl("f")},
		"if (a)\n  function f() {}\n")
	expectPrinted(t, &js_ast.IfStatement{Test: id("a"), Consequent: block(), Alternate: &js_ast.IfStatement{Test: id("b"), Consequent: block()}},
		"if (a) {} else if (b) {}\n")
}

func TestWhitespaceSwitchCases(t *testing.T) {
	expectPrinted(t, &js_ast.SwitchStatement{Discriminant: id("a"), Cases: []*js_ast.SwitchCase{
		{Test: num(1), Consequent: []js_ast.Node{fnDecl("f")}},
		{Test: num(2), Consequent: []js_ast.Node{stmt(call(id("b")))}},
	}}, "switch (a) {\n  case 1:\n    function f() {}\n\n  case 2:\n    b();\n}\n")
}

func TestNeedsWhitespace(t *testing.T) {
	test.AssertEqual(t, needsWhitespace(nil, nil, edgeBefore), 0)
	test.AssertEqual(t, needsWhitespace(&js_ast.ExpressionStatement{}, nil, edgeBefore), 0)
	test.AssertEqual(t, needsWhitespace(id("a"), nil, edgeBefore), 0)

	// Function expressions are separated from both sides
	f := fn(nil)
	test.AssertEqual(t, needsWhitespace(f, nil, edgeBefore), 1)
	test.AssertEqual(t, needsWhitespace(f, nil, edgeAfter), 1)

	// Logical expressions only ask for space after
	or := bin("||", id("a"), fn(nil))
	test.AssertEqual(t, needsWhitespace(or, nil, edgeBefore), 0)
	test.AssertEqual(t, needsWhitespace(or, nil, edgeAfter), 1)

	// The first property of an object asks for space before, the others don't
	first, second := prop(id("a"), num(1)), prop(id("b"), num(2))
	o := obj(first, second)
	test.AssertEqual(t, needsWhitespace(first, o, edgeBefore), 1)
	test.AssertEqual(t, needsWhitespace(second, o, edgeBefore), 0)
	test.AssertEqual(t, needsWhitespace(o, nil, edgeBefore), 1)
	test.AssertEqual(t, needsWhitespace(o, nil, edgeAfter), 0)

	// Arrays answer with their first element that has an opinion
	test.AssertEqual(t, needsWhitespace(arr(id("a"), nil, fn(nil)), nil, edgeAfter), 1)
	test.AssertEqual(t, needsWhitespace(arr(id("a"), nil), nil, edgeAfter), 0)

	// Empty cases only ask for space when they come first
	empty1, empty2 := &js_ast.SwitchCase{Test: num(1)}, &js_ast.SwitchCase{Test: num(2)}
	s := &js_ast.SwitchStatement{Discriminant: id("a"), Cases: []*js_ast.SwitchCase{empty1, empty2}}
	test.AssertEqual(t, needsWhitespace(empty1, s, edgeBefore), 1)
	test.AssertEqual(t, needsWhitespace(empty2, s, edgeBefore), 0)
	test.AssertEqual(t, needsWhitespace(empty1, s, edgeAfter), 0)
}

func TestIsHelper(t *testing.T) {
	test.AssertEqual(t, isHelper(id("require")), true)
	test.AssertEqual(t, isHelper(id("_a")), true)
	test.AssertEqual(t, isHelper(id("a")), false)
	test.AssertEqual(t, isHelper(dot(id("a"), "_b")), true)
	test.AssertEqual(t, isHelper(call(dot(id("_a"), "b"))), true)
	test.AssertEqual(t, isHelper(bin("+", id("_a"), id("b"))), true)
	test.AssertEqual(t, isHelper(bin("+", id("a"), id("_b"))), true)
	test.AssertEqual(t, isHelper(bin("+", call(id("a")), id("b"))), false)
	test.AssertEqual(t, isHelper(num(1)), false)
}
