package js_printer

import (
	"testing"

	"github.com/jsgen-dev/jsgen/internal/js_ast"
)

func TestParensPrecedence(t *testing.T) {
	a, b, c := id("a"), id("b"), id("c")

	expectPrinted(t, bin("*", bin("+", a, b), c), "(a + b) * c\n")
	expectPrinted(t, bin("+", bin("*", a, b), c), "a * b + c\n")
	expectPrinted(t, bin("+", a, bin("*", b, c)), "a + b * c\n")
	expectPrinted(t, bin("-", a, bin("-", b, c)), "a - (b - c)\n")
	expectPrinted(t, bin("-", bin("-", a, b), c), "a - b - c\n")
	expectPrinted(t, bin("<", bin("in", a, b), c), "a in b < c\n")
	expectPrinted(t, bin("in", a, bin("<", b, c)), "a in (b < c)\n")

	// "**" is right-associative
	expectPrinted(t, bin("**", bin("**", a, b), c), "(a ** b) ** c\n")
	expectPrinted(t, bin("**", a, bin("**", b, c)), "a ** (b ** c)\n")
	expectPrinted(t, bin("**", unary("-", a), b), "(-a) ** b\n")
	expectPrinted(t, bin("**", a, unary("-", b)), "a ** -b\n")

	// "??" can't be mixed with "||" or "&&"
	expectPrinted(t, bin("??", bin("||", a, b), c), "(a || b) ?? c\n")
	expectPrinted(t, bin("||", bin("??", a, b), c), "(a ?? b) || c\n")
	expectPrinted(t, bin("??", a, bin("&&", b, c)), "a ?? (b && c)\n")
	expectPrinted(t, bin("??", bin("??", a, b), c), "a ?? b ?? c\n")
	expectPrinted(t, bin("??", bin("|", a, b), c), "a | b ?? c\n")

	expectPrinted(t, bin("||", a, bin("&&", b, c)), "a || b && c\n")
	expectPrinted(t, bin("&&", bin("||", a, b), c), "(a || b) && c\n")
}

func TestParensBinaryOperands(t *testing.T) {
	a, b := id("a"), id("b")

	expectPrinted(t, call(bin("+", a, b)), "(a + b)()\n")
	expectPrinted(t, &js_ast.NewExpression{Callee: bin("+", a, b)}, "new (a + b)()\n")
	expectPrinted(t, dot(bin("+", a, b), "c"), "(a + b).c\n")
	expectPrinted(t, index(bin("+", a, b), id("c")), "(a + b)[c]\n")
	expectPrinted(t, unary("!", bin("&&", a, b)), "!(a && b)\n")
	expectPrinted(t, &js_ast.SpreadElement{Argument: bin("+", a, b)}, "...(a + b)\n")
	expectPrinted(t, &js_ast.TaggedTemplateExpression{Tag: bin("+", a, b), Quasi: template("x")}, "(a + b)`x`\n")

	// Arguments and right-hand sides are fine as they are
	expectPrinted(t, call(id("f"), bin("+", a, b)), "f(a + b)\n")
	expectPrinted(t, assign(id("x"), bin("+", a, b)), "x = a + b\n")
	expectPrinted(t, index(id("x"), bin("+", a, b)), "x[a + b]\n")
}

func TestParensNewCallee(t *testing.T) {
	expectPrinted(t, &js_ast.NewExpression{Callee: call(id("a"))}, "new (a())()\n")
	expectPrinted(t, &js_ast.NewExpression{Callee: dot(call(dot(id("a"), "b")), "c")}, "new (a.b().c)()\n")
	expectPrinted(t, &js_ast.NewExpression{Callee: index(id("a"), call(id("b")))}, "new (a[b()])()\n")
	expectPrinted(t, &js_ast.NewExpression{Callee: dot(id("a"), "b")}, "new a.b()\n")
	expectPrinted(t, &js_ast.NewExpression{Callee: &js_ast.NewExpression{Callee: id("a")}}, "new new a()()\n")
	expectPrinted(t, call(&js_ast.NewExpression{Callee: id("a")}), "new a()()\n")
}

func TestParensStatementStart(t *testing.T) {
	expectPrinted(t, prog(stmt(call(fn(nil)))), "(function() {})();\n")
	expectPrinted(t, prog(stmt(call(dot(fn(nil), "call")))), "(function() {}).call();\n")
	expectPrinted(t, prog(stmt(bin("+", fn(nil), id("a")))), "(function() {} + a);\n")
	expectPrinted(t, prog(stmt(fn(nil))), "(function() {});\n")
	expectPrinted(t, prog(stmt(&js_ast.ClassExpression{Class: js_ast.Class{Body: &js_ast.ClassBody{}}})), "(class {});\n")
	expectPrinted(t, prog(stmt(dot(&js_ast.ClassExpression{Class: js_ast.Class{Body: &js_ast.ClassBody{}}}, "a"))), "(class {}.a);\n")

	expectPrinted(t, prog(stmt(obj())), "({});\n")
	expectPrinted(t, prog(stmt(call(dot(obj(), "toString")))), "({}).toString();\n")
	expectPrinted(t, prog(stmt(cond(obj(), id("a"), id("b")))), "({} ? a : b);\n")
	expectPrinted(t, prog(stmt(&js_ast.TaggedTemplateExpression{Tag: fn(nil), Quasi: template("")})), "(function() {})``;\n")

	// Destructuring assignment
	pattern := &js_ast.ObjectPattern{Properties: []js_ast.Node{prop(id("a"), id("a"))}}
	expectPrinted(t, prog(stmt(assign(pattern, id("b")))), "({ a } = b);\n")
	expectPrinted(t, prog(stmt(assign(&js_ast.ArrayPattern{Elements: []js_ast.Node{id("a")}}, id("b")))), "[a] = b;\n")

	// "let [" starts a declaration
	letIndex := func() js_ast.Node { return index(id("let"), id("a")) }
	expectPrinted(t, prog(stmt(assign(letIndex(), num(1)))), "(let[a] = 1);\n")
	expectPrinted(t, prog(stmt(letIndex())), "(let[a]);\n")
	expectPrinted(t, prog(stmt(call(dot(letIndex(), "b")))), "(let[a].b());\n")
	expectPrinted(t, prog(stmt(dot(id("let"), "a"))), "let.a;\n")
	expectPrinted(t, prog(stmt(assign(id("x"), letIndex()))), "x = let[a];\n")

	// Not at the start of the statement
	expectPrinted(t, prog(stmt(assign(id("a"), fn(nil)))), "a = function() {};\n")
	expectPrinted(t, prog(stmt(assign(id("a"), obj()))), "a = {};\n")
	expectPrinted(t, prog(stmt(call(id("f"), obj()))), "f({});\n")
}

func TestParensArrowBody(t *testing.T) {
	expectPrinted(t, arrow(nil, obj(prop(id("a"), num(1)))), "() => ({ a: 1 })\n")
	expectPrinted(t, arrow(nil, dot(obj(), "a")), "() => ({}).a\n")
	expectPrinted(t, arrow(nil, cond(obj(), id("a"), id("b"))), "() => ({} ? a : b)\n")
	expectPrinted(t, arrow(nil, fn(nil)), "() => function() {}\n")
	expectPrinted(t, arrow(nil, block()), "() => {}\n")
}

func TestParensExportDefault(t *testing.T) {
	expectPrinted(t, &js_ast.ExportDefaultDeclaration{Declaration: fn(nil)}, "export default (function() {});\n")
	expectPrinted(t, &js_ast.ExportDefaultDeclaration{Declaration: &js_ast.ClassExpression{Class: js_ast.Class{Body: &js_ast.ClassBody{}}}}, "export default (class {});\n")
	expectPrinted(t, &js_ast.ExportDefaultDeclaration{Declaration: arrow(nil, id("a"))}, "export default (() => a);\n")
	expectPrinted(t, &js_ast.ExportDefaultDeclaration{Declaration: obj()}, "export default ({});\n")
	expectPrinted(t, &js_ast.ExportDefaultDeclaration{Declaration: call(fn(nil))}, "export default (function() {})();\n")
}

func TestParensSequence(t *testing.T) {
	a, b := id("a"), id("b")

	expectPrinted(t, prog(stmt(seq(a, b))), "a, b;\n")
	expectPrinted(t, &js_ast.ForStatement{Init: seq(a, b), Update: seq(a, b), Body: &js_ast.EmptyStatement{}}, "for (a, b;; a, b);\n")
	expectPrinted(t, call(id("f"), seq(a, b)), "f((a, b))\n")
	expectPrinted(t, arr(seq(a, b)), "[(a, b)]\n")
	expectPrinted(t, &js_ast.ReturnStatement{Argument: seq(a, b)}, "return (a, b);\n")
	expectPrinted(t, varDecl("var", declarator("x", seq(a, b))), "var x = (a, b);\n")
}

func TestParensYieldAndAwait(t *testing.T) {
	a, b := id("a"), id("b")
	yield := &js_ast.YieldExpression{Argument: a}
	await := &js_ast.AwaitExpression{Argument: a}

	expectPrinted(t, bin("+", yield, b), "(yield a) + b\n")
	expectPrinted(t, call(yield), "(yield a)()\n")
	expectPrinted(t, cond(yield, a, b), "(yield a) ? a : b\n")
	expectPrinted(t, &js_ast.YieldExpression{Argument: yield}, "yield (yield a)\n")
	expectPrinted(t, assign(b, yield), "b = yield a\n")

	expectPrinted(t, dot(await, "b"), "(await a).b\n")
	expectPrinted(t, unary("!", await), "!(await a)\n")
	expectPrinted(t, &js_ast.NewExpression{Callee: await}, "new (await a)()\n")
	expectPrinted(t, assign(b, await), "b = await a\n")
	expectPrinted(t, arr(await), "[await a]\n")
}

func TestParensUnaryAndUpdate(t *testing.T) {
	expectPrinted(t, dot(unary("-", id("a")), "b"), "(-a).b\n")
	expectPrinted(t, dot(&js_ast.UpdateExpression{Operator: "++", Argument: id("a")}, "b"), "(a++).b\n")
	expectPrinted(t, bin("+", unary("-", id("a")), id("b")), "-a + b\n")
	expectPrinted(t, unary("typeof", dot(id("a"), "b")), "typeof a.b\n")

	// Calls, "new", and tags bind tighter than prefix and postfix operators
	update := func() js_ast.Node { return &js_ast.UpdateExpression{Operator: "++", Argument: id("a")} }
	expectPrinted(t, call(unary("-", id("a"))), "(-a)()\n")
	expectPrinted(t, call(unary("typeof", id("a"))), "(typeof a)()\n")
	expectPrinted(t, call(update()), "(a++)()\n")
	expectPrinted(t, &js_ast.NewExpression{Callee: update()}, "new (a++)()\n")
	expectPrinted(t, &js_ast.NewExpression{Callee: unary("-", id("a"))}, "new (-a)()\n")
	expectPrinted(t, &js_ast.TaggedTemplateExpression{Tag: unary("-", id("a")), Quasi: template("x")}, "(-a)`x`\n")
	expectPrinted(t, &js_ast.TaggedTemplateExpression{Tag: update(), Quasi: template("x")}, "(a++)`x`\n")
	expectPrinted(t, call(id("f"), unary("-", id("a"))), "f(-a)\n")
}

func TestParensConditional(t *testing.T) {
	a, b, c, d := id("a"), id("b"), id("c"), id("d")

	expectPrinted(t, bin("+", cond(a, b, c), d), "(a ? b : c) + d\n")
	expectPrinted(t, cond(cond(a, b, c), d, a), "(a ? b : c) ? d : a\n")
	expectPrinted(t, cond(a, cond(b, c, d), a), "a ? b ? c : d : a\n")
	expectPrinted(t, cond(a, b, cond(c, d, a)), "a ? b : c ? d : a\n")
	expectPrinted(t, call(cond(a, b, c)), "(a ? b : c)()\n")
	expectPrinted(t, dot(cond(a, b, c), "d"), "(a ? b : c).d\n")
	expectPrinted(t, unary("!", cond(a, b, c)), "!(a ? b : c)\n")
	expectPrinted(t, arr(&js_ast.SpreadElement{Argument: cond(a, b, c)}), "[...(a ? b : c)]\n")
	expectPrinted(t, assign(d, cond(a, b, c)), "d = a ? b : c\n")

	expectPrinted(t, cond(assign(a, b), c, d), "(a = b) ? c : d\n")
	expectPrinted(t, bin("+", assign(a, b), c), "(a = b) + c\n")
	expectPrinted(t, assign(a, assign(b, c)), "a = b = c\n")
}

func TestParensArrow(t *testing.T) {
	f := arrow(nil, id("a"))

	expectPrinted(t, bin("||", f, id("b")), "(() => a) || b\n")
	expectPrinted(t, call(f), "(() => a)()\n")
	expectPrinted(t, dot(f, "b"), "(() => a).b\n")
	expectPrinted(t, cond(f, id("b"), id("c")), "(() => a) ? b : c\n")
	expectPrinted(t, unary("!", f), "!(() => a)\n")
	expectPrinted(t, cond(id("b"), f, f), "b ? () => a : () => a\n")
	expectPrinted(t, call(id("g"), f), "g(() => a)\n")
}

func TestParensFunctionExpression(t *testing.T) {
	expectPrinted(t, dot(fn(nil), "name"), "(function() {}).name\n")
	expectPrinted(t, call(fn(nil)), "(function() {})()\n")
	expectPrinted(t, &js_ast.TaggedTemplateExpression{Tag: fn(nil), Quasi: template("")}, "(function() {})``\n")
	expectPrinted(t, &js_ast.NewExpression{Callee: fn(nil)}, "new function() {}()\n")
	expectPrinted(t, call(id("f"), fn(nil)), "f(function() {})\n")
}

func TestParensIn(t *testing.T) {
	expectPrinted(t, varDecl("var", declarator("x", bin("in", id("a"), id("b")))), "var x = (a in b);\n")
	expectPrinted(t, &js_ast.ForStatement{Init: bin("in", id("a"), id("b")), Body: &js_ast.EmptyStatement{}}, "for ((a in b);;);\n")
	expectPrinted(t, assign(id("x"), bin("in", id("a"), id("b"))), "x = a in b\n")

	// Anywhere inside the initializer of a "for" loop
	forInit := func(init js_ast.Node) js_ast.Node {
		return &js_ast.ForStatement{Init: init, Body: &js_ast.EmptyStatement{}}
	}
	a, b := id("a"), id("b")
	expectPrinted(t, forInit(varDecl("var", declarator("x", cond(bin("in", a, b), num(1), num(2))))),
		"for (var x = (a in b) ? 1 : 2;;);\n")
	expectPrinted(t, forInit(assign(id("x"), bin("in", a, b))), "for (x = (a in b);;);\n")
	expectPrinted(t, forInit(call(id("f"), bin("in", a, b))), "for (f((a in b));;);\n")
	expectPrinted(t, forInit(arrow(nil, bin("in", a, b))), "for (() => (a in b);;);\n")

	// Function bodies inside the initializer can use "in" freely
	expectPrinted(t, forInit(assign(id("f"), fn(nil, &js_ast.ReturnStatement{Argument: bin("in", a, b)}))),
		"for (f = function() {\n  return a in b;\n};;);\n")

	// The test and update of the loop are not affected
	expectPrinted(t, &js_ast.ForStatement{Test: assign(id("x"), bin("in", a, b)), Body: &js_ast.EmptyStatement{}},
		"for (; x = a in b;);\n")
}

func TestParensClassHeritageAndDecorators(t *testing.T) {
	class := func(superClass js_ast.Node) js_ast.Node {
		return &js_ast.ClassDeclaration{Class: js_ast.Class{ID: id("A"), SuperClass: superClass, Body: &js_ast.ClassBody{}}}
	}
	expectPrinted(t, class(bin("||", id("a"), id("b"))), "class A extends (a || b) {}\n")
	expectPrinted(t, class(cond(id("a"), id("b"), id("c"))), "class A extends (a ? b : c) {}\n")
	expectPrinted(t, class(call(id("a"))), "class A extends a() {}\n")
	expectPrinted(t, class(dot(id("a"), "b")), "class A extends a.b {}\n")
	expectPrinted(t, class(arrow(nil, id("a"))), "class A extends (() => a) {}\n")

	decorated := func(expr js_ast.Node) js_ast.Node {
		return &js_ast.ClassDeclaration{Class: js_ast.Class{
			ID:         id("A"),
			Body:       &js_ast.ClassBody{},
			Decorators: []*js_ast.Decorator{{Expression: expr}},
		}}
	}
	expectPrinted(t, decorated(id("a")), "@a\nclass A {}\n")
	expectPrinted(t, decorated(dot(id("a"), "b")), "@a.b\nclass A {}\n")
	expectPrinted(t, decorated(call(id("a"))), "@a()\nclass A {}\n")
	expectPrinted(t, decorated(bin("+", id("a"), id("b"))), "@(a + b)\nclass A {}\n")
	expectPrinted(t, decorated(index(id("a"), id("b"))), "@a[b]\nclass A {}\n")
}
