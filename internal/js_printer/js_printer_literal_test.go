package js_printer

import (
	"math"
	"testing"

	"github.com/jsgen-dev/jsgen/internal/js_ast"
	"github.com/jsgen-dev/jsgen/internal/test"
)

func TestStringLiterals(t *testing.T) {
	expectPrinted(t, str(""), "\"\"\n")
	expectPrinted(t, str("abc"), "\"abc\"\n")
	expectPrinted(t, str("a\"b'c"), "\"a\\\"b'c\"\n")
	expectPrinted(t, str("a\nb"), "\"a\\u000ab\"\n")
	expectPrinted(t, str("\u2028"), "\"\\u2028\"\n")
	expectPrinted(t, str("\x01\t"), "\"\\u0001\\t\"\n")
	expectPrinted(t, str("\\"), "\"\\\\\"\n")
	expectPrinted(t, str("😀"), "\"😀\"\n")

	expectPrintedSingleQuotes(t, str("abc"), "'abc'\n")
	expectPrintedSingleQuotes(t, str("a\"b'c"), "'a\"b\\'c'\n")
	expectPrintedSingleQuotes(t, str("a\nb"), "'a\\u000ab'\n")
	expectPrintedSingleQuotes(t, prog(stmt(str("use strict"))), "'use strict';\n")

	// Keys and module sources use the same quotes
	expectPrintedSingleQuotes(t, obj(prop(str("a-b"), num(1))), "{ 'a-b': 1 }\n")
	expectPrintedSingleQuotes(t, &js_ast.ImportDeclaration{Source: str("x")}, "import 'x';\n")
}

func TestNumberLiterals(t *testing.T) {
	expectPrinted(t, num(0), "0\n")
	expectPrinted(t, num(123.5), "123.5\n")
	expectPrinted(t, num(1e21), "1e+21\n")
	expectPrinted(t, num(1e-7), "1e-7\n")
	expectPrinted(t, num(0.000001), "0.000001\n")
	expectPrinted(t, num(math.NaN()), "NaN\n")
	expectPrinted(t, num(math.Inf(1)), "Infinity\n")

	// The original text wins when it still means the same number
	expectPrinted(t, numRaw(5, "5.0"), "5.0\n")
	expectPrinted(t, numRaw(0.5, ".5"), ".5\n")
	expectPrinted(t, numRaw(100, "1e2"), "1e2\n")
	expectPrinted(t, numRaw(100, "1E+2"), "1E+2\n")
	expectPrinted(t, numRaw(1, ""), "1\n")

	// Otherwise the value decides
	expectPrinted(t, numRaw(2, "1"), "2\n")
	expectPrinted(t, numRaw(1, "1."), "1\n")
	expectPrinted(t, numRaw(255, "0xff"), "255\n")
	expectPrinted(t, numRaw(255, "0XFF"), "255\n")
	expectPrinted(t, numRaw(8, "0o10"), "8\n")
	expectPrinted(t, numRaw(5, "0b101"), "5\n")
	expectPrinted(t, numRaw(1000, "1_000"), "1000\n")
	expectPrinted(t, numRaw(8, "010"), "8\n")
	expectPrinted(t, numRaw(1, "one"), "1\n")
	expectPrinted(t, numRaw(math.Inf(1), "1e400"), "1e400\n")
	expectPrinted(t, numRaw(0, "1e-400"), "1e-400\n")

	// Any Go number type is accepted
	expectPrinted(t, &js_ast.Literal{Value: 3}, "3\n")
	expectPrinted(t, &js_ast.Literal{Value: int64(-2)}, "-2\n")
	expectPrinted(t, &js_ast.Literal{Value: uint8(7)}, "7\n")
	expectPrinted(t, &js_ast.Literal{Value: float32(0.5)}, "0.5\n")
}

func TestNumberMemberAccess(t *testing.T) {
	expectPrinted(t, call(dot(num(5), "toString")), "5..toString()\n")
	expectPrinted(t, dot(numRaw(5, "5.0"), "x"), "5.0.x\n")
	expectPrinted(t, dot(num(1.5), "x"), "1.5.x\n")
	expectPrinted(t, dot(num(1e21), "x"), "1e+21.x\n")
	expectPrinted(t, dot(numRaw(100, "1e2"), "x"), "1e2.x\n")
	expectPrinted(t, dot(numRaw(255, "0xff"), "x"), "255..x\n")
	expectPrinted(t, index(num(5), id("x")), "5[x]\n")

	// Only the object of the member expression is affected
	expectPrinted(t, index(id("a"), num(5)), "a[5]\n")
	expectPrinted(t, call(id("f"), num(5)), "f(5)\n")
}

func TestNegativeNumbers(t *testing.T) {
	expectPrinted(t, num(-1), "-1\n")
	expectPrinted(t, unary("-", num(-1)), "- -1\n")
	expectPrinted(t, unary("+", num(-1)), "+-1\n")
	expectPrinted(t, unary("-", num(1)), "-1\n")
	expectPrinted(t, bin("-", id("a"), num(-1)), "a - -1\n")

	expectPrinted(t, bin("**", num(-1), num(2)), "(-1) ** 2\n")
	expectPrinted(t, bin("**", num(2), num(-1)), "2 ** -1\n")
	expectPrinted(t, dot(num(-1), "x"), "(-1).x\n")
	expectPrinted(t, dot(num(-1.5), "x"), "(-1.5).x\n")
	expectPrinted(t, index(num(-1), id("x")), "(-1)[x]\n")
	expectPrinted(t, dot(num(math.Inf(-1)), "x"), "(-Infinity).x\n")
	expectPrinted(t, call(num(-1)), "(-1)()\n")

	// Negative zero prints as "0"
	expectPrinted(t, dot(num(math.Copysign(0, -1)), "x"), "0..x\n")
}

func TestOtherLiterals(t *testing.T) {
	expectPrinted(t, &js_ast.Literal{Value: true}, "true\n")
	expectPrinted(t, &js_ast.Literal{Value: false}, "false\n")
	expectPrinted(t, &js_ast.Literal{}, "null\n")
	expectPrinted(t, &js_ast.Literal{Regex: &js_ast.RegExp{Pattern: "a+", Flags: "gi"}}, "/a+/gi\n")
	expectPrinted(t, &js_ast.Literal{Regex: &js_ast.RegExp{Pattern: "[/]"}}, "/[/]/\n")
	expectPrinted(t, dot(&js_ast.Literal{Regex: &js_ast.RegExp{Pattern: "a"}}, "test"), "/a/.test\n")

	expectPrinted(t, &js_ast.Literal{BigInt: "10"}, "10n\n")
	expectPrinted(t, &js_ast.Literal{BigInt: "0x10"}, "16n\n")
	expectPrinted(t, &js_ast.Literal{BigInt: "0b11"}, "3n\n")
	expectPrinted(t, &js_ast.Literal{BigInt: "1_000"}, "1000n\n")
	expectPrinted(t, &js_ast.Literal{BigInt: "123456789012345678901234567890"}, "123456789012345678901234567890n\n")
	expectPrinted(t, dot(&js_ast.Literal{BigInt: "1"}, "x"), "1n.x\n")

	// A value that JavaScript source can't express prints nothing
	expectPrinted(t, prog(stmt(bin("+", id("a"), &js_ast.Literal{Value: []int{1}}))), "a + ;\n")
}

func TestNumberText(t *testing.T) {
	test.AssertEqual(t, isDecimalLiteral("1"), true)
	test.AssertEqual(t, isDecimalLiteral("1.5"), true)
	test.AssertEqual(t, isDecimalLiteral(".5"), true)
	test.AssertEqual(t, isDecimalLiteral("1."), true)
	test.AssertEqual(t, isDecimalLiteral("1e10"), true)
	test.AssertEqual(t, isDecimalLiteral("1.5E-3"), true)
	test.AssertEqual(t, isDecimalLiteral(""), false)
	test.AssertEqual(t, isDecimalLiteral("."), false)
	test.AssertEqual(t, isDecimalLiteral("e5"), false)
	test.AssertEqual(t, isDecimalLiteral("1e"), false)
	test.AssertEqual(t, isDecimalLiteral("1e+"), false)
	test.AssertEqual(t, isDecimalLiteral("0x1"), false)
	test.AssertEqual(t, isDecimalLiteral("1_0"), false)
	test.AssertEqual(t, isDecimalLiteral("-1"), false)

	test.AssertEqual(t, isIntegerText("0"), true)
	test.AssertEqual(t, isIntegerText("-12"), true)
	test.AssertEqual(t, isIntegerText("-"), false)
	test.AssertEqual(t, isIntegerText("1.0"), false)
	test.AssertEqual(t, isIntegerText("1e+21"), false)
	test.AssertEqual(t, isIntegerText("NaN"), false)
}
