package estree

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jsgen-dev/jsgen/internal/js_ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Locations are checked separately
var ignoreLoc = cmpopts.IgnoreTypes(js_ast.Loc{})

func expectDecoded(t *testing.T, contents string, expected js_ast.Node) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		node, err := Decode([]byte(contents))
		require.NoError(t, err)
		if diff := cmp.Diff(expected, node, ignoreLoc); diff != "" {
			t.Fatalf("decoded tree mismatch (-expected +actual):\n%s", diff)
		}
	})
}

func expectDecodeError(t *testing.T, contents string, expected string) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		_, err := Decode([]byte(contents))
		require.Error(t, err)
		assert.Equal(t, expected, err.Error())

		var decodeErr *DecodeError
		assert.True(t, errors.As(err, &decodeErr))
	})
}

func id(name string) *js_ast.Identifier {
	return &js_ast.Identifier{Name: name}
}

func TestDecodeJSON(t *testing.T) {
	expectDecoded(t,
		`{"type": "Program", "sourceType": "script", "body": [
  {"type": "ExpressionStatement", "expression":
    {"type": "CallExpression", "callee": {"type": "Identifier", "name": "foo"},
     "arguments": [{"type": "Literal", "value": 1, "raw": "1"}]}}]}`,
		&js_ast.Program{SourceType: "script", Body: []js_ast.Node{
			&js_ast.ExpressionStatement{Expression: &js_ast.CallExpression{
				Callee:    id("foo"),
				Arguments: []js_ast.Node{&js_ast.Literal{Value: 1.0, Raw: "1"}},
			}},
		}})
}

func TestDecodeYAML(t *testing.T) {
	expectDecoded(t, `
type: VariableDeclaration
kind: const
declarations:
  - type: VariableDeclarator
    id: {type: Identifier, name: a}
    init: {type: Literal, value: "x"}
`,
		&js_ast.VariableDeclaration{Kind: "const", Declarations: []*js_ast.VariableDeclarator{
			{ID: id("a"), Init: &js_ast.Literal{Value: "x"}},
		}})
}

func TestDecodeFileWrapper(t *testing.T) {
	expectDecoded(t, `{type: File, program: {type: Program, body: []}}`,
		&js_ast.Program{Body: []js_ast.Node{}})
}

func TestDecodeLiterals(t *testing.T) {
	expectDecoded(t, `{type: Literal, value: null}`, &js_ast.Literal{})
	expectDecoded(t, `{type: Literal, value: true}`, &js_ast.Literal{Value: true})
	expectDecoded(t, `{type: Literal, value: 0.5, raw: ".5"}`, &js_ast.Literal{Value: 0.5, Raw: ".5"})
	expectDecoded(t, `{type: Literal, value: 0x10, raw: "0x10"}`, &js_ast.Literal{Value: 16.0, Raw: "0x10"})
	expectDecoded(t, `{type: Literal, value: "5"}`, &js_ast.Literal{Value: "5"})
	expectDecoded(t, `{type: Literal, value: {}, regex: {pattern: "a+", flags: g}}`,
		&js_ast.Literal{Regex: &js_ast.RegExp{Pattern: "a+", Flags: "g"}})
	expectDecoded(t, `{type: Literal, value: null, bigint: "10"}`, &js_ast.Literal{BigInt: "10"})

	// Numbers beyond float64 are infinite, not strings
	expectDecoded(t, `{"type": "Literal", "value": 1e400, "raw": "1e400"}`, &js_ast.Literal{Value: math.Inf(1), Raw: "1e400"})
	expectDecoded(t, `{type: Literal, value: -1e400}`, &js_ast.Literal{Value: math.Inf(-1)})
	expectDecoded(t, `{type: Literal, value: "1e400"}`, &js_ast.Literal{Value: "1e400"})
	expectDecoded(t, `{type: Literal, value: abc}`, &js_ast.Literal{Value: "abc"})

	// "JSON.stringify" turns Infinity into null, so the number comes from "raw"
	expectDecoded(t, `{"type": "Literal", "value": null, "raw": "1e400"}`, &js_ast.Literal{Value: math.Inf(1), Raw: "1e400"})
	expectDecoded(t, `{"type": "Literal", "value": null, "raw": "0x1_0"}`, &js_ast.Literal{Value: 16.0, Raw: "0x1_0"})
	expectDecoded(t, `{"type": "Literal", "value": null, "raw": "null"}`, &js_ast.Literal{Raw: "null"})
}

func TestDecodeHoles(t *testing.T) {
	expectDecoded(t, `{type: ArrayExpression, elements: [{type: Identifier, name: a}, null, null]}`,
		&js_ast.ArrayExpression{Elements: []js_ast.Node{id("a"), nil, nil}})
}

func TestDecodeDefaults(t *testing.T) {
	// "prefix" defaults to true for unary expressions and "kind" to "init"
	expectDecoded(t, `{type: UnaryExpression, operator: "!", argument: {type: Identifier, name: a}}`,
		&js_ast.UnaryExpression{Operator: "!", Argument: id("a"), Prefix: true})
	expectDecoded(t, `{type: Property, key: {type: Identifier, name: a}, value: {type: Identifier, name: a}}`,
		&js_ast.Property{Key: id("a"), Value: id("a"), Kind: "init"})

	// An arrow function's "expression" flag follows from its body
	expectDecoded(t, `{type: ArrowFunctionExpression, params: [], body: {type: Identifier, name: a}}`,
		&js_ast.ArrowFunctionExpression{Params: []js_ast.Node{}, Body: id("a"), Expression: true})
	expectDecoded(t, `{type: ArrowFunctionExpression, params: [], body: {type: BlockStatement, body: []}}`,
		&js_ast.ArrowFunctionExpression{Params: []js_ast.Node{}, Body: &js_ast.BlockStatement{Body: []js_ast.Node{}}})
}

func TestDecodeComments(t *testing.T) {
	expectDecoded(t, `
type: ReturnStatement
leadingComments:
  - {type: CommentLine, value: " a"}
  - {type: Block, value: "b"}
argument: null
`,
		&js_ast.ReturnStatement{NodeBase: js_ast.NodeBase{LeadingComments: []js_ast.Comment{
			{Text: " a"},
			{Text: "b", Block: true},
		}}})
}

func TestDecodeTemplate(t *testing.T) {
	expectDecoded(t, `
type: TemplateLiteral
quasis:
  - {type: TemplateElement, value: {raw: "a", cooked: "a"}, tail: false}
  - {type: TemplateElement, value: {raw: "b\\n", cooked: "b\n"}, tail: true}
expressions:
  - {type: Identifier, name: x}
`,
		&js_ast.TemplateLiteral{
			Quasis: []*js_ast.TemplateElement{
				{Raw: "a", Cooked: "a"},
				{Raw: "b\\n", Cooked: "b\n", Tail: true},
			},
			Expressions: []js_ast.Node{id("x")},
		})
}

func TestDecodeUnknownType(t *testing.T) {
	expectDecoded(t, `{type: JSXElement}`, &js_ast.Opaque{TypeName: "JSXElement"})
}

func TestDecodeLocations(t *testing.T) {
	node, err := Decode([]byte("type: ExpressionStatement\nexpression:\n  type: Identifier\n  name: a\n"))
	require.NoError(t, err)
	assert.Equal(t, js_ast.Loc{Line: 1, Column: 0}, node.Base().Loc)
	assert.Equal(t, js_ast.Loc{Line: 3, Column: 2}, node.(*js_ast.ExpressionStatement).Expression.Base().Loc)
}

func TestDecodeErrors(t *testing.T) {
	expectDecodeError(t, ``, "Expected an ESTree node but found an empty document")
	expectDecodeError(t, `null`, "1:0: Expected an ESTree node but found null")
	expectDecodeError(t, `[1]`, "1:0: Expected an object but found an array")
	expectDecodeError(t, `{name: a}`, "1:0: Missing \"type\" field")
	expectDecodeError(t, `{type: Identifier, name: "a b"}`, "1:0: Invalid identifier name \"a b\"")
	expectDecodeError(t, `{type: BinaryExpression, left: null, right: null}`, "1:0: Missing \"operator\" field")
	expectDecodeError(t, `{type: BreakStatement, label: {type: ThisExpression}}`,
		"1:30: Expected \"label\" to be an Identifier but found ThisExpression")
	expectDecodeError(t, `{type: ForOfStatement, await: 3}`,
		"1:30: Expected \"await\" to be a boolean but found \"3\"")
	expectDecodeError(t, `{type: TemplateLiteral, quasis: [], expressions: []}`,
		"1:0: Expected 1 template quasis but found 0")
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode([]byte("type: Program\nbody: [\n"))
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.NotEmpty(t, decodeErr.Text)
	assert.NotContains(t, decodeErr.Text, "yaml: ")
}

func TestParseNumberText(t *testing.T) {
	for text, expected := range map[string]float64{
		"0":      0,
		"1.5":    1.5,
		".5":     0.5,
		"1_000":  1000,
		"-2":     -2,
		"0xff":   255,
		"0B11":   3,
		"0o10":   8,
		"1e400":  math.Inf(1),
		"-1e400": math.Inf(-1),
		"1e-400": 0,
	} {
		value, ok := parseNumberText(text)
		assert.True(t, ok, text)
		assert.Equal(t, expected, value, text)
	}

	for _, text := range []string{"", "-", "abc", "Infinity", "NaN", "0xg", "1.2.3", "null"} {
		_, ok := parseNumberText(text)
		assert.False(t, ok, text)
	}
}
