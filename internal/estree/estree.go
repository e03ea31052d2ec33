package estree

// This decodes ESTree documents into "js_ast" trees. Documents may be written
// in YAML or JSON since JSON is valid YAML flow syntax. Each node remembers
// the line and column of its mapping in the document so errors found later
// on can point back at it.

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/jsgen-dev/jsgen/internal/js_ast"
	"gopkg.in/yaml.v3"
)

type DecodeError struct {
	// 1-based, or 0 if the error isn't tied to a position
	Line int

	// 0-based byte offset in the line
	Column int

	Text string
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Text)
	}
	return e.Text
}

// This is thrown through the recursive decoder and caught by "Decode"
type decodePanic struct {
	err *DecodeError
}

func Decode(contents []byte) (result js_ast.Node, err error) {
	var doc yaml.Node
	if yamlErr := yaml.Unmarshal(contents, &doc); yamlErr != nil {
		return nil, yamlError(yamlErr)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == 0 || root.Kind == yaml.DocumentNode {
		return nil, &DecodeError{Text: "Expected an ESTree node but found an empty document"}
	}

	defer func() {
		r := recover()
		if p, ok := r.(decodePanic); ok {
			result = nil
			err = p.err
		} else if r != nil {
			panic(r)
		}
	}()

	d := decoder{}
	result = d.decode(root)
	if result == nil {
		d.fail(root, "Expected an ESTree node but found null")
	}
	return
}

// Messages from the YAML parser look like "yaml: line 3: did not find
// expected key". The line is pulled out so it can be shown as a location.
func yamlError(err error) *DecodeError {
	text := strings.TrimPrefix(err.Error(), "yaml: ")
	if rest := strings.TrimPrefix(text, "line "); rest != text {
		if colon := strings.IndexByte(rest, ':'); colon > 0 {
			if line, atoiErr := strconv.Atoi(rest[:colon]); atoiErr == nil {
				return &DecodeError{Line: line, Text: strings.TrimSpace(rest[colon+1:])}
			}
		}
	}
	return &DecodeError{Text: text}
}

type decoder struct{}

func (d *decoder) fail(at *yaml.Node, format string, args ...interface{}) {
	err := &DecodeError{Text: fmt.Sprintf(format, args...)}
	if at != nil {
		err.Line = at.Line
		err.Column = at.Column - 1
	}
	panic(decodePanic{err})
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

// Aliases are resolved up front so the rest of the decoder never sees them
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

type object struct {
	d      *decoder
	at     *yaml.Node
	fields map[string]*yaml.Node
}

func (d *decoder) object(n *yaml.Node) object {
	if n.Kind != yaml.MappingNode {
		d.fail(n, "Expected an object but found %s", describe(n))
	}
	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		fields[n.Content[i].Value] = resolve(n.Content[i+1])
	}
	return object{d: d, at: n, fields: fields}
}

func describe(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "an object"
	case yaml.SequenceNode:
		return "an array"
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return "null"
		}
		return fmt.Sprintf("%q", n.Value)
	}
	return "an unexpected value"
}

// Returns the field or nil if it's missing or null
func (o object) field(key string) *yaml.Node {
	if n := o.fields[key]; !isNull(n) {
		return n
	}
	return nil
}

func (o object) scalar(key string) *yaml.Node {
	n := o.field(key)
	if n != nil && n.Kind != yaml.ScalarNode {
		o.d.fail(n, "Expected %q to be a scalar but found %s", key, describe(n))
	}
	return n
}

func (o object) str(key string) string {
	if n := o.scalar(key); n != nil {
		return n.Value
	}
	return ""
}

func (o object) boolean(key string) bool {
	n := o.scalar(key)
	if n == nil {
		return false
	}
	var value bool
	if err := n.Decode(&value); err != nil {
		o.d.fail(n, "Expected %q to be a boolean but found %s", key, describe(n))
	}
	return value
}

func (o object) node(key string) js_ast.Node {
	if n := o.field(key); n != nil {
		return o.d.decode(n)
	}
	return nil
}

// Null entries are kept as nil, which is how array holes are represented
func (o object) nodes(key string) []js_ast.Node {
	n := o.field(key)
	if n == nil {
		return nil
	}
	if n.Kind != yaml.SequenceNode {
		o.d.fail(n, "Expected %q to be an array but found %s", key, describe(n))
	}
	result := make([]js_ast.Node, len(n.Content))
	for i, item := range n.Content {
		if item = resolve(item); !isNull(item) {
			result[i] = o.d.decode(item)
		}
	}
	return result
}

func (o object) mismatch(key string, expected string, got js_ast.Node) {
	found := "null"
	if got != nil {
		found = got.Type().String()
		if opaque, ok := got.(*js_ast.Opaque); ok {
			found = opaque.TypeName
		}
	}
	o.d.fail(o.fields[key], "Expected %q to be %s but found %s", key, expected, found)
}

func (o object) ident(key string) *js_ast.Identifier {
	node := o.node(key)
	if node == nil {
		return nil
	}
	id, ok := node.(*js_ast.Identifier)
	if !ok {
		o.mismatch(key, "an Identifier", node)
	}
	return id
}

func (o object) block(key string) *js_ast.BlockStatement {
	node := o.node(key)
	if node == nil {
		return nil
	}
	block, ok := node.(*js_ast.BlockStatement)
	if !ok {
		o.mismatch(key, "a BlockStatement", node)
	}
	return block
}

func (o object) literal(key string) *js_ast.Literal {
	node := o.node(key)
	if node == nil {
		return nil
	}
	lit, ok := node.(*js_ast.Literal)
	if !ok {
		o.mismatch(key, "a Literal", node)
	}
	return lit
}

func (o object) decorators(key string) (result []*js_ast.Decorator) {
	for _, node := range o.nodes(key) {
		decorator, ok := node.(*js_ast.Decorator)
		if !ok {
			o.mismatch(key, "a list of Decorator nodes", node)
		}
		result = append(result, decorator)
	}
	return
}

func (o object) comments() []js_ast.Comment {
	n := o.field("leadingComments")
	if n == nil {
		return nil
	}
	if n.Kind != yaml.SequenceNode {
		o.d.fail(n, "Expected \"leadingComments\" to be an array but found %s", describe(n))
	}
	comments := make([]js_ast.Comment, 0, len(n.Content))
	for _, item := range n.Content {
		c := o.d.object(resolve(item))
		switch kind := c.str("type"); kind {
		case "Line", "CommentLine":
			comments = append(comments, js_ast.Comment{Text: c.str("value")})
		case "Block", "CommentBlock":
			comments = append(comments, js_ast.Comment{Text: c.str("value"), Block: true})
		default:
			o.d.fail(item, "Unknown comment type %q", kind)
		}
	}
	return comments
}

func (d *decoder) decode(n *yaml.Node) js_ast.Node {
	n = resolve(n)
	if isNull(n) {
		return nil
	}
	o := d.object(n)
	typeName := o.str("type")
	if typeName == "" {
		d.fail(n, "Missing \"type\" field")
	}

	// Some tools wrap the program in a "File" node
	if typeName == "File" {
		program := o.field("program")
		if program == nil {
			d.fail(n, "Missing \"program\" field")
		}
		return d.decode(program)
	}

	var result js_ast.Node
	if t, ok := js_ast.NodeTypeFromString(typeName); ok {
		result = d.decodeKnown(t, o)
	} else {
		result = &js_ast.Opaque{TypeName: typeName}
	}

	base := result.Base()
	base.Loc = js_ast.Loc{Line: int32(n.Line), Column: int32(n.Column - 1)}
	base.LeadingComments = o.comments()
	return result
}

func (d *decoder) decodeKnown(t js_ast.NodeType, o object) js_ast.Node {
	switch t {
	// Statements

	case js_ast.TypeProgram:
		return &js_ast.Program{Body: o.nodes("body"), SourceType: o.str("sourceType")}

	case js_ast.TypeExpressionStatement:
		return &js_ast.ExpressionStatement{Expression: o.node("expression"), Directive: o.str("directive")}

	case js_ast.TypeBlockStatement:
		return &js_ast.BlockStatement{Body: o.nodes("body")}

	case js_ast.TypeEmptyStatement:
		return &js_ast.EmptyStatement{}

	case js_ast.TypeDebuggerStatement:
		return &js_ast.DebuggerStatement{}

	case js_ast.TypeWithStatement:
		return &js_ast.WithStatement{Object: o.node("object"), Body: o.node("body")}

	case js_ast.TypeReturnStatement:
		return &js_ast.ReturnStatement{Argument: o.node("argument")}

	case js_ast.TypeLabeledStatement:
		return &js_ast.LabeledStatement{Label: o.ident("label"), Body: o.node("body")}

	case js_ast.TypeBreakStatement:
		return &js_ast.BreakStatement{Label: o.ident("label")}

	case js_ast.TypeContinueStatement:
		return &js_ast.ContinueStatement{Label: o.ident("label")}

	case js_ast.TypeIfStatement:
		return &js_ast.IfStatement{Test: o.node("test"), Consequent: o.node("consequent"), Alternate: o.node("alternate")}

	case js_ast.TypeSwitchStatement:
		s := &js_ast.SwitchStatement{Discriminant: o.node("discriminant")}
		for _, node := range o.nodes("cases") {
			c, ok := node.(*js_ast.SwitchCase)
			if !ok {
				o.mismatch("cases", "a list of SwitchCase nodes", node)
			}
			s.Cases = append(s.Cases, c)
		}
		return s

	case js_ast.TypeSwitchCase:
		return &js_ast.SwitchCase{Test: o.node("test"), Consequent: o.nodes("consequent")}

	case js_ast.TypeThrowStatement:
		return &js_ast.ThrowStatement{Argument: o.node("argument")}

	case js_ast.TypeTryStatement:
		s := &js_ast.TryStatement{Block: o.block("block"), Finalizer: o.block("finalizer")}
		if handler := o.node("handler"); handler != nil {
			c, ok := handler.(*js_ast.CatchClause)
			if !ok {
				o.mismatch("handler", "a CatchClause", handler)
			}
			s.Handler = c
		}
		return s

	case js_ast.TypeCatchClause:
		return &js_ast.CatchClause{Param: o.node("param"), Body: o.block("body")}

	case js_ast.TypeWhileStatement:
		return &js_ast.WhileStatement{Test: o.node("test"), Body: o.node("body")}

	case js_ast.TypeDoWhileStatement:
		return &js_ast.DoWhileStatement{Body: o.node("body"), Test: o.node("test")}

	case js_ast.TypeForStatement:
		return &js_ast.ForStatement{Init: o.node("init"), Test: o.node("test"), Update: o.node("update"), Body: o.node("body")}

	case js_ast.TypeForInStatement:
		return &js_ast.ForInStatement{Left: o.node("left"), Right: o.node("right"), Body: o.node("body")}

	case js_ast.TypeForOfStatement:
		return &js_ast.ForOfStatement{Left: o.node("left"), Right: o.node("right"), Body: o.node("body"), Await: o.boolean("await")}

	// Declarations

	case js_ast.TypeFunctionDeclaration:
		return &js_ast.FunctionDeclaration{Fn: o.fn()}

	case js_ast.TypeVariableDeclaration:
		s := &js_ast.VariableDeclaration{Kind: o.str("kind")}
		for _, node := range o.nodes("declarations") {
			decl, ok := node.(*js_ast.VariableDeclarator)
			if !ok {
				o.mismatch("declarations", "a list of VariableDeclarator nodes", node)
			}
			s.Declarations = append(s.Declarations, decl)
		}
		if s.Kind == "" {
			s.Kind = "var"
		}
		return s

	case js_ast.TypeVariableDeclarator:
		return &js_ast.VariableDeclarator{ID: o.node("id"), Init: o.node("init")}

	case js_ast.TypeClassDeclaration:
		return &js_ast.ClassDeclaration{Class: o.class()}

	case js_ast.TypeClassExpression:
		return &js_ast.ClassExpression{Class: o.class()}

	case js_ast.TypeClassBody:
		return &js_ast.ClassBody{Body: o.nodes("body")}

	case js_ast.TypeMethodDefinition:
		m := &js_ast.MethodDefinition{
			Key:        o.node("key"),
			Decorators: o.decorators("decorators"),
			Kind:       o.str("kind"),
			Computed:   o.boolean("computed"),
			Static:     o.boolean("static"),
		}
		if value := o.node("value"); value != nil {
			fn, ok := value.(*js_ast.FunctionExpression)
			if !ok {
				o.mismatch("value", "a FunctionExpression", value)
			}
			m.Value = fn
		}
		return m

	case js_ast.TypeDecorator:
		return &js_ast.Decorator{Expression: o.node("expression")}

	// Expressions

	case js_ast.TypeThisExpression:
		return &js_ast.ThisExpression{}

	case js_ast.TypeSuper:
		return &js_ast.Super{}

	case js_ast.TypeArrayExpression:
		return &js_ast.ArrayExpression{Elements: o.nodes("elements")}

	case js_ast.TypeArrayPattern:
		return &js_ast.ArrayPattern{Elements: o.nodes("elements")}

	case js_ast.TypeObjectExpression:
		return &js_ast.ObjectExpression{Properties: o.nodes("properties")}

	case js_ast.TypeObjectPattern:
		return &js_ast.ObjectPattern{Properties: o.nodes("properties")}

	case js_ast.TypeProperty:
		kind := o.str("kind")
		if kind == "" {
			kind = "init"
		}
		return &js_ast.Property{
			Key:        o.node("key"),
			Value:      o.node("value"),
			Decorators: o.decorators("decorators"),
			Kind:       kind,
			Method:     o.boolean("method"),
			Shorthand:  o.boolean("shorthand"),
			Computed:   o.boolean("computed"),
		}

	case js_ast.TypeFunctionExpression:
		return &js_ast.FunctionExpression{Fn: o.fn()}

	case js_ast.TypeArrowFunctionExpression:
		body := o.node("body")
		_, isBlock := body.(*js_ast.BlockStatement)
		return &js_ast.ArrowFunctionExpression{
			Params:     o.nodes("params"),
			Body:       body,
			Expression: body != nil && !isBlock,
			Async:      o.boolean("async"),
		}

	case js_ast.TypeUnaryExpression:
		prefix := true
		if o.field("prefix") != nil {
			prefix = o.boolean("prefix")
		}
		return &js_ast.UnaryExpression{Operator: o.operator(), Argument: o.node("argument"), Prefix: prefix}

	case js_ast.TypeUpdateExpression:
		return &js_ast.UpdateExpression{Operator: o.operator(), Argument: o.node("argument"), Prefix: o.boolean("prefix")}

	case js_ast.TypeBinaryExpression:
		return &js_ast.BinaryExpression{Operator: o.operator(), Left: o.node("left"), Right: o.node("right")}

	case js_ast.TypeLogicalExpression:
		return &js_ast.LogicalExpression{Operator: o.operator(), Left: o.node("left"), Right: o.node("right")}

	case js_ast.TypeAssignmentExpression:
		return &js_ast.AssignmentExpression{Operator: o.operator(), Left: o.node("left"), Right: o.node("right")}

	case js_ast.TypeAssignmentPattern:
		return &js_ast.AssignmentPattern{Left: o.node("left"), Right: o.node("right")}

	case js_ast.TypeConditionalExpression:
		return &js_ast.ConditionalExpression{Test: o.node("test"), Consequent: o.node("consequent"), Alternate: o.node("alternate")}

	case js_ast.TypeCallExpression:
		return &js_ast.CallExpression{Callee: o.node("callee"), Arguments: o.nodes("arguments")}

	case js_ast.TypeNewExpression:
		return &js_ast.NewExpression{Callee: o.node("callee"), Arguments: o.nodes("arguments")}

	case js_ast.TypeMemberExpression:
		return &js_ast.MemberExpression{Object: o.node("object"), Property: o.node("property"), Computed: o.boolean("computed")}

	case js_ast.TypeSequenceExpression:
		return &js_ast.SequenceExpression{Expressions: o.nodes("expressions")}

	case js_ast.TypeYieldExpression:
		return &js_ast.YieldExpression{Argument: o.node("argument"), Delegate: o.boolean("delegate")}

	case js_ast.TypeAwaitExpression:
		return &js_ast.AwaitExpression{Argument: o.node("argument")}

	case js_ast.TypeTemplateLiteral:
		e := &js_ast.TemplateLiteral{Expressions: o.nodes("expressions")}
		for _, node := range o.nodes("quasis") {
			quasi, ok := node.(*js_ast.TemplateElement)
			if !ok {
				o.mismatch("quasis", "a list of TemplateElement nodes", node)
			}
			e.Quasis = append(e.Quasis, quasi)
		}
		if len(e.Quasis) != len(e.Expressions)+1 {
			d.fail(o.at, "Expected %d template quasis but found %d", len(e.Expressions)+1, len(e.Quasis))
		}
		return e

	case js_ast.TypeTaggedTemplateExpression:
		e := &js_ast.TaggedTemplateExpression{Tag: o.node("tag")}
		if quasi := o.node("quasi"); quasi != nil {
			template, ok := quasi.(*js_ast.TemplateLiteral)
			if !ok {
				o.mismatch("quasi", "a TemplateLiteral", quasi)
			}
			e.Quasi = template
		}
		return e

	case js_ast.TypeTemplateElement:
		e := &js_ast.TemplateElement{Tail: o.boolean("tail")}
		if value := o.field("value"); value != nil {
			v := d.object(value)
			e.Raw = v.str("raw")
			e.Cooked = v.str("cooked")
		}
		return e

	case js_ast.TypeRestElement:
		return &js_ast.RestElement{Argument: o.node("argument")}

	case js_ast.TypeSpreadElement:
		return &js_ast.SpreadElement{Argument: o.node("argument")}

	case js_ast.TypeSpreadProperty:
		return &js_ast.SpreadProperty{Argument: o.node("argument")}

	case js_ast.TypeIdentifier:
		name := o.str("name")
		if !js_ast.IsIdentifier(name) {
			d.fail(o.at, "Invalid identifier name %q", name)
		}
		return &js_ast.Identifier{Name: name}

	case js_ast.TypeLiteral:
		return o.literalNode()

	case js_ast.TypeMetaProperty:
		return &js_ast.MetaProperty{Meta: o.ident("meta"), Property: o.ident("property")}

	// Modules

	case js_ast.TypeImportDeclaration:
		return &js_ast.ImportDeclaration{Specifiers: o.nodes("specifiers"), Source: o.literal("source")}

	case js_ast.TypeImportSpecifier:
		return &js_ast.ImportSpecifier{Imported: o.ident("imported"), Local: o.ident("local")}

	case js_ast.TypeImportDefaultSpecifier:
		return &js_ast.ImportDefaultSpecifier{Local: o.ident("local")}

	case js_ast.TypeImportNamespaceSpecifier:
		return &js_ast.ImportNamespaceSpecifier{Local: o.ident("local")}

	case js_ast.TypeExportNamedDeclaration:
		s := &js_ast.ExportNamedDeclaration{Declaration: o.node("declaration"), Source: o.literal("source")}
		for _, node := range o.nodes("specifiers") {
			spec, ok := node.(*js_ast.ExportSpecifier)
			if !ok {
				o.mismatch("specifiers", "a list of ExportSpecifier nodes", node)
			}
			s.Specifiers = append(s.Specifiers, spec)
		}
		return s

	case js_ast.TypeExportDefaultDeclaration:
		return &js_ast.ExportDefaultDeclaration{Declaration: o.node("declaration")}

	case js_ast.TypeExportAllDeclaration:
		return &js_ast.ExportAllDeclaration{Exported: o.ident("exported"), Source: o.literal("source")}

	case js_ast.TypeExportSpecifier:
		return &js_ast.ExportSpecifier{Local: o.ident("local"), Exported: o.ident("exported")}
	}

	panic(fmt.Sprintf("Internal error: no decoder for node type %q", t.String()))
}

func (o object) operator() string {
	op := o.str("operator")
	if op == "" {
		o.d.fail(o.at, "Missing \"operator\" field")
	}
	return op
}

func (o object) fn() js_ast.Fn {
	return js_ast.Fn{
		ID:        o.ident("id"),
		Params:    o.nodes("params"),
		Body:      o.block("body"),
		Generator: o.boolean("generator"),
		Async:     o.boolean("async"),
	}
}

func (o object) class() js_ast.Class {
	c := js_ast.Class{
		ID:         o.ident("id"),
		SuperClass: o.node("superClass"),
		Decorators: o.decorators("decorators"),
	}
	if body := o.node("body"); body != nil {
		classBody, ok := body.(*js_ast.ClassBody)
		if !ok {
			o.mismatch("body", "a ClassBody", body)
		}
		c.Body = classBody
	}
	return c
}

func (o object) literalNode() *js_ast.Literal {
	lit := &js_ast.Literal{Raw: o.str("raw"), BigInt: o.str("bigint")}

	if regex := o.field("regex"); regex != nil {
		r := o.d.object(regex)
		lit.Regex = &js_ast.RegExp{Pattern: r.str("pattern"), Flags: r.str("flags")}
		return lit
	}
	if lit.BigInt != "" {
		return lit
	}

	value := o.field("value")

	// "JSON.stringify" writes Infinity and NaN as null, but "raw" still
	// holds the number
	if value == nil {
		if f, ok := parseNumberText(lit.Raw); ok {
			lit.Value = f
		}
		return lit
	}
	if value.Kind != yaml.ScalarNode {
		o.d.fail(value, "Expected a literal value but found %s", describe(value))
	}

	switch value.Tag {
	case "!!bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			o.d.fail(value, "Invalid boolean %q", value.Value)
		}
		lit.Value = b

	case "!!int", "!!float":
		var f float64
		if err := value.Decode(&f); err != nil {
			parsed, ok := parseNumberText(value.Value)
			if !ok {
				o.d.fail(value, "Invalid number %q", value.Value)
			}
			f = parsed
		}
		lit.Value = f

	case "!!str":
		// Numbers out of float64 range such as "1e400" resolve to strings
		if value.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle|yaml.LiteralStyle|yaml.FoldedStyle) == 0 {
			if f, ok := parseNumberText(value.Value); ok {
				lit.Value = f
				break
			}
		}
		lit.Value = value.Value

	default:
		lit.Value = value.Value
	}
	return lit
}

// Parses the text of a JavaScript numeric literal, optionally signed.
// Values too large for a float64 become infinite.
func parseNumberText(text string) (float64, bool) {
	digits := strings.ReplaceAll(text, "_", "")
	sign := 1.0
	if strings.HasPrefix(digits, "-") {
		sign = -1
		digits = digits[1:]
	} else if strings.HasPrefix(digits, "+") {
		digits = digits[1:]
	}
	if digits == "" || !(digits[0] >= '0' && digits[0] <= '9' || digits[0] == '.') {
		return 0, false
	}

	if len(digits) > 2 && digits[0] == '0' && strings.ContainsRune("xXoObB", rune(digits[1])) {
		i, ok := new(big.Int).SetString(digits, 0)
		if !ok {
			return 0, false
		}
		f, _ := new(big.Float).SetInt(i).Float64()
		return sign * f, true
	}

	f, err := strconv.ParseFloat(digits, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return sign * f, true
}
