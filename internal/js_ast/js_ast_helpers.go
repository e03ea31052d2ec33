package js_ast

// Binary operator precedence, lowest first. "??" sits below "||" because it
// may not be mixed with "||" or "&&" without parentheses at all.
type L int

// https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Operators/Operator_Precedence
const (
	LLowest L = iota
	LNullishCoalescing
	LLogicalOr
	LLogicalAnd
	LBitwiseOr
	LBitwiseXor
	LBitwiseAnd
	LEquals
	LCompare
	LShift
	LAdd
	LMultiply
	LExponentiation
)

type OpInfo struct {
	Level     L
	IsKeyword bool
}

// If you add a new operator, remember to add it to the lexer of whatever
// produces the trees too
var BinaryOpTable = map[string]OpInfo{
	"??": {LNullishCoalescing, false},
	"||": {LLogicalOr, false},
	"&&": {LLogicalAnd, false},
	"|":  {LBitwiseOr, false},
	"^":  {LBitwiseXor, false},
	"&":  {LBitwiseAnd, false},

	"==":  {LEquals, false},
	"!=":  {LEquals, false},
	"===": {LEquals, false},
	"!==": {LEquals, false},

	"<":          {LCompare, false},
	"<=":         {LCompare, false},
	">":          {LCompare, false},
	">=":         {LCompare, false},
	"in":         {LCompare, true},
	"instanceof": {LCompare, true},

	"<<":  {LShift, false},
	">>":  {LShift, false},
	">>>": {LShift, false},

	"+": {LAdd, false},
	"-": {LAdd, false},

	"*": {LMultiply, false},
	"/": {LMultiply, false},
	"%": {LMultiply, false},

	"**": {LExponentiation, false}, // Right-associative
}

// Returns the operator of a "BinaryExpression" or "LogicalExpression" and
// whether the node was one of them
func BinaryOperator(node Node) (string, bool) {
	switch n := node.(type) {
	case *BinaryExpression:
		return n.Operator, true
	case *LogicalExpression:
		return n.Operator, true
	}
	return "", false
}

func IsUnaryKeyword(op string) bool {
	return op == "typeof" || op == "void" || op == "delete"
}

// Aliases. Each one names a group of node types that share behavior in the
// printer's decision tables.

func IsBinary(node Node) bool {
	_, ok := BinaryOperator(node)
	return ok
}

func IsUnaryLike(node Node) bool {
	switch node.(type) {
	case *UnaryExpression, *SpreadElement, *SpreadProperty:
		return true
	}
	return false
}

func IsFunction(node Node) bool {
	switch node.(type) {
	case *FunctionDeclaration, *FunctionExpression, *ArrowFunctionExpression:
		return true
	}
	return false
}

func IsClass(node Node) bool {
	switch node.(type) {
	case *ClassDeclaration, *ClassExpression:
		return true
	}
	return false
}

func IsFor(node Node) bool {
	switch node.(type) {
	case *ForStatement, *ForInStatement, *ForOfStatement:
		return true
	}
	return false
}

func IsLoop(node Node) bool {
	switch node.(type) {
	case *WhileStatement, *DoWhileStatement:
		return true
	}
	return IsFor(node)
}

// A line break directly after these is unsafe because of automatic semicolon
// insertion. Arrow functions are handled separately since only their body
// position is affected.
func IsTerminatorless(node Node) bool {
	switch node.(type) {
	case *ReturnStatement, *ThrowStatement, *BreakStatement, *ContinueStatement,
		*YieldExpression, *AwaitExpression:
		return true
	}
	return false
}

func IsStatement(node Node) bool {
	switch node.(type) {
	case *ExpressionStatement, *BlockStatement, *EmptyStatement, *DebuggerStatement,
		*WithStatement, *ReturnStatement, *LabeledStatement, *BreakStatement,
		*ContinueStatement, *IfStatement, *SwitchStatement, *ThrowStatement,
		*TryStatement, *WhileStatement, *DoWhileStatement, *ForStatement,
		*ForInStatement, *ForOfStatement, *FunctionDeclaration,
		*VariableDeclaration, *ClassDeclaration, *ImportDeclaration,
		*ExportNamedDeclaration, *ExportDefaultDeclaration, *ExportAllDeclaration:
		return true
	}
	return false
}

func IsExportDeclaration(node Node) bool {
	switch node.(type) {
	case *ExportNamedDeclaration, *ExportDefaultDeclaration, *ExportAllDeclaration:
		return true
	}
	return false
}

// Calls "visit" with each direct child of "node" in source order. Holes and
// absent optional children are skipped. Returning false from "visit" stops
// the iteration and makes this return false too.
func ForEachChild(node Node, visit func(child Node) bool) bool {
	// Typed nil pointers must not leak into "visit" as non-nil interfaces, so
	// every pointer-typed field is checked before being converted.
	v := func(child Node) bool {
		return child == nil || visit(child)
	}
	list := func(children []Node) bool {
		for _, child := range children {
			if !v(child) {
				return false
			}
		}
		return true
	}
	ident := func(id *Identifier) bool {
		return id == nil || visit(id)
	}
	block := func(b *BlockStatement) bool {
		return b == nil || visit(b)
	}
	str := func(lit *Literal) bool {
		return lit == nil || visit(lit)
	}
	decorators := func(ds []*Decorator) bool {
		for _, d := range ds {
			if d != nil && !visit(d) {
				return false
			}
		}
		return true
	}
	fn := func(f *Fn) bool {
		return ident(f.ID) && list(f.Params) && block(f.Body)
	}
	class := func(c *Class) bool {
		if !decorators(c.Decorators) || !ident(c.ID) || !v(c.SuperClass) {
			return false
		}
		return c.Body == nil || visit(c.Body)
	}

	switch n := node.(type) {
	case *Program:
		return list(n.Body)
	case *ExpressionStatement:
		return v(n.Expression)
	case *BlockStatement:
		return list(n.Body)
	case *WithStatement:
		return v(n.Object) && v(n.Body)
	case *ReturnStatement:
		return v(n.Argument)
	case *LabeledStatement:
		return ident(n.Label) && v(n.Body)
	case *BreakStatement:
		return ident(n.Label)
	case *ContinueStatement:
		return ident(n.Label)
	case *IfStatement:
		return v(n.Test) && v(n.Consequent) && v(n.Alternate)
	case *SwitchStatement:
		if !v(n.Discriminant) {
			return false
		}
		for _, c := range n.Cases {
			if c != nil && !visit(c) {
				return false
			}
		}
	case *SwitchCase:
		return v(n.Test) && list(n.Consequent)
	case *ThrowStatement:
		return v(n.Argument)
	case *TryStatement:
		if !block(n.Block) {
			return false
		}
		if n.Handler != nil && !visit(n.Handler) {
			return false
		}
		return block(n.Finalizer)
	case *CatchClause:
		return v(n.Param) && block(n.Body)
	case *WhileStatement:
		return v(n.Test) && v(n.Body)
	case *DoWhileStatement:
		return v(n.Body) && v(n.Test)
	case *ForStatement:
		return v(n.Init) && v(n.Test) && v(n.Update) && v(n.Body)
	case *ForInStatement:
		return v(n.Left) && v(n.Right) && v(n.Body)
	case *ForOfStatement:
		return v(n.Left) && v(n.Right) && v(n.Body)
	case *FunctionDeclaration:
		return fn(&n.Fn)
	case *VariableDeclaration:
		for _, d := range n.Declarations {
			if d != nil && !visit(d) {
				return false
			}
		}
	case *VariableDeclarator:
		return v(n.ID) && v(n.Init)
	case *ClassDeclaration:
		return class(&n.Class)
	case *ClassExpression:
		return class(&n.Class)
	case *ClassBody:
		return list(n.Body)
	case *MethodDefinition:
		if !decorators(n.Decorators) || !v(n.Key) {
			return false
		}
		return n.Value == nil || visit(n.Value)
	case *Decorator:
		return v(n.Expression)
	case *ArrayExpression:
		return list(n.Elements)
	case *ArrayPattern:
		return list(n.Elements)
	case *ObjectExpression:
		return list(n.Properties)
	case *ObjectPattern:
		return list(n.Properties)
	case *Property:
		return decorators(n.Decorators) && v(n.Key) && v(n.Value)
	case *FunctionExpression:
		return fn(&n.Fn)
	case *ArrowFunctionExpression:
		return list(n.Params) && v(n.Body)
	case *UnaryExpression:
		return v(n.Argument)
	case *UpdateExpression:
		return v(n.Argument)
	case *BinaryExpression:
		return v(n.Left) && v(n.Right)
	case *LogicalExpression:
		return v(n.Left) && v(n.Right)
	case *AssignmentExpression:
		return v(n.Left) && v(n.Right)
	case *AssignmentPattern:
		return v(n.Left) && v(n.Right)
	case *ConditionalExpression:
		return v(n.Test) && v(n.Consequent) && v(n.Alternate)
	case *CallExpression:
		return v(n.Callee) && list(n.Arguments)
	case *NewExpression:
		return v(n.Callee) && list(n.Arguments)
	case *MemberExpression:
		return v(n.Object) && v(n.Property)
	case *SequenceExpression:
		return list(n.Expressions)
	case *YieldExpression:
		return v(n.Argument)
	case *AwaitExpression:
		return v(n.Argument)
	case *TemplateLiteral:
		for i, q := range n.Quasis {
			if q != nil && !visit(q) {
				return false
			}
			if i < len(n.Expressions) && !v(n.Expressions[i]) {
				return false
			}
		}
	case *TaggedTemplateExpression:
		if !v(n.Tag) {
			return false
		}
		return n.Quasi == nil || visit(n.Quasi)
	case *RestElement:
		return v(n.Argument)
	case *SpreadElement:
		return v(n.Argument)
	case *SpreadProperty:
		return v(n.Argument)
	case *MetaProperty:
		return ident(n.Meta) && ident(n.Property)
	case *ImportDeclaration:
		return list(n.Specifiers) && str(n.Source)
	case *ImportSpecifier:
		return ident(n.Imported) && ident(n.Local)
	case *ImportDefaultSpecifier:
		return ident(n.Local)
	case *ImportNamespaceSpecifier:
		return ident(n.Local)
	case *ExportNamedDeclaration:
		if !v(n.Declaration) {
			return false
		}
		for _, s := range n.Specifiers {
			if s != nil && !visit(s) {
				return false
			}
		}
		return str(n.Source)
	case *ExportDefaultDeclaration:
		return v(n.Declaration)
	case *ExportAllDeclaration:
		return ident(n.Exported) && str(n.Source)
	case *ExportSpecifier:
		return ident(n.Local) && ident(n.Exported)
	}
	return true
}

// Reports whether any node strictly below "node" satisfies "match". The
// search is depth-first and stops at the first hit.
func SomeDescendant(node Node, match func(Node) bool) bool {
	found := false
	var walk func(child Node) bool
	walk = func(child Node) bool {
		if match(child) {
			found = true
			return false
		}
		return ForEachChild(child, walk)
	}
	if node != nil {
		ForEachChild(node, walk)
	}
	return found
}
