package js_printer

import (
	"errors"
	"math/big"
	"strconv"

	"github.com/jsgen-dev/jsgen/internal/helpers"
	"github.com/jsgen-dev/jsgen/internal/js_ast"
)

func printLiteral(p *printer, node js_ast.Node, parent js_ast.Node) {
	p.print(p.literalText(node.(*js_ast.Literal), parent))
}

func (p *printer) literalText(lit *js_ast.Literal, parent js_ast.Node) string {
	if lit.Regex != nil {
		return "/" + lit.Regex.Pattern + "/" + lit.Regex.Flags
	}
	if lit.BigInt != "" {
		return bigIntToDecimal(lit.BigInt) + "n"
	}

	switch v := lit.Value.(type) {
	case string:
		return string(helpers.QuoteForJS(v, p.options.Quotes.Char()))

	case bool:
		if v {
			return "true"
		}
		return "false"

	case nil:
		return "null"
	}

	if value, ok := numberValue(lit.Value); ok {
		text := numberText(value, lit.Raw)

		// "5.toString()" is a syntax error because the "." is read as part of
		// the number, so it becomes "5..toString()". Negative numbers are
		// wrapped in parentheses instead.
		if m, ok := parent.(*js_ast.MemberExpression); ok && m.Object == js_ast.Node(lit) && !m.Computed &&
			isIntegerText(text) && text[0] != '-' {
			text += "."
		}
		return text
	}

	// Values that can't appear in JavaScript source have no text
	return ""
}

func isNegativeNumber(lit *js_ast.Literal) bool {
	if lit.Regex != nil || lit.BigInt != "" {
		return false
	}
	value, ok := numberValue(lit.Value)
	return ok && value < 0
}

func numberValue(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

// The source text is kept when it still means the same number. Hexadecimal,
// octal, and binary spellings and numeric separators are normalized.
func numberText(value float64, raw string) string {
	if raw != "" && isDecimalLiteral(raw) && raw[len(raw)-1] != '.' {
		// Out of range text such as "1e400" still names the value it rounds to
		if parsed, err := strconv.ParseFloat(raw, 64); (err == nil || errors.Is(err, strconv.ErrRange)) && parsed == value {
			return raw
		}
	}
	return helpers.NumberToString(value)
}

// Matches "1", "1.5", ".5", "1.", and any of those followed by an exponent
func isDecimalLiteral(text string) bool {
	i, n := 0, len(text)
	digits := 0
	for i < n && text[i] >= '0' && text[i] <= '9' {
		i++
		digits++
	}
	if i < n && text[i] == '.' {
		i++
		for i < n && text[i] >= '0' && text[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < n && (text[i] == 'e' || text[i] == 'E') {
		i++
		if i < n && (text[i] == '+' || text[i] == '-') {
			i++
		}
		start := i
		for i < n && text[i] >= '0' && text[i] <= '9' {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == n
}

// Digits with an optional sign and nothing else
func isIntegerText(text string) bool {
	if len(text) > 0 && text[0] == '-' {
		text = text[1:]
	}
	if text == "" {
		return false
	}
	for _, c := range []byte(text) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Bigint literals may be written in any base. The original text is kept if
// it doesn't parse.
func bigIntToDecimal(value string) string {
	var i big.Int
	if _, ok := i.SetString(value, 0); !ok {
		return value
	}
	return i.String()
}
