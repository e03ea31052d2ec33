package helpers

import "unicode/utf8"

const hexChars = "0123456789abcdef"
const firstASCII = 0x20
const firstHighSurrogate = 0xD800
const lastLowSurrogate = 0xDFFF

// This is the escaping of "JSON.stringify" except that line terminators are
// always written as "\u" escapes. A raw U+2028 or U+2029 is valid in JSON but
// not inside a JavaScript string literal.
func canPrintWithoutEscape(c rune, quoteChar byte) bool {
	if c < 0x80 {
		return c >= firstASCII && c != '\\' && c != rune(quoteChar)
	}
	return c != '\u2028' && c != '\u2029' && (c < firstHighSurrogate || c > lastLowSurrogate)
}

// Bytes that aren't valid WTF-8 decode as a one-byte "RuneError". They are
// written as "\ufffd" so the output stays valid UTF-8.
func isInvalidByte(c rune, width int) bool {
	return c == utf8.RuneError && width == 1
}

func QuoteForJS(text string, quoteChar byte) []byte {
	// Estimate the required length
	lenEstimate := 2
	for _, c := range text {
		if canPrintWithoutEscape(c, quoteChar) {
			lenEstimate += utf8.RuneLen(c)
		} else {
			switch c {
			case '\b', '\f', '\t', '\\', '"', '\'':
				lenEstimate += 2
			default:
				lenEstimate += 6
			}
		}
	}

	// Preallocate the array
	bytes := make([]byte, 0, lenEstimate)
	i := 0
	n := len(text)
	bytes = append(bytes, quoteChar)

	for i < n {
		c, width := DecodeWTF8Rune(text[i:])

		// Fast path: a run of characters that don't need escaping
		if canPrintWithoutEscape(c, quoteChar) && !isInvalidByte(c, width) {
			start := i
			i += width
			for i < n {
				c, width = DecodeWTF8Rune(text[i:])
				if !canPrintWithoutEscape(c, quoteChar) || isInvalidByte(c, width) {
					break
				}
				i += width
			}
			bytes = append(bytes, text[start:i]...)
			continue
		}

		switch c {
		case '\b':
			bytes = append(bytes, "\\b"...)
			i++

		case '\f':
			bytes = append(bytes, "\\f"...)
			i++

		case '\t':
			bytes = append(bytes, "\\t"...)
			i++

		case '\\':
			bytes = append(bytes, "\\\\"...)
			i++

		case '"':
			bytes = append(bytes, "\\\""...)
			i++

		case '\'':
			bytes = append(bytes, "\\'"...)
			i++

		default:
			// Control characters, line terminators, lone surrogates, and
			// invalid bytes
			i += width
			bytes = append(
				bytes,
				'\\', 'u', hexChars[c>>12], hexChars[(c>>8)&15], hexChars[(c>>4)&15], hexChars[c&15],
			)
		}
	}

	return append(bytes, quoteChar)
}
