package helpers

import (
	"runtime/debug"
	"strings"
)

// Formats the current goroutine's stack as one "function (file:line)" entry
// per line. Frames inside the Go runtime and this function itself are left
// out so the first line is the code that called "panic".
func PrettyPrintedStack() string {
	lines := strings.Split(strings.TrimSpace(string(debug.Stack())), "\n")

	// Strip the first "goroutine" line
	if len(lines) > 0 {
		if first := lines[0]; strings.HasPrefix(first, "goroutine ") && strings.HasSuffix(first, ":") {
			lines = lines[1:]
		}
	}

	sb := strings.Builder{}
	skip := false

	for _, line := range lines {
		// Indented lines are source locations
		if strings.HasPrefix(line, "\t") {
			if skip {
				continue
			}
			line = strings.TrimPrefix(line[1:], "github.com/jsgen-dev/jsgen/")
			if offset := strings.LastIndex(line, " +0x"); offset != -1 {
				line = line[:offset]
			}
			sb.WriteString(" (")
			sb.WriteString(line)
			sb.WriteString(")")
			continue
		}

		// Other lines are function calls
		skip = strings.HasPrefix(line, "runtime/") || strings.HasPrefix(line, "panic(") ||
			strings.Contains(line, "helpers.PrettyPrintedStack")
		if skip {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		if strings.HasSuffix(line, ")") {
			if paren := strings.LastIndexByte(line, '('); paren != -1 {
				line = line[:paren]
			}
		}
		if slash := strings.LastIndexByte(line, '/'); slash != -1 {
			line = line[slash+1:]
		}
		sb.WriteString(line)
	}

	return sb.String()
}
