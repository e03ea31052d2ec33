package test

import (
	"strings"

	"github.com/jsgen-dev/jsgen/internal/logger"
	"github.com/pmezard/go-difflib/difflib"
)

// Returns a unified diff from "old" to "new", or "" when they are equal
func Diff(old string, new string, color bool) string {
	if old == new {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(old),
		B:        difflib.SplitLines(new),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	if !color {
		return diff
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
			lines[i] = logger.TerminalColors.Dim + line + logger.TerminalColors.Reset
		case strings.HasPrefix(line, "+"):
			lines[i] = logger.TerminalColors.Green + line + logger.TerminalColors.Reset
		case strings.HasPrefix(line, "-"):
			lines[i] = logger.TerminalColors.Red + line + logger.TerminalColors.Reset
		}
	}
	return strings.Join(lines, "\n")
}
