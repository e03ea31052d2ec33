// This package contains internal CLI-related code that must be shared with
// other internal code outside of the CLI package.

package cli_helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsgen-dev/jsgen/internal/config"
	"github.com/jsgen-dev/jsgen/pkg/api"
)

type ErrorWithNote struct {
	Text string
	Note string
}

func MakeErrorWithNote(text string, note string) *ErrorWithNote {
	return &ErrorWithNote{
		Text: text,
		Note: note,
	}
}

func (e *ErrorWithNote) Error() string {
	if e.Note == "" {
		return e.Text
	}
	return e.Text + "\n" + e.Note
}

func QuotesFromConfig(quotes config.QuoteStyle) api.QuoteStyle {
	if quotes == config.QuoteSingle {
		return api.QuotesSingle
	}
	return api.QuotesDouble
}

func ParseQuotes(text string) (api.QuoteStyle, *ErrorWithNote) {
	quotes, err := config.ParseQuoteStyle(text)
	if err != nil || text == "" {
		return api.QuotesDouble, MakeErrorWithNote(
			fmt.Sprintf("Invalid quote style: %q", text),
			"Valid values are \"double\" or \"single\".",
		)
	}
	return QuotesFromConfig(quotes), nil
}

// Accepts a number of spaces or "tab"
func ParseIndent(text string) (string, *ErrorWithNote) {
	if text == "tab" {
		return "\t", nil
	}
	spaces, err := strconv.Atoi(text)
	if err != nil || spaces < 0 || spaces > 16 {
		return "", MakeErrorWithNote(
			fmt.Sprintf("Invalid indent: %q", text),
			"Valid values are \"tab\" or a number of spaces between 0 and 16.",
		)
	}
	return strings.Repeat(" ", spaces), nil
}

func ParseColor(text string) (api.StderrColor, *ErrorWithNote) {
	switch text {
	case "true":
		return api.ColorAlways, nil
	case "false":
		return api.ColorNever, nil
	default:
		return api.ColorIfTerminal, MakeErrorWithNote(
			fmt.Sprintf("Invalid color: %q", text),
			"Valid values are \"true\" or \"false\".",
		)
	}
}

func ParseLogLevel(text string) (api.LogLevel, *ErrorWithNote) {
	switch text {
	case "info", "verbose":
		return api.LogLevelInfo, nil
	case "warning":
		return api.LogLevelWarning, nil
	case "error":
		return api.LogLevelError, nil
	case "silent":
		return api.LogLevelSilent, nil
	default:
		return api.LogLevelInfo, MakeErrorWithNote(
			fmt.Sprintf("Invalid log level: %q", text),
			"Valid values are \"info\", \"warning\", \"error\", or \"silent\".",
		)
	}
}
