package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jsgen-dev/jsgen/internal/cli_helpers"
	"github.com/jsgen-dev/jsgen/internal/config"
	"github.com/jsgen-dev/jsgen/internal/exitcode"
	"github.com/jsgen-dev/jsgen/pkg/api"
)

type Options struct {
	api.PrintFilesOptions

	// Input file patterns. Patterns may use "**" to match across directories.
	// Nothing here means the input comes from stdin.
	Inputs []string
}

func newOptions() Options {
	var options Options

	// Apply defaults appropriate for the CLI
	options.ErrorLimit = 10
	options.LogLevel = api.LogLevelInfo
	return options
}

func ParseOptions(osArgs []string) (Options, error) {
	options := newOptions()
	err := parseOptionsImpl(osArgs, &options)
	return options, err
}

func parseOptionsImpl(osArgs []string, options *Options) error {
	// A configuration file provides defaults, so it's applied before any of the
	// other flags regardless of where it appears
	for _, arg := range osArgs {
		if strings.HasPrefix(arg, "--config=") {
			path := arg[len("--config="):]
			fileOptions, err := config.LoadFile(path)
			if err != nil {
				return exitcode.UsageError(cli_helpers.MakeErrorWithNote(
					fmt.Sprintf("Could not load configuration file %q", path),
					err.Error(),
				))
			}
			options.Quotes = cli_helpers.QuotesFromConfig(fileOptions.Quotes)
			options.Indent = fileOptions.Indent
		}
	}

	for _, arg := range osArgs {
		switch {
		case strings.HasPrefix(arg, "--config="):

		case strings.HasPrefix(arg, "--quotes="):
			value, err := cli_helpers.ParseQuotes(arg[len("--quotes="):])
			if err != nil {
				return exitcode.UsageError(err)
			}
			options.Quotes = value

		case strings.HasPrefix(arg, "--indent="):
			value, err := cli_helpers.ParseIndent(arg[len("--indent="):])
			if err != nil {
				return exitcode.UsageError(err)
			}
			options.Indent = value

		case strings.HasPrefix(arg, "--outdir="):
			options.Outdir = arg[len("--outdir="):]

		case strings.HasPrefix(arg, "--outbase="):
			options.Outbase = arg[len("--outbase="):]

		case strings.HasPrefix(arg, "--sourcefile="):
			options.Sourcefile = arg[len("--sourcefile="):]

		case strings.HasPrefix(arg, "--concurrency="):
			value, err := parseNonNegativeInt(arg, "--concurrency=")
			if err != nil {
				return err
			}
			options.Concurrency = value

		case strings.HasPrefix(arg, "--error-limit="):
			value, err := parseNonNegativeInt(arg, "--error-limit=")
			if err != nil {
				return err
			}
			options.ErrorLimit = value

		case strings.HasPrefix(arg, "--color="):
			value, err := cli_helpers.ParseColor(arg[len("--color="):])
			if err != nil {
				return exitcode.UsageError(err)
			}
			options.Color = value

		case strings.HasPrefix(arg, "--log-level="):
			value, err := cli_helpers.ParseLogLevel(arg[len("--log-level="):])
			if err != nil {
				return exitcode.UsageError(err)
			}
			options.LogLevel = value

		case !strings.HasPrefix(arg, "-"):
			if !doublestar.ValidatePathPattern(arg) {
				return exitcode.UsageError(fmt.Errorf("Invalid file pattern: %q", arg))
			}
			options.Inputs = append(options.Inputs, arg)

		default:
			return exitcode.UsageError(fmt.Errorf("Invalid build flag: %q", arg))
		}
	}

	if options.Outbase != "" && options.Outdir == "" {
		return exitcode.UsageError(fmt.Errorf("Cannot use \"--outbase\" without \"--outdir\""))
	}
	return nil
}

func parseNonNegativeInt(arg string, prefix string) (int, error) {
	text := arg[len(prefix):]
	value, err := strconv.Atoi(text)
	if err != nil || value < 0 {
		return 0, exitcode.UsageError(fmt.Errorf("Invalid value %q in %q", text, arg))
	}
	return value, nil
}

// Expands each pattern into the files it matches. Plain paths are passed
// through untouched so a missing file is reported when it's read.
func expandInputs(patterns []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		if !hasGlobMeta(pattern) {
			if !seen[pattern] {
				seen[pattern] = true
				paths = append(paths, pattern)
			}
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("Invalid file pattern %q: %s", pattern, err.Error())
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("No files match the pattern %q", pattern)
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				paths = append(paths, match)
			}
		}
	}
	return paths, nil
}

func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
