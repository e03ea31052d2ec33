package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jsgen-dev/jsgen/internal/logger"
	"github.com/jsgen-dev/jsgen/pkg/cli"
)

const helpText = `
Usage:
  jsgen [options] [files]

Prints ESTree documents (JSON or YAML) as JavaScript. Files may be glob
patterns such as "src/**/*.json". Without files the document is read from
stdin and the output goes to stdout.

Options:
  --quotes=...          Quote style for strings (double or single)
  --indent=...          Spaces per indent level or "tab" (default 2)
  --config=...          Read quote and indent settings from a YAML file
  --outdir=...          Write one .js file per input to this directory
  --outbase=...         The base path used to place files in --outdir
  --color=...           Force use of color terminal escapes (true or false)

Advanced options:
  --version             Print the current version and exit (` + jsgenVersion + `)
  --sourcefile=...      Set the file name used in messages (for stdin)
  --concurrency=...     Files to print at the same time (default: CPU count)
  --error-limit=...     Maximum error count or 0 to disable (default 10)
  --log-level=...       Disable logging (info, warning, error, silent)

Examples:
  # Produces dist/a.js and dist/lib/b.js
  jsgen src/a.json src/lib/b.yaml --outdir=dist

  # Print every document under "ast" with single quotes
  jsgen "ast/**/*.json" --quotes=single --outdir=out

  # Provide input via stdin, get output via stdout
  jsgen --indent=4 < ast.json > output.js
`

func main() {
	osArgs := os.Args[1:]
	traceFile := ""
	cpuprofileFile := ""

	// Do an initial scan over the argument list
	argsEnd := 0
	for _, arg := range osArgs {
		switch {
		// Show help if a common help flag is provided
		case arg == "-h", arg == "-help", arg == "--help", arg == "/?":
			fmt.Fprintf(os.Stderr, "%s\n", helpText)
			os.Exit(0)

		// Special-case the version flag here
		case arg == "--version":
			fmt.Fprintf(os.Stderr, "%s\n", jsgenVersion)
			os.Exit(0)

		case strings.HasPrefix(arg, "--trace="):
			traceFile = arg[len("--trace="):]

		case strings.HasPrefix(arg, "--cpuprofile="):
			cpuprofileFile = arg[len("--cpuprofile="):]

		default:
			// Strip any arguments that were handled above
			osArgs[argsEnd] = arg
			argsEnd++
		}
	}
	osArgs = osArgs[:argsEnd]

	// Print help text when there are no arguments
	if len(osArgs) == 0 && logger.GetTerminalInfo(os.Stdin).IsTTY {
		fmt.Fprintf(os.Stderr, "%s\n", helpText)
		os.Exit(0)
	}

	// Capture the defer statements below so profiles are flushed before exiting
	exitCode := 1
	func() {
		// To view a CPU trace, use "go tool trace [file]"
		if traceFile != "" {
			if done := createTraceFile(osArgs, traceFile); done == nil {
				return
			} else {
				defer done()
			}
		}

		if cpuprofileFile != "" {
			if done := createCpuprofileFile(osArgs, cpuprofileFile); done == nil {
				return
			} else {
				defer done()
			}
		}

		exitCode = cli.Run(osArgs)
	}()

	os.Exit(exitCode)
}
