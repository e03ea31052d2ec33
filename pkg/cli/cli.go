// Package cli implements the "jsgen" command: it prints ESTree documents from
// files or stdin as JavaScript.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jsgen-dev/jsgen/internal/exitcode"
	"github.com/jsgen-dev/jsgen/internal/helpers"
	"github.com/jsgen-dev/jsgen/internal/logger"
	"github.com/jsgen-dev/jsgen/pkg/api"
)

// Run returns the process exit code
func Run(osArgs []string) int {
	return RunWithIO(osArgs, os.Stdin, os.Stdout)
}

func RunWithIO(osArgs []string, stdin io.Reader, stdout io.Writer) int {
	err := runImpl(osArgs, stdin, stdout)
	if err != nil && exitcode.Get(err) == exitcode.Usage {
		logger.PrintErrorToStderr(osArgs, err.Error())
	}
	return exitcode.Get(err)
}

// Errors from printing were already logged. Only usage errors are returned
// for the caller to log.
func runImpl(osArgs []string, stdin io.Reader, stdout io.Writer) error {
	options, err := ParseOptions(osArgs)
	if err != nil {
		return err
	}

	if len(options.Inputs) == 0 {
		if options.Outdir != "" {
			return exitcode.UsageError(fmt.Errorf("Cannot use \"--outdir\" without input files"))
		}
		return printStdin(osArgs, options, stdin, stdout)
	}

	paths, err := expandInputs(options.Inputs)
	if err != nil {
		return exitcode.UsageError(err)
	}

	result := api.PrintFiles(context.Background(), paths, options.PrintFilesOptions)
	if len(result.Errors) > 0 {
		return exitcode.Set(fmt.Errorf("%d errors", len(result.Errors)), exitcode.Failure)
	}

	// Special-case writing to stdout
	if options.Outdir == "" {
		var j helpers.Joiner
		if len(result.OutputFiles) == 1 {
			j.AddBytes(result.OutputFiles[0].Contents)
		} else {
			for _, outputFile := range result.OutputFiles {
				j.AddFileBanner(filepath.ToSlash(outputFile.InputPath))
				j.AddBytes(outputFile.Contents)
			}
		}
		if _, err := stdout.Write(j.Done()); err != nil {
			logger.PrintErrorToStderr(osArgs, fmt.Sprintf(
				"Failed to write to stdout: %s", err.Error()))
			return exitcode.Set(err, exitcode.Failure)
		}
		return nil
	}

	var writeErr error
	for _, outputFile := range result.OutputFiles {
		if err := os.MkdirAll(filepath.Dir(outputFile.Path), 0755); err != nil {
			logger.PrintErrorToStderr(osArgs, fmt.Sprintf(
				"Failed to create output directory: %s", err.Error()))
			writeErr = err
		} else if err := os.WriteFile(outputFile.Path, outputFile.Contents, 0644); err != nil {
			logger.PrintErrorToStderr(osArgs, fmt.Sprintf(
				"Failed to write to output file: %s", err.Error()))
			writeErr = err
		}
	}
	return exitcode.Set(writeErr, exitcode.Failure)
}

func printStdin(osArgs []string, options Options, stdin io.Reader, stdout io.Writer) error {
	bytes, err := io.ReadAll(stdin)
	if err != nil {
		logger.PrintErrorToStderr(osArgs, fmt.Sprintf(
			"Could not read from stdin: %s", err.Error()))
		return exitcode.Set(err, exitcode.Failure)
	}

	result := api.Print(string(bytes), options.PrintOptions)
	if len(result.Errors) > 0 {
		return exitcode.Set(fmt.Errorf("%d errors", len(result.Errors)), exitcode.Failure)
	}

	if _, err := stdout.Write(result.JS); err != nil {
		logger.PrintErrorToStderr(osArgs, fmt.Sprintf(
			"Failed to write to stdout: %s", err.Error()))
		return exitcode.Set(err, exitcode.Failure)
	}
	return nil
}
