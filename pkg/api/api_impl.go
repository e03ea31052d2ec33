package api

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jsgen-dev/jsgen/internal/config"
	"github.com/jsgen-dev/jsgen/internal/estree"
	"github.com/jsgen-dev/jsgen/internal/helpers"
	"github.com/jsgen-dev/jsgen/internal/js_printer"
	"github.com/jsgen-dev/jsgen/internal/logger"
	"golang.org/x/sync/errgroup"
)

func validateQuotes(value QuoteStyle) config.QuoteStyle {
	switch value {
	case QuotesDouble:
		return config.QuoteDouble
	case QuotesSingle:
		return config.QuoteSingle
	default:
		panic("Invalid quote style")
	}
}

func validateColor(value StderrColor) logger.StderrColor {
	switch value {
	case ColorIfTerminal:
		return logger.ColorIfTerminal
	case ColorNever:
		return logger.ColorNever
	case ColorAlways:
		return logger.ColorAlways
	default:
		panic("Invalid color")
	}
}

func validateLogLevel(value LogLevel) logger.LogLevel {
	switch value {
	case LogLevelInfo:
		return logger.LevelInfo
	case LogLevelWarning:
		return logger.LevelWarning
	case LogLevelError:
		return logger.LevelError
	case LogLevelSilent:
		return logger.LevelSilent
	default:
		panic("Invalid log level")
	}
}

func validateIndent(log logger.Log, value string) string {
	if strings.Trim(value, " \t") != "" {
		log.AddMsg(logger.Msg{
			Kind: logger.Error,
			Text: fmt.Sprintf("Invalid indent: %q (must only contain spaces and tabs)", value),
		})
		return ""
	}
	return value
}

func validatePrintOptions(log logger.Log, options PrintOptions) js_printer.Options {
	return js_printer.Options{
		Quotes: validateQuotes(options.Quotes),
		Indent: validateIndent(log, options.Indent),
	}
}

func newLog(options PrintOptions) logger.Log {
	if options.LogLevel == LogLevelSilent {
		return logger.NewDeferLog()
	}
	return logger.NewStderrLog(logger.StderrOptions{
		IncludeSource: true,
		ErrorLimit:    options.ErrorLimit,
		Color:         validateColor(options.Color),
		LogLevel:      validateLogLevel(options.LogLevel),
	})
}

func messagesOfKind(kind logger.MsgKind, msgs []logger.Msg) []Message {
	var filtered []Message
	for _, msg := range msgs {
		if msg.Kind == kind {
			var location *Location
			if loc := msg.Location; loc != nil {
				location = &Location{
					File:     loc.File,
					Line:     loc.Line,
					Column:   loc.Column,
					Length:   loc.Length,
					LineText: loc.LineText,
				}
			}
			filtered = append(filtered, Message{
				Text:     msg.Text,
				Location: location,
			})
		}
	}
	return filtered
}

// Decodes and prints one document. Problems are reported to "log" and the
// second return value is false if nothing could be printed.
func printSource(log logger.Log, source *logger.Source, options js_printer.Options) (js []byte, ok bool) {
	// A crash in one file shouldn't take down the files printed next to it
	defer func() {
		if r := recover(); r != nil {
			log.AddError(source, 0, 0, fmt.Sprintf("panic: %v\n%s", r, helpers.PrettyPrintedStack()))
			js, ok = nil, false
		}
	}()

	node, err := estree.Decode([]byte(source.Contents))
	if err != nil {
		var decodeErr *estree.DecodeError
		if errors.As(err, &decodeErr) {
			log.AddError(source, decodeErr.Line, decodeErr.Column, decodeErr.Text)
		} else {
			log.AddError(source, 0, 0, err.Error())
		}
		return nil, false
	}

	result, err := js_printer.Print(node, options)
	if err != nil {
		var unknownErr *js_printer.UnknownNodeTypeError
		if errors.As(err, &unknownErr) {
			log.AddError(source, int(unknownErr.Loc.Line), int(unknownErr.Loc.Column),
				fmt.Sprintf("Cannot print node type %q", unknownErr.Type))
		} else {
			log.AddError(source, 0, 0, err.Error())
		}
		return nil, false
	}

	if len(result.JS) == 0 {
		log.AddWarning(source, 0, 0, "This document doesn't contain any code")
	}
	return result.JS, true
}

func printImpl(input string, options PrintOptions) PrintResult {
	log := newLog(options)
	printOptions := validatePrintOptions(log, options)

	var js []byte
	if !log.HasErrors() {
		prettyPath := options.Sourcefile
		if prettyPath == "" {
			prettyPath = "<stdin>"
		}
		js, _ = printSource(log, &logger.Source{PrettyPath: prettyPath, Contents: input}, printOptions)
	}

	msgs := log.Done()
	result := PrintResult{
		Errors:   messagesOfKind(logger.Error, msgs),
		Warnings: messagesOfKind(logger.Warning, msgs),
	}
	if len(result.Errors) == 0 {
		result.JS = js
	}
	return result
}

func printFilesImpl(ctx context.Context, paths []string, options PrintFilesOptions) PrintFilesResult {
	log := newLog(options.PrintOptions)
	printOptions := validatePrintOptions(log, options.PrintOptions)
	if log.HasErrors() {
		msgs := log.Done()
		return PrintFilesResult{
			Errors:   messagesOfKind(logger.Error, msgs),
			Warnings: messagesOfKind(logger.Warning, msgs),
		}
	}

	outbase := options.Outbase
	if outbase == "" && options.Outdir != "" {
		outbase = lowestCommonAncestorDirectory(paths)
	}

	concurrency := options.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	// Each goroutine only writes to its own slot
	outputs := make([]*OutputFile, len(paths))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			prettyPath := filepath.ToSlash(path)
			contents, err := os.ReadFile(path)
			if err != nil {
				log.AddMsg(logger.Msg{
					Kind: logger.Error,
					Text: fmt.Sprintf("Could not read from file %q: %s", prettyPath, err.Error()),
				})
				return nil
			}

			source := &logger.Source{PrettyPath: prettyPath, Contents: string(contents)}
			js, ok := printSource(log, source, printOptions)
			if !ok {
				return nil
			}

			output := &OutputFile{InputPath: path, Contents: js}
			if options.Outdir != "" {
				output.Path = outputPath(path, outbase, options.Outdir)
			}
			outputs[i] = output
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		log.AddMsg(logger.Msg{
			Kind: logger.Error,
			Text: fmt.Sprintf("Printing was stopped: %s", err.Error()),
		})
	}

	msgs := log.Done()
	result := PrintFilesResult{
		Errors:   messagesOfKind(logger.Error, msgs),
		Warnings: messagesOfKind(logger.Warning, msgs),
	}
	for _, output := range outputs {
		if output != nil {
			result.OutputFiles = append(result.OutputFiles, *output)
		}
	}
	return result
}

// Maps "dir/src/a.yaml" with an outbase of "dir" and an outdir of "out" to
// "out/src/a.js"
func outputPath(path string, outbase string, outdir string) string {
	rel := path
	if outbase != "" {
		if absPath, err := filepath.Abs(path); err == nil {
			if absBase, err := filepath.Abs(outbase); err == nil {
				if stripped, ok := stripDirPrefix(absPath, absBase, "\\/"); ok {
					rel = stripped
				}
			}
		}
	}
	if filepath.IsAbs(rel) || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(rel)
	}
	if ext := filepath.Ext(rel); ext != "" {
		rel = rel[:len(rel)-len(ext)]
	}
	return filepath.Join(outdir, rel+".js")
}

// Returns "path" without "prefix" and the slash that follows it. This fails
// if "prefix" doesn't end at a path separator in "path".
func stripDirPrefix(path string, prefix string, allowedSlashes string) (string, bool) {
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	suffix := path[len(prefix):]

	// "/" and "C:\" already end with a slash
	if prefix == "" || suffix == "" || strings.IndexByte(allowedSlashes, prefix[len(prefix)-1]) != -1 {
		return suffix, true
	}

	if strings.IndexByte(allowedSlashes, suffix[0]) != -1 {
		return suffix[1:], true
	}
	return "", false
}

func lowestCommonAncestorDirectory(paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	var dirs []string
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return ""
		}
		dirs = append(dirs, filepath.Dir(abs))
	}

	lowest := dirs[0]
	for _, dir := range dirs[1:] {
		for {
			if _, ok := stripDirPrefix(dir, lowest, "\\/"); ok {
				break
			}
			parent := filepath.Dir(lowest)
			if parent == lowest {
				break
			}
			lowest = parent
		}
	}
	return lowest
}
