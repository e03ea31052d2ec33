// Package api prints ESTree documents as JavaScript. The documents are JSON or
// YAML renditions of a syntax tree, as produced by parsers such as acorn,
// espree, or Babel with the "estree" plugin.
package api

import "context"

type QuoteStyle uint8

const (
	QuotesDouble QuoteStyle = iota
	QuotesSingle
)

type Location struct {
	File     string
	Line     int // 1-based
	Column   int // 0-based, in bytes
	Length   int // in bytes
	LineText string
}

type Message struct {
	Text     string
	Location *Location
}

type StderrColor uint8

const (
	ColorIfTerminal StderrColor = iota
	ColorNever
	ColorAlways
)

type LogLevel uint8

const (
	LogLevelSilent LogLevel = iota
	LogLevelInfo
	LogLevelWarning
	LogLevelError
)

////////////////////////////////////////////////////////////////////////////////
// Print API

type PrintOptions struct {
	Color      StderrColor
	ErrorLimit int
	LogLevel   LogLevel

	Quotes QuoteStyle

	// One level of indentation. Only spaces and tabs are allowed, and the
	// default is two spaces.
	Indent string

	// The name of the input in messages. Defaults to "<stdin>".
	Sourcefile string
}

type PrintResult struct {
	Errors   []Message
	Warnings []Message

	JS []byte
}

func Print(input string, options PrintOptions) PrintResult {
	return printImpl(input, options)
}

////////////////////////////////////////////////////////////////////////////////
// Print files API

type PrintFilesOptions struct {
	PrintOptions

	// Where the output files go. When this is empty, output files have no
	// path and the caller decides where to put their contents.
	Outdir string

	// The directory that input paths are made relative to before they are
	// joined with "Outdir". Defaults to the lowest common ancestor directory
	// of all inputs.
	Outbase string

	// The number of files printed at the same time. Zero means one per CPU.
	Concurrency int
}

type OutputFile struct {
	// The input this was printed from
	InputPath string

	// The output path ending in ".js", or empty without "Outdir"
	Path string

	Contents []byte
}

type PrintFilesResult struct {
	Errors   []Message
	Warnings []Message

	// One entry per input that printed successfully, in the order of the
	// inputs
	OutputFiles []OutputFile
}

// Reads and prints each file in "paths". Files are printed in parallel and
// a failing file doesn't stop the others. Cancelling "ctx" stops the files
// that haven't started yet.
func PrintFiles(ctx context.Context, paths []string, options PrintFilesOptions) PrintFilesResult {
	return printFilesImpl(ctx, paths, options)
}
