package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type QuoteStyle uint8

const (
	// This is the zero value so that double quotes are the default
	QuoteDouble QuoteStyle = iota
	QuoteSingle
)

func (q QuoteStyle) String() string {
	if q == QuoteSingle {
		return "single"
	}
	return "double"
}

// The quote character string literals are wrapped in
func (q QuoteStyle) Char() byte {
	if q == QuoteSingle {
		return '\''
	}
	return '"'
}

func ParseQuoteStyle(text string) (QuoteStyle, error) {
	switch strings.ToLower(text) {
	case "", "double":
		return QuoteDouble, nil
	case "single":
		return QuoteSingle, nil
	}
	return QuoteDouble, fmt.Errorf("Invalid quote style: %q (valid: double, single)", text)
}

const DefaultIndent = "  "

type Options struct {
	// The only option the literal encoder reads
	Quotes QuoteStyle

	// One level of indentation. Empty means "DefaultIndent".
	Indent string
}

func (options Options) IndentOrDefault() string {
	if options.Indent == "" {
		return DefaultIndent
	}
	return options.Indent
}

// The on-disk form of "Options". Every field is optional.
type fileOptions struct {
	Quotes string `yaml:"quotes"`

	// Either a number of spaces or the literal indent string, e.g. "\t"
	Indent yaml.Node `yaml:"indent"`
}

// Parses a YAML (or JSON) configuration document such as:
//
//	quotes: single
//	indent: 4
func ParseFile(contents []byte) (Options, error) {
	var file fileOptions
	var options Options
	if err := yaml.Unmarshal(contents, &file); err != nil {
		return options, err
	}

	quotes, err := ParseQuoteStyle(file.Quotes)
	if err != nil {
		return options, err
	}
	options.Quotes = quotes

	if file.Indent.Kind == yaml.ScalarNode {
		var spaces int
		if file.Indent.Tag == "!!int" {
			if err := file.Indent.Decode(&spaces); err != nil {
				return options, err
			}
			if spaces < 0 || spaces > 16 {
				return options, fmt.Errorf("Invalid indent: %d (must be between 0 and 16)", spaces)
			}
			options.Indent = strings.Repeat(" ", spaces)
		} else {
			if strings.Trim(file.Indent.Value, " \t") != "" {
				return options, fmt.Errorf("Invalid indent: %q (must only contain spaces and tabs)", file.Indent.Value)
			}
			options.Indent = file.Indent.Value
		}
	}
	return options, nil
}

func LoadFile(path string) (Options, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	options, err := ParseFile(contents)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return options, nil
}
