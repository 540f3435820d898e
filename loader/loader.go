// Package loader reads ledger files from disk and parses them. It wraps
// the parser with the file handling a command-line tool needs: reading,
// UTF-8 validation, and consistent error wrapping with the filename.
package loader

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/robinvdvleuten/beanledger/parser"
)

// Loader loads and parses ledger files.
//
// Configure the loader using functional options passed to New:
//
//	ldr := loader.New(loader.WithParserOptions(parser.WithRecordedErrors()))
type Loader struct {
	parserOptions []parser.Option
}

// Option configures how files are loaded.
type Option func(*Loader)

// WithParserOptions forwards options to every parse the loader performs.
func WithParserOptions(opts ...parser.Option) Option {
	return func(l *Loader) {
		l.parserOptions = append(l.parserOptions, opts...)
	}
}

// New creates a loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and parses the file at filename.
func (l *Loader) Load(ctx context.Context, filename string) (*parser.ParsedEntries, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return l.LoadBytes(ctx, filename, data)
}

// LoadBytes parses already-read file contents. filename is used in error
// messages only.
func (l *Loader) LoadBytes(ctx context.Context, filename string, data []byte) (*parser.ParsedEntries, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: not valid UTF-8", filename)
	}

	entries, err := parser.ParseBytes(data, l.parserOptions...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return entries, nil
}
