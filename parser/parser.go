// Package parser turns raw ledger text into typed entries.
//
// Parsing proceeds in two stages. A StatementScanner first splits the
// input into logical statements: single directive lines and multiline
// transaction blocks. Each statement is then parsed independently, so one
// malformed statement never aborts the rest of the file; its text is
// collected in ParsedEntries.Unhandled instead.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robinvdvleuten/beanledger/ast"
)

// Option configures a parse run.
type Option func(*config)

type config struct {
	recordErrors bool
}

// WithRecordedErrors retains a ParseError for every unhandled statement in
// ParsedEntries.Errors. By default only the statement text is kept.
func WithRecordedErrors() Option {
	return func(c *config) {
		c.recordErrors = true
	}
}

// ParsedEntries holds the result of parsing a ledger file, partitioned by
// entry kind. Within each slice, entries appear in input order.
type ParsedEntries struct {
	Transactions []*ast.Transaction
	Opens        []*ast.Open
	Closes       []*ast.Close
	Balances     []*ast.Balance
	Commodities  []*ast.Commodity
	Prices       []*ast.PriceEntry

	// Unhandled holds the original text of statements that failed to
	// parse, in input order.
	Unhandled []string

	// Errors holds the corresponding parse errors when the parser was
	// configured with WithRecordedErrors; nil otherwise.
	Errors []*ParseError
}

// Len returns the number of successfully parsed entries.
func (p *ParsedEntries) Len() int {
	return len(p.Transactions) + len(p.Opens) + len(p.Closes) +
		len(p.Balances) + len(p.Commodities) + len(p.Prices)
}

// IsEmpty reports whether nothing was parsed, not even unhandled text.
func (p *ParsedEntries) IsEmpty() bool {
	return p.Len() == 0 && len(p.Unhandled) == 0
}

// All returns every parsed entry sorted by date, with same-date opens
// first and closes second.
func (p *ParsedEntries) All() ast.Entries {
	entries := make(ast.Entries, 0, p.Len())
	for _, e := range p.Opens {
		entries = append(entries, e)
	}
	for _, e := range p.Closes {
		entries = append(entries, e)
	}
	for _, e := range p.Commodities {
		entries = append(entries, e)
	}
	for _, e := range p.Balances {
		entries = append(entries, e)
	}
	for _, e := range p.Prices {
		entries = append(entries, e)
	}
	for _, e := range p.Transactions {
		entries = append(entries, e)
	}
	ast.SortEntries(entries)
	return entries
}

func (p *ParsedEntries) add(entry ast.Entry) {
	switch e := entry.(type) {
	case *ast.Transaction:
		p.Transactions = append(p.Transactions, e)
	case *ast.Open:
		p.Opens = append(p.Opens, e)
	case *ast.Close:
		p.Closes = append(p.Closes, e)
	case *ast.Balance:
		p.Balances = append(p.Balances, e)
	case *ast.Commodity:
		p.Commodities = append(p.Commodities, e)
	case *ast.PriceEntry:
		p.Prices = append(p.Prices, e)
	}
}

// Parse reads ledger text from r and parses it.
func Parse(r io.Reader, opts ...Option) (*ParsedEntries, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data, opts...)
}

// ParseBytes parses ledger text from a byte slice.
func ParseBytes(data []byte, opts ...Option) (*ParsedEntries, error) {
	return ParseString(string(data), opts...)
}

// ParseString parses ledger text. Statements that fail to parse are
// collected in the result's Unhandled slice; a non-nil error is returned
// only when the input cannot be segmented into statements at all.
func ParseString(input string, opts ...Option) (*ParsedEntries, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	entries := &ParsedEntries{}

	sc := NewStatementScanner(input)
	for sc.Scan() {
		statement := sc.Text()
		entry, err := parseStatement(statement)
		if err != nil {
			entries.Unhandled = append(entries.Unhandled, statement)
			if cfg.recordErrors {
				entries.Errors = append(entries.Errors, newParseError(statement, err))
			}
			continue
		}
		entries.add(entry)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// parseStatement reads the date and directive keyword from a statement's
// first line and routes to the matching parser. For transactions the
// remaining lines form the posting body.
func parseStatement(statement string) (ast.Entry, error) {
	first, body, _ := strings.Cut(statement, "\n")

	it, err := NewTokenizer(first)
	if err != nil {
		return nil, err
	}

	token, ok := it.Next()
	if !ok {
		return nil, errors.New("empty statement")
	}
	date, err := ast.NewDate(token)
	if err != nil {
		return nil, err
	}

	directive, ok := it.Next()
	if !ok {
		return nil, errors.New("no directive after date")
	}

	switch directive {
	case "*":
		return parseTransaction(date, ast.FlagOK, it.Rest(), body)
	case "!":
		return parseTransaction(date, ast.FlagError, it.Rest(), body)
	case "open":
		return parseOpen(date, it.Rest())
	case "close":
		return parseClose(date, it.Rest())
	case "balance":
		return parseBalance(date, it.Rest())
	case "commodity":
		return parseCommodity(date, it.Rest())
	case "price":
		return parsePriceEntry(date, it.Rest())
	default:
		return nil, fmt.Errorf("unknown directive %q", directive)
	}
}
