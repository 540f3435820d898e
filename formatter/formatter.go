// Package formatter renders parsed entries back to ledger text, aligning
// amounts on a shared currency column the way bean-format does.
package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/beanledger/ast"
)

const (
	// DefaultCurrencyColumn is the default column at which currencies
	// start (matches bean-format behavior).
	DefaultCurrencyColumn = 52

	// DefaultIndentation is the default indentation for postings.
	DefaultIndentation = 2

	// MinimumSpacing is the minimum number of spaces between the account
	// or number and whatever follows it.
	MinimumSpacing = 2
)

// Formatter renders entries with configurable alignment.
type Formatter struct {
	// CurrencyColumn is the target column for currency alignment.
	CurrencyColumn int

	// Indentation is the number of spaces postings are indented with.
	Indentation int
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithCurrencyColumn sets the column at which currencies are aligned.
func WithCurrencyColumn(column int) Option {
	return func(f *Formatter) {
		f.CurrencyColumn = column
	}
}

// WithIndentation sets the posting indentation.
func WithIndentation(indentation int) Option {
	return func(f *Formatter) {
		f.Indentation = indentation
	}
}

// New creates a formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		CurrencyColumn: DefaultCurrencyColumn,
		Indentation:    DefaultIndentation,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format writes entries to w, one block per entry, separated by newlines.
// Entries are written in the order given; use ast.SortEntries first for
// date order.
func (f *Formatter) Format(w io.Writer, entries ast.Entries) error {
	for i, entry := range entries {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := f.formatEntry(w, entry); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) formatEntry(w io.Writer, entry ast.Entry) error {
	var buf strings.Builder

	date := ast.EntryDate(entry).String()
	switch e := entry.(type) {
	case *ast.Open:
		buf.WriteString(date + " open " + e.Account)
		for _, currency := range e.ConstraintCurrencies {
			buf.WriteString(" " + currency)
		}
		buf.WriteByte('\n')

	case *ast.Close:
		buf.WriteString(date + " close " + e.Account + "\n")

	case *ast.Commodity:
		buf.WriteString(date + " commodity " + e.Currency + "\n")

	case *ast.Balance:
		f.writeAligned(&buf, date+" balance "+e.Account, e.Amount)
		buf.WriteByte('\n')

	case *ast.PriceEntry:
		f.writeAligned(&buf, date+" price "+e.Currency, e.Amount)
		buf.WriteByte('\n')

	case *ast.Transaction:
		f.writeTransaction(&buf, e)

	default:
		return fmt.Errorf("cannot format %s entry", entry.Directive())
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

func (f *Formatter) writeTransaction(buf *strings.Builder, txn *ast.Transaction) {
	buf.WriteString(ast.EntryDate(txn).String() + " " + txn.Flag.String())

	// A payee requires both strings so the reader can tell them apart;
	// a narration alone is written as a single string.
	if txn.Payee != "" {
		buf.WriteString(` "` + escapeString(txn.Payee) + `"`)
		buf.WriteString(` "` + escapeString(txn.Narration) + `"`)
	} else if txn.Narration != "" {
		buf.WriteString(` "` + escapeString(txn.Narration) + `"`)
	}
	buf.WriteByte('\n')

	indent := strings.Repeat(" ", f.Indentation)
	for _, posting := range txn.Postings {
		f.writeAligned(buf, indent+posting.Account, posting.Amount)

		if posting.Price != nil {
			buf.WriteString(" @ " + posting.Price.Amount.String())
		}
		if posting.Cost != nil {
			if posting.Cost.IsAutomatic() {
				buf.WriteString(" {}")
			} else {
				buf.WriteString(" {" + posting.Cost.Amount.String() + "}")
			}
		}
		buf.WriteByte('\n')
	}
}

// writeAligned writes prefix and amount with padding so that the currency
// starts at the f.CurrencyColumn. Widths are measured in display cells, so
// wide runes in account names do not skew the alignment.
func (f *Formatter) writeAligned(buf *strings.Builder, prefix string, amount ast.Amount) {
	number := amount.Number.String()

	padding := f.CurrencyColumn - runewidth.StringWidth(prefix) - runewidth.StringWidth(number) - 1
	if padding < MinimumSpacing {
		padding = MinimumSpacing
	}

	buf.WriteString(prefix)
	buf.WriteString(strings.Repeat(" ", padding))
	buf.WriteString(number + " " + amount.Currency)
}
