// Package errors provides error formatting for check failures. It
// separates presentation from domain logic, so the same errors can be
// rendered as text for the command line or as structured JSON.
//
// Domain-specific error types remain in their packages (parser, ledger);
// this package only renders them.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/robinvdvleuten/beanledger/parser"
)

// Formatter formats errors for output.
type Formatter interface {
	// Format formats a single error.
	Format(err error) string

	// FormatAll formats multiple errors.
	FormatAll(errs []error) string
}

// TextFormatter formats errors for command-line output in bean-check
// style: the message first, then the offending statement indented below.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

func (tf *TextFormatter) Format(err error) string {
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		var buf strings.Builder
		fmt.Fprintf(&buf, "error: %v\n", parseErr.Err)
		for _, line := range strings.Split(parseErr.Statement, "\n") {
			buf.WriteString("  | " + line + "\n")
		}
		return buf.String()
	}

	var segErr *parser.SegmentError
	if errors.As(err, &segErr) {
		return fmt.Sprintf("error: line %d is not part of any statement\n  | %s\n", segErr.Line, segErr.Text)
	}

	return fmt.Sprintf("error: %v\n", err)
}

func (tf *TextFormatter) FormatAll(errs []error) string {
	var buf strings.Builder
	for i, err := range errs {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(tf.Format(err))
	}
	return buf.String()
}

// JSONFormatter formats errors as structured JSON for consumption by
// other tools.
type JSONFormatter struct {
	// Indent enables pretty-printed output.
	Indent bool
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonError struct {
	Message   string `json:"message"`
	Statement string `json:"statement,omitempty"`
	Line      int    `json:"line,omitempty"`
}

func (jf *JSONFormatter) Format(err error) string {
	return jf.FormatAll([]error{err})
}

func (jf *JSONFormatter) FormatAll(errs []error) string {
	out := make([]jsonError, 0, len(errs))
	for _, err := range errs {
		entry := jsonError{Message: err.Error()}

		var parseErr *parser.ParseError
		var segErr *parser.SegmentError
		switch {
		case errors.As(err, &parseErr):
			entry.Message = parseErr.Err.Error()
			entry.Statement = parseErr.Statement
		case errors.As(err, &segErr):
			entry.Statement = segErr.Text
			entry.Line = segErr.Line
		}

		out = append(out, entry)
	}

	var data []byte
	var err error
	if jf.Indent {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		// The structures above always marshal.
		return fmt.Sprintf(`[{"message":%q}]`, err.Error())
	}
	return string(data)
}
