package parser

import "fmt"

// ParseError describes a statement that could not be parsed. It carries
// the complete original statement text so callers can report or reprocess
// the input without access to the source file.
type ParseError struct {
	Statement string
	Err       error
}

func newParseError(statement string, err error) *ParseError {
	return &ParseError{Statement: statement, Err: err}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse (%v): %q", e.Err, e.Statement)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
