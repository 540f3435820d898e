package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// statementStart matches any line that opens a statement: a leading
	// ISO date. Matching is done against a whitespace-trimmed copy.
	statementStart = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}.*`)

	// multilineStart matches lines that open a multiline statement: a date
	// followed by at least one space and a * flag. These statements extend
	// until the next statement start or end of input.
	multilineStart = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} +\*.*`)
)

// SegmentError reports a top-level line that is neither skippable nor a
// statement start. It aborts segmentation; there is no way to tell which
// statement the line was meant to belong to.
type SegmentError struct {
	Line int    // 1-based line number
	Text string // the offending line, untrimmed
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("line %d: not part of any statement: %q", e.Line, e.Text)
}

type scanState uint8

const (
	// stateSearching scans for the next statement start.
	stateSearching scanState = iota
	// stateMultiline accumulates lines into an open multiline statement.
	stateMultiline
)

// StatementScanner splits raw ledger text into logical statements, one
// Scan call at a time. Statements are either a single line starting with a
// date, or a multiline transaction block introduced by a date and a * flag.
// Blank lines, comment lines (; or #) and org-mode headings (*) between
// statements are skipped; inside a multiline block they are preserved as
// part of the block's text.
//
// Text returns views into the original input; no line is copied. Go strings
// are immutable, so callers may retain the returned statements freely.
//
// The usage pattern mirrors bufio.Scanner:
//
//	sc := NewStatementScanner(input)
//	for sc.Scan() {
//		statement := sc.Text()
//		// ...
//	}
//	if err := sc.Err(); err != nil {
//		// ...
//	}
type StatementScanner struct {
	source string
	pos    int // byte offset of the next unread line
	line   int // 1-based number of the next unread line

	state      scanState
	blockStart int // byte offset of the open multiline block
	blockEnd   int // end offset of its last significant line

	// pending holds a single-line statement found while a multiline block
	// was still open. It is emitted on the next Scan call.
	pending    string
	hasPending bool

	text string
	err  error
}

// NewStatementScanner returns a scanner over source.
func NewStatementScanner(source string) *StatementScanner {
	return &StatementScanner{source: source, line: 1}
}

// Scan advances the scanner to the next statement. It returns false when
// the input is exhausted or a line could not be segmented; Err tells the
// two cases apart.
func (s *StatementScanner) Scan() bool {
	if s.err != nil {
		return false
	}

	if s.hasPending {
		s.text = s.pending
		s.pending = ""
		s.hasPending = false
		return true
	}

	for {
		start, end, lineno, ok := s.nextLine()
		if !ok {
			if s.state == stateMultiline {
				// End of input closes the open block, trailing
				// skipped lines included.
				s.state = stateSearching
				s.text = s.source[s.blockStart:]
				return true
			}
			return false
		}

		trimmed := strings.TrimSpace(s.source[start:end])
		if skipLine(trimmed) {
			continue
		}

		switch s.state {
		case stateSearching:
			if multilineStart.MatchString(trimmed) {
				s.state = stateMultiline
				s.blockStart = start
				s.blockEnd = end
				continue
			}
			if statementStart.MatchString(trimmed) {
				s.text = s.source[start:end]
				return true
			}
			s.err = &SegmentError{Line: lineno, Text: s.source[start:end]}
			return false

		case stateMultiline:
			if multilineStart.MatchString(trimmed) {
				// A new block closes the current one.
				s.text = s.source[s.blockStart:s.blockEnd]
				s.blockStart = start
				s.blockEnd = end
				return true
			}
			if statementStart.MatchString(trimmed) {
				s.text = s.source[s.blockStart:s.blockEnd]
				s.pending = s.source[start:end]
				s.hasPending = true
				s.state = stateSearching
				return true
			}
			// Any other significant line belongs to the block.
			s.blockEnd = end
		}
	}
}

// Text returns the statement found by the last call to Scan. Leading
// whitespace on statement-start lines is preserved.
func (s *StatementScanner) Text() string {
	return s.text
}

// Err returns the error that stopped the scanner, or nil if scanning ended
// at the end of input.
func (s *StatementScanner) Err() error {
	return s.err
}

// nextLine consumes one physical line and returns its byte range. The
// trailing newline is excluded from the range but consumed.
func (s *StatementScanner) nextLine() (start, end, lineno int, ok bool) {
	if s.pos >= len(s.source) {
		return 0, 0, 0, false
	}
	start = s.pos
	lineno = s.line
	s.line++

	if i := strings.IndexByte(s.source[start:], '\n'); i >= 0 {
		s.pos = start + i + 1
		return start, start + i, lineno, true
	}
	s.pos = len(s.source)
	return start, len(s.source), lineno, true
}

// skipLine reports whether a trimmed top-level line carries no statement
// content: blank lines, comments and org-mode section headings.
func skipLine(trimmed string) bool {
	if trimmed == "" {
		return true
	}
	return isCommentStart(trimmed[0]) || trimmed[0] == '*'
}

func isCommentStart(c byte) bool {
	return c == ';' || c == '#'
}
