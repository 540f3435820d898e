package parser

import (
	"fmt"
	"strings"
	"unicode"
)

// Tokenizer splits a single line into whitespace-delimited tokens. A
// trailing comment (; or #) is stripped before tokenization. It differs
// from strings.Fields in being incremental: after consuming any number of
// tokens, Rest returns the untokenized remainder verbatim, which is how
// narrations and amounts keep their internal spacing.
type Tokenizer struct {
	data string
	pos  int
}

// NewTokenizer returns a tokenizer over line. Multiline input is rejected;
// statements are tokenized one line at a time.
func NewTokenizer(line string) (*Tokenizer, error) {
	if strings.IndexByte(line, '\n') >= 0 {
		return nil, fmt.Errorf("cannot tokenize multiline input")
	}
	return &Tokenizer{data: trimComment(line)}, nil
}

// Next returns the next token. ok is false once the line is exhausted.
func (t *Tokenizer) Next() (token string, ok bool) {
	start, found := t.skipSpace()
	if !found {
		return "", false
	}
	rest := t.data[start:]
	if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
		t.pos = start + i
		return rest[:i], true
	}
	t.pos = len(t.data)
	return rest, true
}

// Rest returns everything not yet consumed, with surrounding whitespace
// trimmed. It does not advance the tokenizer.
func (t *Tokenizer) Rest() string {
	start, found := t.skipSpace()
	if !found {
		return ""
	}
	return strings.TrimRightFunc(t.data[start:], unicode.IsSpace)
}

func (t *Tokenizer) skipSpace() (int, bool) {
	i := strings.IndexFunc(t.data[t.pos:], func(r rune) bool { return !unicode.IsSpace(r) })
	if i < 0 {
		return 0, false
	}
	return t.pos + i, true
}

// trimComment strips a comment introduced by ; or # from the end of a
// single line. The scan runs from the right and stops at a newline, so on
// multiline text only the last physical line is affected.
func trimComment(data string) string {
	for i := len(data) - 1; i >= 0; i-- {
		c := data[i]
		if c == '\n' {
			break
		}
		if isCommentStart(c) {
			return strings.TrimSpace(data[:i])
		}
	}
	return strings.TrimSpace(data)
}
