package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/robinvdvleuten/beanledger/ast"
)

// parseTransaction assembles a transaction. header is the first statement
// line after the flag, with any trailing comment already stripped; body is
// everything after the first newline, one posting per line.
func parseTransaction(date *ast.Date, flag ast.Flag, header, body string) (*ast.Transaction, error) {
	payee, narration, err := parseHeaderStrings(header)
	if err != nil {
		return nil, err
	}

	txn := &ast.Transaction{Date: date, Flag: flag, Payee: payee, Narration: narration}

	for _, line := range strings.Split(body, "\n") {
		posting, ok, err := parsePosting(line)
		if err != nil {
			return nil, fmt.Errorf("invalid posting %q: %w", strings.TrimSpace(line), err)
		}
		if ok {
			txn.Postings = append(txn.Postings, posting)
		}
	}

	return txn, nil
}

// parseHeaderStrings interprets the quoted strings of a transaction
// header. Two strings are payee and narration in that order, a single
// string is the narration. Bare words are not valid header content.
func parseHeaderStrings(header string) (payee, narration string, err error) {
	var quoted []string

	s := strings.TrimSpace(header)
	for s != "" {
		if s[0] != '"' {
			return "", "", fmt.Errorf("unquoted input in transaction header: %q", s)
		}
		end := strings.IndexByte(s[1:], '"')
		if end < 0 {
			return "", "", fmt.Errorf("unterminated string in transaction header: %q", s)
		}
		quoted = append(quoted, s[1:1+end])
		s = strings.TrimSpace(s[end+2:])
	}

	switch len(quoted) {
	case 0:
		// Flag-only header.
	case 1:
		narration = quoted[0]
	case 2:
		payee, narration = quoted[0], quoted[1]
	default:
		return "", "", fmt.Errorf("expected at most 2 strings in transaction header, got %d", len(quoted))
	}
	return payee, narration, nil
}

// parsePosting parses one posting line. Lines that are blank after comment
// stripping are skipped; ok reports whether a posting was produced.
func parsePosting(line string) (posting *ast.Posting, ok bool, err error) {
	line = strings.TrimSpace(trimComment(line))
	if line == "" {
		return nil, false, nil
	}

	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return nil, false, fmt.Errorf("no amount after account")
	}
	account := line[:i]

	amount, rest, err := parseAmountPrefix(line[i:])
	if err != nil {
		return nil, false, err
	}

	price, cost, err := parsePriceAndCost(rest, amount.Number)
	if err != nil {
		return nil, false, err
	}

	return &ast.Posting{Account: account, Amount: *amount, Price: price, Cost: cost}, true, nil
}
