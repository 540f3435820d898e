package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/beanledger/ast"
)

// ParseAmount parses a complete "<number><currency>" string. The currency
// starts at the first letter and may directly follow the number, so both
// "5 BTC" and "5BTC" are accepted. Anything left after the currency is an
// error.
func ParseAmount(input string) (*ast.Amount, error) {
	amount, rest, err := parseAmountPrefix(input)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("unexpected input after currency: %q", rest)
	}
	return amount, nil
}

// parseAmountPrefix parses a leading amount and returns whatever follows
// it, for posting lines where a price or cost clause comes next.
func parseAmountPrefix(input string) (*ast.Amount, string, error) {
	s := strings.TrimSpace(input)

	start := strings.IndexFunc(s, unicode.IsLetter)
	if start < 0 {
		return nil, "", fmt.Errorf("no currency in amount %q", input)
	}

	value := strings.TrimSpace(s[:start])
	if value == "" {
		return nil, "", fmt.Errorf("no number in amount %q", input)
	}

	// The currency is the maximal run of letters.
	end := start
	for _, r := range s[start:] {
		if !unicode.IsLetter(r) {
			break
		}
		end += utf8.RuneLen(r)
	}
	currency := s[start:end]

	number, err := decimal.NewFromString(value)
	if err != nil {
		return nil, "", fmt.Errorf("invalid number %q in amount", value)
	}

	return &ast.Amount{Number: number, Currency: currency}, strings.TrimSpace(s[end:]), nil
}
