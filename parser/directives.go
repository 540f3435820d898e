package parser

import (
	"fmt"
	"strings"

	"github.com/robinvdvleuten/beanledger/ast"
)

// Each directive parser receives the statement text after the date and
// directive keyword, with any trailing comment already stripped.

func parseOpen(date *ast.Date, remaining string) (*ast.Open, error) {
	it, err := NewTokenizer(remaining)
	if err != nil {
		return nil, err
	}

	account, ok := it.Next()
	if !ok {
		return nil, fmt.Errorf("no account in open directive")
	}

	// Any further tokens constrain the currencies the account may hold.
	var currencies []string
	for {
		currency, ok := it.Next()
		if !ok {
			break
		}
		currencies = append(currencies, currency)
	}

	return &ast.Open{Date: date, Account: account, ConstraintCurrencies: currencies}, nil
}

func parseClose(date *ast.Date, remaining string) (*ast.Close, error) {
	it, err := NewTokenizer(remaining)
	if err != nil {
		return nil, err
	}

	account, ok := it.Next()
	if !ok {
		return nil, fmt.Errorf("no account in close directive")
	}
	if rest := it.Rest(); rest != "" {
		return nil, fmt.Errorf("unexpected input after account: %q", rest)
	}

	return &ast.Close{Date: date, Account: account}, nil
}

func parseCommodity(date *ast.Date, remaining string) (*ast.Commodity, error) {
	currency := strings.TrimSpace(remaining)
	if currency == "" {
		return nil, fmt.Errorf("no currency in commodity directive")
	}
	if strings.ContainsFunc(currency, func(r rune) bool { return r == ' ' || r == '\t' }) {
		return nil, fmt.Errorf("unexpected input after currency: %q", currency)
	}

	return &ast.Commodity{Date: date, Currency: currency}, nil
}

func parseBalance(date *ast.Date, remaining string) (*ast.Balance, error) {
	it, err := NewTokenizer(remaining)
	if err != nil {
		return nil, err
	}

	account, ok := it.Next()
	if !ok {
		return nil, fmt.Errorf("no account in balance directive")
	}

	amount, err := ParseAmount(it.Rest())
	if err != nil {
		return nil, err
	}

	return &ast.Balance{Date: date, Account: account, Amount: *amount}, nil
}

func parsePriceEntry(date *ast.Date, remaining string) (*ast.PriceEntry, error) {
	it, err := NewTokenizer(remaining)
	if err != nil {
		return nil, err
	}

	currency, ok := it.Next()
	if !ok {
		return nil, fmt.Errorf("no currency in price directive")
	}

	amount, err := ParseAmount(it.Rest())
	if err != nil {
		return nil, err
	}

	return &ast.PriceEntry{Date: date, Currency: currency, Amount: *amount}, nil
}
