// Package ledger implements accounting checks over parsed entries, most
// importantly the double-entry invariant that a transaction's postings sum
// to exactly zero.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/beanledger/ast"
)

// SumAmounts adds a series of amounts that must all share one currency.
// The sum is exact; no rounding is applied.
func SumAmounts(amounts []ast.Amount) (ast.Amount, error) {
	if len(amounts) == 0 {
		return ast.Amount{}, &EmptySumError{}
	}

	currency := amounts[0].Currency
	total := decimal.Decimal{}
	for _, amount := range amounts {
		if amount.Currency != currency {
			return ast.Amount{}, &MixedCurrencyError{First: currency, Second: amount.Currency}
		}
		total = total.Add(amount.Number)
	}

	return ast.Amount{Number: total, Currency: currency}, nil
}

// CheckBalanced verifies that a transaction's postings sum to exactly
// zero. A transaction without postings is trivially balanced. Postings in
// different currencies cannot be summed and fail the check; conversions
// through price clauses are not applied.
func CheckBalanced(txn *ast.Transaction) error {
	if len(txn.Postings) == 0 {
		return nil
	}

	amounts := make([]ast.Amount, len(txn.Postings))
	for i, posting := range txn.Postings {
		amounts[i] = posting.Amount
	}

	sum, err := SumAmounts(amounts)
	if err != nil {
		return err
	}
	if !sum.Number.IsZero() {
		return &UnbalancedError{Transaction: txn, Residual: sum}
	}
	return nil
}
